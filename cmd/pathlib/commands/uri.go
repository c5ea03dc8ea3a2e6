package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/macropower/pathlib/pkg/purepath"
)

// NewURICmd returns the uri command.
func NewURICmd(arg *RootArgs) *cobra.Command {
	args := NewFlavorArgs(arg)

	cmd := &cobra.Command{
		Use:          "uri PATH",
		Short:        "Render an absolute path as a file URI",
		Example:      "  pathlib uri /home/adam/code.nim",
		SilenceUsage: true,
		Args:         cobra.ExactArgs(1),
		RunE: func(cc *cobra.Command, pArgs []string) error {
			flavor, err := parseFlavor(args.GetFlavor())
			if err != nil {
				return err
			}

			uri, err := purepath.NewFlavored(flavor, pArgs[0]).AsURI()
			if err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
			}

			cc.Println(uri)

			return nil
		},
	}

	cmd.Flags().StringVar(args.flavor, "flavor", "native", "Path flavor (native, posix, windows)")

	return cmd
}
