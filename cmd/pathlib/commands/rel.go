package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/macropower/pathlib/pkg/purepath"
)

// NewRelCmd returns the rel command.
func NewRelCmd(arg *RootArgs) *cobra.Command {
	args := NewFlavorArgs(arg)

	cmd := &cobra.Command{
		Use:          "rel PATH OTHER",
		Short:        "Express a path relative to an ancestor",
		Example:      "  pathlib rel /home/adam/nim/code.nim /home/adam",
		SilenceUsage: true,
		Args:         cobra.ExactArgs(2),
		RunE: func(cc *cobra.Command, pArgs []string) error {
			flavor, err := parseFlavor(args.GetFlavor())
			if err != nil {
				return err
			}

			p, err := purepath.NewFlavored(flavor, pArgs[0]).RelativeTo(pArgs[1])
			if err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
			}

			cc.Println(p.String())

			return nil
		},
	}

	cmd.Flags().StringVar(args.flavor, "flavor", "native", "Path flavor (native, posix, windows)")

	return cmd
}
