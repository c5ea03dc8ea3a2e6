package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/macropower/pathlib/pkg/purepath"
)

// NewWithNameCmd returns the with-name command.
func NewWithNameCmd(arg *RootArgs) *cobra.Command {
	args := NewFlavorArgs(arg)

	cmd := &cobra.Command{
		Use:          "with-name PATH NAME",
		Short:        "Replace the final path component",
		Example:      "  pathlib with-name /home/adam/code.nim other.go",
		SilenceUsage: true,
		Args:         cobra.ExactArgs(2),
		RunE: func(cc *cobra.Command, pArgs []string) error {
			flavor, err := parseFlavor(args.GetFlavor())
			if err != nil {
				return err
			}

			p, err := purepath.NewFlavored(flavor, pArgs[0]).WithName(pArgs[1])
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

// NewWithSuffixCmd returns the with-suffix command.
func NewWithSuffixCmd(arg *RootArgs) *cobra.Command {
	args := NewFlavorArgs(arg)

	cmd := &cobra.Command{
		Use:          "with-suffix PATH SUFFIX",
		Short:        "Replace the extension of the final path component",
		Example:      "  pathlib with-suffix /home/adam/code.nim .go",
		SilenceUsage: true,
		Args:         cobra.ExactArgs(2),
		RunE: func(cc *cobra.Command, pArgs []string) error {
			flavor, err := parseFlavor(args.GetFlavor())
			if err != nil {
				return err
			}

			p, err := purepath.NewFlavored(flavor, pArgs[0]).WithSuffix(pArgs[1])
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
