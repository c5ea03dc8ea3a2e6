package commands

import (
	"github.com/spf13/cobra"

	"github.com/macropower/pathlib/pkg/purepath"
)

// NewJoinCmd returns the join command.
func NewJoinCmd(arg *RootArgs) *cobra.Command {
	args := NewFlavorArgs(arg)

	cmd := &cobra.Command{
		Use:          "join BASE [SEGMENT]...",
		Short:        "Join path segments onto a base path",
		Example:      "  pathlib join /home/adam nim code.nim",
		SilenceUsage: true,
		Args:         cobra.MinimumNArgs(1),
		RunE: func(cc *cobra.Command, pArgs []string) error {
			flavor, err := parseFlavor(args.GetFlavor())
			if err != nil {
				return err
			}

			p := purepath.NewFlavored(flavor, pArgs[0])
			cc.Println(p.Join(pArgs[1:]...).String())

			return nil
		},
	}

	cmd.Flags().StringVar(args.flavor, "flavor", "native", "Path flavor (native, posix, windows)")

	return cmd
}

// FlavorArgs holds the flavor argument shared by the pure path commands.
type FlavorArgs struct {
	flavor *string
	*RootArgs
}

// NewFlavorArgs creates a new [FlavorArgs].
func NewFlavorArgs(args *RootArgs) *FlavorArgs {
	return &FlavorArgs{
		flavor:   new(string),
		RootArgs: args,
	}
}

func (a *FlavorArgs) GetFlavor() string {
	return *a.flavor
}
