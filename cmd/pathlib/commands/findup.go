package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/macropower/pathlib/pkg/fsys"
	"github.com/macropower/pathlib/pkg/pathutil"
	"github.com/macropower/pathlib/pkg/purepath"
)

const (
	findupDesc = `This command finds the closest directory containing a named entry
`
	findupExample = `  pathlib findup [arguments]...
  # Find the closest directory containing go.mod
  pathlib findup go.mod

  # Search from a specific starting directory
  pathlib findup --from ./pkg/nested go.mod
`
)

// NewFindUpCmd returns the findup command.
func NewFindUpCmd(arg *RootArgs) *cobra.Command {
	args := NewFindUpArgs(arg)

	cmd := &cobra.Command{
		Use:          "findup NAME",
		Short:        "Find the closest directory containing a named entry",
		Long:         findupDesc,
		Example:      findupExample,
		SilenceUsage: true,
		Args:         cobra.ExactArgs(1),
		RunE: func(cc *cobra.Command, pArgs []string) error {
			from := args.GetFrom()
			if from == "" {
				wd, err := os.Getwd()
				if err != nil {
					return fmt.Errorf("get working directory: %w", err)
				}

				from = wd
			}

			p, err := pathutil.FindUp(
				fsys.NewOS(),
				purepath.New(args.GetRoot()),
				purepath.New(from),
				pArgs[0],
			)
			if err != nil {
				return fmt.Errorf("findup %q: %w", pArgs[0], err)
			}

			cc.Println(p.String())

			return nil
		},
	}

	cmd.Flags().StringVar(args.from, "from", "", "Directory to start searching from (default: working directory)")
	must(cmd.MarkFlagDirname("from"))

	cmd.Flags().StringVar(args.root, "root", "/", "Directory at which to stop searching")
	must(cmd.MarkFlagDirname("root"))

	return cmd
}

// FindUpArgs holds the arguments for the findup command.
type FindUpArgs struct {
	from *string
	root *string
	*RootArgs
}

// NewFindUpArgs creates a new [FindUpArgs].
func NewFindUpArgs(args *RootArgs) *FindUpArgs {
	return &FindUpArgs{
		from:     new(string),
		root:     new(string),
		RootArgs: args,
	}
}

func (a *FindUpArgs) GetFrom() string {
	return *a.from
}

func (a *FindUpArgs) GetRoot() string {
	return *a.root
}
