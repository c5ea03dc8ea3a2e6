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
	tmpDesc = `This command maps keys to stable temporary paths
`
	tmpExample = `  pathlib tmp [arguments]...
  # Get a stable temporary path for a key
  pathlib tmp https://example.com/data.tar.gz

  # Use a custom root directory
  pathlib tmp --root /var/cache/pathlib https://example.com/data.tar.gz
`
)

// NewTmpCmd returns the tmp command.
func NewTmpCmd(arg *RootArgs) *cobra.Command {
	args := NewTmpArgs(arg)

	cmd := &cobra.Command{
		Use:          "tmp KEY...",
		Short:        "Map keys to stable temporary paths",
		Long:         tmpDesc,
		Example:      tmpExample,
		SilenceUsage: true,
		Args:         cobra.MinimumNArgs(1),
		RunE: func(cc *cobra.Command, pArgs []string) error {
			root := args.GetRoot()
			if root == "" {
				root = os.TempDir()
			}

			paths := pathutil.NewStaticTempPaths(
				purepath.New(root).Join("pathlib"),
				pathutil.NewBase64PathEncoder(),
				fsys.NewOS(),
			)

			for _, key := range pArgs {
				p, err := paths.GetPath(key)
				if err != nil {
					return fmt.Errorf("tmp path for %q: %w", key, err)
				}

				cc.Println(p.String())
			}

			return nil
		},
	}

	cmd.Flags().StringVar(args.root, "root", "", "Root directory for temporary paths")
	must(cmd.MarkFlagDirname("root"))

	return cmd
}

// TmpArgs holds the arguments for the tmp command.
type TmpArgs struct {
	root *string
	*RootArgs
}

// NewTmpArgs creates a new [TmpArgs].
func NewTmpArgs(args *RootArgs) *TmpArgs {
	return &TmpArgs{
		root:     new(string),
		RootArgs: args,
	}
}

func (a *TmpArgs) GetRoot() string {
	return *a.root
}
