package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/macropower/pathlib/pkg/fsys"
	"github.com/macropower/pathlib/pkg/pathfs"
	"github.com/macropower/pathlib/pkg/purepath"
)

// NewRenameCmd returns the rename command.
func NewRenameCmd(_ *RootArgs) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "rename PATH TARGET",
		Short:        "Rename a file or directory",
		Example:      "  pathlib rename draft.txt final.txt",
		SilenceUsage: true,
		Args:         cobra.ExactArgs(2),
		RunE: func(cc *cobra.Command, pArgs []string) error {
			overwrite, err := cc.Flags().GetBool("overwrite")
			if err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
			}

			fs := pathfs.New(fsys.NewOS())
			p := purepath.New(pArgs[0])

			var moved purepath.Path
			if overwrite {
				moved, err = fs.Replace(p, pArgs[1])
			} else {
				moved, err = fs.Rename(p, pArgs[1])
			}

			if err != nil {
				return fmt.Errorf("rename %q: %w", pArgs[0], err)
			}

			cc.Println(moved.String())

			return nil
		},
	}

	cmd.Flags().Bool("overwrite", false, "Overwrite the target if it exists")

	return cmd
}
