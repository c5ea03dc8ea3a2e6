package commands

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/macropower/pathlib/pkg/fsys"
	"github.com/macropower/pathlib/pkg/pathfs"
	"github.com/macropower/pathlib/pkg/purepath"
)

// NewTouchCmd returns the touch command.
func NewTouchCmd(_ *RootArgs) *cobra.Command {
	return &cobra.Command{
		Use:          "touch PATH...",
		Short:        "Create files if they do not exist",
		Example:      "  pathlib touch notes.txt",
		SilenceUsage: true,
		Args:         cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, pArgs []string) error {
			fs := pathfs.New(fsys.NewOS())

			var merr error
			for _, raw := range pArgs {
				err := fs.Touch(purepath.New(raw))
				if err != nil {
					merr = multierror.Append(merr, fmt.Errorf("touch %q: %w", raw, err))
				}
			}

			if merr != nil {
				return fmt.Errorf("touch failed: %w", merr)
			}

			return nil
		},
	}
}
