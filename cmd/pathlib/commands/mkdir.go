package commands

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/macropower/pathlib/pkg/fsys"
	"github.com/macropower/pathlib/pkg/pathfs"
	"github.com/macropower/pathlib/pkg/purepath"
)

// NewMkdirCmd returns the mkdir command.
func NewMkdirCmd(_ *RootArgs) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "mkdir PATH...",
		Short:        "Create directories",
		Example:      "  pathlib mkdir --parents /srv/data/uploads",
		SilenceUsage: true,
		Args:         cobra.MinimumNArgs(1),
		RunE: func(cc *cobra.Command, pArgs []string) error {
			parents, err := cc.Flags().GetBool("parents")
			if err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
			}

			fs := pathfs.New(fsys.NewOS())

			var merr error
			for _, raw := range pArgs {
				p := purepath.New(raw)

				if parents {
					err = fs.MkdirAll(p, 0o750)
				} else {
					err = fs.Mkdir(p, 0o750)
				}

				if err != nil {
					merr = multierror.Append(merr, fmt.Errorf("mkdir %q: %w", raw, err))
				}
			}

			if merr != nil {
				return fmt.Errorf("mkdir failed: %w", merr)
			}

			return nil
		},
	}

	cmd.Flags().BoolP("parents", "p", false, "Create parent directories as needed")

	return cmd
}
