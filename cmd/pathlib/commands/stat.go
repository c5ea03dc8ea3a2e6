package commands

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/macropower/pathlib/pkg/fsys"
	"github.com/macropower/pathlib/pkg/pathfs"
	"github.com/macropower/pathlib/pkg/purepath"
)

// NewStatCmd returns the stat command.
func NewStatCmd(_ *RootArgs) *cobra.Command {
	return &cobra.Command{
		Use:          "stat PATH...",
		Short:        "Show filesystem metadata for paths",
		Example:      "  pathlib stat /home/adam/code.nim",
		SilenceUsage: true,
		Args:         cobra.MinimumNArgs(1),
		RunE: func(cc *cobra.Command, pArgs []string) error {
			fs := pathfs.New(fsys.NewOS())

			var merr error
			for _, raw := range pArgs {
				p := purepath.New(raw)

				fi, err := fs.Stat(p)
				if err != nil {
					merr = multierror.Append(merr, fmt.Errorf("stat %q: %w", raw, err))

					continue
				}

				kind := "file"
				switch {
				case fs.IsSymlink(p):
					kind = "symlink"
				case fi.IsDir():
					kind = "dir"
				}

				cc.Printf("%s\t%s\t%d\t%s\t%s\n",
					p.String(), kind, fi.Size(), fi.Mode(), fi.ModTime().Format("2006-01-02T15:04:05Z07:00"))
			}

			if merr != nil {
				return fmt.Errorf("stat failed: %w", merr)
			}

			return nil
		},
	}
}
