package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/macropower/pathlib/pkg/fsys"
	"github.com/macropower/pathlib/pkg/log"
	"github.com/macropower/pathlib/pkg/pathcmd"
	"github.com/macropower/pathlib/pkg/pathfs"
	"github.com/macropower/pathlib/pkg/pathtui"
)

const (
	resolveDesc = `This command resolves paths to their canonical absolute forms
`
	resolveExample = `  pathlib resolve [arguments]...
  # Resolve a path, expanding symlinks
  pathlib resolve ./link.txt

  # Resolve many paths at once
  pathlib resolve a.txt b.txt c.txt

  # Constrain resolution to a root directory
  pathlib resolve --root /srv/data uploads/report.pdf
`
)

// NewResolveCmd returns the resolve command.
func NewResolveCmd(arg *RootArgs) *cobra.Command {
	args := NewResolveArgs(arg)

	cmd := &cobra.Command{
		Use:          "resolve PATH...",
		Short:        "Resolve paths to canonical absolute forms",
		Long:         resolveDesc,
		Example:      resolveExample,
		SilenceUsage: true,
		Args:         cobra.MinimumNArgs(1),
		RunE: func(cc *cobra.Command, pArgs []string) error {
			var merr error

			flags := cc.Flags()
			quiet, err := flags.GetBool("quiet")
			if err != nil {
				merr = multierror.Append(merr, err)
			}
			timeout, err := flags.GetDuration("timeout")
			if err != nil {
				merr = multierror.Append(merr, err)
			}

			if merr != nil {
				return fmt.Errorf("%w: %w", ErrInvalidArgument, merr)
			}

			opts := []pathcmd.BulkOpts{pathcmd.WithTimeout(timeout)}
			if args.GetRoot() != "" {
				opts = append(opts, pathcmd.WithRoot(args.GetRoot()))
			}

			bulk := pathcmd.NewBulk(pathfs.New(fsys.NewOS()), opts...)

			if quiet || !isatty.IsTerminal(os.Stdout.Fd()) {
				resolved, err := bulk.Resolve(pArgs...)
				if err != nil {
					return fmt.Errorf("resolve failed: %w", err)
				}

				// Output lines pair 1:1 with the arguments.
				for _, arg := range pArgs {
					if rp, ok := resolved[arg]; ok {
						cc.Println(rp.String())
					}
				}

				return nil
			}

			tui := pathtui.NewBulkTUI(cc.OutOrStdout(), log.GetLevel(args.GetLogLevel()), bulk)

			_, err = tui.Resolve(pArgs...)
			if err != nil {
				return fmt.Errorf("resolve failed: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(args.root, "root", "", "Constrain resolution to this root directory")
	must(cmd.MarkFlagDirname("root"))

	cmd.Flags().Duration("timeout", 5*time.Minute, "Timeout for the command")
	cmd.Flags().BoolP("quiet", "q", false, "Run in quiet mode")

	return cmd
}

// ResolveArgs holds the arguments for the resolve command.
type ResolveArgs struct {
	root *string
	*RootArgs
}

// NewResolveArgs creates a new [ResolveArgs].
func NewResolveArgs(args *RootArgs) *ResolveArgs {
	return &ResolveArgs{
		root:     new(string),
		RootArgs: args,
	}
}

func (a *ResolveArgs) GetRoot() string {
	return *a.root
}
