package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/macropower/pathlib/pkg/purepath"
)

const (
	infoDesc = `This command decomposes paths into their components
`
	infoExample = `  pathlib info [arguments]...
  # Inspect a path
  pathlib info /home/adam/code.nim

  # Inspect a Windows path
  pathlib info --flavor windows 'C:\Users\adam\code.nim'

  # Emit machine-readable output
  pathlib info -o json /home/adam/code.nim
`
)

func parseFlavor(s string) (purepath.Flavor, error) {
	switch strings.ToLower(s) {
	case "", "native":
		return purepath.Native(), nil
	case "posix":
		return purepath.Posix, nil
	case "windows":
		return purepath.Windows, nil
	}

	return purepath.Posix, fmt.Errorf("%w: unknown flavor %q", ErrInvalidArgument, s)
}

// pathInfo is the serializable decomposition of a single path.
type pathInfo struct {
	Path     string   `json:"path"               yaml:"path"`
	Flavor   string   `json:"flavor"             yaml:"flavor"`
	Drive    string   `json:"drive"              yaml:"drive"`
	Root     string   `json:"root"               yaml:"root"`
	Name     string   `json:"name"               yaml:"name"`
	Stem     string   `json:"stem"               yaml:"stem"`
	Suffix   string   `json:"suffix"             yaml:"suffix"`
	Parent   string   `json:"parent"             yaml:"parent"`
	URI      string   `json:"uri,omitempty"      yaml:"uri,omitempty"`
	Suffixes []string `json:"suffixes"           yaml:"suffixes"`
	Parts    []string `json:"parts"              yaml:"parts"`
	Absolute bool     `json:"absolute"           yaml:"absolute"`
}

func newPathInfo(p purepath.Path) pathInfo {
	info := pathInfo{
		Path:     p.String(),
		Flavor:   p.Flavor().String(),
		Drive:    p.Drive(),
		Root:     p.Root(),
		Name:     p.Name(),
		Stem:     p.Stem(),
		Suffix:   p.Suffix(),
		Parent:   p.Parent().String(),
		Suffixes: p.Suffixes(),
		Parts:    p.Parts(),
		Absolute: p.IsAbs(),
	}

	if uri, err := p.AsURI(); err == nil {
		info.URI = uri
	}

	return info
}

func (i pathInfo) writeText(out *strings.Builder) {
	fmt.Fprintf(out, "path:     %s\n", i.Path)
	fmt.Fprintf(out, "flavor:   %s\n", i.Flavor)
	fmt.Fprintf(out, "drive:    %q\n", i.Drive)
	fmt.Fprintf(out, "root:     %q\n", i.Root)
	fmt.Fprintf(out, "name:     %q\n", i.Name)
	fmt.Fprintf(out, "stem:     %q\n", i.Stem)
	fmt.Fprintf(out, "suffix:   %q\n", i.Suffix)
	fmt.Fprintf(out, "suffixes: %v\n", i.Suffixes)
	fmt.Fprintf(out, "parts:    %v\n", i.Parts)
	fmt.Fprintf(out, "parent:   %s\n", i.Parent)
	fmt.Fprintf(out, "absolute: %t\n", i.Absolute)

	if i.URI != "" {
		fmt.Fprintf(out, "uri:      %s\n", i.URI)
	}
}

// NewInfoCmd returns the info command.
func NewInfoCmd(arg *RootArgs) *cobra.Command {
	args := NewInfoArgs(arg)

	cmd := &cobra.Command{
		Use:          "info",
		Short:        "Decompose paths into their components",
		Long:         infoDesc,
		Example:      infoExample,
		SilenceUsage: true,
		Args:         cobra.MinimumNArgs(1),
		RunE: func(cc *cobra.Command, pArgs []string) error {
			flavor, err := parseFlavor(args.GetFlavor())
			if err != nil {
				return err
			}

			infos := make([]pathInfo, 0, len(pArgs))

			var merr error
			for _, raw := range pArgs {
				if raw == "" {
					merr = multierror.Append(merr, errors.New("empty path"))

					continue
				}

				infos = append(infos, newPathInfo(purepath.NewFlavored(flavor, raw)))
			}

			if merr != nil {
				return fmt.Errorf("%w: %w", ErrInvalidArgument, merr)
			}

			switch args.GetOutput() {
			case "json":
				data, err := json.MarshalIndent(infos, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal output: %w", err)
				}

				cc.Println(string(data))

			case "yaml":
				data, err := yaml.Marshal(infos)
				if err != nil {
					return fmt.Errorf("failed to marshal output: %w", err)
				}

				cc.Print(string(data))

			case "text", "":
				var out strings.Builder
				for n, info := range infos {
					if n > 0 {
						out.WriteString("\n")
					}

					info.writeText(&out)
				}

				cc.Print(out.String())

			default:
				return fmt.Errorf("%w: unknown output format %q", ErrInvalidArgument, args.GetOutput())
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(args.output, "output", "o", "text", "Output format (text, json, yaml)")
	cmd.Flags().StringVar(args.flavor, "flavor", "native", "Path flavor (native, posix, windows)")

	return cmd
}

// InfoArgs holds the arguments for the info command.
type InfoArgs struct {
	output *string
	flavor *string
	*RootArgs
}

// NewInfoArgs creates a new [InfoArgs].
func NewInfoArgs(args *RootArgs) *InfoArgs {
	return &InfoArgs{
		output:   new(string),
		flavor:   new(string),
		RootArgs: args,
	}
}

func (a *InfoArgs) GetOutput() string {
	return *a.output
}

func (a *InfoArgs) GetFlavor() string {
	return *a.flavor
}
