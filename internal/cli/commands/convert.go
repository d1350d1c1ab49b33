package commands

import (
	"fmt"
	"os"

	"github.com/lintrc/lintrc/internal/cli/config"
	"github.com/lintrc/lintrc/pkg/rcfile"
	"github.com/lintrc/lintrc/pkg/rcfile/pyproject"
	"github.com/spf13/cobra"
)

// ConvertOptions holds options for the convert command.
type ConvertOptions struct {
	Path string // Source configuration file
	To   string // Target format: ini, toml
	Out  string // Output path; empty writes to stdout
}

// NewConvertCommand creates the convert command.
func NewConvertCommand() *cobra.Command {
	opts := &ConvertOptions{}
	cmd := &cobra.Command{
		Use:   "convert <path>",
		Short: "Convert a configuration between INI and TOML forms",
		Long: `Convert a pylint configuration between its two on-disk forms.

Reads either a pylintrc-style INI file or a pyproject.toml carrying
[tool.pylint] tables, and writes the other form. Values survive the
round trip; formatting is canonical on output. Without --to the target
format is the opposite of the source's.

By default the converted document goes to stdout; --out writes a file.`,
		Example: `  # Print a pylintrc as pyproject tables
  lintrc convert .pylintrc

  # Write the INI form of a pyproject configuration
  lintrc convert pyproject.toml --out .pylintrc

  # Be explicit about the target format
  lintrc convert .pylintrc --to toml --out pyproject.toml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Path = args[0]
			return runConvert(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.To, "to", "", "Target format: ini, toml (default: the opposite of the source)")
	cmd.Flags().StringVar(&opts.Out, "out", "", "Output path (default: stdout)")

	return cmd
}

func runConvert(cmd *cobra.Command, opts *ConvertOptions) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	f, err := loadRCFile(opts.Path)
	if err != nil {
		return err
	}

	to := opts.To
	if to == "" {
		if config.IsPyproject(opts.Path) {
			to = "ini"
		} else {
			to = "toml"
		}
	}
	cmdCtx.Logger.Debug("converting configuration", "path", opts.Path, "to", to)

	var content []byte
	switch to {
	case "ini":
		content = rcfile.Encode(f)
	case "toml":
		content, err = pyproject.Encode(f)
		if err != nil {
			return fmt.Errorf("failed to encode configuration: %w", err)
		}
	default:
		return fmt.Errorf("invalid --to format %q (valid: ini, toml)", to)
	}

	if opts.Out == "" {
		_, err := r.Writer().Write(content)
		return err
	}

	if err := os.WriteFile(opts.Out, content, 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", opts.Out, err)
	}
	r.Success(fmt.Sprintf("Wrote %s (%s)", opts.Out, to))
	return nil
}
