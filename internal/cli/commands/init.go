package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lintrc/lintrc/internal/cli/output"
	"github.com/lintrc/lintrc/pkg/rcfile/pyproject"
	"github.com/spf13/cobra"
)

// NewInitCommand creates the init command.
func NewInitCommand() *cobra.Command {
	var force bool
	var toml bool
	var interactive bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Create a starter pylint configuration",
		Long: `Create a starter .pylintrc from the built-in template.

The template mirrors a working scientific-Python setup: suppressions for
formatter and C-extension false positives, short-name allowances, an
88-column line limit, and loosened design thresholds.

Use --toml to write the pyproject.toml form instead. Merging a
[tool.pylint] table into an existing pyproject.toml is not supported;
use 'lintrc convert' and paste the table yourself.

Use --interactive to pick the line length, suppressed messages, and
threshold preset in a small wizard.`,
		Example: `  # Create .pylintrc in the current directory
  lintrc init

  # Create it in another directory
  lintrc init ./services/worker

  # pyproject.toml form
  lintrc init --toml

  # Pick values interactively
  lintrc init --interactive

  # Overwrite an existing file
  lintrc init --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			cmdCtx := NewCommandContext(cmd)
			r := cmdCtx.Renderer

			data := DefaultTemplateData()
			if interactive {
				result, err := runInitWizard(data)
				if err != nil {
					return err
				}
				if result == nil {
					r.Muted("Cancelled.")
					return nil
				}
				data = *result
			}

			if toml {
				return runInitToml(r, dir, data, force)
			}
			return runInit(r, dir, data, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing configuration")
	cmd.Flags().BoolVar(&toml, "toml", false, "Write the pyproject.toml form instead of .pylintrc")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Pick values in an interactive wizard")

	return cmd
}

func runInit(r *output.Renderer, dir string, data TemplateData, force bool) error {
	// Create directory if specified and doesn't exist
	if dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	target := filepath.Join(dir, ".pylintrc")
	if _, err := os.Stat(target); err == nil && !force {
		return fmt.Errorf(".pylintrc already exists. Use --force to overwrite")
	}

	content, err := renderTemplate("pylintrc.tmpl", data)
	if err != nil {
		return err
	}
	if err := os.WriteFile(target, content, 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", target, err)
	}

	r.StatusLine(".pylintrc", "success", "")
	r.Println("")
	r.Success("Pylint configuration created!")
	r.Println("")
	r.Println("Next steps:")
	r.Println("  1. Review the suppressed messages in [MESSAGES CONTROL]")
	r.Println("  2. Run 'lintrc verify' to confirm the file is well-formed")
	r.Println("  3. Run 'lintrc doctor' for catalog-aware health checks")

	return nil
}

func runInitToml(r *output.Renderer, dir string, data TemplateData, force bool) error {
	if dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	target := filepath.Join(dir, pyproject.FileName)
	if _, err := os.Stat(target); err == nil && !force {
		return fmt.Errorf("%s already exists and merging a [tool.pylint] table into it is not supported. Overwrite with --force, or run 'lintrc convert --to toml' and paste the table yourself", pyproject.FileName)
	}

	content, err := pyproject.Encode(buildTemplateFile(data))
	if err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}
	if err := os.WriteFile(target, content, 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", target, err)
	}

	r.StatusLine(pyproject.FileName, "success", "")
	r.Println("")
	r.Success("Pylint configuration created!")
	r.Println("")
	r.Println("Next steps:")
	r.Println("  1. Review the [tool.pylint] tables")
	r.Println("  2. Run 'lintrc verify' to confirm the file is well-formed")
	r.Println("  3. Run 'lintrc doctor' for catalog-aware health checks")

	return nil
}
