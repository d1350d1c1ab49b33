package commands

import (
	"github.com/lintrc/lintrc/internal/docs"
	"github.com/spf13/cobra"
)

// NewDocsCommand creates the docs command with subcommands.
func NewDocsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "docs",
		Short: "Generate the configuration reference",
		Long: `Generate static reference documentation for pylint configuration.

The reference covers every option the catalog knows about, one page per
section, plus a page for checker messages and a machine-readable
catalog.json.`,
	}

	cmd.AddCommand(newDocsBuildCommand())

	return cmd
}

func newDocsBuildCommand() *cobra.Command {
	var projectName string

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Generate reference pages as markdown",
		Long: `Generate the markdown reference into a directory.

The destination defaults to the docs_dir setting from lintrc.yaml.`,
		Example: `  # Build the reference with defaults
  lintrc docs build

  # Build to a custom directory
  lintrc docs build --output-dir ./site/reference

  # Build with a custom title
  lintrc docs build --project "Acme Lint"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDocsBuild(cmd, projectName)
		},
	}

	cmd.Flags().String("output-dir", "", "Destination directory (default: docs_dir from lintrc.yaml)")
	cmd.Flags().StringVar(&projectName, "project", "Pylint", "Project name for the reference title")

	return cmd
}

func runDocsBuild(cmd *cobra.Command, projectName string) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	// The --output-dir flag feeds the docs_dir config key through the
	// flag provider, so the loaded config already reflects it.
	outputDir := getConfig().DocsDir
	cmdCtx.Logger.Debug("building reference", "output_dir", outputDir, "project", projectName)

	gen := docs.NewGenerator(projectName)
	written, err := gen.Build(outputDir)
	if err != nil {
		return err
	}

	for _, relPath := range written {
		r.StatusLine(relPath, "success", "")
	}
	r.Println("")
	r.Success("Reference generated!")
	r.Muted("Start at " + outputDir + "/index.md")

	return nil
}
