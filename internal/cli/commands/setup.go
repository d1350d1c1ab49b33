package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/lintrc/lintrc/internal/cli/config"
	"github.com/lintrc/lintrc/internal/cli/output"
	"github.com/lintrc/lintrc/pkg/rcfile"
	"github.com/lintrc/lintrc/pkg/rcfile/pyproject"
	"github.com/spf13/cobra"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext from the command's context
// and output writers.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())
	mode := output.Mode(cfg.Output)
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
	}
}

// Helper functions shared across commands

// getConfig returns the current configuration.
// It uses config.GetCurrentConfig() if available, otherwise falls back to environment variables.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}

	// Fallback: read from environment with defaults
	rcFile := os.Getenv("LINTRC_RCFILE")
	outputFormat := getEnvOrDefault("LINTRC_OUTPUT", config.DefaultOutput)
	verbose := os.Getenv("LINTRC_VERBOSE") == "true"
	failOn := getEnvOrDefault("LINTRC_FAIL_ON", config.DefaultFailOn)
	docsDir := getEnvOrDefault("LINTRC_DOCS_DIR", config.DefaultDocsDir)

	return &config.Config{
		RCFile:  rcFile,
		Output:  outputFormat,
		Verbose: verbose,
		FailOn:  failOn,
		DocsDir: docsDir,
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// resolveRCPath picks the configuration file a command operates on.
// Priority: explicit argument > configured rcfile > upward search from CWD.
func resolveRCPath(cmdCtx *CommandContext, arg string) (string, error) {
	if arg != "" {
		return arg, nil
	}
	if cmdCtx.Cfg.RCFile != "" {
		if err := cmdCtx.Cfg.ValidateRCFile(); err != nil {
			return "", err
		}
		return cmdCtx.Cfg.RCFile, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	if path, ok := config.FindRCFile(cwd); ok {
		return path, nil
	}
	return "", fmt.Errorf("no pylint configuration found\nHint: Pass a path, set --rcfile, or run 'lintrc init' to create one")
}

// loadRCFile parses a configuration file in whichever format its name announces.
func loadRCFile(path string) (*rcfile.File, error) {
	if config.IsPyproject(path) {
		return pyproject.Load(path)
	}
	return rcfile.Load(path)
}

// fileFormat names the on-disk format for reports.
func fileFormat(path string) string {
	if config.IsPyproject(path) {
		return "toml"
	}
	return "ini"
}

// formatRenderer returns the context renderer, or a fresh one honoring
// the command's --format override.
func formatRenderer(cmd *cobra.Command, cmdCtx *CommandContext, format string) *output.Renderer {
	if format == "" {
		return cmdCtx.Renderer
	}
	return output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(format))
}
