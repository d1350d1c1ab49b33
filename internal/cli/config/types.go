// Package config provides configuration management for the LintRC CLI.
//
// Two kinds of configuration meet here and must not be confused: the
// tool's own settings (output mode, verbosity, severity threshold),
// loaded from lintrc.yaml / environment / flags, and the pylint
// configuration artifact the tool inspects. This package loads the
// former and locates the latter (see FindRCFile).
package config

// Config holds all CLI configuration options.
type Config struct {
	RCFile  string `koanf:"rcfile"`   // explicit path to the pylint configuration file
	Output  string `koanf:"output"`   // auto, text, markdown, or json
	Verbose bool   `koanf:"verbose"`  // debug logging to stderr
	FailOn  string `koanf:"fail_on"`  // minimum severity that fails verify: error, warning, or hint
	DocsDir string `koanf:"docs_dir"` // destination for generated reference pages
}

// Default configuration values.
const (
	DefaultOutput  = "auto" // Auto-detect: TTY=text, non-TTY=markdown
	DefaultFailOn  = "warning"
	DefaultDocsDir = "docs"
)
