package commands

import (
	"fmt"
	"strings"

	"github.com/lintrc/lintrc/internal/cli/output"
	"github.com/lintrc/lintrc/pkg/rcfile/options"
	"github.com/spf13/cobra"
)

// OptionListOptions holds options for the options command.
type OptionListOptions struct {
	Section    string // Filter by section
	Deprecated bool   // Show deprecated options only
	Verbose    bool   // Show full documentation
	Format     string // Output format
}

// NewOptionsCommand creates the options command.
func NewOptionsCommand() *cobra.Command {
	opts := &OptionListOptions{}
	cmd := &cobra.Command{
		Use:   "options [key]",
		Short: "List known configuration options",
		Long: `List the configuration options the catalog knows about.

Options are grouped by the section they belong in, e.g. [BASIC] or
[DESIGN]. Pass an option key to see its full documentation, including
its value kind, default, and deprecation state.

Output adapts to environment:
  - Terminal: Styled output with colors
  - Piped/Scripted: Markdown format
  - JSON: Machine-readable format`,
		Example: `  # List all known options
  lintrc options

  # Show details for one option
  lintrc options max-line-length

  # List the [DESIGN] section only
  lintrc options --section design

  # List deprecated options
  lintrc options --deprecated

  # Output as JSON
  lintrc options --format json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return showOption(cmd, args[0], opts)
			}
			return listOptions(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Section, "section", "s", "", "Filter by section")
	cmd.Flags().BoolVar(&opts.Deprecated, "deprecated", false, "Show deprecated options only")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "V", false, "Show full documentation")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, json, markdown")

	return cmd
}

func listOptions(cmd *cobra.Command, opts *OptionListOptions) error {
	cmdCtx := NewCommandContext(cmd)
	r := formatRenderer(cmd, cmdCtx, opts.Format)

	all := filterOptions(options.All(), opts)
	if len(all) == 0 {
		return fmt.Errorf("no options match the given filters")
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return listOptionsJSON(r, all)
	case output.ModeMarkdown:
		return listOptionsMarkdown(r, all, opts.Verbose)
	default:
		return listOptionsText(r, all, opts.Verbose)
	}
}

// filterOptions keeps the catalog's section-then-key order.
func filterOptions(all []options.Option, opts *OptionListOptions) []options.Option {
	if opts.Section == "" && !opts.Deprecated {
		return all
	}

	section := strings.Trim(opts.Section, "[]")
	var filtered []options.Option
	for _, opt := range all {
		if section != "" && !strings.EqualFold(opt.Section, section) {
			continue
		}
		if opts.Deprecated && !opt.Deprecated {
			continue
		}
		filtered = append(filtered, opt)
	}
	return filtered
}

func showOption(cmd *cobra.Command, key string, opts *OptionListOptions) error {
	cmdCtx := NewCommandContext(cmd)
	r := formatRenderer(cmd, cmdCtx, opts.Format)

	opt, ok := options.Lookup(key)
	if !ok {
		return fmt.Errorf("option %q not found", key)
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(opt)
	case output.ModeMarkdown:
		return showOptionMarkdown(r, opt)
	default:
		return showOptionText(r, opt)
	}
}

// listOptionsText outputs options in styled text format.
func listOptionsText(r *output.Renderer, all []options.Option, verbose bool) error {
	styles := r.Styles()

	r.Println("")
	r.Println(styles.Header1.Render(fmt.Sprintf("Configuration Options (%d)", len(all))))
	r.Println("")

	currentSection := ""
	for _, opt := range all {
		if opt.Section != currentSection {
			currentSection = opt.Section
			r.Println(styles.Header2.Render("[" + currentSection + "]"))
			r.Println("")
		}

		line := fmt.Sprintf("  %-34s %s", opt.Key, styles.Muted.Render(opt.Kind.String()))
		if opt.Deprecated {
			line += "  " + styles.Warning.Render("deprecated")
		}
		r.Println(line)

		if verbose {
			r.Println(styles.Muted.Render("      " + truncateOneLine(opt.Description, 80)))
			if opt.Default != "" {
				r.Println(styles.Muted.Render("      Default: " + truncateOneLine(opt.Default, 60)))
			}
			r.Println("")
		}
	}

	r.Println("")
	r.Println(styles.Muted.Render("Use 'lintrc options <key>' for detailed documentation"))
	r.Println("")

	return nil
}

// OptionsJSONOutput is the JSON output structure for option listing.
type OptionsJSONOutput struct {
	Options []options.Option `json:"options"`
	Count   struct {
		Total     int            `json:"total"`
		BySection map[string]int `json:"by_section"`
	} `json:"count"`
}

// listOptionsJSON outputs options in JSON format.
func listOptionsJSON(r *output.Renderer, all []options.Option) error {
	jsonOutput := OptionsJSONOutput{Options: all}
	jsonOutput.Count.Total = len(all)
	jsonOutput.Count.BySection = make(map[string]int)
	for _, opt := range all {
		jsonOutput.Count.BySection[opt.Section]++
	}
	return r.JSON(jsonOutput)
}

// listOptionsMarkdown outputs options in markdown format.
func listOptionsMarkdown(r *output.Renderer, all []options.Option, verbose bool) error {
	r.Println("# Configuration Options")
	r.Println("")

	currentSection := ""
	for _, opt := range all {
		if opt.Section != currentSection {
			currentSection = opt.Section
			r.Println("## [" + currentSection + "]")
			r.Println("")
		}

		marker := ""
		if opt.Deprecated {
			marker = " (deprecated)"
		}
		r.Printf("- **%s** (`%s`)%s\n", opt.Key, opt.Kind.String(), marker)
		if verbose {
			r.Println("  " + opt.Description)
			if opt.Default != "" {
				r.Printf("  Default: `%s`\n", truncateOneLine(opt.Default, 60))
			}
		}
	}

	r.Println("")
	return nil
}

// showOptionText displays detailed option info in text format.
func showOptionText(r *output.Renderer, opt options.Option) error {
	styles := r.Styles()

	r.Println("")
	r.Println(styles.Header1.Render(opt.Key))
	r.Println("")

	r.Printf("  %s: [%s]\n", styles.Bold.Render("Section"), opt.Section)
	r.Printf("  %s: %s\n", styles.Bold.Render("Kind"), opt.Kind.String())
	if opt.Default != "" {
		r.Printf("  %s: %s\n", styles.Bold.Render("Default"), opt.Default)
	}
	if len(opt.Choices) > 0 {
		r.Printf("  %s: %s\n", styles.Bold.Render("Choices"), strings.Join(opt.Choices, ", "))
	}
	r.Println("")

	r.Println(styles.Bold.Render("Description"))
	r.Println("  " + opt.Description)
	r.Println("")

	if opt.Deprecated {
		msg := "This option is deprecated."
		if opt.ReplacedBy != "" {
			msg = fmt.Sprintf("This option is deprecated. Use %q instead.", opt.ReplacedBy)
		}
		r.Warning(msg)
		r.Println("")
	}

	return nil
}

// showOptionMarkdown displays detailed option info in markdown format.
func showOptionMarkdown(r *output.Renderer, opt options.Option) error {
	r.Printf("# %s\n\n", opt.Key)
	r.Printf("**Section:** [%s] | **Kind:** `%s`\n\n", opt.Section, opt.Kind.String())
	r.Println(opt.Description)
	r.Println("")

	if opt.Default != "" {
		r.Printf("Default: `%s`\n\n", opt.Default)
	}
	if len(opt.Choices) > 0 {
		r.Printf("Choices: `%s`\n\n", strings.Join(opt.Choices, "`, `"))
	}
	if opt.Deprecated {
		if opt.ReplacedBy != "" {
			r.Printf("**Deprecated.** Use `%s` instead.\n\n", opt.ReplacedBy)
		} else {
			r.Println("**Deprecated.**")
			r.Println("")
		}
	}

	return nil
}

func truncateOneLine(s string, maxLen int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
