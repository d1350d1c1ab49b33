package commands

import (
	"fmt"
	"strings"

	"github.com/lintrc/lintrc/internal/cli/output"
	"github.com/lintrc/lintrc/pkg/rcfile/messages"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MessagesOptions holds options for the messages command.
type MessagesOptions struct {
	Category string // Filter by category
	Verbose  bool   // Show full documentation
	Format   string // Output format
}

// NewMessagesCommand creates the messages command.
func NewMessagesCommand() *cobra.Command {
	opts := &MessagesOptions{}
	cmd := &cobra.Command{
		Use:   "messages [id-or-symbol]",
		Short: "List known checker messages",
		Long: `List the checker messages the catalog knows about.

Messages are grouped by category: convention (C), refactor (R),
warning (W), error (E), fatal (F), and information (I). Pass a message
id or symbol to see its details, including renames and removals that
make disable entries stale.

Output adapts to environment:
  - Terminal: Styled output with colors
  - Piped/Scripted: Markdown format
  - JSON: Machine-readable format`,
		Example: `  # List all known messages
  lintrc messages

  # Show details by id or symbol
  lintrc messages C0103
  lintrc messages invalid-name

  # List warnings only
  lintrc messages --category W

  # Output as JSON
  lintrc messages --format json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return showMessage(cmd, args[0], opts)
			}
			return listMessages(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Category, "category", "c", "", "Filter by category letter or name")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "V", false, "Show full documentation")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, json, markdown")

	return cmd
}

// parseCategory accepts a category letter ("W") or long name
// ("warning"), case-insensitively.
func parseCategory(s string) (messages.Category, bool) {
	if len(s) == 1 {
		c := messages.Category(strings.ToUpper(s))
		return c, c.Valid()
	}
	for _, c := range messages.Categories() {
		if strings.EqualFold(c.Name(), s) {
			return c, true
		}
	}
	return "", false
}

func listMessages(cmd *cobra.Command, opts *MessagesOptions) error {
	cmdCtx := NewCommandContext(cmd)
	r := formatRenderer(cmd, cmdCtx, opts.Format)

	cats := messages.Categories()
	if opts.Category != "" {
		cat, ok := parseCategory(opts.Category)
		if !ok {
			return fmt.Errorf("invalid category %q (valid: C, R, W, E, F, I or their names)", opts.Category)
		}
		cats = []messages.Category{cat}
	}

	var all []messages.Message
	for _, cat := range cats {
		all = append(all, messages.ByCategory(cat)...)
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return listMessagesJSON(r, all)
	case output.ModeMarkdown:
		return listMessagesMarkdown(r, all, opts.Verbose)
	default:
		return listMessagesText(r, all, opts.Verbose)
	}
}

func showMessage(cmd *cobra.Command, idOrSymbol string, opts *MessagesOptions) error {
	cmdCtx := NewCommandContext(cmd)
	r := formatRenderer(cmd, cmdCtx, opts.Format)

	msg, ok := messages.Resolve(idOrSymbol)
	if !ok {
		return fmt.Errorf("message %q not found", idOrSymbol)
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(msg)
	case output.ModeMarkdown:
		return showMessageMarkdown(r, msg)
	default:
		return showMessageText(r, msg)
	}
}

// listMessagesText outputs messages in styled text format.
func listMessagesText(r *output.Renderer, all []messages.Message, verbose bool) error {
	styles := r.Styles()
	titleCaser := cases.Title(language.English)

	r.Println("")
	r.Println(styles.Header1.Render(fmt.Sprintf("Checker Messages (%d)", len(all))))
	r.Println("")

	var currentCategory messages.Category
	for _, msg := range all {
		if msg.Category != currentCategory {
			currentCategory = msg.Category
			r.Println(styles.Header2.Render(fmt.Sprintf("%s (%s)", titleCaser.String(currentCategory.Name()), currentCategory)))
			r.Println("")
		}

		line := fmt.Sprintf("  %s  %s", styles.Muted.Render(msg.ID), msg.Symbol)
		if msg.Removed() {
			line += "  " + styles.Error.Render("removed in "+msg.RemovedIn)
		} else if msg.RenamedTo != "" {
			line += "  " + styles.Warning.Render("renamed to "+msg.RenamedTo)
		}
		r.Println(line)

		if verbose {
			r.Println(styles.Muted.Render("        " + truncateOneLine(msg.Description, 80)))
			r.Println("")
		}
	}

	r.Println("")
	r.Println(styles.Muted.Render("Use 'lintrc messages <id-or-symbol>' for detailed documentation"))
	r.Println("")

	return nil
}

// listMessagesMarkdown outputs messages in markdown format.
func listMessagesMarkdown(r *output.Renderer, all []messages.Message, verbose bool) error {
	titleCaser := cases.Title(language.English)

	r.Println("# Checker Messages")
	r.Println("")

	var currentCategory messages.Category
	for _, msg := range all {
		if msg.Category != currentCategory {
			currentCategory = msg.Category
			r.Printf("## %s (%s)\n", titleCaser.String(currentCategory.Name()), currentCategory)
			r.Println("")
		}

		marker := ""
		if msg.Removed() {
			marker = fmt.Sprintf(" (removed in %s)", msg.RemovedIn)
		} else if msg.RenamedTo != "" {
			marker = fmt.Sprintf(" (renamed to `%s`)", msg.RenamedTo)
		}
		r.Printf("- **%s** `%s`%s\n", msg.ID, msg.Symbol, marker)
		if verbose {
			r.Println("  " + msg.Description)
		}
	}

	r.Println("")
	return nil
}

// MessagesJSONOutput is the JSON output structure for message listing.
type MessagesJSONOutput struct {
	Messages []messages.Message `json:"messages"`
	Count    struct {
		Total      int            `json:"total"`
		ByCategory map[string]int `json:"by_category"`
	} `json:"count"`
}

// listMessagesJSON outputs messages in JSON format.
func listMessagesJSON(r *output.Renderer, all []messages.Message) error {
	jsonOutput := MessagesJSONOutput{Messages: all}
	jsonOutput.Count.Total = len(all)
	jsonOutput.Count.ByCategory = make(map[string]int)
	for _, msg := range all {
		jsonOutput.Count.ByCategory[msg.Category.Name()]++
	}
	return r.JSON(jsonOutput)
}

// showMessageText displays detailed message info in text format.
func showMessageText(r *output.Renderer, msg messages.Message) error {
	styles := r.Styles()

	r.Println("")
	r.Println(styles.Header1.Render(fmt.Sprintf("%s - %s", msg.ID, msg.Symbol)))
	r.Println("")

	r.Printf("  %s: %s (%s)\n", styles.Bold.Render("Category"), msg.Category.Name(), msg.Category)
	r.Println("")

	r.Println(styles.Bold.Render("Description"))
	r.Println("  " + msg.Description)
	r.Println("")

	if msg.Removed() {
		r.Warning(fmt.Sprintf("Removed in release %s. Disable entries referencing it are stale.", msg.RemovedIn))
		r.Println("")
	} else if msg.RenamedTo != "" {
		r.Warning(fmt.Sprintf("Renamed to %q. The old symbol still works, but new configurations should use the new one.", msg.RenamedTo))
		r.Println("")
	}

	return nil
}

// showMessageMarkdown displays detailed message info in markdown format.
func showMessageMarkdown(r *output.Renderer, msg messages.Message) error {
	r.Printf("# %s - %s\n\n", msg.ID, msg.Symbol)
	r.Printf("**Category:** %s (%s)\n\n", msg.Category.Name(), msg.Category)
	r.Println(msg.Description)
	r.Println("")

	if msg.Removed() {
		r.Printf("**Removed in release %s.** Disable entries referencing it are stale.\n\n", msg.RemovedIn)
	} else if msg.RenamedTo != "" {
		r.Printf("**Renamed to `%s`.** The old symbol still works, but new configurations should use the new one.\n\n", msg.RenamedTo)
	}

	return nil
}
