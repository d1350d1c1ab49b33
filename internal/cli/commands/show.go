package commands

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/lintrc/lintrc/internal/cli/output"
	"github.com/lintrc/lintrc/pkg/rcfile"
	"github.com/lintrc/lintrc/pkg/rcfile/options"
	"github.com/spf13/cobra"
)

// ShowOptions holds options for the show command.
type ShowOptions struct {
	Path    string // Explicit configuration file path
	Section string // Filter to a single section
	Resolve bool   // Display the typed settings view instead of raw entries
	Format  string // Output format override
}

// NewShowCommand creates the show command.
func NewShowCommand() *cobra.Command {
	opts := &ShowOptions{}
	cmd := &cobra.Command{
		Use:   "show [path]",
		Short: "Display a pylint configuration",
		Long: `Parse a pylint configuration file and display its sections and options.

Both the INI form (.pylintrc, pylintrc) and the pyproject.toml form are
understood. When no path is given the file is located the way pylint
locates it: pylintrc, then .pylintrc, then pyproject.toml with a
[tool.pylint] table, walking parent directories.

Output adapts to environment:
  - Terminal: Styled output with colors
  - Piped/Scripted: Markdown format
  - JSON: Machine-readable format`,
		Example: `  # Show the project's configuration
  lintrc show

  # Show a specific file
  lintrc show ./configs/.pylintrc

  # Only the FORMAT section
  lintrc show --section FORMAT

  # Typed settings with defaults applied and value origins
  lintrc show --resolve

  # Output as JSON
  lintrc show --format json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				opts.Path = args[0]
			}
			return runShow(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Section, "section", "", "Show only the named section")
	cmd.Flags().BoolVar(&opts.Resolve, "resolve", false, "Show typed settings with defaults applied")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, markdown, json")

	return cmd
}

// ShowOutput is the JSON output structure for the show command.
type ShowOutput struct {
	Path     string        `json:"path"`
	Format   string        `json:"format"`
	Sections []ShowSection `json:"sections"`
}

// ShowSection holds one section's entries in file order.
type ShowSection struct {
	Name    string      `json:"name"`
	Line    int         `json:"line,omitempty"`
	Options []ShowEntry `json:"options"`
}

// ShowEntry is a single key=value pair.
type ShowEntry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// ResolvedSetting is one row of the --resolve view.
type ResolvedSetting struct {
	Key     string `json:"key"`
	Section string `json:"section"`
	Value   string `json:"value"`
	Origin  string `json:"origin"`
}

// ResolvedOutput is the JSON output structure for show --resolve.
type ResolvedOutput struct {
	Path     string                 `json:"path"`
	Settings []ResolvedSetting      `json:"settings"`
	Problems []output.VerifyProblem `json:"problems,omitempty"`
}

func runShow(cmd *cobra.Command, opts *ShowOptions) error {
	cmdCtx := NewCommandContext(cmd)
	r := formatRenderer(cmd, cmdCtx, opts.Format)

	path, err := resolveRCPath(cmdCtx, opts.Path)
	if err != nil {
		return err
	}

	f, err := loadRCFile(path)
	if err != nil {
		return err
	}
	cmdCtx.Logger.Debug("loaded configuration", "path", path, "sections", len(f.Sections()))

	if opts.Resolve {
		return renderResolved(r, f, path)
	}

	sections := f.Sections()
	if opts.Section != "" {
		sec, ok := f.Section(opts.Section)
		if !ok {
			return fmt.Errorf("section %q not found in %s", opts.Section, path)
		}
		sections = []*rcfile.Section{sec}
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return showJSON(r, path, sections)
	case output.ModeMarkdown:
		return showMarkdown(r, path, sections)
	default:
		return showText(r, path, sections)
	}
}

func showJSON(r *output.Renderer, path string, sections []*rcfile.Section) error {
	out := ShowOutput{
		Path:   path,
		Format: fileFormat(path),
	}
	for _, sec := range sections {
		js := ShowSection{Name: sectionLabel(sec.Name()), Line: sec.Line()}
		for _, e := range sec.Entries() {
			js.Options = append(js.Options, ShowEntry{Key: e.Key, Value: e.Value})
		}
		out.Sections = append(out.Sections, js)
	}
	return r.JSON(out)
}

func showText(r *output.Renderer, path string, sections []*rcfile.Section) error {
	styles := r.Styles()

	r.Println("")
	r.Println(styles.Header1.Render("Configuration") + " " + styles.FilePath.Render(path))

	for _, sec := range sections {
		r.Println("")
		r.Println(styles.Header2.Render("[" + sectionLabel(sec.Name()) + "]"))

		if len(sec.Entries()) == 0 {
			r.Println(styles.Muted.Render("  (empty)"))
			continue
		}

		t := table.NewWriter()
		t.SetOutputMirror(r.Writer())
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"Option", "Value"})
		for _, e := range sec.Entries() {
			t.AppendRow(table.Row{e.Key, displayValue(e.Value)})
		}
		t.Render()
	}

	r.Println("")
	return nil
}

func showMarkdown(r *output.Renderer, path string, sections []*rcfile.Section) error {
	r.Println(output.FormatHeader(1, "Configuration: "+path))
	r.Println("")

	for _, sec := range sections {
		r.Println(output.FormatHeader(2, "["+sectionLabel(sec.Name())+"]"))
		r.Println("")
		if len(sec.Entries()) == 0 {
			r.Println("_(empty)_")
			r.Println("")
			continue
		}
		for _, e := range sec.Entries() {
			r.Println(output.FormatKeyValue(e.Key, displayValue(e.Value)))
		}
		r.Println("")
	}
	return nil
}

func renderResolved(r *output.Renderer, f *rcfile.File, path string) error {
	settings, problems := rcfile.ResolveSettings(f)
	rows := resolvedRows(f, settings)

	if r.EffectiveMode() == output.ModeJSON {
		out := ResolvedOutput{Path: path, Settings: rows}
		for _, p := range problems {
			out.Problems = append(out.Problems, verifyProblemJSON(p))
		}
		return r.JSON(out)
	}

	if r.EffectiveMode() == output.ModeMarkdown {
		r.Println(output.FormatHeader(1, "Resolved settings: "+path))
		r.Println("")
		for _, row := range rows {
			detail := fmt.Sprintf("%s (%s, %s)", row.Value, row.Section, row.Origin)
			r.Println(output.FormatKeyValue(row.Key, detail))
		}
	} else {
		styles := r.Styles()
		r.Println("")
		r.Println(styles.Header1.Render("Resolved settings") + " " + styles.FilePath.Render(path))
		r.Println("")

		t := table.NewWriter()
		t.SetOutputMirror(r.Writer())
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"Option", "Section", "Value", "Origin"})
		for _, row := range rows {
			t.AppendRow(table.Row{row.Key, row.Section, row.Value, row.Origin})
		}
		t.Render()
	}

	for _, p := range problems {
		r.Warning(fmt.Sprintf("%s: %s", p.Code, p.Message))
	}
	r.Println("")
	return nil
}

// resolvedRows flattens the typed settings into display rows ordered by
// canonical section, marking whether each value came from the file or
// from the documented default.
func resolvedRows(f *rcfile.File, settings rcfile.Settings) []ResolvedSetting {
	data, err := json.Marshal(settings)
	if err != nil {
		return nil
	}
	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil
	}

	rows := make([]ResolvedSetting, 0, len(fields))
	for key, value := range fields {
		opt, ok := options.Lookup(key)
		if !ok {
			continue
		}
		origin := "default"
		if _, _, found := f.Lookup(key, opt.Section); found {
			origin = "file"
		}
		rows = append(rows, ResolvedSetting{
			Key:     key,
			Section: opt.Section,
			Value:   formatSettingValue(value),
			Origin:  origin,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		si, sj := options.SectionIndex(rows[i].Section), options.SectionIndex(rows[j].Section)
		if si != sj {
			return si < sj
		}
		return rows[i].Key < rows[j].Key
	})
	return rows
}

// formatSettingValue renders a decoded JSON value for table display.
func formatSettingValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.Itoa(int(val))
	case []any:
		parts := make([]string, 0, len(val))
		for _, item := range val {
			parts = append(parts, fmt.Sprintf("%v", item))
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprintf("%v", val)
	}
}

// displayValue flattens multiline list values for single-line display.
func displayValue(v string) string {
	if !strings.Contains(v, "\n") {
		return v
	}
	return strings.Join(rcfile.SplitList(v), ", ")
}

// sectionLabel names a section for display; orphan entries live in a
// nameless section.
func sectionLabel(name string) string {
	if name == "" {
		return "(no section)"
	}
	return name
}

// verifyProblemJSON converts a verification problem to its report form.
func verifyProblemJSON(p rcfile.Problem) output.VerifyProblem {
	return output.VerifyProblem{
		Code:     p.Code,
		Severity: p.Severity.String(),
		Message:  p.Message,
		Section:  p.Section,
		Key:      p.Key,
		Line:     p.Line,
	}
}
