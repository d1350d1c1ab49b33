package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lintrc/lintrc/internal/cli/output"
	"github.com/lintrc/lintrc/pkg/rcfile"
	"github.com/lintrc/lintrc/pkg/rcfile/options"
	"github.com/spf13/cobra"
)

// DiffOptions holds options for the diff command.
type DiffOptions struct {
	PathA  string
	PathB  string
	Format string // Output format override
}

// NewDiffCommand creates the diff command.
func NewDiffCommand() *cobra.Command {
	opts := &DiffOptions{}
	cmd := &cobra.Command{
		Use:   "diff <a> <b>",
		Short: "Compare two configurations semantically",
		Long: `Compare two pylint configurations by meaning, not by text.

Both sides may be either format: a pylintrc-style INI file or a
pyproject.toml with [tool.pylint] tables. The comparison reports added
and removed sections, added, removed and changed options, and for
list-valued options the tokens added to or removed from the list, so
reordering a disable list or moving between formats does not count as
a change.

The command exits non-zero when differences exist, so it can gate
configuration drift in CI.`,
		Example: `  # Compare two rcfiles
  lintrc diff old.pylintrc new.pylintrc

  # Compare across formats
  lintrc diff .pylintrc pyproject.toml

  # Machine-readable report
  lintrc diff a.pylintrc b.pylintrc --format json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.PathA = args[0]
			opts.PathB = args[1]
			return runDiff(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, markdown, json")

	return cmd
}

// DiffOutput is the JSON output for the diff command.
type DiffOutput struct {
	PathA    string        `json:"path_a"`
	PathB    string        `json:"path_b"`
	Sections []SectionDiff `json:"sections,omitempty"`
	Equal    bool          `json:"equal"`
}

// SectionDiff describes the changes within one section.
type SectionDiff struct {
	Name    string       `json:"name"`
	Status  string       `json:"status"` // "added", "removed", "changed"
	Options []OptionDiff `json:"options,omitempty"`
}

// OptionDiff describes one option's change.
type OptionDiff struct {
	Key         string   `json:"key"`
	Status      string   `json:"status"` // "added", "removed", "changed"
	Old         string   `json:"old,omitempty"`
	New         string   `json:"new,omitempty"`
	ListAdded   []string `json:"list_added,omitempty"`
	ListRemoved []string `json:"list_removed,omitempty"`
}

func runDiff(cmd *cobra.Command, opts *DiffOptions) error {
	cmdCtx := NewCommandContext(cmd)
	r := formatRenderer(cmd, cmdCtx, opts.Format)

	fa, err := loadRCFile(opts.PathA)
	if err != nil {
		return err
	}
	fb, err := loadRCFile(opts.PathB)
	if err != nil {
		return err
	}

	out := diffFiles(opts.PathA, opts.PathB, fa, fb)
	cmdCtx.Logger.Debug("compared configurations", "a", opts.PathA, "b", opts.PathB, "equal", out.Equal)

	switch r.EffectiveMode() {
	case output.ModeJSON:
		if err := r.JSON(out); err != nil {
			return err
		}
	case output.ModeMarkdown:
		renderDiffMarkdown(r, out)
	default:
		renderDiffText(r, out)
	}

	if !out.Equal {
		return fmt.Errorf("configurations differ")
	}
	return nil
}

// diffFiles computes the semantic difference between two documents.
// Sections keep a's file order; sections only in b follow in b's order.
func diffFiles(pathA, pathB string, fa, fb *rcfile.File) DiffOutput {
	out := DiffOutput{PathA: pathA, PathB: pathB}

	seen := make(map[string]bool)
	for _, sa := range fa.Sections() {
		seen[strings.ToLower(sa.Name())] = true
		sb, ok := fb.Section(sa.Name())
		if !ok {
			out.Sections = append(out.Sections, removedSection(sa))
			continue
		}
		if d, changed := diffSections(sa, sb); changed {
			out.Sections = append(out.Sections, d)
		}
	}
	for _, sb := range fb.Sections() {
		if seen[strings.ToLower(sb.Name())] {
			continue
		}
		out.Sections = append(out.Sections, addedSection(sb))
	}

	out.Equal = len(out.Sections) == 0
	return out
}

func removedSection(s *rcfile.Section) SectionDiff {
	d := SectionDiff{Name: s.Name(), Status: "removed"}
	for _, key := range s.Keys() {
		v, _ := s.Get(key)
		d.Options = append(d.Options, OptionDiff{Key: key, Status: "removed", Old: strings.TrimSpace(v)})
	}
	return d
}

func addedSection(s *rcfile.Section) SectionDiff {
	d := SectionDiff{Name: s.Name(), Status: "added"}
	for _, key := range s.Keys() {
		v, _ := s.Get(key)
		d.Options = append(d.Options, OptionDiff{Key: key, Status: "added", New: strings.TrimSpace(v)})
	}
	return d
}

func diffSections(sa, sb *rcfile.Section) (SectionDiff, bool) {
	d := SectionDiff{Name: sa.Name(), Status: "changed"}

	seen := make(map[string]bool)
	for _, key := range sa.Keys() {
		seen[strings.ToLower(key)] = true
		va, _ := sa.Get(key)
		vb, ok := sb.Get(key)
		if !ok {
			d.Options = append(d.Options, OptionDiff{Key: key, Status: "removed", Old: strings.TrimSpace(va)})
			continue
		}
		if od, changed := diffValues(key, va, vb); changed {
			d.Options = append(d.Options, od)
		}
	}
	for _, key := range sb.Keys() {
		if seen[strings.ToLower(key)] {
			continue
		}
		vb, _ := sb.Get(key)
		d.Options = append(d.Options, OptionDiff{Key: key, Status: "added", New: strings.TrimSpace(vb)})
	}

	return d, len(d.Options) > 0
}

// diffValues compares one option's values. List-valued options compare
// as sets, so reordering and reformatting do not register.
func diffValues(key, va, vb string) (OptionDiff, bool) {
	if listValued(key, va, vb) {
		added, removed := diffTokens(rcfile.SplitList(va), rcfile.SplitList(vb))
		if len(added) == 0 && len(removed) == 0 {
			return OptionDiff{}, false
		}
		return OptionDiff{Key: key, Status: "changed", ListAdded: added, ListRemoved: removed}, true
	}

	oldV, newV := strings.TrimSpace(va), strings.TrimSpace(vb)
	if oldV == newV {
		return OptionDiff{}, false
	}
	return OptionDiff{Key: key, Status: "changed", Old: oldV, New: newV}, true
}

// listValued prefers the catalog's kind; for unknown options a comma on
// both sides is treated as a list.
func listValued(key, va, vb string) bool {
	if opt, ok := options.Lookup(key); ok {
		return opt.Kind.IsList()
	}
	return strings.Contains(va, ",") && strings.Contains(vb, ",")
}

// diffTokens returns the tokens only in b (added) and only in a
// (removed), both sorted, matched case-insensitively.
func diffTokens(a, b []string) (added, removed []string) {
	inA := make(map[string]bool)
	for _, t := range a {
		inA[strings.ToLower(t)] = true
	}
	inB := make(map[string]bool)
	for _, t := range b {
		inB[strings.ToLower(t)] = true
	}

	for _, t := range b {
		if !inA[strings.ToLower(t)] {
			added = append(added, t)
		}
	}
	for _, t := range a {
		if !inB[strings.ToLower(t)] {
			removed = append(removed, t)
		}
	}
	sort.Strings(added)
	sort.Strings(removed)
	return added, removed
}

func renderDiffText(r *output.Renderer, out DiffOutput) {
	styles := r.Styles()

	r.Println(styles.Header1.Render("Configuration Diff"))
	r.Println(styles.Muted.Render("a: " + out.PathA))
	r.Println(styles.Muted.Render("b: " + out.PathB))
	r.Println("")

	if out.Equal {
		r.Success("Configurations are semantically equal")
		return
	}

	for _, sd := range out.Sections {
		marker := styles.Warning.Render("~")
		switch sd.Status {
		case "added":
			marker = styles.Success.Render("+")
		case "removed":
			marker = styles.Error.Render("-")
		}
		r.Printf("%s %s\n", marker, styles.Bold.Render(sectionLabel(sd.Name)))

		for _, od := range sd.Options {
			switch od.Status {
			case "added":
				r.Printf("    %s %s = %s\n", styles.Success.Render("+"), od.Key, singleLine(od.New))
			case "removed":
				r.Printf("    %s %s\n", styles.Error.Render("-"), od.Key)
			default:
				if len(od.ListAdded) > 0 || len(od.ListRemoved) > 0 {
					r.Printf("    %s %s: %s\n", styles.Warning.Render("~"), od.Key, formatListDiff(styles, od))
				} else {
					r.Printf("    %s %s: %s -> %s\n", styles.Warning.Render("~"), od.Key, singleLine(od.Old), singleLine(od.New))
				}
			}
		}
		r.Println("")
	}
}

func renderDiffMarkdown(r *output.Renderer, out DiffOutput) {
	r.Println(output.FormatHeader(1, "Configuration Diff"))
	r.Println("")
	r.Printf("- a: `%s`\n", out.PathA)
	r.Printf("- b: `%s`\n", out.PathB)
	r.Println("")

	if out.Equal {
		r.Println("Configurations are semantically equal.")
		return
	}

	for _, sd := range out.Sections {
		r.Println(output.FormatHeader(2, fmt.Sprintf("%s (%s)", sectionLabel(sd.Name), sd.Status)))
		r.Println("")
		for _, od := range sd.Options {
			switch od.Status {
			case "added":
				r.Printf("- **added** `%s` = `%s`\n", od.Key, singleLine(od.New))
			case "removed":
				r.Printf("- **removed** `%s`\n", od.Key)
			default:
				if len(od.ListAdded) > 0 || len(od.ListRemoved) > 0 {
					parts := []string{}
					for _, t := range od.ListAdded {
						parts = append(parts, "+"+t)
					}
					for _, t := range od.ListRemoved {
						parts = append(parts, "-"+t)
					}
					r.Printf("- **changed** `%s`: %s\n", od.Key, strings.Join(parts, " "))
				} else {
					r.Printf("- **changed** `%s`: `%s` -> `%s`\n", od.Key, singleLine(od.Old), singleLine(od.New))
				}
			}
		}
		r.Println("")
	}
}

func formatListDiff(styles output.Styles, od OptionDiff) string {
	parts := []string{}
	for _, t := range od.ListAdded {
		parts = append(parts, styles.Success.Render("+"+t))
	}
	for _, t := range od.ListRemoved {
		parts = append(parts, styles.Error.Render("-"+t))
	}
	return strings.Join(parts, " ")
}

// singleLine flattens continuation-line values for one-line display.
func singleLine(value string) string {
	if !strings.Contains(value, "\n") {
		return value
	}
	return strings.Join(rcfile.SplitList(value), ",")
}
