package commands

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/lintrc/lintrc/internal/cli/output"
	"github.com/lintrc/lintrc/pkg/rcfile"
	"github.com/lintrc/lintrc/pkg/rcfile/messages"
	"github.com/lintrc/lintrc/pkg/rcfile/options"
	"github.com/spf13/cobra"
)

// DoctorOptions holds options for the doctor command.
type DoctorOptions struct {
	Path   string // Configuration file to analyze
	Format string // Output format: text, json
}

// NewDoctorCommand creates the doctor command.
func NewDoctorCommand() *cobra.Command {
	opts := &DoctorOptions{}
	cmd := &cobra.Command{
		Use:   "doctor [path]",
		Short: "Run a comprehensive configuration health check",
		Long: `Analyze a pylint configuration for problems beyond well-formedness.

The doctor command checks the file against the option and message
catalogs and provides a comprehensive report including:
- File summary (sections, options, suppressed messages)
- Health checks grouped by category (Structure, Options, Messages)
- Health score (0-100)
- Actionable recommendations

Output adapts to environment:
  - Terminal: Styled output with colors
  - Piped/Scripted: Markdown format
  - JSON: Machine-readable format`,
		Example: `  # Check the project's configuration
  lintrc doctor

  # Check a specific file
  lintrc doctor ./configs/.pylintrc

  # Output as JSON
  lintrc doctor --format json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				opts.Path = args[0]
			}
			return runDoctor(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, markdown, json")

	return cmd
}

// DoctorOutput is the JSON output for the doctor command.
type DoctorOutput struct {
	Summary         FileSummary   `json:"summary"`
	HealthChecks    []HealthCheck `json:"health_checks"`
	Score           int           `json:"score"`
	Recommendations []string      `json:"recommendations"`
	IssueCount      int           `json:"issue_count"`
}

// FileSummary contains file-level statistics.
type FileSummary struct {
	Path       string `json:"path"`
	Format     string `json:"format"`
	Sections   int    `json:"sections"`
	Options    int    `json:"options"`
	Disabled   int    `json:"disabled_messages"`
	Deprecated int    `json:"deprecated_options"`
}

// HealthCheck represents a single health check result.
type HealthCheck struct {
	CheckID    string   `json:"check_id"`
	Name       string   `json:"name"`
	Group      string   `json:"group"`
	Status     string   `json:"status"` // "pass", "warn", "error"
	IssueCount int      `json:"issue_count"`
	Details    []string `json:"details,omitempty"`
}

// doctorCheck describes one health check: its identity and the status
// its findings carry.
type doctorCheck struct {
	ID         string
	Name       string
	Group      string
	FailStatus string // "warn" or "error"
	Run        func(f *rcfile.File, probs []rcfile.Problem) []string
}

// doctorChecks lists every health check in report order.
var doctorChecks = []doctorCheck{
	{ID: "syntax", Name: "File parses", Group: "structure", FailStatus: "error", Run: checkProblemCodes(rcfile.ProblemSyntax)},
	{ID: "duplicate-options", Name: "No duplicated sections or options", Group: "structure", FailStatus: "error", Run: checkDuplicates},
	{ID: "section-layout", Name: "Entries live under section headers", Group: "structure", FailStatus: "error", Run: checkProblemCodes(rcfile.ProblemOrphanEntry, rcfile.ProblemEmptySection)},
	{ID: "list-values", Name: "Comma lists are well-formed", Group: "structure", FailStatus: "warn", Run: checkProblemCodes(rcfile.ProblemEmptyToken, rcfile.ProblemTokenWhitespace)},
	{ID: "known-options", Name: "Options exist in the catalog", Group: "options", FailStatus: "warn", Run: checkKnownOptions},
	{ID: "option-placement", Name: "Options sit in their documented sections", Group: "options", FailStatus: "warn", Run: checkOptionPlacement},
	{ID: "deprecated-options", Name: "No deprecated options", Group: "options", FailStatus: "warn", Run: checkDeprecatedOptions},
	{ID: "option-values", Name: "Values match their declared kinds", Group: "options", FailStatus: "warn", Run: checkOptionValues},
	{ID: "known-messages", Name: "Suppressed messages exist", Group: "messages", FailStatus: "warn", Run: checkKnownMessages},
	{ID: "message-lifecycle", Name: "No removed or renamed messages", Group: "messages", FailStatus: "warn", Run: checkMessageLifecycle},
	{ID: "duplicate-messages", Name: "Message lists are free of repeats", Group: "messages", FailStatus: "warn", Run: checkDuplicateMessages},
}

func runDoctor(cmd *cobra.Command, opts *DoctorOptions) error {
	cmdCtx := NewCommandContext(cmd)
	r := formatRenderer(cmd, cmdCtx, opts.Format)

	path, err := resolveRCPath(cmdCtx, opts.Path)
	if err != nil {
		return err
	}
	cmdCtx.Logger.Debug("running health checks", "path", path)

	f, err := loadRCFile(path)
	if err != nil {
		// An unparseable file still gets a report: the syntax check
		// fails and everything else is moot.
		doctorOutput := buildDoctorFailure(path, err)
		return renderDoctor(r, doctorOutput)
	}

	doctorOutput := buildDoctorOutput(path, f, rcfile.Verify(f))
	return renderDoctor(r, doctorOutput)
}

func renderDoctor(r *output.Renderer, out *DoctorOutput) error {
	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(out)
	case output.ModeMarkdown:
		return renderDoctorMarkdown(r, out)
	default:
		return renderDoctorText(r, out)
	}
}

// buildDoctorFailure reports a file that could not be parsed at all.
func buildDoctorFailure(path string, loadErr error) *DoctorOutput {
	checks := []HealthCheck{{
		CheckID:    "syntax",
		Name:       "File parses",
		Group:      "structure",
		Status:     "error",
		IssueCount: 1,
		Details:    []string{loadErr.Error()},
	}}
	return &DoctorOutput{
		Summary:         FileSummary{Path: path, Format: fileFormat(path)},
		HealthChecks:    checks,
		Score:           0,
		Recommendations: []string{getRecommendation("syntax", 1)},
		IssueCount:      1,
	}
}

func buildDoctorOutput(path string, f *rcfile.File, probs []rcfile.Problem) *DoctorOutput {
	summary := buildFileSummary(path, f)

	healthChecks := make([]HealthCheck, 0, len(doctorChecks))
	issueCount := 0
	for _, check := range doctorChecks {
		details := check.Run(f, probs)
		status := "pass"
		if len(details) > 0 {
			status = check.FailStatus
		}
		issueCount += len(details)

		healthChecks = append(healthChecks, HealthCheck{
			CheckID:    check.ID,
			Name:       check.Name,
			Group:      check.Group,
			Status:     status,
			IssueCount: len(details),
			Details:    details,
		})
	}

	// Sort health checks by group, keeping declaration order within one
	sort.SliceStable(healthChecks, func(i, j int) bool {
		return groupIndex(healthChecks[i].Group) < groupIndex(healthChecks[j].Group)
	})

	score := calculateHealthScore(healthChecks, summary.Options)
	recommendations := generateRecommendations(healthChecks)

	return &DoctorOutput{
		Summary:         summary,
		HealthChecks:    healthChecks,
		Score:           score,
		Recommendations: recommendations,
		IssueCount:      issueCount,
	}
}

// groupIndex keeps the report's group order stable.
func groupIndex(group string) int {
	switch group {
	case "structure":
		return 0
	case "options":
		return 1
	case "messages":
		return 2
	default:
		return 3
	}
}

func buildFileSummary(path string, f *rcfile.File) FileSummary {
	summary := FileSummary{
		Path:   path,
		Format: fileFormat(path),
	}

	deprecated := 0
	for _, s := range f.Sections() {
		summary.Sections++
		for _, key := range s.Keys() {
			summary.Options++
			if opt, ok := options.Lookup(key); ok && opt.Deprecated {
				deprecated++
			}
		}
	}
	summary.Deprecated = deprecated

	settings, _ := rcfile.ResolveSettings(f)
	summary.Disabled = len(settings.Disable)

	return summary
}

// checkProblemCodes adapts well-formedness findings into a check: the
// details are the matching problems' messages.
func checkProblemCodes(codes ...string) func(*rcfile.File, []rcfile.Problem) []string {
	return func(_ *rcfile.File, probs []rcfile.Problem) []string {
		var details []string
		for _, p := range probs {
			for _, code := range codes {
				if p.Code == code {
					details = append(details, problemDetail(p))
				}
			}
		}
		return details
	}
}

func problemDetail(p rcfile.Problem) string {
	if p.Line > 0 {
		return fmt.Sprintf("line %d: %s", p.Line, p.Message)
	}
	return p.Message
}

// checkDuplicates covers repeats within a section (from verification)
// and the same option appearing in several sections, where only one
// occurrence takes effect.
func checkDuplicates(f *rcfile.File, probs []rcfile.Problem) []string {
	details := checkProblemCodes(rcfile.ProblemDuplicateSection, rcfile.ProblemDuplicateKey)(f, probs)

	firstSeen := make(map[string]string) // lowercased key -> section name
	for _, s := range f.Sections() {
		for _, key := range s.Keys() {
			lower := strings.ToLower(key)
			if prev, ok := firstSeen[lower]; ok {
				details = append(details, fmt.Sprintf("option %q appears in both %s and %s; only one value takes effect",
					key, sectionLabel(prev), sectionLabel(s.Name())))
				continue
			}
			firstSeen[lower] = s.Name()
		}
	}
	return details
}

func checkKnownOptions(f *rcfile.File, _ []rcfile.Problem) []string {
	var details []string
	for _, s := range f.Sections() {
		for _, key := range s.Keys() {
			if _, ok := options.Lookup(key); !ok {
				e, _ := s.Entry(key)
				details = append(details, fmt.Sprintf("line %d: unknown option %q in %s", e.Line, key, sectionLabel(s.Name())))
			}
		}
	}
	return details
}

func checkOptionPlacement(f *rcfile.File, _ []rcfile.Problem) []string {
	var details []string
	for _, s := range f.Sections() {
		for _, key := range s.Keys() {
			opt, ok := options.Lookup(key)
			if !ok || strings.EqualFold(opt.Section, s.Name()) {
				continue
			}
			details = append(details, fmt.Sprintf("option %q belongs in [%s], found in [%s]", key, opt.Section, sectionLabel(s.Name())))
		}
	}
	return details
}

func checkDeprecatedOptions(f *rcfile.File, _ []rcfile.Problem) []string {
	var details []string
	for _, s := range f.Sections() {
		for _, key := range s.Keys() {
			opt, ok := options.Lookup(key)
			if !ok || !opt.Deprecated {
				continue
			}
			if opt.ReplacedBy != "" {
				details = append(details, fmt.Sprintf("option %q is deprecated, use %q", key, opt.ReplacedBy))
			} else {
				details = append(details, fmt.Sprintf("option %q is deprecated", key))
			}
		}
	}
	return details
}

// checkOptionValues validates each known option's value against its
// declared kind. Regular expressions compile with Go's RE2 engine,
// which accepts less than Python's re module, so failures read as
// "may not be valid" rather than certainties.
func checkOptionValues(f *rcfile.File, _ []rcfile.Problem) []string {
	var details []string
	for _, s := range f.Sections() {
		for _, key := range s.Keys() {
			opt, ok := options.Lookup(key)
			if !ok {
				continue
			}
			e, _ := s.Entry(key)
			value := strings.TrimSpace(e.Value)

			switch opt.Kind {
			case options.KindInt:
				if _, err := strconv.Atoi(value); err != nil {
					details = append(details, fmt.Sprintf("line %d: option %q expects an integer, got %q", e.Line, key, value))
				}
			case options.KindBool:
				if !validBoolValue(value) {
					details = append(details, fmt.Sprintf("line %d: option %q expects a boolean (yes/no), got %q", e.Line, key, value))
				}
			case options.KindChoice:
				if !validChoice(opt, value) {
					details = append(details, fmt.Sprintf("line %d: option %q expects one of %s, got %q", e.Line, key, strings.Join(quoted(opt.Choices), ", "), value))
				}
			case options.KindRegexp:
				if _, err := regexp.Compile(value); err != nil {
					details = append(details, fmt.Sprintf("line %d: option %q may not be a valid regular expression: %v", e.Line, key, err))
				}
			case options.KindRegexpList:
				for _, tok := range rcfile.SplitList(e.Value) {
					if _, err := regexp.Compile(tok); err != nil {
						details = append(details, fmt.Sprintf("line %d: option %q entry %q may not be a valid regular expression: %v", e.Line, key, tok, err))
					}
				}
			}
		}
	}
	return details
}

// validBoolValue accepts the boolean spellings an INI reader does.
func validBoolValue(value string) bool {
	switch strings.ToLower(value) {
	case "1", "0", "yes", "no", "true", "false", "on", "off":
		return true
	}
	return false
}

func validChoice(opt options.Option, value string) bool {
	for _, c := range opt.Choices {
		if strings.EqualFold(c, value) {
			return true
		}
	}
	return false
}

func quoted(items []string) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = strconv.Quote(item)
	}
	return out
}

// messageListEntries yields the effective entry of every symbol-list
// option (disable, enable) in the file.
func messageListEntries(f *rcfile.File) []rcfile.Entry {
	var entries []rcfile.Entry
	for _, s := range f.Sections() {
		for _, key := range s.Keys() {
			opt, ok := options.Lookup(key)
			if !ok || opt.Kind != options.KindSymbolList {
				continue
			}
			if e, found := s.Entry(key); found {
				entries = append(entries, e)
			}
		}
	}
	return entries
}

func checkKnownMessages(f *rcfile.File, _ []rcfile.Problem) []string {
	var details []string
	for _, e := range messageListEntries(f) {
		for _, tok := range rcfile.SplitList(e.Value) {
			if messages.IsWildcard(tok) {
				continue
			}
			if _, ok := messages.Resolve(tok); !ok {
				details = append(details, fmt.Sprintf("line %d: unknown message %q in %q", e.Line, tok, e.Key))
			}
		}
	}
	return details
}

func checkMessageLifecycle(f *rcfile.File, _ []rcfile.Problem) []string {
	var details []string
	for _, e := range messageListEntries(f) {
		for _, tok := range rcfile.SplitList(e.Value) {
			msg, ok := messages.Resolve(tok)
			if !ok {
				continue
			}
			if msg.Removed() {
				details = append(details, fmt.Sprintf("message %q (%s) was removed in release %s", msg.Symbol, msg.ID, msg.RemovedIn))
				continue
			}
			if msg.RenamedTo != "" {
				details = append(details, fmt.Sprintf("message %q (%s) was renamed to %q", msg.Symbol, msg.ID, msg.RenamedTo))
			}
		}
	}
	return details
}

func checkDuplicateMessages(f *rcfile.File, _ []rcfile.Problem) []string {
	var details []string
	for _, e := range messageListEntries(f) {
		seen := make(map[string]string) // resolved id or lowercased token -> first spelling
		for _, tok := range rcfile.SplitList(e.Value) {
			id := strings.ToLower(tok)
			if msg, ok := messages.Resolve(tok); ok {
				id = msg.ID
			}
			if first, dup := seen[id]; dup {
				if strings.EqualFold(first, tok) {
					details = append(details, fmt.Sprintf("line %d: %q listed more than once in %q", e.Line, tok, e.Key))
				} else {
					details = append(details, fmt.Sprintf("line %d: %q and %q refer to the same message in %q", e.Line, first, tok, e.Key))
				}
				continue
			}
			seen[id] = tok
		}
	}
	return details
}

// calculateHealthScore computes a health score from 0-100.
// The scoring weights:
// - Each finding reduces points
// - Error-status checks count double
// - Larger configurations absorb individual findings better
func calculateHealthScore(checks []HealthCheck, optionCount int) int {
	if len(checks) == 0 {
		return 100
	}

	// Base score starts at 100
	score := 100.0

	// Calculate penalty per finding
	// Larger files make each individual finding less significant
	basePenalty := 5.0
	if optionCount > 10 {
		basePenalty = 3.0
	}
	if optionCount > 25 {
		basePenalty = 2.0
	}
	if optionCount > 50 {
		basePenalty = 1.0
	}

	for _, check := range checks {
		switch check.Status {
		case "error":
			score -= float64(check.IssueCount) * basePenalty * 2 // Errors count double
		case "warn":
			score -= float64(check.IssueCount) * basePenalty
		}
	}

	// Clamp to 0-100
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return int(score)
}

// generateRecommendations creates actionable recommendations based on findings.
func generateRecommendations(checks []HealthCheck) []string {
	var recommendations []string
	seen := make(map[string]bool)

	for _, check := range checks {
		if check.IssueCount == 0 {
			continue
		}

		rec := getRecommendation(check.CheckID, check.IssueCount)
		if rec != "" && !seen[rec] {
			recommendations = append(recommendations, rec)
			seen[rec] = true
		}
	}

	// Limit to top 5 recommendations
	if len(recommendations) > 5 {
		recommendations = recommendations[:5]
	}

	return recommendations
}

// getRecommendation returns a recommendation for a specific check.
func getRecommendation(checkID string, _ int) string {
	switch checkID {
	case "syntax":
		return "Fix the parse error first; nothing after it is read"
	case "duplicate-options":
		return "Remove duplicated sections and options so every setting has one source"
	case "section-layout":
		return "Move stray entries under a section header"
	case "list-values":
		return "Clean up comma-separated lists: drop empty entries and stray whitespace"
	case "known-options":
		return "Remove or rename unknown options; recent checker releases reject them"
	case "option-placement":
		return "Move options to their documented sections to keep the file predictable"
	case "deprecated-options":
		return "Switch deprecated options to their replacements"
	case "option-values":
		return "Fix option values that do not match their declared type"
	case "known-messages":
		return "Remove unknown message names from disable and enable lists"
	case "message-lifecycle":
		return "Update renamed messages and drop removed ones"
	case "duplicate-messages":
		return "Deduplicate disable and enable lists"
	default:
		return ""
	}
}

func renderDoctorText(r *output.Renderer, out *DoctorOutput) error {
	styles := r.Styles()

	// Header
	r.Println("")
	r.Println(styles.Header1.Render("Configuration Health Report"))
	r.Println(styles.Muted.Render(strings.Repeat("=", 55)))
	r.Println("")

	// File Summary
	r.Println(styles.Header2.Render("File Summary"))
	r.Printf("   %s (%s)\n", out.Summary.Path, out.Summary.Format)
	r.Printf("   Sections: %d | Options: %d | Suppressed messages: %d\n",
		out.Summary.Sections, out.Summary.Options, out.Summary.Disabled)
	r.Println("")

	// Health Checks grouped by category
	r.Println(styles.Header2.Render("Health Checks"))
	r.Println("")

	currentGroup := ""
	titleCaser := cases.Title(language.English)
	for _, check := range out.HealthChecks {
		if check.Group != currentGroup {
			currentGroup = check.Group
			r.Println(styles.Bold.Render("   " + titleCaser.String(currentGroup)))
			r.Println(styles.Muted.Render("   " + strings.Repeat("-", 40)))
		}

		icon := styles.StatusSuccess.String()
		switch check.Status {
		case "warn":
			icon = styles.Warning.Render("!")
		case "error":
			icon = styles.StatusFailed.String()
		}

		status := fmt.Sprintf("%s %s", icon, check.Name)
		if check.IssueCount > 0 {
			status += fmt.Sprintf(" (%d issues)", check.IssueCount)
		}
		r.Println("   " + status)

		// Show first 3 details for issues
		for i, detail := range check.Details {
			if i >= 3 {
				r.Println(styles.Muted.Render(fmt.Sprintf("       ... and %d more", len(check.Details)-3)))
				break
			}
			r.Println(styles.Muted.Render("       - " + detail))
		}
	}
	r.Println("")

	// Health Score
	r.Println(styles.Muted.Render(strings.Repeat("=", 55)))
	scoreStyle := styles.Success
	if out.Score < 70 {
		scoreStyle = styles.Warning
	}
	if out.Score < 50 {
		scoreStyle = styles.Error
	}
	r.Printf("   Health Score: %s\n", scoreStyle.Render(fmt.Sprintf("%d/100", out.Score)))
	r.Println("")

	// Recommendations
	if len(out.Recommendations) > 0 {
		r.Println(styles.Header2.Render("Recommendations"))
		for i, rec := range out.Recommendations {
			r.Printf("   %d. %s\n", i+1, rec)
		}
		r.Println("")
	}

	return nil
}

func renderDoctorMarkdown(r *output.Renderer, out *DoctorOutput) error {
	r.Println("# Configuration Health Report")
	r.Println("")

	// File Summary
	r.Println("## File Summary")
	r.Println("")
	r.Printf("- **File**: %s (%s)\n", out.Summary.Path, out.Summary.Format)
	r.Printf("- **Sections**: %d\n", out.Summary.Sections)
	r.Printf("- **Options**: %d\n", out.Summary.Options)
	r.Printf("- **Suppressed messages**: %d\n", out.Summary.Disabled)
	r.Printf("- **Deprecated options**: %d\n", out.Summary.Deprecated)
	r.Println("")

	// Health Checks
	r.Println("## Health Checks")
	r.Println("")

	currentGroup := ""
	titleCaser := cases.Title(language.English)
	for _, check := range out.HealthChecks {
		if check.Group != currentGroup {
			currentGroup = check.Group
			r.Println("### " + titleCaser.String(currentGroup))
			r.Println("")
		}

		status := "PASS"
		switch check.Status {
		case "warn":
			status = "WARN"
		case "error":
			status = "ERROR"
		}

		r.Printf("- **[%s]** %s", status, check.Name)
		if check.IssueCount > 0 {
			r.Printf(" (%d issues)", check.IssueCount)
		}
		r.Println("")

		for _, detail := range check.Details {
			r.Printf("  - %s\n", detail)
		}
	}
	r.Println("")

	// Health Score
	r.Println("## Health Score")
	r.Println("")
	r.Printf("**%d/100**\n", out.Score)
	r.Println("")

	// Recommendations
	if len(out.Recommendations) > 0 {
		r.Println("## Recommendations")
		r.Println("")
		for i, rec := range out.Recommendations {
			r.Printf("%d. %s\n", i+1, rec)
		}
		r.Println("")
	}

	return nil
}
