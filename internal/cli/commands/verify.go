package commands

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
	"github.com/lintrc/lintrc/internal/cli/config"
	"github.com/lintrc/lintrc/internal/cli/output"
	"github.com/lintrc/lintrc/pkg/rcfile"
	"github.com/lintrc/lintrc/pkg/rcfile/pyproject"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// verifyWorkers caps how many files verify concurrently.
const verifyWorkers = 4

// VerifyOptions holds options for the verify command.
type VerifyOptions struct {
	Paths  []string // Files or directories to verify
	FailOn string   // Minimum severity that fails the run
	Watch  bool     // Re-verify on file change
	Format string   // Output format override
}

// NewVerifyCommand creates the verify command.
func NewVerifyCommand() *cobra.Command {
	opts := &VerifyOptions{}
	cmd := &cobra.Command{
		Use:   "verify [path...]",
		Short: "Check configuration files for syntactic problems",
		Long: `Verify that pylint configuration files are well-formed.

Checks each file for parse errors, duplicated sections and options,
entries outside any section, and malformed comma-separated lists.
Directories are walked for recognized configuration names (pylintrc,
.pylintrc, pyproject.toml with a [tool.pylint] table); with no
arguments the project's configuration is located automatically.

The command exits non-zero when problems at or above the --fail-on
severity exist, so it can gate CI.

Output adapts to environment:
  - Terminal: Styled output with colors
  - Piped/Scripted: Markdown format
  - JSON: Machine-readable format`,
		Example: `  # Verify the project's configuration
  lintrc verify

  # Verify several files
  lintrc verify .pylintrc configs/pyproject.toml

  # Verify every configuration under a directory
  lintrc verify ./repos

  # Fail only on parse and duplication errors
  lintrc verify --fail-on error

  # Re-verify whenever the file changes
  lintrc verify --watch

  # Machine-readable report
  lintrc verify --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Paths = args
			return runVerify(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.FailOn, "fail-on", "", "Minimum severity that fails the run: error, warning, hint")
	cmd.Flags().BoolVar(&opts.Watch, "watch", false, "Re-verify when watched files change")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, markdown, json")

	return cmd
}

// fileResult holds verification findings for a single file.
type fileResult struct {
	Path     string
	Problems []rcfile.Problem
}

func runVerify(cmd *cobra.Command, opts *VerifyOptions) error {
	cmdCtx := NewCommandContext(cmd)
	r := formatRenderer(cmd, cmdCtx, opts.Format)

	failOn := opts.FailOn
	if failOn == "" {
		failOn = cmdCtx.Cfg.FailOn
	}
	threshold, ok := rcfile.ParseSeverity(failOn)
	if !ok {
		return fmt.Errorf("invalid --fail-on severity %q (valid: error, warning, hint)", failOn)
	}

	targets, err := collectTargets(cmdCtx, opts.Paths)
	if err != nil {
		return err
	}
	cmdCtx.Logger.Debug("verifying configuration files", "count", len(targets))

	if opts.Watch {
		return runVerifyWatch(cmd, cmdCtx, r, targets, threshold)
	}

	var sp *output.Spinner
	if r.EffectiveMode() == output.ModeText {
		sp = r.NewSpinner(fmt.Sprintf("Verifying %d file(s)", len(targets)))
	}

	results := verifyTargets(targets)
	failures := countAtOrAbove(results, threshold)

	if sp != nil {
		if failures > 0 {
			sp.Fail(fmt.Sprintf("Verified %d file(s)", len(targets)))
		} else {
			sp.Success(fmt.Sprintf("Verified %d file(s)", len(targets)))
		}
	}

	renderVerifyResults(r, results)

	if failures > 0 {
		return fmt.Errorf("verification failed: %d problem(s) at or above %s severity", failures, threshold)
	}
	return nil
}

// collectTargets expands command arguments into the list of files to
// verify. Directories are walked; pyproject.toml files found by walking
// participate only when they carry a pylint table.
func collectTargets(cmdCtx *CommandContext, paths []string) ([]string, error) {
	if len(paths) == 0 {
		path, err := resolveRCPath(cmdCtx, "")
		if err != nil {
			return nil, err
		}
		return []string{path}, nil
	}

	seen := make(map[string]bool)
	var targets []string
	add := func(p string) {
		clean := filepath.Clean(p)
		if !seen[clean] {
			seen[clean] = true
			targets = append(targets, clean)
		}
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("cannot access %s: %w", path, err)
		}
		if !info.IsDir() {
			add(path)
			continue
		}

		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				name := d.Name()
				if p != path && (strings.HasPrefix(name, ".") || name == "__pycache__" || name == "node_modules") {
					return filepath.SkipDir
				}
				return nil
			}
			switch d.Name() {
			case "pylintrc", ".pylintrc":
				add(p)
			case pyproject.FileName:
				// Unrelated pyproject files are not configuration.
				if _, err := pyproject.Load(p); err == nil {
					add(p)
				}
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", path, err)
		}
	}

	if len(targets) == 0 {
		return nil, fmt.Errorf("no pylint configuration files found under the given paths")
	}
	sort.Strings(targets)
	return targets, nil
}

// verifyTargets verifies files concurrently, capped at verifyWorkers.
func verifyTargets(targets []string) []fileResult {
	results := make([]fileResult, len(targets))

	var g errgroup.Group
	g.SetLimit(verifyWorkers)
	for i, path := range targets {
		g.Go(func() error {
			results[i] = verifyOne(path)
			return nil
		})
	}
	// Workers never return errors; findings land in results.
	_ = g.Wait()

	return results
}

// verifyOne verifies a single file in whichever format it carries.
func verifyOne(path string) fileResult {
	if config.IsPyproject(path) {
		f, err := pyproject.Load(path)
		if err != nil {
			msg := err.Error()
			if errors.Is(err, pyproject.ErrNoPylintTable) {
				msg = "pyproject.toml carries no [tool.pylint] table"
			}
			return fileResult{Path: path, Problems: []rcfile.Problem{{
				Code:     rcfile.ProblemSyntax,
				Severity: rcfile.SeverityError,
				Message:  msg,
			}}}
		}
		return fileResult{Path: path, Problems: rcfile.Verify(f)}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fileResult{Path: path, Problems: []rcfile.Problem{{
			Code:     rcfile.ProblemSyntax,
			Severity: rcfile.SeverityError,
			Message:  err.Error(),
		}}}
	}
	return fileResult{Path: path, Problems: rcfile.VerifyBytes(data, path)}
}

// countAtOrAbove counts problems at or above the severity threshold.
func countAtOrAbove(results []fileResult, threshold rcfile.Severity) int {
	count := 0
	for _, res := range results {
		for _, p := range res.Problems {
			if p.Severity <= threshold {
				count++
			}
		}
	}
	return count
}

// buildVerifyOutput assembles the JSON report with a fresh report id.
func buildVerifyOutput(results []fileResult) output.VerifyOutput {
	out := output.VerifyOutput{ReportID: uuid.New().String()}
	for _, res := range results {
		fr := output.VerifyFileResult{Path: res.Path, Format: fileFormat(res.Path)}
		for _, p := range res.Problems {
			fr.Problems = append(fr.Problems, verifyProblemJSON(p))
		}
		out.Files = append(out.Files, fr)

		out.Summary.FilesChecked++
		if len(res.Problems) == 0 {
			out.Summary.FilesClean++
		}
		for _, p := range res.Problems {
			switch p.Severity {
			case rcfile.SeverityError:
				out.Summary.Errors++
			case rcfile.SeverityWarning:
				out.Summary.Warnings++
			case rcfile.SeverityHint:
				out.Summary.Hints++
			}
		}
	}
	return out
}

// renderVerifyResults renders findings in the renderer's mode.
func renderVerifyResults(r *output.Renderer, results []fileResult) {
	out := buildVerifyOutput(results)

	if r.EffectiveMode() == output.ModeJSON {
		_ = r.JSON(out)
		return
	}

	markdown := r.EffectiveMode() == output.ModeMarkdown
	styles := r.Styles()

	for _, res := range results {
		if len(res.Problems) == 0 {
			if markdown {
				r.Printf("- **%s**: clean\n", res.Path)
			} else {
				r.StatusLine(res.Path, "success", "clean")
			}
			continue
		}

		if markdown {
			r.Println("")
			r.Println(output.FormatHeader(2, res.Path))
			for _, p := range res.Problems {
				r.Printf("- line %s `%s` (%s): %s\n", problemLoc(p), p.Code, p.Severity, p.Message)
			}
		} else {
			r.Println(styles.FilePath.Render(res.Path))
			for _, p := range res.Problems {
				r.Printf("  %s  %s  %s  %s\n",
					styles.Muted.Render(fmt.Sprintf("%-5s", problemLoc(p))),
					problemSeverityStyle(r, p.Severity),
					styles.Bold.Render(p.Code),
					p.Message,
				)
			}
			r.Println("")
		}
	}

	// Summary line
	s := out.Summary
	total := s.Errors + s.Warnings + s.Hints
	if total == 0 {
		r.Success(fmt.Sprintf("%d file(s) verified, no problems found", s.FilesChecked))
		return
	}

	summaryParts := []string{}
	if s.Errors > 0 {
		summaryParts = append(summaryParts, fmt.Sprintf("%d errors", s.Errors))
	}
	if s.Warnings > 0 {
		summaryParts = append(summaryParts, fmt.Sprintf("%d warnings", s.Warnings))
	}
	if s.Hints > 0 {
		summaryParts = append(summaryParts, fmt.Sprintf("%d hints", s.Hints))
	}
	r.Printf("Summary: %d problems (%s) in %d of %d files\n",
		total, strings.Join(summaryParts, ", "), s.FilesChecked-s.FilesClean, s.FilesChecked)
}

// problemLoc formats a problem's line for display.
func problemLoc(p rcfile.Problem) string {
	if p.Line == 0 {
		return "-"
	}
	return fmt.Sprintf("%d", p.Line)
}

// problemSeverityStyle returns the styled severity label.
func problemSeverityStyle(r *output.Renderer, sev rcfile.Severity) string {
	switch sev {
	case rcfile.SeverityError:
		return r.Styles().Error.Render("error  ")
	case rcfile.SeverityWarning:
		return r.Styles().Warning.Render("warning")
	case rcfile.SeverityInfo:
		return r.Styles().Info.Render("info   ")
	case rcfile.SeverityHint:
		return r.Styles().Muted.Render("hint   ")
	default:
		return r.Styles().Muted.Render("unknown")
	}
}

// runVerifyWatch re-verifies targets whenever one of them changes.
// Watch mode reports problems but never exits non-zero for them.
func runVerifyWatch(cmd *cobra.Command, cmdCtx *CommandContext, r *output.Renderer, targets []string, threshold rcfile.Severity) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case <-sigChan:
			cancel()
		case <-ctx.Done():
		}
	}()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Editors replace files on save, so watch the containing directories
	// and filter events down to the target paths.
	targetSet := make(map[string]bool)
	watched := make(map[string]bool)
	for _, t := range targets {
		abs, err := filepath.Abs(t)
		if err != nil {
			continue
		}
		targetSet[abs] = true
		dir := filepath.Dir(abs)
		if !watched[dir] {
			if err := watcher.Add(dir); err != nil {
				return fmt.Errorf("failed to watch %s: %w", dir, err)
			}
			watched[dir] = true
		}
	}

	runAll := func() {
		results := verifyTargets(targets)
		renderVerifyResults(r, results)
		if n := countAtOrAbove(results, threshold); n > 0 {
			r.Warning(fmt.Sprintf("%d problem(s) at or above %s severity", n, threshold))
		}
	}
	runAll()
	r.Muted("Watching for changes. Press Ctrl+C to stop.")

	var debounceTimer *time.Timer
	defer func() {
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil || !targetSet[abs] {
				continue
			}

			// Debounce bursts of events from a single save
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(100*time.Millisecond, func() {
				r.Println("")
				r.Muted(fmt.Sprintf("Change detected: %s", filepath.Base(event.Name)))
				runAll()
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			cmdCtx.Logger.Warn("watch error", "error", err)
		}
	}
}
