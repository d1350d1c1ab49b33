package commands

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/lintrc/lintrc/internal/cli/config"
	"github.com/lintrc/lintrc/internal/cli/output"
	"github.com/lintrc/lintrc/internal/cli/testutil"
	"github.com/lintrc/lintrc/pkg/rcfile"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func testCommandContext(t *testing.T) *CommandContext {
	t.Helper()
	return &CommandContext{
		Cfg:      &config.Config{Output: config.DefaultOutput, FailOn: config.DefaultFailOn},
		Logger:   testutil.NewTestLogger(t),
		Renderer: testutil.NewTestRendererMarkdown().Renderer,
	}
}

func TestCollectTargets_WalksDirectories(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, ".pylintrc"), "[FORMAT]\nmax-line-length=88\n")
	writeFile(t, filepath.Join(tmpDir, "svc", "pylintrc"), "[DESIGN]\nmax-args=10\n")
	writeFile(t, filepath.Join(tmpDir, "svc", "pyproject.toml"), "[tool.pylint.format]\nmax-line-length = 88\n")
	// A pyproject without a pylint table is not configuration.
	writeFile(t, filepath.Join(tmpDir, "lib", "pyproject.toml"), "[project]\nname = \"lib\"\n")
	// Hidden and cache directories are skipped.
	writeFile(t, filepath.Join(tmpDir, ".git", "pylintrc"), "[FORMAT]\n")
	writeFile(t, filepath.Join(tmpDir, "__pycache__", "pylintrc"), "[FORMAT]\n")

	targets, err := collectTargets(testCommandContext(t), []string{tmpDir})
	require.NoError(t, err)

	require.Len(t, targets, 3)
	assert.Contains(t, targets, filepath.Join(tmpDir, ".pylintrc"))
	assert.Contains(t, targets, filepath.Join(tmpDir, "svc", "pylintrc"))
	assert.Contains(t, targets, filepath.Join(tmpDir, "svc", "pyproject.toml"))
}

func TestCollectTargets_DeduplicatesExplicitPaths(t *testing.T) {
	tmpDir := t.TempDir()
	rcPath := filepath.Join(tmpDir, ".pylintrc")
	writeFile(t, rcPath, "[FORMAT]\nmax-line-length=88\n")

	targets, err := collectTargets(testCommandContext(t), []string{rcPath, rcPath})
	require.NoError(t, err)
	assert.Len(t, targets, 1)
}

func TestCollectTargets_MissingPath(t *testing.T) {
	_, err := collectTargets(testCommandContext(t), []string{"/no/such/path"})
	assert.Error(t, err)
}

func TestCollectTargets_EmptyDirectory(t *testing.T) {
	_, err := collectTargets(testCommandContext(t), []string{t.TempDir()})
	assert.ErrorContains(t, err, "no pylint configuration files found")
}

func TestVerifyOne_CleanFile(t *testing.T) {
	tmpDir := t.TempDir()
	rcPath := filepath.Join(tmpDir, ".pylintrc")
	writeFile(t, rcPath, "[FORMAT]\nmax-line-length=88\n")

	res := verifyOne(rcPath)
	assert.Empty(t, res.Problems)
}

func TestVerifyOne_DuplicateKey(t *testing.T) {
	tmpDir := t.TempDir()
	rcPath := filepath.Join(tmpDir, ".pylintrc")
	writeFile(t, rcPath, "[FORMAT]\nmax-line-length=88\nmax-line-length=100\n")

	res := verifyOne(rcPath)
	require.NotEmpty(t, res.Problems)

	codes := make([]string, 0, len(res.Problems))
	for _, p := range res.Problems {
		codes = append(codes, p.Code)
	}
	assert.Contains(t, codes, rcfile.ProblemDuplicateKey)
}

func TestVerifyOne_BrokenPyproject(t *testing.T) {
	tmpDir := t.TempDir()
	pyPath := filepath.Join(tmpDir, "pyproject.toml")
	writeFile(t, pyPath, "[tool.pylint.format\nmax-line-length = 88\n")

	res := verifyOne(pyPath)
	require.NotEmpty(t, res.Problems)
	assert.Equal(t, rcfile.ProblemSyntax, res.Problems[0].Code)
	assert.Equal(t, rcfile.SeverityError, res.Problems[0].Severity)
}

func TestVerifyOne_PyprojectWithoutTable(t *testing.T) {
	tmpDir := t.TempDir()
	pyPath := filepath.Join(tmpDir, "pyproject.toml")
	writeFile(t, pyPath, "[project]\nname = \"lib\"\n")

	res := verifyOne(pyPath)
	require.NotEmpty(t, res.Problems)
	assert.Equal(t, rcfile.ProblemSyntax, res.Problems[0].Code)
	assert.Contains(t, res.Problems[0].Message, "no [tool.pylint] table")
}

func TestVerifyOne_MissingFile(t *testing.T) {
	res := verifyOne(filepath.Join(t.TempDir(), "absent.pylintrc"))
	require.NotEmpty(t, res.Problems)
	assert.Equal(t, rcfile.ProblemSyntax, res.Problems[0].Code)
}

func TestVerifyTargets_Concurrent(t *testing.T) {
	defer goleak.VerifyNone(t)

	tmpDir := t.TempDir()
	var targets []string
	for i := 0; i < 12; i++ {
		path := filepath.Join(tmpDir, "cfg", string(rune('a'+i)), "pylintrc")
		writeFile(t, path, "[FORMAT]\nmax-line-length=88\n")
		targets = append(targets, path)
	}
	// One broken file among the clean ones.
	broken := filepath.Join(tmpDir, "cfg", "broken", "pylintrc")
	writeFile(t, broken, "max-line-length=88\n")
	targets = append(targets, broken)

	results := verifyTargets(targets)
	require.Len(t, results, len(targets))

	// Results stay aligned with their input paths.
	problemCount := 0
	for i, res := range results {
		assert.Equal(t, targets[i], res.Path)
		problemCount += len(res.Problems)
	}
	assert.Greater(t, problemCount, 0, "the orphan entry should be reported")
}

func TestCountAtOrAbove(t *testing.T) {
	results := []fileResult{
		{Path: "a", Problems: []rcfile.Problem{
			{Severity: rcfile.SeverityError},
			{Severity: rcfile.SeverityWarning},
		}},
		{Path: "b", Problems: []rcfile.Problem{
			{Severity: rcfile.SeverityHint},
		}},
	}

	tests := []struct {
		name      string
		threshold rcfile.Severity
		want      int
	}{
		{"error only", rcfile.SeverityError, 1},
		{"warning and up", rcfile.SeverityWarning, 2},
		{"hint and up", rcfile.SeverityHint, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, countAtOrAbove(results, tt.threshold))
		})
	}
}

func TestBuildVerifyOutput(t *testing.T) {
	results := []fileResult{
		{Path: "a.pylintrc", Problems: nil},
		{Path: "b.pylintrc", Problems: []rcfile.Problem{
			{Code: rcfile.ProblemDuplicateKey, Severity: rcfile.SeverityError, Message: "dup", Line: 3},
			{Code: rcfile.ProblemEmptyToken, Severity: rcfile.SeverityWarning, Message: "empty", Line: 5},
		}},
	}

	out := buildVerifyOutput(results)

	assert.NotEmpty(t, out.ReportID)
	assert.Equal(t, 2, out.Summary.FilesChecked)
	assert.Equal(t, 1, out.Summary.FilesClean)
	assert.Equal(t, 1, out.Summary.Errors)
	assert.Equal(t, 1, out.Summary.Warnings)
	assert.Equal(t, 0, out.Summary.Hints)
	require.Len(t, out.Files, 2)
	assert.Equal(t, "ini", out.Files[0].Format)
}

func TestRenderVerifyResults_Markdown(t *testing.T) {
	tr := testutil.NewTestRendererMarkdown()
	results := []fileResult{
		{Path: "clean.pylintrc"},
		{Path: "dirty.pylintrc", Problems: []rcfile.Problem{
			{Code: rcfile.ProblemDuplicateKey, Severity: rcfile.SeverityError, Message: "duplicate option", Line: 4},
		}},
	}

	renderVerifyResults(tr.Renderer, results)

	rendered := tr.Output()
	testutil.AssertNoANSI(t, rendered)
	assert.Contains(t, rendered, "**clean.pylintrc**: clean")
	assert.Contains(t, rendered, "duplicate-key")
	assert.Contains(t, rendered, "Summary: 1 problems (1 errors) in 1 of 2 files")
}

func TestRenderVerifyResults_JSON(t *testing.T) {
	tr := testutil.NewTestRendererJSON()
	results := []fileResult{
		{Path: "clean.pylintrc"},
	}

	renderVerifyResults(tr.Renderer, results)

	var out output.VerifyOutput
	require.NoError(t, json.Unmarshal(tr.Out.Bytes(), &out))
	assert.Equal(t, 1, out.Summary.FilesChecked)
	assert.Equal(t, 1, out.Summary.FilesClean)
}

func TestRenderVerifyResults_TextClean(t *testing.T) {
	tr := testutil.NewTestRendererText()
	renderVerifyResults(tr.Renderer, []fileResult{{Path: "clean.pylintrc"}})

	assert.Contains(t, tr.Output(), "no problems found")
}
