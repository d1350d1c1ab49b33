package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lintrc/lintrc/internal/cli/config"
	"github.com/lintrc/lintrc/internal/cli/testutil"
	"github.com/lintrc/lintrc/pkg/rcfile"
)

// runConvertCommand executes a fresh convert command and returns its
// combined output.
func runConvertCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	config.ResetConfig()

	cmd := NewConvertCommand()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestConvertINIToTOML(t *testing.T) {
	dir := testutil.SetupTestProject(t)

	out, err := runConvertCommand(t, filepath.Join(dir, ".pylintrc"))
	require.NoError(t, err)

	assert.Contains(t, out, "[tool.pylint.format]")
	assert.Contains(t, out, "max-line-length = 88")
	assert.Contains(t, out, "[tool.pylint.messages_control]")
	assert.Contains(t, out, `"bad-continuation"`)
}

func TestConvertTOMLToINI(t *testing.T) {
	dir := testutil.SetupPyprojectProject(t)

	out, err := runConvertCommand(t, filepath.Join(dir, "pyproject.toml"))
	require.NoError(t, err)

	assert.Contains(t, out, "[MASTER]")
	assert.Contains(t, out, "extension-pkg-whitelist=numpy")
	assert.Contains(t, out, "disable=bad-continuation,no-member")
	assert.Contains(t, out, "max-line-length=88")
}

func TestConvertRoundTripPreservesSettings(t *testing.T) {
	dir := testutil.SetupTestProject(t)
	src := filepath.Join(dir, ".pylintrc")
	asTOML := filepath.Join(dir, "pyproject.toml")
	back := filepath.Join(dir, "roundtrip.pylintrc")

	_, err := runConvertCommand(t, src, "--to", "toml", "--out", asTOML)
	require.NoError(t, err)
	_, err = runConvertCommand(t, asTOML, "--to", "ini", "--out", back)
	require.NoError(t, err)

	fa, err := rcfile.Load(src)
	require.NoError(t, err)
	fb, err := rcfile.Load(back)
	require.NoError(t, err)

	assert.True(t, diffFiles(src, back, fa, fb).Equal, "settings survive an INI -> TOML -> INI round trip")
}

func TestConvertOutWritesFile(t *testing.T) {
	dir := testutil.SetupTestProject(t)
	outPath := filepath.Join(dir, "out.toml")

	stdout, err := runConvertCommand(t, filepath.Join(dir, ".pylintrc"), "--out", outPath)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Wrote")

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[tool.pylint.")
}

func TestConvertInvalidTarget(t *testing.T) {
	dir := testutil.SetupTestProject(t)

	_, err := runConvertCommand(t, filepath.Join(dir, ".pylintrc"), "--to", "yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --to format")
}

func TestConvertMissingFile(t *testing.T) {
	_, err := runConvertCommand(t, filepath.Join(t.TempDir(), "nope.pylintrc"))
	require.Error(t, err)
}
