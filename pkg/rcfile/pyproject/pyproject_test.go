package pyproject

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lintrc/lintrc/pkg/rcfile"
)

func TestLoad(t *testing.T) {
	f, err := Load(filepath.Join("testdata", "pyproject.toml"))
	require.NoError(t, err)

	names := make([]string, 0, len(f.Sections()))
	for _, sec := range f.Sections() {
		names = append(names, sec.Name())
	}
	assert.Equal(t, []string{"MASTER", "MESSAGES CONTROL", "FORMAT", "TYPECHECK", "DESIGN"}, names)

	master, ok := f.Section("MASTER")
	require.True(t, ok)
	value, _ := master.Get("extension-pkg-whitelist")
	assert.Equal(t, "numpy", value)
	jobs, _ := master.Get("jobs")
	assert.Equal(t, "2", jobs)

	control, ok := f.Section("MESSAGES CONTROL")
	require.True(t, ok)
	disable, _ := control.Get("disable")
	assert.Equal(t, []string{"bad-continuation", "no-member", "not-callable"}, rcfile.SplitList(disable))

	// TOML underscore keys fold to the dashed form.
	typecheck, ok := f.Section("TYPECHECK")
	require.True(t, ok)
	modules, _ := typecheck.Get("ignored-modules")
	assert.Equal(t, "tensorflow,skimage", modules)

	design, ok := f.Section("DESIGN")
	require.True(t, ok)
	maxArgs, _ := design.Get("max-args")
	assert.Equal(t, "10", maxArgs)
}

func TestDecode_TopLevelKeysLandInMaster(t *testing.T) {
	data := []byte(`[tool.pylint]
jobs = 4
persistent = false
`)
	f, err := Decode(data, "pyproject.toml")
	require.NoError(t, err)

	master, ok := f.Section("MASTER")
	require.True(t, ok)
	jobs, _ := master.Get("jobs")
	assert.Equal(t, "4", jobs)

	// Booleans render in ini form.
	persistent, _ := master.Get("persistent")
	assert.Equal(t, "no", persistent)
}

func TestDecode_MainAliasesMaster(t *testing.T) {
	data := []byte(`[tool.pylint.main]
jobs = 4
`)
	f, err := Decode(data, "pyproject.toml")
	require.NoError(t, err)

	_, ok := f.Section("MAIN")
	assert.False(t, ok)
	master, ok := f.Section("MASTER")
	require.True(t, ok)
	assert.True(t, master.Has("jobs"))
}

func TestDecode_NoPylintTable(t *testing.T) {
	data := []byte(`[project]
name = "deepstack"
`)
	_, err := Decode(data, "pyproject.toml")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoPylintTable)
}

func TestDecode_BadTOML(t *testing.T) {
	_, err := Decode([]byte("tool = [unclosed"), "pyproject.toml")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoPylintTable)
}

func TestCanonicalSection(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"master", "MASTER"},
		{"main", "MASTER"},
		{"messages_control", "MESSAGES CONTROL"},
		{"messages control", "MESSAGES CONTROL"},
		{"MESSAGES CONTROL", "MESSAGES CONTROL"},
		{"format", "FORMAT"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CanonicalSection(tt.in), "input %q", tt.in)
	}
}

func TestEncode(t *testing.T) {
	f := rcfile.NewFile("pylintrc")
	master := f.AddSection("MASTER")
	master.Add("extension-pkg-whitelist", "numpy")
	control := f.AddSection("MESSAGES CONTROL")
	control.Add("disable", "no-member,not-callable")
	format := f.AddSection("FORMAT")
	format.Add("max-line-length", "88")
	design := f.AddSection("DESIGN")
	design.Add("min-public-methods", "0")
	master.Add("persistent", "yes")

	out, err := Encode(f)
	require.NoError(t, err)
	text := string(out)

	assert.Contains(t, text, "[tool.pylint.master]")
	assert.Contains(t, text, "[tool.pylint.messages_control]")
	assert.Contains(t, text, `disable = ["no-member", "not-callable"]`)
	assert.Contains(t, text, "max-line-length = 88")
	assert.Contains(t, text, "min-public-methods = 0")
	assert.Contains(t, text, "persistent = true")
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	f := rcfile.NewFile("pylintrc")
	f.AddSection("TYPECHECK").Add("ignored-modules", "tensorflow,skimage")
	f.AddSection("FORMAT").Add("max-line-length", "88")

	encoded, err := Encode(f)
	require.NoError(t, err)

	back, err := Decode(encoded, "pyproject.toml")
	require.NoError(t, err)

	typecheck, ok := back.Section("TYPECHECK")
	require.True(t, ok)
	modules, _ := typecheck.Get("ignored-modules")
	assert.Equal(t, []string{"tensorflow", "skimage"}, rcfile.SplitList(modules))

	format, ok := back.Section("FORMAT")
	require.True(t, ok)
	width, _ := format.Get("max-line-length")
	assert.Equal(t, "88", width)
}

func TestLocate(t *testing.T) {
	dir := t.TempDir()
	_, ok := Locate(dir)
	assert.False(t, ok)

	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte("[tool.pylint]\n"), 0600))

	found, ok := Locate(dir)
	require.True(t, ok)
	assert.Equal(t, path, found)
}
