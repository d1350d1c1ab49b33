package rcfile

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_SectionsInFileOrder(t *testing.T) {
	data := []byte(`[MASTER]
jobs=2

[BASIC]
good-names=i,j
`)
	f, err := Parse(data, "test")
	require.NoError(t, err)

	secs := f.Sections()
	require.Len(t, secs, 2)
	assert.Equal(t, "MASTER", secs[0].Name())
	assert.Equal(t, "BASIC", secs[1].Name())

	assert.Equal(t, 1, secs[0].Line())
	assert.Equal(t, 4, secs[1].Line())
}

func TestParse_EntryLines(t *testing.T) {
	data := []byte(`[MASTER]
jobs=2

[BASIC]
good-names=i,j
`)
	f, err := Parse(data, "test")
	require.NoError(t, err)

	basic, ok := f.Section("BASIC")
	require.True(t, ok)
	entries := basic.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "good-names", entries[0].Key)
	assert.Equal(t, "i,j", entries[0].Value)
	assert.Equal(t, 5, entries[0].Line)
}

func TestParse_MultilineValue(t *testing.T) {
	data := []byte(`[MESSAGES CONTROL]
disable=no-member,
        not-callable,
        arguments-differ
`)
	f, err := Parse(data, "test")
	require.NoError(t, err)

	sec, ok := f.Section("MESSAGES CONTROL")
	require.True(t, ok)
	value, ok := sec.Get("disable")
	require.True(t, ok)
	assert.Equal(t, []string{"no-member", "not-callable", "arguments-differ"}, SplitList(value))
}

func TestParse_DuplicateKeysRetained(t *testing.T) {
	data := []byte(`[DESIGN]
max-args=5
max-args=10
`)
	f, err := Parse(data, "test")
	require.NoError(t, err)

	sec, ok := f.Section("DESIGN")
	require.True(t, ok)

	// Both occurrences survive; Get sees the last one.
	assert.Equal(t, []string{"5", "10"}, sec.Values("max-args"))
	value, _ := sec.Get("max-args")
	assert.Equal(t, "10", value)

	entries := sec.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, 2, entries[0].Line)
	assert.Equal(t, 3, entries[1].Line)
}

func TestParse_DuplicateSectionsMerged(t *testing.T) {
	data := []byte(`[BASIC]
good-names=i

[BASIC]
bad-names=foo
`)
	f, err := Parse(data, "test")
	require.NoError(t, err)

	require.Len(t, f.Sections(), 1)
	sec := f.Sections()[0]
	assert.True(t, sec.Has("good-names"))
	assert.True(t, sec.Has("bad-names"))
}

func TestParse_OrphanEntries(t *testing.T) {
	data := []byte(`max-line-length=99

[FORMAT]
max-line-length=88
`)
	f, err := Parse(data, "test")
	require.NoError(t, err)

	require.Len(t, f.Sections(), 2)
	orphans := f.Sections()[0]
	assert.Equal(t, "", orphans.Name())
	value, ok := orphans.Get("max-line-length")
	require.True(t, ok)
	assert.Equal(t, "99", value)
	require.Len(t, orphans.Entries(), 1)
	assert.Equal(t, 1, orphans.Entries()[0].Line)
}

func TestParse_ExplicitDefaultSection(t *testing.T) {
	data := []byte(`[DEFAULT]
jobs=4
`)
	f, err := Parse(data, "test")
	require.NoError(t, err)

	sec, ok := f.Section("DEFAULT")
	require.True(t, ok)
	assert.Equal(t, "DEFAULT", sec.Name())
	assert.Equal(t, 1, sec.Line())
}

func TestParse_CommentsAndInlineHashes(t *testing.T) {
	data := []byte(`# configuration
[TYPECHECK]
; full line comment
ignored-modules=tensorflow
generated-members=foo#bar
`)
	f, err := Parse(data, "test")
	require.NoError(t, err)

	sec, ok := f.Section("TYPECHECK")
	require.True(t, ok)
	assert.Equal(t, []string{"ignored-modules", "generated-members"}, sec.Keys())

	// A hash inside a value is part of the value.
	value, _ := sec.Get("generated-members")
	assert.Equal(t, "foo#bar", value)
}

func TestParse_ColonDelimiter(t *testing.T) {
	data := []byte(`[FORMAT]
max-line-length: 88
`)
	f, err := Parse(data, "test")
	require.NoError(t, err)

	sec, ok := f.Section("FORMAT")
	require.True(t, ok)
	value, ok := sec.Get("max-line-length")
	require.True(t, ok)
	assert.Equal(t, "88", value)
}

func TestParse_Empty(t *testing.T) {
	f, err := Parse(nil, "test")
	require.NoError(t, err)
	assert.Empty(t, f.Sections())
	assert.Equal(t, "test", f.Name())
}

func TestParse_SyntaxError(t *testing.T) {
	data := []byte(`[FORMAT]
this line has no delimiter
`)
	_, err := Parse(data, "broken.rc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.rc")
}

func TestParse_SectionNameCaseInsensitiveLookup(t *testing.T) {
	data := []byte(`[messages control]
disable=fixme
`)
	f, err := Parse(data, "test")
	require.NoError(t, err)

	sec, ok := f.Section("MESSAGES CONTROL")
	require.True(t, ok)
	// The declared spelling is preserved.
	assert.Equal(t, "messages control", sec.Name())
}

func TestLoad_ReferenceFile(t *testing.T) {
	f, err := Load(filepath.Join("testdata", "pylintrc"))
	require.NoError(t, err)

	names := make([]string, 0, len(f.Sections()))
	for _, sec := range f.Sections() {
		names = append(names, sec.Name())
	}
	assert.Equal(t, []string{"MASTER", "MESSAGES CONTROL", "TYPECHECK", "BASIC", "FORMAT", "DESIGN"}, names)

	sec, ok := f.Section("MESSAGES CONTROL")
	require.True(t, ok)
	value, _ := sec.Get("disable")
	assert.Equal(t,
		[]string{"bad-continuation", "no-member", "not-callable", "arguments-differ", "duplicate-code"},
		SplitList(value))
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "does-not-exist"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does-not-exist")
}
