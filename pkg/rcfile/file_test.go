package rcfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFile_AddSection(t *testing.T) {
	f := NewFile("test")
	a := f.AddSection("BASIC")
	b := f.AddSection("BASIC")

	// Adding an existing section returns it.
	assert.Same(t, a, b)
	assert.Len(t, f.Sections(), 1)
}

func TestSection_GetLastWins(t *testing.T) {
	f := NewFile("test")
	sec := f.AddSection("DESIGN")
	sec.Add("max-args", "5")
	sec.Add("max-args", "10")

	value, ok := sec.Get("max-args")
	require.True(t, ok)
	assert.Equal(t, "10", value)
	assert.Equal(t, []string{"5", "10"}, sec.Values("max-args"))
}

func TestSection_GetCaseInsensitive(t *testing.T) {
	f := NewFile("test")
	sec := f.AddSection("FORMAT")
	sec.Add("Max-Line-Length", "88")

	value, ok := sec.Get("max-line-length")
	require.True(t, ok)
	assert.Equal(t, "88", value)
	assert.True(t, sec.Has("MAX-LINE-LENGTH"))
}

func TestSection_KeysDistinct(t *testing.T) {
	f := NewFile("test")
	sec := f.AddSection("BASIC")
	sec.Add("good-names", "i")
	sec.Add("bad-names", "foo")
	sec.Add("good-names", "j")

	assert.Equal(t, []string{"good-names", "bad-names"}, sec.Keys())
}

func TestSection_SetReplacesAllOccurrences(t *testing.T) {
	f := NewFile("test")
	sec := f.AddSection("DESIGN")
	sec.Add("max-args", "5")
	sec.Add("max-args", "10")
	sec.Add("max-locals", "15")

	sec.Set("max-args", "7")

	assert.Equal(t, []string{"7"}, sec.Values("max-args"))
	assert.Equal(t, []string{"max-args", "max-locals"}, sec.Keys())
}

func TestSection_SetAppendsWhenAbsent(t *testing.T) {
	f := NewFile("test")
	sec := f.AddSection("DESIGN")
	sec.Set("max-args", "7")

	value, ok := sec.Get("max-args")
	require.True(t, ok)
	assert.Equal(t, "7", value)
}

func TestSection_Entry(t *testing.T) {
	f, err := Parse([]byte("[DESIGN]\nmax-args=5\nmax-args=10\n"), "test")
	require.NoError(t, err)

	sec, ok := f.Section("DESIGN")
	require.True(t, ok)
	e, ok := sec.Entry("MAX-ARGS")
	require.True(t, ok)
	assert.Equal(t, "10", e.Value)
	assert.Equal(t, 3, e.Line)

	_, ok = sec.Entry("max-locals")
	assert.False(t, ok)
}

func TestFile_Lookup(t *testing.T) {
	data := []byte(`[FORMAT]
min-similarity-lines=10

[SIMILARITIES]
min-similarity-lines=6
`)
	f, err := Parse(data, "test")
	require.NoError(t, err)

	t.Run("preferred section wins", func(t *testing.T) {
		value, sec, ok := f.Lookup("min-similarity-lines", "SIMILARITIES")
		require.True(t, ok)
		assert.Equal(t, "6", value)
		assert.Equal(t, "SIMILARITIES", sec.Name())
	})

	t.Run("falls back to file order", func(t *testing.T) {
		value, sec, ok := f.Lookup("min-similarity-lines", "LOGGING")
		require.True(t, ok)
		assert.Equal(t, "10", value)
		assert.Equal(t, "FORMAT", sec.Name())
	})

	t.Run("no preference scans file order", func(t *testing.T) {
		value, _, ok := f.Lookup("min-similarity-lines", "")
		require.True(t, ok)
		assert.Equal(t, "10", value)
	})

	t.Run("absent key", func(t *testing.T) {
		_, _, ok := f.Lookup("max-args", "DESIGN")
		assert.False(t, ok)
	})
}
