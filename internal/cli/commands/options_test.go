package commands

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lintrc/lintrc/internal/cli/config"
	"github.com/lintrc/lintrc/pkg/rcfile/options"
)

func runOptionsCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	config.ResetConfig()

	cmd := NewOptionsCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestOptionsCommand_ListAll(t *testing.T) {
	out, err := runOptionsCommand(t)
	require.NoError(t, err)

	assert.Contains(t, out, "# Configuration Options")
	assert.Contains(t, out, "## [MASTER]")
	assert.Contains(t, out, "max-line-length")
	assert.Contains(t, out, "good-names")
}

func TestOptionsCommand_FilterBySection(t *testing.T) {
	t.Run("plain name", func(t *testing.T) {
		out, err := runOptionsCommand(t, "--section", "design")
		require.NoError(t, err)

		assert.Contains(t, out, "[DESIGN]")
		assert.NotContains(t, out, "[MASTER]")
	})

	t.Run("bracketed name", func(t *testing.T) {
		out, err := runOptionsCommand(t, "--section", "[FORMAT]")
		require.NoError(t, err)

		assert.Contains(t, out, "[FORMAT]")
		assert.Contains(t, out, "max-line-length")
	})

	t.Run("unknown section", func(t *testing.T) {
		_, err := runOptionsCommand(t, "--section", "NOSUCH")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no options match")
	})
}

func TestOptionsCommand_Deprecated(t *testing.T) {
	out, err := runOptionsCommand(t, "--deprecated")
	require.NoError(t, err)

	assert.Contains(t, out, "extension-pkg-whitelist")
	assert.NotContains(t, out, "max-line-length")
}

func TestOptionsCommand_ShowSpecific(t *testing.T) {
	out, err := runOptionsCommand(t, "max-line-length")
	require.NoError(t, err)

	assert.Contains(t, out, "# max-line-length")
	assert.Contains(t, out, "**Section:** [FORMAT]")
	assert.Contains(t, out, "`int`")
}

func TestOptionsCommand_ShowDeprecated(t *testing.T) {
	out, err := runOptionsCommand(t, "extension-pkg-whitelist")
	require.NoError(t, err)

	assert.Contains(t, out, "**Deprecated.**")
	assert.Contains(t, out, "extension-pkg-allow-list")
}

func TestOptionsCommand_NotFound(t *testing.T) {
	_, err := runOptionsCommand(t, "no-such-option")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestOptionsCommand_JSON(t *testing.T) {
	out, err := runOptionsCommand(t, "--format", "json")
	require.NoError(t, err)

	var result OptionsJSONOutput
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, options.Count(), result.Count.Total)

	sum := 0
	for _, n := range result.Count.BySection {
		sum += n
	}
	assert.Equal(t, result.Count.Total, sum)
}

func TestFilterOptions(t *testing.T) {
	all := options.All()

	t.Run("no filter", func(t *testing.T) {
		got := filterOptions(all, &OptionListOptions{})
		assert.Len(t, got, len(all))
	})

	t.Run("section filter", func(t *testing.T) {
		got := filterOptions(all, &OptionListOptions{Section: "design"})
		require.NotEmpty(t, got)
		for _, opt := range got {
			assert.Equal(t, "DESIGN", opt.Section)
		}
	})

	t.Run("deprecated filter", func(t *testing.T) {
		got := filterOptions(all, &OptionListOptions{Deprecated: true})
		require.NotEmpty(t, got)
		for _, opt := range got {
			assert.True(t, opt.Deprecated, "option %s should be deprecated", opt.Key)
		}
	})
}

func TestTruncateOneLine(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxLen   int
		expected string
	}{
		{"short string", "hello", 10, "hello"},
		{"exact length", "hello", 5, "hello"},
		{"needs truncation", "hello world", 8, "hello..."},
		{"multiline", "hello\nworld", 20, "hello world"},
		{"multiline truncated", "hello\nworld", 8, "hello..."},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := truncateOneLine(tc.input, tc.maxLen)
			assert.Equal(t, tc.expected, result)
		})
	}
}
