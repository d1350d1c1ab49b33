// Package commands_test provides tests for CLI command creation.
package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShowCommand(t *testing.T) {
	cmd := NewShowCommand()

	assert.Equal(t, "show [path]", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")

	// Verify flags exist (output is a global flag on root, not local)
	flags := []string{"section", "resolve", "format"}
	for _, flag := range flags {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestNewVerifyCommand(t *testing.T) {
	cmd := NewVerifyCommand()

	assert.Equal(t, "verify [path...]", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Example, "Example should not be empty")

	flags := []string{"fail-on", "watch", "format"}
	for _, flag := range flags {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestNewDoctorCommand(t *testing.T) {
	cmd := NewDoctorCommand()

	assert.Equal(t, "doctor [path]", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotNil(t, cmd.Flags().Lookup("format"), "flag format should exist")
}

func TestNewConvertCommand(t *testing.T) {
	cmd := NewConvertCommand()

	assert.Equal(t, "convert <path>", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Example, "Example should not be empty")

	flags := []string{"to", "out"}
	for _, flag := range flags {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestNewDiffCommand(t *testing.T) {
	cmd := NewDiffCommand()

	assert.Equal(t, "diff <a> <b>", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotNil(t, cmd.Flags().Lookup("format"), "flag format should exist")
}

func TestNewOptionsCommand(t *testing.T) {
	cmd := NewOptionsCommand()

	assert.Equal(t, "options [key]", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")

	flags := []string{"section", "deprecated", "verbose", "format"}
	for _, flag := range flags {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestNewMessagesCommand(t *testing.T) {
	cmd := NewMessagesCommand()

	assert.Equal(t, "messages [id-or-symbol]", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")

	flags := []string{"category", "verbose", "format"}
	for _, flag := range flags {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestNewDocsCommand(t *testing.T) {
	cmd := NewDocsCommand()

	assert.Equal(t, "docs", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")

	var build bool
	for _, sub := range cmd.Commands() {
		if sub.Name() == "build" {
			build = true
			require.NotNil(t, sub.Flags().Lookup("output-dir"), "build should have --output-dir")
			assert.NotNil(t, sub.Flags().Lookup("project"), "build should have --project")
		}
	}
	assert.True(t, build, "docs should have a build subcommand")
}
