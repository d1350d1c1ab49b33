package messages

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	t.Run("by symbol", func(t *testing.T) {
		msg, ok := Resolve("invalid-name")
		require.True(t, ok)
		assert.Equal(t, "C0103", msg.ID)
		assert.Equal(t, CategoryConvention, msg.Category)
	})

	t.Run("by id", func(t *testing.T) {
		msg, ok := Resolve("E1101")
		require.True(t, ok)
		assert.Equal(t, "no-member", msg.Symbol)
		assert.Equal(t, CategoryError, msg.Category)
	})

	t.Run("case insensitive", func(t *testing.T) {
		byID, ok := Resolve("e1101")
		require.True(t, ok)
		bySymbol, ok2 := Resolve("No-Member")
		require.True(t, ok2)
		assert.Equal(t, byID, bySymbol)
	})

	t.Run("unknown", func(t *testing.T) {
		_, ok := Resolve("totally-made-up")
		assert.False(t, ok)
		_, ok = Resolve("Z9999")
		assert.False(t, ok)
	})
}

func TestResolve_Lifecycle(t *testing.T) {
	removed, ok := Resolve("bad-continuation")
	require.True(t, ok)
	assert.True(t, removed.Removed())
	assert.Equal(t, "2.6", removed.RemovedIn)

	renamed, ok := Resolve("broad-except")
	require.True(t, ok)
	assert.False(t, renamed.Removed())
	assert.Equal(t, "broad-exception-caught", renamed.RenamedTo)

	// The successor resolves on its own.
	successor, ok := Resolve(renamed.RenamedTo)
	require.True(t, ok)
	assert.Equal(t, "W0718", successor.ID)
}

func TestCategories(t *testing.T) {
	cats := Categories()
	assert.Equal(t, []Category{
		CategoryConvention, CategoryRefactor, CategoryWarning,
		CategoryError, CategoryFatal, CategoryInformation,
	}, cats)

	assert.Equal(t, "convention", CategoryConvention.Name())
	assert.Equal(t, "refactor", CategoryRefactor.Name())
	assert.Equal(t, "warning", CategoryWarning.Name())
	assert.Equal(t, "error", CategoryError.Name())
	assert.Equal(t, "fatal", CategoryFatal.Name())
	assert.Equal(t, "information", CategoryInformation.Name())
	assert.Equal(t, "unknown", Category("X").Name())

	assert.True(t, CategoryWarning.Valid())
	assert.False(t, Category("X").Valid())
}

func TestByCategory(t *testing.T) {
	warnings := ByCategory(CategoryWarning)
	require.NotEmpty(t, warnings)
	for _, msg := range warnings {
		assert.Equal(t, CategoryWarning, msg.Category)
	}
	for i := 1; i < len(warnings); i++ {
		assert.Less(t, warnings[i-1].ID, warnings[i].ID)
	}
}

func TestIsWildcard(t *testing.T) {
	assert.True(t, IsWildcard("all"))
	assert.True(t, IsWildcard("ALL"))
	assert.True(t, IsWildcard("C"))
	assert.True(t, IsWildcard("w"))
	assert.False(t, IsWildcard("X"))
	assert.False(t, IsWildcard("no-member"))
	assert.False(t, IsWildcard(""))
}

// TestCatalogWellFormed guards the catalog data: ids must match their
// category letter and follow the id syntax, and symbols must be unique.
func TestCatalogWellFormed(t *testing.T) {
	idPattern := regexp.MustCompile(`^[CRWEFI][0-9]{4}$`)
	symbols := make(map[string]string)

	for _, msg := range All() {
		msg := msg
		t.Run(msg.ID, func(t *testing.T) {
			assert.Regexp(t, idPattern, msg.ID)
			assert.Equal(t, Category(msg.ID[:1]), msg.Category)
			assert.NotEmpty(t, msg.Symbol)
			assert.NotEmpty(t, msg.Description)

			if prev, dup := symbols[msg.Symbol]; dup {
				t.Errorf("symbol %s registered for both %s and %s", msg.Symbol, prev, msg.ID)
			}
			symbols[msg.Symbol] = msg.ID

			if msg.RenamedTo != "" {
				_, ok := Resolve(msg.RenamedTo)
				assert.True(t, ok, "successor %s is not registered", msg.RenamedTo)
			}
		})
	}
}

func TestRegisterAndClear(t *testing.T) {
	before := Count()
	require.Positive(t, before)

	Register(Message{ID: "W9999", Symbol: "test-message", Category: CategoryWarning})
	assert.Equal(t, before+1, Count())

	msg, ok := Resolve("test-message")
	require.True(t, ok)
	assert.Equal(t, "W9999", msg.ID)

	Clear()
	assert.Zero(t, Count())

	// Restore the catalog for other tests.
	for _, msg := range catalog {
		Register(msg)
	}
	assert.Equal(t, before, Count())
}
