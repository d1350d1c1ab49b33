// Package messages is the catalog of checker messages: for each message
// id, its symbol, category, and lifecycle state (renamed or removed).
// The catalog backs validation of disable/enable lists and the message
// reference output.
package messages

import "strings"

// Category classifies a message by the letter its id starts with.
type Category string

const (
	CategoryConvention  Category = "C"
	CategoryRefactor    Category = "R"
	CategoryWarning     Category = "W"
	CategoryError       Category = "E"
	CategoryFatal       Category = "F"
	CategoryInformation Category = "I"
)

// Categories returns all categories in reference order.
func Categories() []Category {
	return []Category{
		CategoryConvention,
		CategoryRefactor,
		CategoryWarning,
		CategoryError,
		CategoryFatal,
		CategoryInformation,
	}
}

// Name returns the category's long name.
func (c Category) Name() string {
	switch c {
	case CategoryConvention:
		return "convention"
	case CategoryRefactor:
		return "refactor"
	case CategoryWarning:
		return "warning"
	case CategoryError:
		return "error"
	case CategoryFatal:
		return "fatal"
	case CategoryInformation:
		return "information"
	default:
		return "unknown"
	}
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryConvention, CategoryRefactor, CategoryWarning,
		CategoryError, CategoryFatal, CategoryInformation:
		return true
	}
	return false
}

// Message describes a single checker message.
type Message struct {
	// ID is the numeric message id, e.g. "C0103".
	ID string `json:"id"`

	// Symbol is the human-readable name, e.g. "invalid-name".
	// Configuration files may reference a message by either form.
	Symbol string `json:"symbol"`

	// Category is the message's category letter.
	Category Category `json:"category"`

	// Description is the message's help text.
	Description string `json:"description"`

	// RemovedIn names the checker release that dropped the message.
	// Configurations referencing a removed message are stale.
	RemovedIn string `json:"removed_in,omitempty"`

	// RenamedTo names the symbol that superseded this one. The old
	// symbol still works but new configurations should use the new one.
	RenamedTo string `json:"renamed_to,omitempty"`
}

// Removed reports whether the message no longer exists in the checker.
func (m Message) Removed() bool {
	return m.RemovedIn != ""
}

// IsWildcard reports whether a disable/enable token addresses a whole
// group rather than a single message: "all" or a bare category letter.
func IsWildcard(token string) bool {
	if strings.EqualFold(token, "all") {
		return true
	}
	if len(token) == 1 {
		return Category(strings.ToUpper(token)).Valid()
	}
	return false
}
