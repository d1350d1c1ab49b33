package options

import (
	"sort"
	"strings"
	"sync"
)

// globalRegistry is the single global registry for all known options.
var globalRegistry = &Registry{
	options: make(map[string]Option),
}

// Registry stores registered options for lookup and discovery.
type Registry struct {
	mu      sync.RWMutex
	options map[string]Option // keyed by lowercased Key
}

// Register adds an option to the global registry.
// Call this from init() functions in catalog files.
func Register(opt Option) {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	globalRegistry.options[strings.ToLower(opt.Key)] = opt
}

// Lookup returns an option by key, matched case-insensitively.
func Lookup(key string) (Option, bool) {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	opt, ok := globalRegistry.options[strings.ToLower(key)]
	return opt, ok
}

// All returns every registered option, ordered by canonical section
// then key.
func All() []Option {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()

	opts := make([]Option, 0, len(globalRegistry.options))
	for _, opt := range globalRegistry.options {
		opts = append(opts, opt)
	}
	sortOptions(opts)
	return opts
}

// BySection returns the options whose canonical section matches,
// ordered by key. Section names compare case-insensitively.
func BySection(section string) []Option {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()

	var opts []Option
	for _, opt := range globalRegistry.options {
		if strings.EqualFold(opt.Section, section) {
			opts = append(opts, opt)
		}
	}
	sortOptions(opts)
	return opts
}

// Sections returns the canonical section names that have at least one
// registered option, in reference order.
func Sections() []string {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()

	present := make(map[string]bool)
	for _, opt := range globalRegistry.options {
		present[opt.Section] = true
	}

	var sections []string
	for _, name := range sectionOrder {
		if present[name] {
			sections = append(sections, name)
			delete(present, name)
		}
	}
	// Sections registered outside the reference order go last.
	var rest []string
	for name := range present {
		rest = append(rest, name)
	}
	sort.Strings(rest)
	return append(sections, rest...)
}

// Count returns the number of registered options.
func Count() int {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	return len(globalRegistry.options)
}

// Clear removes all registered options. Used for testing.
func Clear() {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	globalRegistry.options = make(map[string]Option)
}

// sectionOrder is the order sections appear in a generated reference
// configuration.
var sectionOrder = []string{
	"MASTER",
	"MESSAGES CONTROL",
	"REPORTS",
	"REFACTORING",
	"BASIC",
	"FORMAT",
	"LOGGING",
	"MISCELLANEOUS",
	"SIMILARITIES",
	"TYPECHECK",
	"VARIABLES",
	"CLASSES",
	"DESIGN",
	"IMPORTS",
	"EXCEPTIONS",
}

// SectionIndex returns a section's position in the reference order, or
// len(order) for sections outside it. Useful for stable sorts.
func SectionIndex(section string) int {
	for i, name := range sectionOrder {
		if strings.EqualFold(name, section) {
			return i
		}
	}
	return len(sectionOrder)
}

func sortOptions(opts []Option) {
	sort.Slice(opts, func(i, j int) bool {
		si, sj := SectionIndex(opts[i].Section), SectionIndex(opts[j].Section)
		if si != sj {
			return si < sj
		}
		return opts[i].Key < opts[j].Key
	})
}
