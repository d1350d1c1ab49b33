package messages

import (
	"sort"
	"strings"
	"sync"
)

// globalRegistry is the single global registry for all known messages.
var globalRegistry = &Registry{
	byID:     make(map[string]Message),
	bySymbol: make(map[string]Message),
}

// Registry stores registered messages, addressable by id or symbol.
type Registry struct {
	mu       sync.RWMutex
	byID     map[string]Message // keyed by uppercased ID
	bySymbol map[string]Message // keyed by lowercased Symbol
}

// Register adds a message to the global registry.
// Call this from init() functions in catalog files.
func Register(msg Message) {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	globalRegistry.byID[strings.ToUpper(msg.ID)] = msg
	globalRegistry.bySymbol[strings.ToLower(msg.Symbol)] = msg
}

// Resolve returns a message by id or symbol, matched case-insensitively.
func Resolve(idOrSymbol string) (Message, bool) {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	if msg, ok := globalRegistry.byID[strings.ToUpper(idOrSymbol)]; ok {
		return msg, true
	}
	msg, ok := globalRegistry.bySymbol[strings.ToLower(idOrSymbol)]
	return msg, ok
}

// All returns every registered message, ordered by id.
func All() []Message {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()

	msgs := make([]Message, 0, len(globalRegistry.byID))
	for _, msg := range globalRegistry.byID {
		msgs = append(msgs, msg)
	}
	sort.Slice(msgs, func(i, j int) bool { return msgs[i].ID < msgs[j].ID })
	return msgs
}

// ByCategory returns the messages in a category, ordered by id.
func ByCategory(cat Category) []Message {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()

	var msgs []Message
	for _, msg := range globalRegistry.byID {
		if msg.Category == cat {
			msgs = append(msgs, msg)
		}
	}
	sort.Slice(msgs, func(i, j int) bool { return msgs[i].ID < msgs[j].ID })
	return msgs
}

// Count returns the number of registered messages.
func Count() int {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	return len(globalRegistry.byID)
}

// Clear removes all registered messages. Used for testing.
func Clear() {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	globalRegistry.byID = make(map[string]Message)
	globalRegistry.bySymbol = make(map[string]Message)
}
