package rcfile

import "strings"

// File is a parsed configuration document. Sections keep file order and
// entries keep their order within each section, duplicates included, so a
// document can be re-encoded or diffed without losing structure.
type File struct {
	name     string
	sections []*Section
}

// Section is a named group of entries. The zero name holds entries that
// appear before the first section header.
type Section struct {
	name        string
	line        int
	headerLines []int
	entries     []Entry
}

// Entry is a single key=value pair as it appeared in the source.
type Entry struct {
	Key   string
	Value string
	Line  int
}

// NewFile creates an empty document with the given display name.
func NewFile(name string) *File {
	return &File{name: name}
}

// Name returns the display name of the document, typically its file path.
func (f *File) Name() string {
	return f.name
}

// Sections returns the document's sections in file order.
func (f *File) Sections() []*Section {
	return f.sections
}

// Section returns the section with the given name, matched
// case-insensitively.
func (f *File) Section(name string) (*Section, bool) {
	for _, s := range f.sections {
		if strings.EqualFold(s.name, name) {
			return s, true
		}
	}
	return nil, false
}

// AddSection appends a new section and returns it. If a section with the
// same name already exists it is returned instead.
func (f *File) AddSection(name string) *Section {
	if s, ok := f.Section(name); ok {
		return s
	}
	s := &Section{name: name}
	f.sections = append(f.sections, s)
	return s
}

// Lookup searches every section for the named option and returns its value
// and the section holding it. When the option appears in several sections
// the one whose section matches preferred wins, then the first in file
// order. This mirrors how the consumer reads options: section headers do
// not scope them.
func (f *File) Lookup(key, preferred string) (value string, section *Section, ok bool) {
	if preferred != "" {
		if s, found := f.Section(preferred); found {
			if v, has := s.Get(key); has {
				return v, s, true
			}
		}
	}
	for _, s := range f.sections {
		if v, has := s.Get(key); has {
			return v, s, true
		}
	}
	return "", nil, false
}

// Name returns the section name. Empty for entries before the first header.
func (s *Section) Name() string {
	return s.name
}

// Line returns the 1-based line of the section header, or 0 if unknown.
func (s *Section) Line() int {
	return s.line
}

// Entries returns the section's entries in file order, duplicates included.
func (s *Section) Entries() []Entry {
	return s.entries
}

// Keys returns the distinct option names in first-occurrence order.
func (s *Section) Keys() []string {
	var keys []string
	seen := make(map[string]bool)
	for _, e := range s.entries {
		k := strings.ToLower(e.Key)
		if !seen[k] {
			seen[k] = true
			keys = append(keys, e.Key)
		}
	}
	return keys
}

// Get returns the value of the named option, matched case-insensitively.
// When the option occurs more than once the last occurrence wins, which is
// what a non-strict configparser read would produce.
func (s *Section) Get(key string) (string, bool) {
	var value string
	found := false
	for _, e := range s.entries {
		if strings.EqualFold(e.Key, key) {
			value = e.Value
			found = true
		}
	}
	return value, found
}

// Entry returns the last entry for key, matched case-insensitively.
func (s *Section) Entry(key string) (Entry, bool) {
	var entry Entry
	found := false
	for _, e := range s.entries {
		if strings.EqualFold(e.Key, key) {
			entry = e
			found = true
		}
	}
	return entry, found
}

// Has reports whether the named option is present.
func (s *Section) Has(key string) bool {
	_, ok := s.Get(key)
	return ok
}

// Values returns every occurrence of the named option in file order.
func (s *Section) Values(key string) []string {
	var values []string
	for _, e := range s.entries {
		if strings.EqualFold(e.Key, key) {
			values = append(values, e.Value)
		}
	}
	return values
}

// Set replaces every occurrence of the named option with a single entry,
// or appends one if the option is absent.
func (s *Section) Set(key, value string) {
	out := s.entries[:0]
	replaced := false
	for _, e := range s.entries {
		if strings.EqualFold(e.Key, key) {
			if !replaced {
				e.Value = value
				replaced = true
				out = append(out, e)
			}
			continue
		}
		out = append(out, e)
	}
	s.entries = out
	if !replaced {
		s.entries = append(s.entries, Entry{Key: key, Value: value})
	}
}

// Add appends an entry without replacing existing occurrences.
func (s *Section) Add(key, value string) {
	s.entries = append(s.entries, Entry{Key: key, Value: value})
}
