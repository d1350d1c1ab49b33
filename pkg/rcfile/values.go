package rcfile

import "strings"

// SplitList splits a comma-separated option value into its tokens.
// Newlines from continuation lines and surrounding whitespace are
// stripped; empty tokens are dropped. An empty value yields nil.
func SplitList(value string) []string {
	var items []string
	for _, tok := range strings.Split(value, ",") {
		tok = strings.TrimSpace(tok)
		if tok != "" {
			items = append(items, tok)
		}
	}
	return items
}

// JoinList renders tokens as a multiline comma-separated value, one token
// per continuation line, the way generated configurations format long
// lists. A single token stays on one line.
func JoinList(items []string) string {
	return strings.Join(items, ",\n")
}
