package rcfile

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Problem codes reported by Verify.
const (
	ProblemSyntax           = "syntax"
	ProblemDuplicateKey     = "duplicate-key"
	ProblemDuplicateSection = "duplicate-section"
	ProblemOrphanEntry      = "orphan-entry"
	ProblemEmptyToken       = "empty-token"
	ProblemTokenWhitespace  = "token-whitespace"
	ProblemEmptySection     = "empty-section"

	// ProblemInvalidInt is reported by ResolveSettings when a numeric
	// option holds a value that does not convert.
	ProblemInvalidInt = "invalid-int"
)

// Problem is a single verification finding.
type Problem struct {
	Code     string   `json:"code"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
	Section  string   `json:"section,omitempty"`
	Key      string   `json:"key,omitempty"`
	Line     int      `json:"line,omitempty"`
}

// VerifyBytes parses raw configuration data and verifies it. A document
// that does not parse yields a single syntax problem.
func VerifyBytes(data []byte, name string) []Problem {
	f, err := Parse(data, name)
	if err != nil {
		msg := err.Error()
		if u := errors.Unwrap(err); u != nil {
			msg = u.Error()
		}
		return []Problem{{
			Code:     ProblemSyntax,
			Severity: SeverityError,
			Message:  msg,
		}}
	}
	return Verify(f)
}

// Verify checks a parsed document's syntactic well-formedness: every key
// unique within its section, every section declared once, no entries
// before the first header, and comma-separated values free of empty or
// run-together elements. It never consults the option catalog; unknown
// options are not a syntax matter.
func Verify(f *File) []Problem {
	var problems []Problem

	for _, sec := range f.Sections() {
		if len(sec.headerLines) > 1 {
			for _, line := range sec.headerLines[1:] {
				problems = append(problems, Problem{
					Code:     ProblemDuplicateSection,
					Severity: SeverityError,
					Message:  fmt.Sprintf("section [%s] is declared more than once (first at line %d)", sec.Name(), sec.headerLines[0]),
					Section:  sec.Name(),
					Line:     line,
				})
			}
		}

		if sec.Name() == "" {
			for _, e := range sec.Entries() {
				problems = append(problems, Problem{
					Code:     ProblemOrphanEntry,
					Severity: SeverityWarning,
					Message:  fmt.Sprintf("option %q appears before any section header", e.Key),
					Key:      e.Key,
					Line:     e.Line,
				})
			}
		}

		if sec.Name() != "" && len(sec.Entries()) == 0 {
			problems = append(problems, Problem{
				Code:     ProblemEmptySection,
				Severity: SeverityHint,
				Message:  fmt.Sprintf("section [%s] is empty", sec.Name()),
				Section:  sec.Name(),
				Line:     sec.Line(),
			})
		}

		seen := make(map[string]Entry)
		for _, e := range sec.Entries() {
			k := strings.ToLower(e.Key)
			if first, ok := seen[k]; ok {
				problems = append(problems, Problem{
					Code:     ProblemDuplicateKey,
					Severity: SeverityError,
					Message:  fmt.Sprintf("option %q set more than once in section [%s] (first at line %d)", e.Key, sec.Name(), first.Line),
					Section:  sec.Name(),
					Key:      e.Key,
					Line:     e.Line,
				})
			} else {
				seen[k] = e
			}
		}

		for _, e := range sec.Entries() {
			problems = append(problems, checkListValue(sec.Name(), e)...)
		}
	}

	sort.SliceStable(problems, func(i, j int) bool {
		return problems[i].Line < problems[j].Line
	})
	return problems
}

// checkListValue checks comma-separated values for empty or run-together
// elements. Values without commas are scalars and are left alone.
func checkListValue(section string, e Entry) []Problem {
	if !strings.Contains(e.Value, ",") {
		return nil
	}

	var problems []Problem
	tokens := strings.Split(e.Value, ",")
	emptyReported := false
	for i, tok := range tokens {
		trimmed := strings.TrimSpace(tok)
		if trimmed == "" {
			if emptyReported {
				continue
			}
			emptyReported = true
			msg := fmt.Sprintf("value of %q contains an empty list element", e.Key)
			if i == len(tokens)-1 {
				msg = fmt.Sprintf("value of %q ends with a trailing comma", e.Key)
			}
			problems = append(problems, Problem{
				Code:     ProblemEmptyToken,
				Severity: SeverityWarning,
				Message:  msg,
				Section:  section,
				Key:      e.Key,
				Line:     e.Line,
			})
			continue
		}
		// Whitespace inside an element usually means a missing comma.
		// Elements with regexp metacharacters are patterns, where spaces
		// can be legitimate.
		if strings.ContainsAny(trimmed, " \t") && !strings.ContainsAny(trimmed, `[](){}|\^$*+?`) {
			problems = append(problems, Problem{
				Code:     ProblemTokenWhitespace,
				Severity: SeverityWarning,
				Message:  fmt.Sprintf("list element %q in %q contains whitespace (missing comma?)", trimmed, e.Key),
				Section:  section,
				Key:      e.Key,
				Line:     e.Line,
			})
		}
	}
	return problems
}
