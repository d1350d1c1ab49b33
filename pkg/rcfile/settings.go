package rcfile

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/lintrc/lintrc/pkg/rcfile/options"
)

// Settings is the resolved view of the options a checker run actually
// consumes. Every field carries its catalog default until the document
// sets it; a key present with an empty value clears a list field.
type Settings struct {
	Disable               []string `json:"disable"`
	Enable                []string `json:"enable"`
	ExtensionPkgWhitelist []string `json:"extension-pkg-whitelist"`
	IgnoredModules        []string `json:"ignored-modules"`
	IgnoredClasses        []string `json:"ignored-classes"`
	GoodNames             []string `json:"good-names"`
	FunctionRgx           string   `json:"function-rgx"`
	MethodRgx             string   `json:"method-rgx"`
	MaxLineLength         int      `json:"max-line-length"`
	LoggingFormatStyle    string   `json:"logging-format-style"`
	MinSimilarityLines    int      `json:"min-similarity-lines"`
	MinPublicMethods      int      `json:"min-public-methods"`
	MaxAttributes         int      `json:"max-attributes"`
	MaxLocals             int      `json:"max-locals"`
	MaxArgs               int      `json:"max-args"`
}

// DefaultSettings returns the settings a run with no configuration file
// would use, taken from the option catalog.
func DefaultSettings() Settings {
	return Settings{
		Disable:               defaultList("disable"),
		Enable:                defaultList("enable"),
		ExtensionPkgWhitelist: defaultList("extension-pkg-whitelist"),
		IgnoredModules:        defaultList("ignored-modules"),
		IgnoredClasses:        defaultList("ignored-classes"),
		GoodNames:             defaultList("good-names"),
		FunctionRgx:           defaultString("function-rgx"),
		MethodRgx:             defaultString("method-rgx"),
		MaxLineLength:         defaultInt("max-line-length"),
		LoggingFormatStyle:    defaultString("logging-format-style"),
		MinSimilarityLines:    defaultInt("min-similarity-lines"),
		MinPublicMethods:      defaultInt("min-public-methods"),
		MaxAttributes:         defaultInt("max-attributes"),
		MaxLocals:             defaultInt("max-locals"),
		MaxArgs:               defaultInt("max-args"),
	}
}

// ResolveSettings folds a parsed document over the defaults. Options are
// located by key wherever they appear, preferring the catalog's canonical
// section when the same key occurs in several. Numeric options that fail
// to convert keep their default and report a problem.
func ResolveSettings(f *File) (Settings, []Problem) {
	r := &resolver{f: f, settings: DefaultSettings()}
	r.list("disable", &r.settings.Disable)
	r.list("enable", &r.settings.Enable)
	r.list("extension-pkg-whitelist", &r.settings.ExtensionPkgWhitelist)
	r.list("ignored-modules", &r.settings.IgnoredModules)
	r.list("ignored-classes", &r.settings.IgnoredClasses)
	r.list("good-names", &r.settings.GoodNames)
	r.str("function-rgx", &r.settings.FunctionRgx)
	r.str("method-rgx", &r.settings.MethodRgx)
	r.integer("max-line-length", &r.settings.MaxLineLength)
	r.str("logging-format-style", &r.settings.LoggingFormatStyle)
	r.integer("min-similarity-lines", &r.settings.MinSimilarityLines)
	r.integer("min-public-methods", &r.settings.MinPublicMethods)
	r.integer("max-attributes", &r.settings.MaxAttributes)
	r.integer("max-locals", &r.settings.MaxLocals)
	r.integer("max-args", &r.settings.MaxArgs)
	return r.settings, r.problems
}

// DisabledSet returns the suppressed messages as a set for membership
// checks. Entries keep their spelling from the file (symbol or code).
func (s Settings) DisabledSet() map[string]bool {
	set := make(map[string]bool, len(s.Disable))
	for _, item := range s.Disable {
		set[item] = true
	}
	return set
}

// FunctionRegexp compiles the function naming pattern.
func (s Settings) FunctionRegexp() (*regexp.Regexp, error) {
	return regexp.Compile(s.FunctionRgx)
}

// MethodRegexp compiles the method naming pattern.
func (s Settings) MethodRegexp() (*regexp.Regexp, error) {
	return regexp.Compile(s.MethodRgx)
}

type resolver struct {
	f        *File
	settings Settings
	problems []Problem
}

// lookup finds the effective entry for key: the catalog's canonical
// section first, then the first section that has it.
func (r *resolver) lookup(key string) (Entry, string, bool) {
	preferred := ""
	if opt, ok := options.Lookup(key); ok {
		preferred = opt.Section
	}
	if preferred != "" {
		if s, ok := r.f.Section(preferred); ok {
			if e, ok := s.Entry(key); ok {
				return e, s.Name(), true
			}
		}
	}
	for _, s := range r.f.Sections() {
		if e, ok := s.Entry(key); ok {
			return e, s.Name(), true
		}
	}
	return Entry{}, "", false
}

func (r *resolver) list(key string, dst *[]string) {
	e, _, ok := r.lookup(key)
	if !ok {
		return
	}
	*dst = SplitList(e.Value)
}

func (r *resolver) str(key string, dst *string) {
	e, _, ok := r.lookup(key)
	if !ok {
		return
	}
	*dst = strings.TrimSpace(e.Value)
}

func (r *resolver) integer(key string, dst *int) {
	e, section, ok := r.lookup(key)
	if !ok {
		return
	}
	raw := strings.TrimSpace(e.Value)
	n, err := strconv.Atoi(raw)
	if err != nil {
		r.problems = append(r.problems, Problem{
			Code:     ProblemInvalidInt,
			Severity: SeverityError,
			Message:  fmt.Sprintf("option %q expects an integer, got %q", key, raw),
			Section:  section,
			Key:      key,
			Line:     e.Line,
		})
		return
	}
	*dst = n
}

func defaultList(key string) []string {
	opt, ok := options.Lookup(key)
	if !ok {
		return nil
	}
	return SplitList(opt.Default)
}

func defaultString(key string) string {
	opt, ok := options.Lookup(key)
	if !ok {
		return ""
	}
	return opt.Default
}

func defaultInt(key string) int {
	opt, ok := options.Lookup(key)
	if !ok {
		return 0
	}
	n, _ := strconv.Atoi(opt.Default)
	return n
}
