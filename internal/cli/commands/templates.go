package commands

import (
	"bytes"
	"embed"
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"github.com/lintrc/lintrc/pkg/rcfile"
)

//go:embed all:templates
var templateFS embed.FS

// TemplateData carries the values the starter configuration is rendered
// from. The defaults mirror a working scientific-Python setup; the
// interactive wizard edits a copy of them.
type TemplateData struct {
	Disable            []string
	ExtensionPackages  []string
	IgnoredModules     []string
	IgnoredClasses     []string
	GoodNames          []string
	FunctionRgx        string
	MethodRgx          string
	MaxLineLength      int
	LoggingFormatStyle string
	MinSimilarityLines int
	MinPublicMethods   int
	MaxAttributes      int
	MaxLocals          int
	MaxArgs            int
}

// DefaultTemplateData returns the values the stock starter uses.
func DefaultTemplateData() TemplateData {
	return TemplateData{
		Disable: []string{
			"bad-continuation",
			"no-member",
			"not-callable",
			"arguments-differ",
			"duplicate-code",
		},
		ExtensionPackages:  []string{"numpy"},
		IgnoredModules:     []string{"tensorflow", "skimage"},
		IgnoredClasses:     nil,
		GoodNames:          []string{"i", "j", "k", "n", "r", "c", "x", "y", "df", "ax", "_"},
		FunctionRgx:        "[a-z_][a-z0-9_]{2,30}$",
		MethodRgx:          "[a-z_][a-z0-9_]{2,30}$",
		MaxLineLength:      88,
		LoggingFormatStyle: "new",
		MinSimilarityLines: 10,
		MinPublicMethods:   0,
		MaxAttributes:      12,
		MaxLocals:          25,
		MaxArgs:            10,
	}
}

var templateFuncs = template.FuncMap{
	"join":         strings.Join,
	"continuation": continuationList,
}

// continuationList renders a comma list across continuation lines, each
// carrying the given indent, the way hand-written configurations format
// long disable lists.
func continuationList(items []string, indent int) string {
	if len(items) == 0 {
		return ""
	}
	sep := ",\n" + strings.Repeat(" ", indent)
	return strings.Join(items, sep)
}

// renderTemplate executes an embedded template with the given data.
func renderTemplate(name string, data TemplateData) ([]byte, error) {
	raw, err := templateFS.ReadFile("templates/" + name)
	if err != nil {
		return nil, fmt.Errorf("failed to read template %s: %w", name, err)
	}

	tmpl, err := template.New(name).Funcs(templateFuncs).Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// buildTemplateFile assembles the document the template data describes,
// for writers that need structure rather than rendered text (the
// pyproject form goes through the TOML encoder).
func buildTemplateFile(data TemplateData) *rcfile.File {
	f := rcfile.NewFile(".pylintrc")

	master := f.AddSection("MASTER")
	master.Set("extension-pkg-whitelist", strings.Join(data.ExtensionPackages, ","))

	mc := f.AddSection("MESSAGES CONTROL")
	mc.Set("disable", rcfile.JoinList(data.Disable))

	tc := f.AddSection("TYPECHECK")
	tc.Set("ignored-modules", strings.Join(data.IgnoredModules, ","))
	tc.Set("ignored-classes", strings.Join(data.IgnoredClasses, ","))

	basic := f.AddSection("BASIC")
	basic.Set("good-names", strings.Join(data.GoodNames, ","))
	basic.Set("function-rgx", data.FunctionRgx)
	basic.Set("method-rgx", data.MethodRgx)

	format := f.AddSection("FORMAT")
	format.Set("max-line-length", strconv.Itoa(data.MaxLineLength))
	format.Set("logging-format-style", data.LoggingFormatStyle)
	format.Set("min-similarity-lines", strconv.Itoa(data.MinSimilarityLines))

	design := f.AddSection("DESIGN")
	design.Set("min-public-methods", strconv.Itoa(data.MinPublicMethods))
	design.Set("max-attributes", strconv.Itoa(data.MaxAttributes))
	design.Set("max-locals", strconv.Itoa(data.MaxLocals))
	design.Set("max-args", strconv.Itoa(data.MaxArgs))

	return f
}
