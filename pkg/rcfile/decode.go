package rcfile

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/ini.v1"
)

// loadOptions configures the INI reader for the Python configparser
// dialect: indented lines continue the previous value, duplicate keys are
// retained, `#` inside a value belongs to the value, and surrounding
// quotes are literal.
func loadOptions() ini.LoadOptions {
	return ini.LoadOptions{
		AllowPythonMultilineValues: true,
		AllowShadows:               true,
		IgnoreInlineComment:        true,
		PreserveSurroundedQuote:    true,
	}
}

// Load reads and parses a configuration file from disk.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse parses configuration data. The name is used for reporting only,
// typically the file path.
func Parse(data []byte, name string) (*File, error) {
	idx := scanPositions(data)

	src, err := ini.LoadSources(loadOptions(), data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}

	f := NewFile(name)
	for _, sec := range src.Sections() {
		isDefault := sec.Name() == ini.DefaultSection
		if isDefault && len(sec.Keys()) == 0 {
			continue
		}

		// Entries before the first header land in the library's default
		// section. Model them as a nameless section unless the file
		// declared [DEFAULT] explicitly.
		modelName := sec.Name()
		posName := strings.ToLower(sec.Name())
		if isDefault {
			if len(idx.sections["default"]) > 0 {
				modelName = "DEFAULT"
			} else {
				modelName, posName = "", ""
			}
		}

		target := f.AddSection(modelName)
		target.headerLines = idx.sections[posName]
		if len(target.headerLines) > 0 {
			target.line = target.headerLines[0]
		}

		for _, key := range sec.Keys() {
			values := key.ValueWithShadows()
			lines := idx.keys[posName+"\x00"+strings.ToLower(key.Name())]
			for i, v := range values {
				e := Entry{Key: key.Name(), Value: v}
				if i < len(lines) {
					e.Line = lines[i]
				}
				target.entries = append(target.entries, e)
			}
		}
	}
	return f, nil
}

// positions records where section headers and keys occur in the raw
// source. The INI library does not track line numbers, so they come from a
// line scan that follows the same dialect rules: indented lines are value
// continuations, `#`/`;` start full-line comments.
type positions struct {
	sections map[string][]int // lowered section name -> header lines
	keys     map[string][]int // lowered section + NUL + key -> lines, in occurrence order
}

func scanPositions(data []byte) positions {
	idx := positions{
		sections: make(map[string][]int),
		keys:     make(map[string][]int),
	}

	section := ""
	for n, line := range strings.Split(string(data), "\n") {
		if line == "" {
			continue
		}
		// Indented lines continue the previous value.
		if line[0] == ' ' || line[0] == '\t' {
			continue
		}
		line = strings.TrimRight(line, " \t\r")
		if line == "" || line[0] == '#' || line[0] == ';' {
			continue
		}
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			section = strings.ToLower(strings.TrimSpace(line[1 : len(line)-1]))
			idx.sections[section] = append(idx.sections[section], n+1)
			continue
		}
		if i := strings.IndexAny(line, "=:"); i >= 0 {
			key := strings.ToLower(strings.TrimSpace(line[:i]))
			if key != "" {
				id := section + "\x00" + key
				idx.keys[id] = append(idx.keys[id], n+1)
			}
		}
	}
	return idx
}
