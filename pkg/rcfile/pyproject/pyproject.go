// Package pyproject bridges pyproject.toml and the ini-style
// configuration model. Checker settings live under [tool.pylint.*]
// tables; this package folds those tables into the same File structure
// the ini decoder produces, so every consumer sees one model regardless
// of which file the project carries.
package pyproject

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-viper/mapstructure/v2"

	"github.com/lintrc/lintrc/pkg/rcfile"
	"github.com/lintrc/lintrc/pkg/rcfile/options"
)

// FileName is the standard project metadata file name.
const FileName = "pyproject.toml"

// ErrNoPylintTable is returned when a pyproject.toml parses but carries
// no [tool.pylint] table.
var ErrNoPylintTable = errors.New("no [tool.pylint] table")

// Locate returns the path of a pyproject.toml in dir, if present.
func Locate(dir string) (string, bool) {
	path := filepath.Join(dir, FileName)
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		return path, true
	}
	return "", false
}

// Load reads a pyproject.toml and decodes its [tool.pylint] tables.
func Load(path string) (*rcfile.File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return Decode(data, path)
}

// Decode folds [tool.pylint] tables into a File. Table names map to
// canonical section names regardless of case, spaces or underscores;
// scalar keys directly under [tool.pylint] land in MASTER. TOML native
// values are rendered into the textual form an ini-style file carries:
// arrays become comma lists, booleans become yes/no.
func Decode(data []byte, name string) (*rcfile.File, error) {
	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}

	pylint, ok := pylintTable(doc)
	if !ok {
		return nil, fmt.Errorf("%s: %w", name, ErrNoPylintTable)
	}

	f := rcfile.NewFile(name)

	type table struct {
		section string
		entries map[string]string
	}
	var tables []table
	topLevel := make(map[string]any)

	for k, v := range pylint {
		sub, isTable := v.(map[string]any)
		if !isTable {
			topLevel[k] = v
			continue
		}
		entries, err := decodeTable(sub)
		if err != nil {
			return nil, fmt.Errorf("parse %s: table %q: %w", name, k, err)
		}
		tables = append(tables, table{section: CanonicalSection(k), entries: entries})
	}
	if len(topLevel) > 0 {
		entries, err := decodeTable(topLevel)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		tables = append(tables, table{section: "MASTER", entries: entries})
	}

	// TOML table order is not observable through a map, so impose the
	// reference section order for a stable result.
	sort.SliceStable(tables, func(i, j int) bool {
		si, sj := options.SectionIndex(tables[i].section), options.SectionIndex(tables[j].section)
		if si != sj {
			return si < sj
		}
		return tables[i].section < tables[j].section
	})

	for _, t := range tables {
		sec := f.AddSection(t.section)
		keys := make([]string, 0, len(t.entries))
		for k := range t.entries {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			sec.Add(normalizeKey(k), t.entries[k])
		}
	}
	return f, nil
}

// Encode renders a File as a pyproject.toml fragment holding only the
// [tool.pylint.*] tables. Values typed by the option catalog keep their
// TOML native form; orphan entries are folded into the master table.
func Encode(f *rcfile.File) ([]byte, error) {
	pylint := make(map[string]any)
	for _, sec := range f.Sections() {
		if len(sec.Entries()) == 0 {
			continue
		}
		name := tableName(sec.Name())
		table, ok := pylint[name].(map[string]any)
		if !ok {
			table = make(map[string]any)
			pylint[name] = table
		}
		for _, key := range sec.Keys() {
			value, _ := sec.Get(key)
			table[key] = typedValue(key, value)
		}
	}

	root := map[string]any{
		"tool": map[string]any{"pylint": pylint},
	}
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.Indent = ""
	if err := enc.Encode(root); err != nil {
		return nil, fmt.Errorf("encode %s: %w", f.Name(), err)
	}
	return buf.Bytes(), nil
}

// CanonicalSection maps a TOML table name to the canonical ini section
// name: case folds up, underscores become spaces, and the modern "main"
// alias maps to MASTER.
func CanonicalSection(name string) string {
	section := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(name), "_", " "))
	if section == "MAIN" {
		return "MASTER"
	}
	return section
}

// tableName is the inverse of CanonicalSection.
func tableName(section string) string {
	if section == "" {
		section = "MASTER"
	}
	return strings.ToLower(strings.ReplaceAll(section, " ", "_"))
}

// normalizeKey folds TOML underscore keys to the dashed form ini files
// use.
func normalizeKey(key string) string {
	return strings.ReplaceAll(strings.TrimSpace(key), "_", "-")
}

// decodeTable renders a TOML table's values into strings.
func decodeTable(table map[string]any) (map[string]string, error) {
	out := make(map[string]string)
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: renderHook,
		Result:     &out,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(table); err != nil {
		return nil, err
	}
	return out, nil
}

// renderHook converts TOML native values to their ini textual form when
// the target is a string.
func renderHook(_ reflect.Type, to reflect.Type, data any) (any, error) {
	if to.Kind() != reflect.String {
		return data, nil
	}
	return renderValue(data)
}

func renderValue(v any) (string, error) {
	switch v := v.(type) {
	case string:
		return v, nil
	case bool:
		if v {
			return "yes", nil
		}
		return "no", nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case int:
		return strconv.Itoa(v), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			s, err := renderValue(item)
			if err != nil {
				return "", err
			}
			parts = append(parts, s)
		}
		return strings.Join(parts, ","), nil
	case []string:
		return strings.Join(v, ","), nil
	}
	return "", fmt.Errorf("unsupported value type %T", v)
}

// typedValue converts an ini textual value back to the TOML native form
// the option catalog prescribes. Unknown keys keep comma lists as
// arrays and everything else as strings.
func typedValue(key, value string) any {
	opt, known := options.Lookup(key)
	if known {
		switch {
		case opt.Kind == options.KindInt:
			if n, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
				return n
			}
			return value
		case opt.Kind == options.KindBool:
			if b, ok := parseBool(value); ok {
				return b
			}
			return value
		case opt.Kind.IsList():
			return listOrEmpty(value)
		default:
			return value
		}
	}
	if strings.Contains(value, ",") {
		return listOrEmpty(value)
	}
	return value
}

func listOrEmpty(value string) []string {
	items := rcfile.SplitList(value)
	if items == nil {
		return []string{}
	}
	return items
}

func parseBool(value string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "yes", "true", "on", "1":
		return true, true
	case "no", "false", "off", "0":
		return false, true
	}
	return false, false
}

// pylintTable digs tool.pylint out of a parsed document.
func pylintTable(doc map[string]any) (map[string]any, bool) {
	tool, ok := doc["tool"].(map[string]any)
	if !ok {
		return nil, false
	}
	pylint, ok := tool["pylint"].(map[string]any)
	return pylint, ok
}
