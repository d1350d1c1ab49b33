package rcfile

import (
	"bytes"
	"fmt"
	"os"
	"strings"
)

// Encode renders the document in the configparser dialect. Multiline
// values are written with indented continuation lines; the INI library's
// own writer is not used here because it quotes such values in a form
// configparser does not read.
func Encode(f *File) []byte {
	var buf bytes.Buffer
	for i, sec := range f.Sections() {
		if i > 0 {
			buf.WriteString("\n")
		}
		if sec.Name() != "" {
			fmt.Fprintf(&buf, "[%s]\n", sec.Name())
		}
		for _, e := range sec.Entries() {
			writeEntry(&buf, e)
		}
	}
	return buf.Bytes()
}

// Save writes the encoded document to path.
func Save(f *File, path string) error {
	if err := os.WriteFile(path, Encode(f), 0600); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func writeEntry(buf *bytes.Buffer, e Entry) {
	lines := strings.Split(e.Value, "\n")
	fmt.Fprintf(buf, "%s=%s\n", e.Key, strings.TrimRight(lines[0], " \t"))
	indent := strings.Repeat(" ", len(e.Key)+1)
	for _, line := range lines[1:] {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fmt.Fprintf(buf, "%s%s\n", indent, line)
	}
}
