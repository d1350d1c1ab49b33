// Package docs generates the static configuration reference: one
// markdown page per option section, one page for checker messages, an
// index, and a machine-readable catalog.json.
package docs

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lintrc/lintrc/pkg/rcfile/messages"
	"github.com/lintrc/lintrc/pkg/rcfile/options"
)

// Catalog is the machine-readable payload written alongside the pages.
type Catalog struct {
	GeneratedAt time.Time          `json:"generated_at"`
	ProjectName string             `json:"project_name"`
	Options     []options.Option   `json:"options"`
	Messages    []messages.Message `json:"messages"`
}

// Generator generates the reference from the registered catalogs.
type Generator struct {
	projectName string
}

// NewGenerator creates a new documentation generator.
func NewGenerator(projectName string) *Generator {
	return &Generator{projectName: projectName}
}

// GenerateCatalog snapshots the option and message catalogs.
func (g *Generator) GenerateCatalog() *Catalog {
	return &Catalog{
		GeneratedAt: time.Now().UTC(),
		ProjectName: g.projectName,
		Options:     options.All(),
		Messages:    messages.All(),
	}
}

// Build writes the reference pages to the output directory and returns
// the paths written, relative to it.
func (g *Generator) Build(outputDir string) ([]string, error) {
	if err := os.MkdirAll(filepath.Join(outputDir, "options"), 0750); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	dataDir := filepath.Join(outputDir, "data")
	if err := os.MkdirAll(dataDir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	var written []string
	write := func(relPath string, content []byte) error {
		if err := os.WriteFile(filepath.Join(outputDir, relPath), content, 0600); err != nil {
			return fmt.Errorf("failed to write %s: %w", relPath, err)
		}
		written = append(written, relPath)
		return nil
	}

	if err := write("index.md", g.renderIndex()); err != nil {
		return nil, err
	}
	for _, section := range options.Sections() {
		relPath := filepath.Join("options", SectionSlug(section)+".md")
		if err := write(relPath, renderSectionPage(section)); err != nil {
			return nil, err
		}
	}
	if err := write("messages.md", renderMessagesPage()); err != nil {
		return nil, err
	}

	catalogJSON, err := json.MarshalIndent(g.GenerateCatalog(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal catalog: %w", err)
	}
	if err := write(filepath.Join("data", "catalog.json"), catalogJSON); err != nil {
		return nil, err
	}

	return written, nil
}

// SectionSlug turns a section name into a page file name,
// e.g. "MESSAGES CONTROL" becomes "messages-control".
func SectionSlug(section string) string {
	return strings.ReplaceAll(strings.ToLower(section), " ", "-")
}

func (g *Generator) renderIndex() []byte {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "# %s Configuration Reference\n\n", g.projectName)
	buf.WriteString("Reference for the options and checker messages a pylint configuration\n")
	buf.WriteString("file can carry, in either the pylintrc INI form or the\n")
	buf.WriteString("`[tool.pylint]` tables of `pyproject.toml`.\n\n")

	buf.WriteString("## Option Sections\n\n")
	for _, section := range options.Sections() {
		count := len(options.BySection(section))
		fmt.Fprintf(&buf, "- [[%s]](options/%s.md) (%d options)\n", section, SectionSlug(section), count)
	}
	buf.WriteString("\n## Messages\n\n")
	fmt.Fprintf(&buf, "- [Checker Messages](messages.md) (%d messages)\n", messages.Count())

	return buf.Bytes()
}

func renderSectionPage(section string) []byte {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "# [%s]\n\n", section)

	for _, opt := range options.BySection(section) {
		fmt.Fprintf(&buf, "## %s\n\n", opt.Key)
		fmt.Fprintf(&buf, "**Kind:** `%s`\n\n", opt.Kind.String())
		if opt.Default != "" {
			fmt.Fprintf(&buf, "**Default:** `%s`\n\n", opt.Default)
		}
		if len(opt.Choices) > 0 {
			fmt.Fprintf(&buf, "**Choices:** `%s`\n\n", strings.Join(opt.Choices, "`, `"))
		}
		buf.WriteString(opt.Description)
		buf.WriteString("\n\n")
		if opt.Deprecated {
			if opt.ReplacedBy != "" {
				fmt.Fprintf(&buf, "**Deprecated.** Use `%s` instead.\n\n", opt.ReplacedBy)
			} else {
				buf.WriteString("**Deprecated.**\n\n")
			}
		}
	}

	return buf.Bytes()
}

func renderMessagesPage() []byte {
	var buf bytes.Buffer

	buf.WriteString("# Checker Messages\n\n")
	buf.WriteString("Messages a configuration may name in `disable` and `enable` lists,\n")
	buf.WriteString("by id or by symbol.\n\n")

	for _, cat := range messages.Categories() {
		msgs := messages.ByCategory(cat)
		if len(msgs) == 0 {
			continue
		}
		name := cat.Name()
		fmt.Fprintf(&buf, "## %s (%s)\n\n", strings.ToUpper(name[:1])+name[1:], cat)
		for _, msg := range msgs {
			fmt.Fprintf(&buf, "### %s - %s\n\n", msg.ID, msg.Symbol)
			buf.WriteString(msg.Description)
			buf.WriteString("\n\n")
			if msg.Removed() {
				fmt.Fprintf(&buf, "**Removed in release %s.**\n\n", msg.RemovedIn)
			} else if msg.RenamedTo != "" {
				fmt.Fprintf(&buf, "**Renamed to `%s`.**\n\n", msg.RenamedTo)
			}
		}
	}

	return buf.Bytes()
}
