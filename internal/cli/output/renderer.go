// Package output renders command results as styled terminal text,
// markdown, or JSON. Commands pick the representation through a single
// Renderer so every surface honors the same mode and TTY rules.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Mode selects the output representation.
type Mode string

// OutputMode is an alias for Mode.
type OutputMode = Mode

const (
	// ModeAuto picks text on a terminal and markdown when piped.
	ModeAuto Mode = "auto"
	// ModeText renders styled human-readable text.
	ModeText Mode = "text"
	// ModeMarkdown renders plain markdown suitable for piping into docs.
	ModeMarkdown Mode = "markdown"
	// ModeJSON renders machine-readable JSON.
	ModeJSON Mode = "json"
)

// Valid reports whether m is a known mode. The empty string counts as
// auto.
func (m Mode) Valid() bool {
	switch m {
	case "", ModeAuto, ModeText, ModeMarkdown, ModeJSON:
		return true
	}
	return false
}

// Renderer writes command output in the selected mode.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	mode   Mode
	isTTY  bool
	styles Styles
}

// NewRenderer creates a renderer, detecting whether out is a terminal.
func NewRenderer(out, errOut io.Writer, mode Mode) *Renderer {
	return NewRendererWithTTY(out, errOut, detectTTY(out), mode)
}

// NewRendererWithTTY creates a renderer with an explicit TTY state.
// Tests use this to force deterministic plain output.
func NewRendererWithTTY(out, errOut io.Writer, isTTY bool, mode Mode) *Renderer {
	styles := PlainStyles()
	if isTTY {
		styles = DefaultStyles()
	}
	return &Renderer{
		out:    out,
		errOut: errOut,
		mode:   mode,
		isTTY:  isTTY,
		styles: styles,
	}
}

func detectTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Mode returns the configured mode, before auto resolution.
func (r *Renderer) Mode() Mode {
	return r.mode
}

// EffectiveMode resolves auto: text on a terminal, markdown when piped.
func (r *Renderer) EffectiveMode() Mode {
	if r.mode == "" || r.mode == ModeAuto {
		if r.isTTY {
			return ModeText
		}
		return ModeMarkdown
	}
	return r.mode
}

// IsTTY reports whether output goes to a terminal.
func (r *Renderer) IsTTY() bool {
	return r.isTTY
}

// Writer returns the underlying output writer, for encoders and tables
// that write directly.
func (r *Renderer) Writer() io.Writer {
	return r.out
}

// ErrWriter returns the error output writer.
func (r *Renderer) ErrWriter() io.Writer {
	return r.errOut
}

// Styles returns the active style set. On a non-TTY it renders plain
// text.
func (r *Renderer) Styles() Styles {
	return r.styles
}

// Println writes a line to the output writer.
func (r *Renderer) Println(args ...any) {
	fmt.Fprintln(r.out, args...)
}

// Printf writes formatted text to the output writer.
func (r *Renderer) Printf(format string, args ...any) {
	fmt.Fprintf(r.out, format, args...)
}

// Header writes a styled section header. Level 1 is the page title,
// anything deeper renders as a subsection.
func (r *Renderer) Header(level int, text string) {
	style := r.styles.Header2
	if level <= 1 {
		style = r.styles.Header1
	}
	fmt.Fprintln(r.out, style.Render(text))
}

// Success writes a confirmation line with a check mark.
func (r *Renderer) Success(msg string) {
	fmt.Fprintf(r.out, "%s %s\n", r.styles.StatusSuccess.String(), r.styles.Success.Render(msg))
}

// Warning writes a cautionary line with a warning marker.
func (r *Renderer) Warning(msg string) {
	fmt.Fprintf(r.out, "%s %s\n", r.styles.Warning.Render("!"), r.styles.Warning.Render(msg))
}

// Muted writes a line in the de-emphasized style.
func (r *Renderer) Muted(msg string) {
	fmt.Fprintln(r.out, r.styles.Muted.Render(msg))
}

// StatusLine writes an indented per-item result line: an icon for the
// status, the item name, and an optional muted detail.
func (r *Renderer) StatusLine(name, status, detail string) {
	var icon string
	switch status {
	case "success", "pass", "ok":
		icon = r.styles.StatusSuccess.String()
	case "warn", "warning":
		icon = r.styles.Warning.Render("!")
	default:
		icon = r.styles.StatusFailed.String()
	}
	line := fmt.Sprintf("  %s %s", icon, name)
	if detail != "" {
		line += " " + r.styles.Muted.Render("("+detail+")")
	}
	fmt.Fprintln(r.out, line)
}

// JSON writes v as indented JSON.
func (r *Renderer) JSON(v any) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
