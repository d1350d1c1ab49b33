package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newBufferRenderer(mode Mode, isTTY bool) (*Renderer, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return NewRendererWithTTY(buf, &bytes.Buffer{}, isTTY, mode), buf
}

func TestModeValid(t *testing.T) {
	assert.True(t, Mode("").Valid())
	assert.True(t, ModeAuto.Valid())
	assert.True(t, ModeText.Valid())
	assert.True(t, ModeMarkdown.Valid())
	assert.True(t, ModeJSON.Valid())
	assert.False(t, Mode("yaml").Valid())
}

func TestEffectiveMode(t *testing.T) {
	tests := []struct {
		name  string
		mode  Mode
		isTTY bool
		want  Mode
	}{
		{"auto on tty", ModeAuto, true, ModeText},
		{"auto piped", ModeAuto, false, ModeMarkdown},
		{"empty piped", Mode(""), false, ModeMarkdown},
		{"explicit text piped", ModeText, false, ModeText},
		{"explicit markdown on tty", ModeMarkdown, true, ModeMarkdown},
		{"explicit json", ModeJSON, false, ModeJSON},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := newBufferRenderer(tt.mode, tt.isTTY)
			assert.Equal(t, tt.want, r.EffectiveMode())
			assert.Equal(t, tt.mode, r.Mode())
			assert.Equal(t, tt.isTTY, r.IsTTY())
		})
	}
}

func TestPrintlnAndPrintf(t *testing.T) {
	r, buf := newBufferRenderer(ModeText, false)
	r.Println("hello")
	r.Printf("%d files\n", 3)
	assert.Equal(t, "hello\n3 files\n", buf.String())
}

func TestHeader(t *testing.T) {
	r, buf := newBufferRenderer(ModeText, false)
	r.Header(1, "Report")
	r.Header(2, "Details")
	assert.Equal(t, "Report\nDetails\n", buf.String())
}

func TestStatusLine(t *testing.T) {
	r, buf := newBufferRenderer(ModeText, false)
	r.StatusLine(".pylintrc", "success", "")
	r.StatusLine("pyproject.toml", "failed", "2 problems")
	r.StatusLine("setup.cfg", "warn", "")

	out := buf.String()
	assert.Contains(t, out, "✓ .pylintrc")
	assert.Contains(t, out, "✗ pyproject.toml (2 problems)")
	assert.Contains(t, out, "! setup.cfg")
}

func TestSuccessAndWarningAndMuted(t *testing.T) {
	r, buf := newBufferRenderer(ModeText, false)
	r.Success("written")
	r.Warning("stale option")
	r.Muted("details")

	out := buf.String()
	assert.Contains(t, out, "✓ written")
	assert.Contains(t, out, "! stale option")
	assert.Contains(t, out, "details")
}

func TestJSON(t *testing.T) {
	r, buf := newBufferRenderer(ModeJSON, false)
	require.NoError(t, r.JSON(VerifyOutput{
		ReportID: "r-1",
		Summary:  VerifySummary{FilesChecked: 1, FilesClean: 1},
	}))

	var decoded VerifyOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "r-1", decoded.ReportID)
	assert.Equal(t, 1, decoded.Summary.FilesChecked)
}

func TestPlainStylesProduceNoANSI(t *testing.T) {
	r, buf := newBufferRenderer(ModeText, false)
	styles := r.Styles()
	r.Println(styles.Header1.Render("title"))
	r.Println(styles.Error.Render("bad"))
	r.Println(styles.StatusSuccess.String())

	assert.NotContains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "title")
	assert.Contains(t, buf.String(), "✓")
}

func TestFormatHeader(t *testing.T) {
	assert.Equal(t, "# Title", FormatHeader(1, "Title"))
	assert.Equal(t, "## Sub", FormatHeader(2, "Sub"))
	assert.Equal(t, "# Clamped", FormatHeader(0, "Clamped"))
	assert.Equal(t, "###### Deep", FormatHeader(9, "Deep"))
}

func TestFormatKeyValue(t *testing.T) {
	assert.Equal(t, "- **Path**: .pylintrc", FormatKeyValue("Path", ".pylintrc"))
}

func TestFormatCodeBlock(t *testing.T) {
	got := FormatCodeBlock("ini", "[FORMAT]\nmax-line-length=88\n")
	assert.Equal(t, "```ini\n[FORMAT]\nmax-line-length=88\n```", got)
}

func TestSpinnerNonTTY(t *testing.T) {
	r, buf := newBufferRenderer(ModeText, false)
	s := r.NewSpinner("checking files")
	s.Success("all clean")

	out := buf.String()
	assert.Contains(t, out, "checking files")
	assert.Contains(t, out, "✓ all clean")
}

func TestSpinnerTTYStops(t *testing.T) {
	r, _ := newBufferRenderer(ModeText, true)
	s := r.NewSpinner("working")
	s.Stop()
	// Stop twice is safe.
	s.Stop()
}
