package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// wizardStep identifies the current step.
type wizardStep int

const (
	stepLineLength wizardStep = iota
	stepMessages
	stepPreset
	stepConfirm
)

// disableCandidate is one toggleable entry in the message step.
type disableCandidate struct {
	symbol  string
	reason  string
	checked bool
}

// wizardCandidates lists the messages the wizard offers to suppress.
var wizardCandidates = []struct {
	symbol string
	reason string
}{
	{"bad-continuation", "Conflicts with black-style formatting"},
	{"no-member", "False positives on C extension members"},
	{"not-callable", "False positives on wrapped callables"},
	{"arguments-differ", "Framework overrides change signatures"},
	{"duplicate-code", "Similarity checks misfire on boilerplate"},
	{"missing-function-docstring", "Docstrings optional for small helpers"},
	{"invalid-name", "Accept unconventional names everywhere"},
	{"too-few-public-methods", "Small data classes are fine"},
}

// thresholdPreset bundles the design thresholds the wizard offers.
type thresholdPreset struct {
	name               string
	description        string
	minPublicMethods   int
	maxAttributes      int
	maxLocals          int
	maxArgs            int
	minSimilarityLines int
}

var thresholdPresets = []thresholdPreset{
	{name: "strict", description: "The checker's stock thresholds", minPublicMethods: 2, maxAttributes: 7, maxLocals: 15, maxArgs: 5, minSimilarityLines: 4},
	{name: "balanced", description: "Slightly loosened for growing codebases", minPublicMethods: 1, maxAttributes: 10, maxLocals: 20, maxArgs: 7, minSimilarityLines: 6},
	{name: "relaxed", description: "Loosened for scientific and numeric code", minPublicMethods: 0, maxAttributes: 12, maxLocals: 25, maxArgs: 10, minSimilarityLines: 10},
}

// presetItem implements list.Item for preset selection.
type presetItem struct {
	preset thresholdPreset
}

func (p presetItem) Title() string       { return p.preset.name }
func (p presetItem) Description() string { return p.preset.description }
func (p presetItem) FilterValue() string { return p.preset.name }

// wizardStyles
var (
	wizardTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("39")).
				MarginBottom(1)

	wizardStepStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	wizardActiveStepStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("39"))

	wizardLabelStyle = lipgloss.NewStyle().
				Bold(true).
				MarginBottom(1)

	wizardValueStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("39"))

	wizardSelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("170"))

	wizardDimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// wizardModel drives the multi-step configuration wizard.
type wizardModel struct {
	step wizardStep
	data TemplateData

	// Step 1: line length
	lengthInput textinput.Model
	lengthErr   string

	// Step 2: messages
	candidates []disableCandidate
	msgCursor  int

	// Step 3: thresholds
	presetList list.Model

	width  int
	height int
}

func newWizardModel(defaults TemplateData) wizardModel {
	li := textinput.New()
	li.Placeholder = "88"
	li.SetValue(strconv.Itoa(defaults.MaxLineLength))
	li.Focus()
	li.CharLimit = 4
	li.Width = 20

	candidates := make([]disableCandidate, 0, len(wizardCandidates))
	for _, c := range wizardCandidates {
		candidates = append(candidates, disableCandidate{
			symbol:  c.symbol,
			reason:  c.reason,
			checked: containsFold(defaults.Disable, c.symbol),
		})
	}

	items := make([]list.Item, 0, len(thresholdPresets))
	for _, p := range thresholdPresets {
		items = append(items, presetItem{preset: p})
	}
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = wizardSelectedStyle
	delegate.Styles.SelectedDesc = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	l := list.New(items, delegate, 60, 11)
	l.Title = ""
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	// Default selection matches the stock template's thresholds
	l.Select(len(thresholdPresets) - 1)

	return wizardModel{
		step:        stepLineLength,
		data:        defaults,
		lengthInput: li,
		candidates:  candidates,
		presetList:  l,
	}
}

func containsFold(items []string, target string) bool {
	for _, item := range items {
		if strings.EqualFold(item, target) {
			return true
		}
	}
	return false
}

func (w *wizardModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update processes a message and returns (done, data, cmd).
// done=true with non-nil data means the wizard completed.
// done=true with nil data means the wizard was cancelled.
func (w *wizardModel) Update(msg tea.Msg) (bool, *TemplateData, tea.Cmd) {
	if sizeMsg, ok := msg.(tea.WindowSizeMsg); ok {
		w.width = sizeMsg.Width
		w.height = sizeMsg.Height
		if w.width > 4 {
			w.presetList.SetWidth(w.width - 4)
		}
		return false, nil, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyCtrlC:
			return true, nil, nil
		case tea.KeyEsc:
			return w.handleBack()
		}
	}

	switch w.step {
	case stepLineLength:
		return w.updateLineLength(msg)
	case stepMessages:
		return w.updateMessages(msg)
	case stepPreset:
		return w.updatePreset(msg)
	case stepConfirm:
		return w.updateConfirm(msg)
	}

	return false, nil, nil
}

func (w *wizardModel) handleBack() (bool, *TemplateData, tea.Cmd) {
	switch w.step {
	case stepLineLength:
		// Esc at first step cancels wizard
		return true, nil, nil
	case stepMessages:
		w.step = stepLineLength
		w.lengthInput.Focus()
		return false, nil, textinput.Blink
	case stepPreset:
		w.step = stepMessages
		return false, nil, nil
	case stepConfirm:
		w.step = stepPreset
		return false, nil, nil
	}
	return false, nil, nil
}

func (w *wizardModel) updateLineLength(msg tea.Msg) (bool, *TemplateData, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEnter {
		raw := strings.TrimSpace(w.lengthInput.Value())
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			w.lengthErr = "enter a positive number"
			return false, nil, nil
		}
		w.lengthErr = ""
		w.data.MaxLineLength = n
		w.step = stepMessages
		w.lengthInput.Blur()
		return false, nil, nil
	}

	var cmd tea.Cmd
	w.lengthInput, cmd = w.lengthInput.Update(msg)
	return false, nil, cmd
}

func (w *wizardModel) updateMessages(msg tea.Msg) (bool, *TemplateData, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter":
			var disable []string
			for _, c := range w.candidates {
				if c.checked {
					disable = append(disable, c.symbol)
				}
			}
			w.data.Disable = disable
			w.step = stepPreset
			return false, nil, nil
		case "j", "down":
			w.msgCursor = (w.msgCursor + 1) % len(w.candidates)
			return false, nil, nil
		case "k", "up":
			w.msgCursor = (w.msgCursor - 1 + len(w.candidates)) % len(w.candidates)
			return false, nil, nil
		case " ":
			w.candidates[w.msgCursor].checked = !w.candidates[w.msgCursor].checked
			return false, nil, nil
		}
	}
	return false, nil, nil
}

func (w *wizardModel) updatePreset(msg tea.Msg) (bool, *TemplateData, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEnter {
		if item, ok := w.presetList.SelectedItem().(presetItem); ok {
			p := item.preset
			w.data.MinPublicMethods = p.minPublicMethods
			w.data.MaxAttributes = p.maxAttributes
			w.data.MaxLocals = p.maxLocals
			w.data.MaxArgs = p.maxArgs
			w.data.MinSimilarityLines = p.minSimilarityLines
			w.step = stepConfirm
		}
		return false, nil, nil
	}

	var cmd tea.Cmd
	w.presetList, cmd = w.presetList.Update(msg)
	return false, nil, cmd
}

func (w *wizardModel) updateConfirm(msg tea.Msg) (bool, *TemplateData, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter", "y":
			data := w.data
			return true, &data, nil
		case "n":
			// Restart wizard
			defaults := DefaultTemplateData()
			fresh := newWizardModel(defaults)
			fresh.width = w.width
			fresh.height = w.height
			*w = fresh
			return false, nil, textinput.Blink
		}
	}
	return false, nil, nil
}

func (w *wizardModel) View() string {
	var b strings.Builder

	b.WriteString(wizardTitleStyle.Render("Create Pylint Configuration"))
	b.WriteString("\n")
	b.WriteString(w.progressBar())
	b.WriteString("\n\n")

	switch w.step {
	case stepLineLength:
		b.WriteString(wizardLabelStyle.Render("Maximum line length:"))
		b.WriteString("\n")
		b.WriteString(w.lengthInput.View())
		b.WriteString("\n\n")
		if w.lengthErr != "" {
			b.WriteString(wizardDimStyle.Render(w.lengthErr))
			b.WriteString("\n")
		}
		b.WriteString(wizardDimStyle.Render("88 matches black; 100 is the checker default. Enter to continue."))
	case stepMessages:
		b.WriteString(wizardLabelStyle.Render("Messages to suppress:"))
		b.WriteString("\n\n")
		for i, c := range w.candidates {
			b.WriteString(w.renderCandidate(i, c))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(wizardDimStyle.Render("Space to toggle, Enter to continue, Esc to go back."))
	case stepPreset:
		b.WriteString(wizardLabelStyle.Render("Design thresholds:"))
		b.WriteString("\n")
		b.WriteString(w.presetList.View())
	case stepConfirm:
		b.WriteString(wizardLabelStyle.Render("Confirm:"))
		b.WriteString("\n\n")
		b.WriteString(fmt.Sprintf("  Line length:  %s\n", wizardValueStyle.Render(strconv.Itoa(w.data.MaxLineLength))))
		b.WriteString(fmt.Sprintf("  Suppressed:   %s\n", wizardValueStyle.Render(summarizeList(w.data.Disable))))
		b.WriteString(fmt.Sprintf("  Thresholds:   %s\n", wizardValueStyle.Render(fmt.Sprintf(
			"max-args=%d max-locals=%d max-attributes=%d min-public-methods=%d",
			w.data.MaxArgs, w.data.MaxLocals, w.data.MaxAttributes, w.data.MinPublicMethods))))
		b.WriteString("\n")
		b.WriteString(wizardDimStyle.Render("Enter to create, n to restart, Esc to go back."))
	}

	return b.String()
}

func (w *wizardModel) renderCandidate(i int, c disableCandidate) string {
	cursor := " "
	if w.msgCursor == i {
		cursor = ">"
	}
	checked := " "
	if c.checked {
		checked = "x"
	}

	line := fmt.Sprintf("  %s [%s] %s", cursor, checked, c.symbol)
	if w.msgCursor == i {
		return wizardSelectedStyle.Render(line) + "  " + wizardDimStyle.Render(c.reason)
	}
	return line + "  " + wizardDimStyle.Render(c.reason)
}

func (w *wizardModel) progressBar() string {
	steps := []struct {
		num  int
		name string
	}{
		{1, "Line length"},
		{2, "Messages"},
		{3, "Thresholds"},
		{4, "Confirm"},
	}

	var parts []string
	for _, s := range steps {
		label := fmt.Sprintf("%d. %s", s.num, s.name)
		if s.num == int(w.step)+1 {
			parts = append(parts, wizardActiveStepStyle.Render(label))
		} else {
			parts = append(parts, wizardStepStyle.Render(label))
		}
	}

	return strings.Join(parts, wizardDimStyle.Render(" > "))
}

func summarizeList(items []string) string {
	if len(items) == 0 {
		return "(none)"
	}
	if len(items) <= 3 {
		return strings.Join(items, ", ")
	}
	return fmt.Sprintf("%s, +%d more", strings.Join(items[:3], ", "), len(items)-3)
}

// initWizard adapts wizardModel to the tea.Model interface.
type initWizard struct {
	wizard wizardModel
	done   bool
	result *TemplateData
}

func (m initWizard) Init() tea.Cmd {
	return m.wizard.Init()
}

func (m initWizard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	done, result, cmd := m.wizard.Update(msg)
	if done {
		m.done = true
		m.result = result
		return m, tea.Quit
	}
	return m, cmd
}

func (m initWizard) View() string {
	if m.done {
		return ""
	}
	return m.wizard.View()
}

// runInitWizard runs the interactive wizard and returns the collected
// template data, or nil when the user cancelled.
func runInitWizard(defaults TemplateData) (*TemplateData, error) {
	p := tea.NewProgram(initWizard{wizard: newWizardModel(defaults)})
	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("wizard failed: %w", err)
	}
	return final.(initWizard).result, nil
}
