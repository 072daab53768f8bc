// Package tui provides a live Bubble Tea password strength form.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/AmmannChristian/pwstrength/internal/strength"
)

// Model re-scores the masked input on every keystroke.
type Model struct {
	scorer    *strength.Scorer
	input     textinput.Model
	analysis  strength.Analysis
	submitted bool
}

// NewModel constructs a form bound to scorer. maxLength caps the input in
// characters; zero means no limit.
func NewModel(scorer *strength.Scorer, maxLength int) *Model {
	input := textinput.New()
	input.Prompt = "Password: "
	input.Placeholder = "type to evaluate"
	input.EchoMode = textinput.EchoPassword
	input.EchoCharacter = '•'
	input.CharLimit = maxLength
	input.Focus()

	m := &Model{
		scorer: scorer,
		input:  input,
	}
	m.evaluate()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			m.submitted = true
			return m, tea.Quit
		}
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.evaluate()
	}
	return m, cmd
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	if m.input.Value() == "" {
		b.WriteString(mutedStyle.Render("waiting for input"))
		b.WriteString("\n")
	} else {
		b.WriteString(RenderReport(m.analysis, m.scorer.SpecialChars()))
	}
	b.WriteString("\n")
	b.WriteString(hintStyle.Render("enter accept • esc quit"))
	b.WriteString("\n")
	return b.String()
}

// Analysis returns the latest evaluation and whether the user accepted it
// with enter.
func (m *Model) Analysis() (strength.Analysis, bool) {
	return m.analysis, m.submitted
}

func (m *Model) evaluate() {
	m.analysis = m.scorer.Evaluate(m.input.Value())
}
