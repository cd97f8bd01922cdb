// Package textinput is the one-line prompt used to name playlists.
package textinput

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/comrad/internal/ui/styles"
)

const charLimit = 128

// ResultMsg is emitted when the prompt is confirmed or canceled.
type ResultMsg struct {
	Text     string
	Context  any // passed through from Start
	Canceled bool
}

// Model is a titled single-line input.
type Model struct {
	input   textinput.Model
	title   string
	context any
	active  bool
}

// New creates an inactive prompt.
func New() Model {
	in := textinput.New()
	in.Prompt = "> "
	in.CharLimit = charLimit
	in.PromptStyle = styles.T().S().Muted
	in.TextStyle = styles.T().S().Base
	return Model{input: in}
}

// Start activates the prompt with a title and initial text. context is
// handed back in the ResultMsg.
func (m *Model) Start(title, initial string, context any) tea.Cmd {
	m.title = title
	m.context = context
	m.active = true
	m.input.SetValue(initial)
	m.input.CursorEnd()
	return m.input.Focus()
}

// Active reports whether the prompt is collecting input.
func (m Model) Active() bool {
	return m.active
}

// Update handles a message while active. Enter confirms with the trimmed
// text, Esc cancels.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.active {
		return m, nil
	}
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			return m.finish(ResultMsg{Text: strings.TrimSpace(m.input.Value()), Context: m.context})
		case tea.KeyEsc:
			return m.finish(ResultMsg{Context: m.context, Canceled: true})
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) finish(res ResultMsg) (Model, tea.Cmd) {
	m.active = false
	m.context = nil
	m.input.Blur()
	m.input.Reset()
	return m, func() tea.Msg { return res }
}

// View renders "Title: > text" on one line, or nothing when inactive.
func (m Model) View() string {
	if !m.active {
		return ""
	}
	return styles.T().S().Title.Render(m.title+":") + " " + m.input.View()
}
