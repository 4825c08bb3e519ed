package tui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gokatarajesh/digilit/internal/typing"
)

// TypingModel renders a typing session with a live correctness overlay.
type TypingModel struct {
	session *typing.Session
	tips    []string
	input   []rune
	tooFast bool
}

func NewTypingModel(session *typing.Session, tips []string) *TypingModel {
	return &TypingModel{session: session, tips: tips}
}

// Init implements tea.Model.
func (m *TypingModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *TypingModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyCtrlR:
		m.reset()
	case tea.KeyTab:
		m.skip()
	case tea.KeyEnter:
		if m.session.Completed() {
			m.skip()
		}
	case tea.KeyBackspace, tea.KeyDelete:
		if len(m.input) > 0 {
			m.edit(m.input[:len(m.input)-1])
		}
	case tea.KeySpace:
		m.edit(append(m.input, ' '))
	case tea.KeyRunes:
		m.edit(append(m.input, key.Runes...))
	}
	return m, nil
}

func (m *TypingModel) edit(next []rune) {
	if m.session.Completed() {
		return
	}
	m.input = next
	err := m.session.SubmitInput(string(next))
	m.tooFast = errors.Is(err, typing.ErrUndefinedSpeed)
}

// reset restarts the current lesson.
func (m *TypingModel) reset() {
	_ = m.session.Start(m.session.Index())
	m.input = nil
	m.tooFast = false
}

// skip moves to the next lesson, completed or not.
func (m *TypingModel) skip() {
	m.session.Advance()
	m.input = nil
	m.tooFast = false
}

// View implements tea.Model.
func (m *TypingModel) View() string {
	var b strings.Builder
	p := m.session.Progress()
	fmt.Fprintf(&b, "%s %s\n\n", titleStyle.Render(fmt.Sprintf("Lesson %d", p.Lesson)), mutedStyle.Render(fmt.Sprintf("of %d", p.Lessons)))
	b.WriteString(m.renderOverlay())
	b.WriteString("\n\n")

	switch wpm, ok := m.session.WPM(); {
	case ok:
		b.WriteString(goodStyle.Render(fmt.Sprintf("Completed! %d WPM", wpm)))
		b.WriteString("\n" + footerStyle.Render("enter: next lesson"))
	case m.session.Completed() && m.tooFast:
		b.WriteString(goodStyle.Render("Completed!") + " " + mutedStyle.Render("too fast to measure speed"))
		b.WriteString("\n" + footerStyle.Render("enter: next lesson"))
	default:
		b.WriteString(mutedStyle.Render("> " + string(m.input)))
		b.WriteString("\n" + progressBar(float64(p.Percent()), barWidth))
	}

	if len(m.tips) > 0 {
		b.WriteString("\n\n" + titleStyle.Render("Tips"))
		for _, tip := range m.tips {
			b.WriteString("\n" + mutedStyle.Render("• "+tip))
		}
	}
	b.WriteString("\n\n" + footerStyle.Render("ctrl+r: reset  tab: skip  esc: quit"))
	return b.String()
}

func (m *TypingModel) renderOverlay() string {
	var b strings.Builder
	for mark := range m.session.Overlay() {
		ch := string(mark.Char)
		switch mark.Status {
		case typing.StatusCorrect:
			b.WriteString(typedStyle.Render(ch))
		case typing.StatusIncorrect:
			b.WriteString(wrongStyle.Render(ch))
		default:
			b.WriteString(pendingStyle.Render(ch))
		}
	}
	return b.String()
}
