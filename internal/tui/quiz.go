package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gokatarajesh/digilit/internal/quiz"
)

const barWidth = 30

// QuizModel renders a quiz session and routes key presses to it.
type QuizModel struct {
	session   *quiz.Session
	cursor    int
	celebrate bool
	width     int
}

func NewQuizModel(session *quiz.Session) *QuizModel {
	return &QuizModel{session: session}
}

// Init implements tea.Model.
func (m *QuizModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *QuizModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	default:
		return m, nil
	}
}

func (m *QuizModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return tea.Quit
	case tea.KeyUp:
		m.moveCursor(-1)
	case tea.KeyDown, tea.KeyTab:
		m.moveCursor(1)
	case tea.KeyEnter:
		m.confirm()
	case tea.KeyRunes:
		m.handleRune(msg.Runes)
	}
	if len(msg.Runes) == 1 && msg.Runes[0] == 'q' {
		return tea.Quit
	}
	return nil
}

func (m *QuizModel) handleRune(runes []rune) {
	if len(runes) != 1 {
		return
	}
	r := runes[0]
	switch {
	case r >= '1' && r <= '9':
		m.choose(int(r - '1'))
	case r == 'k':
		m.moveCursor(-1)
	case r == 'j':
		m.moveCursor(1)
	case r == 'r' && m.session.Completed():
		m.restart()
	}
}

func (m *QuizModel) moveCursor(delta int) {
	if m.session.Completed() {
		return
	}
	n := len(m.session.Current().Options)
	m.cursor = (m.cursor + delta + n) % n
}

func (m *QuizModel) confirm() {
	switch m.session.State() {
	case quiz.StateInProgress:
		m.choose(m.cursor)
	case quiz.StateAnswered:
		if err := m.session.Next(); err == nil {
			m.cursor = 0
			m.celebrate = false
		}
	case quiz.StateCompleted:
		m.restart()
	}
}

func (m *QuizModel) choose(option int) {
	if m.session.Completed() {
		return
	}
	sel, err := m.session.SelectAnswer(option)
	if err != nil || !sel.Accepted {
		return
	}
	m.cursor = option
	m.celebrate = sel.Celebrate
}

func (m *QuizModel) restart() {
	m.session.Restart()
	m.cursor = 0
	m.celebrate = false
}

// View implements tea.Model.
func (m *QuizModel) View() string {
	if m.session.Completed() {
		return m.resultView()
	}

	var b strings.Builder
	p := m.session.Progress()
	fmt.Fprintf(&b, "%s\n", titleStyle.Render("Digital Literacy Quiz"))
	fmt.Fprintf(&b, "Question %d of %d    Score: %d\n", p.Question, p.Total, p.Score)
	fmt.Fprintf(&b, "%s\n\n", progressBar(p.Percent, barWidth))

	q := m.session.Current()
	fmt.Fprintf(&b, "%s\n\n", lipgloss.NewStyle().Bold(true).Render(q.Question))

	statuses := m.session.OptionStatuses()
	for i, opt := range q.Options {
		b.WriteString(m.renderOption(i, opt, statuses[i]))
		b.WriteByte('\n')
	}

	if fb, ok := m.session.Feedback(); ok {
		b.WriteByte('\n')
		verdict := badStyle.Render(fb.Verdict)
		if fb.Correct {
			verdict = goodStyle.Render(fb.Verdict)
		}
		if m.celebrate {
			verdict += " 🎉"
		}
		card := verdict
		if fb.Explanation != "" {
			card += "\n" + fb.Explanation
		}
		b.WriteString(cardStyle.Render(card))
		b.WriteString("\n\n")

		label := "Next Question"
		if m.session.IsLastQuestion() {
			label = "Finish Quiz"
		}
		b.WriteString(footerStyle.Render(fmt.Sprintf("enter: %s  q: quit", label)))
	} else {
		b.WriteString("\n" + footerStyle.Render("1-9 or ↑/↓ + enter: answer  q: quit"))
	}
	return b.String()
}

func (m *QuizModel) renderOption(i int, text string, status quiz.OptionStatus) string {
	marker := "  "
	if i == m.cursor && status == quiz.OptionNeutral {
		marker = cursorStyle.Render("> ")
	}
	line := fmt.Sprintf("%d. %s", i+1, text)
	switch status {
	case quiz.OptionSelectedCorrect, quiz.OptionCorrect:
		line = goodStyle.Render(line + " ✓")
	case quiz.OptionSelectedIncorrect:
		line = badStyle.Render(line + " ✗")
	case quiz.OptionNeutralDisabled:
		line = mutedStyle.Render(line)
	}
	return marker + line
}

func (m *QuizModel) resultView() string {
	res := m.session.Result()
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", titleStyle.Render("Quiz Complete!"))
	fmt.Fprintf(&b, "%s\n\n", res.String())
	b.WriteString(footerStyle.Render("r: try again  q: quit"))
	return b.String()
}
