package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gokatarajesh/digilit/internal/content"
	"github.com/gokatarajesh/digilit/internal/quiz"
	"github.com/gokatarajesh/digilit/internal/typing"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func key(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func newQuizModel(t *testing.T) (*QuizModel, *quiz.Session) {
	t.Helper()
	s, err := quiz.Start([]content.QuizQuestion{
		{ID: 1, Question: "First?", Options: []string{"A", "B"}, CorrectAnswer: 1},
		{ID: 2, Question: "Second?", Options: []string{"C", "D", "E"}, CorrectAnswer: 0},
	})
	require.NoError(t, err)
	return NewQuizModel(s), s
}

func TestQuizNumberKeyAnswers(t *testing.T) {
	m, s := newQuizModel(t)

	m.Update(runes("2"))

	assert.Equal(t, quiz.StateAnswered, s.State())
	assert.Equal(t, 1, s.Score())
	assert.True(t, m.celebrate)
	view := m.View()
	assert.Contains(t, view, "Correct!")
	assert.Contains(t, view, "Next Question")
}

func TestQuizCursorAndEnter(t *testing.T) {
	m, s := newQuizModel(t)

	m.Update(key(tea.KeyDown))
	m.Update(key(tea.KeyDown))
	assert.Equal(t, 0, m.cursor)

	m.Update(key(tea.KeyEnter))
	assert.Equal(t, quiz.StateAnswered, s.State())
	assert.Equal(t, 0, s.Score())
	assert.False(t, m.celebrate)
	assert.Contains(t, m.View(), "Not quite right...")
}

func TestQuizSecondAnswerIgnored(t *testing.T) {
	m, s := newQuizModel(t)

	m.Update(runes("1"))
	m.Update(runes("2"))

	selected, _ := s.SelectedAnswer()
	assert.Equal(t, 0, selected)
	assert.Equal(t, 0, s.Score())
}

func TestQuizRunToCompletionAndRestart(t *testing.T) {
	m, s := newQuizModel(t)

	m.Update(runes("2"))
	m.Update(key(tea.KeyEnter))
	assert.Equal(t, 1, s.CurrentIndex())
	assert.Contains(t, m.View(), "Question 2 of 2")

	m.Update(runes("1"))
	assert.Contains(t, m.View(), "Finish Quiz")
	m.Update(key(tea.KeyEnter))

	require.True(t, s.Completed())
	assert.Contains(t, m.View(), "You scored 2 out of 2")

	m.Update(runes("r"))
	assert.False(t, s.Completed())
	assert.Equal(t, 0, s.Score())
	assert.Contains(t, m.View(), "Question 1 of 2")
}

func TestQuizEnterBeforeAnswerSelectsCursor(t *testing.T) {
	m, s := newQuizModel(t)

	m.Update(key(tea.KeyEnter))

	selected, answered := s.SelectedAnswer()
	assert.True(t, answered)
	assert.Equal(t, 0, selected)
}

func TestQuizQuit(t *testing.T) {
	m, _ := newQuizModel(t)

	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func newTypingModel(t *testing.T, sentences ...string) (*TypingModel, *typing.Session, *clock) {
	t.Helper()
	c := &clock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	s, err := typing.NewSession(sentences, typing.SessionOptions{Now: c.now})
	require.NoError(t, err)
	return NewTypingModel(s, typing.Tips), s, c
}

func TestTypingCompletesWithWPM(t *testing.T) {
	m, s, c := newTypingModel(t, "go fast", "next one")

	m.Update(runes("go"))
	c.t = c.t.Add(30 * time.Second)
	m.Update(key(tea.KeySpace))
	m.Update(runes("fast"))

	wpm, ok := s.WPM()
	require.True(t, ok)
	assert.Equal(t, 4, wpm)
	assert.Contains(t, m.View(), "Completed! 4 WPM")

	m.Update(runes("x"))
	assert.Equal(t, "go fast", s.Typed())

	m.Update(key(tea.KeyEnter))
	assert.Equal(t, 2, s.Lesson())
	assert.Empty(t, s.Typed())
	assert.Contains(t, m.View(), "Lesson 2")
}

func TestTypingInstantCompletionHasNoSpeed(t *testing.T) {
	m, s, _ := newTypingModel(t, "hi")

	m.Update(runes("hi"))

	assert.True(t, s.Completed())
	_, ok := s.WPM()
	assert.False(t, ok)
	assert.Contains(t, m.View(), "too fast to measure speed")
}

func TestTypingBackspaceAndReset(t *testing.T) {
	m, s, _ := newTypingModel(t, "abc", "def")

	m.Update(runes("ax"))
	assert.Equal(t, "ax", s.Typed())
	m.Update(key(tea.KeyBackspace))
	assert.Equal(t, "a", s.Typed())

	m.Update(key(tea.KeyCtrlR))
	assert.Empty(t, s.Typed())
	assert.Equal(t, 1, s.Lesson())
	_, started := s.StartedAt()
	assert.False(t, started)
}

func TestTypingSkipWraps(t *testing.T) {
	m, s, _ := newTypingModel(t, "abc", "def")

	m.Update(key(tea.KeyTab))
	assert.Equal(t, "def", s.Target())
	m.Update(key(tea.KeyTab))
	assert.Equal(t, "abc", s.Target())
}

func TestTypingViewShowsTips(t *testing.T) {
	m, _, _ := newTypingModel(t, "abc")

	view := m.View()
	assert.Contains(t, view, "Lesson 1")
	for _, tip := range typing.Tips {
		assert.Contains(t, view, tip)
	}
}

func TestProgressBarBounds(t *testing.T) {
	assert.Equal(t, progressBar(0, 4), progressBar(-10, 4))
	assert.Equal(t, progressBar(100, 4), progressBar(250, 4))
}
