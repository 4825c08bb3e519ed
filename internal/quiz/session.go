// Package quiz drives a single user through an ordered multiple-choice quiz.
package quiz

import (
	"errors"
	"fmt"
	"slices"

	"github.com/gokatarajesh/digilit/internal/content"
)

var (
	ErrEmptyQuiz          = errors.New("quiz: no questions")
	ErrInvalidOptionIndex = errors.New("quiz: option index out of range")
	ErrPrematureAdvance   = errors.New("quiz: next requested before an answer was selected")
)

// State of the session.
type State string

const (
	StateInProgress State = "in_progress"
	StateAnswered   State = "answered"
	StateCompleted  State = "completed"
)

// OptionStatus is the presentation tag of one answer option.
type OptionStatus string

const (
	OptionNeutral           OptionStatus = "neutral"
	OptionSelectedCorrect   OptionStatus = "selected-correct"
	OptionSelectedIncorrect OptionStatus = "selected-incorrect"
	OptionCorrect           OptionStatus = "correct"
	OptionNeutralDisabled   OptionStatus = "neutral-disabled"
)

// Selection reports the outcome of SelectAnswer.
type Selection struct {
	// Accepted is false when the question had already been answered.
	Accepted bool
	Correct  bool
	// Celebrate asks the presenter to play its correct-answer effect.
	Celebrate bool
}

// Feedback is revealed once the current question is answered.
type Feedback struct {
	Correct     bool
	Verdict     string
	Explanation string
}

// Progress describes the position within the quiz.
type Progress struct {
	Question int // 1-based
	Total    int
	Score    int
	Percent  float64
}

// Result is the final tally.
type Result struct {
	Score int
	Total int
}

func (r Result) String() string {
	return fmt.Sprintf("You scored %d out of %d", r.Score, r.Total)
}

// Session holds one quiz attempt. It is not safe for concurrent use.
type Session struct {
	questions []content.QuizQuestion
	index     int
	selected  int
	answered  bool
	score     int
	completed bool
}

// Start validates questions and begins an attempt at the first question.
// The session keeps its own copy of the list.
func Start(questions []content.QuizQuestion) (*Session, error) {
	if len(questions) == 0 {
		return nil, ErrEmptyQuiz
	}
	for _, q := range questions {
		if err := q.Validate(); err != nil {
			return nil, err
		}
	}
	owned := slices.Clone(questions)
	for i := range owned {
		owned[i].Options = slices.Clone(owned[i].Options)
	}
	return &Session{questions: owned}, nil
}

// SelectAnswer records the answer to the current question. The first answer
// is final: later calls are ignored and report Accepted false.
func (s *Session) SelectAnswer(option int) (Selection, error) {
	if s.answered {
		return Selection{}, nil
	}
	q := s.questions[s.index]
	if option < 0 || option >= len(q.Options) {
		return Selection{}, fmt.Errorf("%w: %d of %d", ErrInvalidOptionIndex, option, len(q.Options))
	}
	s.selected = option
	s.answered = true

	correct := option == q.CorrectAnswer
	if correct {
		s.score++
	}
	return Selection{Accepted: true, Correct: correct, Celebrate: correct}, nil
}

// Next moves past an answered question. On the last question it completes
// the quiz and keeps the current index.
func (s *Session) Next() error {
	if !s.answered {
		return ErrPrematureAdvance
	}
	if s.index == len(s.questions)-1 {
		s.completed = true
		return nil
	}
	s.index++
	s.answered = false
	s.selected = 0
	return nil
}

// Restart begins a new attempt over the same questions.
func (s *Session) Restart() {
	s.index = 0
	s.selected = 0
	s.answered = false
	s.score = 0
	s.completed = false
}

func (s *Session) State() State {
	switch {
	case s.completed:
		return StateCompleted
	case s.answered:
		return StateAnswered
	default:
		return StateInProgress
	}
}

// OptionStatus tags option i of the current question.
func (s *Session) OptionStatus(option int) (OptionStatus, error) {
	q := s.questions[s.index]
	if option < 0 || option >= len(q.Options) {
		return "", fmt.Errorf("%w: %d of %d", ErrInvalidOptionIndex, option, len(q.Options))
	}
	if !s.answered {
		return OptionNeutral, nil
	}
	switch {
	case option == s.selected && option == q.CorrectAnswer:
		return OptionSelectedCorrect, nil
	case option == s.selected:
		return OptionSelectedIncorrect, nil
	case option == q.CorrectAnswer:
		return OptionCorrect, nil
	default:
		return OptionNeutralDisabled, nil
	}
}

// OptionStatuses tags every option of the current question.
func (s *Session) OptionStatuses() []OptionStatus {
	q := s.questions[s.index]
	out := make([]OptionStatus, len(q.Options))
	for i := range q.Options {
		out[i], _ = s.OptionStatus(i)
	}
	return out
}

// Feedback returns the verdict and explanation; ok is false until answered.
func (s *Session) Feedback() (fb Feedback, ok bool) {
	if !s.answered {
		return Feedback{}, false
	}
	q := s.questions[s.index]
	fb = Feedback{
		Correct:     s.selected == q.CorrectAnswer,
		Explanation: q.ExplanationText(),
		Verdict:     "Not quite right...",
	}
	if fb.Correct {
		fb.Verdict = "Correct!"
	}
	return fb, true
}

func (s *Session) Progress() Progress {
	return Progress{
		Question: s.index + 1,
		Total:    len(s.questions),
		Score:    s.score,
		Percent:  float64(s.index+1) / float64(len(s.questions)) * 100,
	}
}

func (s *Session) Result() Result {
	return Result{Score: s.score, Total: len(s.questions)}
}

func (s *Session) Current() content.QuizQuestion { return s.questions[s.index] }
func (s *Session) Questions() []content.QuizQuestion { return slices.Clone(s.questions) }
func (s *Session) CurrentIndex() int { return s.index }
func (s *Session) Score() int { return s.score }
func (s *Session) Completed() bool { return s.completed }

// SelectedAnswer returns the chosen option of the current question.
func (s *Session) SelectedAnswer() (int, bool) {
	return s.selected, s.answered
}

// IsLastQuestion reports whether Next will complete the quiz.
func (s *Session) IsLastQuestion() bool {
	return s.index == len(s.questions)-1
}
