package content

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidRecord marks a record that does not match the published shape.
var ErrInvalidRecord = errors.New("invalid content record")

// Collection names, also used as cache keys and metric labels.
const (
	CollectionStatistics = "statistics"
	CollectionGlossary   = "glossary"
	CollectionQuiz       = "quiz"
)

// Statistic is one data point rendered on the statistics charts.
type Statistic struct {
	ID       int32   `json:"id"`
	Title    string  `json:"title"`
	Value    int32   `json:"value"`
	Label    string  `json:"label"`
	Category string  `json:"category"`
	Year     int32   `json:"year"`
	Source   *string `json:"source"`
}

// GlossaryTerm is a single glossary definition.
type GlossaryTerm struct {
	ID         int32  `json:"id"`
	Term       string `json:"term"`
	Definition string `json:"definition"`
	Category   string `json:"category"`
}

// QuizQuestion is a multiple-choice question. CorrectAnswer indexes Options.
type QuizQuestion struct {
	ID            int32    `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Explanation   *string  `json:"explanation"`
}

// Validate checks the required fields of a statistic.
func (s Statistic) Validate() error {
	if strings.TrimSpace(s.Title) == "" {
		return fmt.Errorf("%w: statistic %d: title is required", ErrInvalidRecord, s.ID)
	}
	if s.Label == "" || s.Category == "" {
		return fmt.Errorf("%w: statistic %d: label and category are required", ErrInvalidRecord, s.ID)
	}
	return nil
}

// Validate checks the required fields of a glossary term.
func (g GlossaryTerm) Validate() error {
	if strings.TrimSpace(g.Term) == "" {
		return fmt.Errorf("%w: glossary term %d: term is required", ErrInvalidRecord, g.ID)
	}
	if g.Definition == "" || g.Category == "" {
		return fmt.Errorf("%w: glossary term %d: definition and category are required", ErrInvalidRecord, g.ID)
	}
	return nil
}

// Validate enforces at least two options and an in-range correct answer.
func (q QuizQuestion) Validate() error {
	if strings.TrimSpace(q.Question) == "" {
		return fmt.Errorf("%w: quiz question %d: question text is required", ErrInvalidRecord, q.ID)
	}
	if len(q.Options) < 2 {
		return fmt.Errorf("%w: quiz question %d: need at least 2 options, got %d", ErrInvalidRecord, q.ID, len(q.Options))
	}
	if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
		return fmt.Errorf("%w: quiz question %d: correct answer %d out of range", ErrInvalidRecord, q.ID, q.CorrectAnswer)
	}
	return nil
}

// UnmarshalJSON rejects records that omit correctAnswer, which would
// otherwise decode as option 0.
func (q *QuizQuestion) UnmarshalJSON(data []byte) error {
	type plain QuizQuestion
	var wire struct {
		plain
		CorrectAnswer *int `json:"correctAnswer"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	if wire.CorrectAnswer == nil {
		return fmt.Errorf("%w: quiz question %d: correctAnswer is required", ErrInvalidRecord, wire.ID)
	}
	*q = QuizQuestion(wire.plain)
	q.CorrectAnswer = *wire.CorrectAnswer
	return nil
}

// ExplanationText returns the explanation or an empty string.
func (q QuizQuestion) ExplanationText() string {
	if q.Explanation == nil {
		return ""
	}
	return *q.Explanation
}
