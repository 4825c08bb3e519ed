// Package typing evaluates typed input against practice sentences and
// reports per-character correctness and words per minute.
package typing

import (
	"errors"
	"iter"
	"math"
	"strings"
	"time"
)

var (
	// ErrUndefinedSpeed is returned when a sentence is completed faster than
	// the minimum measurable interval, so no WPM can be computed.
	ErrUndefinedSpeed       = errors.New("typing: elapsed time too short to measure speed")
	ErrNoSentences          = errors.New("typing: no practice sentences")
	ErrInvalidSentenceIndex = errors.New("typing: sentence index out of range")
)

// DefaultMinElapsed is the shortest completion time that yields a WPM.
const DefaultMinElapsed = time.Millisecond

// CharStatus tags one target character in the overlay.
type CharStatus string

const (
	StatusUntyped   CharStatus = "untyped"
	StatusCorrect   CharStatus = "correct"
	StatusIncorrect CharStatus = "incorrect"
)

// CharMark is one entry of the correctness overlay.
type CharMark struct {
	Char   rune
	Status CharStatus
}

// SessionOptions tunes a typing session.
type SessionOptions struct {
	// Now defaults to time.Now.
	Now        func() time.Time
	MinElapsed time.Duration
}

// Session tracks one user typing through a list of sentences.
// It is not safe for concurrent use.
type Session struct {
	sentences  []string
	now        func() time.Time
	minElapsed time.Duration

	index     int
	target    []rune
	typed     []rune
	startedAt time.Time
	started   bool
	completed bool
	wpm       int
	measured  bool
}

// NewSession starts a session on the first sentence.
func NewSession(sentences []string, opts SessionOptions) (*Session, error) {
	if len(sentences) == 0 {
		return nil, ErrNoSentences
	}
	for _, s := range sentences {
		if s == "" {
			return nil, ErrNoSentences
		}
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.MinElapsed <= 0 {
		opts.MinElapsed = DefaultMinElapsed
	}
	s := &Session{
		sentences:  append([]string(nil), sentences...),
		now:        opts.Now,
		minElapsed: opts.MinElapsed,
	}
	if err := s.Start(0); err != nil {
		return nil, err
	}
	return s, nil
}

// Start selects the sentence at index and clears all progress.
func (s *Session) Start(index int) error {
	if index < 0 || index >= len(s.sentences) {
		return ErrInvalidSentenceIndex
	}
	s.index = index
	s.target = []rune(s.sentences[index])
	s.typed = nil
	s.startedAt = time.Time{}
	s.started = false
	s.completed = false
	s.wpm = 0
	s.measured = false
	return nil
}

// Advance moves to the next sentence, wrapping after the last one.
func (s *Session) Advance() {
	_ = s.Start((s.index + 1) % len(s.sentences))
}

// SubmitInput replaces the typed buffer with text. The clock starts on the
// first non-empty input. An exact match completes the sentence and fixes
// the WPM; input after completion is ignored.
func (s *Session) SubmitInput(text string) error {
	if s.completed {
		return nil
	}
	now := s.now()
	if !s.started && text != "" {
		s.startedAt = now
		s.started = true
	}
	s.typed = []rune(text)

	if text != string(s.target) {
		return nil
	}
	s.completed = true

	elapsed := now.Sub(s.startedAt)
	if elapsed < s.minElapsed {
		return ErrUndefinedSpeed
	}
	s.wpm = wordsPerMinute(s.WordCount(), elapsed)
	s.measured = true
	return nil
}

func wordsPerMinute(words int, elapsed time.Duration) int {
	minutes := float64(elapsed) / float64(time.Minute)
	return int(math.Round(float64(words) / minutes))
}

// WordCount counts the target's words by splitting on single spaces.
func (s *Session) WordCount() int {
	return len(strings.Split(string(s.target), " "))
}

// Overlay yields one mark per target character. Typed characters past the
// end of the target are not represented.
func (s *Session) Overlay() iter.Seq[CharMark] {
	target, typed := s.target, s.typed
	return func(yield func(CharMark) bool) {
		for i, want := range target {
			mark := CharMark{Char: want, Status: StatusUntyped}
			if i < len(typed) {
				if typed[i] == want {
					mark.Status = StatusCorrect
				} else {
					mark.Status = StatusIncorrect
				}
			}
			if !yield(mark) {
				return
			}
		}
	}
}

// WPM reports the speed of a completed sentence. ok is false until the
// sentence is completed with a measurable elapsed time.
func (s *Session) WPM() (wpm int, ok bool) {
	return s.wpm, s.completed && s.measured
}

// Progress is a snapshot of the current sentence for presenters.
type Progress struct {
	Lesson  int
	Lessons int
	Typed   int
	Correct int
	Length  int
}

// Percent is the share of the target covered by typed characters, capped at 100.
func (p Progress) Percent() int {
	if p.Length == 0 {
		return 0
	}
	return min(100, p.Typed*100/p.Length)
}

func (s *Session) Progress() Progress {
	p := Progress{
		Lesson:  s.Lesson(),
		Lessons: len(s.sentences),
		Typed:   len(s.typed),
		Length:  len(s.target),
	}
	for mark := range s.Overlay() {
		if mark.Status == StatusCorrect {
			p.Correct++
		}
	}
	return p
}

func (s *Session) Completed() bool { return s.completed }
func (s *Session) Target() string { return string(s.target) }
func (s *Session) Typed() string { return string(s.typed) }
func (s *Session) Index() int { return s.index }

// Lesson is the 1-based sentence number.
func (s *Session) Lesson() int { return s.index + 1 }

// StartedAt returns the time of the first non-empty input.
func (s *Session) StartedAt() (time.Time, bool) {
	return s.startedAt, s.started
}
