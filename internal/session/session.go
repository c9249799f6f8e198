package session

import (
	"errors"

	"github.com/google/uuid"
)

// ErrEmptyQuestionSet is the single fatal start-up failure: callers must show a
// "no content available" state and not touch the session further.
var ErrEmptyQuestionSet = errors.New("empty question set")

// Session is one run-through of a fixed, ordered question list under a timer.
// It is owned by exactly one runner/adapter and is never persisted; a reload
// starts over by design.
type Session struct {
	ID            string                    `json:"id"`
	Questions     []Question                `json:"questions"`
	Answers       map[string]int            `json:"answers"`
	Statuses      map[string]QuestionStatus `json:"statuses"`
	Current       int                       `json:"current"`
	TimeRemaining int                       `json:"time_remaining"`
	Phase         Phase                     `json:"phase"`
	FinishedBy    FinishReason              `json:"finished_by,omitempty"`
}

// New builds an in-progress session over the given bank snapshot. The first
// question is current from the start, so it is never not_visited.
func New(questions []Question, durationSec int) (*Session, error) {
	if len(questions) == 0 {
		return nil, ErrEmptyQuestionSet
	}
	statuses := make(map[string]QuestionStatus, len(questions))
	for i, q := range questions {
		if i == 0 {
			statuses[q.ID] = StatusNotAnswered
		} else {
			statuses[q.ID] = StatusNotVisited
		}
	}
	return &Session{
		ID:            uuid.NewString(),
		Questions:     questions,
		Answers:       map[string]int{},
		Statuses:      statuses,
		Current:       0,
		TimeRemaining: durationSec,
		Phase:         PhaseInProgress,
	}, nil
}

// CurrentQuestion returns the question at the current index.
func (s *Session) CurrentQuestion() Question {
	return s.Questions[s.Current]
}

// SelectOption records optionIndex as the answer for the current question. It
// never moves the index; quiz auto-advance is layered on by the runner policy.
// An index outside the option range is ignored.
func (s *Session) SelectOption(optionIndex int) {
	if s.Phase == PhaseFinished {
		return
	}
	q := s.CurrentQuestion()
	if optionIndex < 0 || optionIndex >= len(q.Options) {
		return
	}
	s.Answers[q.ID] = optionIndex
}

// ConfirmAndAdvance settles the current question's status from answer presence
// and moves to the next question if one exists. At the last question the index
// stays put; the caller routes to submission instead.
func (s *Session) ConfirmAndAdvance() {
	if s.Phase == PhaseFinished {
		return
	}
	q := s.CurrentQuestion()
	if _, ok := s.Answers[q.ID]; ok {
		s.Statuses[q.ID] = StatusAnswered
	} else {
		s.Statuses[q.ID] = StatusNotAnswered
	}
	s.advance()
}

// MarkForReview flags the current question for review (keeping the answer if
// one is recorded) and advances like ConfirmAndAdvance.
func (s *Session) MarkForReview() {
	if s.Phase == PhaseFinished {
		return
	}
	q := s.CurrentQuestion()
	if _, ok := s.Answers[q.ID]; ok {
		s.Statuses[q.ID] = StatusAnsweredMarked
	} else {
		s.Statuses[q.ID] = StatusMarked
	}
	s.advance()
}

// ClearResponse drops the current question's answer and resets its status to
// not_answered, review marks included.
func (s *Session) ClearResponse() {
	if s.Phase == PhaseFinished {
		return
	}
	q := s.CurrentQuestion()
	delete(s.Answers, q.ID)
	s.Statuses[q.ID] = StatusNotAnswered
}

// JumpTo moves the index to a palette target. Out-of-range indices are a silent
// no-op: the palette only ever offers valid targets. Statuses are untouched.
func (s *Session) JumpTo(index int) {
	if s.Phase == PhaseFinished {
		return
	}
	if index < 0 || index >= len(s.Questions) {
		return
	}
	s.Current = index
}

// Finish freezes the session. Idempotent: the manual submit and the clock
// expiry race on the same session, and whichever lands first wins.
func (s *Session) Finish(reason FinishReason) {
	if s.Phase == PhaseFinished {
		return
	}
	s.Phase = PhaseFinished
	s.FinishedBy = reason
}

// advance moves to the next question, initializing its status only when it has
// never been visited.
func (s *Session) advance() {
	if s.Current+1 >= len(s.Questions) {
		return
	}
	s.Current++
	next := s.CurrentQuestion()
	if s.Statuses[next.ID] == StatusNotVisited {
		s.Statuses[next.ID] = StatusNotAnswered
	}
}

// Counts tallies palette statuses for summary displays.
func (s *Session) Counts() StatusCounts {
	var c StatusCounts
	for _, q := range s.Questions {
		switch s.Statuses[q.ID] {
		case StatusNotVisited:
			c.NotVisited++
		case StatusNotAnswered:
			c.NotAnswered++
		case StatusAnswered:
			c.Answered++
		case StatusMarked:
			c.Marked++
		case StatusAnsweredMarked:
			c.AnsweredMarked++
		}
	}
	return c
}

// Clone returns a deep copy safe to hand to renderers while the original keeps
// mutating. The question slice is shared; it is immutable for the session.
func (s *Session) Clone() Session {
	out := *s
	out.Answers = make(map[string]int, len(s.Answers))
	for k, v := range s.Answers {
		out.Answers[k] = v
	}
	out.Statuses = make(map[string]QuestionStatus, len(s.Statuses))
	for k, v := range s.Statuses {
		out.Statuses[k] = v
	}
	return out
}
