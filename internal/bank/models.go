package bank

import (
	"fmt"

	"github.com/prepstack/prepstack-engine/internal/session"
)

// Bank is one deliverable question set: a mock test, a quiz, or a topic
// practice set. Mode names a registered session policy; a scheme override, when
// present, wins over the policy default.
type Bank struct {
	ID           string             `json:"id"`
	Title        string             `json:"title"`
	Mode         string             `json:"mode"`
	TimeLimitSec int                `json:"time_limit_sec"`
	Scheme       *session.Scheme    `json:"scheme,omitempty"`
	Questions    []session.Question `json:"questions"`
	CreatedAt    int64              `json:"created_at,omitempty"`
}

// Summary is the listing projection (no question payload).
type Summary struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Mode          string `json:"mode"`
	TimeLimitSec  int    `json:"time_limit_sec"`
	QuestionCount int    `json:"question_count"`
}

// Validate checks the structural invariants the engine relies on: option order
// is the answer key, so every question needs at least two options and an
// in-range correct index.
func (b Bank) Validate() error {
	if b.ID == "" {
		return fmt.Errorf("bank id is required")
	}
	if b.Title == "" {
		return fmt.Errorf("bank %s: title is required", b.ID)
	}
	policy, ok := session.PolicyFor(b.Mode)
	if !ok {
		return fmt.Errorf("bank %s: unknown mode %q", b.ID, b.Mode)
	}
	// A session with no duration expires on its first tick, so modes without a
	// policy fallback must carry their own limit.
	if b.TimeLimitSec <= 0 && policy.DefaultDurationSec <= 0 {
		return fmt.Errorf("bank %s: time_limit_sec is required for mode %q", b.ID, b.Mode)
	}
	seen := map[string]bool{}
	for _, q := range b.Questions {
		if q.ID == "" {
			return fmt.Errorf("bank %s: question id is required", b.ID)
		}
		if seen[q.ID] {
			return fmt.Errorf("bank %s: duplicate question id %s", b.ID, q.ID)
		}
		seen[q.ID] = true
		if len(q.Options) < 2 {
			return fmt.Errorf("bank %s: question %s must have at least 2 options", b.ID, q.ID)
		}
		if q.CorrectOption < 0 || q.CorrectOption >= len(q.Options) {
			return fmt.Errorf("bank %s: question %s correct_option out of range", b.ID, q.ID)
		}
	}
	return nil
}

// Redacted returns a copy safe to serve to students: correct indices stripped
// (parity with hiding answer keys in the admin store).
func (b Bank) Redacted() Bank {
	out := b
	out.Questions = make([]session.Question, len(b.Questions))
	for i, q := range b.Questions {
		q.CorrectOption = -1
		out.Questions[i] = q
	}
	return out
}

// Summary projects the bank for listings.
func (b Bank) Summary() Summary {
	return Summary{
		ID:            b.ID,
		Title:         b.Title,
		Mode:          b.Mode,
		TimeLimitSec:  b.TimeLimitSec,
		QuestionCount: len(b.Questions),
	}
}
