package session

import "time"

// Navigation is the surface an adapter renders over the status tracker.
type Navigation string

const (
	// NavPalette is the full jump-anywhere grid with status colors.
	NavPalette Navigation = "palette"
	// NavLinear is prev/next only (quiz and practice surfaces).
	NavLinear Navigation = "linear"
)

// Policy is the mode configuration distinguishing the three call sites. It is
// a plain value, not behavior: adapters feed it to a Runner and otherwise stay
// out of status derivation and scoring.
type Policy struct {
	Mode               string        `json:"mode"`
	AutoAdvance        bool          `json:"auto_advance"`
	AutoAdvanceDelay   time.Duration `json:"-"`
	Scheme             Scheme        `json:"scheme"`
	Navigation         Navigation    `json:"navigation"`
	DefaultDurationSec int           `json:"default_duration_sec"`
}

// ExamPolicy drives full and sectional mock tests: manual Save & Next, JEE-style
// negative marking, full palette, duration from test metadata.
func ExamPolicy() Policy {
	return Policy{
		Mode:       "exam",
		Scheme:     Scheme{Correct: 1, Incorrect: -0.25},
		Navigation: NavPalette,
	}
}

// QuizPolicy drives standalone quizzes: auto-advance shortly after an answer,
// no negative marking, linear progress, short fixed duration. The scheme stays
// a parameter so product can flip penalties on per bank.
func QuizPolicy() Policy {
	return Policy{
		Mode:               "quiz",
		AutoAdvance:        true,
		AutoAdvanceDelay:   600 * time.Millisecond,
		Scheme:             Scheme{Correct: 1},
		Navigation:         NavLinear,
		DefaultDurationSec: 600,
	}
}

// PracticePolicy drives topic practice sets: exam semantics behind a simpler
// linear surface, penalty per set configuration.
func PracticePolicy() Policy {
	return Policy{
		Mode:       "practice",
		Scheme:     Scheme{Correct: 1},
		Navigation: NavLinear,
	}
}

// ---- registry ----

var policies = map[string]Policy{}

// RegisterPolicy associates a mode name with a policy. Called from init;
// exposed so deployments can add variants without touching the engine.
func RegisterPolicy(mode string, p Policy) {
	if mode == "" {
		return
	}
	policies[mode] = p
}

// PolicyFor resolves a mode name.
func PolicyFor(mode string) (Policy, bool) {
	p, ok := policies[mode]
	return p, ok
}

func init() {
	RegisterPolicy("exam", ExamPolicy())
	RegisterPolicy("quiz", QuizPolicy())
	RegisterPolicy("practice", PracticePolicy())
}
