package bank

import (
	"strings"
	"testing"

	"github.com/prepstack/prepstack-engine/internal/session"
)

func validQuestions() []session.Question {
	return []session.Question{
		{ID: "q1", Prompt: "p", Options: []string{"a", "b"}, CorrectOption: 0},
	}
}

// A bank without a time limit in a mode without a policy fallback would start
// sessions that expire on the first tick.
func TestValidateRequiresTimeLimitWithoutPolicyDefault(t *testing.T) {
	for _, mode := range []string{"exam", "practice"} {
		b := Bank{ID: "x", Title: "T", Mode: mode, Questions: validQuestions()}
		err := b.Validate()
		if err == nil || !strings.Contains(err.Error(), "time_limit_sec") {
			t.Fatalf("%s without time limit must be rejected, got %v", mode, err)
		}
		b.TimeLimitSec = 600
		if err := b.Validate(); err != nil {
			t.Fatalf("%s with time limit: %v", mode, err)
		}
	}
}

func TestValidateQuizFallsBackToPolicyDuration(t *testing.T) {
	b := Bank{ID: "x", Title: "T", Mode: "quiz", Questions: validQuestions()}
	if err := b.Validate(); err != nil {
		t.Fatalf("quiz has a policy default duration, got %v", err)
	}
}
