package bank

import (
	"strings"
	"testing"
)

const goodImport = `{
  "id": "mock-gate-01",
  "title": "GATE Mock 1",
  "mode": "exam",
  "time_limit_sec": 10800,
  "scheme": {"correct": 1, "incorrect": -0.25},
  "questions": [
    {"id": "q1", "prompt": "Pick A", "options": ["A", "B", "C", "D"], "correct_option": 0},
    {"id": "q2", "prompt": "Pick B", "options": ["A", "B"], "correct_option": 1, "rich_text": true}
  ]
}`

func TestDecodeBankValid(t *testing.T) {
	b, err := DecodeBank([]byte(goodImport))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.ID != "mock-gate-01" || len(b.Questions) != 2 {
		t.Fatalf("unexpected bank: %+v", b)
	}
	if b.Scheme == nil || b.Scheme.Incorrect != -0.25 {
		t.Fatalf("scheme override lost: %+v", b.Scheme)
	}
	if !b.Questions[1].RichText {
		t.Fatalf("rich_text flag lost")
	}
}

func TestDecodeBankRejectsBadPayloads(t *testing.T) {
	cases := map[string]string{
		"missing title": `{"id":"x","mode":"quiz","questions":[{"id":"q","prompt":"p","options":["a","b"],"correct_option":0}]}`,
		"unknown mode":  `{"id":"x","title":"T","mode":"marathon","questions":[{"id":"q","prompt":"p","options":["a","b"],"correct_option":0}]}`,
		"no questions":  `{"id":"x","title":"T","mode":"quiz","questions":[]}`,
		"one option":    `{"id":"x","title":"T","mode":"quiz","questions":[{"id":"q","prompt":"p","options":["a"],"correct_option":0}]}`,
		"not json":      `mode: quiz`,
		"zero limit":    `{"id":"x","title":"T","mode":"quiz","time_limit_sec":0,"questions":[{"id":"q","prompt":"p","options":["a","b"],"correct_option":0}]}`,
		"exam no limit": `{"id":"x","title":"T","mode":"exam","questions":[{"id":"q","prompt":"p","options":["a","b"],"correct_option":0}]}`,
	}
	for name, payload := range cases {
		if _, err := DecodeBank([]byte(payload)); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestDecodeBankRejectsOutOfRangeAnswer(t *testing.T) {
	payload := `{"id":"x","title":"T","mode":"quiz","questions":[{"id":"q","prompt":"p","options":["a","b"],"correct_option":5}]}`
	_, err := DecodeBank([]byte(payload))
	if err == nil || !strings.Contains(err.Error(), "out of range") {
		t.Fatalf("expected out-of-range error, got %v", err)
	}
}

func TestRedactedStripsAnswers(t *testing.T) {
	b, err := DecodeBank([]byte(goodImport))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r := b.Redacted()
	for _, q := range r.Questions {
		if q.CorrectOption != -1 {
			t.Fatalf("correct option leaked: %+v", q)
		}
	}
	// Original snapshot untouched.
	if b.Questions[0].CorrectOption != 0 {
		t.Fatalf("redaction mutated the source bank")
	}
}
