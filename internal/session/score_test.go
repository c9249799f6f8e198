package session

import "testing"

func TestScoreNegativeMarkingScenario(t *testing.T) {
	questions := threeQuestions() // correct options 1, 0, 2
	answers := map[string]int{"q1": 1, "q2": 2} // q3 unattempted
	scheme := Scheme{Correct: 1, Incorrect: -0.25}

	r := Score(questions, answers, scheme)
	if r.RawScore != 0.75 {
		t.Fatalf("expected raw score 0.75, got %v", r.RawScore)
	}
	if r.Attempted != 2 {
		t.Fatalf("expected 2 attempted, got %d", r.Attempted)
	}
	if r.CorrectCount != 1 {
		t.Fatalf("expected 1 correct, got %d", r.CorrectCount)
	}
	if r.AccuracyPercent != 33 {
		t.Fatalf("expected 33%% accuracy, got %d", r.AccuracyPercent)
	}
}

func TestScoreAccuracyRoundsHalfUp(t *testing.T) {
	questions := []Question{
		{ID: "a", Options: []string{"x", "y"}, CorrectOption: 0},
		{ID: "b", Options: []string{"x", "y"}, CorrectOption: 0},
	}
	r := Score(questions, map[string]int{"a": 0}, Scheme{Correct: 1})
	if r.AccuracyPercent != 50 {
		t.Fatalf("expected 50, got %d", r.AccuracyPercent)
	}

	eight := make([]Question, 8)
	for i := range eight {
		eight[i] = Question{ID: string(rune('a' + i)), Options: []string{"x", "y"}, CorrectOption: 0}
	}
	// 3/8 = 37.5% rounds up to 38.
	r = Score(eight, map[string]int{"a": 0, "b": 0, "c": 0}, Scheme{Correct: 1})
	if r.AccuracyPercent != 38 {
		t.Fatalf("expected 38, got %d", r.AccuracyPercent)
	}
}

func TestScoreEmptyBank(t *testing.T) {
	r := Score(nil, nil, Scheme{Correct: 1})
	if r.RawScore != 0 || r.Attempted != 0 || r.AccuracyPercent != 0 {
		t.Fatalf("empty bank must score zero: %+v", r)
	}
}

func TestScoreUnattemptedCredit(t *testing.T) {
	questions := threeQuestions()
	r := Score(questions, nil, Scheme{Correct: 4, Incorrect: -1, Unattempted: 1})
	if r.RawScore != 3 || r.Attempted != 0 {
		t.Fatalf("unattempted credit not applied: %+v", r)
	}
}

func TestScoreDoesNotMutateInputs(t *testing.T) {
	questions := threeQuestions()
	answers := map[string]int{"q1": 0}
	Score(questions, answers, Scheme{Correct: 1, Incorrect: -0.25})
	if len(answers) != 1 || answers["q1"] != 0 {
		t.Fatalf("answers mutated: %+v", answers)
	}
	if questions[0].CorrectOption != 1 {
		t.Fatalf("questions mutated: %+v", questions[0])
	}
}
