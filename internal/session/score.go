package session

import "math"

// Scheme is the flat per-question marking tuple. Every question in a session
// carries the same credit and penalty; there is no partial credit.
type Scheme struct {
	Correct     float64 `json:"correct"`
	Incorrect   float64 `json:"incorrect"`
	Unattempted float64 `json:"unattempted"`
}

// Result is the outcome of scoring a finished session.
type Result struct {
	RawScore        float64 `json:"raw_score"`
	Attempted       int     `json:"attempted"`
	CorrectCount    int     `json:"correct_count"`
	AccuracyPercent int     `json:"accuracy_percent"`
}

// Score applies scheme over the final answer store. Pure: inputs are never
// mutated. Accuracy is correct/total questions, rounded half-up, matching the
// percentage displays elsewhere in the product.
func Score(questions []Question, answers map[string]int, scheme Scheme) Result {
	var r Result
	for _, q := range questions {
		picked, ok := answers[q.ID]
		if !ok {
			r.RawScore += scheme.Unattempted
			continue
		}
		r.Attempted++
		if picked == q.CorrectOption {
			r.CorrectCount++
			r.RawScore += scheme.Correct
		} else {
			r.RawScore += scheme.Incorrect
		}
	}
	if len(questions) > 0 {
		r.AccuracyPercent = int(math.Floor(100*float64(r.CorrectCount)/float64(len(questions)) + 0.5))
	}
	return r
}
