package session

// Question is the engine's read-only view of a bank item. Options order is the
// answer key: CorrectOption indexes into Options.
type Question struct {
	ID            string   `json:"id"`
	Prompt        string   `json:"prompt"`
	Options       []string `json:"options"`
	CorrectOption int      `json:"correct_option"`
	RichText      bool     `json:"rich_text,omitempty"`
}

// QuestionStatus is the palette status of a single question.
type QuestionStatus string

const (
	StatusNotVisited     QuestionStatus = "not_visited"
	StatusNotAnswered    QuestionStatus = "not_answered"
	StatusAnswered       QuestionStatus = "answered"
	StatusMarked         QuestionStatus = "marked_for_review"
	StatusAnsweredMarked QuestionStatus = "answered_and_review"
)

type Phase string

const (
	PhaseInProgress Phase = "in_progress"
	PhaseFinished   Phase = "finished"
)

// FinishReason records which of the two racing writers submitted the session.
type FinishReason string

const (
	FinishManual  FinishReason = "manual"
	FinishTimeout FinishReason = "timeout"
)

// StatusCounts aggregates palette statuses for summary displays.
type StatusCounts struct {
	NotVisited     int `json:"not_visited"`
	NotAnswered    int `json:"not_answered"`
	Answered       int `json:"answered"`
	Marked         int `json:"marked_for_review"`
	AnsweredMarked int `json:"answered_and_review"`
}
