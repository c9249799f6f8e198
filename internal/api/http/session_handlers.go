package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	auth "github.com/prepstack/prepstack-engine/internal/auth/middleware"
	"github.com/prepstack/prepstack-engine/internal/bank"
	"github.com/prepstack/prepstack-engine/internal/results"
	"github.com/prepstack/prepstack-engine/internal/session"
)

// questionView is the current question as served to the client: no correct
// index, plus the recorded selection if any.
type questionView struct {
	Index    int      `json:"index"`
	ID       string   `json:"id"`
	Prompt   string   `json:"prompt"`
	Options  []string `json:"options"`
	RichText bool     `json:"rich_text,omitempty"`
	Selected *int     `json:"selected,omitempty"`
}

// sessionView is the read-only projection adapters render from.
type sessionView struct {
	ID            string                            `json:"id"`
	BankID        string                            `json:"bank_id"`
	Mode          string                            `json:"mode"`
	Navigation    session.Navigation                `json:"navigation"`
	Phase         session.Phase                     `json:"phase"`
	Current       int                               `json:"current"`
	Total         int                               `json:"total"`
	TimeRemaining int                               `json:"time_remaining"`
	Question      questionView                      `json:"question"`
	Statuses      map[string]session.QuestionStatus `json:"statuses"`
	Counts        session.StatusCounts              `json:"counts"`
	Result        *session.Result                   `json:"result,omitempty"`
}

func viewOf(id string, as ActiveSession) sessionView {
	snap := as.Runner.Snapshot()
	q := snap.CurrentQuestion()
	qv := questionView{
		Index:    snap.Current,
		ID:       q.ID,
		Prompt:   q.Prompt,
		Options:  q.Options,
		RichText: q.RichText,
	}
	if sel, ok := snap.Answers[q.ID]; ok {
		qv.Selected = &sel
	}
	v := sessionView{
		ID:            id,
		BankID:        as.BankID,
		Mode:          as.Runner.Policy().Mode,
		Navigation:    as.Runner.Policy().Navigation,
		Phase:         snap.Phase,
		Current:       snap.Current,
		Total:         len(snap.Questions),
		TimeRemaining: snap.TimeRemaining,
		Question:      qv,
		Statuses:      snap.Statuses,
		Counts:        snap.Counts(),
	}
	if res, ok := as.Runner.Result(); ok {
		v.Result = &res
	}
	return v
}

// CreateSessionHandler starts a session over a bank. The bank's mode picks the
// policy; a bank-level scheme override wins over the policy default.
func CreateSessionHandler(provider bank.Provider, hub *Hub, store *results.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			BankID string `json:"bank_id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		if req.BankID == "" {
			http.Error(w, "bank_id required", 400)
			return
		}
		b, err := provider.GetBank(r.Context(), req.BankID)
		if err != nil {
			if errors.Is(err, bank.ErrNotFound) {
				http.Error(w, err.Error(), 404)
				return
			}
			http.Error(w, err.Error(), 500)
			return
		}
		policy, ok := session.PolicyFor(b.Mode)
		if !ok {
			http.Error(w, "unknown mode", 500)
			return
		}
		if b.Scheme != nil {
			policy.Scheme = *b.Scheme
		}
		runner, err := session.NewRunner(b.Questions, b.TimeLimitSec, policy)
		if err != nil {
			if errors.Is(err, session.ErrEmptyQuestionSet) {
				http.Error(w, "no questions available", 404)
				return
			}
			http.Error(w, err.Error(), 500)
			return
		}

		userID := auth.SubjectFromContext(r.Context())
		snap := runner.Snapshot()
		as := ActiveSession{Runner: runner, BankID: b.ID, UserID: userID}

		runner.OnFinish(func(res session.Result, reason session.FinishReason) {
			// Fires from the submit handler or the clock goroutine; the
			// request context is long gone either way.
			hub.EvictAfterFinish(snap.ID)
			if store != nil {
				_, err := store.Insert(context.Background(), results.Record{
					BankID:          b.ID,
					UserID:          userID,
					Mode:            policy.Mode,
					RawScore:        res.RawScore,
					Attempted:       res.Attempted,
					CorrectCount:    res.CorrectCount,
					AccuracyPercent: res.AccuracyPercent,
					FinishReason:    string(reason),
				})
				if err != nil {
					slog.Error("recording result", "session", snap.ID, "error", err)
				}
			}
		})

		hub.Add(snap.ID, as)
		runner.StartClock(time.Second)
		_ = json.NewEncoder(w).Encode(viewOf(snap.ID, as))
	}
}

// sessionFor resolves the session and enforces ownership. Unknown and
// not-yours both read as 404.
func sessionFor(hub *Hub, w http.ResponseWriter, r *http.Request) (string, ActiveSession, bool) {
	id := chi.URLParam(r, "sessionID")
	as, ok := hub.Get(id)
	if !ok || as.UserID != auth.SubjectFromContext(r.Context()) {
		http.Error(w, "session not found", 404)
		return "", ActiveSession{}, false
	}
	return id, as, true
}

func GetSessionHandler(hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, as, ok := sessionFor(hub, w, r)
		if !ok {
			return
		}
		_ = json.NewEncoder(w).Encode(viewOf(id, as))
	}
}

func SelectOptionHandler(hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, as, ok := sessionFor(hub, w, r)
		if !ok {
			return
		}
		var req struct {
			OptionIndex int `json:"option_index"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		as.Runner.SelectOption(req.OptionIndex)
		_ = json.NewEncoder(w).Encode(viewOf(id, as))
	}
}

func AdvanceHandler(hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, as, ok := sessionFor(hub, w, r)
		if !ok {
			return
		}
		as.Runner.Advance()
		_ = json.NewEncoder(w).Encode(viewOf(id, as))
	}
}

func MarkForReviewHandler(hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, as, ok := sessionFor(hub, w, r)
		if !ok {
			return
		}
		as.Runner.MarkForReview()
		_ = json.NewEncoder(w).Encode(viewOf(id, as))
	}
}

func ClearResponseHandler(hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, as, ok := sessionFor(hub, w, r)
		if !ok {
			return
		}
		as.Runner.ClearResponse()
		_ = json.NewEncoder(w).Encode(viewOf(id, as))
	}
}

func JumpHandler(hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, as, ok := sessionFor(hub, w, r)
		if !ok {
			return
		}
		var req struct {
			Index int `json:"index"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		as.Runner.JumpTo(req.Index)
		_ = json.NewEncoder(w).Encode(viewOf(id, as))
	}
}

func SubmitSessionHandler(hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, as, ok := sessionFor(hub, w, r)
		if !ok {
			return
		}
		as.Runner.Submit()
		_ = json.NewEncoder(w).Encode(viewOf(id, as))
	}
}

// AbandonSessionHandler discards a session without scoring it (the user
// navigated away).
func AbandonSessionHandler(hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _, ok := sessionFor(hub, w, r)
		if !ok {
			return
		}
		hub.Remove(id)
		w.WriteHeader(http.StatusNoContent)
	}
}
