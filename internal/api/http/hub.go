package http

import (
	"sync"
	"time"

	"github.com/prepstack/prepstack-engine/internal/session"
)

// finishedSessionTTL is how long a finished session stays resident so clients
// can still fetch the result before the entry is reclaimed.
const finishedSessionTTL = 5 * time.Minute

// ActiveSession pairs a runner with the identifiers the engine itself does not
// know about (bank, owner).
type ActiveSession struct {
	Runner *session.Runner
	BankID string
	UserID string
}

// Hub tracks in-flight sessions for the gateway adapter. Sessions live only in
// memory: a gateway restart discards them, mirroring the product's
// reload-starts-over behavior.
type Hub struct {
	mu       sync.RWMutex
	sessions map[string]ActiveSession

	// FinishedTTL overrides finishedSessionTTL when positive (tests).
	FinishedTTL time.Duration
}

func NewHub() *Hub {
	return &Hub{sessions: map[string]ActiveSession{}}
}

func (h *Hub) Add(id string, s ActiveSession) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.sessions[id] = s
}

func (h *Hub) Get(id string) (ActiveSession, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	s, ok := h.sessions[id]
	return s, ok
}

// EvictAfterFinish schedules removal of a finished session so entries do not
// accumulate when the client never issues DELETE (closed tab).
func (h *Hub) EvictAfterFinish(id string) {
	ttl := h.FinishedTTL
	if ttl <= 0 {
		ttl = finishedSessionTTL
	}
	time.AfterFunc(ttl, func() { h.Remove(id) })
}

// Remove drops a session and stops its clock so no tick fires into a discarded
// session.
func (h *Hub) Remove(id string) {
	h.mu.Lock()
	s, ok := h.sessions[id]
	delete(h.sessions, id)
	h.mu.Unlock()
	if ok {
		s.Runner.Close()
	}
}
