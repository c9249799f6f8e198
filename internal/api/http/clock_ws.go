package http

import (
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/prepstack/prepstack-engine/internal/session"
)

type clockFrame struct {
	TimeRemaining int           `json:"time_remaining"`
	Phase         session.Phase `json:"phase"`
}

// ClockStreamHandler pushes the countdown over a websocket so clients render
// the timer without polling. The stream closes itself once the session
// finishes or disappears from the hub.
func ClockStreamHandler(hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, as, ok := sessionFor(hub, w, r)
		if !ok {
			return
		}
		c, err := websocket.Accept(w, r, nil)
		if err != nil {
			return
		}
		defer c.CloseNow()

		ctx := r.Context()
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for {
			snap := as.Runner.Snapshot()
			frame := clockFrame{TimeRemaining: snap.TimeRemaining, Phase: snap.Phase}
			if err := wsjson.Write(ctx, c, frame); err != nil {
				return
			}
			if snap.Phase == session.PhaseFinished {
				c.Close(websocket.StatusNormalClosure, "session finished")
				return
			}
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
			if _, ok := hub.Get(id); !ok {
				c.Close(websocket.StatusNormalClosure, "session abandoned")
				return
			}
		}
	}
}
