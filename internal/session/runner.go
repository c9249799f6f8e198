package session

import (
	"sync"
	"time"
)

// Runner is the adapter-side orchestration shared by every call site: it owns
// one Session and its Clock, serializes user gestures against clock ticks, and
// layers the mode policy (auto-advance, scheme) over the controller ops.
//
// Gestures and ticks arrive on different goroutines here, so the runner mutex
// provides the ordering the source system got for free from its single event
// queue.
type Runner struct {
	mu             sync.Mutex
	policy         Policy
	sess           *Session
	clock          *Clock
	result         *Result
	pendingAdvance bool
	onFinish       func(Result, FinishReason)
}

// NewRunner builds a session under the given policy. A non-positive duration
// falls back to the policy default (quiz banks often carry none).
func NewRunner(questions []Question, durationSec int, policy Policy) (*Runner, error) {
	if durationSec <= 0 {
		durationSec = policy.DefaultDurationSec
	}
	sess, err := New(questions, durationSec)
	if err != nil {
		return nil, err
	}
	return &Runner{
		policy: policy,
		sess:   sess,
		clock:  NewClock(durationSec),
	}, nil
}

// OnFinish installs a callback invoked exactly once when the session finishes,
// whichever of manual submit and timeout lands first. Set it before StartClock.
func (r *Runner) OnFinish(fn func(Result, FinishReason)) {
	r.mu.Lock()
	r.onFinish = fn
	r.mu.Unlock()
}

// StartClock begins the countdown. Production adapters pass time.Second.
func (r *Runner) StartClock(interval time.Duration) {
	r.clock.Start(interval, r.tick, func() { r.finish(FinishTimeout) })
}

func (r *Runner) tick(remaining int) {
	r.mu.Lock()
	if r.sess.Phase == PhaseInProgress {
		r.sess.TimeRemaining = remaining
	}
	r.mu.Unlock()
}

// SelectOption records an answer. Under an auto-advance policy the runner then
// behaves like ConfirmAndAdvance after the policy's short delay.
func (r *Runner) SelectOption(optionIndex int) {
	r.mu.Lock()
	r.sess.SelectOption(optionIndex)
	_, answered := r.sess.Answers[r.sess.CurrentQuestion().ID]
	schedule := r.policy.AutoAdvance && answered &&
		!r.pendingAdvance && r.sess.Phase == PhaseInProgress
	if schedule {
		r.pendingAdvance = true
	}
	delay := r.policy.AutoAdvanceDelay
	r.mu.Unlock()

	if !schedule {
		return
	}
	if delay <= 0 {
		r.Advance()
		return
	}
	time.AfterFunc(delay, r.Advance)
}

// Advance is the manual Save & Next gesture (and the tail of auto-advance).
func (r *Runner) Advance() {
	r.mu.Lock()
	r.pendingAdvance = false
	r.sess.ConfirmAndAdvance()
	r.mu.Unlock()
}

// MarkForReview flags the current question and advances.
func (r *Runner) MarkForReview() {
	r.mu.Lock()
	r.sess.MarkForReview()
	r.mu.Unlock()
}

// ClearResponse drops the current answer and any review mark.
func (r *Runner) ClearResponse() {
	r.mu.Lock()
	r.sess.ClearResponse()
	r.mu.Unlock()
}

// JumpTo moves to a palette target; out-of-range is a silent no-op.
func (r *Runner) JumpTo(index int) {
	r.mu.Lock()
	r.sess.JumpTo(index)
	r.mu.Unlock()
}

// Submit finishes the session manually and returns the score. Safe to call
// after a timeout already finished it; the frozen result comes back either way.
func (r *Runner) Submit() Result {
	return r.finish(FinishManual)
}

func (r *Runner) finish(reason FinishReason) Result {
	r.mu.Lock()
	if r.sess.Phase == PhaseFinished {
		res := *r.result
		r.mu.Unlock()
		return res
	}
	r.sess.Finish(reason)
	res := Score(r.sess.Questions, r.sess.Answers, r.policy.Scheme)
	r.result = &res
	cb := r.onFinish
	r.mu.Unlock()

	r.clock.Stop()
	if cb != nil {
		cb(res, reason)
	}
	return res
}

// Result returns the frozen score once the session has finished.
func (r *Runner) Result() (Result, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.result == nil {
		return Result{}, false
	}
	return *r.result, true
}

// Snapshot returns a copy safe for rendering while the runner keeps mutating.
func (r *Runner) Snapshot() Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sess.Clone()
}

// Policy returns the mode configuration the runner was built with.
func (r *Runner) Policy() Policy {
	return r.policy
}

// Close abandons the session: the clock must stop so no tick fires into a
// discarded session. Idempotent.
func (r *Runner) Close() {
	r.clock.Stop()
}
