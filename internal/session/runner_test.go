package session

import (
	"sync/atomic"
	"testing"
	"time"
)

func quizPolicyNoDelay() Policy {
	p := QuizPolicy()
	p.AutoAdvanceDelay = 0
	return p
}

func TestRunnerQuizAutoAdvance(t *testing.T) {
	r, err := NewRunner(threeQuestions(), 0, quizPolicyNoDelay())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	snap := r.Snapshot()
	if snap.TimeRemaining != 600 {
		t.Fatalf("quiz should fall back to policy duration, got %d", snap.TimeRemaining)
	}

	r.SelectOption(1)
	snap = r.Snapshot()
	if snap.Current != 1 {
		t.Fatalf("quiz select should auto-advance, index %d", snap.Current)
	}
	if snap.Statuses["q1"] != StatusAnswered {
		t.Fatalf("auto-advance should settle answered, got %s", snap.Statuses["q1"])
	}
}

func TestRunnerExamNoAutoAdvance(t *testing.T) {
	r, _ := NewRunner(threeQuestions(), 600, ExamPolicy())
	r.SelectOption(1)
	if snap := r.Snapshot(); snap.Current != 0 {
		t.Fatalf("exam select must not move the index, got %d", snap.Current)
	}
}

func TestRunnerSubmitScoresOnce(t *testing.T) {
	r, _ := NewRunner(threeQuestions(), 600, ExamPolicy())
	var finishes int32
	r.OnFinish(func(Result, FinishReason) { atomic.AddInt32(&finishes, 1) })

	r.SelectOption(1)
	r.Advance()
	r.SelectOption(2)

	first := r.Submit()
	second := r.Submit() // double submit: same frozen result
	if first != second {
		t.Fatalf("double submit diverged: %+v vs %+v", first, second)
	}
	if first.RawScore != 0.75 || first.Attempted != 2 || first.CorrectCount != 1 {
		t.Fatalf("unexpected result: %+v", first)
	}
	if got := atomic.LoadInt32(&finishes); got != 1 {
		t.Fatalf("OnFinish must fire exactly once, got %d", got)
	}
}

func TestRunnerTimeoutFinishes(t *testing.T) {
	r, _ := NewRunner(threeQuestions(), 3, ExamPolicy())
	done := make(chan FinishReason, 1)
	r.OnFinish(func(_ Result, reason FinishReason) { done <- reason })
	r.StartClock(time.Millisecond)

	var reason FinishReason
	select {
	case reason = <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("timeout never finished the session")
	}
	if reason != FinishTimeout {
		t.Fatalf("expected timeout finish, got %s", reason)
	}
	snap := r.Snapshot()
	if snap.Phase != PhaseFinished || snap.TimeRemaining != 0 {
		t.Fatalf("session not frozen at zero: phase=%s remaining=%d", snap.Phase, snap.TimeRemaining)
	}

	// Manual submit after the timeout is the losing racer: frozen result, no
	// second OnFinish (channel would block the buffered slot otherwise).
	res := r.Submit()
	if got, ok := r.Result(); !ok || got != res {
		t.Fatalf("result not frozen after race: %+v vs %+v", got, res)
	}
	if snap := r.Snapshot(); snap.FinishedBy != FinishTimeout {
		t.Fatalf("first finish must win, got %s", snap.FinishedBy)
	}
}

func TestRunnerCloseStopsClock(t *testing.T) {
	r, _ := NewRunner(threeQuestions(), 1000, ExamPolicy())
	r.StartClock(time.Millisecond)
	time.Sleep(10 * time.Millisecond)
	r.Close()
	r.Close()
	settled := r.Snapshot().TimeRemaining
	time.Sleep(20 * time.Millisecond)
	if got := r.Snapshot().TimeRemaining; got != settled {
		t.Fatalf("clock still ticking after Close: %d -> %d", settled, got)
	}
}

func TestRunnerSnapshotIsolated(t *testing.T) {
	r, _ := NewRunner(threeQuestions(), 600, ExamPolicy())
	snap := r.Snapshot()
	snap.Answers["q1"] = 2
	snap.Statuses["q2"] = StatusAnswered
	fresh := r.Snapshot()
	if _, ok := fresh.Answers["q1"]; ok {
		t.Fatalf("snapshot mutation leaked into runner state")
	}
	if fresh.Statuses["q2"] != StatusNotVisited {
		t.Fatalf("snapshot mutation leaked into statuses")
	}
}
