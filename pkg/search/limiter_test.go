package search

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestLimiterSingleLimits(t *testing.T) {
	limiter := NewLimiter()

	if !limiter.Ok(1000000, 1000000) {
		t.Error("Default limiter should search infinitely")
	}

	limiter.SetLimits(DefaultLimits().SetNodes(100))
	limiter.Reset()
	if ok := limiter.Ok(101, 1); ok {
		t.Errorf("<Nodes=%d: ok=%v, want=%v", 101, ok, !ok)
	}
	if ok := limiter.Ok(99, 1); !ok {
		t.Errorf(">Nodes=%d: ok=%v, want=%v", 99, ok, !ok)
	}

	limiter.SetLimits(DefaultLimits().SetDepth(10))
	limiter.Reset()
	if ok := limiter.Ok(1, 11); ok {
		t.Errorf("<Depth=%d: ok=%v, want=%v", 11, ok, !ok)
	}
	if ok := limiter.Ok(1, 10); !ok {
		t.Errorf(">Depth=%d: ok=%v, want=%v", 10, ok, !ok)
	}

	limiter.SetLimits(DefaultLimits().SetMovetime(50))
	limiter.Reset()
	time.Sleep(time.Millisecond * 51)
	if ok := limiter.Ok(1, 1); ok {
		t.Errorf("<Movetime: ok=%v, want=%v", ok, !ok)
	}

	limiter.Reset()
	if ok := limiter.Ok(1, 1); !ok {
		t.Errorf(">Movetime: ok=%v, want=%v", ok, !ok)
	}
}

func TestLimiterStopReason(t *testing.T) {
	limiter := NewLimiter()
	limiter.SetLimits(DefaultLimits().SetNodes(10).SetDepth(3))
	limiter.Reset()

	reason := limiter.EvaluateStopReason(10, 4)
	if reason != StopNodes|StopDepth {
		t.Fatalf("reason=%s, want Nodes|Depth", reason)
	}
	if limiter.StopReason().String() != "Nodes|Depth" {
		t.Fatalf("String()=%q", limiter.StopReason().String())
	}
	if StopNone.String() != "None" {
		t.Fatalf("StopNone.String()=%q", StopNone.String())
	}
}

func TestLimiterContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	limiter := NewLimiter()
	limiter.SetContext(ctx)
	limiter.Reset()

	if !limiter.Ok(1, 1) {
		t.Fatal("limiter should be ok before cancellation")
	}

	cancel()
	if limiter.Ok(1, 1) {
		t.Fatal("limiter should stop after cancellation")
	}
	if r := limiter.EvaluateStopReason(1, 1); r != StopInterrupt {
		t.Fatalf("reason=%s, want Interrupt", r)
	}

	err := LimitError(StopInterrupt)
	if !errors.Is(err, ErrLimitReached) {
		t.Fatalf("LimitError should wrap ErrLimitReached, got %v", err)
	}
}

func TestLimiterClock(t *testing.T) {
	limiter := NewLimiter()
	limiter.SetLimits(DefaultLimits().SetMovetime(0))
	limiter.Reset()
	time.Sleep(time.Millisecond * 5)
	if !limiter.Ok(1, 1) {
		t.Error("movetime 0 should not set a deadline")
	}
	if e := limiter.Elapsed(); e < 5 {
		t.Errorf("Elapsed()=%d, want >= 5", e)
	}

	limiter.SetLimits(DefaultLimits().SetMovetime(20))
	limiter.Reset()
	if e := limiter.Elapsed(); e < 1 {
		t.Errorf("Elapsed()=%d right after Reset, want >= 1", e)
	}
	time.Sleep(time.Millisecond * 25)
	if r := limiter.EvaluateStopReason(1, 1); r != StopMovetime {
		t.Fatalf("reason=%s, want Movetime", r)
	}
}
