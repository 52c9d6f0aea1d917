package search

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"
)

type StopReason int

const (
	StopNone      StopReason = 0
	StopInterrupt StopReason = 1 // Stopped by the caller, with .SetStop(true) or context cancellation
	StopMovetime  StopReason = 2 // Time limit reached
	StopNodes     StopReason = 4 // Explored node limit reached
	StopDepth     StopReason = 8 // Depth limit reached
)

func (sr StopReason) String() string {
	if sr == StopNone {
		return "None"
	}

	reasons := []struct {
		flag StopReason
		name string
	}{
		{StopInterrupt, "Interrupt"},
		{StopMovetime, "Movetime"},
		{StopNodes, "Nodes"},
		{StopDepth, "Depth"},
	}

	var result string
	for _, r := range reasons {
		if sr&r.flag == r.flag {
			if result != "" {
				result += "|"
			}
			result += r.name
		}
	}

	return result
}

// Returned (wrapped) by searches aborted by the limiter
var ErrLimitReached = errors.New("search limit reached")

// Wrap ErrLimitReached with the stop reason
func LimitError(reason StopReason) error {
	return fmt.Errorf("%w: %s", ErrLimitReached, reason)
}

type Limiter struct {
	limits  *Limits
	started time.Time
	// Zero when the search has no movetime
	deadline time.Time
	stop     atomic.Bool
	reason   StopReason
	ctx      context.Context
}

func NewLimiter() *Limiter {
	return &Limiter{
		limits:  DefaultLimits(),
		started: time.Now(),
		ctx:     context.Background(),
	}
}

// Restarts the clock and clears the stop flag, called on search setup
func (l *Limiter) Reset() {
	l.started = time.Now()
	l.deadline = time.Time{}
	if l.limits.Movetime > 0 {
		l.deadline = l.started.Add(time.Duration(l.limits.Movetime) * time.Millisecond)
	}
	l.stop.Store(false)
	l.reason = StopNone
}

func (l *Limiter) SetContext(ctx context.Context) {
	if ctx == nil {
		ctx = context.Background()
	}
	l.ctx = ctx
}

func (l *Limiter) SetLimits(limits *Limits) {
	if limits == nil {
		limits = DefaultLimits()
	}
	l.limits = limits
}

func (l *Limiter) Limits() *Limits {
	return l.limits
}

// Elapsed time in ms since the last Reset
func (l *Limiter) Elapsed() uint32 {
	return uint32(max(time.Since(l.started).Milliseconds(), 1))
}

func (l *Limiter) timeUp() bool {
	return !l.deadline.IsZero() && !time.Now().Before(l.deadline)
}

func (l *Limiter) SetStop(v bool) {
	l.stop.Store(v)
}

// Get the stop signal, also polls the context
func (l *Limiter) Stop() bool {
	select {
	case <-l.ctx.Done():
		l.stop.Store(true)
	default:
	}
	return l.stop.Load()
}

func (l *Limiter) limitMask(nodes, depth uint32) StopReason {
	mask := StopNone
	if l.Stop() {
		mask |= StopInterrupt
	}

	// If infinite, only the stop signal counts
	if l.limits.Infinite {
		return mask
	}

	if l.timeUp() {
		mask |= StopMovetime
	}
	if l.limits.Nodes <= nodes {
		mask |= StopNodes
	}
	if l.limits.Depth < int(depth) {
		mask |= StopDepth
	}
	return mask
}

// Wheter the search may continue, with given number of explored nodes and current depth
func (l *Limiter) Ok(nodes, depth uint32) bool {
	return l.limitMask(nodes, depth) == StopNone
}

// Evaluate stop reason based on current state, and set it internally
func (l *Limiter) EvaluateStopReason(nodes, depth uint32) StopReason {
	l.reason = l.limitMask(nodes, depth)
	return l.reason
}

// Get the reason why the search was stopped, valid after search ends
func (l *Limiter) StopReason() StopReason {
	return l.reason
}
