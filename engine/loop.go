package engine

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/void-siege/status"
)

// StepFunc advances the game by one tick and reports whether the loop should continue
type StepFunc func() bool

// Loop drives a StepFunc on a fixed tick
// Cancellation is observed between ticks only, a running step always completes
type Loop struct {
	interval time.Duration

	statTicks   *atomic.Int64
	statOverrun *atomic.Int64
}

// NewLoop creates a loop; reg may be nil
func NewLoop(interval time.Duration, reg *status.Registry) *Loop {
	l := &Loop{interval: interval}
	if reg == nil {
		reg = status.NewRegistry()
	}
	l.statTicks = reg.Ints.Get("engine.ticks")
	l.statOverrun = reg.Ints.Get("engine.overruns")
	return l
}

// Run ticks until step returns false or ctx is done, returning ctx.Err() on cancellation
func (l *Loop) Run(ctx context.Context, step StepFunc) error {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		start := time.Now()
		cont := step()
		l.statTicks.Add(1)
		if time.Since(start) > l.interval {
			l.statOverrun.Add(1)
		}
		if !cont {
			return nil
		}
	}
}

// Ticks returns the number of completed steps
func (l *Loop) Ticks() int64 {
	return l.statTicks.Load()
}
