package services

import (
	"context"
	"math"
	"strconv"
	"time"

	"najma_site_go/models"
)

const (
	// CounterDuration is the wall-clock length of a counter animation
	CounterDuration = 1400 * time.Millisecond
	// CounterMinStep is the shortest interval between two ticks
	CounterMinStep = 10 * time.Millisecond
	// counterPlusThreshold is the target from which the display gets a "+" suffix
	counterPlusThreshold = 100
	// maxCounterTarget keeps absurd configured targets from overflowing int on 32-bit builds
	maxCounterTarget = math.MaxInt32
)

// Ticker is the subset of time.Ticker the animator needs
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type timeTicker struct {
	t *time.Ticker
}

func (t timeTicker) C() <-chan time.Time { return t.t.C }
func (t timeTicker) Stop()               { t.t.Stop() }

// NewTimeTicker wraps time.NewTicker
func NewTimeTicker(d time.Duration) Ticker {
	return timeTicker{t: time.NewTicker(d)}
}

// CounterAnimator drives a displayed integer from 0 up to a target
type CounterAnimator struct {
	Duration  time.Duration
	MinStep   time.Duration
	NewTicker func(time.Duration) Ticker
}

// NewCounterAnimator returns an animator with the standard timing
func NewCounterAnimator() *CounterAnimator {
	return &CounterAnimator{
		Duration:  CounterDuration,
		MinStep:   CounterMinStep,
		NewTicker: NewTimeTicker,
	}
}

// CounterTarget converts a configured target into the integer the counter stops at.
// NaN, infinities and non-positive values yield 0, which means the counter never starts.
// Fractional targets are floored so the display never exceeds the configured value.
func CounterTarget(end float64) int {
	if math.IsNaN(end) || math.IsInf(end, 0) || end <= 0 {
		return 0
	}
	if end > maxCounterTarget {
		return maxCounterTarget
	}
	return int(math.Floor(end))
}

// StepInterval is max(MinStep, floor(Duration/end)) with millisecond resolution
func (a *CounterAnimator) StepInterval(end int) time.Duration {
	if end <= 0 {
		return 0
	}
	step := time.Duration(a.Duration.Milliseconds()/int64(end)) * time.Millisecond
	if step < a.MinStep {
		step = a.MinStep
	}
	return step
}

// Run emits 1, 2, ... end on the returned channel, one value per tick.
// The ticker is only acquired when end > 0 and is released before the channel
// is closed, either when end is reached or when ctx is cancelled.
func (a *CounterAnimator) Run(ctx context.Context, end int) <-chan int {
	out := make(chan int)
	if end <= 0 {
		close(out)
		return out
	}

	go func() {
		defer close(out)
		ticker := a.NewTicker(a.StepInterval(end))
		defer ticker.Stop()

		state := models.CounterState{Target: end}
		for !state.Done() {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C():
			}

			state.Tick()
			select {
			case out <- state.Current:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

// FormatCounter renders a counter value, adding "+" for large targets
func FormatCounter(value, end int) string {
	s := strconv.Itoa(value)
	if end >= counterPlusThreshold {
		s += "+"
	}
	return s
}
