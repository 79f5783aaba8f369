package services

import (
	"context"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTicker struct {
	ch       chan time.Time
	mu       sync.Mutex
	stopped  bool
	interval time.Duration
}

func (f *fakeTicker) C() <-chan time.Time { return f.ch }

func (f *fakeTicker) Stop() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stopped = true
}

func (f *fakeTicker) isStopped() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stopped
}

func newFakeAnimator() (*CounterAnimator, func() *fakeTicker) {
	var mu sync.Mutex
	var created *fakeTicker
	a := NewCounterAnimator()
	a.NewTicker = func(d time.Duration) Ticker {
		mu.Lock()
		defer mu.Unlock()
		created = &fakeTicker{ch: make(chan time.Time), interval: d}
		return created
	}
	return a, func() *fakeTicker {
		mu.Lock()
		defer mu.Unlock()
		return created
	}
}

func TestCounterTarget(t *testing.T) {
	assert.Equal(t, 0, CounterTarget(0))
	assert.Equal(t, 0, CounterTarget(-5))
	assert.Equal(t, 0, CounterTarget(math.NaN()))
	assert.Equal(t, 0, CounterTarget(math.Inf(1)))
	assert.Equal(t, 0, CounterTarget(math.Inf(-1)))
	assert.Equal(t, 10, CounterTarget(10))
	assert.Equal(t, 10, CounterTarget(10.9))
	assert.Equal(t, maxCounterTarget, CounterTarget(1e12))
}

func TestStepInterval(t *testing.T) {
	a := NewCounterAnimator()

	assert.Equal(t, 140*time.Millisecond, a.StepInterval(10))
	assert.Equal(t, 466*time.Millisecond, a.StepInterval(3))
	assert.Equal(t, 93*time.Millisecond, a.StepInterval(15))
	assert.Equal(t, 10*time.Millisecond, a.StepInterval(30000))
	assert.Equal(t, 10*time.Millisecond, a.StepInterval(1400))
	assert.Equal(t, time.Duration(0), a.StepInterval(0))
}

func TestCounterRunCountsToTarget(t *testing.T) {
	a, ticker := newFakeAnimator()
	values := a.Run(context.Background(), 10)

	var seen []int
	for i := 0; i < 10; i++ {
		ticker().ch <- time.Now()
		v, ok := <-values
		require.True(t, ok)
		seen = append(seen, v)
	}

	_, ok := <-values
	assert.False(t, ok, "channel should close once the target is reached")
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, seen)
	assert.Equal(t, 140*time.Millisecond, ticker().interval)
	assert.True(t, ticker().isStopped())
	assert.Equal(t, "10", FormatCounter(seen[len(seen)-1], 10))
}

func TestCounterRunNonPositiveNeverStarts(t *testing.T) {
	a, ticker := newFakeAnimator()

	for _, end := range []int{0, -1, CounterTarget(math.NaN()), CounterTarget(math.Inf(1))} {
		values := a.Run(context.Background(), end)
		_, ok := <-values
		assert.False(t, ok)
	}
	assert.Nil(t, ticker(), "no ticker should be acquired")
}

func TestCounterRunCancel(t *testing.T) {
	a, ticker := newFakeAnimator()
	ctx, cancel := context.WithCancel(context.Background())

	values := a.Run(ctx, 30000)
	for i := 1; i <= 2; i++ {
		ticker().ch <- time.Now()
		assert.Equal(t, i, <-values)
	}

	cancel()
	for range values {
		t.Fatal("no values expected after cancel")
	}
	assert.True(t, ticker().isStopped())
}

func TestCounterRunRealTicker(t *testing.T) {
	a := NewCounterAnimator()
	a.Duration = 5 * time.Millisecond
	a.MinStep = time.Millisecond

	last := 0
	for v := range a.Run(context.Background(), 5) {
		assert.Equal(t, last+1, v)
		last = v
	}
	assert.Equal(t, 5, last)
}

func TestFormatCounter(t *testing.T) {
	assert.Equal(t, "10", FormatCounter(10, 10))
	assert.Equal(t, "0", FormatCounter(0, 15))
	assert.Equal(t, "30000+", FormatCounter(30000, 30000))
	assert.Equal(t, "5+", FormatCounter(5, 100))
	assert.Equal(t, "99", FormatCounter(99, 99))
}
