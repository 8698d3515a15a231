package timer

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}

func TestFormatElapsed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{name: "zero", d: 0, want: "0秒"},
		{name: "negative", d: -time.Second, want: "0秒"},
		{name: "seconds only", d: 42*time.Second + 900*time.Millisecond, want: "42秒"},
		{name: "minutes and seconds", d: 3*time.Minute + 25*time.Second, want: "3分25秒"},
		{name: "whole minutes", d: 2 * time.Minute, want: "2分0秒"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, FormatElapsed(tt.d))
		})
	}
}

func TestFormatClock(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0:00", FormatClock(-time.Second))
	assert.Equal(t, "0:59", FormatClock(59*time.Second+999*time.Millisecond))
	assert.Equal(t, "10:05", FormatClock(10*time.Minute+5*time.Second))
}

func TestStopwatch(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	sw := NewStopwatch()
	sw.now = clock.Now

	assert.Equal(t, time.Duration(0), sw.Elapsed())

	sw.Start()
	assert.True(t, sw.Running())
	clock.Advance(65 * time.Second)
	assert.Equal(t, 65*time.Second, sw.Elapsed())

	assert.Equal(t, 65*time.Second, sw.Stop())
	clock.Advance(time.Minute)
	assert.Equal(t, 65*time.Second, sw.Stop())
	assert.False(t, sw.Running())
	assert.Equal(t, "1分5秒", sw.Formatted())

	sw.Reset()
	assert.Equal(t, time.Duration(0), sw.Elapsed())
}

func TestCountdown_TimeUp(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	cd := NewCountdown(time.Millisecond, time.Minute, zap.NewNop())
	cd.now = clock.Now

	assert.Equal(t, "", cd.Formatted())

	fired := make(chan struct{}, 1)
	require.True(t, cd.Start(context.Background(), 2*time.Minute, func() { fired <- struct{}{} }))
	defer cd.Stop()

	assert.Equal(t, "2:00", cd.Formatted())
	assert.False(t, cd.IsWarning())
	assert.False(t, cd.Start(context.Background(), time.Minute, nil))

	clock.Advance(90 * time.Second)
	require.Eventually(t, cd.IsWarning, time.Second, time.Millisecond)
	assert.Equal(t, "0:30", cd.Formatted())
	assert.False(t, cd.IsTimeUp())

	clock.Advance(time.Minute)
	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("onTimeUp was not called")
	}

	assert.True(t, cd.IsTimeUp())
	assert.False(t, cd.Running())
	assert.Equal(t, "0:00", cd.Formatted())

	cd.Stop()
	cd.Stop()
}

func TestCountdown_StopAndCancel(t *testing.T) {
	t.Parallel()

	cd := NewCountdown(time.Millisecond, time.Minute, zap.NewNop())
	assert.False(t, cd.Start(context.Background(), 0, nil))
	assert.False(t, cd.Running())

	require.True(t, cd.Start(context.Background(), time.Hour, func() { t.Error("unexpected time up") }))
	cd.Stop()
	assert.False(t, cd.Running())
	cd.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	require.True(t, cd.Start(ctx, time.Hour, nil))
	cancel()
	require.Eventually(t, func() bool { return !cd.Running() }, time.Second, time.Millisecond)

	cd.Reset()
	assert.Equal(t, "", cd.Formatted())
	assert.Equal(t, time.Duration(0), cd.Remaining())
}
