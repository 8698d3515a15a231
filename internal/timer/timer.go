// Package timer measures quiz sessions: a stopwatch for elapsed time and a
// polling countdown for exam time limits.
package timer

import (
	"fmt"
	"sync"
	"time"
)

// FormatElapsed renders d as "X分Y秒", or "Y秒" under a minute.
func FormatElapsed(d time.Duration) string {
	if d <= 0 {
		return "0秒"
	}
	total := int(d / time.Second)
	minutes, seconds := total/60, total%60
	if minutes > 0 {
		return fmt.Sprintf("%d分%d秒", minutes, seconds)
	}
	return fmt.Sprintf("%d秒", seconds)
}

// FormatClock renders d as "m:ss".
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

type Stopwatch struct {
	now func() time.Time

	mu      sync.Mutex
	start   time.Time
	end     time.Time
	running bool
}

func NewStopwatch() *Stopwatch {
	return &Stopwatch{now: time.Now}
}

// Start begins a new measurement, discarding any previous one.
func (s *Stopwatch) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.start = s.now()
	s.end = time.Time{}
	s.running = true
}

// Stop freezes the elapsed time. Stopping a stopped stopwatch does nothing.
func (s *Stopwatch) Stop() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		s.end = s.now()
		s.running = false
	}
	return s.elapsed()
}

func (s *Stopwatch) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.start, s.end = time.Time{}, time.Time{}
	s.running = false
}

func (s *Stopwatch) Elapsed() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.elapsed()
}

func (s *Stopwatch) elapsed() time.Duration {
	switch {
	case s.start.IsZero():
		return 0
	case !s.end.IsZero():
		return s.end.Sub(s.start)
	case s.running:
		return s.now().Sub(s.start)
	}
	return 0
}

func (s *Stopwatch) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

func (s *Stopwatch) Formatted() string {
	return FormatElapsed(s.Elapsed())
}
