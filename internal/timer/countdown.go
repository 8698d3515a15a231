package timer

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	DefaultInterval         = 100 * time.Millisecond
	DefaultWarningThreshold = time.Minute
)

// Countdown polls the clock on a fixed interval until the limit is used up.
// Remaining time only advances on a poll.
type Countdown struct {
	interval time.Duration
	warnAt   time.Duration
	now      func() time.Time
	log      *zap.Logger

	mu      sync.Mutex
	limit   time.Duration
	start   time.Time
	current time.Time
	started bool
	running bool
	stop    chan struct{}
	done    chan struct{}
}

func NewCountdown(interval, warnAt time.Duration, log *zap.Logger) *Countdown {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if warnAt < 0 {
		warnAt = DefaultWarningThreshold
	}
	return &Countdown{
		interval: interval,
		warnAt:   warnAt,
		now:      time.Now,
		log:      log,
	}
}

// Start runs the countdown in a goroutine and calls onTimeUp once when the limit
// is reached. A non-positive limit, or a countdown already running, is ignored.
// The goroutine exits on Stop, Reset, ctx cancellation or time up.
func (c *Countdown) Start(ctx context.Context, limit time.Duration, onTimeUp func()) bool {
	if limit <= 0 {
		c.log.Warn("countdown not started: invalid time limit", zap.Duration("limit", limit))
		return false
	}

	c.mu.Lock()
	if c.running {
		c.mu.Unlock()
		return false
	}
	now := c.now()
	c.limit = limit
	c.start, c.current = now, now
	c.started, c.running = true, true
	c.stop = make(chan struct{})
	c.done = make(chan struct{})
	stop, done := c.stop, c.done
	c.mu.Unlock()

	go c.run(ctx, stop, done, onTimeUp)

	return true
}

func (c *Countdown) run(ctx context.Context, stop, done chan struct{}, onTimeUp func()) {
	defer close(done)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			c.halt()
			return
		case <-stop:
			return
		case <-ticker.C:
			c.mu.Lock()
			if !c.running {
				c.mu.Unlock()
				return
			}
			c.current = c.now()
			up := c.remaining() == 0
			if up {
				c.running = false
			}
			limit := c.limit
			c.mu.Unlock()

			if up {
				c.log.Info("countdown finished", zap.Duration("limit", limit))
				if onTimeUp != nil {
					onTimeUp()
				}
				return
			}
		}
	}
}

func (c *Countdown) halt() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.running = false
}

// Stop halts the countdown and waits for its goroutine. It is safe to call any
// number of times, including from onTimeUp.
func (c *Countdown) Stop() {
	c.mu.Lock()
	if !c.running {
		c.mu.Unlock()
		return
	}
	c.running = false
	c.current = c.now()
	close(c.stop)
	done := c.done
	c.mu.Unlock()

	<-done
}

// Reset stops the countdown and forgets its limit.
func (c *Countdown) Reset() {
	c.Stop()

	c.mu.Lock()
	defer c.mu.Unlock()
	c.limit = 0
	c.start, c.current = time.Time{}, time.Time{}
	c.started = false
}

func (c *Countdown) remaining() time.Duration {
	if !c.started {
		return 0
	}
	left := c.limit - c.current.Sub(c.start)
	if left < 0 {
		return 0
	}
	return left
}

func (c *Countdown) Remaining() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remaining()
}

func (c *Countdown) Elapsed() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.started {
		return 0
	}
	return c.current.Sub(c.start)
}

// Formatted is "" before the countdown has been started.
func (c *Countdown) Formatted() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.started {
		return ""
	}
	return FormatClock(c.remaining())
}

func (c *Countdown) IsWarning() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.started && c.remaining() < c.warnAt
}

func (c *Countdown) IsTimeUp() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.started && c.remaining() == 0
}

func (c *Countdown) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running
}
