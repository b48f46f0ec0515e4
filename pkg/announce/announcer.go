// Package announce delivers status messages to assistive technology. An
// Announcer is constructed explicitly at application start and torn down
// with Close; exactly one instance should exist per UI surface. Each
// announcement first clears the live region and then writes the message
// after a fixed debounce delay, which makes assistive technology
// re-announce a message even when it is identical to the previous one.
package announce

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// DefaultDelay is the debounce delay between clearing the live region and
// writing the message.
const DefaultDelay = 100 * time.Millisecond

// Sink receives live-region updates: an empty string clears the region, a
// non-empty string is the message to announce.
type Sink func(message string)

// Announcer debounces messages into a Sink.
type Announcer struct {
	mu     sync.Mutex
	sink   Sink
	delay  time.Duration
	timer  *time.Timer
	logger *zap.Logger
	closed bool
}

// New creates an announcer writing to the given sink. A nil sink discards
// announcements, which keeps call sites unconditional.
func New(sink Sink, delay time.Duration, logger *zap.Logger) *Announcer {
	if logger == nil {
		logger = zap.NewNop()
	}
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Announcer{sink: sink, delay: delay, logger: logger}
}

// Announce clears the live region immediately and schedules the message
// after the debounce delay. A message arriving before the delay elapses
// replaces the pending one.
func (a *Announcer) Announce(message string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed || message == "" {
		return
	}

	if a.timer != nil {
		a.timer.Stop()
	}

	a.emit("")
	a.timer = time.AfterFunc(a.delay, func() {
		a.mu.Lock()
		defer a.mu.Unlock()
		if a.closed {
			return
		}
		a.emit(message)
	})

	a.logger.Debug("announcement scheduled", zap.String("message", message))
}

// Close cancels any pending announcement and stops the announcer. Further
// calls to Announce are no-ops.
func (a *Announcer) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.closed = true
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
}

// emit writes to the sink; callers hold the mutex.
func (a *Announcer) emit(message string) {
	if a.sink != nil {
		a.sink(message)
	}
}
