// Package pomodoro implements the client-side countdown. State lives
// entirely in-process; the server only ever sees completed sessions via
// the OnComplete callback.
package pomodoro

import (
	"context"
	"sync"
	"time"
)

type Mode string

const (
	ModeWork       Mode = "work"
	ModeShortBreak Mode = "shortBreak"
	ModeLongBreak  Mode = "longBreak"
)

// Durations are the fixed interval lengths per mode.
var Durations = map[Mode]time.Duration{
	ModeWork:       25 * time.Minute,
	ModeShortBreak: 5 * time.Minute,
	ModeLongBreak:  15 * time.Minute,
}

// Session describes one completed interval, ready to be persisted.
type Session struct {
	Mode     Mode   `json:"mode"`
	Duration int    `json:"duration"` // minutes
	Date     string `json:"date"`     // YYYY-MM-DD
}

// Timer is a cooperatively-ticked countdown. Ticks are applied only
// while running; switching modes resets the remaining time to that
// mode's fixed duration and stops the clock.
type Timer struct {
	mu         sync.Mutex
	mode       Mode
	remaining  time.Duration
	running    bool
	onComplete func(Session)
	now        func() time.Time
}

// New creates a stopped work-mode timer. onComplete fires exactly once
// per finished interval and may be nil.
func New(onComplete func(Session)) *Timer {
	return &Timer{
		mode:       ModeWork,
		remaining:  Durations[ModeWork],
		onComplete: onComplete,
		now:        time.Now,
	}
}

// Toggle starts a paused timer and pauses a running one.
func (t *Timer) Toggle() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.running = !t.running
}

// SetMode switches mode, resets the remaining time to the new mode's
// duration, and stops the timer. Nothing is persisted.
func (t *Timer) SetMode(m Mode) {
	d, ok := Durations[m]
	if !ok {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.mode = m
	t.remaining = d
	t.running = false
}

// Tick advances the countdown by one second. When the interval
// finishes, the timer stops, resets to the mode's full duration and
// reports the completed session.
func (t *Timer) Tick() {
	t.mu.Lock()
	if !t.running {
		t.mu.Unlock()
		return
	}

	t.remaining -= time.Second
	if t.remaining > 0 {
		t.mu.Unlock()
		return
	}

	done := Session{
		Mode:     t.mode,
		Duration: int(Durations[t.mode].Minutes()),
		Date:     t.now().Format("2006-01-02"),
	}
	t.running = false
	t.remaining = Durations[t.mode]
	callback := t.onComplete
	t.mu.Unlock()

	if callback != nil {
		callback(done)
	}
}

// Run ticks once per second until the context is cancelled.
func (t *Timer) Run(ctx context.Context) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			t.Tick()
		}
	}
}

// Mode returns the current mode.
func (t *Timer) Mode() Mode {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.mode
}

// Remaining returns the time left in the current interval.
func (t *Timer) Remaining() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.remaining
}

// Running reports whether ticks are currently applied.
func (t *Timer) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running
}
