package tick

import (
	"errors"
	"time"

	"github.com/romshark/tick/sched"
)

//go:generate mockgen -source ./tick.go -destination ./internal/mock/mock_gen.go -package mock

// Scheduler invokes callbacks once after a delay.
// Callbacks of one Scheduler must be delivered sequentially.
// *sched.Scheduler implements Scheduler.
type Scheduler interface {
	// Now returns the current monotonic time.
	Now() time.Time

	// Schedule invokes fn once, no sooner than in from now.
	Schedule(in time.Duration, fn func()) (sched.Job, error)

	// Cancel prevents a pending invocation if possible.
	// Cancel must be safe to call on a fired or canceled job.
	Cancel(sched.Job) bool
}

var _ Scheduler = (*sched.Scheduler)(nil)

var (
	ErrInvalidInterval = errors.New("invalid interval")
	ErrInvalidDuration = errors.New("invalid duration")
	ErrInvalidDelay    = errors.New("invalid delay")
	ErrDuplicateKey    = errors.New("duplicate key")
	ErrEngineActive    = errors.New("engine not idle")
)

// Mode is the kind of timer an Engine implements.
type Mode uint8

const (
	// ModeTicker fires once after a delay.
	ModeTicker Mode = iota

	// ModeInterval fires repeatedly.
	ModeInterval

	// ModeCountdown fires repeatedly until its deadline is reached.
	ModeCountdown
)

func (m Mode) String() string {
	switch m {
	case ModeTicker:
		return "ticker"
	case ModeInterval:
		return "interval"
	case ModeCountdown:
		return "countdown"
	}
	return "unknown"
}

// State is the lifecycle state of an Engine.
type State uint8

const (
	StateIdle State = iota
	StateRunning
	StatePaused
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	}
	return "unknown"
}

// Listener receives the notifications of an Engine.
// The value passed to each callback is the elapsed time, excluding pauses,
// for tickers and intervals and the remaining time for countdowns.
// Nil callbacks are skipped.
type Listener struct {
	OnStart  func(time.Duration)
	OnTick   func(time.Duration)
	OnPause  func(time.Duration)
	OnResume func(time.Duration)
	OnCancel func(time.Duration)

	// OnFinish is only invoked by countdowns.
	OnFinish func(time.Duration)
}

func call(fn func(time.Duration), v time.Duration) {
	if fn != nil {
		fn(v)
	}
}
