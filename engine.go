package tick

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/romshark/tick/sched"
)

// Engine is a single pausable timer.
//
// Tick boundaries are kept as absolute anchors: the first one is
// startedAt+interval and every following one is the previous plus
// interval, shifted by the duration of each pause. Tick values are
// reported at the anchor, so they're multiples of the interval
// regardless of how late the scheduler delivered the callback.
type Engine struct {
	lock     sync.Mutex
	sched    Scheduler
	mode     Mode
	interval time.Duration
	duration time.Duration
	listener Listener
	opts     options
	log      *slog.Logger

	state       State
	startedAt   time.Time
	pausedAt    time.Time
	totalPaused time.Duration
	nextFireAt  time.Time
	deadlineAt  time.Time
	pending     sched.Job
	ticks       int

	// generation identifies the most recently scheduled callback,
	// callbacks carrying any other generation are stray deliveries.
	generation uint64
}

// NewInterval creates an engine ticking every interval.
// Uses sched.DefaultScheduler if s is nil.
func NewInterval(
	s Scheduler,
	interval time.Duration,
	l Listener,
	opts ...Option,
) (*Engine, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInterval, interval)
	}
	return newEngine(s, ModeInterval, interval, 0, l, opts), nil
}

// NewCountdown creates an engine ticking every interval
// until duration has elapsed.
// Uses sched.DefaultScheduler if s is nil.
func NewCountdown(
	s Scheduler,
	duration, interval time.Duration,
	l Listener,
	opts ...Option,
) (*Engine, error) {
	if duration <= 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDuration, duration)
	}
	if interval <= 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInterval, interval)
	}
	return newEngine(s, ModeCountdown, interval, duration, l, opts), nil
}

// NewTicker creates an engine ticking once after delay.
// Uses sched.DefaultScheduler if s is nil.
func NewTicker(
	s Scheduler,
	delay time.Duration,
	l Listener,
	opts ...Option,
) (*Engine, error) {
	if delay < 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDelay, delay)
	}
	return newEngine(s, ModeTicker, delay, 0, l, opts), nil
}

func newEngine(
	s Scheduler,
	m Mode,
	interval, duration time.Duration,
	l Listener,
	opts []Option,
) *Engine {
	if s == nil {
		s = sched.DefaultScheduler
	}
	o := options{
		tickOnFinish: m == ModeCountdown,
		log:          slog.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Engine{
		sched:    s,
		mode:     m,
		interval: interval,
		duration: duration,
		listener: l,
		opts:     o,
		log:      o.log.With(slog.String("mode", m.String())),
	}
}

// Mode returns the kind of timer.
func (e *Engine) Mode() Mode { return e.mode }

// Interval returns the tick interval, or the delay of a ticker.
func (e *Engine) Interval() time.Duration { return e.interval }

// Duration returns the duration of a countdown, zero otherwise.
func (e *Engine) Duration() time.Duration { return e.duration }

// State returns the current state.
func (e *Engine) State() State {
	e.lock.Lock()
	defer e.lock.Unlock()
	return e.state
}

// Ticks returns the number of ticks emitted in the current run.
func (e *Engine) Ticks() int {
	e.lock.Lock()
	defer e.lock.Unlock()
	return e.ticks
}

// Value returns the elapsed time for tickers and intervals
// and the remaining time for countdowns.
// The value is frozen while paused and zero while idle.
func (e *Engine) Value() time.Duration {
	e.lock.Lock()
	defer e.lock.Unlock()
	switch e.state {
	case StateRunning:
		return e.valueAt(e.sched.Now())
	case StatePaused:
		return e.valueAt(e.pausedAt)
	}
	return 0
}

// Start begins a new run. Does nothing if the engine is already running.
// Starting a paused engine discards the paused run.
// Returns an error if the scheduler failed to accept the first callback,
// in which case the engine is idle.
func (e *Engine) Start() error {
	e.lock.Lock()
	defer e.lock.Unlock()
	return e.start()
}

// Pause suspends a running engine. Does nothing otherwise.
func (e *Engine) Pause() {
	e.lock.Lock()
	defer e.lock.Unlock()

	if e.state != StateRunning {
		return
	}
	e.discardPending()
	e.pausedAt = e.sched.Now()
	e.state = StatePaused
	e.log.Debug("paused")
	call(e.listener.OnPause, e.valueAt(e.pausedAt))
}

// Resume continues a paused engine. Does nothing otherwise.
// The next tick keeps its phase relative to the start of the run.
func (e *Engine) Resume() error {
	e.lock.Lock()
	defer e.lock.Unlock()

	if e.state != StatePaused {
		return nil
	}
	call(e.listener.OnResume, e.valueAt(e.pausedAt))

	paused := e.sched.Now().Sub(e.pausedAt)
	e.totalPaused += paused
	e.nextFireAt = e.nextFireAt.Add(paused)
	if e.mode == ModeCountdown {
		e.deadlineAt = e.deadlineAt.Add(paused)
	}
	e.state = StateRunning
	e.log.Debug("resumed", slog.Duration("paused", paused))
	return e.scheduleNext()
}

// Cancel stops a running or paused engine. Does nothing otherwise.
func (e *Engine) Cancel() {
	e.lock.Lock()
	defer e.lock.Unlock()
	e.cancel()
}

// Restart cancels the current run, if any, and starts a new one.
func (e *Engine) Restart() error {
	e.lock.Lock()
	defer e.lock.Unlock()
	e.cancel()
	return e.start()
}

func (e *Engine) start() error {
	if e.state == StateRunning {
		return nil
	}
	e.discardPending()

	now := e.sched.Now()
	e.totalPaused = 0
	e.ticks = 0
	e.startedAt = now
	e.nextFireAt = now.Add(e.interval)
	if e.mode == ModeCountdown {
		e.deadlineAt = now.Add(e.duration)
		if e.duration <= 0 {
			e.finish()
			return nil
		}
	}
	e.state = StateRunning
	e.log.Debug("started")

	v := e.valueAt(now)
	call(e.listener.OnStart, v)
	if e.opts.tickOnStart {
		e.emitTick(v)
	}
	return e.scheduleNext()
}

func (e *Engine) cancel() {
	var v time.Duration
	switch e.state {
	case StateRunning:
		v = e.valueAt(e.sched.Now())
	case StatePaused:
		v = e.valueAt(e.pausedAt)
	default:
		return
	}
	e.discardPending()
	e.state = StateIdle
	e.log.Debug("canceled")
	call(e.listener.OnCancel, v)
}

// fire handles a callback delivered by the scheduler.
func (e *Engine) fire(generation uint64) {
	e.lock.Lock()
	defer e.lock.Unlock()

	if e.state != StateRunning || generation != e.generation {
		return
	}
	e.pending = sched.Job{}
	now := e.sched.Now()

	switch e.mode {
	case ModeTicker:
		e.state = StateIdle
		e.emitTick(e.valueAt(e.nextFireAt))

	case ModeInterval:
		e.align(now)
		e.emitTick(e.valueAt(e.nextFireAt))
		e.nextFireAt = e.nextFireAt.Add(e.interval)
		_ = e.scheduleNext()

	case ModeCountdown:
		if !now.Before(e.deadlineAt) || !e.nextFireAt.Before(e.deadlineAt) {
			e.finish()
			return
		}
		e.align(now)
		e.emitTick(e.valueAt(e.nextFireAt))
		e.nextFireAt = e.nextFireAt.Add(e.interval)
		_ = e.scheduleNext()
	}
}

// align moves nextFireAt to the latest tick boundary not after now.
func (e *Engine) align(now time.Time) {
	late := now.Sub(e.nextFireAt)
	if late < e.interval {
		return
	}
	missed := late / e.interval
	e.nextFireAt = e.nextFireAt.Add(missed * e.interval)
	e.log.Debug("delivered late", slog.Int64("missed", int64(missed)))
}

// scheduleNext requests the callback for nextFireAt.
// Boundaries that already passed are skipped, and a countdown's
// last callback is moved onto its deadline.
func (e *Engine) scheduleNext() error {
	now := e.sched.Now()
	delay := e.nextFireAt.Sub(now)

	if delay < 0 && e.mode != ModeTicker {
		overdue := -delay
		skipped := overdue / e.interval
		if overdue%e.interval != 0 {
			skipped++
		}
		e.nextFireAt = e.nextFireAt.Add(skipped * e.interval)
		delay = e.nextFireAt.Sub(now)
		e.log.Debug("skipped ticks", slog.Int64("skipped", int64(skipped)))
	}

	if e.mode == ModeCountdown && e.nextFireAt.After(e.deadlineAt) {
		e.nextFireAt = e.deadlineAt
		if delay = e.nextFireAt.Sub(now); delay <= 0 {
			e.finish()
			return nil
		}
	}

	if delay < 0 {
		delay = 0
	}
	e.generation++
	generation := e.generation
	job, err := e.sched.Schedule(delay, func() { e.fire(generation) })
	if err != nil {
		e.state = StateIdle
		e.pending = sched.Job{}
		e.log.Error("scheduling tick", slog.Any("error", err))
		return fmt.Errorf("scheduling tick: %w", err)
	}
	e.pending = job
	return nil
}

// finish ends a countdown run.
func (e *Engine) finish() {
	e.discardPending()
	e.state = StateIdle
	e.log.Debug("finished")
	if e.opts.tickOnFinish {
		e.emitTick(0)
	}
	call(e.listener.OnFinish, 0)
}

// discardPending cancels the outstanding callback and invalidates
// any delivery of it that may already be under way.
func (e *Engine) discardPending() {
	if !e.pending.IsZero() {
		e.sched.Cancel(e.pending)
		e.pending = sched.Job{}
	}
	e.generation++
}

func (e *Engine) emitTick(v time.Duration) {
	e.ticks++
	call(e.listener.OnTick, v)
}

func (e *Engine) valueAt(t time.Time) time.Duration {
	if e.mode == ModeCountdown {
		if remaining := e.deadlineAt.Sub(t); remaining > 0 {
			return remaining
		}
		return 0
	}
	return t.Sub(e.startedAt) - e.totalPaused
}

// bind replaces the scheduler of an idle engine.
func (e *Engine) bind(s Scheduler) error {
	if e.state != StateIdle {
		return ErrEngineActive
	}
	e.sched = s
	return nil
}
