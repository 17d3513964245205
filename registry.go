package tick

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/romshark/tick/sched"
)

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithRegistryLogger sets the logger, slog.Default is used by default.
func WithRegistryLogger(l *slog.Logger) RegistryOption {
	return func(r *Registry) { r.log = l }
}

// Registry multiplexes named engines onto a single Scheduler.
// Operations addressed to an unknown key do nothing.
type Registry struct {
	sched   Scheduler
	log     *slog.Logger
	lock    sync.RWMutex
	entries map[string]*Engine
}

// NewRegistry creates an empty registry.
// Uses sched.DefaultScheduler if s is nil.
func NewRegistry(s Scheduler, opts ...RegistryOption) *Registry {
	if s == nil {
		s = sched.DefaultScheduler
	}
	r := &Registry{
		sched:   s,
		log:     slog.Default(),
		entries: make(map[string]*Engine),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds an idle engine under key and routes its callbacks
// through the registry's scheduler.
// Fails with ErrDuplicateKey if key is already registered
// and with ErrEngineActive if e isn't idle.
func (r *Registry) Register(key string, e *Engine) error {
	e.lock.Lock()
	defer e.lock.Unlock()

	r.lock.Lock()
	defer r.lock.Unlock()

	if _, ok := r.entries[key]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateKey, key)
	}
	if err := e.bind(route{registry: r, key: key, engine: e}); err != nil {
		return fmt.Errorf("registering %q: %w", key, err)
	}
	r.entries[key] = e
	r.log.Debug("registered",
		slog.String("key", key),
		slog.String("mode", e.mode.String()),
	)
	return nil
}

// Interval creates an interval engine and registers it under key.
func (r *Registry) Interval(
	key string,
	interval time.Duration,
	l Listener,
	opts ...Option,
) (*Engine, error) {
	e, err := NewInterval(r.sched, interval, l, opts...)
	if err != nil {
		return nil, err
	}
	if err := r.Register(key, e); err != nil {
		return nil, err
	}
	return e, nil
}

// Countdown creates a countdown engine and registers it under key.
func (r *Registry) Countdown(
	key string,
	duration, interval time.Duration,
	l Listener,
	opts ...Option,
) (*Engine, error) {
	e, err := NewCountdown(r.sched, duration, interval, l, opts...)
	if err != nil {
		return nil, err
	}
	if err := r.Register(key, e); err != nil {
		return nil, err
	}
	return e, nil
}

// Ticker creates a ticker engine and registers it under key.
func (r *Registry) Ticker(
	key string,
	delay time.Duration,
	l Listener,
	opts ...Option,
) (*Engine, error) {
	e, err := NewTicker(r.sched, delay, l, opts...)
	if err != nil {
		return nil, err
	}
	if err := r.Register(key, e); err != nil {
		return nil, err
	}
	return e, nil
}

// Get returns the engine registered under key.
func (r *Registry) Get(key string) (*Engine, bool) {
	r.lock.RLock()
	defer r.lock.RUnlock()
	e, ok := r.entries[key]
	return e, ok
}

// Len returns the number of registered engines.
func (r *Registry) Len() int {
	r.lock.RLock()
	defer r.lock.RUnlock()
	return len(r.entries)
}

// Keys returns the registered keys in ascending order.
func (r *Registry) Keys() []string {
	r.lock.RLock()
	keys := make([]string, 0, len(r.entries))
	for k := range r.entries {
		keys = append(keys, k)
	}
	r.lock.RUnlock()
	slices.Sort(keys)
	return keys
}

// Start starts the engine registered under key.
func (r *Registry) Start(key string) (ok bool, err error) {
	e, ok := r.Get(key)
	if !ok {
		return false, nil
	}
	return true, e.Start()
}

// Pause pauses the engine registered under key.
func (r *Registry) Pause(key string) (ok bool) {
	e, ok := r.Get(key)
	if ok {
		e.Pause()
	}
	return ok
}

// Resume resumes the engine registered under key.
func (r *Registry) Resume(key string) (ok bool, err error) {
	e, ok := r.Get(key)
	if !ok {
		return false, nil
	}
	return true, e.Resume()
}

// Cancel cancels the engine registered under key and removes it.
func (r *Registry) Cancel(key string) (ok bool) {
	r.lock.Lock()
	e, ok := r.entries[key]
	delete(r.entries, key)
	r.lock.Unlock()

	if ok {
		e.Cancel()
		r.log.Debug("removed", slog.String("key", key))
	}
	return ok
}

// StartAll starts every registered engine.
// A failure to start one engine doesn't prevent starting the others,
// all failures are joined into the returned error.
func (r *Registry) StartAll() error {
	var errs []error
	for key, e := range r.snapshot() {
		if err := e.Start(); err != nil {
			errs = append(errs, fmt.Errorf("starting %q: %w", key, err))
		}
	}
	return errors.Join(errs...)
}

// CancelAll cancels every registered engine and clears the registry.
func (r *Registry) CancelAll() {
	r.lock.Lock()
	entries := r.entries
	r.entries = make(map[string]*Engine)
	r.lock.Unlock()

	for _, e := range entries {
		e.Cancel()
	}
	r.log.Debug("cleared", slog.Int("removed", len(entries)))
}

func (r *Registry) snapshot() map[string]*Engine {
	r.lock.RLock()
	defer r.lock.RUnlock()
	m := make(map[string]*Engine, len(r.entries))
	for k, e := range r.entries {
		m[k] = e
	}
	return m
}

// dispatch invokes fn only if key still refers to e.
func (r *Registry) dispatch(key string, e *Engine, fn func()) {
	r.lock.RLock()
	current := r.entries[key]
	r.lock.RUnlock()

	if current != e {
		r.log.Debug("dropped callback", slog.String("key", key))
		return
	}
	fn()
}

// route schedules an engine's callbacks on the registry's scheduler.
type route struct {
	registry *Registry
	key      string
	engine   *Engine
}

func (rt route) Now() time.Time {
	return rt.registry.sched.Now()
}

func (rt route) Schedule(in time.Duration, fn func()) (sched.Job, error) {
	return rt.registry.sched.Schedule(in, func() {
		rt.registry.dispatch(rt.key, rt.engine, fn)
	})
}

func (rt route) Cancel(j sched.Job) bool {
	return rt.registry.sched.Cancel(j)
}
