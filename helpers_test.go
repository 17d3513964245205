package tick_test

import (
	"sync"
	"testing"
	"time"

	"github.com/romshark/tick"
	"github.com/romshark/tick/sched"
	"github.com/romshark/tick/sched/schedtest"

	"github.com/stretchr/testify/require"
)

const ms = time.Millisecond

var start = time.Date(2021, 6, 20, 10, 00, 00, 0, time.UTC)

func newClock() (*schedtest.Provider, *sched.Scheduler) {
	p := schedtest.NewProvider(start)
	return p, sched.NewWith(0, p, nil)
}

// newToken returns a real, never firing job for mocked schedulers to hand out.
func newToken(t *testing.T) sched.Job {
	s := sched.NewWith(0, schedtest.NewProvider(start), nil)
	j, err := s.Schedule(time.Hour, func() {})
	require.NoError(t, err)
	return j
}

type event struct {
	Kind  string
	Value time.Duration
}

type recorder struct {
	lock   sync.Mutex
	events []event
}

func (r *recorder) add(kind string) func(time.Duration) {
	return func(v time.Duration) {
		r.lock.Lock()
		defer r.lock.Unlock()
		r.events = append(r.events, event{kind, v})
	}
}

func (r *recorder) listener() tick.Listener {
	return tick.Listener{
		OnStart:  r.add("start"),
		OnTick:   r.add("tick"),
		OnPause:  r.add("pause"),
		OnResume: r.add("resume"),
		OnCancel: r.add("cancel"),
		OnFinish: r.add("finish"),
	}
}

func (r *recorder) values(kind string) []time.Duration {
	r.lock.Lock()
	defer r.lock.Unlock()
	var v []time.Duration
	for _, e := range r.events {
		if e.Kind == kind {
			v = append(v, e.Value)
		}
	}
	return v
}

func (r *recorder) count(kind string) int {
	return len(r.values(kind))
}

func (r *recorder) kinds() []string {
	r.lock.Lock()
	defer r.lock.Unlock()
	k := make([]string, len(r.events))
	for i, e := range r.events {
		k[i] = e.Kind
	}
	return k
}

func durations(d ...time.Duration) []time.Duration { return d }
