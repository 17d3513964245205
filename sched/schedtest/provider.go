// Package schedtest provides a manually driven sched.TimeProvider
// for deterministic tests of code built on top of sched.Scheduler.
package schedtest

import (
	"sync"
	"time"

	"github.com/romshark/tick/sched"

	"github.com/huandu/skiplist"
)

var _ sched.TimeProvider = (*Provider)(nil)

// Provider is a virtual clock.
// Timers created by AfterFunc never fire on their own,
// they're fired synchronously by Advance and Jump.
type Provider struct {
	lock   sync.Mutex
	now    time.Time
	seq    uint64
	timers *skiplist.SkipList
}

// NewProvider creates a new virtual clock set to start.
func NewProvider(start time.Time) *Provider {
	return &Provider{
		now: start,
		timers: skiplist.New(
			skiplist.GreaterThanFunc(func(a, b interface{}) int {
				k1, k2 := a.(key), b.(key)
				if c := k1.due.Compare(k2.due); c != 0 {
					return c
				}
				switch {
				case k1.seq > k2.seq:
					return 1
				case k1.seq < k2.seq:
					return -1
				}
				return 0
			}),
		),
	}
}

// Now returns the virtual time.
func (p *Provider) Now() time.Time {
	p.lock.Lock()
	defer p.lock.Unlock()
	return p.now
}

// AfterFunc registers fn for execution once the virtual clock reaches now+d.
func (p *Provider) AfterFunc(d time.Duration, fn func()) sched.Timer {
	p.lock.Lock()
	defer p.lock.Unlock()
	t := &timer{p: p, fn: fn}
	p.arm(t, d)
	return t
}

// Pending returns the number of armed timers.
func (p *Provider) Pending() int {
	p.lock.Lock()
	defer p.lock.Unlock()
	return p.timers.Len()
}

// Advance walks the clock forward by d, firing every timer at exactly
// the time it's due, including timers armed by fired callbacks.
// This simulates a host that delivers callbacks on time.
// Callbacks may move the clock further, Advance never moves it back.
func (p *Provider) Advance(d time.Duration) {
	p.lock.Lock()
	target := p.now.Add(d)
	p.lock.Unlock()

	for {
		p.lock.Lock()
		t := p.popDue(target)
		if t == nil {
			if target.After(p.now) {
				p.now = target
			}
			p.lock.Unlock()
			return
		}
		if t.k.due.After(p.now) {
			p.now = t.k.due
		}
		p.lock.Unlock()
		t.fn()
	}
}

// Jump moves the clock forward by d at once and then fires
// every overdue timer late, as a stalled host would.
func (p *Provider) Jump(d time.Duration) {
	p.lock.Lock()
	p.now = p.now.Add(d)
	target := p.now
	p.lock.Unlock()

	for {
		p.lock.Lock()
		t := p.popDue(target)
		p.lock.Unlock()
		if t == nil {
			return
		}
		t.fn()
	}
}

func (p *Provider) arm(t *timer, d time.Duration) {
	if d < 0 {
		d = 0
	}
	p.seq++
	t.k = key{due: p.now.Add(d), seq: p.seq}
	t.armed = true
	p.timers.Set(t.k, t)
}

func (p *Provider) disarm(t *timer) (wasArmed bool) {
	if !t.armed {
		return false
	}
	t.armed = false
	p.timers.Remove(t.k)
	return true
}

// popDue disarms and returns the earliest timer due at or before target.
func (p *Provider) popDue(target time.Time) *timer {
	e := p.timers.Front()
	if e == nil {
		return nil
	}
	t := e.Value.(*timer)
	if t.k.due.After(target) {
		return nil
	}
	p.disarm(t)
	return t
}

type key struct {
	due time.Time
	seq uint64
}

type timer struct {
	p     *Provider
	k     key
	fn    func()
	armed bool
}

func (t *timer) Stop() bool {
	t.p.lock.Lock()
	defer t.p.lock.Unlock()
	return t.p.disarm(t)
}

func (t *timer) Reset(d time.Duration) bool {
	t.p.lock.Lock()
	defer t.p.lock.Unlock()
	wasArmed := t.p.disarm(t)
	t.p.arm(t, d)
	return wasArmed
}
