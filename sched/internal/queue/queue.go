package queue

import (
	"time"

	"github.com/huandu/skiplist"
	"github.com/segmentio/ksuid"
)

func New() Queue {
	return Queue{
		l: skiplist.New(
			skiplist.GreaterThanFunc(func(a, b interface{}) int {
				k1, k2 := a.(key), b.(key)
				if c := k1.Due.Compare(k2.Due); c != 0 {
					return c
				}
				return ksuid.Compare(k1.ID, k2.ID)
			}),
		),
		index: make(map[ksuid.KSUID]time.Time),
	}
}

// Queue orders jobs by due time.
// Jobs due at the same time are ordered by identifier.
type Queue struct {
	l     *skiplist.SkipList
	index map[ksuid.KSUID]time.Time
}

func (q Queue) Set(
	id ksuid.KSUID, due time.Time, fn func(),
) (setAtFront bool) {
	if d, ok := q.index[id]; ok {
		q.l.Remove(key{Due: d, ID: id})
	}
	q.index[id] = due
	e := q.l.Set(key{Due: due, ID: id}, job{ID: id, Due: due, Fn: fn})
	return e.Prev() == nil
}

func (q Queue) Has(id ksuid.KSUID) bool {
	_, ok := q.index[id]
	return ok
}

func (q Queue) Get(id ksuid.KSUID) func() {
	d, ok := q.index[id]
	if !ok {
		return nil
	}
	if e := q.l.Get(key{Due: d, ID: id}); e != nil {
		return e.Value.(job).Fn
	}
	return nil
}

func (q Queue) Front() (ksuid.KSUID, time.Time, func()) {
	if e := q.l.Front(); e != nil {
		v := e.Value.(job)
		return v.ID, v.Due, v.Fn
	}
	return ksuid.KSUID{}, time.Time{}, nil
}

func (q Queue) Remove(id ksuid.KSUID) (removed bool) {
	d, ok := q.index[id]
	if !ok {
		return false
	}
	delete(q.index, id)
	return q.l.Remove(key{Due: d, ID: id}) != nil
}

func (q Queue) Len() int {
	return q.l.Len()
}

func (q Queue) Scan(
	after ksuid.KSUID,
	fn func(ksuid.KSUID, time.Time, func()) bool,
) (afterFound bool) {
	var start *skiplist.Element
	if after != ksuid.Nil {
		d, ok := q.index[after]
		if !ok {
			return false
		}
		if start = q.l.Get(key{Due: d, ID: after}); start == nil {
			return false
		}
		start = start.Next()
	} else {
		start = q.l.Front()
	}

	for e := start; e != nil; e = e.Next() {
		j := e.Value.(job)
		if !fn(j.ID, j.Due, j.Fn) {
			return true
		}
	}
	return true
}

// key is the ordering key of a job.
type key struct {
	Due time.Time
	ID  ksuid.KSUID
}

// job is a job descriptor.
type job struct {
	ID  ksuid.KSUID
	Due time.Time
	Fn  func()
}
