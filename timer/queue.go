// Package timer schedules delayed callbacks that fire from the main tick.
//
// Every callback is keyed by an owner and a slot name. Scheduling again for the
// same key invalidates the pending callback, so the latest wait always wins.
package timer

import "sort"

// Key identifies one logical wait, e.g. an entity's "restart" delay.
type Key struct {
	Owner uint64
	Slot  string
}

type entry struct {
	key Key
	due float64
	seq uint64
	fn  func()
}

// Queue is a single-threaded timer queue advanced by Advance. It holds at
// most one entry per key, so its size is bounded by the live waits.
type Queue struct {
	now     float64
	seq     uint64
	pending []entry
}

func NewQueue() *Queue {
	return &Queue{}
}

// Now returns the accumulated queue time in seconds.
func (q *Queue) Now() float64 {
	if q == nil {
		return 0
	}
	return q.now
}

// After schedules fn to run delay seconds from now. Any callback still pending
// for key is cancelled.
func (q *Queue) After(key Key, delay float64, fn func()) {
	if q == nil || fn == nil {
		return
	}
	if delay < 0 {
		delay = 0
	}
	q.remove(func(e entry) bool { return e.key == key })
	q.seq++
	e := entry{key: key, due: q.now + delay, seq: q.seq, fn: fn}

	// keep pending ordered by due time, then by insertion order
	i := sort.Search(len(q.pending), func(i int) bool {
		p := q.pending[i]
		return p.due > e.due || (p.due == e.due && p.seq > e.seq)
	})
	q.pending = append(q.pending, entry{})
	copy(q.pending[i+1:], q.pending[i:])
	q.pending[i] = e
}

func (q *Queue) remove(match func(entry) bool) {
	kept := q.pending[:0]
	for _, e := range q.pending {
		if !match(e) {
			kept = append(kept, e)
		}
	}
	clear(q.pending[len(kept):])
	q.pending = kept
}

// Cancel drops the pending callback for key, if any.
func (q *Queue) Cancel(key Key) {
	if q == nil {
		return
	}
	q.remove(func(e entry) bool { return e.key == key })
}

// CancelOwner drops every pending callback registered by owner.
func (q *Queue) CancelOwner(owner uint64) {
	if q == nil {
		return
	}
	q.remove(func(e entry) bool { return e.key.Owner == owner })
}

// Pending reports whether key has a live callback waiting.
func (q *Queue) Pending(key Key) bool {
	if q == nil {
		return false
	}
	for _, e := range q.pending {
		if e.key == key {
			return true
		}
	}
	return false
}

// Len returns the number of live pending callbacks.
func (q *Queue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.pending)
}

// Advance moves time forward and runs every callback that came due, in due
// order. Callbacks may schedule or cancel further callbacks; ones due within
// this advance also run. It returns the number of callbacks run.
func (q *Queue) Advance(dt float64) int {
	if q == nil {
		return 0
	}
	if dt > 0 {
		q.now += dt
	}
	fired := 0
	for len(q.pending) > 0 {
		e := q.pending[0]
		if e.due > q.now+1e-9 {
			break
		}
		q.pending[0] = entry{}
		q.pending = q.pending[1:]
		e.fn()
		fired++
	}
	return fired
}

// Reset drops all pending callbacks and rewinds the clock.
func (q *Queue) Reset() {
	if q == nil {
		return
	}
	q.now = 0
	q.pending = nil
}
