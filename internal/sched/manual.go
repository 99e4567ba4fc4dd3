package sched

import (
	"sort"
	"sync"
	"time"
)

// Verify Manual implements Scheduler at compile time.
var _ Scheduler = (*Manual)(nil)

// Manual is a deterministic Scheduler for tests. Time only moves on Advance.
// Post is safe from any goroutine; everything else belongs to the test goroutine.
type Manual struct {
	mu     sync.Mutex
	queue  []func()
	now    time.Time
	timers []*manualTimer
	seq    int
}

type manualTimer struct {
	when    time.Time
	seq     int
	fn      func()
	pending bool
}

func (t *manualTimer) Stop() bool {
	was := t.pending
	t.pending = false
	return was
}

// NewManual creates a manual scheduler starting at an arbitrary fixed instant.
func NewManual() *Manual {
	return &Manual{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (m *Manual) Now() time.Time { return m.now }

func (m *Manual) Post(fn func()) {
	m.mu.Lock()
	m.queue = append(m.queue, fn)
	m.mu.Unlock()
}

func (m *Manual) After(d time.Duration, fn func()) Timer {
	m.seq++
	t := &manualTimer{when: m.now.Add(max(d, 0)), seq: m.seq, fn: fn, pending: true}
	m.timers = append(m.timers, t)
	return t
}

// Do runs fn inline.
func (m *Manual) Do(fn func()) { fn() }

// Flush runs posted callbacks, including ones posted while flushing.
func (m *Manual) Flush() {
	for {
		m.mu.Lock()
		if len(m.queue) == 0 {
			m.mu.Unlock()
			return
		}
		fn := m.queue[0]
		m.queue = m.queue[1:]
		m.mu.Unlock()
		fn()
	}
}

// Advance moves the clock forward by d, firing due timers in time order.
func (m *Manual) Advance(d time.Duration) {
	target := m.now.Add(d)
	m.Flush()
	for {
		t := m.nextDue(target)
		if t == nil {
			break
		}
		m.now = t.when
		t.pending = false
		t.fn()
		m.Flush()
	}
	m.now = target
}

// Pending returns the number of timers that have not fired or been stopped.
func (m *Manual) Pending() int {
	n := 0
	for _, t := range m.timers {
		if t.pending {
			n++
		}
	}
	return n
}

func (m *Manual) nextDue(target time.Time) *manualTimer {
	live := m.timers[:0]
	for _, t := range m.timers {
		if t.pending {
			live = append(live, t)
		}
	}
	m.timers = live
	sort.SliceStable(m.timers, func(i, j int) bool {
		if m.timers[i].when.Equal(m.timers[j].when) {
			return m.timers[i].seq < m.timers[j].seq
		}
		return m.timers[i].when.Before(m.timers[j].when)
	})
	if len(m.timers) == 0 || m.timers[0].when.After(target) {
		return nil
	}
	return m.timers[0]
}
