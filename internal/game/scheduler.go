package game

import (
	"sync"
	"time"
)

// Scheduler runs callbacks after a delay. The returned function cancels the
// callback if it has not fired yet.
type Scheduler interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) (cancel func())
}

type realScheduler struct{}

// NewRealScheduler returns a Scheduler backed by the wall clock
func NewRealScheduler() Scheduler {
	return realScheduler{}
}

func (realScheduler) Now() time.Time { return time.Now() }

func (realScheduler) AfterFunc(d time.Duration, f func()) func() {
	t := time.AfterFunc(d, f)
	return func() { t.Stop() }
}

// ManualScheduler is a Scheduler whose clock only moves when Advance is
// called. Callbacks run synchronously on the goroutine calling Advance.
type ManualScheduler struct {
	mu      sync.Mutex
	now     time.Time
	seq     uint64
	pending []*manualTimer
}

type manualTimer struct {
	id uint64
	at time.Time
	f  func()
}

// NewManualScheduler creates a manual clock starting at start
func NewManualScheduler(start time.Time) *ManualScheduler {
	return &ManualScheduler{now: start}
}

// Now returns the current manual time
func (m *ManualScheduler) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// AfterFunc registers f to run once the clock has advanced by d
func (m *ManualScheduler) AfterFunc(d time.Duration, f func()) func() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.seq++
	t := &manualTimer{id: m.seq, at: m.now.Add(d), f: f}
	m.pending = append(m.pending, t)

	return func() { m.remove(t.id) }
}

// Advance moves the clock forward by d, firing due callbacks in time order.
// Callbacks scheduled while advancing fire too if they fall due within d.
func (m *ManualScheduler) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now.Add(d)
	m.mu.Unlock()

	for {
		m.mu.Lock()
		idx := -1
		for i, t := range m.pending {
			if t.at.After(target) {
				continue
			}
			if idx < 0 || t.at.Before(m.pending[idx].at) {
				idx = i
			}
		}
		if idx < 0 {
			m.now = target
			m.mu.Unlock()
			return
		}
		t := m.pending[idx]
		m.pending = append(m.pending[:idx], m.pending[idx+1:]...)
		m.now = t.at
		m.mu.Unlock()

		t.f()
	}
}

// Pending returns the number of callbacks waiting to fire
func (m *ManualScheduler) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.pending)
}

func (m *ManualScheduler) remove(id uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, t := range m.pending {
		if t.id == id {
			m.pending = append(m.pending[:i], m.pending[i+1:]...)
			return
		}
	}
}
