package game

import (
	"sync"
	"time"
)

// Stopwatch measures elapsed time from Start and reports it every interval
// until stopped. Each Start or Stop bumps the generation so ticks that were
// already in flight for an earlier run are dropped.
type Stopwatch struct {
	mu        sync.Mutex
	sched     Scheduler
	interval  time.Duration
	onTick    func(gen uint64, elapsed time.Duration)
	startedAt time.Time
	running   bool
	gen       uint64
	cancel    func()
}

// NewStopwatch creates a stopped stopwatch
func NewStopwatch(sched Scheduler, interval time.Duration, onTick func(gen uint64, elapsed time.Duration)) *Stopwatch {
	return &Stopwatch{
		sched:    sched,
		interval: interval,
		onTick:   onTick,
	}
}

// Start (re)starts measuring from now and returns the captured instant
func (sw *Stopwatch) Start() time.Time {
	sw.mu.Lock()
	defer sw.mu.Unlock()

	sw.stopLocked()
	sw.startedAt = sw.sched.Now()
	sw.running = true
	sw.scheduleLocked(sw.gen)
	return sw.startedAt
}

// Stop halts polling and returns the elapsed time, or zero if not running
func (sw *Stopwatch) Stop() time.Duration {
	sw.mu.Lock()
	defer sw.mu.Unlock()

	if !sw.running {
		return 0
	}
	elapsed := sw.sched.Now().Sub(sw.startedAt)
	sw.stopLocked()
	return elapsed
}

// Elapsed returns the time since Start, or zero if not running
func (sw *Stopwatch) Elapsed() time.Duration {
	sw.mu.Lock()
	defer sw.mu.Unlock()
	if !sw.running {
		return 0
	}
	return sw.sched.Now().Sub(sw.startedAt)
}

// Running reports whether the stopwatch is measuring
func (sw *Stopwatch) Running() bool {
	sw.mu.Lock()
	defer sw.mu.Unlock()
	return sw.running
}

// Generation identifies the current run
func (sw *Stopwatch) Generation() uint64 {
	sw.mu.Lock()
	defer sw.mu.Unlock()
	return sw.gen
}

func (sw *Stopwatch) stopLocked() {
	if sw.cancel != nil {
		sw.cancel()
		sw.cancel = nil
	}
	sw.running = false
	sw.gen++
}

func (sw *Stopwatch) scheduleLocked(gen uint64) {
	sw.cancel = sw.sched.AfterFunc(sw.interval, func() { sw.tick(gen) })
}

func (sw *Stopwatch) tick(gen uint64) {
	sw.mu.Lock()
	if !sw.running || gen != sw.gen {
		sw.mu.Unlock()
		return
	}
	elapsed := sw.sched.Now().Sub(sw.startedAt)
	sw.scheduleLocked(gen)
	onTick := sw.onTick
	sw.mu.Unlock()

	if onTick != nil {
		onTick(gen, elapsed)
	}
}
