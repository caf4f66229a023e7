package game

import (
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/schulte-grid/internal/model"
)

// Timing of the session state machine
const (
	CountdownDelay     = 1 * time.Second
	TickInterval       = 100 * time.Millisecond
	ErrorFlashDuration = 500 * time.Millisecond
)

// Service is the game session controller
type Service struct {
	mu       sync.Mutex
	sched    Scheduler
	rng      *rand.Rand
	recorder Recorder
	onUpdate func(model.Session) // callback for UI updates

	grid      *Grid
	stopwatch *Stopwatch

	id        string
	status    model.SessionStatus
	startedAt time.Time
	elapsed   time.Duration
	result    *model.Result

	// round changes on every Start; delayed callbacks from older rounds are dropped
	round           uint64
	countdownCancel func()
	errorCancels    [model.CellCount]func()
	closed          bool
}

var _ Engine = (*Service)(nil)

// NewService creates an idle session controller. recorder may be nil, in
// which case finished runs are not persisted.
func NewService(recorder Recorder, sched Scheduler, rng *rand.Rand) *Service {
	if sched == nil {
		sched = NewRealScheduler()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	s := &Service{
		sched:    sched,
		rng:      rng,
		recorder: recorder,
		grid:     NewGrid(),
		status:   model.SessionStatusIdle,
	}
	s.stopwatch = NewStopwatch(sched, TickInterval, s.onTick)
	return s
}

// SetUpdateCallback sets the callback function for session updates
func (s *Service) SetUpdateCallback(callback func(model.Session)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onUpdate = callback
}

// Start shuffles a new grid and enters Countdown. Any countdown, stopwatch
// or error highlight of the previous game is cancelled.
func (s *Service) Start() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}

	s.cancelPendingLocked()
	s.round++
	round := s.round

	s.id = newSessionID()
	s.status = model.SessionStatusCountdown
	s.startedAt = time.Time{}
	s.elapsed = 0
	s.result = nil
	if err := s.grid.Initialize(Shuffle(s.rng)); err != nil {
		// Shuffle always yields a permutation
		log.Printf("Session %s: grid initialization failed: %v", s.id, err)
	}

	s.countdownCancel = s.sched.AfterFunc(CountdownDelay, func() {
		s.beginRunning(round)
	})

	log.Printf("Session %s: countdown started", s.id)
	snap, cb := s.snapshotLocked(), s.onUpdate
	s.mu.Unlock()

	notify(cb, snap)
}

// Click validates a click on the cell at index
func (s *Service) Click(index int) ClickOutcome {
	s.mu.Lock()
	if s.closed || !s.status.AcceptsClicks() {
		s.mu.Unlock()
		return ClickIgnored
	}

	outcome, token := s.grid.Click(index)
	switch outcome {
	case ClickIgnored:
		s.mu.Unlock()
		return outcome
	case ClickWrong:
		if cancel := s.errorCancels[index]; cancel != nil {
			cancel()
		}
		round := s.round
		s.errorCancels[index] = s.sched.AfterFunc(ErrorFlashDuration, func() {
			s.clearError(round, index, token)
		})
	case ClickCompleted:
		s.finishLocked()
	}

	snap, cb := s.snapshotLocked(), s.onUpdate
	s.mu.Unlock()

	notify(cb, snap)
	return outcome
}

// Session returns a snapshot of the current session
func (s *Service) Session() model.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Close cancels all pending callbacks. Further Start and Click calls are ignored.
func (s *Service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelPendingLocked()
	s.closed = true
}

// beginRunning is the countdown callback
func (s *Service) beginRunning(round uint64) {
	s.mu.Lock()
	if s.closed || round != s.round || s.status != model.SessionStatusCountdown {
		s.mu.Unlock()
		return
	}

	s.countdownCancel = nil
	s.status = model.SessionStatusRunning
	s.startedAt = s.stopwatch.Start()
	s.elapsed = 0

	log.Printf("Session %s: running", s.id)
	snap, cb := s.snapshotLocked(), s.onUpdate
	s.mu.Unlock()

	notify(cb, snap)
}

// onTick is the stopwatch polling callback
func (s *Service) onTick(gen uint64, elapsed time.Duration) {
	s.mu.Lock()
	if s.closed || s.status != model.SessionStatusRunning || gen != s.stopwatch.Generation() {
		s.mu.Unlock()
		return
	}

	s.elapsed = elapsed
	snap, cb := s.snapshotLocked(), s.onUpdate
	s.mu.Unlock()

	notify(cb, snap)
}

// clearError is the error highlight callback
func (s *Service) clearError(round uint64, index int, token uint64) {
	s.mu.Lock()
	if s.closed || round != s.round || !s.grid.ClearError(index, token) {
		s.mu.Unlock()
		return
	}

	s.errorCancels[index] = nil
	snap, cb := s.snapshotLocked(), s.onUpdate
	s.mu.Unlock()

	notify(cb, snap)
}

// finishLocked stops the stopwatch and records the run
func (s *Service) finishLocked() {
	duration := s.stopwatch.Stop()
	s.status = model.SessionStatusFinished
	s.elapsed = duration

	result := &model.Result{
		Duration: duration,
		Tier:     model.TierFor(duration),
	}
	if s.recorder != nil {
		rank, _, err := s.recorder.Record(duration.Milliseconds())
		if err != nil {
			log.Printf("Session %s: failed to record result: %v", s.id, err)
		}
		result.Rank = rank
	}
	s.result = result

	log.Printf("Session %s: finished duration=%s tier=%s rank=%d",
		s.id, model.FormatDuration(duration.Milliseconds()), result.Tier.Key, result.Rank)
}

func (s *Service) cancelPendingLocked() {
	if s.countdownCancel != nil {
		s.countdownCancel()
		s.countdownCancel = nil
	}
	for i, cancel := range s.errorCancels {
		if cancel != nil {
			cancel()
			s.errorCancels[i] = nil
		}
	}
	s.stopwatch.Stop()
}

func (s *Service) snapshotLocked() model.Session {
	snap := model.Session{
		ID:           s.id,
		Status:       s.status,
		NextExpected: s.grid.Next(),
		StartedAt:    s.startedAt,
		Elapsed:      s.elapsed,
		Cells:        s.grid.Cells(),
	}
	if s.result != nil {
		r := *s.result
		snap.Result = &r
	}
	return snap
}

// newSessionID returns a time-ordered ID, falling back to a random one
func newSessionID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// notify calls the update callback if set
func notify(cb func(model.Session), snap model.Session) {
	if cb != nil {
		cb(snap)
	}
}
