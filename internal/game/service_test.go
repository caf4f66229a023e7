package game

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/ytget/schulte-grid/internal/model"
)

type fakeRecorder struct {
	calls []int64
	rank  int
	err   error
}

func (f *fakeRecorder) Record(durationMs int64) (int, []model.Record, error) {
	f.calls = append(f.calls, durationMs)
	if f.err != nil {
		return 0, nil, f.err
	}
	return f.rank, nil, nil
}

func newTestService(rec Recorder) (*Service, *ManualScheduler) {
	sched := NewManualScheduler(time.Unix(1700000000, 0))
	return NewService(rec, sched, rand.New(rand.NewSource(42))), sched
}

func indexOf(t *testing.T, s *Service, number int) int {
	t.Helper()
	snap := s.Session()
	for i, c := range snap.Cells {
		if c.Number == number {
			return i
		}
	}
	t.Fatalf("number %d not on the grid", number)
	return -1
}

func TestNewService(t *testing.T) {
	service, _ := newTestService(nil)

	snap := service.Session()
	if snap.Status != model.SessionStatusIdle {
		t.Errorf("Expected status Idle, got %s", snap.Status)
	}
	if snap.NextExpected != 1 {
		t.Errorf("Expected NextExpected 1, got %d", snap.NextExpected)
	}
	if service.Click(0) != ClickIgnored {
		t.Error("Click before start should be ignored")
	}
}

func TestStart_CountdownThenRunning(t *testing.T) {
	service, sched := newTestService(nil)

	var updates []model.Session
	service.SetUpdateCallback(func(s model.Session) { updates = append(updates, s) })

	service.Start()
	snap := service.Session()
	if snap.Status != model.SessionStatusCountdown {
		t.Fatalf("Expected Countdown, got %s", snap.Status)
	}
	if snap.ID == "" {
		t.Error("Session ID should be set")
	}
	if !snap.StartedAt.IsZero() {
		t.Error("StartedAt should be zero during countdown")
	}
	if len(updates) != 1 {
		t.Errorf("Expected 1 update after Start, got %d", len(updates))
	}

	// Grid holds a fresh permutation
	seen := make(map[int]bool)
	for _, c := range snap.Cells {
		if c.Clicked || c.Error {
			t.Error("Fresh grid should have no clicked or error cells")
		}
		seen[c.Number] = true
	}
	if len(seen) != model.CellCount {
		t.Errorf("Expected %d distinct numbers, got %d", model.CellCount, len(seen))
	}

	if service.Click(indexOf(t, service, 1)) != ClickIgnored {
		t.Error("Click during countdown should be ignored")
	}

	sched.Advance(CountdownDelay - time.Millisecond)
	if service.Session().Status != model.SessionStatusCountdown {
		t.Fatal("Session should still be counting down")
	}

	sched.Advance(time.Millisecond)
	snap = service.Session()
	if snap.Status != model.SessionStatusRunning {
		t.Fatalf("Expected Running, got %s", snap.Status)
	}
	if !snap.StartedAt.Equal(sched.Now()) {
		t.Errorf("StartedAt = %v, expected %v", snap.StartedAt, sched.Now())
	}
}

func TestRunning_TicksUpdateElapsed(t *testing.T) {
	service, sched := newTestService(nil)
	service.Start()
	sched.Advance(CountdownDelay)

	sched.Advance(250 * time.Millisecond)
	snap := service.Session()
	if snap.Elapsed != 200*time.Millisecond {
		t.Errorf("Elapsed = %v, expected 200ms (last tick)", snap.Elapsed)
	}
	if snap.GetElapsedString() != "00:00.200" {
		t.Errorf("GetElapsedString() = %s", snap.GetElapsedString())
	}
}

func TestClickInOrder_FinishesExactlyOnce(t *testing.T) {
	rec := &fakeRecorder{rank: 1}
	service, sched := newTestService(rec)

	finishedTransitions := 0
	last := model.SessionStatusIdle
	service.SetUpdateCallback(func(s model.Session) {
		if s.Status == model.SessionStatusFinished && last != model.SessionStatusFinished {
			finishedTransitions++
		}
		last = s.Status
	})

	service.Start()
	sched.Advance(CountdownDelay)

	for n := 1; n <= model.CellCount; n++ {
		sched.Advance(400 * time.Millisecond)
		outcome := service.Click(indexOf(t, service, n))

		expected := ClickCorrect
		if n == model.CellCount {
			expected = ClickCompleted
		}
		if outcome != expected {
			t.Fatalf("Click on %d = %s, expected %s", n, outcome, expected)
		}
	}

	snap := service.Session()
	if snap.Status != model.SessionStatusFinished {
		t.Fatalf("Expected Finished, got %s", snap.Status)
	}
	if finishedTransitions != 1 {
		t.Errorf("Expected exactly one transition to Finished, got %d", finishedTransitions)
	}
	if snap.Result == nil {
		t.Fatal("Finished session should carry a result")
	}
	if snap.Result.Duration != 10*time.Second {
		t.Errorf("Duration = %v, expected 10s", snap.Result.Duration)
	}
	if snap.Result.Tier.Level != model.TierGood {
		t.Errorf("Tier = %d, expected %d", snap.Result.Tier.Level, model.TierGood)
	}
	if snap.Result.Rank != 1 {
		t.Errorf("Rank = %d, expected 1", snap.Result.Rank)
	}
	if len(rec.calls) != 1 || rec.calls[0] != 10000 {
		t.Errorf("Recorder calls = %v, expected [10000]", rec.calls)
	}

	// Further clicks and ticks change nothing
	for i := 0; i < model.CellCount; i++ {
		if service.Click(i) != ClickIgnored {
			t.Errorf("Click(%d) after finish should be ignored", i)
		}
	}
	sched.Advance(time.Second)
	if got := service.Session().Elapsed; got != 10*time.Second {
		t.Errorf("Elapsed changed after finish: %v", got)
	}
	if sched.Pending() != 0 {
		t.Errorf("Expected no pending callbacks after finish, got %d", sched.Pending())
	}
}

func TestWrongClick_TransientError(t *testing.T) {
	service, sched := newTestService(nil)
	service.Start()
	sched.Advance(CountdownDelay)

	wrong := indexOf(t, service, 2)
	if outcome := service.Click(wrong); outcome != ClickWrong {
		t.Fatalf("Click = %s, expected wrong", outcome)
	}

	snap := service.Session()
	if snap.NextExpected != 1 {
		t.Errorf("Wrong click advanced NextExpected to %d", snap.NextExpected)
	}
	if !snap.Cells[wrong].Error {
		t.Fatal("Cell should show the error state")
	}

	sched.Advance(ErrorFlashDuration - time.Millisecond)
	if !service.Session().Cells[wrong].Error {
		t.Fatal("Error state cleared too early")
	}

	sched.Advance(time.Millisecond)
	if service.Session().Cells[wrong].Error {
		t.Error("Error state should clear after the flash duration")
	}
	if service.Session().Status != model.SessionStatusRunning {
		t.Error("Wrong click should not change the session status")
	}
}

func TestWrongClick_RepeatedExtendsFlash(t *testing.T) {
	service, sched := newTestService(nil)
	service.Start()
	sched.Advance(CountdownDelay)

	wrong := indexOf(t, service, 3)
	service.Click(wrong)
	sched.Advance(300 * time.Millisecond)
	service.Click(wrong)

	sched.Advance(300 * time.Millisecond)
	if !service.Session().Cells[wrong].Error {
		t.Error("Second wrong click should restart the flash")
	}
	sched.Advance(200 * time.Millisecond)
	if service.Session().Cells[wrong].Error {
		t.Error("Error state should clear 500ms after the last wrong click")
	}
}

func TestRestart_StopsPreviousTimer(t *testing.T) {
	service, sched := newTestService(nil)

	var updates []model.Session
	service.SetUpdateCallback(func(s model.Session) { updates = append(updates, s) })

	service.Start()
	firstID := service.Session().ID
	sched.Advance(CountdownDelay + 300*time.Millisecond)
	service.Click(indexOf(t, service, 1))
	service.Click(indexOf(t, service, 5))

	updates = nil
	service.Start()

	snap := service.Session()
	if snap.ID == firstID {
		t.Error("Restart should create a new session ID")
	}
	if snap.Status != model.SessionStatusCountdown || snap.NextExpected != 1 || snap.Elapsed != 0 {
		t.Errorf("Restart did not reset the session: %+v", snap)
	}
	for i, c := range snap.Cells {
		if c.Clicked || c.Error {
			t.Errorf("Cell %d carried state over the restart", i)
		}
	}
	if sched.Pending() != 1 {
		t.Errorf("Only the new countdown should be pending, got %d callbacks", sched.Pending())
	}

	sched.Advance(CountdownDelay - time.Millisecond)
	for _, u := range updates {
		if u.Status != model.SessionStatusCountdown {
			t.Fatalf("Old stopwatch published an update after restart: %s elapsed=%v", u.Status, u.Elapsed)
		}
	}

	sched.Advance(time.Millisecond)
	if service.Session().Status != model.SessionStatusRunning {
		t.Fatal("New game should start running")
	}
	sched.Advance(100 * time.Millisecond)
	if got := service.Session().Elapsed; got != 100*time.Millisecond {
		t.Errorf("Elapsed = %v, expected 100ms from the new start", got)
	}
}

func TestRestart_DuringCountdown(t *testing.T) {
	service, sched := newTestService(nil)

	service.Start()
	sched.Advance(600 * time.Millisecond)
	service.Start()

	sched.Advance(600 * time.Millisecond)
	if service.Session().Status != model.SessionStatusCountdown {
		t.Error("First countdown should have been cancelled")
	}
	sched.Advance(400 * time.Millisecond)
	if service.Session().Status != model.SessionStatusRunning {
		t.Error("Second countdown should complete after its own delay")
	}
}

func TestFinish_RecorderError(t *testing.T) {
	rec := &fakeRecorder{err: errors.New("disk full")}
	service, sched := newTestService(rec)
	service.Start()
	sched.Advance(CountdownDelay)

	for n := 1; n <= model.CellCount; n++ {
		service.Click(indexOf(t, service, n))
	}

	snap := service.Session()
	if snap.Status != model.SessionStatusFinished {
		t.Fatalf("Expected Finished, got %s", snap.Status)
	}
	if snap.Result == nil || snap.Result.Rank != 0 {
		t.Errorf("Expected a result with rank 0, got %+v", snap.Result)
	}
}

func TestClose_CancelsPending(t *testing.T) {
	service, sched := newTestService(nil)
	service.Start()
	service.Close()

	if sched.Pending() != 0 {
		t.Errorf("Expected no pending callbacks after Close, got %d", sched.Pending())
	}

	sched.Advance(2 * CountdownDelay)
	if service.Session().Status != model.SessionStatusCountdown {
		t.Error("Closed service should not change state")
	}

	service.Start()
	if sched.Pending() != 0 {
		t.Error("Start after Close should be ignored")
	}
}
