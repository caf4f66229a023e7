package leaderboard

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/ytget/schulte-grid/internal/model"
)

// MaxRecords is the leaderboard capacity
const MaxRecords = 5

// ErrNegativeDuration is returned when recording a negative completion time
var ErrNegativeDuration = errors.New("duration must not be negative")

// Storage is a string key/value backend. fyne.Preferences satisfies it.
type Storage interface {
	String(key string) string
	SetString(key string, value string)
}

// Store holds the top completion times, fastest first
type Store struct {
	mu       sync.Mutex
	storage  Storage
	key      string
	now      func() time.Time
	records  []model.Record
	onChange func([]model.Record)
}

// NewStore creates a store persisting under key. Call Load to read the
// existing records.
func NewStore(storage Storage, key string) *Store {
	return &Store{
		storage: storage,
		key:     key,
		now:     time.Now,
	}
}

// SetClock replaces the time source used to stamp new records
func (s *Store) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// SetChangeCallback sets the function called with the new list after every change
func (s *Store) SetChangeCallback(callback func([]model.Record)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = callback
}

// Load reads the persisted leaderboard. Missing or unreadable data yields an
// empty list.
func (s *Store) Load() []model.Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, skipped, err := Decode([]byte(s.storage.String(s.key)))
	if err != nil {
		log.Printf("Leaderboard: discarding stored data: %v", err)
		records = nil
	} else if skipped > 0 {
		log.Printf("Leaderboard: skipped %d malformed entries", skipped)
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].DurationMs < records[j].DurationMs
	})
	if len(records) > MaxRecords {
		records = records[:MaxRecords]
	}
	s.records = records
	return copyRecords(records)
}

// Record adds a completion time stamped with the current time. rank is the
// 1-based position of the new entry, or 0 when it did not make the board.
// Earlier records keep their place on ties.
func (s *Store) Record(durationMs int64) (rank int, records []model.Record, err error) {
	if durationMs < 0 {
		return 0, nil, ErrNegativeDuration
	}

	s.mu.Lock()
	pos := sort.Search(len(s.records), func(i int) bool {
		return s.records[i].DurationMs > durationMs
	})
	if pos >= MaxRecords {
		records = copyRecords(s.records)
		s.mu.Unlock()
		return 0, records, nil
	}

	rec := model.Record{RecordedAt: s.now().UnixMilli(), DurationMs: durationMs}
	next := make([]model.Record, 0, len(s.records)+1)
	next = append(next, s.records[:pos]...)
	next = append(next, rec)
	next = append(next, s.records[pos:]...)
	if len(next) > MaxRecords {
		next = next[:MaxRecords]
	}

	if err := s.persistLocked(next); err != nil {
		s.mu.Unlock()
		return 0, nil, err
	}
	s.records = next
	records = copyRecords(next)
	cb := s.onChange
	s.mu.Unlock()

	if cb != nil {
		cb(copyRecords(records))
	}
	return pos + 1, records, nil
}

// Records returns a copy of the current list
func (s *Store) Records() []model.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyRecords(s.records)
}

// Clear removes every record
func (s *Store) Clear() error {
	s.mu.Lock()
	if err := s.persistLocked(nil); err != nil {
		s.mu.Unlock()
		return err
	}
	s.records = nil
	cb := s.onChange
	s.mu.Unlock()

	log.Printf("Leaderboard: cleared")
	if cb != nil {
		cb(nil)
	}
	return nil
}

func (s *Store) persistLocked(records []model.Record) error {
	data, err := Encode(records)
	if err != nil {
		return fmt.Errorf("persist leaderboard: %w", err)
	}
	s.storage.SetString(s.key, string(data))
	return nil
}

func copyRecords(records []model.Record) []model.Record {
	if len(records) == 0 {
		return []model.Record{}
	}
	out := make([]model.Record, len(records))
	copy(out, records)
	return out
}
