package model

import "time"

// Record is a persisted leaderboard entry
type Record struct {
	RecordedAt int64 `json:"time"`     // epoch milliseconds
	DurationMs int64 `json:"duration"` // completion time in milliseconds
}

// NewRecord stamps a completion duration with the given instant
func NewRecord(at time.Time, duration time.Duration) Record {
	return Record{
		RecordedAt: at.UnixMilli(),
		DurationMs: duration.Milliseconds(),
	}
}

// Duration returns the completion time as a time.Duration
func (r Record) Duration() time.Duration {
	return time.Duration(r.DurationMs) * time.Millisecond
}

// Time returns when the record was made
func (r Record) Time() time.Time {
	return time.UnixMilli(r.RecordedAt)
}
