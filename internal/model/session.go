package model

import (
	"time"
)

// Grid dimensions
const (
	GridSide  = 5
	CellCount = GridSide * GridSide
)

// Cell represents a single grid square
type Cell struct {
	Number  int  // assigned number, 1..CellCount, unique across the grid
	Clicked bool // found in order
	Error   bool // transient wrong-click highlight
}

// Result describes a finished run
type Result struct {
	Duration time.Duration
	Tier     Tier
	Rank     int // 1-based leaderboard position, 0 if the run did not place
}

// Session is a point-in-time snapshot of a game session
type Session struct {
	ID           string
	Status       SessionStatus
	NextExpected int       // next number the player has to find
	StartedAt    time.Time // zero until the session enters Running
	Elapsed      time.Duration
	Cells        [CellCount]Cell
	Result       *Result // set once the session is Finished
}

// GetElapsedString returns the elapsed time formatted as mm:ss.mmm
func (s *Session) GetElapsedString() string {
	return FormatDuration(s.Elapsed.Milliseconds())
}

// Found returns how many cells have been clicked in order
func (s *Session) Found() int {
	if s.NextExpected < 1 {
		return 0
	}
	return s.NextExpected - 1
}
