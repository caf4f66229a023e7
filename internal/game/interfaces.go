package game

import (
	"github.com/ytget/schulte-grid/internal/model"
)

// Engine defines the interface for the game session controller.
type Engine interface {
	SetUpdateCallback(func(model.Session))

	// Start begins a new game, abandoning any game in progress
	Start()

	// Click validates a click on the cell at index (0..CellCount-1)
	Click(index int) ClickOutcome

	// Session returns a snapshot of the current session
	Session() model.Session

	// Close cancels all pending timers; the engine ignores further input
	Close()
}

// Recorder persists a finished run and reports its leaderboard rank.
// Implementations must not call back into the Engine.
type Recorder interface {
	Record(durationMs int64) (rank int, records []model.Record, err error)
}
