package game

import (
	"fmt"

	"github.com/ytget/schulte-grid/internal/model"
)

// ClickOutcome is the result of validating a grid click
type ClickOutcome int

const (
	// ClickIgnored means the click had no effect (inactive session, clicked cell, bad index)
	ClickIgnored ClickOutcome = iota
	// ClickWrong means the cell does not hold the expected number
	ClickWrong
	// ClickCorrect means the expected number was found
	ClickCorrect
	// ClickCompleted means the last number was found
	ClickCompleted
)

// String returns a short name for the outcome
func (o ClickOutcome) String() string {
	switch o {
	case ClickIgnored:
		return "ignored"
	case ClickWrong:
		return "wrong"
	case ClickCorrect:
		return "correct"
	case ClickCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// Grid tracks the numbers assigned to the cells and the next number to find.
// Grid is not safe for concurrent use.
type Grid struct {
	cells     [model.CellCount]model.Cell
	next      int
	errTokens [model.CellCount]uint64
	seq       uint64
}

// NewGrid creates an empty grid
func NewGrid() *Grid {
	return &Grid{next: 1}
}

// Initialize assigns perm[i] to cell i and clears all flags
func (g *Grid) Initialize(perm []int) error {
	if len(perm) != model.CellCount {
		return fmt.Errorf("expected %d numbers, got %d", model.CellCount, len(perm))
	}
	var seen [model.CellCount + 1]bool
	for _, n := range perm {
		if n < 1 || n > model.CellCount || seen[n] {
			return fmt.Errorf("not a permutation of 1..%d: %v", model.CellCount, perm)
		}
		seen[n] = true
	}

	for i, n := range perm {
		g.cells[i] = model.Cell{Number: n}
		g.errTokens[i] = 0
	}
	g.next = 1
	// Outstanding error tokens from the previous layout must never match again
	g.seq++
	return nil
}

// Click validates a click on the cell at index. For ClickWrong the returned
// token identifies this error mark for ClearError.
func (g *Grid) Click(index int) (ClickOutcome, uint64) {
	if index < 0 || index >= model.CellCount {
		return ClickIgnored, 0
	}
	cell := &g.cells[index]
	if cell.Clicked || cell.Number == 0 || g.Complete() {
		return ClickIgnored, 0
	}

	if cell.Number != g.next {
		g.seq++
		cell.Error = true
		g.errTokens[index] = g.seq
		return ClickWrong, g.seq
	}

	cell.Clicked = true
	cell.Error = false
	g.errTokens[index] = 0
	g.next++
	if g.Complete() {
		return ClickCompleted, 0
	}
	return ClickCorrect, 0
}

// ClearError removes the error mark set by the wrong click identified by
// token. It reports whether anything changed.
func (g *Grid) ClearError(index int, token uint64) bool {
	if index < 0 || index >= model.CellCount || token == 0 {
		return false
	}
	if g.errTokens[index] != token || !g.cells[index].Error {
		return false
	}
	g.cells[index].Error = false
	g.errTokens[index] = 0
	return true
}

// Next returns the next number the player has to find
func (g *Grid) Next() int {
	return g.next
}

// Complete reports whether every number has been found
func (g *Grid) Complete() bool {
	return g.next > model.CellCount
}

// Cells returns a copy of the cell states
func (g *Grid) Cells() [model.CellCount]model.Cell {
	return g.cells
}

// IndexOf returns the index of the cell holding number, or -1
func (g *Grid) IndexOf(number int) int {
	for i, c := range g.cells {
		if c.Number == number {
			return i
		}
	}
	return -1
}
