package game

import (
	"testing"

	"github.com/ytget/schulte-grid/internal/model"
)

func identity() []int {
	perm := make([]int, model.CellCount)
	for i := range perm {
		perm[i] = i + 1
	}
	return perm
}

func TestGrid_InitializeRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name string
		perm []int
	}{
		{"too short", []int{1, 2, 3}},
		{"duplicate", append(identity()[:24], 1)},
		{"out of range", append(identity()[:24], 26)},
		{"zero", append(identity()[:24], 0)},
	}

	for _, test := range tests {
		g := NewGrid()
		if err := g.Initialize(test.perm); err == nil {
			t.Errorf("Initialize(%s) should fail", test.name)
		}
	}
}

func TestGrid_ClickInOrder(t *testing.T) {
	g := NewGrid()
	if err := g.Initialize(identity()); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	for n := 1; n < model.CellCount; n++ {
		outcome, _ := g.Click(n - 1)
		if outcome != ClickCorrect {
			t.Fatalf("Click on %d = %s, expected correct", n, outcome)
		}
		if g.Next() != n+1 {
			t.Fatalf("Next() = %d after clicking %d", g.Next(), n)
		}
	}

	outcome, _ := g.Click(model.CellCount - 1)
	if outcome != ClickCompleted {
		t.Fatalf("Last click = %s, expected completed", outcome)
	}
	if !g.Complete() {
		t.Error("Grid should be complete")
	}
	for i, c := range g.Cells() {
		if !c.Clicked {
			t.Errorf("Cell %d should be clicked", i)
		}
	}
}

func TestGrid_WrongClickDoesNotAdvance(t *testing.T) {
	g := NewGrid()
	_ = g.Initialize(identity())

	outcome, token := g.Click(4) // holds 5, expecting 1
	if outcome != ClickWrong {
		t.Fatalf("Click = %s, expected wrong", outcome)
	}
	if token == 0 {
		t.Error("Wrong click should return a non-zero token")
	}
	if g.Next() != 1 {
		t.Errorf("Next() = %d, expected 1", g.Next())
	}
	if !g.Cells()[4].Error {
		t.Error("Cell should be marked with an error")
	}
	if g.Cells()[4].Clicked {
		t.Error("Cell should not be clicked")
	}
}

func TestGrid_ClickIgnored(t *testing.T) {
	g := NewGrid()

	if outcome, _ := g.Click(0); outcome != ClickIgnored {
		t.Errorf("Click on an uninitialized grid = %s, expected ignored", outcome)
	}

	_ = g.Initialize(identity())
	g.Click(0)

	tests := []int{-1, model.CellCount, 0}
	for _, index := range tests {
		if outcome, _ := g.Click(index); outcome != ClickIgnored {
			t.Errorf("Click(%d) = %s, expected ignored", index, outcome)
		}
	}
	if g.Next() != 2 {
		t.Errorf("Ignored clicks changed Next() to %d", g.Next())
	}
}

func TestGrid_ClearError(t *testing.T) {
	g := NewGrid()
	_ = g.Initialize(identity())

	_, first := g.Click(9)
	_, second := g.Click(9)

	if g.ClearError(9, first) {
		t.Error("Stale token should not clear the error")
	}
	if !g.Cells()[9].Error {
		t.Error("Error should still be set")
	}
	if !g.ClearError(9, second) {
		t.Error("Current token should clear the error")
	}
	if g.Cells()[9].Error {
		t.Error("Error should be cleared")
	}
	if g.ClearError(9, second) {
		t.Error("Clearing twice should report no change")
	}
}

func TestGrid_InitializeInvalidatesErrorTokens(t *testing.T) {
	g := NewGrid()
	_ = g.Initialize(identity())
	_, token := g.Click(3)

	_ = g.Initialize(identity())
	if g.Cells()[3].Error {
		t.Error("Initialize should clear error flags")
	}

	g.Click(3)
	if g.ClearError(3, token) {
		t.Error("Token from the previous layout should not match")
	}
}

func TestGrid_IndexOf(t *testing.T) {
	g := NewGrid()
	perm := identity()
	perm[0], perm[24] = perm[24], perm[0]
	_ = g.Initialize(perm)

	if idx := g.IndexOf(25); idx != 0 {
		t.Errorf("IndexOf(25) = %d, expected 0", idx)
	}
	if idx := g.IndexOf(1); idx != 24 {
		t.Errorf("IndexOf(1) = %d, expected 24", idx)
	}
	if idx := g.IndexOf(99); idx != -1 {
		t.Errorf("IndexOf(99) = %d, expected -1", idx)
	}
}
