package layout

import "testing"

func TestCursorAdvanceIgnoresNonPositive(t *testing.T) {
	cursor := NewCursor(10)
	cursor.Advance(0)
	cursor.Advance(-5)
	if got := cursor.Y(); got != 10 {
		t.Errorf("cursor moved on non-positive advance: %v", got)
	}
	cursor.Advance(4)
	if got := cursor.Y(); got != 14 {
		t.Errorf("advance: got %v, want 14", got)
	}
}

func TestCursorAdvanceToOnlyMovesForward(t *testing.T) {
	cursor := NewCursor(10)
	cursor.AdvanceTo(30)
	if got := cursor.Y(); got != 30 {
		t.Errorf("advance to: got %v, want 30", got)
	}
	cursor.AdvanceTo(20)
	if got := cursor.Y(); got != 30 {
		t.Errorf("cursor moved backwards: %v", got)
	}
}
