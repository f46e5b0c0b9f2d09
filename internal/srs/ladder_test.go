package srs

import (
	"errors"
	"testing"
)

func TestLadderClamp(t *testing.T) {
	tests := []struct {
		idx, want int
	}{
		{-5, 0},
		{-1, 0},
		{0, 0},
		{3, 3},
		{7, 7},
		{8, 7},
		{100, 7},
	}
	for _, tt := range tests {
		if got := DefaultLadder.Clamp(tt.idx); got != tt.want {
			t.Errorf("Clamp(%d) = %d, want %d", tt.idx, got, tt.want)
		}
	}
}

func TestLadderDays(t *testing.T) {
	if got := DefaultLadder.Days(0); got != 1 {
		t.Errorf("Days(0) = %d, want 1", got)
	}
	if got := DefaultLadder.Days(7); got != 365 {
		t.Errorf("Days(7) = %d, want 365", got)
	}
	if got := DefaultLadder.Days(50); got != 365 {
		t.Errorf("Days(50) = %d, want 365 (clamped)", got)
	}
}

func TestLadderValidate(t *testing.T) {
	if err := DefaultLadder.Validate(); err != nil {
		t.Errorf("default ladder should validate: %v", err)
	}
	if err := (Ladder{}).Validate(); !errors.Is(err, ErrInvalidLadder) {
		t.Errorf("empty ladder: got %v, want ErrInvalidLadder", err)
	}
	if err := (Ladder{1, 3, 3}).Validate(); !errors.Is(err, ErrInvalidLadder) {
		t.Errorf("non-ascending ladder: got %v, want ErrInvalidLadder", err)
	}
	if err := (Ladder{0, 1}).Validate(); !errors.Is(err, ErrInvalidLadder) {
		t.Errorf("non-positive entry: got %v, want ErrInvalidLadder", err)
	}
}
