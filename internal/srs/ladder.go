// Package srs implements the spaced-repetition model: the interval
// ladder, review outcomes, and the pure functions that map a review
// outcome onto the next retention score and review date.
package srs

import (
	"errors"
	"fmt"
)

// Ladder is an ascending table of days-until-next-review, indexed by
// maturity index. Index 0 is used for brand-new cards; indices past the
// end clamp to the last entry.
type Ladder []int

// DefaultLadder is the reference pacing. Callers wanting a different
// rhythm supply their own ladder; this one is the conformance baseline.
var DefaultLadder = Ladder{1, 3, 7, 14, 30, 90, 180, 365}

// ErrInvalidLadder is returned by Validate for empty or non-ascending tables.
var ErrInvalidLadder = errors.New("srs: invalid ladder")

// Clamp restricts idx to the valid index range of the ladder.
func (l Ladder) Clamp(idx int) int {
	if idx < 0 {
		return 0
	}
	if idx > len(l)-1 {
		return len(l) - 1
	}
	return idx
}

// Days returns the interval in days at idx, clamping out-of-range indices.
func (l Ladder) Days(idx int) int {
	return l[l.Clamp(idx)]
}

// Validate checks that the ladder is non-empty, positive, and strictly
// ascending.
func (l Ladder) Validate() error {
	if len(l) == 0 {
		return fmt.Errorf("%w: empty", ErrInvalidLadder)
	}
	prev := 0
	for i, d := range l {
		if d <= prev {
			return fmt.Errorf("%w: entry %d (%dd) not greater than previous (%dd)", ErrInvalidLadder, i, d, prev)
		}
		prev = d
	}
	return nil
}
