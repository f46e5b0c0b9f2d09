package srs

import (
	"encoding"
	"errors"
	"fmt"
	"strings"
)

// Outcome is the user's self-report of recall quality for one review.
type Outcome int

const (
	Forgot Outcome = iota + 1 // No recall.
	Hard                      // Recalled with significant effort.
	Good                      // Recalled with some effort.
	Easy                      // Recalled effortlessly.
)

// ErrInvalidOutcome is returned when parsing or marshaling an unknown outcome.
var ErrInvalidOutcome = errors.New("srs: invalid outcome")

var (
	outcomeNames  = [...]string{Forgot: "forgot", Hard: "hard", Good: "good", Easy: "easy"}
	outcomeByName = map[string]Outcome{
		"forgot": Forgot,
		"hard":   Hard,
		"good":   Good,
		"easy":   Easy,
	}
)

var (
	_ fmt.Stringer             = Outcome(0)
	_ encoding.TextMarshaler   = Outcome(0)
	_ encoding.TextUnmarshaler = (*Outcome)(nil)
)

// String returns the lowercase name of the outcome. For invalid values it
// returns "Outcome(n)".
func (o Outcome) String() string {
	if o.IsValid() {
		return outcomeNames[o]
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// IsValid reports whether o is one of the four defined outcomes.
func (o Outcome) IsValid() bool {
	return o >= Forgot && o <= Easy
}

// MarshalText implements encoding.TextMarshaler.
func (o Outcome) MarshalText() ([]byte, error) {
	if !o.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidOutcome, int(o))
	}
	return []byte(outcomeNames[o]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Outcome) UnmarshalText(b []byte) error {
	parsed, err := ParseOutcome(string(b))
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

// ParseOutcome converts a name like "good" into an Outcome.
// Matching is case-insensitive.
func ParseOutcome(s string) (Outcome, error) {
	if o, ok := outcomeByName[strings.ToLower(strings.TrimSpace(s))]; ok {
		return o, nil
	}
	return 0, fmt.Errorf("%w: %q (want forgot, hard, good, or easy)", ErrInvalidOutcome, s)
}
