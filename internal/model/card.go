// Package model defines the core card data types.
package model

import (
	"fmt"
	"time"
)

// Card is the unit of scheduled review: one piece of learnable material
// owned by one user.
type Card struct {
	ID             string     `json:"id"`
	Owner          string     `json:"owner"`
	Subject        string     `json:"subject"`
	Chapter        string     `json:"chapter"`
	Concept        string     `json:"concept"`
	Content        string     `json:"content"`
	Type           string     `json:"type"`
	Difficulty     int        `json:"difficulty"`
	CreatedAt      time.Time  `json:"created_at"`
	LastReviewedAt *time.Time `json:"last_reviewed_at,omitempty"`
	NextReviewAt   time.Time  `json:"next_review_at"`
	ReviewCount    int        `json:"review_count"`
	RetentionScore float64    `json:"retention_score"`
	Active         bool       `json:"active"`

	// Version is the storage concurrency stamp, bumped on every review.
	Version int `json:"-"`
}

// Card types.
const (
	TypeFormula = "formula"
	TypeConcept = "concept"
	TypeFact    = "fact"
	TypeDiagram = "diagram"
)

// ValidTypes are the allowed card types.
var ValidTypes = map[string]bool{
	TypeFormula: true,
	TypeConcept: true,
	TypeFact:    true,
	TypeDiagram: true,
}

// Difficulty bounds, inclusive.
const (
	MinDifficulty = 1
	MaxDifficulty = 5
)

// ValidateType returns an error for an unknown card type.
func ValidateType(t string) error {
	if !ValidTypes[t] {
		return fmt.Errorf("unknown card type %q (want formula, concept, fact, or diagram)", t)
	}
	return nil
}

// ValidateDifficulty returns an error for a difficulty outside [1,5].
func ValidateDifficulty(d int) error {
	if d < MinDifficulty || d > MaxDifficulty {
		return fmt.Errorf("difficulty %d out of range [%d,%d]", d, MinDifficulty, MaxDifficulty)
	}
	return nil
}
