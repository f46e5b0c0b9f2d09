// Package store provides the card storage interface and SQLite implementation.
package store

import (
	"context"
	"errors"
	"time"

	"revise/internal/model"
)

// Sentinel errors surfaced by Store implementations.
var (
	// ErrNotFound means no card matched the given owner and id.
	ErrNotFound = errors.New("store: card not found")

	// ErrVersionConflict means a conditional update matched no row because
	// the card's version moved underneath it.
	ErrVersionConflict = errors.New("store: version conflict")
)

// CreateParams holds the fields for persisting a new card. Scheduling
// fields (review count, retention score, first review date) follow the
// card lifecycle and are set by the caller.
type CreateParams struct {
	Owner        string
	Subject      string
	Chapter      string
	Concept      string
	Content      string
	Type         string
	Difficulty   int
	CreatedAt    time.Time
	NextReviewAt time.Time
}

// ReviewPatch is the result of one review, applied as a single
// conditional write keyed on the card's id and the version it was read
// at.
type ReviewPatch struct {
	ID             string
	Version        int
	ReviewedAt     time.Time
	NextReviewAt   time.Time
	ReviewCount    int
	RetentionScore float64
}

// OwnerStats aggregates the active cards of one owner.
type OwnerStats struct {
	TotalCards    int            `json:"total_cards"`
	DueCards      int            `json:"due_cards"`
	MeanRetention float64        `json:"mean_retention"`
	Subjects      []SubjectStats `json:"subjects"`
}

// SubjectStats holds per-subject counts.
type SubjectStats struct {
	Subject       string  `json:"subject"`
	Cards         int     `json:"cards"`
	MeanRetention float64 `json:"mean_retention"`
}

// Store defines the card storage interface.
type Store interface {
	// Create persists a new card and returns it with its assigned id.
	Create(ctx context.Context, p CreateParams) (*model.Card, error)

	// GetByID retrieves one card. Returns ErrNotFound when no card has
	// this id for this owner (a foreign owner's card is indistinguishable
	// from a missing one).
	GetByID(ctx context.Context, owner, id string) (*model.Card, error)

	// Due returns the owner's active cards whose next review is at or
	// before now, ordered by difficulty descending then next review
	// ascending, capped at limit.
	Due(ctx context.Context, owner string, now time.Time, limit int) ([]model.Card, error)

	// ListByOwner returns all of an owner's cards, optionally filtered by
	// subject, newest first.
	ListByOwner(ctx context.Context, owner, subject string) ([]model.Card, error)

	// UpdateAfterReview applies a review patch as one conditional write.
	// Returns ErrVersionConflict if the card changed since it was read,
	// ErrNotFound if the id is unknown.
	UpdateAfterReview(ctx context.Context, p ReviewPatch) error

	// SetActive flips a card's active flag. Returns ErrNotFound when no
	// card matches.
	SetActive(ctx context.Context, owner, id string, active bool) error

	// Aggregate computes retention statistics over the owner's active
	// cards. An owner with no cards yields zero values, not an error.
	Aggregate(ctx context.Context, owner string, now time.Time) (*OwnerStats, error)

	// Close closes the store.
	Close() error
}
