package scheduler

import "errors"

// Sentinel errors for the scheduler package.
// Use errors.Is to check: errors.Is(err, scheduler.ErrNotFound)
var (
	// ErrValidation marks bad input (difficulty, card type, outcome),
	// rejected before any storage call.
	ErrValidation = errors.New("scheduler: validation error")

	// ErrNotFound marks a review against a card that does not exist for
	// the calling owner. A card owned by someone else is deliberately
	// indistinguishable from a missing one.
	ErrNotFound = errors.New("scheduler: card not found")

	// ErrConflict means the review retry budget was exhausted against
	// concurrent writes. The operation is safe to retry.
	ErrConflict = errors.New("scheduler: concurrent update conflict")
)
