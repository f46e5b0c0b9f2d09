// Package scheduler orchestrates card creation, due selection, review
// application, and retention statistics over a card store.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"revise/internal/model"
	"revise/internal/seed"
	"revise/internal/srs"
	"revise/internal/store"
)

// Config configures a Service. Zero values produce the defaults noted on
// each field.
type Config struct {
	Ladder        srs.Ladder // nil → srs.DefaultLadder
	DueLimit      int        // zero → 20
	ReviewRetries int        // zero → 3
}

// Service applies the spaced-repetition model to stored cards. It holds
// no mutable state of its own and is safe for concurrent use; per-card
// atomicity comes from the store's conditional review update.
type Service struct {
	store    store.Store
	ladder   srs.Ladder
	dueLimit int
	retries  int
}

// New creates a Service over the given store. Zero-value config fields
// are filled with defaults; an invalid ladder returns an error.
func New(st store.Store, cfg Config) (*Service, error) {
	ladder := cfg.Ladder
	if ladder == nil {
		ladder = srs.DefaultLadder
	}
	if err := ladder.Validate(); err != nil {
		return nil, err
	}

	dueLimit := cfg.DueLimit
	if dueLimit == 0 {
		dueLimit = 20
	}
	if dueLimit < 0 {
		return nil, fmt.Errorf("due limit %d must be positive", dueLimit)
	}

	retries := cfg.ReviewRetries
	if retries == 0 {
		retries = 3
	}
	if retries < 0 {
		return nil, fmt.Errorf("review retries %d must be positive", retries)
	}

	return &Service{store: st, ladder: ladder, dueLimit: dueLimit, retries: retries}, nil
}

// CreateParams holds the caller-supplied fields for a new card.
type CreateParams struct {
	Owner      string
	Subject    string
	Chapter    string
	Concept    string
	Content    string
	Type       string
	Difficulty int
	Now        time.Time // zero → time.Now()
}

// CreateCard validates the input and persists a new card with the
// lifecycle defaults: zero reviews, zero retention, first review one
// ladder step out.
func (s *Service) CreateCard(ctx context.Context, p CreateParams) (*model.Card, error) {
	if strings.TrimSpace(p.Owner) == "" {
		return nil, fmt.Errorf("%w: owner is required", ErrValidation)
	}
	if strings.TrimSpace(p.Content) == "" {
		return nil, fmt.Errorf("%w: content is required", ErrValidation)
	}
	if err := model.ValidateType(p.Type); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if err := model.ValidateDifficulty(p.Difficulty); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	now := p.Now
	if now.IsZero() {
		now = time.Now()
	}

	card, err := s.store.Create(ctx, store.CreateParams{
		Owner:        p.Owner,
		Subject:      p.Subject,
		Chapter:      p.Chapter,
		Concept:      p.Concept,
		Content:      p.Content,
		Type:         p.Type,
		Difficulty:   p.Difficulty,
		CreatedAt:    now,
		NextReviewAt: srs.FirstReviewAt(now, s.ladder),
	})
	if err != nil {
		return nil, fmt.Errorf("create card: %w", err)
	}
	return card, nil
}

// DueCards returns the owner's active cards due at now, hardest first,
// then most overdue first. A limit ≤ 0 uses the configured default; the
// limit is a hard cap on session size.
func (s *Service) DueCards(ctx context.Context, owner string, now time.Time, limit int) ([]model.Card, error) {
	if limit <= 0 {
		limit = s.dueLimit
	}
	cards, err := s.store.Due(ctx, owner, now, limit)
	if err != nil {
		return nil, fmt.Errorf("due cards: %w", err)
	}
	return cards, nil
}

// ReviewCard applies a review outcome to one card: it recomputes the
// retention score, maturity index, and next review date, and increments
// the review count, all as one atomic conditional write. Concurrent
// reviews of the same card are retried against fresh state a bounded
// number of times before surfacing ErrConflict.
func (s *Service) ReviewCard(ctx context.Context, owner, cardID string, o srs.Outcome, now time.Time) (*model.Card, error) {
	if !o.IsValid() {
		return nil, fmt.Errorf("%w: %v", ErrValidation, srs.ErrInvalidOutcome)
	}

	for attempt := 0; attempt < s.retries; attempt++ {
		card, err := s.store.GetByID(ctx, owner, cardID)
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, cardID)
		}
		if err != nil {
			return nil, fmt.Errorf("review card: %w", err)
		}

		score := srs.NextScore(card.RetentionScore, o)
		idx := srs.NextIndex(card.ReviewCount, score, o, s.ladder)
		next := srs.NextReviewAt(now, idx, s.ladder)

		err = s.store.UpdateAfterReview(ctx, store.ReviewPatch{
			ID:             card.ID,
			Version:        card.Version,
			ReviewedAt:     now,
			NextReviewAt:   next,
			ReviewCount:    card.ReviewCount + 1,
			RetentionScore: score,
		})
		if errors.Is(err, store.ErrVersionConflict) {
			continue
		}
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, cardID)
		}
		if err != nil {
			return nil, fmt.Errorf("review card: %w", err)
		}

		reviewed := now
		card.LastReviewedAt = &reviewed
		card.NextReviewAt = next
		card.ReviewCount++
		card.RetentionScore = score
		card.Version++
		return card, nil
	}

	return nil, fmt.Errorf("%w: card %s after %d attempts", ErrConflict, cardID, s.retries)
}

// Stats computes retention statistics over the owner's active cards.
// An owner with no cards gets zeros, not an error.
func (s *Service) Stats(ctx context.Context, owner string, now time.Time) (*store.OwnerStats, error) {
	st, err := s.store.Aggregate(ctx, owner, now)
	if err != nil {
		return nil, fmt.Errorf("stats: %w", err)
	}
	return st, nil
}

// Suspend makes a card invisible to due selection without deleting it.
func (s *Service) Suspend(ctx context.Context, owner, cardID string) error {
	return s.setActive(ctx, owner, cardID, false)
}

// Resume returns a suspended card to due selection.
func (s *Service) Resume(ctx context.Context, owner, cardID string) error {
	return s.setActive(ctx, owner, cardID, true)
}

func (s *Service) setActive(ctx context.Context, owner, cardID string, active bool) error {
	err := s.store.SetActive(ctx, owner, cardID, active)
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrNotFound, cardID)
	}
	if err != nil {
		return fmt.Errorf("set active: %w", err)
	}
	return nil
}

// SeedChapter creates the template cards for a subject and chapter.
// Repeated calls for the same chapter append more cards; nothing is
// upserted.
func (s *Service) SeedChapter(ctx context.Context, owner, subject, chapter string, now time.Time) ([]model.Card, error) {
	templates := seed.ForChapter(subject, chapter)

	cards := make([]model.Card, 0, len(templates))
	for _, tpl := range templates {
		card, err := s.CreateCard(ctx, CreateParams{
			Owner:      owner,
			Subject:    subject,
			Chapter:    chapter,
			Concept:    tpl.Concept,
			Content:    tpl.Content,
			Type:       tpl.Type,
			Difficulty: tpl.Difficulty,
			Now:        now,
		})
		if err != nil {
			return cards, fmt.Errorf("seed %q: %w", tpl.Concept, err)
		}
		cards = append(cards, *card)
	}
	return cards, nil
}
