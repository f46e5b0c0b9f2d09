package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"revise/internal/model"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	dir := t.TempDir()
	s, err := NewSQLiteStore(filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func createCard(t *testing.T, s *SQLiteStore, owner, subject string, difficulty int, nextReview time.Time) *model.Card {
	t.Helper()
	c, err := s.Create(context.Background(), CreateParams{
		Owner:        owner,
		Subject:      subject,
		Chapter:      "ch1",
		Concept:      "concept",
		Content:      "content",
		Type:         model.TypeFact,
		Difficulty:   difficulty,
		CreatedAt:    testNow.Add(-24 * time.Hour),
		NextReviewAt: nextReview,
	})
	if err != nil {
		t.Fatalf("create card: %v", err)
	}
	return c
}

func TestCreateAndGet(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	c := createCard(t, s, "alice", "physics", 3, testNow)
	if c.ID == "" {
		t.Error("expected non-empty ID")
	}
	if !c.Active {
		t.Error("expected new card to be active")
	}
	if c.Version != 1 {
		t.Errorf("expected version 1, got %d", c.Version)
	}

	got, err := s.GetByID(ctx, "alice", c.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Subject != "physics" || got.Difficulty != 3 {
		t.Errorf("unexpected card: %+v", got)
	}
	if got.ReviewCount != 0 || got.RetentionScore != 0 {
		t.Errorf("new card should start at zero: count=%d score=%v", got.ReviewCount, got.RetentionScore)
	}
	if got.LastReviewedAt != nil {
		t.Error("new card should have no last review")
	}
}

func TestGetByIDNotFound(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	if _, err := s.GetByID(ctx, "alice", "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown id: got %v, want ErrNotFound", err)
	}

	// A foreign owner's card must look exactly like a missing one.
	c := createCard(t, s, "alice", "physics", 3, testNow)
	if _, err := s.GetByID(ctx, "bob", c.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("foreign owner: got %v, want ErrNotFound", err)
	}
}

func TestDueOrderingAndLimit(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	// Same difficulty, staggered due dates; plus one harder card due later.
	early := createCard(t, s, "alice", "physics", 2, testNow.Add(-48*time.Hour))
	late := createCard(t, s, "alice", "physics", 2, testNow.Add(-1*time.Hour))
	hard := createCard(t, s, "alice", "physics", 5, testNow.Add(-2*time.Hour))
	createCard(t, s, "alice", "physics", 4, testNow.Add(24*time.Hour)) // not yet due
	createCard(t, s, "bob", "physics", 5, testNow.Add(-24*time.Hour))  // other owner

	due, err := s.Due(ctx, "alice", testNow, 20)
	if err != nil {
		t.Fatalf("due: %v", err)
	}
	if len(due) != 3 {
		t.Fatalf("expected 3 due cards, got %d", len(due))
	}
	// Hardest first, then most overdue.
	if due[0].ID != hard.ID {
		t.Errorf("expected hardest card first, got %s", due[0].ID)
	}
	if due[1].ID != early.ID || due[2].ID != late.ID {
		t.Errorf("expected overdue-first within same difficulty, got %s, %s", due[1].ID, due[2].ID)
	}

	capped, err := s.Due(ctx, "alice", testNow, 2)
	if err != nil {
		t.Fatalf("due with limit: %v", err)
	}
	if len(capped) != 2 {
		t.Errorf("expected limit 2 honored, got %d", len(capped))
	}
}

func TestDueExcludesSuspended(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	c := createCard(t, s, "alice", "physics", 3, testNow.Add(-time.Hour))
	if err := s.SetActive(ctx, "alice", c.ID, false); err != nil {
		t.Fatalf("suspend: %v", err)
	}

	due, err := s.Due(ctx, "alice", testNow, 20)
	if err != nil {
		t.Fatalf("due: %v", err)
	}
	if len(due) != 0 {
		t.Errorf("suspended card must not be due, got %d", len(due))
	}

	// Still readable by id.
	got, err := s.GetByID(ctx, "alice", c.ID)
	if err != nil {
		t.Fatalf("get suspended: %v", err)
	}
	if got.Active {
		t.Error("expected card to be inactive")
	}

	// And it comes back.
	if err := s.SetActive(ctx, "alice", c.ID, true); err != nil {
		t.Fatalf("resume: %v", err)
	}
	due, _ = s.Due(ctx, "alice", testNow, 20)
	if len(due) != 1 {
		t.Errorf("resumed card should be due again, got %d", len(due))
	}
}

func TestSetActiveNotFound(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	if err := s.SetActive(ctx, "alice", "nope", false); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown id: got %v, want ErrNotFound", err)
	}
	c := createCard(t, s, "alice", "physics", 3, testNow)
	if err := s.SetActive(ctx, "bob", c.ID, false); !errors.Is(err, ErrNotFound) {
		t.Errorf("foreign owner: got %v, want ErrNotFound", err)
	}
}

func TestUpdateAfterReview(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	c := createCard(t, s, "alice", "physics", 3, testNow.Add(-time.Hour))

	patch := ReviewPatch{
		ID:             c.ID,
		Version:        c.Version,
		ReviewedAt:     testNow,
		NextReviewAt:   testNow.AddDate(0, 0, 3),
		ReviewCount:    1,
		RetentionScore: 0.2,
	}
	if err := s.UpdateAfterReview(ctx, patch); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := s.GetByID(ctx, "alice", c.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ReviewCount != 1 {
		t.Errorf("review count = %d, want 1", got.ReviewCount)
	}
	if got.RetentionScore != 0.2 {
		t.Errorf("retention = %v, want 0.2", got.RetentionScore)
	}
	if got.Version != c.Version+1 {
		t.Errorf("version = %d, want %d", got.Version, c.Version+1)
	}
	if got.LastReviewedAt == nil || !got.LastReviewedAt.Equal(testNow) {
		t.Errorf("last reviewed = %v, want %v", got.LastReviewedAt, testNow)
	}
	if !got.NextReviewAt.Equal(testNow.AddDate(0, 0, 3)) {
		t.Errorf("next review = %v", got.NextReviewAt)
	}
}

func TestUpdateAfterReviewStaleVersion(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	c := createCard(t, s, "alice", "physics", 3, testNow)

	first := ReviewPatch{
		ID: c.ID, Version: c.Version,
		ReviewedAt: testNow, NextReviewAt: testNow.AddDate(0, 0, 3),
		ReviewCount: 1, RetentionScore: 0.2,
	}
	if err := s.UpdateAfterReview(ctx, first); err != nil {
		t.Fatalf("first update: %v", err)
	}

	// Second write against the version we originally read must conflict,
	// not silently clobber the first review.
	stale := first
	stale.RetentionScore = 0.3
	if err := s.UpdateAfterReview(ctx, stale); !errors.Is(err, ErrVersionConflict) {
		t.Errorf("stale update: got %v, want ErrVersionConflict", err)
	}

	got, _ := s.GetByID(ctx, "alice", c.ID)
	if got.ReviewCount != 1 {
		t.Errorf("review count = %d, want 1 (stale write must not apply)", got.ReviewCount)
	}
}

func TestUpdateAfterReviewMissingCard(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	err := s.UpdateAfterReview(ctx, ReviewPatch{ID: "nope", Version: 1, ReviewedAt: testNow, NextReviewAt: testNow})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("missing card: got %v, want ErrNotFound", err)
	}
}

func TestListByOwner(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	createCard(t, s, "alice", "physics", 3, testNow)
	createCard(t, s, "alice", "chemistry", 3, testNow)
	createCard(t, s, "bob", "physics", 3, testNow)

	all, err := s.ListByOwner(ctx, "alice", "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("expected 2, got %d", len(all))
	}

	phys, err := s.ListByOwner(ctx, "alice", "physics")
	if err != nil {
		t.Fatalf("list filtered: %v", err)
	}
	if len(phys) != 1 || phys[0].Subject != "physics" {
		t.Errorf("expected 1 physics card, got %d", len(phys))
	}
}
