package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"revise/internal/model"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db      *sql.DB
	entropy *rand.Rand
}

// NewSQLiteStore opens or creates a SQLite database at the given path.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &SQLiteStore{
		db:      db,
		entropy: rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) newID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), s.entropy).String()
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS cards (
		id               TEXT PRIMARY KEY,
		owner            TEXT NOT NULL,
		subject          TEXT NOT NULL,
		chapter          TEXT NOT NULL,
		concept          TEXT NOT NULL,
		content          TEXT NOT NULL,
		card_type        TEXT NOT NULL,
		difficulty       INTEGER NOT NULL,
		created_at       TEXT NOT NULL,
		last_reviewed_at TEXT,
		next_review_at   TEXT NOT NULL,
		review_count     INTEGER NOT NULL DEFAULT 0,
		retention_score  REAL NOT NULL DEFAULT 0,
		active           INTEGER NOT NULL DEFAULT 1,
		version          INTEGER NOT NULL DEFAULT 1
	);
	CREATE INDEX IF NOT EXISTS idx_cards_due ON cards(owner, active, next_review_at);
	CREATE INDEX IF NOT EXISTS idx_cards_subject ON cards(owner, subject);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Timestamps are stored as RFC3339 UTC text; fixed width keeps lexical
// order equal to time order for the due query.
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func (s *SQLiteStore) Create(ctx context.Context, p CreateParams) (*model.Card, error) {
	id := s.newID()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO cards (id, owner, subject, chapter, concept, content, card_type, difficulty,
		                    created_at, next_review_at, review_count, retention_score, active, version)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 0, 0, 1, 1)`,
		id, p.Owner, p.Subject, p.Chapter, p.Concept, p.Content, p.Type, p.Difficulty,
		formatTime(p.CreatedAt), formatTime(p.NextReviewAt))
	if err != nil {
		return nil, fmt.Errorf("insert card: %w", err)
	}

	return &model.Card{
		ID:           id,
		Owner:        p.Owner,
		Subject:      p.Subject,
		Chapter:      p.Chapter,
		Concept:      p.Concept,
		Content:      p.Content,
		Type:         p.Type,
		Difficulty:   p.Difficulty,
		CreatedAt:    p.CreatedAt.UTC().Truncate(time.Second),
		NextReviewAt: p.NextReviewAt.UTC().Truncate(time.Second),
		Active:       true,
		Version:      1,
	}, nil
}

const cardColumns = `id, owner, subject, chapter, concept, content, card_type, difficulty,
		created_at, last_reviewed_at, next_review_at, review_count, retention_score, active, version`

func (s *SQLiteStore) GetByID(ctx context.Context, owner, id string) (*model.Card, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+cardColumns+` FROM cards WHERE id = ? AND owner = ?`, id, owner)

	c, err := scanCard(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *SQLiteStore) Due(ctx context.Context, owner string, now time.Time, limit int) ([]model.Card, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+cardColumns+` FROM cards
		 WHERE owner = ? AND active = 1 AND next_review_at <= ?
		 ORDER BY difficulty DESC, next_review_at ASC
		 LIMIT ?`,
		owner, formatTime(now), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectCards(rows)
}

func (s *SQLiteStore) ListByOwner(ctx context.Context, owner, subject string) ([]model.Card, error) {
	query := `SELECT ` + cardColumns + ` FROM cards WHERE owner = ?`
	args := []interface{}{owner}
	if subject != "" {
		query += ` AND subject = ?`
		args = append(args, subject)
	}
	query += ` ORDER BY created_at DESC, id DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectCards(rows)
}

// UpdateAfterReview is the single conditional write that keeps two
// concurrent reviews of the same card from losing an increment: the
// UPDATE only matches if the version is still the one the card was read
// at.
func (s *SQLiteStore) UpdateAfterReview(ctx context.Context, p ReviewPatch) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE cards
		 SET last_reviewed_at = ?, next_review_at = ?, review_count = ?,
		     retention_score = ?, version = version + 1
		 WHERE id = ? AND version = ?`,
		formatTime(p.ReviewedAt), formatTime(p.NextReviewAt), p.ReviewCount,
		p.RetentionScore, p.ID, p.Version)
	if err != nil {
		return fmt.Errorf("update card: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		// Distinguish a vanished card from a stale version.
		var exists int
		err := s.db.QueryRowContext(ctx,
			`SELECT 1 FROM cards WHERE id = ?`, p.ID).Scan(&exists)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		return ErrVersionConflict
	}
	return nil
}

func (s *SQLiteStore) SetActive(ctx context.Context, owner, id string, active bool) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE cards SET active = ? WHERE id = ? AND owner = ?`,
		boolToInt(active), id, owner)
	if err != nil {
		return fmt.Errorf("set active: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Close closes the store.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func collectCards(rows *sql.Rows) ([]model.Card, error) {
	var cards []model.Card
	for rows.Next() {
		c, err := scanCard(rows)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, rows.Err()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanCard(row scanner) (model.Card, error) {
	var c model.Card
	var createdAt, nextReviewAt string
	var lastReviewedAt sql.NullString
	var active int

	err := row.Scan(
		&c.ID, &c.Owner, &c.Subject, &c.Chapter, &c.Concept, &c.Content,
		&c.Type, &c.Difficulty, &createdAt, &lastReviewedAt, &nextReviewAt,
		&c.ReviewCount, &c.RetentionScore, &active, &c.Version,
	)
	if err != nil {
		return c, err
	}

	c.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	c.NextReviewAt, _ = time.Parse(time.RFC3339, nextReviewAt)
	if lastReviewedAt.Valid {
		t, _ := time.Parse(time.RFC3339, lastReviewedAt.String)
		c.LastReviewedAt = &t
	}
	c.Active = active != 0

	return c, nil
}
