package store

import (
	"context"
	"time"
)

// Aggregate computes retention statistics over an owner's active cards.
func (s *SQLiteStore) Aggregate(ctx context.Context, owner string, now time.Time) (*OwnerStats, error) {
	st := &OwnerStats{}

	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(AVG(retention_score), 0)
		 FROM cards WHERE owner = ? AND active = 1`, owner).
		Scan(&st.TotalCards, &st.MeanRetention)
	if err != nil {
		return nil, err
	}

	err = s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM cards
		 WHERE owner = ? AND active = 1 AND next_review_at <= ?`,
		owner, formatTime(now)).
		Scan(&st.DueCards)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT subject, COUNT(*), COALESCE(AVG(retention_score), 0)
		 FROM cards WHERE owner = ? AND active = 1
		 GROUP BY subject ORDER BY subject`, owner)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var sub SubjectStats
		if err := rows.Scan(&sub.Subject, &sub.Cards, &sub.MeanRetention); err != nil {
			return nil, err
		}
		st.Subjects = append(st.Subjects, sub)
	}

	return st, rows.Err()
}
