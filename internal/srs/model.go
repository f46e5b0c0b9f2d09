package srs

import "time"

// Per-outcome retention score adjustment.
var scoreDelta = map[Outcome]float64{
	Easy:   0.30,
	Good:   0.20,
	Hard:   -0.10,
	Forgot: -0.30,
}

// easyPromoteThreshold gates the maturity bonus for an easy review: a
// single effortless recall only lengthens the interval once the card's
// retention is already strong.
const easyPromoteThreshold = 0.80

// NextScore returns the retention score after a review with outcome o,
// clamped to [0, 1].
func NextScore(score float64, o Outcome) float64 {
	score += scoreDelta[o]
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}

// NextIndex returns the maturity index after a review. The pre-review
// index is the card's review count clamped to the ladder; the outcome
// then moves it: forgot drops two rungs, hard drops one, good holds, and
// easy climbs one only when the post-review score exceeds the promotion
// threshold.
func NextIndex(reviewCount int, postScore float64, o Outcome, ladder Ladder) int {
	idx := ladder.Clamp(reviewCount)
	switch o {
	case Forgot:
		idx -= 2
	case Hard:
		idx--
	case Easy:
		if postScore > easyPromoteThreshold {
			idx++
		}
	}
	return ladder.Clamp(idx)
}

// NextReviewAt returns the next review time for a card at maturity idx,
// reviewed at the given time.
func NextReviewAt(reviewedAt time.Time, idx int, ladder Ladder) time.Time {
	return reviewedAt.AddDate(0, 0, ladder.Days(idx))
}

// FirstReviewAt returns the initial schedule for a brand-new card: its
// creation time plus the ladder's first interval.
func FirstReviewAt(createdAt time.Time, ladder Ladder) time.Time {
	return createdAt.AddDate(0, 0, ladder.Days(0))
}
