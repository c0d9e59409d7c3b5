package brackets

import (
	"fmt"

	"github.com/Dosada05/volei-torneio/models"
)

const (
	setPoints   = 21
	deuceFloor  = 20
	deuceMargin = 2
)

// IsValidScore reports whether a and b form a finished set: 21 against at most
// 19, or a two point margin once the winner reached 20. 0-0 is never valid.
func IsValidScore(a, b int) bool {
	hi, lo := max(a, b), min(a, b)
	if hi == setPoints && lo < deuceFloor {
		return true
	}
	return hi >= deuceFloor && hi-lo == deuceMargin
}

// IsComplete reports whether the match carries a valid result.
func IsComplete(m models.Match) bool {
	return IsValidScore(m.Score.Side1, m.Score.Side2)
}

// Winner returns winner and loser names of a completed match.
func Winner(m models.Match) (winner, loser string, ok bool) {
	if !IsComplete(m) {
		return "", "", false
	}
	if m.Score.Side1 > m.Score.Side2 {
		return m.Side1, m.Side2, true
	}
	return m.Side2, m.Side1, true
}

// ValidateScore is the check applied when a score is saved.
func ValidateScore(a, b int) error {
	if a < 0 || b < 0 {
		return fmt.Errorf("%w: %d-%d", ErrNegativeScore, a, b)
	}
	if !IsValidScore(a, b) {
		return fmt.Errorf("%w: %d-%d (sets go to 21, win by 2 from 20-20)", ErrInvalidScore, a, b)
	}
	return nil
}

// RecordScore returns a copy of matches with the score of matchID replaced.
// Invalid scores are rejected and the input is left untouched.
func RecordScore(matches []models.Match, matchID string, a, b int) ([]models.Match, error) {
	if err := ValidateScore(a, b); err != nil {
		return nil, err
	}
	return setScore(matches, matchID, models.Score{Side1: a, Side2: b})
}

// ResetScore puts matchID back to the unplayed 0-0 state.
func ResetScore(matches []models.Match, matchID string) ([]models.Match, error) {
	return setScore(matches, matchID, models.Score{})
}

func setScore(matches []models.Match, matchID string, score models.Score) ([]models.Match, error) {
	updated := make([]models.Match, len(matches))
	copy(updated, matches)
	for i := range updated {
		if updated[i].ID == matchID {
			updated[i].Score = score
			return updated, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrMatchNotFound, matchID)
}
