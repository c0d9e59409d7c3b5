package brackets

import (
	"fmt"
	"log/slog"

	"github.com/Dosada05/volei-torneio/models"
)

// GenerateSemifinals crosses the top two of paired groups: for groups A and B
// it emits A1 vs B2 and B1 vs A2, so group mates cannot meet before the final.
//
// It refuses with ErrPhaseIncomplete while any group pairing lacks a valid
// result or any other non-knockout match is unplayed, and with ErrNotEnoughGroups when fewer than two groups have two
// ranked teams. If semifinals already exist nothing is generated.
func (e *Engine) GenerateSemifinals(groups []models.Group, matches []models.Match) ([]models.Match, error) {
	if hasStage(matches, models.Semifinal) {
		return []models.Match{}, nil
	}
	if !groupPhaseComplete(groups, matches) {
		return nil, fmt.Errorf("semifinals: %w", ErrPhaseIncomplete)
	}

	eligible := make([]models.GroupStandings, 0, len(groups))
	for _, gs := range e.AllStandings(groups, matches) {
		if len(gs.Standings) >= 2 {
			eligible = append(eligible, gs)
		}
	}
	if len(eligible) < 2 {
		return nil, fmt.Errorf("semifinals: %w (found %d)", ErrNotEnoughGroups, len(eligible))
	}

	created := make([]models.Match, 0, len(eligible))
	for i := 0; i+1 < len(eligible); i += 2 {
		a, b := eligible[i].Standings, eligible[i+1].Standings
		created = append(created,
			e.newMatch(models.Semifinal, a[0].Team, b[1].Team),
			e.newMatch(models.Semifinal, b[0].Team, a[1].Team),
		)
	}
	if len(eligible)%2 == 1 {
		e.logger.Warn("odd number of eligible groups, last group has no semifinal pairing",
			slog.String("group", eligible[len(eligible)-1].Group),
		)
	}

	return created, nil
}

// GenerateFinals pits the semifinal winners in the Final and the losers in the
// third place match. Each of the two is only created when missing.
func (e *Engine) GenerateFinals(matches []models.Match) ([]models.Match, error) {
	semis := matchesOf(matches, models.Semifinal)
	if len(semis) == 0 {
		return nil, fmt.Errorf("finals: %w (no semifinals)", ErrPhaseIncomplete)
	}
	for _, m := range semis {
		if !IsComplete(m) {
			return nil, fmt.Errorf("finals: %w (semifinal %s)", ErrPhaseIncomplete, m.ID)
		}
	}
	if len(semis) != 2 {
		return nil, fmt.Errorf("finals: %w (found %d)", ErrBracketShape, len(semis))
	}

	w1, l1, _ := Winner(semis[0])
	w2, l2, _ := Winner(semis[1])

	created := make([]models.Match, 0, 2)
	if !hasStage(matches, models.Final) {
		created = append(created, e.newMatch(models.Final, w1, w2))
	}
	if !hasStage(matches, models.ThirdPlace) {
		created = append(created, e.newMatch(models.ThirdPlace, l1, l2))
	}
	return created, nil
}

func matchesOf(matches []models.Match, stage models.Stage) []models.Match {
	out := make([]models.Match, 0)
	for _, m := range matches {
		if m.Stage() == stage {
			out = append(out, m)
		}
	}
	return out
}

func hasStage(matches []models.Match, stage models.Stage) bool {
	for _, m := range matches {
		if m.Stage() == stage {
			return true
		}
	}
	return false
}
