package brackets

import (
	"fmt"

	"github.com/Dosada05/volei-torneio/models"
)

type Phase string

const (
	PhaseGroups     Phase = "groups"
	PhaseSemifinals Phase = "semifinals"
	PhaseFinals     Phase = "finals"
)

// Outcome separates a step that created matches from one that was already done.
type Outcome string

const (
	OutcomeGenerated   Outcome = "generated"
	OutcomeAlreadyDone Outcome = "already_done"
)

type Transition struct {
	Phase   Phase          `json:"phase"`
	Outcome Outcome        `json:"outcome"`
	Created []models.Match `json:"created"`
}

// Apply returns matches with the created fixtures appended. The input slice is
// not modified.
func (t Transition) Apply(matches []models.Match) []models.Match {
	out := make([]models.Match, 0, len(matches)+len(t.Created))
	out = append(out, matches...)
	return append(out, t.Created...)
}

// CurrentPhase derives the phase from which knockout matches exist.
func CurrentPhase(matches []models.Match) Phase {
	switch {
	case hasStage(matches, models.Final), hasStage(matches, models.ThirdPlace):
		return PhaseFinals
	case hasStage(matches, models.Semifinal):
		return PhaseSemifinals
	default:
		return PhaseGroups
	}
}

// GenerateGroups fills in missing group fixtures. It is only allowed while no
// knockout match exists.
func (e *Engine) GenerateGroups(teams []models.Team, matches []models.Match) (Transition, error) {
	if CurrentPhase(matches) != PhaseGroups {
		return Transition{}, fmt.Errorf("group fixtures: %w", ErrPhaseClosed)
	}
	created := e.GenerateGroupMatches(GroupTeams(teams), matches)
	return newTransition(PhaseGroups, created), nil
}

// AdvanceToSemifinals moves GROUPS -> SEMIFINALS.
func (e *Engine) AdvanceToSemifinals(teams []models.Team, matches []models.Match) (Transition, error) {
	created, err := e.GenerateSemifinals(GroupTeams(teams), matches)
	if err != nil {
		return Transition{}, err
	}
	return newTransition(PhaseSemifinals, created), nil
}

// AdvanceToFinals moves SEMIFINALS -> FINALS.
func (e *Engine) AdvanceToFinals(matches []models.Match) (Transition, error) {
	created, err := e.GenerateFinals(matches)
	if err != nil {
		return Transition{}, err
	}
	return newTransition(PhaseFinals, created), nil
}

func newTransition(phase Phase, created []models.Match) Transition {
	outcome := OutcomeGenerated
	if len(created) == 0 {
		outcome = OutcomeAlreadyDone
	}
	return Transition{Phase: phase, Outcome: outcome, Created: created}
}
