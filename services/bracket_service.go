package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/Dosada05/volei-torneio/brackets"
	"github.com/Dosada05/volei-torneio/models"
)

// outcomeRefused is the metrics label of a step stopped by a precondition.
const outcomeRefused = "refused"

type BracketService interface {
	Groups(ctx context.Context) ([]models.Group, error)
	Standings(ctx context.Context) ([]models.GroupStandings, error)
	Phase(ctx context.Context) (brackets.Phase, error)
	GenerateGroups(ctx context.Context) (brackets.Transition, error)
	AdvanceToSemifinals(ctx context.Context) (brackets.Transition, error)
	AdvanceToFinals(ctx context.Context) (brackets.Transition, error)
}

type bracketService struct {
	tournament *TournamentService
}

func NewBracketService(tournament *TournamentService) BracketService {
	return &bracketService{tournament: tournament}
}

func (s *bracketService) Groups(ctx context.Context) ([]models.Group, error) {
	doc, err := s.tournament.Document(ctx)
	if err != nil {
		return nil, err
	}
	return brackets.GroupTeams(doc.Teams), nil
}

func (s *bracketService) Standings(ctx context.Context) ([]models.GroupStandings, error) {
	doc, err := s.tournament.Document(ctx)
	if err != nil {
		return nil, err
	}
	return s.tournament.engine.AllStandings(brackets.GroupTeams(doc.Teams), doc.Matches), nil
}

func (s *bracketService) Phase(ctx context.Context) (brackets.Phase, error) {
	doc, err := s.tournament.Document(ctx)
	if err != nil {
		return "", err
	}
	return brackets.CurrentPhase(doc.Matches), nil
}

func (s *bracketService) GenerateGroups(ctx context.Context) (brackets.Transition, error) {
	return s.advance(ctx, brackets.PhaseGroups, func(doc *models.Database) (brackets.Transition, error) {
		return s.tournament.engine.GenerateGroups(doc.Teams, doc.Matches)
	})
}

func (s *bracketService) AdvanceToSemifinals(ctx context.Context) (brackets.Transition, error) {
	return s.advance(ctx, brackets.PhaseSemifinals, func(doc *models.Database) (brackets.Transition, error) {
		return s.tournament.engine.AdvanceToSemifinals(doc.Teams, doc.Matches)
	})
}

func (s *bracketService) AdvanceToFinals(ctx context.Context) (brackets.Transition, error) {
	return s.advance(ctx, brackets.PhaseFinals, func(doc *models.Database) (brackets.Transition, error) {
		return s.tournament.engine.AdvanceToFinals(doc.Matches)
	})
}

// advance runs one progression step inside a document update. "Already done"
// does not write anything.
func (s *bracketService) advance(ctx context.Context, phase brackets.Phase, step func(doc *models.Database) (brackets.Transition, error)) (brackets.Transition, error) {
	var transition brackets.Transition
	_, err := s.tournament.update(ctx, "advance to "+string(phase), func(doc *models.Database) ([]models.Match, error) {
		t, err := step(doc)
		if err != nil {
			return nil, err
		}
		transition = t
		if t.Outcome == brackets.OutcomeAlreadyDone {
			return nil, errNoChange
		}
		doc.Matches = t.Apply(doc.Matches)
		return t.Created, nil
	})
	if err != nil {
		if isPrecondition(err) {
			s.tournament.metrics.PhaseTransition(string(phase), outcomeRefused)
			s.tournament.logger.InfoContext(ctx, "phase transition refused",
				slog.String("phase", string(phase)),
				slog.Any("error", err),
			)
		}
		return brackets.Transition{}, err
	}

	s.tournament.metrics.PhaseTransition(string(phase), string(transition.Outcome))
	for kind, n := range countByStage(transition.Created) {
		s.tournament.metrics.FixturesGenerated(kind, n)
	}
	return transition, nil
}

func isPrecondition(err error) bool {
	return errors.Is(err, brackets.ErrPhaseIncomplete) ||
		errors.Is(err, brackets.ErrNotEnoughGroups) ||
		errors.Is(err, brackets.ErrBracketShape) ||
		errors.Is(err, brackets.ErrPhaseClosed)
}

func countByStage(matches []models.Match) map[string]int {
	counts := make(map[string]int)
	for _, m := range matches {
		counts[stageKindLabel(m.Stage().Kind)]++
	}
	return counts
}

func stageKindLabel(kind models.StageKind) string {
	switch kind {
	case models.StageSemifinal:
		return "semifinal"
	case models.StageThirdPlace:
		return "third_place"
	case models.StageFinal:
		return "final"
	default:
		return "group"
	}
}
