package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/Dosada05/volei-torneio/brackets"
	"github.com/Dosada05/volei-torneio/metrics"
	"github.com/Dosada05/volei-torneio/models"
)

// CreateMatchInput describes a manually scheduled match. The score is
// optional, a missing or 0-0 score leaves the match unplayed.
type CreateMatchInput struct {
	Round string        `json:"rodada"`
	Side1 string        `json:"dupla1"`
	Side2 string        `json:"dupla2"`
	Score *models.Score `json:"placar,omitempty"`
}

type MatchService interface {
	List(ctx context.Context) ([]models.Match, error)
	Create(ctx context.Context, input CreateMatchInput) (models.Match, error)
	RecordScore(ctx context.Context, id string, side1, side2 int) (models.Match, error)
	ResetScore(ctx context.Context, id string) (models.Match, error)
}

type matchService struct {
	tournament *TournamentService
}

func NewMatchService(tournament *TournamentService) MatchService {
	return &matchService{tournament: tournament}
}

func (s *matchService) List(ctx context.Context) ([]models.Match, error) {
	doc, err := s.tournament.Document(ctx)
	if err != nil {
		return nil, err
	}
	return doc.Matches, nil
}

func (s *matchService) Create(ctx context.Context, input CreateMatchInput) (models.Match, error) {
	round := strings.TrimSpace(input.Round)
	if round == "" {
		return models.Match{}, ErrRoundRequired
	}
	// Стадии плей-офф создаёт только движок
	if models.ParseStage(round).IsKnockout() {
		return models.Match{}, fmt.Errorf("%w: %s", ErrReservedLabel, round)
	}
	side1 := strings.TrimSpace(input.Side1)
	side2 := strings.TrimSpace(input.Side2)
	if side1 == side2 {
		return models.Match{}, ErrMatchSameTeam
	}

	match := models.Match{ID: brackets.NewID(), Round: round, Side1: side1, Side2: side2}
	if input.Score != nil && !input.Score.IsZero() {
		if err := brackets.ValidateScore(input.Score.Side1, input.Score.Side2); err != nil {
			s.tournament.metrics.ScoreEntry(metrics.ScoreInvalid)
			return models.Match{}, err
		}
		match.Score = *input.Score
	}

	_, err := s.tournament.update(ctx, "create match", func(doc *models.Database) ([]models.Match, error) {
		for _, side := range []string{side1, side2} {
			if _, ok := doc.TeamByName(side); !ok {
				return nil, fmt.Errorf("%w: %s", ErrTeamNotFound, side)
			}
		}
		if brackets.HasPairing(doc.Matches, match.Stage(), side1, side2) {
			return nil, fmt.Errorf("%w: %s x %s (%s)", ErrMatchConflict, side1, side2, round)
		}
		doc.Matches = append(doc.Matches, match)
		return []models.Match{match}, nil
	})
	if err != nil {
		return models.Match{}, err
	}
	return match, nil
}

// RecordScore stores a validated score. An invalid score leaves the previous
// one in place.
func (s *matchService) RecordScore(ctx context.Context, id string, side1, side2 int) (models.Match, error) {
	if err := brackets.ValidateScore(side1, side2); err != nil {
		s.tournament.metrics.ScoreEntry(metrics.ScoreInvalid)
		return models.Match{}, err
	}

	var updated models.Match
	_, err := s.tournament.update(ctx, "record score", func(doc *models.Database) ([]models.Match, error) {
		matches, err := brackets.RecordScore(doc.Matches, id, side1, side2)
		if err != nil {
			return nil, err
		}
		doc.Matches = matches
		updated, _ = findMatch(matches, id)
		return []models.Match{updated}, nil
	})
	if err != nil {
		return models.Match{}, err
	}
	s.tournament.metrics.ScoreEntry(metrics.ScoreValid)
	return updated, nil
}

func (s *matchService) ResetScore(ctx context.Context, id string) (models.Match, error) {
	var updated models.Match
	_, err := s.tournament.update(ctx, "reset score", func(doc *models.Database) ([]models.Match, error) {
		matches, err := brackets.ResetScore(doc.Matches, id)
		if err != nil {
			return nil, err
		}
		doc.Matches = matches
		updated, _ = findMatch(matches, id)
		return []models.Match{updated}, nil
	})
	if err != nil {
		return models.Match{}, err
	}
	s.tournament.metrics.ScoreEntry(metrics.ScoreReset)
	return updated, nil
}

func findMatch(matches []models.Match, id string) (models.Match, bool) {
	for _, m := range matches {
		if m.ID == id {
			return m, true
		}
	}
	return models.Match{}, false
}
