package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/Dosada05/volei-torneio/brackets"
	"github.com/Dosada05/volei-torneio/models"
)

type AthleteService interface {
	List(ctx context.Context) ([]models.Athlete, error)
	Create(ctx context.Context, name string) (models.Athlete, error)
	Delete(ctx context.Context, id string) error
}

type athleteService struct {
	tournament *TournamentService
}

func NewAthleteService(tournament *TournamentService) AthleteService {
	return &athleteService{tournament: tournament}
}

func (s *athleteService) List(ctx context.Context) ([]models.Athlete, error) {
	doc, err := s.tournament.Document(ctx)
	if err != nil {
		return nil, err
	}
	return doc.Athletes, nil
}

func (s *athleteService) Create(ctx context.Context, name string) (models.Athlete, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Athlete{}, ErrAthleteNameRequired
	}
	// "/" разделяет атлетов в имени пары
	if strings.Contains(name, "/") {
		return models.Athlete{}, ErrAthleteNameInvalid
	}

	athlete := models.Athlete{ID: brackets.NewID(), Name: name}
	_, err := s.tournament.update(ctx, "create athlete", func(doc *models.Database) ([]models.Match, error) {
		for _, a := range doc.Athletes {
			if strings.EqualFold(a.Name, name) {
				return nil, fmt.Errorf("%w: %s", ErrAthleteNameConflict, name)
			}
		}
		doc.Athletes = append(doc.Athletes, athlete)
		return nil, nil
	})
	if err != nil {
		return models.Athlete{}, err
	}
	return athlete, nil
}

func (s *athleteService) Delete(ctx context.Context, id string) error {
	_, err := s.tournament.update(ctx, "delete athlete", func(doc *models.Database) ([]models.Match, error) {
		idx := -1
		for i, a := range doc.Athletes {
			if a.ID == id {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, ErrAthleteNotFound
		}
		name := doc.Athletes[idx].Name
		for _, t := range doc.Teams {
			if t.HasAthlete(name) {
				return nil, fmt.Errorf("%w: %s plays in %s", ErrAthleteInTeam, name, t.Name())
			}
		}
		doc.Athletes = append(doc.Athletes[:idx], doc.Athletes[idx+1:]...)
		return nil, nil
	})
	return err
}
