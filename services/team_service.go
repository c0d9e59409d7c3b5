package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/Dosada05/volei-torneio/brackets"
	"github.com/Dosada05/volei-torneio/models"
)

type CreateTeamInput struct {
	Athlete1 string `json:"atleta1"`
	Athlete2 string `json:"atleta2"`
	Group    string `json:"grupo"`
}

type TeamService interface {
	List(ctx context.Context) ([]models.Team, error)
	Create(ctx context.Context, input CreateTeamInput) (models.Team, error)
	SetGroup(ctx context.Context, id, group string) (models.Team, error)
	Delete(ctx context.Context, id string) error
}

type teamService struct {
	tournament *TournamentService
}

func NewTeamService(tournament *TournamentService) TeamService {
	return &teamService{tournament: tournament}
}

func (s *teamService) List(ctx context.Context) ([]models.Team, error) {
	doc, err := s.tournament.Document(ctx)
	if err != nil {
		return nil, err
	}
	return doc.Teams, nil
}

func (s *teamService) Create(ctx context.Context, input CreateTeamInput) (models.Team, error) {
	a1 := strings.TrimSpace(input.Athlete1)
	a2 := strings.TrimSpace(input.Athlete2)
	if a1 == "" || a2 == "" {
		return models.Team{}, ErrTeamAthletesRequired
	}
	if a1 == a2 {
		return models.Team{}, ErrTeamSameAthlete
	}
	group, err := normalizeGroup(input.Group)
	if err != nil {
		return models.Team{}, err
	}

	team := models.Team{ID: brackets.NewID(), Athlete1: a1, Athlete2: a2, Group: group}
	_, err = s.tournament.update(ctx, "create team", func(doc *models.Database) ([]models.Match, error) {
		for _, name := range team.Athletes() {
			if !hasAthlete(doc, name) {
				return nil, fmt.Errorf("%w: %s", ErrAthleteNotFound, name)
			}
		}
		for _, t := range doc.Teams {
			if t.HasAthlete(a1) && t.HasAthlete(a2) {
				return nil, fmt.Errorf("%w: %s", ErrTeamConflict, t.Name())
			}
		}
		doc.Teams = append(doc.Teams, team)
		return nil, nil
	})
	if err != nil {
		return models.Team{}, err
	}
	return team, nil
}

// SetGroup moves a team to another group. Teams that already have fixtures
// stay where they are, their matches carry the old group label.
func (s *teamService) SetGroup(ctx context.Context, id, group string) (models.Team, error) {
	group, err := normalizeGroup(group)
	if err != nil {
		return models.Team{}, err
	}

	var updated models.Team
	_, err = s.tournament.update(ctx, "set team group", func(doc *models.Database) ([]models.Match, error) {
		idx := teamIndex(doc, id)
		if idx < 0 {
			return nil, ErrTeamNotFound
		}
		if hasMatches(doc, doc.Teams[idx].Name()) {
			return nil, fmt.Errorf("%w: %s", ErrTeamHasMatches, doc.Teams[idx].Name())
		}
		doc.Teams[idx].Group = group
		updated = doc.Teams[idx]
		return nil, nil
	})
	if err != nil {
		return models.Team{}, err
	}
	return updated, nil
}

func (s *teamService) Delete(ctx context.Context, id string) error {
	_, err := s.tournament.update(ctx, "delete team", func(doc *models.Database) ([]models.Match, error) {
		idx := teamIndex(doc, id)
		if idx < 0 {
			return nil, ErrTeamNotFound
		}
		if hasMatches(doc, doc.Teams[idx].Name()) {
			return nil, fmt.Errorf("%w: %s", ErrTeamHasMatches, doc.Teams[idx].Name())
		}
		doc.Teams = append(doc.Teams[:idx], doc.Teams[idx+1:]...)
		return nil, nil
	})
	return err
}

// normalizeGroup trims the label and rejects knockout stage names, a group
// called "Final" would be read back as the final.
func normalizeGroup(group string) (string, error) {
	group = strings.TrimSpace(group)
	if models.ParseStage(group).IsKnockout() {
		return "", fmt.Errorf("%w: %s", ErrReservedLabel, group)
	}
	return group, nil
}

func hasAthlete(doc *models.Database, name string) bool {
	for _, a := range doc.Athletes {
		if a.Name == name {
			return true
		}
	}
	return false
}

func teamIndex(doc *models.Database, id string) int {
	for i, t := range doc.Teams {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func hasMatches(doc *models.Database, teamName string) bool {
	for _, m := range doc.Matches {
		if m.Involves(teamName) {
			return true
		}
	}
	return false
}
