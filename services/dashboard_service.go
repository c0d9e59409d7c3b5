package services

import (
	"context"

	"github.com/Dosada05/volei-torneio/brackets"
	"github.com/Dosada05/volei-torneio/models"
	"golang.org/x/sync/errgroup"
)

type DashboardService interface {
	GetStats(ctx context.Context) (models.DashboardStats, error)
}

type dashboardService struct {
	tournament *TournamentService
}

func NewDashboardService(tournament *TournamentService) DashboardService {
	return &dashboardService{tournament: tournament}
}

func (s *dashboardService) GetStats(ctx context.Context) (models.DashboardStats, error) {
	doc, err := s.tournament.Document(ctx)
	if err != nil {
		return models.DashboardStats{}, err
	}

	groups := brackets.GroupTeams(doc.Teams)
	standings := make([]models.GroupStandings, len(groups))
	var records []models.TeamRecord

	// Каждая группа считается независимо, результаты пишутся по индексу.
	g, gCtx := errgroup.WithContext(ctx)
	for i, group := range groups {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			standings[i] = models.GroupStandings{
				Group:     group.Name,
				Standings: s.tournament.engine.CalculateStandings(group, doc.Matches),
			}
			return nil
		})
	}
	g.Go(func() error {
		records = teamRecords(doc.Teams, doc.Matches)
		return nil
	})
	if err := g.Wait(); err != nil {
		return models.DashboardStats{}, err
	}

	completed := 0
	for _, m := range doc.Matches {
		if brackets.IsComplete(m) {
			completed++
		}
	}

	return models.DashboardStats{
		AthletesTotal:    len(doc.Athletes),
		TeamsTotal:       len(doc.Teams),
		MatchesTotal:     len(doc.Matches),
		MatchesCompleted: completed,
		VotesTotal:       doc.Votes.Total(),
		Phase:            string(brackets.CurrentPhase(doc.Matches)),
		Teams:            records,
		Standings:        standings,
	}, nil
}

// teamRecords counts played and won matches over valid scores only. Registered
// teams come first, unknown side names follow in order of appearance.
func teamRecords(teams []models.Team, matches []models.Match) []models.TeamRecord {
	index := make(map[string]int)
	records := make([]models.TeamRecord, 0, len(teams))
	add := func(name string) int {
		if i, ok := index[name]; ok {
			return i
		}
		index[name] = len(records)
		records = append(records, models.TeamRecord{Team: name})
		return index[name]
	}
	for _, t := range teams {
		add(t.Name())
	}

	for _, m := range matches {
		winner, loser, ok := brackets.Winner(m)
		if !ok {
			continue
		}
		records[add(winner)].Played++
		records[add(winner)].Wins++
		records[add(loser)].Played++
	}

	for i := range records {
		if records[i].Played > 0 {
			records[i].WinRate = float64(records[i].Wins) / float64(records[i].Played) * 100
		}
	}
	return records
}
