package brackets

import (
	"log/slog"
	"math"
	"sort"

	"github.com/Dosada05/volei-torneio/models"
)

// CalculateStandings ranks the members of group from the matches played under
// its round label.
//
// Raw points are accumulated for every such match, even when the score is not
// a valid result yet; a win is only counted for a valid score. Ranking keys are
// wins, point difference and point average, all descending. Remaining ties keep
// the group registration order.
func (e *Engine) CalculateStandings(group models.Group, matches []models.Match) []models.Standing {
	stage := group.Stage()
	index := make(map[string]*models.Standing, len(group.Teams))
	rows := make([]*models.Standing, 0, len(group.Teams))

	for _, name := range group.TeamNames() {
		if _, dup := index[name]; dup {
			continue
		}
		s := &models.Standing{Team: name}
		index[name] = s
		rows = append(rows, s)
	}

	for _, m := range matches {
		if m.Stage() != stage {
			continue
		}
		s1, ok1 := index[m.Side1]
		s2, ok2 := index[m.Side2]
		if !ok1 || !ok2 {
			e.logger.Warn("match references a team outside its group, skipping",
				slog.String("match_id", m.ID),
				slog.String("group", group.Name),
				slog.String("side1", m.Side1),
				slog.String("side2", m.Side2),
			)
			continue
		}

		s1.PointsFor += m.Score.Side1
		s1.PointsAgainst += m.Score.Side2
		s2.PointsFor += m.Score.Side2
		s2.PointsAgainst += m.Score.Side1

		if winner, _, ok := Winner(m); ok {
			index[winner].Wins++
		}
	}

	standings := make([]models.Standing, len(rows))
	for i, s := range rows {
		s.PointDifference = s.PointsFor - s.PointsAgainst
		s.PointAverage = pointAverage(s.PointsFor, s.PointsAgainst)
		standings[i] = *s
	}

	sort.SliceStable(standings, func(i, j int) bool {
		return ranksAbove(standings[i], standings[j])
	})
	return standings
}

// AllStandings computes standings for each group, in group order.
func (e *Engine) AllStandings(groups []models.Group, matches []models.Match) []models.GroupStandings {
	out := make([]models.GroupStandings, 0, len(groups))
	for _, g := range groups {
		out = append(out, models.GroupStandings{
			Group:     g.Name,
			Standings: e.CalculateStandings(g, matches),
		})
	}
	return out
}

func pointAverage(pointsFor, pointsAgainst int) models.Ratio {
	if pointsAgainst == 0 {
		return models.Ratio(math.Inf(1))
	}
	return models.Ratio(float64(pointsFor) / float64(pointsAgainst))
}

func ranksAbove(a, b models.Standing) bool {
	if a.Wins != b.Wins {
		return a.Wins > b.Wins
	}
	if a.PointDifference != b.PointDifference {
		return a.PointDifference > b.PointDifference
	}
	// +Inf > +Inf is false, so two unbeaten averages stay tied.
	return a.PointAverage > b.PointAverage
}
