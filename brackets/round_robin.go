package brackets

import (
	"log/slog"

	"github.com/Dosada05/volei-torneio/models"
)

// GenerateGroupMatches returns the missing round-robin fixtures of every group.
// A pairing already present in existing, in either side order and with the
// group's round label, is skipped, so calling it again only fills gaps.
func (e *Engine) GenerateGroupMatches(groups []models.Group, existing []models.Match) []models.Match {
	created := make([]models.Match, 0)

	for _, g := range groups {
		stage := g.Stage()
		names := g.TeamNames()

		for i := 0; i < len(names); i++ {
			for j := i + 1; j < len(names); j++ {
				a, b := names[i], names[j]
				if a == b {
					continue
				}
				if HasPairing(existing, stage, a, b) || HasPairing(created, stage, a, b) {
					continue
				}
				created = append(created, e.newMatch(stage, a, b))
			}
		}

		e.logger.Debug("group fixtures checked",
			slog.String("group", g.Name),
			slog.Int("teams", len(names)),
		)
	}

	return created
}

// HasPairing reports whether a and b already meet under stage, in either side
// order.
func HasPairing(matches []models.Match, stage models.Stage, a, b string) bool {
	for _, m := range matches {
		if m.Stage() == stage && m.Pairs(a, b) {
			return true
		}
	}
	return false
}

// groupPhaseComplete reports whether every pairing of every group has a match
// with a valid score and no group-stage match, whatever its label, is unplayed.
func groupPhaseComplete(groups []models.Group, matches []models.Match) bool {
	for _, m := range matches {
		if m.Stage().Kind == models.StageGroup && !IsComplete(m) {
			return false
		}
	}
	for _, g := range groups {
		stage := g.Stage()
		names := g.TeamNames()

		for i := 0; i < len(names); i++ {
			for j := i + 1; j < len(names); j++ {
				if names[i] != names[j] && !HasPairing(matches, stage, names[i], names[j]) {
					return false
				}
			}
		}
	}
	return true
}
