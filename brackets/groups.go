package brackets

import (
	"strings"

	"github.com/Dosada05/volei-torneio/models"
)

// GroupTeams partitions teams by group label in first-seen label order.
// Teams without a label end up in models.NoGroupName.
func GroupTeams(teams []models.Team) []models.Group {
	groups := make([]models.Group, 0)
	index := make(map[string]int)

	for _, t := range teams {
		name := strings.TrimSpace(t.Group)
		if name == "" {
			name = models.NoGroupName
		}
		i, ok := index[name]
		if !ok {
			i = len(groups)
			index[name] = i
			groups = append(groups, models.Group{Name: name})
		}
		groups[i].Teams = append(groups[i].Teams, t)
	}
	return groups
}
