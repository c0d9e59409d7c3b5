package models

// NoGroupName collects teams without a group label.
const NoGroupName = "Sem Grupo"

// Group is derived from the teams' group labels and never stored.
type Group struct {
	Name  string `json:"name"`
	Teams []Team `json:"teams"`
}

// TeamNames returns member display names in registration order.
func (g Group) TeamNames() []string {
	names := make([]string, len(g.Teams))
	for i, t := range g.Teams {
		names[i] = t.Name()
	}
	return names
}

func (g Group) Stage() Stage {
	return GroupStage(g.Name)
}
