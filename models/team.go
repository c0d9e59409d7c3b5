package models

import "strings"

// Team — пара атлетов ("dupla"). Создаётся через CRUD и движком не меняется.
type Team struct {
	ID       string `json:"id"`
	Athlete1 string `json:"atleta1"`
	Athlete2 string `json:"atleta2"`
	Group    string `json:"grupo,omitempty"`
}

// Name is the display name used as the match side reference.
func (t Team) Name() string {
	return t.Athlete1 + "/" + t.Athlete2
}

// Athletes returns both athlete names of the pair.
func (t Team) Athletes() []string {
	return []string{t.Athlete1, t.Athlete2}
}

// HasAthlete reports whether name plays in this pair.
func (t Team) HasAthlete(name string) bool {
	return t.Athlete1 == name || t.Athlete2 == name
}

// SplitTeamName splits a display name back into athlete names.
// Older documents stored "a / b", so surrounding spaces are trimmed.
func SplitTeamName(name string) []string {
	parts := strings.Split(name, "/")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
