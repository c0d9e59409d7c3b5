package models

// Score — placar. 0-0 означает, что матч ещё не сыгран.
type Score struct {
	Side1 int `json:"dupla1"`
	Side2 int `json:"dupla2"`
}

// IsZero reports the unplayed 0-0 score.
func (s Score) IsZero() bool {
	return s.Side1 == 0 && s.Side2 == 0
}

type Match struct {
	ID    string `json:"id"`
	Round string `json:"rodada"`
	Side1 string `json:"dupla1"`
	Side2 string `json:"dupla2"`
	Score Score  `json:"placar"`
}

// Stage parses the round label into its tagged form.
func (m Match) Stage() Stage {
	return ParseStage(m.Round)
}

// Involves reports whether the team name plays on either side.
func (m Match) Involves(teamName string) bool {
	return m.Side1 == teamName || m.Side2 == teamName
}

// Pairs reports whether the match is between a and b in either side order.
func (m Match) Pairs(a, b string) bool {
	return (m.Side1 == a && m.Side2 == b) || (m.Side1 == b && m.Side2 == a)
}
