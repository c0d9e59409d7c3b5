package models

type TeamRecord struct {
	Team    string  `json:"team"`
	Played  int     `json:"played"`
	Wins    int     `json:"wins"`
	WinRate float64 `json:"win_rate"` // в процентах
}

type DashboardStats struct {
	AthletesTotal    int              `json:"athletes_total"`
	TeamsTotal       int              `json:"teams_total"`
	MatchesTotal     int              `json:"matches_total"`
	MatchesCompleted int              `json:"matches_completed"`
	VotesTotal       int              `json:"votes_total"`
	Phase            string           `json:"phase"`
	Teams            []TeamRecord     `json:"teams"`
	Standings        []GroupStandings `json:"standings"`
}
