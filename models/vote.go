package models

import (
	"regexp"
	"strings"
)

type Vote struct {
	Voter string `json:"votante"`
	Votee string `json:"voto"`
}

// RoundVotes is keyed by the slugified round label of the voted match.
type RoundVotes map[string][]Vote

var whitespaceRun = regexp.MustCompile(`\s+`)

// RoundKey turns a round label into its votes key: "Grupo A" -> "grupo-a".
func RoundKey(round string) string {
	return whitespaceRun.ReplaceAllString(strings.ToLower(round), "-")
}

// Total counts votes over every round.
func (v RoundVotes) Total() int {
	n := 0
	for _, votes := range v {
		n += len(votes)
	}
	return n
}
