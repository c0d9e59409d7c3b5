package services

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/Dosada05/volei-torneio/models"
)

type CastVoteInput struct {
	MatchID string `json:"match_id"`
	Voter   string `json:"votante"`
	Votee   string `json:"voto"`
}

type VoteService interface {
	List(ctx context.Context) (models.RoundVotes, error)
	Cast(ctx context.Context, input CastVoteInput) (string, models.Vote, error)
}

type voteService struct {
	tournament *TournamentService
}

func NewVoteService(tournament *TournamentService) VoteService {
	return &voteService{tournament: tournament}
}

func (s *voteService) List(ctx context.Context) (models.RoundVotes, error) {
	doc, err := s.tournament.Document(ctx)
	if err != nil {
		return nil, err
	}
	return doc.Votes, nil
}

// Cast records a best-athlete vote for a match. Both athletes must have played
// in it and every voter gets one vote per round.
func (s *voteService) Cast(ctx context.Context, input CastVoteInput) (string, models.Vote, error) {
	vote := models.Vote{
		Voter: strings.TrimSpace(input.Voter),
		Votee: strings.TrimSpace(input.Votee),
	}
	if vote.Voter == "" || vote.Votee == "" || vote.Voter == vote.Votee {
		return "", models.Vote{}, ErrVoteNotAllowed
	}

	var roundKey string
	_, err := s.tournament.update(ctx, "cast vote", func(doc *models.Database) ([]models.Match, error) {
		match, ok := findMatch(doc.Matches, input.MatchID)
		if !ok {
			return nil, ErrMatchNotFound
		}
		players := matchAthletes(doc, match)
		if !slices.Contains(players, vote.Voter) || !slices.Contains(players, vote.Votee) {
			return nil, fmt.Errorf("%w: %s -> %s", ErrVoteNotAllowed, vote.Voter, vote.Votee)
		}

		roundKey = models.RoundKey(match.Round)
		for _, v := range doc.Votes[roundKey] {
			if v.Voter == vote.Voter {
				return nil, fmt.Errorf("%w: %s in %s", ErrAlreadyVoted, vote.Voter, roundKey)
			}
		}
		doc.Votes[roundKey] = append(doc.Votes[roundKey], vote)
		return nil, nil
	})
	if err != nil {
		return "", models.Vote{}, err
	}
	return roundKey, vote, nil
}

// matchAthletes lists registered athletes named in the match sides.
func matchAthletes(doc *models.Database, match models.Match) []string {
	var players []string
	for _, side := range []string{match.Side1, match.Side2} {
		for _, name := range models.SplitTeamName(side) {
			if hasAthlete(doc, name) {
				players = append(players, name)
			}
		}
	}
	return players
}
