package services

import (
	"context"
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestVoteService(t *testing.T) {
	ctx := context.Background()

	Convey("Given a scheduled group match", t, func() {
		svc := newTestServices(nil)
		svc.seedTwoGroups(ctx)
		m, err := svc.matches.Create(ctx, CreateMatchInput{Round: "Grupo  A", Side1: "Ana/Bia", Side2: "Carla/Duda"})
		So(err, ShouldBeNil)

		Convey("A player votes for another player of the match", func() {
			key, vote, err := svc.votes.Cast(ctx, CastVoteInput{MatchID: m.ID, Voter: "Ana", Votee: "Duda"})
			So(err, ShouldBeNil)
			So(key, ShouldEqual, "grupo-a")
			So(vote.Votee, ShouldEqual, "Duda")

			votes, err := svc.votes.List(ctx)
			So(err, ShouldBeNil)
			So(votes["grupo-a"], ShouldHaveLength, 1)
			So(votes.Total(), ShouldEqual, 1)
		})

		Convey("Self votes and outsiders are refused", func() {
			_, _, err := svc.votes.Cast(ctx, CastVoteInput{MatchID: m.ID, Voter: "Ana", Votee: "Ana"})
			So(errors.Is(err, ErrVoteNotAllowed), ShouldBeTrue)

			_, _, err = svc.votes.Cast(ctx, CastVoteInput{MatchID: m.ID, Voter: "Eva", Votee: "Ana"})
			So(errors.Is(err, ErrVoteNotAllowed), ShouldBeTrue)

			_, _, err = svc.votes.Cast(ctx, CastVoteInput{MatchID: "missing", Voter: "Ana", Votee: "Bia"})
			So(errors.Is(err, ErrMatchNotFound), ShouldBeTrue)
		})

		Convey("Each voter votes once per round", func() {
			_, _, err := svc.votes.Cast(ctx, CastVoteInput{MatchID: m.ID, Voter: "Ana", Votee: "Duda"})
			So(err, ShouldBeNil)
			_, _, err = svc.votes.Cast(ctx, CastVoteInput{MatchID: m.ID, Voter: "Ana", Votee: "Carla"})
			So(errors.Is(err, ErrAlreadyVoted), ShouldBeTrue)
		})
	})
}
