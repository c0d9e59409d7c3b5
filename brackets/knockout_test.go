package brackets_test

import (
	"errors"
	"testing"

	"github.com/Dosada05/volei-torneio/brackets"
	"github.com/Dosada05/volei-torneio/models"
	. "github.com/smartystreets/goconvey/convey"
)

func twoGroupTeams() []models.Team {
	return []models.Team{
		team("1", "A1", "a", "A"),
		team("2", "A2", "a", "A"),
		team("3", "A3", "a", "A"),
		team("4", "B1", "b", "B"),
		team("5", "B2", "b", "B"),
		team("6", "B3", "b", "B"),
	}
}

// playAll scores every unplayed match as a 21-10 win for side 1. Fixtures list
// earlier registered teams first, so registration order becomes the ranking.
func playAll(matches []models.Match) []models.Match {
	out := make([]models.Match, len(matches))
	copy(out, matches)
	for i := range out {
		if out[i].Score.IsZero() {
			out[i].Score = models.Score{Side1: 21, Side2: 10}
		}
	}
	return out
}

func completedGroupPhase(engine *brackets.Engine, teams []models.Team) []models.Match {
	return playAll(engine.GenerateGroupMatches(brackets.GroupTeams(teams), nil))
}

func TestGenerateSemifinals(t *testing.T) {
	Convey("Given two groups of three teams", t, func() {
		engine := newTestEngine()
		teams := twoGroupTeams()
		groups := brackets.GroupTeams(teams)

		Convey("When the round-robins are complete", func() {
			matches := completedGroupPhase(engine, teams)
			semis, err := engine.GenerateSemifinals(groups, matches)

			Convey("Then first of each group meets second of the other", func() {
				So(err, ShouldBeNil)
				So(len(semis), ShouldEqual, 2)
				So(semis[0].Round, ShouldEqual, models.SemifinalLabel)
				So(semis[0].Side1, ShouldEqual, "A1/a")
				So(semis[0].Side2, ShouldEqual, "B2/b")
				So(semis[1].Side1, ShouldEqual, "B1/b")
				So(semis[1].Side2, ShouldEqual, "A2/a")
				So(semis[0].Score.IsZero(), ShouldBeTrue)
			})

			Convey("And a second call creates nothing", func() {
				again, err := engine.GenerateSemifinals(groups, append(matches, semis...))
				So(err, ShouldBeNil)
				So(again, ShouldBeEmpty)
			})
		})

		Convey("When a group match is still 0-0", func() {
			matches := completedGroupPhase(engine, teams)
			matches[2].Score = models.Score{}
			semis, err := engine.GenerateSemifinals(groups, matches)

			Convey("Then it refuses as incomplete", func() {
				So(semis, ShouldBeNil)
				So(errors.Is(err, brackets.ErrPhaseIncomplete), ShouldBeTrue)
			})
		})

		Convey("When a group match has an invalid score", func() {
			matches := completedGroupPhase(engine, teams)
			matches[0].Score = models.Score{Side1: 25, Side2: 24}
			_, err := engine.GenerateSemifinals(groups, matches)
			So(errors.Is(err, brackets.ErrPhaseIncomplete), ShouldBeTrue)
		})

		Convey("When an unplayed match sits under a round with no group", func() {
			matches := completedGroupPhase(engine, teams)
			matches = append(matches, models.Match{ID: "extra", Round: "Rodada 1", Side1: "A1/a", Side2: "B1/b"})
			semis, err := engine.GenerateSemifinals(groups, matches)

			Convey("Then it still refuses as incomplete", func() {
				So(semis, ShouldBeNil)
				So(errors.Is(err, brackets.ErrPhaseIncomplete), ShouldBeTrue)
			})

			Convey("And once that match is played the semifinals follow", func() {
				matches[len(matches)-1].Score = models.Score{Side1: 21, Side2: 15}
				semis, err := engine.GenerateSemifinals(groups, matches)
				So(err, ShouldBeNil)
				So(semis, ShouldHaveLength, 2)
			})
		})

		Convey("When fixtures were never generated for a pairing", func() {
			matches := completedGroupPhase(engine, teams)
			_, err := engine.GenerateSemifinals(groups, matches[1:])
			So(errors.Is(err, brackets.ErrPhaseIncomplete), ShouldBeTrue)
		})
	})

	Convey("Given a single group", t, func() {
		engine := newTestEngine()
		teams := []models.Team{
			team("1", "A1", "a", "A"),
			team("2", "A2", "a", "A"),
		}
		matches := completedGroupPhase(engine, teams)

		_, err := engine.GenerateSemifinals(brackets.GroupTeams(teams), matches)
		So(errors.Is(err, brackets.ErrNotEnoughGroups), ShouldBeTrue)
	})

	Convey("Given a second group with only one team", t, func() {
		engine := newTestEngine()
		teams := []models.Team{
			team("1", "A1", "a", "A"),
			team("2", "A2", "a", "A"),
			team("3", "B1", "b", "B"),
		}
		matches := completedGroupPhase(engine, teams)

		_, err := engine.GenerateSemifinals(brackets.GroupTeams(teams), matches)
		So(errors.Is(err, brackets.ErrNotEnoughGroups), ShouldBeTrue)
	})

	Convey("Given four groups", t, func() {
		engine := newTestEngine()
		teams := append(twoGroupTeams(),
			team("7", "C1", "c", "C"),
			team("8", "C2", "c", "C"),
			team("9", "D1", "d", "D"),
			team("10", "D2", "d", "D"),
		)
		matches := completedGroupPhase(engine, teams)

		semis, err := engine.GenerateSemifinals(brackets.GroupTeams(teams), matches)

		Convey("Then groups are crossed pairwise", func() {
			So(err, ShouldBeNil)
			So(len(semis), ShouldEqual, 4)
			So(semis[2].Side1, ShouldEqual, "C1/c")
			So(semis[2].Side2, ShouldEqual, "D2/d")
			So(semis[3].Side1, ShouldEqual, "D1/d")
			So(semis[3].Side2, ShouldEqual, "C2/c")
		})
	})
}

func TestGenerateFinals(t *testing.T) {
	Convey("Given two semifinals", t, func() {
		engine := newTestEngine()
		semis := []models.Match{
			played("s1", models.SemifinalLabel, "A1/a", "B2/b", 18, 21),
			played("s2", models.SemifinalLabel, "B1/b", "A2/a", 22, 20),
		}

		Convey("When both are complete", func() {
			finals, err := engine.GenerateFinals(semis)

			Convey("Then winners play the final and losers the third place match", func() {
				So(err, ShouldBeNil)
				So(len(finals), ShouldEqual, 2)
				So(finals[0].Round, ShouldEqual, models.FinalLabel)
				So(finals[0].Side1, ShouldEqual, "B2/b")
				So(finals[0].Side2, ShouldEqual, "B1/b")
				So(finals[1].Round, ShouldEqual, models.ThirdPlaceLabel)
				So(finals[1].Side1, ShouldEqual, "A1/a")
				So(finals[1].Side2, ShouldEqual, "A2/a")
			})

			Convey("And generating again creates nothing", func() {
				again, err := engine.GenerateFinals(append(semis, finals...))
				So(err, ShouldBeNil)
				So(again, ShouldBeEmpty)
			})

			Convey("And a missing third place match is filled in alone", func() {
				again, err := engine.GenerateFinals(append(semis, finals[0]))
				So(err, ShouldBeNil)
				So(len(again), ShouldEqual, 1)
				So(again[0].Round, ShouldEqual, models.ThirdPlaceLabel)
			})
		})

		Convey("When one semifinal is unplayed", func() {
			semis[1].Score = models.Score{}
			finals, err := engine.GenerateFinals(semis)
			So(finals, ShouldBeNil)
			So(errors.Is(err, brackets.ErrPhaseIncomplete), ShouldBeTrue)
		})
	})

	Convey("Given no semifinals", t, func() {
		_, err := newTestEngine().GenerateFinals(nil)
		So(errors.Is(err, brackets.ErrPhaseIncomplete), ShouldBeTrue)
	})

	Convey("Given four completed semifinals", t, func() {
		semis := []models.Match{
			played("s1", models.SemifinalLabel, "A", "B", 21, 1),
			played("s2", models.SemifinalLabel, "C", "D", 21, 1),
			played("s3", models.SemifinalLabel, "E", "F", 21, 1),
			played("s4", models.SemifinalLabel, "G", "H", 21, 1),
		}
		_, err := newTestEngine().GenerateFinals(semis)
		So(errors.Is(err, brackets.ErrBracketShape), ShouldBeTrue)
	})
}
