package brackets_test

import (
	"testing"

	"github.com/Dosada05/volei-torneio/brackets"
	"github.com/Dosada05/volei-torneio/models"
	. "github.com/smartystreets/goconvey/convey"
)

func played(id, round, side1, side2 string, s1, s2 int) models.Match {
	return models.Match{
		ID:    id,
		Round: round,
		Side1: side1,
		Side2: side2,
		Score: models.Score{Side1: s1, Side2: s2},
	}
}

func TestCalculateStandings(t *testing.T) {
	Convey("Given group A with P, Q and R", t, func() {
		engine := newTestEngine()
		group := models.Group{Name: "A", Teams: []models.Team{
			team("1", "P", "p", "A"),
			team("2", "Q", "q", "A"),
			team("3", "R", "r", "A"),
		}}

		Convey("When P beats Q 21-15 and R beats Q 21-10", func() {
			matches := []models.Match{
				played("1", "A", "P/p", "Q/q", 21, 15),
				played("2", "A", "R/r", "Q/q", 21, 10),
			}
			standings := engine.CalculateStandings(group, matches)

			Convey("Then R ranks above P on point difference and Q is last", func() {
				So(len(standings), ShouldEqual, 3)
				So(standings[0].Team, ShouldEqual, "R/r")
				So(standings[1].Team, ShouldEqual, "P/p")
				So(standings[2].Team, ShouldEqual, "Q/q")
			})

			Convey("Then the aggregates are correct", func() {
				r, p, q := standings[0], standings[1], standings[2]
				So(r.Wins, ShouldEqual, 1)
				So(p.Wins, ShouldEqual, 1)
				So(r.PointDifference, ShouldEqual, 11)
				So(p.PointDifference, ShouldEqual, 6)
				So(q.PointsFor, ShouldEqual, 25)
				So(q.PointsAgainst, ShouldEqual, 42)
				So(q.PointDifference, ShouldEqual, -17)
				So(r.PointAverage.IsInf(), ShouldBeFalse)
				So(float64(r.PointAverage), ShouldAlmostEqual, 2.1)
			})
		})

		Convey("When a match has an invalid non-zero score", func() {
			matches := []models.Match{
				played("1", "A", "P/p", "Q/q", 21, 20),
			}
			standings := engine.CalculateStandings(group, matches)

			Convey("Then points are accumulated but no win is counted", func() {
				byTeam := map[string]models.Standing{}
				for _, s := range standings {
					byTeam[s.Team] = s
				}
				So(byTeam["P/p"].Wins, ShouldEqual, 0)
				So(byTeam["P/p"].PointsFor, ShouldEqual, 21)
				So(byTeam["Q/q"].PointsFor, ShouldEqual, 20)
				So(standings[0].Team, ShouldEqual, "P/p")
			})
		})

		Convey("When two teams tie on every ranking key", func() {
			matches := []models.Match{
				played("1", "A", "P/p", "Q/q", 21, 19),
				played("2", "A", "R/r", "Q/q", 21, 19),
			}
			standings := engine.CalculateStandings(group, matches)

			Convey("Then registration order decides", func() {
				// P and R both +2 with 21/19.
				So(standings[0].Team, ShouldEqual, "P/p")
				So(standings[1].Team, ShouldEqual, "R/r")
			})
		})

		Convey("When wins and difference tie but averages differ", func() {
			matches := []models.Match{
				played("1", "A", "Q/q", "P/p", 23, 21),
				played("2", "A", "R/r", "P/p", 21, 19),
			}
			standings := engine.CalculateStandings(group, matches)

			Convey("Then the higher average ranks first", func() {
				// R: 21/19 = 1.105, Q: 23/21 = 1.095
				So(standings[0].Team, ShouldEqual, "R/r")
				So(standings[1].Team, ShouldEqual, "Q/q")
			})
		})

		Convey("When a team concedes no points", func() {
			matches := []models.Match{
				played("1", "A", "P/p", "Q/q", 21, 0),
			}
			standings := engine.CalculateStandings(group, matches)

			Convey("Then its average is infinite", func() {
				So(standings[0].Team, ShouldEqual, "P/p")
				So(standings[0].PointAverage.IsInf(), ShouldBeTrue)
			})
		})

		Convey("When a match references a team outside the group", func() {
			matches := []models.Match{
				played("1", "A", "P/p", "Z/z", 21, 3),
				played("2", "B", "P/p", "Q/q", 21, 3),
			}
			standings := engine.CalculateStandings(group, matches)

			Convey("Then that match and other rounds are ignored", func() {
				for _, s := range standings {
					So(s.PointsFor, ShouldEqual, 0)
					So(s.Wins, ShouldEqual, 0)
				}
			})
		})

		Convey("When no matches were played", func() {
			standings := engine.CalculateStandings(group, nil)

			Convey("Then every member is listed in registration order", func() {
				So(len(standings), ShouldEqual, 3)
				So(standings[0].Team, ShouldEqual, "P/p")
				So(standings[2].Team, ShouldEqual, "R/r")
			})
		})
	})
}

func TestAllStandings(t *testing.T) {
	Convey("Given two groups", t, func() {
		engine := newTestEngine()
		groups := brackets.GroupTeams([]models.Team{
			team("1", "A1", "x", "A"),
			team("2", "B1", "x", "B"),
			team("3", "A2", "x", "A"),
		})

		all := engine.AllStandings(groups, nil)

		So(len(all), ShouldEqual, 2)
		So(all[0].Group, ShouldEqual, "A")
		So(len(all[0].Standings), ShouldEqual, 2)
		So(all[1].Group, ShouldEqual, "B")
	})
}
