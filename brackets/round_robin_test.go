package brackets_test

import (
	"fmt"
	"testing"

	"github.com/Dosada05/volei-torneio/brackets"
	"github.com/Dosada05/volei-torneio/models"
	. "github.com/smartystreets/goconvey/convey"
)

// sequentialIDs gives deterministic match ids in tests.
func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("m%d", n)
	}
}

func newTestEngine() *brackets.Engine {
	return brackets.NewEngine(brackets.WithIDGenerator(sequentialIDs()))
}

func TestGenerateGroupMatches(t *testing.T) {
	Convey("Given group A with teams P, Q and R and no matches", t, func() {
		engine := newTestEngine()
		groups := []models.Group{{
			Name: "A",
			Teams: []models.Team{
				team("1", "P", "p", "A"),
				team("2", "Q", "q", "A"),
				team("3", "R", "r", "A"),
			},
		}}

		created := engine.GenerateGroupMatches(groups, nil)

		Convey("Then exactly the three pairings are created unplayed", func() {
			So(len(created), ShouldEqual, 3)
			pairs := make([][2]string, 0, 3)
			for _, m := range created {
				So(m.Round, ShouldEqual, "A")
				So(m.Score.IsZero(), ShouldBeTrue)
				pairs = append(pairs, [2]string{m.Side1, m.Side2})
			}
			So(pairs, ShouldResemble, [][2]string{{"P/p", "Q/q"}, {"P/p", "R/r"}, {"Q/q", "R/r"}})
		})

		Convey("Then every match gets its own id", func() {
			ids := map[string]bool{}
			for _, m := range created {
				ids[m.ID] = true
			}
			So(len(ids), ShouldEqual, 3)
		})

		Convey("When generating again on the merged snapshot", func() {
			again := engine.GenerateGroupMatches(groups, created)

			Convey("Then nothing new is created", func() {
				So(again, ShouldBeEmpty)
			})
		})

		Convey("When one pairing already exists in reverse order", func() {
			existing := []models.Match{{ID: "x", Round: "A", Side1: "R/r", Side2: "P/p"}}
			partial := engine.GenerateGroupMatches(groups, existing)

			Convey("Then only the gaps are filled", func() {
				So(len(partial), ShouldEqual, 2)
				for _, m := range partial {
					So(m.Pairs("P/p", "R/r"), ShouldBeFalse)
				}
			})
		})

		Convey("When the same pairing exists under another round label", func() {
			existing := []models.Match{{ID: "x", Round: "B", Side1: "P/p", Side2: "Q/q"}}
			So(len(engine.GenerateGroupMatches(groups, existing)), ShouldEqual, 3)
		})
	})

	Convey("Given the default engine", t, func() {
		engine := brackets.NewEngine()
		groups := brackets.GroupTeams([]models.Team{
			team("1", "P", "p", "A"),
			team("2", "Q", "q", "A"),
		})

		Convey("Then generated ids are random UUIDs", func() {
			created := engine.GenerateGroupMatches(groups, nil)
			So(len(created), ShouldEqual, 1)
			So(len(created[0].ID), ShouldEqual, 36)
		})
	})
}
