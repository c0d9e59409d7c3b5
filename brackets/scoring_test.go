package brackets_test

import (
	"errors"
	"testing"

	"github.com/Dosada05/volei-torneio/brackets"
	"github.com/Dosada05/volei-torneio/models"
	. "github.com/smartystreets/goconvey/convey"
)

func TestIsValidScore(t *testing.T) {
	Convey("Given the set-to-21 scoring rule", t, func() {
		Convey("Then the reference results are classified correctly", func() {
			So(brackets.IsValidScore(21, 19), ShouldBeTrue)
			So(brackets.IsValidScore(21, 20), ShouldBeFalse)
			So(brackets.IsValidScore(22, 20), ShouldBeTrue)
			So(brackets.IsValidScore(23, 21), ShouldBeTrue)
			So(brackets.IsValidScore(25, 24), ShouldBeFalse)
			So(brackets.IsValidScore(0, 0), ShouldBeFalse)
			So(brackets.IsValidScore(21, 0), ShouldBeTrue)
			So(brackets.IsValidScore(20, 18), ShouldBeFalse)
			So(brackets.IsValidScore(20, 20), ShouldBeFalse)
			So(brackets.IsValidScore(30, 25), ShouldBeFalse)
		})

		Convey("Then it is symmetric over every pair up to 30", func() {
			asymmetric := make([][2]int, 0)
			for a := 0; a <= 30; a++ {
				for b := 0; b <= 30; b++ {
					if brackets.IsValidScore(a, b) != brackets.IsValidScore(b, a) {
						asymmetric = append(asymmetric, [2]int{a, b})
					}
				}
			}
			So(asymmetric, ShouldBeEmpty)
		})
	})
}

func TestRecordScore(t *testing.T) {
	Convey("Given a match list with one unplayed match", t, func() {
		matches := []models.Match{
			{ID: "m1", Round: "A", Side1: "P/Q", Side2: "R/S"},
			{ID: "m2", Round: "A", Side1: "P/Q", Side2: "T/U"},
		}

		Convey("When a valid score is recorded", func() {
			updated, err := brackets.RecordScore(matches, "m1", 21, 17)

			Convey("Then a copy carries the score and the input is untouched", func() {
				So(err, ShouldBeNil)
				So(updated[0].Score, ShouldResemble, models.Score{Side1: 21, Side2: 17})
				So(matches[0].Score.IsZero(), ShouldBeTrue)
				So(updated[1], ShouldResemble, matches[1])
			})

			Convey("And the winner can be read back", func() {
				winner, loser, ok := brackets.Winner(updated[0])
				So(ok, ShouldBeTrue)
				So(winner, ShouldEqual, "P/Q")
				So(loser, ShouldEqual, "R/S")
			})
		})

		Convey("When an invalid score is recorded", func() {
			updated, err := brackets.RecordScore(matches, "m1", 21, 20)

			Convey("Then it is rejected with a descriptive error", func() {
				So(updated, ShouldBeNil)
				So(errors.Is(err, brackets.ErrInvalidScore), ShouldBeTrue)
				So(err.Error(), ShouldContainSubstring, "21-20")
			})
		})

		Convey("When a negative score is recorded", func() {
			_, err := brackets.RecordScore(matches, "m1", -1, 21)
			So(errors.Is(err, brackets.ErrNegativeScore), ShouldBeTrue)
		})

		Convey("When the match does not exist", func() {
			_, err := brackets.RecordScore(matches, "nope", 21, 10)
			So(errors.Is(err, brackets.ErrMatchNotFound), ShouldBeTrue)
		})

		Convey("When a played match is reset", func() {
			played, _ := brackets.RecordScore(matches, "m2", 10, 21)
			reset, err := brackets.ResetScore(played, "m2")
			So(err, ShouldBeNil)
			So(reset[1].Score.IsZero(), ShouldBeTrue)
			So(played[1].Score.Side2, ShouldEqual, 21)
		})
	})
}
