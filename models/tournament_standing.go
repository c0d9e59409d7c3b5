package models

import (
	"encoding/json"
	"math"
	"strconv"
)

// Ratio is a point average that may be infinite (no points conceded).
type Ratio float64

func (r Ratio) IsInf() bool {
	return math.IsInf(float64(r), 1)
}

// MarshalJSON writes infinity as "inf", JSON has no literal for it.
func (r Ratio) MarshalJSON() ([]byte, error) {
	if r.IsInf() {
		return []byte(`"inf"`), nil
	}
	return []byte(strconv.FormatFloat(float64(r), 'f', -1, 64)), nil
}

func (r *Ratio) UnmarshalJSON(data []byte) error {
	if string(data) == `"inf"` {
		*r = Ratio(math.Inf(1))
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*r = Ratio(f)
	return nil
}

type Standing struct {
	Team            string `json:"team"`
	Wins            int    `json:"wins"`
	PointsFor       int    `json:"points_for"`
	PointsAgainst   int    `json:"points_against"`
	PointDifference int    `json:"point_difference"`
	PointAverage    Ratio  `json:"point_average"`
}

// GroupStandings — таблица одной группы.
type GroupStandings struct {
	Group     string     `json:"group"`
	Standings []Standing `json:"standings"`
}
