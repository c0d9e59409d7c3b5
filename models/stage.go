package models

import "encoding/json"

type StageKind int

const (
	StageGroup StageKind = iota
	StageSemifinal
	StageThirdPlace
	StageFinal
)

// Fixed knockout round labels as stored in the document.
const (
	SemifinalLabel  = "Semifinal"
	ThirdPlaceLabel = "Terceiro Lugar"
	FinalLabel      = "Final"
)

// Stage is the typed form of a match round label: either a named group or one
// of the knockout stages.
type Stage struct {
	Kind  StageKind
	Group string
}

func GroupStage(name string) Stage { return Stage{Kind: StageGroup, Group: name} }

var (
	Semifinal  = Stage{Kind: StageSemifinal}
	ThirdPlace = Stage{Kind: StageThirdPlace}
	Final      = Stage{Kind: StageFinal}
)

// ParseStage maps a stored round label to a Stage. Any label that is not a
// knockout stage is a group name.
func ParseStage(label string) Stage {
	switch label {
	case SemifinalLabel:
		return Semifinal
	case ThirdPlaceLabel:
		return ThirdPlace
	case FinalLabel:
		return Final
	default:
		return GroupStage(label)
	}
}

func (s Stage) String() string {
	switch s.Kind {
	case StageSemifinal:
		return SemifinalLabel
	case StageThirdPlace:
		return ThirdPlaceLabel
	case StageFinal:
		return FinalLabel
	default:
		return s.Group
	}
}

func (s Stage) IsKnockout() bool {
	return s.Kind != StageGroup
}

func (s Stage) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *Stage) UnmarshalJSON(data []byte) error {
	var label string
	if err := json.Unmarshal(data, &label); err != nil {
		return err
	}
	*s = ParseStage(label)
	return nil
}
