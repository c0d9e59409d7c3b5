package models

// Database is the whole persisted tournament document. It is always read and
// replaced as a unit.
type Database struct {
	Athletes []Athlete  `json:"atletas"`
	Teams    []Team     `json:"duplas"`
	Matches  []Match    `json:"confrontos"`
	Votes    RoundVotes `json:"votacoes"`
}

// NewDatabase returns an empty document with non-nil collections.
func NewDatabase() *Database {
	return &Database{
		Athletes: []Athlete{},
		Teams:    []Team{},
		Matches:  []Match{},
		Votes:    RoundVotes{},
	}
}

// Normalize replaces nil collections, documents written by older clients may
// omit them.
func (d *Database) Normalize() {
	if d.Athletes == nil {
		d.Athletes = []Athlete{}
	}
	if d.Teams == nil {
		d.Teams = []Team{}
	}
	if d.Matches == nil {
		d.Matches = []Match{}
	}
	if d.Votes == nil {
		d.Votes = RoundVotes{}
	}
}

// Clone returns a deep copy so mutations never touch the loaded snapshot.
func (d *Database) Clone() *Database {
	c := &Database{
		Athletes: append([]Athlete{}, d.Athletes...),
		Teams:    append([]Team{}, d.Teams...),
		Matches:  append([]Match{}, d.Matches...),
		Votes:    make(RoundVotes, len(d.Votes)),
	}
	for k, v := range d.Votes {
		c.Votes[k] = append([]Vote{}, v...)
	}
	return c
}

func (d *Database) TeamByName(name string) (Team, bool) {
	for _, t := range d.Teams {
		if t.Name() == name {
			return t, true
		}
	}
	return Team{}, false
}
