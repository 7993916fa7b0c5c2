package game

// Door indexes one of the three doors, 0 through 2.
type Door int

// DoorCount is fixed; the classic puzzle has exactly three doors.
const DoorCount = 3

func (d Door) Valid() bool { return d >= 0 && d < DoorCount }

// Outcome tags the categorical result of one trial.
type Outcome string

const (
	OutcomeStay   Outcome = "stay"
	OutcomeSwitch Outcome = "switch"
	OutcomeLose   Outcome = "lose"
)
