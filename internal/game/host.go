package game

import "math/rand"

// HostPolicy is the rule governing which door the host opens after the
// contestant has picked, and how a finished trial resolves into an
// outcome. The two implementations share the draw-and-compare skeleton
// and differ only in the exclusion predicate and the outcome rule.
type HostPolicy interface {
	Name() string
	// Open picks the host's door by rejection sampling over the three
	// doors. Termination is guaranteed: at most two doors are ever
	// excluded, so at least one candidate is always accepted.
	Open(rng *rand.Rand, choice, winning Door) Door
	// Resolve maps a completed trial to its outcome tag.
	Resolve(t Trial) Outcome
	// Outcomes lists every tag this policy can produce, in the fixed
	// order the tally reports them.
	Outcomes() []Outcome
}

// CorrectHost never opens the contestant's door or the prize door.
// This is the classic rule that makes switching win 2/3 of the time.
type CorrectHost struct{}

func (CorrectHost) Name() string { return "correct" }

func (CorrectHost) Open(rng *rand.Rand, choice, winning Door) Door {
	for {
		d := Door(rng.Intn(DoorCount))
		if d == choice || d == winning {
			continue
		}
		return d
	}
}

func (CorrectHost) Resolve(t Trial) Outcome {
	if t.Choice == t.Winning {
		return OutcomeStay
	}
	return OutcomeSwitch
}

func (CorrectHost) Outcomes() []Outcome {
	return []Outcome{OutcomeStay, OutcomeSwitch}
}

// NaiveHost only avoids the contestant's door, so it may open the prize
// door by accident. When that happens the game is simply lost, and the
// information that made switching advantageous is gone: every tag
// converges to 1/3.
type NaiveHost struct{}

func (NaiveHost) Name() string { return "naive" }

func (NaiveHost) Open(rng *rand.Rand, choice, winning Door) Door {
	for {
		d := Door(rng.Intn(DoorCount))
		if d == choice {
			continue
		}
		return d
	}
}

func (NaiveHost) Resolve(t Trial) Outcome {
	// A revealed prize ends the game before stay/switch is a question.
	if t.HostOpens == t.Winning {
		return OutcomeLose
	}
	if t.Choice == t.Winning {
		return OutcomeStay
	}
	return OutcomeSwitch
}

func (NaiveHost) Outcomes() []Outcome {
	return []Outcome{OutcomeLose, OutcomeStay, OutcomeSwitch}
}
