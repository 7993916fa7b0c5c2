package game

import "math/rand"

// Env carries the ambient random source shared by a run of trials.
type Env struct {
	Rng *rand.Rand
}

// Trial is the ephemeral state of one playthrough.
type Trial struct {
	Winning   Door    `json:"winning"`
	Choice    Door    `json:"choice"`
	HostOpens Door    `json:"host_opens"`
	Outcome   Outcome `json:"outcome"`
}

// RunTrial plays one game: the prize door and the contestant's pick are
// drawn uniformly and independently, the host opens a door under the
// given policy, and the policy resolves the outcome.
func RunTrial(env *Env, host HostPolicy) Trial {
	t := Trial{
		Winning: Door(env.Rng.Intn(DoorCount)),
		Choice:  Door(env.Rng.Intn(DoorCount)),
	}
	t.HostOpens = host.Open(env.Rng, t.Choice, t.Winning)
	t.Outcome = host.Resolve(t)
	return t
}
