package util

import (
	"math/rand"
	"time"
)

// New builds the random source for a simulation run. Seed 0 asks for a
// time-derived seed, so unseeded runs differ between invocations.
func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	src := rand.NewSource(seed)
	return rand.New(src)
}
