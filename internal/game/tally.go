package game

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Tally counts outcomes across a batch. Every tag the policy can
// produce is present at zero from construction, so a zero-trial run
// still reports the full mapping, in a stable order.
type Tally struct {
	order  []Outcome
	counts map[Outcome]int
}

func NewTally(tags []Outcome) *Tally {
	t := &Tally{
		order:  append([]Outcome(nil), tags...),
		counts: make(map[Outcome]int, len(tags)),
	}
	for _, tag := range tags {
		t.counts[tag] = 0
	}
	return t
}

func (t *Tally) Inc(o Outcome)       { t.counts[o]++ }
func (t *Tally) Count(o Outcome) int { return t.counts[o] }

func (t *Tally) Sum() int {
	sum := 0
	for _, n := range t.counts {
		sum += n
	}
	return sum
}

// Outcomes returns the tag order the tally was initialized with.
func (t *Tally) Outcomes() []Outcome {
	return append([]Outcome(nil), t.order...)
}

// Counts returns a copy of the mapping for callers that serialize it.
func (t *Tally) Counts() map[Outcome]int {
	out := make(map[Outcome]int, len(t.counts))
	for k, v := range t.counts {
		out[k] = v
	}
	return out
}

// String renders the mapping literal, e.g. {stay: 1, switch: 2}.
func (t *Tally) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, tag := range t.order {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s: %d", tag, t.counts[tag])
	}
	b.WriteByte('}')
	return b.String()
}

func MarshalPretty(v any) []byte {
	b, _ := json.MarshalIndent(v, "", "  ")
	return b
}
