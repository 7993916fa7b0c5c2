package game

import (
	"math/rand"
	"testing"
)

func TestRunTrialCorrectHost(t *testing.T) {
	env := &Env{Rng: rand.New(rand.NewSource(11))}
	host := CorrectHost{}
	for i := 0; i < 10000; i++ {
		tr := RunTrial(env, host)
		if !tr.Winning.Valid() || !tr.Choice.Valid() || !tr.HostOpens.Valid() {
			t.Fatalf("invalid door index in %+v", tr)
		}
		if tr.HostOpens == tr.Choice || tr.HostOpens == tr.Winning {
			t.Fatalf("correct host opened a forbidden door: %+v", tr)
		}
		switch tr.Outcome {
		case OutcomeStay:
			if tr.Choice != tr.Winning {
				t.Fatalf("stay without a winning first pick: %+v", tr)
			}
		case OutcomeSwitch:
			if tr.Choice == tr.Winning {
				t.Fatalf("switch despite a winning first pick: %+v", tr)
			}
		default:
			t.Fatalf("outcome %q not in {stay, switch}", tr.Outcome)
		}
	}
}

func TestRunTrialNaiveHost(t *testing.T) {
	env := &Env{Rng: rand.New(rand.NewSource(12))}
	host := NaiveHost{}
	for i := 0; i < 10000; i++ {
		tr := RunTrial(env, host)
		if tr.HostOpens == tr.Choice {
			t.Fatalf("naive host opened the contestant's door: %+v", tr)
		}
		switch tr.Outcome {
		case OutcomeLose:
			if tr.HostOpens != tr.Winning {
				t.Fatalf("lose without a revealed prize: %+v", tr)
			}
		case OutcomeStay:
			if tr.Choice != tr.Winning || tr.HostOpens == tr.Winning {
				t.Fatalf("bad stay trial: %+v", tr)
			}
		case OutcomeSwitch:
			if tr.Choice == tr.Winning || tr.HostOpens == tr.Winning {
				t.Fatalf("bad switch trial: %+v", tr)
			}
		default:
			t.Fatalf("outcome %q not in {lose, stay, switch}", tr.Outcome)
		}
	}
}
