package game

// RunBatch plays n sequential trials under one host policy and returns
// the finished tally. emit, when non-nil, sees every completed trial;
// reporting goes through it so the simulation stays free of I/O.
func RunBatch(env *Env, host HostPolicy, n int, emit func(Trial)) *Tally {
	tally := NewTally(host.Outcomes())
	for i := 0; i < n; i++ {
		t := RunTrial(env, host)
		tally.Inc(t.Outcome)
		if emit != nil {
			emit(t)
		}
	}
	return tally
}
