package contagiongo

// GillespieSIS runs the rejection-free direct-method SIS simulation
// described in spec.md section 4.7. It only accepts unweighted,
// self-loop-free graphs: self-loops break the infected-neighbor-count
// stratification bookkeeping in the infect path (spec.md section 9, "open
// questions"), so callers must pre-strip them; this implementation asserts
// their absence with ErrSelfLoop rather than silently corrupting counts the
// way the teacher's source-algorithm is documented to.
func GillespieSIS(g Graph, tau, gamma float64, opts SISOptions) (*SISResult, error) {
	if opts.TransmissionWeight != "" || opts.RecoveryWeight != "" {
		return nil, ErrWeightedGillespie
	}
	if hasSelfLoop(g) {
		return nil, ErrSelfLoop
	}
	if opts.Source == nil {
		opts.Source = NewSource(1)
	}
	initial, err := ResolveInitialInfecteds(opts.InitialCondition, g, opts.Source)
	if err != nil {
		return nil, err
	}

	st := newSimulationState(g, opts.ReturnFullData)
	n := g.Order()

	if len(initial) == 0 {
		st.Trajectory = &Trajectory{Times: []float64{0}, S: []int{n}, I: []int{0}}
		return &SISResult{Trajectory: st.Trajectory}, nil
	}

	rs := NewRiskStratification()
	infected := NewIndexedSet()

	infectedSet := make(map[int]bool, len(initial))
	for _, v := range initial {
		infectedSet[v] = true
	}
	for _, node := range g.Nodes() {
		if infectedSet[node] {
			continue
		}
		count := 0
		for _, nb := range g.Neighbors(node) {
			if infectedSet[nb] {
				count++
			}
		}
		rs.Init(node, count)
	}
	for _, v := range initial {
		st.SetStatus(v, Infected)
		infected.Add(v)
		st.RecordInfection(v, 0)
	}

	st.Trajectory = &Trajectory{
		Times: []float64{0},
		S:     []int{n - len(initial)},
		I:     []int{len(initial)},
	}

	eng := &gillespieSISEngine{g: g, st: st, rs: rs, infected: infected, src: opts.Source}

	time := 0.0
	for {
		totalTransRate := tau * rs.TotalWeightedSize()
		totalRecRate := gamma * float64(infected.Len())
		total := totalTransRate + totalRecRate
		if total <= 0 {
			// Zero total rate with no infected remaining: terminate
			// (spec.md section 4.7). If infected nodes remain but the
			// total rate is 0 (gamma=0 and every stratum is empty because
			// the graph has been fully saturated), the loop also halts,
			// matching the direct method's "no more events possible".
			break
		}
		time += opts.Source.Exponential(total)
		if time >= opts.Tmax {
			break
		}
		r := opts.Source.Uniform() * total
		if r < totalRecRate {
			eng.recover(time)
		} else {
			eng.infect(time, (r-totalRecRate)/tau)
		}
	}

	result := &SISResult{Trajectory: st.Trajectory}
	if opts.ReturnFullData {
		result.InfectionTimes = st.infectionHistory
		result.RecoveryTimes = st.recoveryHistory
	}
	return result, nil
}

func hasSelfLoop(g Graph) bool {
	for _, n := range g.Nodes() {
		for _, nb := range g.Neighbors(n) {
			if nb == n {
				return true
			}
		}
	}
	return false
}

type gillespieSISEngine struct {
	g        Graph
	st       *SimulationState
	rs       *RiskStratification
	infected *IndexedSet
	src      *Source
}

// recover implements spec.md section 4.7: the recovering node returns to
// Susceptible (not Recovered). Its own infected-neighbor count must be
// rebuilt from scratch (infected neighbors contribute to its new count),
// then susceptible neighbors have their counts decremented. Self-loops are
// excluded by the precondition check in GillespieSIS.
func (eng *gillespieSISEngine) recover(time float64) {
	node := eng.infected.Sample(eng.src)
	eng.infected.Remove(node)
	eng.st.SetStatus(node, Susceptible)
	eng.st.SetRecTime(node, time)
	eng.st.RecordRecovery(node, time)

	newCount := 0
	for _, v := range eng.g.Neighbors(node) {
		if v == node {
			continue // self-loops are rejected up front, but guard anyway
		}
		if eng.st.Status(v) == Infected {
			newCount++
		} else if eng.st.Status(v) == Susceptible {
			eng.rs.Decrement(v)
		}
	}
	if newCount > 0 {
		eng.rs.Init(node, newCount)
	}

	tr := eng.st.Trajectory
	last := tr.Len() - 1
	tr.appendSIS(time, tr.S[last]+1, tr.I[last]-1)
}

// infect implements spec.md section 4.7's infection path, identical in
// structure to the SIR version (spec.md section 4.6 step 5). r is the
// already-shifted-and-tau-normalized CDF draw, since
// RiskStratification.SampleStratum accumulates unscaled k*|riskGroup[k]|
// over [0, TotalWeightedSize()).
func (eng *gillespieSISEngine) infect(time float64, r float64) {
	k := eng.rs.SampleStratum(r)
	group := eng.rs.Stratum(k)
	node := group.Sample(eng.src)
	eng.rs.Remove(node)
	eng.st.SetStatus(node, Infected)
	eng.infected.Add(node)
	eng.st.RecordInfection(node, time)

	for _, v := range eng.g.Neighbors(node) {
		if eng.st.Status(v) == Susceptible {
			eng.rs.Increment(v)
		}
	}

	tr := eng.st.Trajectory
	last := tr.Len() - 1
	tr.appendSIS(time, tr.S[last]-1, tr.I[last]+1)
}
