package contagiongo

// GillespieSIR runs the rejection-free direct-method SIR simulation
// described in spec.md section 4.6. It only accepts unweighted graphs
// (ErrWeightedGillespie if transmissionWeight/recoveryWeight configured),
// per spec.md section 1's Non-goals.
func GillespieSIR(g Graph, tau, gamma float64, opts SIROptions) (*SIRResult, error) {
	if opts.TransmissionWeight != "" || opts.RecoveryWeight != "" {
		return nil, ErrWeightedGillespie
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
		st.Trajectory = newTrajectory(0, n, 0, 0)
		return &SIRResult{Trajectory: st.Trajectory}, nil
	}

	rs := NewRiskStratification()
	infected := NewIndexedSet()

	infectedSet := make(map[int]bool, len(initial))
	for _, v := range initial {
		infectedSet[v] = true
	}
	// Compute initial infected-neighbor counts for every susceptible node.
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

	st.Trajectory = newTrajectory(0, n-len(initial), len(initial), 0)

	eng := &gillespieSIREngine{g: g, st: st, rs: rs, infected: infected, src: opts.Source}

	time := 0.0
	for infected.Len() > 0 {
		totalTransRate := tau * rs.TotalWeightedSize()
		totalRecRate := gamma * float64(infected.Len())
		total := totalTransRate + totalRecRate
		if total <= 0 {
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

	result := &SIRResult{Trajectory: st.Trajectory}
	if opts.ReturnFullData {
		result.InfectionTimes = st.infectionHistory
		result.RecoveryTimes = st.recoveryHistory
	}
	return result, nil
}

// gillespieSIREngine holds the mutable pieces the direct-method SIR step
// operates on: the infected-node pool (as an IndexedSet, for O(1) uniform
// sampling) and the risk stratification of remaining susceptibles.
type gillespieSIREngine struct {
	g        Graph
	st       *SimulationState
	rs       *RiskStratification
	infected *IndexedSet
	src      *Source
}

// recover implements spec.md section 4.6 step 4: pick a uniformly random
// infected node (swap-remove from the infected pool), set it Recovered,
// append to the trajectory, and for each susceptible neighbor decrement its
// infected-neighbor count (possibly dropping it out of stratification
// entirely).
func (eng *gillespieSIREngine) recover(time float64) {
	node := eng.infected.Sample(eng.src)
	eng.infected.Remove(node)
	eng.st.SetStatus(node, Recovered)
	eng.st.SetRecTime(node, time)
	eng.st.RecordRecovery(node, time)

	for _, v := range eng.g.Neighbors(node) {
		if eng.st.Status(v) == Susceptible {
			eng.rs.Decrement(v)
		}
	}

	tr := eng.st.Trajectory
	last := tr.Len() - 1
	tr.appendSIR(time, tr.S[last], tr.I[last]-1, tr.R[last]+1)
}

// infect implements spec.md section 4.6 step 5: select a stratum k with
// probability proportional to k*|riskGroup[k]|, uniformly sample a node
// from it, mark it Infected, and promote each of its susceptible neighbors
// one stratum up. r is the already-shifted-and-tau-normalized CDF draw
// (spec.md section 4.6's "strict r < cumulative" comparisons, implemented
// in RiskStratification.SampleStratum, which accumulates unscaled
// k*|riskGroup[k]| over [0, TotalWeightedSize())).
func (eng *gillespieSIREngine) infect(time float64, r float64) {
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
	tr.appendSIR(time, tr.S[last]-1, tr.I[last]+1, tr.R[last])
}
