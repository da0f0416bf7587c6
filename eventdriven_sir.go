package contagiongo

// SIRResult is the output of an event-driven or Gillespie SIR run: the
// (times,S,I,R) trajectory, plus optional per-node infection/recovery
// history when requested, per spec.md section 6.
type SIRResult struct {
	Trajectory     *Trajectory
	InfectionTimes map[int][]float64 // populated only if requested
	RecoveryTimes  map[int][]float64 // populated only if requested
}

// SIROptions configures a FastSIR / GillespieSIR run.
type SIROptions struct {
	InitialCondition
	Tmax               float64
	TransmissionWeight string
	RecoveryWeight     string
	ReturnFullData     bool
	Source             *Source
}

// FastSIR runs the event-driven (next-reaction) SIR simulation described in
// spec.md section 4.4. It schedules a process_trans event at t=0 for every
// initial infection, then drains the EventQueue, dispatching each popped
// event to processTrans or processRec.
func FastSIR(g Graph, tau, gamma float64, opts SIROptions) (*SIRResult, error) {
	if opts.Source == nil {
		opts.Source = NewSource(1)
	}
	initial, err := ResolveInitialInfecteds(opts.InitialCondition, g, opts.Source)
	if err != nil {
		return nil, err
	}
	rf := NewRateFunctions(g, tau, gamma, opts.TransmissionWeight, opts.RecoveryWeight)
	st := newSimulationState(g, opts.ReturnFullData)
	n := g.Order()
	st.Trajectory = newTrajectory(0, n, 0, 0)

	if len(initial) == 0 {
		// Idempotent initial condition: an empty initial infected set
		// produces a trivial zero-length outbreak (spec.md section 8).
		return &SIRResult{Trajectory: st.Trajectory}, nil
	}

	queue := NewEventQueue(opts.Tmax)
	eng := &sirEngine{g: g, rf: rf, st: st, queue: queue, src: opts.Source}

	for _, v := range initial {
		st.SetPredInfTime(v, 0)
		queue.Add(Event{Time: 0, Kind: EventTrans, Source: -1, Target: v})
	}

	for !queue.Empty() {
		e := queue.PopAndRun()
		switch e.Kind {
		case EventTrans:
			eng.processTrans(e.Time, e.Target)
		case EventRec:
			eng.processRec(e.Time, e.Target)
		}
	}

	// Trim the leading |initial| trajectory entries (spec.md section 4.4 and
	// section 9): the seeded (0,N,0,0) sample and the samples of all but the
	// last t=0 seed infection, so the trajectory starts at the t=0 sample in
	// which every initial node is infected. This is safe because
	// exponential draws are strictly positive, so no other event can ever
	// land at t=0 ahead of them.
	st.Trajectory.trimLeading(len(initial))

	result := &SIRResult{Trajectory: st.Trajectory}
	if opts.ReturnFullData {
		result.InfectionTimes = st.infectionHistory
		result.RecoveryTimes = st.recoveryHistory
	}
	return result, nil
}

// sirEngine holds the mutable pieces the SIR event handlers close over
// (the Graph is read-only; everything else lives on SimulationState).
type sirEngine struct {
	g     Graph
	rf    *RateFunctions
	st    *SimulationState
	queue *EventQueue
	src   *Source
}

// processTrans implements spec.md section 4.4's process_trans handler.
func (eng *sirEngine) processTrans(time float64, target int) {
	if eng.st.Status(target) != Susceptible {
		return
	}
	eng.st.SetStatus(target, Infected)
	eng.st.RecordInfection(target, time)
	s, i, r := eng.lastCounts()
	eng.st.Trajectory.appendSIR(time, s-1, i+1, r)

	gamma := eng.rf.RecRate(target)
	delay := eng.drawDelay(gamma)
	recTime := time + delay
	eng.st.SetRecTime(target, recTime)
	eng.queue.Add(Event{Time: recTime, Kind: EventRec, Target: target})

	for _, v := range eng.g.Neighbors(target) {
		eng.findTrans(time, target, v)
	}
}

// findTrans implements spec.md section 4.4's find_trans handler.
func (eng *sirEngine) findTrans(time float64, source, v int) {
	if eng.st.Status(v) != Susceptible {
		return
	}
	tau := eng.rf.TransRate(source, v)
	if tau <= 0 {
		// tau=0 means no transmission ever occurs (spec.md section 8,
		// scenario 3): drawing Exponential(0) would otherwise imply an
		// infinite wait sampled as +Inf, so short-circuit instead.
		return
	}
	delay := eng.drawDelay(tau)
	infTime := time + delay
	if infTime < minFloat(eng.st.RecTime(source), eng.st.PredInfTime(v)) {
		eng.st.SetPredInfTime(v, infTime)
		eng.queue.Add(Event{Time: infTime, Kind: EventTrans, Source: source, Target: v})
	}
}

// processRec implements spec.md section 4.4's process_rec handler.
func (eng *sirEngine) processRec(time float64, node int) {
	eng.st.SetStatus(node, Recovered)
	eng.st.RecordRecovery(node, time)
	s, i, r := eng.lastCounts()
	eng.st.Trajectory.appendSIR(time, s, i-1, r+1)
}

// lastCounts reads the most recently recorded (S,I,R) trajectory sample;
// since every SIR transition moves exactly one node between two adjacent
// compartments (spec.md section 8, "step size"), each handler above derives
// its new sample by applying a +-1 delta to this pre-transition tail.
func (eng *sirEngine) lastCounts() (s, i, r int) {
	tr := eng.st.Trajectory
	last := tr.Len() - 1
	return tr.S[last], tr.I[last], tr.R[last]
}

func (eng *sirEngine) drawDelay(rate float64) float64 {
	if rate <= 0 {
		return posInfDelay
	}
	return eng.src.Exponential(rate)
}

const posInfDelay = 1e308 // effectively "never" for a zero-rate process

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
