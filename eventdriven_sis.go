package contagiongo

// SISResult is the output of an event-driven or Gillespie SIS run.
type SISResult struct {
	Trajectory      *Trajectory
	InfectionTimes  map[int][]float64 // populated only if requested
	RecoveryTimes   map[int][]float64 // populated only if requested
}

// SISOptions configures a FastSIS / GillespieSIS run. Tmax is required to
// be finite in practice, per spec.md section 6, since SIS has no
// terminating absorbing state in general.
type SISOptions struct {
	InitialCondition
	Tmax               float64
	TransmissionWeight string
	RecoveryWeight     string
	ReturnFullData     bool
	Source             *Source
}

// FastSIS runs the event-driven (next-reaction) SIS simulation described in
// spec.md section 4.5.
func FastSIS(g Graph, tau, gamma float64, opts SISOptions) (*SISResult, error) {
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
	st.Trajectory = &Trajectory{Times: []float64{0}, S: []int{n}, I: []int{0}}

	if len(initial) == 0 {
		return &SISResult{Trajectory: st.Trajectory}, nil
	}

	queue := NewEventQueue(opts.Tmax)
	eng := &sisEngine{g: g, rf: rf, st: st, queue: queue, src: opts.Source}

	for _, v := range initial {
		queue.Add(Event{Time: 0, Kind: EventTrans, Source: -1, Target: v})
	}

	for !queue.Empty() {
		e := queue.PopAndRun()
		switch e.Kind {
		case EventTrans:
			eng.processTrans(e.Time, e.Source, e.Target)
		case EventRec:
			eng.processRec(e.Time, e.Target)
		}
	}

	// As in FastSIR, drop the seeded (0,N,0) sample and the samples of all
	// but the last t=0 seed infection, so the trajectory starts with every
	// initial node infected.
	st.Trajectory.trimLeading(len(initial))

	result := &SISResult{Trajectory: st.Trajectory}
	if opts.ReturnFullData {
		result.InfectionTimes = st.infectionHistory
		result.RecoveryTimes = st.recoveryHistory
	}
	return result, nil
}

type sisEngine struct {
	g     Graph
	rf    *RateFunctions
	st    *SimulationState
	queue *EventQueue
	src   *Source
}

// processTrans implements spec.md section 4.5's SIS transmission-event
// processing. source == -1 marks the synthetic t=0 seed events, mirroring
// the distilled spec's "initial" source sentinel.
func (eng *sisEngine) processTrans(time float64, source, target int) {
	if eng.st.Status(target) == Susceptible {
		eng.st.SetStatus(target, Infected)
		tr := eng.st.Trajectory
		last := tr.Len() - 1
		tr.appendSIS(time, tr.S[last]-1, tr.I[last]+1)

		gamma := eng.rf.RecRate(target)
		delay := eng.drawDelay(gamma)
		eng.st.SetRecTime(target, time+delay)
		eng.queue.Add(Event{Time: time + delay, Kind: EventRec, Target: target})

		for _, v := range eng.g.Neighbors(target) {
			eng.findNextTrans(time, target, v)
		}
		eng.st.RecordInfection(target, time)
	}
	// Whether target was freshly infected or already infected, source gets
	// another chance at reinfecting target during its own infectious
	// interval (spec.md section 4.5).
	if source != -1 {
		eng.findNextTrans(time, source, target)
	}
}

// findNextTrans implements spec.md section 4.5's find_next_trans handler.
// Requires status[source]==Infected; spec.md section 7 treats a violation
// of this precondition as an algorithmic-assertion bug that must halt the
// run rather than be silently absorbed.
func (eng *sisEngine) findNextTrans(time float64, source, target int) bool {
	if eng.st.Status(source) != Infected {
		panic("contagiongo: findNextTrans requires status[source] == Infected")
	}
	tau := eng.rf.TransRate(source, target)
	if tau <= 0 {
		return false
	}
	if eng.st.RecTime(target) < eng.st.RecTime(source) {
		delay := eng.drawDelay(tau)
		transTime := maxFloat(time, eng.st.RecTime(target)) + delay
		if transTime < eng.st.RecTime(source) {
			eng.queue.Add(Event{Time: transTime, Kind: EventTrans, Source: source, Target: target})
			return true
		}
	}
	return false
}

// processRec implements spec.md section 4.5's recovery handler: unlike
// SIR, no stale-infected-neighbor cleanup is needed because
// neighbor-rescheduling is driven lazily by per-source findNextTrans calls.
func (eng *sisEngine) processRec(time float64, node int) {
	eng.st.SetStatus(node, Susceptible)
	eng.st.SetRecTime(node, time)
	eng.st.RecordRecovery(node, time)
	tr := eng.st.Trajectory
	last := tr.Len() - 1
	tr.appendSIS(time, tr.S[last]+1, tr.I[last]-1)
}

func (eng *sisEngine) drawDelay(rate float64) float64 {
	if rate <= 0 {
		return posInfDelay
	}
	return eng.src.Exponential(rate)
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
