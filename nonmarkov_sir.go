package contagiongo

import "fmt"

// ProcessTransFunc handles a single transmission event for the
// non-Markovian event-driven SIR engine, generalizing spec.md section 4.4's
// fixed Exponential(tau)/Exponential(gamma) event-driven SIR to
// user-defined transmission and recovery time distributions (SPEC_FULL.md
// section 9, mirroring EoN.simulation.py's fast_nonMarkov_SIR /
// process_trans callback).
//
// On entry, target may already be Infected (a stale, dominated event); the
// function must check st.Status(target) and do nothing beyond rescheduling
// in that case, matching spec.md section 4.4's "process_trans" invariant.
// Implementations are responsible for marking target Infected, appending to
// st.Trajectory, drawing and scheduling target's own recovery event via
// queue.Add, and scheduling further transmission events to target's
// neighbors whose predicted infection time improves on their current
// PredInfTime.
type ProcessTransFunc func(g Graph, time float64, target int, st *SimulationState, queue *EventQueue, src *Source)

// NonMarkovSIROptions configures FastNonMarkovSIR.
type NonMarkovSIROptions struct {
	InitialCondition
	ProcessTrans ProcessTransFunc

	// PreSeededQueue, if non-nil, is used directly instead of building a
	// fresh queue from InitialCondition: InitialInfecteds are then
	// interpreted as nodes already Infected *prior* to t=0, and the queue
	// must already carry every one of their future events (in particular
	// their recovery), per the Open Question in spec.md section 9 resolved
	// in DESIGN.md: callers that want to splice externally generated event
	// sequences into a run use this field; ordinary callers leave it nil.
	PreSeededQueue *EventQueue

	Tmax           float64
	ReturnFullData bool
	Source         *Source
}

// FastNonMarkovSIR runs the event-driven SIR simulation with a caller-
// supplied transmission rule, per SPEC_FULL.md section 9. DefaultProcessTrans
// reproduces FastSIR's Markovian behavior exactly, so FastNonMarkovSIR with
// that callback is equivalent to FastSIR for the same tau, gamma.
func FastNonMarkovSIR(g Graph, opts NonMarkovSIROptions) (*SIRResult, error) {
	if opts.Source == nil {
		opts.Source = NewSource(1)
	}
	if opts.ProcessTrans == nil {
		return nil, fmt.Errorf("contagiongo: FastNonMarkovSIR requires a non-nil ProcessTrans")
	}

	st := newSimulationState(g, opts.ReturnFullData)
	n := g.Order()

	if opts.PreSeededQueue != nil {
		initial := opts.InitialInfecteds
		st.Trajectory = newTrajectory(0, n-len(initial), len(initial), 0)
		for _, v := range initial {
			st.SetStatus(v, Infected)
			st.SetPredInfTime(v, 0)
			st.RecordInfection(v, 0)
		}
		return runNonMarkovQueue(g, st, opts.PreSeededQueue, opts)
	}

	initial, err := ResolveInitialInfecteds(opts.InitialCondition, g, opts.Source)
	if err != nil {
		return nil, err
	}
	st.Trajectory = newTrajectory(0, n, 0, 0)
	queue := NewEventQueue(opts.Tmax)
	for _, v := range initial {
		st.SetPredInfTime(v, 0)
		queue.Add(Event{Time: 0, Kind: EventTrans, Source: -1, Target: v})
	}

	result, err := runNonMarkovQueue(g, st, queue, opts)
	if err != nil {
		return nil, err
	}
	result.Trajectory.trimLeading(len(initial))
	return result, nil
}

func runNonMarkovQueue(g Graph, st *SimulationState, queue *EventQueue, opts NonMarkovSIROptions) (*SIRResult, error) {
	for !queue.Empty() {
		e := queue.PopAndRun()
		switch e.Kind {
		case EventTrans:
			opts.ProcessTrans(g, e.Time, e.Target, st, queue, opts.Source)
		case EventRec:
			node := e.Target
			st.SetStatus(node, Recovered)
			st.SetRecTime(node, e.Time)
			st.RecordRecovery(node, e.Time)
			tr := st.Trajectory
			last := tr.Len() - 1
			tr.appendSIR(e.Time, tr.S[last], tr.I[last]-1, tr.R[last]+1)
		}
	}
	result := &SIRResult{Trajectory: st.Trajectory}
	if opts.ReturnFullData {
		result.InfectionTimes = st.infectionHistory
		result.RecoveryTimes = st.recoveryHistory
	}
	return result, nil
}

// DefaultProcessTrans reproduces FastSIR's Markovian transmission rule as a
// ProcessTransFunc, so it can be handed to FastNonMarkovSIR to exercise the
// generic engine with ordinary Exponential(tau)/Exponential(gamma) dynamics.
func DefaultProcessTrans(tau, gamma float64) ProcessTransFunc {
	rf := &RateFunctions{tau: tau, gamma: gamma}
	return func(g Graph, time float64, target int, st *SimulationState, queue *EventQueue, src *Source) {
		if st.Status(target) != Susceptible {
			return
		}
		st.SetStatus(target, Infected)
		tr := st.Trajectory
		last := tr.Len() - 1
		tr.appendSIR(time, tr.S[last]-1, tr.I[last]+1, tr.R[last])
		st.RecordInfection(target, time)

		gammaRate := rf.RecRate(target)
		var recDelay float64
		if gammaRate <= 0 {
			recDelay = posInfDelay
		} else {
			recDelay = src.Exponential(gammaRate)
		}
		recTime := time + recDelay
		st.SetRecTime(target, recTime)
		queue.Add(Event{Time: recTime, Kind: EventRec, Target: target})

		for _, v := range g.Neighbors(target) {
			if st.Status(v) != Susceptible {
				continue
			}
			tauRate := rf.TransRate(target, v)
			if tauRate <= 0 {
				continue
			}
			delay := src.Exponential(tauRate)
			transTime := time + delay
			if transTime < recTime && transTime < st.PredInfTime(v) {
				st.SetPredInfTime(v, transTime)
				queue.Add(Event{Time: transTime, Kind: EventTrans, Source: target, Target: v})
			}
		}
	}
}
