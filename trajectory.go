package contagiongo

import "math"

// Trajectory holds three (SIR) or two (SIS) parallel ordered sequences
// extended by exactly one entry per state-changing event, per spec.md
// section 3. Length equals the number of recorded events plus one (the
// initial sample).
type Trajectory struct {
	Times []float64
	S     []int
	I     []int
	R     []int // unused (stays empty) for SIS trajectories
}

// newTrajectory seeds a trajectory with its initial sample.
func newTrajectory(t0 float64, s0, i0, r0 int) *Trajectory {
	return &Trajectory{
		Times: []float64{t0},
		S:     []int{s0},
		I:     []int{i0},
		R:     []int{r0},
	}
}

func (tr *Trajectory) appendSIR(t float64, s, i, r int) {
	tr.Times = append(tr.Times, t)
	tr.S = append(tr.S, s)
	tr.I = append(tr.I, i)
	tr.R = append(tr.R, r)
}

func (tr *Trajectory) appendSIS(t float64, s, i int) {
	tr.Times = append(tr.Times, t)
	tr.S = append(tr.S, s)
	tr.I = append(tr.I, i)
}

// Len reports the number of samples in the trajectory.
func (tr *Trajectory) Len() int {
	return len(tr.Times)
}

// trimLeading drops the first n samples. The event-driven SIR engine seeds
// one process_trans event per initial infection at t=0; spec.md section
// 4.4 and section 9 ("likely-buggy source behavior to flag") both note that
// the trimming step assumes every initial infection is processed at t=0
// before any other event fires, which holds because exponential draws are
// strictly positive, so no transmission can ever land exactly at t=0.
func (tr *Trajectory) trimLeading(n int) {
	if n <= 0 || n >= len(tr.Times) {
		return
	}
	tr.Times = tr.Times[n:]
	tr.S = tr.S[n:]
	tr.I = tr.I[n:]
	if len(tr.R) > n {
		tr.R = tr.R[n:]
	}
}

// InfectionRecord captures one infection event for per-node history.
type InfectionRecord struct {
	Node int
	Time float64
}

// RecoveryRecord captures one recovery event (SIR) or one
// return-to-susceptible event (SIS) for per-node history.
type RecoveryRecord struct {
	Node int
	Time float64
}

// SimulationState is the single mutable aggregate every event handler is
// passed by pointer, replacing the distilled spec's closures capturing
// status/rec_time/pred_inf_time/trajectory directly (spec.md section 9,
// "Closures capturing mutable state"). Holding one struct instead of
// several free-floating maps keeps all per-run mutable state in one place.
type SimulationState struct {
	Graph Graph

	status map[int]NodeStatus

	// recTime: SIR -> scheduled/realized recovery time; SIS -> most recent
	// recovery time. Absent key means "never infected/never recovered",
	// with -1 as the explicit sentinel (spec.md section 3).
	recTime map[int]float64

	// predInfTime (SIR event-driven only): earliest currently-scheduled
	// infection time; absent key means +Inf.
	predInfTime map[int]float64

	Trajectory *Trajectory

	recordHistory    bool
	infectionHistory map[int][]float64 // SIS: possibly multiple entries per node
	recoveryHistory  map[int][]float64
}

// newSimulationState builds a SimulationState over every node of g,
// defaulted to Susceptible, with the sentinel recTime/predInfTime
// semantics of spec.md section 3.
func newSimulationState(g Graph, recordHistory bool) *SimulationState {
	st := &SimulationState{
		Graph:         g,
		status:        make(map[int]NodeStatus, g.Order()),
		recTime:       make(map[int]float64),
		predInfTime:   make(map[int]float64),
		recordHistory: recordHistory,
	}
	for _, n := range g.Nodes() {
		st.status[n] = Susceptible
	}
	if recordHistory {
		st.infectionHistory = make(map[int][]float64)
		st.recoveryHistory = make(map[int][]float64)
	}
	return st
}

// Status returns the current status of node n (defaults to Susceptible for
// unobserved nodes).
func (st *SimulationState) Status(n int) NodeStatus {
	return st.status[n]
}

// SetStatus assigns a status to node n.
func (st *SimulationState) SetStatus(n int, s NodeStatus) {
	st.status[n] = s
}

// RecTime returns the recovery-time table entry for n, or -1 (the "never
// infected/never recovered" sentinel) if n has no entry.
func (st *SimulationState) RecTime(n int) float64 {
	if t, ok := st.recTime[n]; ok {
		return t
	}
	return -1
}

// SetRecTime records n's scheduled (SIR) or most-recent (SIS) recovery
// time.
func (st *SimulationState) SetRecTime(n int, t float64) {
	st.recTime[n] = t
}

// PredInfTime returns the predicted-infection-time table entry for n, or
// +Inf if n has no entry, per spec.md section 3.
func (st *SimulationState) PredInfTime(n int) float64 {
	if t, ok := st.predInfTime[n]; ok {
		return t
	}
	return math.Inf(1)
}

// SetPredInfTime records the earliest currently-scheduled infection time
// for n.
func (st *SimulationState) SetPredInfTime(n int, t float64) {
	st.predInfTime[n] = t
}

// RecordInfection appends t to n's infection history, if history recording
// is enabled.
func (st *SimulationState) RecordInfection(n int, t float64) {
	if !st.recordHistory {
		return
	}
	st.infectionHistory[n] = append(st.infectionHistory[n], t)
}

// RecordRecovery appends t to n's recovery history, if history recording
// is enabled.
func (st *SimulationState) RecordRecovery(n int, t float64) {
	if !st.recordHistory {
		return
	}
	st.recoveryHistory[n] = append(st.recoveryHistory[n], t)
}

// InfectionHistory returns n's recorded infection times (may have multiple
// entries in SIS).
func (st *SimulationState) InfectionHistory(n int) []float64 {
	return st.infectionHistory[n]
}

// RecoveryHistory returns n's recorded recovery times (may have multiple
// entries in SIS).
func (st *SimulationState) RecoveryHistory(n int) []float64 {
	return st.recoveryHistory[n]
}

