package contagiongo

import "testing"

func TestFastSIR_IsolatedNode_TrajectoryStaysFlat(t *testing.T) {
	g := NewAdjacencyGraph()
	g.SetNodeAttr(0, "label", 1.0) // register the sole node with no edges

	res, err := FastSIR(g, 1.0, 1.0, SIROptions{
		InitialCondition: InitialCondition{InitialInfecteds: []int{0}},
		Tmax:             100,
		Source:           NewSource(1),
	})
	if err != nil {
		t.Fatalf(UnexpectedErrorWhileError, "running FastSIR on an isolated node", err)
	}
	tr := res.Trajectory
	// The only possible transition for an isolated infected node is its own
	// recovery; susceptible count can never move off n-1=0.
	for _, s := range tr.S {
		if s != 0 {
			t.Errorf(UnequalIntParameterError, "susceptible count on an isolated-node run", 0, s)
		}
	}
	if tr.I[tr.Len()-1] != 0 {
		t.Errorf(UnequalIntParameterError, "final infected count once the lone node recovers", 0, tr.I[tr.Len()-1])
	}
	if tr.R[tr.Len()-1] != 1 {
		t.Errorf(UnequalIntParameterError, "final recovered count", 1, tr.R[tr.Len()-1])
	}
}

func TestFastSIR_FastTransmission_NearCertainSpread(t *testing.T) {
	g := NewAdjacencyGraph()
	g.AddWeightedBiConnection(0, 1, 1.0)

	res, err := FastSIR(g, 1e6, 1.0, SIROptions{
		InitialCondition: InitialCondition{InitialInfecteds: []int{0}},
		Tmax:             10,
		Source:           NewSource(1),
	})
	if err != nil {
		t.Fatalf(UnexpectedErrorWhileError, "running FastSIR with a very large transmission rate", err)
	}
	tr := res.Trajectory
	sawBothInfected := false
	for _, i := range tr.I {
		if i == 2 {
			sawBothInfected = true
		}
	}
	if !sawBothInfected {
		t.Errorf(ExpectedErrorWhileError, "the second node becoming infected under a near-instant transmission rate")
	}
}

func TestFastSIR_ZeroTau_NoTransmissionEverOccurs(t *testing.T) {
	g := NewAdjacencyGraph()
	g.AddWeightedBiConnection(0, 1, 1.0)

	res, err := FastSIR(g, 0, 1.0, SIROptions{
		InitialCondition: InitialCondition{InitialInfecteds: []int{0}},
		Tmax:             50,
		Source:           NewSource(1),
	})
	if err != nil {
		t.Fatalf(UnexpectedErrorWhileError, "running FastSIR with tau=0", err)
	}
	tr := res.Trajectory
	for _, s := range tr.S {
		if s != 1 {
			t.Errorf(UnequalIntParameterError, "susceptible count with tau=0 (node 1 must never be infected)", 1, s)
		}
	}
}

func TestFastSIR_EmptyInitialSet_TrivialOutbreak(t *testing.T) {
	g := PathGraph(3)
	res, err := FastSIR(g, 1.0, 1.0, SIROptions{
		InitialCondition: InitialCondition{InitialInfecteds: []int{}},
		Tmax:             10,
		Source:           NewSource(1),
	})
	if err != nil {
		t.Fatalf(UnexpectedErrorWhileError, "running FastSIR with an empty initial infected set", err)
	}
	if l := res.Trajectory.Len(); l != 1 {
		t.Errorf(UnequalIntParameterError, "trajectory length for a trivial outbreak", 1, l)
	}
}

func TestFastSIR_ConflictingInitialCondition_ReturnsError(t *testing.T) {
	g := PathGraph(3)
	_, err := FastSIR(g, 1.0, 1.0, SIROptions{
		InitialCondition: InitialCondition{InitialInfecteds: []int{0}, Rho: 0.5},
		Tmax:             10,
		Source:           NewSource(1),
	})
	if err != ErrConflictingInitialCondition {
		t.Errorf(UnexpectedErrorWhileError, "running FastSIR with both initialInfecteds and rho set", err)
	}
}
