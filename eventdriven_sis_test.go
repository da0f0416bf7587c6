package contagiongo

import "testing"

func TestFastSIS_ZeroGamma_NoRecoveryEverOccurs(t *testing.T) {
	g := CycleGraph(2)
	res, err := FastSIS(g, 1.0, 0, SISOptions{
		InitialCondition: InitialCondition{InitialInfecteds: []int{0}},
		Tmax:             50,
		Source:           NewSource(1),
	})
	if err != nil {
		t.Fatalf(UnexpectedErrorWhileError, "running FastSIS with gamma=0", err)
	}
	tr := res.Trajectory
	for _, i := range tr.I {
		if i == 0 {
			t.Errorf(ExpectedErrorWhileError, "infected count to never drop to zero when gamma=0")
		}
	}
}

func TestFastSIS_FastTransmission_SpreadsToNeighbor(t *testing.T) {
	g := CycleGraph(2)
	res, err := FastSIS(g, 1e6, 1.0, SISOptions{
		InitialCondition: InitialCondition{InitialInfecteds: []int{0}},
		Tmax:             5,
		Source:           NewSource(1),
	})
	if err != nil {
		t.Fatalf(UnexpectedErrorWhileError, "running FastSIS with a very large transmission rate", err)
	}
	sawBothInfected := false
	for _, i := range res.Trajectory.I {
		if i == 2 {
			sawBothInfected = true
		}
	}
	if !sawBothInfected {
		t.Errorf(ExpectedErrorWhileError, "the second node becoming infected under a near-instant transmission rate")
	}
}

func TestFastSIS_IsolatedNode_EventuallyReturnsToSusceptible(t *testing.T) {
	g := NewAdjacencyGraph()
	g.SetNodeAttr(0, "label", 1.0)
	res, err := FastSIS(g, 1.0, 1.0, SISOptions{
		InitialCondition: InitialCondition{InitialInfecteds: []int{0}},
		Tmax:             100,
		Source:           NewSource(1),
	})
	if err != nil {
		t.Fatalf(UnexpectedErrorWhileError, "running FastSIS on an isolated node", err)
	}
	tr := res.Trajectory
	if tr.S[tr.Len()-1] != 1 {
		t.Errorf(UnequalIntParameterError, "final susceptible count once the lone node recovers", 1, tr.S[tr.Len()-1])
	}
}
