package contagiongo

import "testing"

func TestGillespieSIS_RejectsSelfLoop(t *testing.T) {
	g := NewAdjacencyGraph()
	g.AddConnection(0, 0)
	_, err := GillespieSIS(g, 1.0, 1.0, SISOptions{
		InitialCondition: InitialCondition{InitialInfecteds: []int{0}},
		Tmax:             10,
	})
	if err != ErrSelfLoop {
		t.Errorf(UnexpectedErrorWhileError, "running GillespieSIS on a graph with a self-loop", err)
	}
}

func TestGillespieSIS_RejectsWeightedOptions(t *testing.T) {
	g := PathGraph(3)
	_, err := GillespieSIS(g, 1.0, 1.0, SISOptions{
		InitialCondition: InitialCondition{InitialInfecteds: []int{0}},
		Tmax:             10,
		RecoveryWeight:   "recovery_weight",
	})
	if err != ErrWeightedGillespie {
		t.Errorf(UnexpectedErrorWhileError, "running GillespieSIS with a recovery weight configured", err)
	}
}

func TestGillespieSIS_ZeroGamma_NeverRecovers(t *testing.T) {
	g := PathGraph(2)
	res, err := GillespieSIS(g, 1.0, 0, SISOptions{
		InitialCondition: InitialCondition{InitialInfecteds: []int{0}},
		Tmax:             50,
		Source:           NewSource(3),
	})
	if err != nil {
		t.Fatalf(UnexpectedErrorWhileError, "running GillespieSIS with gamma=0", err)
	}
	for _, i := range res.Trajectory.I {
		if i == 0 {
			t.Errorf(ExpectedErrorWhileError, "infected count to never drop to zero when gamma=0")
		}
	}
}

func TestGillespieSIS_ConservesPopulation(t *testing.T) {
	g := PathGraph(4)
	res, err := GillespieSIS(g, 1.0, 1.0, SISOptions{
		InitialCondition: InitialCondition{InitialInfecteds: []int{0}},
		Tmax:             20,
		Source:           NewSource(5),
	})
	if err != nil {
		t.Fatalf(UnexpectedErrorWhileError, "running GillespieSIS on a path graph", err)
	}
	tr := res.Trajectory
	for idx := range tr.Times {
		if total := tr.S[idx] + tr.I[idx]; total != 4 {
			t.Errorf(UnequalIntParameterError, "S+I at every sample", 4, total)
		}
	}
}
