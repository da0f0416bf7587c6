package contagiongo

import "testing"

func TestFastNonMarkovSIR_NilProcessTrans_ReturnsError(t *testing.T) {
	g := PathGraph(3)
	_, err := FastNonMarkovSIR(g, NonMarkovSIROptions{
		InitialCondition: InitialCondition{InitialInfecteds: []int{0}},
		Tmax:             10,
	})
	if err == nil {
		t.Errorf(ExpectedErrorWhileError, "running FastNonMarkovSIR with a nil ProcessTrans")
	}
}

func TestFastNonMarkovSIR_DefaultProcessTrans_MatchesFastSIR(t *testing.T) {
	g := PathGraph(2)
	seed := int64(11)
	tau, gamma := 1e6, 1.0

	want, err := FastSIR(g, tau, gamma, SIROptions{
		InitialCondition: InitialCondition{InitialInfecteds: []int{0}},
		Tmax:             10,
		Source:           NewSource(seed),
	})
	if err != nil {
		t.Fatalf(UnexpectedErrorWhileError, "running the reference FastSIR", err)
	}

	got, err := FastNonMarkovSIR(g, NonMarkovSIROptions{
		InitialCondition: InitialCondition{InitialInfecteds: []int{0}},
		ProcessTrans:     DefaultProcessTrans(tau, gamma),
		Tmax:             10,
		Source:           NewSource(seed),
	})
	if err != nil {
		t.Fatalf(UnexpectedErrorWhileError, "running FastNonMarkovSIR with DefaultProcessTrans", err)
	}

	if got.Trajectory.Len() != want.Trajectory.Len() {
		t.Errorf(UnequalIntParameterError, "trajectory length between FastSIR and an equivalent FastNonMarkovSIR run", want.Trajectory.Len(), got.Trajectory.Len())
	}
	for i := range want.Trajectory.Times {
		if got.Trajectory.S[i] != want.Trajectory.S[i] || got.Trajectory.I[i] != want.Trajectory.I[i] || got.Trajectory.R[i] != want.Trajectory.R[i] {
			t.Errorf(UnexpectedErrorWhileError, "matching compartment counts between the two runs", got.Trajectory)
			break
		}
	}
}

func TestFastNonMarkovSIR_PreSeededQueue_StartsInfectedImmediately(t *testing.T) {
	g := PathGraph(2)
	queue := NewEventQueue(10)
	queue.Add(Event{Time: 5, Kind: EventRec, Target: 0})
	res, err := FastNonMarkovSIR(g, NonMarkovSIROptions{
		InitialCondition: InitialCondition{InitialInfecteds: []int{0}},
		ProcessTrans:     DefaultProcessTrans(1.0, 1.0),
		PreSeededQueue:   queue,
		Tmax:             10,
		Source:           NewSource(1),
	})
	if err != nil {
		t.Fatalf(UnexpectedErrorWhileError, "running FastNonMarkovSIR with a pre-seeded queue", err)
	}
	if res.Trajectory.I[0] != 1 {
		t.Errorf(UnequalIntParameterError, "initial infected count under a pre-seeded queue", 1, res.Trajectory.I[0])
	}
}
