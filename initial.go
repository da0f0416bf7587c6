package contagiongo

import (
	"fmt"
	"math"
)

// InitialCondition bundles the two mutually exclusive ways of specifying
// how many (and which) nodes start infected, per spec.md section 6.
// Exactly one of InitialInfecteds or Rho may be set; ResolveInitialInfecteds
// enforces this before any state mutation, matching spec.md section 7's
// configuration-error propagation policy.
type InitialCondition struct {
	// InitialInfecteds, if non-nil, is the explicit set of initially
	// infected node identifiers. A single-element slice is the "single
	// node" case from spec.md section 6.
	InitialInfecteds []int
	// Rho, if > 0, is the fraction of nodes to infect initially; the
	// initial count is round(N*rho), using deterministic (not binomial)
	// rounding, matching EoN.simulation.py's default path (SPEC_FULL.md
	// section 9).
	Rho float64
}

// ResolveInitialInfecteds validates and materializes the initial infected
// set against graph g using src for any random choice it must make.
// Returns ErrConflictingInitialCondition if both InitialInfecteds and Rho
// are set. If neither is set, one node is chosen uniformly at random.
func ResolveInitialInfecteds(ic InitialCondition, g Graph, src *Source) ([]int, error) {
	// InitialInfecteds != nil distinguishes "explicitly supplied, possibly
	// empty" from "absent": a caller-supplied empty slice must short-circuit
	// to the trivial zero-length outbreak below, not fall through to the
	// "neither supplied" random-single-node default (spec.md section 8,
	// "Idempotent initial condition").
	haveList := ic.InitialInfecteds != nil
	haveRho := ic.Rho > 0
	if haveList && haveRho {
		return nil, ErrConflictingInitialCondition
	}
	if haveList {
		for _, n := range ic.InitialInfecteds {
			if !g.HasNode(n) {
				return nil, fmt.Errorf("initial infected node %d is not in the graph", n)
			}
		}
		return ic.InitialInfecteds, nil
	}
	nodes := g.Nodes()
	if haveRho {
		count := int(math.Round(float64(g.Order()) * ic.Rho))
		if count <= 0 {
			return nil, nil
		}
		if count >= len(nodes) {
			return append([]int(nil), nodes...), nil
		}
		shuffled := append([]int(nil), nodes...)
		src.shuffle(shuffled)
		return shuffled[:count], nil
	}
	// Neither supplied: choose one node uniformly at random.
	if len(nodes) == 0 {
		return nil, nil
	}
	return []int{nodes[src.Intn(len(nodes))]}, nil
}

// shuffle performs an in-place Fisher-Yates shuffle using the source's
// uniform draws, used only to pick a random subset of size count for the
// Rho initial-condition path above.
func (s *Source) shuffle(xs []int) {
	for i := len(xs) - 1; i > 0; i-- {
		j := s.Intn(i + 1)
		xs[i], xs[j] = xs[j], xs[i]
	}
}
