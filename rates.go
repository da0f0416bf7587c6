package contagiongo

// RateFunctions resolves per-edge transmission rate and per-node recovery
// rate from base rates plus optional weight attribute names, per spec.md
// section 4.1. The resolved functions are passed as first-class callables
// into the engines (TransRate, RecRate) so non-Markovian extensions may
// replace them, mirroring the teacher's TransmissionModel interface
// (transmission_model.go) pattern of swapping rate-producing strategies
// behind a narrow function-typed seam.
type RateFunctions struct {
	g                   Graph
	tau                 float64
	gamma               float64
	transmissionWeight  string
	recoveryWeight      string
	hasTransmissionAttr bool
	hasRecoveryAttr     bool
}

// NewRateFunctions builds a RateFunctions over graph g with base
// transmission rate tau and base recovery rate gamma. transmissionWeight
// and recoveryWeight name optional edge/node attributes; pass "" to mean
// "no per-edge/per-node weighting, use the base rate directly".
func NewRateFunctions(g Graph, tau, gamma float64, transmissionWeight, recoveryWeight string) *RateFunctions {
	return &RateFunctions{
		g:                   g,
		tau:                 tau,
		gamma:               gamma,
		transmissionWeight:  transmissionWeight,
		recoveryWeight:      recoveryWeight,
		hasTransmissionAttr: transmissionWeight != "",
		hasRecoveryAttr:     recoveryWeight != "",
	}
}

// IsWeighted reports whether either a transmission or recovery weight
// attribute name was configured. Gillespie entry points reject weighted
// configurations (spec.md section 6, "rejects weights").
func (r *RateFunctions) IsWeighted() bool {
	return r.hasTransmissionAttr || r.hasRecoveryAttr
}

// TransRate returns tau * edge_attr(u,v,transmissionWeight) if a
// transmission weight attribute name was given, else tau.
func (r *RateFunctions) TransRate(u, v int) float64 {
	if !r.hasTransmissionAttr {
		return r.tau
	}
	w, ok := r.g.EdgeAttr(u, v, r.transmissionWeight)
	if !ok {
		return r.tau
	}
	return r.tau * w
}

// RecRate returns gamma * node_attr(u,recoveryWeight) if a recovery weight
// attribute name was given, else gamma.
func (r *RateFunctions) RecRate(u int) float64 {
	if !r.hasRecoveryAttr {
		return r.gamma
	}
	w, ok := r.g.NodeAttr(u, r.recoveryWeight)
	if !ok {
		return r.gamma
	}
	return r.gamma * w
}
