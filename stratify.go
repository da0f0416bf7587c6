package contagiongo

import "sort"

// RiskStratification partitions susceptible nodes by number of infected
// neighbors, for the unweighted Gillespie engine, per spec.md section 4.
// Invariants (spec.md section 3, RiskStratification): a susceptible node
// appears in exactly one riskGroup[k] where k equals its infected-neighbor
// count, or in none if k=0; infected and recovered nodes appear in no risk
// group.
type RiskStratification struct {
	infectedNeighborCount map[int]int
	riskGroup             map[int]*IndexedSet
}

// NewRiskStratification creates an empty RiskStratification.
func NewRiskStratification() *RiskStratification {
	return &RiskStratification{
		infectedNeighborCount: make(map[int]int),
		riskGroup:             make(map[int]*IndexedSet),
	}
}

// Count returns the current infected-neighbor count of susceptible node v
// (0 if v has never been tracked).
func (rs *RiskStratification) Count(v int) int {
	return rs.infectedNeighborCount[v]
}

// groupFor returns the IndexedSet for stratum k, creating it on first use.
func (rs *RiskStratification) groupFor(k int) *IndexedSet {
	g, ok := rs.riskGroup[k]
	if !ok {
		g = NewIndexedSet()
		rs.riskGroup[k] = g
	}
	return g
}

// Init registers v as a susceptible node with the given initial
// infected-neighbor count, placing it in the matching stratum (or no
// stratum, if count is 0).
func (rs *RiskStratification) Init(v, count int) {
	rs.infectedNeighborCount[v] = count
	if count > 0 {
		rs.groupFor(count).Add(v)
	}
}

// Increment moves susceptible node v from stratum k to stratum k+1, used
// when one of v's neighbors becomes infected.
func (rs *RiskStratification) Increment(v int) {
	k := rs.infectedNeighborCount[v]
	if k > 0 {
		rs.groupFor(k).Remove(v)
	}
	rs.infectedNeighborCount[v] = k + 1
	rs.groupFor(k + 1).Add(v)
}

// Decrement moves susceptible node v from stratum k to stratum k-1, used
// when one of v's neighbors recovers (SIR) or returns to susceptible
// (SIS). If the new count is 0, v is removed from all strata.
func (rs *RiskStratification) Decrement(v int) {
	k := rs.infectedNeighborCount[v]
	if k <= 0 {
		return
	}
	rs.groupFor(k).Remove(v)
	rs.infectedNeighborCount[v] = k - 1
	if k-1 > 0 {
		rs.groupFor(k - 1).Add(v)
	}
}

// Remove takes node v out of the stratification entirely (it has become
// infected or recovered and is no longer a tracked susceptible).
func (rs *RiskStratification) Remove(v int) {
	k := rs.infectedNeighborCount[v]
	if k > 0 {
		rs.groupFor(k).Remove(v)
	}
	delete(rs.infectedNeighborCount, v)
}

// TotalWeightedSize returns sum_k k*|riskGroup[k]|, the quantity spec.md
// section 3 invariant 5 requires to equal the number of (infected,
// susceptible) adjacent pairs in the graph, and which section 4.6 uses as
// the unnormalized infection rate.
func (rs *RiskStratification) TotalWeightedSize() float64 {
	total := 0.0
	for k, g := range rs.riskGroup {
		total += float64(k) * float64(g.Len())
	}
	return total
}

// sortedStrata returns the populated stratum keys in ascending order, so
// that the CDF scan in SampleStratum is deterministic given a fixed RNG
// seed (spec.md section 5) instead of depending on Go's randomized map
// iteration order.
func (rs *RiskStratification) sortedStrata() []int {
	keys := make([]int, 0, len(rs.riskGroup))
	for k := range rs.riskGroup {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// SampleStratum selects a stratum k with probability proportional to
// k*|riskGroup[k]| via a linear CDF scan with strict r < cumulative
// comparisons, matching standard direct-method sampling (spec.md section
// 4.6). r must be drawn uniformly from [0, TotalWeightedSize()). Panics if
// no stratum can be selected, which indicates r was out of range.
func (rs *RiskStratification) SampleStratum(r float64) int {
	cumulative := 0.0
	for _, k := range rs.sortedStrata() {
		g := rs.riskGroup[k]
		if g.Len() == 0 {
			continue
		}
		cumulative += float64(k) * float64(g.Len())
		if r < cumulative {
			return k
		}
	}
	panic("contagiongo: SampleStratum could not resolve r against the risk-group CDF")
}

// Stratum returns the IndexedSet for stratum k without creating it if
// absent.
func (rs *RiskStratification) Stratum(k int) *IndexedSet {
	return rs.riskGroup[k]
}
