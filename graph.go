package contagiongo

import (
	"bytes"
	"fmt"
	"sort"
)

// Graph describes a read-only host population connected together as a
// network, exposing the contract the simulation engines need: node
// enumeration, neighbor enumeration, node/edge attribute lookup, and
// order/size queries. This generalizes the teacher's HostNetwork interface
// (network.go), which spoke only of unweighted/weighted connections between
// integer host IDs, into the attribute-lookup contract spec.md section 6
// requires for RateFunctions.
type Graph interface {
	// Order returns the total number of nodes in the graph.
	Order() int
	// Nodes returns every node identifier, in a fixed deterministic order.
	Nodes() []int
	// HasNode reports whether the given identifier is a node of the graph.
	HasNode(id int) bool
	// Neighbors retrieves the unordered list of neighbors of id.
	Neighbors(id int) []int
	// EdgeAttr looks up a named numeric attribute on edge (u,v). The second
	// return value is false if the edge or the attribute is absent.
	EdgeAttr(u, v int, name string) (float64, bool)
	// NodeAttr looks up a named numeric attribute on node u. The second
	// return value is false if the node or the attribute is absent.
	NodeAttr(u int, name string) (float64, bool)
}

// AdjacencyGraph is a 2D map that represents connections between nodes
// using integer identifiers as index, generalizing the teacher's
// adjacencyMatrix type. Edge weights double as the default edge attribute
// namespace; node attributes are stored in a side map so a graph can carry
// both a transmission_weight edge attribute and a recovery_weight node
// attribute simultaneously, as spec.md section 4.1 requires.
type AdjacencyGraph struct {
	adj        map[int]map[int]float64
	edgeAttrs  map[int]map[int]map[string]float64
	nodeAttrs  map[int]map[string]float64
	nodeExists map[int]bool
}

// NewAdjacencyGraph creates an empty AdjacencyGraph.
func NewAdjacencyGraph() *AdjacencyGraph {
	return &AdjacencyGraph{
		adj:        make(map[int]map[int]float64),
		edgeAttrs:  make(map[int]map[int]map[string]float64),
		nodeAttrs:  make(map[int]map[string]float64),
		nodeExists: make(map[int]bool),
	}
}

// Order returns the total number of nodes in the graph.
func (g *AdjacencyGraph) Order() int {
	return len(g.nodeExists)
}

// Nodes returns every node identifier in ascending order.
func (g *AdjacencyGraph) Nodes() []int {
	nodes := make([]int, 0, len(g.nodeExists))
	for id := range g.nodeExists {
		nodes = append(nodes, id)
	}
	sort.Ints(nodes)
	return nodes
}

// HasNode reports whether id is a node of the graph.
func (g *AdjacencyGraph) HasNode(id int) bool {
	return g.nodeExists[id]
}

// Neighbors retrieves the neighbors of id from the adjacency map, in
// ascending order, so that the order of random draws made per neighbor does
// not depend on Go's randomized map iteration.
func (g *AdjacencyGraph) Neighbors(id int) (neighbors []int) {
	for j := range g.adj[id] {
		neighbors = append(neighbors, j)
	}
	sort.Ints(neighbors)
	return
}

// EdgeAttr looks up a named numeric attribute on edge (u,v). The edge
// weight itself is always available under the name "weight".
func (g *AdjacencyGraph) EdgeAttr(u, v int, name string) (float64, bool) {
	if !g.ConnectionExists(u, v) {
		return 0, false
	}
	if name == "weight" {
		return g.adj[u][v], true
	}
	attrs, ok := g.edgeAttrs[u][v]
	if !ok {
		return 0, false
	}
	val, ok := attrs[name]
	return val, ok
}

// NodeAttr looks up a named numeric attribute on node u.
func (g *AdjacencyGraph) NodeAttr(u int, name string) (float64, bool) {
	attrs, ok := g.nodeAttrs[u]
	if !ok {
		return 0, false
	}
	val, ok := attrs[name]
	return val, ok
}

// SetNodeAttr assigns a named numeric attribute to node u, registering u as
// a node of the graph if it was not already present.
func (g *AdjacencyGraph) SetNodeAttr(u int, name string, value float64) {
	g.nodeExists[u] = true
	if g.nodeAttrs[u] == nil {
		g.nodeAttrs[u] = make(map[string]float64)
	}
	g.nodeAttrs[u][name] = value
}

// SetEdgeAttr assigns a named numeric attribute to edge (u,v). The edge
// must already exist.
func (g *AdjacencyGraph) SetEdgeAttr(u, v int, name string, value float64) error {
	if !g.ConnectionExists(u, v) {
		return fmt.Errorf("connection (%d,%d) does not exist", u, v)
	}
	if g.edgeAttrs[u] == nil {
		g.edgeAttrs[u] = make(map[int]map[string]float64)
	}
	if g.edgeAttrs[u][v] == nil {
		g.edgeAttrs[u][v] = make(map[string]float64)
	}
	g.edgeAttrs[u][v][name] = value
	return nil
}

// ConnectionExists checks if a connection u-v exists in the adjacency map.
func (g *AdjacencyGraph) ConnectionExists(u, v int) bool {
	if _, exists := g.adj[u]; !exists {
		return false
	}
	_, exists := g.adj[u][v]
	return exists
}

// AddConnection adds a one-way unweighted (weight 1) connection u-v.
func (g *AdjacencyGraph) AddConnection(u, v int) error {
	return g.AddWeightedConnection(u, v, 1)
}

// AddWeightedConnection adds a one-way connection u-v with weight w.
// Returns an error if the connection already exists.
func (g *AdjacencyGraph) AddWeightedConnection(u, v int, w float64) error {
	if g.ConnectionExists(u, v) {
		return fmt.Errorf("connection (%d,%d): %f already exists", u, v, g.adj[u][v])
	}
	g.nodeExists[u] = true
	g.nodeExists[v] = true
	if g.adj[u] == nil {
		g.adj[u] = make(map[int]float64)
	}
	g.adj[u][v] = w
	return nil
}

// AddBiConnection adds a two-way reciprocal unweighted connection u-v and
// v-u.
func (g *AdjacencyGraph) AddBiConnection(u, v int) error {
	return g.AddWeightedBiConnection(u, v, 1)
}

// AddWeightedBiConnection adds a two-way reciprocal connection u-v and v-u
// with weight w. u and v must differ: self-loops must go through
// AddConnection directly, since most of the simulation core (Gillespie SIS
// in particular) requires the graph to be self-loop free.
func (g *AdjacencyGraph) AddWeightedBiConnection(u, v int, w float64) error {
	if u == v {
		return fmt.Errorf("start and end nodes are the same")
	}
	if g.ConnectionExists(u, v) {
		return fmt.Errorf("connection (%d,%d): %f already exists", u, v, g.adj[u][v])
	}
	if g.ConnectionExists(v, u) {
		return fmt.Errorf("connection (%d,%d): %f already exists", v, u, g.adj[v][u])
	}
	g.AddWeightedConnection(u, v, w)
	g.AddWeightedConnection(v, u, w)
	return nil
}

// HasSelfLoop reports whether any node in the graph has an edge to itself.
func (g *AdjacencyGraph) HasSelfLoop() bool {
	for u, nbrs := range g.adj {
		if _, ok := nbrs[u]; ok {
			return true
		}
	}
	return false
}

// Copy returns a new, independent deep copy of the graph. The simulation
// engines never mutate the graph they are given (spec.md section 5), but
// the percolation estimator builds derived graphs from a source graph's
// node set and benefits from an explicit, cheap clone primitive, as the
// teacher's adjacencyMatrix.Copy does.
func (g *AdjacencyGraph) Copy() *AdjacencyGraph {
	n := NewAdjacencyGraph()
	for id := range g.nodeExists {
		n.nodeExists[id] = true
	}
	for u, nbrs := range g.adj {
		n.adj[u] = make(map[int]float64, len(nbrs))
		for v, w := range nbrs {
			n.adj[u][v] = w
		}
	}
	for u, attrs := range g.nodeAttrs {
		n.nodeAttrs[u] = make(map[string]float64, len(attrs))
		for k, v := range attrs {
			n.nodeAttrs[u][k] = v
		}
	}
	for u, byV := range g.edgeAttrs {
		n.edgeAttrs[u] = make(map[int]map[string]float64, len(byV))
		for v, attrs := range byV {
			cp := make(map[string]float64, len(attrs))
			for k, val := range attrs {
				cp[k] = val
			}
			n.edgeAttrs[u][v] = cp
		}
	}
	return n
}

// Dump serializes the adjacency map into a string stored as a byteslice,
// one "u,v: weight" line per directed edge.
func (g *AdjacencyGraph) Dump() []byte {
	b := new(bytes.Buffer)
	for u, nbrs := range g.adj {
		for v, weight := range nbrs {
			fmt.Fprintf(b, "%d,%d: %f\n", u, v, weight)
		}
	}
	return b.Bytes()
}

// PathGraph builds an undirected path graph 0-1-2-...-(n-1), used
// throughout the test suite and matching the teacher's habit of small
// hand-built fixture networks (mocks.go).
func PathGraph(n int) *AdjacencyGraph {
	g := NewAdjacencyGraph()
	if n == 1 {
		g.nodeExists[0] = true
		return g
	}
	for i := 0; i < n-1; i++ {
		g.AddBiConnection(i, i+1)
	}
	return g
}

// CycleGraph builds an undirected cycle graph 0-1-2-...-(n-1)-0.
func CycleGraph(n int) *AdjacencyGraph {
	g := PathGraph(n)
	if n >= 3 {
		g.AddBiConnection(n-1, 0)
	}
	return g
}
