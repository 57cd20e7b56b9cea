package cooccur

import (
	"sort"

	"github.com/grailbio/base/errors"
	"github.com/katalvlaran/lvlath/core"
)

// Net is the co-occurrence network: an undirected, simple, weighted graph
// whose vertices are substitutions and whose edge weights count the input
// sequences in which both endpoint substitutions were observed together.
// Vertices are keyed by Substitution.Label, which is collision-free, and
// interned back to their triples for ordered output.
type Net struct {
	g    *core.Graph
	subs map[string]Substitution
}

// NewNet returns an empty network.
func NewNet() *Net {
	return &Net{
		g:    core.NewGraph(core.WithWeighted()),
		subs: make(map[string]Substitution),
	}
}

// Observe folds one sequence's substitution list into the network. Every
// substitution becomes a vertex; every unordered pair of distinct
// substitutions gains one unit of edge weight, the edge being created at
// weight 1 when absent. A list of length k contributes k*(k-1)/2 pair
// increments; length 0 or 1 contributes vertices only. Substitutions in
// one list always sit at distinct positions, so no pair can repeat within
// a call and no self-loop can arise.
func (n *Net) Observe(subs []Substitution) error {
	for _, s := range subs {
		if err := n.addVertex(s); err != nil {
			return err
		}
	}
	for i := 0; i < len(subs); i++ {
		for j := i + 1; j < len(subs); j++ {
			if err := n.bump(subs[i], subs[j], 1); err != nil {
				return err
			}
		}
	}
	return nil
}

// Merge folds other into n, unioning vertices and summing edge weights.
// Merging partial networks built over disjoint sequence subsets yields the
// same network as observing every subset sequentially.
func (n *Net) Merge(other *Net) error {
	for _, id := range other.g.Vertices() {
		if err := n.addVertex(other.subs[id]); err != nil {
			return err
		}
	}
	for _, e := range other.g.Edges() {
		if err := n.bump(other.subs[e.From], other.subs[e.To], e.Weight); err != nil {
			return err
		}
	}
	return nil
}

func (n *Net) addVertex(s Substitution) error {
	id := s.Label()
	if err := n.g.AddVertex(id); err != nil {
		return errors.E(err, "adding network node:", id)
	}
	n.subs[id] = s
	return nil
}

// bump adds delta to the a--b edge weight, creating the edge when absent.
func (n *Net) bump(a, b Substitution, delta int64) error {
	ida, idb := a.Label(), b.Label()
	if !n.g.HasEdge(ida, idb) {
		if _, err := n.g.AddEdge(ida, idb, delta); err != nil {
			return errors.E(err, "adding network edge:", ida, idb)
		}
		return nil
	}
	edges, err := n.g.Neighbors(ida)
	if err != nil {
		return errors.E(err, "looking up network edges:", ida)
	}
	for _, e := range edges {
		if e.From == idb || e.To == idb {
			e.Weight += delta
			return nil
		}
	}
	return errors.New("network edge vanished during update: " + ida + " -- " + idb)
}

// PruneEdges removes edges whose support is below minSupport or whose
// frequency, weight over nSeqs, is below minFreq. Vertices stay in place
// even when stranded; PruneIsolated sweeps them afterwards. Returns the
// number of edges removed.
func (n *Net) PruneEdges(minSupport int, minFreq float64, nSeqs int) int {
	before := n.g.EdgeCount()
	n.g.FilterEdges(func(e *core.Edge) bool {
		if e.Weight < int64(minSupport) {
			return false
		}
		return float64(e.Weight)/float64(nSeqs) >= minFreq
	})
	return before - n.g.EdgeCount()
}

// PruneIsolated removes every vertex with no incident edges and returns
// the number removed. A second run directly after removes nothing.
func (n *Net) PruneIsolated() (int, error) {
	removed := 0
	for _, id := range n.g.Vertices() {
		edges, err := n.g.Neighbors(id)
		if err != nil {
			return removed, errors.E(err, "looking up network edges:", id)
		}
		if len(edges) > 0 {
			continue
		}
		if err := n.g.RemoveVertex(id); err != nil {
			return removed, errors.E(err, "removing network node:", id)
		}
		delete(n.subs, id)
		removed++
	}
	return removed, nil
}

// NodeCount returns the number of vertices.
func (n *Net) NodeCount() int { return n.g.VertexCount() }

// EdgeCount returns the number of edges.
func (n *Net) EdgeCount() int { return n.g.EdgeCount() }

// Weight returns the edge weight between two substitutions, or 0 when no
// edge exists.
func (n *Net) Weight(a, b Substitution) int64 {
	ida, idb := a.Label(), b.Label()
	if !n.g.HasEdge(ida, idb) {
		return 0
	}
	edges, err := n.g.Neighbors(ida)
	if err != nil {
		return 0
	}
	for _, e := range edges {
		if e.From == idb || e.To == idb {
			return e.Weight
		}
	}
	return 0
}

// Nodes returns the network's substitutions ordered by position, then
// ancestral residue, then derived residue.
func (n *Net) Nodes() []Substitution {
	nodes := make([]Substitution, 0, len(n.subs))
	for _, s := range n.subs {
		nodes = append(nodes, s)
	}
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].Less(nodes[j]) })
	return nodes
}

// A WeightedEdge is one undirected edge with its endpoints in canonical
// order, A before B.
type WeightedEdge struct {
	A, B   Substitution
	Weight int64
}

// WeightedEdges returns the network's edges with canonically ordered
// endpoints, sorted by endpoint A then endpoint B.
func (n *Net) WeightedEdges() []WeightedEdge {
	edges := n.g.Edges()
	out := make([]WeightedEdge, 0, len(edges))
	for _, e := range edges {
		a, b := n.subs[e.From], n.subs[e.To]
		if b.Less(a) {
			a, b = b, a
		}
		out = append(out, WeightedEdge{A: a, B: b, Weight: e.Weight})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].A != out[j].A {
			return out[i].A.Less(out[j].A)
		}
		return out[i].B.Less(out[j].B)
	})
	return out
}
