package wordgraph

import (
	"github.com/katalvlaran/stephen/presentation"
)

// absentTarget marks an absent outgoing edge in a node's row.
const absentTarget = -1

// WordGraph is a deterministic labelled multigraph over a fixed
// presentation: edges[node][letter] holds the target node id, or
// absentTarget if no such edge has been created yet.
//
// WordGraph is mutable until Run completes; it is not safe for concurrent
// use by multiple goroutines.
type WordGraph struct {
	presn  *presentation.Presentation
	edges  [][]int // dense edge table: edges[node][letter] -> node id or absentTarget
	active []bool  // active[node] == true while node is in the active-node set
	live   int     // count of currently-active nodes

	kappa [][2]int // pending-merge stack (LIFO); see merge

	rep []int // seed word, as letter indices; set once by Seed

	// onCreate, if non-nil, is invoked immediately after Target allocates a
	// fresh node, with (parent, letter, child). SchutzenbergerGraph installs
	// this hook to maintain the involutive-inverse back-edge invariant on
	// every node creation, including the ones performed while walking the
	// seed word during construction.
	onCreate func(parent, letter, child int)
}

// NewEmpty constructs a single-node WordGraph (just the root, node 0) over
// presn, with no seed word walked yet. Most callers want New; NewEmpty
// exists so that SchutzenbergerGraph can install its OnCreate hook before
// Seed walks the representative word, so that the root path itself also
// receives back-edges.
func NewEmpty(presn *presentation.Presentation) *WordGraph {
	g := &WordGraph{presn: presn}
	g.newNode()

	return g
}

// New constructs a WordGraph over presn and walks seed from node 0,
// establishing that the seed word labels a defined path from node 0.
func New(presn *presentation.Presentation, seed string) (*WordGraph, error) {
	g := NewEmpty(presn)
	if err := g.Seed(seed); err != nil {
		return nil, err
	}

	return g, nil
}

// Seed walks word from node 0 (creating nodes/edges as needed via Target)
// and records it as the representative for EqualTo. It must be called
// exactly once, before Run.
func (g *WordGraph) Seed(word string) error {
	rep, err := g.presn.Word(word)
	if err != nil {
		return err
	}

	node := 0
	for _, letter := range rep {
		node = g.Target(node, letter)
	}
	g.rep = rep

	return nil
}

// SetOnCreate installs the node-creation hook used by SchutzenbergerGraph.
func (g *WordGraph) SetOnCreate(hook func(parent, letter, child int)) {
	g.onCreate = hook
}

// Presentation returns the presentation this graph was built from.
func (g *WordGraph) Presentation() *presentation.Presentation {
	return g.presn
}

// Rep returns the seed word as letter indices. The returned slice aliases
// internal storage and MUST NOT be mutated.
func (g *WordGraph) Rep() []int {
	return g.rep
}

// NumberOfNodes returns the number of active nodes in the graph.
func (g *WordGraph) NumberOfNodes() int {
	return g.live
}

// ActiveNodes returns the active node ids in ascending order.
func (g *WordGraph) ActiveNodes() []int {
	out := make([]int, 0, g.live)
	for id, alive := range g.active {
		if alive {
			out = append(out, id)
		}
	}

	return out
}

// newNode allocates a fresh node with all-absent outgoing edges and adds it
// to the active set. Node identifiers are assigned sequentially and never
// reused.
func (g *WordGraph) newNode() int {
	id := len(g.edges)
	row := make([]int, g.presn.AlphabetSize())
	for i := range row {
		row[i] = absentTarget
	}
	g.edges = append(g.edges, row)
	g.active = append(g.active, true)
	g.live++

	return id
}

// retire removes id from the active-node set. Its row in the edge table is
// left untouched so stale kappa entries remain dereferenceable until merge
// rewrites them.
func (g *WordGraph) retire(id int) {
	if g.active[id] {
		g.active[id] = false
		g.live--
	}
}
