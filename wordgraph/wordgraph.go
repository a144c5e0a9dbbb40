// Package wordgraph: saturation engine (tc1/tc3) and path queries.
//
// Iteration order is normative: Run scans active nodes in ascending id and
// relations in insertion order, acting on the first (leftmost/smallest)
// violation found; kappa is a LIFO stack. These choices determine the
// saturated graph's exact shape but not whether it terminates.
package wordgraph

import (
	"context"

	"github.com/katalvlaran/stephen/internal/budget"
	"github.com/katalvlaran/stephen/presentation"
)

// Target returns the target node of the edge labelled letter from node,
// allocating a fresh node and edge if none exists yet (tc1). If a node is
// created, the OnCreate hook (if set) is invoked with (node, letter, child).
func (g *WordGraph) Target(node, letter int) int {
	if g.edges[node][letter] == absentTarget {
		child := g.newNode()
		g.edges[node][letter] = child
		if g.onCreate != nil {
			g.onCreate(node, letter, child)
		}
	}

	return g.edges[node][letter]
}

// EdgeAt returns the single-letter target of (node, letter) and whether
// that edge exists.
func (g *WordGraph) EdgeAt(node, letter int) (int, bool) {
	t := g.edges[node][letter]
	if t == absentTarget {
		return 0, false
	}

	return t, true
}

// SetEdge forcibly writes edges[node][letter] = target without allocating a
// node or invoking OnCreate. It exists for SchutzenbergerGraph to install
// involutive back-edges directly; ordinary callers should use Target.
func (g *WordGraph) SetEdge(node, letter, target int) {
	g.edges[node][letter] = target
}

// LastNodeOnPath returns the endpoint reached from root along the longest
// walkable prefix of word, and the length of that prefix.
func (g *WordGraph) LastNodeOnPath(root int, word []int) (node, index int) {
	node = root
	for i, letter := range word {
		t, ok := g.EdgeAt(node, letter)
		if !ok {
			return node, i
		}
		node = t
	}

	return node, len(word)
}

// Path returns the endpoint of the path from node labelled by the whole of
// word, and true, if that path is fully defined; otherwise (0, false).
func (g *WordGraph) Path(node int, word []int) (int, bool) {
	end, idx := g.LastNodeOnPath(node, word)
	if idx != len(word) {
		return 0, false
	}

	return end, true
}

// merge coalesces node2 into node1 (tc3), always retaining the smaller id.
// Any edges of the retired node that conflict with the surviving node's
// edges are queued into kappa rather than resolved immediately.
func (g *WordGraph) merge(node1, node2 int) {
	if node1 == node2 {
		return
	}
	if node1 > node2 {
		node1, node2 = node2, node1
	}

	n := g.presn.AlphabetSize()
	for letter := 0; letter < n; letter++ {
		t2, ok2 := g.EdgeAt(node2, letter)
		if !ok2 {
			continue
		}
		if t1, ok1 := g.EdgeAt(node1, letter); ok1 {
			g.kappa = append(g.kappa, [2]int{t1, t2})
		} else {
			g.edges[node1][letter] = t2
		}
	}

	for _, node := range g.ActiveNodes() {
		for letter := 0; letter < n; letter++ {
			if t, ok := g.EdgeAt(node, letter); ok && t == node2 {
				g.edges[node][letter] = node1
			}
		}
	}

	for i := range g.kappa {
		if g.kappa[i][0] == node2 {
			g.kappa[i][0] = node1
		}
		if g.kappa[i][1] == node2 {
			g.kappa[i][1] = node1
		}
	}

	g.retire(node2)
}

// elementaryExpansion performs an elementary expansion at node using the
// relation (u, v): whichever of path(node,u)/path(node,v) is defined
// witnesses a target; the other word is walked as far as possible from node
// and completed into fresh nodes via Target, and the two endpoints are
// queued for merging. Exactly one fallback swap is ever needed, so this is
// an explicit branch rather than recursion.
func (g *WordGraph) elementaryExpansion(node int, u, v []int) {
	witness, wordB := u, v
	target, ok := g.Path(node, witness)
	if !ok {
		witness, wordB = v, u
		target, ok = g.Path(node, witness)
		if !ok {
			// Neither side is witnessed at node; run's selection guarantees
			// this cannot happen for a violation it chose to act on.
			return
		}
	}

	m, i := g.LastNodeOnPath(node, wordB)
	for _, letter := range wordB[i:] {
		m = g.Target(m, letter)
	}
	g.kappa = append(g.kappa, [2]int{m, target})
}

// firstViolation scans active nodes in ascending id and relations in
// insertion order, returning the first (node, relation) pair for which
// path(node,u) != path(node,v).
func (g *WordGraph) firstViolation() (int, presentation.Relation, bool) {
	rels := g.presn.Relations()
	for _, node := range g.ActiveNodes() {
		for _, rel := range rels {
			u, uok := g.Path(node, rel.U)
			v, vok := g.Path(node, rel.V)
			if uok && vok && u == v {
				continue
			}
			if !uok && !vok {
				continue
			}
			return node, rel, true
		}
	}

	return 0, presentation.Relation{}, false
}

// Run saturates the graph: it repeatedly finds the first relation violation,
// performs an elementary expansion, and drains the pending-merge stack,
// until no active node violates any relation. Run is idempotent: a
// saturated graph's subsequent Run calls are no-ops.
//
// ctx cancellation and an optional WithStepBudget are honored between
// rounds; on either firing, Run returns the corresponding error and leaves
// the graph in a consistent, resumable state.
func (g *WordGraph) Run(ctx context.Context, opts ...RunOption) error {
	cfg := defaultRunConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	tracker := budget.New(ctx, cfg.maxSteps)

	for {
		node, rel, found := g.firstViolation()
		if !found {
			return nil
		}
		if err := tracker.Step(); err != nil {
			return err
		}

		g.elementaryExpansion(node, rel.U, rel.V)
		for len(g.kappa) > 0 {
			pair := g.kappa[len(g.kappa)-1]
			g.kappa = g.kappa[:len(g.kappa)-1]
			g.merge(pair[0], pair[1])
		}
	}
}

// EqualTo runs the graph to saturation and reports whether word represents
// the same element of the monoid as the representative used at construction.
func (g *WordGraph) EqualTo(ctx context.Context, word string, opts ...RunOption) (bool, error) {
	if err := g.Run(ctx, opts...); err != nil {
		return false, err
	}

	w, err := g.presn.Word(word)
	if err != nil {
		return false, err
	}

	a, aok := g.Path(0, w)
	b, bok := g.Path(0, g.rep)

	return aok && bok && a == b, nil
}
