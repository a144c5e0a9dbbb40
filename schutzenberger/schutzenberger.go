package schutzenberger

import (
	"context"

	"github.com/katalvlaran/stephen/presentation"
	"github.com/katalvlaran/stephen/wordgraph"
)

// SchutzenbergerGraph embeds *wordgraph.WordGraph, inheriting its full
// public surface (Target, Path, Run, EqualTo, ...) and adding the
// involutive-inverse invariant via an OnCreate hook installed at
// construction, before the seed word's root path is walked.
type SchutzenbergerGraph struct {
	*wordgraph.WordGraph
}

// New constructs a SchutzenbergerGraph over an inverse-monoid presentation
// and representative seed. Returns ErrRequiresInverseMonoid if presn is not
// an inverse-monoid presentation with its alphabet already set.
func New(presn *presentation.Presentation, seed string) (*SchutzenbergerGraph, error) {
	if !presn.IsInverse() || presn.AlphabetSize() == 0 {
		return nil, ErrRequiresInverseMonoid
	}

	g := wordgraph.NewEmpty(presn)
	sg := &SchutzenbergerGraph{WordGraph: g}
	g.SetOnCreate(sg.maintainBackEdge)

	if err := g.Seed(seed); err != nil {
		return nil, err
	}

	return sg, nil
}

// maintainBackEdge installs the involutive back-edge child --a'--> parent
// whenever Target creates a fresh forward edge parent --a--> child. If a
// back-edge already exists and disagrees, it panics with
// GraphInconsistency: this can only happen if a caller has already
// corrupted the graph upstream, never from well-formed input.
func (sg *SchutzenbergerGraph) maintainBackEdge(parent, letter, child int) {
	inv, err := sg.Presentation().Inverse(letter)
	if err != nil {
		// Unreachable: New rejects presentations without an inverse map.
		panic(GraphInconsistency{Node: child, Label: letter, Want: parent, Got: -1})
	}

	if existing, ok := sg.EdgeAt(child, inv); ok && existing != parent {
		panic(GraphInconsistency{Node: child, Label: inv, Want: parent, Got: existing})
	}
	sg.SetEdge(child, inv, parent)
}

// Accepts runs the graph to saturation and reports whether word labels a
// path from node 0 ending at the same node as the representative used at
// construction. This is a one-way test: stephen.Stephen.EqualTo decides
// equality of two words by checking acceptance in both directions.
func (sg *SchutzenbergerGraph) Accepts(ctx context.Context, word string, opts ...wordgraph.RunOption) (bool, error) {
	return sg.EqualTo(ctx, word, opts...)
}

// Contains runs the graph to saturation and reports whether word labels any
// defined path from node 0, regardless of where it ends. Two words are
// R-related in the inverse monoid iff each word's graph Contains the other's
// representative (see stephen.Stephen's orbit explorer).
func (sg *SchutzenbergerGraph) Contains(ctx context.Context, word string, opts ...wordgraph.RunOption) (bool, error) {
	if err := sg.Run(ctx, opts...); err != nil {
		return false, err
	}

	w, err := sg.Presentation().Word(word)
	if err != nil {
		return false, err
	}

	_, ok := sg.Path(0, w)

	return ok, nil
}

// LocalNormalForm returns a root-BFS label for the node reached by word:
// the first label ever attached to that node while exploring edges in
// ascending generator-index order from node 0, breadth-first. It reports
// false if word does not label a defined path from node 0.
//
// The full, orbit-aware normal form used across an entire monoid is
// cayley.NormalForm; this is its single-graph counterpart.
func (sg *SchutzenbergerGraph) LocalNormalForm(ctx context.Context, word string, opts ...wordgraph.RunOption) (string, bool, error) {
	if err := sg.Run(ctx, opts...); err != nil {
		return "", false, err
	}

	w, err := sg.Presentation().Word(word)
	if err != nil {
		return "", false, err
	}

	target, ok := sg.Path(0, w)
	if !ok {
		return "", false, nil
	}

	label, ok := sg.rootLabels()[target]

	return label, ok, nil
}

// NodeLabels runs the graph to saturation and returns, for every active
// node, the label by which rootLabels first reaches it: the shortlex-style
// breadth-first label used internally by LocalNormalForm, exposed so
// downstream Cayley-graph derivation can translate between a node's
// identity and the word that reaches it.
func (sg *SchutzenbergerGraph) NodeLabels(ctx context.Context, opts ...wordgraph.RunOption) (map[int]string, error) {
	if err := sg.Run(ctx, opts...); err != nil {
		return nil, err
	}

	return sg.rootLabels(), nil
}

// rootLabels performs a breadth-first walk from node 0, exploring each
// node's outgoing edges in ascending label order, and records the label
// string by which each node is first reached.
func (sg *SchutzenbergerGraph) rootLabels() map[int]string {
	type step struct{ parent, letter, child int }

	n := sg.Presentation().AlphabetSize()
	labels := map[int]string{0: ""}
	queue := make([]step, 0, n)
	for letter := 0; letter < n; letter++ {
		if child, ok := sg.EdgeAt(0, letter); ok {
			queue = append(queue, step{0, letter, child})
		}
	}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if _, seen := labels[cur.child]; seen {
			continue
		}
		c, _ := sg.Presentation().Char(cur.letter)
		labels[cur.child] = labels[cur.parent] + string(c)

		for letter := 0; letter < n; letter++ {
			if grandchild, ok := sg.EdgeAt(cur.child, letter); ok {
				if _, seen := labels[grandchild]; !seen {
					queue = append(queue, step{cur.child, letter, grandchild})
				}
			}
		}
	}

	return labels
}
