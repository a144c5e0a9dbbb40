package cayley

import (
	"context"

	"github.com/katalvlaran/stephen/stephen"
)

// LeftCayleyGraph builds the left Cayley digraph of a finished orbit
// explorer: one vertex per (R-class, local node) pair, flattened into a
// single range 0..size()-1 in orbit order. The edge labelled x from the
// vertex holding local node j of orbit[i] goes to the vertex, inside
// orbit[graph_lift[i][x]], reached by the word formed by prepending
// generator x to j's own root-label word — the same left-multiplication
// convention the orbit explorer itself uses to grow.
//
// Returns ErrNotFinished if s.Run has not completed.
func LeftCayleyGraph(ctx context.Context, s *stephen.Stephen) (*Digraph, error) {
	if !s.Finished() {
		return nil, ErrNotFinished
	}

	orbit := s.SchutzenbergerGraphs()
	lift := s.GraphLift()
	presn := s.Presentation()
	n := presn.AlphabetSize()

	offsets := make([]int, len(orbit))
	localIndex := make([]map[int]int, len(orbit))
	total := 0
	for i, g := range orbit {
		offsets[i] = total
		ids := g.ActiveNodes()
		idx := make(map[int]int, len(ids))
		for j, id := range ids {
			idx[id] = j
		}
		localIndex[i] = idx
		total += len(ids)
	}

	d := NewDigraph(total, n)
	for i, g := range orbit {
		wordOf, err := g.NodeLabels(ctx)
		if err != nil {
			return nil, err
		}

		for id, word := range wordOf {
			j, ok := localIndex[i][id]
			if !ok {
				continue
			}
			from := offsets[i] + j

			for x := 0; x < n; x++ {
				l := lift[i][x]
				c, err := presn.Char(x)
				if err != nil {
					return nil, err
				}

				candidate, err := presn.Word(string(c) + word)
				if err != nil {
					return nil, err
				}

				target, ok := orbit[l].Path(0, candidate)
				if !ok {
					continue
				}

				jPrime, ok := localIndex[l][target]
				if !ok {
					continue
				}

				d.SetEdge(from, x, offsets[l]+jPrime)
			}
		}
	}

	return d, nil
}

// RightCayleyGraph derives the right Cayley digraph from a left one by
// reversing every edge.
func RightCayleyGraph(left *Digraph) *Digraph {
	return left.reversed()
}

// NumberOfDClasses returns the number of strongly connected components of
// the union of left's and right's edge sets, computed with Tarjan's
// algorithm.
func NumberOfDClasses(left, right *Digraph) int {
	n := left.NumberOfNodes()
	adj := make([][]int, n)
	seen := make([]map[int]struct{}, n)
	for i := range seen {
		seen[i] = make(map[int]struct{})
	}

	addAll := func(g *Digraph) {
		for _, e := range g.Edges() {
			from, to := e[0], e[2]
			if _, dup := seen[from][to]; dup {
				continue
			}
			seen[from][to] = struct{}{}
			adj[from] = append(adj[from], to)
		}
	}
	addAll(left)
	addAll(right)

	index := make([]int, n)
	low := make([]int, n)
	onStack := make([]bool, n)
	for i := range index {
		index[i] = -1
	}
	stack := make([]int, 0, n)
	counter := 0
	count := 0

	var strongconnect func(v int)
	strongconnect = func(v int) {
		index[v] = counter
		low[v] = counter
		counter++
		stack = append(stack, v)
		onStack[v] = true

		for _, w := range adj[v] {
			switch {
			case index[w] == -1:
				strongconnect(w)
				if low[w] < low[v] {
					low[v] = low[w]
				}
			case onStack[w]:
				if index[w] < low[v] {
					low[v] = index[w]
				}
			}
		}

		if low[v] == index[v] {
			count++
			for {
				w := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				onStack[w] = false
				if w == v {
					break
				}
			}
		}
	}

	for v := 0; v < n; v++ {
		if index[v] == -1 {
			strongconnect(v)
		}
	}

	return count
}

// NormalForms performs a breadth-first walk of right from vertex 0,
// exploring each vertex's outgoing edges in ascending label order, and
// returns the label string by which each reachable vertex is first
// reached: the shortlex normal form of that element.
func NormalForms(s *stephen.Stephen, right *Digraph) (map[int]string, error) {
	type step struct{ parent, label, child int }

	presn := s.Presentation()
	n := presn.AlphabetSize()
	labels := map[int]string{0: ""}
	queue := make([]step, 0, n)
	for label := 0; label < n; label++ {
		if child, ok := right.EdgeAt(0, label); ok {
			queue = append(queue, step{0, label, child})
		}
	}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if _, seen := labels[cur.child]; seen {
			continue
		}

		c, err := presn.Char(cur.label)
		if err != nil {
			return nil, err
		}
		labels[cur.child] = labels[cur.parent] + string(c)

		for label := 0; label < n; label++ {
			if grandchild, ok := right.EdgeAt(cur.child, label); ok {
				if _, seen := labels[grandchild]; !seen {
					queue = append(queue, step{cur.child, label, grandchild})
				}
			}
		}
	}

	return labels, nil
}

// NormalForm returns the shortlex normal form of the element at vertex
// node in right, and whether node is reachable from the identity.
func NormalForm(s *stephen.Stephen, right *Digraph, node int) (string, bool, error) {
	labels, err := NormalForms(s, right)
	if err != nil {
		return "", false, err
	}
	label, ok := labels[node]

	return label, ok, nil
}
