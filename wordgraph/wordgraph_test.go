// Package wordgraph_test verifies WordGraph's low-level tc1/tc3 contracts
// without third-party assertion libraries, keeping the lowest-level
// invariant tests stdlib-only.
package wordgraph_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/stephen/presentation"
	"github.com/katalvlaran/stephen/wordgraph"
)

func freeMonoid(t *testing.T, alphabet string) *presentation.Presentation {
	t.Helper()
	p := presentation.New()
	if err := p.SetAlphabet(alphabet); err != nil {
		t.Fatalf("SetAlphabet(%q): %v", alphabet, err)
	}

	return p
}

func TestTarget_DeterministicAndIdempotent(t *testing.T) {
	p := freeMonoid(t, "ab")
	g, err := wordgraph.New(p, "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	n1 := g.Target(0, 0)
	n2 := g.Target(0, 0)
	if n1 != n2 {
		t.Fatalf("Target not idempotent: %d != %d", n1, n2)
	}

	// At most one outgoing edge per label.
	for _, node := range g.ActiveNodes() {
		t1, ok1 := g.EdgeAt(node, 0)
		t2, ok2 := g.EdgeAt(node, 0)
		if ok1 != ok2 || (ok1 && t1 != t2) {
			t.Fatalf("node %d: non-deterministic edge for label 0", node)
		}
	}
}

func TestSeed_EstablishesRootPath(t *testing.T) {
	p := freeMonoid(t, "a")
	g, err := wordgraph.New(p, "aaa")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	_, ok := g.Path(0, g.Rep())
	if !ok {
		t.Fatal("seed word does not label a defined path from node 0")
	}
}

func TestRun_SaturatesIdempotently(t *testing.T) {
	p := freeMonoid(t, "a")
	if err := p.AddRelation("aa", "a"); err != nil {
		t.Fatalf("AddRelation: %v", err)
	}
	g, err := wordgraph.New(p, "aaa")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ctx := context.Background()
	if err := g.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}
	before := g.NumberOfNodes()
	if err := g.Run(ctx); err != nil {
		t.Fatalf("second Run: %v", err)
	}
	after := g.NumberOfNodes()
	if before != after {
		t.Fatalf("Run not idempotent: %d nodes before, %d after", before, after)
	}

	// Every active node satisfies every relation.
	for _, node := range g.ActiveNodes() {
		for _, rel := range p.Relations() {
			u, uok := g.Path(node, rel.U)
			v, vok := g.Path(node, rel.V)
			if !uok || !vok || u != v {
				t.Fatalf("relation violated at node %d", node)
			}
		}
	}
}

func TestEqualTo_FreeBandExample(t *testing.T) {
	// monoid <a | aa=a> seed "aaa": every power of a collapses to a or e.
	p := freeMonoid(t, "a")
	if err := p.AddRelation("aa", "a"); err != nil {
		t.Fatalf("AddRelation: %v", err)
	}
	g, err := wordgraph.New(p, "aaa")
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ctx := context.Background()
	for _, w := range []string{"a", "aa", "aaaa"} {
		eq, err := g.EqualTo(ctx, w)
		if err != nil {
			t.Fatalf("EqualTo(%q): %v", w, err)
		}
		if !eq {
			t.Errorf("EqualTo(%q) = false, want true", w)
		}
	}
}

func TestEqualTo_Symmetric(t *testing.T) {
	p := freeMonoid(t, "a")
	if err := p.AddRelation("aa", "a"); err != nil {
		t.Fatalf("AddRelation: %v", err)
	}
	ctx := context.Background()

	g1, _ := wordgraph.New(p, "a")
	eq1, err := g1.EqualTo(ctx, "aa")
	if err != nil {
		t.Fatal(err)
	}

	g2, _ := wordgraph.New(p, "aa")
	eq2, err := g2.EqualTo(ctx, "a")
	if err != nil {
		t.Fatal(err)
	}

	if eq1 != eq2 {
		t.Fatalf("EqualTo not symmetric: a.EqualTo(aa)=%v, aa.EqualTo(a)=%v", eq1, eq2)
	}
}

func TestRun_ContextCancelledBeforeSaturation(t *testing.T) {
	p := freeMonoid(t, "a")
	if err := p.AddRelation("aa", "a"); err != nil {
		t.Fatal(err)
	}
	g, err := wordgraph.New(p, "aaa")
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := g.Run(ctx); err == nil {
		t.Fatal("Run with a pre-cancelled context should fail, not saturate silently")
	}
}

func TestRun_StepBudgetAllowsSaturationWithinLimit(t *testing.T) {
	p := freeMonoid(t, "a")
	if err := p.AddRelation("aa", "a"); err != nil {
		t.Fatal(err)
	}
	g, err := wordgraph.New(p, "aaaaaa")
	if err != nil {
		t.Fatal(err)
	}
	if err := g.Run(context.Background(), wordgraph.WithStepBudget(64)); err != nil {
		t.Fatalf("Run with a generous budget should saturate: %v", err)
	}
	if g.NumberOfNodes() != 2 {
		t.Fatalf("NumberOfNodes() = %d, want 2 (idempotent generator collapses to {e,a})", g.NumberOfNodes())
	}
}
