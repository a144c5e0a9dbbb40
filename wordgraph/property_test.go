package wordgraph_test

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	fuzz "github.com/google/gofuzz"

	"github.com/katalvlaran/stephen/gen"
	"github.com/katalvlaran/stephen/internal/budget"
	"github.com/katalvlaran/stephen/wordgraph"
)

// TestProperty_RandomPresentationsSaturateConsistently generates bounded
// random monoid presentations and checks determinism and saturation on
// every one that finishes within its step budget. Presentations that hit
// the budget are skipped rather than failed: Stephen's procedure does not
// guarantee termination, so a bound that is too tight for a particular
// random draw is expected, not a bug.
func TestProperty_RandomPresentationsSaturateConsistently(t *testing.T) {
	f := fuzz.New().NilChance(0)
	const trials = 30
	skipped := 0

	for trial := 0; trial < trials; trial++ {
		var alphabetSize, maxRelations, maxWordLen uint8
		f.Fuzz(&alphabetSize)
		f.Fuzz(&maxRelations)
		f.Fuzz(&maxWordLen)

		rng := rand.New(rand.NewSource(int64(trial) + 1))
		p, err := gen.RandomPresentation(false,
			gen.WithRand(rng),
			gen.WithAlphabetSize(int(alphabetSize%4)+1),
			gen.WithMaxRelations(int(maxRelations%3)),
			gen.WithMaxWordLen(int(maxWordLen%4)+1),
		)
		if err != nil {
			t.Fatalf("trial %d: RandomPresentation: %v", trial, err)
		}

		seed := gen.RandomWord(rng, p.Alphabet(), 4)
		g, err := wordgraph.New(p, seed)
		if err != nil {
			t.Fatalf("trial %d: New: %v", trial, err)
		}

		err = g.Run(context.Background(), wordgraph.WithStepBudget(200))
		if errors.Is(err, budget.ErrExceeded) {
			skipped++
			continue
		}
		if err != nil {
			t.Fatalf("trial %d: Run: %v", trial, err)
		}

		for _, node := range g.ActiveNodes() {
			for letter := 0; letter < p.AlphabetSize(); letter++ {
				t1, ok1 := g.EdgeAt(node, letter)
				t2, ok2 := g.EdgeAt(node, letter)
				if ok1 != ok2 || (ok1 && t1 != t2) {
					t.Fatalf("trial %d: node %d: non-deterministic edge for label %d", trial, node, letter)
				}
			}

			for _, rel := range p.Relations() {
				u, uok := g.Path(node, rel.U)
				v, vok := g.Path(node, rel.V)
				if !uok || !vok || u != v {
					t.Fatalf("trial %d: relation violated at node %d after Run", trial, node)
				}
			}
		}
	}

	if skipped == trials {
		t.Fatal("every trial exceeded its step budget; widen the bounds or the budget")
	}
}
