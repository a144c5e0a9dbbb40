package stephen

import (
	"context"

	"github.com/katalvlaran/stephen/internal/budget"
	"github.com/katalvlaran/stephen/schutzenberger"
	"github.com/katalvlaran/stephen/wordgraph"
)

// Run iterates the fixed-point loop over the growing orbit: for each
// orbit member's representative w, and each generator a, it tests whether
// the Schützenberger graph of a++w already belongs to some existing
// R-class via mutual containment, appending a fresh orbit member when none
// does. Run returns once no new R-class is discovered.
//
// opts are forwarded to every Schützenberger graph's saturation. ctx
// cancellation is also checked once per orbit member visited.
func (s *Stephen) Run(ctx context.Context, opts ...wordgraph.RunOption) error {
	tracker := budget.New(ctx, 0)
	n := s.presn.AlphabetSize()

	for i := 0; i < len(s.orbit); i++ {
		if err := tracker.Step(); err != nil {
			return err
		}

		repWord, err := s.presn.String(s.orbit[i].Rep())
		if err != nil {
			return err
		}

		row := make([]int, n)
		for a := 0; a < n; a++ {
			c, err := s.presn.Char(a)
			if err != nil {
				return err
			}
			candidate := string(c) + repWord

			g, err := schutzenberger.New(s.presn, candidate)
			if err != nil {
				return err
			}

			home, err := s.findHome(ctx, candidate, g, opts...)
			if err != nil {
				return err
			}

			if home >= 0 {
				row[a] = home
				continue
			}

			s.orbit = append(s.orbit, g)
			row[a] = len(s.orbit) - 1
		}
		s.graphLift = append(s.graphLift, row)
	}

	s.finished = true

	return nil
}

// findHome scans the existing orbit for an R-class whose representative is
// mutually contained with candidate's Schützenberger graph g, returning its
// index, or -1 if none matches.
func (s *Stephen) findHome(ctx context.Context, candidate string, g *schutzenberger.SchutzenbergerGraph, opts ...wordgraph.RunOption) (int, error) {
	for k, existing := range s.orbit {
		existingRep, err := s.presn.String(existing.Rep())
		if err != nil {
			return -1, err
		}

		inG, err := g.Contains(ctx, existingRep, opts...)
		if err != nil {
			return -1, err
		}
		if !inG {
			continue
		}

		inExisting, err := existing.Contains(ctx, candidate, opts...)
		if err != nil {
			return -1, err
		}
		if inExisting {
			return k, nil
		}
	}

	return -1, nil
}

// SchutzenbergerGraph returns the unique orbit member whose Schützenberger
// graph contains word, or ErrNoSuchGraph if none does.
func (s *Stephen) SchutzenbergerGraph(ctx context.Context, word string, opts ...wordgraph.RunOption) (*schutzenberger.SchutzenbergerGraph, error) {
	for _, g := range s.orbit {
		ok, err := g.Contains(ctx, word, opts...)
		if err != nil {
			return nil, err
		}
		if ok {
			return g, nil
		}
	}

	return nil, ErrNoSuchGraph
}

// EqualTo constructs fresh Schützenberger graphs seeded by u and v and
// tests mutual acceptance, independently of the orbit's completion state.
func (s *Stephen) EqualTo(ctx context.Context, u, v string, opts ...wordgraph.RunOption) (bool, error) {
	gu, err := schutzenberger.New(s.presn, u)
	if err != nil {
		return false, err
	}
	gv, err := schutzenberger.New(s.presn, v)
	if err != nil {
		return false, err
	}

	uInV, err := gv.Accepts(ctx, u, opts...)
	if err != nil {
		return false, err
	}
	if !uInV {
		return false, nil
	}

	vInU, err := gu.Accepts(ctx, v, opts...)
	if err != nil {
		return false, err
	}

	return vInU, nil
}
