package stephen

import (
	"github.com/katalvlaran/stephen/presentation"
	"github.com/katalvlaran/stephen/schutzenberger"
)

// Stephen runs the R-class orbit explorer over an inverse-monoid
// presentation: orbit holds one Schützenberger graph per discovered
// R-class, and graphLift[i][a] is the orbit index reached by
// left-multiplying orbit[i]'s representative by generator a.
type Stephen struct {
	presn     *presentation.Presentation
	orbit     []*schutzenberger.SchutzenbergerGraph
	graphLift [][]int
	finished  bool
}

// New constructs a Stephen explorer seeded with the empty word's
// Schützenberger graph. Returns ErrRequiresInverseMonoid if presn is not an
// inverse-monoid presentation with its alphabet already set.
func New(presn *presentation.Presentation) (*Stephen, error) {
	if !presn.IsInverse() || presn.AlphabetSize() == 0 {
		return nil, ErrRequiresInverseMonoid
	}

	seed, err := schutzenberger.New(presn, "")
	if err != nil {
		return nil, err
	}

	return &Stephen{
		presn: presn,
		orbit: []*schutzenberger.SchutzenbergerGraph{seed},
	}, nil
}

// Size returns the sum of active-node counts across every orbit member:
// the size of the monoid, once Run has finished.
func (s *Stephen) Size() int {
	total := 0
	for _, g := range s.orbit {
		total += g.NumberOfNodes()
	}

	return total
}

// NumberOfRClasses returns the number of distinct R-classes discovered so
// far (len(orbit)).
func (s *Stephen) NumberOfRClasses() int {
	return len(s.orbit)
}

// SchutzenbergerGraphs returns the orbit in discovery order. The returned
// slice aliases internal storage and MUST NOT be mutated.
func (s *Stephen) SchutzenbergerGraphs() []*schutzenberger.SchutzenbergerGraph {
	return s.orbit
}

// GraphLift returns the left-multiplication transition table: graphLift[i][a]
// is the orbit index reached from orbit[i] by generator a. Valid only after
// Run has finished.
func (s *Stephen) GraphLift() [][]int {
	return s.graphLift
}

// Finished reports whether Run has completed the full fixed-point loop.
func (s *Stephen) Finished() bool {
	return s.finished
}

// Presentation returns the presentation this explorer was built from.
func (s *Stephen) Presentation() *presentation.Presentation {
	return s.presn
}
