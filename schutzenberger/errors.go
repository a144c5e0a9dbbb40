package schutzenberger

import (
	"errors"
	"fmt"
)

// ErrRequiresInverseMonoid indicates New was called with a presentation that
// is not the inverse-monoid variant (presentation.NewInverse), or whose
// alphabet has not been set yet, so no inverse map is available to maintain
// the back-edge invariant.
var ErrRequiresInverseMonoid = errors.New("schutzenberger: presentation must be an inverse-monoid presentation with its alphabet set")

// GraphInconsistency is the panic value raised when a back-edge write would
// conflict with an existing one: a node already has a different back-edge
// than the one a new forward edge requires. This indicates a bug in the
// caller, never adversarial input, and is therefore a panic, not an error
// return.
type GraphInconsistency struct {
	Node, Label, Want, Got int
}

func (e GraphInconsistency) Error() string {
	return fmt.Sprintf("schutzenberger: back-edge conflict at node %d label %d: existing back-edge %d, new would be %d",
		e.Node, e.Label, e.Got, e.Want)
}
