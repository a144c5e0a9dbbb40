package stephen

import "errors"

// ErrRequiresInverseMonoid indicates New was called with a presentation
// that is not the inverse-monoid variant, mirroring the same requirement on
// schutzenberger.New.
var ErrRequiresInverseMonoid = errors.New("stephen: presentation must be an inverse-monoid presentation with its alphabet set")

// ErrNoSuchGraph is returned by SchutzenbergerGraph when no orbit member
// accepts the given word.
var ErrNoSuchGraph = errors.New("stephen: no orbit member contains the given word")
