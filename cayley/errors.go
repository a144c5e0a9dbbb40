package cayley

import "errors"

// ErrNotFinished indicates a Cayley-graph derivation was attempted from a
// stephen.Stephen explorer whose Run has not completed.
var ErrNotFinished = errors.New("cayley: orbit explorer has not finished Run")
