// Package stephen implements the R-class orbit explorer: it builds, for a
// finitely presented inverse monoid, the growing list of Schützenberger
// graphs reached from the empty word by left-multiplying generators,
// deduplicating by mutual containment of representatives.
//
// Once Run has finished, the orbit enumerates exactly one Schützenberger
// graph per R-class, and Size sums their active-node counts to give the
// size of the monoid. Package cayley consumes GraphLift to derive the
// left/right Cayley digraphs, D-class counts, and normal forms.
package stephen
