// Package cayley derives the left and right Cayley digraphs of a finished
// R-class orbit, along with the number of D-classes and shortlex normal
// forms over those digraphs.
//
// Digraph is a minimal deterministic labelled digraph, grounded on the
// same dense-row-per-vertex layout as wordgraph.WordGraph but sized and
// addressed by the orbit's global node numbering rather than a
// presentation's alphabet. LeftCayleyGraph translates stephen.Stephen's
// per-orbit graph_lift table into a single flat digraph over all
// size()-many elements of the monoid; RightCayleyGraph is its edge
// reversal. NumberOfDClasses runs Tarjan's strongly-connected-components
// algorithm over their union, and NormalForms performs a shortlex
// breadth-first walk of the right digraph from its identity node.
package cayley
