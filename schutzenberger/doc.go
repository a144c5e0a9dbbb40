// Package schutzenberger specializes wordgraph for finitely presented
// inverse monoids. A SchutzenbergerGraph is a WordGraph in which every node
// creation additionally writes the involutive back-edge: for every active
// edge p --a--> q there must exist q --a'--> p, where a' is a's formal
// inverse under the presentation.
//
// Two words in the free monoid represent R-related elements of the inverse
// monoid if and only if each word's Schützenberger graph contains the
// other (see Contains, and stephen.Stephen's orbit explorer, which uses
// mutual Contains to deduplicate R-classes).
package schutzenberger
