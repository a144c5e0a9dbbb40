// Package wordgraph implements the word-graph half of Stephen's procedure:
// an incrementally maintained, deterministic labelled graph whose language
// from node 0 captures the congruence class of a fixed seed word modulo a
// finitely presented monoid's relations.
//
// Construction linearises the seed word into a path from node 0 (tc1,
// via Target); Run saturates the graph under the presentation's relations
// by repeated elementary expansion and node coalescing (tc3, via merge)
// until no relation is violated at any active node.
//
// Node identifiers are never reused: merge retires the larger of two
// identifiers from the active set, but its row in the edge table persists
// so that stale references queued in the pending-merge stack remain valid
// until rewritten. See SchutzenbergerGraph (package schutzenberger) for the
// inverse-monoid specialisation that layers involutive back-edges on top of
// this same engine via the OnCreate hook.
//
// The engine is single-threaded: a WordGraph is mutable until Run completes
// and is not safe for concurrent use by multiple goroutines.
package wordgraph
