// Package gen generates randomized presentations and words for
// property-based testing of wordgraph, schutzenberger, and stephen. It
// adapts the functional-options-plus-*rand.Rand shape used throughout this
// module's packages: every knob has a sensible default and no option
// panics on a nil or zero input.
package gen
