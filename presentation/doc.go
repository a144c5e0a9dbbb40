// Package presentation defines finitely presented monoid and inverse-monoid
// presentations: an alphabet, a letter<->index mapping, and a list of
// relations over the free monoid on that alphabet.
//
// Two variants share one type:
//
//	p := presentation.New()        // plain monoid: alphabet as given
//	p := presentation.NewInverse() // inverse monoid: alphabet doubled with
//	                                // the upper-case mirror of each letter
//
// In the inverse variant, SetAlphabet accepts only lower-case letters and
// internally extends the exposed alphabet to [a0..an-1, A0..An-1], with
// Inverse implementing the involution i <-> i+n.
//
// A Presentation is logically immutable once its alphabet is set and its
// relations are added; WordGraph, SchutzenbergerGraph, and Stephen all
// consume a *Presentation by reference without copying it.
package presentation
