// SPDX-License-Identifier: MIT
// Package: stephen/presentation
//
// errors.go - sentinel errors for the presentation package.
//
// Error policy (mirrors lvlath's builder/errors.go):
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Sentinels are never wrapped with formatted strings at definition site;
//     callers that need context wrap with fmt.Errorf("presentation.Method: %w", err).
//
// Priority (tie-break when multiple validations fail), matching the order
// SetAlphabet/AddRelation check them:
//
//	ErrAlphabetAlreadySet -> ErrDuplicateLetter -> ErrNotLowerCase
//	ErrEmptyAlphabet -> ErrUndefinedLetter
package presentation

import "errors"

var (
	// ErrAlphabetAlreadySet indicates SetAlphabet was called a second time.
	ErrAlphabetAlreadySet = errors.New("presentation: alphabet already set")

	// ErrDuplicateLetter indicates the alphabet string contains a repeated letter.
	ErrDuplicateLetter = errors.New("presentation: duplicate letter in alphabet")

	// ErrNotLowerCase indicates an inverse-monoid alphabet contained a non-lower-case letter.
	ErrNotLowerCase = errors.New("presentation: inverse-monoid alphabet letters must be lower case")

	// ErrEmptyAlphabet indicates AddRelation was called before SetAlphabet.
	ErrEmptyAlphabet = errors.New("presentation: no alphabet defined, call SetAlphabet first")

	// ErrUndefinedLetter indicates a word referenced a letter outside the alphabet.
	ErrUndefinedLetter = errors.New("presentation: letter not in alphabet")

	// ErrNotInverse indicates Inverse was called on a presentation whose alphabet
	// was never doubled (a monoid presentation, or an inverse presentation whose
	// alphabet has not been set yet).
	ErrNotInverse = errors.New("presentation: inverse map undefined for this presentation")
)
