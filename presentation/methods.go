package presentation

import "unicode"

// SetAlphabet sets the presentation's alphabet. Fails with
// ErrAlphabetAlreadySet if called twice, ErrDuplicateLetter if letters
// repeats a character, and (inverse variant only) ErrNotLowerCase if any
// letter is not lower case. On success, the inverse variant extends the
// exposed alphabet with the upper-case mirror of letters.
//
// Complexity: O(len(letters)).
func (p *Presentation) SetAlphabet(letters string) error {
	if p.alphabet != "" {
		return ErrAlphabetAlreadySet
	}

	seen := make(map[byte]struct{}, len(letters))
	for i := 0; i < len(letters); i++ {
		c := letters[i]
		if _, dup := seen[c]; dup {
			return ErrDuplicateLetter
		}
		seen[c] = struct{}{}
	}
	if p.inverse {
		for i := 0; i < len(letters); i++ {
			if !unicode.IsLower(rune(letters[i])) {
				return ErrNotLowerCase
			}
		}
	}

	p.base = len(letters)
	full := letters
	if p.inverse {
		full += upperMirror(letters)
	}
	p.alphabet = full
	p.index = make(map[byte]int, len(full))
	for i := 0; i < len(full); i++ {
		p.index[full[i]] = i
	}

	return nil
}

// upperMirror returns the upper-case mirror of a lower-case letter string.
func upperMirror(lower string) string {
	upper := make([]byte, len(lower))
	for i := 0; i < len(lower); i++ {
		upper[i] = byte(unicode.ToUpper(rune(lower[i])))
	}

	return string(upper)
}

// Letter converts a single character to its index in the alphabet.
// Returns ErrUndefinedLetter if c is not in the alphabet.
func (p *Presentation) Letter(c byte) (int, error) {
	idx, ok := p.index[c]
	if !ok {
		return 0, ErrUndefinedLetter
	}

	return idx, nil
}

// Char converts an alphabet index back to its character.
// Returns ErrUndefinedLetter if idx is out of range.
func (p *Presentation) Char(idx int) (byte, error) {
	if idx < 0 || idx >= len(p.alphabet) {
		return 0, ErrUndefinedLetter
	}

	return p.alphabet[idx], nil
}

// Word converts a string to the corresponding slice of letter indices.
// Returns ErrUndefinedLetter at the first character outside the alphabet.
func (p *Presentation) Word(s string) ([]int, error) {
	w := make([]int, len(s))
	for i := 0; i < len(s); i++ {
		idx, err := p.Letter(s[i])
		if err != nil {
			return nil, err
		}
		w[i] = idx
	}

	return w, nil
}

// String converts a slice of letter indices back to a string.
// Returns ErrUndefinedLetter at the first index outside the alphabet.
func (p *Presentation) String(w []int) (string, error) {
	out := make([]byte, len(w))
	for i, idx := range w {
		c, err := p.Char(idx)
		if err != nil {
			return "", err
		}
		out[i] = c
	}

	return string(out), nil
}

// AddRelation adds the relation (word1 == word2) to the presentation.
// Returns ErrEmptyAlphabet if SetAlphabet has not been called, or
// ErrUndefinedLetter if either word contains a letter outside the alphabet.
func (p *Presentation) AddRelation(word1, word2 string) error {
	if p.alphabet == "" {
		return ErrEmptyAlphabet
	}

	u, err := p.Word(word1)
	if err != nil {
		return err
	}
	v, err := p.Word(word2)
	if err != nil {
		return err
	}

	p.rels = append(p.rels, Relation{U: u, V: v})

	return nil
}

// Inverse returns the index representing the involutive inverse of letter.
// Defined as i+n if i<n, else i-n, where n = AlphabetSize()/2.
// Returns ErrNotInverse if this presentation's alphabet was never doubled
// (a plain monoid presentation, or an inverse presentation whose alphabet
// has not yet been set).
func (p *Presentation) Inverse(letter int) (int, error) {
	if !p.inverse || p.base == 0 {
		return 0, ErrNotInverse
	}
	if letter < 0 || letter >= len(p.alphabet) {
		return 0, ErrUndefinedLetter
	}
	if letter < p.base {
		return letter + p.base, nil
	}

	return letter - p.base, nil
}
