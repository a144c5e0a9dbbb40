package gen

import (
	"math/rand"

	"github.com/katalvlaran/stephen/presentation"
)

// Option customizes a Config before a random presentation is built.
type Option func(*Config)

// Config holds the bounds a random presentation is generated within.
type Config struct {
	rng          *rand.Rand
	alphabetSize int
	maxRelations int
	maxWordLen   int
}

// defaultConfig returns a Config with small, fast-to-saturate bounds: three
// generators, up to two relations, words up to length three.
func defaultConfig() Config {
	return Config{
		rng:          rand.New(rand.NewSource(1)),
		alphabetSize: 3,
		maxRelations: 2,
		maxWordLen:   3,
	}
}

// WithRand overrides the random source. A nil rng is ignored.
func WithRand(rng *rand.Rand) Option {
	return func(c *Config) {
		if rng != nil {
			c.rng = rng
		}
	}
}

// WithAlphabetSize sets the number of base generators (1..13; values above
// 13 are clamped to the 13 letters of baseLetters). Non-positive values are
// ignored.
func WithAlphabetSize(n int) Option {
	return func(c *Config) {
		if n > 0 {
			c.alphabetSize = n
		}
	}
}

// WithMaxRelations bounds the number of relations generated (0..n
// inclusive, uniformly). Negative values are ignored.
func WithMaxRelations(n int) Option {
	return func(c *Config) {
		if n >= 0 {
			c.maxRelations = n
		}
	}
}

// WithMaxWordLen bounds the length of generated relation/probe words.
// Non-positive values are ignored.
func WithMaxWordLen(n int) Option {
	return func(c *Config) {
		if n > 0 {
			c.maxWordLen = n
		}
	}
}

const baseLetters = "abcdefghijklm"

// alphabet returns the first n letters of baseLetters, clamped to its length.
func alphabet(n int) string {
	if n > len(baseLetters) {
		n = len(baseLetters)
	}

	return baseLetters[:n]
}

// RandomWord returns a random string of length 0..maxLen drawn from
// alphabet, using rng.
func RandomWord(rng *rand.Rand, alphabet string, maxLen int) string {
	if len(alphabet) == 0 || maxLen <= 0 {
		return ""
	}

	n := rng.Intn(maxLen + 1)
	out := make([]byte, n)
	for i := range out {
		out[i] = alphabet[rng.Intn(len(alphabet))]
	}

	return string(out)
}

// RandomPresentation builds a presentation (monoid if inverse is false,
// inverse monoid otherwise) with a random alphabet and a random number of
// random relations, bounded by opts.
func RandomPresentation(inverse bool, opts ...Option) (*presentation.Presentation, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	letters := alphabet(cfg.alphabetSize)
	var p *presentation.Presentation
	if inverse {
		p = presentation.NewInverse()
	} else {
		p = presentation.New()
	}
	if err := p.SetAlphabet(letters); err != nil {
		return nil, err
	}

	full := letters
	if inverse {
		// Relation words may also use formal inverses; draw from the full
		// doubled alphabet once it has been installed.
		full = letters + upperMirror(letters)
	}

	count := cfg.rng.Intn(cfg.maxRelations + 1)
	for i := 0; i < count; i++ {
		u := RandomWord(cfg.rng, full, cfg.maxWordLen)
		v := RandomWord(cfg.rng, full, cfg.maxWordLen)
		if err := p.AddRelation(u, v); err != nil {
			return nil, err
		}
	}

	return p, nil
}

func upperMirror(s string) string {
	out := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		out[i] = s[i] - 'a' + 'A'
	}

	return string(out)
}
