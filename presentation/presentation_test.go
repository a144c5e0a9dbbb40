package presentation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stephen/presentation"
)

func TestMonoid_SetAlphabetTwice(t *testing.T) {
	p := presentation.New()
	require.NoError(t, p.SetAlphabet("a"))
	assert.ErrorIs(t, p.SetAlphabet("b"), presentation.ErrAlphabetAlreadySet)
}

func TestMonoid_SetAlphabetDuplicateLetter(t *testing.T) {
	p := presentation.New()
	assert.ErrorIs(t, p.SetAlphabet("aa"), presentation.ErrDuplicateLetter)
}

func TestMonoid_AddRelationBeforeAlphabet(t *testing.T) {
	p := presentation.New()
	assert.ErrorIs(t, p.AddRelation("a", "aa"), presentation.ErrEmptyAlphabet)
}

func TestMonoid_AddRelationUndefinedLetter(t *testing.T) {
	p := presentation.New()
	require.NoError(t, p.SetAlphabet("a"))
	assert.ErrorIs(t, p.AddRelation("a", "b"), presentation.ErrUndefinedLetter)
}

func TestMonoid_WordStringRoundTrip(t *testing.T) {
	p := presentation.New()
	require.NoError(t, p.SetAlphabet("abc"))
	w, err := p.Word("cab")
	require.NoError(t, err)
	assert.Equal(t, []int{2, 0, 1}, w)
	s, err := p.String(w)
	require.NoError(t, err)
	assert.Equal(t, "cab", s)
}

func TestMonoid_InverseUndefined(t *testing.T) {
	p := presentation.New()
	require.NoError(t, p.SetAlphabet("a"))
	_, err := p.Inverse(0)
	assert.ErrorIs(t, err, presentation.ErrNotInverse)
}

func TestInverse_SetAlphabetDoublesAndRejectsUpperCase(t *testing.T) {
	p := presentation.NewInverse()
	assert.ErrorIs(t, p.SetAlphabet("xY"), presentation.ErrNotLowerCase)

	p2 := presentation.NewInverse()
	require.NoError(t, p2.SetAlphabet("xy"))
	assert.Equal(t, "xyXY", p2.Alphabet())
	assert.Equal(t, 4, p2.AlphabetSize())
}

func TestInverse_InverseIsInvolution(t *testing.T) {
	p := presentation.NewInverse()
	require.NoError(t, p.SetAlphabet("xy"))

	x, err := p.Letter('x')
	require.NoError(t, err)
	X, err := p.Inverse(x)
	require.NoError(t, err)
	back, err := p.Inverse(X)
	require.NoError(t, err)
	assert.Equal(t, x, back)

	xChar, err := p.Char(X)
	require.NoError(t, err)
	assert.Equal(t, byte('X'), xChar)
}

func TestAddRelation_PreservesInsertionOrder(t *testing.T) {
	p := presentation.New()
	require.NoError(t, p.SetAlphabet("a"))
	require.NoError(t, p.AddRelation("aa", "a"))
	require.NoError(t, p.AddRelation("a", "aaa"))

	rels := p.Relations()
	require.Len(t, rels, 2)
	assert.Equal(t, []int{0, 0}, rels[0].U)
	assert.Equal(t, []int{0}, rels[0].V)
	assert.Equal(t, []int{0}, rels[1].U)
	assert.Equal(t, []int{0, 0, 0}, rels[1].V)
}
