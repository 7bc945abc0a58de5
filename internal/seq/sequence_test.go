package seq

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDNA(t *testing.T) {
	d, err := NewDNA("seq1", "TACGGA")
	require.NoError(t, err)
	assert.Equal(t, "seq1", d.ID())
	assert.Equal(t, 6, d.Len())
	assert.Equal(t, "TACGGA", d.Symbols())
}

func TestNewDNA_EmptyIsLegal(t *testing.T) {
	d, err := NewDNA("empty", "")
	require.NoError(t, err)
	assert.Equal(t, 0, d.Len())
}

func TestNewDNA_InvalidSymbol(t *testing.T) {
	_, err := NewDNA("bad", "ATXG")
	require.Error(t, err)

	var invErr *InvalidSymbolError
	require.True(t, errors.As(err, &invErr))
	assert.Equal(t, byte('X'), invErr.Symbol)
	assert.Equal(t, 2, invErr.Pos)
	assert.Equal(t, "DNA", invErr.Alphabet)
}

func TestNewRNA_RejectsThymine(t *testing.T) {
	_, err := NewRNA("bad", "AUCT")
	var invErr *InvalidSymbolError
	require.True(t, errors.As(err, &invErr))
	assert.Equal(t, byte('T'), invErr.Symbol)
	assert.Equal(t, 3, invErr.Pos)
}

func TestNewProtein(t *testing.T) {
	p, err := NewProtein("prot", "MFKL")
	require.NoError(t, err)
	assert.Equal(t, 4, p.Len())

	_, err = NewProtein("bad", "MFB")
	var invErr *InvalidSymbolError
	require.True(t, errors.As(err, &invErr))
	assert.Equal(t, byte('B'), invErr.Symbol)
}

func TestString_FASTAForm(t *testing.T) {
	d, err := NewDNA("seq1", "TACGGA")
	require.NoError(t, err)
	assert.Equal(t, ">seq1\nTACGGA", d.String())
}

func TestMutate(t *testing.T) {
	d, err := NewDNA("seq1", "TACGGA")
	require.NoError(t, err)

	require.NoError(t, d.Mutate(0, 'A'))
	assert.Equal(t, "AACGGA", d.Symbols())
	assert.Equal(t, 6, d.Len())
	assert.Equal(t, "seq1", d.ID())
}

func TestMutate_OutOfRange(t *testing.T) {
	d, err := NewDNA("seq1", "TACGGA")
	require.NoError(t, err)

	var rangeErr *OutOfRangeError
	err = d.Mutate(6, 'A')
	require.True(t, errors.As(err, &rangeErr))
	assert.Equal(t, 6, rangeErr.Pos)
	assert.Equal(t, 6, rangeErr.Len)

	err = d.Mutate(-1, 'A')
	require.True(t, errors.As(err, &rangeErr))

	// Unchanged on error.
	assert.Equal(t, "TACGGA", d.Symbols())
}

func TestMutate_InvalidSymbol(t *testing.T) {
	d, err := NewDNA("seq1", "TACGGA")
	require.NoError(t, err)

	var invErr *InvalidSymbolError
	err = d.Mutate(2, 'U')
	require.True(t, errors.As(err, &invErr))
	assert.Equal(t, byte('U'), invErr.Symbol)
	assert.Equal(t, "TACGGA", d.Symbols())
}

func TestMutate_BoundsCheckedBeforeAlphabet(t *testing.T) {
	d, err := NewDNA("seq1", "TACGGA")
	require.NoError(t, err)

	// Both the position and the symbol are bad: bounds take priority.
	err = d.Mutate(99, '?')
	var rangeErr *OutOfRangeError
	require.True(t, errors.As(err, &rangeErr))
}

func TestFindMotif(t *testing.T) {
	d, err := NewDNA("seq1", "TACGGCATTGAA")
	require.NoError(t, err)

	tests := []struct {
		motif string
		want  int
	}{
		{"GGC", 3},
		{"TAC", 0},
		{"GAA", 9},
		{"A", 1},
		{"", 0},
		{"GGG", -1},
		{"TACGGCATTGAAT", -1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, d.FindMotif(tt.motif), "motif %q", tt.motif)
	}
}

func TestAlphabetContains(t *testing.T) {
	assert.True(t, DNAAlphabet.Contains('A'))
	assert.True(t, DNAAlphabet.Contains('T'))
	assert.False(t, DNAAlphabet.Contains('U'))
	assert.True(t, RNAAlphabet.Contains('U'))
	assert.False(t, RNAAlphabet.Contains('T'))
	assert.True(t, ProteinAlphabet.Contains('W'))
	assert.False(t, ProteinAlphabet.Contains('*'))
	assert.False(t, ProteinAlphabet.Contains('a'))
}
