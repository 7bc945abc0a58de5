package fasta

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	content := `>seq1 example dna
TACGGCATTGAA
>seq2
ATGACTGAATAT
AAACTTGTGGTA
`

	records, err := Read(strings.NewReader(content))
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "seq1", records[0].ID)
	assert.Equal(t, "example dna", records[0].Description)
	assert.Equal(t, "TACGGCATTGAA", records[0].Sequence)

	// Multi-line sequences are concatenated
	assert.Equal(t, "seq2", records[1].ID)
	assert.Equal(t, "", records[1].Description)
	assert.Equal(t, "ATGACTGAATATAAACTTGTGGTA", records[1].Sequence)
}

func TestRead_SkipsBlankLines(t *testing.T) {
	content := ">a\nATCG\n\n>b\n\nGGCC\n"

	records, err := Read(strings.NewReader(content))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "ATCG", records[0].Sequence)
	assert.Equal(t, "GGCC", records[1].Sequence)
}

func TestRead_DataBeforeHeader(t *testing.T) {
	_, err := Read(strings.NewReader("ATCG\n>late\nGGCC\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "before first FASTA header")
}

func TestRead_Empty(t *testing.T) {
	records, err := Read(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestWrite(t *testing.T) {
	records := []Record{
		{ID: "seq1", Description: "example", Sequence: "TACGGA"},
		{ID: "seq1_RNA", Sequence: "AUGCCU"},
	}

	var out strings.Builder
	require.NoError(t, Write(&out, records))
	assert.Equal(t, ">seq1 example\nTACGGA\n>seq1_RNA\nAUGCCU\n", out.String())
}

func TestRoundTrip(t *testing.T) {
	records := []Record{
		{ID: "a", Sequence: "ATCG"},
		{ID: "b", Description: "desc here", Sequence: "GGCC"},
	}

	var out strings.Builder
	require.NoError(t, Write(&out, records))

	back, err := Read(strings.NewReader(out.String()))
	require.NoError(t, err)
	assert.Equal(t, records, back)
}
