// Package seq models validated nucleic and peptide sequences and the
// deterministic transformations between them: complementation,
// transcription, and codon-table translation.
package seq

// Alphabet is the fixed set of symbols legal for one sequence kind.
type Alphabet struct {
	name    string
	members [128]bool
}

func newAlphabet(name, symbols string) *Alphabet {
	a := &Alphabet{name: name}
	for i := 0; i < len(symbols); i++ {
		a.members[symbols[i]] = true
	}
	return a
}

// The three alphabets, defined once and never mutated.
var (
	DNAAlphabet     = newAlphabet("DNA", "ATCG")
	RNAAlphabet     = newAlphabet("RNA", "AUCG")
	ProteinAlphabet = newAlphabet("protein", "ACDEFGHIKLMNPQRSTVWY")
)

// Name returns the alphabet's kind name, e.g. "DNA".
func (a *Alphabet) Name() string { return a.name }

// Contains reports whether sym is legal under the alphabet.
func (a *Alphabet) Contains(sym byte) bool {
	return sym < 128 && a.members[sym]
}
