package seq

import "bytes"

// Sequence is the shared record behind every kind: an identifier, the
// ordered symbols, and the alphabet every symbol must satisfy. The
// identifier is immutable after construction; the symbols change only
// through Mutate.
type Sequence struct {
	id       string
	data     []byte
	alphabet *Alphabet
}

func newSequence(alphabet *Alphabet, id, symbols string) (Sequence, error) {
	for i := 0; i < len(symbols); i++ {
		if !alphabet.Contains(symbols[i]) {
			return Sequence{}, &InvalidSymbolError{Symbol: symbols[i], Pos: i, Alphabet: alphabet.name}
		}
	}
	return Sequence{id: id, data: []byte(symbols), alphabet: alphabet}, nil
}

// ID returns the sequence identifier.
func (s *Sequence) ID() string { return s.id }

// Len returns the number of symbols.
func (s *Sequence) Len() int { return len(s.data) }

// Symbols returns the raw symbol string.
func (s *Sequence) Symbols() string { return string(s.data) }

// Alphabet returns the bound alphabet.
func (s *Sequence) Alphabet() *Alphabet { return s.alphabet }

// String renders the sequence in FASTA form: a '>'-prefixed header line
// with the identifier, a newline, then the raw symbols. No trailing
// newline.
func (s *Sequence) String() string {
	return ">" + s.id + "\n" + string(s.data)
}

// Mutate overwrites the symbol at pos with sym. The bounds check runs
// before the alphabet check, so an out-of-range position is reported
// even when the replacement symbol is also illegal. On error the
// sequence is left unmodified.
func (s *Sequence) Mutate(pos int, sym byte) error {
	if pos < 0 || pos >= len(s.data) {
		return &OutOfRangeError{Pos: pos, Len: len(s.data)}
	}
	if !s.alphabet.Contains(sym) {
		return &InvalidSymbolError{Symbol: sym, Pos: pos, Alphabet: s.alphabet.name}
	}
	s.data[pos] = sym
	return nil
}

// FindMotif returns the 0-based index of the first occurrence of motif
// as a contiguous subsequence, or -1 if absent. The empty motif matches
// at position 0. Absence is a normal result, never an error.
func (s *Sequence) FindMotif(motif string) int {
	return bytes.Index(s.data, []byte(motif))
}
