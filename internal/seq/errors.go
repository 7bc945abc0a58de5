package seq

import "fmt"

// InvalidSymbolError reports a symbol outside a sequence's alphabet,
// raised at construction or mutation time.
type InvalidSymbolError struct {
	Symbol   byte
	Pos      int
	Alphabet string
}

func (e *InvalidSymbolError) Error() string {
	return fmt.Sprintf("invalid %s symbol %q at position %d", e.Alphabet, e.Symbol, e.Pos)
}

// OutOfRangeError reports a mutation position outside [0, length).
type OutOfRangeError struct {
	Pos int
	Len int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("position %d out of range for sequence of length %d", e.Pos, e.Len)
}
