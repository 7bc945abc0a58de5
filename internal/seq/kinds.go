package seq

// Provenance suffixes appended to the parent identifier on derivation.
const (
	rnaSuffix     = "_RNA"
	proteinSuffix = "_protein"
)

// DNA is a validated sequence over the ATCG alphabet.
type DNA struct {
	Sequence
}

// RNA is a validated sequence over the AUCG alphabet.
type RNA struct {
	Sequence
}

// Protein is a validated sequence over the 20 standard amino-acid codes.
type Protein struct {
	Sequence
}

// NewDNA builds a DNA sequence, rejecting any symbol outside ATCG.
// Empty input is legal.
func NewDNA(id, symbols string) (*DNA, error) {
	s, err := newSequence(DNAAlphabet, id, symbols)
	if err != nil {
		return nil, err
	}
	return &DNA{s}, nil
}

// NewRNA builds an RNA sequence, rejecting any symbol outside AUCG.
func NewRNA(id, symbols string) (*RNA, error) {
	s, err := newSequence(RNAAlphabet, id, symbols)
	if err != nil {
		return nil, err
	}
	return &RNA{s}, nil
}

// NewProtein builds a protein sequence, rejecting any symbol outside
// the 20 standard single-letter codes.
func NewProtein(id, symbols string) (*Protein, error) {
	s, err := newSequence(ProteinAlphabet, id, symbols)
	if err != nil {
		return nil, err
	}
	return &Protein{s}, nil
}

// Per-kind substitution tables. A zero entry means the symbol has no
// partner and passes through unchanged; that branch is unreachable for
// a validly constructed sequence.
var (
	dnaPairs = substitutionTable("AT", "TA", "CG", "GC")
	rnaPairs = substitutionTable("AU", "UA", "CG", "GC")

	// Transcription maps A→U, T→A, C→G, G→C. This is the direct
	// substitution the tool has always used, not the coding-strand
	// transcription rule; changing it would change reference outputs.
	transcription = substitutionTable("AU", "TA", "CG", "GC")
)

func substitutionTable(pairs ...string) [128]byte {
	var t [128]byte
	for _, p := range pairs {
		t[p[0]] = p[1]
	}
	return t
}

func substitute(data []byte, table *[128]byte) []byte {
	out := make([]byte, len(data))
	for i, c := range data {
		if p := table[c]; p != 0 {
			out[i] = p
		} else {
			out[i] = c
		}
	}
	return out
}

// Complement returns a new DNA sequence with every base swapped for its
// pairing partner (A↔T, C↔G). Symbol order is preserved: this is a
// positional substitution, not a reverse complement. The identifier is
// carried over unchanged.
func (d *DNA) Complement() *DNA {
	return &DNA{Sequence{id: d.id, data: substitute(d.data, &dnaPairs), alphabet: DNAAlphabet}}
}

// Complement returns a new RNA sequence with every base swapped for its
// pairing partner (A↔U, C↔G), order preserved.
func (r *RNA) Complement() *RNA {
	return &RNA{Sequence{id: r.id, data: substitute(r.data, &rnaPairs), alphabet: RNAAlphabet}}
}

// Transcribe derives the RNA sequence via the fixed transcription table
// and appends the _RNA provenance suffix. Total for a validly
// constructed source; the result keeps no reference to its parent.
func (d *DNA) Transcribe() *RNA {
	return &RNA{Sequence{id: d.id + rnaSuffix, data: substitute(d.data, &transcription), alphabet: RNAAlphabet}}
}
