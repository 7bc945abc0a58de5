package seq

// Stop is the codon table value that terminates translation.
const Stop = '*'

// Unknown is the defensive placeholder for codons missing from the
// table. The table is total over {A,U,C,G}³, so this is unreachable for
// a validly constructed RNA sequence.
const Unknown = 'X'

// Standard genetic code: RNA codon to amino acid (single letter).
var codonTable = map[string]byte{
	"UUU": 'F', "UUC": 'F', "UUA": 'L', "UUG": 'L',
	"UCU": 'S', "UCC": 'S', "UCA": 'S', "UCG": 'S',
	"UAU": 'Y', "UAC": 'Y', "UAA": '*', "UAG": '*',
	"UGU": 'C', "UGC": 'C', "UGA": '*', "UGG": 'W',

	"CUU": 'L', "CUC": 'L', "CUA": 'L', "CUG": 'L',
	"CCU": 'P', "CCC": 'P', "CCA": 'P', "CCG": 'P',
	"CAU": 'H', "CAC": 'H', "CAA": 'Q', "CAG": 'Q',
	"CGU": 'R', "CGC": 'R', "CGA": 'R', "CGG": 'R',

	"AUU": 'I', "AUC": 'I', "AUA": 'I', "AUG": 'M',
	"ACU": 'T', "ACC": 'T', "ACA": 'T', "ACG": 'T',
	"AAU": 'N', "AAC": 'N', "AAA": 'K', "AAG": 'K',
	"AGU": 'S', "AGC": 'S', "AGA": 'R', "AGG": 'R',

	"GUU": 'V', "GUC": 'V', "GUA": 'V', "GUG": 'V',
	"GCU": 'A', "GCC": 'A', "GCA": 'A', "GCG": 'A',
	"GAU": 'D', "GAC": 'D', "GAA": 'E', "GAG": 'E',
	"GGU": 'G', "GGC": 'G', "GGA": 'G', "GGG": 'G',
}

// TranslateCodon translates an RNA codon to its amino acid.
// Returns Unknown for codons not in the table and Stop for stop codons.
func TranslateCodon(codon string) byte {
	if len(codon) != 3 {
		return Unknown
	}
	if aa, ok := codonTable[codon]; ok {
		return aa
	}
	return Unknown
}

// IsStopCodon returns true if the codon is a stop codon (UAA, UAG, UGA).
func IsStopCodon(codon string) bool {
	return TranslateCodon(codon) == Stop
}

// IsStartCodon returns true if the codon is the start codon (AUG).
func IsStartCodon(codon string) bool {
	return codon == "AUG"
}

// Translate derives the protein sequence by walking codons of three
// from offset zero. A stop codon ends translation immediately and
// contributes nothing; a trailing partial codon is dropped. The result
// identifier is the parent's with the _protein suffix appended.
func (r *RNA) Translate() *Protein {
	out := make([]byte, 0, len(r.data)/3)
	for i := 0; i+3 <= len(r.data); i += 3 {
		aa := TranslateCodon(string(r.data[i : i+3]))
		if aa == Stop {
			break
		}
		out = append(out, aa)
	}
	// Table outputs are legal peptide letters apart from the
	// unreachable Unknown placeholder, which must be appended rather
	// than rejected, so construction skips re-validation.
	return &Protein{Sequence{id: r.id + proteinSuffix, data: out, alphabet: ProteinAlphabet}}
}
