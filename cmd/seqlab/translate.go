package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seqlab/seqlab/internal/fasta"
	"github.com/seqlab/seqlab/internal/seq"
)

func newTranslateCmd() *cobra.Command {
	var fromRNA bool

	cmd := &cobra.Command{
		Use:   "translate <fasta>",
		Short: "Translate records to protein",
		Long: `Read DNA records (transcribed first) or, with --rna, RNA records, and
write their protein translations. Translation stops at the first stop
codon; a trailing partial codon is dropped.`,
		Args: cobra.ExactArgs(1),
	}
	output := addOutputFlag(cmd)
	cmd.Flags().BoolVar(&fromRNA, "rna", false, "treat input records as RNA")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		records, err := fasta.ReadFile(args[0])
		if err != nil {
			return err
		}

		out := make([]fasta.Record, 0, len(records))
		for _, rec := range records {
			var rna *seq.RNA
			if fromRNA {
				rna, err = seq.NewRNA(rec.ID, rec.Sequence)
			} else {
				var dna *seq.DNA
				dna, err = seq.NewDNA(rec.ID, rec.Sequence)
				if err == nil {
					rna = dna.Transcribe()
				}
			}
			if err != nil {
				return fmt.Errorf("record %s: %w", rec.ID, err)
			}

			p := rna.Translate()
			out = append(out, fasta.Record{ID: p.ID(), Sequence: p.Symbols()})
		}

		w, done, err := openOutput(*output)
		if err != nil {
			return err
		}
		defer done()
		return fasta.Write(w, out)
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(newTranslateCmd())
}
