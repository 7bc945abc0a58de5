package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seqlab/seqlab/internal/fasta"
	"github.com/seqlab/seqlab/internal/seq"
)

func newComplementCmd() *cobra.Command {
	var fromRNA bool

	cmd := &cobra.Command{
		Use:   "complement <fasta>",
		Short: "Complement DNA or RNA records",
		Long: `Replace every base with its pairing partner (DNA A<->T C<->G,
RNA A<->U C<->G). Symbol order is preserved; this is not a reverse
complement. Identifiers are unchanged.`,
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
			var id, symbols string
			if fromRNA {
				r, err := seq.NewRNA(rec.ID, rec.Sequence)
				if err != nil {
					return fmt.Errorf("record %s: %w", rec.ID, err)
				}
				c := r.Complement()
				id, symbols = c.ID(), c.Symbols()
			} else {
				d, err := seq.NewDNA(rec.ID, rec.Sequence)
				if err != nil {
					return fmt.Errorf("record %s: %w", rec.ID, err)
				}
				c := d.Complement()
				id, symbols = c.ID(), c.Symbols()
			}
			out = append(out, fasta.Record{ID: id, Description: rec.Description, Sequence: symbols})
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
	rootCmd.AddCommand(newComplementCmd())
}
