package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seqlab/seqlab/internal/fasta"
)

func newFindCmd() *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "find <fasta> <motif>",
		Short: "Find the first occurrence of a motif in each record",
		Long: `Print one tab-separated line per record: the identifier and the
0-based index of the first occurrence of the motif, or -1 when absent.`,
		Args: cobra.ExactArgs(2),
	}
	output := addOutputFlag(cmd)
	cmd.Flags().StringVar(&kind, "kind", "dna", "sequence kind: dna, rna or protein")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		records, err := fasta.ReadFile(args[0])
		if err != nil {
			return err
		}
		motif := args[1]

		w, done, err := openOutput(*output)
		if err != nil {
			return err
		}
		defer done()

		for _, rec := range records {
			s, err := buildSequence(kind, rec.ID, rec.Sequence)
			if err != nil {
				return fmt.Errorf("record %s: %w", rec.ID, err)
			}
			if _, err := fmt.Fprintf(w, "%s\t%d\n", s.ID(), s.FindMotif(motif)); err != nil {
				return fmt.Errorf("write result: %w", err)
			}
		}
		return nil
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(newFindCmd())
}
