package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seqlab/seqlab/internal/fasta"
	"github.com/seqlab/seqlab/internal/seq"
)

func newTranscribeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transcribe <fasta>",
		Short: "Transcribe DNA records to RNA",
		Long: `Read DNA records from a FASTA file (or stdin with '-') and write their
RNA transcripts. Each output identifier carries the _RNA suffix.`,
		Args: cobra.ExactArgs(1),
	}
	output := addOutputFlag(cmd)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		records, err := fasta.ReadFile(args[0])
		if err != nil {
			return err
		}

		out := make([]fasta.Record, 0, len(records))
		for _, rec := range records {
			d, err := seq.NewDNA(rec.ID, rec.Sequence)
			if err != nil {
				return fmt.Errorf("record %s: %w", rec.ID, err)
			}
			r := d.Transcribe()
			out = append(out, fasta.Record{ID: r.ID(), Sequence: r.Symbols()})
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
	rootCmd.AddCommand(newTranscribeCmd())
}
