package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/seqlab/seqlab/internal/fasta"
	"github.com/seqlab/seqlab/internal/fetch"
	"github.com/seqlab/seqlab/internal/store"
)

func newFetchCmd() *cobra.Command {
	var (
		db   string
		save bool
	)

	cmd := &cobra.Command{
		Use:   "fetch <accession>",
		Short: "Download a sequence record from NCBI",
		Long: `Fetch a FASTA record from the NCBI E-utilities efetch endpoint by
accession and print it. Set fetch.email in the config so NCBI can
contact you about heavy usage.`,
		Example: `  seqlab fetch NM_000546
  seqlab fetch --db protein --save P04637`,
		Args: cobra.ExactArgs(1),
	}
	cmd.Flags().StringVar(&db, "db", "nuccore", "NCBI database: nuccore or protein")
	cmd.Flags().BoolVar(&save, "save", false, "save the fetched record to the local store")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		accession := args[0]

		client := fetch.NewClient()
		client.Email = viper.GetString("fetch.email")
		client.SetLogger(logger)

		records, err := client.Fetch(cmd.Context(), db, accession)
		if err != nil {
			return err
		}

		if save {
			kind := "dna"
			if db == "protein" {
				kind = "protein"
			}

			s, err := openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			for _, rec := range records {
				err := s.Put(store.Record{
					ID:      rec.ID,
					Kind:    kind,
					Symbols: rec.Sequence,
					Source:  "ncbi:" + accession,
				})
				if err != nil {
					return err
				}
			}
			fmt.Fprintf(os.Stderr, "Saved %d sequence(s) to store\n", len(records))
		}

		return fasta.Write(os.Stdout, records)
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(newFetchCmd())
}
