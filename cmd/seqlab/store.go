package main

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/seqlab/seqlab/internal/fasta"
	"github.com/seqlab/seqlab/internal/store"
)

// openStore opens the sequence registry at store.path from config,
// defaulting to ~/.seqlab/seqlab.db.
func openStore() (*store.Store, error) {
	path := viper.GetString("store.path")
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("cannot determine home directory: %w", err)
		}
		path = filepath.Join(home, ".seqlab", "seqlab.db")
	}

	s, err := store.Open(path)
	if err != nil {
		return nil, err
	}
	s.SetLogger(logger)
	return s, nil
}

func newStoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "store",
		Short: "Manage the local sequence registry",
		Long:  "Save, list, show and remove sequences in the local DuckDB registry.",
	}

	cmd.AddCommand(newStoreSaveCmd())
	cmd.AddCommand(newStoreLsCmd())
	cmd.AddCommand(newStoreShowCmd())
	cmd.AddCommand(newStoreRmCmd())

	return cmd
}

func newStoreSaveCmd() *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "save <fasta>",
		Short: "Validate and save FASTA records",
		Args:  cobra.ExactArgs(1),
	}
	cmd.Flags().StringVar(&kind, "kind", "dna", "sequence kind: dna, rna or protein")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		records, err := fasta.ReadFile(args[0])
		if err != nil {
			return err
		}

		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		for _, rec := range records {
			// Validate before storing.
			if _, err := buildSequence(kind, rec.ID, rec.Sequence); err != nil {
				return fmt.Errorf("record %s: %w", rec.ID, err)
			}
			err := s.Put(store.Record{
				ID:      rec.ID,
				Kind:    kind,
				Symbols: rec.Sequence,
				Source:  args[0],
			})
			if err != nil {
				return err
			}
		}

		fmt.Printf("Saved %d sequence(s)\n", len(records))
		return nil
	}

	return cmd
}

func newStoreLsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ls",
		Short: "List stored sequences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			records, err := s.List()
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tKIND\tLENGTH\tSOURCE\tCREATED")
			for _, rec := range records {
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n",
					rec.ID, rec.Kind, len(rec.Symbols), rec.Source,
					rec.CreatedAt.Format("2006-01-02 15:04"))
			}
			return w.Flush()
		},
	}
}

func newStoreShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print a stored sequence as FASTA",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			rec, err := s.Get(args[0])
			if err != nil {
				return err
			}
			return fasta.Write(os.Stdout, []fasta.Record{{ID: rec.ID, Sequence: rec.Symbols}})
		},
	}
}

func newStoreRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a stored sequence",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}
			defer s.Close()
			return s.Delete(args[0])
		},
	}
}

func init() {
	rootCmd.AddCommand(newStoreCmd())
}
