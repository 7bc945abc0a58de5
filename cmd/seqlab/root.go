package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/seqlab/seqlab/internal/seq"
)

var (
	cfgFile string
	verbose bool

	logger = zap.NewNop()
)

// rootCmd is the base command when seqlab is called without subcommands.
var rootCmd = &cobra.Command{
	Use:   "seqlab",
	Short: "Work with validated DNA, RNA and protein sequences",
	Long: `seqlab manipulates validated biological sequences: complementation,
transcription, codon-table translation, point mutation and motif search,
reading and writing FASTA.`,
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			l, err := zap.NewDevelopment()
			if err != nil {
				return fmt.Errorf("build logger: %w", err)
			}
			logger = l
		}
		return nil
	},
}

// Execute runs the root command. Called once from main.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.seqlab.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
		viper.SetConfigName(".seqlab")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("SEQLAB")
	viper.AutomaticEnv()

	// A missing config file is fine; everything has defaults.
	_ = viper.ReadInConfig()
}

// addOutputFlag registers the shared -o/--output flag on cmd.
func addOutputFlag(cmd *cobra.Command) *string {
	return cmd.Flags().StringP("output", "o", "", "output file (default: stdout)")
}

// openOutput opens the output target, stdout when path is empty.
func openOutput(path string) (*os.File, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create output file: %w", err)
	}
	return f, func() { f.Close() }, nil
}

// sequence is the surface shared by every sequence kind.
type sequence interface {
	ID() string
	Len() int
	Symbols() string
	String() string
	Mutate(pos int, sym byte) error
	FindMotif(motif string) int
}

// buildSequence constructs a validated sequence of the named kind.
func buildSequence(kind, id, symbols string) (sequence, error) {
	switch kind {
	case "dna":
		d, err := seq.NewDNA(id, symbols)
		if err != nil {
			return nil, err
		}
		return d, nil
	case "rna":
		r, err := seq.NewRNA(id, symbols)
		if err != nil {
			return nil, err
		}
		return r, nil
	case "protein":
		p, err := seq.NewProtein(id, symbols)
		if err != nil {
			return nil, err
		}
		return p, nil
	default:
		return nil, fmt.Errorf("unknown sequence kind %q (want dna, rna or protein)", kind)
	}
}
