package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	turkishstemmer "github.com/skroutz/turkish-stemmer"
	"github.com/skroutz/turkish-stemmer/internal/logging"
	"github.com/skroutz/turkish-stemmer/pkg/adapters/file"
)

var rootCmd = &cobra.Command{
	Use:   "turkish-stemmer",
	Short: "Suffix-stripping stemmer for Turkish",
	Long: `Reduces inflected Turkish words to stems by stripping plural,
possessive, case, predicative and derivational suffixes.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("tables", "", "Directory with suffix tables (default: embedded tables)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
}

// newStemmer builds a stemmer from the persistent flags.
func newStemmer(cmd *cobra.Command) (*turkishstemmer.Stemmer, error) {
	opts := []turkishstemmer.Option{
		turkishstemmer.WithLogger(newLogger(cmd)),
	}
	if dir, _ := cmd.Flags().GetString("tables"); dir != "" {
		opts = append(opts, turkishstemmer.WithLoader(file.NewDir(dir)))
	}
	return turkishstemmer.New(opts...)
}

func newLogger(cmd *cobra.Command) *slog.Logger {
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		return logging.New(slog.LevelDebug)
	}
	return logging.New(slog.LevelInfo)
}
