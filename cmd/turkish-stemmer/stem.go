package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var stemCmd = &cobra.Command{
	Use:   "stem [words...]",
	Short: "Stem words given as arguments or on stdin",
	Long: `Stems each word and prints one stem per line. With no arguments,
words are read from stdin, one per line.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runStem(cmd, args); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(stemCmd)
	stemCmd.Flags().Bool("candidates", false, "Print every candidate instead of the selected stem")
}

func runStem(cmd *cobra.Command, args []string) error {
	stemmer, err := newStemmer(cmd)
	if err != nil {
		return err
	}
	showCandidates, _ := cmd.Flags().GetBool("candidates")

	emit := func(word string) error {
		if showCandidates {
			cands, err := stemmer.Candidates(word)
			if err != nil {
				return err
			}
			fmt.Printf("%s:", word)
			for _, c := range cands {
				fmt.Printf(" %s", c)
			}
			fmt.Println()
			return nil
		}
		fmt.Println(stemmer.Stem(word))
		return nil
	}

	if len(args) > 0 {
		for _, word := range args {
			if err := emit(word); err != nil {
				return err
			}
		}
		return nil
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		word := scanner.Text()
		if word == "" {
			continue
		}
		if err := emit(word); err != nil {
			return err
		}
	}
	return scanner.Err()
}
