package main

import (
	"fmt"

	"github.com/spf13/cobra"

	turkishstemmer "github.com/skroutz/turkish-stemmer"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of turkish-stemmer",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("turkish-stemmer version %s\n", turkishstemmer.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
