package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	turkishstemmer "github.com/skroutz/turkish-stemmer"
	"github.com/skroutz/turkish-stemmer/internal/validator"
	"github.com/skroutz/turkish-stemmer/pkg/adapters/file"
	"github.com/skroutz/turkish-stemmer/pkg/domain"
	"github.com/skroutz/turkish-stemmer/pkg/ports"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the suffix tables for consistency",
	Long: `Loads the suffix tables and reports unknown states and suffixes,
suffixes without patterns, and states unreachable from the initial state.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runValidate(cmd, args); err != nil {
			fmt.Printf("Validation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Tables are valid! ✅")
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	var loader ports.TableLoader

	switch {
	case len(args) > 0:
		loader = file.NewDir(args[0])
	default:
		if dir, _ := cmd.Flags().GetString("tables"); dir != "" {
			loader = file.NewDir(dir)
		} else {
			loader = turkishstemmer.DefaultLoader()
		}
	}

	rules := make(map[domain.Category]*domain.RuleSet)
	for _, cat := range domain.Categories() {
		rs, err := loader.LoadRuleSet(cat)
		if err != nil {
			return fmt.Errorf("loading %s rules: %w", cat, err)
		}
		rules[cat] = rs
	}
	if _, err := loader.LoadWordLists(); err != nil {
		return fmt.Errorf("loading word lists: %w", err)
	}

	return validator.ValidateAll(rules)
}
