package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/malhotra1432/rasa-1/internal/validation"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the training data for consistency",
	Long: `Cross-checks domain, stories, and NLU data: story intents and actions
must be declared, NLU examples must use known intents, and declared
intents and responses should actually be used.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		failOnWarnings, _ := cmd.Flags().GetBool("fail-on-warnings")

		logger, err := newLogger(cmd)
		if err != nil {
			return err
		}
		importer, err := loadImporter(cmd, logger)
		if err != nil {
			return fmt.Errorf("failed to load training data: %w", err)
		}

		v, err := validation.FromImporter(cmd.Context(), importer)
		if err != nil {
			return err
		}

		findings := v.Findings()
		failed := false
		for _, f := range findings {
			fmt.Println(f)
			if f.Level == validation.LevelError || failOnWarnings {
				failed = true
			}
		}
		if failed {
			os.Exit(1)
		}
		fmt.Println("Training data is consistent.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().Bool("fail-on-warnings", false, "Exit non-zero on warnings, not just errors")
}
