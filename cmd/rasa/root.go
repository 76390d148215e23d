package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	rasa "github.com/malhotra1432/rasa-1"
	"github.com/malhotra1432/rasa-1/internal/logging"
	"github.com/malhotra1432/rasa-1/pkg/ports"
)

var rootCmd = &cobra.Command{
	Use:   "rasa",
	Short: "rasa loads and validates conversational training data",
	Long: `rasa is the data layer of a conversational-AI training pipeline.
It loads domain definitions, dialogue stories, and NLU examples from project
files, reconciles them through a chain of importers, and serves or validates
the combined result.`,
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
	rootCmd.PersistentFlags().String("config", "config.yml", "Path to the configuration document")
	rootCmd.PersistentFlags().String("domain", "", "Path to the domain file")
	rootCmd.PersistentFlags().StringSlice("data", nil, "Training data files or directories (repeatable)")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn, error")
}

// newLogger builds the CLI logger from the --log-level flag.
func newLogger(cmd *cobra.Command) (*slog.Logger, error) {
	name, _ := cmd.Flags().GetString("log-level")
	level, err := logging.ParseLevel(name)
	if err != nil {
		return nil, err
	}
	return logging.New(level), nil
}

// loadImporter builds the importer chain from the persistent flags.
func loadImporter(cmd *cobra.Command, logger *slog.Logger) (ports.TrainingDataImporter, error) {
	configPath, _ := cmd.Flags().GetString("config")
	domainPath, _ := cmd.Flags().GetString("domain")
	dataPaths, _ := cmd.Flags().GetStringSlice("data")

	return rasa.Load(
		rasa.WithConfigPath(configPath),
		rasa.WithDomainPath(domainPath),
		rasa.WithTrainingPaths(dataPaths...),
		rasa.WithLogger(logger),
	)
}
