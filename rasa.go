package rasa

import (
	"log/slog"

	"github.com/malhotra1432/rasa-1/pkg/importers"
	"github.com/malhotra1432/rasa-1/pkg/ports"
)

// Version is the library version, reported by the CLI and the MCP server.
const Version = "0.1.0"

// Loader collects the construction parameters for an importer chain.
type Loader struct {
	config importers.LoadConfig
}

// Option defines a functional option for configuring the loader.
type Option func(*Loader)

// WithConfigPath sets the configuration document path. Required.
func WithConfigPath(path string) Option {
	return func(l *Loader) {
		l.config.ConfigPath = path
	}
}

// WithDomainPath sets the domain file path.
func WithDomainPath(path string) Option {
	return func(l *Loader) {
		l.config.DomainPath = path
	}
}

// WithTrainingPaths sets the training data files or directories.
func WithTrainingPaths(paths ...string) Option {
	return func(l *Loader) {
		l.config.TrainingPaths = paths
	}
}

// WithTrainingType selects Core-only, NLU-only, or full data access.
// Defaults to both halves.
func WithTrainingType(trainingType importers.TrainingType) Option {
	return func(l *Loader) {
		l.config.TrainingType = trainingType
	}
}

// WithLogger sets a structured logger for load warnings. Defaults to a
// no-op logger.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) {
		l.config.Logger = logger
	}
}

// Load builds the importer chain described by the configuration document.
//
// The document's "importers" list selects the leaf importers; unresolvable
// entries are skipped with a warning and an empty list falls back to a single
// file importer over the configured paths. The leaves are wrapped so that
// combined results are reconciled with retrieval-intent metadata and enriched
// with end-to-end training examples before the caller sees them.
func Load(opts ...Option) (ports.TrainingDataImporter, error) {
	loader := &Loader{}
	for _, opt := range opts {
		opt(loader)
	}
	return importers.LoadFromConfig(loader.config)
}
