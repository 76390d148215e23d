package importers

import (
	"fmt"
	"log/slog"

	"github.com/malhotra1432/rasa-1/internal/logging"
	"github.com/malhotra1432/rasa-1/pkg/ports"
	"github.com/malhotra1432/rasa-1/pkg/training"
)

// TrainingType selects which half of the training data a pipeline consumes.
type TrainingType string

const (
	TrainingTypeBoth TrainingType = "both"
	TrainingTypeCore TrainingType = "core"
	TrainingTypeNLU  TrainingType = "nlu"
)

// LoadConfig carries the factory's construction parameters.
type LoadConfig struct {
	// ConfigPath points at the configuration document. Required.
	ConfigPath string

	// DomainPath points at the domain file. Optional.
	DomainPath string

	// TrainingPaths lists training data files or directories. Optional.
	TrainingPaths []string

	// TrainingType picks Core-only, NLU-only, or full data access. Empty
	// means TrainingTypeBoth.
	TrainingType TrainingType

	// Logger receives warnings about skipped importer specs. Defaults to a
	// no-op logger.
	Logger *slog.Logger
}

// LoadFromConfig builds the importer chain for the requested training type.
// The default chain is E2EImporter(RetrievalImporter(CombinedImporter(leaves)))
// where the leaves come from the document's "importers" list, falling back to
// a single file importer over the configured paths.
func LoadFromConfig(cfg LoadConfig) (ports.TrainingDataImporter, error) {
	switch cfg.TrainingType {
	case TrainingTypeCore:
		return LoadCoreImporter(cfg)
	case TrainingTypeNLU:
		return LoadNLUImporter(cfg)
	case TrainingTypeBoth, "":
		return loadDefaultChain(cfg)
	default:
		return nil, fmt.Errorf("unknown training type %q", cfg.TrainingType)
	}
}

// LoadCoreImporter builds a chain whose NLU data is suppressed, for training
// runs that only consume dialogue data.
func LoadCoreImporter(cfg LoadConfig) (ports.TrainingDataImporter, error) {
	chain, err := loadDefaultChain(cfg)
	if err != nil {
		return nil, err
	}
	return NewCoreOnlyImporter(chain), nil
}

// LoadNLUImporter builds a chain whose domain and stories are suppressed.
// E2E enrichment only matters when dialogue data is read, so an outermost
// E2EImporter is unwrapped before suppressing.
func LoadNLUImporter(cfg LoadConfig) (ports.TrainingDataImporter, error) {
	chain, err := loadDefaultChain(cfg)
	if err != nil {
		return nil, err
	}
	if e2e, ok := chain.(*E2EImporter); ok {
		chain = e2e.Unwrap()
	}
	return NewNLUOnlyImporter(chain), nil
}

func loadDefaultChain(cfg LoadConfig) (ports.TrainingDataImporter, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	doc, err := readConfigDocument(cfg.ConfigPath)
	if err != nil {
		return nil, err
	}
	leaves, err := leavesFromDocument(doc, cfg, logger)
	if err != nil {
		return nil, err
	}
	return NewE2EImporter(NewRetrievalImporter(NewCombinedImporter(leaves...))), nil
}

// leavesFromDocument resolves the document's importer specs against the
// registry. Unresolvable specs are skipped with a warning; if nothing
// resolves, a single file importer over the factory paths is used.
func leavesFromDocument(doc training.Config, cfg LoadConfig, logger *slog.Logger) ([]ports.TrainingDataImporter, error) {
	specs, _ := doc["importers"].([]any)

	leaves := []ports.TrainingDataImporter{}
	for _, entry := range specs {
		spec, ok := entry.(map[string]any)
		if !ok {
			logger.Warn("skipping malformed importer entry", "entry", entry)
			continue
		}
		name, _ := spec["name"].(string)
		constructor, ok := registry[name]
		if !ok {
			logger.Warn("skipping unknown importer", "name", name)
			continue
		}

		args := map[string]any{}
		for key, value := range spec {
			if key == "name" {
				continue
			}
			args[key] = value
		}
		leaf, err := constructor(ImporterParams{
			Args:          args,
			ConfigPath:    cfg.ConfigPath,
			DomainPath:    cfg.DomainPath,
			TrainingPaths: cfg.TrainingPaths,
			Logger:        logger,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to construct importer %q: %w", name, err)
		}
		leaves = append(leaves, leaf)
	}

	if len(leaves) == 0 {
		leaves = append(leaves, NewFileImporter(cfg.ConfigPath, cfg.DomainPath, cfg.TrainingPaths, WithLogger(logger)))
	}
	return leaves, nil
}
