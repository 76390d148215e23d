package importers

import (
	"fmt"
	"log/slog"

	"github.com/mitchellh/mapstructure"

	"github.com/malhotra1432/rasa-1/pkg/ports"
)

// ImporterParams carries everything a registered constructor may draw on: the
// factory's path parameters plus the extra keys of the importer spec.
type ImporterParams struct {
	// Args holds the spec's keys other than "name". Keys a variant does not
	// accept are dropped during decoding.
	Args map[string]any

	ConfigPath    string
	DomainPath    string
	TrainingPaths []string
	Logger        *slog.Logger
}

// Constructor builds a leaf importer variant from its parameters.
type Constructor func(params ImporterParams) (ports.TrainingDataImporter, error)

var registry = map[string]Constructor{}

// Register makes an importer variant available to configuration documents
// under the given name. The built-ins register at init; hosts may add their
// own variants the same way. Later registrations replace earlier ones.
func Register(name string, constructor Constructor) {
	registry[name] = constructor
}

func init() {
	Register("RasaFileImporter", newFileImporterFromParams)
	Register("MultiProjectImporter", newMultiProjectImporterFromParams)
}

// builtinArgs are the configuration keys the built-in importer specs may
// override. They mirror the factory parameters.
type builtinArgs struct {
	ConfigFile        string   `mapstructure:"config_file"`
	DomainPath        string   `mapstructure:"domain_path"`
	TrainingDataPaths []string `mapstructure:"training_data_paths"`
}

func newFileImporterFromParams(params ImporterParams) (ports.TrainingDataImporter, error) {
	args, err := decodeArgs[builtinArgs](params.Args)
	if err != nil {
		return nil, err
	}
	configPath, domainPath, trainingPaths := mergePaths(args, params)
	return NewFileImporter(configPath, domainPath, trainingPaths, WithLogger(params.Logger)), nil
}

func newMultiProjectImporterFromParams(params ImporterParams) (ports.TrainingDataImporter, error) {
	args, err := decodeArgs[builtinArgs](params.Args)
	if err != nil {
		return nil, err
	}
	configPath, domainPath, trainingPaths := mergePaths(args, params)
	return NewMultiProjectImporter(configPath, domainPath, trainingPaths, WithLogger(params.Logger))
}

// decodeArgs maps spec keys onto a parameter struct, silently dropping keys
// the struct does not declare.
func decodeArgs[T any](args map[string]any) (T, error) {
	var out T
	if len(args) == 0 {
		return out, nil
	}
	if err := mapstructure.Decode(args, &out); err != nil {
		return out, fmt.Errorf("failed to decode importer arguments: %w", err)
	}
	return out, nil
}

// mergePaths lets spec keys override the factory's path parameters.
func mergePaths(args builtinArgs, params ImporterParams) (configPath, domainPath string, trainingPaths []string) {
	configPath = params.ConfigPath
	if args.ConfigFile != "" {
		configPath = args.ConfigFile
	}
	domainPath = params.DomainPath
	if args.DomainPath != "" {
		domainPath = args.DomainPath
	}
	trainingPaths = params.TrainingPaths
	if len(args.TrainingDataPaths) > 0 {
		trainingPaths = args.TrainingDataPaths
	}
	return configPath, domainPath, trainingPaths
}
