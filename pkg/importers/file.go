package importers

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/malhotra1432/rasa-1/internal/logging"
	"github.com/malhotra1432/rasa-1/pkg/ports"
	"github.com/malhotra1432/rasa-1/pkg/training"
)

// fileReader holds the source paths shared by the file-backed importers.
type fileReader struct {
	configPath    string
	domainPath    string
	trainingPaths []string
	logger        *slog.Logger
}

// Option configures a file-backed importer.
type Option func(*fileReader)

// WithLogger sets the logger used for skip warnings. Defaults to a no-op
// logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *fileReader) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// FileImporter reads training data from a single project's files on disk: the
// pipeline configuration, an optional domain file, and YAML data files that
// are classified by shape into NLU data and stories.
type FileImporter struct {
	fileReader
}

// NewFileImporter builds an importer over the given project paths. Training
// paths may name files or directories; directories are walked for YAML files.
func NewFileImporter(configPath, domainPath string, trainingPaths []string, opts ...Option) *FileImporter {
	f := &FileImporter{fileReader: fileReader{
		configPath:    configPath,
		domainPath:    domainPath,
		trainingPaths: trainingPaths,
		logger:        logging.NewNop(),
	}}
	for _, opt := range opts {
		opt(&f.fileReader)
	}
	return f
}

func (f *FileImporter) GetConfig(ctx context.Context) (training.Config, error) {
	return readConfigDocument(f.configPath)
}

func (f *FileImporter) GetDomain(ctx context.Context) (training.Domain, error) {
	return readDomainFile(f.domainPath)
}

func (f *FileImporter) GetNLUData(ctx context.Context, language string) (training.Data, error) {
	if language == "" {
		language = training.DefaultLanguage
	}
	files, err := collectDataFiles(f.trainingPaths, f.logger)
	if err != nil {
		return training.Data{}, err
	}

	data := training.EmptyData()
	for _, path := range files {
		raw, kind, err := readDataFile(path)
		if err != nil {
			return training.Data{}, err
		}
		if kind != kindNLU {
			continue
		}
		parsed, err := parseNLUFile(raw, path, language)
		if err != nil {
			return training.Data{}, err
		}
		data = data.Merge(parsed)
	}
	return data, nil
}

func (f *FileImporter) GetStories(ctx context.Context, opts ...ports.StoryOption) (training.StoryGraph, error) {
	options := ports.NewStoryOptions(opts...)
	files, err := collectDataFiles(f.trainingPaths, f.logger)
	if err != nil {
		return training.StoryGraph{}, err
	}

	graph := training.EmptyStoryGraph()
	for _, path := range files {
		raw, kind, err := readDataFile(path)
		if err != nil {
			return training.StoryGraph{}, err
		}
		if kind != kindStories {
			continue
		}
		parsed, err := parseStoryFile(raw, path, options)
		if err != nil {
			return training.StoryGraph{}, err
		}
		graph = graph.Merge(parsed)
	}
	return applyExclusion(graph, options.ExclusionPercentage), nil
}

func readDataFile(path string) ([]byte, dataFileKind, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, kindUnknown, fmt.Errorf("failed to read %s: %w", path, err)
	}
	kind, err := classifyDataFile(raw, path)
	if err != nil {
		return nil, kindUnknown, err
	}
	return raw, kind, nil
}
