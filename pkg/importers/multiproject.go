package importers

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/malhotra1432/rasa-1/internal/logging"
	"github.com/malhotra1432/rasa-1/pkg/ports"
	"github.com/malhotra1432/rasa-1/pkg/training"
)

// Conventional file names inside an imported project directory.
const (
	projectConfigFile = "config.yml"
	projectDomainFile = "domain.yml"
	projectDataDir    = "data"
)

// MultiProjectImporter aggregates training data from a root project and every
// project its configuration imports, recursively. Each imported project
// contributes its domain.yml and the YAML files under its data directory.
type MultiProjectImporter struct {
	fileReader
	projectPaths []string
}

// NewMultiProjectImporter resolves the import graph rooted at configPath.
// Import cycles are tolerated; projects that do not exist are skipped with a
// warning.
func NewMultiProjectImporter(configPath, domainPath string, trainingPaths []string, opts ...Option) (*MultiProjectImporter, error) {
	m := &MultiProjectImporter{fileReader: fileReader{
		configPath:    configPath,
		domainPath:    domainPath,
		trainingPaths: trainingPaths,
		logger:        logging.NewNop(),
	}}
	for _, opt := range opts {
		opt(&m.fileReader)
	}

	projects, err := resolveImports(configPath, m.logger)
	if err != nil {
		return nil, err
	}
	m.projectPaths = projects
	return m, nil
}

// resolveImports walks the imports graph breadth-first starting at the root
// configuration, collecting each project directory exactly once.
func resolveImports(configPath string, logger *slog.Logger) ([]string, error) {
	rootDir, err := filepath.Abs(filepath.Dir(configPath))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve project root: %w", err)
	}

	visited := map[string]struct{}{rootDir: {}}
	order := []string{rootDir}
	queue := []queuedProject{{dir: rootDir, configPath: configPath}}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		doc, err := readConfigDocument(current.configPath)
		if err != nil {
			return nil, err
		}
		imports, _ := doc["imports"].([]any)
		for _, entry := range imports {
			rel, ok := entry.(string)
			if !ok {
				logger.Warn("skipping malformed import entry", "entry", entry)
				continue
			}
			dir := rel
			if !filepath.IsAbs(dir) {
				dir = filepath.Join(current.dir, rel)
			}
			dir, err := filepath.Abs(dir)
			if err != nil {
				return nil, fmt.Errorf("failed to resolve import %s: %w", rel, err)
			}
			if _, seen := visited[dir]; seen {
				continue
			}
			if info, err := os.Stat(dir); err != nil || !info.IsDir() {
				logger.Warn("imported project does not exist, skipping", "path", dir)
				continue
			}
			visited[dir] = struct{}{}
			order = append(order, dir)
			queue = append(queue, queuedProject{dir: dir, configPath: filepath.Join(dir, projectConfigFile)})
		}
	}
	return order, nil
}

type queuedProject struct {
	dir        string
	configPath string
}

// GetConfig returns the root project's configuration only; imported projects
// contribute data, not pipeline settings.
func (m *MultiProjectImporter) GetConfig(ctx context.Context) (training.Config, error) {
	return readConfigDocument(m.configPath)
}

// GetDomain merges the explicitly given domain file with the domain.yml of
// every project in the import graph.
func (m *MultiProjectImporter) GetDomain(ctx context.Context) (training.Domain, error) {
	domain, err := readDomainFile(m.domainPath)
	if err != nil {
		return training.Domain{}, err
	}
	for _, dir := range m.projectPaths {
		path := filepath.Join(dir, projectDomainFile)
		if path == m.domainPath {
			continue
		}
		projectDomain, err := readDomainFile(path)
		if err != nil {
			return training.Domain{}, err
		}
		domain = domain.Merge(projectDomain)
	}
	return domain, nil
}

func (m *MultiProjectImporter) GetNLUData(ctx context.Context, language string) (training.Data, error) {
	if language == "" {
		language = training.DefaultLanguage
	}
	files, err := collectDataFiles(m.dataPaths(), m.logger)
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

func (m *MultiProjectImporter) GetStories(ctx context.Context, opts ...ports.StoryOption) (training.StoryGraph, error) {
	options := ports.NewStoryOptions(opts...)
	files, err := collectDataFiles(m.dataPaths(), m.logger)
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

// dataPaths lists the explicit training paths plus each project's data
// directory, when present. Missing directories are filtered here so only
// genuinely misconfigured paths are warned about later.
func (m *MultiProjectImporter) dataPaths() []string {
	paths := append([]string{}, m.trainingPaths...)
	for _, dir := range m.projectPaths {
		dataDir := filepath.Join(dir, projectDataDir)
		if info, err := os.Stat(dataDir); err == nil && info.IsDir() {
			paths = append(paths, dataDir)
		}
	}
	return paths
}
