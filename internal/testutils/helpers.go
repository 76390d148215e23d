package testutils

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/malhotra1432/rasa-1/pkg/ports"
	"github.com/malhotra1432/rasa-1/pkg/training"
)

// StubImporter is a TrainingDataImporter that returns fixed artifacts and
// counts calls per operation. Safe for concurrent use, so it can stand in
// behind fan-out decorators.
type StubImporter struct {
	Domain  training.Domain
	Stories training.StoryGraph
	Config  training.Config
	NLU     training.Data
	Err     error

	mu    sync.Mutex
	calls map[string]int
}

// NewStubImporter returns a stub serving empty artifacts until fields are set.
func NewStubImporter() *StubImporter {
	return &StubImporter{
		Domain:  training.EmptyDomain(),
		Stories: training.EmptyStoryGraph(),
		Config:  training.EmptyConfig(),
		NLU:     training.EmptyData(),
		calls:   map[string]int{},
	}
}

func (s *StubImporter) GetDomain(ctx context.Context) (training.Domain, error) {
	s.count("get_domain")
	if s.Err != nil {
		return training.Domain{}, s.Err
	}
	return s.Domain, nil
}

func (s *StubImporter) GetStories(ctx context.Context, opts ...ports.StoryOption) (training.StoryGraph, error) {
	s.count("get_stories")
	if s.Err != nil {
		return training.StoryGraph{}, s.Err
	}
	return s.Stories, nil
}

func (s *StubImporter) GetConfig(ctx context.Context) (training.Config, error) {
	s.count("get_config")
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Config, nil
}

func (s *StubImporter) GetNLUData(ctx context.Context, language string) (training.Data, error) {
	s.count("get_nlu_data")
	if s.Err != nil {
		return training.Data{}, s.Err
	}
	return s.NLU, nil
}

// Calls reports how often the operation was invoked.
func (s *StubImporter) Calls(operation string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[operation]
}

func (s *StubImporter) count(operation string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls[operation]++
}

// WriteFile writes content to name under dir, creating parent directories.
// It fails the test immediately on error and returns the full path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755), "Failed to create parent dirs")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644), "Failed to write %s", path)
	return path
}
