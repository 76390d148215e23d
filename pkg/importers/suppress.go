package importers

import (
	"context"

	"github.com/malhotra1432/rasa-1/pkg/ports"
	"github.com/malhotra1432/rasa-1/pkg/training"
)

// CoreOnlyImporter serves dialogue training runs. It passes domain, stories,
// and config through and suppresses NLU data entirely, so Core-only training
// never reads NLU files.
type CoreOnlyImporter struct {
	importer ports.TrainingDataImporter
}

// NewCoreOnlyImporter decorates the given importer.
func NewCoreOnlyImporter(importer ports.TrainingDataImporter) *CoreOnlyImporter {
	return &CoreOnlyImporter{importer: importer}
}

func (c *CoreOnlyImporter) GetDomain(ctx context.Context) (training.Domain, error) {
	return c.importer.GetDomain(ctx)
}

func (c *CoreOnlyImporter) GetStories(ctx context.Context, opts ...ports.StoryOption) (training.StoryGraph, error) {
	return c.importer.GetStories(ctx, opts...)
}

func (c *CoreOnlyImporter) GetConfig(ctx context.Context) (training.Config, error) {
	return c.importer.GetConfig(ctx)
}

// GetNLUData always returns empty training data, whatever the wrapped
// importer holds.
func (c *CoreOnlyImporter) GetNLUData(ctx context.Context, language string) (training.Data, error) {
	return training.EmptyData(), nil
}

// NLUOnlyImporter serves language-understanding training runs. It passes
// config and NLU data through and suppresses domain and stories, so NLU-only
// training never reads dialogue files.
type NLUOnlyImporter struct {
	importer ports.TrainingDataImporter
}

// NewNLUOnlyImporter decorates the given importer.
func NewNLUOnlyImporter(importer ports.TrainingDataImporter) *NLUOnlyImporter {
	return &NLUOnlyImporter{importer: importer}
}

// GetDomain always returns an empty domain.
func (n *NLUOnlyImporter) GetDomain(ctx context.Context) (training.Domain, error) {
	return training.EmptyDomain(), nil
}

// GetStories always returns an empty story graph.
func (n *NLUOnlyImporter) GetStories(ctx context.Context, opts ...ports.StoryOption) (training.StoryGraph, error) {
	return training.EmptyStoryGraph(), nil
}

func (n *NLUOnlyImporter) GetConfig(ctx context.Context) (training.Config, error) {
	return n.importer.GetConfig(ctx)
}

func (n *NLUOnlyImporter) GetNLUData(ctx context.Context, language string) (training.Data, error) {
	return n.importer.GetNLUData(ctx, language)
}
