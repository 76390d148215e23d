package importers

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/malhotra1432/rasa-1/pkg/ports"
	"github.com/malhotra1432/rasa-1/pkg/training"
)

// CombinedImporter aggregates an ordered list of importers into one. Every
// operation fetches from all of them concurrently and left-folds the results
// with the artifact's Merge, starting from its empty value. If any fetch
// fails the whole operation fails; there is no partial merge.
type CombinedImporter struct {
	importers []ports.TrainingDataImporter
}

// NewCombinedImporter wraps the given importers in fold order.
func NewCombinedImporter(importers ...ports.TrainingDataImporter) *CombinedImporter {
	return &CombinedImporter{importers: importers}
}

func (c *CombinedImporter) GetDomain(ctx context.Context) (training.Domain, error) {
	results, err := fanOut(ctx, c.importers, func(ctx context.Context, imp ports.TrainingDataImporter) (training.Domain, error) {
		return imp.GetDomain(ctx)
	})
	if err != nil {
		return training.Domain{}, err
	}
	merged := training.EmptyDomain()
	for _, domain := range results {
		merged = merged.Merge(domain)
	}
	return merged, nil
}

func (c *CombinedImporter) GetStories(ctx context.Context, opts ...ports.StoryOption) (training.StoryGraph, error) {
	results, err := fanOut(ctx, c.importers, func(ctx context.Context, imp ports.TrainingDataImporter) (training.StoryGraph, error) {
		return imp.GetStories(ctx, opts...)
	})
	if err != nil {
		return training.StoryGraph{}, err
	}
	merged := training.EmptyStoryGraph()
	for _, graph := range results {
		merged = merged.Merge(graph)
	}
	return merged, nil
}

func (c *CombinedImporter) GetConfig(ctx context.Context) (training.Config, error) {
	results, err := fanOut(ctx, c.importers, func(ctx context.Context, imp ports.TrainingDataImporter) (training.Config, error) {
		return imp.GetConfig(ctx)
	})
	if err != nil {
		return nil, err
	}
	merged := training.EmptyConfig()
	for _, config := range results {
		merged = merged.Merge(config)
	}
	return merged, nil
}

func (c *CombinedImporter) GetNLUData(ctx context.Context, language string) (training.Data, error) {
	results, err := fanOut(ctx, c.importers, func(ctx context.Context, imp ports.TrainingDataImporter) (training.Data, error) {
		return imp.GetNLUData(ctx, language)
	})
	if err != nil {
		return training.Data{}, err
	}
	merged := training.EmptyData()
	for _, data := range results {
		merged = merged.Merge(data)
	}
	return merged, nil
}

// fanOut runs one fetch per importer concurrently and returns the results in
// importer order. The first failure cancels the remaining fetches.
func fanOut[T any](ctx context.Context, importers []ports.TrainingDataImporter, fetch func(context.Context, ports.TrainingDataImporter) (T, error)) ([]T, error) {
	results := make([]T, len(importers))
	g, gctx := errgroup.WithContext(ctx)
	for i, imp := range importers {
		g.Go(func() error {
			result, err := fetch(gctx, imp)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
