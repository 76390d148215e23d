package importers

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/malhotra1432/rasa-1/pkg/ports"
	"github.com/malhotra1432/rasa-1/pkg/training"
)

// E2EImporter lets training examples embedded directly in stories, as literal
// user or bot text, participate in NLU training, and registers literal bot
// texts as first-class actions in the domain.
//
// Stories are fetched from the wrapped importer once and cached for the
// lifetime of the instance. Concurrent callers share a single fetch; a failed
// fetch is not cached and the next call retries.
type E2EImporter struct {
	importer ports.TrainingDataImporter

	flight singleflight.Group
	mu     sync.RWMutex
	cached *training.StoryGraph
}

// NewE2EImporter decorates the given importer.
func NewE2EImporter(importer ports.TrainingDataImporter) *E2EImporter {
	return &E2EImporter{importer: importer}
}

// Unwrap returns the decorated importer.
func (e *E2EImporter) Unwrap() ports.TrainingDataImporter {
	return e.importer
}

// GetStories returns the cached story graph, fetching it from the wrapped
// importer on first use. Options are forwarded only on the call that performs
// the fetch; later calls observe the cached graph regardless of options.
func (e *E2EImporter) GetStories(ctx context.Context, opts ...ports.StoryOption) (training.StoryGraph, error) {
	e.mu.RLock()
	cached := e.cached
	e.mu.RUnlock()
	if cached != nil {
		return *cached, nil
	}

	result, err, _ := e.flight.Do("stories", func() (any, error) {
		// Re-check under the flight: a caller that raced past the fast path
		// may enter a fresh flight after the fetch already completed.
		e.mu.RLock()
		cached := e.cached
		e.mu.RUnlock()
		if cached != nil {
			return *cached, nil
		}

		graph, err := e.importer.GetStories(ctx, opts...)
		if err != nil {
			return nil, err
		}
		e.mu.Lock()
		e.cached = &graph
		e.mu.Unlock()
		return graph, nil
	})
	if err != nil {
		return training.StoryGraph{}, err
	}
	return result.(training.StoryGraph), nil
}

// GetDomain merges the wrapped domain with a domain derived from stories:
// every distinct literal bot utterance used as an action becomes an action
// name.
func (e *E2EImporter) GetDomain(ctx context.Context) (training.Domain, error) {
	var (
		base    training.Domain
		derived training.Domain
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		base, err = e.importer.GetDomain(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		derived, err = e.domainFromStories(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return training.Domain{}, err
	}
	return base.Merge(derived), nil
}

func (e *E2EImporter) domainFromStories(ctx context.Context) (training.Domain, error) {
	stories, err := e.GetStories(ctx)
	if err != nil {
		return training.Domain{}, err
	}

	seen := map[string]struct{}{}
	actions := []string{}
	for _, step := range stories.Steps {
		for _, event := range step.Events {
			action, ok := event.(training.ActionExecuted)
			if !ok || action.ActionText == "" {
				continue
			}
			if _, dup := seen[action.ActionText]; dup {
				continue
			}
			seen[action.ActionText] = struct{}{}
			actions = append(actions, action.ActionText)
		}
	}
	return training.DomainWithActions(actions), nil
}

func (e *E2EImporter) GetConfig(ctx context.Context) (training.Config, error) {
	return e.importer.GetConfig(ctx)
}

// GetNLUData folds three sources left to right: synthetic examples for the
// built-in actions, the wrapped importer's NLU data, and examples derived
// from story events.
func (e *E2EImporter) GetNLUData(ctx context.Context, language string) (training.Data, error) {
	defaults := defaultActionData()

	var (
		fromSource  training.Data
		fromStories training.Data
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		fromSource, err = e.importer.GetNLUData(gctx, language)
		return err
	})
	g.Go(func() error {
		var err error
		fromStories, err = e.trainingDataFromStories(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return training.Data{}, err
	}

	merged := training.EmptyData()
	for _, data := range []training.Data{defaults, fromSource, fromStories} {
		merged = merged.Merge(data)
	}
	return merged, nil
}

// defaultActionData synthesizes one action example per built-in action so
// policies can predict them without user-provided data.
func defaultActionData() training.Data {
	data := training.EmptyData()
	for _, name := range training.DefaultActionNames {
		data.Examples = append(data.Examples, training.MessageFromAction(name, ""))
	}
	return data
}

// trainingDataFromStories converts story events into training examples: user
// turns become labeled user examples, action turns become action examples.
func (e *E2EImporter) trainingDataFromStories(ctx context.Context) (training.Data, error) {
	stories, err := e.GetStories(ctx)
	if err != nil {
		return training.Data{}, err
	}

	data := training.EmptyData()
	for _, step := range stories.Steps {
		for _, event := range step.Events {
			switch ev := event.(type) {
			case training.UserUttered:
				data.Examples = append(data.Examples, training.NewMessage(ev.Text, ev.IntentName))
			case training.ActionExecuted:
				data.Examples = append(data.Examples, training.MessageFromAction(ev.ActionName, ev.ActionText))
			}
		}
	}
	return data, nil
}
