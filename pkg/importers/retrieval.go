package importers

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/malhotra1432/rasa-1/pkg/ports"
	"github.com/malhotra1432/rasa-1/pkg/training"
)

// RetrievalImporter keeps retrieval intents consistent between the domain and
// the NLU data. Intents like "chitchat/ask_name" select their response from
// candidate variants at runtime; the domain must flag them and declare the
// utter action that serves them, and the NLU data must carry every response
// the domain defines.
type RetrievalImporter struct {
	importer ports.TrainingDataImporter
}

// NewRetrievalImporter decorates the given importer.
func NewRetrievalImporter(importer ports.TrainingDataImporter) *RetrievalImporter {
	return &RetrievalImporter{importer: importer}
}

// GetDomain returns the wrapped domain, augmented with retrieval-intent
// metadata when the NLU data defines retrieval intents. Without retrieval
// intents the wrapped domain is returned unchanged.
func (r *RetrievalImporter) GetDomain(ctx context.Context) (training.Domain, error) {
	var (
		domain training.Domain
		nlu    training.Data
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		domain, err = r.importer.GetDomain(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		nlu, err = r.importer.GetNLUData(gctx, training.DefaultLanguage)
		return err
	})
	if err := g.Wait(); err != nil {
		return training.Domain{}, err
	}

	retrievalIntents := nlu.RetrievalIntents()
	if len(retrievalIntents) == 0 {
		return domain, nil
	}
	return domain.Merge(domainForRetrievalIntents(retrievalIntents, domain, nlu)), nil
}

// domainForRetrievalIntents builds the auxiliary domain merged on top of the
// wrapped one: every retrieval intent keeps its existing properties plus the
// retrieval flag, the NLU responses come along, and one utter action per
// intent is declared.
func domainForRetrievalIntents(intents []string, base training.Domain, nlu training.Data) training.Domain {
	aux := training.EmptyDomain()
	for _, intent := range intents {
		props := map[string]any{}
		for key, value := range base.IntentProperties(intent) {
			props[key] = value
		}
		props[training.IsRetrievalIntentKey] = true
		aux.Intents[intent] = props
		aux.Actions = append(aux.Actions, training.UtterPrefix+intent)
	}
	for name, variants := range nlu.Responses {
		aux.Responses[name] = variants
	}
	return aux
}

func (r *RetrievalImporter) GetStories(ctx context.Context, opts ...ports.StoryOption) (training.StoryGraph, error) {
	return r.importer.GetStories(ctx, opts...)
}

func (r *RetrievalImporter) GetConfig(ctx context.Context) (training.Config, error) {
	return r.importer.GetConfig(ctx)
}

// GetNLUData returns the wrapped NLU data merged with a responses-only data
// set built from the domain, so NLU training sees every response the domain
// defines.
func (r *RetrievalImporter) GetNLUData(ctx context.Context, language string) (training.Data, error) {
	var (
		nlu    training.Data
		domain training.Domain
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		nlu, err = r.importer.GetNLUData(gctx, language)
		return err
	})
	g.Go(func() error {
		var err error
		domain, err = r.importer.GetDomain(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return training.Data{}, err
	}
	return nlu.Merge(training.DataFromResponses(domain.Responses)), nil
}
