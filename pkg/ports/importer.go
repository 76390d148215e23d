package ports

import (
	"context"

	"github.com/malhotra1432/rasa-1/pkg/training"
)

// TrainingDataImporter is the common capability set of every importer
// variant: leaves that read raw sources and decorators that combine or
// augment them.
//
// Operations never fail on missing data; a source with nothing to offer
// returns the empty value of the type. I/O and parse failures propagate
// unchanged. Implementations must be safe for repeated calls; some cache
// internally.
type TrainingDataImporter interface {
	// GetDomain retrieves the bot domain.
	GetDomain(ctx context.Context) (training.Domain, error)

	// GetStories retrieves dialogue stories. Options control template
	// substitution, end-to-end parsing, and data withholding.
	GetStories(ctx context.Context, opts ...StoryOption) (training.StoryGraph, error)

	// GetConfig retrieves the pipeline configuration document.
	GetConfig(ctx context.Context) (training.Config, error)

	// GetNLUData retrieves NLU training data for a language. An empty
	// language selects training.DefaultLanguage.
	GetNLUData(ctx context.Context, language string) (training.Data, error)
}

// StoryOptions carries the optional parameters of GetStories.
type StoryOptions struct {
	// TemplateVariables are substituted into story templates while parsing.
	// Nil means no substitutions.
	TemplateVariables map[string]string

	// UseE2E enables parsing of literal user/bot text turns in addition to
	// intent/action labels.
	UseE2E bool

	// ExclusionPercentage withholds this fraction (0-100) of story data,
	// for held-out evaluation. Zero keeps everything.
	ExclusionPercentage int
}

// StoryOption configures one optional GetStories parameter.
type StoryOption func(*StoryOptions)

// NewStoryOptions applies opts on top of the defaults.
func NewStoryOptions(opts ...StoryOption) StoryOptions {
	var o StoryOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithTemplateVariables sets key/value substitutions applied while parsing
// story templates.
func WithTemplateVariables(vars map[string]string) StoryOption {
	return func(o *StoryOptions) {
		o.TemplateVariables = vars
	}
}

// WithE2E enables parsing of end-to-end textual turns.
func WithE2E() StoryOption {
	return func(o *StoryOptions) {
		o.UseE2E = true
	}
}

// WithExclusionPercentage withholds the given fraction (0-100) of story data.
func WithExclusionPercentage(percentage int) StoryOption {
	return func(o *StoryOptions) {
		o.ExclusionPercentage = percentage
	}
}
