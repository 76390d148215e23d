package validation

import (
	"context"
	"fmt"
	"strings"

	"github.com/malhotra1432/rasa-1/pkg/ports"
	"github.com/malhotra1432/rasa-1/pkg/training"
)

// Level classifies a finding's severity.
type Level string

const (
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// Finding is one consistency problem discovered in the training data.
type Finding struct {
	Level   Level
	Message string
}

func (f Finding) String() string {
	return fmt.Sprintf("[%s] %s", f.Level, f.Message)
}

// Validator cross-checks the artifacts of one importer chain: stories must
// only reference declared intents and actions, NLU examples must use declared
// intents, and declared intents/responses should actually be used somewhere.
type Validator struct {
	domain  training.Domain
	stories training.StoryGraph
	nlu     training.Data
}

// FromImporter fetches the artifacts and builds a validator over them.
func FromImporter(ctx context.Context, importer ports.TrainingDataImporter) (*Validator, error) {
	domain, err := importer.GetDomain(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch domain: %w", err)
	}
	stories, err := importer.GetStories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch stories: %w", err)
	}
	nlu, err := importer.GetNLUData(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch nlu data: %w", err)
	}
	return &Validator{domain: domain, stories: stories, nlu: nlu}, nil
}

// Findings runs every check and returns the combined report.
func (v *Validator) Findings() []Finding {
	findings := []Finding{}
	findings = append(findings, v.checkStoryIntents()...)
	findings = append(findings, v.checkStoryActions()...)
	findings = append(findings, v.checkNLUIntents()...)
	findings = append(findings, v.checkUnusedIntents()...)
	findings = append(findings, v.checkUnusedResponses()...)
	return findings
}

// Verify reports whether the data is usable: warnings pass, errors fail.
func (v *Validator) Verify() bool {
	for _, f := range v.Findings() {
		if f.Level == LevelError {
			return false
		}
	}
	return true
}

func (v *Validator) checkStoryIntents() []Finding {
	findings := []Finding{}
	for _, step := range v.stories.Steps {
		for _, ev := range step.Events {
			user, ok := ev.(training.UserUttered)
			if !ok || user.IntentName == "" {
				continue
			}
			if _, declared := v.domain.Intents[user.IntentName]; !declared {
				findings = append(findings, Finding{
					Level:   LevelError,
					Message: fmt.Sprintf("story %q uses intent %q which is not in the domain", step.Name, user.IntentName),
				})
			}
		}
	}
	return findings
}

func (v *Validator) checkStoryActions() []Finding {
	declared := map[string]struct{}{}
	for _, name := range v.domain.Actions {
		declared[name] = struct{}{}
	}
	for _, name := range training.DefaultActionNames {
		declared[name] = struct{}{}
	}

	findings := []Finding{}
	for _, step := range v.stories.Steps {
		for _, ev := range step.Events {
			action, ok := ev.(training.ActionExecuted)
			if !ok || action.ActionName == "" {
				continue
			}
			if _, ok := declared[action.ActionName]; ok {
				continue
			}
			// An utter action is fine when a response template backs it.
			if strings.HasPrefix(action.ActionName, training.UtterPrefix) {
				if _, ok := v.domain.Responses[action.ActionName]; ok {
					continue
				}
			}
			findings = append(findings, Finding{
				Level:   LevelError,
				Message: fmt.Sprintf("story %q uses action %q which is neither a declared action nor a response", step.Name, action.ActionName),
			})
		}
	}
	return findings
}

func (v *Validator) checkNLUIntents() []Finding {
	findings := []Finding{}
	for _, example := range v.nlu.Examples {
		if example.Intent == "" {
			continue
		}
		// Retrieval examples ("chitchat/ask_name") are declared by their base intent.
		base, _, _ := strings.Cut(example.Intent, training.RetrievalIntentDelimiter)
		if _, declared := v.domain.Intents[base]; !declared {
			findings = append(findings, Finding{
				Level:   LevelError,
				Message: fmt.Sprintf("NLU example %q uses intent %q which is not in the domain", example.Text, example.Intent),
			})
		}
	}
	return findings
}

func (v *Validator) checkUnusedIntents() []Finding {
	used := map[string]struct{}{}
	for _, example := range v.nlu.Examples {
		base, _, _ := strings.Cut(example.Intent, training.RetrievalIntentDelimiter)
		used[base] = struct{}{}
	}
	for _, step := range v.stories.Steps {
		for _, ev := range step.Events {
			if user, ok := ev.(training.UserUttered); ok {
				used[user.IntentName] = struct{}{}
			}
		}
	}

	findings := []Finding{}
	for name := range v.domain.Intents {
		if _, ok := used[name]; !ok {
			findings = append(findings, Finding{
				Level:   LevelWarn,
				Message: fmt.Sprintf("intent %q is declared in the domain but never used in stories or NLU data", name),
			})
		}
	}
	return findings
}

func (v *Validator) checkUnusedResponses() []Finding {
	used := map[string]struct{}{}
	for _, step := range v.stories.Steps {
		for _, ev := range step.Events {
			if action, ok := ev.(training.ActionExecuted); ok {
				used[action.ActionName] = struct{}{}
			}
		}
	}
	for _, name := range v.domain.Actions {
		used[name] = struct{}{}
	}

	findings := []Finding{}
	for name := range v.domain.Responses {
		if _, ok := used[name]; !ok {
			findings = append(findings, Finding{
				Level:   LevelWarn,
				Message: fmt.Sprintf("response %q is declared in the domain but never used in a story or as an action", name),
			})
		}
	}
	return findings
}
