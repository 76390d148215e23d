package importers

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/malhotra1432/rasa-1/pkg/ports"
	"github.com/malhotra1432/rasa-1/pkg/training"
)

// readConfigDocument loads a YAML configuration document. A missing file or
// an empty path yields an empty config, not an error.
func readConfigDocument(path string) (training.Config, error) {
	if path == "" {
		return training.EmptyConfig(), nil
	}
	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return training.EmptyConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	var doc map[string]any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if doc == nil {
		return training.EmptyConfig(), nil
	}
	return training.Config(doc), nil
}

type rawSlot struct {
	Type         string   `yaml:"type"`
	InitialValue any      `yaml:"initial_value"`
	Values       []string `yaml:"values"`
}

type rawForm struct {
	RequiredSlots []string `yaml:"required_slots"`
}

type rawDomainFile struct {
	Intents   []any                       `yaml:"intents"`
	Entities  []string                    `yaml:"entities"`
	Slots     map[string]rawSlot          `yaml:"slots"`
	Responses map[string][]map[string]any `yaml:"responses"`
	Actions   []string                    `yaml:"actions"`
	Forms     map[string]rawForm          `yaml:"forms"`
}

// readDomainFile loads a domain YAML. A missing file or an empty path yields
// an empty domain.
func readDomainFile(path string) (training.Domain, error) {
	if path == "" {
		return training.EmptyDomain(), nil
	}
	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return training.EmptyDomain(), nil
	}
	if err != nil {
		return training.Domain{}, fmt.Errorf("failed to read domain %s: %w", path, err)
	}
	return parseDomainFile(raw, path)
}

func parseDomainFile(raw []byte, path string) (training.Domain, error) {
	var file rawDomainFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return training.Domain{}, fmt.Errorf("failed to parse domain %s: %w", path, err)
	}

	domain := training.EmptyDomain()
	// Intent entries are either a bare name or a one-key map of name to
	// property map.
	for _, item := range file.Intents {
		switch intent := item.(type) {
		case string:
			domain.Intents[intent] = map[string]any{}
		case map[string]any:
			for name, props := range intent {
				propMap, _ := props.(map[string]any)
				if propMap == nil {
					propMap = map[string]any{}
				}
				domain.Intents[name] = propMap
			}
		}
	}
	domain.Entities = append(domain.Entities, file.Entities...)
	for name, slot := range file.Slots {
		domain.Slots[name] = training.Slot{Type: slot.Type, InitialValue: slot.InitialValue, Values: slot.Values}
	}
	for name, variants := range file.Responses {
		domain.Responses[name] = toResponses(variants)
	}
	domain.Actions = append(domain.Actions, file.Actions...)
	for name, form := range file.Forms {
		domain.Forms[name] = training.Form{RequiredSlots: form.RequiredSlots}
	}
	return domain, nil
}

func toResponses(variants []map[string]any) []training.Response {
	out := make([]training.Response, 0, len(variants))
	for _, variant := range variants {
		out = append(out, training.Response(variant))
	}
	return out
}

type rawNLUBlock struct {
	Intent   string `yaml:"intent"`
	Examples string `yaml:"examples"`
}

type rawNLUFile struct {
	Language  string                      `yaml:"language"`
	NLU       []rawNLUBlock               `yaml:"nlu"`
	Responses map[string][]map[string]any `yaml:"responses"`
}

// parseNLUFile converts one NLU YAML file into training data. A file that
// declares a different language yields nothing.
func parseNLUFile(raw []byte, path, language string) (training.Data, error) {
	var file rawNLUFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return training.Data{}, fmt.Errorf("failed to parse nlu data %s: %w", path, err)
	}
	if file.Language != "" && file.Language != language {
		return training.EmptyData(), nil
	}

	data := training.EmptyData()
	for _, block := range file.NLU {
		if block.Intent == "" {
			continue
		}
		for _, example := range splitExamples(block.Examples) {
			data.Examples = append(data.Examples, training.NewMessage(example, block.Intent))
		}
	}
	for name, variants := range file.Responses {
		data.Responses[name] = toResponses(variants)
	}
	return data, nil
}

// splitExamples parses the literal "- text" list used in example blocks.
func splitExamples(block string) []string {
	examples := []string{}
	for _, line := range strings.Split(block, "\n") {
		text, ok := strings.CutPrefix(strings.TrimSpace(line), "- ")
		if !ok {
			continue
		}
		if text = strings.TrimSpace(text); text != "" {
			examples = append(examples, text)
		}
	}
	return examples
}

type rawStory struct {
	Story string           `yaml:"story"`
	Steps []map[string]any `yaml:"steps"`
}

type rawStoryFile struct {
	Stories []rawStory `yaml:"stories"`
}

// parseStoryFile converts one story YAML file into a story graph, honoring
// template substitution and end-to-end parsing options.
func parseStoryFile(raw []byte, path string, opts ports.StoryOptions) (training.StoryGraph, error) {
	var file rawStoryFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return training.StoryGraph{}, fmt.Errorf("failed to parse stories %s: %w", path, err)
	}

	graph := training.EmptyStoryGraph()
	for _, story := range file.Stories {
		step := training.StoryStep{Name: story.Story, Events: []training.Event{}}
		for _, item := range story.Steps {
			step.Events = append(step.Events, eventsFromStep(item, opts)...)
		}
		graph.Steps = append(graph.Steps, step)
	}
	return graph, nil
}

// eventsFromStep maps one story step item onto dialogue events. Literal text
// turns without an intent or action label only survive when end-to-end
// parsing is on.
func eventsFromStep(item map[string]any, opts ports.StoryOptions) []training.Event {
	events := []training.Event{}

	text, hasText := item["user"].(string)
	if intent, ok := item["intent"].(string); ok {
		events = append(events, training.UserUttered{
			Text:       substitute(text, opts.TemplateVariables),
			IntentName: intent,
		})
	} else if hasText && opts.UseE2E {
		events = append(events, training.UserUttered{
			Text: substitute(text, opts.TemplateVariables),
		})
	}

	if action, ok := item["action"].(string); ok {
		events = append(events, training.ActionExecuted{ActionName: action})
	}
	if bot, ok := item["bot"].(string); ok && opts.UseE2E {
		events = append(events, training.ActionExecuted{
			ActionText: substitute(bot, opts.TemplateVariables),
		})
	}

	if slots, ok := item["slot_was_set"].(map[string]any); ok {
		names := make([]string, 0, len(slots))
		for name := range slots {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			events = append(events, training.SlotSet{Name: name, Value: slots[name]})
		}
	}
	return events
}

func substitute(text string, vars map[string]string) string {
	for key, value := range vars {
		text = strings.ReplaceAll(text, "{"+key+"}", value)
	}
	return text
}

// applyExclusion withholds the requested fraction of story steps, keeping a
// deterministic prefix so evaluation runs are reproducible.
func applyExclusion(graph training.StoryGraph, percentage int) training.StoryGraph {
	if percentage <= 0 {
		return graph
	}
	if percentage >= 100 {
		return training.EmptyStoryGraph()
	}
	keep := len(graph.Steps) * (100 - percentage) / 100
	kept := training.EmptyStoryGraph()
	kept.Steps = append(kept.Steps, graph.Steps[:keep]...)
	return kept
}

type dataFileKind int

const (
	kindUnknown dataFileKind = iota
	kindNLU
	kindStories
)

// classifyDataFile sniffs whether a YAML file holds NLU data or stories.
func classifyDataFile(raw []byte, path string) (dataFileKind, error) {
	var probe struct {
		NLU       []any          `yaml:"nlu"`
		Responses map[string]any `yaml:"responses"`
		Stories   []any          `yaml:"stories"`
	}
	if err := yaml.Unmarshal(raw, &probe); err != nil {
		return kindUnknown, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	switch {
	case len(probe.NLU) > 0 || len(probe.Responses) > 0:
		return kindNLU, nil
	case len(probe.Stories) > 0:
		return kindStories, nil
	}
	return kindUnknown, nil
}

// collectDataFiles expands training paths into YAML files, walking
// directories. Paths that do not exist are skipped with a warning.
func collectDataFiles(paths []string, logger *slog.Logger) ([]string, error) {
	files := []string{}
	for _, path := range paths {
		if path == "" {
			continue
		}
		info, err := os.Stat(path)
		if errors.Is(err, os.ErrNotExist) {
			logger.Warn("training path does not exist, skipping", "path", path)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", path, err)
		}
		if !info.IsDir() {
			if isYAMLFile(path) {
				files = append(files, path)
			}
			continue
		}
		walkErr := filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && isYAMLFile(p) {
				files = append(files, p)
			}
			return nil
		})
		if walkErr != nil {
			return nil, fmt.Errorf("failed to walk %s: %w", path, walkErr)
		}
	}
	return files, nil
}

func isYAMLFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yml" || ext == ".yaml"
}
