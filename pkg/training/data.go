package training

import (
	"sort"
	"strings"
)

// Message is a single training example. User examples carry Text and Intent;
// action examples carry ActionName and, for end-to-end bot turns, the literal
// ActionText that was uttered.
type Message struct {
	Text       string `json:"text,omitempty"`
	Intent     string `json:"intent,omitempty"`
	ActionName string `json:"action_name,omitempty"`
	ActionText string `json:"action_text,omitempty"`
}

// NewMessage builds a user example from raw text and its intent label.
func NewMessage(text, intent string) Message {
	return Message{Text: text, Intent: intent}
}

// MessageFromAction builds the canonical example representing "performing
// this action", used to teach policies about bot turns.
func MessageFromAction(actionName, actionText string) Message {
	return Message{ActionName: actionName, ActionText: actionText}
}

// Data holds NLU training content: labeled examples plus the response
// templates that belong with them.
type Data struct {
	Examples  []Message             `json:"examples"`
	Responses map[string][]Response `json:"responses"`
}

// EmptyData returns training data with no content. Collection fields are
// allocated so the result compares equal to any merge of empty data.
func EmptyData() Data {
	return Data{
		Examples:  []Message{},
		Responses: map[string][]Response{},
	}
}

// DataFromResponses builds training data carrying only response templates,
// no examples.
func DataFromResponses(responses map[string][]Response) Data {
	d := EmptyData()
	for name, variants := range responses {
		d.Responses[name] = variants
	}
	return d
}

// IsEmpty reports whether the data carries no examples and no responses.
func (t Data) IsEmpty() bool {
	return len(t.Examples) == 0 && len(t.Responses) == 0
}

// Merge combines two data sets into a new one without mutating either side.
// Example sequences concatenate in input order; response maps union with
// other's entries winning on key collisions.
func (t Data) Merge(other Data) Data {
	merged := EmptyData()
	merged.Examples = append(merged.Examples, t.Examples...)
	merged.Examples = append(merged.Examples, other.Examples...)
	for name, variants := range t.Responses {
		merged.Responses[name] = variants
	}
	for name, variants := range other.Responses {
		merged.Responses[name] = variants
	}
	return merged
}

// RetrievalIntents returns the sorted set of retrieval intent names found in
// the examples. An example labeled "chitchat/ask_name" contributes the
// retrieval intent "chitchat".
func (t Data) RetrievalIntents() []string {
	seen := map[string]struct{}{}
	for _, ex := range t.Examples {
		base, _, found := strings.Cut(ex.Intent, RetrievalIntentDelimiter)
		if !found || base == "" {
			continue
		}
		seen[base] = struct{}{}
	}
	intents := make([]string, 0, len(seen))
	for name := range seen {
		intents = append(intents, name)
	}
	sort.Strings(intents)
	return intents
}
