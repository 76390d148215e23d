package training

import (
	"reflect"
	"testing"
)

func TestDomainMerge(t *testing.T) {
	tests := []struct {
		name string
		a    Domain
		b    Domain
		want Domain
	}{
		{
			name: "Empty Identity Left",
			a:    EmptyDomain(),
			b: Domain{
				Intents:   map[string]map[string]any{"greet": {}},
				Entities:  []string{"city"},
				Slots:     map[string]Slot{"city": {Type: "text"}},
				Responses: map[string][]Response{"utter_greet": {{"text": "Hi!"}}},
				Actions:   []string{"action_check_weather"},
				Forms:     map[string]Form{"booking": {RequiredSlots: []string{"city"}}},
			},
			want: Domain{
				Intents:   map[string]map[string]any{"greet": {}},
				Entities:  []string{"city"},
				Slots:     map[string]Slot{"city": {Type: "text"}},
				Responses: map[string][]Response{"utter_greet": {{"text": "Hi!"}}},
				Actions:   []string{"action_check_weather"},
				Forms:     map[string]Form{"booking": {RequiredSlots: []string{"city"}}},
			},
		},
		{
			name: "Map Keys Overwrite With Later Value",
			a: Domain{
				Intents:   map[string]map[string]any{"greet": {"use_entities": true}},
				Responses: map[string][]Response{"utter_greet": {{"text": "Hi!"}}},
			},
			b: Domain{
				Intents:   map[string]map[string]any{"greet": {"use_entities": false}},
				Responses: map[string][]Response{"utter_greet": {{"text": "Hello!"}}},
			},
			want: Domain{
				Intents:   map[string]map[string]any{"greet": {"use_entities": false}},
				Entities:  []string{},
				Slots:     map[string]Slot{},
				Responses: map[string][]Response{"utter_greet": {{"text": "Hello!"}}},
				Actions:   []string{},
				Forms:     map[string]Form{},
			},
		},
		{
			name: "Lists Union Preserving Order",
			a:    Domain{Entities: []string{"city", "date"}, Actions: []string{"action_a"}},
			b:    Domain{Entities: []string{"date", "name"}, Actions: []string{"action_b", "action_a"}},
			want: Domain{
				Intents:   map[string]map[string]any{},
				Entities:  []string{"city", "date", "name"},
				Slots:     map[string]Slot{},
				Responses: map[string][]Response{},
				Actions:   []string{"action_a", "action_b"},
				Forms:     map[string]Form{},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Merge(tt.b)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Merge() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDomainMergeDoesNotMutate(t *testing.T) {
	a := DomainWithActions([]string{"action_a"})
	b := DomainWithActions([]string{"action_b"})

	_ = a.Merge(b)

	if len(a.Actions) != 1 || len(b.Actions) != 1 {
		t.Errorf("Merge mutated an input: a=%v b=%v", a.Actions, b.Actions)
	}
}

func TestDomainMergeEmptyIdentityRight(t *testing.T) {
	d := Domain{
		Intents:  map[string]map[string]any{"greet": {}},
		Entities: []string{"city"},
		Actions:  []string{"utter_greet"},
	}
	normalized := EmptyDomain().Merge(d)

	if got := d.Merge(EmptyDomain()); !reflect.DeepEqual(got, normalized) {
		t.Errorf("d.Merge(empty) = %+v, want %+v", got, normalized)
	}
}

func TestDomainIsEmpty(t *testing.T) {
	if !EmptyDomain().IsEmpty() {
		t.Error("EmptyDomain should be empty")
	}
	if DomainWithActions([]string{"utter_greet"}).IsEmpty() {
		t.Error("domain with an action should not be empty")
	}
}

func TestIntentProperties(t *testing.T) {
	d := Domain{Intents: map[string]map[string]any{"faq": {"is_retrieval_intent": true}}}

	if props := d.IntentProperties("faq"); props["is_retrieval_intent"] != true {
		t.Errorf("IntentProperties(faq) = %v", props)
	}
	if props := d.IntentProperties("unknown"); len(props) != 0 {
		t.Errorf("IntentProperties(unknown) = %v, want empty map", props)
	}
}
