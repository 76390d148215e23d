package training

// Response is one variant payload of a response template, e.g. {"text": "Hi!"}.
type Response map[string]any

// Slot declares a piece of conversation state the bot keeps track of.
type Slot struct {
	Type         string   `json:"type"`
	InitialValue any      `json:"initial_value,omitempty"`
	Values       []string `json:"values,omitempty"`
}

// Form declares a slot-filling form and the slots it must collect.
type Form struct {
	RequiredSlots []string `json:"required_slots,omitempty"`
}

// Domain describes everything the bot can understand and do: the intents it
// recognizes, the entities and slots it tracks, the responses it can send,
// and the actions and forms it can run.
type Domain struct {
	// Intents maps each intent name to its property map (e.g. use_entities,
	// is_retrieval_intent). An intent with no properties maps to an empty map.
	Intents map[string]map[string]any `json:"intents"`

	Entities  []string              `json:"entities"`
	Slots     map[string]Slot       `json:"slots"`
	Responses map[string][]Response `json:"responses"`
	Actions   []string              `json:"actions"`
	Forms     map[string]Form       `json:"forms"`
}

// EmptyDomain returns a domain with no content. All collection fields are
// allocated so the result compares equal to any merge of empty domains.
func EmptyDomain() Domain {
	return Domain{
		Intents:   map[string]map[string]any{},
		Entities:  []string{},
		Slots:     map[string]Slot{},
		Responses: map[string][]Response{},
		Actions:   []string{},
		Forms:     map[string]Form{},
	}
}

// DomainWithActions builds a domain containing only the given action names.
func DomainWithActions(actions []string) Domain {
	d := EmptyDomain()
	d.Actions = append(d.Actions, actions...)
	return d
}

// IsEmpty reports whether the domain carries no content at all.
func (d Domain) IsEmpty() bool {
	return len(d.Intents) == 0 &&
		len(d.Entities) == 0 &&
		len(d.Slots) == 0 &&
		len(d.Responses) == 0 &&
		len(d.Actions) == 0 &&
		len(d.Forms) == 0
}

// Merge combines two domains into a new one without mutating either side.
// Map fields union key-wise with other's entries winning on collisions; list
// fields keep input order and drop duplicates, keeping the first occurrence.
func (d Domain) Merge(other Domain) Domain {
	merged := EmptyDomain()
	for name, props := range d.Intents {
		merged.Intents[name] = props
	}
	for name, props := range other.Intents {
		merged.Intents[name] = props
	}
	merged.Entities = unionStrings(d.Entities, other.Entities)
	for name, slot := range d.Slots {
		merged.Slots[name] = slot
	}
	for name, slot := range other.Slots {
		merged.Slots[name] = slot
	}
	for name, variants := range d.Responses {
		merged.Responses[name] = variants
	}
	for name, variants := range other.Responses {
		merged.Responses[name] = variants
	}
	merged.Actions = unionStrings(d.Actions, other.Actions)
	for name, form := range d.Forms {
		merged.Forms[name] = form
	}
	for name, form := range other.Forms {
		merged.Forms[name] = form
	}
	return merged
}

// IntentProperties returns the property map of the named intent, or an empty
// map if the domain does not declare it.
func (d Domain) IntentProperties(name string) map[string]any {
	if props, ok := d.Intents[name]; ok && props != nil {
		return props
	}
	return map[string]any{}
}

func unionStrings(a, b []string) []string {
	out := make([]string, 0, len(a)+len(b))
	seen := make(map[string]struct{}, len(a)+len(b))
	for _, s := range a {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	for _, s := range b {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
