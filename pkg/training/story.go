package training

// StoryStep is one named dialogue path: an ordered sequence of events.
type StoryStep struct {
	Name   string  `json:"name"`
	Events []Event `json:"events"`
}

// StoryGraph aggregates story steps. Steps are kept in authoring order;
// deduplication is not this layer's concern.
type StoryGraph struct {
	Steps []StoryStep `json:"steps"`
}

// EmptyStoryGraph returns a graph with no steps.
func EmptyStoryGraph() StoryGraph {
	return StoryGraph{Steps: []StoryStep{}}
}

// IsEmpty reports whether the graph has no steps.
func (g StoryGraph) IsEmpty() bool {
	return len(g.Steps) == 0
}

// Merge combines two graphs into a new one by concatenating their steps.
func (g StoryGraph) Merge(other StoryGraph) StoryGraph {
	merged := EmptyStoryGraph()
	merged.Steps = append(merged.Steps, g.Steps...)
	merged.Steps = append(merged.Steps, other.Steps...)
	return merged
}
