package training

// Config is the training pipeline configuration document, kept as a free-form
// mapping. Pipeline and policy schemas belong to the training framework, not
// to the data layer.
type Config map[string]any

// EmptyConfig returns a configuration with no keys.
func EmptyConfig() Config {
	return Config{}
}

// IsEmpty reports whether the configuration has no keys.
func (c Config) IsEmpty() bool {
	return len(c) == 0
}

// Merge combines two configurations into a new one. Other's entries win on
// key collisions.
func (c Config) Merge(other Config) Config {
	merged := EmptyConfig()
	for key, value := range c {
		merged[key] = value
	}
	for key, value := range other {
		merged[key] = value
	}
	return merged
}
