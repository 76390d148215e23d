package rasa_test

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	rasa "github.com/malhotra1432/rasa-1"
	"github.com/malhotra1432/rasa-1/pkg/importers"
	"github.com/malhotra1432/rasa-1/pkg/training"
)

// Example loads a minimal project from disk and reads its domain through the
// composed importer chain.
func Example() {
	dir, err := os.MkdirTemp("", "rasa-example")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(dir)

	configPath := filepath.Join(dir, "config.yml")
	domainPath := filepath.Join(dir, "domain.yml")
	if err := os.WriteFile(configPath, []byte("language: en\n"), 0o644); err != nil {
		log.Fatal(err)
	}
	domain := "intents:\n  - greet\nresponses:\n  utter_greet:\n    - text: \"Hello!\"\n"
	if err := os.WriteFile(domainPath, []byte(domain), 0o644); err != nil {
		log.Fatal(err)
	}

	importer, err := rasa.Load(
		rasa.WithConfigPath(configPath),
		rasa.WithDomainPath(domainPath),
	)
	if err != nil {
		log.Fatal(err)
	}

	d, err := importer.GetDomain(context.Background())
	if err != nil {
		log.Fatal(err)
	}

	_, hasGreet := d.Intents["greet"]
	fmt.Println("greet declared:", hasGreet)
	fmt.Println("responses:", len(d.Responses))
	// Output:
	// greet declared: true
	// responses: 1
}

// ExampleLoad_nluOnly builds a chain for NLU-only training, where dialogue
// data is suppressed to its empty values.
func ExampleLoad_nluOnly() {
	dir, err := os.MkdirTemp("", "rasa-example-nlu")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(dir)

	configPath := filepath.Join(dir, "config.yml")
	if err := os.WriteFile(configPath, []byte("language: en\n"), 0o644); err != nil {
		log.Fatal(err)
	}

	importer, err := rasa.Load(
		rasa.WithConfigPath(configPath),
		rasa.WithTrainingType(importers.TrainingTypeNLU),
	)
	if err != nil {
		log.Fatal(err)
	}

	stories, err := importer.GetStories(context.Background())
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("stories suppressed:", stories.IsEmpty())
	// Output:
	// stories suppressed: true
}

// ExampleDomain_Merge shows the identity law the decorators rely on: merging
// the empty domain into any domain changes nothing.
func ExampleDomain_Merge() {
	d := training.DomainWithActions([]string{"utter_greet", "action_check_weather"})
	merged := d.Merge(training.EmptyDomain())

	fmt.Println(merged.Actions)
	// Output:
	// [utter_greet action_check_weather]
}
