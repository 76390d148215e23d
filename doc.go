/*
Package rasa loads and reconciles the training data of a conversational agent: the domain (what the bot can do), dialogue stories, NLU examples, and the pipeline configuration.

It is the data-aggregation layer of a training pipeline. One or more leaf importers read raw project files; a chain of decorators combines their results, keeps retrieval-intent metadata consistent between domain and NLU data, and synthesizes training examples from end-to-end dialogue scripts. Callers only ever see the outermost importer.

# Concept

Every importer, leaf or decorator, exposes the same four operations: GetDomain, GetStories, GetConfig, and GetNLUData. Decorators own the importers they wrap and transform results on the way out, so composing behavior is just nesting constructors. Missing data is never an error: an importer with nothing to offer returns the empty value of the type.

# Key Features

  - Composed imports: several projects' data merged into one consistent view.
  - Retrieval intents: response-selector metadata reconciled automatically.
  - End-to-end enrichment: literal dialogue text lifted into NLU examples and domain actions.
  - Configurable leaves: the configuration document picks and parameterizes importer variants.

# Usage

Build a chain with Load and read the artifacts from it.

	package main

	import (
		"context"
		"log"

		rasa "github.com/malhotra1432/rasa-1"
	)

	func main() {
		importer, err := rasa.Load(
			rasa.WithConfigPath("config.yml"),
			rasa.WithDomainPath("domain.yml"),
			rasa.WithTrainingPaths("data"),
		)
		if err != nil {
			log.Fatal(err)
		}

		ctx := context.Background()

		domain, err := importer.GetDomain(ctx)
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("domain declares %d intents", len(domain.Intents))

		nlu, err := importer.GetNLUData(ctx, "en")
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("%d training examples", len(nlu.Examples))
	}
*/
package rasa
