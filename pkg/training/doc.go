/*
Package training contains the core data model for assembling training data:
the bot Domain, NLU training examples, dialogue stories, and the dialogue
tracker that records a running conversation.

Every aggregate supports an empty constructor and a Merge operation. Merge
returns a new value and never mutates either side; merging the empty value
into any aggregate yields an equivalent aggregate. These two laws are what
the importer layer builds on when it folds data from multiple sources.

# Key Entities

  - Domain: intents, entities, slots, responses, actions, and forms the bot supports.
  - Data: NLU training examples (Messages) plus response templates.
  - StoryGraph: authored example dialogues as ordered event sequences.
  - DialogueTracker: the event log and slot state of one conversation.

This package is kept free of I/O and persistence. Reading files is the job
of the importers; storing trackers is the job of the store adapters.
*/
package training
