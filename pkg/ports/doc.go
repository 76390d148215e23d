/*
Package ports defines the driven ports (interfaces) for the training-data layer.

These interfaces decouple data consumers from the places data actually lives,
allowing the importer chain to aggregate from files, multi-project trees, or
host-registered sources, and dialogue trackers to persist to memory, Redis,
or SQL backends.

# Key Interfaces

  - TrainingDataImporter: the four-operation contract every importer variant implements.
  - TrackerStore: persistence for dialogue trackers, keyed by sender ID.
*/
package ports
