package ports

import (
	"context"

	"github.com/malhotra1432/rasa-1/pkg/training"
)

// TrackerStore defines the interface for persisting dialogue trackers.
// Conversations survive process restarts when backed by a durable store.
type TrackerStore interface {
	// Save persists the tracker under its sender ID.
	Save(ctx context.Context, tracker *training.DialogueTracker) error

	// Retrieve loads the tracker for a sender ID.
	// Returns training.ErrTrackerNotFound if no tracker exists.
	Retrieve(ctx context.Context, senderID string) (*training.DialogueTracker, error)

	// Keys lists the sender IDs with a stored tracker.
	Keys(ctx context.Context) ([]string, error)

	// Delete removes the tracker for a sender ID.
	Delete(ctx context.Context, senderID string) error
}
