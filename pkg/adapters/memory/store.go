package memory

import (
	"context"
	"sync"

	"github.com/malhotra1432/rasa-1/pkg/training"
)

// Store implements ports.TrackerStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]*training.DialogueTracker
	mu   sync.RWMutex
}

// NewStore creates a new in-memory tracker store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]*training.DialogueTracker),
	}
}

// Save persists the tracker in memory. The store keeps its own copy so later
// mutations by the caller do not leak into persisted state.
func (s *Store) Save(ctx context.Context, tracker *training.DialogueTracker) error {
	copied := tracker.Copy()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[tracker.SenderID] = copied
	return nil
}

// Retrieve loads the tracker for a sender ID. Returns a copy so the caller
// cannot mutate store state directly by pointer.
func (s *Store) Retrieve(ctx context.Context, senderID string) (*training.DialogueTracker, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tracker, ok := s.data[senderID]
	if !ok {
		return nil, training.ErrTrackerNotFound
	}
	return tracker.Copy(), nil
}

// Keys lists the sender IDs with a stored tracker.
func (s *Store) Keys(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.data))
	for senderID := range s.data {
		keys = append(keys, senderID)
	}
	return keys, nil
}

// Delete removes the tracker for a sender ID.
func (s *Store) Delete(ctx context.Context, senderID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, senderID)
	return nil
}
