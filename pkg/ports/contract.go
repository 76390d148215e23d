package ports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/malhotra1432/rasa-1/pkg/training"
)

// RunTrackerStoreContract runs a suite of tests verifying that a TrackerStore
// implementation adheres to the interface contract.
func RunTrackerStoreContract(t *testing.T, store TrackerStore) {
	ctx := context.Background()
	senderID := "contract-test-sender-" + time.Now().Format("20060102150405")

	t.Run("Save and Retrieve", func(t *testing.T) {
		tracker := training.NewTracker(senderID)
		tracker.Update(training.UserUttered{Text: "hello", IntentName: "greet"})
		tracker.Update(training.SlotSet{Name: "name", Value: "ana"})

		err := store.Save(ctx, tracker)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Retrieve(ctx, senderID)
		require.NoError(t, err, "Retrieve should not return error")
		assert.Equal(t, senderID, loaded.SenderID)
		assert.Equal(t, "ana", loaded.Slots["name"])
		require.NotNil(t, loaded.LatestMessage)
		assert.Equal(t, "hello", loaded.LatestMessage.Text)
		assert.Equal(t, "greet", loaded.LatestMessage.Intent)
		assert.Len(t, loaded.Events, len(tracker.Events))
	})

	t.Run("Retrieve Non-Existent", func(t *testing.T) {
		_, err := store.Retrieve(ctx, "non-existent-"+senderID)
		assert.ErrorIs(t, err, training.ErrTrackerNotFound)
	})

	t.Run("Save Overwrites", func(t *testing.T) {
		tracker := training.NewTracker(senderID)
		require.NoError(t, store.Save(ctx, tracker))

		tracker.Update(training.UserUttered{Text: "bye", IntentName: "goodbye"})
		require.NoError(t, store.Save(ctx, tracker))

		loaded, err := store.Retrieve(ctx, senderID)
		require.NoError(t, err)
		require.NotNil(t, loaded.LatestMessage)
		assert.Equal(t, "goodbye", loaded.LatestMessage.Intent)
	})

	t.Run("Keys", func(t *testing.T) {
		id1 := senderID + "-1"
		id2 := senderID + "-2"
		_ = store.Save(ctx, training.NewTracker(id1))
		_ = store.Save(ctx, training.NewTracker(id2))

		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		keys, err := store.Keys(ctx)
		require.NoError(t, err)
		assert.Contains(t, keys, id1)
		assert.Contains(t, keys, id2)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, training.NewTracker(senderID)))

		err := store.Delete(ctx, senderID)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Retrieve(ctx, senderID)
		assert.ErrorIs(t, err, training.ErrTrackerNotFound, "Retrieve after Delete should return ErrTrackerNotFound")
	})

	t.Run("Isolation", func(t *testing.T) {
		tracker := training.NewTracker(senderID)
		require.NoError(t, store.Save(ctx, tracker))
		defer func() { _ = store.Delete(ctx, senderID) }()

		tracker.Update(training.SlotSet{Name: "mutated", Value: true})

		loaded, err := store.Retrieve(ctx, senderID)
		require.NoError(t, err)
		_, ok := loaded.Slots["mutated"]
		assert.False(t, ok, "mutating a saved tracker must not affect the stored copy")
	})
}
