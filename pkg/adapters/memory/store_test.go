package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/malhotra1432/rasa-1/pkg/adapters/memory"
	"github.com/malhotra1432/rasa-1/pkg/ports"
	"github.com/malhotra1432/rasa-1/pkg/training"
)

func TestMemoryStore_Contract(t *testing.T) {
	store := memory.NewStore()
	ports.RunTrackerStoreContract(t, store)
}

func TestMemoryStore_RetrieveReturnsCopy(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	require.NoError(t, store.Save(ctx, training.NewTracker("sender-1")))

	loaded, err := store.Retrieve(ctx, "sender-1")
	require.NoError(t, err)
	loaded.Update(training.UserUttered{Text: "hi", IntentName: "greet"})

	again, err := store.Retrieve(ctx, "sender-1")
	require.NoError(t, err)
	require.Len(t, again.Events, len(loaded.Events)-1)
}
