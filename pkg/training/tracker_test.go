package training

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTrackerSeedsSession(t *testing.T) {
	tracker := NewTracker("sender-1")

	require.Len(t, tracker.Events, 2)
	started, ok := tracker.Events[0].(SessionStarted)
	require.True(t, ok, "first event should be SessionStarted, got %T", tracker.Events[0])
	assert.NotEmpty(t, started.SessionID)

	action, ok := tracker.Events[1].(ActionExecuted)
	require.True(t, ok)
	assert.Equal(t, ActionSessionStartName, action.ActionName)
}

func TestTrackerUpdate(t *testing.T) {
	tracker := NewTracker("sender-1")

	tracker.Update(UserUttered{Text: "book a table", IntentName: "request_booking"})
	tracker.Update(SlotSet{Name: "guests", Value: 4})

	require.NotNil(t, tracker.LatestMessage)
	assert.Equal(t, "book a table", tracker.LatestMessage.Text)
	assert.Equal(t, "request_booking", tracker.LatestMessage.Intent)
	assert.Equal(t, 4, tracker.Slots["guests"])
	assert.Len(t, tracker.Events, 4)
}

func TestTrackerCopyIsolation(t *testing.T) {
	tracker := NewTracker("sender-1")
	tracker.Update(SlotSet{Name: "city", Value: "Porto"})

	clone := tracker.Copy()
	clone.Update(SlotSet{Name: "city", Value: "Faro"})
	clone.Update(UserUttered{Text: "hi", IntentName: "greet"})

	assert.Equal(t, "Porto", tracker.Slots["city"])
	assert.Nil(t, tracker.LatestMessage)
	assert.Equal(t, "Faro", clone.Slots["city"])
}

func TestTrackerJSONRoundTrip(t *testing.T) {
	tracker := NewTracker("sender-1")
	tracker.Update(UserUttered{Text: "hi", IntentName: "greet"})
	tracker.Paused = true

	data, err := json.Marshal(tracker)
	require.NoError(t, err)

	var loaded DialogueTracker
	require.NoError(t, json.Unmarshal(data, &loaded))

	assert.Equal(t, tracker.SenderID, loaded.SenderID)
	assert.Len(t, loaded.Events, 3)
	assert.True(t, loaded.Paused)
	require.NotNil(t, loaded.LatestMessage)
	assert.Equal(t, "greet", loaded.LatestMessage.Intent)
	assert.Equal(t, tracker.Events[0], loaded.Events[0])
}
