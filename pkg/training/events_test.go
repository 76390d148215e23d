package training

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventCodecRoundTrip(t *testing.T) {
	events := []Event{
		SessionStarted{SessionID: "s-1"},
		ActionExecuted{ActionName: ActionSessionStartName},
		UserUttered{Text: "hi there", IntentName: "greet"},
		SlotSet{Name: "city", Value: "Lisbon"},
		ActionExecuted{ActionName: "", ActionText: "Welcome to Lisbon!"},
	}

	encoded, err := MarshalEvents(events)
	require.NoError(t, err)

	decoded, err := UnmarshalEvents(encoded)
	require.NoError(t, err)
	require.Len(t, decoded, len(events))

	assert.Equal(t, events[0], decoded[0])
	assert.Equal(t, events[1], decoded[1])
	assert.Equal(t, events[2], decoded[2])
	assert.Equal(t, events[4], decoded[4])

	// JSON numbers decode as float64; compare the slot loosely.
	slot, ok := decoded[3].(SlotSet)
	require.True(t, ok)
	assert.Equal(t, "city", slot.Name)
	assert.Equal(t, "Lisbon", slot.Value)
}

func TestEventCodecTaggedForm(t *testing.T) {
	encoded, err := MarshalEvents([]Event{UserUttered{Text: "hi", IntentName: "greet"}})
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(encoded), `"event":"user"`), "wire form should tag the event kind: %s", encoded)
}

func TestUnmarshalEventsUnknownType(t *testing.T) {
	_, err := UnmarshalEvents([]byte(`[{"event":"teleport"}]`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "teleport")
}
