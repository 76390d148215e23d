package training

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// DialogueTracker records the state of one conversation: the full event log,
// the current slot values, and the most recent user message.
type DialogueTracker struct {
	SenderID      string
	Events        []Event
	Slots         map[string]any
	LatestMessage *Message
	Paused        bool
}

// NewTracker starts a fresh tracker for a sender, seeding the events the
// runtime emits at the start of every session.
func NewTracker(senderID string) *DialogueTracker {
	t := &DialogueTracker{
		SenderID: senderID,
		Events:   []Event{},
		Slots:    map[string]any{},
	}
	t.Update(SessionStarted{SessionID: uuid.NewString()})
	t.Update(ActionExecuted{ActionName: ActionSessionStartName})
	return t
}

// Update appends the event to the log and applies its effect on the tracker.
func (t *DialogueTracker) Update(ev Event) {
	t.Events = append(t.Events, ev)
	switch e := ev.(type) {
	case SlotSet:
		if t.Slots == nil {
			t.Slots = map[string]any{}
		}
		t.Slots[e.Name] = e.Value
	case UserUttered:
		msg := NewMessage(e.Text, e.IntentName)
		t.LatestMessage = &msg
	}
}

// Copy returns an independent copy of the tracker. Stores hand out copies so
// callers cannot mutate persisted state in place.
func (t *DialogueTracker) Copy() *DialogueTracker {
	clone := &DialogueTracker{
		SenderID: t.SenderID,
		Events:   append([]Event{}, t.Events...),
		Slots:    map[string]any{},
		Paused:   t.Paused,
	}
	for name, value := range t.Slots {
		clone.Slots[name] = value
	}
	if t.LatestMessage != nil {
		msg := *t.LatestMessage
		clone.LatestMessage = &msg
	}
	return clone
}

type trackerEnvelope struct {
	SenderID      string          `json:"sender_id"`
	Events        json.RawMessage `json:"events"`
	Slots         map[string]any  `json:"slots"`
	LatestMessage *Message        `json:"latest_message,omitempty"`
	Paused        bool            `json:"paused,omitempty"`
}

// MarshalJSON encodes the tracker with its events in tagged wire form.
func (t *DialogueTracker) MarshalJSON() ([]byte, error) {
	events, err := MarshalEvents(t.Events)
	if err != nil {
		return nil, fmt.Errorf("failed to encode tracker events: %w", err)
	}
	return json.Marshal(trackerEnvelope{
		SenderID:      t.SenderID,
		Events:        events,
		Slots:         t.Slots,
		LatestMessage: t.LatestMessage,
		Paused:        t.Paused,
	})
}

// UnmarshalJSON decodes a tracker produced by MarshalJSON.
func (t *DialogueTracker) UnmarshalJSON(data []byte) error {
	var env trackerEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return fmt.Errorf("failed to decode tracker: %w", err)
	}
	events := []Event{}
	if len(env.Events) > 0 {
		decoded, err := UnmarshalEvents(env.Events)
		if err != nil {
			return fmt.Errorf("failed to decode tracker events: %w", err)
		}
		events = decoded
	}
	slots := env.Slots
	if slots == nil {
		slots = map[string]any{}
	}
	t.SenderID = env.SenderID
	t.Events = events
	t.Slots = slots
	t.LatestMessage = env.LatestMessage
	t.Paused = env.Paused
	return nil
}
