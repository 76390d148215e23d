package training

import (
	"encoding/json"
	"fmt"
)

// Event is one dialogue event inside a story step or a tracker's event log.
type Event interface {
	EventType() string
}

// Event type discriminators used on the wire.
const (
	EventUser           = "user"
	EventAction         = "action"
	EventSlot           = "slot"
	EventSessionStarted = "session_started"
)

// UserUttered records the user saying something, with the intent the
// understanding component (or the story author) assigned to it.
type UserUttered struct {
	Text       string `json:"text"`
	IntentName string `json:"intent"`
}

func (UserUttered) EventType() string { return EventUser }

// ActionExecuted records the bot running an action. For end-to-end bot turns
// ActionName may be empty and ActionText carries the literal utterance.
type ActionExecuted struct {
	ActionName string `json:"name"`
	ActionText string `json:"action_text,omitempty"`
}

func (ActionExecuted) EventType() string { return EventAction }

// SlotSet records a slot taking a new value.
type SlotSet struct {
	Name  string `json:"name"`
	Value any    `json:"value"`
}

func (SlotSet) EventType() string { return EventSlot }

// SessionStarted marks the beginning of a conversation session.
type SessionStarted struct {
	SessionID string `json:"session_id"`
}

func (SessionStarted) EventType() string { return EventSessionStarted }

// eventEnvelope is the flattened wire form of every event kind, discriminated
// by the "event" field.
type eventEnvelope struct {
	Event      string `json:"event"`
	Text       string `json:"text,omitempty"`
	Intent     string `json:"intent,omitempty"`
	Name       string `json:"name,omitempty"`
	ActionText string `json:"action_text,omitempty"`
	Value      any    `json:"value,omitempty"`
	SessionID  string `json:"session_id,omitempty"`
}

// MarshalEvents encodes events as a JSON array of tagged objects.
func MarshalEvents(events []Event) ([]byte, error) {
	envelopes := make([]eventEnvelope, 0, len(events))
	for _, ev := range events {
		env := eventEnvelope{Event: ev.EventType()}
		switch e := ev.(type) {
		case UserUttered:
			env.Text = e.Text
			env.Intent = e.IntentName
		case ActionExecuted:
			env.Name = e.ActionName
			env.ActionText = e.ActionText
		case SlotSet:
			env.Name = e.Name
			env.Value = e.Value
		case SessionStarted:
			env.SessionID = e.SessionID
		default:
			return nil, fmt.Errorf("cannot marshal event type %q", ev.EventType())
		}
		envelopes = append(envelopes, env)
	}
	return json.Marshal(envelopes)
}

// UnmarshalEvents decodes a JSON array produced by MarshalEvents.
func UnmarshalEvents(data []byte) ([]Event, error) {
	var envelopes []eventEnvelope
	if err := json.Unmarshal(data, &envelopes); err != nil {
		return nil, fmt.Errorf("failed to decode events: %w", err)
	}
	events := make([]Event, 0, len(envelopes))
	for _, env := range envelopes {
		switch env.Event {
		case EventUser:
			events = append(events, UserUttered{Text: env.Text, IntentName: env.Intent})
		case EventAction:
			events = append(events, ActionExecuted{ActionName: env.Name, ActionText: env.ActionText})
		case EventSlot:
			events = append(events, SlotSet{Name: env.Name, Value: env.Value})
		case EventSessionStarted:
			events = append(events, SessionStarted{SessionID: env.SessionID})
		default:
			return nil, fmt.Errorf("unknown event type %q", env.Event)
		}
	}
	return events, nil
}
