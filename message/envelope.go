package message

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"

	"hotel/entities"
)

type Kind string

const (
	KindRequest      Kind = "request"
	KindResponse     Kind = "response"
	KindNotification Kind = "notification"
	KindError        Kind = "error"
)

// Message is the envelope every inter-agent call travels in. It is
// immutable once constructed; payloads are JSON bytes so no agent ever
// holds a reference into another agent's state.
type Message struct {
	ID            string          `json:"message_id"`
	Sender        string          `json:"sender"`
	Receiver      string          `json:"receiver"`
	Kind          Kind            `json:"kind"`
	Action        string          `json:"action,omitempty"`
	Payload       json.RawMessage `json:"payload"`
	CorrelationID string          `json:"correlation_id,omitempty"`
	Timestamp     time.Time       `json:"timestamp"`
}

func New(sender, receiver string, kind Kind, action string, payload any) (*Message, error) {
	if sender == "" {
		return nil, fmt.Errorf("sender is required")
	}
	if receiver == "" {
		return nil, fmt.Errorf("receiver is required")
	}
	if kind == "" {
		return nil, fmt.Errorf("message kind is required")
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	return &Message{
		ID:        watermill.NewUUID(),
		Sender:    sender,
		Receiver:  receiver,
		Kind:      kind,
		Action:    action,
		Payload:   raw,
		Timestamp: time.Now().UTC(),
	}, nil
}

func NewRequest(sender, receiver, action string, payload any) (*Message, error) {
	return New(sender, receiver, KindRequest, action, payload)
}

func NewNotification(sender, action string, payload any) (*Message, error) {
	return New(sender, "observers", KindNotification, action, payload)
}

// Reply builds a Response addressed back to the sender, correlated with
// the originating request's id.
func (m *Message) Reply(payload any) (*Message, error) {
	resp, err := New(m.Receiver, m.Sender, KindResponse, "", payload)
	if err != nil {
		return nil, err
	}
	resp.CorrelationID = m.ID
	return resp, nil
}

// ErrorReply normalizes a failure into an Error-kind response so that
// faults never cross an agent boundary as raw panics or Go errors.
func (m *Message) ErrorReply(text string) *Message {
	payload, _ := json.Marshal(entities.ErrorPayload{
		Status:  entities.StatusError,
		Message: text,
	})

	return &Message{
		ID:            watermill.NewUUID(),
		Sender:        m.Receiver,
		Receiver:      m.Sender,
		Kind:          KindError,
		Payload:       payload,
		CorrelationID: m.ID,
		Timestamp:     time.Now().UTC(),
	}
}

func (m *Message) Decode(v any) error {
	if err := json.Unmarshal(m.Payload, v); err != nil {
		return fmt.Errorf("failed to decode %s payload: %w", m.Kind, err)
	}
	return nil
}

func (m *Message) IsError() bool {
	return m.Kind == KindError
}
