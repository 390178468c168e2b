package event

import (
	"encoding/json"
	"time"

	"talent-notify/internal/pkg/errs"
)

var ErrInvalidEnvelope = errs.New("invalid event envelope")

// DomainEvent is the envelope published by upstream services. The payload is
// opaque here; each consumer extracts and validates only the fields it needs.
type DomainEvent struct {
	Type      string         `json:"type"`
	Payload   map[string]any `json:"payload"`
	Timestamp time.Time      `json:"timestamp"`
}

// Decode parses a bus message into an envelope. An envelope without a type is
// rejected outright; a missing payload is normalized to an empty map so
// handlers can apply their own required-field checks.
func Decode(data []byte) (*DomainEvent, error) {
	var ev DomainEvent
	if err := json.Unmarshal(data, &ev); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "unmarshal event"), ErrInvalidEnvelope)
	}
	if ev.Type == "" {
		return nil, errs.Mark(errs.New("event type is empty"), ErrInvalidEnvelope)
	}
	if ev.Payload == nil {
		ev.Payload = map[string]any{}
	}
	return &ev, nil
}

// String returns a payload field as a non-empty string.
func (e *DomainEvent) String(key string) (string, bool) {
	v, ok := e.Payload[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

// StringOr returns a payload field as a string, or fallback when the field is
// absent, empty, or not a string.
func (e *DomainEvent) StringOr(key, fallback string) string {
	if s, ok := e.String(key); ok {
		return s
	}
	return fallback
}
