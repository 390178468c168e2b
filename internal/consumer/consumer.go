// Package consumer maps domain events from the bus to notification sends.
// One consumer per notification family; each handler validates its payload
// once at the boundary, resolves recipients, renders the message, and hands
// it to the family's delivery service.
package consumer

import (
	"context"
	"errors"
	"log/slog"

	"talent-notify/internal/domain/event"
	"talent-notify/internal/pkg/errs"
	"talent-notify/internal/pkg/metrics"
)

// ErrMalformedEvent marks an event whose payload is missing required fields.
// The subscriber logs and skips these instead of redelivering: a payload that
// failed validation once will fail it forever.
var ErrMalformedEvent = errs.New("malformed event payload")

// Handler processes one decoded domain event.
type Handler func(ctx context.Context, ev *event.DomainEvent) error

type registration struct {
	family  string
	handler Handler
}

// Registry routes decoded events to family handlers by event type.
type Registry struct {
	handlers map[string]registration
	logger   *slog.Logger
}

func NewRegistry(logger *slog.Logger) *Registry {
	return &Registry{
		handlers: make(map[string]registration),
		logger:   logger,
	}
}

func (r *Registry) Register(family, eventType string, h Handler) {
	r.handlers[eventType] = registration{family: family, handler: h}
}

// Handle dispatches one event. Unknown types and malformed payloads are
// skipped (logged, counted), not failed: only real delivery errors propagate
// to the bus layer, where they govern whole-event retry.
func (r *Registry) Handle(ctx context.Context, ev *event.DomainEvent) error {
	reg, ok := r.handlers[ev.Type]
	if !ok {
		r.logger.Debug("no handler registered for event type", "event_type", ev.Type)
		return nil
	}

	if err := reg.handler(ctx, ev); err != nil {
		if errors.Is(err, ErrMalformedEvent) {
			metrics.EventsSkipped.WithLabelValues(reg.family).Inc()
			r.logger.Warn("skipping malformed event",
				"event_type", ev.Type, "family", reg.family, "error", err)
			return nil
		}
		return err
	}
	return nil
}

// requireField extracts a required string payload field or fails the event
// as malformed.
func requireField(ev *event.DomainEvent, key string) (string, error) {
	v, ok := ev.String(key)
	if !ok {
		return "", errs.Mark(errs.New("missing required payload field: "+key), ErrMalformedEvent)
	}
	return v, nil
}
