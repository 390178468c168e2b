package consumer

import (
	"context"
	"log/slog"

	"talent-notify/internal/domain/event"
	"talent-notify/internal/domain/notification"
	"talent-notify/internal/mail/template"
	"talent-notify/internal/usecase/commands"
)

const (
	EventServiceUnhealthy = "monitor.service_unhealthy"
	EventServiceRecovered = "monitor.service_recovered"
)

// HealthConsumer fans operational alerts out to the configured operator
// list. Recipients are passed at construction, not read from the
// environment here; an empty list disables alerting with a warning rather
// than failing event processing.
type HealthConsumer struct {
	delivery   commands.DeliveryService
	recipients []string
	logger     *slog.Logger
}

func NewHealthConsumer(delivery commands.DeliveryService, recipients []string, logger *slog.Logger) *HealthConsumer {
	return &HealthConsumer{
		delivery:   delivery,
		recipients: recipients,
		logger:     logger,
	}
}

func (c *HealthConsumer) Register(r *Registry) {
	r.Register("health", EventServiceUnhealthy, c.HandleServiceUnhealthy)
	r.Register("health", EventServiceRecovered, c.HandleServiceRecovered)
}

func (c *HealthConsumer) HandleServiceUnhealthy(ctx context.Context, ev *event.DomainEvent) error {
	service, err := requireField(ev, "service")
	if err != nil {
		return err
	}
	if len(c.recipients) == 0 {
		c.logger.Warn("no alert recipients configured, skipping service alert", "service", service)
		return nil
	}

	msg := template.ServiceUnhealthy(template.ServiceUnhealthyData{
		Service:     service,
		Status:      ev.StringOr("status", ""),
		ErrorDetail: ev.StringOr("error", ""),
		CheckedAt:   ev.Timestamp,
	})

	payload := map[string]any{
		"service": service,
		"status":  ev.StringOr("status", ""),
	}

	deliveries := make([]commands.Delivery, 0, len(c.recipients))
	for _, to := range c.recipients {
		deliveries = append(deliveries, commands.Delivery{
			To:        to,
			Subject:   msg.Subject,
			HTML:      msg.HTML,
			EventType: EventServiceUnhealthy,
			Template:  template.KindServiceUnhealthy,
			Priority:  notification.PriorityHigh,
			Payload:   payload,
		})
	}

	// Best-effort fan-out: each recipient's log row is the durable record of
	// who actually got the alert.
	return c.delivery.SendAll(ctx, deliveries)
}

func (c *HealthConsumer) HandleServiceRecovered(ctx context.Context, ev *event.DomainEvent) error {
	service, err := requireField(ev, "service")
	if err != nil {
		return err
	}
	if len(c.recipients) == 0 {
		c.logger.Warn("no alert recipients configured, skipping recovery notice", "service", service)
		return nil
	}

	msg := template.ServiceRecovered(template.ServiceRecoveredData{
		Service:     service,
		DownFor:     ev.StringOr("down_for", ""),
		RecoveredAt: ev.Timestamp,
	})

	deliveries := make([]commands.Delivery, 0, len(c.recipients))
	for _, to := range c.recipients {
		deliveries = append(deliveries, commands.Delivery{
			To:        to,
			Subject:   msg.Subject,
			HTML:      msg.HTML,
			EventType: EventServiceRecovered,
			Template:  template.KindServiceRecovered,
			Payload:   map[string]any{"service": service},
		})
	}

	return c.delivery.SendAll(ctx, deliveries)
}
