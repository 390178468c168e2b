package commands

import (
	"context"
	"log/slog"
	"sync"

	"talent-notify/internal/domain/notification"
	"talent-notify/internal/pkg/clock"
	"talent-notify/internal/pkg/errs"
	"talent-notify/internal/pkg/metrics"

	"github.com/google/uuid"
)

var (
	ErrLogWriteFailed = errs.New("failed to record notification before send")
	ErrProviderSend   = errs.New("mail provider rejected the send")
)

// FanOutPolicy declares the retry contract of a delivery service instead of
// leaving it implicit in consumer code. AllOrNothing propagates the first
// failure to the caller so the whole event can be retried upstream;
// BestEffort isolates per-recipient failures and never fails the batch.
type FanOutPolicy int

const (
	AllOrNothing FanOutPolicy = iota
	BestEffort
)

// Delivery is one (event, recipient) send request.
type Delivery struct {
	To        string
	ToUserID  *uuid.UUID
	Subject   string
	HTML      string
	EventType string
	Template  string
	Priority  notification.Priority
	Payload   map[string]any
}

type DeliveryService interface {
	Send(ctx context.Context, d Delivery) error
	SendAll(ctx context.Context, deliveries []Delivery) error
}

type deliveryServiceImpl struct {
	family   string
	from     string
	policy   FanOutPolicy
	repo     NotificationRepository
	provider MailProvider
	clock    clock.Clock
	logger   *slog.Logger
}

func NewDeliveryService(
	family string,
	from string,
	policy FanOutPolicy,
	repo NotificationRepository,
	provider MailProvider,
	clk clock.Clock,
	logger *slog.Logger,
) DeliveryService {
	return &deliveryServiceImpl{
		family:   family,
		from:     from,
		policy:   policy,
		repo:     repo,
		provider: provider,
		clock:    clk,
		logger:   logger,
	}
}

// Send records a pending log, calls the provider, then records the terminal
// outcome. The pending write always precedes the provider call, so every
// attempt is observable even if the process dies mid-send; every path from
// the pending write reaches exactly one terminal update.
func (s *deliveryServiceImpl) Send(ctx context.Context, d Delivery) error {
	timer := s.clock.Now()

	log, err := notification.NewLog(d.EventType, d.To, d.Subject, d.Template, d.Payload, d.Priority, d.ToUserID, s.clock.Now())
	if err != nil {
		return err
	}

	logID, err := s.repo.Create(ctx, log)
	if err != nil {
		// Never send without having logged the attempt first.
		return errs.Mark(err, ErrLogWriteFailed)
	}

	messageID, sendErr := s.provider.Send(ctx, OutboundMessage{
		From:    s.from,
		To:      d.To,
		Subject: d.Subject,
		HTML:    d.HTML,
	})

	metrics.DeliveryDuration.WithLabelValues(s.family).Observe(s.clock.Now().Sub(timer).Seconds())

	if sendErr != nil {
		metrics.NotificationsFailed.WithLabelValues(s.family).Inc()
		// The terminal update must not suppress the provider outcome: a
		// failed log write is logged and the provider error still returned.
		if updateErr := s.repo.UpdateStatus(ctx, logID, notification.StatusFailed, nil, sendErr.Error()); updateErr != nil {
			s.logger.Error("failed to mark notification failed",
				"log_id", logID, "event_type", d.EventType, "error", updateErr)
		}
		s.logger.Warn("notification delivery failed",
			"log_id", logID, "event_type", d.EventType, "recipient", d.To, "error", sendErr)
		return errs.Mark(sendErr, ErrProviderSend)
	}

	metrics.NotificationsSent.WithLabelValues(s.family).Inc()
	if updateErr := s.repo.UpdateStatus(ctx, logID, notification.StatusSent, &messageID, ""); updateErr != nil {
		s.logger.Error("failed to mark notification sent",
			"log_id", logID, "event_type", d.EventType, "provider_message_id", messageID, "error", updateErr)
	}

	s.logger.Info("notification delivered",
		"log_id", logID, "event_type", d.EventType, "recipient", d.To, "provider_message_id", messageID)
	return nil
}

// SendAll dispatches a recipient fan-out under the service's policy.
func (s *deliveryServiceImpl) SendAll(ctx context.Context, deliveries []Delivery) error {
	if s.policy == BestEffort {
		var wg sync.WaitGroup
		for _, d := range deliveries {
			wg.Add(1)
			go func(d Delivery) {
				defer wg.Done()
				if err := s.Send(ctx, d); err != nil {
					// Already recorded on the log row; one bad recipient
					// must not block the siblings.
					s.logger.Error("fan-out recipient failed",
						"event_type", d.EventType, "recipient", d.To, "error", err)
				}
			}(d)
		}
		wg.Wait()
		return nil
	}

	for _, d := range deliveries {
		if err := s.Send(ctx, d); err != nil {
			return err
		}
	}
	return nil
}
