package eventbus

import (
	"context"
	"log/slog"
	"time"

	"talent-notify/internal/consumer"
	"talent-notify/internal/domain/event"
	"talent-notify/internal/pkg/config"

	"github.com/nats-io/nats.go"
)

const handleTimeout = 30 * time.Second

// Connect dials the bus with indefinite reconnects. Upstream producers keep
// publishing whether or not this service is up; missing a reconnect window
// just means missed notifications.
func Connect(cfg config.NATSConfig, logger *slog.Logger) (*nats.Conn, error) {
	return nats.Connect(cfg.URL,
		nats.Name("talent-notify"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			logger.Warn("nats disconnected", "error", err)
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("nats reconnected", "url", nc.ConnectedUrl())
		}),
	)
}

// Subscriber consumes the event stream and feeds the consumer registry.
type Subscriber struct {
	conn     *nats.Conn
	registry *consumer.Registry
	cfg      config.NATSConfig
	logger   *slog.Logger
	sub      *nats.Subscription
}

func NewSubscriber(conn *nats.Conn, registry *consumer.Registry, cfg config.NATSConfig, logger *slog.Logger) *Subscriber {
	return &Subscriber{
		conn:     conn,
		registry: registry,
		cfg:      cfg,
		logger:   logger,
	}
}

// Start subscribes to every subject under the configured prefix. The queue
// group spreads events across replicas so each event is handled once.
func (s *Subscriber) Start() error {
	subject := s.cfg.SubjectPrefix + ".>"

	sub, err := s.conn.QueueSubscribe(subject, s.cfg.QueueGroup, s.handleMessage)
	if err != nil {
		return err
	}
	s.sub = sub

	s.logger.Info("subscribed to event stream",
		"subject", subject, "queue_group", s.cfg.QueueGroup)
	return nil
}

func (s *Subscriber) Stop() error {
	if s.sub == nil {
		return nil
	}
	return s.sub.Drain()
}

func (s *Subscriber) handleMessage(msg *nats.Msg) {
	ev, err := event.Decode(msg.Data)
	if err != nil {
		// A broken envelope can never succeed on redelivery; drop it.
		s.logger.Warn("dropping undecodable event", "subject", msg.Subject, "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), handleTimeout)
	defer cancel()

	if err := s.registry.Handle(ctx, ev); err != nil {
		s.logger.Error("event handling failed",
			"subject", msg.Subject, "event_type", ev.Type, "error", err)
	}
}
