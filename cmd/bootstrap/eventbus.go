package bootstrap

import (
	"context"
	"log/slog"

	"talent-notify/internal/consumer"
	"talent-notify/internal/infra/eventbus"
	"talent-notify/internal/pkg/config"

	"github.com/nats-io/nats.go"
	"go.uber.org/fx"
)

var EventBusModule = fx.Module("eventbus",
	fx.Provide(
		NewNATSConn,
		NewSubscriber,
	),
	fx.Invoke(StartSubscriber),
)

func NewNATSConn(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*nats.Conn, error) {
	conn, err := eventbus.Connect(cfg.NATS, logger)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			conn.Close()
			return nil
		},
	})

	return conn, nil
}

func NewSubscriber(conn *nats.Conn, registry *consumer.Registry, cfg config.Config, logger *slog.Logger) *eventbus.Subscriber {
	return eventbus.NewSubscriber(conn, registry, cfg.NATS, logger)
}

func StartSubscriber(lc fx.Lifecycle, sub *eventbus.Subscriber) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			return sub.Start()
		},
		OnStop: func(_ context.Context) error {
			return sub.Stop()
		},
	})
}
