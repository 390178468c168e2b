//go:build unit

package consumer_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"talent-notify/internal/consumer"
	"talent-notify/internal/domain/event"
	"talent-notify/internal/domain/notification"
	"talent-notify/internal/usecase/commands"
	commandsmock "talent-notify/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHealthConsumer_HandleServiceUnhealthy(t *testing.T) {
	ctx := context.Background()
	recipients := []string{"ops-a@talenthub.example", "ops-b@talenthub.example"}

	t.Run("fans out one high-priority delivery per configured recipient", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		delivery := commandsmock.NewMockDeliveryService(ctrl)
		delivery.EXPECT().
			SendAll(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, deliveries []commands.Delivery) error {
				require.Len(t, deliveries, 2)
				assert.Equal(t, "ops-a@talenthub.example", deliveries[0].To)
				assert.Equal(t, "ops-b@talenthub.example", deliveries[1].To)
				for _, d := range deliveries {
					assert.Equal(t, "monitor.service_unhealthy", d.EventType)
					assert.Equal(t, notification.PriorityHigh, d.Priority)
					assert.Contains(t, d.Subject, "billing-api")
				}
				return nil
			})

		c := consumer.NewHealthConsumer(delivery, recipients, slog.Default())
		err := c.HandleServiceUnhealthy(ctx, &event.DomainEvent{
			Type:      consumer.EventServiceUnhealthy,
			Payload:   map[string]any{"service": "billing-api", "status": "timeout"},
			Timestamp: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		})
		assert.NoError(t, err)
	})

	t.Run("handler resolves even when recipients fail: policy is best effort", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// SendAll under BestEffort always returns nil after attempting all
		// recipients; the handler surfaces no error either way.
		delivery := commandsmock.NewMockDeliveryService(ctrl)
		delivery.EXPECT().SendAll(ctx, gomock.Any()).Return(nil)

		c := consumer.NewHealthConsumer(delivery, recipients, slog.Default())
		err := c.HandleServiceUnhealthy(ctx, &event.DomainEvent{
			Type:    consumer.EventServiceUnhealthy,
			Payload: map[string]any{"service": "billing-api"},
		})
		assert.NoError(t, err)
	})

	t.Run("no recipients configured: warns and no-ops", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		delivery := commandsmock.NewMockDeliveryService(ctrl)
		// no SendAll expected

		c := consumer.NewHealthConsumer(delivery, nil, slog.Default())
		err := c.HandleServiceUnhealthy(ctx, &event.DomainEvent{
			Type:    consumer.EventServiceUnhealthy,
			Payload: map[string]any{"service": "billing-api"},
		})
		assert.NoError(t, err)
	})

	t.Run("missing service field is malformed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		c := consumer.NewHealthConsumer(commandsmock.NewMockDeliveryService(ctrl), recipients, slog.Default())
		err := c.HandleServiceUnhealthy(ctx, &event.DomainEvent{
			Type:    consumer.EventServiceUnhealthy,
			Payload: map[string]any{},
		})
		assert.ErrorIs(t, err, consumer.ErrMalformedEvent)
	})
}

func TestHealthConsumer_HandleServiceRecovered(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	delivery := commandsmock.NewMockDeliveryService(ctrl)
	delivery.EXPECT().
		SendAll(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, deliveries []commands.Delivery) error {
			require.Len(t, deliveries, 1)
			assert.Equal(t, "monitor.service_recovered", deliveries[0].EventType)
			// recovery notices are normal priority; only degraded-condition
			// mail rides at high
			assert.NotEqual(t, notification.PriorityHigh, deliveries[0].Priority)
			return nil
		})

	c := consumer.NewHealthConsumer(delivery, []string{"ops-a@talenthub.example"}, slog.Default())
	err := c.HandleServiceRecovered(ctx, &event.DomainEvent{
		Type:    consumer.EventServiceRecovered,
		Payload: map[string]any{"service": "billing-api", "down_for": "4m30s"},
	})
	assert.NoError(t, err)
}
