//go:build unit

package commands_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"talent-notify/internal/domain/notification"
	"talent-notify/internal/pkg/clock"
	"talent-notify/internal/usecase/commands"
	commandsmock "talent-notify/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newService(t *testing.T, policy commands.FanOutPolicy, repo commands.NotificationRepository, provider commands.MailProvider) commands.DeliveryService {
	t.Helper()
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	return commands.NewDeliveryService("billing", "notifications@talenthub.example", policy, repo, provider, clk, slog.Default())
}

func delivery(to string) commands.Delivery {
	return commands.Delivery{
		To:        to,
		Subject:   "Your payout account is connected",
		HTML:      "<!DOCTYPE html><html></html>",
		EventType: "recruiter.stripe_connect_onboarded",
		Template:  "stripe_connect_onboarded",
		Payload:   map[string]any{"recruiter_id": "r1"},
	}
}

func TestDeliveryService_Send(t *testing.T) {
	ctx := context.Background()
	logID := uuid.New()

	t.Run("success: pending log written before send, then marked sent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := commandsmock.NewMockNotificationRepository(ctrl)
		provider := commandsmock.NewMockMailProvider(ctrl)

		createCall := repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, log *notification.Log) (uuid.UUID, error) {
				assert.Equal(t, notification.StatusPending, log.Status())
				assert.Equal(t, "jane@x.com", log.RecipientEmail())
				assert.Equal(t, "recruiter.stripe_connect_onboarded", log.EventType())
				return logID, nil
			})
		sendCall := provider.EXPECT().
			Send(ctx, commands.OutboundMessage{
				From:    "notifications@talenthub.example",
				To:      "jane@x.com",
				Subject: "Your payout account is connected",
				HTML:    "<!DOCTYPE html><html></html>",
			}).
			Return("msg_123", nil)
		updateCall := repo.EXPECT().
			UpdateStatus(ctx, logID, notification.StatusSent, gomock.Any(), "").
			DoAndReturn(func(_ context.Context, _ uuid.UUID, _ notification.Status, providerMessageID *string, _ string) error {
				assert.Equal(t, "msg_123", *providerMessageID)
				return nil
			})
		gomock.InOrder(createCall, sendCall, updateCall)

		err := newService(t, commands.AllOrNothing, repo, provider).Send(ctx, delivery("jane@x.com"))
		assert.NoError(t, err)
	})

	t.Run("provider error: log marked failed, error re-raised", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := commandsmock.NewMockNotificationRepository(ctrl)
		provider := commandsmock.NewMockMailProvider(ctrl)

		repo.EXPECT().Create(ctx, gomock.Any()).Return(logID, nil)
		provider.EXPECT().Send(ctx, gomock.Any()).Return("", errors.New("smtp 550 rejected"))
		repo.EXPECT().UpdateStatus(ctx, logID, notification.StatusFailed, nil, "smtp 550 rejected").Return(nil)

		err := newService(t, commands.AllOrNothing, repo, provider).Send(ctx, delivery("jane@x.com"))
		assert.ErrorIs(t, err, commands.ErrProviderSend)
	})

	t.Run("pending write failure aborts the send", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := commandsmock.NewMockNotificationRepository(ctrl)
		provider := commandsmock.NewMockMailProvider(ctrl)

		repo.EXPECT().Create(ctx, gomock.Any()).Return(uuid.Nil, errors.New("db down"))
		// no provider call, no status update

		err := newService(t, commands.AllOrNothing, repo, provider).Send(ctx, delivery("jane@x.com"))
		assert.ErrorIs(t, err, commands.ErrLogWriteFailed)
	})

	t.Run("terminal update failure does not mask provider success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := commandsmock.NewMockNotificationRepository(ctrl)
		provider := commandsmock.NewMockMailProvider(ctrl)

		repo.EXPECT().Create(ctx, gomock.Any()).Return(logID, nil)
		provider.EXPECT().Send(ctx, gomock.Any()).Return("msg_123", nil)
		repo.EXPECT().UpdateStatus(ctx, logID, notification.StatusSent, gomock.Any(), "").Return(errors.New("db down"))

		err := newService(t, commands.AllOrNothing, repo, provider).Send(ctx, delivery("jane@x.com"))
		assert.NoError(t, err)
	})

	t.Run("terminal update failure does not mask provider error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := commandsmock.NewMockNotificationRepository(ctrl)
		provider := commandsmock.NewMockMailProvider(ctrl)

		repo.EXPECT().Create(ctx, gomock.Any()).Return(logID, nil)
		provider.EXPECT().Send(ctx, gomock.Any()).Return("", errors.New("timeout"))
		repo.EXPECT().UpdateStatus(ctx, logID, notification.StatusFailed, nil, "timeout").Return(errors.New("db down"))

		err := newService(t, commands.AllOrNothing, repo, provider).Send(ctx, delivery("jane@x.com"))
		assert.ErrorIs(t, err, commands.ErrProviderSend)
	})

	t.Run("missing recipient rejected before any side effect", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := commandsmock.NewMockNotificationRepository(ctrl)
		provider := commandsmock.NewMockMailProvider(ctrl)

		err := newService(t, commands.AllOrNothing, repo, provider).Send(ctx, delivery(""))
		assert.ErrorIs(t, err, notification.ErrMissingRecipient)
	})
}

func TestDeliveryService_SendAll(t *testing.T) {
	ctx := context.Background()

	t.Run("best effort: one failure does not block siblings or fail the batch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := commandsmock.NewMockNotificationRepository(ctrl)
		provider := commandsmock.NewMockMailProvider(ctrl)

		repo.EXPECT().Create(ctx, gomock.Any()).Return(uuid.New(), nil).Times(2)
		provider.EXPECT().Send(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, msg commands.OutboundMessage) (string, error) {
				if msg.To == "ops-a@talenthub.example" {
					return "", errors.New("mailbox full")
				}
				return "msg_ok", nil
			}).Times(2)
		repo.EXPECT().UpdateStatus(ctx, gomock.Any(), notification.StatusFailed, nil, "mailbox full").Return(nil)
		repo.EXPECT().UpdateStatus(ctx, gomock.Any(), notification.StatusSent, gomock.Any(), "").Return(nil)

		svc := newService(t, commands.BestEffort, repo, provider)
		err := svc.SendAll(ctx, []commands.Delivery{
			delivery("ops-a@talenthub.example"),
			delivery("ops-b@talenthub.example"),
		})
		assert.NoError(t, err)
	})

	t.Run("all or nothing: first failure stops the batch and propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := commandsmock.NewMockNotificationRepository(ctrl)
		provider := commandsmock.NewMockMailProvider(ctrl)

		repo.EXPECT().Create(ctx, gomock.Any()).Return(uuid.New(), nil)
		provider.EXPECT().Send(ctx, gomock.Any()).Return("", errors.New("rejected"))
		repo.EXPECT().UpdateStatus(ctx, gomock.Any(), notification.StatusFailed, nil, "rejected").Return(nil)
		// second delivery never attempted

		svc := newService(t, commands.AllOrNothing, repo, provider)
		err := svc.SendAll(ctx, []commands.Delivery{
			delivery("jane@x.com"),
			delivery("other@x.com"),
		})
		assert.ErrorIs(t, err, commands.ErrProviderSend)
	})

	t.Run("empty batch is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := newService(t, commands.BestEffort,
			commandsmock.NewMockNotificationRepository(ctrl),
			commandsmock.NewMockMailProvider(ctrl))
		assert.NoError(t, svc.SendAll(ctx, nil))
	})
}
