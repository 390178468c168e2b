//go:build unit

package consumer_test

import (
	"context"
	"log/slog"
	"testing"

	"talent-notify/internal/consumer"
	"talent-notify/internal/domain/event"
	"talent-notify/internal/usecase/commands"
	commandsmock "talent-notify/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestApplicationConsumer_HandleApplicationCreated(t *testing.T) {
	ctx := context.Background()

	t.Run("success: notifies the owning recruiter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		delivery := commandsmock.NewMockDeliveryService(ctrl)
		contacts := commandsmock.NewMockContactDirectory(ctrl)

		contacts.EXPECT().
			Resolve(ctx, commands.ContactRecruiter, "r1").
			Return(&commands.Contact{ID: "r1", Name: "Jane", Email: "jane@x.com"}, nil)
		delivery.EXPECT().
			Send(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, d commands.Delivery) error {
				assert.Equal(t, "jane@x.com", d.To)
				assert.Equal(t, "application.created", d.EventType)
				assert.Contains(t, d.Subject, "Ravi")
				assert.Contains(t, d.Subject, "Staff Engineer")
				return nil
			})

		c := consumer.NewApplicationConsumer(delivery, contacts, slog.Default())
		err := c.HandleApplicationCreated(ctx, &event.DomainEvent{
			Type: consumer.EventApplicationCreated,
			Payload: map[string]any{
				"recruiter_id":   "r1",
				"candidate_name": "Ravi",
				"job_title":      "Staff Engineer",
				"company_name":   "Acme",
			},
		})
		assert.NoError(t, err)
	})

	t.Run("missing job_title is malformed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		c := consumer.NewApplicationConsumer(
			commandsmock.NewMockDeliveryService(ctrl),
			commandsmock.NewMockContactDirectory(ctrl),
			slog.Default())
		err := c.HandleApplicationCreated(ctx, &event.DomainEvent{
			Type:    consumer.EventApplicationCreated,
			Payload: map[string]any{"recruiter_id": "r1", "candidate_name": "Ravi"},
		})
		assert.ErrorIs(t, err, consumer.ErrMalformedEvent)
	})
}

func TestApplicationConsumer_HandleApplicationStageChanged(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	delivery := commandsmock.NewMockDeliveryService(ctrl)
	contacts := commandsmock.NewMockContactDirectory(ctrl)

	contacts.EXPECT().
		Resolve(ctx, commands.ContactCandidate, "c1").
		Return(&commands.Contact{ID: "c1", Name: "Ravi", Email: "ravi@x.com"}, nil)
	delivery.EXPECT().
		Send(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, d commands.Delivery) error {
			assert.Equal(t, "ravi@x.com", d.To)
			assert.Equal(t, "application.stage_changed", d.EventType)
			assert.Contains(t, d.HTML, "Interview")
			return nil
		})

	c := consumer.NewApplicationConsumer(delivery, contacts, slog.Default())
	err := c.HandleApplicationStageChanged(ctx, &event.DomainEvent{
		Type: consumer.EventApplicationStageChanged,
		Payload: map[string]any{
			"candidate_id": "c1",
			"job_title":    "Staff Engineer",
			"stage":        "Interview",
		},
	})
	assert.NoError(t, err)
}

func TestInvitationConsumer_HandleCompanyPlatformInvitation(t *testing.T) {
	ctx := context.Background()

	t.Run("success: recipient comes from the payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		delivery := commandsmock.NewMockDeliveryService(ctrl)
		delivery.EXPECT().
			Send(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, d commands.Delivery) error {
				assert.Equal(t, "owner@acme.example", d.To)
				assert.Equal(t, "company.platform_invitation_created", d.EventType)
				assert.Contains(t, d.HTML, "https://portal.talenthub.example/invite/t1")
				return nil
			})

		c := consumer.NewInvitationConsumer(delivery, slog.Default())
		err := c.HandleCompanyPlatformInvitation(ctx, &event.DomainEvent{
			Type: consumer.EventCompanyPlatformInvitation,
			Payload: map[string]any{
				"email":        "owner@acme.example",
				"company_name": "Acme",
				"invite_url":   "https://portal.talenthub.example/invite/t1",
			},
		})
		assert.NoError(t, err)
	})

	t.Run("missing invite_url is malformed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		c := consumer.NewInvitationConsumer(commandsmock.NewMockDeliveryService(ctrl), slog.Default())
		err := c.HandleCompanyPlatformInvitation(ctx, &event.DomainEvent{
			Type:    consumer.EventCompanyPlatformInvitation,
			Payload: map[string]any{"email": "owner@acme.example", "company_name": "Acme"},
		})
		assert.ErrorIs(t, err, consumer.ErrMalformedEvent)
	})
}

func TestCandidateConsumer_HandleCandidateInvitation(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves recruiter name when id present", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		delivery := commandsmock.NewMockDeliveryService(ctrl)
		contacts := commandsmock.NewMockContactDirectory(ctrl)

		contacts.EXPECT().
			Resolve(ctx, commands.ContactRecruiter, "r1").
			Return(&commands.Contact{ID: "r1", Name: "Jane", Email: "jane@x.com"}, nil)
		delivery.EXPECT().
			Send(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, d commands.Delivery) error {
				assert.Equal(t, "ravi@x.com", d.To)
				assert.Contains(t, d.HTML, "Jane")
				return nil
			})

		c := consumer.NewCandidateConsumer(delivery, contacts, slog.Default())
		err := c.HandleCandidateInvitation(ctx, &event.DomainEvent{
			Type: consumer.EventCandidateInvitation,
			Payload: map[string]any{
				"email":        "ravi@x.com",
				"job_title":    "Staff Engineer",
				"invite_url":   "https://candidates.talenthub.example/invite/t2",
				"recruiter_id": "r1",
			},
		})
		assert.NoError(t, err)
	})

	t.Run("falls back to payload recruiter_name without id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		delivery := commandsmock.NewMockDeliveryService(ctrl)
		delivery.EXPECT().
			Send(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, d commands.Delivery) error {
				assert.Contains(t, d.HTML, "Sam")
				return nil
			})

		c := consumer.NewCandidateConsumer(delivery, commandsmock.NewMockContactDirectory(ctrl), slog.Default())
		err := c.HandleCandidateInvitation(ctx, &event.DomainEvent{
			Type: consumer.EventCandidateInvitation,
			Payload: map[string]any{
				"email":          "ravi@x.com",
				"job_title":      "Staff Engineer",
				"invite_url":     "https://candidates.talenthub.example/invite/t2",
				"recruiter_name": "Sam",
			},
		})
		assert.NoError(t, err)
	})
}
