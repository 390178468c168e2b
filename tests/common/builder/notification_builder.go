package builder

import (
	"encoding/json"
	"time"

	"talent-notify/internal/usecase/queries"

	"github.com/google/uuid"
)

// NotificationViewBuilder builds read-model rows for handler tests.
type NotificationViewBuilder struct {
	view queries.NotificationLogView
}

func NewNotificationViewBuilder() *NotificationViewBuilder {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return &NotificationViewBuilder{
		view: queries.NotificationLogView{
			ID:             uuid.New(),
			EventType:      "recruiter.stripe_connect_onboarded",
			RecipientEmail: "jane@x.com",
			Subject:        "Your Stripe account is ready",
			Template:       "stripe_connect_onboarded",
			Payload:        json.RawMessage(`{"recruiter_id":"r1"}`),
			Channel:        "email",
			Status:         "sent",
			Priority:       "normal",
			CreatedAt:      now,
			UpdatedAt:      now,
		},
	}
}

func (b *NotificationViewBuilder) WithID(id uuid.UUID) *NotificationViewBuilder {
	b.view.ID = id
	return b
}

func (b *NotificationViewBuilder) WithEventType(eventType string) *NotificationViewBuilder {
	b.view.EventType = eventType
	return b
}

func (b *NotificationViewBuilder) WithRecipient(email string) *NotificationViewBuilder {
	b.view.RecipientEmail = email
	return b
}

func (b *NotificationViewBuilder) WithStatus(status string) *NotificationViewBuilder {
	b.view.Status = status
	return b
}

func (b *NotificationViewBuilder) WithError(msg string) *NotificationViewBuilder {
	b.view.Status = "failed"
	b.view.ErrorMessage = &msg
	return b
}

func (b *NotificationViewBuilder) WithCreatedAt(t time.Time) *NotificationViewBuilder {
	b.view.CreatedAt = t
	b.view.UpdatedAt = t
	return b
}

func (b *NotificationViewBuilder) Build() *queries.NotificationLogView {
	v := b.view
	return &v
}
