package queries

import (
	"context"
	"encoding/json"
	"time"

	"talent-notify/internal/domain/notification"

	"github.com/google/uuid"
)

// NotificationLogView is the read model row surfaced by the ops API.
type NotificationLogView struct {
	ID                uuid.UUID       `json:"id"`
	EventType         string          `json:"event_type"`
	RecipientEmail    string          `json:"recipient_email"`
	RecipientUserID   *uuid.UUID      `json:"recipient_user_id,omitempty"`
	Subject           string          `json:"subject"`
	Template          string          `json:"template"`
	Payload           json.RawMessage `json:"payload,omitempty"`
	Channel           string          `json:"channel"`
	Status            string          `json:"status"`
	Priority          string          `json:"priority"`
	Read              bool            `json:"read"`
	Dismissed         bool            `json:"dismissed"`
	ProviderMessageID *string         `json:"provider_message_id,omitempty"`
	ErrorMessage      *string         `json:"error_message,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// NotificationLogFilter narrows a listing. CreatedBefore is the pagination
// cursor: pages are ordered newest first.
type NotificationLogFilter struct {
	Status         *notification.Status
	EventType      *string
	RecipientEmail *string
	CreatedBefore  *time.Time
	Limit          int32
}

type NotificationQueries interface {
	List(ctx context.Context, filter NotificationLogFilter) ([]*NotificationLogView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*NotificationLogView, error)
}
