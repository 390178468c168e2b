package response

import (
	"encoding/json"
	"time"

	"talent-notify/internal/usecase/queries"

	"github.com/google/uuid"
)

type NotificationResponse struct {
	ID                uuid.UUID       `json:"id"`
	EventType         string          `json:"eventType"`
	RecipientEmail    string          `json:"recipientEmail"`
	RecipientUserID   *uuid.UUID      `json:"recipientUserId,omitempty"`
	Subject           string          `json:"subject"`
	Template          string          `json:"template"`
	Payload           json.RawMessage `json:"payload,omitempty"`
	Channel           string          `json:"channel"`
	Status            string          `json:"status"`
	Priority          string          `json:"priority"`
	Read              bool            `json:"read"`
	Dismissed         bool            `json:"dismissed"`
	ProviderMessageID *string         `json:"providerMessageId,omitempty"`
	ErrorMessage      *string         `json:"errorMessage,omitempty"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}

func FromNotificationView(rm *queries.NotificationLogView) *NotificationResponse {
	return &NotificationResponse{
		ID:                rm.ID,
		EventType:         rm.EventType,
		RecipientEmail:    rm.RecipientEmail,
		RecipientUserID:   rm.RecipientUserID,
		Subject:           rm.Subject,
		Template:          rm.Template,
		Payload:           rm.Payload,
		Channel:           rm.Channel,
		Status:            rm.Status,
		Priority:          rm.Priority,
		Read:              rm.Read,
		Dismissed:         rm.Dismissed,
		ProviderMessageID: rm.ProviderMessageID,
		ErrorMessage:      rm.ErrorMessage,
		CreatedAt:         rm.CreatedAt,
		UpdatedAt:         rm.UpdatedAt,
	}
}
