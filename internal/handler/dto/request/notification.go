package request

import (
	"errors"
	"time"

	"talent-notify/internal/domain/notification"
	"talent-notify/internal/usecase/queries"
)

var (
	ErrInvalidStatus = errors.New("invalid status filter")
	ErrInvalidCursor = errors.New("invalid createdBefore cursor")
)

type ListNotificationsRequest struct {
	Status         string `form:"status"`
	EventType      string `form:"eventType"`
	RecipientEmail string `form:"recipientEmail"`
	CreatedBefore  string `form:"createdBefore"`
	Limit          int32  `form:"limit"`
}

// ToFilter converts query params into the read-model filter. An invalid
// status or cursor is a binding error surfaced to the caller.
func (r *ListNotificationsRequest) ToFilter() (queries.NotificationLogFilter, error) {
	filter := queries.NotificationLogFilter{Limit: r.Limit}

	if r.Status != "" {
		status := notification.Status(r.Status)
		if !status.IsValid() {
			return filter, ErrInvalidStatus
		}
		filter.Status = &status
	}
	if r.EventType != "" {
		filter.EventType = &r.EventType
	}
	if r.RecipientEmail != "" {
		filter.RecipientEmail = &r.RecipientEmail
	}
	if r.CreatedBefore != "" {
		t, err := time.Parse(time.RFC3339, r.CreatedBefore)
		if err != nil {
			return filter, ErrInvalidCursor
		}
		filter.CreatedBefore = &t
	}

	return filter, nil
}
