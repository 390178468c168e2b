//go:build unit

package notification_test

import (
	"testing"
	"time"

	"talent-notify/internal/domain/notification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLog(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name        string
		eventType   string
		recipient   string
		priority    notification.Priority
		expectedErr error
	}{
		{
			name:      "success: pending log with defaults",
			eventType: "recruiter.stripe_connect_onboarded",
			recipient: "jane@x.com",
		},
		{
			name:        "error: missing recipient email",
			eventType:   "recruiter.stripe_connect_onboarded",
			recipient:   "",
			expectedErr: notification.ErrMissingRecipient,
		},
		{
			name:        "error: missing event type",
			eventType:   "",
			recipient:   "jane@x.com",
			expectedErr: notification.ErrMissingEventType,
		},
		{
			name:      "success: high priority preserved",
			eventType: "monitor.service_unhealthy",
			recipient: "ops@talenthub.example",
			priority:  notification.PriorityHigh,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			log, err := notification.NewLog(tc.eventType, tc.recipient, "subject", "template", nil, tc.priority, nil, now)

			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, notification.StatusPending, log.Status())
			assert.Equal(t, notification.ChannelEmail, log.Channel())
			assert.False(t, log.Read())
			assert.False(t, log.Dismissed())
			assert.Nil(t, log.ProviderMessageID())
			assert.Nil(t, log.ErrorMessage())

			if tc.priority == "" {
				assert.Equal(t, notification.PriorityNormal, log.Priority())
			} else {
				assert.Equal(t, tc.priority, log.Priority())
			}
		})
	}
}

func TestLog_StatusTransitions(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	later := now.Add(time.Second)

	newPending := func(t *testing.T) *notification.Log {
		t.Helper()
		log, err := notification.NewLog("application.created", "jane@x.com", "subject", "application_created", nil, notification.PriorityNormal, nil, now)
		require.NoError(t, err)
		return log
	}

	t.Run("pending to sent records provider message id", func(t *testing.T) {
		log := newPending(t)

		require.NoError(t, log.MarkSent("msg_123", later))

		assert.Equal(t, notification.StatusSent, log.Status())
		require.NotNil(t, log.ProviderMessageID())
		assert.Equal(t, "msg_123", *log.ProviderMessageID())
		assert.Equal(t, later, log.UpdatedAt())
	})

	t.Run("pending to failed records error message", func(t *testing.T) {
		log := newPending(t)

		require.NoError(t, log.MarkFailed("connection refused", later))

		assert.Equal(t, notification.StatusFailed, log.Status())
		require.NotNil(t, log.ErrorMessage())
		assert.Equal(t, "connection refused", *log.ErrorMessage())
	})

	t.Run("failed with empty message falls back to placeholder", func(t *testing.T) {
		log := newPending(t)

		require.NoError(t, log.MarkFailed("", later))

		require.NotNil(t, log.ErrorMessage())
		assert.NotEmpty(t, *log.ErrorMessage())
	})

	t.Run("terminal states reject further transitions", func(t *testing.T) {
		sent := newPending(t)
		require.NoError(t, sent.MarkSent("msg_123", later))
		assert.ErrorIs(t, sent.MarkFailed("late error", later), notification.ErrAlreadyTerminal)
		assert.ErrorIs(t, sent.MarkSent("msg_456", later), notification.ErrAlreadyTerminal)

		failed := newPending(t)
		require.NoError(t, failed.MarkFailed("boom", later))
		assert.ErrorIs(t, failed.MarkSent("msg_789", later), notification.ErrAlreadyTerminal)
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, notification.StatusPending.IsTerminal())
	assert.True(t, notification.StatusSent.IsTerminal())
	assert.True(t, notification.StatusFailed.IsTerminal())
}
