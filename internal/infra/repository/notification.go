package repository

import (
	"context"
	"encoding/json"

	"talent-notify/internal/domain/notification"
	"talent-notify/internal/infra"
	"talent-notify/internal/pkg/clock"
	"talent-notify/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NotificationRepository owns the write side of notification_logs. Rows are
// insert-once: after the pending insert, only the status columns and the
// in-app flags ever change.
type NotificationRepository struct {
	pool *pgxpool.Pool
	clk  clock.Clock
}

func NewNotificationRepository(pool *pgxpool.Pool, clk clock.Clock) *NotificationRepository {
	return &NotificationRepository{
		pool: pool,
		clk:  clk,
	}
}

const createNotificationLog = `
INSERT INTO notification_logs (
    id, event_type, recipient_email, recipient_user_id, subject, template,
    payload, channel, status, priority, read, dismissed, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
`

func (r *NotificationRepository) Create(ctx context.Context, log *notification.Log) (uuid.UUID, error) {
	payload, err := json.Marshal(log.Payload())
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to encode notification payload", err)
	}

	_, err = r.pool.Exec(ctx, createNotificationLog,
		pgconv.UUIDToPgtype(log.ID()),
		log.EventType(),
		log.RecipientEmail(),
		pgconv.UUIDPtrToPgtype(log.RecipientUserID()),
		log.Subject(),
		log.Template(),
		payload,
		string(log.Channel()),
		string(log.Status()),
		string(log.Priority()),
		log.Read(),
		log.Dismissed(),
		pgconv.TimeToPgtype(log.CreatedAt()),
		pgconv.TimeToPgtype(log.UpdatedAt()),
	)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to create notification log", err)
	}

	return log.ID(), nil
}

const updateNotificationLogStatus = `
UPDATE notification_logs
SET status = $2, provider_message_id = $3, error_message = $4, updated_at = $5
WHERE id = $1 AND status = 'pending'
`

// UpdateStatus performs the single pending-to-terminal transition. A row
// that is missing or already terminal leaves zero rows affected and is
// reported as a conflict.
func (r *NotificationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status notification.Status, providerMessageID *string, errorMessage string) error {
	var errMsg *string
	if errorMessage != "" {
		errMsg = &errorMessage
	}

	tag, err := r.pool.Exec(ctx, updateNotificationLogStatus,
		pgconv.UUIDToPgtype(id),
		string(status),
		pgconv.StringPtrToPgtype(providerMessageID),
		pgconv.StringPtrToPgtype(errMsg),
		pgconv.TimeToPgtype(r.clk.Now()),
	)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to update notification log status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindConflict, "notification log missing or already terminal", nil)
	}

	return nil
}

const setNotificationRead = `
UPDATE notification_logs SET read = $2, updated_at = $3 WHERE id = $1
`

func (r *NotificationRepository) SetRead(ctx context.Context, id uuid.UUID, read bool) error {
	tag, err := r.pool.Exec(ctx, setNotificationRead,
		pgconv.UUIDToPgtype(id), read, pgconv.TimeToPgtype(r.clk.Now()))
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to set notification read flag", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "notification log not found", nil)
	}
	return nil
}

const setNotificationDismissed = `
UPDATE notification_logs SET dismissed = $2, updated_at = $3 WHERE id = $1
`

func (r *NotificationRepository) SetDismissed(ctx context.Context, id uuid.UUID, dismissed bool) error {
	tag, err := r.pool.Exec(ctx, setNotificationDismissed,
		pgconv.UUIDToPgtype(id), dismissed, pgconv.TimeToPgtype(r.clk.Now()))
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to set notification dismissed flag", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "notification log not found", nil)
	}
	return nil
}
