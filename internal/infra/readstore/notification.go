package readstore

import (
	"context"
	"fmt"
	"strings"

	"talent-notify/internal/infra"
	"talent-notify/internal/pkg/pgconv"
	"talent-notify/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

const defaultListLimit = 50

type NotificationReadStore struct {
	pool *pgxpool.Pool
}

func NewNotificationReadStore(pool *pgxpool.Pool) *NotificationReadStore {
	return &NotificationReadStore{pool: pool}
}

const notificationLogColumns = `
id, event_type, recipient_email, recipient_user_id, subject, template,
payload, channel, status, priority, read, dismissed, provider_message_id,
error_message, created_at, updated_at
`

func (s *NotificationReadStore) List(ctx context.Context, filter queries.NotificationLogFilter) ([]*queries.NotificationLogView, error) {
	var (
		conds []string
		args  []any
	)
	addCond := func(expr string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(expr, len(args)))
	}

	if filter.Status != nil {
		addCond("status = $%d", string(*filter.Status))
	}
	if filter.EventType != nil {
		addCond("event_type = $%d", *filter.EventType)
	}
	if filter.RecipientEmail != nil {
		addCond("recipient_email = $%d", *filter.RecipientEmail)
	}
	if filter.CreatedBefore != nil {
		addCond("created_at < $%d", pgconv.TimeToPgtype(*filter.CreatedBefore))
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	args = append(args, limit)

	query := "SELECT " + notificationLogColumns + " FROM notification_logs"
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", len(args))

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list notification logs", err)
	}
	defer rows.Close()

	var result []*queries.NotificationLogView
	for rows.Next() {
		view, err := scanNotificationLog(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan notification log", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read notification logs", err)
	}

	return result, nil
}

func (s *NotificationReadStore) GetByID(ctx context.Context, id uuid.UUID) (*queries.NotificationLogView, error) {
	row := s.pool.QueryRow(ctx,
		"SELECT "+notificationLogColumns+" FROM notification_logs WHERE id = $1",
		pgconv.UUIDToPgtype(id))

	view, err := scanNotificationLog(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "notification log not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to get notification log", err)
	}

	return view, nil
}

func scanNotificationLog(row pgx.Row) (*queries.NotificationLogView, error) {
	var (
		view              queries.NotificationLogView
		id                pgtype.UUID
		recipientUserID   pgtype.UUID
		providerMessageID pgtype.Text
		errorMessage      pgtype.Text
		createdAt         pgtype.Timestamptz
		updatedAt         pgtype.Timestamptz
	)

	err := row.Scan(
		&id,
		&view.EventType,
		&view.RecipientEmail,
		&recipientUserID,
		&view.Subject,
		&view.Template,
		&view.Payload,
		&view.Channel,
		&view.Status,
		&view.Priority,
		&view.Read,
		&view.Dismissed,
		&providerMessageID,
		&errorMessage,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	view.ID = uuid.UUID(id.Bytes)
	view.RecipientUserID = pgconv.UUIDPtrFromPgtype(recipientUserID)
	view.ProviderMessageID = pgconv.StringPtrFromPgtype(providerMessageID)
	view.ErrorMessage = pgconv.StringPtrFromPgtype(errorMessage)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)

	return &view, nil
}
