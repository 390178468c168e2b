package commands

import (
	"context"

	"github.com/google/uuid"
)

// NotificationFlagsRepository mutates the in-app read-model flags. The
// dispatch path never touches these; they exist for the notification center.
type NotificationFlagsRepository interface {
	SetRead(ctx context.Context, id uuid.UUID, read bool) error
	SetDismissed(ctx context.Context, id uuid.UUID, dismissed bool) error
}

type NotificationCommands interface {
	MarkRead(ctx context.Context, id uuid.UUID) error
	MarkDismissed(ctx context.Context, id uuid.UUID) error
}

type notificationUseCaseImpl struct {
	flagsRepo NotificationFlagsRepository
}

func NewNotificationCommands(flagsRepo NotificationFlagsRepository) NotificationCommands {
	return &notificationUseCaseImpl{flagsRepo: flagsRepo}
}

func (uc *notificationUseCaseImpl) MarkRead(ctx context.Context, id uuid.UUID) error {
	return uc.flagsRepo.SetRead(ctx, id, true)
}

func (uc *notificationUseCaseImpl) MarkDismissed(ctx context.Context, id uuid.UUID) error {
	return uc.flagsRepo.SetDismissed(ctx, id, true)
}
