package notification

import (
	"time"

	"talent-notify/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrAlreadyTerminal  = errs.New("notification log already in a terminal state")
	ErrMissingRecipient = errs.New("notification log requires a recipient email")
	ErrMissingEventType = errs.New("notification log requires an event type")
)

// Log is the durable record of one delivery attempt to one recipient.
// It is created in pending before the provider is called and transitions
// exactly once to sent or failed. Rows are never deleted.
type Log struct {
	id                uuid.UUID
	eventType         string
	recipientEmail    string
	recipientUserID   *uuid.UUID
	subject           string
	template          string
	payload           map[string]any
	channel           Channel
	status            Status
	priority          Priority
	read              bool
	dismissed         bool
	providerMessageID *string
	errorMessage      *string
	createdAt         time.Time
	updatedAt         time.Time
}

// NewLog builds a pending log row for one (event, recipient) pair.
func NewLog(eventType, recipientEmail, subject, template string, payload map[string]any, priority Priority, recipientUserID *uuid.UUID, now time.Time) (*Log, error) {
	if recipientEmail == "" {
		return nil, ErrMissingRecipient
	}
	if eventType == "" {
		return nil, ErrMissingEventType
	}
	if priority == "" {
		priority = PriorityNormal
	}

	return &Log{
		id:              uuid.New(),
		eventType:       eventType,
		recipientEmail:  recipientEmail,
		recipientUserID: recipientUserID,
		subject:         subject,
		template:        template,
		payload:         payload,
		channel:         ChannelEmail,
		status:          StatusPending,
		priority:        priority,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

// Reconstruct rebuilds a Log from persisted state without validation.
func Reconstruct(
	id uuid.UUID,
	eventType, recipientEmail, subject, template string,
	payload map[string]any,
	channel Channel,
	status Status,
	priority Priority,
	read, dismissed bool,
	recipientUserID *uuid.UUID,
	providerMessageID, errorMessage *string,
	createdAt, updatedAt time.Time,
) *Log {
	return &Log{
		id:                id,
		eventType:         eventType,
		recipientEmail:    recipientEmail,
		recipientUserID:   recipientUserID,
		subject:           subject,
		template:          template,
		payload:           payload,
		channel:           channel,
		status:            status,
		priority:          priority,
		read:              read,
		dismissed:         dismissed,
		providerMessageID: providerMessageID,
		errorMessage:      errorMessage,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}
}

// MarkSent records a successful provider call. Terminal states are final.
func (l *Log) MarkSent(providerMessageID string, now time.Time) error {
	if l.status.IsTerminal() {
		return ErrAlreadyTerminal
	}
	l.status = StatusSent
	l.providerMessageID = &providerMessageID
	l.updatedAt = now
	return nil
}

// MarkFailed records a provider error. Terminal states are final.
func (l *Log) MarkFailed(errorMessage string, now time.Time) error {
	if l.status.IsTerminal() {
		return ErrAlreadyTerminal
	}
	if errorMessage == "" {
		errorMessage = "unknown provider error"
	}
	l.status = StatusFailed
	l.errorMessage = &errorMessage
	l.updatedAt = now
	return nil
}

func (l *Log) ID() uuid.UUID               { return l.id }
func (l *Log) EventType() string           { return l.eventType }
func (l *Log) RecipientEmail() string      { return l.recipientEmail }
func (l *Log) RecipientUserID() *uuid.UUID { return l.recipientUserID }
func (l *Log) Subject() string             { return l.subject }
func (l *Log) Template() string            { return l.template }
func (l *Log) Payload() map[string]any     { return l.payload }
func (l *Log) Channel() Channel            { return l.channel }
func (l *Log) Status() Status              { return l.status }
func (l *Log) Priority() Priority          { return l.priority }
func (l *Log) Read() bool                  { return l.read }
func (l *Log) Dismissed() bool             { return l.dismissed }
func (l *Log) ProviderMessageID() *string  { return l.providerMessageID }
func (l *Log) ErrorMessage() *string       { return l.errorMessage }
func (l *Log) CreatedAt() time.Time        { return l.createdAt }
func (l *Log) UpdatedAt() time.Time        { return l.updatedAt }
