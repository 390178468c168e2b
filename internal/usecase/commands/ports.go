package commands

import (
	"context"

	"talent-notify/internal/domain/notification"
	"talent-notify/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrContactNotFound marks a directory miss. It is fatal to the enclosing
// delivery: dispatch cannot proceed without a recipient address, and the
// lookup is never retried here.
var ErrContactNotFound = errs.New("contact not found")

// OutboundMessage is what the mail provider adapter accepts.
type OutboundMessage struct {
	From    string
	To      string
	Subject string
	HTML    string
}

// MailProvider is the outbound email transport boundary. Send returns the
// provider's message id on success.
type MailProvider interface {
	Send(ctx context.Context, msg OutboundMessage) (string, error)
}

// NotificationRepository persists the delivery log. Create writes the pending
// row; UpdateStatus performs the single pending-to-terminal transition.
// Both operations touch only their own row, so concurrent sends need no
// external locking.
type NotificationRepository interface {
	Create(ctx context.Context, log *notification.Log) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status notification.Status, providerMessageID *string, errorMessage string) error
}

type ContactKind string

const (
	ContactRecruiter ContactKind = "recruiter"
	ContactCandidate ContactKind = "candidate"
	ContactCompany   ContactKind = "company"
)

// Contact is a resolved recipient. It lives for one dispatch call and is
// never persisted by this service.
type Contact struct {
	ID     string
	Name   string
	Email  string
	UserID *uuid.UUID
}

// ContactDirectory resolves a domain identifier to a deliverable contact.
type ContactDirectory interface {
	Resolve(ctx context.Context, kind ContactKind, id string) (*Contact, error)
}
