package consumer

import (
	"context"
	"log/slog"

	"talent-notify/internal/domain/event"
	"talent-notify/internal/mail/template"
	"talent-notify/internal/usecase/commands"
)

const EventCandidateInvitation = "candidate.invitation_created"

// CandidateConsumer handles recruiter-to-candidate role invitations.
type CandidateConsumer struct {
	delivery commands.DeliveryService
	contacts commands.ContactDirectory
	logger   *slog.Logger
}

func NewCandidateConsumer(delivery commands.DeliveryService, contacts commands.ContactDirectory, logger *slog.Logger) *CandidateConsumer {
	return &CandidateConsumer{
		delivery: delivery,
		contacts: contacts,
		logger:   logger,
	}
}

func (c *CandidateConsumer) Register(r *Registry) {
	r.Register("candidates", EventCandidateInvitation, c.HandleCandidateInvitation)
}

func (c *CandidateConsumer) HandleCandidateInvitation(ctx context.Context, ev *event.DomainEvent) error {
	email, err := requireField(ev, "email")
	if err != nil {
		return err
	}
	jobTitle, err := requireField(ev, "job_title")
	if err != nil {
		return err
	}
	inviteURL, err := requireField(ev, "invite_url")
	if err != nil {
		return err
	}

	// The recruiter name is resolved when an id is present; the payload
	// fallback keeps old producers working.
	recruiterName := ev.StringOr("recruiter_name", "A recruiter")
	if recruiterID, ok := ev.String("recruiter_id"); ok {
		contact, rerr := c.contacts.Resolve(ctx, commands.ContactRecruiter, recruiterID)
		if rerr != nil {
			return rerr
		}
		recruiterName = contact.Name
	}

	msg := template.CandidateInvitation(template.CandidateInvitationData{
		CandidateName: ev.StringOr("candidate_name", ""),
		RecruiterName: recruiterName,
		CompanyName:   ev.StringOr("company_name", "the company"),
		JobTitle:      jobTitle,
		InviteURL:     inviteURL,
	})

	return c.delivery.Send(ctx, commands.Delivery{
		To:        email,
		Subject:   msg.Subject,
		HTML:      msg.HTML,
		EventType: EventCandidateInvitation,
		Template:  template.KindCandidateInvitation,
		Payload: map[string]any{
			"email":     email,
			"job_title": jobTitle,
		},
	})
}
