package consumer

import (
	"context"
	"log/slog"

	"talent-notify/internal/domain/event"
	"talent-notify/internal/mail/template"
	"talent-notify/internal/usecase/commands"
)

const EventCompanyPlatformInvitation = "company.platform_invitation_created"

// InvitationConsumer handles company platform invitations. The recipient
// address travels in the event payload because invitees have no platform
// account to resolve yet.
type InvitationConsumer struct {
	delivery commands.DeliveryService
	logger   *slog.Logger
}

func NewInvitationConsumer(delivery commands.DeliveryService, logger *slog.Logger) *InvitationConsumer {
	return &InvitationConsumer{
		delivery: delivery,
		logger:   logger,
	}
}

func (c *InvitationConsumer) Register(r *Registry) {
	r.Register("invitations", EventCompanyPlatformInvitation, c.HandleCompanyPlatformInvitation)
}

func (c *InvitationConsumer) HandleCompanyPlatformInvitation(ctx context.Context, ev *event.DomainEvent) error {
	email, err := requireField(ev, "email")
	if err != nil {
		return err
	}
	companyName, err := requireField(ev, "company_name")
	if err != nil {
		return err
	}
	inviteURL, err := requireField(ev, "invite_url")
	if err != nil {
		return err
	}

	msg := template.CompanyPlatformInvitation(template.CompanyPlatformInvitationData{
		CompanyName: companyName,
		InviterName: ev.StringOr("inviter_name", "A TalentHub member"),
		InviteURL:   inviteURL,
	})

	return c.delivery.Send(ctx, commands.Delivery{
		To:        email,
		Subject:   msg.Subject,
		HTML:      msg.HTML,
		EventType: EventCompanyPlatformInvitation,
		Template:  template.KindCompanyPlatformInvitation,
		Payload: map[string]any{
			"email":        email,
			"company_name": companyName,
		},
	})
}
