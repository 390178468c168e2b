package consumer

import (
	"context"
	"log/slog"

	"talent-notify/internal/domain/event"
	"talent-notify/internal/mail/template"
	"talent-notify/internal/usecase/commands"
)

const (
	EventApplicationCreated      = "application.created"
	EventApplicationStageChanged = "application.stage_changed"
)

// ApplicationConsumer notifies recruiters about new applications and
// candidates about stage changes. Single-recipient; failures propagate.
type ApplicationConsumer struct {
	delivery commands.DeliveryService
	contacts commands.ContactDirectory
	logger   *slog.Logger
}

func NewApplicationConsumer(delivery commands.DeliveryService, contacts commands.ContactDirectory, logger *slog.Logger) *ApplicationConsumer {
	return &ApplicationConsumer{
		delivery: delivery,
		contacts: contacts,
		logger:   logger,
	}
}

func (c *ApplicationConsumer) Register(r *Registry) {
	r.Register("applications", EventApplicationCreated, c.HandleApplicationCreated)
	r.Register("applications", EventApplicationStageChanged, c.HandleApplicationStageChanged)
}

func (c *ApplicationConsumer) HandleApplicationCreated(ctx context.Context, ev *event.DomainEvent) error {
	recruiterID, err := requireField(ev, "recruiter_id")
	if err != nil {
		return err
	}
	candidateName, err := requireField(ev, "candidate_name")
	if err != nil {
		return err
	}
	jobTitle, err := requireField(ev, "job_title")
	if err != nil {
		return err
	}

	contact, err := c.contacts.Resolve(ctx, commands.ContactRecruiter, recruiterID)
	if err != nil {
		return err
	}

	msg := template.ApplicationCreated(template.ApplicationCreatedData{
		RecruiterName:  contact.Name,
		CandidateName:  candidateName,
		JobTitle:       jobTitle,
		CompanyName:    ev.StringOr("company_name", "the company"),
		ApplicationURL: ev.StringOr("application_url", ""),
	})

	return c.delivery.Send(ctx, commands.Delivery{
		To:        contact.Email,
		ToUserID:  contact.UserID,
		Subject:   msg.Subject,
		HTML:      msg.HTML,
		EventType: EventApplicationCreated,
		Template:  template.KindApplicationCreated,
		Payload: map[string]any{
			"recruiter_id":   recruiterID,
			"candidate_name": candidateName,
			"job_title":      jobTitle,
		},
	})
}

func (c *ApplicationConsumer) HandleApplicationStageChanged(ctx context.Context, ev *event.DomainEvent) error {
	candidateID, err := requireField(ev, "candidate_id")
	if err != nil {
		return err
	}
	jobTitle, err := requireField(ev, "job_title")
	if err != nil {
		return err
	}
	stage, err := requireField(ev, "stage")
	if err != nil {
		return err
	}

	contact, err := c.contacts.Resolve(ctx, commands.ContactCandidate, candidateID)
	if err != nil {
		return err
	}

	msg := template.ApplicationStageChanged(template.ApplicationStageChangedData{
		CandidateName: contact.Name,
		JobTitle:      jobTitle,
		CompanyName:   ev.StringOr("company_name", "the company"),
		Stage:         stage,
		StatusURL:     ev.StringOr("status_url", ""),
	})

	return c.delivery.Send(ctx, commands.Delivery{
		To:        contact.Email,
		ToUserID:  contact.UserID,
		Subject:   msg.Subject,
		HTML:      msg.HTML,
		EventType: EventApplicationStageChanged,
		Template:  template.KindApplicationStageChanged,
		Payload: map[string]any{
			"candidate_id": candidateID,
			"job_title":    jobTitle,
			"stage":        stage,
		},
	})
}
