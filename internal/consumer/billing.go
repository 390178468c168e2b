package consumer

import (
	"context"
	"log/slog"

	"talent-notify/internal/domain/event"
	"talent-notify/internal/mail/template"
	"talent-notify/internal/usecase/commands"
)

const (
	EventStripeConnectOnboarded = "recruiter.stripe_connect_onboarded"
	EventInvoicePaymentFailed   = "recruiter.invoice_payment_failed"
)

// BillingConsumer handles payout and subscription events. Billing mail is
// single-recipient: a delivery failure propagates so the event can be
// redelivered upstream.
type BillingConsumer struct {
	delivery commands.DeliveryService
	contacts commands.ContactDirectory
	logger   *slog.Logger
}

func NewBillingConsumer(delivery commands.DeliveryService, contacts commands.ContactDirectory, logger *slog.Logger) *BillingConsumer {
	return &BillingConsumer{
		delivery: delivery,
		contacts: contacts,
		logger:   logger,
	}
}

func (c *BillingConsumer) Register(r *Registry) {
	r.Register("billing", EventStripeConnectOnboarded, c.HandleStripeConnectOnboarded)
	r.Register("billing", EventInvoicePaymentFailed, c.HandleInvoicePaymentFailed)
}

func (c *BillingConsumer) HandleStripeConnectOnboarded(ctx context.Context, ev *event.DomainEvent) error {
	recruiterID, err := requireField(ev, "recruiter_id")
	if err != nil {
		return err
	}
	accountID, err := requireField(ev, "account_id")
	if err != nil {
		return err
	}

	contact, err := c.contacts.Resolve(ctx, commands.ContactRecruiter, recruiterID)
	if err != nil {
		return err
	}

	msg := template.StripeConnectOnboarded(template.StripeConnectOnboardedData{
		RecruiterName: contact.Name,
		AccountID:     accountID,
		DashboardURL:  ev.StringOr("dashboard_url", ""),
	})

	return c.delivery.Send(ctx, commands.Delivery{
		To:        contact.Email,
		ToUserID:  contact.UserID,
		Subject:   msg.Subject,
		HTML:      msg.HTML,
		EventType: EventStripeConnectOnboarded,
		Template:  template.KindStripeConnectOnboarded,
		Payload: map[string]any{
			"recruiter_id": recruiterID,
			"account_id":   accountID,
		},
	})
}

func (c *BillingConsumer) HandleInvoicePaymentFailed(ctx context.Context, ev *event.DomainEvent) error {
	recruiterID, err := requireField(ev, "recruiter_id")
	if err != nil {
		return err
	}
	invoiceNumber, err := requireField(ev, "invoice_number")
	if err != nil {
		return err
	}

	contact, err := c.contacts.Resolve(ctx, commands.ContactRecruiter, recruiterID)
	if err != nil {
		return err
	}

	msg := template.InvoicePaymentFailed(template.InvoicePaymentFailedData{
		RecruiterName: contact.Name,
		InvoiceNumber: invoiceNumber,
		AmountDue:     ev.StringOr("amount_due", "—"),
		PaymentURL:    ev.StringOr("payment_url", ""),
	})

	return c.delivery.Send(ctx, commands.Delivery{
		To:        contact.Email,
		ToUserID:  contact.UserID,
		Subject:   msg.Subject,
		HTML:      msg.HTML,
		EventType: EventInvoicePaymentFailed,
		Template:  template.KindInvoicePaymentFailed,
		Payload: map[string]any{
			"recruiter_id":   recruiterID,
			"invoice_number": invoiceNumber,
			"amount_due":     ev.StringOr("amount_due", ""),
		},
	})
}
