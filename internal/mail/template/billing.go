package template

import (
	"fmt"

	"talent-notify/internal/mail/markup"
	"talent-notify/internal/mail/theme"
)

type StripeConnectOnboardedData struct {
	RecruiterName string
	AccountID     string
	DashboardURL  string
}

// StripeConnectOnboarded confirms that a recruiter's payout account finished
// onboarding. Defaults to the portal brand.
func StripeConnectOnboarded(data StripeConnectOnboardedData, opts ...Option) RenderedMessage {
	o := resolveOptions(theme.AudiencePortal, opts)
	th := theme.Resolve(o.audience)

	name := markup.Escape(data.RecruiterName)
	dashboardURL := data.DashboardURL
	if dashboardURL == "" {
		dashboardURL = "https://portal.talenthub.example/billing"
	}

	body := []markup.Fragment{
		markup.Heading(1, "Payouts are ready"),
		markup.Paragraph(fmt.Sprintf("Hi %s,", name)),
		markup.Paragraph("Your payout account has been verified and connected. Placement fees from completed hires will now be paid out to your linked bank account."),
		markup.InfoCard("Account", []markup.InfoItem{
			{Label: "Account ID", Value: markup.Escape(data.AccountID), Highlight: true},
			{Label: "Status", Value: "Verified"},
		}, &th),
		markup.Button(dashboardURL, "View billing settings", markup.VariantPrimary, &th),
		markup.Paragraph("No action is needed. If you did not set up a payout account, contact support immediately."),
	}

	return RenderedMessage{
		Subject: "Your payout account is connected",
		HTML:    document(o.audience, "Payouts are ready", body...),
	}
}

type InvoicePaymentFailedData struct {
	RecruiterName string
	InvoiceNumber string
	AmountDue     string
	PaymentURL    string
}

// InvoicePaymentFailed warns a recruiter that a subscription charge was
// declined. Defaults to the portal brand.
func InvoicePaymentFailed(data InvoicePaymentFailedData, opts ...Option) RenderedMessage {
	o := resolveOptions(theme.AudiencePortal, opts)
	th := theme.Resolve(o.audience)

	name := markup.Escape(data.RecruiterName)
	paymentURL := data.PaymentURL
	if paymentURL == "" {
		paymentURL = "https://portal.talenthub.example/billing/invoices"
	}

	body := []markup.Fragment{
		markup.Heading(1, "Payment failed"),
		markup.Paragraph(fmt.Sprintf("Hi %s,", name)),
		markup.Alert(markup.AlertWarning, "Action required", "We could not collect payment for your latest invoice. Your subscription stays active while we retry, but please update your payment method."),
		markup.InfoCard("Invoice", []markup.InfoItem{
			{Label: "Invoice", Value: markup.Escape(data.InvoiceNumber)},
			{Label: "Amount due", Value: markup.Escape(data.AmountDue), Highlight: true},
		}, &th),
		markup.Button(paymentURL, "Update payment method", markup.VariantPrimary, &th),
	}

	return RenderedMessage{
		Subject: fmt.Sprintf("Payment failed for invoice %s", data.InvoiceNumber),
		HTML:    document(o.audience, "Payment failed", body...),
	}
}
