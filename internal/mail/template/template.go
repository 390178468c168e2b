// Package template assembles markup fragments into complete notification
// emails. Every message goes through the same document shell (brand header,
// content region, legal footer) so the document shape stays identical across
// notification kinds. Template functions are pure: same data in, same bytes out.
package template

import (
	"fmt"
	"strings"

	"talent-notify/internal/mail/markup"
	"talent-notify/internal/mail/theme"
)

// RenderedMessage is the transient output of a template function. It is never
// persisted as-is; the subject is folded into the notification log and the
// HTML handed to the mail provider.
type RenderedMessage struct {
	Subject string
	HTML    string
}

// Template kind tags, recorded on each notification log row.
const (
	KindStripeConnectOnboarded    = "stripe_connect_onboarded"
	KindInvoicePaymentFailed      = "invoice_payment_failed"
	KindServiceUnhealthy          = "service_unhealthy"
	KindServiceRecovered          = "service_recovered"
	KindApplicationCreated        = "application_created"
	KindApplicationStageChanged   = "application_stage_changed"
	KindCompanyPlatformInvitation = "company_platform_invitation"
	KindCandidateInvitation       = "candidate_invitation"
)

type options struct {
	audience theme.Audience
}

type Option func(*options)

// WithAudience overrides a template's default brand. Health templates ignore
// it: degraded-condition mail is always corporate-branded.
func WithAudience(a theme.Audience) Option {
	return func(o *options) {
		o.audience = a
	}
}

func resolveOptions(defaultAudience theme.Audience, opts []Option) options {
	o := options{audience: defaultAudience}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// document wraps content fragments in the fixed shell. This is the only place
// a complete HTML document is produced, which guarantees exactly one wrap.
func document(audience theme.Audience, title string, fragments ...markup.Fragment) string {
	th := theme.Resolve(audience)

	var b strings.Builder
	b.WriteString(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1.0"><title>`)
	b.WriteString(markup.Escape(title))
	b.WriteString(`</title></head>`)
	b.WriteString(fmt.Sprintf(`<body style="margin:0;padding:0;background-color:%s;font-family:-apple-system,BlinkMacSystemFont,'Segoe UI',Roboto,Helvetica,Arial,sans-serif;">`, th.Colors.Background))
	b.WriteString(`<table role="presentation" width="100%" cellpadding="0" cellspacing="0"><tr><td align="center" style="padding:32px 16px;">`)
	b.WriteString(`<table role="presentation" width="600" cellpadding="0" cellspacing="0" style="max-width:600px;width:100%;">`)

	// Header: brand logo and tagline keyed by audience.
	b.WriteString(fmt.Sprintf(
		`<tr><td style="padding:0 0 24px 0;text-align:center;"><img src="%s" alt="TalentHub" height="36" style="border:0;"><p style="margin:8px 0 0 0;font-size:12px;color:%s;">%s</p></td></tr>`,
		th.LogoURL, th.Colors.TextMuted, th.Tagline,
	))

	// Content region.
	b.WriteString(fmt.Sprintf(
		`<tr><td style="padding:32px;background-color:#ffffff;border:1px solid %s;border-radius:8px;">%s</td></tr>`,
		th.Colors.Border, markup.Join(fragments...).String(),
	))

	// Footer: legal links and copyright, identical for every kind.
	b.WriteString(fmt.Sprintf(
		`<tr><td style="padding:24px 0 0 0;text-align:center;"><p style="margin:0 0 8px 0;font-size:12px;color:%s;"><a href="https://talenthub.example/privacy" style="color:%s;text-decoration:underline;">Privacy Policy</a> &middot; <a href="https://talenthub.example/terms" style="color:%s;text-decoration:underline;">Terms of Service</a></p><p style="margin:0;font-size:12px;color:%s;">&copy; TalentHub. All rights reserved.</p></td></tr>`,
		th.Colors.TextMuted, th.Colors.TextMuted, th.Colors.TextMuted, th.Colors.TextMuted,
	))

	b.WriteString(`</table></td></tr></table></body></html>`)
	return b.String()
}
