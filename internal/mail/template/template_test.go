//go:build unit

package template_test

import (
	"strings"
	"testing"
	"time"

	"talent-notify/internal/mail/template"
	"talent-notify/internal/mail/theme"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func assertCompleteDocument(t *testing.T, html string) {
	t.Helper()
	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	assert.True(t, strings.HasSuffix(html, "</html>"))
	assert.Equal(t, 1, strings.Count(html, "<!DOCTYPE html>"), "shell must wrap exactly once")
	assert.Equal(t, 1, strings.Count(html, "</body>"))
	assert.Contains(t, html, "Privacy Policy")
	assert.Contains(t, html, "Terms of Service")
	assert.Contains(t, html, "All rights reserved")
}

func TestStripeConnectOnboarded(t *testing.T) {
	msg := template.StripeConnectOnboarded(template.StripeConnectOnboardedData{
		RecruiterName: "Jane",
		AccountID:     "acct_1",
	})

	assert.Equal(t, "Your payout account is connected", msg.Subject)
	assertCompleteDocument(t, msg.HTML)
	assert.Contains(t, msg.HTML, "Jane")
	assert.Contains(t, msg.HTML, "acct_1")
	assert.Contains(t, msg.HTML, theme.Resolve(theme.AudiencePortal).LogoURL)
}

func TestTemplates_Deterministic(t *testing.T) {
	data := template.ApplicationCreatedData{
		RecruiterName: "Jane",
		CandidateName: "Ravi",
		JobTitle:      "Staff Engineer",
		CompanyName:   "Acme",
	}

	first := template.ApplicationCreated(data)
	second := template.ApplicationCreated(data)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("identical input must yield byte-identical output (-first +second):\n%s", diff)
	}
}

func TestTemplates_EscapeUserData(t *testing.T) {
	msg := template.ApplicationCreated(template.ApplicationCreatedData{
		RecruiterName: "Jane",
		CandidateName: `<script>alert("x")</script>`,
		JobTitle:      "Engineer",
		CompanyName:   "Acme",
	})

	assert.NotContains(t, msg.HTML, "<script>")
	assert.Contains(t, msg.HTML, "&lt;script&gt;")
}

func TestServiceUnhealthy_PinsCorporateBrand(t *testing.T) {
	msg := template.ServiceUnhealthy(template.ServiceUnhealthyData{
		Service:     "billing-api",
		Status:      "timeout",
		ErrorDetail: "context deadline exceeded",
		CheckedAt:   time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	})

	assertCompleteDocument(t, msg.HTML)
	assert.Contains(t, msg.Subject, "[ALERT]")
	assert.Contains(t, msg.Subject, "billing-api")
	assert.Contains(t, msg.HTML, theme.Resolve(theme.AudienceCorporate).LogoURL)
	assert.Contains(t, msg.HTML, "context deadline exceeded")
}

func TestServiceRecovered(t *testing.T) {
	msg := template.ServiceRecovered(template.ServiceRecoveredData{
		Service: "billing-api",
		DownFor: "4m30s",
	})

	assertCompleteDocument(t, msg.HTML)
	assert.Contains(t, msg.Subject, "[RESOLVED]")
	assert.Contains(t, msg.HTML, theme.Resolve(theme.AudienceCorporate).LogoURL)
}

func TestWithAudience_Override(t *testing.T) {
	data := template.CompanyPlatformInvitationData{
		CompanyName: "Acme",
		InviterName: "Jane",
		InviteURL:   "https://portal.talenthub.example/invite/t1",
	}

	portal := template.CompanyPlatformInvitation(data)
	corporate := template.CompanyPlatformInvitation(data, template.WithAudience(theme.AudienceCorporate))

	assert.Contains(t, portal.HTML, theme.Resolve(theme.AudiencePortal).LogoURL)
	assert.Contains(t, corporate.HTML, theme.Resolve(theme.AudienceCorporate).LogoURL)
}

func TestCandidateInvitation(t *testing.T) {
	msg := template.CandidateInvitation(template.CandidateInvitationData{
		CandidateName: "Ravi",
		RecruiterName: "Jane",
		CompanyName:   "Acme",
		JobTitle:      "Staff Engineer",
		InviteURL:     "https://candidates.talenthub.example/invite/t2",
	})

	assertCompleteDocument(t, msg.HTML)
	assert.Contains(t, msg.HTML, theme.Resolve(theme.AudienceCandidate).LogoURL)
	assert.Contains(t, msg.HTML, "https://candidates.talenthub.example/invite/t2")
	assert.Contains(t, msg.Subject, "Staff Engineer")

	// missing name degrades to a generic greeting, not broken markup
	anon := template.CandidateInvitation(template.CandidateInvitationData{
		RecruiterName: "Jane",
		CompanyName:   "Acme",
		JobTitle:      "Staff Engineer",
		InviteURL:     "https://candidates.talenthub.example/invite/t2",
	})
	assert.Contains(t, anon.HTML, "Hi,")
}

func TestInvoicePaymentFailed(t *testing.T) {
	msg := template.InvoicePaymentFailed(template.InvoicePaymentFailedData{
		RecruiterName: "Jane",
		InvoiceNumber: "INV-42",
		AmountDue:     "$120.00",
	})

	assertCompleteDocument(t, msg.HTML)
	assert.Equal(t, "Payment failed for invoice INV-42", msg.Subject)
	assert.Contains(t, msg.HTML, "$120.00")
}
