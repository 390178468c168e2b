package template

import (
	"fmt"

	"talent-notify/internal/mail/markup"
	"talent-notify/internal/mail/theme"
)

type CompanyPlatformInvitationData struct {
	CompanyName   string
	InviterName   string
	InviteURL     string
	ExpiresInDays int
}

// CompanyPlatformInvitation invites a company contact to join the platform.
// Defaults to the portal brand.
func CompanyPlatformInvitation(data CompanyPlatformInvitationData, opts ...Option) RenderedMessage {
	o := resolveOptions(theme.AudiencePortal, opts)
	th := theme.Resolve(o.audience)

	expiry := data.ExpiresInDays
	if expiry <= 0 {
		expiry = 7
	}

	body := []markup.Fragment{
		markup.Heading(1, "You're invited to TalentHub"),
		markup.Paragraph(fmt.Sprintf("%s has invited <strong>%s</strong> to manage hiring on TalentHub.",
			markup.Escape(data.InviterName), markup.Escape(data.CompanyName))),
		markup.List([]markup.ListItem{
			{Text: "Post roles and track applicants in one place", Bold: false},
			{Text: "Work with vetted recruiters", Bold: false},
			{Text: "Pay only on successful hires", Bold: true},
		}),
		markup.Button(data.InviteURL, "Accept invitation", markup.VariantPrimary, &th),
		markup.Paragraph(fmt.Sprintf("This invitation expires in %d days. If you weren't expecting it, you can ignore this email.", expiry)),
	}

	return RenderedMessage{
		Subject: fmt.Sprintf("%s invited you to TalentHub", data.InviterName),
		HTML:    document(o.audience, "Company invitation", body...),
	}
}

type CandidateInvitationData struct {
	CandidateName string
	RecruiterName string
	CompanyName   string
	JobTitle      string
	InviteURL     string
}

// CandidateInvitation invites a candidate to apply for a specific role.
// Defaults to the candidate brand.
func CandidateInvitation(data CandidateInvitationData, opts ...Option) RenderedMessage {
	o := resolveOptions(theme.AudienceCandidate, opts)
	th := theme.Resolve(o.audience)

	greeting := "Hi,"
	if data.CandidateName != "" {
		greeting = fmt.Sprintf("Hi %s,", markup.Escape(data.CandidateName))
	}

	body := []markup.Fragment{
		markup.Heading(1, "A recruiter wants to talk to you"),
		markup.Paragraph(greeting),
		markup.Paragraph(fmt.Sprintf("%s thinks you'd be a great fit for <strong>%s</strong> at %s and invited you to apply.",
			markup.Escape(data.RecruiterName), markup.Escape(data.JobTitle), markup.Escape(data.CompanyName))),
		markup.InfoCard("", []markup.InfoItem{
			{Label: "Position", Value: markup.Escape(data.JobTitle), Highlight: true},
			{Label: "Company", Value: markup.Escape(data.CompanyName)},
			{Label: "Recruiter", Value: markup.Escape(data.RecruiterName)},
		}, &th),
		markup.Button(data.InviteURL, "View the role", markup.VariantPrimary, &th),
	}

	return RenderedMessage{
		Subject: fmt.Sprintf("You've been invited to apply: %s at %s", data.JobTitle, data.CompanyName),
		HTML:    document(o.audience, "Candidate invitation", body...),
	}
}
