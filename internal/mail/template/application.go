package template

import (
	"fmt"

	"talent-notify/internal/mail/markup"
	"talent-notify/internal/mail/theme"
)

type ApplicationCreatedData struct {
	RecruiterName  string
	CandidateName  string
	JobTitle       string
	CompanyName    string
	ApplicationURL string
}

// ApplicationCreated notifies the owning recruiter that a candidate applied.
// Defaults to the portal brand.
func ApplicationCreated(data ApplicationCreatedData, opts ...Option) RenderedMessage {
	o := resolveOptions(theme.AudiencePortal, opts)
	th := theme.Resolve(o.audience)

	applicationURL := data.ApplicationURL
	if applicationURL == "" {
		applicationURL = "https://portal.talenthub.example/applications"
	}

	body := []markup.Fragment{
		markup.Heading(1, "New application"),
		markup.Paragraph(fmt.Sprintf("Hi %s,", markup.Escape(data.RecruiterName))),
		markup.Paragraph(fmt.Sprintf("%s just applied to <strong>%s</strong> at %s.",
			markup.Escape(data.CandidateName), markup.Escape(data.JobTitle), markup.Escape(data.CompanyName))),
		markup.InfoCard("Application", []markup.InfoItem{
			{Label: "Candidate", Value: markup.Escape(data.CandidateName), Highlight: true},
			{Label: "Position", Value: markup.Escape(data.JobTitle)},
			{Label: "Company", Value: markup.Escape(data.CompanyName)},
		}, &th),
		markup.Button(applicationURL, "Review application", markup.VariantPrimary, &th),
	}

	return RenderedMessage{
		Subject: fmt.Sprintf("%s applied to %s", data.CandidateName, data.JobTitle),
		HTML:    document(o.audience, "New application", body...),
	}
}

type ApplicationStageChangedData struct {
	CandidateName string
	JobTitle      string
	CompanyName   string
	Stage         string
	StatusURL     string
}

// ApplicationStageChanged tells a candidate their application moved stages.
// Defaults to the candidate brand.
func ApplicationStageChanged(data ApplicationStageChangedData, opts ...Option) RenderedMessage {
	o := resolveOptions(theme.AudienceCandidate, opts)
	th := theme.Resolve(o.audience)

	statusURL := data.StatusURL
	if statusURL == "" {
		statusURL = "https://candidates.talenthub.example/applications"
	}

	body := []markup.Fragment{
		markup.Heading(1, "Your application moved forward"),
		markup.Paragraph(fmt.Sprintf("Hi %s,", markup.Escape(data.CandidateName))),
		markup.Paragraph(fmt.Sprintf("Your application for <strong>%s</strong> at %s has a new status:",
			markup.Escape(data.JobTitle), markup.Escape(data.CompanyName))),
		markup.Paragraph(markup.Badge(markup.Escape(data.Stage), markup.VariantAccent).String()),
		markup.Button(statusURL, "View your application", markup.VariantPrimary, &th),
		markup.Divider(""),
		markup.Paragraph("You will be notified again whenever the status changes."),
	}

	return RenderedMessage{
		Subject: fmt.Sprintf("Update on your application for %s", data.JobTitle),
		HTML:    document(o.audience, "Application update", body...),
	}
}
