package template

import (
	"fmt"
	"time"

	"talent-notify/internal/mail/markup"
	"talent-notify/internal/mail/theme"
)

type ServiceUnhealthyData struct {
	Service     string
	Status      string
	ErrorDetail string
	CheckedAt   time.Time
}

// ServiceUnhealthy is the operator alert for a failing health check. It takes
// no audience option: degraded-condition mail is always corporate-branded,
// and it is the only kind dispatched at high priority.
func ServiceUnhealthy(data ServiceUnhealthyData) RenderedMessage {
	th := theme.Resolve(theme.AudienceCorporate)

	status := data.Status
	if status == "" {
		status = "unreachable"
	}

	items := []markup.InfoItem{
		{Label: "Service", Value: markup.Escape(data.Service), Highlight: true},
		{Label: "Status", Value: markup.Escape(status)},
	}
	if !data.CheckedAt.IsZero() {
		items = append(items, markup.InfoItem{Label: "Checked at", Value: data.CheckedAt.UTC().Format(time.RFC3339)})
	}

	body := []markup.Fragment{
		markup.Heading(1, "Service unhealthy"),
		markup.Alert(markup.AlertError, "Health check failing", fmt.Sprintf("The %s service is failing its health check and may be degraded or down.", markup.Escape(data.Service))),
		markup.InfoCard("Check details", items, &th),
	}

	if data.ErrorDetail != "" {
		body = append(body,
			markup.Divider("last error"),
			markup.Paragraph(markup.Escape(data.ErrorDetail)),
		)
	}

	body = append(body, markup.Button("https://ops.talenthub.example/monitor", "Open monitor", markup.VariantPrimary, &th))

	return RenderedMessage{
		Subject: fmt.Sprintf("[ALERT] %s is unhealthy", data.Service),
		HTML:    document(theme.AudienceCorporate, "Service unhealthy", body...),
	}
}

type ServiceRecoveredData struct {
	Service     string
	DownFor     string
	RecoveredAt time.Time
}

// ServiceRecovered is the all-clear counterpart to ServiceUnhealthy, also
// pinned to the corporate brand.
func ServiceRecovered(data ServiceRecoveredData) RenderedMessage {
	th := theme.Resolve(theme.AudienceCorporate)

	items := []markup.InfoItem{
		{Label: "Service", Value: markup.Escape(data.Service), Highlight: true},
	}
	if data.DownFor != "" {
		items = append(items, markup.InfoItem{Label: "Down for", Value: markup.Escape(data.DownFor)})
	}
	if !data.RecoveredAt.IsZero() {
		items = append(items, markup.InfoItem{Label: "Recovered at", Value: data.RecoveredAt.UTC().Format(time.RFC3339)})
	}

	body := []markup.Fragment{
		markup.Heading(1, "Service recovered"),
		markup.Alert(markup.AlertSuccess, "Back to healthy", fmt.Sprintf("The %s service is passing its health check again.", markup.Escape(data.Service))),
		markup.InfoCard("Recovery details", items, &th),
	}

	return RenderedMessage{
		Subject: fmt.Sprintf("[RESOLVED] %s has recovered", data.Service),
		HTML:    document(theme.AudienceCorporate, "Service recovered", body...),
	}
}
