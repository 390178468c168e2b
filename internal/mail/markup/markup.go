// Package markup provides the composable building blocks for notification
// email bodies. Every component returns a Fragment, an opaque piece of
// inline-styled HTML; only the template layer's document shell turns
// fragments into a complete document, so a fragment can never end up
// wrapped twice or not at all.
//
// Components do not escape their text inputs. Callers interpolating
// user-controlled values must escape them first (see Escape).
package markup

import (
	"fmt"
	"html"
	"strings"

	"talent-notify/internal/mail/theme"
)

// Fragment is a rendered piece of email body HTML.
type Fragment struct {
	html string
}

func Raw(htmlText string) Fragment {
	return Fragment{html: htmlText}
}

func (f Fragment) String() string {
	return f.html
}

// Join concatenates fragments in order.
func Join(fragments ...Fragment) Fragment {
	var b strings.Builder
	for _, f := range fragments {
		b.WriteString(f.html)
	}
	return Fragment{html: b.String()}
}

// Escape makes a plain-text value safe for interpolation into a component.
func Escape(s string) string {
	return html.EscapeString(s)
}

type Variant string

const (
	VariantPrimary   Variant = "primary"
	VariantSecondary Variant = "secondary"
	VariantAccent    Variant = "accent"
)

type AlertKind string

const (
	AlertInfo    AlertKind = "info"
	AlertSuccess AlertKind = "success"
	AlertWarning AlertKind = "warning"
	AlertError   AlertKind = "error"
)

// alertStyles is the fixed per-kind color table; unknown kinds fall back to info.
var alertStyles = map[AlertKind]struct {
	background string
	border     string
	text       string
}{
	AlertInfo:    {background: "#EFF6FF", border: "#BFDBFE", text: "#1E40AF"},
	AlertSuccess: {background: "#F0FDF4", border: "#BBF7D0", text: "#166534"},
	AlertWarning: {background: "#FFFBEB", border: "#FDE68A", text: "#92400E"},
	AlertError:   {background: "#FEF2F2", border: "#FECACA", text: "#991B1B"},
}

var headingSizes = map[int]string{
	1: "24px",
	2: "20px",
	3: "16px",
}

func themeOrDefault(th *theme.Theme) theme.Theme {
	if th == nil {
		return theme.Default()
	}
	return *th
}

func variantColor(v Variant, th theme.Theme) string {
	switch v {
	case VariantSecondary:
		return th.Colors.Secondary
	case VariantAccent:
		return th.Colors.Accent
	default:
		return th.Colors.Primary
	}
}

// Heading renders a sized, weighted heading. Levels outside 1..3 clamp to 3.
func Heading(level int, text string) Fragment {
	size, ok := headingSizes[level]
	if !ok {
		size = headingSizes[3]
		level = 3
	}
	return Fragment{html: fmt.Sprintf(
		`<h%d style="margin:0 0 16px 0;font-size:%s;font-weight:600;color:#111827;">%s</h%d>`,
		level, size, text, level,
	)}
}

// Paragraph renders one body paragraph. Text is not escaped; callers own that.
func Paragraph(text string) Fragment {
	return Fragment{html: fmt.Sprintf(
		`<p style="margin:0 0 16px 0;font-size:14px;line-height:1.6;color:#374151;">%s</p>`,
		text,
	)}
}

// Button renders a single call-to-action link styled as a button.
func Button(href, text string, variant Variant, th *theme.Theme) Fragment {
	color := variantColor(variant, themeOrDefault(th))
	return Fragment{html: fmt.Sprintf(
		`<table role="presentation" cellpadding="0" cellspacing="0" style="margin:0 0 24px 0;"><tr><td style="border-radius:6px;background-color:%s;"><a href="%s" target="_blank" style="display:inline-block;padding:12px 24px;font-size:14px;font-weight:600;color:#ffffff;text-decoration:none;">%s</a></td></tr></table>`,
		color, href, text,
	)}
}

type InfoItem struct {
	Label     string
	Value     string
	Highlight bool
}

// InfoCard renders a bordered key/value table. Highlighted values use the
// theme's primary color and a heavier weight.
func InfoCard(title string, items []InfoItem, th *theme.Theme) Fragment {
	resolved := themeOrDefault(th)

	var rows strings.Builder
	for _, item := range items {
		valueStyle := "font-size:14px;color:#111827;text-align:right;padding:6px 0;"
		if item.Highlight {
			valueStyle = fmt.Sprintf("font-size:14px;color:%s;font-weight:600;text-align:right;padding:6px 0;", resolved.Colors.Primary)
		}
		rows.WriteString(fmt.Sprintf(
			`<tr><td style="font-size:14px;color:%s;padding:6px 0;">%s</td><td style="%s">%s</td></tr>`,
			resolved.Colors.TextMuted, item.Label, valueStyle, item.Value,
		))
	}

	titleHTML := ""
	if title != "" {
		titleHTML = fmt.Sprintf(
			`<p style="margin:0 0 8px 0;font-size:13px;font-weight:600;text-transform:uppercase;letter-spacing:0.05em;color:%s;">%s</p>`,
			resolved.Colors.TextMuted, title,
		)
	}

	return Fragment{html: fmt.Sprintf(
		`<div style="margin:0 0 24px 0;padding:16px;border:1px solid %s;border-radius:8px;background-color:%s;">%s<table role="presentation" width="100%%" cellpadding="0" cellspacing="0">%s</table></div>`,
		resolved.Colors.Border, resolved.Colors.Background, titleHTML, rows.String(),
	)}
}

// Alert renders a color-coded banner. The style table is fixed per kind;
// unknown kinds render as info.
func Alert(kind AlertKind, title, message string) Fragment {
	style, ok := alertStyles[kind]
	if !ok {
		style = alertStyles[AlertInfo]
	}

	titleHTML := ""
	if title != "" {
		titleHTML = fmt.Sprintf(
			`<p style="margin:0 0 4px 0;font-size:14px;font-weight:600;color:%s;">%s</p>`,
			style.text, title,
		)
	}

	return Fragment{html: fmt.Sprintf(
		`<div style="margin:0 0 24px 0;padding:12px 16px;border:1px solid %s;border-radius:6px;background-color:%s;">%s<p style="margin:0;font-size:14px;line-height:1.5;color:%s;">%s</p></div>`,
		style.border, style.background, titleHTML, style.text, message,
	)}
}

// Divider renders a horizontal rule, with a centered label when given.
func Divider(label string) Fragment {
	if label == "" {
		return Fragment{html: `<hr style="margin:24px 0;border:none;border-top:1px solid #E5E7EB;">`}
	}
	return Fragment{html: fmt.Sprintf(
		`<table role="presentation" width="100%%" cellpadding="0" cellspacing="0" style="margin:24px 0;"><tr><td style="border-top:1px solid #E5E7EB;"></td><td style="padding:0 12px;font-size:12px;color:#9CA3AF;white-space:nowrap;">%s</td><td style="border-top:1px solid #E5E7EB;" width="100%%"></td></tr></table>`,
		label,
	)}
}

type ListItem struct {
	Text string
	Bold bool
}

// List renders a bulleted list.
func List(items []ListItem) Fragment {
	var lis strings.Builder
	for _, item := range items {
		weight := "400"
		if item.Bold {
			weight = "600"
		}
		lis.WriteString(fmt.Sprintf(
			`<li style="margin:0 0 8px 0;font-size:14px;line-height:1.5;font-weight:%s;color:#374151;">%s</li>`,
			weight, item.Text,
		))
	}
	return Fragment{html: fmt.Sprintf(
		`<ul style="margin:0 0 16px 0;padding:0 0 0 20px;">%s</ul>`, lis.String(),
	)}
}

// Badge renders an inline colored pill.
func Badge(text string, variant Variant) Fragment {
	color := variantColor(variant, theme.Default())
	return Fragment{html: fmt.Sprintf(
		`<span style="display:inline-block;padding:2px 10px;border-radius:9999px;background-color:%s;font-size:12px;font-weight:600;color:#ffffff;">%s</span>`,
		color, text,
	)}
}
