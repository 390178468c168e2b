// Package theme maps an audience tag to the brand identity and palette used
// when rendering notification emails.
package theme

// Audience selects which brand a rendered message carries.
type Audience string

const (
	// AudiencePortal is the recruiter-facing product brand.
	AudiencePortal Audience = "portal"
	// AudienceCandidate is the candidate-facing brand.
	AudienceCandidate Audience = "candidate"
	// AudienceCorporate is the internal/operational brand used for alerts.
	AudienceCorporate Audience = "corporate"
)

type Colors struct {
	Primary    string
	Secondary  string
	Accent     string
	Warning    string
	Error      string
	Text       string
	TextMuted  string
	Background string
	Border     string
}

type Theme struct {
	LogoURL string
	Tagline string
	Colors  Colors
}

var themes = map[Audience]Theme{
	AudiencePortal: {
		LogoURL: "https://cdn.talenthub.example/brand/portal-logo.png",
		Tagline: "Hiring, without the busywork",
		Colors: Colors{
			Primary:    "#2563EB",
			Secondary:  "#1E40AF",
			Accent:     "#0EA5E9",
			Warning:    "#D97706",
			Error:      "#DC2626",
			Text:       "#111827",
			TextMuted:  "#6B7280",
			Background: "#F9FAFB",
			Border:     "#E5E7EB",
		},
	},
	AudienceCandidate: {
		LogoURL: "https://cdn.talenthub.example/brand/candidate-logo.png",
		Tagline: "Your next role starts here",
		Colors: Colors{
			Primary:    "#7C3AED",
			Secondary:  "#5B21B6",
			Accent:     "#A78BFA",
			Warning:    "#D97706",
			Error:      "#DC2626",
			Text:       "#111827",
			TextMuted:  "#6B7280",
			Background: "#FAF5FF",
			Border:     "#E9D5FF",
		},
	},
	AudienceCorporate: {
		LogoURL: "https://cdn.talenthub.example/brand/corporate-logo.png",
		Tagline: "TalentHub Operations",
		Colors: Colors{
			Primary:    "#0F172A",
			Secondary:  "#334155",
			Accent:     "#38BDF8",
			Warning:    "#F59E0B",
			Error:      "#EF4444",
			Text:       "#0F172A",
			TextMuted:  "#64748B",
			Background: "#F1F5F9",
			Border:     "#CBD5E1",
		},
	},
}

// Resolve is total: an unrecognized audience falls back to the portal brand.
func Resolve(audience Audience) Theme {
	if t, ok := themes[audience]; ok {
		return t
	}
	return themes[AudiencePortal]
}

// Default returns the portal theme, used when a component is given no theme.
func Default() Theme {
	return themes[AudiencePortal]
}
