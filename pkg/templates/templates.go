package templates

import (
	"fmt"
	"sort"
	"strings"

	"github.com/counselflow/intake-api/pkg/form"
)

// Input carries everything a template may substitute. Rendering is a pure
// function of this value: no I/O, no logic inside templates beyond token
// replacement.
type Input struct {
	FirstName string
	Profile   string
	Form      form.Fields
	CTAURL    string
	CTAText   string
}

// Render resolves a body template id to HTML with all tokens substituted.
func Render(templateID string, in Input) (string, error) {
	d, ok := bodies[templateID]
	if !ok {
		return "", fmt.Errorf("unknown template id %q", templateID)
	}

	ctaText := in.CTAText
	if ctaText == "" {
		ctaText = d.CTAText
	}
	if ctaText == "" {
		ctaText = "Book a consultation"
	}

	html := fmt.Sprintf(`
		<html>
		<body style="font-family: Georgia, serif; color: #1a1a2e; max-width: 600px; margin: 0 auto;">
			<h2 style="color: #16213e;">%s</h2>
			%s
			<p><a href="{{ctaUrl}}" style="background-color: #0f3460; color: white; padding: 14px 24px; text-decoration: none; border-radius: 4px; display: inline-block;">{{ctaText}}</a></p>
			<p style="color: #888; font-size: 13px;">You're receiving this because you contacted our firm. Reply to reach us directly.</p>
		</body>
		</html>
	`, d.Headline, d.Body)

	return replacerFor(in, ctaText).Replace(html), nil
}

// RenderSubject substitutes tokens in a subject template.
func RenderSubject(subject string, in Input) string {
	return replacerFor(in, in.CTAText).Replace(subject)
}

// Has reports whether a body template id exists.
func Has(templateID string) bool {
	_, ok := bodies[templateID]
	return ok
}

// IDs returns every known body template id, sorted.
func IDs() []string {
	out := make([]string, 0, len(bodies))
	for id := range bodies {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

func replacerFor(in Input, ctaText string) *strings.Replacer {
	firstName := strings.TrimSpace(in.FirstName)
	if firstName == "" {
		firstName = "there"
	}
	ctaURL := in.CTAURL
	if ctaURL == "" {
		ctaURL = "#"
	}
	return strings.NewReplacer(
		"{{firstName}}", firstName,
		"{{profile}}", in.Profile,
		"{{ctaUrl}}", ctaURL,
		"{{ctaText}}", ctaText,
	)
}
