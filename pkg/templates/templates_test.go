package templates

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	t.Run("Success - substitutes all tokens", func(t *testing.T) {
		html, err := Render("vip-welcome", Input{
			FirstName: "Jordan",
			Profile:   "athlete",
			CTAURL:    "https://calendly.com/firm/consult",
			CTAText:   "Grab a time",
		})
		require.NoError(t, err)

		assert.Contains(t, html, "Jordan")
		assert.Contains(t, html, "https://calendly.com/firm/consult")
		assert.Contains(t, html, "Grab a time")
		assert.NotContains(t, html, "{{")
	})

	t.Run("Success - defaults for missing input", func(t *testing.T) {
		html, err := Render("standard-welcome", Input{})
		require.NoError(t, err)

		assert.Contains(t, html, "there")
		assert.Contains(t, html, `href="#"`)
		assert.Contains(t, html, "Book a consultation")
	})

	t.Run("Error - unknown template id", func(t *testing.T) {
		_, err := Render("nonexistent-template", Input{FirstName: "Jordan"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown template id")
	})
}

func TestRenderSubject(t *testing.T) {
	subject := RenderSubject("{{firstName}}, a quick question about your timeline", Input{FirstName: "Sam"})
	assert.Equal(t, "Sam, a quick question about your timeline", subject)

	subject = RenderSubject("{{firstName}}, a quick question about your timeline", Input{})
	assert.Equal(t, "there, a quick question about your timeline", subject)
}

func TestHas(t *testing.T) {
	assert.True(t, Has("vip-welcome"))
	assert.True(t, Has("consultation-confirmation"))
	assert.True(t, Has("client-confirmation"))
	assert.False(t, Has("nonexistent-template"))
}

// Every catalog entry must render clean HTML with no unresolved tokens left
// behind once input is supplied.
func TestIDs_AllRender(t *testing.T) {
	ids := IDs()
	require.NotEmpty(t, ids)

	in := Input{FirstName: "Jordan", Profile: "creator", CTAURL: "https://example.com/book"}
	for _, id := range ids {
		html, err := Render(id, in)
		require.NoError(t, err, id)
		assert.False(t, strings.Contains(html, "{{"), "template %s has unresolved tokens", id)
		assert.Contains(t, html, "<html>", id)
	}
}

func TestRenderInternalAlert(t *testing.T) {
	subject, body := RenderInternalAlert("gaming_legal", 95, "critical", map[string]interface{}{
		"email":   "gm@studioco.gg",
		"message": "need help <asap>",
	})

	assert.Equal(t, "[CRITICAL] New gaming legal lead - score 95", subject)
	assert.Contains(t, body, "gm@studioco.gg")
	assert.Contains(t, body, "&lt;asap&gt;")
	assert.NotContains(t, body, "<asap>")
}
