package pathway

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/counselflow/intake-api/pkg/profile"
	"github.com/counselflow/intake-api/pkg/scoring"
	"github.com/counselflow/intake-api/pkg/templates"
)

func TestSelect(t *testing.T) {
	cases := []struct {
		name         string
		score        int
		kind         string
		guideVariant string
		prof         profile.Profile
		want         string
	}{
		{"athlete vip", 95, scoring.KindEstate, "", profile.Athlete, "athlete-vip"},
		{"creator vip", 80, scoring.KindBrandProtection, "", profile.Creator, "creator-vip"},
		{"startup vip", 72, scoring.KindBusinessFormation, "", profile.Startup, "startup-vip"},
		{"family vip", 70, scoring.KindEstate, "", profile.Family, "family-vip"},
		{"generic profile falls back to plain vip", 85, scoring.KindOutsideCounsel, "", profile.Generic, "vip"},
		{"business owner has no vip pathway", 75, scoring.KindEstate, "", profile.BusinessOwner, "vip"},
		{"premium band", 55, scoring.KindEstate, "", profile.Family, "premium-nurture"},
		{"premium boundary", 50, scoring.KindNewsletter, "", profile.Generic, "premium-nurture"},
		{"guide variant wins below fifty", 30, scoring.KindResourceGuide, "business", profile.Generic, "guide-business"},
		{"unknown guide variant falls through", 30, scoring.KindResourceGuide, "crypto", profile.Generic, "intake-resource_guide"},
		{"kind intake pathway", 40, scoring.KindEstate, "", profile.Generic, "intake-estate"},
		{"unknown kind lands on standard nurture", 25, "walk_in", "", profile.Generic, "standard-nurture"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Select(tc.score, tc.kind, tc.guideVariant, tc.prof))
		})
	}
}

func TestGet(t *testing.T) {
	p, ok := Get("vip")
	require.True(t, ok)
	assert.Equal(t, "vip", p.Name)
	assert.Equal(t, "high_score", p.Trigger)
	require.NotEmpty(t, p.Steps)

	_, ok = Get("does-not-exist")
	assert.False(t, ok)
}

// Every pathway must be deliverable: a welcome step at enrollment time,
// nondecreasing delays, and a body template for every step.
func TestCatalogIntegrity(t *testing.T) {
	names := Names()
	require.NotEmpty(t, names)

	for _, name := range names {
		p, ok := Get(name)
		require.True(t, ok, name)

		t.Run(name, func(t *testing.T) {
			assert.Equal(t, name, p.Name)
			assert.NotEmpty(t, p.Trigger)
			require.NotEmpty(t, p.Steps)

			assert.Zero(t, p.Steps[0].Delay, "first step should send at enrollment")

			prev := p.Steps[0].Delay
			for i, step := range p.Steps {
				assert.NotEmpty(t, step.Subject, "step %d subject", i)
				assert.True(t, templates.Has(step.TemplateID), "step %d references unknown template %q", i, step.TemplateID)
				assert.GreaterOrEqual(t, step.Delay, prev, "step %d delay goes backwards", i)
				prev = step.Delay
			}
		})
	}
}

func TestSelect_AlwaysResolvable(t *testing.T) {
	profiles := []profile.Profile{
		profile.Athlete, profile.Creator, profile.Startup,
		profile.Family, profile.BusinessOwner, profile.Generic,
	}
	kinds := []string{
		scoring.KindEstate, scoring.KindBusinessFormation, scoring.KindBrandProtection,
		scoring.KindOutsideCounsel, scoring.KindLegalStrategy, scoring.KindLegalRiskAssessment,
		scoring.KindGamingLegal, scoring.KindNewsletter, scoring.KindResourceGuide,
	}

	for _, prof := range profiles {
		for _, kind := range kinds {
			for _, score := range []int{0, 49, 50, 69, 70, 100} {
				name := Select(score, kind, "", prof)
				_, ok := Get(name)
				assert.True(t, ok, "Select(%d, %s, %s) returned unknown pathway %s", score, kind, prof, name)
			}
		}
	}
}
