package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/counselflow/intake-api/pkg/form"
	"github.com/counselflow/intake-api/pkg/scoring"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name   string
		kind   string
		fields form.Fields
		want   Profile
	}{
		{
			name:   "athlete by profession",
			kind:   scoring.KindEstate,
			fields: form.Fields{"profession": "Professional Athlete"},
			want:   Athlete,
		},
		{
			name:   "athlete by industry",
			kind:   scoring.KindBrandProtection,
			fields: form.Fields{"industry": "sports"},
			want:   Athlete,
		},
		{
			name:   "creator by following",
			kind:   scoring.KindBrandProtection,
			fields: form.Fields{"social_following": "150000"},
			want:   Creator,
		},
		{
			name:   "creator by revenue streams",
			kind:   scoring.KindBusinessFormation,
			fields: form.Fields{"revenue_streams": "brand_partnerships"},
			want:   Creator,
		},
		{
			name:   "startup from formation intake",
			kind:   scoring.KindBusinessFormation,
			fields: form.Fields{"investment_plan": "vc"},
			want:   Startup,
		},
		{
			name:   "startup only applies to formation",
			kind:   scoring.KindOutsideCounsel,
			fields: form.Fields{"investment_plan": "vc"},
			want:   Generic,
		},
		{
			name:   "family from a sizable estate",
			kind:   scoring.KindEstate,
			fields: form.Fields{"gross_estate": "2.5m"},
			want:   Family,
		},
		{
			name:   "business owner by flag",
			kind:   scoring.KindEstate,
			fields: form.Fields{"own_business": "yes", "gross_estate": "400000"},
			want:   BusinessOwner,
		},
		{
			name:   "business owner by company name",
			kind:   scoring.KindNewsletter,
			fields: form.Fields{"company_name": "Acme LLC"},
			want:   BusinessOwner,
		},
		{
			name:   "generic fallback",
			kind:   scoring.KindNewsletter,
			fields: form.Fields{"email": "jane@gmail.com"},
			want:   Generic,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(tc.kind, tc.fields))
		})
	}
}

// Athlete outranks creator when both sets of signals appear; an athlete with
// a large following still lands on the athlete pathways.
func TestClassify_Precedence(t *testing.T) {
	f := form.Fields{
		"profession":       "athlete",
		"social_following": "2000000",
		"own_business":     "yes",
	}
	assert.Equal(t, Athlete, Classify(scoring.KindBrandProtection, f))

	delete(f, "profession")
	assert.Equal(t, Creator, Classify(scoring.KindBrandProtection, f))

	delete(f, "social_following")
	assert.Equal(t, BusinessOwner, Classify(scoring.KindBrandProtection, f))
}
