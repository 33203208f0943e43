package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/counselflow/intake-api/pkg/form"
)

func TestScore_EstateAthlete(t *testing.T) {
	f := form.Fields{
		"email":              "mgmt@eliteagency.com",
		"phone":              "+13105551234",
		"gross_estate":       "over25m",
		"package_preference": "trust_package",
		"own_business":       "yes",
		"profession":         "professional athlete",
		"revenue_streams":    "brand_partnerships,licensing",
	}

	result := Score(KindEstate, f)

	// Raw total is 250; the clamp caps the stored score.
	assert.Equal(t, 100, result.Score)
	assert.Equal(t, PriorityHigh, result.Priority)

	raw := 0
	for _, factor := range result.Factors {
		raw += factor.Points
	}
	assert.Equal(t, 250, raw)

	labels := make([]string, 0, len(result.Factors))
	for _, factor := range result.Factors {
		labels = append(labels, factor.Label)
	}
	assert.Equal(t, []string{
		"base estate",
		"gross estate",
		"trust package",
		"owns business",
		"athlete signals",
		"brand partnerships",
		"business email",
		"phone provided",
	}, labels)
}

func TestScore_PriorityBands(t *testing.T) {
	cases := []struct {
		name     string
		kind     string
		fields   form.Fields
		score    int
		priority Priority
	}{
		{
			name:     "newsletter base only",
			kind:     KindNewsletter,
			fields:   form.Fields{"email": "jane@gmail.com"},
			score:    20,
			priority: PriorityStandard,
		},
		{
			name:     "outside counsel sits on the medium boundary",
			kind:     KindOutsideCounsel,
			fields:   form.Fields{"email": "sam@gmail.com"},
			score:    50,
			priority: PriorityMedium,
		},
		{
			name:     "estate at exactly seventy is high",
			kind:     KindEstate,
			fields:   form.Fields{"email": "pat@gmail.com", "gross_estate": "1000000"},
			score:    70,
			priority: PriorityHigh,
		},
		{
			name:     "modest estate",
			kind:     KindEstate,
			fields:   form.Fields{"email": "lee@gmail.com", "gross_estate": "$750,000"},
			score:    60,
			priority: PriorityMedium,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := Score(tc.kind, tc.fields)
			assert.Equal(t, tc.score, result.Score)
			assert.Equal(t, tc.priority, result.Priority)
		})
	}
}

func TestScore_CriticalGate(t *testing.T) {
	t.Run("Success - gaming legal at ninety plus is critical", func(t *testing.T) {
		f := form.Fields{
			"email":   "gm@studioco.gg",
			"phone":   "+14155550100",
			"message": "need help asap before our launch",
		}
		// 50 base + 45 urgent + 15 business email + 10 phone, clamped.
		result := Score(KindGamingLegal, f)
		assert.Equal(t, 100, result.Score)
		assert.Equal(t, PriorityCritical, result.Priority)
	})

	t.Run("Success - high score without urgency stays high", func(t *testing.T) {
		f := form.Fields{
			"email":           "founder@seedling.io",
			"investment_plan": "vc",
		}
		result := Score(KindBusinessFormation, f)
		assert.Equal(t, 100, result.Score)
		assert.Equal(t, PriorityHigh, result.Priority)
	})

	t.Run("Success - urgent language in timeline triggers critical", func(t *testing.T) {
		f := form.Fields{
			"email":           "founder@seedling.io",
			"investment_plan": "vc",
			"timeline":        "immediate",
		}
		result := Score(KindBusinessFormation, f)
		assert.Equal(t, PriorityCritical, result.Priority)
	})
}

func TestScore_AssessmentBases(t *testing.T) {
	t.Run("Success - strategy builder carries its assessment score", func(t *testing.T) {
		f := form.Fields{
			"email":              "drew@gmail.com",
			"assessment_score":   "62",
			"wants_consultation": "yes",
		}
		result := Score(KindLegalStrategy, f)
		assert.Equal(t, 87, result.Score)
		assert.Equal(t, PriorityHigh, result.Priority)
		require.NotEmpty(t, result.Factors)
		assert.Equal(t, "assessment score", result.Factors[0].Label)
		assert.Equal(t, 62, result.Factors[0].Points)
	})

	t.Run("Success - low risk maps to a high lead score", func(t *testing.T) {
		f := form.Fields{"email": "drew@gmail.com", "risk_score": "5"}
		// 100 - 2*5, no severity bonus below the 12 threshold.
		result := Score(KindLegalRiskAssessment, f)
		assert.Equal(t, 90, result.Score)
	})

	t.Run("Success - severe risk floors the base and adds severity", func(t *testing.T) {
		f := form.Fields{"email": "drew@gmail.com", "risk_score": "40"}
		// Base floors at 30, severity adds 30 above the 20 threshold.
		result := Score(KindLegalRiskAssessment, f)
		assert.Equal(t, 60, result.Score)
		assert.Equal(t, PriorityMedium, result.Priority)
	})

	t.Run("Success - missing assessment falls back to the kind base", func(t *testing.T) {
		result := Score(KindLegalStrategy, form.Fields{"email": "drew@gmail.com"})
		assert.Equal(t, 35, result.Score)
	})
}

func TestScore_UniversalSignals(t *testing.T) {
	free := Score(KindNewsletter, form.Fields{"email": "jane@gmail.com"})
	business := Score(KindNewsletter, form.Fields{"email": "jane@acmelaw.com"})
	assert.Equal(t, 20, free.Score)
	assert.Equal(t, 35, business.Score)

	withPhone := Score(KindNewsletter, form.Fields{"email": "jane@gmail.com", "phone": "555-0100"})
	assert.Equal(t, 30, withPhone.Score)

	withCompany := Score(KindNewsletter, form.Fields{"email": "jane@gmail.com", "company": "Acme LLC"})
	assert.Equal(t, 30, withCompany.Score)
}

func TestScore_Deterministic(t *testing.T) {
	f := form.Fields{
		"email":            "gm@studioco.gg",
		"phone":            "+14155550100",
		"message":          "urgent contract review",
		"business_name":    "StudioCo",
		"social_following": "250000",
	}

	first := Score(KindBrandProtection, f)
	second := Score(KindBrandProtection, f)
	assert.Equal(t, first, second)
}
