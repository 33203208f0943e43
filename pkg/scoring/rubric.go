package scoring

import "github.com/counselflow/intake-api/pkg/form"

// The rubric is data: per-kind rule tables evaluated in order, all
// contributions additive, clamped to 100 at the end. Changing weights must
// never require touching the engine in scoring.go.

// Rule is one rubric entry. Eval returns the points contributed (0 = no match).
type Rule struct {
	Label string
	Eval  func(f form.Fields) int
}

// points builds a fixed-value rule.
func points(label string, pts int, match func(f form.Fields) bool) Rule {
	return Rule{Label: label, Eval: func(f form.Fields) int {
		if match(f) {
			return pts
		}
		return 0
	}}
}

// tier is one threshold of a tiered rule, checked highest first.
type tier struct {
	min float64
	pts int
}

// tiered builds a rule that awards the points of the highest threshold the
// numeric field reaches.
func tiered(label, key string, tiers ...tier) Rule {
	return Rule{Label: label, Eval: func(f form.Fields) int {
		v := f.Num(key)
		for _, t := range tiers {
			if v >= t.min {
				return t.pts
			}
		}
		return 0
	}}
}

const defaultBase = 30

var baseScores = map[string]int{
	KindEstate:              45,
	KindBusinessFormation:   55,
	KindBrandProtection:     40,
	KindOutsideCounsel:      50,
	KindLegalStrategy:       35,
	KindLegalRiskAssessment: 40,
	KindGamingLegal:         50,
	KindResourceGuide:       25,
	KindNewsletter:          20,
}

func athleteSignals(f form.Fields) bool {
	return f.Contains("profession", "athlete") ||
		f.Is("industry", "sports") ||
		f.Is("career_type", "professional_athlete")
}

var rubric = map[string][]Rule{
	KindEstate: {
		tiered("gross estate", "gross_estate",
			tier{10_000_000, 60},
			tier{5_000_000, 50},
			tier{2_000_000, 35},
			tier{1_000_000, 25},
			tier{500_000, 15},
		),
		points("trust package", 35, func(f form.Fields) bool {
			return f.Contains("package_preference", "trust") || f.Contains("selected_package", "trust")
		}),
		points("owns business", 25, func(f form.Fields) bool {
			return f.Truthy("own_business") || f.Truthy("owns_business")
		}),
		points("multiple properties", 20, func(f form.Fields) bool {
			return f.Truthy("multiple_properties") || f.Num("property_count") > 1
		}),
		points("complex goal", 30, func(f form.Fields) bool {
			return f.ContainsAny("estate_goal",
				"asset_protection", "tax", "business_succession", "special_needs", "complex") ||
				f.ContainsAny("primary_goal",
					"asset_protection", "tax", "business_succession", "special_needs", "complex")
		}),
		points("athlete signals", 40, athleteSignals),
		points("brand partnerships", 20, func(f form.Fields) bool {
			return athleteSignals(f) && f.Contains("revenue_streams", "brand_partnerships")
		}),
	},

	KindBusinessFormation: {
		Rule{Label: "investment plan", Eval: func(f form.Fields) int {
			switch {
			case f.Is("investment_plan", "vc"):
				return 70
			case f.Is("investment_plan", "angel"):
				return 50
			}
			return 0
		}},
		tiered("projected revenue", "projected_revenue",
			tier{25_000_000, 60},
			tier{5_000_000, 45},
		),
		points("startup goal", 25, func(f form.Fields) bool {
			return f.Is("business_goal", "startup")
		}),
		points("gold package", 30, func(f form.Fields) bool {
			return f.Contains("selected_package", "gold")
		}),
	},

	KindBrandProtection: {
		points("portfolio service", 50, func(f form.Fields) bool {
			return f.Contains("selected_service", "portfolio") || f.Contains("selected_service", "7500")
		}),
		points("mature business", 25, func(f form.Fields) bool {
			return f.ContainsAny("business_stage", "established", "mature") ||
				f.Num("years_in_business") >= 5
		}),
		points("enforcement goal", 40, func(f form.Fields) bool {
			return f.Contains("protection_goal", "enforcement")
		}),
		tiered("social following", "social_following",
			tier{2_000_000, 60},
			tier{1_000_000, 50},
			tier{500_000, 30},
		),
		tiered("business revenue", "business_revenue",
			tier{2_000_000, 50},
			tier{1_000_000, 40},
			tier{500_000, 25},
		),
		points("creator business", 20, func(f form.Fields) bool {
			return f.Is("business_type", "creator") || f.Contains("revenue_streams", "brand_partnerships")
		}),
	},

	KindOutsideCounsel: {
		tiered("monthly budget", "budget",
			tier{10_000, 50},
			tier{5_000, 30},
		),
		points("immediate timeline", 35, func(f form.Fields) bool {
			return f.Contains("timeline", "immediately")
		}),
	},

	KindLegalRiskAssessment: {
		Rule{Label: "risk severity", Eval: func(f form.Fields) int {
			risk := f.Num("risk_score")
			switch {
			case risk > 20:
				return 30
			case risk > 12:
				return 15
			}
			return 0
		}},
	},

	KindLegalStrategy: {
		points("conversion intent", 25, func(f form.Fields) bool {
			return f.Truthy("wants_consultation") || f.Truthy("ready_to_engage")
		}),
	},
}

// universalRules apply to every submission kind, after the kind rubric.
var universalRules = []Rule{
	points("urgent language", 45, urgentLanguage),
	points("business email", 15, businessEmail),
	points("phone provided", 10, func(f form.Fields) bool {
		return f.Has("phone")
	}),
	points("business name provided", 10, func(f form.Fields) bool {
		return f.Has("business_name") || f.Has("company_name") || f.Has("company")
	}),
}
