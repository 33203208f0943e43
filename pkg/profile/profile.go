package profile

import (
	"github.com/counselflow/intake-api/pkg/form"
	"github.com/counselflow/intake-api/pkg/scoring"
)

// Profile is the coarse client classification that drives pathway choice.
type Profile string

const (
	Athlete       Profile = "athlete"
	Creator       Profile = "creator"
	Startup       Profile = "startup"
	Family        Profile = "family"
	BusinessOwner Profile = "business_owner"
	Generic       Profile = "generic"
)

// Classify assigns a submission to a client profile. Rules are evaluated in
// order; the first match wins.
func Classify(kind string, f form.Fields) Profile {
	switch {
	case isAthlete(f):
		return Athlete
	case isCreator(f):
		return Creator
	case isStartup(kind, f):
		return Startup
	case isFamily(kind, f):
		return Family
	case isBusinessOwner(f):
		return BusinessOwner
	default:
		return Generic
	}
}

func isAthlete(f form.Fields) bool {
	return f.Contains("profession", "athlete") ||
		f.Is("industry", "sports") ||
		f.Is("career_type", "professional_athlete")
}

func isCreator(f form.Fields) bool {
	return f.Num("social_following") > 100_000 ||
		f.Num("business_revenue") > 500_000 ||
		f.Is("business_type", "creator") ||
		f.Contains("revenue_streams", "brand_partnerships")
}

func isStartup(kind string, f form.Fields) bool {
	if kind != scoring.KindBusinessFormation {
		return false
	}
	return f.Is("investment_plan", "vc") ||
		f.Is("investment_plan", "angel") ||
		f.Is("business_goal", "startup")
}

func isFamily(kind string, f form.Fields) bool {
	return kind == scoring.KindEstate && f.Num("gross_estate") > 1_000_000
}

func isBusinessOwner(f form.Fields) bool {
	return f.Truthy("own_business") ||
		f.Truthy("owns_business") ||
		f.Has("business_name") ||
		f.Has("company_name") ||
		f.Has("company")
}
