package scoring

import (
	"strings"

	"github.com/counselflow/intake-api/pkg/form"
)

// Submission kinds. These match the values of the lead submission_kind enum.
const (
	KindEstate              = "estate"
	KindBusinessFormation   = "business_formation"
	KindBrandProtection     = "brand_protection"
	KindOutsideCounsel      = "outside_counsel"
	KindLegalStrategy       = "legal_strategy"
	KindLegalRiskAssessment = "legal_risk_assessment"
	KindGamingLegal         = "gaming_legal"
	KindNewsletter          = "newsletter"
	KindResourceGuide       = "resource_guide"
)

// Priority is the coarse band derived from the score.
type Priority string

const (
	PriorityStandard Priority = "standard"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// Factor is one scored rubric contribution, kept in insertion order.
type Factor struct {
	Label  string `json:"label"`
	Points int    `json:"points"`
}

// Result is the outcome of scoring one submission.
type Result struct {
	Score    int      `json:"score"`
	Priority Priority `json:"priority"`
	Factors  []Factor `json:"factors"`
}

// Score computes the lead score for a submission. It is a pure function of
// (kind, fields): same input, same output, no I/O.
func Score(kind string, f form.Fields) Result {
	factors := make([]Factor, 0, 8)

	base, baseLabel := baseFor(kind, f)
	factors = append(factors, Factor{Label: baseLabel, Points: base})
	total := base

	for _, rule := range rubric[kind] {
		if pts := rule.Eval(f); pts != 0 {
			factors = append(factors, Factor{Label: rule.Label, Points: pts})
			total += pts
		}
	}

	for _, rule := range universalRules {
		if pts := rule.Eval(f); pts != 0 {
			factors = append(factors, Factor{Label: rule.Label, Points: pts})
			total += pts
		}
	}

	if total > 100 {
		total = 100
	}
	if total < 0 {
		total = 0
	}

	return Result{
		Score:    total,
		Priority: priorityFor(kind, total, f),
		Factors:  factors,
	}
}

// baseFor returns the kind-dependent starting score. Two kinds derive their
// base from assessment output instead of a constant.
func baseFor(kind string, f form.Fields) (int, string) {
	switch kind {
	case KindLegalStrategy:
		// The strategy builder already produced a 0..100 assessment score.
		if f.Has("assessment_score") {
			s := int(f.Num("assessment_score"))
			if s < 0 {
				s = 0
			}
			if s > 100 {
				s = 100
			}
			return s, "assessment score"
		}
	case KindLegalRiskAssessment:
		// Raw risk is 0..30; low risk maps to a high lead score.
		if f.Has("risk_score") {
			s := 100 - 2*int(f.Num("risk_score"))
			if s < 30 {
				s = 30
			}
			return s, "risk assessment"
		}
	}

	if base, ok := baseScores[kind]; ok {
		return base, "base " + kind
	}
	return defaultBase, "base " + kind
}

func priorityFor(kind string, score int, f form.Fields) Priority {
	switch {
	case score >= 90 && (kind == KindGamingLegal || urgentLanguage(f)):
		return PriorityCritical
	case score >= 70:
		return PriorityHigh
	case score >= 50:
		return PriorityMedium
	default:
		return PriorityStandard
	}
}

// urgentLanguage reports whether any of the usual urgency fields carry urgent
// wording.
func urgentLanguage(f form.Fields) bool {
	for _, key := range []string{"urgency", "timeline", "message", "description"} {
		if f.ContainsAny(key, "urgent", "immediate", "asap", "right away", "emergency") {
			return true
		}
	}
	return false
}

var freeMailDomains = map[string]bool{
	"gmail.com":      true,
	"yahoo.com":      true,
	"hotmail.com":    true,
	"outlook.com":    true,
	"aol.com":        true,
	"icloud.com":     true,
	"me.com":         true,
	"live.com":       true,
	"msn.com":        true,
	"protonmail.com": true,
	"proton.me":      true,
	"mail.com":       true,
	"gmx.com":        true,
}

// businessEmail reports whether the submitted email is on a non-free-mail
// domain.
func businessEmail(f form.Fields) bool {
	email := strings.ToLower(f.Str("email"))
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}
	return !freeMailDomains[email[at+1:]]
}
