package pathway

import (
	"time"

	"github.com/counselflow/intake-api/pkg/profile"
)

// Step is one message in a pathway. Delay is nominal and relative to
// enrollment; the enroller adjusts it by score before scheduling.
type Step struct {
	Delay      time.Duration
	Subject    string
	TemplateID string
}

// Pathway is an ordered sequence of message steps.
type Pathway struct {
	Name    string
	Trigger string
	Steps   []Step
}

// Get looks a pathway up by name.
func Get(name string) (Pathway, bool) {
	p, ok := catalog[name]
	return p, ok
}

// Names returns the names of every pathway in the catalog.
func Names() []string {
	out := make([]string, 0, len(catalog))
	for name := range catalog {
		out = append(out, name)
	}
	return out
}

// Select picks the pathway for a scored, profiled submission:
//
//  1. score >= 70 with a VIP-eligible profile -> that profile's VIP pathway
//  2. score >= 70                             -> generic VIP
//  3. score >= 50                             -> premium nurture
//  4. a guide variant or kind-specific intake pathway, when the catalog has one
//  5. standard nurture
func Select(score int, kind, guideVariant string, prof profile.Profile) string {
	if score >= 70 {
		if name := vipPathways[prof]; name != "" {
			return name
		}
		return "vip"
	}
	if score >= 50 {
		return "premium-nurture"
	}
	if guideVariant != "" {
		if _, ok := catalog["guide-"+guideVariant]; ok {
			return "guide-" + guideVariant
		}
	}
	if _, ok := catalog["intake-"+kind]; ok {
		return "intake-" + kind
	}
	return "standard-nurture"
}

var vipPathways = map[profile.Profile]string{
	profile.Athlete: "athlete-vip",
	profile.Creator: "creator-vip",
	profile.Startup: "startup-vip",
	profile.Family:  "family-vip",
}

const day = 24 * time.Hour

// catalog is the full pathway table. It is data: the engine never looks at a
// pathway name except through Select and Get.
var catalog = map[string]Pathway{
	// VIP pathways: high-score leads get an immediate personal touch and a
	// compressed cadence.
	"athlete-vip": {
		Name:    "athlete-vip",
		Trigger: "high_score_athlete",
		Steps: []Step{
			{0, "{{firstName}}, protecting what you've built on and off the field", "vip-athlete-welcome"},
			{1 * day, "How professional athletes structure their estates", "vip-athlete-playbook"},
			{3 * day, "Your brand is an asset. Treat it like one.", "vip-brand-asset"},
			{6 * day, "{{firstName}}, a quick question about your timeline", "vip-checkin"},
		},
	},
	"creator-vip": {
		Name:    "creator-vip",
		Trigger: "high_score_creator",
		Steps: []Step{
			{0, "{{firstName}}, your audience is an asset worth protecting", "vip-creator-welcome"},
			{1 * day, "Trademarks, licensing, and the creator economy", "vip-creator-ip"},
			{3 * day, "What happens to your channels if something happens to you?", "vip-creator-estate"},
			{6 * day, "{{firstName}}, a quick question about your timeline", "vip-checkin"},
		},
	},
	"startup-vip": {
		Name:    "startup-vip",
		Trigger: "high_score_startup",
		Steps: []Step{
			{0, "{{firstName}}, let's get your formation right the first time", "vip-startup-welcome"},
			{1 * day, "Delaware C-corp or not: a founder's guide", "vip-startup-entity"},
			{2 * day, "Term sheets, vesting, and the mistakes we see weekly", "vip-startup-funding"},
			{4 * day, "Your cap table will thank you", "vip-startup-captable"},
			{7 * day, "{{firstName}}, a quick question about your timeline", "vip-checkin"},
		},
	},
	"family-vip": {
		Name:    "family-vip",
		Trigger: "high_score_family",
		Steps: []Step{
			{0, "{{firstName}}, your family's plan deserves more than a template", "vip-family-welcome"},
			{1 * day, "Why larger estates need trusts, not just wills", "vip-family-trusts"},
			{3 * day, "The estate tax question nobody wants to ask", "vip-family-tax"},
			{6 * day, "{{firstName}}, a quick question about your timeline", "vip-checkin"},
		},
	},
	"vip": {
		Name:    "vip",
		Trigger: "high_score",
		Steps: []Step{
			{0, "{{firstName}}, thanks for reaching out — here's what happens next", "vip-welcome"},
			{1 * day, "How we work with clients like you", "vip-process"},
			{3 * day, "Three outcomes our clients ask for most", "vip-outcomes"},
			{6 * day, "{{firstName}}, a quick question about your timeline", "vip-checkin"},
		},
	},

	// Mid-score nurture.
	"premium-nurture": {
		Name:    "premium-nurture",
		Trigger: "medium_score",
		Steps: []Step{
			{0, "{{firstName}}, here's the guide you asked about", "premium-welcome"},
			{2 * day, "The cost of waiting on legal protection", "premium-cost-of-waiting"},
			{5 * day, "A client story you might recognize", "premium-case-study"},
			{9 * day, "Ready when you are, {{firstName}}", "premium-invite"},
		},
	},
	"standard-nurture": {
		Name:    "standard-nurture",
		Trigger: "default",
		Steps: []Step{
			{0, "Thanks for getting in touch, {{firstName}}", "standard-welcome"},
			{3 * day, "Five legal questions every owner should be able to answer", "standard-education"},
			{7 * day, "How a flat-fee engagement works", "standard-pricing"},
			{14 * day, "Still here when you need us", "standard-invite"},
		},
	},

	// Kind-specific intake pathways.
	"intake-estate": {
		Name:    "intake-estate",
		Trigger: "estate_intake",
		Steps: []Step{
			{0, "Your estate planning next steps, {{firstName}}", "estate-welcome"},
			{2 * day, "Wills vs. trusts: a five-minute explainer", "estate-wills-trusts"},
			{5 * day, "What your executor will wish you had done", "estate-executor"},
			{10 * day, "Lock in your consultation, {{firstName}}", "estate-invite"},
		},
	},
	"intake-business_formation": {
		Name:    "intake-business_formation",
		Trigger: "business_formation_intake",
		Steps: []Step{
			{0, "Let's build your business on solid ground, {{firstName}}", "formation-welcome"},
			{2 * day, "LLC, S-corp, or C-corp: picking your entity", "formation-entity"},
			{5 * day, "The operating agreement mistakes that end partnerships", "formation-agreements"},
			{10 * day, "Your formation package options", "formation-packages"},
		},
	},
	"intake-brand_protection": {
		Name:    "intake-brand_protection",
		Trigger: "brand_protection_intake",
		Steps: []Step{
			{0, "Protecting your brand starts today, {{firstName}}", "brand-welcome"},
			{2 * day, "What a trademark actually protects (and what it doesn't)", "brand-basics"},
			{5 * day, "Someone is already watching your brand", "brand-enforcement"},
			{10 * day, "Brand protection packages, explained", "brand-packages"},
		},
	},
	"intake-outside_counsel": {
		Name:    "intake-outside_counsel",
		Trigger: "outside_counsel_intake",
		Steps: []Step{
			{0, "Outside counsel without the retainer anxiety, {{firstName}}", "counsel-welcome"},
			{2 * day, "What fractional general counsel covers", "counsel-scope"},
			{6 * day, "How our monthly plans compare to hourly billing", "counsel-pricing"},
		},
	},
	"intake-legal_strategy": {
		Name:    "intake-legal_strategy",
		Trigger: "legal_strategy_intake",
		Steps: []Step{
			{0, "Your legal strategy results, {{firstName}}", "strategy-results"},
			{2 * day, "The top gap we found in your answers", "strategy-gap"},
			{5 * day, "Turning your assessment into a plan", "strategy-plan"},
		},
	},
	"intake-legal_risk_assessment": {
		Name:    "intake-legal_risk_assessment",
		Trigger: "risk_assessment_intake",
		Steps: []Step{
			{0, "Your risk assessment results, {{firstName}}", "risk-results"},
			{2 * day, "What your risk score means in practice", "risk-explainer"},
			{6 * day, "Closing your top three exposures", "risk-remediation"},
		},
	},
	"intake-gaming_legal": {
		Name:    "intake-gaming_legal",
		Trigger: "gaming_legal_intake",
		Steps: []Step{
			{0, "Gaming law moves fast. So do we, {{firstName}}", "gaming-welcome"},
			{1 * day, "Sponsorships, streaming, and who owns your content", "gaming-contracts"},
			{4 * day, "The esports contract clauses that bite", "gaming-clauses"},
		},
	},
	"intake-newsletter": {
		Name:    "intake-newsletter",
		Trigger: "newsletter_signup",
		Steps: []Step{
			{0, "Welcome to the briefing, {{firstName}}", "newsletter-welcome"},
			{7 * day, "What our readers asked about this week", "newsletter-digest"},
		},
	},
	"intake-resource_guide": {
		Name:    "intake-resource_guide",
		Trigger: "guide_download",
		Steps: []Step{
			{0, "Your guide is inside, {{firstName}}", "guide-delivery"},
			{3 * day, "Did the guide answer your question?", "guide-followup"},
			{8 * day, "From reading to doing: your next step", "guide-next-step"},
		},
	},

	// Guide-download variants. Same cadence, variant-specific content.
	"guide-business": {
		Name:    "guide-business",
		Trigger: "business_guide_download",
		Steps: []Step{
			{0, "Your business formation guide, {{firstName}}", "guide-business-delivery"},
			{3 * day, "The entity decision, made simple", "formation-entity"},
			{8 * day, "Ready to form? Here's how we help", "formation-packages"},
		},
	},
	"guide-brand": {
		Name:    "guide-brand",
		Trigger: "brand_guide_download",
		Steps: []Step{
			{0, "Your brand protection guide, {{firstName}}", "guide-brand-delivery"},
			{3 * day, "What a trademark actually protects (and what it doesn't)", "brand-basics"},
			{8 * day, "Brand protection packages, explained", "brand-packages"},
		},
	},
	"guide-estate": {
		Name:    "guide-estate",
		Trigger: "estate_guide_download",
		Steps: []Step{
			{0, "Your estate planning guide, {{firstName}}", "guide-estate-delivery"},
			{3 * day, "Wills vs. trusts: a five-minute explainer", "estate-wills-trusts"},
			{8 * day, "Lock in your consultation, {{firstName}}", "estate-invite"},
		},
	},
	"guide-resource": {
		Name:    "guide-resource",
		Trigger: "resource_guide_download",
		Steps: []Step{
			{0, "Your guide is inside, {{firstName}}", "guide-delivery"},
			{3 * day, "Did the guide answer your question?", "guide-followup"},
			{8 * day, "From reading to doing: your next step", "guide-next-step"},
		},
	},

	// Event-driven pathways enrolled by operators or post-booking flows.
	"newsletter-welcome": {
		Name:    "newsletter-welcome",
		Trigger: "subscriber_added",
		Steps: []Step{
			{0, "You're on the list, {{firstName}}", "newsletter-welcome"},
			{4 * day, "Start here: our three most-read briefings", "newsletter-best-of"},
		},
	},
	"post-consultation": {
		Name:    "post-consultation",
		Trigger: "consultation_completed",
		Steps: []Step{
			{0, "Great speaking with you, {{firstName}}", "post-consult-recap"},
			{2 * day, "Your proposal and what happens next", "post-consult-proposal"},
			{6 * day, "Any questions on the proposal, {{firstName}}?", "post-consult-followup"},
		},
	},
	"re-engagement": {
		Name:    "re-engagement",
		Trigger: "dormant_lead",
		Steps: []Step{
			{0, "Still thinking it over, {{firstName}}?", "reengage-checkin"},
			{5 * day, "What's changed since you first reached out", "reengage-update"},
			{12 * day, "We'll leave you with this", "reengage-final"},
		},
	},
	"business-owner-nurture": {
		Name:    "business-owner-nurture",
		Trigger: "business_owner",
		Steps: []Step{
			{0, "Legal housekeeping for owners, {{firstName}}", "owner-welcome"},
			{3 * day, "The five contracts every business needs on file", "owner-contracts"},
			{7 * day, "When to bring in counsel (before it's expensive)", "owner-timing"},
			{14 * day, "A standing offer for your business", "owner-invite"},
		},
	},
	"legal-risk-followup": {
		Name:    "legal-risk-followup",
		Trigger: "high_risk_assessment",
		Steps: []Step{
			{0, "About your risk score, {{firstName}}", "risk-explainer"},
			{2 * day, "Closing your top three exposures", "risk-remediation"},
			{6 * day, "A 30-minute call could settle this", "risk-invite"},
		},
	},
}
