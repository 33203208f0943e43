package templates

// def is one body template. Headline and Body may carry the same substitution
// tokens as subjects. Body is one or more <p> blocks.
type def struct {
	Headline string
	Body     string
	CTAText  string
}

// bodies is the template catalog. Like the pathway catalog, it is data:
// adding a template must never require engine changes.
var bodies = map[string]def{
	// VIP
	"vip-welcome": {
		Headline: "Thanks for reaching out, {{firstName}}",
		Body:     `<p>Your submission stood out, and a member of our team is reviewing it personally.</p><p>Expect a direct reply within one business day. If your matter is time-sensitive, the fastest path is to grab a consultation slot now.</p>`,
		CTAText:  "Schedule a priority consultation",
	},
	"vip-process": {
		Headline: "How we work with clients like you",
		Body:     `<p>Every engagement starts with a strategy session, ends with a fixed-fee proposal, and never surprises you with an hourly invoice.</p>`,
	},
	"vip-outcomes": {
		Headline: "Three outcomes our clients ask for most",
		Body:     `<p>Protection that holds up, paperwork that closes deals faster, and a counsel relationship that scales with you. Here's what each looks like in practice.</p>`,
	},
	"vip-checkin": {
		Headline: "A quick question, {{firstName}}",
		Body:     `<p>Is there a deadline driving your matter? If so, reply with the date and we'll plan backwards from it.</p>`,
		CTAText:  "Grab a time instead",
	},
	"vip-athlete-welcome": {
		Headline: "Protecting what you've built on and off the field",
		Body:     `<p>{{firstName}}, athletes face a compressed earning window and a long horizon after it. We structure estates, brands and contracts around exactly that.</p>`,
		CTAText:  "Schedule a priority consultation",
	},
	"vip-athlete-playbook": {
		Headline: "How professional athletes structure their estates",
		Body:     `<p>Trusts that survive relocation, licensing entities for NIL income, and beneficiary structures that don't fall apart at a team change.</p>`,
	},
	"vip-brand-asset": {
		Headline: "Your brand is an asset. Treat it like one.",
		Body:     `<p>Name, image and likeness income outlives a playing career when the rights are owned by the right entity. We'll show you the structure.</p>`,
	},
	"vip-creator-welcome": {
		Headline: "Your audience is an asset worth protecting",
		Body:     `<p>{{firstName}}, creators sit on IP, contracts and revenue streams most firms don't understand. We do, and your submission tells us there's real value at stake.</p>`,
		CTAText:  "Schedule a priority consultation",
	},
	"vip-creator-ip": {
		Headline: "Trademarks, licensing, and the creator economy",
		Body:     `<p>Your handle, your catchphrases, your formats. Which are protectable, which are already at risk, and what enforcement actually costs.</p>`,
	},
	"vip-creator-estate": {
		Headline: "What happens to your channels if something happens to you?",
		Body:     `<p>Platform accounts are not inheritable by default. A digital-asset clause in the right trust fixes that in a single signing.</p>`,
	},
	"vip-startup-welcome": {
		Headline: "Let's get your formation right the first time",
		Body:     `<p>{{firstName}}, re-papering a company after a term sheet arrives costs ten times what doing it correctly now does. Your plans qualify you for our founder track.</p>`,
		CTAText:  "Schedule a founder session",
	},
	"vip-startup-entity": {
		Headline: "Delaware C-corp or not: a founder's guide",
		Body:     `<p>If institutional money is in your plan, the entity question is mostly answered. The details that still matter: authorized shares, par value, and your 83(b) clock.</p>`,
	},
	"vip-startup-funding": {
		Headline: "Term sheets, vesting, and the mistakes we see weekly",
		Body:     `<p>Founder vesting without acceleration, SAFEs stacked past the cap, advisors on handshakes. Each is cheap to fix today and expensive at diligence.</p>`,
	},
	"vip-startup-captable": {
		Headline: "Your cap table will thank you",
		Body:     `<p>A clean cap table is a closing condition you control months in advance. Here's the checklist we run before any raise.</p>`,
	},
	"vip-family-welcome": {
		Headline: "Your family's plan deserves more than a template",
		Body:     `<p>{{firstName}}, at your estate's size, an online will kit leaves real money on the table and real decisions to a probate judge.</p>`,
		CTAText:  "Schedule a planning session",
	},
	"vip-family-trusts": {
		Headline: "Why larger estates need trusts, not just wills",
		Body:     `<p>Probate is public, slow and priced as a percentage. A revocable living trust moves your estate privately and on your schedule.</p>`,
	},
	"vip-family-tax": {
		Headline: "The estate tax question nobody wants to ask",
		Body:     `<p>Exemption levels change with legislation. Locking in today's exemption with the right trust structure is a one-time decision with a deadline.</p>`,
	},

	// Premium nurture
	"premium-welcome": {
		Headline: "Here's what we'd look at first, {{firstName}}",
		Body:     `<p>Based on what you shared, there are a few areas we'd want to pressure-test. Over the next days we'll send the short version of each.</p>`,
	},
	"premium-cost-of-waiting": {
		Headline: "The cost of waiting on legal protection",
		Body:     `<p>Most legal problems are cheap before they're urgent and expensive after. Three examples from matters we've handled this year.</p>`,
	},
	"premium-case-study": {
		Headline: "A client story you might recognize",
		Body:     `<p>An owner about your size came to us after a dispute, not before. The difference between the bill they paid and the one they could have paid is the whole argument.</p>`,
	},
	"premium-invite": {
		Headline: "Ready when you are, {{firstName}}",
		Body:     `<p>If the timing is right, a consultation is the fastest way to get specific answers. If not, keep the guides and reach out whenever.</p>`,
	},

	// Standard nurture
	"standard-welcome": {
		Headline: "Thanks for getting in touch, {{firstName}}",
		Body:     `<p>We've received your details and you'll hear from us with anything relevant to your situation. No spam, no pressure.</p>`,
	},
	"standard-education": {
		Headline: "Five legal questions every owner should be able to answer",
		Body:     `<p>Who owns the IP? What happens if a partner exits? Are your contracts signed by the right entity? Two more inside.</p>`,
	},
	"standard-pricing": {
		Headline: "How a flat-fee engagement works",
		Body:     `<p>Scope agreed up front, one price, no clock running while you talk to your own lawyer. Here's what our most common packages include.</p>`,
	},
	"standard-invite": {
		Headline: "Still here when you need us",
		Body:     `<p>This is the last note in this series. When a legal question comes up, you know where to find us.</p>`,
	},

	// Estate intake
	"estate-welcome": {
		Headline: "Your estate planning next steps",
		Body:     `<p>{{firstName}}, thanks for your estate inquiry. We'll follow up with a short plan outline tailored to what you told us.</p>`,
	},
	"estate-wills-trusts": {
		Headline: "Wills vs. trusts: a five-minute explainer",
		Body:     `<p>A will speaks at probate. A trust works while you're alive and after. Which you need depends on three questions inside.</p>`,
	},
	"estate-executor": {
		Headline: "What your executor will wish you had done",
		Body:     `<p>Account inventories, beneficiary designations that match the will, and a letter of instruction. Thirty minutes of prep saves months later.</p>`,
	},
	"estate-invite": {
		Headline: "Lock in your consultation, {{firstName}}",
		Body:     `<p>Estate plans stall when life gets busy. Pick a time and we'll take it from there.</p>`,
	},

	// Business formation intake
	"formation-welcome": {
		Headline: "Let's build your business on solid ground",
		Body:     `<p>{{firstName}}, formation is a week of work that determines years of taxes, liability and fundraising options. Here's the path.</p>`,
	},
	"formation-entity": {
		Headline: "LLC, S-corp, or C-corp: picking your entity",
		Body:     `<p>It comes down to how you'll pay yourself, who will invest, and your exit. The decision matrix is shorter than you think.</p>`,
	},
	"formation-agreements": {
		Headline: "The operating agreement mistakes that end partnerships",
		Body:     `<p>Deadlock provisions, buyout formulas, and what happens to equity on divorce or death. Templates skip all three.</p>`,
	},
	"formation-packages": {
		Headline: "Your formation package options",
		Body:     `<p>From clean single-member setups to investor-ready structures with IP assignment and vesting, priced flat.</p>`,
		CTAText:  "Compare packages",
	},

	// Brand protection intake
	"brand-welcome": {
		Headline: "Protecting your brand starts today",
		Body:     `<p>{{firstName}}, trademark rights in the US favor whoever files and uses first. Every week unregistered is a week of risk.</p>`,
	},
	"brand-basics": {
		Headline: "What a trademark actually protects (and what it doesn't)",
		Body:     `<p>Classes, specimens, and the difference between ™ and ®. The five-minute version every brand owner should know.</p>`,
	},
	"brand-enforcement": {
		Headline: "Someone is already watching your brand",
		Body:     `<p>Copycats monitor growing brands for unprotected names. Monitoring plus a registered mark turns a lawsuit into a takedown letter.</p>`,
	},
	"brand-packages": {
		Headline: "Brand protection packages, explained",
		Body:     `<p>Single-mark filings, portfolio coverage, and enforcement retainers. What each covers and which fits your stage.</p>`,
		CTAText:  "Compare packages",
	},

	// Outside counsel intake
	"counsel-welcome": {
		Headline: "Outside counsel without the retainer anxiety",
		Body:     `<p>{{firstName}}, fractional general counsel gives you a lawyer who knows your business at a monthly price you can plan around.</p>`,
	},
	"counsel-scope": {
		Headline: "What fractional general counsel covers",
		Body:     `<p>Contracts, employment questions, vendor disputes, board hygiene. The 80% of legal work that shouldn't require a new engagement letter each time.</p>`,
	},
	"counsel-pricing": {
		Headline: "How our monthly plans compare to hourly billing",
		Body:     `<p>A worked example: the same quarter of legal needs priced hourly versus on a plan. The spread is usually the argument.</p>`,
	},

	// Legal strategy intake
	"strategy-results": {
		Headline: "Your legal strategy results",
		Body:     `<p>{{firstName}}, your answers are in and scored. The full readout is below; the short version is that a few gaps are worth closing soon.</p>`,
	},
	"strategy-gap": {
		Headline: "The top gap we found in your answers",
		Body:     `<p>One theme showed up across several of your responses. Here's why it matters and the usual fix.</p>`,
	},
	"strategy-plan": {
		Headline: "Turning your assessment into a plan",
		Body:     `<p>Assessments are only useful if they change what you do next quarter. A strategy session converts yours into three concrete actions.</p>`,
	},

	// Risk assessment intake
	"risk-results": {
		Headline: "Your risk assessment results",
		Body:     `<p>{{firstName}}, your score and the areas driving it are inside. Most of what moves the score is fixable with paperwork, not litigation.</p>`,
	},
	"risk-explainer": {
		Headline: "What your risk score means in practice",
		Body:     `<p>The score weights exposure by likelihood and cost. A high score usually traces to two or three specific gaps, not everything at once.</p>`,
	},
	"risk-remediation": {
		Headline: "Closing your top three exposures",
		Body:     `<p>For most businesses: contracts without limitation of liability, misclassified contractors, and unregistered IP. The fixes are routine.</p>`,
	},
	"risk-invite": {
		Headline: "A 30-minute call could settle this",
		Body:     `<p>Bring your assessment; we'll walk the gaps in priority order and tell you which ones genuinely need counsel.</p>`,
	},

	// Gaming legal intake
	"gaming-welcome": {
		Headline: "Gaming law moves fast. So do we.",
		Body:     `<p>{{firstName}}, sponsorships, platform policies and org contracts change monthly. You flagged a matter we treat as time-critical.</p>`,
		CTAText:  "Get a same-week consultation",
	},
	"gaming-contracts": {
		Headline: "Sponsorships, streaming, and who owns your content",
		Body:     `<p>VOD rights, exclusivity windows, and morality clauses. The three contract sections that decide whether a deal is good.</p>`,
	},
	"gaming-clauses": {
		Headline: "The esports contract clauses that bite",
		Body:     `<p>Buyout terms priced by the org, image rights that outlive the contract, and non-competes that follow you between titles.</p>`,
	},

	// Newsletter
	"newsletter-welcome": {
		Headline: "Welcome to the briefing, {{firstName}}",
		Body:     `<p>Once a week, the legal developments that actually affect owners and creators, in five minutes or less.</p>`,
		CTAText:  "Read the latest issue",
	},
	"newsletter-digest": {
		Headline: "What our readers asked about this week",
		Body:     `<p>The most common question from replies, answered properly, plus two short items worth your time.</p>`,
		CTAText:  "Read the latest issue",
	},
	"newsletter-best-of": {
		Headline: "Start here: our three most-read briefings",
		Body:     `<p>New to the list? These three issues cover the questions we get most from people in your position.</p>`,
		CTAText:  "Read the latest issue",
	},

	// Guides
	"guide-delivery": {
		Headline: "Your guide is inside",
		Body:     `<p>{{firstName}}, the guide you requested is attached to this email. Skim the checklist on the last page first; it's the part people use.</p>`,
		CTAText:  "Questions? Book a call",
	},
	"guide-followup": {
		Headline: "Did the guide answer your question?",
		Body:     `<p>If something in the guide raised more questions than it answered, reply and tell us which section. That's usually the sign it's time to talk.</p>`,
	},
	"guide-next-step": {
		Headline: "From reading to doing: your next step",
		Body:     `<p>Guides inform; engagements fix. When you're ready to move from the checklist to the work, here's how that starts.</p>`,
	},
	"guide-business-delivery": {
		Headline: "Your business formation guide",
		Body:     `<p>{{firstName}}, the formation guide is attached. Page four's entity comparison table is the one readers print out.</p>`,
		CTAText:  "Questions? Book a call",
	},
	"guide-brand-delivery": {
		Headline: "Your brand protection guide",
		Body:     `<p>{{firstName}}, the brand guide is attached. Start with the search checklist before you fall in love with a name.</p>`,
		CTAText:  "Questions? Book a call",
	},
	"guide-estate-delivery": {
		Headline: "Your estate planning guide",
		Body:     `<p>{{firstName}}, the estate guide is attached. The asset inventory worksheet inside is the step most people skip and most executors miss.</p>`,
		CTAText:  "Questions? Book a call",
	},

	// Post-consultation
	"post-consult-recap": {
		Headline: "Great speaking with you, {{firstName}}",
		Body:     `<p>Thanks for the consultation. A written recap of what we discussed and recommended is on its way from your attorney.</p>`,
	},
	"post-consult-proposal": {
		Headline: "Your proposal and what happens next",
		Body:     `<p>The engagement proposal reflects exactly what we scoped on the call: deliverables, timeline, and a flat fee. Signing starts the clock.</p>`,
		CTAText:  "Review the proposal",
	},
	"post-consult-followup": {
		Headline: "Any questions on the proposal?",
		Body:     `<p>{{firstName}}, if anything in the proposal is unclear or the scope has shifted, a ten-minute call sorts it out.</p>`,
	},

	// Re-engagement
	"reengage-checkin": {
		Headline: "Still thinking it over, {{firstName}}?",
		Body:     `<p>You reached out a while back and life happened, which is normal. If the underlying question is still open, so is our door.</p>`,
	},
	"reengage-update": {
		Headline: "What's changed since you first reached out",
		Body:     `<p>Law doesn't stand still. A short list of changes since your inquiry that may affect your situation.</p>`,
	},
	"reengage-final": {
		Headline: "We'll leave you with this",
		Body:     `<p>This is our last scheduled note. Keep the guides, and when the timing is right, we're a reply away.</p>`,
	},

	// Business owner nurture
	"owner-welcome": {
		Headline: "Legal housekeeping for owners",
		Body:     `<p>{{firstName}}, running a business accumulates small legal debts. This short series covers the ones worth paying down first.</p>`,
	},
	"owner-contracts": {
		Headline: "The five contracts every business needs on file",
		Body:     `<p>Client agreement, contractor agreement, NDA, IP assignment, and terms of service. Which ones you can template and which you shouldn't.</p>`,
	},
	"owner-timing": {
		Headline: "When to bring in counsel (before it's expensive)",
		Body:     `<p>The rule of thumb: involve a lawyer when the downside of a document exceeds a month of revenue. Examples inside.</p>`,
	},
	"owner-invite": {
		Headline: "A standing offer for your business",
		Body:     `<p>A fixed-fee legal audit: we review your contracts and entity docs and hand you a prioritized punch list. No obligation past that.</p>`,
	},

	// One-off operational messages
	"consultation-confirmation": {
		Headline: "Your consultation is booked",
		Body:     `<p>{{firstName}}, you're confirmed. We've paused our scheduled emails so your inbox stays quiet until we talk. A calendar invite is on its way separately.</p>`,
		CTAText:  "Add to calendar",
	},
	"client-confirmation": {
		Headline: "We received your submission",
		Body:     `<p>{{firstName}}, thanks for contacting us. Your details are with our intake team and you'll hear from a human shortly. If your matter is urgent, call the office directly.</p>`,
	},
}
