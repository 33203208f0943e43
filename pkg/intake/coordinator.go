package intake

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/counselflow/intake-api/ent"
	"github.com/counselflow/intake-api/ent/lead"
	"github.com/counselflow/intake-api/pkg/clock"
	"github.com/counselflow/intake-api/pkg/crm"
	"github.com/counselflow/intake-api/pkg/drip"
	"github.com/counselflow/intake-api/pkg/esp"
	"github.com/counselflow/intake-api/pkg/form"
	"github.com/counselflow/intake-api/pkg/interactions"
	"github.com/counselflow/intake-api/pkg/mailer"
	"github.com/counselflow/intake-api/pkg/metrics"
	"github.com/counselflow/intake-api/pkg/pathway"
	"github.com/counselflow/intake-api/pkg/phone"
	"github.com/counselflow/intake-api/pkg/profile"
	"github.com/counselflow/intake-api/pkg/scoring"
	"github.com/counselflow/intake-api/pkg/templates"
)

// Coordinator runs the full intake pipeline for one submission: persist,
// score, enroll, then fan out notifications and integrations concurrently.
type Coordinator struct {
	client   *ent.Client
	clk      clock.Clock
	enroller *drip.Enroller
	mail     *mailer.Dispatcher
	crm      *crm.Client
	esp      *esp.Client
	metrics  *metrics.Metrics
	opts     Options
}

// Options tune the coordinator.
type Options struct {
	// InternalAlertTo receives the per-submission notification email.
	InternalAlertTo string
	// FanoutLimit caps concurrent side-effect calls. Defaults to 8.
	FanoutLimit int
	// CallTimeout bounds each individual fanout call. Defaults to 10s.
	CallTimeout time.Duration
	// FanoutWait bounds how long Process waits for the fanout before returning
	// and letting stragglers finish in the background. Defaults to 30s.
	FanoutWait time.Duration
}

func NewCoordinator(client *ent.Client, clk clock.Clock, enroller *drip.Enroller, mail *mailer.Dispatcher, crmClient *crm.Client, espClient *esp.Client, m *metrics.Metrics, opts Options) *Coordinator {
	if clk == nil {
		clk = clock.New()
	}
	if opts.FanoutLimit <= 0 {
		opts.FanoutLimit = 8
	}
	if opts.CallTimeout <= 0 {
		opts.CallTimeout = 10 * time.Second
	}
	if opts.FanoutWait <= 0 {
		opts.FanoutWait = 30 * time.Second
	}
	return &Coordinator{
		client:   client,
		clk:      clk,
		enroller: enroller,
		mail:     mail,
		crm:      crmClient,
		esp:      espClient,
		metrics:  m,
		opts:     opts,
	}
}

// Submission is one normalized form post.
type Submission struct {
	Kind         string
	Fields       form.Fields
	GuideVariant string
	Referrer     string
	Attachments  []mailer.Attachment
}

// Result is what the submitting form gets back.
type Result struct {
	OK           bool
	SubmissionID string
	Score        int
	Priority     string
	Profile      string
	Pathway      string
	PriceHint    string
}

// priceHints shown to the submitter per form kind.
var priceHints = map[string]string{
	scoring.KindEstate:            "Estate plans start at $2,500",
	scoring.KindBusinessFormation: "Formation packages start at $1,500",
	scoring.KindBrandProtection:   "Trademark filings start at $1,200",
	scoring.KindOutsideCounsel:    "Counsel plans start at $2,000/month",
	scoring.KindGamingLegal:       "Consultations start at $350",
}

// Process runs the pipeline. Scoring, persistence and enrollment are
// required; everything after them is best-effort and recorded on the lead's
// audit log when it fails.
func (c *Coordinator) Process(ctx context.Context, sub Submission) (*Result, error) {
	email := strings.ToLower(strings.TrimSpace(sub.Fields.Str("email")))
	if email == "" {
		return nil, fmt.Errorf("submission has no email")
	}
	sub.Fields["email"] = email

	firstName := strings.TrimSpace(sub.Fields.Str("first_name"))
	lastName := strings.TrimSpace(sub.Fields.Str("last_name"))
	if firstName == "" && lastName == "" {
		parts := strings.Fields(sub.Fields.Str("name"))
		if len(parts) > 0 {
			firstName = parts[0]
			lastName = strings.Join(parts[1:], " ")
		}
	}

	phoneRaw := strings.TrimSpace(sub.Fields.Str("phone"))
	if phoneRaw != "" {
		if e164, err := phone.Normalize(phoneRaw, sub.Fields.Str("country")); err == nil {
			phoneRaw = e164
			sub.Fields["phone"] = e164
		}
	}

	scored := scoring.Score(sub.Kind, sub.Fields)
	prof := profile.Classify(sub.Kind, sub.Fields)
	pathwayName := pathway.Select(scored.Score, sub.Kind, sub.GuideVariant, prof)

	businessName := strings.TrimSpace(sub.Fields.Str("business_name"))
	if businessName == "" {
		businessName = strings.TrimSpace(sub.Fields.Str("company_name"))
	}
	if businessName == "" {
		businessName = strings.TrimSpace(sub.Fields.Str("company"))
	}

	ld, err := c.client.Lead.Create().
		SetSubmissionID(uuid.NewString()).
		SetEmail(email).
		SetFirstName(firstName).
		SetLastName(lastName).
		SetPhone(phoneRaw).
		SetBusinessName(businessName).
		SetSubmissionKind(lead.SubmissionKind(sub.Kind)).
		SetScore(scored.Score).
		SetPriority(lead.Priority(scored.Priority)).
		SetProfile(string(prof)).
		SetFormData(sub.Fields).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to persist lead: %w", err)
	}

	c.recordInteraction(ctx, ld.ID, interactions.FormSubmitted, map[string]interface{}{
		"kind":    sub.Kind,
		"score":   scored.Score,
		"factors": factorLabels(scored.Factors),
	})

	if _, err := c.enroller.Enroll(ctx, ld, pathwayName, scored.Score); err != nil {
		return nil, fmt.Errorf("failed to enroll lead: %w", err)
	}

	if c.metrics != nil {
		c.metrics.RecordLead(sub.Kind)
		c.metrics.RecordEnrollment(pathwayName)
	}

	c.fanout(ctx, ld, sub, scored, prof)

	log.Printf("✅ Intake processed: %s kind=%s score=%d priority=%s profile=%s pathway=%s",
		email, sub.Kind, scored.Score, scored.Priority, prof, pathwayName)

	return &Result{
		OK:           true,
		SubmissionID: ld.SubmissionID,
		Score:        scored.Score,
		Priority:     string(scored.Priority),
		Profile:      string(prof),
		Pathway:      pathwayName,
		PriceHint:    priceHints[sub.Kind],
	}, nil
}

// fanout runs the side effects concurrently with a bounded pool. Process
// waits up to FanoutWait for them; whatever is still running keeps going in
// the background on a detached context.
func (c *Coordinator) fanout(ctx context.Context, ld *ent.Lead, sub Submission, scored scoring.Result, prof profile.Profile) {
	detached := context.WithoutCancel(ctx)

	g := &errgroup.Group{}
	g.SetLimit(c.opts.FanoutLimit)

	g.Go(func() error {
		c.withTimeout(detached, func(ctx context.Context) {
			c.sendInternalAlert(ctx, ld, sub, scored)
		})
		return nil
	})
	g.Go(func() error {
		c.withTimeout(detached, func(ctx context.Context) {
			c.sendClientConfirmation(ctx, ld)
		})
		return nil
	})
	if c.crm != nil && c.crm.Enabled() {
		g.Go(func() error {
			c.withTimeout(detached, func(ctx context.Context) {
				c.syncCRM(ctx, ld, sub)
			})
			return nil
		})
	}
	if c.esp != nil && c.esp.Enabled() {
		g.Go(func() error {
			c.withTimeout(detached, func(ctx context.Context) {
				c.syncESP(ctx, ld, sub, prof)
			})
			return nil
		})
	}

	done := make(chan struct{})
	go func() {
		_ = g.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(c.opts.FanoutWait):
		log.Printf("⚠️  Intake fanout for %s still running after %s, continuing in background", ld.Email, c.opts.FanoutWait)
	case <-ctx.Done():
		log.Printf("⚠️  Intake request for %s cancelled mid-fanout, continuing in background", ld.Email)
	}
}

func (c *Coordinator) withTimeout(parent context.Context, fn func(ctx context.Context)) {
	ctx, cancel := context.WithTimeout(parent, c.opts.CallTimeout)
	defer cancel()
	fn(ctx)
}

func (c *Coordinator) sendInternalAlert(ctx context.Context, ld *ent.Lead, sub Submission, scored scoring.Result) {
	if c.opts.InternalAlertTo == "" {
		return
	}
	subject, body := templates.RenderInternalAlert(sub.Kind, scored.Score, string(scored.Priority), sub.Fields)
	_, err := c.mail.Send(ctx, mailer.Message{
		To:          c.opts.InternalAlertTo,
		ToName:      "Intake",
		Subject:     subject,
		HTML:        body,
		Attachments: sub.Attachments,
	})
	if err != nil {
		log.Printf("❌ Failed to send internal alert for %s: %v", ld.Email, err)
		c.recordInteraction(ctx, ld.ID, interactions.AlertSendFailed, map[string]interface{}{
			"error": err.Error(),
		})
	}
}

func (c *Coordinator) sendClientConfirmation(ctx context.Context, ld *ent.Lead) {
	in := templates.Input{FirstName: ld.FirstName}
	body, err := templates.Render("client-confirmation", in)
	if err != nil {
		log.Printf("❌ Failed to render client confirmation: %v", err)
		return
	}
	_, err = c.mail.Send(ctx, mailer.Message{
		To:      ld.Email,
		ToName:  ld.FirstName,
		Subject: templates.RenderSubject("We received your submission, {{firstName}}", in),
		HTML:    body,
	})
	if err != nil {
		log.Printf("❌ Failed to send client confirmation to %s: %v", ld.Email, err)
		c.recordInteraction(ctx, ld.ID, interactions.EmailSendFailed, map[string]interface{}{
			"template": "client-confirmation",
			"error":    err.Error(),
		})
	}
}

func (c *Coordinator) syncCRM(ctx context.Context, ld *ent.Lead, sub Submission) {
	err := c.crm.CreateContact(ctx, crm.Contact{
		FirstName: ld.FirstName,
		LastName:  ld.LastName,
		Email:     ld.Email,
		Phone:     ld.Phone,
		Message:   sub.Fields.Str("message"),
		Referrer:  sub.Referrer,
	})
	if err != nil {
		log.Printf("❌ Failed to sync %s to CRM: %v", ld.Email, err)
		c.recordInteraction(ctx, ld.ID, interactions.CRMSyncFailed, map[string]interface{}{
			"error": err.Error(),
		})
	}
}

func (c *Coordinator) syncESP(ctx context.Context, ld *ent.Lead, sub Submission, prof profile.Profile) {
	err := c.esp.UpsertSubscriber(ctx, esp.Subscriber{
		Email:     ld.Email,
		FirstName: ld.FirstName,
		Tags:      esp.BuildTags(sub.Kind, string(prof), ld.Score),
	})
	if err != nil {
		log.Printf("❌ Failed to sync %s to ESP: %v", ld.Email, err)
		c.recordInteraction(ctx, ld.ID, interactions.ESPSyncFailed, map[string]interface{}{
			"error": err.Error(),
		})
	}
}

func (c *Coordinator) recordInteraction(ctx context.Context, leadID int, kind string, detail map[string]interface{}) {
	err := c.client.Interaction.Create().
		SetLeadID(leadID).
		SetKind(kind).
		SetDetail(detail).
		SetAt(c.clk.Now()).
		Exec(ctx)
	if err != nil {
		log.Printf("⚠️  Failed to record %s interaction for lead %d: %v", kind, leadID, err)
	}
}

func factorLabels(factors []scoring.Factor) []string {
	labels := make([]string, len(factors))
	for i, f := range factors {
		labels[i] = fmt.Sprintf("%s:%+d", f.Label, f.Points)
	}
	return labels
}
