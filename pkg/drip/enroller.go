package drip

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/counselflow/intake-api/ent"
	"github.com/counselflow/intake-api/ent/enrollment"
	"github.com/counselflow/intake-api/ent/scheduledmessage"
	"github.com/counselflow/intake-api/pkg/clock"
	"github.com/counselflow/intake-api/pkg/pathway"
)

// Enroller creates pathway enrollments and their message schedules.
type Enroller struct {
	client *ent.Client
	clk    clock.Clock
}

func NewEnroller(client *ent.Client, clk clock.Clock) *Enroller {
	if clk == nil {
		clk = clock.New()
	}
	return &Enroller{client: client, clk: clk}
}

// AdjustDelay compresses or stretches a nominal step delay by lead score.
// Hotter leads hear from us sooner. A zero delay stays zero: welcome messages
// go out on the next dispatcher tick regardless of score.
func AdjustDelay(d time.Duration, score int) time.Duration {
	if d == 0 {
		return 0
	}
	var multiplier float64
	switch {
	case score >= 90:
		multiplier = 0.75
	case score >= 70:
		multiplier = 0.85
	case score >= 50:
		multiplier = 1.0
	default:
		multiplier = 1.2
	}
	return time.Duration(float64(d) * multiplier).Round(time.Millisecond)
}

// Enroll puts the lead on the named pathway, scheduling every step with
// score-adjusted delays. Any existing active or paused enrollment of the same
// email on the same pathway is superseded: cancelled along with its undelivered
// messages, in the same transaction that creates the new one.
func (e *Enroller) Enroll(ctx context.Context, lead *ent.Lead, pathwayName string, score int) (*ent.Enrollment, error) {
	pw, ok := pathway.Get(pathwayName)
	if !ok {
		return nil, fmt.Errorf("unknown pathway %q", pathwayName)
	}

	tx, err := e.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}

	enr, err := e.enrollTx(ctx, tx, lead, pw, score)
	if err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			return nil, fmt.Errorf("%w: rolling back transaction: %v", err, rerr)
		}
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit enrollment: %w", err)
	}

	log.Printf("✅ Enrolled %s on pathway %s (%d steps)", lead.Email, pw.Name, len(pw.Steps))
	return enr, nil
}

func (e *Enroller) enrollTx(ctx context.Context, tx *ent.Tx, lead *ent.Lead, pw pathway.Pathway, score int) (*ent.Enrollment, error) {
	// Cancel undelivered messages of superseded enrollments first, while the
	// enrollment status still identifies them.
	cancelled, err := tx.ScheduledMessage.Update().
		Where(
			scheduledmessage.HasEnrollmentWith(
				enrollment.EmailEQ(lead.Email),
				enrollment.PathwayNameEQ(pw.Name),
				enrollment.StatusIn(enrollment.StatusActive, enrollment.StatusPaused),
			),
			scheduledmessage.StatusIn(scheduledmessage.StatusPending, scheduledmessage.StatusPaused),
		).
		SetStatus(scheduledmessage.StatusCancelled).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to cancel superseded messages: %w", err)
	}

	superseded, err := tx.Enrollment.Update().
		Where(
			enrollment.EmailEQ(lead.Email),
			enrollment.PathwayNameEQ(pw.Name),
			enrollment.StatusIn(enrollment.StatusActive, enrollment.StatusPaused),
		).
		SetStatus(enrollment.StatusCancelled).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to supersede enrollments: %w", err)
	}
	if superseded > 0 {
		log.Printf("⚠️  Superseded %d enrollment(s) for %s on %s (%d messages cancelled)",
			superseded, lead.Email, pw.Name, cancelled)
	}

	enr, err := tx.Enrollment.Create().
		SetLeadID(lead.ID).
		SetEmail(lead.Email).
		SetPathwayName(pw.Name).
		SetTrigger(pw.Trigger).
		SetStatus(enrollment.StatusActive).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create enrollment: %w", err)
	}

	now := e.clk.Now()
	builders := make([]*ent.ScheduledMessageCreate, 0, len(pw.Steps))
	for _, step := range pw.Steps {
		builders = append(builders, tx.ScheduledMessage.Create().
			SetEnrollmentID(enr.ID).
			SetEmail(lead.Email).
			SetFirstName(lead.FirstName).
			SetSubjectTemplate(step.Subject).
			SetBodyTemplateID(step.TemplateID).
			SetSendAt(now.Add(AdjustDelay(step.Delay, score))).
			SetStatus(scheduledmessage.StatusPending))
	}
	if _, err := tx.ScheduledMessage.CreateBulk(builders...).Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to schedule messages: %w", err)
	}

	return enr, nil
}
