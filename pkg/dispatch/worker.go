package dispatch

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/counselflow/intake-api/ent"
	"github.com/counselflow/intake-api/ent/enrollment"
	"github.com/counselflow/intake-api/ent/scheduledmessage"
	"github.com/counselflow/intake-api/pkg/clock"
	"github.com/counselflow/intake-api/pkg/interactions"
	"github.com/counselflow/intake-api/pkg/mailer"
	"github.com/counselflow/intake-api/pkg/metrics"
	"github.com/counselflow/intake-api/pkg/templates"
)

// Worker drains due scheduled messages through the mail failover chain.
// It assumes a single instance: claims are guarded updates on the pending
// status, so a duplicate worker would skip rather than double-send, but
// sharding the queue is not supported.
type Worker struct {
	client      *ent.Client
	mail        *mailer.Dispatcher
	clk         clock.Clock
	metrics     *metrics.Metrics
	batchSize   int
	maxAttempts int
	backoff     time.Duration
	bookingURL  string
}

// Options tune the worker. Zero values fall back to defaults.
type Options struct {
	BatchSize   int
	MaxAttempts int
	Backoff     time.Duration
	BookingURL  string
}

func NewWorker(client *ent.Client, mail *mailer.Dispatcher, clk clock.Clock, m *metrics.Metrics, opts Options) *Worker {
	if clk == nil {
		clk = clock.New()
	}
	if opts.BatchSize <= 0 {
		opts.BatchSize = 50
	}
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = 3
	}
	if opts.Backoff <= 0 {
		opts.Backoff = 5 * time.Second
	}
	return &Worker{
		client:      client,
		mail:        mail,
		clk:         clk,
		metrics:     m,
		batchSize:   opts.BatchSize,
		maxAttempts: opts.MaxAttempts,
		backoff:     opts.Backoff,
		bookingURL:  opts.BookingURL,
	}
}

// Tick processes one batch of due messages, oldest first. Returns how many
// were delivered and how many failed this pass.
func (w *Worker) Tick(ctx context.Context) (sent, failed int, err error) {
	now := w.clk.Now()

	msgs, err := w.client.ScheduledMessage.Query().
		Where(
			scheduledmessage.StatusEQ(scheduledmessage.StatusPending),
			scheduledmessage.SendAtLTE(now),
		).
		Order(ent.Asc(scheduledmessage.FieldSendAt)).
		Limit(w.batchSize).
		WithEnrollment().
		All(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to query due messages: %w", err)
	}

	for _, msg := range msgs {
		if err := ctx.Err(); err != nil {
			return sent, failed, err
		}
		if w.deliver(ctx, msg) {
			sent++
		} else {
			failed++
		}
	}

	if err := w.completeEnrollments(ctx); err != nil {
		log.Printf("⚠️  Failed to complete drained enrollments: %v", err)
	}
	w.updatePendingGauge(ctx)

	return sent, failed, nil
}

// deliver renders and sends one message, then settles its status. Reports
// whether the message was delivered.
func (w *Worker) deliver(ctx context.Context, msg *ent.ScheduledMessage) bool {
	in := templates.Input{
		FirstName: msg.FirstName,
		CTAURL:    w.bookingURL,
	}

	body, err := templates.Render(msg.BodyTemplateID, in)
	if err != nil {
		// Unknown template never heals with retries.
		w.markFailed(ctx, msg, err)
		return false
	}
	subject := templates.RenderSubject(msg.SubjectTemplate, in)

	provider, err := w.mail.Send(ctx, mailer.Message{
		To:      msg.Email,
		ToName:  msg.FirstName,
		Subject: subject,
		HTML:    body,
	})
	if err != nil {
		w.handleSendFailure(ctx, msg, err)
		return false
	}

	// Guarded claim: only this update moves pending to sent, so a concurrent
	// cancel or pause between the query and here wins.
	n, err := w.client.ScheduledMessage.Update().
		Where(
			scheduledmessage.IDEQ(msg.ID),
			scheduledmessage.StatusEQ(scheduledmessage.StatusPending),
		).
		SetStatus(scheduledmessage.StatusSent).
		SetSentAt(w.clk.Now()).
		AddAttempts(1).
		Save(ctx)
	if err != nil {
		log.Printf("❌ Failed to mark message %d sent: %v", msg.ID, err)
		return false
	}
	if n == 0 {
		log.Printf("⚠️  Message %d was claimed elsewhere after sending", msg.ID)
		return false
	}

	if w.metrics != nil {
		w.metrics.RecordEmailSent(provider)
	}
	w.recordInteraction(ctx, msg, interactions.EmailSent, map[string]interface{}{
		"template": msg.BodyTemplateID,
		"provider": provider,
	})
	return true
}

// handleSendFailure reschedules with linear backoff until attempts run out.
func (w *Worker) handleSendFailure(ctx context.Context, msg *ent.ScheduledMessage, sendErr error) {
	attempts := msg.Attempts + 1
	if attempts >= w.maxAttempts {
		w.markFailed(ctx, msg, sendErr)
		return
	}

	retryAt := w.clk.Now().Add(w.backoff * time.Duration(attempts))
	err := w.client.ScheduledMessage.Update().
		Where(
			scheduledmessage.IDEQ(msg.ID),
			scheduledmessage.StatusEQ(scheduledmessage.StatusPending),
		).
		SetSendAt(retryAt).
		AddAttempts(1).
		SetLastError(sendErr.Error()).
		Exec(ctx)
	if err != nil {
		log.Printf("❌ Failed to reschedule message %d: %v", msg.ID, err)
		return
	}
	log.Printf("⚠️  Message %d to %s failed (attempt %d/%d), retrying at %s: %v",
		msg.ID, msg.Email, attempts, w.maxAttempts, retryAt.Format(time.RFC3339), sendErr)
}

func (w *Worker) markFailed(ctx context.Context, msg *ent.ScheduledMessage, cause error) {
	err := w.client.ScheduledMessage.Update().
		Where(scheduledmessage.IDEQ(msg.ID)).
		SetStatus(scheduledmessage.StatusFailed).
		AddAttempts(1).
		SetLastError(cause.Error()).
		Exec(ctx)
	if err != nil {
		log.Printf("❌ Failed to mark message %d failed: %v", msg.ID, err)
		return
	}

	log.Printf("❌ Message %d to %s failed permanently: %v", msg.ID, msg.Email, cause)
	if w.metrics != nil {
		w.metrics.RecordEmailFailure()
	}
	w.recordInteraction(ctx, msg, interactions.EmailSendFailed, map[string]interface{}{
		"template": msg.BodyTemplateID,
		"error":    cause.Error(),
	})
}

// recordInteraction logs the delivery outcome on the owning lead. Orphan
// messages have no enrollment and therefore no lead to log against.
func (w *Worker) recordInteraction(ctx context.Context, msg *ent.ScheduledMessage, kind string, detail map[string]interface{}) {
	enr := msg.Edges.Enrollment
	if enr == nil {
		return
	}
	err := w.client.Interaction.Create().
		SetLeadID(enr.LeadID).
		SetKind(kind).
		SetDetail(detail).
		SetAt(w.clk.Now()).
		Exec(ctx)
	if err != nil {
		log.Printf("⚠️  Failed to record %s interaction for lead %d: %v", kind, enr.LeadID, err)
	}
}

// completeEnrollments closes active enrollments with nothing left to send.
func (w *Worker) completeEnrollments(ctx context.Context) error {
	n, err := w.client.Enrollment.Update().
		Where(
			enrollment.StatusEQ(enrollment.StatusActive),
			enrollment.Not(enrollment.HasMessagesWith(
				scheduledmessage.StatusIn(
					scheduledmessage.StatusPending,
					scheduledmessage.StatusPaused,
				),
			)),
		).
		SetStatus(enrollment.StatusCompleted).
		Save(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		log.Printf("✅ Completed %d enrollment(s)", n)
	}
	return nil
}

func (w *Worker) updatePendingGauge(ctx context.Context) {
	if w.metrics == nil {
		return
	}
	count, err := w.client.ScheduledMessage.Query().
		Where(scheduledmessage.StatusEQ(scheduledmessage.StatusPending)).
		Count(ctx)
	if err != nil {
		return
	}
	w.metrics.SetPendingMessages(float64(count))
}
