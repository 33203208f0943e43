package booking

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/counselflow/intake-api/ent"
	"github.com/counselflow/intake-api/ent/booking"
	"github.com/counselflow/intake-api/ent/enrollment"
	"github.com/counselflow/intake-api/ent/lead"
	"github.com/counselflow/intake-api/ent/scheduledmessage"
	"github.com/counselflow/intake-api/pkg/cache"
	"github.com/counselflow/intake-api/pkg/clock"
	"github.com/counselflow/intake-api/pkg/drip"
	"github.com/counselflow/intake-api/pkg/interactions"
	"github.com/counselflow/intake-api/pkg/metrics"
)

const pauseReasonBooked = "consultation_booked"

// Service reacts to scheduling webhooks: a booked consultation silences the
// drip pipeline for that email, a cancellation restarts it.
type Service struct {
	client    *ent.Client
	cache     *cache.Client
	clk       clock.Clock
	enroller  *drip.Enroller
	metrics   *metrics.Metrics
	resumeGap time.Duration
}

// Options tune the booking service.
type Options struct {
	// ResumeGap staggers resumed messages so a cancelled booking does not dump
	// the whole backlog at once. Defaults to 24h.
	ResumeGap time.Duration
}

func NewService(client *ent.Client, c *cache.Client, clk clock.Clock, enroller *drip.Enroller, m *metrics.Metrics, opts Options) *Service {
	if clk == nil {
		clk = clock.New()
	}
	if opts.ResumeGap <= 0 {
		opts.ResumeGap = 24 * time.Hour
	}
	return &Service{
		client:    client,
		cache:     c,
		clk:       clk,
		enroller:  enroller,
		metrics:   m,
		resumeGap: opts.ResumeGap,
	}
}

// Event is one normalized scheduling webhook delivery.
type Event struct {
	Email       string
	Name        string
	Kind        string
	ScheduledAt time.Time
	Payload     map[string]interface{}
}

// HandleCreated records the booking, pauses every active enrollment for the
// email, and queues a confirmation. Redeliveries of the same event are no-ops.
func (s *Service) HandleCreated(ctx context.Context, ev Event) error {
	email := normalizeEmail(ev.Email)
	if email == "" {
		return fmt.Errorf("booking event has no invitee email")
	}

	fresh, err := s.claimEvent(ctx, "created", email, ev.ScheduledAt)
	if err != nil {
		return err
	}
	if !fresh {
		log.Printf("⚠️  Duplicate booking webhook for %s, skipping", email)
		return nil
	}

	b, err := s.client.Booking.Create().
		SetEmail(email).
		SetKind(bookingKind(ev.Kind)).
		SetStatus(booking.StatusScheduled).
		SetNillableScheduledAt(nillableTime(ev.ScheduledAt)).
		SetSource(booking.SourceWebhook).
		SetPayload(ev.Payload).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to record booking: %w", err)
	}

	paused, err := s.pauseEnrollments(ctx, email)
	if err != nil {
		return err
	}
	if paused > 0 {
		log.Printf("⏸️  Paused %d enrollment(s) for %s after booking %d", paused, email, b.ID)
	}

	s.recordOnLead(ctx, email, interactions.BookingCreated, map[string]interface{}{
		"booking_id":         b.ID,
		"paused_enrollments": paused,
	})
	if paused > 0 {
		s.recordOnLead(ctx, email, interactions.DripPaused, map[string]interface{}{
			"reason": pauseReasonBooked,
		})
	}

	if err := s.queueConfirmation(ctx, email, ev.Name); err != nil {
		log.Printf("⚠️  Failed to queue booking confirmation for %s: %v", email, err)
	}

	if s.metrics != nil {
		s.metrics.RecordBooking("created")
	}
	return nil
}

// HandleCancelled closes the booking and resumes whatever it paused. Resumed
// messages are rescheduled in their original order, staggered by the resume
// gap, instead of landing all at once.
func (s *Service) HandleCancelled(ctx context.Context, ev Event) error {
	email := normalizeEmail(ev.Email)
	if email == "" {
		return fmt.Errorf("booking event has no invitee email")
	}

	fresh, err := s.claimEvent(ctx, "cancelled", email, ev.ScheduledAt)
	if err != nil {
		return err
	}
	if !fresh {
		log.Printf("⚠️  Duplicate cancellation webhook for %s, skipping", email)
		return nil
	}

	n, err := s.client.Booking.Update().
		Where(
			booking.EmailEQ(email),
			booking.StatusEQ(booking.StatusScheduled),
		).
		SetStatus(booking.StatusCancelled).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to cancel booking: %w", err)
	}
	if n == 0 {
		log.Printf("⚠️  Cancellation webhook for %s matched no scheduled booking", email)
	}

	resumed, err := s.resumeEnrollments(ctx, email)
	if err != nil {
		return err
	}
	if resumed > 0 {
		log.Printf("▶️  Resumed %d enrollment(s) for %s after cancellation", resumed, email)
		s.recordOnLead(ctx, email, interactions.DripResumed, map[string]interface{}{
			"resumed_enrollments": resumed,
		})
	}

	s.recordOnLead(ctx, email, interactions.BookingCancelled, nil)
	if s.metrics != nil {
		s.metrics.RecordBooking("cancelled")
	}
	return nil
}

// HandleCompleted marks the booking done and moves the lead onto the
// post-consultation pathway. Paused enrollments stay paused: the follow-up
// sequence replaces them.
func (s *Service) HandleCompleted(ctx context.Context, ev Event) error {
	email := normalizeEmail(ev.Email)
	if email == "" {
		return fmt.Errorf("booking event has no invitee email")
	}

	n, err := s.client.Booking.Update().
		Where(
			booking.EmailEQ(email),
			booking.StatusEQ(booking.StatusScheduled),
		).
		SetStatus(booking.StatusCompleted).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to complete booking: %w", err)
	}
	if n == 0 {
		log.Printf("⚠️  Completion event for %s matched no scheduled booking", email)
	}

	s.recordOnLead(ctx, email, interactions.BookingCompleted, nil)

	if s.enroller != nil {
		ld, err := s.latestLead(ctx, email)
		if err == nil && ld != nil {
			if _, err := s.enroller.Enroll(ctx, ld, "post-consultation", ld.Score); err != nil {
				log.Printf("⚠️  Failed to enroll %s post-consultation: %v", email, err)
			}
		}
	}

	if s.metrics != nil {
		s.metrics.RecordBooking("completed")
	}
	return nil
}

// claimEvent enforces idempotency: Redis SETNX first, the booking table as a
// fallback when Redis is unavailable.
func (s *Service) claimEvent(ctx context.Context, event, email string, at time.Time) (bool, error) {
	key := fmt.Sprintf("booking:%s:%s:%d", event, email, at.Unix())

	if s.cache != nil {
		claimed, err := s.cache.SetNX(ctx, key, 1, 48*time.Hour)
		if err == nil {
			return claimed, nil
		}
		log.Printf("⚠️  Redis idempotency check failed, falling back to database: %v", err)
	}

	if event != "created" || at.IsZero() {
		return true, nil
	}
	exists, err := s.client.Booking.Query().
		Where(
			booking.EmailEQ(email),
			booking.ScheduledAtEQ(at),
			booking.StatusEQ(booking.StatusScheduled),
		).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("failed idempotency lookup: %w", err)
	}
	return !exists, nil
}

// pauseEnrollments pauses active enrollments and their undelivered messages
// in one transaction.
func (s *Service) pauseEnrollments(ctx context.Context, email string) (int, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to start transaction: %w", err)
	}

	if _, err := tx.ScheduledMessage.Update().
		Where(
			scheduledmessage.HasEnrollmentWith(
				enrollment.EmailEQ(email),
				enrollment.StatusEQ(enrollment.StatusActive),
			),
			scheduledmessage.StatusEQ(scheduledmessage.StatusPending),
		).
		SetStatus(scheduledmessage.StatusPaused).
		Save(ctx); err != nil {
		_ = tx.Rollback()
		return 0, fmt.Errorf("failed to pause messages: %w", err)
	}

	paused, err := tx.Enrollment.Update().
		Where(
			enrollment.EmailEQ(email),
			enrollment.StatusEQ(enrollment.StatusActive),
		).
		SetStatus(enrollment.StatusPaused).
		SetPauseReason(pauseReasonBooked).
		Save(ctx)
	if err != nil {
		_ = tx.Rollback()
		return 0, fmt.Errorf("failed to pause enrollments: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit pause: %w", err)
	}
	return paused, nil
}

// resumeEnrollments reactivates enrollments this service paused and
// reschedules their messages: first due now, each next one resumeGap later,
// preserving the original send order.
func (s *Service) resumeEnrollments(ctx context.Context, email string) (int, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to start transaction: %w", err)
	}

	resumed, err := s.resumeTx(ctx, tx, email)
	if err != nil {
		_ = tx.Rollback()
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit resume: %w", err)
	}
	return resumed, nil
}

func (s *Service) resumeTx(ctx context.Context, tx *ent.Tx, email string) (int, error) {
	msgs, err := tx.ScheduledMessage.Query().
		Where(
			scheduledmessage.HasEnrollmentWith(
				enrollment.EmailEQ(email),
				enrollment.StatusEQ(enrollment.StatusPaused),
				enrollment.PauseReasonEQ(pauseReasonBooked),
			),
			scheduledmessage.StatusEQ(scheduledmessage.StatusPaused),
		).
		Order(ent.Asc(scheduledmessage.FieldSendAt)).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load paused messages: %w", err)
	}

	now := s.clk.Now()
	for i, msg := range msgs {
		err := tx.ScheduledMessage.UpdateOneID(msg.ID).
			SetStatus(scheduledmessage.StatusPending).
			SetSendAt(now.Add(time.Duration(i) * s.resumeGap)).
			Exec(ctx)
		if err != nil {
			return 0, fmt.Errorf("failed to reschedule message %d: %w", msg.ID, err)
		}
	}

	resumed, err := tx.Enrollment.Update().
		Where(
			enrollment.EmailEQ(email),
			enrollment.StatusEQ(enrollment.StatusPaused),
			enrollment.PauseReasonEQ(pauseReasonBooked),
		).
		SetStatus(enrollment.StatusActive).
		ClearPauseReason().
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to resume enrollments: %w", err)
	}
	return resumed, nil
}

// queueConfirmation schedules an immediate orphan confirmation message. It is
// delivered by the regular dispatcher rather than inline so webhook handling
// stays fast and the send gets retry semantics for free.
func (s *Service) queueConfirmation(ctx context.Context, email, name string) error {
	return s.client.ScheduledMessage.Create().
		SetEmail(email).
		SetFirstName(firstName(name)).
		SetSubjectTemplate("Your consultation is confirmed, {{firstName}}").
		SetBodyTemplateID("consultation-confirmation").
		SetSendAt(s.clk.Now()).
		SetStatus(scheduledmessage.StatusPending).
		Exec(ctx)
}

// recordOnLead appends an interaction to the most recent lead for the email.
// Bookings from people who never submitted a form have no lead to log on.
func (s *Service) recordOnLead(ctx context.Context, email, kind string, detail map[string]interface{}) {
	ld, err := s.latestLead(ctx, email)
	if err != nil || ld == nil {
		return
	}
	err = s.client.Interaction.Create().
		SetLeadID(ld.ID).
		SetKind(kind).
		SetDetail(detail).
		SetAt(s.clk.Now()).
		Exec(ctx)
	if err != nil {
		log.Printf("⚠️  Failed to record %s interaction for %s: %v", kind, email, err)
	}
}

func (s *Service) latestLead(ctx context.Context, email string) (*ent.Lead, error) {
	ld, err := s.client.Lead.Query().
		Where(lead.EmailEQ(email)).
		Order(ent.Desc(lead.FieldCreatedAt)).
		First(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	return ld, err
}

func bookingKind(kind string) booking.Kind {
	switch booking.Kind(kind) {
	case booking.KindEstate, booking.KindBusiness, booking.KindBrand, booking.KindCounsel, booking.KindVip:
		return booking.Kind(kind)
	default:
		return booking.KindGeneral
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func firstName(fullName string) string {
	parts := strings.Fields(fullName)
	if len(parts) == 0 {
		return ""
	}
	return parts[0]
}

func nillableTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
