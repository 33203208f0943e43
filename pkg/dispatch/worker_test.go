package dispatch

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/counselflow/intake-api/ent"
	"github.com/counselflow/intake-api/ent/enrollment"
	"github.com/counselflow/intake-api/ent/enttest"
	"github.com/counselflow/intake-api/ent/interaction"
	"github.com/counselflow/intake-api/ent/lead"
	"github.com/counselflow/intake-api/ent/scheduledmessage"
	"github.com/counselflow/intake-api/pkg/clock"
	"github.com/counselflow/intake-api/pkg/drip"
	"github.com/counselflow/intake-api/pkg/interactions"
	"github.com/counselflow/intake-api/pkg/mailer"
)

// fakeProvider counts deliveries and fails on demand.
type fakeProvider struct {
	name string
	err  error
	sent []mailer.Message
}

func (p *fakeProvider) Name() string { return p.name }

func (p *fakeProvider) Send(_ context.Context, msg mailer.Message) error {
	if p.err != nil {
		return p.err
	}
	p.sent = append(p.sent, msg)
	return nil
}

func setupTestDB(t *testing.T) (*ent.Client, func()) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	return client, func() { client.Close() }
}

func createTestLead(t *testing.T, client *ent.Client, email string) *ent.Lead {
	ld, err := client.Lead.Create().
		SetSubmissionID(uuid.NewString()).
		SetEmail(email).
		SetFirstName("Jordan").
		SetSubmissionKind(lead.SubmissionKindNewsletter).
		SetScore(60).
		SetFormData(map[string]interface{}{"email": email}).
		Save(context.Background())
	require.NoError(t, err)
	return ld
}

func createOrphanMessage(t *testing.T, client *ent.Client, templateID string, sendAt time.Time) *ent.ScheduledMessage {
	msg, err := client.ScheduledMessage.Create().
		SetEmail("orphan@example.com").
		SetFirstName("Orphan").
		SetSubjectTemplate("Hello {{firstName}}").
		SetBodyTemplateID(templateID).
		SetSendAt(sendAt).
		Save(context.Background())
	require.NoError(t, err)
	return msg
}

func TestWorker_Tick(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	t.Run("Success - delivers due messages only", func(t *testing.T) {
		client, cleanup := setupTestDB(t)
		defer cleanup()

		clk := clock.NewMock(now)
		provider := &fakeProvider{name: "graph"}
		worker := NewWorker(client, mailer.NewDispatcher([]mailer.Provider{provider}, time.Second), clk, nil, Options{})

		ld := createTestLead(t, client, "jordan@example.com")
		enr, err := drip.NewEnroller(client, clk).Enroll(ctx, ld, "vip", 80)
		require.NoError(t, err)

		sent, failed, err := worker.Tick(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, sent)
		assert.Equal(t, 0, failed)
		require.Len(t, provider.sent, 1)
		assert.Equal(t, "jordan@example.com", provider.sent[0].To)
		assert.NotContains(t, provider.sent[0].Subject, "{{")

		delivered, err := client.ScheduledMessage.Query().
			Where(
				scheduledmessage.EnrollmentIDEQ(enr.ID),
				scheduledmessage.StatusEQ(scheduledmessage.StatusSent),
			).
			Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, delivered.Attempts)
		require.NotNil(t, delivered.SentAt)

		pending, err := client.ScheduledMessage.Query().
			Where(
				scheduledmessage.EnrollmentIDEQ(enr.ID),
				scheduledmessage.StatusEQ(scheduledmessage.StatusPending),
			).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, pending)

		// Delivery lands on the lead's audit trail.
		logged, err := client.Interaction.Query().
			Where(
				interaction.LeadIDEQ(ld.ID),
				interaction.KindEQ(interactions.EmailSent),
			).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, logged)

		// Still three steps to go, the enrollment stays active.
		enr, err = client.Enrollment.Get(ctx, enr.ID)
		require.NoError(t, err)
		assert.Equal(t, enrollment.StatusActive, enr.Status)
	})

	t.Run("Success - retries with linear backoff then fails permanently", func(t *testing.T) {
		client, cleanup := setupTestDB(t)
		defer cleanup()

		clk := clock.NewMock(now)
		broken := &fakeProvider{name: "graph", err: errors.New("530 connection refused")}
		worker := NewWorker(client, mailer.NewDispatcher([]mailer.Provider{broken}, time.Second), clk, nil, Options{
			MaxAttempts: 3,
			Backoff:     5 * time.Second,
		})

		msg := createOrphanMessage(t, client, "standard-welcome", now)

		sent, failed, err := worker.Tick(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, sent)
		assert.Equal(t, 1, failed)

		msg, err = client.ScheduledMessage.Get(ctx, msg.ID)
		require.NoError(t, err)
		assert.Equal(t, scheduledmessage.StatusPending, msg.Status)
		assert.Equal(t, 1, msg.Attempts)
		assert.True(t, msg.SendAt.Equal(now.Add(5*time.Second)))
		assert.Contains(t, msg.LastError, "connection refused")

		// Second attempt backs off further.
		clk.Advance(10 * time.Second)
		_, _, err = worker.Tick(ctx)
		require.NoError(t, err)

		msg, err = client.ScheduledMessage.Get(ctx, msg.ID)
		require.NoError(t, err)
		assert.Equal(t, scheduledmessage.StatusPending, msg.Status)
		assert.Equal(t, 2, msg.Attempts)

		// Third attempt exhausts the budget.
		clk.Advance(time.Minute)
		_, _, err = worker.Tick(ctx)
		require.NoError(t, err)

		msg, err = client.ScheduledMessage.Get(ctx, msg.ID)
		require.NoError(t, err)
		assert.Equal(t, scheduledmessage.StatusFailed, msg.Status)
		assert.Equal(t, 3, msg.Attempts)

		// Orphan messages have no lead to log against.
		count, err := client.Interaction.Query().Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("Success - fails over to the next provider", func(t *testing.T) {
		client, cleanup := setupTestDB(t)
		defer cleanup()

		clk := clock.NewMock(now)
		backup := &fakeProvider{name: "smtp"}
		dispatcher := mailer.NewDispatcher([]mailer.Provider{
			&fakeProvider{name: "graph", err: errors.New("401 unauthorized")},
			backup,
		}, time.Second)
		worker := NewWorker(client, dispatcher, clk, nil, Options{})

		msg := createOrphanMessage(t, client, "standard-welcome", now)

		sent, failed, err := worker.Tick(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, sent)
		assert.Equal(t, 0, failed)
		assert.Len(t, backup.sent, 1)

		msg, err = client.ScheduledMessage.Get(ctx, msg.ID)
		require.NoError(t, err)
		assert.Equal(t, scheduledmessage.StatusSent, msg.Status)
	})

	t.Run("Success - unknown template fails without retries", func(t *testing.T) {
		client, cleanup := setupTestDB(t)
		defer cleanup()

		clk := clock.NewMock(now)
		provider := &fakeProvider{name: "graph"}
		worker := NewWorker(client, mailer.NewDispatcher([]mailer.Provider{provider}, time.Second), clk, nil, Options{})

		msg := createOrphanMessage(t, client, "deleted-template", now)

		sent, failed, err := worker.Tick(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, sent)
		assert.Equal(t, 1, failed)
		assert.Empty(t, provider.sent)

		msg, err = client.ScheduledMessage.Get(ctx, msg.ID)
		require.NoError(t, err)
		assert.Equal(t, scheduledmessage.StatusFailed, msg.Status)
		assert.Contains(t, msg.LastError, "unknown template id")
	})

	t.Run("Success - completes drained enrollments", func(t *testing.T) {
		client, cleanup := setupTestDB(t)
		defer cleanup()

		clk := clock.NewMock(now)
		provider := &fakeProvider{name: "graph"}
		worker := NewWorker(client, mailer.NewDispatcher([]mailer.Provider{provider}, time.Second), clk, nil, Options{})

		ld := createTestLead(t, client, "drained@example.com")
		enr, err := drip.NewEnroller(client, clk).Enroll(ctx, ld, "intake-newsletter", 40)
		require.NoError(t, err)

		// Both steps of the newsletter pathway come due.
		clk.Advance(20 * 24 * time.Hour)

		sent, failed, err := worker.Tick(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, sent)
		assert.Equal(t, 0, failed)

		enr, err = client.Enrollment.Get(ctx, enr.ID)
		require.NoError(t, err)
		assert.Equal(t, enrollment.StatusCompleted, enr.Status)
	})

	t.Run("Success - nothing due is a no-op", func(t *testing.T) {
		client, cleanup := setupTestDB(t)
		defer cleanup()

		worker := NewWorker(client, mailer.NewDispatcher([]mailer.Provider{&fakeProvider{name: "graph"}}, time.Second), clock.NewMock(now), nil, Options{})
		createOrphanMessage(t, client, "standard-welcome", now.Add(time.Hour))

		sent, failed, err := worker.Tick(ctx)
		require.NoError(t, err)
		assert.Zero(t, sent)
		assert.Zero(t, failed)
	})
}
