package booking

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/counselflow/intake-api/ent"
	entbooking "github.com/counselflow/intake-api/ent/booking"
	"github.com/counselflow/intake-api/ent/enrollment"
	"github.com/counselflow/intake-api/ent/enttest"
	"github.com/counselflow/intake-api/ent/interaction"
	"github.com/counselflow/intake-api/ent/lead"
	"github.com/counselflow/intake-api/ent/scheduledmessage"
	"github.com/counselflow/intake-api/pkg/cache"
	"github.com/counselflow/intake-api/pkg/clock"
	"github.com/counselflow/intake-api/pkg/drip"
	"github.com/counselflow/intake-api/pkg/interactions"
)

func setupTest(t *testing.T) (*ent.Client, *cache.Client, func()) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	mr := miniredis.RunT(t)
	c := cache.FromRedis(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	return client, c, func() { client.Close() }
}

func createTestLead(t *testing.T, client *ent.Client, email string) *ent.Lead {
	ld, err := client.Lead.Create().
		SetSubmissionID(uuid.NewString()).
		SetEmail(email).
		SetFirstName("Jordan").
		SetSubmissionKind(lead.SubmissionKindEstate).
		SetScore(75).
		SetFormData(map[string]interface{}{"email": email}).
		Save(context.Background())
	require.NoError(t, err)
	return ld
}

func TestHandleCreated(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	consultAt := now.Add(72 * time.Hour)

	t.Run("Success - records booking and pauses the drip", func(t *testing.T) {
		client, c, cleanup := setupTest(t)
		defer cleanup()

		clk := clock.NewMock(now)
		enroller := drip.NewEnroller(client, clk)
		svc := NewService(client, c, clk, enroller, nil, Options{})

		ld := createTestLead(t, client, "jordan@example.com")
		enr, err := enroller.Enroll(ctx, ld, "premium-nurture", 75)
		require.NoError(t, err)

		err = svc.HandleCreated(ctx, Event{
			Email:       "Jordan@Example.com",
			Name:        "Jordan Reyes",
			Kind:        "estate",
			ScheduledAt: consultAt,
		})
		require.NoError(t, err)

		b, err := client.Booking.Query().Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, "jordan@example.com", b.Email)
		assert.Equal(t, entbooking.KindEstate, b.Kind)
		assert.Equal(t, entbooking.StatusScheduled, b.Status)

		enr, err = client.Enrollment.Get(ctx, enr.ID)
		require.NoError(t, err)
		assert.Equal(t, enrollment.StatusPaused, enr.Status)
		require.NotNil(t, enr.PauseReason)
		assert.Equal(t, "consultation_booked", *enr.PauseReason)

		paused, err := client.ScheduledMessage.Query().
			Where(
				scheduledmessage.EnrollmentIDEQ(enr.ID),
				scheduledmessage.StatusEQ(scheduledmessage.StatusPaused),
			).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 4, paused)

		// Confirmation goes out through the dispatcher as an orphan message.
		confirmation, err := client.ScheduledMessage.Query().
			Where(
				scheduledmessage.BodyTemplateIDEQ("consultation-confirmation"),
				scheduledmessage.StatusEQ(scheduledmessage.StatusPending),
			).
			Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Jordan", confirmation.FirstName)
		assert.True(t, confirmation.SendAt.Equal(now))
		assert.Nil(t, confirmation.EnrollmentID)

		logged, err := client.Interaction.Query().
			Where(
				interaction.LeadIDEQ(ld.ID),
				interaction.KindIn(interactions.BookingCreated, interactions.DripPaused),
			).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, logged)
	})

	t.Run("Success - duplicate webhook is a no-op", func(t *testing.T) {
		client, c, cleanup := setupTest(t)
		defer cleanup()

		svc := NewService(client, c, clock.NewMock(now), nil, nil, Options{})

		ev := Event{Email: "dupe@example.com", Kind: "general", ScheduledAt: consultAt}
		require.NoError(t, svc.HandleCreated(ctx, ev))
		require.NoError(t, svc.HandleCreated(ctx, ev))

		count, err := client.Booking.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("Success - database fallback blocks duplicates without redis", func(t *testing.T) {
		client, _, cleanup := setupTest(t)
		defer cleanup()

		svc := NewService(client, nil, clock.NewMock(now), nil, nil, Options{})

		ev := Event{Email: "nofredis@example.com", Kind: "general", ScheduledAt: consultAt}
		require.NoError(t, svc.HandleCreated(ctx, ev))
		require.NoError(t, svc.HandleCreated(ctx, ev))

		count, err := client.Booking.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("Success - unknown consultation kind maps to general", func(t *testing.T) {
		client, c, cleanup := setupTest(t)
		defer cleanup()

		svc := NewService(client, c, clock.NewMock(now), nil, nil, Options{})
		require.NoError(t, svc.HandleCreated(ctx, Event{Email: "x@example.com", Kind: "séance", ScheduledAt: consultAt}))

		b, err := client.Booking.Query().Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, entbooking.KindGeneral, b.Kind)
	})

	t.Run("Error - missing email", func(t *testing.T) {
		client, c, cleanup := setupTest(t)
		defer cleanup()

		svc := NewService(client, c, clock.NewMock(now), nil, nil, Options{})
		err := svc.HandleCreated(ctx, Event{Name: "Ghost"})
		require.Error(t, err)
	})
}

func TestHandleCancelled(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	consultAt := now.Add(72 * time.Hour)

	t.Run("Success - resumes the drip with staggered sends", func(t *testing.T) {
		client, c, cleanup := setupTest(t)
		defer cleanup()

		clk := clock.NewMock(now)
		enroller := drip.NewEnroller(client, clk)
		svc := NewService(client, c, clk, enroller, nil, Options{ResumeGap: 24 * time.Hour})

		ld := createTestLead(t, client, "comeback@example.com")
		enr, err := enroller.Enroll(ctx, ld, "intake-gaming_legal", 60)
		require.NoError(t, err)

		require.NoError(t, svc.HandleCreated(ctx, Event{Email: "comeback@example.com", ScheduledAt: consultAt}))

		// The lead cancels two days later.
		clk.Advance(48 * time.Hour)
		resumeAt := clk.Now()
		require.NoError(t, svc.HandleCancelled(ctx, Event{Email: "comeback@example.com", ScheduledAt: consultAt}))

		b, err := client.Booking.Query().Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, entbooking.StatusCancelled, b.Status)

		enr, err = client.Enrollment.Get(ctx, enr.ID)
		require.NoError(t, err)
		assert.Equal(t, enrollment.StatusActive, enr.Status)
		assert.Nil(t, enr.PauseReason)

		msgs, err := client.ScheduledMessage.Query().
			Where(
				scheduledmessage.EnrollmentIDEQ(enr.ID),
				scheduledmessage.StatusEQ(scheduledmessage.StatusPending),
			).
			Order(ent.Asc(scheduledmessage.FieldSendAt)).
			All(ctx)
		require.NoError(t, err)
		require.Len(t, msgs, 3)

		// Original order preserved, one resume gap apart.
		assert.True(t, msgs[0].SendAt.Equal(resumeAt))
		assert.True(t, msgs[1].SendAt.Equal(resumeAt.Add(24*time.Hour)))
		assert.True(t, msgs[2].SendAt.Equal(resumeAt.Add(48*time.Hour)))
		assert.Equal(t, "gaming-welcome", msgs[0].BodyTemplateID)
		assert.Equal(t, "gaming-contracts", msgs[1].BodyTemplateID)
		assert.Equal(t, "gaming-clauses", msgs[2].BodyTemplateID)
	})

	t.Run("Success - cancellation with nothing paused still closes the booking", func(t *testing.T) {
		client, c, cleanup := setupTest(t)
		defer cleanup()

		clk := clock.NewMock(now)
		svc := NewService(client, c, clk, nil, nil, Options{})

		require.NoError(t, svc.HandleCreated(ctx, Event{Email: "quiet@example.com", ScheduledAt: consultAt}))
		require.NoError(t, svc.HandleCancelled(ctx, Event{Email: "quiet@example.com", ScheduledAt: consultAt}))

		b, err := client.Booking.Query().Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, entbooking.StatusCancelled, b.Status)
	})
}

func TestHandleCompleted(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	t.Run("Success - moves the lead onto the follow-up pathway", func(t *testing.T) {
		client, c, cleanup := setupTest(t)
		defer cleanup()

		clk := clock.NewMock(now)
		enroller := drip.NewEnroller(client, clk)
		svc := NewService(client, c, clk, enroller, nil, Options{})

		ld := createTestLead(t, client, "done@example.com")
		require.NoError(t, svc.HandleCreated(ctx, Event{Email: "done@example.com", ScheduledAt: now.Add(time.Hour)}))

		clk.Advance(2 * time.Hour)
		require.NoError(t, svc.HandleCompleted(ctx, Event{Email: "done@example.com"}))

		b, err := client.Booking.Query().Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, entbooking.StatusCompleted, b.Status)

		followup, err := client.Enrollment.Query().
			Where(
				enrollment.LeadIDEQ(ld.ID),
				enrollment.PathwayNameEQ("post-consultation"),
				enrollment.StatusEQ(enrollment.StatusActive),
			).
			Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, "consultation_completed", followup.Trigger)
	})
}
