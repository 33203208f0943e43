package drip

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/counselflow/intake-api/ent"
	"github.com/counselflow/intake-api/ent/enrollment"
	"github.com/counselflow/intake-api/ent/enttest"
	"github.com/counselflow/intake-api/ent/lead"
	"github.com/counselflow/intake-api/ent/scheduledmessage"
	"github.com/counselflow/intake-api/pkg/clock"
)

func setupTestDB(t *testing.T) (*ent.Client, func()) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	return client, func() { client.Close() }
}

func createTestLead(t *testing.T, client *ent.Client, email string, score int) *ent.Lead {
	ld, err := client.Lead.Create().
		SetSubmissionID(uuid.NewString()).
		SetEmail(email).
		SetFirstName("Jordan").
		SetSubmissionKind(lead.SubmissionKindEstate).
		SetScore(score).
		SetPriority(lead.PriorityHigh).
		SetProfile("family").
		SetFormData(map[string]interface{}{"email": email}).
		Save(context.Background())
	require.NoError(t, err)
	return ld
}

func TestAdjustDelay(t *testing.T) {
	day := 24 * time.Hour

	cases := []struct {
		name  string
		delay time.Duration
		score int
		want  time.Duration
	}{
		{"hot lead compresses", day, 95, 18 * time.Hour},
		{"high lead compresses less", day, 75, 20*time.Hour + 24*time.Minute},
		{"boundary at ninety", day, 90, 18 * time.Hour},
		{"medium lead unchanged", day, 55, day},
		{"cold lead stretches", day, 30, 28*time.Hour + 48*time.Minute},
		{"zero delay stays zero", 0, 95, 0},
		{"zero delay stays zero for cold leads", 0, 10, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, AdjustDelay(tc.delay, tc.score))
		})
	}
}

func TestEnroll(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	t.Run("Success - creates enrollment and schedule", func(t *testing.T) {
		client, cleanup := setupTestDB(t)
		defer cleanup()

		clk := clock.NewMock(now)
		enroller := NewEnroller(client, clk)
		ld := createTestLead(t, client, "jordan@example.com", 80)

		enr, err := enroller.Enroll(ctx, ld, "vip", 80)
		require.NoError(t, err)
		assert.Equal(t, "vip", enr.PathwayName)
		assert.Equal(t, "high_score", enr.Trigger)
		assert.Equal(t, enrollment.StatusActive, enr.Status)
		assert.Equal(t, "jordan@example.com", enr.Email)

		msgs, err := client.ScheduledMessage.Query().
			Where(scheduledmessage.EnrollmentIDEQ(enr.ID)).
			Order(ent.Asc(scheduledmessage.FieldSendAt)).
			All(ctx)
		require.NoError(t, err)
		require.Len(t, msgs, 4)

		// Score 80 compresses nominal delays by 0.85.
		assert.True(t, msgs[0].SendAt.Equal(now))
		assert.True(t, msgs[1].SendAt.Equal(now.Add(AdjustDelay(24*time.Hour, 80))))
		assert.True(t, msgs[2].SendAt.Equal(now.Add(AdjustDelay(3*24*time.Hour, 80))))
		assert.True(t, msgs[3].SendAt.Equal(now.Add(AdjustDelay(6*24*time.Hour, 80))))

		for _, msg := range msgs {
			assert.Equal(t, scheduledmessage.StatusPending, msg.Status)
			assert.Equal(t, "jordan@example.com", msg.Email)
			assert.Equal(t, "Jordan", msg.FirstName)
			assert.NotEmpty(t, msg.SubjectTemplate)
			assert.NotEmpty(t, msg.BodyTemplateID)
		}
	})

	t.Run("Success - supersedes existing enrollment on the same pathway", func(t *testing.T) {
		client, cleanup := setupTestDB(t)
		defer cleanup()

		clk := clock.NewMock(now)
		enroller := NewEnroller(client, clk)
		ld := createTestLead(t, client, "repeat@example.com", 60)

		first, err := enroller.Enroll(ctx, ld, "premium-nurture", 60)
		require.NoError(t, err)

		second, err := enroller.Enroll(ctx, ld, "premium-nurture", 75)
		require.NoError(t, err)
		assert.NotEqual(t, first.ID, second.ID)

		first, err = client.Enrollment.Get(ctx, first.ID)
		require.NoError(t, err)
		assert.Equal(t, enrollment.StatusCancelled, first.Status)

		cancelled, err := client.ScheduledMessage.Query().
			Where(
				scheduledmessage.EnrollmentIDEQ(first.ID),
				scheduledmessage.StatusEQ(scheduledmessage.StatusCancelled),
			).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 4, cancelled)

		pending, err := client.ScheduledMessage.Query().
			Where(
				scheduledmessage.EnrollmentIDEQ(second.ID),
				scheduledmessage.StatusEQ(scheduledmessage.StatusPending),
			).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 4, pending)
	})

	t.Run("Success - different pathways coexist", func(t *testing.T) {
		client, cleanup := setupTestDB(t)
		defer cleanup()

		enroller := NewEnroller(client, clock.NewMock(now))
		ld := createTestLead(t, client, "multi@example.com", 60)

		_, err := enroller.Enroll(ctx, ld, "premium-nurture", 60)
		require.NoError(t, err)
		_, err = enroller.Enroll(ctx, ld, "newsletter-welcome", 60)
		require.NoError(t, err)

		active, err := client.Enrollment.Query().
			Where(
				enrollment.EmailEQ("multi@example.com"),
				enrollment.StatusEQ(enrollment.StatusActive),
			).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, active)
	})

	t.Run("Error - unknown pathway", func(t *testing.T) {
		client, cleanup := setupTestDB(t)
		defer cleanup()

		enroller := NewEnroller(client, clock.NewMock(now))
		ld := createTestLead(t, client, "lost@example.com", 60)

		_, err := enroller.Enroll(ctx, ld, "no-such-pathway", 60)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown pathway")
	})
}
