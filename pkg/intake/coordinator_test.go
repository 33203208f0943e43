package intake

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

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
	"github.com/counselflow/intake-api/pkg/crm"
	"github.com/counselflow/intake-api/pkg/drip"
	"github.com/counselflow/intake-api/pkg/esp"
	"github.com/counselflow/intake-api/pkg/form"
	"github.com/counselflow/intake-api/pkg/interactions"
	"github.com/counselflow/intake-api/pkg/mailer"
)

// fakeProvider is a thread-safe recording mail provider; fanout sends from
// multiple goroutines.
type fakeProvider struct {
	mu   sync.Mutex
	err  error
	sent []mailer.Message
}

func (p *fakeProvider) Name() string { return "fake" }

func (p *fakeProvider) Send(_ context.Context, msg mailer.Message) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.sent = append(p.sent, msg)
	return nil
}

func (p *fakeProvider) messages() []mailer.Message {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]mailer.Message(nil), p.sent...)
}

func setupCoordinator(t *testing.T, provider *fakeProvider, crmClient *crm.Client, espClient *esp.Client) (*Coordinator, *ent.Client) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	t.Cleanup(func() { client.Close() })

	clk := clock.NewMock(time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC))
	enroller := drip.NewEnroller(client, clk)
	dispatcher := mailer.NewDispatcher([]mailer.Provider{provider}, time.Second)

	coordinator := NewCoordinator(client, clk, enroller, dispatcher, crmClient, espClient, nil, Options{
		InternalAlertTo: "intake@firm.example",
		FanoutWait:      5 * time.Second,
	})
	return coordinator, client
}

func TestProcess(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - full pipeline for a high-value estate lead", func(t *testing.T) {
		var crmBody inboxCapture
		crmServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/inbox_leads", r.URL.Path)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&crmBody))
			w.WriteHeader(http.StatusCreated)
		}))
		defer crmServer.Close()

		var espSub esp.Subscriber
		espServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPut, r.Method)
			assert.Equal(t, "/subscribers", r.URL.Path)
			assert.Equal(t, "Bearer esp-key", r.Header.Get("Authorization"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&espSub))
			w.WriteHeader(http.StatusOK)
		}))
		defer espServer.Close()

		provider := &fakeProvider{}
		coordinator, client := setupCoordinator(t, provider,
			crm.NewClient(crmServer.URL, "crm-token", ""),
			esp.NewClient(espServer.URL, "esp-key"))

		result, err := coordinator.Process(ctx, Submission{
			Kind:     "estate",
			Referrer: "https://firm.example/estate-planning",
			Fields: form.Fields{
				"email":              "Jordan.Reyes@EliteAgency.com",
				"name":               "Jordan Reyes",
				"phone":              "(310) 555-1234",
				"gross_estate":       "over25m",
				"package_preference": "trust_package",
				"own_business":       "yes",
				"profession":         "professional athlete",
				"revenue_streams":    "brand_partnerships",
				"company":            "Reyes Holdings",
				"message":            "Looking to set up a trust",
			},
		})
		require.NoError(t, err)

		assert.True(t, result.OK)
		assert.NotEmpty(t, result.SubmissionID)
		assert.Equal(t, 100, result.Score)
		assert.Equal(t, "high", result.Priority)
		assert.Equal(t, "athlete", result.Profile)
		assert.Equal(t, "athlete-vip", result.Pathway)
		assert.Equal(t, "Estate plans start at $2,500", result.PriceHint)

		ld, err := client.Lead.Query().Where(lead.SubmissionIDEQ(result.SubmissionID)).Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, "jordan.reyes@eliteagency.com", ld.Email)
		assert.Equal(t, "Jordan", ld.FirstName)
		assert.Equal(t, "Reyes", ld.LastName)
		assert.Equal(t, "+13105551234", ld.Phone)
		assert.Equal(t, "Reyes Holdings", ld.BusinessName)
		assert.Equal(t, lead.PriorityHigh, ld.Priority)
		assert.Equal(t, "over25m", ld.FormData["gross_estate"])

		enr, err := client.Enrollment.Query().Where(enrollment.LeadIDEQ(ld.ID)).Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, "athlete-vip", enr.PathwayName)
		assert.Equal(t, enrollment.StatusActive, enr.Status)

		scheduled, err := client.ScheduledMessage.Query().
			Where(scheduledmessage.EnrollmentIDEQ(enr.ID)).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 4, scheduled)

		submitted, err := client.Interaction.Query().
			Where(
				interaction.LeadIDEQ(ld.ID),
				interaction.KindEQ(interactions.FormSubmitted),
			).
			Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, "estate", submitted.Detail["kind"])

		// Fanout: internal alert plus client confirmation.
		msgs := provider.messages()
		require.Len(t, msgs, 2)
		recipients := []string{msgs[0].To, msgs[1].To}
		assert.Contains(t, recipients, "intake@firm.example")
		assert.Contains(t, recipients, "jordan.reyes@eliteagency.com")

		assert.Equal(t, "Jordan", crmBody.InboxLead.FromFirst)
		assert.Equal(t, "crm-token", crmBody.InboxLeadToken)
		assert.Equal(t, "website-intake", crmBody.InboxLead.FromSource)

		assert.Equal(t, "jordan.reyes@eliteagency.com", espSub.Email)
		assert.ElementsMatch(t, []string{"intake:estate", "profile:athlete", "lead:hot"}, espSub.Tags)
	})

	t.Run("Success - fanout failures are recorded, not fatal", func(t *testing.T) {
		crmServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "crm is down", http.StatusInternalServerError)
		}))
		defer crmServer.Close()

		provider := &fakeProvider{err: errors.New("550 rejected")}
		coordinator, client := setupCoordinator(t, provider,
			crm.NewClient(crmServer.URL, "crm-token", ""), nil)

		result, err := coordinator.Process(ctx, Submission{
			Kind: "newsletter",
			Fields: form.Fields{
				"email":      "reader@gmail.com",
				"first_name": "Sam",
			},
		})
		require.NoError(t, err)
		assert.True(t, result.OK)
		assert.Equal(t, "intake-newsletter", result.Pathway)
		assert.Empty(t, result.PriceHint)

		ld, err := client.Lead.Query().Where(lead.SubmissionIDEQ(result.SubmissionID)).Only(ctx)
		require.NoError(t, err)

		kinds := map[string]bool{}
		logged, err := client.Interaction.Query().Where(interaction.LeadIDEQ(ld.ID)).All(ctx)
		require.NoError(t, err)
		for _, it := range logged {
			kinds[it.Kind] = true
		}
		assert.True(t, kinds[interactions.FormSubmitted])
		assert.True(t, kinds[interactions.AlertSendFailed])
		assert.True(t, kinds[interactions.EmailSendFailed])
		assert.True(t, kinds[interactions.CRMSyncFailed])
	})

	t.Run("Success - guide variant routes low scores", func(t *testing.T) {
		provider := &fakeProvider{}
		coordinator, client := setupCoordinator(t, provider, nil, nil)

		result, err := coordinator.Process(ctx, Submission{
			Kind:         "resource_guide",
			GuideVariant: "brand",
			Fields:       form.Fields{"email": "curious@gmail.com"},
		})
		require.NoError(t, err)
		assert.Equal(t, "guide-brand", result.Pathway)

		enr, err := client.Enrollment.Query().Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, "guide-brand", enr.PathwayName)
	})

	t.Run("Error - submission without email", func(t *testing.T) {
		coordinator, client := setupCoordinator(t, &fakeProvider{}, nil, nil)

		_, err := coordinator.Process(ctx, Submission{
			Kind:   "estate",
			Fields: form.Fields{"name": "No Email"},
		})
		require.Error(t, err)

		count, err := client.Lead.Query().Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, count)
	})
}

// inboxCapture mirrors the CRM inbox lead payload for assertions.
type inboxCapture struct {
	InboxLead struct {
		FromFirst  string `json:"from_first"`
		FromLast   string `json:"from_last"`
		FromEmail  string `json:"from_email"`
		FromSource string `json:"from_source"`
	} `json:"inbox_lead"`
	InboxLeadToken string `json:"inbox_lead_token"`
}
