package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	_ "github.com/mattn/go-sqlite3"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/counselflow/intake-api/ent"
	entbooking "github.com/counselflow/intake-api/ent/booking"
	"github.com/counselflow/intake-api/ent/enttest"
	"github.com/counselflow/intake-api/pkg/booking"
	"github.com/counselflow/intake-api/pkg/cache"
	"github.com/counselflow/intake-api/pkg/clock"
)

func setupWebhookHandler(t *testing.T) (*WebhookHandler, *ent.Client) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	t.Cleanup(func() { client.Close() })

	mr := miniredis.RunT(t)
	c := cache.FromRedis(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	clk := clock.NewMock(time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC))

	svc := booking.NewService(client, c, clk, nil, nil, booking.Options{})
	return NewWebhookHandler(svc), client
}

func postJSON(t *testing.T, handler echo.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, handler(e.NewContext(req, rec)))
	return rec
}

func TestCalendly(t *testing.T) {
	t.Run("Success - invitee.created records a booking", func(t *testing.T) {
		h, client := setupWebhookHandler(t)

		rec := postJSON(t, h.Calendly, "/webhook/calendly", `{
			"event": "invitee.created",
			"payload": {
				"email": "Jordan@Example.com",
				"name": "Jordan Reyes",
				"scheduled_event": {
					"start_time": "2026-03-13T17:00:00Z",
					"name": "Estate Planning Consultation"
				}
			}
		}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"received":true`)

		b, err := client.Booking.Query().Only(t.Context())
		require.NoError(t, err)
		assert.Equal(t, "jordan@example.com", b.Email)
		assert.Equal(t, entbooking.KindEstate, b.Kind)
		assert.Equal(t, "invitee.created", b.Payload["event"])
	})

	t.Run("Success - invitee.canceled closes the booking", func(t *testing.T) {
		h, client := setupWebhookHandler(t)

		payload := `{
			"event": "%s",
			"payload": {
				"email": "sam@example.com",
				"scheduled_event": {
					"start_time": "2026-03-13T17:00:00Z",
					"name": "Brand Protection Call"
				}
			}
		}`

		postJSON(t, h.Calendly, "/webhook/calendly", strings.Replace(payload, "%s", "invitee.created", 1))
		rec := postJSON(t, h.Calendly, "/webhook/calendly", strings.Replace(payload, "%s", "invitee.canceled", 1))
		assert.Equal(t, http.StatusOK, rec.Code)

		b, err := client.Booking.Query().Only(t.Context())
		require.NoError(t, err)
		assert.Equal(t, entbooking.StatusCancelled, b.Status)
	})

	t.Run("Success - unknown events are acknowledged", func(t *testing.T) {
		h, client := setupWebhookHandler(t)

		rec := postJSON(t, h.Calendly, "/webhook/calendly", `{"event": "routing_form_submission.created"}`)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"received":true`)

		count, err := client.Booking.Query().Count(t.Context())
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("Error - created event without an email", func(t *testing.T) {
		h, _ := setupWebhookHandler(t)

		rec := postJSON(t, h.Calendly, "/webhook/calendly", `{"event": "invitee.created", "payload": {}}`)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestBookingCompleted(t *testing.T) {
	h, client := setupWebhookHandler(t)

	postJSON(t, h.Calendly, "/webhook/calendly", `{
		"event": "invitee.created",
		"payload": {
			"email": "done@example.com",
			"scheduled_event": {"start_time": "2026-03-11T10:00:00Z", "name": "VIP Strategy Session"}
		}
	}`)

	rec := postJSON(t, h.BookingCompleted, "/webhook/booking-completed", `{"email": "done@example.com"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	b, err := client.Booking.Query().Only(t.Context())
	require.NoError(t, err)
	assert.Equal(t, entbooking.KindVip, b.Kind)
	assert.Equal(t, entbooking.StatusCompleted, b.Status)
}

func TestConsultationKind(t *testing.T) {
	cases := map[string]string{
		"Estate Planning Consultation": "estate",
		"Business Formation Intro":     "business",
		"Trademark Strategy Call":      "brand",
		"Outside Counsel Fit Call":     "counsel",
		"Priority Strategy Session":    "vip",
		"30 Minute Meeting":            "general",
	}
	for eventName, want := range cases {
		assert.Equal(t, want, consultationKind(eventName), eventName)
	}
}
