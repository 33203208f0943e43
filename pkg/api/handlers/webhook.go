package handlers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	apierrors "github.com/counselflow/intake-api/pkg/api/errors"
	"github.com/counselflow/intake-api/pkg/booking"
	"github.com/counselflow/intake-api/pkg/models"
)

// WebhookHandler receives scheduling-service webhooks.
type WebhookHandler struct {
	bookings *booking.Service
}

// NewWebhookHandler creates a new webhook handler
func NewWebhookHandler(bookings *booking.Service) *WebhookHandler {
	return &WebhookHandler{bookings: bookings}
}

// calendlyEvent mirrors the subset of the Calendly webhook payload we use.
type calendlyEvent struct {
	Event   string `json:"event"`
	Payload struct {
		Email          string `json:"email"`
		Name           string `json:"name"`
		ScheduledEvent struct {
			StartTime time.Time `json:"start_time"`
			Name      string    `json:"name"`
		} `json:"scheduled_event"`
	} `json:"payload"`
}

// Calendly handles POST /webhook/calendly
func (h *WebhookHandler) Calendly(c echo.Context) error {
	ctx := c.Request().Context()

	var ev calendlyEvent
	if err := c.Bind(&ev); err != nil {
		return apierrors.ValidationError(c, err)
	}

	bev := booking.Event{
		Email:       ev.Payload.Email,
		Name:        ev.Payload.Name,
		Kind:        consultationKind(ev.Payload.ScheduledEvent.Name),
		ScheduledAt: ev.Payload.ScheduledEvent.StartTime,
		Payload: map[string]interface{}{
			"event":      ev.Event,
			"event_name": ev.Payload.ScheduledEvent.Name,
			"start_time": ev.Payload.ScheduledEvent.StartTime,
		},
	}

	var err error
	switch ev.Event {
	case "invitee.created":
		err = h.bookings.HandleCreated(ctx, bev)
	case "invitee.canceled":
		err = h.bookings.HandleCancelled(ctx, bev)
	default:
		// Unrecognized events are acknowledged so the scheduler stops
		// redelivering them.
		log.Printf("⚠️  Ignoring unhandled webhook event %q", ev.Event)
		return c.JSON(http.StatusOK, models.WebhookResponse{Received: true})
	}
	if err != nil {
		return apierrors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, models.WebhookResponse{Received: true})
}

// BookingCompleted handles POST /webhook/booking-completed, posted by staff
// tooling after a consultation happens.
func (h *WebhookHandler) BookingCompleted(c echo.Context) error {
	ctx := c.Request().Context()

	var req struct {
		Email string `json:"email"`
	}
	if err := c.Bind(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	if err := h.bookings.HandleCompleted(ctx, booking.Event{Email: req.Email}); err != nil {
		return apierrors.InternalError(c, err)
	}
	return c.JSON(http.StatusOK, models.WebhookResponse{Received: true})
}

// consultationKind maps the scheduling event name to a booking kind.
func consultationKind(eventName string) string {
	name := strings.ToLower(eventName)
	switch {
	case strings.Contains(name, "estate"):
		return "estate"
	case strings.Contains(name, "business"), strings.Contains(name, "formation"):
		return "business"
	case strings.Contains(name, "brand"), strings.Contains(name, "trademark"):
		return "brand"
	case strings.Contains(name, "counsel"):
		return "counsel"
	case strings.Contains(name, "vip"), strings.Contains(name, "priority"):
		return "vip"
	default:
		return "general"
	}
}
