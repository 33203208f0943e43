package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/counselflow/intake-api/ent"
	"github.com/counselflow/intake-api/ent/lead"
	"github.com/counselflow/intake-api/ent/scheduledmessage"
	"github.com/counselflow/intake-api/pkg/cache"
)

// HealthHandler reports service and pipeline health.
type HealthHandler struct {
	client *ent.Client
	cache  *cache.Client
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(client *ent.Client, c *cache.Client) *HealthHandler {
	return &HealthHandler{client: client, cache: c}
}

// Health handles GET /health. It reports dependency status plus a few
// pipeline counters useful for a quick glance.
func (h *HealthHandler) Health(c echo.Context) error {
	ctx := c.Request().Context()

	status := "ok"
	dbStatus := "ok"
	redisStatus := "ok"

	totalLeads, err := h.client.Lead.Query().Count(ctx)
	if err != nil {
		dbStatus = "error: " + err.Error()
		status = "degraded"
	}

	highValue, _ := h.client.Lead.Query().
		Where(lead.ScoreGTE(70)).
		Count(ctx)

	recent, _ := h.client.Lead.Query().
		Where(lead.CreatedAtGTE(time.Now().Add(-24 * time.Hour))).
		Count(ctx)

	pending, _ := h.client.ScheduledMessage.Query().
		Where(scheduledmessage.StatusEQ(scheduledmessage.StatusPending)).
		Count(ctx)

	if h.cache != nil {
		if err := h.cache.Ping(ctx); err != nil {
			redisStatus = "error: " + err.Error()
			status = "degraded"
		}
	} else {
		redisStatus = "disabled"
	}

	code := http.StatusOK
	if status != "ok" {
		code = http.StatusServiceUnavailable
	}

	return c.JSON(code, map[string]interface{}{
		"status":   status,
		"database": dbStatus,
		"redis":    redisStatus,
		"pipeline": map[string]interface{}{
			"total_leads":      totalLeads,
			"high_value_leads": highValue,
			"leads_24h":        recent,
			"pending_messages": pending,
		},
	})
}
