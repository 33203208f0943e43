package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/counselflow/intake-api/ent"
	"github.com/counselflow/intake-api/ent/enrollment"
	"github.com/counselflow/intake-api/ent/lead"
	"github.com/counselflow/intake-api/ent/scheduledmessage"
	apierrors "github.com/counselflow/intake-api/pkg/api/errors"
)

// DashboardHandler serves read-only projections for the internal dashboard.
type DashboardHandler struct {
	client *ent.Client
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(client *ent.Client) *DashboardHandler {
	return &DashboardHandler{client: client}
}

// RecentLeads handles GET /dashboard/leads. Optional query params: limit
// (default 50, max 200), kind, min_score.
func (h *DashboardHandler) RecentLeads(c echo.Context) error {
	ctx := c.Request().Context()

	limit := 50
	if v := c.QueryParam("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 200 {
			limit = n
		}
	}

	q := h.client.Lead.Query()
	if kind := c.QueryParam("kind"); kind != "" {
		q = q.Where(lead.SubmissionKindEQ(lead.SubmissionKind(kind)))
	}
	if v := c.QueryParam("min_score"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			q = q.Where(lead.ScoreGTE(n))
		}
	}

	leads, err := q.Order(ent.Desc(lead.FieldCreatedAt)).Limit(limit).All(ctx)
	if err != nil {
		return apierrors.DatabaseError(c, err)
	}

	out := make([]map[string]interface{}, 0, len(leads))
	for _, ld := range leads {
		out = append(out, map[string]interface{}{
			"submission_id": ld.SubmissionID,
			"email":         ld.Email,
			"first_name":    ld.FirstName,
			"last_name":     ld.LastName,
			"kind":          ld.SubmissionKind,
			"score":         ld.Score,
			"priority":      ld.Priority,
			"profile":       ld.Profile,
			"created_at":    ld.CreatedAt,
		})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"leads": out,
		"count": len(out),
	})
}

// LeadDetail handles GET /dashboard/leads/:submission_id with the full
// audit trail and enrollment history.
func (h *DashboardHandler) LeadDetail(c echo.Context) error {
	ctx := c.Request().Context()

	ld, err := h.client.Lead.Query().
		Where(lead.SubmissionIDEQ(c.Param("submission_id"))).
		WithInteractions().
		WithEnrollments().
		Only(ctx)
	if ent.IsNotFound(err) {
		return apierrors.NotFoundError(c, "lead")
	}
	if err != nil {
		return apierrors.DatabaseError(c, err)
	}

	interactions := make([]map[string]interface{}, 0, len(ld.Edges.Interactions))
	for _, it := range ld.Edges.Interactions {
		interactions = append(interactions, map[string]interface{}{
			"kind":   it.Kind,
			"detail": it.Detail,
			"at":     it.At,
		})
	}

	enrollments := make([]map[string]interface{}, 0, len(ld.Edges.Enrollments))
	for _, enr := range ld.Edges.Enrollments {
		enrollments = append(enrollments, map[string]interface{}{
			"pathway":      enr.PathwayName,
			"trigger":      enr.Trigger,
			"status":       enr.Status,
			"pause_reason": enr.PauseReason,
			"created_at":   enr.CreatedAt,
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"submission_id": ld.SubmissionID,
		"email":         ld.Email,
		"first_name":    ld.FirstName,
		"last_name":     ld.LastName,
		"phone":         ld.Phone,
		"business_name": ld.BusinessName,
		"kind":          ld.SubmissionKind,
		"score":         ld.Score,
		"priority":      ld.Priority,
		"profile":       ld.Profile,
		"form_data":     ld.FormData,
		"created_at":    ld.CreatedAt,
		"interactions":  interactions,
		"enrollments":   enrollments,
	})
}

// Stats handles GET /dashboard/stats: pipeline aggregates for the last 30 days.
func (h *DashboardHandler) Stats(c echo.Context) error {
	ctx := c.Request().Context()
	since := time.Now().AddDate(0, 0, -30)

	totalLeads, err := h.client.Lead.Query().
		Where(lead.CreatedAtGTE(since)).
		Count(ctx)
	if err != nil {
		return apierrors.DatabaseError(c, err)
	}

	byKind := map[string]int{}
	kinds := []lead.SubmissionKind{
		lead.SubmissionKindEstate,
		lead.SubmissionKindBusinessFormation,
		lead.SubmissionKindBrandProtection,
		lead.SubmissionKindOutsideCounsel,
		lead.SubmissionKindLegalStrategy,
		lead.SubmissionKindLegalRiskAssessment,
		lead.SubmissionKindGamingLegal,
		lead.SubmissionKindNewsletter,
		lead.SubmissionKindResourceGuide,
	}
	for _, kind := range kinds {
		n, err := h.client.Lead.Query().
			Where(lead.SubmissionKindEQ(kind), lead.CreatedAtGTE(since)).
			Count(ctx)
		if err != nil {
			return apierrors.DatabaseError(c, err)
		}
		if n > 0 {
			byKind[string(kind)] = n
		}
	}

	highValue, err := h.client.Lead.Query().
		Where(lead.ScoreGTE(70), lead.CreatedAtGTE(since)).
		Count(ctx)
	if err != nil {
		return apierrors.DatabaseError(c, err)
	}

	activeEnrollments, err := h.client.Enrollment.Query().
		Where(enrollment.StatusEQ(enrollment.StatusActive)).
		Count(ctx)
	if err != nil {
		return apierrors.DatabaseError(c, err)
	}

	sent, err := h.client.ScheduledMessage.Query().
		Where(
			scheduledmessage.StatusEQ(scheduledmessage.StatusSent),
			scheduledmessage.SentAtGTE(since),
		).
		Count(ctx)
	if err != nil {
		return apierrors.DatabaseError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"window_days":        30,
		"total_leads":        totalLeads,
		"leads_by_kind":      byKind,
		"high_value_leads":   highValue,
		"active_enrollments": activeEnrollments,
		"emails_sent":        sent,
	})
}
