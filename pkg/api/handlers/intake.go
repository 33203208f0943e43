package handlers

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	apierrors "github.com/counselflow/intake-api/pkg/api/errors"
	"github.com/counselflow/intake-api/pkg/form"
	"github.com/counselflow/intake-api/pkg/intake"
	"github.com/counselflow/intake-api/pkg/mailer"
	"github.com/counselflow/intake-api/pkg/models"
	"github.com/counselflow/intake-api/pkg/scoring"
)

const (
	maxUploadFiles    = 15
	maxUploadFileSize = 5 << 20 // 5MB per file
)

// IntakeHandler exposes one endpoint per public form. Every endpoint accepts
// JSON or multipart form data; multipart may carry document uploads that are
// forwarded on the internal alert.
type IntakeHandler struct {
	coordinator *intake.Coordinator
	validator   *validator.Validate
}

// NewIntakeHandler creates a new intake handler
func NewIntakeHandler(coordinator *intake.Coordinator) *IntakeHandler {
	return &IntakeHandler{
		coordinator: coordinator,
		validator:   validator.New(),
	}
}

// EstateIntake handles POST /estate-intake
func (h *IntakeHandler) EstateIntake(c echo.Context) error {
	return h.handle(c, scoring.KindEstate, "")
}

// BusinessFormationIntake handles POST /business-formation-intake
func (h *IntakeHandler) BusinessFormationIntake(c echo.Context) error {
	return h.handle(c, scoring.KindBusinessFormation, "")
}

// BrandProtectionIntake handles POST /brand-protection-intake
func (h *IntakeHandler) BrandProtectionIntake(c echo.Context) error {
	return h.handle(c, scoring.KindBrandProtection, "")
}

// GamingLegalIntake handles POST /gaming-legal-intake
func (h *IntakeHandler) GamingLegalIntake(c echo.Context) error {
	return h.handle(c, scoring.KindGamingLegal, "")
}

// OutsideCounsel handles POST /outside-counsel
func (h *IntakeHandler) OutsideCounsel(c echo.Context) error {
	return h.handle(c, scoring.KindOutsideCounsel, "")
}

// LegalStrategyBuilder handles POST /legal-strategy-builder
func (h *IntakeHandler) LegalStrategyBuilder(c echo.Context) error {
	return h.handle(c, scoring.KindLegalStrategy, "")
}

// RiskAssessment handles POST /legal-risk-assessment
func (h *IntakeHandler) RiskAssessment(c echo.Context) error {
	return h.handle(c, scoring.KindLegalRiskAssessment, "")
}

// NewsletterSignup handles POST /newsletter-signup
func (h *IntakeHandler) NewsletterSignup(c echo.Context) error {
	return h.handle(c, scoring.KindNewsletter, "")
}

// AddSubscriber handles POST /add-subscriber, an alias kept for older forms.
func (h *IntakeHandler) AddSubscriber(c echo.Context) error {
	return h.handle(c, scoring.KindNewsletter, "")
}

// ResourceGuideDownload handles POST /resource-guide-download
func (h *IntakeHandler) ResourceGuideDownload(c echo.Context) error {
	return h.handle(c, scoring.KindResourceGuide, "resource")
}

// BusinessGuideDownload handles POST /business-guide-download
func (h *IntakeHandler) BusinessGuideDownload(c echo.Context) error {
	return h.handle(c, scoring.KindResourceGuide, "business")
}

// BrandGuideDownload handles POST /brand-guide-download
func (h *IntakeHandler) BrandGuideDownload(c echo.Context) error {
	return h.handle(c, scoring.KindResourceGuide, "brand")
}

// EstateGuideDownload handles POST /estate-guide-download
func (h *IntakeHandler) EstateGuideDownload(c echo.Context) error {
	return h.handle(c, scoring.KindResourceGuide, "estate")
}

func (h *IntakeHandler) handle(c echo.Context, kind, guideVariant string) error {
	fields, attachments, err := h.parseSubmission(c)
	if err != nil {
		if strings.Contains(err.Error(), "too large") || strings.Contains(err.Error(), "too many") {
			return apierrors.PayloadTooLargeError(c, err.Error())
		}
		return apierrors.ValidationError(c, err)
	}

	if err := h.validator.Var(fields.Str("email"), "required,email"); err != nil {
		return apierrors.ValidationError(c, err)
	}

	result, err := h.coordinator.Process(c.Request().Context(), intake.Submission{
		Kind:         kind,
		Fields:       fields,
		GuideVariant: guideVariant,
		Referrer:     c.Request().Referer(),
		Attachments:  attachments,
	})
	if err != nil {
		return apierrors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, models.IntakeResponse{
		OK:           result.OK,
		SubmissionID: result.SubmissionID,
		Score:        result.Score,
		Priority:     result.Priority,
		Profile:      result.Profile,
		Pathway:      result.Pathway,
		PriceHint:    result.PriceHint,
	})
}

// parseSubmission reads the form fields and any uploads out of a JSON or
// multipart request body.
func (h *IntakeHandler) parseSubmission(c echo.Context) (form.Fields, []mailer.Attachment, error) {
	contentType := c.Request().Header.Get(echo.HeaderContentType)

	if strings.HasPrefix(contentType, echo.MIMEMultipartForm) {
		return h.parseMultipart(c)
	}

	fields := form.Fields{}
	if err := c.Bind(&fields); err != nil {
		return nil, nil, fmt.Errorf("invalid request body: %w", err)
	}
	return fields, nil, nil
}

func (h *IntakeHandler) parseMultipart(c echo.Context) (form.Fields, []mailer.Attachment, error) {
	mf, err := c.MultipartForm()
	if err != nil {
		return nil, nil, fmt.Errorf("invalid multipart body: %w", err)
	}

	fields := form.Fields{}
	for key, values := range mf.Value {
		if len(values) == 1 {
			fields[key] = values[0]
		} else if len(values) > 1 {
			fields[key] = strings.Join(values, ",")
		}
	}

	var attachments []mailer.Attachment
	for _, files := range mf.File {
		for _, fh := range files {
			if len(attachments) >= maxUploadFiles {
				return nil, nil, fmt.Errorf("too many uploaded files (limit %d)", maxUploadFiles)
			}
			if fh.Size > maxUploadFileSize {
				return nil, nil, fmt.Errorf("uploaded file %s is too large (limit %d bytes)", fh.Filename, int64(maxUploadFileSize))
			}

			src, err := fh.Open()
			if err != nil {
				return nil, nil, fmt.Errorf("failed to open upload %s: %w", fh.Filename, err)
			}
			content, err := io.ReadAll(io.LimitReader(src, maxUploadFileSize+1))
			src.Close()
			if err != nil {
				return nil, nil, fmt.Errorf("failed to read upload %s: %w", fh.Filename, err)
			}
			if len(content) > maxUploadFileSize {
				return nil, nil, fmt.Errorf("uploaded file %s is too large (limit %d bytes)", fh.Filename, int64(maxUploadFileSize))
			}

			contentType := fh.Header.Get("Content-Type")
			if contentType == "" {
				contentType = "application/octet-stream"
			}
			attachments = append(attachments, mailer.Attachment{
				Filename:    fh.Filename,
				ContentType: contentType,
				Content:     content,
			})
		}
	}

	return fields, attachments, nil
}
