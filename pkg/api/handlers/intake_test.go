package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/counselflow/intake-api/ent"
	"github.com/counselflow/intake-api/ent/enttest"
	"github.com/counselflow/intake-api/ent/lead"
	"github.com/counselflow/intake-api/pkg/clock"
	"github.com/counselflow/intake-api/pkg/drip"
	"github.com/counselflow/intake-api/pkg/intake"
	"github.com/counselflow/intake-api/pkg/mailer"
)

func setupIntakeHandler(t *testing.T) (*IntakeHandler, *ent.Client) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	t.Cleanup(func() { client.Close() })

	clk := clock.NewMock(time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC))
	dispatcher := mailer.NewDispatcher([]mailer.Provider{&mailer.ConsoleProvider{}}, time.Second)
	coordinator := intake.NewCoordinator(client, clk, drip.NewEnroller(client, clk), dispatcher, nil, nil, nil, intake.Options{
		FanoutWait: 5 * time.Second,
	})
	return NewIntakeHandler(coordinator), client
}

func TestEstateIntake(t *testing.T) {
	t.Run("Success - JSON submission", func(t *testing.T) {
		h, client := setupIntakeHandler(t)

		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/estate-intake", strings.NewReader(`{
			"email": "jordan@example.com",
			"first_name": "Jordan",
			"gross_estate": "2500000",
			"message": "Need a trust"
		}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()

		require.NoError(t, h.EstateIntake(e.NewContext(req, rec)))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"ok":true`)
		assert.Contains(t, rec.Body.String(), "Estate plans start at")

		ld, err := client.Lead.Query().Only(t.Context())
		require.NoError(t, err)
		assert.Equal(t, lead.SubmissionKindEstate, ld.SubmissionKind)
		assert.Equal(t, "Jordan", ld.FirstName)
	})

	t.Run("Error - invalid email", func(t *testing.T) {
		h, client := setupIntakeHandler(t)

		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/estate-intake", strings.NewReader(`{"email": "not-an-email"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()

		require.NoError(t, h.EstateIntake(e.NewContext(req, rec)))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "validation_error")

		count, err := client.Lead.Query().Count(t.Context())
		require.NoError(t, err)
		assert.Zero(t, count)
	})
}

func TestIntake_Multipart(t *testing.T) {
	buildMultipart := func(t *testing.T, fileSize int) (*bytes.Buffer, string) {
		var buf bytes.Buffer
		w := multipart.NewWriter(&buf)
		require.NoError(t, w.WriteField("email", "gm@studioco.gg"))
		require.NoError(t, w.WriteField("first_name", "Alex"))
		require.NoError(t, w.WriteField("revenue_streams", "sponsorships"))
		require.NoError(t, w.WriteField("revenue_streams", "streaming"))
		if fileSize > 0 {
			fw, err := w.CreateFormFile("contract", "contract.pdf")
			require.NoError(t, err)
			_, err = fw.Write(bytes.Repeat([]byte("a"), fileSize))
			require.NoError(t, err)
		}
		require.NoError(t, w.Close())
		return &buf, w.FormDataContentType()
	}

	t.Run("Success - fields and upload", func(t *testing.T) {
		h, client := setupIntakeHandler(t)

		body, contentType := buildMultipart(t, 1024)
		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/gaming-legal-intake", body)
		req.Header.Set(echo.HeaderContentType, contentType)
		rec := httptest.NewRecorder()

		require.NoError(t, h.GamingLegalIntake(e.NewContext(req, rec)))
		assert.Equal(t, http.StatusOK, rec.Code)

		ld, err := client.Lead.Query().Only(t.Context())
		require.NoError(t, err)
		assert.Equal(t, lead.SubmissionKindGamingLegal, ld.SubmissionKind)
		// Repeated fields collapse into a comma-joined value.
		assert.Equal(t, "sponsorships,streaming", ld.FormData["revenue_streams"])
	})

	t.Run("Error - oversized upload", func(t *testing.T) {
		h, client := setupIntakeHandler(t)

		body, contentType := buildMultipart(t, maxUploadFileSize+1)
		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/gaming-legal-intake", body)
		req.Header.Set(echo.HeaderContentType, contentType)
		rec := httptest.NewRecorder()

		require.NoError(t, h.GamingLegalIntake(e.NewContext(req, rec)))
		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)

		count, err := client.Lead.Query().Count(t.Context())
		require.NoError(t, err)
		assert.Zero(t, count)
	})
}

func TestGuideDownloads(t *testing.T) {
	h, client := setupIntakeHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/brand-guide-download", strings.NewReader(`{"email": "reader@gmail.com"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.BrandGuideDownload(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"pathway":"guide-brand"`)

	ld, err := client.Lead.Query().Only(t.Context())
	require.NoError(t, err)
	assert.Equal(t, lead.SubmissionKindResourceGuide, ld.SubmissionKind)
}
