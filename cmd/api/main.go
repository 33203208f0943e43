package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/counselflow/intake-api/config"
	"github.com/counselflow/intake-api/pkg/api/handlers"
	"github.com/counselflow/intake-api/pkg/booking"
	"github.com/counselflow/intake-api/pkg/cache"
	"github.com/counselflow/intake-api/pkg/clock"
	"github.com/counselflow/intake-api/pkg/crm"
	"github.com/counselflow/intake-api/pkg/database"
	"github.com/counselflow/intake-api/pkg/dispatch"
	"github.com/counselflow/intake-api/pkg/drip"
	"github.com/counselflow/intake-api/pkg/esp"
	"github.com/counselflow/intake-api/pkg/intake"
	"github.com/counselflow/intake-api/pkg/mailer"
	"github.com/counselflow/intake-api/pkg/metrics"
	custommiddleware "github.com/counselflow/intake-api/pkg/middleware"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err == nil {
		log.Printf("🔧 Loaded configuration from .env")
	}

	cfg := config.Load()
	log.Printf("🔧 Configuration loaded (environment: %s)", cfg.APIEnvironment)

	// Initialize Sentry for error tracking
	if cfg.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			Environment:      cfg.APIEnvironment,
			AttachStacktrace: true,
		})
		if err != nil {
			log.Printf("⚠️  Failed to initialize Sentry: %v", err)
		} else {
			log.Printf("✅ Sentry initialized")
			defer sentry.Flush(2 * time.Second)
		}
	} else {
		log.Printf("ℹ️  Sentry disabled (no DSN configured)")
	}

	// Initialize database
	db, err := database.NewClient(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Initialize Redis cache. The pipeline degrades to database-backed
	// idempotency checks without it.
	redisClient, err := cache.NewClient(cfg.RedisURL)
	if err != nil {
		log.Printf("⚠️  Redis unavailable, webhook idempotency falls back to database: %v", err)
		redisClient = nil
	} else {
		defer redisClient.Close()
	}

	// Initialize Prometheus metrics
	prometheusMetrics := metrics.New()
	log.Printf("✅ Prometheus metrics initialized")

	// Email failover chain
	providers := mailer.BuildProviders(mailer.ProviderConfig{
		GraphTenantID:     cfg.GraphTenantID,
		GraphClientID:     cfg.GraphClientID,
		GraphClientSecret: cfg.GraphClientSecret,
		SendGridAPIKey:    cfg.SendGridAPIKey,
		ResendAPIKey:      cfg.ResendAPIKey,
		MailgunDomain:     cfg.MailgunDomain,
		MailgunAPIKey:     cfg.MailgunAPIKey,
		SMTPHost:          cfg.SMTPHost,
		SMTPPort:          cfg.SMTPPort,
		SMTPUser:          cfg.SMTPUser,
		SMTPPassword:      cfg.SMTPPassword,
		FromEmail:         cfg.FromEmail,
		FromName:          cfg.FromName,
	})
	mailDispatcher := mailer.NewDispatcher(providers, cfg.FanoutCallTimeout)
	log.Printf("✅ Email providers configured: %v", mailDispatcher.Providers())

	// Integrations
	crmClient := crm.NewClient(cfg.CRMBaseURL, cfg.CRMAPIKey, cfg.CRMSource)
	if crmClient.Enabled() {
		log.Printf("✅ CRM sync enabled")
	} else {
		log.Printf("ℹ️  CRM sync disabled (no API key configured)")
	}
	espClient := esp.NewClient(cfg.ESPBaseURL, cfg.ESPAPIKey)
	if espClient.Enabled() {
		log.Printf("✅ ESP sync enabled")
	} else {
		log.Printf("ℹ️  ESP sync disabled (no API key configured)")
	}

	// Core pipeline services
	clk := clock.New()
	enroller := drip.NewEnroller(db.Ent, clk)
	coordinator := intake.NewCoordinator(db.Ent, clk, enroller, mailDispatcher, crmClient, espClient, prometheusMetrics, intake.Options{
		InternalAlertTo: cfg.InternalAlertTo,
		FanoutLimit:     cfg.FanoutLimit,
		CallTimeout:     cfg.FanoutCallTimeout,
		FanoutWait:      cfg.FanoutWait,
	})
	bookingService := booking.NewService(db.Ent, redisClient, clk, enroller, prometheusMetrics, booking.Options{
		ResumeGap: cfg.BookingResumeGap,
	})

	// Dispatch worker and scheduler
	worker := dispatch.NewWorker(db.Ent, mailDispatcher, clk, prometheusMetrics, dispatch.Options{
		BatchSize:   cfg.DispatchBatchSize,
		MaxAttempts: cfg.DispatchMaxAttempts,
		Backoff:     cfg.DispatchBackoff,
		BookingURL:  cfg.BookingURL,
	})
	dispatchManager := dispatch.NewManager(worker, db.Ent, cfg.DispatchInterval, nil)
	if err := dispatchManager.SetupJobs(); err != nil {
		log.Fatalf("❌ Failed to set up cron jobs: %v", err)
	}
	dispatchManager.Start()

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true

	// Rate limiters: intake forms get the configured public ceiling, webhooks
	// a higher one since the scheduler batches deliveries.
	formRateLimiter := custommiddleware.NewRateLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow, cfg.RateLimitBurst)
	webhookRateLimiter := custommiddleware.NewRateLimiter(100, time.Minute, 20)

	// Global middleware
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Printf("[%s] %s - Status: %d", c.Request().Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(middleware.Recover())

	if cfg.SentryDSN != "" {
		e.Use(sentryecho.New(sentryecho.Options{
			Repanic: true,
		}))
	}

	e.Use(prometheusMetrics.Middleware())
	e.Use(middleware.CORSWithConfig(custommiddleware.CORSConfig(cfg.CORSAllowedOrigins)))
	e.Use(custommiddleware.SecurityHeaders(custommiddleware.SecurityHeadersConfig{}))
	e.Use(middleware.Secure())
	e.Use(middleware.Gzip())
	e.Use(middleware.BodyLimit("80M"))

	// Handlers
	intakeHandler := handlers.NewIntakeHandler(coordinator)
	webhookHandler := handlers.NewWebhookHandler(bookingService)
	healthHandler := handlers.NewHealthHandler(db.Ent, redisClient)
	dashboardHandler := handlers.NewDashboardHandler(db.Ent)

	// Root and operational endpoints
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"name":        "CounselFlow Intake API",
			"status":      "running",
			"environment": cfg.APIEnvironment,
			"timestamp":   time.Now().Unix(),
		})
	})
	e.GET("/health", healthHandler.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Public intake endpoints
	forms := e.Group("", formRateLimiter.RateLimitMiddleware())
	forms.POST("/estate-intake", intakeHandler.EstateIntake)
	forms.POST("/business-formation-intake", intakeHandler.BusinessFormationIntake)
	forms.POST("/brand-protection-intake", intakeHandler.BrandProtectionIntake)
	forms.POST("/gaming-legal-intake", intakeHandler.GamingLegalIntake)
	forms.POST("/outside-counsel", intakeHandler.OutsideCounsel)
	forms.POST("/legal-strategy-builder", intakeHandler.LegalStrategyBuilder)
	forms.POST("/legal-risk-assessment", intakeHandler.RiskAssessment)
	forms.POST("/newsletter-signup", intakeHandler.NewsletterSignup)
	forms.POST("/add-subscriber", intakeHandler.AddSubscriber)
	forms.POST("/resource-guide-download", intakeHandler.ResourceGuideDownload)
	forms.POST("/business-guide-download", intakeHandler.BusinessGuideDownload)
	forms.POST("/brand-guide-download", intakeHandler.BrandGuideDownload)
	forms.POST("/estate-guide-download", intakeHandler.EstateGuideDownload)

	// Scheduling webhooks
	hooks := e.Group("/webhook", webhookRateLimiter.RateLimitMiddleware())
	hooks.POST("/calendly", webhookHandler.Calendly)
	hooks.POST("/booking-completed", webhookHandler.BookingCompleted)

	// Internal dashboard projections
	dashboard := e.Group("/dashboard")
	dashboard.GET("/leads", dashboardHandler.RecentLeads)
	dashboard.GET("/leads/:submission_id", dashboardHandler.LeadDetail)
	dashboard.GET("/stats", dashboardHandler.Stats)

	address := fmt.Sprintf("%s:%s", cfg.APIHost, cfg.APIPort)
	log.Printf("🚀 Intake API starting on %s", address)
	log.Printf("🛡️  Rate limiting: %d req per %s (burst: %d)", cfg.RateLimitRequests, cfg.RateLimitWindow, cfg.RateLimitBurst)
	log.Printf("⏰ Dispatch: every %s, batch %d, max attempts %d", cfg.DispatchInterval, cfg.DispatchBatchSize, cfg.DispatchMaxAttempts)

	// Graceful shutdown
	go func() {
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	dispatchManager.Stop()
	log.Println("✅ Dispatch scheduler stopped")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server gracefully stopped")
}
