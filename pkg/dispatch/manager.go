package dispatch

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/counselflow/intake-api/ent"
	"github.com/counselflow/intake-api/ent/enrollment"
	"github.com/counselflow/intake-api/ent/lead"
	"github.com/counselflow/intake-api/ent/scheduledmessage"
	"github.com/robfig/cron/v3"
)

// Manager runs the dispatch worker on a schedule.
type Manager struct {
	cron   *cron.Cron
	worker *Worker
	client *ent.Client
	logger *log.Logger
	every  time.Duration
}

// NewManager creates a manager ticking the worker at the given interval.
func NewManager(worker *Worker, client *ent.Client, every time.Duration, logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.Default()
	}
	if every <= 0 {
		every = time.Minute
	}
	return &Manager{
		cron:   cron.New(),
		worker: worker,
		client: client,
		logger: logger,
		every:  every,
	}
}

// SetupJobs configures all scheduled jobs
func (m *Manager) SetupJobs() error {
	m.logger.Println("Setting up cron jobs...")

	// Recurring: drain due messages.
	_, err := m.cron.AddFunc(fmt.Sprintf("@every %s", m.every), func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		sent, failed, err := m.worker.Tick(ctx)
		if err != nil {
			m.logger.Printf("❌ Dispatch tick failed: %v", err)
			if mm := m.worker.metrics; mm != nil {
				mm.RecordDispatchError()
			}
			return
		}
		if sent > 0 || failed > 0 {
			m.logger.Printf("📬 Dispatch tick: %d sent, %d failed", sent, failed)
		}
	})
	if err != nil {
		return err
	}

	// Daily at 6 AM: log pipeline statistics.
	_, err = m.cron.AddFunc("0 6 * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		m.logDailyStats(ctx)
	})
	if err != nil {
		return err
	}

	m.logger.Println("✅ Cron jobs configured successfully")
	m.logger.Printf("  - Every %s: dispatch due messages", m.every)
	m.logger.Println("  - Daily at 6 AM: log pipeline statistics")

	return nil
}

func (m *Manager) logDailyStats(ctx context.Context) {
	since := time.Now().Add(-24 * time.Hour)

	leads, err := m.client.Lead.Query().
		Where(lead.CreatedAtGTE(since)).
		Count(ctx)
	if err != nil {
		m.logger.Printf("❌ Failed to count recent leads: %v", err)
		return
	}
	sent, err := m.client.ScheduledMessage.Query().
		Where(
			scheduledmessage.StatusEQ(scheduledmessage.StatusSent),
			scheduledmessage.SentAtGTE(since),
		).
		Count(ctx)
	if err != nil {
		m.logger.Printf("❌ Failed to count sent messages: %v", err)
		return
	}
	pending, err := m.client.ScheduledMessage.Query().
		Where(scheduledmessage.StatusEQ(scheduledmessage.StatusPending)).
		Count(ctx)
	if err != nil {
		m.logger.Printf("❌ Failed to count pending messages: %v", err)
		return
	}
	active, err := m.client.Enrollment.Query().
		Where(enrollment.StatusEQ(enrollment.StatusActive)).
		Count(ctx)
	if err != nil {
		m.logger.Printf("❌ Failed to count active enrollments: %v", err)
		return
	}

	m.logger.Printf("📊 Pipeline statistics (last 24h):")
	m.logger.Printf("  New leads: %d", leads)
	m.logger.Printf("  Emails sent: %d", sent)
	m.logger.Printf("  Messages pending: %d", pending)
	m.logger.Printf("  Active enrollments: %d", active)
}

// Start starts the cron scheduler
func (m *Manager) Start() {
	m.logger.Println("🚀 Starting dispatch scheduler...")
	m.cron.Start()
}

// Stop stops the cron scheduler
func (m *Manager) Stop() {
	m.logger.Println("🛑 Stopping dispatch scheduler...")
	m.cron.Stop()
}
