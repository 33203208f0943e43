package mailer

import (
	"context"
	"log"
)

// ProviderConfig holds credentials for every supported provider. Empty
// credentials disable that provider.
type ProviderConfig struct {
	GraphTenantID     string
	GraphClientID     string
	GraphClientSecret string

	SendGridAPIKey string

	ResendAPIKey string

	MailgunDomain string
	MailgunAPIKey string

	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string

	FromEmail string
	FromName  string
}

// BuildProviders assembles the failover chain from whatever credentials are
// configured: graph first, then sendgrid, resend, mailgun, smtp. With nothing
// configured the chain falls back to console logging so development
// environments still work.
func BuildProviders(cfg ProviderConfig) []Provider {
	var providers []Provider

	if cfg.GraphTenantID != "" && cfg.GraphClientID != "" && cfg.GraphClientSecret != "" {
		providers = append(providers, NewGraphProvider(cfg.GraphTenantID, cfg.GraphClientID, cfg.GraphClientSecret, cfg.FromEmail))
	}
	if cfg.SendGridAPIKey != "" {
		providers = append(providers, NewSendGridProvider(cfg.SendGridAPIKey, cfg.FromEmail, cfg.FromName))
	}
	if cfg.ResendAPIKey != "" {
		providers = append(providers, NewResendProvider(cfg.ResendAPIKey, cfg.FromEmail, cfg.FromName))
	}
	if cfg.MailgunDomain != "" && cfg.MailgunAPIKey != "" {
		providers = append(providers, NewMailgunProvider(cfg.MailgunDomain, cfg.MailgunAPIKey, cfg.FromEmail, cfg.FromName))
	}
	if cfg.SMTPHost != "" {
		providers = append(providers, NewSMTPProvider(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.FromEmail, cfg.FromName))
	}

	if len(providers) == 0 {
		log.Printf("⚠️  No email providers configured, falling back to console-only mode")
		providers = append(providers, &ConsoleProvider{})
	}

	return providers
}

// ConsoleProvider logs messages instead of sending them. Development only.
type ConsoleProvider struct{}

func (p *ConsoleProvider) Name() string { return "console" }

func (p *ConsoleProvider) Send(_ context.Context, msg Message) error {
	log.Printf("📧 [EMAIL] %s", msg.Subject)
	log.Printf("   To: %s <%s>", msg.ToName, msg.To)
	for _, att := range msg.Attachments {
		log.Printf("   Attachment: %s (%d bytes)", att.Filename, len(att.Content))
	}
	log.Printf("   ⚠️  Email NOT sent (development mode)")
	return nil
}
