package mailer

import (
	"context"
	"fmt"
	"log"
	"time"
)

// Message is a provider-independent outbound email.
type Message struct {
	To          string
	ToName      string
	Subject     string
	HTML        string
	PlainText   string
	Attachments []Attachment
}

// Attachment is an in-memory file attached to a message.
type Attachment struct {
	Filename    string
	ContentType string
	Content     []byte
}

// Provider sends a message through one delivery channel.
type Provider interface {
	Name() string
	Send(ctx context.Context, msg Message) error
}

// SendError wraps a provider failure with the provider that produced it.
type SendError struct {
	Provider string
	Err      error
}

func (e *SendError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *SendError) Unwrap() error { return e.Err }

// Dispatcher tries providers in order until one accepts the message. Each
// attempt gets its own timeout so a hung provider cannot eat the whole chain's
// budget.
type Dispatcher struct {
	providers []Provider
	timeout   time.Duration
}

// NewDispatcher builds a dispatcher over the given providers, tried in order.
func NewDispatcher(providers []Provider, perProviderTimeout time.Duration) *Dispatcher {
	if perProviderTimeout <= 0 {
		perProviderTimeout = 15 * time.Second
	}
	return &Dispatcher{providers: providers, timeout: perProviderTimeout}
}

// Providers returns the configured provider names in failover order.
func (d *Dispatcher) Providers() []string {
	names := make([]string, len(d.providers))
	for i, p := range d.providers {
		names[i] = p.Name()
	}
	return names
}

// Send delivers the message via the first provider that accepts it, returning
// that provider's name. If every provider fails, the error wraps the last
// failure as a *SendError.
func (d *Dispatcher) Send(ctx context.Context, msg Message) (string, error) {
	if len(d.providers) == 0 {
		return "", fmt.Errorf("no email providers configured")
	}

	var last *SendError
	for _, p := range d.providers {
		pctx, cancel := context.WithTimeout(ctx, d.timeout)
		err := p.Send(pctx, msg)
		cancel()

		if err == nil {
			return p.Name(), nil
		}

		last = &SendError{Provider: p.Name(), Err: err}
		log.Printf("⚠️  Email provider %s failed for %s: %v", p.Name(), msg.To, err)

		if ctx.Err() != nil {
			return "", fmt.Errorf("send aborted: %w", last)
		}
	}

	return "", fmt.Errorf("all %d providers failed: %w", len(d.providers), last)
}
