package mailer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProvider records sends and fails on demand.
type fakeProvider struct {
	name string
	err  error
	sent []Message
}

func (p *fakeProvider) Name() string { return p.name }

func (p *fakeProvider) Send(_ context.Context, msg Message) error {
	if p.err != nil {
		return p.err
	}
	p.sent = append(p.sent, msg)
	return nil
}

func TestDispatcher_Send(t *testing.T) {
	msg := Message{To: "lead@example.com", Subject: "Welcome", HTML: "<p>hi</p>"}

	t.Run("Success - first provider accepts", func(t *testing.T) {
		primary := &fakeProvider{name: "graph"}
		backup := &fakeProvider{name: "sendgrid"}
		d := NewDispatcher([]Provider{primary, backup}, time.Second)

		provider, err := d.Send(context.Background(), msg)
		require.NoError(t, err)
		assert.Equal(t, "graph", provider)
		assert.Len(t, primary.sent, 1)
		assert.Empty(t, backup.sent)
	})

	t.Run("Success - fails over in order", func(t *testing.T) {
		primary := &fakeProvider{name: "graph", err: errors.New("401 unauthorized")}
		backup := &fakeProvider{name: "sendgrid"}
		d := NewDispatcher([]Provider{primary, backup}, time.Second)

		provider, err := d.Send(context.Background(), msg)
		require.NoError(t, err)
		assert.Equal(t, "sendgrid", provider)
		assert.Len(t, backup.sent, 1)
	})

	t.Run("Error - all providers fail", func(t *testing.T) {
		cause := errors.New("smtp timeout")
		d := NewDispatcher([]Provider{
			&fakeProvider{name: "graph", err: errors.New("401 unauthorized")},
			&fakeProvider{name: "smtp", err: cause},
		}, time.Second)

		provider, err := d.Send(context.Background(), msg)
		require.Error(t, err)
		assert.Empty(t, provider)

		var sendErr *SendError
		require.ErrorAs(t, err, &sendErr)
		assert.Equal(t, "smtp", sendErr.Provider)
		assert.ErrorIs(t, err, cause)
	})

	t.Run("Error - no providers configured", func(t *testing.T) {
		d := NewDispatcher(nil, time.Second)
		_, err := d.Send(context.Background(), msg)
		require.Error(t, err)
	})

	t.Run("Error - cancelled context stops the chain", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		skipped := &fakeProvider{name: "sendgrid"}
		d := NewDispatcher([]Provider{
			&fakeProvider{name: "graph", err: errors.New("refused")},
			skipped,
		}, time.Second)

		_, err := d.Send(ctx, msg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "send aborted")
		assert.Empty(t, skipped.sent)
	})
}

func TestDispatcher_Providers(t *testing.T) {
	d := NewDispatcher([]Provider{
		&fakeProvider{name: "graph"},
		&fakeProvider{name: "resend"},
	}, 0)
	assert.Equal(t, []string{"graph", "resend"}, d.Providers())
}

func TestBuildProviders(t *testing.T) {
	t.Run("Success - full chain in failover order", func(t *testing.T) {
		providers := BuildProviders(ProviderConfig{
			GraphTenantID:     "tenant",
			GraphClientID:     "client",
			GraphClientSecret: "secret",
			SendGridAPIKey:    "sg-key",
			ResendAPIKey:      "re-key",
			MailgunDomain:     "mg.example.com",
			MailgunAPIKey:     "mg-key",
			SMTPHost:          "smtp.example.com",
			SMTPPort:          587,
			SMTPUser:          "mailer",
			SMTPPassword:      "hunter2",
			FromEmail:         "intake@example.com",
			FromName:          "Intake",
		})

		names := make([]string, 0, len(providers))
		for _, p := range providers {
			names = append(names, p.Name())
		}
		assert.Equal(t, []string{"graph", "sendgrid", "resend", "mailgun", "smtp"}, names)
	})

	t.Run("Success - empty config falls back to console", func(t *testing.T) {
		providers := BuildProviders(ProviderConfig{FromEmail: "intake@example.com"})
		require.Len(t, providers, 1)
		assert.Equal(t, "console", providers[0].Name())
	})
}

func TestSendError(t *testing.T) {
	cause := errors.New("boom")
	err := &SendError{Provider: "graph", Err: cause}
	assert.Equal(t, "provider graph: boom", err.Error())
	assert.ErrorIs(t, err, cause)
}
