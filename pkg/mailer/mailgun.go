package mailer

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

const mailgunBaseURL = "https://api.mailgun.net/v3"

// MailgunProvider delivers through the Mailgun messages API.
type MailgunProvider struct {
	domain    string
	apiKey    string
	fromEmail string
	fromName  string
	baseURL   string
	http      *http.Client
}

func NewMailgunProvider(domain, apiKey, fromEmail, fromName string) *MailgunProvider {
	return &MailgunProvider{
		domain:    domain,
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
		baseURL:   mailgunBaseURL,
		http:      &http.Client{Timeout: 15 * time.Second},
	}
}

func (p *MailgunProvider) Name() string { return "mailgun" }

func (p *MailgunProvider) Send(ctx context.Context, msg Message) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fields := map[string]string{
		"from":    fmt.Sprintf("%s <%s>", p.fromName, p.fromEmail),
		"to":      msg.To,
		"subject": msg.Subject,
		"html":    msg.HTML,
	}
	if msg.PlainText != "" {
		fields["text"] = msg.PlainText
	}
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return fmt.Errorf("failed to build mailgun form: %w", err)
		}
	}

	for _, att := range msg.Attachments {
		fw, err := w.CreateFormFile("attachment", att.Filename)
		if err != nil {
			return fmt.Errorf("failed to attach %s: %w", att.Filename, err)
		}
		if _, err := fw.Write(att.Content); err != nil {
			return fmt.Errorf("failed to attach %s: %w", att.Filename, err)
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to finalize mailgun form: %w", err)
	}

	endpoint := fmt.Sprintf("%s/%s/messages", p.baseURL, p.domain)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &buf)
	if err != nil {
		return err
	}
	req.SetBasicAuth("api", p.apiKey)
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := p.http.Do(req)
	if err != nil {
		return fmt.Errorf("mailgun request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("mailgun returned status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}
