package crm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client posts new leads into the firm's CRM inbox. Key-gated: with no API
// key the client is disabled and callers skip the CRM step.
type Client struct {
	baseURL string
	apiKey  string
	source  string
	http    *http.Client
}

func NewClient(baseURL, apiKey, source string) *Client {
	if source == "" {
		source = "website-intake"
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		source:  source,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Enabled reports whether CRM sync is configured.
func (c *Client) Enabled() bool {
	return c.apiKey != "" && c.baseURL != ""
}

// Contact is the CRM-independent lead shape.
type Contact struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Message   string
	Referrer  string
}

type inboxLeadRequest struct {
	InboxLead struct {
		FromFirst    string `json:"from_first"`
		FromLast     string `json:"from_last"`
		FromEmail    string `json:"from_email"`
		FromPhone    string `json:"from_phone,omitempty"`
		FromMessage  string `json:"from_message,omitempty"`
		ReferringURL string `json:"referring_url,omitempty"`
		FromSource   string `json:"from_source"`
	} `json:"inbox_lead"`
	InboxLeadToken string `json:"inbox_lead_token"`
}

// CreateContact pushes one lead into the CRM inbox.
func (c *Client) CreateContact(ctx context.Context, contact Contact) error {
	if !c.Enabled() {
		return fmt.Errorf("crm client is not configured")
	}

	var payload inboxLeadRequest
	payload.InboxLead.FromFirst = contact.FirstName
	payload.InboxLead.FromLast = contact.LastName
	payload.InboxLead.FromEmail = contact.Email
	payload.InboxLead.FromPhone = contact.Phone
	payload.InboxLead.FromMessage = contact.Message
	payload.InboxLead.ReferringURL = contact.Referrer
	payload.InboxLead.FromSource = c.source
	payload.InboxLeadToken = c.apiKey

	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal crm contact: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/inbox_leads", bytes.NewBuffer(jsonBody))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("crm request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("crm returned status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}
