package esp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client upserts subscribers into the firm's email service provider so the
// marketing side sees the same contacts the intake pipeline does. Key-gated.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Enabled reports whether ESP sync is configured.
func (c *Client) Enabled() bool {
	return c.apiKey != "" && c.baseURL != ""
}

// Subscriber is one contact plus its segmentation tags.
type Subscriber struct {
	Email     string   `json:"email"`
	FirstName string   `json:"first_name,omitempty"`
	Tags      []string `json:"tags,omitempty"`
}

// UpsertSubscriber creates or updates the subscriber, replacing its tags.
func (c *Client) UpsertSubscriber(ctx context.Context, sub Subscriber) error {
	if !c.Enabled() {
		return fmt.Errorf("esp client is not configured")
	}

	jsonBody, err := json.Marshal(sub)
	if err != nil {
		return fmt.Errorf("failed to marshal subscriber: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.baseURL+"/subscribers", bytes.NewBuffer(jsonBody))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("esp request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("esp returned status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}

// BuildTags derives the segmentation tags for a lead: its submission kind,
// client profile, and a temperature band from the score.
func BuildTags(kind, profile string, score int) []string {
	band := "cool"
	switch {
	case score >= 70:
		band = "hot"
	case score >= 50:
		band = "warm"
	}
	return []string{"intake:" + kind, "profile:" + profile, "lead:" + band}
}
