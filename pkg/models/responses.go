package models

// ErrorResponse is the JSON shape of every error reply.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// IntakeResponse is the JSON reply for a successful intake submission.
type IntakeResponse struct {
	OK           bool   `json:"ok"`
	SubmissionID string `json:"submission_id"`
	Score        int    `json:"score"`
	Priority     string `json:"priority"`
	Profile      string `json:"profile"`
	Pathway      string `json:"pathway"`
	PriceHint    string `json:"price_hint,omitempty"`
}

// WebhookResponse acknowledges a webhook delivery.
type WebhookResponse struct {
	Received bool `json:"received"`
}
