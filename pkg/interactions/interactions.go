package interactions

// Interaction kinds recorded on the lead audit log.
const (
	FormSubmitted    = "form_submitted"
	EmailSent        = "email_sent"
	EmailSendFailed  = "email_send_failed"
	AlertSendFailed  = "alert_send_failed"
	CRMSyncFailed    = "crm_sync_failed"
	ESPSyncFailed    = "esp_sync_failed"
	BookingCreated   = "booking_created"
	BookingCancelled = "booking_cancelled"
	BookingCompleted = "booking_completed"
	DripPaused       = "drip_paused"
	DripResumed      = "drip_resumed"
)
