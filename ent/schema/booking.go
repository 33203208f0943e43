package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Booking holds the schema definition for the Booking entity.
// A booking is a consultation known to this system via the scheduling webhook.
type Booking struct {
	ent.Schema
}

// Fields of the Booking.
func (Booking) Fields() []ent.Field {
	return []ent.Field{
		field.String("email").
			NotEmpty().
			Comment("Invitee email, lower-cased"),

		field.Enum("kind").
			Values("general", "estate", "business", "brand", "counsel", "vip").
			Default("general").
			Comment("Consultation type"),

		field.Enum("status").
			Values("scheduled", "completed", "cancelled").
			Default("scheduled").
			Comment("Booking status"),

		field.Time("scheduled_at").
			Optional().
			Nillable().
			Comment("When the consultation is scheduled to happen"),

		field.Enum("source").
			Values("webhook", "manual").
			Default("webhook").
			Comment("How the booking entered the system"),

		field.JSON("payload", map[string]interface{}{}).
			Optional().
			Comment("Raw scheduling-service payload retained for audit"),

		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Creation timestamp"),

		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last update timestamp"),
	}
}

// Indexes of the Booking.
func (Booking) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("email", "status").
			StorageKey("idx_booking_email_status"),

		// Webhook idempotency is keyed by (email, scheduled_at, event kind).
		index.Fields("email", "scheduled_at").
			StorageKey("idx_booking_email_time"),
	}
}
