package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ScheduledMessage holds the schema definition for the ScheduledMessage entity.
// A row is one pending/sent drip email. Orphan messages (enrollment_id null) are
// allowed for one-off sends such as booking confirmations.
type ScheduledMessage struct {
	ent.Schema
}

// Fields of the ScheduledMessage.
func (ScheduledMessage) Fields() []ent.Field {
	return []ent.Field{
		field.Int("enrollment_id").
			Optional().
			Nillable().
			Comment("Owning enrollment; null for orphan one-off messages"),

		field.String("email").
			NotEmpty().
			Comment("Recipient email"),

		field.String("first_name").
			Optional().
			Comment("Recipient first name for template rendering"),

		field.String("subject_template").
			NotEmpty().
			Comment("Subject line with substitution tokens"),

		field.String("body_template_id").
			NotEmpty().
			Comment("Identifier resolved by the template renderer"),

		field.Time("send_at").
			Comment("Absolute instant the message becomes due"),

		field.Enum("status").
			Values("pending", "paused", "sent", "failed", "cancelled").
			Default("pending").
			Comment("Delivery status"),

		field.Int("attempts").
			NonNegative().
			Default(0).
			Comment("Delivery attempts made so far"),

		field.Text("last_error").
			Optional().
			Comment("Last delivery error if any"),

		field.Time("sent_at").
			Optional().
			Nillable().
			Comment("When the message was actually sent"),

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

// Edges of the ScheduledMessage.
func (ScheduledMessage) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("enrollment", Enrollment.Type).
			Ref("messages").
			Field("enrollment_id").
			Unique(),
	}
}

// Indexes of the ScheduledMessage.
func (ScheduledMessage) Indexes() []ent.Index {
	return []ent.Index{
		// The dispatcher drains by (status, send_at).
		index.Fields("status", "send_at").
			StorageKey("idx_message_due"),

		index.Fields("enrollment_id", "status").
			StorageKey("idx_message_enrollment_status"),

		index.Fields("email", "status").
			StorageKey("idx_message_email_status"),
	}
}
