package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Enrollment holds the schema definition for the Enrollment entity.
// One enrollment is one lead's active instance of one pathway.
type Enrollment struct {
	ent.Schema
}

// Fields of the Enrollment.
func (Enrollment) Fields() []ent.Field {
	return []ent.Field{
		field.Int("lead_id").
			Positive().
			Comment("Lead enrolled in this pathway"),

		field.String("email").
			NotEmpty().
			Comment("Denormalized lead email; supersession and booking events key on it"),

		field.String("pathway_name").
			NotEmpty().
			Comment("Name of the pathway in the catalog"),

		field.String("trigger").
			Default("intake").
			Comment("What caused the enrollment"),

		field.Enum("status").
			Values("active", "paused", "completed", "cancelled").
			Default("active").
			Comment("Enrollment status"),

		field.String("pause_reason").
			Optional().
			Nillable().
			Comment("Why the enrollment is paused, e.g. consultation booked"),

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

// Edges of the Enrollment.
func (Enrollment) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("lead", Lead.Type).
			Ref("enrollments").
			Field("lead_id").
			Unique().
			Required(),

		edge.To("messages", ScheduledMessage.Type).
			Comment("Scheduled messages owned by this enrollment"),
	}
}

// Indexes of the Enrollment.
func (Enrollment) Indexes() []ent.Index {
	return []ent.Index{
		// Supersession and booking pause/resume look up by email.
		index.Fields("email", "pathway_name", "status").
			StorageKey("idx_enrollment_email_pathway_status"),

		index.Fields("lead_id", "status").
			StorageKey("idx_enrollment_lead_status"),

		index.Fields("created_at").
			StorageKey("idx_enrollment_time"),
	}
}
