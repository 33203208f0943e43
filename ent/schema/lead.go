package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Lead holds the schema definition for the Lead entity.
type Lead struct {
	ent.Schema
}

// Fields of the Lead.
func (Lead) Fields() []ent.Field {
	return []ent.Field{
		field.String("submission_id").
			Unique().
			Immutable().
			Comment("Opaque public identifier returned to the submitting form"),

		field.String("email").
			NotEmpty().
			Comment("Lower-cased email; not unique, a person may submit repeatedly"),

		field.String("first_name").
			Default("").
			Comment("First name as submitted"),

		field.String("last_name").
			Default("").
			Comment("Last name as submitted"),

		field.String("phone").
			Optional().
			Comment("Phone in E.164 where it parsed, raw otherwise"),

		field.String("business_name").
			Optional().
			Comment("Business or company name if provided"),

		field.Enum("submission_kind").
			Values(
				"estate",
				"business_formation",
				"brand_protection",
				"outside_counsel",
				"legal_strategy",
				"legal_risk_assessment",
				"gaming_legal",
				"newsletter",
				"resource_guide",
			).
			Comment("Logical form type that produced this lead"),

		field.Int("score").
			Min(0).
			Max(100).
			Comment("Lead score 0..100"),

		field.Enum("priority").
			Values("standard", "medium", "high", "critical").
			Default("standard").
			Comment("Priority band derived from the score"),

		field.String("profile").
			Default("generic").
			Comment("Client profile classification"),

		field.JSON("form_data", map[string]interface{}{}).
			Comment("Submitted fields retained verbatim for rendering and audit"),

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

// Edges of the Lead.
func (Lead) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("interactions", Interaction.Type).
			Comment("Append-only audit log for this lead"),

		edge.To("enrollments", Enrollment.Type).
			Comment("Drip enrollments created for this lead"),
	}
}

// Indexes of the Lead.
func (Lead) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("email").
			StorageKey("idx_lead_email"),

		index.Fields("submission_kind", "created_at").
			StorageKey("idx_lead_kind_time"),

		index.Fields("score").
			StorageKey("idx_lead_score"),
	}
}
