package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Interaction holds the schema definition for the Interaction entity.
// Interactions are append-only: rows are never updated or deleted.
type Interaction struct {
	ent.Schema
}

// Fields of the Interaction.
func (Interaction) Fields() []ent.Field {
	return []ent.Field{
		field.Int("lead_id").
			Positive().
			Comment("Lead this interaction belongs to"),

		field.String("kind").
			NotEmpty().
			Comment("Interaction kind, e.g. form_submitted, email_sent, booking_created"),

		field.JSON("detail", map[string]interface{}{}).
			Optional().
			Comment("Opaque detail payload"),

		field.Time("at").
			Default(time.Now).
			Immutable().
			Comment("When the interaction happened"),
	}
}

// Edges of the Interaction.
func (Interaction) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("lead", Lead.Type).
			Ref("interactions").
			Field("lead_id").
			Unique().
			Required(),
	}
}

// Indexes of the Interaction.
func (Interaction) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("lead_id", "at").
			StorageKey("idx_interaction_lead_time"),

		index.Fields("kind").
			StorageKey("idx_interaction_kind"),
	}
}
