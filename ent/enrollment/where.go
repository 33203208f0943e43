// Code generated by ent, DO NOT EDIT.

package enrollment

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/counselflow/intake-api/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldLTE(FieldID, id))
}

// LeadID applies equality check predicate on the "lead_id" field. It's identical to LeadIDEQ.
func LeadID(v int) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldEQ(FieldLeadID, v))
}

// Email applies equality check predicate on the "email" field. It's identical to EmailEQ.
func Email(v string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldEQ(FieldEmail, v))
}

// PathwayName applies equality check predicate on the "pathway_name" field. It's identical to PathwayNameEQ.
func PathwayName(v string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldEQ(FieldPathwayName, v))
}

// Trigger applies equality check predicate on the "trigger" field. It's identical to TriggerEQ.
func Trigger(v string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldEQ(FieldTrigger, v))
}

// PauseReason applies equality check predicate on the "pause_reason" field. It's identical to PauseReasonEQ.
func PauseReason(v string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldEQ(FieldPauseReason, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldEQ(FieldUpdatedAt, v))
}

// LeadIDEQ applies the EQ predicate on the "lead_id" field.
func LeadIDEQ(v int) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldEQ(FieldLeadID, v))
}

// LeadIDNEQ applies the NEQ predicate on the "lead_id" field.
func LeadIDNEQ(v int) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldNEQ(FieldLeadID, v))
}

// LeadIDIn applies the In predicate on the "lead_id" field.
func LeadIDIn(vs ...int) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldIn(FieldLeadID, vs...))
}

// LeadIDNotIn applies the NotIn predicate on the "lead_id" field.
func LeadIDNotIn(vs ...int) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldNotIn(FieldLeadID, vs...))
}

// EmailEQ applies the EQ predicate on the "email" field.
func EmailEQ(v string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldEQ(FieldEmail, v))
}

// EmailNEQ applies the NEQ predicate on the "email" field.
func EmailNEQ(v string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldNEQ(FieldEmail, v))
}

// EmailIn applies the In predicate on the "email" field.
func EmailIn(vs ...string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldIn(FieldEmail, vs...))
}

// EmailNotIn applies the NotIn predicate on the "email" field.
func EmailNotIn(vs ...string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldNotIn(FieldEmail, vs...))
}

// EmailGT applies the GT predicate on the "email" field.
func EmailGT(v string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldGT(FieldEmail, v))
}

// EmailGTE applies the GTE predicate on the "email" field.
func EmailGTE(v string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldGTE(FieldEmail, v))
}

// EmailLT applies the LT predicate on the "email" field.
func EmailLT(v string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldLT(FieldEmail, v))
}

// EmailLTE applies the LTE predicate on the "email" field.
func EmailLTE(v string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldLTE(FieldEmail, v))
}

// EmailContains applies the Contains predicate on the "email" field.
func EmailContains(v string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldContains(FieldEmail, v))
}

// EmailHasPrefix applies the HasPrefix predicate on the "email" field.
func EmailHasPrefix(v string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldHasPrefix(FieldEmail, v))
}

// EmailHasSuffix applies the HasSuffix predicate on the "email" field.
func EmailHasSuffix(v string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldHasSuffix(FieldEmail, v))
}

// EmailEqualFold applies the EqualFold predicate on the "email" field.
func EmailEqualFold(v string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldEqualFold(FieldEmail, v))
}

// EmailContainsFold applies the ContainsFold predicate on the "email" field.
func EmailContainsFold(v string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldContainsFold(FieldEmail, v))
}

// PathwayNameEQ applies the EQ predicate on the "pathway_name" field.
func PathwayNameEQ(v string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldEQ(FieldPathwayName, v))
}

// PathwayNameNEQ applies the NEQ predicate on the "pathway_name" field.
func PathwayNameNEQ(v string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldNEQ(FieldPathwayName, v))
}

// PathwayNameIn applies the In predicate on the "pathway_name" field.
func PathwayNameIn(vs ...string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldIn(FieldPathwayName, vs...))
}

// PathwayNameNotIn applies the NotIn predicate on the "pathway_name" field.
func PathwayNameNotIn(vs ...string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldNotIn(FieldPathwayName, vs...))
}

// PathwayNameGT applies the GT predicate on the "pathway_name" field.
func PathwayNameGT(v string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldGT(FieldPathwayName, v))
}

// PathwayNameGTE applies the GTE predicate on the "pathway_name" field.
func PathwayNameGTE(v string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldGTE(FieldPathwayName, v))
}

// PathwayNameLT applies the LT predicate on the "pathway_name" field.
func PathwayNameLT(v string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldLT(FieldPathwayName, v))
}

// PathwayNameLTE applies the LTE predicate on the "pathway_name" field.
func PathwayNameLTE(v string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldLTE(FieldPathwayName, v))
}

// PathwayNameContains applies the Contains predicate on the "pathway_name" field.
func PathwayNameContains(v string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldContains(FieldPathwayName, v))
}

// PathwayNameHasPrefix applies the HasPrefix predicate on the "pathway_name" field.
func PathwayNameHasPrefix(v string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldHasPrefix(FieldPathwayName, v))
}

// PathwayNameHasSuffix applies the HasSuffix predicate on the "pathway_name" field.
func PathwayNameHasSuffix(v string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldHasSuffix(FieldPathwayName, v))
}

// PathwayNameEqualFold applies the EqualFold predicate on the "pathway_name" field.
func PathwayNameEqualFold(v string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldEqualFold(FieldPathwayName, v))
}

// PathwayNameContainsFold applies the ContainsFold predicate on the "pathway_name" field.
func PathwayNameContainsFold(v string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldContainsFold(FieldPathwayName, v))
}

// TriggerEQ applies the EQ predicate on the "trigger" field.
func TriggerEQ(v string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldEQ(FieldTrigger, v))
}

// TriggerNEQ applies the NEQ predicate on the "trigger" field.
func TriggerNEQ(v string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldNEQ(FieldTrigger, v))
}

// TriggerIn applies the In predicate on the "trigger" field.
func TriggerIn(vs ...string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldIn(FieldTrigger, vs...))
}

// TriggerNotIn applies the NotIn predicate on the "trigger" field.
func TriggerNotIn(vs ...string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldNotIn(FieldTrigger, vs...))
}

// TriggerGT applies the GT predicate on the "trigger" field.
func TriggerGT(v string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldGT(FieldTrigger, v))
}

// TriggerGTE applies the GTE predicate on the "trigger" field.
func TriggerGTE(v string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldGTE(FieldTrigger, v))
}

// TriggerLT applies the LT predicate on the "trigger" field.
func TriggerLT(v string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldLT(FieldTrigger, v))
}

// TriggerLTE applies the LTE predicate on the "trigger" field.
func TriggerLTE(v string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldLTE(FieldTrigger, v))
}

// TriggerContains applies the Contains predicate on the "trigger" field.
func TriggerContains(v string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldContains(FieldTrigger, v))
}

// TriggerHasPrefix applies the HasPrefix predicate on the "trigger" field.
func TriggerHasPrefix(v string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldHasPrefix(FieldTrigger, v))
}

// TriggerHasSuffix applies the HasSuffix predicate on the "trigger" field.
func TriggerHasSuffix(v string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldHasSuffix(FieldTrigger, v))
}

// TriggerEqualFold applies the EqualFold predicate on the "trigger" field.
func TriggerEqualFold(v string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldEqualFold(FieldTrigger, v))
}

// TriggerContainsFold applies the ContainsFold predicate on the "trigger" field.
func TriggerContainsFold(v string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldContainsFold(FieldTrigger, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldNotIn(FieldStatus, vs...))
}

// PauseReasonEQ applies the EQ predicate on the "pause_reason" field.
func PauseReasonEQ(v string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldEQ(FieldPauseReason, v))
}

// PauseReasonNEQ applies the NEQ predicate on the "pause_reason" field.
func PauseReasonNEQ(v string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldNEQ(FieldPauseReason, v))
}

// PauseReasonIn applies the In predicate on the "pause_reason" field.
func PauseReasonIn(vs ...string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldIn(FieldPauseReason, vs...))
}

// PauseReasonNotIn applies the NotIn predicate on the "pause_reason" field.
func PauseReasonNotIn(vs ...string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldNotIn(FieldPauseReason, vs...))
}

// PauseReasonGT applies the GT predicate on the "pause_reason" field.
func PauseReasonGT(v string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldGT(FieldPauseReason, v))
}

// PauseReasonGTE applies the GTE predicate on the "pause_reason" field.
func PauseReasonGTE(v string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldGTE(FieldPauseReason, v))
}

// PauseReasonLT applies the LT predicate on the "pause_reason" field.
func PauseReasonLT(v string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldLT(FieldPauseReason, v))
}

// PauseReasonLTE applies the LTE predicate on the "pause_reason" field.
func PauseReasonLTE(v string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldLTE(FieldPauseReason, v))
}

// PauseReasonContains applies the Contains predicate on the "pause_reason" field.
func PauseReasonContains(v string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldContains(FieldPauseReason, v))
}

// PauseReasonHasPrefix applies the HasPrefix predicate on the "pause_reason" field.
func PauseReasonHasPrefix(v string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldHasPrefix(FieldPauseReason, v))
}

// PauseReasonHasSuffix applies the HasSuffix predicate on the "pause_reason" field.
func PauseReasonHasSuffix(v string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldHasSuffix(FieldPauseReason, v))
}

// PauseReasonIsNil applies the IsNil predicate on the "pause_reason" field.
func PauseReasonIsNil() predicate.Enrollment {
	return predicate.Enrollment(sql.FieldIsNull(FieldPauseReason))
}

// PauseReasonNotNil applies the NotNil predicate on the "pause_reason" field.
func PauseReasonNotNil() predicate.Enrollment {
	return predicate.Enrollment(sql.FieldNotNull(FieldPauseReason))
}

// PauseReasonEqualFold applies the EqualFold predicate on the "pause_reason" field.
func PauseReasonEqualFold(v string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldEqualFold(FieldPauseReason, v))
}

// PauseReasonContainsFold applies the ContainsFold predicate on the "pause_reason" field.
func PauseReasonContainsFold(v string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldContainsFold(FieldPauseReason, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasLead applies the HasEdge predicate on the "lead" edge.
func HasLead() predicate.Enrollment {
	return predicate.Enrollment(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, LeadTable, LeadColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLeadWith applies the HasEdge predicate on the "lead" edge with a given conditions (other predicates).
func HasLeadWith(preds ...predicate.Lead) predicate.Enrollment {
	return predicate.Enrollment(func(s *sql.Selector) {
		step := newLeadStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasMessages applies the HasEdge predicate on the "messages" edge.
func HasMessages() predicate.Enrollment {
	return predicate.Enrollment(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, MessagesTable, MessagesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMessagesWith applies the HasEdge predicate on the "messages" edge with a given conditions (other predicates).
func HasMessagesWith(preds ...predicate.ScheduledMessage) predicate.Enrollment {
	return predicate.Enrollment(func(s *sql.Selector) {
		step := newMessagesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Enrollment) predicate.Enrollment {
	return predicate.Enrollment(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Enrollment) predicate.Enrollment {
	return predicate.Enrollment(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Enrollment) predicate.Enrollment {
	return predicate.Enrollment(sql.NotPredicates(p))
}
