// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/counselflow/intake-api/ent/enrollment"
	"github.com/counselflow/intake-api/ent/interaction"
	"github.com/counselflow/intake-api/ent/lead"
	"github.com/counselflow/intake-api/ent/predicate"
)

// LeadUpdate is the builder for updating Lead entities.
type LeadUpdate struct {
	config
	hooks    []Hook
	mutation *LeadMutation
}

// Where appends a list predicates to the LeadUpdate builder.
func (_u *LeadUpdate) Where(ps ...predicate.Lead) *LeadUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEmail sets the "email" field.
func (_u *LeadUpdate) SetEmail(v string) *LeadUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableEmail(v *string) *LeadUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetFirstName sets the "first_name" field.
func (_u *LeadUpdate) SetFirstName(v string) *LeadUpdate {
	_u.mutation.SetFirstName(v)
	return _u
}

// SetNillableFirstName sets the "first_name" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableFirstName(v *string) *LeadUpdate {
	if v != nil {
		_u.SetFirstName(*v)
	}
	return _u
}

// SetLastName sets the "last_name" field.
func (_u *LeadUpdate) SetLastName(v string) *LeadUpdate {
	_u.mutation.SetLastName(v)
	return _u
}

// SetNillableLastName sets the "last_name" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableLastName(v *string) *LeadUpdate {
	if v != nil {
		_u.SetLastName(*v)
	}
	return _u
}

// SetPhone sets the "phone" field.
func (_u *LeadUpdate) SetPhone(v string) *LeadUpdate {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *LeadUpdate) SetNillablePhone(v *string) *LeadUpdate {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *LeadUpdate) ClearPhone() *LeadUpdate {
	_u.mutation.ClearPhone()
	return _u
}

// SetBusinessName sets the "business_name" field.
func (_u *LeadUpdate) SetBusinessName(v string) *LeadUpdate {
	_u.mutation.SetBusinessName(v)
	return _u
}

// SetNillableBusinessName sets the "business_name" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableBusinessName(v *string) *LeadUpdate {
	if v != nil {
		_u.SetBusinessName(*v)
	}
	return _u
}

// ClearBusinessName clears the value of the "business_name" field.
func (_u *LeadUpdate) ClearBusinessName() *LeadUpdate {
	_u.mutation.ClearBusinessName()
	return _u
}

// SetSubmissionKind sets the "submission_kind" field.
func (_u *LeadUpdate) SetSubmissionKind(v lead.SubmissionKind) *LeadUpdate {
	_u.mutation.SetSubmissionKind(v)
	return _u
}

// SetNillableSubmissionKind sets the "submission_kind" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableSubmissionKind(v *lead.SubmissionKind) *LeadUpdate {
	if v != nil {
		_u.SetSubmissionKind(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *LeadUpdate) SetScore(v int) *LeadUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableScore(v *int) *LeadUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *LeadUpdate) AddScore(v int) *LeadUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetPriority sets the "priority" field.
func (_u *LeadUpdate) SetPriority(v lead.Priority) *LeadUpdate {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *LeadUpdate) SetNillablePriority(v *lead.Priority) *LeadUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetProfile sets the "profile" field.
func (_u *LeadUpdate) SetProfile(v string) *LeadUpdate {
	_u.mutation.SetProfile(v)
	return _u
}

// SetNillableProfile sets the "profile" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableProfile(v *string) *LeadUpdate {
	if v != nil {
		_u.SetProfile(*v)
	}
	return _u
}

// SetFormData sets the "form_data" field.
func (_u *LeadUpdate) SetFormData(v map[string]interface{}) *LeadUpdate {
	_u.mutation.SetFormData(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LeadUpdate) SetUpdatedAt(v time.Time) *LeadUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddInteractionIDs adds the "interactions" edge to the Interaction entity by IDs.
func (_u *LeadUpdate) AddInteractionIDs(ids ...int) *LeadUpdate {
	_u.mutation.AddInteractionIDs(ids...)
	return _u
}

// AddInteractions adds the "interactions" edges to the Interaction entity.
func (_u *LeadUpdate) AddInteractions(v ...*Interaction) *LeadUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddInteractionIDs(ids...)
}

// AddEnrollmentIDs adds the "enrollments" edge to the Enrollment entity by IDs.
func (_u *LeadUpdate) AddEnrollmentIDs(ids ...int) *LeadUpdate {
	_u.mutation.AddEnrollmentIDs(ids...)
	return _u
}

// AddEnrollments adds the "enrollments" edges to the Enrollment entity.
func (_u *LeadUpdate) AddEnrollments(v ...*Enrollment) *LeadUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEnrollmentIDs(ids...)
}

// Mutation returns the LeadMutation object of the builder.
func (_u *LeadUpdate) Mutation() *LeadMutation {
	return _u.mutation
}

// ClearInteractions clears all "interactions" edges to the Interaction entity.
func (_u *LeadUpdate) ClearInteractions() *LeadUpdate {
	_u.mutation.ClearInteractions()
	return _u
}

// RemoveInteractionIDs removes the "interactions" edge to Interaction entities by IDs.
func (_u *LeadUpdate) RemoveInteractionIDs(ids ...int) *LeadUpdate {
	_u.mutation.RemoveInteractionIDs(ids...)
	return _u
}

// RemoveInteractions removes "interactions" edges to Interaction entities.
func (_u *LeadUpdate) RemoveInteractions(v ...*Interaction) *LeadUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveInteractionIDs(ids...)
}

// ClearEnrollments clears all "enrollments" edges to the Enrollment entity.
func (_u *LeadUpdate) ClearEnrollments() *LeadUpdate {
	_u.mutation.ClearEnrollments()
	return _u
}

// RemoveEnrollmentIDs removes the "enrollments" edge to Enrollment entities by IDs.
func (_u *LeadUpdate) RemoveEnrollmentIDs(ids ...int) *LeadUpdate {
	_u.mutation.RemoveEnrollmentIDs(ids...)
	return _u
}

// RemoveEnrollments removes "enrollments" edges to Enrollment entities.
func (_u *LeadUpdate) RemoveEnrollments(v ...*Enrollment) *LeadUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEnrollmentIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LeadUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LeadUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LeadUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LeadUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LeadUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := lead.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LeadUpdate) check() error {
	if v, ok := _u.mutation.Email(); ok {
		if err := lead.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "Lead.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SubmissionKind(); ok {
		if err := lead.SubmissionKindValidator(v); err != nil {
			return &ValidationError{Name: "submission_kind", err: fmt.Errorf(`ent: validator failed for field "Lead.submission_kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Score(); ok {
		if err := lead.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "Lead.score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := lead.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Lead.priority": %w`, err)}
		}
	}
	return nil
}

func (_u *LeadUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lead.Table, lead.Columns, sqlgraph.NewFieldSpec(lead.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(lead.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.FirstName(); ok {
		_spec.SetField(lead.FieldFirstName, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastName(); ok {
		_spec.SetField(lead.FieldLastName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(lead.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(lead.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.BusinessName(); ok {
		_spec.SetField(lead.FieldBusinessName, field.TypeString, value)
	}
	if _u.mutation.BusinessNameCleared() {
		_spec.ClearField(lead.FieldBusinessName, field.TypeString)
	}
	if value, ok := _u.mutation.SubmissionKind(); ok {
		_spec.SetField(lead.FieldSubmissionKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(lead.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(lead.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(lead.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Profile(); ok {
		_spec.SetField(lead.FieldProfile, field.TypeString, value)
	}
	if value, ok := _u.mutation.FormData(); ok {
		_spec.SetField(lead.FieldFormData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(lead.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.InteractionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   lead.InteractionsTable,
			Columns: []string{lead.InteractionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(interaction.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedInteractionsIDs(); len(nodes) > 0 && !_u.mutation.InteractionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   lead.InteractionsTable,
			Columns: []string{lead.InteractionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(interaction.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InteractionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   lead.InteractionsTable,
			Columns: []string{lead.InteractionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(interaction.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EnrollmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   lead.EnrollmentsTable,
			Columns: []string{lead.EnrollmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(enrollment.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEnrollmentsIDs(); len(nodes) > 0 && !_u.mutation.EnrollmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   lead.EnrollmentsTable,
			Columns: []string{lead.EnrollmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(enrollment.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EnrollmentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   lead.EnrollmentsTable,
			Columns: []string{lead.EnrollmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(enrollment.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lead.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LeadUpdateOne is the builder for updating a single Lead entity.
type LeadUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LeadMutation
}

// SetEmail sets the "email" field.
func (_u *LeadUpdateOne) SetEmail(v string) *LeadUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableEmail(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetFirstName sets the "first_name" field.
func (_u *LeadUpdateOne) SetFirstName(v string) *LeadUpdateOne {
	_u.mutation.SetFirstName(v)
	return _u
}

// SetNillableFirstName sets the "first_name" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableFirstName(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetFirstName(*v)
	}
	return _u
}

// SetLastName sets the "last_name" field.
func (_u *LeadUpdateOne) SetLastName(v string) *LeadUpdateOne {
	_u.mutation.SetLastName(v)
	return _u
}

// SetNillableLastName sets the "last_name" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableLastName(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetLastName(*v)
	}
	return _u
}

// SetPhone sets the "phone" field.
func (_u *LeadUpdateOne) SetPhone(v string) *LeadUpdateOne {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillablePhone(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *LeadUpdateOne) ClearPhone() *LeadUpdateOne {
	_u.mutation.ClearPhone()
	return _u
}

// SetBusinessName sets the "business_name" field.
func (_u *LeadUpdateOne) SetBusinessName(v string) *LeadUpdateOne {
	_u.mutation.SetBusinessName(v)
	return _u
}

// SetNillableBusinessName sets the "business_name" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableBusinessName(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetBusinessName(*v)
	}
	return _u
}

// ClearBusinessName clears the value of the "business_name" field.
func (_u *LeadUpdateOne) ClearBusinessName() *LeadUpdateOne {
	_u.mutation.ClearBusinessName()
	return _u
}

// SetSubmissionKind sets the "submission_kind" field.
func (_u *LeadUpdateOne) SetSubmissionKind(v lead.SubmissionKind) *LeadUpdateOne {
	_u.mutation.SetSubmissionKind(v)
	return _u
}

// SetNillableSubmissionKind sets the "submission_kind" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableSubmissionKind(v *lead.SubmissionKind) *LeadUpdateOne {
	if v != nil {
		_u.SetSubmissionKind(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *LeadUpdateOne) SetScore(v int) *LeadUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableScore(v *int) *LeadUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *LeadUpdateOne) AddScore(v int) *LeadUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetPriority sets the "priority" field.
func (_u *LeadUpdateOne) SetPriority(v lead.Priority) *LeadUpdateOne {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillablePriority(v *lead.Priority) *LeadUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetProfile sets the "profile" field.
func (_u *LeadUpdateOne) SetProfile(v string) *LeadUpdateOne {
	_u.mutation.SetProfile(v)
	return _u
}

// SetNillableProfile sets the "profile" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableProfile(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetProfile(*v)
	}
	return _u
}

// SetFormData sets the "form_data" field.
func (_u *LeadUpdateOne) SetFormData(v map[string]interface{}) *LeadUpdateOne {
	_u.mutation.SetFormData(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LeadUpdateOne) SetUpdatedAt(v time.Time) *LeadUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddInteractionIDs adds the "interactions" edge to the Interaction entity by IDs.
func (_u *LeadUpdateOne) AddInteractionIDs(ids ...int) *LeadUpdateOne {
	_u.mutation.AddInteractionIDs(ids...)
	return _u
}

// AddInteractions adds the "interactions" edges to the Interaction entity.
func (_u *LeadUpdateOne) AddInteractions(v ...*Interaction) *LeadUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddInteractionIDs(ids...)
}

// AddEnrollmentIDs adds the "enrollments" edge to the Enrollment entity by IDs.
func (_u *LeadUpdateOne) AddEnrollmentIDs(ids ...int) *LeadUpdateOne {
	_u.mutation.AddEnrollmentIDs(ids...)
	return _u
}

// AddEnrollments adds the "enrollments" edges to the Enrollment entity.
func (_u *LeadUpdateOne) AddEnrollments(v ...*Enrollment) *LeadUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEnrollmentIDs(ids...)
}

// Mutation returns the LeadMutation object of the builder.
func (_u *LeadUpdateOne) Mutation() *LeadMutation {
	return _u.mutation
}

// ClearInteractions clears all "interactions" edges to the Interaction entity.
func (_u *LeadUpdateOne) ClearInteractions() *LeadUpdateOne {
	_u.mutation.ClearInteractions()
	return _u
}

// RemoveInteractionIDs removes the "interactions" edge to Interaction entities by IDs.
func (_u *LeadUpdateOne) RemoveInteractionIDs(ids ...int) *LeadUpdateOne {
	_u.mutation.RemoveInteractionIDs(ids...)
	return _u
}

// RemoveInteractions removes "interactions" edges to Interaction entities.
func (_u *LeadUpdateOne) RemoveInteractions(v ...*Interaction) *LeadUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveInteractionIDs(ids...)
}

// ClearEnrollments clears all "enrollments" edges to the Enrollment entity.
func (_u *LeadUpdateOne) ClearEnrollments() *LeadUpdateOne {
	_u.mutation.ClearEnrollments()
	return _u
}

// RemoveEnrollmentIDs removes the "enrollments" edge to Enrollment entities by IDs.
func (_u *LeadUpdateOne) RemoveEnrollmentIDs(ids ...int) *LeadUpdateOne {
	_u.mutation.RemoveEnrollmentIDs(ids...)
	return _u
}

// RemoveEnrollments removes "enrollments" edges to Enrollment entities.
func (_u *LeadUpdateOne) RemoveEnrollments(v ...*Enrollment) *LeadUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEnrollmentIDs(ids...)
}

// Where appends a list predicates to the LeadUpdate builder.
func (_u *LeadUpdateOne) Where(ps ...predicate.Lead) *LeadUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LeadUpdateOne) Select(field string, fields ...string) *LeadUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Lead entity.
func (_u *LeadUpdateOne) Save(ctx context.Context) (*Lead, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LeadUpdateOne) SaveX(ctx context.Context) *Lead {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LeadUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LeadUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LeadUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := lead.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LeadUpdateOne) check() error {
	if v, ok := _u.mutation.Email(); ok {
		if err := lead.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "Lead.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SubmissionKind(); ok {
		if err := lead.SubmissionKindValidator(v); err != nil {
			return &ValidationError{Name: "submission_kind", err: fmt.Errorf(`ent: validator failed for field "Lead.submission_kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Score(); ok {
		if err := lead.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "Lead.score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := lead.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Lead.priority": %w`, err)}
		}
	}
	return nil
}

func (_u *LeadUpdateOne) sqlSave(ctx context.Context) (_node *Lead, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lead.Table, lead.Columns, sqlgraph.NewFieldSpec(lead.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Lead.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, lead.FieldID)
		for _, f := range fields {
			if !lead.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != lead.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(lead.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.FirstName(); ok {
		_spec.SetField(lead.FieldFirstName, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastName(); ok {
		_spec.SetField(lead.FieldLastName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(lead.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(lead.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.BusinessName(); ok {
		_spec.SetField(lead.FieldBusinessName, field.TypeString, value)
	}
	if _u.mutation.BusinessNameCleared() {
		_spec.ClearField(lead.FieldBusinessName, field.TypeString)
	}
	if value, ok := _u.mutation.SubmissionKind(); ok {
		_spec.SetField(lead.FieldSubmissionKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(lead.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(lead.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(lead.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Profile(); ok {
		_spec.SetField(lead.FieldProfile, field.TypeString, value)
	}
	if value, ok := _u.mutation.FormData(); ok {
		_spec.SetField(lead.FieldFormData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(lead.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.InteractionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   lead.InteractionsTable,
			Columns: []string{lead.InteractionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(interaction.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedInteractionsIDs(); len(nodes) > 0 && !_u.mutation.InteractionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   lead.InteractionsTable,
			Columns: []string{lead.InteractionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(interaction.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InteractionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   lead.InteractionsTable,
			Columns: []string{lead.InteractionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(interaction.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EnrollmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   lead.EnrollmentsTable,
			Columns: []string{lead.EnrollmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(enrollment.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEnrollmentsIDs(); len(nodes) > 0 && !_u.mutation.EnrollmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   lead.EnrollmentsTable,
			Columns: []string{lead.EnrollmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(enrollment.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EnrollmentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   lead.EnrollmentsTable,
			Columns: []string{lead.EnrollmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(enrollment.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Lead{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lead.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
