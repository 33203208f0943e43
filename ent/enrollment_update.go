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
	"github.com/counselflow/intake-api/ent/lead"
	"github.com/counselflow/intake-api/ent/predicate"
	"github.com/counselflow/intake-api/ent/scheduledmessage"
)

// EnrollmentUpdate is the builder for updating Enrollment entities.
type EnrollmentUpdate struct {
	config
	hooks    []Hook
	mutation *EnrollmentMutation
}

// Where appends a list predicates to the EnrollmentUpdate builder.
func (_u *EnrollmentUpdate) Where(ps ...predicate.Enrollment) *EnrollmentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLeadID sets the "lead_id" field.
func (_u *EnrollmentUpdate) SetLeadID(v int) *EnrollmentUpdate {
	_u.mutation.SetLeadID(v)
	return _u
}

// SetNillableLeadID sets the "lead_id" field if the given value is not nil.
func (_u *EnrollmentUpdate) SetNillableLeadID(v *int) *EnrollmentUpdate {
	if v != nil {
		_u.SetLeadID(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *EnrollmentUpdate) SetEmail(v string) *EnrollmentUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *EnrollmentUpdate) SetNillableEmail(v *string) *EnrollmentUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetPathwayName sets the "pathway_name" field.
func (_u *EnrollmentUpdate) SetPathwayName(v string) *EnrollmentUpdate {
	_u.mutation.SetPathwayName(v)
	return _u
}

// SetNillablePathwayName sets the "pathway_name" field if the given value is not nil.
func (_u *EnrollmentUpdate) SetNillablePathwayName(v *string) *EnrollmentUpdate {
	if v != nil {
		_u.SetPathwayName(*v)
	}
	return _u
}

// SetTrigger sets the "trigger" field.
func (_u *EnrollmentUpdate) SetTrigger(v string) *EnrollmentUpdate {
	_u.mutation.SetTrigger(v)
	return _u
}

// SetNillableTrigger sets the "trigger" field if the given value is not nil.
func (_u *EnrollmentUpdate) SetNillableTrigger(v *string) *EnrollmentUpdate {
	if v != nil {
		_u.SetTrigger(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *EnrollmentUpdate) SetStatus(v enrollment.Status) *EnrollmentUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *EnrollmentUpdate) SetNillableStatus(v *enrollment.Status) *EnrollmentUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPauseReason sets the "pause_reason" field.
func (_u *EnrollmentUpdate) SetPauseReason(v string) *EnrollmentUpdate {
	_u.mutation.SetPauseReason(v)
	return _u
}

// SetNillablePauseReason sets the "pause_reason" field if the given value is not nil.
func (_u *EnrollmentUpdate) SetNillablePauseReason(v *string) *EnrollmentUpdate {
	if v != nil {
		_u.SetPauseReason(*v)
	}
	return _u
}

// ClearPauseReason clears the value of the "pause_reason" field.
func (_u *EnrollmentUpdate) ClearPauseReason() *EnrollmentUpdate {
	_u.mutation.ClearPauseReason()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EnrollmentUpdate) SetUpdatedAt(v time.Time) *EnrollmentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetLead sets the "lead" edge to the Lead entity.
func (_u *EnrollmentUpdate) SetLead(v *Lead) *EnrollmentUpdate {
	return _u.SetLeadID(v.ID)
}

// AddMessageIDs adds the "messages" edge to the ScheduledMessage entity by IDs.
func (_u *EnrollmentUpdate) AddMessageIDs(ids ...int) *EnrollmentUpdate {
	_u.mutation.AddMessageIDs(ids...)
	return _u
}

// AddMessages adds the "messages" edges to the ScheduledMessage entity.
func (_u *EnrollmentUpdate) AddMessages(v ...*ScheduledMessage) *EnrollmentUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMessageIDs(ids...)
}

// Mutation returns the EnrollmentMutation object of the builder.
func (_u *EnrollmentUpdate) Mutation() *EnrollmentMutation {
	return _u.mutation
}

// ClearLead clears the "lead" edge to the Lead entity.
func (_u *EnrollmentUpdate) ClearLead() *EnrollmentUpdate {
	_u.mutation.ClearLead()
	return _u
}

// ClearMessages clears all "messages" edges to the ScheduledMessage entity.
func (_u *EnrollmentUpdate) ClearMessages() *EnrollmentUpdate {
	_u.mutation.ClearMessages()
	return _u
}

// RemoveMessageIDs removes the "messages" edge to ScheduledMessage entities by IDs.
func (_u *EnrollmentUpdate) RemoveMessageIDs(ids ...int) *EnrollmentUpdate {
	_u.mutation.RemoveMessageIDs(ids...)
	return _u
}

// RemoveMessages removes "messages" edges to ScheduledMessage entities.
func (_u *EnrollmentUpdate) RemoveMessages(v ...*ScheduledMessage) *EnrollmentUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMessageIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EnrollmentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EnrollmentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EnrollmentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EnrollmentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EnrollmentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := enrollment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EnrollmentUpdate) check() error {
	if v, ok := _u.mutation.LeadID(); ok {
		if err := enrollment.LeadIDValidator(v); err != nil {
			return &ValidationError{Name: "lead_id", err: fmt.Errorf(`ent: validator failed for field "Enrollment.lead_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := enrollment.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "Enrollment.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PathwayName(); ok {
		if err := enrollment.PathwayNameValidator(v); err != nil {
			return &ValidationError{Name: "pathway_name", err: fmt.Errorf(`ent: validator failed for field "Enrollment.pathway_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := enrollment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Enrollment.status": %w`, err)}
		}
	}
	if _u.mutation.LeadCleared() && len(_u.mutation.LeadIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Enrollment.lead"`)
	}
	return nil
}

func (_u *EnrollmentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(enrollment.Table, enrollment.Columns, sqlgraph.NewFieldSpec(enrollment.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(enrollment.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.PathwayName(); ok {
		_spec.SetField(enrollment.FieldPathwayName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Trigger(); ok {
		_spec.SetField(enrollment.FieldTrigger, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(enrollment.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PauseReason(); ok {
		_spec.SetField(enrollment.FieldPauseReason, field.TypeString, value)
	}
	if _u.mutation.PauseReasonCleared() {
		_spec.ClearField(enrollment.FieldPauseReason, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(enrollment.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.LeadCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   enrollment.LeadTable,
			Columns: []string{enrollment.LeadColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lead.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LeadIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   enrollment.LeadTable,
			Columns: []string{enrollment.LeadColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lead.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   enrollment.MessagesTable,
			Columns: []string{enrollment.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scheduledmessage.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMessagesIDs(); len(nodes) > 0 && !_u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   enrollment.MessagesTable,
			Columns: []string{enrollment.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scheduledmessage.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MessagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   enrollment.MessagesTable,
			Columns: []string{enrollment.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scheduledmessage.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{enrollment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EnrollmentUpdateOne is the builder for updating a single Enrollment entity.
type EnrollmentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EnrollmentMutation
}

// SetLeadID sets the "lead_id" field.
func (_u *EnrollmentUpdateOne) SetLeadID(v int) *EnrollmentUpdateOne {
	_u.mutation.SetLeadID(v)
	return _u
}

// SetNillableLeadID sets the "lead_id" field if the given value is not nil.
func (_u *EnrollmentUpdateOne) SetNillableLeadID(v *int) *EnrollmentUpdateOne {
	if v != nil {
		_u.SetLeadID(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *EnrollmentUpdateOne) SetEmail(v string) *EnrollmentUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *EnrollmentUpdateOne) SetNillableEmail(v *string) *EnrollmentUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetPathwayName sets the "pathway_name" field.
func (_u *EnrollmentUpdateOne) SetPathwayName(v string) *EnrollmentUpdateOne {
	_u.mutation.SetPathwayName(v)
	return _u
}

// SetNillablePathwayName sets the "pathway_name" field if the given value is not nil.
func (_u *EnrollmentUpdateOne) SetNillablePathwayName(v *string) *EnrollmentUpdateOne {
	if v != nil {
		_u.SetPathwayName(*v)
	}
	return _u
}

// SetTrigger sets the "trigger" field.
func (_u *EnrollmentUpdateOne) SetTrigger(v string) *EnrollmentUpdateOne {
	_u.mutation.SetTrigger(v)
	return _u
}

// SetNillableTrigger sets the "trigger" field if the given value is not nil.
func (_u *EnrollmentUpdateOne) SetNillableTrigger(v *string) *EnrollmentUpdateOne {
	if v != nil {
		_u.SetTrigger(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *EnrollmentUpdateOne) SetStatus(v enrollment.Status) *EnrollmentUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *EnrollmentUpdateOne) SetNillableStatus(v *enrollment.Status) *EnrollmentUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPauseReason sets the "pause_reason" field.
func (_u *EnrollmentUpdateOne) SetPauseReason(v string) *EnrollmentUpdateOne {
	_u.mutation.SetPauseReason(v)
	return _u
}

// SetNillablePauseReason sets the "pause_reason" field if the given value is not nil.
func (_u *EnrollmentUpdateOne) SetNillablePauseReason(v *string) *EnrollmentUpdateOne {
	if v != nil {
		_u.SetPauseReason(*v)
	}
	return _u
}

// ClearPauseReason clears the value of the "pause_reason" field.
func (_u *EnrollmentUpdateOne) ClearPauseReason() *EnrollmentUpdateOne {
	_u.mutation.ClearPauseReason()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EnrollmentUpdateOne) SetUpdatedAt(v time.Time) *EnrollmentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetLead sets the "lead" edge to the Lead entity.
func (_u *EnrollmentUpdateOne) SetLead(v *Lead) *EnrollmentUpdateOne {
	return _u.SetLeadID(v.ID)
}

// AddMessageIDs adds the "messages" edge to the ScheduledMessage entity by IDs.
func (_u *EnrollmentUpdateOne) AddMessageIDs(ids ...int) *EnrollmentUpdateOne {
	_u.mutation.AddMessageIDs(ids...)
	return _u
}

// AddMessages adds the "messages" edges to the ScheduledMessage entity.
func (_u *EnrollmentUpdateOne) AddMessages(v ...*ScheduledMessage) *EnrollmentUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMessageIDs(ids...)
}

// Mutation returns the EnrollmentMutation object of the builder.
func (_u *EnrollmentUpdateOne) Mutation() *EnrollmentMutation {
	return _u.mutation
}

// ClearLead clears the "lead" edge to the Lead entity.
func (_u *EnrollmentUpdateOne) ClearLead() *EnrollmentUpdateOne {
	_u.mutation.ClearLead()
	return _u
}

// ClearMessages clears all "messages" edges to the ScheduledMessage entity.
func (_u *EnrollmentUpdateOne) ClearMessages() *EnrollmentUpdateOne {
	_u.mutation.ClearMessages()
	return _u
}

// RemoveMessageIDs removes the "messages" edge to ScheduledMessage entities by IDs.
func (_u *EnrollmentUpdateOne) RemoveMessageIDs(ids ...int) *EnrollmentUpdateOne {
	_u.mutation.RemoveMessageIDs(ids...)
	return _u
}

// RemoveMessages removes "messages" edges to ScheduledMessage entities.
func (_u *EnrollmentUpdateOne) RemoveMessages(v ...*ScheduledMessage) *EnrollmentUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMessageIDs(ids...)
}

// Where appends a list predicates to the EnrollmentUpdate builder.
func (_u *EnrollmentUpdateOne) Where(ps ...predicate.Enrollment) *EnrollmentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EnrollmentUpdateOne) Select(field string, fields ...string) *EnrollmentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Enrollment entity.
func (_u *EnrollmentUpdateOne) Save(ctx context.Context) (*Enrollment, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EnrollmentUpdateOne) SaveX(ctx context.Context) *Enrollment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EnrollmentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EnrollmentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EnrollmentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := enrollment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EnrollmentUpdateOne) check() error {
	if v, ok := _u.mutation.LeadID(); ok {
		if err := enrollment.LeadIDValidator(v); err != nil {
			return &ValidationError{Name: "lead_id", err: fmt.Errorf(`ent: validator failed for field "Enrollment.lead_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := enrollment.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "Enrollment.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PathwayName(); ok {
		if err := enrollment.PathwayNameValidator(v); err != nil {
			return &ValidationError{Name: "pathway_name", err: fmt.Errorf(`ent: validator failed for field "Enrollment.pathway_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := enrollment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Enrollment.status": %w`, err)}
		}
	}
	if _u.mutation.LeadCleared() && len(_u.mutation.LeadIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Enrollment.lead"`)
	}
	return nil
}

func (_u *EnrollmentUpdateOne) sqlSave(ctx context.Context) (_node *Enrollment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(enrollment.Table, enrollment.Columns, sqlgraph.NewFieldSpec(enrollment.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Enrollment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, enrollment.FieldID)
		for _, f := range fields {
			if !enrollment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != enrollment.FieldID {
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
		_spec.SetField(enrollment.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.PathwayName(); ok {
		_spec.SetField(enrollment.FieldPathwayName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Trigger(); ok {
		_spec.SetField(enrollment.FieldTrigger, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(enrollment.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PauseReason(); ok {
		_spec.SetField(enrollment.FieldPauseReason, field.TypeString, value)
	}
	if _u.mutation.PauseReasonCleared() {
		_spec.ClearField(enrollment.FieldPauseReason, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(enrollment.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.LeadCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   enrollment.LeadTable,
			Columns: []string{enrollment.LeadColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lead.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LeadIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   enrollment.LeadTable,
			Columns: []string{enrollment.LeadColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lead.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   enrollment.MessagesTable,
			Columns: []string{enrollment.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scheduledmessage.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMessagesIDs(); len(nodes) > 0 && !_u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   enrollment.MessagesTable,
			Columns: []string{enrollment.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scheduledmessage.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MessagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   enrollment.MessagesTable,
			Columns: []string{enrollment.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scheduledmessage.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Enrollment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{enrollment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
