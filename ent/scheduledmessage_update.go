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
	"github.com/counselflow/intake-api/ent/predicate"
	"github.com/counselflow/intake-api/ent/scheduledmessage"
)

// ScheduledMessageUpdate is the builder for updating ScheduledMessage entities.
type ScheduledMessageUpdate struct {
	config
	hooks    []Hook
	mutation *ScheduledMessageMutation
}

// Where appends a list predicates to the ScheduledMessageUpdate builder.
func (_u *ScheduledMessageUpdate) Where(ps ...predicate.ScheduledMessage) *ScheduledMessageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEnrollmentID sets the "enrollment_id" field.
func (_u *ScheduledMessageUpdate) SetEnrollmentID(v int) *ScheduledMessageUpdate {
	_u.mutation.SetEnrollmentID(v)
	return _u
}

// SetNillableEnrollmentID sets the "enrollment_id" field if the given value is not nil.
func (_u *ScheduledMessageUpdate) SetNillableEnrollmentID(v *int) *ScheduledMessageUpdate {
	if v != nil {
		_u.SetEnrollmentID(*v)
	}
	return _u
}

// ClearEnrollmentID clears the value of the "enrollment_id" field.
func (_u *ScheduledMessageUpdate) ClearEnrollmentID() *ScheduledMessageUpdate {
	_u.mutation.ClearEnrollmentID()
	return _u
}

// SetEmail sets the "email" field.
func (_u *ScheduledMessageUpdate) SetEmail(v string) *ScheduledMessageUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *ScheduledMessageUpdate) SetNillableEmail(v *string) *ScheduledMessageUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetFirstName sets the "first_name" field.
func (_u *ScheduledMessageUpdate) SetFirstName(v string) *ScheduledMessageUpdate {
	_u.mutation.SetFirstName(v)
	return _u
}

// SetNillableFirstName sets the "first_name" field if the given value is not nil.
func (_u *ScheduledMessageUpdate) SetNillableFirstName(v *string) *ScheduledMessageUpdate {
	if v != nil {
		_u.SetFirstName(*v)
	}
	return _u
}

// ClearFirstName clears the value of the "first_name" field.
func (_u *ScheduledMessageUpdate) ClearFirstName() *ScheduledMessageUpdate {
	_u.mutation.ClearFirstName()
	return _u
}

// SetSubjectTemplate sets the "subject_template" field.
func (_u *ScheduledMessageUpdate) SetSubjectTemplate(v string) *ScheduledMessageUpdate {
	_u.mutation.SetSubjectTemplate(v)
	return _u
}

// SetNillableSubjectTemplate sets the "subject_template" field if the given value is not nil.
func (_u *ScheduledMessageUpdate) SetNillableSubjectTemplate(v *string) *ScheduledMessageUpdate {
	if v != nil {
		_u.SetSubjectTemplate(*v)
	}
	return _u
}

// SetBodyTemplateID sets the "body_template_id" field.
func (_u *ScheduledMessageUpdate) SetBodyTemplateID(v string) *ScheduledMessageUpdate {
	_u.mutation.SetBodyTemplateID(v)
	return _u
}

// SetNillableBodyTemplateID sets the "body_template_id" field if the given value is not nil.
func (_u *ScheduledMessageUpdate) SetNillableBodyTemplateID(v *string) *ScheduledMessageUpdate {
	if v != nil {
		_u.SetBodyTemplateID(*v)
	}
	return _u
}

// SetSendAt sets the "send_at" field.
func (_u *ScheduledMessageUpdate) SetSendAt(v time.Time) *ScheduledMessageUpdate {
	_u.mutation.SetSendAt(v)
	return _u
}

// SetNillableSendAt sets the "send_at" field if the given value is not nil.
func (_u *ScheduledMessageUpdate) SetNillableSendAt(v *time.Time) *ScheduledMessageUpdate {
	if v != nil {
		_u.SetSendAt(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ScheduledMessageUpdate) SetStatus(v scheduledmessage.Status) *ScheduledMessageUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ScheduledMessageUpdate) SetNillableStatus(v *scheduledmessage.Status) *ScheduledMessageUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *ScheduledMessageUpdate) SetAttempts(v int) *ScheduledMessageUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *ScheduledMessageUpdate) SetNillableAttempts(v *int) *ScheduledMessageUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *ScheduledMessageUpdate) AddAttempts(v int) *ScheduledMessageUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *ScheduledMessageUpdate) SetLastError(v string) *ScheduledMessageUpdate {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *ScheduledMessageUpdate) SetNillableLastError(v *string) *ScheduledMessageUpdate {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *ScheduledMessageUpdate) ClearLastError() *ScheduledMessageUpdate {
	_u.mutation.ClearLastError()
	return _u
}

// SetSentAt sets the "sent_at" field.
func (_u *ScheduledMessageUpdate) SetSentAt(v time.Time) *ScheduledMessageUpdate {
	_u.mutation.SetSentAt(v)
	return _u
}

// SetNillableSentAt sets the "sent_at" field if the given value is not nil.
func (_u *ScheduledMessageUpdate) SetNillableSentAt(v *time.Time) *ScheduledMessageUpdate {
	if v != nil {
		_u.SetSentAt(*v)
	}
	return _u
}

// ClearSentAt clears the value of the "sent_at" field.
func (_u *ScheduledMessageUpdate) ClearSentAt() *ScheduledMessageUpdate {
	_u.mutation.ClearSentAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ScheduledMessageUpdate) SetUpdatedAt(v time.Time) *ScheduledMessageUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetEnrollment sets the "enrollment" edge to the Enrollment entity.
func (_u *ScheduledMessageUpdate) SetEnrollment(v *Enrollment) *ScheduledMessageUpdate {
	return _u.SetEnrollmentID(v.ID)
}

// Mutation returns the ScheduledMessageMutation object of the builder.
func (_u *ScheduledMessageUpdate) Mutation() *ScheduledMessageMutation {
	return _u.mutation
}

// ClearEnrollment clears the "enrollment" edge to the Enrollment entity.
func (_u *ScheduledMessageUpdate) ClearEnrollment() *ScheduledMessageUpdate {
	_u.mutation.ClearEnrollment()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ScheduledMessageUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScheduledMessageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ScheduledMessageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScheduledMessageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ScheduledMessageUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := scheduledmessage.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScheduledMessageUpdate) check() error {
	if v, ok := _u.mutation.Email(); ok {
		if err := scheduledmessage.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "ScheduledMessage.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SubjectTemplate(); ok {
		if err := scheduledmessage.SubjectTemplateValidator(v); err != nil {
			return &ValidationError{Name: "subject_template", err: fmt.Errorf(`ent: validator failed for field "ScheduledMessage.subject_template": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BodyTemplateID(); ok {
		if err := scheduledmessage.BodyTemplateIDValidator(v); err != nil {
			return &ValidationError{Name: "body_template_id", err: fmt.Errorf(`ent: validator failed for field "ScheduledMessage.body_template_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := scheduledmessage.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ScheduledMessage.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Attempts(); ok {
		if err := scheduledmessage.AttemptsValidator(v); err != nil {
			return &ValidationError{Name: "attempts", err: fmt.Errorf(`ent: validator failed for field "ScheduledMessage.attempts": %w`, err)}
		}
	}
	return nil
}

func (_u *ScheduledMessageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scheduledmessage.Table, scheduledmessage.Columns, sqlgraph.NewFieldSpec(scheduledmessage.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(scheduledmessage.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.FirstName(); ok {
		_spec.SetField(scheduledmessage.FieldFirstName, field.TypeString, value)
	}
	if _u.mutation.FirstNameCleared() {
		_spec.ClearField(scheduledmessage.FieldFirstName, field.TypeString)
	}
	if value, ok := _u.mutation.SubjectTemplate(); ok {
		_spec.SetField(scheduledmessage.FieldSubjectTemplate, field.TypeString, value)
	}
	if value, ok := _u.mutation.BodyTemplateID(); ok {
		_spec.SetField(scheduledmessage.FieldBodyTemplateID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SendAt(); ok {
		_spec.SetField(scheduledmessage.FieldSendAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(scheduledmessage.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(scheduledmessage.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(scheduledmessage.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(scheduledmessage.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(scheduledmessage.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.SentAt(); ok {
		_spec.SetField(scheduledmessage.FieldSentAt, field.TypeTime, value)
	}
	if _u.mutation.SentAtCleared() {
		_spec.ClearField(scheduledmessage.FieldSentAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(scheduledmessage.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.EnrollmentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   scheduledmessage.EnrollmentTable,
			Columns: []string{scheduledmessage.EnrollmentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(enrollment.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EnrollmentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   scheduledmessage.EnrollmentTable,
			Columns: []string{scheduledmessage.EnrollmentColumn},
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
			err = &NotFoundError{scheduledmessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ScheduledMessageUpdateOne is the builder for updating a single ScheduledMessage entity.
type ScheduledMessageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ScheduledMessageMutation
}

// SetEnrollmentID sets the "enrollment_id" field.
func (_u *ScheduledMessageUpdateOne) SetEnrollmentID(v int) *ScheduledMessageUpdateOne {
	_u.mutation.SetEnrollmentID(v)
	return _u
}

// SetNillableEnrollmentID sets the "enrollment_id" field if the given value is not nil.
func (_u *ScheduledMessageUpdateOne) SetNillableEnrollmentID(v *int) *ScheduledMessageUpdateOne {
	if v != nil {
		_u.SetEnrollmentID(*v)
	}
	return _u
}

// ClearEnrollmentID clears the value of the "enrollment_id" field.
func (_u *ScheduledMessageUpdateOne) ClearEnrollmentID() *ScheduledMessageUpdateOne {
	_u.mutation.ClearEnrollmentID()
	return _u
}

// SetEmail sets the "email" field.
func (_u *ScheduledMessageUpdateOne) SetEmail(v string) *ScheduledMessageUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *ScheduledMessageUpdateOne) SetNillableEmail(v *string) *ScheduledMessageUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetFirstName sets the "first_name" field.
func (_u *ScheduledMessageUpdateOne) SetFirstName(v string) *ScheduledMessageUpdateOne {
	_u.mutation.SetFirstName(v)
	return _u
}

// SetNillableFirstName sets the "first_name" field if the given value is not nil.
func (_u *ScheduledMessageUpdateOne) SetNillableFirstName(v *string) *ScheduledMessageUpdateOne {
	if v != nil {
		_u.SetFirstName(*v)
	}
	return _u
}

// ClearFirstName clears the value of the "first_name" field.
func (_u *ScheduledMessageUpdateOne) ClearFirstName() *ScheduledMessageUpdateOne {
	_u.mutation.ClearFirstName()
	return _u
}

// SetSubjectTemplate sets the "subject_template" field.
func (_u *ScheduledMessageUpdateOne) SetSubjectTemplate(v string) *ScheduledMessageUpdateOne {
	_u.mutation.SetSubjectTemplate(v)
	return _u
}

// SetNillableSubjectTemplate sets the "subject_template" field if the given value is not nil.
func (_u *ScheduledMessageUpdateOne) SetNillableSubjectTemplate(v *string) *ScheduledMessageUpdateOne {
	if v != nil {
		_u.SetSubjectTemplate(*v)
	}
	return _u
}

// SetBodyTemplateID sets the "body_template_id" field.
func (_u *ScheduledMessageUpdateOne) SetBodyTemplateID(v string) *ScheduledMessageUpdateOne {
	_u.mutation.SetBodyTemplateID(v)
	return _u
}

// SetNillableBodyTemplateID sets the "body_template_id" field if the given value is not nil.
func (_u *ScheduledMessageUpdateOne) SetNillableBodyTemplateID(v *string) *ScheduledMessageUpdateOne {
	if v != nil {
		_u.SetBodyTemplateID(*v)
	}
	return _u
}

// SetSendAt sets the "send_at" field.
func (_u *ScheduledMessageUpdateOne) SetSendAt(v time.Time) *ScheduledMessageUpdateOne {
	_u.mutation.SetSendAt(v)
	return _u
}

// SetNillableSendAt sets the "send_at" field if the given value is not nil.
func (_u *ScheduledMessageUpdateOne) SetNillableSendAt(v *time.Time) *ScheduledMessageUpdateOne {
	if v != nil {
		_u.SetSendAt(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ScheduledMessageUpdateOne) SetStatus(v scheduledmessage.Status) *ScheduledMessageUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ScheduledMessageUpdateOne) SetNillableStatus(v *scheduledmessage.Status) *ScheduledMessageUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *ScheduledMessageUpdateOne) SetAttempts(v int) *ScheduledMessageUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *ScheduledMessageUpdateOne) SetNillableAttempts(v *int) *ScheduledMessageUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *ScheduledMessageUpdateOne) AddAttempts(v int) *ScheduledMessageUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *ScheduledMessageUpdateOne) SetLastError(v string) *ScheduledMessageUpdateOne {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *ScheduledMessageUpdateOne) SetNillableLastError(v *string) *ScheduledMessageUpdateOne {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *ScheduledMessageUpdateOne) ClearLastError() *ScheduledMessageUpdateOne {
	_u.mutation.ClearLastError()
	return _u
}

// SetSentAt sets the "sent_at" field.
func (_u *ScheduledMessageUpdateOne) SetSentAt(v time.Time) *ScheduledMessageUpdateOne {
	_u.mutation.SetSentAt(v)
	return _u
}

// SetNillableSentAt sets the "sent_at" field if the given value is not nil.
func (_u *ScheduledMessageUpdateOne) SetNillableSentAt(v *time.Time) *ScheduledMessageUpdateOne {
	if v != nil {
		_u.SetSentAt(*v)
	}
	return _u
}

// ClearSentAt clears the value of the "sent_at" field.
func (_u *ScheduledMessageUpdateOne) ClearSentAt() *ScheduledMessageUpdateOne {
	_u.mutation.ClearSentAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ScheduledMessageUpdateOne) SetUpdatedAt(v time.Time) *ScheduledMessageUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetEnrollment sets the "enrollment" edge to the Enrollment entity.
func (_u *ScheduledMessageUpdateOne) SetEnrollment(v *Enrollment) *ScheduledMessageUpdateOne {
	return _u.SetEnrollmentID(v.ID)
}

// Mutation returns the ScheduledMessageMutation object of the builder.
func (_u *ScheduledMessageUpdateOne) Mutation() *ScheduledMessageMutation {
	return _u.mutation
}

// ClearEnrollment clears the "enrollment" edge to the Enrollment entity.
func (_u *ScheduledMessageUpdateOne) ClearEnrollment() *ScheduledMessageUpdateOne {
	_u.mutation.ClearEnrollment()
	return _u
}

// Where appends a list predicates to the ScheduledMessageUpdate builder.
func (_u *ScheduledMessageUpdateOne) Where(ps ...predicate.ScheduledMessage) *ScheduledMessageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ScheduledMessageUpdateOne) Select(field string, fields ...string) *ScheduledMessageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ScheduledMessage entity.
func (_u *ScheduledMessageUpdateOne) Save(ctx context.Context) (*ScheduledMessage, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScheduledMessageUpdateOne) SaveX(ctx context.Context) *ScheduledMessage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ScheduledMessageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScheduledMessageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ScheduledMessageUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := scheduledmessage.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScheduledMessageUpdateOne) check() error {
	if v, ok := _u.mutation.Email(); ok {
		if err := scheduledmessage.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "ScheduledMessage.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SubjectTemplate(); ok {
		if err := scheduledmessage.SubjectTemplateValidator(v); err != nil {
			return &ValidationError{Name: "subject_template", err: fmt.Errorf(`ent: validator failed for field "ScheduledMessage.subject_template": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BodyTemplateID(); ok {
		if err := scheduledmessage.BodyTemplateIDValidator(v); err != nil {
			return &ValidationError{Name: "body_template_id", err: fmt.Errorf(`ent: validator failed for field "ScheduledMessage.body_template_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := scheduledmessage.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ScheduledMessage.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Attempts(); ok {
		if err := scheduledmessage.AttemptsValidator(v); err != nil {
			return &ValidationError{Name: "attempts", err: fmt.Errorf(`ent: validator failed for field "ScheduledMessage.attempts": %w`, err)}
		}
	}
	return nil
}

func (_u *ScheduledMessageUpdateOne) sqlSave(ctx context.Context) (_node *ScheduledMessage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scheduledmessage.Table, scheduledmessage.Columns, sqlgraph.NewFieldSpec(scheduledmessage.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ScheduledMessage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, scheduledmessage.FieldID)
		for _, f := range fields {
			if !scheduledmessage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != scheduledmessage.FieldID {
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
		_spec.SetField(scheduledmessage.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.FirstName(); ok {
		_spec.SetField(scheduledmessage.FieldFirstName, field.TypeString, value)
	}
	if _u.mutation.FirstNameCleared() {
		_spec.ClearField(scheduledmessage.FieldFirstName, field.TypeString)
	}
	if value, ok := _u.mutation.SubjectTemplate(); ok {
		_spec.SetField(scheduledmessage.FieldSubjectTemplate, field.TypeString, value)
	}
	if value, ok := _u.mutation.BodyTemplateID(); ok {
		_spec.SetField(scheduledmessage.FieldBodyTemplateID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SendAt(); ok {
		_spec.SetField(scheduledmessage.FieldSendAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(scheduledmessage.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(scheduledmessage.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(scheduledmessage.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(scheduledmessage.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(scheduledmessage.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.SentAt(); ok {
		_spec.SetField(scheduledmessage.FieldSentAt, field.TypeTime, value)
	}
	if _u.mutation.SentAtCleared() {
		_spec.ClearField(scheduledmessage.FieldSentAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(scheduledmessage.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.EnrollmentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   scheduledmessage.EnrollmentTable,
			Columns: []string{scheduledmessage.EnrollmentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(enrollment.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EnrollmentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   scheduledmessage.EnrollmentTable,
			Columns: []string{scheduledmessage.EnrollmentColumn},
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
	_node = &ScheduledMessage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scheduledmessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
