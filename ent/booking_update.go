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
	"github.com/counselflow/intake-api/ent/booking"
	"github.com/counselflow/intake-api/ent/predicate"
)

// BookingUpdate is the builder for updating Booking entities.
type BookingUpdate struct {
	config
	hooks    []Hook
	mutation *BookingMutation
}

// Where appends a list predicates to the BookingUpdate builder.
func (_u *BookingUpdate) Where(ps ...predicate.Booking) *BookingUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEmail sets the "email" field.
func (_u *BookingUpdate) SetEmail(v string) *BookingUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *BookingUpdate) SetNillableEmail(v *string) *BookingUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *BookingUpdate) SetKind(v booking.Kind) *BookingUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *BookingUpdate) SetNillableKind(v *booking.Kind) *BookingUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *BookingUpdate) SetStatus(v booking.Status) *BookingUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *BookingUpdate) SetNillableStatus(v *booking.Status) *BookingUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetScheduledAt sets the "scheduled_at" field.
func (_u *BookingUpdate) SetScheduledAt(v time.Time) *BookingUpdate {
	_u.mutation.SetScheduledAt(v)
	return _u
}

// SetNillableScheduledAt sets the "scheduled_at" field if the given value is not nil.
func (_u *BookingUpdate) SetNillableScheduledAt(v *time.Time) *BookingUpdate {
	if v != nil {
		_u.SetScheduledAt(*v)
	}
	return _u
}

// ClearScheduledAt clears the value of the "scheduled_at" field.
func (_u *BookingUpdate) ClearScheduledAt() *BookingUpdate {
	_u.mutation.ClearScheduledAt()
	return _u
}

// SetSource sets the "source" field.
func (_u *BookingUpdate) SetSource(v booking.Source) *BookingUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *BookingUpdate) SetNillableSource(v *booking.Source) *BookingUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *BookingUpdate) SetPayload(v map[string]interface{}) *BookingUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *BookingUpdate) ClearPayload() *BookingUpdate {
	_u.mutation.ClearPayload()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BookingUpdate) SetUpdatedAt(v time.Time) *BookingUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the BookingMutation object of the builder.
func (_u *BookingUpdate) Mutation() *BookingMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BookingUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BookingUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BookingUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BookingUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BookingUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := booking.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BookingUpdate) check() error {
	if v, ok := _u.mutation.Email(); ok {
		if err := booking.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "Booking.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := booking.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Booking.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := booking.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Booking.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := booking.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "Booking.source": %w`, err)}
		}
	}
	return nil
}

func (_u *BookingUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(booking.Table, booking.Columns, sqlgraph.NewFieldSpec(booking.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(booking.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(booking.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(booking.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ScheduledAt(); ok {
		_spec.SetField(booking.FieldScheduledAt, field.TypeTime, value)
	}
	if _u.mutation.ScheduledAtCleared() {
		_spec.ClearField(booking.FieldScheduledAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(booking.FieldSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(booking.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(booking.FieldPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(booking.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{booking.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BookingUpdateOne is the builder for updating a single Booking entity.
type BookingUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BookingMutation
}

// SetEmail sets the "email" field.
func (_u *BookingUpdateOne) SetEmail(v string) *BookingUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *BookingUpdateOne) SetNillableEmail(v *string) *BookingUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *BookingUpdateOne) SetKind(v booking.Kind) *BookingUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *BookingUpdateOne) SetNillableKind(v *booking.Kind) *BookingUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *BookingUpdateOne) SetStatus(v booking.Status) *BookingUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *BookingUpdateOne) SetNillableStatus(v *booking.Status) *BookingUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetScheduledAt sets the "scheduled_at" field.
func (_u *BookingUpdateOne) SetScheduledAt(v time.Time) *BookingUpdateOne {
	_u.mutation.SetScheduledAt(v)
	return _u
}

// SetNillableScheduledAt sets the "scheduled_at" field if the given value is not nil.
func (_u *BookingUpdateOne) SetNillableScheduledAt(v *time.Time) *BookingUpdateOne {
	if v != nil {
		_u.SetScheduledAt(*v)
	}
	return _u
}

// ClearScheduledAt clears the value of the "scheduled_at" field.
func (_u *BookingUpdateOne) ClearScheduledAt() *BookingUpdateOne {
	_u.mutation.ClearScheduledAt()
	return _u
}

// SetSource sets the "source" field.
func (_u *BookingUpdateOne) SetSource(v booking.Source) *BookingUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *BookingUpdateOne) SetNillableSource(v *booking.Source) *BookingUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *BookingUpdateOne) SetPayload(v map[string]interface{}) *BookingUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *BookingUpdateOne) ClearPayload() *BookingUpdateOne {
	_u.mutation.ClearPayload()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BookingUpdateOne) SetUpdatedAt(v time.Time) *BookingUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the BookingMutation object of the builder.
func (_u *BookingUpdateOne) Mutation() *BookingMutation {
	return _u.mutation
}

// Where appends a list predicates to the BookingUpdate builder.
func (_u *BookingUpdateOne) Where(ps ...predicate.Booking) *BookingUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BookingUpdateOne) Select(field string, fields ...string) *BookingUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Booking entity.
func (_u *BookingUpdateOne) Save(ctx context.Context) (*Booking, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BookingUpdateOne) SaveX(ctx context.Context) *Booking {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BookingUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BookingUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BookingUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := booking.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BookingUpdateOne) check() error {
	if v, ok := _u.mutation.Email(); ok {
		if err := booking.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "Booking.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := booking.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Booking.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := booking.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Booking.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := booking.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "Booking.source": %w`, err)}
		}
	}
	return nil
}

func (_u *BookingUpdateOne) sqlSave(ctx context.Context) (_node *Booking, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(booking.Table, booking.Columns, sqlgraph.NewFieldSpec(booking.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Booking.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, booking.FieldID)
		for _, f := range fields {
			if !booking.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != booking.FieldID {
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
		_spec.SetField(booking.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(booking.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(booking.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ScheduledAt(); ok {
		_spec.SetField(booking.FieldScheduledAt, field.TypeTime, value)
	}
	if _u.mutation.ScheduledAtCleared() {
		_spec.ClearField(booking.FieldScheduledAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(booking.FieldSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(booking.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(booking.FieldPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(booking.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Booking{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{booking.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
