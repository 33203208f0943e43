// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/counselflow/intake-api/ent/enrollment"
	"github.com/counselflow/intake-api/ent/scheduledmessage"
)

// ScheduledMessageCreate is the builder for creating a ScheduledMessage entity.
type ScheduledMessageCreate struct {
	config
	mutation *ScheduledMessageMutation
	hooks    []Hook
}

// SetEnrollmentID sets the "enrollment_id" field.
func (_c *ScheduledMessageCreate) SetEnrollmentID(v int) *ScheduledMessageCreate {
	_c.mutation.SetEnrollmentID(v)
	return _c
}

// SetNillableEnrollmentID sets the "enrollment_id" field if the given value is not nil.
func (_c *ScheduledMessageCreate) SetNillableEnrollmentID(v *int) *ScheduledMessageCreate {
	if v != nil {
		_c.SetEnrollmentID(*v)
	}
	return _c
}

// SetEmail sets the "email" field.
func (_c *ScheduledMessageCreate) SetEmail(v string) *ScheduledMessageCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetFirstName sets the "first_name" field.
func (_c *ScheduledMessageCreate) SetFirstName(v string) *ScheduledMessageCreate {
	_c.mutation.SetFirstName(v)
	return _c
}

// SetNillableFirstName sets the "first_name" field if the given value is not nil.
func (_c *ScheduledMessageCreate) SetNillableFirstName(v *string) *ScheduledMessageCreate {
	if v != nil {
		_c.SetFirstName(*v)
	}
	return _c
}

// SetSubjectTemplate sets the "subject_template" field.
func (_c *ScheduledMessageCreate) SetSubjectTemplate(v string) *ScheduledMessageCreate {
	_c.mutation.SetSubjectTemplate(v)
	return _c
}

// SetBodyTemplateID sets the "body_template_id" field.
func (_c *ScheduledMessageCreate) SetBodyTemplateID(v string) *ScheduledMessageCreate {
	_c.mutation.SetBodyTemplateID(v)
	return _c
}

// SetSendAt sets the "send_at" field.
func (_c *ScheduledMessageCreate) SetSendAt(v time.Time) *ScheduledMessageCreate {
	_c.mutation.SetSendAt(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ScheduledMessageCreate) SetStatus(v scheduledmessage.Status) *ScheduledMessageCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ScheduledMessageCreate) SetNillableStatus(v *scheduledmessage.Status) *ScheduledMessageCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *ScheduledMessageCreate) SetAttempts(v int) *ScheduledMessageCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_c *ScheduledMessageCreate) SetNillableAttempts(v *int) *ScheduledMessageCreate {
	if v != nil {
		_c.SetAttempts(*v)
	}
	return _c
}

// SetLastError sets the "last_error" field.
func (_c *ScheduledMessageCreate) SetLastError(v string) *ScheduledMessageCreate {
	_c.mutation.SetLastError(v)
	return _c
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_c *ScheduledMessageCreate) SetNillableLastError(v *string) *ScheduledMessageCreate {
	if v != nil {
		_c.SetLastError(*v)
	}
	return _c
}

// SetSentAt sets the "sent_at" field.
func (_c *ScheduledMessageCreate) SetSentAt(v time.Time) *ScheduledMessageCreate {
	_c.mutation.SetSentAt(v)
	return _c
}

// SetNillableSentAt sets the "sent_at" field if the given value is not nil.
func (_c *ScheduledMessageCreate) SetNillableSentAt(v *time.Time) *ScheduledMessageCreate {
	if v != nil {
		_c.SetSentAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ScheduledMessageCreate) SetCreatedAt(v time.Time) *ScheduledMessageCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ScheduledMessageCreate) SetNillableCreatedAt(v *time.Time) *ScheduledMessageCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ScheduledMessageCreate) SetUpdatedAt(v time.Time) *ScheduledMessageCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ScheduledMessageCreate) SetNillableUpdatedAt(v *time.Time) *ScheduledMessageCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetEnrollment sets the "enrollment" edge to the Enrollment entity.
func (_c *ScheduledMessageCreate) SetEnrollment(v *Enrollment) *ScheduledMessageCreate {
	return _c.SetEnrollmentID(v.ID)
}

// Mutation returns the ScheduledMessageMutation object of the builder.
func (_c *ScheduledMessageCreate) Mutation() *ScheduledMessageMutation {
	return _c.mutation
}

// Save creates the ScheduledMessage in the database.
func (_c *ScheduledMessageCreate) Save(ctx context.Context) (*ScheduledMessage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ScheduledMessageCreate) SaveX(ctx context.Context) *ScheduledMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScheduledMessageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScheduledMessageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ScheduledMessageCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := scheduledmessage.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		v := scheduledmessage.DefaultAttempts
		_c.mutation.SetAttempts(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := scheduledmessage.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := scheduledmessage.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ScheduledMessageCreate) check() error {
	if _, ok := _c.mutation.Email(); !ok {
		return &ValidationError{Name: "email", err: errors.New(`ent: missing required field "ScheduledMessage.email"`)}
	}
	if v, ok := _c.mutation.Email(); ok {
		if err := scheduledmessage.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "ScheduledMessage.email": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SubjectTemplate(); !ok {
		return &ValidationError{Name: "subject_template", err: errors.New(`ent: missing required field "ScheduledMessage.subject_template"`)}
	}
	if v, ok := _c.mutation.SubjectTemplate(); ok {
		if err := scheduledmessage.SubjectTemplateValidator(v); err != nil {
			return &ValidationError{Name: "subject_template", err: fmt.Errorf(`ent: validator failed for field "ScheduledMessage.subject_template": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BodyTemplateID(); !ok {
		return &ValidationError{Name: "body_template_id", err: errors.New(`ent: missing required field "ScheduledMessage.body_template_id"`)}
	}
	if v, ok := _c.mutation.BodyTemplateID(); ok {
		if err := scheduledmessage.BodyTemplateIDValidator(v); err != nil {
			return &ValidationError{Name: "body_template_id", err: fmt.Errorf(`ent: validator failed for field "ScheduledMessage.body_template_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SendAt(); !ok {
		return &ValidationError{Name: "send_at", err: errors.New(`ent: missing required field "ScheduledMessage.send_at"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ScheduledMessage.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := scheduledmessage.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ScheduledMessage.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		return &ValidationError{Name: "attempts", err: errors.New(`ent: missing required field "ScheduledMessage.attempts"`)}
	}
	if v, ok := _c.mutation.Attempts(); ok {
		if err := scheduledmessage.AttemptsValidator(v); err != nil {
			return &ValidationError{Name: "attempts", err: fmt.Errorf(`ent: validator failed for field "ScheduledMessage.attempts": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ScheduledMessage.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ScheduledMessage.updated_at"`)}
	}
	return nil
}

func (_c *ScheduledMessageCreate) sqlSave(ctx context.Context) (*ScheduledMessage, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ScheduledMessageCreate) createSpec() (*ScheduledMessage, *sqlgraph.CreateSpec) {
	var (
		_node = &ScheduledMessage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(scheduledmessage.Table, sqlgraph.NewFieldSpec(scheduledmessage.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(scheduledmessage.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := _c.mutation.FirstName(); ok {
		_spec.SetField(scheduledmessage.FieldFirstName, field.TypeString, value)
		_node.FirstName = value
	}
	if value, ok := _c.mutation.SubjectTemplate(); ok {
		_spec.SetField(scheduledmessage.FieldSubjectTemplate, field.TypeString, value)
		_node.SubjectTemplate = value
	}
	if value, ok := _c.mutation.BodyTemplateID(); ok {
		_spec.SetField(scheduledmessage.FieldBodyTemplateID, field.TypeString, value)
		_node.BodyTemplateID = value
	}
	if value, ok := _c.mutation.SendAt(); ok {
		_spec.SetField(scheduledmessage.FieldSendAt, field.TypeTime, value)
		_node.SendAt = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(scheduledmessage.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(scheduledmessage.FieldAttempts, field.TypeInt, value)
		_node.Attempts = value
	}
	if value, ok := _c.mutation.LastError(); ok {
		_spec.SetField(scheduledmessage.FieldLastError, field.TypeString, value)
		_node.LastError = value
	}
	if value, ok := _c.mutation.SentAt(); ok {
		_spec.SetField(scheduledmessage.FieldSentAt, field.TypeTime, value)
		_node.SentAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(scheduledmessage.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(scheduledmessage.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.EnrollmentIDs(); len(nodes) > 0 {
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
		_node.EnrollmentID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ScheduledMessageCreateBulk is the builder for creating many ScheduledMessage entities in bulk.
type ScheduledMessageCreateBulk struct {
	config
	err      error
	builders []*ScheduledMessageCreate
}

// Save creates the ScheduledMessage entities in the database.
func (_c *ScheduledMessageCreateBulk) Save(ctx context.Context) ([]*ScheduledMessage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ScheduledMessage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ScheduledMessageMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ScheduledMessageCreateBulk) SaveX(ctx context.Context) []*ScheduledMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScheduledMessageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScheduledMessageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
