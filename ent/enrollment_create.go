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
	"github.com/counselflow/intake-api/ent/lead"
	"github.com/counselflow/intake-api/ent/scheduledmessage"
)

// EnrollmentCreate is the builder for creating a Enrollment entity.
type EnrollmentCreate struct {
	config
	mutation *EnrollmentMutation
	hooks    []Hook
}

// SetLeadID sets the "lead_id" field.
func (_c *EnrollmentCreate) SetLeadID(v int) *EnrollmentCreate {
	_c.mutation.SetLeadID(v)
	return _c
}

// SetEmail sets the "email" field.
func (_c *EnrollmentCreate) SetEmail(v string) *EnrollmentCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetPathwayName sets the "pathway_name" field.
func (_c *EnrollmentCreate) SetPathwayName(v string) *EnrollmentCreate {
	_c.mutation.SetPathwayName(v)
	return _c
}

// SetTrigger sets the "trigger" field.
func (_c *EnrollmentCreate) SetTrigger(v string) *EnrollmentCreate {
	_c.mutation.SetTrigger(v)
	return _c
}

// SetNillableTrigger sets the "trigger" field if the given value is not nil.
func (_c *EnrollmentCreate) SetNillableTrigger(v *string) *EnrollmentCreate {
	if v != nil {
		_c.SetTrigger(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *EnrollmentCreate) SetStatus(v enrollment.Status) *EnrollmentCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *EnrollmentCreate) SetNillableStatus(v *enrollment.Status) *EnrollmentCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetPauseReason sets the "pause_reason" field.
func (_c *EnrollmentCreate) SetPauseReason(v string) *EnrollmentCreate {
	_c.mutation.SetPauseReason(v)
	return _c
}

// SetNillablePauseReason sets the "pause_reason" field if the given value is not nil.
func (_c *EnrollmentCreate) SetNillablePauseReason(v *string) *EnrollmentCreate {
	if v != nil {
		_c.SetPauseReason(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *EnrollmentCreate) SetCreatedAt(v time.Time) *EnrollmentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EnrollmentCreate) SetNillableCreatedAt(v *time.Time) *EnrollmentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *EnrollmentCreate) SetUpdatedAt(v time.Time) *EnrollmentCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *EnrollmentCreate) SetNillableUpdatedAt(v *time.Time) *EnrollmentCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetLead sets the "lead" edge to the Lead entity.
func (_c *EnrollmentCreate) SetLead(v *Lead) *EnrollmentCreate {
	return _c.SetLeadID(v.ID)
}

// AddMessageIDs adds the "messages" edge to the ScheduledMessage entity by IDs.
func (_c *EnrollmentCreate) AddMessageIDs(ids ...int) *EnrollmentCreate {
	_c.mutation.AddMessageIDs(ids...)
	return _c
}

// AddMessages adds the "messages" edges to the ScheduledMessage entity.
func (_c *EnrollmentCreate) AddMessages(v ...*ScheduledMessage) *EnrollmentCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMessageIDs(ids...)
}

// Mutation returns the EnrollmentMutation object of the builder.
func (_c *EnrollmentCreate) Mutation() *EnrollmentMutation {
	return _c.mutation
}

// Save creates the Enrollment in the database.
func (_c *EnrollmentCreate) Save(ctx context.Context) (*Enrollment, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EnrollmentCreate) SaveX(ctx context.Context) *Enrollment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EnrollmentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EnrollmentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EnrollmentCreate) defaults() {
	if _, ok := _c.mutation.Trigger(); !ok {
		v := enrollment.DefaultTrigger
		_c.mutation.SetTrigger(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := enrollment.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := enrollment.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := enrollment.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EnrollmentCreate) check() error {
	if _, ok := _c.mutation.LeadID(); !ok {
		return &ValidationError{Name: "lead_id", err: errors.New(`ent: missing required field "Enrollment.lead_id"`)}
	}
	if v, ok := _c.mutation.LeadID(); ok {
		if err := enrollment.LeadIDValidator(v); err != nil {
			return &ValidationError{Name: "lead_id", err: fmt.Errorf(`ent: validator failed for field "Enrollment.lead_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Email(); !ok {
		return &ValidationError{Name: "email", err: errors.New(`ent: missing required field "Enrollment.email"`)}
	}
	if v, ok := _c.mutation.Email(); ok {
		if err := enrollment.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "Enrollment.email": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PathwayName(); !ok {
		return &ValidationError{Name: "pathway_name", err: errors.New(`ent: missing required field "Enrollment.pathway_name"`)}
	}
	if v, ok := _c.mutation.PathwayName(); ok {
		if err := enrollment.PathwayNameValidator(v); err != nil {
			return &ValidationError{Name: "pathway_name", err: fmt.Errorf(`ent: validator failed for field "Enrollment.pathway_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Trigger(); !ok {
		return &ValidationError{Name: "trigger", err: errors.New(`ent: missing required field "Enrollment.trigger"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Enrollment.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := enrollment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Enrollment.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Enrollment.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Enrollment.updated_at"`)}
	}
	if len(_c.mutation.LeadIDs()) == 0 {
		return &ValidationError{Name: "lead", err: errors.New(`ent: missing required edge "Enrollment.lead"`)}
	}
	return nil
}

func (_c *EnrollmentCreate) sqlSave(ctx context.Context) (*Enrollment, error) {
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

func (_c *EnrollmentCreate) createSpec() (*Enrollment, *sqlgraph.CreateSpec) {
	var (
		_node = &Enrollment{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(enrollment.Table, sqlgraph.NewFieldSpec(enrollment.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(enrollment.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := _c.mutation.PathwayName(); ok {
		_spec.SetField(enrollment.FieldPathwayName, field.TypeString, value)
		_node.PathwayName = value
	}
	if value, ok := _c.mutation.Trigger(); ok {
		_spec.SetField(enrollment.FieldTrigger, field.TypeString, value)
		_node.Trigger = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(enrollment.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.PauseReason(); ok {
		_spec.SetField(enrollment.FieldPauseReason, field.TypeString, value)
		_node.PauseReason = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(enrollment.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(enrollment.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.LeadIDs(); len(nodes) > 0 {
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
		_node.LeadID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.MessagesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// EnrollmentCreateBulk is the builder for creating many Enrollment entities in bulk.
type EnrollmentCreateBulk struct {
	config
	err      error
	builders []*EnrollmentCreate
}

// Save creates the Enrollment entities in the database.
func (_c *EnrollmentCreateBulk) Save(ctx context.Context) ([]*Enrollment, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Enrollment, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EnrollmentMutation)
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
func (_c *EnrollmentCreateBulk) SaveX(ctx context.Context) []*Enrollment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EnrollmentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EnrollmentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
