// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dparikh/prepdrill/ent/sequenceevent"
)

// SequenceEventCreate is the builder for creating a SequenceEvent entity.
type SequenceEventCreate struct {
	config
	mutation *SequenceEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *SequenceEventCreate) SetSequence(v int64) *SequenceEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *SequenceEventCreate) SetTimestamp(v time.Time) *SequenceEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *SequenceEventCreate) SetNillableTimestamp(v *time.Time) *SequenceEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetPassID sets the "pass_id" field.
func (_c *SequenceEventCreate) SetPassID(v string) *SequenceEventCreate {
	_c.mutation.SetPassID(v)
	return _c
}

// SetLearnerID sets the "learner_id" field.
func (_c *SequenceEventCreate) SetLearnerID(v string) *SequenceEventCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetTopic sets the "topic" field.
func (_c *SequenceEventCreate) SetTopic(v string) *SequenceEventCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetLevel sets the "level" field.
func (_c *SequenceEventCreate) SetLevel(v float64) *SequenceEventCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetItemIds sets the "item_ids" field.
func (_c *SequenceEventCreate) SetItemIds(v []string) *SequenceEventCreate {
	_c.mutation.SetItemIds(v)
	return _c
}

// SetItemCount sets the "item_count" field.
func (_c *SequenceEventCreate) SetItemCount(v int) *SequenceEventCreate {
	_c.mutation.SetItemCount(v)
	return _c
}

// Mutation returns the SequenceEventMutation object of the builder.
func (_c *SequenceEventCreate) Mutation() *SequenceEventMutation {
	return _c.mutation
}

// Save creates the SequenceEvent in the database.
func (_c *SequenceEventCreate) Save(ctx context.Context) (*SequenceEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SequenceEventCreate) SaveX(ctx context.Context) *SequenceEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SequenceEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SequenceEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SequenceEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := sequenceevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SequenceEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "SequenceEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "SequenceEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.PassID(); !ok {
		return &ValidationError{Name: "pass_id", err: errors.New(`ent: missing required field "SequenceEvent.pass_id"`)}
	}
	if v, ok := _c.mutation.PassID(); ok {
		if err := sequenceevent.PassIDValidator(v); err != nil {
			return &ValidationError{Name: "pass_id", err: fmt.Errorf(`ent: validator failed for field "SequenceEvent.pass_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "SequenceEvent.learner_id"`)}
	}
	if v, ok := _c.mutation.LearnerID(); ok {
		if err := sequenceevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "SequenceEvent.learner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "SequenceEvent.topic"`)}
	}
	if v, ok := _c.mutation.Topic(); ok {
		if err := sequenceevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "SequenceEvent.topic": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "SequenceEvent.level"`)}
	}
	if _, ok := _c.mutation.ItemIds(); !ok {
		return &ValidationError{Name: "item_ids", err: errors.New(`ent: missing required field "SequenceEvent.item_ids"`)}
	}
	if _, ok := _c.mutation.ItemCount(); !ok {
		return &ValidationError{Name: "item_count", err: errors.New(`ent: missing required field "SequenceEvent.item_count"`)}
	}
	return nil
}

func (_c *SequenceEventCreate) sqlSave(ctx context.Context) (*SequenceEvent, error) {
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

func (_c *SequenceEventCreate) createSpec() (*SequenceEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &SequenceEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sequenceevent.Table, sqlgraph.NewFieldSpec(sequenceevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(sequenceevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(sequenceevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.PassID(); ok {
		_spec.SetField(sequenceevent.FieldPassID, field.TypeString, value)
		_node.PassID = value
	}
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(sequenceevent.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(sequenceevent.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(sequenceevent.FieldLevel, field.TypeFloat64, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.ItemIds(); ok {
		_spec.SetField(sequenceevent.FieldItemIds, field.TypeJSON, value)
		_node.ItemIds = value
	}
	if value, ok := _c.mutation.ItemCount(); ok {
		_spec.SetField(sequenceevent.FieldItemCount, field.TypeInt, value)
		_node.ItemCount = value
	}
	return _node, _spec
}

// SequenceEventCreateBulk is the builder for creating many SequenceEvent entities in bulk.
type SequenceEventCreateBulk struct {
	config
	err      error
	builders []*SequenceEventCreate
}

// Save creates the SequenceEvent entities in the database.
func (_c *SequenceEventCreateBulk) Save(ctx context.Context) ([]*SequenceEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SequenceEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SequenceEventMutation)
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
func (_c *SequenceEventCreateBulk) SaveX(ctx context.Context) []*SequenceEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SequenceEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SequenceEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
