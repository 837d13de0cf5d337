// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dparikh/prepdrill/ent/questionitem"
)

// QuestionItemCreate is the builder for creating a QuestionItem entity.
type QuestionItemCreate struct {
	config
	mutation *QuestionItemMutation
	hooks    []Hook
}

// SetItemID sets the "item_id" field.
func (_c *QuestionItemCreate) SetItemID(v string) *QuestionItemCreate {
	_c.mutation.SetItemID(v)
	return _c
}

// SetTopic sets the "topic" field.
func (_c *QuestionItemCreate) SetTopic(v string) *QuestionItemCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetTier sets the "tier" field.
func (_c *QuestionItemCreate) SetTier(v string) *QuestionItemCreate {
	_c.mutation.SetTier(v)
	return _c
}

// SetTags sets the "tags" field.
func (_c *QuestionItemCreate) SetTags(v []string) *QuestionItemCreate {
	_c.mutation.SetTags(v)
	return _c
}

// SetActive sets the "active" field.
func (_c *QuestionItemCreate) SetActive(v bool) *QuestionItemCreate {
	_c.mutation.SetActive(v)
	return _c
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_c *QuestionItemCreate) SetNillableActive(v *bool) *QuestionItemCreate {
	if v != nil {
		_c.SetActive(*v)
	}
	return _c
}

// Mutation returns the QuestionItemMutation object of the builder.
func (_c *QuestionItemCreate) Mutation() *QuestionItemMutation {
	return _c.mutation
}

// Save creates the QuestionItem in the database.
func (_c *QuestionItemCreate) Save(ctx context.Context) (*QuestionItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuestionItemCreate) SaveX(ctx context.Context) *QuestionItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuestionItemCreate) defaults() {
	if _, ok := _c.mutation.Active(); !ok {
		v := questionitem.DefaultActive
		_c.mutation.SetActive(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuestionItemCreate) check() error {
	if _, ok := _c.mutation.ItemID(); !ok {
		return &ValidationError{Name: "item_id", err: errors.New(`ent: missing required field "QuestionItem.item_id"`)}
	}
	if v, ok := _c.mutation.ItemID(); ok {
		if err := questionitem.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "QuestionItem.item_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "QuestionItem.topic"`)}
	}
	if v, ok := _c.mutation.Topic(); ok {
		if err := questionitem.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "QuestionItem.topic": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Tier(); !ok {
		return &ValidationError{Name: "tier", err: errors.New(`ent: missing required field "QuestionItem.tier"`)}
	}
	if v, ok := _c.mutation.Tier(); ok {
		if err := questionitem.TierValidator(v); err != nil {
			return &ValidationError{Name: "tier", err: fmt.Errorf(`ent: validator failed for field "QuestionItem.tier": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Active(); !ok {
		return &ValidationError{Name: "active", err: errors.New(`ent: missing required field "QuestionItem.active"`)}
	}
	return nil
}

func (_c *QuestionItemCreate) sqlSave(ctx context.Context) (*QuestionItem, error) {
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

func (_c *QuestionItemCreate) createSpec() (*QuestionItem, *sqlgraph.CreateSpec) {
	var (
		_node = &QuestionItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(questionitem.Table, sqlgraph.NewFieldSpec(questionitem.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ItemID(); ok {
		_spec.SetField(questionitem.FieldItemID, field.TypeString, value)
		_node.ItemID = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(questionitem.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.Tier(); ok {
		_spec.SetField(questionitem.FieldTier, field.TypeString, value)
		_node.Tier = value
	}
	if value, ok := _c.mutation.Tags(); ok {
		_spec.SetField(questionitem.FieldTags, field.TypeJSON, value)
		_node.Tags = value
	}
	if value, ok := _c.mutation.Active(); ok {
		_spec.SetField(questionitem.FieldActive, field.TypeBool, value)
		_node.Active = value
	}
	return _node, _spec
}

// QuestionItemCreateBulk is the builder for creating many QuestionItem entities in bulk.
type QuestionItemCreateBulk struct {
	config
	err      error
	builders []*QuestionItemCreate
}

// Save creates the QuestionItem entities in the database.
func (_c *QuestionItemCreateBulk) Save(ctx context.Context) ([]*QuestionItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QuestionItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuestionItemMutation)
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
func (_c *QuestionItemCreateBulk) SaveX(ctx context.Context) []*QuestionItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
