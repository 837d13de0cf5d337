// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/dparikh/prepdrill/ent/predicate"
	"github.com/dparikh/prepdrill/ent/sequenceevent"
)

// SequenceEventUpdate is the builder for updating SequenceEvent entities.
type SequenceEventUpdate struct {
	config
	hooks    []Hook
	mutation *SequenceEventMutation
}

// Where appends a list predicates to the SequenceEventUpdate builder.
func (_u *SequenceEventUpdate) Where(ps ...predicate.SequenceEvent) *SequenceEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPassID sets the "pass_id" field.
func (_u *SequenceEventUpdate) SetPassID(v string) *SequenceEventUpdate {
	_u.mutation.SetPassID(v)
	return _u
}

// SetNillablePassID sets the "pass_id" field if the given value is not nil.
func (_u *SequenceEventUpdate) SetNillablePassID(v *string) *SequenceEventUpdate {
	if v != nil {
		_u.SetPassID(*v)
	}
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *SequenceEventUpdate) SetLearnerID(v string) *SequenceEventUpdate {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *SequenceEventUpdate) SetNillableLearnerID(v *string) *SequenceEventUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *SequenceEventUpdate) SetTopic(v string) *SequenceEventUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *SequenceEventUpdate) SetNillableTopic(v *string) *SequenceEventUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *SequenceEventUpdate) SetLevel(v float64) *SequenceEventUpdate {
	_u.mutation.ResetLevel()
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *SequenceEventUpdate) SetNillableLevel(v *float64) *SequenceEventUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// AddLevel adds value to the "level" field.
func (_u *SequenceEventUpdate) AddLevel(v float64) *SequenceEventUpdate {
	_u.mutation.AddLevel(v)
	return _u
}

// SetItemIds sets the "item_ids" field.
func (_u *SequenceEventUpdate) SetItemIds(v []string) *SequenceEventUpdate {
	_u.mutation.SetItemIds(v)
	return _u
}

// AppendItemIds appends value to the "item_ids" field.
func (_u *SequenceEventUpdate) AppendItemIds(v []string) *SequenceEventUpdate {
	_u.mutation.AppendItemIds(v)
	return _u
}

// SetItemCount sets the "item_count" field.
func (_u *SequenceEventUpdate) SetItemCount(v int) *SequenceEventUpdate {
	_u.mutation.ResetItemCount()
	_u.mutation.SetItemCount(v)
	return _u
}

// SetNillableItemCount sets the "item_count" field if the given value is not nil.
func (_u *SequenceEventUpdate) SetNillableItemCount(v *int) *SequenceEventUpdate {
	if v != nil {
		_u.SetItemCount(*v)
	}
	return _u
}

// AddItemCount adds value to the "item_count" field.
func (_u *SequenceEventUpdate) AddItemCount(v int) *SequenceEventUpdate {
	_u.mutation.AddItemCount(v)
	return _u
}

// Mutation returns the SequenceEventMutation object of the builder.
func (_u *SequenceEventUpdate) Mutation() *SequenceEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SequenceEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SequenceEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SequenceEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SequenceEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SequenceEventUpdate) check() error {
	if v, ok := _u.mutation.PassID(); ok {
		if err := sequenceevent.PassIDValidator(v); err != nil {
			return &ValidationError{Name: "pass_id", err: fmt.Errorf(`ent: validator failed for field "SequenceEvent.pass_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := sequenceevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "SequenceEvent.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := sequenceevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "SequenceEvent.topic": %w`, err)}
		}
	}
	return nil
}

func (_u *SequenceEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sequenceevent.Table, sequenceevent.Columns, sqlgraph.NewFieldSpec(sequenceevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PassID(); ok {
		_spec.SetField(sequenceevent.FieldPassID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(sequenceevent.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(sequenceevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(sequenceevent.FieldLevel, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLevel(); ok {
		_spec.AddField(sequenceevent.FieldLevel, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ItemIds(); ok {
		_spec.SetField(sequenceevent.FieldItemIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedItemIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, sequenceevent.FieldItemIds, value)
		})
	}
	if value, ok := _u.mutation.ItemCount(); ok {
		_spec.SetField(sequenceevent.FieldItemCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedItemCount(); ok {
		_spec.AddField(sequenceevent.FieldItemCount, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sequenceevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SequenceEventUpdateOne is the builder for updating a single SequenceEvent entity.
type SequenceEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SequenceEventMutation
}

// SetPassID sets the "pass_id" field.
func (_u *SequenceEventUpdateOne) SetPassID(v string) *SequenceEventUpdateOne {
	_u.mutation.SetPassID(v)
	return _u
}

// SetNillablePassID sets the "pass_id" field if the given value is not nil.
func (_u *SequenceEventUpdateOne) SetNillablePassID(v *string) *SequenceEventUpdateOne {
	if v != nil {
		_u.SetPassID(*v)
	}
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *SequenceEventUpdateOne) SetLearnerID(v string) *SequenceEventUpdateOne {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *SequenceEventUpdateOne) SetNillableLearnerID(v *string) *SequenceEventUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *SequenceEventUpdateOne) SetTopic(v string) *SequenceEventUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *SequenceEventUpdateOne) SetNillableTopic(v *string) *SequenceEventUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *SequenceEventUpdateOne) SetLevel(v float64) *SequenceEventUpdateOne {
	_u.mutation.ResetLevel()
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *SequenceEventUpdateOne) SetNillableLevel(v *float64) *SequenceEventUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// AddLevel adds value to the "level" field.
func (_u *SequenceEventUpdateOne) AddLevel(v float64) *SequenceEventUpdateOne {
	_u.mutation.AddLevel(v)
	return _u
}

// SetItemIds sets the "item_ids" field.
func (_u *SequenceEventUpdateOne) SetItemIds(v []string) *SequenceEventUpdateOne {
	_u.mutation.SetItemIds(v)
	return _u
}

// AppendItemIds appends value to the "item_ids" field.
func (_u *SequenceEventUpdateOne) AppendItemIds(v []string) *SequenceEventUpdateOne {
	_u.mutation.AppendItemIds(v)
	return _u
}

// SetItemCount sets the "item_count" field.
func (_u *SequenceEventUpdateOne) SetItemCount(v int) *SequenceEventUpdateOne {
	_u.mutation.ResetItemCount()
	_u.mutation.SetItemCount(v)
	return _u
}

// SetNillableItemCount sets the "item_count" field if the given value is not nil.
func (_u *SequenceEventUpdateOne) SetNillableItemCount(v *int) *SequenceEventUpdateOne {
	if v != nil {
		_u.SetItemCount(*v)
	}
	return _u
}

// AddItemCount adds value to the "item_count" field.
func (_u *SequenceEventUpdateOne) AddItemCount(v int) *SequenceEventUpdateOne {
	_u.mutation.AddItemCount(v)
	return _u
}

// Mutation returns the SequenceEventMutation object of the builder.
func (_u *SequenceEventUpdateOne) Mutation() *SequenceEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the SequenceEventUpdate builder.
func (_u *SequenceEventUpdateOne) Where(ps ...predicate.SequenceEvent) *SequenceEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SequenceEventUpdateOne) Select(field string, fields ...string) *SequenceEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SequenceEvent entity.
func (_u *SequenceEventUpdateOne) Save(ctx context.Context) (*SequenceEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SequenceEventUpdateOne) SaveX(ctx context.Context) *SequenceEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SequenceEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SequenceEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SequenceEventUpdateOne) check() error {
	if v, ok := _u.mutation.PassID(); ok {
		if err := sequenceevent.PassIDValidator(v); err != nil {
			return &ValidationError{Name: "pass_id", err: fmt.Errorf(`ent: validator failed for field "SequenceEvent.pass_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := sequenceevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "SequenceEvent.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := sequenceevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "SequenceEvent.topic": %w`, err)}
		}
	}
	return nil
}

func (_u *SequenceEventUpdateOne) sqlSave(ctx context.Context) (_node *SequenceEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sequenceevent.Table, sequenceevent.Columns, sqlgraph.NewFieldSpec(sequenceevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SequenceEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sequenceevent.FieldID)
		for _, f := range fields {
			if !sequenceevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sequenceevent.FieldID {
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
	if value, ok := _u.mutation.PassID(); ok {
		_spec.SetField(sequenceevent.FieldPassID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(sequenceevent.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(sequenceevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(sequenceevent.FieldLevel, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLevel(); ok {
		_spec.AddField(sequenceevent.FieldLevel, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ItemIds(); ok {
		_spec.SetField(sequenceevent.FieldItemIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedItemIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, sequenceevent.FieldItemIds, value)
		})
	}
	if value, ok := _u.mutation.ItemCount(); ok {
		_spec.SetField(sequenceevent.FieldItemCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedItemCount(); ok {
		_spec.AddField(sequenceevent.FieldItemCount, field.TypeInt, value)
	}
	_node = &SequenceEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sequenceevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
