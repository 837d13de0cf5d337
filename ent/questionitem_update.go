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
	"github.com/dparikh/prepdrill/ent/questionitem"
)

// QuestionItemUpdate is the builder for updating QuestionItem entities.
type QuestionItemUpdate struct {
	config
	hooks    []Hook
	mutation *QuestionItemMutation
}

// Where appends a list predicates to the QuestionItemUpdate builder.
func (_u *QuestionItemUpdate) Where(ps ...predicate.QuestionItem) *QuestionItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetItemID sets the "item_id" field.
func (_u *QuestionItemUpdate) SetItemID(v string) *QuestionItemUpdate {
	_u.mutation.SetItemID(v)
	return _u
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (_u *QuestionItemUpdate) SetNillableItemID(v *string) *QuestionItemUpdate {
	if v != nil {
		_u.SetItemID(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *QuestionItemUpdate) SetTopic(v string) *QuestionItemUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *QuestionItemUpdate) SetNillableTopic(v *string) *QuestionItemUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetTier sets the "tier" field.
func (_u *QuestionItemUpdate) SetTier(v string) *QuestionItemUpdate {
	_u.mutation.SetTier(v)
	return _u
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_u *QuestionItemUpdate) SetNillableTier(v *string) *QuestionItemUpdate {
	if v != nil {
		_u.SetTier(*v)
	}
	return _u
}

// SetTags sets the "tags" field.
func (_u *QuestionItemUpdate) SetTags(v []string) *QuestionItemUpdate {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *QuestionItemUpdate) AppendTags(v []string) *QuestionItemUpdate {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *QuestionItemUpdate) ClearTags() *QuestionItemUpdate {
	_u.mutation.ClearTags()
	return _u
}

// SetActive sets the "active" field.
func (_u *QuestionItemUpdate) SetActive(v bool) *QuestionItemUpdate {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *QuestionItemUpdate) SetNillableActive(v *bool) *QuestionItemUpdate {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// Mutation returns the QuestionItemMutation object of the builder.
func (_u *QuestionItemUpdate) Mutation() *QuestionItemMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuestionItemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuestionItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestionItemUpdate) check() error {
	if v, ok := _u.mutation.ItemID(); ok {
		if err := questionitem.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "QuestionItem.item_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := questionitem.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "QuestionItem.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Tier(); ok {
		if err := questionitem.TierValidator(v); err != nil {
			return &ValidationError{Name: "tier", err: fmt.Errorf(`ent: validator failed for field "QuestionItem.tier": %w`, err)}
		}
	}
	return nil
}

func (_u *QuestionItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(questionitem.Table, questionitem.Columns, sqlgraph.NewFieldSpec(questionitem.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ItemID(); ok {
		_spec.SetField(questionitem.FieldItemID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(questionitem.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tier(); ok {
		_spec.SetField(questionitem.FieldTier, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(questionitem.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, questionitem.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(questionitem.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(questionitem.FieldActive, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{questionitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuestionItemUpdateOne is the builder for updating a single QuestionItem entity.
type QuestionItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuestionItemMutation
}

// SetItemID sets the "item_id" field.
func (_u *QuestionItemUpdateOne) SetItemID(v string) *QuestionItemUpdateOne {
	_u.mutation.SetItemID(v)
	return _u
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (_u *QuestionItemUpdateOne) SetNillableItemID(v *string) *QuestionItemUpdateOne {
	if v != nil {
		_u.SetItemID(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *QuestionItemUpdateOne) SetTopic(v string) *QuestionItemUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *QuestionItemUpdateOne) SetNillableTopic(v *string) *QuestionItemUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetTier sets the "tier" field.
func (_u *QuestionItemUpdateOne) SetTier(v string) *QuestionItemUpdateOne {
	_u.mutation.SetTier(v)
	return _u
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_u *QuestionItemUpdateOne) SetNillableTier(v *string) *QuestionItemUpdateOne {
	if v != nil {
		_u.SetTier(*v)
	}
	return _u
}

// SetTags sets the "tags" field.
func (_u *QuestionItemUpdateOne) SetTags(v []string) *QuestionItemUpdateOne {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *QuestionItemUpdateOne) AppendTags(v []string) *QuestionItemUpdateOne {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *QuestionItemUpdateOne) ClearTags() *QuestionItemUpdateOne {
	_u.mutation.ClearTags()
	return _u
}

// SetActive sets the "active" field.
func (_u *QuestionItemUpdateOne) SetActive(v bool) *QuestionItemUpdateOne {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *QuestionItemUpdateOne) SetNillableActive(v *bool) *QuestionItemUpdateOne {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// Mutation returns the QuestionItemMutation object of the builder.
func (_u *QuestionItemUpdateOne) Mutation() *QuestionItemMutation {
	return _u.mutation
}

// Where appends a list predicates to the QuestionItemUpdate builder.
func (_u *QuestionItemUpdateOne) Where(ps ...predicate.QuestionItem) *QuestionItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuestionItemUpdateOne) Select(field string, fields ...string) *QuestionItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuestionItem entity.
func (_u *QuestionItemUpdateOne) Save(ctx context.Context) (*QuestionItem, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionItemUpdateOne) SaveX(ctx context.Context) *QuestionItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuestionItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestionItemUpdateOne) check() error {
	if v, ok := _u.mutation.ItemID(); ok {
		if err := questionitem.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "QuestionItem.item_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := questionitem.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "QuestionItem.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Tier(); ok {
		if err := questionitem.TierValidator(v); err != nil {
			return &ValidationError{Name: "tier", err: fmt.Errorf(`ent: validator failed for field "QuestionItem.tier": %w`, err)}
		}
	}
	return nil
}

func (_u *QuestionItemUpdateOne) sqlSave(ctx context.Context) (_node *QuestionItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(questionitem.Table, questionitem.Columns, sqlgraph.NewFieldSpec(questionitem.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuestionItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, questionitem.FieldID)
		for _, f := range fields {
			if !questionitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != questionitem.FieldID {
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
	if value, ok := _u.mutation.ItemID(); ok {
		_spec.SetField(questionitem.FieldItemID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(questionitem.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tier(); ok {
		_spec.SetField(questionitem.FieldTier, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(questionitem.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, questionitem.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(questionitem.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(questionitem.FieldActive, field.TypeBool, value)
	}
	_node = &QuestionItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{questionitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
