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
	"github.com/xyhcode/gocms/ent/parameter"
	"github.com/xyhcode/gocms/ent/predicate"
)

// ParameterUpdate is the builder for updating Parameter entities.
type ParameterUpdate struct {
	config
	hooks     []Hook
	mutation  *ParameterMutation
	modifiers []func(*sql.UpdateBuilder)
}

// Where appends a list predicates to the ParameterUpdate builder.
func (pu *ParameterUpdate) Where(ps ...predicate.Parameter) *ParameterUpdate {
	pu.mutation.Where(ps...)
	return pu
}

// SetValue sets the "value" field.
func (pu *ParameterUpdate) SetValue(s string) *ParameterUpdate {
	pu.mutation.SetValue(s)
	return pu
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (pu *ParameterUpdate) SetNillableValue(s *string) *ParameterUpdate {
	if s != nil {
		pu.SetValue(*s)
	}
	return pu
}

// SetComment sets the "comment" field.
func (pu *ParameterUpdate) SetComment(s string) *ParameterUpdate {
	pu.mutation.SetComment(s)
	return pu
}

// SetNillableComment sets the "comment" field if the given value is not nil.
func (pu *ParameterUpdate) SetNillableComment(s *string) *ParameterUpdate {
	if s != nil {
		pu.SetComment(*s)
	}
	return pu
}

// ClearComment clears the value of the "comment" field.
func (pu *ParameterUpdate) ClearComment() *ParameterUpdate {
	pu.mutation.ClearComment()
	return pu
}

// SetUpdatedAt sets the "updated_at" field.
func (pu *ParameterUpdate) SetUpdatedAt(t time.Time) *ParameterUpdate {
	pu.mutation.SetUpdatedAt(t)
	return pu
}

// Mutation returns the ParameterMutation object of the builder.
func (pu *ParameterUpdate) Mutation() *ParameterMutation {
	return pu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (pu *ParameterUpdate) Save(ctx context.Context) (int, error) {
	pu.defaults()
	return withHooks(ctx, pu.sqlSave, pu.mutation, pu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (pu *ParameterUpdate) SaveX(ctx context.Context) int {
	affected, err := pu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (pu *ParameterUpdate) Exec(ctx context.Context) error {
	_, err := pu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (pu *ParameterUpdate) ExecX(ctx context.Context) {
	if err := pu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (pu *ParameterUpdate) defaults() {
	if _, ok := pu.mutation.UpdatedAt(); !ok {
		v := parameter.UpdateDefaultUpdatedAt()
		pu.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (pu *ParameterUpdate) check() error {
	if v, ok := pu.mutation.Comment(); ok {
		if err := parameter.CommentValidator(v); err != nil {
			return &ValidationError{Name: "comment", err: fmt.Errorf(`ent: validator failed for field "Parameter.comment": %w`, err)}
		}
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (pu *ParameterUpdate) Modify(modifiers ...func(u *sql.UpdateBuilder)) *ParameterUpdate {
	pu.modifiers = append(pu.modifiers, modifiers...)
	return pu
}

func (pu *ParameterUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := pu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(parameter.Table, parameter.Columns, sqlgraph.NewFieldSpec(parameter.FieldID, field.TypeInt))
	if ps := pu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := pu.mutation.Value(); ok {
		_spec.SetField(parameter.FieldValue, field.TypeString, value)
	}
	if value, ok := pu.mutation.Comment(); ok {
		_spec.SetField(parameter.FieldComment, field.TypeString, value)
	}
	if pu.mutation.CommentCleared() {
		_spec.ClearField(parameter.FieldComment, field.TypeString)
	}
	if value, ok := pu.mutation.UpdatedAt(); ok {
		_spec.SetField(parameter.FieldUpdatedAt, field.TypeTime, value)
	}
	_spec.AddModifiers(pu.modifiers...)
	if n, err = sqlgraph.UpdateNodes(ctx, pu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{parameter.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	pu.mutation.done = true
	return n, nil
}

// ParameterUpdateOne is the builder for updating a single Parameter entity.
type ParameterUpdateOne struct {
	config
	fields    []string
	hooks     []Hook
	mutation  *ParameterMutation
	modifiers []func(*sql.UpdateBuilder)
}

// SetValue sets the "value" field.
func (puo *ParameterUpdateOne) SetValue(s string) *ParameterUpdateOne {
	puo.mutation.SetValue(s)
	return puo
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (puo *ParameterUpdateOne) SetNillableValue(s *string) *ParameterUpdateOne {
	if s != nil {
		puo.SetValue(*s)
	}
	return puo
}

// SetComment sets the "comment" field.
func (puo *ParameterUpdateOne) SetComment(s string) *ParameterUpdateOne {
	puo.mutation.SetComment(s)
	return puo
}

// SetNillableComment sets the "comment" field if the given value is not nil.
func (puo *ParameterUpdateOne) SetNillableComment(s *string) *ParameterUpdateOne {
	if s != nil {
		puo.SetComment(*s)
	}
	return puo
}

// ClearComment clears the value of the "comment" field.
func (puo *ParameterUpdateOne) ClearComment() *ParameterUpdateOne {
	puo.mutation.ClearComment()
	return puo
}

// SetUpdatedAt sets the "updated_at" field.
func (puo *ParameterUpdateOne) SetUpdatedAt(t time.Time) *ParameterUpdateOne {
	puo.mutation.SetUpdatedAt(t)
	return puo
}

// Mutation returns the ParameterMutation object of the builder.
func (puo *ParameterUpdateOne) Mutation() *ParameterMutation {
	return puo.mutation
}

// Where appends a list predicates to the ParameterUpdate builder.
func (puo *ParameterUpdateOne) Where(ps ...predicate.Parameter) *ParameterUpdateOne {
	puo.mutation.Where(ps...)
	return puo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (puo *ParameterUpdateOne) Select(field string, fields ...string) *ParameterUpdateOne {
	puo.fields = append([]string{field}, fields...)
	return puo
}

// Save executes the query and returns the updated Parameter entity.
func (puo *ParameterUpdateOne) Save(ctx context.Context) (*Parameter, error) {
	puo.defaults()
	return withHooks(ctx, puo.sqlSave, puo.mutation, puo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (puo *ParameterUpdateOne) SaveX(ctx context.Context) *Parameter {
	node, err := puo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (puo *ParameterUpdateOne) Exec(ctx context.Context) error {
	_, err := puo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (puo *ParameterUpdateOne) ExecX(ctx context.Context) {
	if err := puo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (puo *ParameterUpdateOne) defaults() {
	if _, ok := puo.mutation.UpdatedAt(); !ok {
		v := parameter.UpdateDefaultUpdatedAt()
		puo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (puo *ParameterUpdateOne) check() error {
	if v, ok := puo.mutation.Comment(); ok {
		if err := parameter.CommentValidator(v); err != nil {
			return &ValidationError{Name: "comment", err: fmt.Errorf(`ent: validator failed for field "Parameter.comment": %w`, err)}
		}
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (puo *ParameterUpdateOne) Modify(modifiers ...func(u *sql.UpdateBuilder)) *ParameterUpdateOne {
	puo.modifiers = append(puo.modifiers, modifiers...)
	return puo
}

func (puo *ParameterUpdateOne) sqlSave(ctx context.Context) (_node *Parameter, err error) {
	if err := puo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(parameter.Table, parameter.Columns, sqlgraph.NewFieldSpec(parameter.FieldID, field.TypeInt))
	id, ok := puo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Parameter.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := puo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, parameter.FieldID)
		for _, f := range fields {
			if !parameter.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != parameter.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := puo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := puo.mutation.Value(); ok {
		_spec.SetField(parameter.FieldValue, field.TypeString, value)
	}
	if value, ok := puo.mutation.Comment(); ok {
		_spec.SetField(parameter.FieldComment, field.TypeString, value)
	}
	if puo.mutation.CommentCleared() {
		_spec.ClearField(parameter.FieldComment, field.TypeString)
	}
	if value, ok := puo.mutation.UpdatedAt(); ok {
		_spec.SetField(parameter.FieldUpdatedAt, field.TypeTime, value)
	}
	_spec.AddModifiers(puo.modifiers...)
	_node = &Parameter{config: puo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, puo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{parameter.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	puo.mutation.done = true
	return _node, nil
}
