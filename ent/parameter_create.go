// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/xyhcode/gocms/ent/parameter"
)

// ParameterCreate is the builder for creating a Parameter entity.
type ParameterCreate struct {
	config
	mutation *ParameterMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (pc *ParameterCreate) SetName(s string) *ParameterCreate {
	pc.mutation.SetName(s)
	return pc
}

// SetValue sets the "value" field.
func (pc *ParameterCreate) SetValue(s string) *ParameterCreate {
	pc.mutation.SetValue(s)
	return pc
}

// SetComment sets the "comment" field.
func (pc *ParameterCreate) SetComment(s string) *ParameterCreate {
	pc.mutation.SetComment(s)
	return pc
}

// SetNillableComment sets the "comment" field if the given value is not nil.
func (pc *ParameterCreate) SetNillableComment(s *string) *ParameterCreate {
	if s != nil {
		pc.SetComment(*s)
	}
	return pc
}

// SetCreatedAt sets the "created_at" field.
func (pc *ParameterCreate) SetCreatedAt(t time.Time) *ParameterCreate {
	pc.mutation.SetCreatedAt(t)
	return pc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (pc *ParameterCreate) SetNillableCreatedAt(t *time.Time) *ParameterCreate {
	if t != nil {
		pc.SetCreatedAt(*t)
	}
	return pc
}

// SetUpdatedAt sets the "updated_at" field.
func (pc *ParameterCreate) SetUpdatedAt(t time.Time) *ParameterCreate {
	pc.mutation.SetUpdatedAt(t)
	return pc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (pc *ParameterCreate) SetNillableUpdatedAt(t *time.Time) *ParameterCreate {
	if t != nil {
		pc.SetUpdatedAt(*t)
	}
	return pc
}

// Mutation returns the ParameterMutation object of the builder.
func (pc *ParameterCreate) Mutation() *ParameterMutation {
	return pc.mutation
}

// Save creates the Parameter in the database.
func (pc *ParameterCreate) Save(ctx context.Context) (*Parameter, error) {
	pc.defaults()
	return withHooks(ctx, pc.sqlSave, pc.mutation, pc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (pc *ParameterCreate) SaveX(ctx context.Context) *Parameter {
	v, err := pc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (pc *ParameterCreate) Exec(ctx context.Context) error {
	_, err := pc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (pc *ParameterCreate) ExecX(ctx context.Context) {
	if err := pc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (pc *ParameterCreate) defaults() {
	if _, ok := pc.mutation.CreatedAt(); !ok {
		v := parameter.DefaultCreatedAt()
		pc.mutation.SetCreatedAt(v)
	}
	if _, ok := pc.mutation.UpdatedAt(); !ok {
		v := parameter.DefaultUpdatedAt()
		pc.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (pc *ParameterCreate) check() error {
	if _, ok := pc.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Parameter.name"`)}
	}
	if v, ok := pc.mutation.Name(); ok {
		if err := parameter.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Parameter.name": %w`, err)}
		}
	}
	if _, ok := pc.mutation.Value(); !ok {
		return &ValidationError{Name: "value", err: errors.New(`ent: missing required field "Parameter.value"`)}
	}
	if v, ok := pc.mutation.Comment(); ok {
		if err := parameter.CommentValidator(v); err != nil {
			return &ValidationError{Name: "comment", err: fmt.Errorf(`ent: validator failed for field "Parameter.comment": %w`, err)}
		}
	}
	if _, ok := pc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Parameter.created_at"`)}
	}
	if _, ok := pc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Parameter.updated_at"`)}
	}
	return nil
}

func (pc *ParameterCreate) sqlSave(ctx context.Context) (*Parameter, error) {
	if err := pc.check(); err != nil {
		return nil, err
	}
	_node, _spec := pc.createSpec()
	if err := sqlgraph.CreateNode(ctx, pc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	pc.mutation.id = &_node.ID
	pc.mutation.done = true
	return _node, nil
}

func (pc *ParameterCreate) createSpec() (*Parameter, *sqlgraph.CreateSpec) {
	var (
		_node = &Parameter{config: pc.config}
		_spec = sqlgraph.NewCreateSpec(parameter.Table, sqlgraph.NewFieldSpec(parameter.FieldID, field.TypeInt))
	)
	if value, ok := pc.mutation.Name(); ok {
		_spec.SetField(parameter.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := pc.mutation.Value(); ok {
		_spec.SetField(parameter.FieldValue, field.TypeString, value)
		_node.Value = value
	}
	if value, ok := pc.mutation.Comment(); ok {
		_spec.SetField(parameter.FieldComment, field.TypeString, value)
		_node.Comment = value
	}
	if value, ok := pc.mutation.CreatedAt(); ok {
		_spec.SetField(parameter.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := pc.mutation.UpdatedAt(); ok {
		_spec.SetField(parameter.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// ParameterCreateBulk is the builder for creating many Parameter entities in bulk.
type ParameterCreateBulk struct {
	config
	err      error
	builders []*ParameterCreate
}

// Save creates the Parameter entities in the database.
func (pcb *ParameterCreateBulk) Save(ctx context.Context) ([]*Parameter, error) {
	if pcb.err != nil {
		return nil, pcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(pcb.builders))
	nodes := make([]*Parameter, len(pcb.builders))
	mutators := make([]Mutator, len(pcb.builders))
	for i := range pcb.builders {
		func(i int, root context.Context) {
			builder := pcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ParameterMutation)
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
					_, err = mutators[i+1].Mutate(root, pcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, pcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, pcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (pcb *ParameterCreateBulk) SaveX(ctx context.Context) []*Parameter {
	v, err := pcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (pcb *ParameterCreateBulk) Exec(ctx context.Context) error {
	_, err := pcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (pcb *ParameterCreateBulk) ExecX(ctx context.Context) {
	if err := pcb.Exec(ctx); err != nil {
		panic(err)
	}
}
