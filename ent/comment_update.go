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
	"github.com/xyhcode/gocms/ent/comment"
	"github.com/xyhcode/gocms/ent/content"
	"github.com/xyhcode/gocms/ent/predicate"
)

// CommentUpdate is the builder for updating Comment entities.
type CommentUpdate struct {
	config
	hooks     []Hook
	mutation  *CommentMutation
	modifiers []func(*sql.UpdateBuilder)
}

// Where appends a list predicates to the CommentUpdate builder.
func (cu *CommentUpdate) Where(ps ...predicate.Comment) *CommentUpdate {
	cu.mutation.Where(ps...)
	return cu
}

// SetUpdatedAt sets the "updated_at" field.
func (cu *CommentUpdate) SetUpdatedAt(t time.Time) *CommentUpdate {
	cu.mutation.SetUpdatedAt(t)
	return cu
}

// SetBody sets the "body" field.
func (cu *CommentUpdate) SetBody(s string) *CommentUpdate {
	cu.mutation.SetBody(s)
	return cu
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (cu *CommentUpdate) SetNillableBody(s *string) *CommentUpdate {
	if s != nil {
		cu.SetBody(*s)
	}
	return cu
}

// SetBodyHTML sets the "body_html" field.
func (cu *CommentUpdate) SetBodyHTML(s string) *CommentUpdate {
	cu.mutation.SetBodyHTML(s)
	return cu
}

// SetNillableBodyHTML sets the "body_html" field if the given value is not nil.
func (cu *CommentUpdate) SetNillableBodyHTML(s *string) *CommentUpdate {
	if s != nil {
		cu.SetBodyHTML(*s)
	}
	return cu
}

// SetName sets the "name" field.
func (cu *CommentUpdate) SetName(s string) *CommentUpdate {
	cu.mutation.SetName(s)
	return cu
}

// SetNillableName sets the "name" field if the given value is not nil.
func (cu *CommentUpdate) SetNillableName(s *string) *CommentUpdate {
	if s != nil {
		cu.SetName(*s)
	}
	return cu
}

// SetEmail sets the "email" field.
func (cu *CommentUpdate) SetEmail(s string) *CommentUpdate {
	cu.mutation.SetEmail(s)
	return cu
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (cu *CommentUpdate) SetNillableEmail(s *string) *CommentUpdate {
	if s != nil {
		cu.SetEmail(*s)
	}
	return cu
}

// SetWebSite sets the "web_site" field.
func (cu *CommentUpdate) SetWebSite(s string) *CommentUpdate {
	cu.mutation.SetWebSite(s)
	return cu
}

// SetNillableWebSite sets the "web_site" field if the given value is not nil.
func (cu *CommentUpdate) SetNillableWebSite(s *string) *CommentUpdate {
	if s != nil {
		cu.SetWebSite(*s)
	}
	return cu
}

// ClearWebSite clears the value of the "web_site" field.
func (cu *CommentUpdate) ClearWebSite() *CommentUpdate {
	cu.mutation.ClearWebSite()
	return cu
}

// SetContentID sets the "content_id" field.
func (cu *CommentUpdate) SetContentID(i int) *CommentUpdate {
	cu.mutation.SetContentID(i)
	return cu
}

// SetNillableContentID sets the "content_id" field if the given value is not nil.
func (cu *CommentUpdate) SetNillableContentID(i *int) *CommentUpdate {
	if i != nil {
		cu.SetContentID(*i)
	}
	return cu
}

// SetContent sets the "content" edge to the Content entity.
func (cu *CommentUpdate) SetContent(c *Content) *CommentUpdate {
	return cu.SetContentID(c.ID)
}

// Mutation returns the CommentMutation object of the builder.
func (cu *CommentUpdate) Mutation() *CommentMutation {
	return cu.mutation
}

// ClearContent clears the "content" edge to the Content entity.
func (cu *CommentUpdate) ClearContent() *CommentUpdate {
	cu.mutation.ClearContent()
	return cu
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (cu *CommentUpdate) Save(ctx context.Context) (int, error) {
	cu.defaults()
	return withHooks(ctx, cu.sqlSave, cu.mutation, cu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (cu *CommentUpdate) SaveX(ctx context.Context) int {
	affected, err := cu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (cu *CommentUpdate) Exec(ctx context.Context) error {
	_, err := cu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cu *CommentUpdate) ExecX(ctx context.Context) {
	if err := cu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (cu *CommentUpdate) defaults() {
	if _, ok := cu.mutation.UpdatedAt(); !ok {
		v := comment.UpdateDefaultUpdatedAt()
		cu.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (cu *CommentUpdate) check() error {
	if v, ok := cu.mutation.Body(); ok {
		if err := comment.BodyValidator(v); err != nil {
			return &ValidationError{Name: "body", err: fmt.Errorf(`ent: validator failed for field "Comment.body": %w`, err)}
		}
	}
	if v, ok := cu.mutation.Name(); ok {
		if err := comment.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Comment.name": %w`, err)}
		}
	}
	if v, ok := cu.mutation.Email(); ok {
		if err := comment.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "Comment.email": %w`, err)}
		}
	}
	if v, ok := cu.mutation.WebSite(); ok {
		if err := comment.WebSiteValidator(v); err != nil {
			return &ValidationError{Name: "web_site", err: fmt.Errorf(`ent: validator failed for field "Comment.web_site": %w`, err)}
		}
	}
	if cu.mutation.ContentCleared() && len(cu.mutation.ContentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Comment.content"`)
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (cu *CommentUpdate) Modify(modifiers ...func(u *sql.UpdateBuilder)) *CommentUpdate {
	cu.modifiers = append(cu.modifiers, modifiers...)
	return cu
}

func (cu *CommentUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := cu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(comment.Table, comment.Columns, sqlgraph.NewFieldSpec(comment.FieldID, field.TypeInt))
	if ps := cu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := cu.mutation.UpdatedAt(); ok {
		_spec.SetField(comment.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := cu.mutation.Body(); ok {
		_spec.SetField(comment.FieldBody, field.TypeString, value)
	}
	if value, ok := cu.mutation.BodyHTML(); ok {
		_spec.SetField(comment.FieldBodyHTML, field.TypeString, value)
	}
	if value, ok := cu.mutation.Name(); ok {
		_spec.SetField(comment.FieldName, field.TypeString, value)
	}
	if value, ok := cu.mutation.Email(); ok {
		_spec.SetField(comment.FieldEmail, field.TypeString, value)
	}
	if value, ok := cu.mutation.WebSite(); ok {
		_spec.SetField(comment.FieldWebSite, field.TypeString, value)
	}
	if cu.mutation.WebSiteCleared() {
		_spec.ClearField(comment.FieldWebSite, field.TypeString)
	}
	if cu.mutation.ContentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   comment.ContentTable,
			Columns: []string{comment.ContentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(content.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := cu.mutation.ContentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   comment.ContentTable,
			Columns: []string{comment.ContentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(content.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_spec.AddModifiers(cu.modifiers...)
	if n, err = sqlgraph.UpdateNodes(ctx, cu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{comment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	cu.mutation.done = true
	return n, nil
}

// CommentUpdateOne is the builder for updating a single Comment entity.
type CommentUpdateOne struct {
	config
	fields    []string
	hooks     []Hook
	mutation  *CommentMutation
	modifiers []func(*sql.UpdateBuilder)
}

// SetUpdatedAt sets the "updated_at" field.
func (cuo *CommentUpdateOne) SetUpdatedAt(t time.Time) *CommentUpdateOne {
	cuo.mutation.SetUpdatedAt(t)
	return cuo
}

// SetBody sets the "body" field.
func (cuo *CommentUpdateOne) SetBody(s string) *CommentUpdateOne {
	cuo.mutation.SetBody(s)
	return cuo
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (cuo *CommentUpdateOne) SetNillableBody(s *string) *CommentUpdateOne {
	if s != nil {
		cuo.SetBody(*s)
	}
	return cuo
}

// SetBodyHTML sets the "body_html" field.
func (cuo *CommentUpdateOne) SetBodyHTML(s string) *CommentUpdateOne {
	cuo.mutation.SetBodyHTML(s)
	return cuo
}

// SetNillableBodyHTML sets the "body_html" field if the given value is not nil.
func (cuo *CommentUpdateOne) SetNillableBodyHTML(s *string) *CommentUpdateOne {
	if s != nil {
		cuo.SetBodyHTML(*s)
	}
	return cuo
}

// SetName sets the "name" field.
func (cuo *CommentUpdateOne) SetName(s string) *CommentUpdateOne {
	cuo.mutation.SetName(s)
	return cuo
}

// SetNillableName sets the "name" field if the given value is not nil.
func (cuo *CommentUpdateOne) SetNillableName(s *string) *CommentUpdateOne {
	if s != nil {
		cuo.SetName(*s)
	}
	return cuo
}

// SetEmail sets the "email" field.
func (cuo *CommentUpdateOne) SetEmail(s string) *CommentUpdateOne {
	cuo.mutation.SetEmail(s)
	return cuo
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (cuo *CommentUpdateOne) SetNillableEmail(s *string) *CommentUpdateOne {
	if s != nil {
		cuo.SetEmail(*s)
	}
	return cuo
}

// SetWebSite sets the "web_site" field.
func (cuo *CommentUpdateOne) SetWebSite(s string) *CommentUpdateOne {
	cuo.mutation.SetWebSite(s)
	return cuo
}

// SetNillableWebSite sets the "web_site" field if the given value is not nil.
func (cuo *CommentUpdateOne) SetNillableWebSite(s *string) *CommentUpdateOne {
	if s != nil {
		cuo.SetWebSite(*s)
	}
	return cuo
}

// ClearWebSite clears the value of the "web_site" field.
func (cuo *CommentUpdateOne) ClearWebSite() *CommentUpdateOne {
	cuo.mutation.ClearWebSite()
	return cuo
}

// SetContentID sets the "content_id" field.
func (cuo *CommentUpdateOne) SetContentID(i int) *CommentUpdateOne {
	cuo.mutation.SetContentID(i)
	return cuo
}

// SetNillableContentID sets the "content_id" field if the given value is not nil.
func (cuo *CommentUpdateOne) SetNillableContentID(i *int) *CommentUpdateOne {
	if i != nil {
		cuo.SetContentID(*i)
	}
	return cuo
}

// SetContent sets the "content" edge to the Content entity.
func (cuo *CommentUpdateOne) SetContent(c *Content) *CommentUpdateOne {
	return cuo.SetContentID(c.ID)
}

// Mutation returns the CommentMutation object of the builder.
func (cuo *CommentUpdateOne) Mutation() *CommentMutation {
	return cuo.mutation
}

// ClearContent clears the "content" edge to the Content entity.
func (cuo *CommentUpdateOne) ClearContent() *CommentUpdateOne {
	cuo.mutation.ClearContent()
	return cuo
}

// Where appends a list predicates to the CommentUpdate builder.
func (cuo *CommentUpdateOne) Where(ps ...predicate.Comment) *CommentUpdateOne {
	cuo.mutation.Where(ps...)
	return cuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (cuo *CommentUpdateOne) Select(field string, fields ...string) *CommentUpdateOne {
	cuo.fields = append([]string{field}, fields...)
	return cuo
}

// Save executes the query and returns the updated Comment entity.
func (cuo *CommentUpdateOne) Save(ctx context.Context) (*Comment, error) {
	cuo.defaults()
	return withHooks(ctx, cuo.sqlSave, cuo.mutation, cuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (cuo *CommentUpdateOne) SaveX(ctx context.Context) *Comment {
	node, err := cuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (cuo *CommentUpdateOne) Exec(ctx context.Context) error {
	_, err := cuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cuo *CommentUpdateOne) ExecX(ctx context.Context) {
	if err := cuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (cuo *CommentUpdateOne) defaults() {
	if _, ok := cuo.mutation.UpdatedAt(); !ok {
		v := comment.UpdateDefaultUpdatedAt()
		cuo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (cuo *CommentUpdateOne) check() error {
	if v, ok := cuo.mutation.Body(); ok {
		if err := comment.BodyValidator(v); err != nil {
			return &ValidationError{Name: "body", err: fmt.Errorf(`ent: validator failed for field "Comment.body": %w`, err)}
		}
	}
	if v, ok := cuo.mutation.Name(); ok {
		if err := comment.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Comment.name": %w`, err)}
		}
	}
	if v, ok := cuo.mutation.Email(); ok {
		if err := comment.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "Comment.email": %w`, err)}
		}
	}
	if v, ok := cuo.mutation.WebSite(); ok {
		if err := comment.WebSiteValidator(v); err != nil {
			return &ValidationError{Name: "web_site", err: fmt.Errorf(`ent: validator failed for field "Comment.web_site": %w`, err)}
		}
	}
	if cuo.mutation.ContentCleared() && len(cuo.mutation.ContentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Comment.content"`)
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (cuo *CommentUpdateOne) Modify(modifiers ...func(u *sql.UpdateBuilder)) *CommentUpdateOne {
	cuo.modifiers = append(cuo.modifiers, modifiers...)
	return cuo
}

func (cuo *CommentUpdateOne) sqlSave(ctx context.Context) (_node *Comment, err error) {
	if err := cuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(comment.Table, comment.Columns, sqlgraph.NewFieldSpec(comment.FieldID, field.TypeInt))
	id, ok := cuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Comment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := cuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, comment.FieldID)
		for _, f := range fields {
			if !comment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != comment.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := cuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := cuo.mutation.UpdatedAt(); ok {
		_spec.SetField(comment.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := cuo.mutation.Body(); ok {
		_spec.SetField(comment.FieldBody, field.TypeString, value)
	}
	if value, ok := cuo.mutation.BodyHTML(); ok {
		_spec.SetField(comment.FieldBodyHTML, field.TypeString, value)
	}
	if value, ok := cuo.mutation.Name(); ok {
		_spec.SetField(comment.FieldName, field.TypeString, value)
	}
	if value, ok := cuo.mutation.Email(); ok {
		_spec.SetField(comment.FieldEmail, field.TypeString, value)
	}
	if value, ok := cuo.mutation.WebSite(); ok {
		_spec.SetField(comment.FieldWebSite, field.TypeString, value)
	}
	if cuo.mutation.WebSiteCleared() {
		_spec.ClearField(comment.FieldWebSite, field.TypeString)
	}
	if cuo.mutation.ContentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   comment.ContentTable,
			Columns: []string{comment.ContentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(content.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := cuo.mutation.ContentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   comment.ContentTable,
			Columns: []string{comment.ContentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(content.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_spec.AddModifiers(cuo.modifiers...)
	_node = &Comment{config: cuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, cuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{comment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	cuo.mutation.done = true
	return _node, nil
}
