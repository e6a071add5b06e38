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
	"github.com/xyhcode/gocms/ent/category"
	"github.com/xyhcode/gocms/ent/comment"
	"github.com/xyhcode/gocms/ent/content"
	"github.com/xyhcode/gocms/ent/predicate"
	"github.com/xyhcode/gocms/ent/tag"
)

// ContentUpdate is the builder for updating Content entities.
type ContentUpdate struct {
	config
	hooks     []Hook
	mutation  *ContentMutation
	modifiers []func(*sql.UpdateBuilder)
}

// Where appends a list predicates to the ContentUpdate builder.
func (cu *ContentUpdate) Where(ps ...predicate.Content) *ContentUpdate {
	cu.mutation.Where(ps...)
	return cu
}

// SetTitle sets the "title" field.
func (cu *ContentUpdate) SetTitle(s string) *ContentUpdate {
	cu.mutation.SetTitle(s)
	return cu
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (cu *ContentUpdate) SetNillableTitle(s *string) *ContentUpdate {
	if s != nil {
		cu.SetTitle(*s)
	}
	return cu
}

// SetBody sets the "body" field.
func (cu *ContentUpdate) SetBody(s string) *ContentUpdate {
	cu.mutation.SetBody(s)
	return cu
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (cu *ContentUpdate) SetNillableBody(s *string) *ContentUpdate {
	if s != nil {
		cu.SetBody(*s)
	}
	return cu
}

// SetStatus sets the "status" field.
func (cu *ContentUpdate) SetStatus(c content.Status) *ContentUpdate {
	cu.mutation.SetStatus(c)
	return cu
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (cu *ContentUpdate) SetNillableStatus(c *content.Status) *ContentUpdate {
	if c != nil {
		cu.SetStatus(*c)
	}
	return cu
}

// SetSlug sets the "slug" field.
func (cu *ContentUpdate) SetSlug(s string) *ContentUpdate {
	cu.mutation.SetSlug(s)
	return cu
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (cu *ContentUpdate) SetNillableSlug(s *string) *ContentUpdate {
	if s != nil {
		cu.SetSlug(*s)
	}
	return cu
}

// ClearSlug clears the value of the "slug" field.
func (cu *ContentUpdate) ClearSlug() *ContentUpdate {
	cu.mutation.ClearSlug()
	return cu
}

// SetUpdatedAt sets the "updated_at" field.
func (cu *ContentUpdate) SetUpdatedAt(t time.Time) *ContentUpdate {
	cu.mutation.SetUpdatedAt(t)
	return cu
}

// SetPublishedAt sets the "published_at" field.
func (cu *ContentUpdate) SetPublishedAt(t time.Time) *ContentUpdate {
	cu.mutation.SetPublishedAt(t)
	return cu
}

// SetNillablePublishedAt sets the "published_at" field if the given value is not nil.
func (cu *ContentUpdate) SetNillablePublishedAt(t *time.Time) *ContentUpdate {
	if t != nil {
		cu.SetPublishedAt(*t)
	}
	return cu
}

// ClearPublishedAt clears the value of the "published_at" field.
func (cu *ContentUpdate) ClearPublishedAt() *ContentUpdate {
	cu.mutation.ClearPublishedAt()
	return cu
}

// SetDisplayOrder sets the "display_order" field.
func (cu *ContentUpdate) SetDisplayOrder(i int) *ContentUpdate {
	cu.mutation.ResetDisplayOrder()
	cu.mutation.SetDisplayOrder(i)
	return cu
}

// SetNillableDisplayOrder sets the "display_order" field if the given value is not nil.
func (cu *ContentUpdate) SetNillableDisplayOrder(i *int) *ContentUpdate {
	if i != nil {
		cu.SetDisplayOrder(*i)
	}
	return cu
}

// AddDisplayOrder adds i to the "display_order" field.
func (cu *ContentUpdate) AddDisplayOrder(i int) *ContentUpdate {
	cu.mutation.AddDisplayOrder(i)
	return cu
}

// AddTagIDs adds the "tags" edge to the Tag entity by IDs.
func (cu *ContentUpdate) AddTagIDs(ids ...int) *ContentUpdate {
	cu.mutation.AddTagIDs(ids...)
	return cu
}

// AddTags adds the "tags" edges to the Tag entity.
func (cu *ContentUpdate) AddTags(t ...*Tag) *ContentUpdate {
	ids := make([]int, len(t))
	for i := range t {
		ids[i] = t[i].ID
	}
	return cu.AddTagIDs(ids...)
}

// AddCategoryIDs adds the "categories" edge to the Category entity by IDs.
func (cu *ContentUpdate) AddCategoryIDs(ids ...int) *ContentUpdate {
	cu.mutation.AddCategoryIDs(ids...)
	return cu
}

// AddCategories adds the "categories" edges to the Category entity.
func (cu *ContentUpdate) AddCategories(c ...*Category) *ContentUpdate {
	ids := make([]int, len(c))
	for i := range c {
		ids[i] = c[i].ID
	}
	return cu.AddCategoryIDs(ids...)
}

// AddCommentIDs adds the "comments" edge to the Comment entity by IDs.
func (cu *ContentUpdate) AddCommentIDs(ids ...int) *ContentUpdate {
	cu.mutation.AddCommentIDs(ids...)
	return cu
}

// AddComments adds the "comments" edges to the Comment entity.
func (cu *ContentUpdate) AddComments(c ...*Comment) *ContentUpdate {
	ids := make([]int, len(c))
	for i := range c {
		ids[i] = c[i].ID
	}
	return cu.AddCommentIDs(ids...)
}

// Mutation returns the ContentMutation object of the builder.
func (cu *ContentUpdate) Mutation() *ContentMutation {
	return cu.mutation
}

// ClearTags clears all "tags" edges to the Tag entity.
func (cu *ContentUpdate) ClearTags() *ContentUpdate {
	cu.mutation.ClearTags()
	return cu
}

// RemoveTagIDs removes the "tags" edge to Tag entities by IDs.
func (cu *ContentUpdate) RemoveTagIDs(ids ...int) *ContentUpdate {
	cu.mutation.RemoveTagIDs(ids...)
	return cu
}

// RemoveTags removes "tags" edges to Tag entities.
func (cu *ContentUpdate) RemoveTags(t ...*Tag) *ContentUpdate {
	ids := make([]int, len(t))
	for i := range t {
		ids[i] = t[i].ID
	}
	return cu.RemoveTagIDs(ids...)
}

// ClearCategories clears all "categories" edges to the Category entity.
func (cu *ContentUpdate) ClearCategories() *ContentUpdate {
	cu.mutation.ClearCategories()
	return cu
}

// RemoveCategoryIDs removes the "categories" edge to Category entities by IDs.
func (cu *ContentUpdate) RemoveCategoryIDs(ids ...int) *ContentUpdate {
	cu.mutation.RemoveCategoryIDs(ids...)
	return cu
}

// RemoveCategories removes "categories" edges to Category entities.
func (cu *ContentUpdate) RemoveCategories(c ...*Category) *ContentUpdate {
	ids := make([]int, len(c))
	for i := range c {
		ids[i] = c[i].ID
	}
	return cu.RemoveCategoryIDs(ids...)
}

// ClearComments clears all "comments" edges to the Comment entity.
func (cu *ContentUpdate) ClearComments() *ContentUpdate {
	cu.mutation.ClearComments()
	return cu
}

// RemoveCommentIDs removes the "comments" edge to Comment entities by IDs.
func (cu *ContentUpdate) RemoveCommentIDs(ids ...int) *ContentUpdate {
	cu.mutation.RemoveCommentIDs(ids...)
	return cu
}

// RemoveComments removes "comments" edges to Comment entities.
func (cu *ContentUpdate) RemoveComments(c ...*Comment) *ContentUpdate {
	ids := make([]int, len(c))
	for i := range c {
		ids[i] = c[i].ID
	}
	return cu.RemoveCommentIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (cu *ContentUpdate) Save(ctx context.Context) (int, error) {
	cu.defaults()
	return withHooks(ctx, cu.sqlSave, cu.mutation, cu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (cu *ContentUpdate) SaveX(ctx context.Context) int {
	affected, err := cu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (cu *ContentUpdate) Exec(ctx context.Context) error {
	_, err := cu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cu *ContentUpdate) ExecX(ctx context.Context) {
	if err := cu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (cu *ContentUpdate) defaults() {
	if _, ok := cu.mutation.UpdatedAt(); !ok {
		v := content.UpdateDefaultUpdatedAt()
		cu.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (cu *ContentUpdate) check() error {
	if v, ok := cu.mutation.Title(); ok {
		if err := content.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Content.title": %w`, err)}
		}
	}
	if v, ok := cu.mutation.Status(); ok {
		if err := content.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Content.status": %w`, err)}
		}
	}
	if v, ok := cu.mutation.Slug(); ok {
		if err := content.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`ent: validator failed for field "Content.slug": %w`, err)}
		}
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (cu *ContentUpdate) Modify(modifiers ...func(u *sql.UpdateBuilder)) *ContentUpdate {
	cu.modifiers = append(cu.modifiers, modifiers...)
	return cu
}

func (cu *ContentUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := cu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(content.Table, content.Columns, sqlgraph.NewFieldSpec(content.FieldID, field.TypeInt))
	if ps := cu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := cu.mutation.Title(); ok {
		_spec.SetField(content.FieldTitle, field.TypeString, value)
	}
	if value, ok := cu.mutation.Body(); ok {
		_spec.SetField(content.FieldBody, field.TypeString, value)
	}
	if value, ok := cu.mutation.Status(); ok {
		_spec.SetField(content.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := cu.mutation.Slug(); ok {
		_spec.SetField(content.FieldSlug, field.TypeString, value)
	}
	if cu.mutation.SlugCleared() {
		_spec.ClearField(content.FieldSlug, field.TypeString)
	}
	if value, ok := cu.mutation.UpdatedAt(); ok {
		_spec.SetField(content.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := cu.mutation.PublishedAt(); ok {
		_spec.SetField(content.FieldPublishedAt, field.TypeTime, value)
	}
	if cu.mutation.PublishedAtCleared() {
		_spec.ClearField(content.FieldPublishedAt, field.TypeTime)
	}
	if value, ok := cu.mutation.DisplayOrder(); ok {
		_spec.SetField(content.FieldDisplayOrder, field.TypeInt, value)
	}
	if value, ok := cu.mutation.AddedDisplayOrder(); ok {
		_spec.AddField(content.FieldDisplayOrder, field.TypeInt, value)
	}
	if cu.mutation.TagsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   content.TagsTable,
			Columns: content.TagsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tag.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := cu.mutation.RemovedTagsIDs(); len(nodes) > 0 && !cu.mutation.TagsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   content.TagsTable,
			Columns: content.TagsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tag.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := cu.mutation.TagsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   content.TagsTable,
			Columns: content.TagsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tag.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if cu.mutation.CategoriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   content.CategoriesTable,
			Columns: content.CategoriesPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(category.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := cu.mutation.RemovedCategoriesIDs(); len(nodes) > 0 && !cu.mutation.CategoriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   content.CategoriesTable,
			Columns: content.CategoriesPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(category.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := cu.mutation.CategoriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   content.CategoriesTable,
			Columns: content.CategoriesPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(category.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if cu.mutation.CommentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   content.CommentsTable,
			Columns: []string{content.CommentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(comment.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := cu.mutation.RemovedCommentsIDs(); len(nodes) > 0 && !cu.mutation.CommentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   content.CommentsTable,
			Columns: []string{content.CommentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(comment.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := cu.mutation.CommentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   content.CommentsTable,
			Columns: []string{content.CommentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(comment.FieldID, field.TypeInt),
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
			err = &NotFoundError{content.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	cu.mutation.done = true
	return n, nil
}

// ContentUpdateOne is the builder for updating a single Content entity.
type ContentUpdateOne struct {
	config
	fields    []string
	hooks     []Hook
	mutation  *ContentMutation
	modifiers []func(*sql.UpdateBuilder)
}

// SetTitle sets the "title" field.
func (cuo *ContentUpdateOne) SetTitle(s string) *ContentUpdateOne {
	cuo.mutation.SetTitle(s)
	return cuo
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (cuo *ContentUpdateOne) SetNillableTitle(s *string) *ContentUpdateOne {
	if s != nil {
		cuo.SetTitle(*s)
	}
	return cuo
}

// SetBody sets the "body" field.
func (cuo *ContentUpdateOne) SetBody(s string) *ContentUpdateOne {
	cuo.mutation.SetBody(s)
	return cuo
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (cuo *ContentUpdateOne) SetNillableBody(s *string) *ContentUpdateOne {
	if s != nil {
		cuo.SetBody(*s)
	}
	return cuo
}

// SetStatus sets the "status" field.
func (cuo *ContentUpdateOne) SetStatus(c content.Status) *ContentUpdateOne {
	cuo.mutation.SetStatus(c)
	return cuo
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (cuo *ContentUpdateOne) SetNillableStatus(c *content.Status) *ContentUpdateOne {
	if c != nil {
		cuo.SetStatus(*c)
	}
	return cuo
}

// SetSlug sets the "slug" field.
func (cuo *ContentUpdateOne) SetSlug(s string) *ContentUpdateOne {
	cuo.mutation.SetSlug(s)
	return cuo
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (cuo *ContentUpdateOne) SetNillableSlug(s *string) *ContentUpdateOne {
	if s != nil {
		cuo.SetSlug(*s)
	}
	return cuo
}

// ClearSlug clears the value of the "slug" field.
func (cuo *ContentUpdateOne) ClearSlug() *ContentUpdateOne {
	cuo.mutation.ClearSlug()
	return cuo
}

// SetUpdatedAt sets the "updated_at" field.
func (cuo *ContentUpdateOne) SetUpdatedAt(t time.Time) *ContentUpdateOne {
	cuo.mutation.SetUpdatedAt(t)
	return cuo
}

// SetPublishedAt sets the "published_at" field.
func (cuo *ContentUpdateOne) SetPublishedAt(t time.Time) *ContentUpdateOne {
	cuo.mutation.SetPublishedAt(t)
	return cuo
}

// SetNillablePublishedAt sets the "published_at" field if the given value is not nil.
func (cuo *ContentUpdateOne) SetNillablePublishedAt(t *time.Time) *ContentUpdateOne {
	if t != nil {
		cuo.SetPublishedAt(*t)
	}
	return cuo
}

// ClearPublishedAt clears the value of the "published_at" field.
func (cuo *ContentUpdateOne) ClearPublishedAt() *ContentUpdateOne {
	cuo.mutation.ClearPublishedAt()
	return cuo
}

// SetDisplayOrder sets the "display_order" field.
func (cuo *ContentUpdateOne) SetDisplayOrder(i int) *ContentUpdateOne {
	cuo.mutation.ResetDisplayOrder()
	cuo.mutation.SetDisplayOrder(i)
	return cuo
}

// SetNillableDisplayOrder sets the "display_order" field if the given value is not nil.
func (cuo *ContentUpdateOne) SetNillableDisplayOrder(i *int) *ContentUpdateOne {
	if i != nil {
		cuo.SetDisplayOrder(*i)
	}
	return cuo
}

// AddDisplayOrder adds i to the "display_order" field.
func (cuo *ContentUpdateOne) AddDisplayOrder(i int) *ContentUpdateOne {
	cuo.mutation.AddDisplayOrder(i)
	return cuo
}

// AddTagIDs adds the "tags" edge to the Tag entity by IDs.
func (cuo *ContentUpdateOne) AddTagIDs(ids ...int) *ContentUpdateOne {
	cuo.mutation.AddTagIDs(ids...)
	return cuo
}

// AddTags adds the "tags" edges to the Tag entity.
func (cuo *ContentUpdateOne) AddTags(t ...*Tag) *ContentUpdateOne {
	ids := make([]int, len(t))
	for i := range t {
		ids[i] = t[i].ID
	}
	return cuo.AddTagIDs(ids...)
}

// AddCategoryIDs adds the "categories" edge to the Category entity by IDs.
func (cuo *ContentUpdateOne) AddCategoryIDs(ids ...int) *ContentUpdateOne {
	cuo.mutation.AddCategoryIDs(ids...)
	return cuo
}

// AddCategories adds the "categories" edges to the Category entity.
func (cuo *ContentUpdateOne) AddCategories(c ...*Category) *ContentUpdateOne {
	ids := make([]int, len(c))
	for i := range c {
		ids[i] = c[i].ID
	}
	return cuo.AddCategoryIDs(ids...)
}

// AddCommentIDs adds the "comments" edge to the Comment entity by IDs.
func (cuo *ContentUpdateOne) AddCommentIDs(ids ...int) *ContentUpdateOne {
	cuo.mutation.AddCommentIDs(ids...)
	return cuo
}

// AddComments adds the "comments" edges to the Comment entity.
func (cuo *ContentUpdateOne) AddComments(c ...*Comment) *ContentUpdateOne {
	ids := make([]int, len(c))
	for i := range c {
		ids[i] = c[i].ID
	}
	return cuo.AddCommentIDs(ids...)
}

// Mutation returns the ContentMutation object of the builder.
func (cuo *ContentUpdateOne) Mutation() *ContentMutation {
	return cuo.mutation
}

// ClearTags clears all "tags" edges to the Tag entity.
func (cuo *ContentUpdateOne) ClearTags() *ContentUpdateOne {
	cuo.mutation.ClearTags()
	return cuo
}

// RemoveTagIDs removes the "tags" edge to Tag entities by IDs.
func (cuo *ContentUpdateOne) RemoveTagIDs(ids ...int) *ContentUpdateOne {
	cuo.mutation.RemoveTagIDs(ids...)
	return cuo
}

// RemoveTags removes "tags" edges to Tag entities.
func (cuo *ContentUpdateOne) RemoveTags(t ...*Tag) *ContentUpdateOne {
	ids := make([]int, len(t))
	for i := range t {
		ids[i] = t[i].ID
	}
	return cuo.RemoveTagIDs(ids...)
}

// ClearCategories clears all "categories" edges to the Category entity.
func (cuo *ContentUpdateOne) ClearCategories() *ContentUpdateOne {
	cuo.mutation.ClearCategories()
	return cuo
}

// RemoveCategoryIDs removes the "categories" edge to Category entities by IDs.
func (cuo *ContentUpdateOne) RemoveCategoryIDs(ids ...int) *ContentUpdateOne {
	cuo.mutation.RemoveCategoryIDs(ids...)
	return cuo
}

// RemoveCategories removes "categories" edges to Category entities.
func (cuo *ContentUpdateOne) RemoveCategories(c ...*Category) *ContentUpdateOne {
	ids := make([]int, len(c))
	for i := range c {
		ids[i] = c[i].ID
	}
	return cuo.RemoveCategoryIDs(ids...)
}

// ClearComments clears all "comments" edges to the Comment entity.
func (cuo *ContentUpdateOne) ClearComments() *ContentUpdateOne {
	cuo.mutation.ClearComments()
	return cuo
}

// RemoveCommentIDs removes the "comments" edge to Comment entities by IDs.
func (cuo *ContentUpdateOne) RemoveCommentIDs(ids ...int) *ContentUpdateOne {
	cuo.mutation.RemoveCommentIDs(ids...)
	return cuo
}

// RemoveComments removes "comments" edges to Comment entities.
func (cuo *ContentUpdateOne) RemoveComments(c ...*Comment) *ContentUpdateOne {
	ids := make([]int, len(c))
	for i := range c {
		ids[i] = c[i].ID
	}
	return cuo.RemoveCommentIDs(ids...)
}

// Where appends a list predicates to the ContentUpdate builder.
func (cuo *ContentUpdateOne) Where(ps ...predicate.Content) *ContentUpdateOne {
	cuo.mutation.Where(ps...)
	return cuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (cuo *ContentUpdateOne) Select(field string, fields ...string) *ContentUpdateOne {
	cuo.fields = append([]string{field}, fields...)
	return cuo
}

// Save executes the query and returns the updated Content entity.
func (cuo *ContentUpdateOne) Save(ctx context.Context) (*Content, error) {
	cuo.defaults()
	return withHooks(ctx, cuo.sqlSave, cuo.mutation, cuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (cuo *ContentUpdateOne) SaveX(ctx context.Context) *Content {
	node, err := cuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (cuo *ContentUpdateOne) Exec(ctx context.Context) error {
	_, err := cuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cuo *ContentUpdateOne) ExecX(ctx context.Context) {
	if err := cuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (cuo *ContentUpdateOne) defaults() {
	if _, ok := cuo.mutation.UpdatedAt(); !ok {
		v := content.UpdateDefaultUpdatedAt()
		cuo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (cuo *ContentUpdateOne) check() error {
	if v, ok := cuo.mutation.Title(); ok {
		if err := content.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Content.title": %w`, err)}
		}
	}
	if v, ok := cuo.mutation.Status(); ok {
		if err := content.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Content.status": %w`, err)}
		}
	}
	if v, ok := cuo.mutation.Slug(); ok {
		if err := content.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`ent: validator failed for field "Content.slug": %w`, err)}
		}
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (cuo *ContentUpdateOne) Modify(modifiers ...func(u *sql.UpdateBuilder)) *ContentUpdateOne {
	cuo.modifiers = append(cuo.modifiers, modifiers...)
	return cuo
}

func (cuo *ContentUpdateOne) sqlSave(ctx context.Context) (_node *Content, err error) {
	if err := cuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(content.Table, content.Columns, sqlgraph.NewFieldSpec(content.FieldID, field.TypeInt))
	id, ok := cuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Content.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := cuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, content.FieldID)
		for _, f := range fields {
			if !content.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != content.FieldID {
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
	if value, ok := cuo.mutation.Title(); ok {
		_spec.SetField(content.FieldTitle, field.TypeString, value)
	}
	if value, ok := cuo.mutation.Body(); ok {
		_spec.SetField(content.FieldBody, field.TypeString, value)
	}
	if value, ok := cuo.mutation.Status(); ok {
		_spec.SetField(content.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := cuo.mutation.Slug(); ok {
		_spec.SetField(content.FieldSlug, field.TypeString, value)
	}
	if cuo.mutation.SlugCleared() {
		_spec.ClearField(content.FieldSlug, field.TypeString)
	}
	if value, ok := cuo.mutation.UpdatedAt(); ok {
		_spec.SetField(content.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := cuo.mutation.PublishedAt(); ok {
		_spec.SetField(content.FieldPublishedAt, field.TypeTime, value)
	}
	if cuo.mutation.PublishedAtCleared() {
		_spec.ClearField(content.FieldPublishedAt, field.TypeTime)
	}
	if value, ok := cuo.mutation.DisplayOrder(); ok {
		_spec.SetField(content.FieldDisplayOrder, field.TypeInt, value)
	}
	if value, ok := cuo.mutation.AddedDisplayOrder(); ok {
		_spec.AddField(content.FieldDisplayOrder, field.TypeInt, value)
	}
	if cuo.mutation.TagsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   content.TagsTable,
			Columns: content.TagsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tag.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := cuo.mutation.RemovedTagsIDs(); len(nodes) > 0 && !cuo.mutation.TagsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   content.TagsTable,
			Columns: content.TagsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tag.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := cuo.mutation.TagsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   content.TagsTable,
			Columns: content.TagsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tag.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if cuo.mutation.CategoriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   content.CategoriesTable,
			Columns: content.CategoriesPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(category.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := cuo.mutation.RemovedCategoriesIDs(); len(nodes) > 0 && !cuo.mutation.CategoriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   content.CategoriesTable,
			Columns: content.CategoriesPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(category.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := cuo.mutation.CategoriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   content.CategoriesTable,
			Columns: content.CategoriesPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(category.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if cuo.mutation.CommentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   content.CommentsTable,
			Columns: []string{content.CommentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(comment.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := cuo.mutation.RemovedCommentsIDs(); len(nodes) > 0 && !cuo.mutation.CommentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   content.CommentsTable,
			Columns: []string{content.CommentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(comment.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := cuo.mutation.CommentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   content.CommentsTable,
			Columns: []string{content.CommentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(comment.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_spec.AddModifiers(cuo.modifiers...)
	_node = &Content{config: cuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, cuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{content.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	cuo.mutation.done = true
	return _node, nil
}
