// ent/schema/category.go
package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Category holds the schema definition for the Category entity.
type Category struct {
	ent.Schema
}

// Annotations of the Category.
func (Category) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.WithComments(true),
		schema.Comment("内容分类表"),
	}
}

// Fields of the Category.
func (Category) Fields() []ent.Field {
	return []ent.Field{
		field.Int("id"),

		field.Time("created_at").
			Default(time.Now).
			Immutable(),

		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),

		field.String("name").
			Comment("分类名称").
			Unique().
			NotEmpty(),

		field.String("slug").
			MaxLen(255).
			Optional().
			Nillable().
			Unique().
			Comment("URL 友好的唯一别名，可选"),

		field.Int("parent_id").
			Optional().
			Nillable().
			Comment("父分类ID，顶级分类为 NULL"),
	}
}

// Edges 定义了分类的自引用树形关系。
// 子分类通过 parent_id 指向父分类，不存储相互引用，避免成环。
func (Category) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("children", Category.Type).
			From("parent").
			Field("parent_id").
			Unique(),

		edge.From("contents", Content.Type).
			Ref("categories"),
	}
}
