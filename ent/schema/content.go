// ent/schema/content.go
package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Content 定义了内容条目（文章与独立页面）的结构。
// 文章(POST)与页面(PAGE)共用一张表，通过 type 字段区分，
// 各自专有的字段（文章的评论、页面的 display_order）只对相应类型有意义。
type Content struct {
	ent.Schema
}

// Annotations of the Content.
func (Content) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.WithComments(true),
		schema.Comment("内容表（文章与页面）"),
	}
}

// Fields 定义了 Content 实体的所有字段。
func (Content) Fields() []ent.Field {
	return []ent.Field{
		field.Int("id"),

		field.Enum("type").
			Values("POST", "PAGE").
			Default("POST").
			Immutable().
			Comment("内容类型：POST-文章，PAGE-页面"),

		field.String("title").
			NotEmpty().
			MaxLen(255).
			Comment("标题"),

		field.Text("body").
			Comment("正文内容"),

		field.Enum("status").
			Values("DRAFT", "PUBLISHED").
			Default("DRAFT").
			Comment("内容状态：DRAFT-草稿，PUBLISHED-已发布"),

		field.String("slug").
			MaxLen(255).
			Optional().
			Nillable().
			Unique().
			Comment("URL 友好的唯一别名，可选"),

		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("创建时间"),

		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("更新时间"),

		field.Time("published_at").
			Optional().
			Nillable().
			Comment("发布时间，内容首次进入 PUBLISHED 状态时写入"),

		field.Int("display_order").
			Default(0).
			Comment("页面在导航中的排序（仅 PAGE 类型使用）"),
	}
}

// Edges 定义了实体间的关系（边）。
func (Content) Edges() []ent.Edge {
	return []ent.Edge{
		// 标签与分类都是多对多的共享关系。
		edge.To("tags", Tag.Type),
		edge.To("categories", Category.Type),

		// 评论由内容条目独占，随内容级联删除。
		edge.To("comments", Comment.Type).
			Annotations(entsql.Annotation{OnDelete: entsql.Cascade}),
	}
}

// Indexes of the Content.
func (Content) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "published_at"),
		index.Fields("type", "status"),
	}
}
