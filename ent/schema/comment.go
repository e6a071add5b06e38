// ent/schema/comment.go
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

// Comment 定义了 Comment 实体（即数据库中的评论表）的结构。
// 评论必须从属于一个内容条目，不存在独立的评论。
type Comment struct {
	ent.Schema
}

// Annotations of the Comment.
func (Comment) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.WithComments(true),
		schema.Comment("评论表"),
	}
}

// Fields 定义了 Comment 实体的所有字段。
func (Comment) Fields() []ent.Field {
	return []ent.Field{
		field.Int("id"),

		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("创建时间"),

		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("更新时间"),

		// --- 评论内容 ---
		field.Text("body").
			NotEmpty().
			Comment("评论内容原文"),

		field.Text("body_html").
			Comment("经后端安全处理后的HTML格式评论内容"),

		// --- 评论者信息 ---
		field.String("name").
			NotEmpty().
			MaxLen(255).
			Comment("评论者昵称"),

		field.String("email").
			MaxLen(255).
			Comment("评论者邮箱"),

		field.String("web_site").
			Optional().
			Nillable().
			MaxLen(255).
			Comment("评论者个人网站链接，可选"),

		// --- 核心关联字段 ---
		field.Int("content_id").
			Comment("评论所属的内容ID"),
	}
}

// Edges 定义了实体间的关系（边）。
func (Comment) Edges() []ent.Edge {
	return []ent.Edge{
		// 评论到内容的 "多对一" 关系，外键必填。
		edge.From("content", Content.Type).
			Ref("comments").
			Field("content_id").
			Unique().
			Required(),
	}
}

// Indexes of the Comment.
func (Comment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("content_id", "created_at"),
	}
}
