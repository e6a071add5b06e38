// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CategoriesColumns holds the columns for the "categories" table.
	CategoriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Unique: true, Comment: "分类名称"},
		{Name: "slug", Type: field.TypeString, Unique: true, Nullable: true, Size: 255, Comment: "URL 友好的唯一别名，可选"},
		{Name: "parent_id", Type: field.TypeInt, Nullable: true, Comment: "父分类ID，顶级分类为 NULL"},
	}
	// CategoriesTable holds the schema information for the "categories" table.
	CategoriesTable = &schema.Table{
		Name:       "categories",
		Comment:    "内容分类表",
		Columns:    CategoriesColumns,
		PrimaryKey: []*schema.Column{CategoriesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "categories_categories_children",
				Columns:    []*schema.Column{CategoriesColumns[5]},
				RefColumns: []*schema.Column{CategoriesColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
	}
	// CommentsColumns holds the columns for the "comments" table.
	CommentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime, Comment: "创建时间"},
		{Name: "updated_at", Type: field.TypeTime, Comment: "更新时间"},
		{Name: "body", Type: field.TypeString, Size: 2147483647, Comment: "评论内容原文"},
		{Name: "body_html", Type: field.TypeString, Size: 2147483647, Comment: "经后端安全处理后的HTML格式评论内容"},
		{Name: "name", Type: field.TypeString, Size: 255, Comment: "评论者昵称"},
		{Name: "email", Type: field.TypeString, Size: 255, Comment: "评论者邮箱"},
		{Name: "web_site", Type: field.TypeString, Nullable: true, Size: 255, Comment: "评论者个人网站链接，可选"},
		{Name: "content_id", Type: field.TypeInt, Comment: "评论所属的内容ID"},
	}
	// CommentsTable holds the schema information for the "comments" table.
	CommentsTable = &schema.Table{
		Name:       "comments",
		Comment:    "评论表",
		Columns:    CommentsColumns,
		PrimaryKey: []*schema.Column{CommentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "comments_contents_comments",
				Columns:    []*schema.Column{CommentsColumns[8]},
				RefColumns: []*schema.Column{ContentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "comment_content_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{CommentsColumns[8], CommentsColumns[1]},
			},
		},
	}
	// ContentsColumns holds the columns for the "contents" table.
	ContentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "type", Type: field.TypeEnum, Comment: "内容类型：POST-文章，PAGE-页面", Enums: []string{"POST", "PAGE"}, Default: "POST"},
		{Name: "title", Type: field.TypeString, Size: 255, Comment: "标题"},
		{Name: "body", Type: field.TypeString, Size: 2147483647, Comment: "正文内容"},
		{Name: "status", Type: field.TypeEnum, Comment: "内容状态：DRAFT-草稿，PUBLISHED-已发布", Enums: []string{"DRAFT", "PUBLISHED"}, Default: "DRAFT"},
		{Name: "slug", Type: field.TypeString, Unique: true, Nullable: true, Size: 255, Comment: "URL 友好的唯一别名，可选"},
		{Name: "created_at", Type: field.TypeTime, Comment: "创建时间"},
		{Name: "updated_at", Type: field.TypeTime, Comment: "更新时间"},
		{Name: "published_at", Type: field.TypeTime, Nullable: true, Comment: "发布时间，内容首次进入 PUBLISHED 状态时写入"},
		{Name: "display_order", Type: field.TypeInt, Comment: "页面在导航中的排序（仅 PAGE 类型使用）", Default: 0},
	}
	// ContentsTable holds the schema information for the "contents" table.
	ContentsTable = &schema.Table{
		Name:       "contents",
		Comment:    "内容表（文章与页面）",
		Columns:    ContentsColumns,
		PrimaryKey: []*schema.Column{ContentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "content_status_published_at",
				Unique:  false,
				Columns: []*schema.Column{ContentsColumns[4], ContentsColumns[8]},
			},
			{
				Name:    "content_type_status",
				Unique:  false,
				Columns: []*schema.Column{ContentsColumns[1], ContentsColumns[4]},
			},
		},
	}
	// ParametersColumns holds the columns for the "parameters" table.
	ParametersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString, Unique: true, Size: 100, Comment: "配置键"},
		{Name: "value", Type: field.TypeString, Size: 2147483647, Comment: "配置值"},
		{Name: "comment", Type: field.TypeString, Nullable: true, Size: 255, Comment: "配置说明"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ParametersTable holds the schema information for the "parameters" table.
	ParametersTable = &schema.Table{
		Name:       "parameters",
		Comment:    "站点配置参数表",
		Columns:    ParametersColumns,
		PrimaryKey: []*schema.Column{ParametersColumns[0]},
	}
	// TagsColumns holds the columns for the "tags" table.
	TagsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Unique: true, Comment: "标签名称"},
		{Name: "slug", Type: field.TypeString, Unique: true, Nullable: true, Size: 255, Comment: "URL 友好的唯一别名，可选"},
	}
	// TagsTable holds the schema information for the "tags" table.
	TagsTable = &schema.Table{
		Name:       "tags",
		Comment:    "内容标签表",
		Columns:    TagsColumns,
		PrimaryKey: []*schema.Column{TagsColumns[0]},
	}
	// ContentTagsColumns holds the columns for the "content_tags" table.
	ContentTagsColumns = []*schema.Column{
		{Name: "content_id", Type: field.TypeInt},
		{Name: "tag_id", Type: field.TypeInt},
	}
	// ContentTagsTable holds the schema information for the "content_tags" table.
	ContentTagsTable = &schema.Table{
		Name:       "content_tags",
		Columns:    ContentTagsColumns,
		PrimaryKey: []*schema.Column{ContentTagsColumns[0], ContentTagsColumns[1]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "content_tags_content_id",
				Columns:    []*schema.Column{ContentTagsColumns[0]},
				RefColumns: []*schema.Column{ContentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "content_tags_tag_id",
				Columns:    []*schema.Column{ContentTagsColumns[1]},
				RefColumns: []*schema.Column{TagsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// ContentCategoriesColumns holds the columns for the "content_categories" table.
	ContentCategoriesColumns = []*schema.Column{
		{Name: "content_id", Type: field.TypeInt},
		{Name: "category_id", Type: field.TypeInt},
	}
	// ContentCategoriesTable holds the schema information for the "content_categories" table.
	ContentCategoriesTable = &schema.Table{
		Name:       "content_categories",
		Columns:    ContentCategoriesColumns,
		PrimaryKey: []*schema.Column{ContentCategoriesColumns[0], ContentCategoriesColumns[1]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "content_categories_content_id",
				Columns:    []*schema.Column{ContentCategoriesColumns[0]},
				RefColumns: []*schema.Column{ContentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "content_categories_category_id",
				Columns:    []*schema.Column{ContentCategoriesColumns[1]},
				RefColumns: []*schema.Column{CategoriesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CategoriesTable,
		CommentsTable,
		ContentsTable,
		ParametersTable,
		TagsTable,
		ContentTagsTable,
		ContentCategoriesTable,
	}
)

func init() {
	CategoriesTable.ForeignKeys[0].RefTable = CategoriesTable
	CommentsTable.ForeignKeys[0].RefTable = ContentsTable
	ContentTagsTable.ForeignKeys[0].RefTable = ContentsTable
	ContentTagsTable.ForeignKeys[1].RefTable = TagsTable
	ContentCategoriesTable.ForeignKeys[0].RefTable = ContentsTable
	ContentCategoriesTable.ForeignKeys[1].RefTable = CategoriesTable
}
