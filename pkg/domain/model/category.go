package model

import "time"

// Category 是内容分类的领域模型。
// 分类可以通过 ParentID 组成树形结构；子分类只记录父分类ID，
// 不持有相互引用，成环只能靠创建顺序避免。
type Category struct {
	ID        int       `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Name      string    `json:"name"`
	Slug      *string   `json:"slug,omitempty"`
	ParentID  *int      `json:"parent_id,omitempty"`
}
