package model

import (
	"fmt"
	"time"
)

// Comment 是评论的核心领域模型。
// 评论永远从属于一个内容条目，ContentID 必填；
// Content 仅在仓储层显式加载关联时填充。
type Comment struct {
	ID        int       `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// --- 内容 ---
	Body     string `json:"body"`
	BodyHTML string `json:"body_html"`

	// --- 评论者信息 ---
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	WebSite *string `json:"web_site,omitempty"`

	// --- 核心关联字段 ---
	ContentID int      `json:"content_id"`
	Content   *Content `json:"-"`
}

// URL 返回评论的永久链接路径，锚点指向所属文章中的评论位置。
// 需要已加载 Content 关联；未加载时退化为仅含锚点的文章ID链接。
func (c *Comment) URL() string {
	if c.Content != nil {
		return fmt.Sprintf("%s#comment-%d", c.Content.URL(), c.ID)
	}
	return fmt.Sprintf("/post/%d#comment-%d", c.ContentID, c.ID)
}
