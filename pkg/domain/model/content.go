package model

import (
	"fmt"
	"time"
)

// ContentType 区分内容的两种变体：文章与独立页面。
type ContentType string

const (
	TypePost ContentType = "POST" // 文章，携带评论集合
	TypePage ContentType = "PAGE" // 页面，携带导航排序
)

// ContentStatus 定义了内容的状态。
type ContentStatus string

const (
	StatusDraft     ContentStatus = "DRAFT"     // 草稿
	StatusPublished ContentStatus = "PUBLISHED" // 已发布
)

// Content 是内容条目的核心领域模型，业务逻辑（Service层）围绕它进行。
// 文章与页面共用该结构，通过 Type 字段区分；
// Comments 仅对文章有意义，DisplayOrder 仅对页面有意义。
type Content struct {
	ID          int           `json:"id"`
	Type        ContentType   `json:"type"`
	Title       string        `json:"title"`
	Body        string        `json:"body"`
	Status      ContentStatus `json:"status"`
	Slug        *string       `json:"slug,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
	PublishedAt *time.Time    `json:"published_at,omitempty"`

	Tags       []*Tag      `json:"tags,omitempty"`
	Categories []*Category `json:"categories,omitempty"`

	// --- 文章专有 ---
	Comments []*Comment `json:"comments,omitempty"`

	// --- 页面专有 ---
	DisplayOrder int `json:"display_order,omitempty"`
}

// IsPublished 检查内容是否已发布。
func (c *Content) IsPublished() bool {
	return c.Status == StatusPublished
}

// URL 返回内容的永久链接路径。
// 设置了 slug 时优先使用 slug，否则回退到数字ID。
func (c *Content) URL() string {
	if c.Slug != nil && *c.Slug != "" {
		return "/post/" + *c.Slug
	}
	return fmt.Sprintf("/post/%d", c.ID)
}

// ArchiveMonth 代表一个归档月份及其已发布内容数量。
// 它是读取时重新计算的报表实体，不落库。
type ArchiveMonth struct {
	Year  int   `json:"year"`
	Month int   `json:"month"`
	Count int64 `json:"count"`
}
