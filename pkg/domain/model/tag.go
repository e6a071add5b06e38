package model

import "time"

// Tag 是内容标签的领域模型。
type Tag struct {
	ID        int       `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Name      string    `json:"name"`
	Slug      *string   `json:"slug,omitempty"`
}
