package model

import "time"

// Parameter 是站点配置参数的领域模型，name 为唯一键。
type Parameter struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Value     string    `json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
