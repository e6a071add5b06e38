package repository

import (
	"context"

	"github.com/xyhcode/gocms/pkg/domain/model"
)

// TagRepository 定义了标签数据的持久化操作接口。
type TagRepository interface {
	// Count 统计标签总数（后台表格用）。
	Count(ctx context.Context) (int64, error)

	// FindPage 按通用分页请求获取标签（后台表格用）。
	FindPage(ctx context.Context, req PageRequest) ([]*model.Tag, error)
}
