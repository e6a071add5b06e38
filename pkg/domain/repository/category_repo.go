package repository

import (
	"context"

	"github.com/xyhcode/gocms/pkg/domain/model"
)

// CategoryRepository 定义了分类数据的持久化操作接口。
type CategoryRepository interface {
	// FindAllOrderedByName 按名称升序返回全部分类（侧边栏用）。
	FindAllOrderedByName(ctx context.Context) ([]*model.Category, error)

	// Count 统计分类总数（后台表格用）。
	Count(ctx context.Context) (int64, error)

	// FindPage 按通用分页请求获取分类（后台表格用）。
	FindPage(ctx context.Context, req PageRequest) ([]*model.Category, error)
}
