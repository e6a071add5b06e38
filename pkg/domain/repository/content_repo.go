package repository

import (
	"context"
	"time"

	"github.com/xyhcode/gocms/pkg/domain/model"
)

// ContentRepository 定义了内容数据仓库的接口。
// 它是数据持久化层的抽象，所有方法都使用领域模型，与具体的 ORM (Ent) 解耦。
// 列表查询均接收内容类型（POST/PAGE）与从 0 开始的分页请求。
type ContentRepository interface {
	// FindByID 根据数据库ID获取单个内容条目（包括标签与分类）。
	FindByID(ctx context.Context, id int) (*model.Content, error)

	// FindBySlug 根据唯一别名获取单个内容条目（包括标签与分类）。
	FindBySlug(ctx context.Context, slug string) (*model.Content, error)

	// FindByStatus 按状态分页查询内容。
	FindByStatus(ctx context.Context, typ model.ContentType, status model.ContentStatus, req PageRequest) (*PageResult[model.Content], error)

	// FindByStatusAndDateRange 按状态与发布时间闭区间分页查询内容。
	FindByStatusAndDateRange(ctx context.Context, typ model.ContentType, status model.ContentStatus, start, end time.Time, req PageRequest) (*PageResult[model.Content], error)

	// FindByStatusAndTagID 按状态与标签ID分页查询内容。
	FindByStatusAndTagID(ctx context.Context, typ model.ContentType, status model.ContentStatus, tagID int, req PageRequest) (*PageResult[model.Content], error)

	// FindByStatusAndTagSlug 按状态与标签别名分页查询内容。
	FindByStatusAndTagSlug(ctx context.Context, typ model.ContentType, status model.ContentStatus, tagSlug string, req PageRequest) (*PageResult[model.Content], error)

	// FindByStatusAndCategoryID 按状态与分类ID分页查询内容。
	FindByStatusAndCategoryID(ctx context.Context, typ model.ContentType, status model.ContentStatus, categoryID int, req PageRequest) (*PageResult[model.Content], error)

	// FindByStatusAndCategorySlug 按状态与分类别名分页查询内容。
	FindByStatusAndCategorySlug(ctx context.Context, typ model.ContentType, status model.ContentStatus, categorySlug string, req PageRequest) (*PageResult[model.Content], error)

	// FindAllByType 获取指定类型的全部内容（用于页面导航列表）。
	FindAllByType(ctx context.Context, typ model.ContentType) ([]*model.Content, error)

	// CountByMonth 按月统计指定状态的内容数量，按年月降序返回。
	CountByMonth(ctx context.Context, typ model.ContentType, status model.ContentStatus) ([]*model.ArchiveMonth, error)

	// CountByType 统计指定类型的内容总数（后台表格用）。
	CountByType(ctx context.Context, typ model.ContentType) (int64, error)

	// FindPageByType 按通用分页请求获取指定类型的内容（后台表格用）。
	FindPageByType(ctx context.Context, typ model.ContentType, req PageRequest) ([]*model.Content, error)
}
