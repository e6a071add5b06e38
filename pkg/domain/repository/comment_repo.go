package repository

import (
	"context"

	"github.com/xyhcode/gocms/pkg/domain/model"
)

// CreateCommentParams 封装了创建评论时需要持久化的所有数据。
// 时间戳由存储层写入。
type CreateCommentParams struct {
	ContentID int
	Body      string
	BodyHTML  string
	Name      string
	Email     string
	WebSite   *string
}

// CommentRepository 定义了评论数据的持久化操作接口。
type CommentRepository interface {
	// Create 创建一条新评论并关联到内容条目。
	// 插入与关联必须是同一个事务边界，不允许出现孤儿评论。
	Create(ctx context.Context, params *CreateCommentParams) (*model.Comment, error)

	// FindLatest 分页查找最新评论，按创建时间降序，并加载所属内容。
	FindLatest(ctx context.Context, req PageRequest) (*PageResult[model.Comment], error)

	// Count 统计评论总数（后台表格与仪表盘用）。
	Count(ctx context.Context) (int64, error)

	// FindPage 按通用分页请求获取评论（后台表格用）。
	FindPage(ctx context.Context, req PageRequest) ([]*model.Comment, error)
}
