// Package admin 实现后台数据接口：仪表盘计数与各实体的表格查询。
package admin

import (
	"context"

	"github.com/xyhcode/gocms/pkg/datatable"
	"github.com/xyhcode/gocms/pkg/domain/model"
	"github.com/xyhcode/gocms/pkg/domain/repository"
)

// DataSource 把任意仓储的计数与分页查询包装成表格查询的数据来源。
type DataSource[T any] struct {
	Count    func(ctx context.Context) (int64, error)
	FindPage func(ctx context.Context, req repository.PageRequest) ([]*T, error)
}

// tableModel 执行一次完整的表格查询：翻译请求、取总数、取当前页。
func tableModel[T any](ctx context.Context, req *datatable.Request, src DataSource[T]) (*datatable.Response[T], error) {
	pageReq, err := req.ToPageRequest()
	if err != nil {
		return nil, err
	}
	total, err := src.Count(ctx)
	if err != nil {
		return nil, err
	}
	items, err := src.FindPage(ctx, pageReq)
	if err != nil {
		return nil, err
	}
	return &datatable.Response[T]{
		Draw:            req.Draw,
		RecordsTotal:    total,
		RecordsFiltered: total,
		Data:            items,
	}, nil
}

// Dashboard 是后台首页的统计数据。
type Dashboard struct {
	Posts      int64 `json:"posts"`
	Pages      int64 `json:"pages"`
	Tags       int64 `json:"tags"`
	Categories int64 `json:"categories"`
	Comments   int64 `json:"comments"`
}

// Service 定义了后台数据服务的接口。
type Service interface {
	// Dashboard 返回各实体的总数统计。
	Dashboard(ctx context.Context) (*Dashboard, error)

	// ListPosts 按表格协议分页列出文章（含草稿）。
	ListPosts(ctx context.Context, req *datatable.Request) (*datatable.Response[model.Content], error)

	// ListPages 按表格协议分页列出页面。
	ListPages(ctx context.Context, req *datatable.Request) (*datatable.Response[model.Content], error)

	// ListTags 按表格协议分页列出标签。
	ListTags(ctx context.Context, req *datatable.Request) (*datatable.Response[model.Tag], error)

	// ListCategories 按表格协议分页列出分类。
	ListCategories(ctx context.Context, req *datatable.Request) (*datatable.Response[model.Category], error)

	// ListComments 按表格协议分页列出评论。
	ListComments(ctx context.Context, req *datatable.Request) (*datatable.Response[model.Comment], error)
}

type service struct {
	contentRepo  repository.ContentRepository
	tagRepo      repository.TagRepository
	categoryRepo repository.CategoryRepository
	commentRepo  repository.CommentRepository
}

// NewService 是 admin service 的构造函数。
func NewService(
	contentRepo repository.ContentRepository,
	tagRepo repository.TagRepository,
	categoryRepo repository.CategoryRepository,
	commentRepo repository.CommentRepository,
) Service {
	return &service{
		contentRepo:  contentRepo,
		tagRepo:      tagRepo,
		categoryRepo: categoryRepo,
		commentRepo:  commentRepo,
	}
}

func (s *service) Dashboard(ctx context.Context) (*Dashboard, error) {
	posts, err := s.contentRepo.CountByType(ctx, model.TypePost)
	if err != nil {
		return nil, err
	}
	pages, err := s.contentRepo.CountByType(ctx, model.TypePage)
	if err != nil {
		return nil, err
	}
	tags, err := s.tagRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := s.categoryRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	comments, err := s.commentRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &Dashboard{
		Posts:      posts,
		Pages:      pages,
		Tags:       tags,
		Categories: categories,
		Comments:   comments,
	}, nil
}

func (s *service) ListPosts(ctx context.Context, req *datatable.Request) (*datatable.Response[model.Content], error) {
	return tableModel(ctx, req, s.contentSource(model.TypePost))
}

func (s *service) ListPages(ctx context.Context, req *datatable.Request) (*datatable.Response[model.Content], error) {
	return tableModel(ctx, req, s.contentSource(model.TypePage))
}

func (s *service) ListTags(ctx context.Context, req *datatable.Request) (*datatable.Response[model.Tag], error) {
	return tableModel(ctx, req, DataSource[model.Tag]{
		Count:    s.tagRepo.Count,
		FindPage: s.tagRepo.FindPage,
	})
}

func (s *service) ListCategories(ctx context.Context, req *datatable.Request) (*datatable.Response[model.Category], error) {
	return tableModel(ctx, req, DataSource[model.Category]{
		Count:    s.categoryRepo.Count,
		FindPage: s.categoryRepo.FindPage,
	})
}

func (s *service) ListComments(ctx context.Context, req *datatable.Request) (*datatable.Response[model.Comment], error) {
	return tableModel(ctx, req, DataSource[model.Comment]{
		Count:    s.commentRepo.Count,
		FindPage: s.commentRepo.FindPage,
	})
}

// contentSource 把内容仓储按类型固定为一个表格数据源。
func (s *service) contentSource(typ model.ContentType) DataSource[model.Content] {
	return DataSource[model.Content]{
		Count: func(ctx context.Context) (int64, error) {
			return s.contentRepo.CountByType(ctx, typ)
		},
		FindPage: func(ctx context.Context, req repository.PageRequest) ([]*model.Content, error) {
			return s.contentRepo.FindPageByType(ctx, typ, req)
		},
	}
}
