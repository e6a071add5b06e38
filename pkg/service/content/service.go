// Package content 实现面向访客的内容列表与详情：
// 首页、归档、标签、分类视图以及文章详情页的视图模型组装。
package content

import (
	"context"

	"github.com/xyhcode/gocms/pkg/constant"
	"github.com/xyhcode/gocms/pkg/domain/model"
	"github.com/xyhcode/gocms/pkg/domain/repository"
	"github.com/xyhcode/gocms/pkg/service/archive"
	"github.com/xyhcode/gocms/pkg/service/comment"
	"github.com/xyhcode/gocms/pkg/service/parameter"
)

// ViewModel 是交给展示层的视图模型。
// 列表视图包含 posts/urlPrefix/olderUrl/newerUrl/archives/categories/config/pages，
// 详情视图包含 post/newComment 加上同样的侧边栏数据。
type ViewModel map[string]interface{}

// Service 定义了内容查询服务的接口。
// 所有列表操作只返回已发布的文章，按发布时间降序，
// 页码从 1 开始，page <= 0 返回 constant.ErrInvalidPage，
// 越界页码返回空列表而不是错误。
type Service interface {
	// List 列出全部已发布文章。
	List(ctx context.Context, page int) (ViewModel, error)

	// ListByDate 列出指定归档窗口内的已发布文章。
	ListByDate(ctx context.Context, year, month, day, page int) (ViewModel, error)

	// ListByTagID 列出带指定标签的已发布文章。
	ListByTagID(ctx context.Context, tagID, page int) (ViewModel, error)

	// ListByTagSlug 按标签别名列出已发布文章。
	ListByTagSlug(ctx context.Context, slug string, page int) (ViewModel, error)

	// ListByCategoryID 列出指定分类下的已发布文章。
	ListByCategoryID(ctx context.Context, categoryID, page int) (ViewModel, error)

	// ListByCategorySlug 按分类别名列出已发布文章。
	ListByCategorySlug(ctx context.Context, slug string, page int) (ViewModel, error)

	// GetByID 按数据库ID获取已发布文章详情。
	GetByID(ctx context.Context, id int) (ViewModel, error)

	// GetBySlug 按别名获取已发布文章详情。
	GetBySlug(ctx context.Context, slug string) (ViewModel, error)
}

type service struct {
	contentRepo  repository.ContentRepository
	categoryRepo repository.CategoryRepository
	archiveSvc   archive.Service
	paramSvc     parameter.Service
}

// NewService 是 content service 的构造函数。
func NewService(
	contentRepo repository.ContentRepository,
	categoryRepo repository.CategoryRepository,
	archiveSvc archive.Service,
	paramSvc parameter.Service,
) Service {
	return &service{
		contentRepo:  contentRepo,
		categoryRepo: categoryRepo,
		archiveSvc:   archiveSvc,
		paramSvc:     paramSvc,
	}
}

func (s *service) List(ctx context.Context, page int) (ViewModel, error) {
	req, err := s.pageRequest(page)
	if err != nil {
		return nil, err
	}
	result, err := s.contentRepo.FindByStatus(ctx, model.TypePost, model.StatusPublished, req)
	if err != nil {
		return nil, err
	}
	return s.listModel(ctx, result, "")
}

func (s *service) ListByDate(ctx context.Context, year, month, day, page int) (ViewModel, error) {
	req, err := s.pageRequest(page)
	if err != nil {
		return nil, err
	}
	rng, err := s.archiveSvc.Resolve(year, month, day)
	if err != nil {
		return nil, err
	}
	if rng.IsZero() {
		result, err := s.contentRepo.FindByStatus(ctx, model.TypePost, model.StatusPublished, req)
		if err != nil {
			return nil, err
		}
		return s.listModel(ctx, result, "")
	}
	result, err := s.contentRepo.FindByStatusAndDateRange(ctx, model.TypePost, model.StatusPublished, rng.Start, rng.End, req)
	if err != nil {
		return nil, err
	}
	return s.listModel(ctx, result, rng.URLPrefix)
}

func (s *service) ListByTagID(ctx context.Context, tagID, page int) (ViewModel, error) {
	req, err := s.pageRequest(page)
	if err != nil {
		return nil, err
	}
	result, err := s.contentRepo.FindByStatusAndTagID(ctx, model.TypePost, model.StatusPublished, tagID, req)
	if err != nil {
		return nil, err
	}
	return s.listModel(ctx, result, tagPrefix(tagID))
}

func (s *service) ListByTagSlug(ctx context.Context, slug string, page int) (ViewModel, error) {
	req, err := s.pageRequest(page)
	if err != nil {
		return nil, err
	}
	result, err := s.contentRepo.FindByStatusAndTagSlug(ctx, model.TypePost, model.StatusPublished, slug, req)
	if err != nil {
		return nil, err
	}
	return s.listModel(ctx, result, "/tag/"+slug)
}

func (s *service) ListByCategoryID(ctx context.Context, categoryID, page int) (ViewModel, error) {
	req, err := s.pageRequest(page)
	if err != nil {
		return nil, err
	}
	result, err := s.contentRepo.FindByStatusAndCategoryID(ctx, model.TypePost, model.StatusPublished, categoryID, req)
	if err != nil {
		return nil, err
	}
	return s.listModel(ctx, result, categoryPrefix(categoryID))
}

func (s *service) ListByCategorySlug(ctx context.Context, slug string, page int) (ViewModel, error) {
	req, err := s.pageRequest(page)
	if err != nil {
		return nil, err
	}
	result, err := s.contentRepo.FindByStatusAndCategorySlug(ctx, model.TypePost, model.StatusPublished, slug, req)
	if err != nil {
		return nil, err
	}
	return s.listModel(ctx, result, "/category/"+slug)
}

func (s *service) GetByID(ctx context.Context, id int) (ViewModel, error) {
	item, err := s.contentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.detailModel(ctx, item)
}

func (s *service) GetBySlug(ctx context.Context, slug string) (ViewModel, error) {
	item, err := s.contentRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return s.detailModel(ctx, item)
}

// pageRequest 把外部 1 基页码换算为仓储层的 0 基分页请求。
func (s *service) pageRequest(page int) (repository.PageRequest, error) {
	if page <= 0 {
		return repository.PageRequest{}, constant.ErrInvalidPage
	}
	return repository.PageRequest{
		Page:     page - 1,
		PageSize: s.paramSvc.GetInt(constant.KeyPostsPerPage, 10),
	}, nil
}

// listModel 组装列表视图模型：文章分页、前后翻页链接，
// 加上所有视图共享的侧边栏数据。
func (s *service) listModel(ctx context.Context, posts *repository.PageResult[model.Content], urlPrefix string) (ViewModel, error) {
	page := posts.Page + 1
	vm := ViewModel{
		"posts":     posts,
		"urlPrefix": urlPrefix,
		"olderUrl":  OlderPageURL(urlPrefix, page, posts.TotalPages()),
		"newerUrl":  NewerPageURL(urlPrefix, page),
	}
	if err := s.addCommonModel(ctx, vm); err != nil {
		return nil, err
	}
	return vm, nil
}

// detailModel 组装详情视图模型。草稿不对外可见。
func (s *service) detailModel(ctx context.Context, item *model.Content) (ViewModel, error) {
	if !item.IsPublished() {
		return nil, constant.ErrNotFound
	}
	vm := ViewModel{
		"post":       item,
		"newComment": &comment.Draft{},
	}
	if err := s.addCommonModel(ctx, vm); err != nil {
		return nil, err
	}
	return vm, nil
}

// addCommonModel 填充所有视图共享的数据：
// 归档摘要、分类列表、全部配置参数与页面导航。
func (s *service) addCommonModel(ctx context.Context, vm ViewModel) error {
	archives, err := s.contentRepo.CountByMonth(ctx, model.TypePost, model.StatusPublished)
	if err != nil {
		return err
	}
	categories, err := s.categoryRepo.FindAllOrderedByName(ctx)
	if err != nil {
		return err
	}
	pages, err := s.contentRepo.FindAllByType(ctx, model.TypePage)
	if err != nil {
		return err
	}
	vm["archives"] = archives
	vm["categories"] = categories
	vm["config"] = s.paramSvc.All()
	vm["pages"] = pages
	return nil
}
