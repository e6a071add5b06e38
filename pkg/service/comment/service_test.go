package comment

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/xyhcode/gocms/pkg/constant"
	"github.com/xyhcode/gocms/pkg/domain/model"
	"github.com/xyhcode/gocms/pkg/domain/repository"
	"github.com/xyhcode/gocms/pkg/service/utility"
)

// fakeContentRepo 只支撑 FindByID，其余方法在评论服务中不会被触达。
type fakeContentRepo struct {
	contents map[int]*model.Content
}

func (r *fakeContentRepo) FindByID(ctx context.Context, id int) (*model.Content, error) {
	c, ok := r.contents[id]
	if !ok {
		return nil, constant.ErrNotFound
	}
	return c, nil
}

func (r *fakeContentRepo) FindBySlug(ctx context.Context, slug string) (*model.Content, error) {
	return nil, constant.ErrNotFound
}

func (r *fakeContentRepo) FindByStatus(ctx context.Context, typ model.ContentType, status model.ContentStatus, req repository.PageRequest) (*repository.PageResult[model.Content], error) {
	return &repository.PageResult[model.Content]{Items: []*model.Content{}}, nil
}

func (r *fakeContentRepo) FindByStatusAndDateRange(ctx context.Context, typ model.ContentType, status model.ContentStatus, start, end time.Time, req repository.PageRequest) (*repository.PageResult[model.Content], error) {
	return &repository.PageResult[model.Content]{Items: []*model.Content{}}, nil
}

func (r *fakeContentRepo) FindByStatusAndTagID(ctx context.Context, typ model.ContentType, status model.ContentStatus, tagID int, req repository.PageRequest) (*repository.PageResult[model.Content], error) {
	return &repository.PageResult[model.Content]{Items: []*model.Content{}}, nil
}

func (r *fakeContentRepo) FindByStatusAndTagSlug(ctx context.Context, typ model.ContentType, status model.ContentStatus, tagSlug string, req repository.PageRequest) (*repository.PageResult[model.Content], error) {
	return &repository.PageResult[model.Content]{Items: []*model.Content{}}, nil
}

func (r *fakeContentRepo) FindByStatusAndCategoryID(ctx context.Context, typ model.ContentType, status model.ContentStatus, categoryID int, req repository.PageRequest) (*repository.PageResult[model.Content], error) {
	return &repository.PageResult[model.Content]{Items: []*model.Content{}}, nil
}

func (r *fakeContentRepo) FindByStatusAndCategorySlug(ctx context.Context, typ model.ContentType, status model.ContentStatus, categorySlug string, req repository.PageRequest) (*repository.PageResult[model.Content], error) {
	return &repository.PageResult[model.Content]{Items: []*model.Content{}}, nil
}

func (r *fakeContentRepo) FindAllByType(ctx context.Context, typ model.ContentType) ([]*model.Content, error) {
	return nil, nil
}

func (r *fakeContentRepo) CountByMonth(ctx context.Context, typ model.ContentType, status model.ContentStatus) ([]*model.ArchiveMonth, error) {
	return nil, nil
}

func (r *fakeContentRepo) CountByType(ctx context.Context, typ model.ContentType) (int64, error) {
	return 0, nil
}

func (r *fakeContentRepo) FindPageByType(ctx context.Context, typ model.ContentType, req repository.PageRequest) ([]*model.Content, error) {
	return nil, nil
}

// fakeCommentRepo 记录创建的评论。
type fakeCommentRepo struct {
	created []*repository.CreateCommentParams
	nextID  int
}

func (r *fakeCommentRepo) Create(ctx context.Context, params *repository.CreateCommentParams) (*model.Comment, error) {
	r.created = append(r.created, params)
	r.nextID++
	c := &model.Comment{
		ID:        r.nextID,
		Body:      params.Body,
		BodyHTML:  params.BodyHTML,
		Name:      params.Name,
		Email:     params.Email,
		WebSite:   params.WebSite,
		ContentID: params.ContentID,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	return c, nil
}

func (r *fakeCommentRepo) FindLatest(ctx context.Context, req repository.PageRequest) (*repository.PageResult[model.Comment], error) {
	return &repository.PageResult[model.Comment]{
		Items:    []*model.Comment{},
		Page:     req.Page,
		PageSize: req.PageSize,
	}, nil
}

func (r *fakeCommentRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.created)), nil
}

func (r *fakeCommentRepo) FindPage(ctx context.Context, req repository.PageRequest) ([]*model.Comment, error) {
	return nil, nil
}

func newTestService(contents map[int]*model.Content) (Service, *fakeCommentRepo, utility.CacheService) {
	contentRepo := &fakeContentRepo{contents: contents}
	commentRepo := &fakeCommentRepo{}
	cache := utility.NewMemoryCacheService()
	return NewService(contentRepo, commentRepo, cache), commentRepo, cache
}

func validDraft() *Draft {
	return &Draft{
		Body:  "这条评论的内容足够长了",
		Name:  "访客甲乙丙",
		Email: "visitor@example.com",
	}
}

func publishedPost(id int) *model.Content {
	return &model.Content{
		ID:     id,
		Type:   model.TypePost,
		Title:  "一篇文章",
		Status: model.StatusPublished,
	}
}

func TestAddComment(t *testing.T) {
	svc, commentRepo, _ := newTestService(map[int]*model.Content{1: publishedPost(1)})

	draft := validDraft()
	draft.Body = "**加粗** 的评论内容"
	created, err := svc.AddComment(context.Background(), 1, draft)
	if err != nil {
		t.Fatalf("AddComment() 返回错误: %v", err)
	}

	if created.ContentID != 1 {
		t.Errorf("ContentID = %d, 期望 1", created.ContentID)
	}
	if created.Content == nil || created.Content.ID != 1 {
		t.Error("创建的评论应挂上所属内容")
	}
	if !strings.Contains(created.BodyHTML, "<strong>") {
		t.Errorf("Markdown 应被渲染为 HTML, BodyHTML = %q", created.BodyHTML)
	}
	if len(commentRepo.created) != 1 {
		t.Fatalf("仓储应收到 1 次创建, 实际 %d 次", len(commentRepo.created))
	}
}

func TestAddCommentMissingContent(t *testing.T) {
	svc, commentRepo, _ := newTestService(map[int]*model.Content{})

	_, err := svc.AddComment(context.Background(), 99, validDraft())
	if !errors.Is(err, constant.ErrNotFound) {
		t.Errorf("err = %v, 期望 ErrNotFound", err)
	}
	if len(commentRepo.created) != 0 {
		t.Error("内容不存在时不应写库")
	}
}

func TestAddCommentRejectsPages(t *testing.T) {
	page := &model.Content{ID: 2, Type: model.TypePage, Title: "关于", Status: model.StatusPublished}
	svc, commentRepo, _ := newTestService(map[int]*model.Content{2: page})

	_, err := svc.AddComment(context.Background(), 2, validDraft())
	if !errors.Is(err, constant.ErrNotFound) {
		t.Errorf("页面不接受评论, err = %v, 期望 ErrNotFound", err)
	}
	if len(commentRepo.created) != 0 {
		t.Error("页面评论不应写库")
	}
}

func TestAddCommentValidation(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Draft)
		wantField string
	}{
		{
			name:      "正文为空",
			mutate:    func(d *Draft) { d.Body = "" },
			wantField: "body",
		},
		{
			name:      "正文九个字符差一个",
			mutate:    func(d *Draft) { d.Body = "123456789" },
			wantField: "body",
		},
		{
			name:      "昵称太短",
			mutate:    func(d *Draft) { d.Name = "abcd" },
			wantField: "name",
		},
		{
			name:      "邮箱格式错误",
			mutate:    func(d *Draft) { d.Email = "not-an-email" },
			wantField: "email",
		},
		{
			name:      "网址不是URL",
			mutate:    func(d *Draft) { d.WebSite = "just some text" },
			wantField: "webSite",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, commentRepo, _ := newTestService(map[int]*model.Content{1: publishedPost(1)})

			draft := validDraft()
			tt.mutate(draft)

			_, err := svc.AddComment(context.Background(), 1, draft)
			ve, ok := constant.AsValidationError(err)
			if !ok {
				t.Fatalf("err = %v, 期望 *ValidationError", err)
			}
			if _, found := ve.Fields[tt.wantField]; !found {
				t.Errorf("Fields = %v, 期望包含键 %q", ve.Fields, tt.wantField)
			}
			if len(commentRepo.created) != 0 {
				t.Error("校验失败时不应写库")
			}
		})
	}
}

// 正文恰好十个字符是合法的边界值。
func TestAddCommentBodyBoundary(t *testing.T) {
	svc, _, _ := newTestService(map[int]*model.Content{1: publishedPost(1)})

	draft := validDraft()
	draft.Body = "1234567890"
	if _, err := svc.AddComment(context.Background(), 1, draft); err != nil {
		t.Errorf("十字符正文应通过校验, err = %v", err)
	}
}

func TestAddCommentInvalidatesCommentFeedCache(t *testing.T) {
	svc, _, cache := newTestService(map[int]*model.Content{1: publishedPost(1)})

	ctx := context.Background()
	if err := cache.Set(ctx, constant.CacheKeyCommentFeed, "cached-feed", 0); err != nil {
		t.Fatalf("预置缓存失败: %v", err)
	}

	if _, err := svc.AddComment(ctx, 1, validDraft()); err != nil {
		t.Fatalf("AddComment() 返回错误: %v", err)
	}

	got, err := cache.Get(ctx, constant.CacheKeyCommentFeed)
	if err != nil {
		t.Fatalf("读取缓存失败: %v", err)
	}
	if got != "" {
		t.Errorf("发表评论后评论 Feed 缓存应被清除, got %q", got)
	}
}

func TestLatestRejectsNegativePage(t *testing.T) {
	svc, _, _ := newTestService(map[int]*model.Content{})

	_, err := svc.Latest(context.Background(), -1, 10)
	if !errors.Is(err, constant.ErrInvalidPage) {
		t.Errorf("err = %v, 期望 ErrInvalidPage", err)
	}
}
