package content

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/xyhcode/gocms/pkg/constant"
	"github.com/xyhcode/gocms/pkg/domain/model"
	"github.com/xyhcode/gocms/pkg/domain/repository"
	"github.com/xyhcode/gocms/pkg/service/archive"
)

// fakeParamSvc 返回固定的站点参数。
type fakeParamSvc struct {
	values map[constant.ParameterKey]string
}

func (s *fakeParamSvc) LoadAll(ctx context.Context) error { return nil }

func (s *fakeParamSvc) Get(key constant.ParameterKey) string { return s.values[key] }

func (s *fakeParamSvc) GetInt(key constant.ParameterKey, fallback int) int {
	n, err := strconv.Atoi(s.values[key])
	if err != nil {
		return fallback
	}
	return n
}

func (s *fakeParamSvc) All() map[string]string {
	out := make(map[string]string, len(s.values))
	for k, v := range s.values {
		out[k.String()] = v
	}
	return out
}

func (s *fakeParamSvc) Set(ctx context.Context, key constant.ParameterKey, value string) error {
	return nil
}

// fakeContentRepo 记录每次收到的查询参数并返回预置数据。
type fakeContentRepo struct {
	byID    map[int]*model.Content
	bySlug  map[string]*model.Content
	listing []*model.Content

	lastReq   repository.PageRequest
	lastStart time.Time
	lastEnd   time.Time
	lastFind  string
}

func (r *fakeContentRepo) page(req repository.PageRequest) *repository.PageResult[model.Content] {
	return &repository.PageResult[model.Content]{
		Items:    r.listing,
		Total:    int64(len(r.listing)),
		Page:     req.Page,
		PageSize: req.PageSize,
	}
}

func (r *fakeContentRepo) FindByID(ctx context.Context, id int) (*model.Content, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, constant.ErrNotFound
	}
	return c, nil
}

func (r *fakeContentRepo) FindBySlug(ctx context.Context, slug string) (*model.Content, error) {
	c, ok := r.bySlug[slug]
	if !ok {
		return nil, constant.ErrNotFound
	}
	return c, nil
}

func (r *fakeContentRepo) FindByStatus(ctx context.Context, typ model.ContentType, status model.ContentStatus, req repository.PageRequest) (*repository.PageResult[model.Content], error) {
	r.lastFind, r.lastReq = "status", req
	return r.page(req), nil
}

func (r *fakeContentRepo) FindByStatusAndDateRange(ctx context.Context, typ model.ContentType, status model.ContentStatus, start, end time.Time, req repository.PageRequest) (*repository.PageResult[model.Content], error) {
	r.lastFind, r.lastReq, r.lastStart, r.lastEnd = "dateRange", req, start, end
	return r.page(req), nil
}

func (r *fakeContentRepo) FindByStatusAndTagID(ctx context.Context, typ model.ContentType, status model.ContentStatus, tagID int, req repository.PageRequest) (*repository.PageResult[model.Content], error) {
	r.lastFind, r.lastReq = "tagID", req
	return r.page(req), nil
}

func (r *fakeContentRepo) FindByStatusAndTagSlug(ctx context.Context, typ model.ContentType, status model.ContentStatus, tagSlug string, req repository.PageRequest) (*repository.PageResult[model.Content], error) {
	r.lastFind, r.lastReq = "tagSlug", req
	return r.page(req), nil
}

func (r *fakeContentRepo) FindByStatusAndCategoryID(ctx context.Context, typ model.ContentType, status model.ContentStatus, categoryID int, req repository.PageRequest) (*repository.PageResult[model.Content], error) {
	r.lastFind, r.lastReq = "categoryID", req
	return r.page(req), nil
}

func (r *fakeContentRepo) FindByStatusAndCategorySlug(ctx context.Context, typ model.ContentType, status model.ContentStatus, categorySlug string, req repository.PageRequest) (*repository.PageResult[model.Content], error) {
	r.lastFind, r.lastReq = "categorySlug", req
	return r.page(req), nil
}

func (r *fakeContentRepo) FindAllByType(ctx context.Context, typ model.ContentType) ([]*model.Content, error) {
	return []*model.Content{{ID: 100, Type: model.TypePage, Title: "关于"}}, nil
}

func (r *fakeContentRepo) CountByMonth(ctx context.Context, typ model.ContentType, status model.ContentStatus) ([]*model.ArchiveMonth, error) {
	return []*model.ArchiveMonth{{Year: 2024, Month: 6, Count: 2}}, nil
}

func (r *fakeContentRepo) CountByType(ctx context.Context, typ model.ContentType) (int64, error) {
	return 0, nil
}

func (r *fakeContentRepo) FindPageByType(ctx context.Context, typ model.ContentType, req repository.PageRequest) ([]*model.Content, error) {
	return nil, nil
}

type fakeCategoryRepo struct{}

func (r *fakeCategoryRepo) FindAllOrderedByName(ctx context.Context) ([]*model.Category, error) {
	return []*model.Category{{ID: 1, Name: "编程"}}, nil
}

func (r *fakeCategoryRepo) Count(ctx context.Context) (int64, error) { return 1, nil }

func (r *fakeCategoryRepo) FindPage(ctx context.Context, req repository.PageRequest) ([]*model.Category, error) {
	return nil, nil
}

func newTestService(repo *fakeContentRepo) Service {
	params := &fakeParamSvc{values: map[constant.ParameterKey]string{
		constant.KeyTitle:        "Blog title",
		constant.KeyPostsPerPage: "5",
	}}
	return NewService(repo, &fakeCategoryRepo{}, archive.NewService(), params)
}

func publishedPost(id int) *model.Content {
	now := time.Now()
	return &model.Content{
		ID:          id,
		Type:        model.TypePost,
		Title:       "一篇文章",
		Status:      model.StatusPublished,
		PublishedAt: &now,
	}
}

func TestListViewModel(t *testing.T) {
	repo := &fakeContentRepo{listing: []*model.Content{publishedPost(1), publishedPost(2)}}
	svc := newTestService(repo)

	vm, err := svc.List(context.Background(), 1)
	if err != nil {
		t.Fatalf("List() 返回错误: %v", err)
	}

	for _, key := range []string{"posts", "urlPrefix", "olderUrl", "newerUrl", "archives", "categories", "config", "pages"} {
		if _, ok := vm[key]; !ok {
			t.Errorf("视图模型缺少键 %q", key)
		}
	}
	if got := vm["urlPrefix"]; got != "" {
		t.Errorf("首页列表的 urlPrefix = %v, 期望空字符串", got)
	}

	// 页大小取自 POSTS_PER_PAGE 参数，页码换算为 0 基
	if repo.lastReq.PageSize != 5 {
		t.Errorf("PageSize = %d, 期望 5", repo.lastReq.PageSize)
	}
	if repo.lastReq.Page != 0 {
		t.Errorf("Page = %d, 期望 0", repo.lastReq.Page)
	}

	config, ok := vm["config"].(map[string]string)
	if !ok {
		t.Fatal("config 应为 map[string]string")
	}
	if config["TITLE"] != "Blog title" {
		t.Errorf("config[TITLE] = %q", config["TITLE"])
	}
}

// 列表视图模型携带前后翻页链接：第 2 页的"更新"链接回到视图首页。
func TestListPagerLinks(t *testing.T) {
	listing := make([]*model.Content, 0, 12)
	for i := 1; i <= 12; i++ {
		listing = append(listing, publishedPost(i))
	}

	tests := []struct {
		name      string
		call      func(svc Service) (ViewModel, error)
		wantOlder string
		wantNewer string
	}{
		{
			name:      "首页第一页",
			call:      func(svc Service) (ViewModel, error) { return svc.List(context.Background(), 1) },
			wantOlder: "/page/2",
			wantNewer: "",
		},
		{
			name:      "首页第二页",
			call:      func(svc Service) (ViewModel, error) { return svc.List(context.Background(), 2) },
			wantOlder: "/page/3",
			wantNewer: "/",
		},
		{
			name:      "首页最后一页",
			call:      func(svc Service) (ViewModel, error) { return svc.List(context.Background(), 3) },
			wantOlder: "",
			wantNewer: "/page/2",
		},
		{
			name:      "标签视图第二页",
			call:      func(svc Service) (ViewModel, error) { return svc.ListByTagID(context.Background(), 7, 2) },
			wantOlder: "/tag/7/page/3",
			wantNewer: "/tag/7",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeContentRepo{listing: listing}
			svc := newTestService(repo)

			vm, err := tt.call(svc)
			if err != nil {
				t.Fatalf("返回错误: %v", err)
			}
			if got := vm["olderUrl"]; got != tt.wantOlder {
				t.Errorf("olderUrl = %v, 期望 %q", got, tt.wantOlder)
			}
			if got := vm["newerUrl"]; got != tt.wantNewer {
				t.Errorf("newerUrl = %v, 期望 %q", got, tt.wantNewer)
			}
		})
	}
}

func TestListInvalidPage(t *testing.T) {
	svc := newTestService(&fakeContentRepo{})

	for _, page := range []int{0, -1} {
		if _, err := svc.List(context.Background(), page); !errors.Is(err, constant.ErrInvalidPage) {
			t.Errorf("page=%d 时 err = %v, 期望 ErrInvalidPage", page, err)
		}
	}
}

func TestListByDate(t *testing.T) {
	repo := &fakeContentRepo{listing: []*model.Content{publishedPost(1)}}
	svc := newTestService(repo)

	vm, err := svc.ListByDate(context.Background(), 2024, 6, 0, 1)
	if err != nil {
		t.Fatalf("ListByDate() 返回错误: %v", err)
	}

	if repo.lastFind != "dateRange" {
		t.Errorf("应走日期区间查询, 实际走了 %q", repo.lastFind)
	}
	wantStart := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.Local)
	if !repo.lastStart.Equal(wantStart) {
		t.Errorf("区间起点 = %v, 期望 %v", repo.lastStart, wantStart)
	}
	if got := vm["urlPrefix"]; got != "/2024/06" {
		t.Errorf("urlPrefix = %v, 期望 /2024/06", got)
	}
}

// 未提供任何日期组件时退化为普通列表。
func TestListByDateNoComponents(t *testing.T) {
	repo := &fakeContentRepo{listing: []*model.Content{publishedPost(1)}}
	svc := newTestService(repo)

	vm, err := svc.ListByDate(context.Background(), 0, 0, 0, 1)
	if err != nil {
		t.Fatalf("ListByDate() 返回错误: %v", err)
	}
	if repo.lastFind != "status" {
		t.Errorf("应走普通列表查询, 实际走了 %q", repo.lastFind)
	}
	if got := vm["urlPrefix"]; got != "" {
		t.Errorf("urlPrefix = %v, 期望空字符串", got)
	}
}

func TestListByDateInvalid(t *testing.T) {
	svc := newTestService(&fakeContentRepo{})

	_, err := svc.ListByDate(context.Background(), 2024, 2, 30, 1)
	if !errors.Is(err, constant.ErrInvalidDate) {
		t.Errorf("err = %v, 期望 ErrInvalidDate", err)
	}
}

func TestListByTagAndCategory(t *testing.T) {
	tests := []struct {
		name       string
		call       func(svc Service) (ViewModel, error)
		wantFind   string
		wantPrefix string
	}{
		{
			name:       "标签ID",
			call:       func(svc Service) (ViewModel, error) { return svc.ListByTagID(context.Background(), 7, 1) },
			wantFind:   "tagID",
			wantPrefix: "/tag/7",
		},
		{
			name:       "标签别名",
			call:       func(svc Service) (ViewModel, error) { return svc.ListByTagSlug(context.Background(), "go", 1) },
			wantFind:   "tagSlug",
			wantPrefix: "/tag/go",
		},
		{
			name:       "分类ID",
			call:       func(svc Service) (ViewModel, error) { return svc.ListByCategoryID(context.Background(), 3, 1) },
			wantFind:   "categoryID",
			wantPrefix: "/category/3",
		},
		{
			name: "分类别名",
			call: func(svc Service) (ViewModel, error) {
				return svc.ListByCategorySlug(context.Background(), "life", 1)
			},
			wantFind:   "categorySlug",
			wantPrefix: "/category/life",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeContentRepo{listing: []*model.Content{publishedPost(1)}}
			svc := newTestService(repo)

			vm, err := tt.call(svc)
			if err != nil {
				t.Fatalf("返回错误: %v", err)
			}
			if repo.lastFind != tt.wantFind {
				t.Errorf("走了 %q 查询, 期望 %q", repo.lastFind, tt.wantFind)
			}
			if got := vm["urlPrefix"]; got != tt.wantPrefix {
				t.Errorf("urlPrefix = %v, 期望 %q", got, tt.wantPrefix)
			}
		})
	}
}

func TestGetByID(t *testing.T) {
	post := publishedPost(1)
	repo := &fakeContentRepo{byID: map[int]*model.Content{1: post}}
	svc := newTestService(repo)

	vm, err := svc.GetByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetByID() 返回错误: %v", err)
	}
	if vm["post"] != post {
		t.Error("视图模型应包含文章本身")
	}
	if _, ok := vm["newComment"]; !ok {
		t.Error("详情视图应包含空白评论表单")
	}
	for _, key := range []string{"archives", "categories", "config", "pages"} {
		if _, ok := vm[key]; !ok {
			t.Errorf("详情视图缺少侧边栏键 %q", key)
		}
	}
}

// 草稿对外不可见，按不存在处理。
func TestGetByIDDraftHidden(t *testing.T) {
	draft := &model.Content{ID: 9, Type: model.TypePost, Title: "草稿", Status: model.StatusDraft}
	repo := &fakeContentRepo{byID: map[int]*model.Content{9: draft}}
	svc := newTestService(repo)

	_, err := svc.GetByID(context.Background(), 9)
	if !errors.Is(err, constant.ErrNotFound) {
		t.Errorf("err = %v, 期望 ErrNotFound", err)
	}
}

func TestGetBySlug(t *testing.T) {
	slug := "hello-world"
	post := publishedPost(1)
	post.Slug = &slug
	repo := &fakeContentRepo{bySlug: map[string]*model.Content{slug: post}}
	svc := newTestService(repo)

	vm, err := svc.GetBySlug(context.Background(), slug)
	if err != nil {
		t.Fatalf("GetBySlug() 返回错误: %v", err)
	}
	if vm["post"] != post {
		t.Error("视图模型应包含文章本身")
	}

	_, err = svc.GetBySlug(context.Background(), "missing")
	if !errors.Is(err, constant.ErrNotFound) {
		t.Errorf("未知别名 err = %v, 期望 ErrNotFound", err)
	}
}
