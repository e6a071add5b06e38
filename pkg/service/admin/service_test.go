package admin

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/xyhcode/gocms/pkg/constant"
	"github.com/xyhcode/gocms/pkg/datatable"
	"github.com/xyhcode/gocms/pkg/domain/model"
	"github.com/xyhcode/gocms/pkg/domain/repository"
)

type fakeContentRepo struct {
	posts   []*model.Content
	pages   []*model.Content
	lastReq repository.PageRequest
}

func (r *fakeContentRepo) FindByID(ctx context.Context, id int) (*model.Content, error) {
	return nil, constant.ErrNotFound
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
	if typ == model.TypePost {
		return int64(len(r.posts)), nil
	}
	return int64(len(r.pages)), nil
}

func (r *fakeContentRepo) FindPageByType(ctx context.Context, typ model.ContentType, req repository.PageRequest) ([]*model.Content, error) {
	r.lastReq = req
	if typ == model.TypePost {
		return r.posts, nil
	}
	return r.pages, nil
}

type fakeTagRepo struct {
	tags []*model.Tag
}

func (r *fakeTagRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.tags)), nil
}

func (r *fakeTagRepo) FindPage(ctx context.Context, req repository.PageRequest) ([]*model.Tag, error) {
	return r.tags, nil
}

type fakeCategoryRepo struct {
	categories []*model.Category
}

func (r *fakeCategoryRepo) FindAllOrderedByName(ctx context.Context) ([]*model.Category, error) {
	return r.categories, nil
}

func (r *fakeCategoryRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.categories)), nil
}

func (r *fakeCategoryRepo) FindPage(ctx context.Context, req repository.PageRequest) ([]*model.Category, error) {
	return r.categories, nil
}

type fakeCommentRepo struct {
	comments []*model.Comment
}

func (r *fakeCommentRepo) Create(ctx context.Context, params *repository.CreateCommentParams) (*model.Comment, error) {
	return nil, nil
}

func (r *fakeCommentRepo) FindLatest(ctx context.Context, req repository.PageRequest) (*repository.PageResult[model.Comment], error) {
	return &repository.PageResult[model.Comment]{Items: r.comments}, nil
}

func (r *fakeCommentRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.comments)), nil
}

func (r *fakeCommentRepo) FindPage(ctx context.Context, req repository.PageRequest) ([]*model.Comment, error) {
	return r.comments, nil
}

func posts(n int) []*model.Content {
	out := make([]*model.Content, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, &model.Content{ID: i, Type: model.TypePost, Status: model.StatusPublished})
	}
	return out
}

func TestDashboard(t *testing.T) {
	contentRepo := &fakeContentRepo{
		posts: posts(3),
		pages: []*model.Content{{ID: 10, Type: model.TypePage}},
	}
	svc := NewService(
		contentRepo,
		&fakeTagRepo{tags: []*model.Tag{{ID: 1}, {ID: 2}}},
		&fakeCategoryRepo{categories: []*model.Category{{ID: 1}}},
		&fakeCommentRepo{comments: []*model.Comment{{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}}},
	)

	got, err := svc.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("Dashboard() 返回错误: %v", err)
	}

	want := Dashboard{Posts: 3, Pages: 1, Tags: 2, Categories: 1, Comments: 4}
	if *got != want {
		t.Errorf("Dashboard() = %+v, 期望 %+v", *got, want)
	}
}

func TestListPosts(t *testing.T) {
	contentRepo := &fakeContentRepo{posts: posts(3)}
	svc := NewService(contentRepo, &fakeTagRepo{}, &fakeCategoryRepo{}, &fakeCommentRepo{})

	req := &datatable.Request{
		Draw:   42,
		Start:  20,
		Length: 10,
		Columns: []datatable.Column{
			{Data: "title", Orderable: true},
		},
		Order: []datatable.Order{{Dir: "desc"}},
	}

	resp, err := svc.ListPosts(context.Background(), req)
	if err != nil {
		t.Fatalf("ListPosts() 返回错误: %v", err)
	}

	if resp.Draw != 42 {
		t.Errorf("Draw = %d, 期望原样回显 42", resp.Draw)
	}
	if resp.RecordsTotal != 3 {
		t.Errorf("RecordsTotal = %d, 期望 3", resp.RecordsTotal)
	}
	if resp.RecordsFiltered != resp.RecordsTotal {
		t.Errorf("RecordsFiltered = %d, 应恒等于 RecordsTotal", resp.RecordsFiltered)
	}
	if len(resp.Data) != 3 {
		t.Errorf("Data 条数 = %d, 期望 3", len(resp.Data))
	}

	// 分页与排序应翻译到仓储请求上
	if contentRepo.lastReq.Page != 2 || contentRepo.lastReq.PageSize != 10 {
		t.Errorf("分页请求 = %+v, 期望 Page=2 PageSize=10", contentRepo.lastReq)
	}
	if len(contentRepo.lastReq.Sort) != 1 || contentRepo.lastReq.Sort[0].Property != "title" {
		t.Errorf("排序请求 = %+v, 期望按 title 排序", contentRepo.lastReq.Sort)
	}
}

func TestListPostsInvalidLength(t *testing.T) {
	svc := NewService(&fakeContentRepo{}, &fakeTagRepo{}, &fakeCategoryRepo{}, &fakeCommentRepo{})

	_, err := svc.ListPosts(context.Background(), &datatable.Request{Draw: 1, Length: 0})
	if !errors.Is(err, constant.ErrInvalidLength) {
		t.Errorf("err = %v, 期望 ErrInvalidLength", err)
	}
}

func TestListTags(t *testing.T) {
	svc := NewService(
		&fakeContentRepo{},
		&fakeTagRepo{tags: []*model.Tag{{ID: 1, Name: "go"}, {ID: 2, Name: "web"}}},
		&fakeCategoryRepo{},
		&fakeCommentRepo{},
	)

	resp, err := svc.ListTags(context.Background(), &datatable.Request{Draw: 7, Length: 10})
	if err != nil {
		t.Fatalf("ListTags() 返回错误: %v", err)
	}
	if resp.Draw != 7 || resp.RecordsTotal != 2 || len(resp.Data) != 2 {
		t.Errorf("响应 = Draw=%d Total=%d 条数=%d", resp.Draw, resp.RecordsTotal, len(resp.Data))
	}
}
