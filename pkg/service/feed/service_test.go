package feed

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/xyhcode/gocms/pkg/constant"
	"github.com/xyhcode/gocms/pkg/domain/model"
	"github.com/xyhcode/gocms/pkg/domain/repository"
	"github.com/xyhcode/gocms/pkg/service/utility"
)

// fakeParamSvc 返回固定的站点参数。
type fakeParamSvc struct {
	values map[constant.ParameterKey]string
}

func (s *fakeParamSvc) LoadAll(ctx context.Context) error { return nil }

func (s *fakeParamSvc) Get(key constant.ParameterKey) string {
	return s.values[key]
}

func (s *fakeParamSvc) GetInt(key constant.ParameterKey, fallback int) int {
	return fallback
}

func (s *fakeParamSvc) All() map[string]string { return nil }

func (s *fakeParamSvc) Set(ctx context.Context, key constant.ParameterKey, value string) error {
	return nil
}

// fakeContentRepo 只支撑 FindByStatus。
type fakeContentRepo struct {
	posts []*model.Content
}

func (r *fakeContentRepo) FindByID(ctx context.Context, id int) (*model.Content, error) {
	return nil, constant.ErrNotFound
}

func (r *fakeContentRepo) FindBySlug(ctx context.Context, slug string) (*model.Content, error) {
	return nil, constant.ErrNotFound
}

func (r *fakeContentRepo) FindByStatus(ctx context.Context, typ model.ContentType, status model.ContentStatus, req repository.PageRequest) (*repository.PageResult[model.Content], error) {
	return &repository.PageResult[model.Content]{
		Items:    r.posts,
		Total:    int64(len(r.posts)),
		PageSize: req.PageSize,
	}, nil
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

// fakeCommentRepo 只支撑 FindLatest。
type fakeCommentRepo struct {
	comments []*model.Comment
}

func (r *fakeCommentRepo) Create(ctx context.Context, params *repository.CreateCommentParams) (*model.Comment, error) {
	return nil, nil
}

func (r *fakeCommentRepo) FindLatest(ctx context.Context, req repository.PageRequest) (*repository.PageResult[model.Comment], error) {
	return &repository.PageResult[model.Comment]{
		Items:    r.comments,
		Total:    int64(len(r.comments)),
		PageSize: req.PageSize,
	}, nil
}

func (r *fakeCommentRepo) Count(ctx context.Context) (int64, error) { return 0, nil }

func (r *fakeCommentRepo) FindPage(ctx context.Context, req repository.PageRequest) ([]*model.Comment, error) {
	return nil, nil
}

func newTestService(posts []*model.Content, comments []*model.Comment) Service {
	params := &fakeParamSvc{values: map[constant.ParameterKey]string{
		constant.KeyTitle:    "Blog title",
		constant.KeySubtitle: "Blog subtitle",
		constant.KeySiteURL:  "https://blog.example.com",
	}}
	return NewService(
		&fakeContentRepo{posts: posts},
		&fakeCommentRepo{comments: comments},
		params,
		utility.NewMemoryCacheService(),
	)
}

func strPtr(s string) *string { return &s }

func samplePosts() []*model.Content {
	now := time.Now()
	return []*model.Content{
		{
			ID:          1,
			Type:        model.TypePost,
			Title:       "第一篇",
			Body:        "第一篇的正文",
			Status:      model.StatusPublished,
			Slug:        strPtr("first-post"),
			CreatedAt:   now,
			UpdatedAt:   now,
			PublishedAt: &now,
		},
		{
			ID:        2,
			Type:      model.TypePost,
			Title:     "第二篇",
			Body:      "第二篇的正文",
			Status:    model.StatusPublished,
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:          3,
			Type:        model.TypePost,
			Title:       "第三篇",
			Body:        "第三篇的正文",
			Status:      model.StatusPublished,
			CreatedAt:   now,
			UpdatedAt:   now,
			PublishedAt: &now,
		},
	}
}

func TestLatestPosts(t *testing.T) {
	svc := newTestService(samplePosts(), nil)

	feed, err := svc.LatestPosts(context.Background())
	if err != nil {
		t.Fatalf("LatestPosts() 返回错误: %v", err)
	}

	if feed.FeedType != FeedTypeAtom {
		t.Errorf("FeedType = %q, 期望 %q", feed.FeedType, FeedTypeAtom)
	}
	if feed.Title != "Blog title" || feed.Subtitle != "Blog subtitle" {
		t.Errorf("外壳标题不正确: %q / %q", feed.Title, feed.Subtitle)
	}
	if len(feed.Entries) != 3 {
		t.Fatalf("条目数 = %d, 期望 3", len(feed.Entries))
	}

	// 有 slug 的文章用 slug 链接，没有的退回数字ID
	if got := feed.Entries[0].Link.Href; got != "https://blog.example.com/post/first-post" {
		t.Errorf("Entries[0].Link.Href = %q", got)
	}
	if got := feed.Entries[1].Link.Href; got != "https://blog.example.com/post/2" {
		t.Errorf("Entries[1].Link.Href = %q", got)
	}

	if feed.Entries[0].Summary.Type != "text/plain" {
		t.Errorf("Summary.Type = %q, 期望 text/plain", feed.Entries[0].Summary.Type)
	}
	if feed.Entries[0].Summary.Body != "第一篇的正文" {
		t.Errorf("摘要应原样放入正文, got %q", feed.Entries[0].Summary.Body)
	}
	if feed.Entries[0].Published.IsZero() {
		t.Error("已设置发布时间的文章 Published 不应为零值")
	}
	if !feed.Entries[1].Published.IsZero() {
		t.Error("未设置发布时间的文章 Published 应为零值")
	}
}

func TestLatestComments(t *testing.T) {
	now := time.Now()
	comments := []*model.Comment{
		{
			ID:        7,
			Body:      "很棒的文章",
			Name:      "访客甲乙丙",
			ContentID: 1,
			Content:   &model.Content{ID: 1, Slug: strPtr("first-post")},
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	svc := newTestService(nil, comments)

	feed, err := svc.LatestComments(context.Background())
	if err != nil {
		t.Fatalf("LatestComments() 返回错误: %v", err)
	}
	if len(feed.Entries) != 1 {
		t.Fatalf("条目数 = %d, 期望 1", len(feed.Entries))
	}

	entry := feed.Entries[0]
	if entry.Title != "Comment" {
		t.Errorf("评论条目标题 = %q, 期望固定的 \"Comment\"", entry.Title)
	}
	if want := "https://blog.example.com/post/first-post#comment-7"; entry.Link.Href != want {
		t.Errorf("Link.Href = %q, 期望 %q", entry.Link.Href, want)
	}
	if entry.Summary.Body != "很棒的文章" {
		t.Errorf("摘要应原样放入评论正文, got %q", entry.Summary.Body)
	}
	if !entry.Published.Equal(now) {
		t.Errorf("Published 应取评论创建时间, got %v", entry.Published)
	}
}

func TestLatestPostsUsesCache(t *testing.T) {
	repo := &fakeContentRepo{posts: samplePosts()}
	params := &fakeParamSvc{values: map[constant.ParameterKey]string{}}
	svc := NewService(repo, &fakeCommentRepo{}, params, utility.NewMemoryCacheService())

	ctx := context.Background()
	first, err := svc.LatestPosts(ctx)
	if err != nil {
		t.Fatalf("第一次 LatestPosts() 返回错误: %v", err)
	}

	// 清空仓储后再取，命中缓存时结果不变
	repo.posts = nil
	second, err := svc.LatestPosts(ctx)
	if err != nil {
		t.Fatalf("第二次 LatestPosts() 返回错误: %v", err)
	}
	if len(second.Entries) != len(first.Entries) {
		t.Errorf("第二次应命中缓存, 条目数 = %d, 期望 %d", len(second.Entries), len(first.Entries))
	}
}

func TestGenerateXML(t *testing.T) {
	svc := newTestService(nil, nil)
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

	feed := &Feed{
		FeedType: FeedTypeAtom,
		Title:    "Tom & Jerry <Blog>",
		Subtitle: "副标题",
		Link:     Link{Href: "https://blog.example.com", Rel: "alternate", Type: "text/html"},
		Updated:  now,
		Entries: []*Entry{
			{
				Title:     "标题带 \"引号\"",
				Link:      Link{Href: "https://blog.example.com/post/1", Rel: "alternate"},
				Summary:   TextContent{Type: "text/plain", Body: "正文 <b>不转义为标签</b>"},
				Created:   now,
				Updated:   now,
				Published: now,
			},
		},
	}

	xml := svc.GenerateXML(feed)

	if !strings.HasPrefix(xml, `<?xml version="1.0" encoding="UTF-8"?>`) {
		t.Error("缺少 XML 声明")
	}
	if !strings.Contains(xml, `<feed xmlns="http://www.w3.org/2005/Atom">`) {
		t.Error("缺少 Atom 命名空间")
	}
	if !strings.Contains(xml, "<title>Tom &amp; Jerry &lt;Blog&gt;</title>") {
		t.Errorf("标题中的特殊字符应被转义:\n%s", xml)
	}
	if !strings.Contains(xml, "标题带 &quot;引号&quot;") {
		t.Error("条目标题中的引号应被转义")
	}
	if !strings.Contains(xml, "正文 &lt;b&gt;不转义为标签&lt;/b&gt;") {
		t.Error("摘要中的 HTML 应被转义")
	}
	if !strings.Contains(xml, "<published>2024-06-15T12:00:00Z</published>") {
		t.Error("发布时间应按 RFC3339 输出")
	}
}
