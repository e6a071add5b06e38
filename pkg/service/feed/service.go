// Package feed 实现 Atom Feed 组装：最新文章与最新评论两个变体共用一个外壳。
package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/xyhcode/gocms/pkg/constant"
	"github.com/xyhcode/gocms/pkg/domain/model"
	"github.com/xyhcode/gocms/pkg/domain/repository"
	"github.com/xyhcode/gocms/pkg/service/parameter"
	"github.com/xyhcode/gocms/pkg/service/utility"
)

// feedCacheTTL Feed 缓存过期时间（1小时）
const feedCacheTTL = time.Hour

// Service 定义了 Feed 服务的接口。
type Service interface {
	// LatestPosts 生成最新已发布文章的 Feed。
	LatestPosts(ctx context.Context) (*Feed, error)

	// LatestComments 生成最新评论的 Feed。
	LatestComments(ctx context.Context) (*Feed, error)

	// GenerateXML 把 Feed 渲染为 Atom 1.0 XML 字符串。
	GenerateXML(feed *Feed) string

	// InvalidateCache 清除全部 Feed 缓存。
	InvalidateCache(ctx context.Context) error
}

type service struct {
	contentRepo repository.ContentRepository
	commentRepo repository.CommentRepository
	paramSvc    parameter.Service
	cacheSvc    utility.CacheService
}

// NewService 是 feed service 的构造函数。
func NewService(
	contentRepo repository.ContentRepository,
	commentRepo repository.CommentRepository,
	paramSvc parameter.Service,
	cacheSvc utility.CacheService,
) Service {
	return &service{
		contentRepo: contentRepo,
		commentRepo: commentRepo,
		paramSvc:    paramSvc,
		cacheSvc:    cacheSvc,
	}
}

// LatestPosts 生成文章 Feed（支持缓存）。
func (s *service) LatestPosts(ctx context.Context) (*Feed, error) {
	if cached := s.fromCache(ctx, constant.CacheKeyPostFeed); cached != nil {
		return cached, nil
	}

	size := s.paramSvc.GetInt(constant.KeyPostsPerPage, 10)
	result, err := s.contentRepo.FindByStatus(ctx, model.TypePost, model.StatusPublished, repository.PageRequest{
		Page:     0,
		PageSize: size,
	})
	if err != nil {
		return nil, fmt.Errorf("获取文章列表失败: %w", err)
	}

	feed := s.newShell()
	for _, post := range result.Items {
		entry := &Entry{
			Title: post.Title,
			Link: Link{
				Href: s.absoluteURL(post.URL()),
				Rel:  "alternate",
			},
			Summary: TextContent{
				Type: "text/plain",
				Body: post.Body,
			},
			Created: post.CreatedAt,
			Updated: post.UpdatedAt,
		}
		if post.PublishedAt != nil {
			entry.Published = *post.PublishedAt
		}
		feed.Entries = append(feed.Entries, entry)
	}

	s.toCache(ctx, constant.CacheKeyPostFeed, feed)
	return feed, nil
}

// LatestComments 生成评论 Feed（支持缓存）。
// 条目标题固定为 "Comment"，正文原样放入 text/plain 摘要。
func (s *service) LatestComments(ctx context.Context) (*Feed, error) {
	if cached := s.fromCache(ctx, constant.CacheKeyCommentFeed); cached != nil {
		return cached, nil
	}

	size := s.paramSvc.GetInt(constant.KeyPostsPerPage, 10)
	result, err := s.commentRepo.FindLatest(ctx, repository.PageRequest{
		Page:     0,
		PageSize: size,
	})
	if err != nil {
		return nil, fmt.Errorf("获取评论列表失败: %w", err)
	}

	feed := s.newShell()
	for _, c := range result.Items {
		feed.Entries = append(feed.Entries, &Entry{
			Title: "Comment",
			Link: Link{
				Href: s.absoluteURL(c.URL()),
				Rel:  "alternate",
			},
			Summary: TextContent{
				Type: "text/plain",
				Body: c.Body,
			},
			Created:   c.CreatedAt,
			Updated:   c.UpdatedAt,
			Published: c.CreatedAt,
		})
	}

	s.toCache(ctx, constant.CacheKeyCommentFeed, feed)
	return feed, nil
}

// InvalidateCache 清除全部 Feed 缓存。
func (s *service) InvalidateCache(ctx context.Context) error {
	return s.cacheSvc.Delete(ctx, constant.CacheKeyPostFeed, constant.CacheKeyCommentFeed)
}

// newShell 构建两个 Feed 变体共用的外壳：标题、副标题与站点链接。
func (s *service) newShell() *Feed {
	return &Feed{
		FeedType: FeedTypeAtom,
		Title:    s.paramSvc.Get(constant.KeyTitle),
		Subtitle: s.paramSvc.Get(constant.KeySubtitle),
		Link: Link{
			Href: s.paramSvc.Get(constant.KeySiteURL),
			Rel:  "alternate",
			Type: "text/html",
		},
		Updated: time.Now(),
	}
}

// absoluteURL 把站内路径拼上 SITE_URL，参数未配置时退化为相对路径。
func (s *service) absoluteURL(path string) string {
	return s.paramSvc.Get(constant.KeySiteURL) + path
}

// fromCache 尝试从缓存反序列化 Feed，任何失败都静默回退到重新生成。
func (s *service) fromCache(ctx context.Context, key string) *Feed {
	data, err := s.cacheSvc.Get(ctx, key)
	if err != nil || data == "" {
		return nil
	}
	var feed Feed
	if err := json.Unmarshal([]byte(data), &feed); err != nil {
		return nil
	}
	return &feed
}

// toCache 把生成好的 Feed 序列化后写入缓存，失败不影响响应。
func (s *service) toCache(ctx context.Context, key string, feed *Feed) {
	if data, err := json.Marshal(feed); err == nil {
		_ = s.cacheSvc.Set(ctx, key, string(data), feedCacheTTL)
	}
}

// GenerateXML 把 Feed 渲染为 Atom 1.0 XML 字符串。
func (s *service) GenerateXML(feed *Feed) string {
	var sb strings.Builder

	sb.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	sb.WriteString("\n")
	sb.WriteString(`<feed xmlns="http://www.w3.org/2005/Atom">`)
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("  <title>%s</title>\n", xmlEscape(feed.Title)))
	sb.WriteString(fmt.Sprintf("  <subtitle>%s</subtitle>\n", xmlEscape(feed.Subtitle)))
	sb.WriteString(fmt.Sprintf("  <link href=\"%s\" rel=\"%s\" type=\"%s\"/>\n",
		xmlEscape(feed.Link.Href), feed.Link.Rel, feed.Link.Type))
	sb.WriteString(fmt.Sprintf("  <updated>%s</updated>\n", feed.Updated.Format(time.RFC3339)))

	for _, entry := range feed.Entries {
		sb.WriteString("  <entry>\n")
		sb.WriteString(fmt.Sprintf("    <title>%s</title>\n", xmlEscape(entry.Title)))
		sb.WriteString(fmt.Sprintf("    <link href=\"%s\" rel=\"%s\"/>\n",
			xmlEscape(entry.Link.Href), entry.Link.Rel))
		sb.WriteString(fmt.Sprintf("    <summary type=\"text\">%s</summary>\n", xmlEscape(entry.Summary.Body)))
		if !entry.Published.IsZero() {
			sb.WriteString(fmt.Sprintf("    <published>%s</published>\n", entry.Published.Format(time.RFC3339)))
		}
		sb.WriteString(fmt.Sprintf("    <updated>%s</updated>\n", entry.Updated.Format(time.RFC3339)))
		sb.WriteString("  </entry>\n")
	}

	sb.WriteString("</feed>")
	return sb.String()
}

// xmlEscape 转义 XML 特殊字符
func xmlEscape(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, "\"", "&quot;")
	s = strings.ReplaceAll(s, "'", "&apos;")
	return s
}
