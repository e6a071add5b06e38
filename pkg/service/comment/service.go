// Package comment 实现匿名评论：校验、Markdown 渲染与持久化。
package comment

import (
	"context"
	"fmt"
	"log"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/xyhcode/gocms/internal/pkg/parser"
	"github.com/xyhcode/gocms/pkg/constant"
	"github.com/xyhcode/gocms/pkg/domain/model"
	"github.com/xyhcode/gocms/pkg/domain/repository"
	"github.com/xyhcode/gocms/pkg/service/utility"
)

// Draft 是访客提交的评论表单。
// 校验规则声明在 validate 标签上，由 validator 统一执行。
type Draft struct {
	Body    string `json:"body" validate:"required,min=10"`
	Name    string `json:"name" validate:"required,min=5,max=255"`
	Email   string `json:"email" validate:"required,email,min=5,max=255"`
	WebSite string `json:"webSite" validate:"omitempty,url,min=10"`
}

// Service 定义了评论服务的接口。
type Service interface {
	// AddComment 校验草稿并把评论挂到指定内容条目上。
	// 内容不存在或不可评论时返回 constant.ErrNotFound；
	// 校验失败时返回 *constant.ValidationError，均不写库。
	AddComment(ctx context.Context, contentID int, draft *Draft) (*model.Comment, error)

	// Latest 按创建时间降序分页返回最新评论（含所属内容）。
	Latest(ctx context.Context, page, size int) (*repository.PageResult[model.Comment], error)
}

type service struct {
	contentRepo repository.ContentRepository
	commentRepo repository.CommentRepository
	cache       utility.CacheService
	validate    *validator.Validate
}

// NewService 是 comment service 的构造函数。
func NewService(contentRepo repository.ContentRepository, commentRepo repository.CommentRepository, cache utility.CacheService) Service {
	v := validator.New()
	// 错误信息里使用 json 标签名而不是 Go 字段名
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &service{
		contentRepo: contentRepo,
		commentRepo: commentRepo,
		cache:       cache,
		validate:    v,
	}
}

func (s *service) AddComment(ctx context.Context, contentID int, draft *Draft) (*model.Comment, error) {
	// 先确认目标内容存在且确实是文章，页面不接受评论。
	target, err := s.contentRepo.FindByID(ctx, contentID)
	if err != nil {
		return nil, err
	}
	if target.Type != model.TypePost {
		return nil, constant.ErrNotFound
	}

	if err := s.validateDraft(draft); err != nil {
		return nil, err
	}

	bodyHTML, err := parser.MarkdownToHTML(draft.Body)
	if err != nil {
		return nil, fmt.Errorf("渲染评论内容失败: %w", err)
	}

	params := &repository.CreateCommentParams{
		ContentID: contentID,
		Body:      draft.Body,
		BodyHTML:  bodyHTML,
		Name:      draft.Name,
		Email:     draft.Email,
	}
	if draft.WebSite != "" {
		params.WebSite = &draft.WebSite
	}

	created, err := s.commentRepo.Create(ctx, params)
	if err != nil {
		return nil, err
	}
	created.Content = target

	// 评论 Feed 的缓存已经过期，删除失败只记日志，不影响评论本身。
	if err := s.cache.Delete(ctx, constant.CacheKeyCommentFeed); err != nil {
		log.Printf("⚠️ 警告: 删除评论 Feed 缓存失败: %v", err)
	}

	return created, nil
}

func (s *service) Latest(ctx context.Context, page, size int) (*repository.PageResult[model.Comment], error) {
	if page < 0 {
		return nil, constant.ErrInvalidPage
	}
	return s.commentRepo.FindLatest(ctx, repository.PageRequest{
		Page:     page,
		PageSize: size,
	})
}

// validateDraft 执行字段校验，把 validator 的错误翻译成逐字段的消息键。
func (s *service) validateDraft(draft *Draft) error {
	err := s.validate.Struct(draft)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("执行评论校验失败: %w", err)
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = "validation." + fe.Tag()
	}
	return &constant.ValidationError{Fields: fields}
}
