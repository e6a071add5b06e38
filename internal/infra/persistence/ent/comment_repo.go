package ent

import (
	"context"
	"fmt"

	"github.com/xyhcode/gocms/ent"
	"github.com/xyhcode/gocms/ent/comment"
	"github.com/xyhcode/gocms/pkg/constant"
	"github.com/xyhcode/gocms/pkg/domain/model"
	"github.com/xyhcode/gocms/pkg/domain/repository"
)

var commentSortColumns = map[string]string{
	"id":        comment.FieldID,
	"name":      comment.FieldName,
	"email":     comment.FieldEmail,
	"createdAt": comment.FieldCreatedAt,
	"updatedAt": comment.FieldUpdatedAt,
}

// entCommentRepository 是 CommentRepository 接口的 Ent 实现。
type entCommentRepository struct {
	db *ent.Client
}

// NewEntCommentRepository 是 entCommentRepository 的构造函数。
func NewEntCommentRepository(db *ent.Client) repository.CommentRepository {
	return &entCommentRepository{db: db}
}

// Create 创建评论。SetContentID 让插入与关联落在同一条 INSERT 上，
// 内容不存在时外键约束会使其失败，不会留下孤儿评论。
func (r *entCommentRepository) Create(ctx context.Context, params *repository.CreateCommentParams) (*model.Comment, error) {
	created, err := r.db.Comment.Create().
		SetContentID(params.ContentID).
		SetBody(params.Body).
		SetBodyHTML(params.BodyHTML).
		SetName(params.Name).
		SetEmail(params.Email).
		SetNillableWebSite(params.WebSite).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, constant.ErrNotFound
		}
		return nil, fmt.Errorf("创建评论失败: %w", err)
	}
	return toDomainComment(created), nil
}

func (r *entCommentRepository) FindLatest(ctx context.Context, req repository.PageRequest) (*repository.PageResult[model.Comment], error) {
	total, err := r.db.Comment.Query().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("统计评论总数失败: %w", err)
	}

	entities, err := r.db.Comment.Query().
		WithContent().
		Order(ent.Desc(comment.FieldCreatedAt), ent.Desc(comment.FieldID)).
		Offset(req.Offset()).
		Limit(req.PageSize).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("查询最新评论失败: %w", err)
	}

	return &repository.PageResult[model.Comment]{
		Items:    toDomainComments(entities),
		Total:    int64(total),
		Page:     req.Page,
		PageSize: req.PageSize,
	}, nil
}

func (r *entCommentRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.db.Comment.Query().Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("统计评论总数失败: %w", err)
	}
	return int64(count), nil
}

func (r *entCommentRepository) FindPage(ctx context.Context, req repository.PageRequest) ([]*model.Comment, error) {
	orders, err := orderOptions[comment.OrderOption](req.Sort, commentSortColumns)
	if err != nil {
		return nil, err
	}
	entities, err := r.db.Comment.Query().
		Order(orders...).
		Offset(req.Offset()).
		Limit(req.PageSize).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("分页查询评论失败: %w", err)
	}
	return toDomainComments(entities), nil
}

// toDomainComment 将 *ent.Comment 转换为领域模型，已加载的内容边一并转换。
func toDomainComment(c *ent.Comment) *model.Comment {
	if c == nil {
		return nil
	}
	m := &model.Comment{
		ID:        c.ID,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
		Body:      c.Body,
		BodyHTML:  c.BodyHTML,
		Name:      c.Name,
		Email:     c.Email,
		WebSite:   c.WebSite,
		ContentID: c.ContentID,
	}
	if parent, err := c.Edges.ContentOrErr(); err == nil {
		m.Content = toDomainContent(parent)
	}
	return m
}

func toDomainComments(entities []*ent.Comment) []*model.Comment {
	models := make([]*model.Comment, len(entities))
	for i, entity := range entities {
		models[i] = toDomainComment(entity)
	}
	return models
}
