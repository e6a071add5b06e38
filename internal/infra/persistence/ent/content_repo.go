package ent

import (
	"context"
	"fmt"
	"time"

	"github.com/xyhcode/gocms/ent"
	"github.com/xyhcode/gocms/ent/category"
	"github.com/xyhcode/gocms/ent/comment"
	"github.com/xyhcode/gocms/ent/content"
	"github.com/xyhcode/gocms/ent/predicate"
	"github.com/xyhcode/gocms/ent/tag"
	"github.com/xyhcode/gocms/pkg/constant"
	"github.com/xyhcode/gocms/pkg/domain/model"
	"github.com/xyhcode/gocms/pkg/domain/repository"

	"entgo.io/ent/dialect/sql"
)

// contentSortColumns 是后台表格排序属性到数据库列的白名单映射。
var contentSortColumns = map[string]string{
	"id":           content.FieldID,
	"title":        content.FieldTitle,
	"status":       content.FieldStatus,
	"createdAt":    content.FieldCreatedAt,
	"updatedAt":    content.FieldUpdatedAt,
	"publishedAt":  content.FieldPublishedAt,
	"displayOrder": content.FieldDisplayOrder,
}

// entContentRepository 是 ContentRepository 接口的 Ent 实现。
// 持有 dbType 用于判断数据库方言（按月聚合时需要）。
type entContentRepository struct {
	db     *ent.Client
	dbType string
}

// NewEntContentRepository 是 entContentRepository 的构造函数。
func NewEntContentRepository(db *ent.Client, dbType string) repository.ContentRepository {
	return &entContentRepository{
		db:     db,
		dbType: dbType,
	}
}

func (r *entContentRepository) FindByID(ctx context.Context, id int) (*model.Content, error) {
	entity, err := r.db.Content.Query().
		Where(content.ID(id)).
		WithTags().
		WithCategories().
		WithComments(func(q *ent.CommentQuery) {
			q.Order(ent.Asc(comment.FieldCreatedAt))
		}).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, constant.ErrNotFound
		}
		return nil, fmt.Errorf("按ID查询内容失败: %w", err)
	}
	return toDomainContent(entity), nil
}

func (r *entContentRepository) FindBySlug(ctx context.Context, slug string) (*model.Content, error) {
	entity, err := r.db.Content.Query().
		Where(content.SlugEQ(slug)).
		WithTags().
		WithCategories().
		WithComments(func(q *ent.CommentQuery) {
			q.Order(ent.Asc(comment.FieldCreatedAt))
		}).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, constant.ErrNotFound
		}
		return nil, fmt.Errorf("按别名查询内容失败: %w", err)
	}
	return toDomainContent(entity), nil
}

func (r *entContentRepository) FindByStatus(ctx context.Context, typ model.ContentType, status model.ContentStatus, req repository.PageRequest) (*repository.PageResult[model.Content], error) {
	return r.findPage(ctx, req, basePredicates(typ, status)...)
}

func (r *entContentRepository) FindByStatusAndDateRange(ctx context.Context, typ model.ContentType, status model.ContentStatus, start, end time.Time, req repository.PageRequest) (*repository.PageResult[model.Content], error) {
	preds := append(basePredicates(typ, status),
		content.PublishedAtGTE(start),
		content.PublishedAtLTE(end),
	)
	return r.findPage(ctx, req, preds...)
}

func (r *entContentRepository) FindByStatusAndTagID(ctx context.Context, typ model.ContentType, status model.ContentStatus, tagID int, req repository.PageRequest) (*repository.PageResult[model.Content], error) {
	preds := append(basePredicates(typ, status),
		content.HasTagsWith(tag.ID(tagID)),
	)
	return r.findPage(ctx, req, preds...)
}

func (r *entContentRepository) FindByStatusAndTagSlug(ctx context.Context, typ model.ContentType, status model.ContentStatus, tagSlug string, req repository.PageRequest) (*repository.PageResult[model.Content], error) {
	preds := append(basePredicates(typ, status),
		content.HasTagsWith(tag.SlugEQ(tagSlug)),
	)
	return r.findPage(ctx, req, preds...)
}

func (r *entContentRepository) FindByStatusAndCategoryID(ctx context.Context, typ model.ContentType, status model.ContentStatus, categoryID int, req repository.PageRequest) (*repository.PageResult[model.Content], error) {
	preds := append(basePredicates(typ, status),
		content.HasCategoriesWith(category.ID(categoryID)),
	)
	return r.findPage(ctx, req, preds...)
}

func (r *entContentRepository) FindByStatusAndCategorySlug(ctx context.Context, typ model.ContentType, status model.ContentStatus, categorySlug string, req repository.PageRequest) (*repository.PageResult[model.Content], error) {
	preds := append(basePredicates(typ, status),
		content.HasCategoriesWith(category.SlugEQ(categorySlug)),
	)
	return r.findPage(ctx, req, preds...)
}

func (r *entContentRepository) FindAllByType(ctx context.Context, typ model.ContentType) ([]*model.Content, error) {
	entities, err := r.db.Content.Query().
		Where(content.TypeEQ(content.Type(typ))).
		Order(ent.Asc(content.FieldDisplayOrder), ent.Asc(content.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("查询内容列表失败: %w", err)
	}
	return toDomainContents(entities), nil
}

// CountByMonth 按月聚合内容数量，以发布时间为准，按年月降序返回。
func (r *entContentRepository) CountByMonth(ctx context.Context, typ model.ContentType, status model.ContentStatus) ([]*model.ArchiveMonth, error) {
	var items []*model.ArchiveMonth
	err := r.db.Content.Query().
		Where(
			content.TypeEQ(content.Type(typ)),
			content.StatusEQ(content.Status(status)),
			content.PublishedAtNotNil(),
		).
		Modify(func(s *sql.Selector) {
			var yearExprStr, monthExprStr string

			switch r.dbType {
			case "sqlite", "sqlite3":
				// SQLite 使用 strftime 函数
				yearExprStr = fmt.Sprintf("CAST(strftime('%%Y', %s) AS INTEGER)", s.C(content.FieldPublishedAt))
				monthExprStr = fmt.Sprintf("CAST(strftime('%%m', %s) AS INTEGER)", s.C(content.FieldPublishedAt))
			case "mysql":
				// MySQL 使用 YEAR 和 MONTH 函数
				yearExprStr = fmt.Sprintf("YEAR(%s)", s.C(content.FieldPublishedAt))
				monthExprStr = fmt.Sprintf("MONTH(%s)", s.C(content.FieldPublishedAt))
			default:
				// PostgreSQL 使用 EXTRACT 函数
				yearExprStr = fmt.Sprintf("EXTRACT(YEAR FROM %s)", s.C(content.FieldPublishedAt))
				monthExprStr = fmt.Sprintf("EXTRACT(MONTH FROM %s)", s.C(content.FieldPublishedAt))
			}

			s.Select(
				sql.As(yearExprStr, "year"),
				sql.As(monthExprStr, "month"),
				sql.As(sql.Count(s.C(content.FieldID)), "count"),
			)
			s.GroupBy(yearExprStr, monthExprStr)
			s.OrderBy(sql.Desc("year"), sql.Desc("month"))
		}).
		Scan(ctx, &items)

	if err != nil {
		return nil, fmt.Errorf("按月统计内容失败: %w", err)
	}
	return items, nil
}

func (r *entContentRepository) CountByType(ctx context.Context, typ model.ContentType) (int64, error) {
	count, err := r.db.Content.Query().
		Where(content.TypeEQ(content.Type(typ))).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("统计内容总数失败: %w", err)
	}
	return int64(count), nil
}

func (r *entContentRepository) FindPageByType(ctx context.Context, typ model.ContentType, req repository.PageRequest) ([]*model.Content, error) {
	orders, err := orderOptions[content.OrderOption](req.Sort, contentSortColumns)
	if err != nil {
		return nil, err
	}
	entities, err := r.db.Content.Query().
		Where(content.TypeEQ(content.Type(typ))).
		Order(orders...).
		Offset(req.Offset()).
		Limit(req.PageSize).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("分页查询内容失败: %w", err)
	}
	return toDomainContents(entities), nil
}

// findPage 执行所有面向访客的分页查询的公共部分：
// 先按相同谓词取总数，再取当前页并加载标签与分类。
// 未显式指定排序时默认按发布时间降序、再按ID降序，保证分页稳定。
func (r *entContentRepository) findPage(ctx context.Context, req repository.PageRequest, preds ...predicate.Content) (*repository.PageResult[model.Content], error) {
	total, err := r.db.Content.Query().Where(preds...).Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("统计内容总数失败: %w", err)
	}

	orders, err := orderOptions[content.OrderOption](req.Sort, contentSortColumns)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		orders = append(orders,
			ent.Desc(content.FieldPublishedAt),
			ent.Desc(content.FieldID),
		)
	}

	entities, err := r.db.Content.Query().
		Where(preds...).
		WithTags().
		WithCategories().
		Order(orders...).
		Offset(req.Offset()).
		Limit(req.PageSize).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("分页查询内容失败: %w", err)
	}

	return &repository.PageResult[model.Content]{
		Items:    toDomainContents(entities),
		Total:    int64(total),
		Page:     req.Page,
		PageSize: req.PageSize,
	}, nil
}

func basePredicates(typ model.ContentType, status model.ContentStatus) []predicate.Content {
	return []predicate.Content{
		content.TypeEQ(content.Type(typ)),
		content.StatusEQ(content.Status(status)),
	}
}

// --- 数据转换辅助函数 (Mapping Helper) ---

// toDomainContent 将 *ent.Content (持久化对象) 转换为 *model.Content (领域模型)。
// 已加载的边会一并转换，未加载的边保持为空。
func toDomainContent(c *ent.Content) *model.Content {
	if c == nil {
		return nil
	}
	m := &model.Content{
		ID:           c.ID,
		Type:         model.ContentType(c.Type),
		Title:        c.Title,
		Body:         c.Body,
		Status:       model.ContentStatus(c.Status),
		Slug:         c.Slug,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
		PublishedAt:  c.PublishedAt,
		DisplayOrder: c.DisplayOrder,
	}
	if tags, err := c.Edges.TagsOrErr(); err == nil {
		m.Tags = make([]*model.Tag, len(tags))
		for i, t := range tags {
			m.Tags[i] = toDomainTag(t)
		}
	}
	if categories, err := c.Edges.CategoriesOrErr(); err == nil {
		m.Categories = make([]*model.Category, len(categories))
		for i, cat := range categories {
			m.Categories[i] = toDomainCategory(cat)
		}
	}
	if comments, err := c.Edges.CommentsOrErr(); err == nil {
		m.Comments = make([]*model.Comment, len(comments))
		for i, cm := range comments {
			m.Comments[i] = toDomainComment(cm)
		}
	}
	return m
}

func toDomainContents(entities []*ent.Content) []*model.Content {
	models := make([]*model.Content, len(entities))
	for i, entity := range entities {
		models[i] = toDomainContent(entity)
	}
	return models
}
