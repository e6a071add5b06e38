package ent

import (
	"context"
	"fmt"

	"github.com/xyhcode/gocms/ent"
	"github.com/xyhcode/gocms/ent/category"
	"github.com/xyhcode/gocms/pkg/domain/model"
	"github.com/xyhcode/gocms/pkg/domain/repository"
)

var categorySortColumns = map[string]string{
	"id":        category.FieldID,
	"name":      category.FieldName,
	"createdAt": category.FieldCreatedAt,
	"updatedAt": category.FieldUpdatedAt,
}

// entCategoryRepository 是 CategoryRepository 接口的 Ent 实现。
type entCategoryRepository struct {
	db *ent.Client
}

// NewEntCategoryRepository 是 entCategoryRepository 的构造函数。
func NewEntCategoryRepository(db *ent.Client) repository.CategoryRepository {
	return &entCategoryRepository{db: db}
}

func (r *entCategoryRepository) FindAllOrderedByName(ctx context.Context) ([]*model.Category, error) {
	entities, err := r.db.Category.Query().
		Order(ent.Asc(category.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("查询分类列表失败: %w", err)
	}
	models := make([]*model.Category, len(entities))
	for i, entity := range entities {
		models[i] = toDomainCategory(entity)
	}
	return models, nil
}

func (r *entCategoryRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.db.Category.Query().Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("统计分类总数失败: %w", err)
	}
	return int64(count), nil
}

func (r *entCategoryRepository) FindPage(ctx context.Context, req repository.PageRequest) ([]*model.Category, error) {
	orders, err := orderOptions[category.OrderOption](req.Sort, categorySortColumns)
	if err != nil {
		return nil, err
	}
	entities, err := r.db.Category.Query().
		Order(orders...).
		Offset(req.Offset()).
		Limit(req.PageSize).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("分页查询分类失败: %w", err)
	}
	models := make([]*model.Category, len(entities))
	for i, entity := range entities {
		models[i] = toDomainCategory(entity)
	}
	return models, nil
}

// toDomainCategory 将 *ent.Category 转换为领域模型。
func toDomainCategory(c *ent.Category) *model.Category {
	if c == nil {
		return nil
	}
	return &model.Category{
		ID:        c.ID,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
		Name:      c.Name,
		Slug:      c.Slug,
		ParentID:  c.ParentID,
	}
}
