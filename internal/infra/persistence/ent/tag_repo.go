package ent

import (
	"context"
	"fmt"

	"github.com/xyhcode/gocms/ent"
	"github.com/xyhcode/gocms/ent/tag"
	"github.com/xyhcode/gocms/pkg/domain/model"
	"github.com/xyhcode/gocms/pkg/domain/repository"
)

var tagSortColumns = map[string]string{
	"id":        tag.FieldID,
	"name":      tag.FieldName,
	"createdAt": tag.FieldCreatedAt,
	"updatedAt": tag.FieldUpdatedAt,
}

// entTagRepository 是 TagRepository 接口的 Ent 实现。
type entTagRepository struct {
	db *ent.Client
}

// NewEntTagRepository 是 entTagRepository 的构造函数。
func NewEntTagRepository(db *ent.Client) repository.TagRepository {
	return &entTagRepository{db: db}
}

func (r *entTagRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.db.Tag.Query().Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("统计标签总数失败: %w", err)
	}
	return int64(count), nil
}

func (r *entTagRepository) FindPage(ctx context.Context, req repository.PageRequest) ([]*model.Tag, error) {
	orders, err := orderOptions[tag.OrderOption](req.Sort, tagSortColumns)
	if err != nil {
		return nil, err
	}
	entities, err := r.db.Tag.Query().
		Order(orders...).
		Offset(req.Offset()).
		Limit(req.PageSize).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("分页查询标签失败: %w", err)
	}
	models := make([]*model.Tag, len(entities))
	for i, entity := range entities {
		models[i] = toDomainTag(entity)
	}
	return models, nil
}

// toDomainTag 将 *ent.Tag 转换为领域模型。
func toDomainTag(t *ent.Tag) *model.Tag {
	if t == nil {
		return nil
	}
	return &model.Tag{
		ID:        t.ID,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
		Name:      t.Name,
		Slug:      t.Slug,
	}
}
