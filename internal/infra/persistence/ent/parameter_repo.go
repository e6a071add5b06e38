package ent

import (
	"context"
	"fmt"

	"github.com/xyhcode/gocms/ent"
	"github.com/xyhcode/gocms/ent/parameter"
	"github.com/xyhcode/gocms/pkg/constant"
	"github.com/xyhcode/gocms/pkg/domain/model"
	"github.com/xyhcode/gocms/pkg/domain/repository"
)

// entParameterRepository 是 ParameterRepository 接口的 Ent 实现。
type entParameterRepository struct {
	db *ent.Client
}

// NewEntParameterRepository 是 entParameterRepository 的构造函数。
func NewEntParameterRepository(db *ent.Client) repository.ParameterRepository {
	return &entParameterRepository{db: db}
}

// FindByName 实现按键查找参数的接口。
func (r *entParameterRepository) FindByName(ctx context.Context, name string) (*model.Parameter, error) {
	entity, err := r.db.Parameter.Query().
		Where(parameter.NameEQ(name)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, constant.ErrNotFound
		}
		return nil, fmt.Errorf("按键查询参数失败: %w", err)
	}
	return toDomainParameter(entity), nil
}

// FindAll 实现获取所有参数的接口。
func (r *entParameterRepository) FindAll(ctx context.Context) ([]*model.Parameter, error) {
	entities, err := r.db.Parameter.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("查询参数列表失败: %w", err)
	}
	models := make([]*model.Parameter, len(entities))
	for i, entity := range entities {
		models[i] = toDomainParameter(entity)
	}
	return models, nil
}

// Save 实现保存（创建或覆盖）参数的接口。
func (r *entParameterRepository) Save(ctx context.Context, name, value string) error {
	updated, err := r.db.Parameter.Update().
		Where(parameter.NameEQ(name)).
		SetValue(value).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("更新参数失败: %w", err)
	}
	if updated > 0 {
		return nil
	}
	_, err = r.db.Parameter.Create().
		SetName(name).
		SetValue(value).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("创建参数失败: %w", err)
	}
	return nil
}

// toDomainParameter 将 *ent.Parameter 转换为领域模型。
func toDomainParameter(p *ent.Parameter) *model.Parameter {
	if p == nil {
		return nil
	}
	return &model.Parameter{
		ID:        p.ID,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
		Name:      p.Name,
		Value:     p.Value,
	}
}
