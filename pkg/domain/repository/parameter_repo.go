package repository

import (
	"context"

	"github.com/xyhcode/gocms/pkg/domain/model"
)

// ParameterRepository 定义了配置参数数据操作的契约。
type ParameterRepository interface {
	// FindByName 按键查找参数，未找到时返回 constant.ErrNotFound。
	FindByName(ctx context.Context, name string) (*model.Parameter, error)

	// FindAll 返回全部参数。
	FindAll(ctx context.Context) ([]*model.Parameter, error)

	// Save 写入或覆盖单个参数。
	Save(ctx context.Context, name, value string) error
}
