package ent

import (
	"fmt"

	"github.com/xyhcode/gocms/ent"
	"github.com/xyhcode/gocms/pkg/constant"
	"github.com/xyhcode/gocms/pkg/domain/repository"

	"entgo.io/ent/dialect/sql"
)

// orderOptions 把领域层的排序条件翻译成各实体的 Ent 排序选项。
// columns 是该实体允许排序的属性白名单，白名单之外的属性一律拒绝，
// 避免把外部输入直接拼进 ORDER BY。
func orderOptions[O ~func(*sql.Selector)](terms []repository.SortTerm, columns map[string]string) ([]O, error) {
	orders := make([]O, 0, len(terms))
	for _, t := range terms {
		col, ok := columns[t.Property]
		if !ok {
			return nil, fmt.Errorf("%w: 不支持按 %q 排序", constant.ErrBadRequest, t.Property)
		}
		switch t.Direction {
		case repository.Asc:
			orders = append(orders, O(ent.Asc(col)))
		case repository.Desc:
			orders = append(orders, O(ent.Desc(col)))
		default:
			return nil, fmt.Errorf("%w: %q", constant.ErrInvalidSort, t.Direction)
		}
	}
	return orders, nil
}
