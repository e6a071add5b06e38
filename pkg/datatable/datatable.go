// Package datatable 实现 DataTables 风格的表格查询协议：
// 把前端发来的 draw/start/length/order/columns 请求体翻译为通用分页请求。
package datatable

import (
	"fmt"
	"strings"

	"github.com/xyhcode/gocms/pkg/constant"
	"github.com/xyhcode/gocms/pkg/domain/repository"
)

// Search 是全局或单列的搜索框内容。
// 协议接受它，但查询引擎不应用自由文本过滤。
type Search struct {
	Value string `json:"value" form:"value"`
	Regex bool   `json:"regex" form:"regex"`
}

// Order 是一个排序条目：列下标加方向。
type Order struct {
	Column int    `json:"column" form:"column"`
	Dir    string `json:"dir" form:"dir"`
}

// Column 描述表格的一列。
type Column struct {
	Data       string `json:"data" form:"data"`
	Name       string `json:"name" form:"name"`
	Searchable bool   `json:"searchable" form:"searchable"`
	Orderable  bool   `json:"orderable" form:"orderable"`
	Search     Search `json:"search" form:"search"`
}

// Request 是一次表格查询请求。
type Request struct {
	Draw    int      `json:"draw" form:"draw"`
	Start   int      `json:"start" form:"start"`
	Length  int      `json:"length" form:"length"`
	Search  Search   `json:"search" form:"search"`
	Order   []Order  `json:"order" form:"order"`
	Columns []Column `json:"columns" form:"columns"`
}

// Response 是一次表格查询的响应。
// Draw 原样回显；RecordsFiltered 恒等于 RecordsTotal（不做自由文本过滤）。
type Response[T any] struct {
	Draw            int   `json:"draw"`
	RecordsTotal    int64 `json:"recordsTotal"`
	RecordsFiltered int64 `json:"recordsFiltered"`
	Data            []*T  `json:"data"`
}

// ToPageRequest 把表格请求翻译为通用分页请求。
// 页码按 start/length 整除计算，排序条目第 i 项对应 columns[i]：
// 下标越界或不可排序的列被静默跳过，无法识别的排序方向则是错误。
func (r *Request) ToPageRequest() (repository.PageRequest, error) {
	if r.Length <= 0 {
		return repository.PageRequest{}, constant.ErrInvalidLength
	}

	req := repository.PageRequest{
		Page:     r.Start / r.Length,
		PageSize: r.Length,
	}

	for i, o := range r.Order {
		if i >= len(r.Columns) {
			continue
		}
		col := r.Columns[i]
		if !col.Orderable || col.Data == "" {
			continue
		}
		dir, err := parseDirection(o.Dir)
		if err != nil {
			return repository.PageRequest{}, err
		}
		req.Sort = append(req.Sort, repository.SortTerm{
			Property:  col.Data,
			Direction: dir,
		})
	}

	return req, nil
}

func parseDirection(dir string) (repository.Direction, error) {
	switch strings.ToLower(dir) {
	case "asc":
		return repository.Asc, nil
	case "desc":
		return repository.Desc, nil
	default:
		return "", fmt.Errorf("%w: %q", constant.ErrInvalidSort, dir)
	}
}
