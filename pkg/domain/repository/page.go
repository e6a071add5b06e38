package repository

// Direction 表示排序方向。
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// SortTerm 是一个排序条件：按哪个属性、朝哪个方向。
// Property 使用领域属性名（如 "publishedAt"），由仓储层映射到具体列。
type SortTerm struct {
	Property  string
	Direction Direction
}

// PageRequest 包含了所有分页查询都通用的参数。
// Page 为从 0 开始的页码。
type PageRequest struct {
	Page     int
	PageSize int
	Sort     []SortTerm
}

// Offset 返回该分页请求对应的行偏移量。
func (r PageRequest) Offset() int {
	return r.Page * r.PageSize
}

// PageResult 包含了所有分页查询返回的通用结构。
// T 代表返回的实体类型，Items 可以为空但不会为 nil。
type PageResult[T any] struct {
	Items    []*T  `json:"items"`
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	PageSize int   `json:"pageSize"`
}

// TotalPages 返回总页数，空结果集视为 1 页。
func (p *PageResult[T]) TotalPages() int {
	if p.Total == 0 || p.PageSize <= 0 {
		return 1
	}
	pages := int((p.Total + int64(p.PageSize) - 1) / int64(p.PageSize))
	if pages < 1 {
		pages = 1
	}
	return pages
}

// IsFirst 判断当前页是否为第一页。
func (p *PageResult[T]) IsFirst() bool {
	return p.Page == 0
}

// IsLast 判断当前页是否为最后一页。
// 超出范围的页码同样返回 true：越界分页返回空页而不是错误。
func (p *PageResult[T]) IsLast() bool {
	return p.Page >= p.TotalPages()-1
}
