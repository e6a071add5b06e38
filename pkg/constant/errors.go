package constant

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// 定义业务逻辑相关的标准错误
var (
	// ErrNotFound 表示资源未找到，可以由 Handler 转换为 404
	ErrNotFound = errors.New("资源未找到")

	// ErrInvalidDate 表示归档日期组件无法构成合法日期，可以由 Handler 转换为 400
	ErrInvalidDate = errors.New("无效的归档日期")

	// ErrInvalidPage 表示页码小于 1，可以由 Handler 转换为 400
	ErrInvalidPage = errors.New("无效的页码")

	// ErrInvalidLength 表示每页条数不合法，可以由 Handler 转换为 400
	ErrInvalidLength = errors.New("无效的每页条数")

	// ErrInvalidSort 表示排序方向无法识别，可以由 Handler 转换为 400
	ErrInvalidSort = errors.New("无效的排序方向")

	// ErrBadRequest 表示请求参数错误，可以由 Handler 转换为 400
	ErrBadRequest = errors.New("错误的请求")

	// ErrInternalServer 表示服务器内部错误，可以由 Handler 转换为 500
	ErrInternalServer = errors.New("内部服务器错误")
)

// ValidationError 承载逐字段的校验失败信息。
// Fields 的键是字段名，值是消息键（形如 "validation.required"），
// 由展示层决定如何渲染。
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "字段校验失败: " + strings.Join(parts, ", ")
}

// AsValidationError 判断 err 是否是（或包裹了）一个 ValidationError。
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
