// Package archive 把 URL 中的年/月/日组件解析为发布时间的闭区间。
package archive

import (
	"fmt"
	"time"

	"github.com/xyhcode/gocms/pkg/constant"
)

// endOfDayNanos 是一天最后一刻的纳秒部分（微秒精度）。
const endOfDayNanos = 999999000

// Range 是解析出的归档时间窗口。
// Start 与 End 均为闭边界，URLPrefix 用于拼接该归档视图的分页链接。
// 未提供任何日期组件时 Range 为零值，表示不过滤。
type Range struct {
	Start     time.Time
	End       time.Time
	URLPrefix string
}

// IsZero 判断该区间是否为"不过滤"的零值区间。
func (r Range) IsZero() bool {
	return r.Start.IsZero() && r.End.IsZero()
}

// Service 定义了归档区间解析服务。
type Service interface {
	// Resolve 把年/月/日组件（0 表示未提供）解析为时间区间。
	// 组件是层级化的：提供日就必须提供月，提供月就必须提供年。
	// 组件无法构成合法日期时返回 constant.ErrInvalidDate。
	Resolve(year, month, day int) (Range, error)
}

type service struct{}

// NewService 是 archive service 的构造函数。
func NewService() Service {
	return &service{}
}

func (s *service) Resolve(year, month, day int) (Range, error) {
	if year <= 0 {
		if month > 0 || day > 0 {
			return Range{}, constant.ErrInvalidDate
		}
		return Range{}, nil
	}
	if day > 0 && month <= 0 {
		return Range{}, constant.ErrInvalidDate
	}

	switch {
	case month <= 0:
		// 仅年份：区间到 12 月 31 日当天零点为止。
		// 12 月 31 日当天发布的文章因此落在年度视图之外，
		// 但仍会出现在 12 月与 12 月 31 日的视图中。
		return Range{
			Start:     time.Date(year, time.January, 1, 0, 0, 0, 0, time.Local),
			End:       time.Date(year, time.December, 31, 0, 0, 0, 0, time.Local),
			URLPrefix: fmt.Sprintf("/%02d", year),
		}, nil

	case day <= 0:
		if month > 12 {
			return Range{}, constant.ErrInvalidDate
		}
		start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
		// 下月 1 日回退一天即本月最后一天
		lastDay := start.AddDate(0, 1, -1)
		return Range{
			Start:     start,
			End:       time.Date(year, time.Month(month), lastDay.Day(), 23, 59, 59, endOfDayNanos, time.Local),
			URLPrefix: fmt.Sprintf("/%02d/%02d", year, month),
		}, nil

	default:
		if month > 12 || !validDate(year, month, day) {
			return Range{}, constant.ErrInvalidDate
		}
		return Range{
			Start:     time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local),
			End:       time.Date(year, time.Month(month), day, 23, 59, 59, endOfDayNanos, time.Local),
			URLPrefix: fmt.Sprintf("/%02d/%02d/%02d", year, month, day),
		}, nil
	}
}

// validDate 利用 time.Date 的规范化行为检查组件是否构成真实日期：
// 2 月 30 日会被规范化成 3 月，据此识别非法输入。
func validDate(year, month, day int) bool {
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return t.Year() == year && t.Month() == time.Month(month) && t.Day() == day
}
