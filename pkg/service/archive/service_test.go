package archive

import (
	"errors"
	"testing"
	"time"

	"github.com/xyhcode/gocms/pkg/constant"
)

func TestResolve(t *testing.T) {
	svc := NewService()

	tests := []struct {
		name       string
		year       int
		month      int
		day        int
		wantStart  time.Time
		wantEnd    time.Time
		wantPrefix string
	}{
		{
			name:       "仅年份",
			year:       2024,
			wantStart:  time.Date(2024, time.January, 1, 0, 0, 0, 0, time.Local),
			wantEnd:    time.Date(2024, time.December, 31, 0, 0, 0, 0, time.Local),
			wantPrefix: "/2024",
		},
		{
			name:       "年加月",
			year:       2024,
			month:      6,
			wantStart:  time.Date(2024, time.June, 1, 0, 0, 0, 0, time.Local),
			wantEnd:    time.Date(2024, time.June, 30, 23, 59, 59, 999999000, time.Local),
			wantPrefix: "/2024/06",
		},
		{
			name:       "闰年二月",
			year:       2024,
			month:      2,
			wantStart:  time.Date(2024, time.February, 1, 0, 0, 0, 0, time.Local),
			wantEnd:    time.Date(2024, time.February, 29, 23, 59, 59, 999999000, time.Local),
			wantPrefix: "/2024/02",
		},
		{
			name:       "平年二月",
			year:       2023,
			month:      2,
			wantStart:  time.Date(2023, time.February, 1, 0, 0, 0, 0, time.Local),
			wantEnd:    time.Date(2023, time.February, 28, 23, 59, 59, 999999000, time.Local),
			wantPrefix: "/2023/02",
		},
		{
			name:       "完整日期",
			year:       2024,
			month:      6,
			day:        15,
			wantStart:  time.Date(2024, time.June, 15, 0, 0, 0, 0, time.Local),
			wantEnd:    time.Date(2024, time.June, 15, 23, 59, 59, 999999000, time.Local),
			wantPrefix: "/2024/06/15",
		},
		{
			name:       "个位数月日补零",
			year:       2024,
			month:      3,
			day:        5,
			wantStart:  time.Date(2024, time.March, 5, 0, 0, 0, 0, time.Local),
			wantEnd:    time.Date(2024, time.March, 5, 23, 59, 59, 999999000, time.Local),
			wantPrefix: "/2024/03/05",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Resolve(tt.year, tt.month, tt.day)
			if err != nil {
				t.Fatalf("Resolve() 返回错误: %v", err)
			}
			if got.IsZero() {
				t.Fatal("Resolve() 返回了零值区间")
			}
			if !got.Start.Equal(tt.wantStart) {
				t.Errorf("Start = %v, 期望 %v", got.Start, tt.wantStart)
			}
			if !got.End.Equal(tt.wantEnd) {
				t.Errorf("End = %v, 期望 %v", got.End, tt.wantEnd)
			}
			if got.URLPrefix != tt.wantPrefix {
				t.Errorf("URLPrefix = %q, 期望 %q", got.URLPrefix, tt.wantPrefix)
			}
		})
	}
}

// 年度视图的右边界是 12 月 31 日零点，当天发布的文章不在年度视图内。
func TestResolveYearExcludesLastDay(t *testing.T) {
	svc := NewService()

	rng, err := svc.Resolve(2024, 0, 0)
	if err != nil {
		t.Fatalf("Resolve() 返回错误: %v", err)
	}

	lastDayNoon := time.Date(2024, time.December, 31, 12, 0, 0, 0, time.Local)
	if !lastDayNoon.After(rng.End) {
		t.Errorf("12 月 31 日中午应落在年度区间之外, End = %v", rng.End)
	}

	dec30 := time.Date(2024, time.December, 30, 23, 0, 0, 0, time.Local)
	if dec30.After(rng.End) {
		t.Errorf("12 月 30 日晚间应落在年度区间之内, End = %v", rng.End)
	}
}

func TestResolveNoComponents(t *testing.T) {
	svc := NewService()

	rng, err := svc.Resolve(0, 0, 0)
	if err != nil {
		t.Fatalf("Resolve() 返回错误: %v", err)
	}
	if !rng.IsZero() {
		t.Errorf("未提供组件时应返回零值区间, got %+v", rng)
	}
}

func TestResolveInvalid(t *testing.T) {
	svc := NewService()

	tests := []struct {
		name  string
		year  int
		month int
		day   int
	}{
		{name: "十三月", year: 2024, month: 13},
		{name: "二月三十日", year: 2024, month: 2, day: 30},
		{name: "平年二月二十九日", year: 2023, month: 2, day: 29},
		{name: "三十二日", year: 2024, month: 6, day: 32},
		{name: "有月无年", year: 0, month: 6},
		{name: "有日无月", year: 2024, month: 0, day: 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Resolve(tt.year, tt.month, tt.day)
			if !errors.Is(err, constant.ErrInvalidDate) {
				t.Errorf("Resolve(%d, %d, %d) err = %v, 期望 ErrInvalidDate", tt.year, tt.month, tt.day, err)
			}
		})
	}
}
