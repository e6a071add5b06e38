package datatable

import (
	"errors"
	"testing"

	"github.com/xyhcode/gocms/pkg/constant"
	"github.com/xyhcode/gocms/pkg/domain/repository"
)

func orderableColumns(names ...string) []Column {
	cols := make([]Column, 0, len(names))
	for _, n := range names {
		cols = append(cols, Column{Data: n, Orderable: true})
	}
	return cols
}

func TestToPageRequestPaging(t *testing.T) {
	tests := []struct {
		name     string
		start    int
		length   int
		wantPage int
	}{
		{name: "第一页", start: 0, length: 10, wantPage: 0},
		{name: "第三页", start: 20, length: 10, wantPage: 2},
		{name: "非整页偏移向下取整", start: 25, length: 10, wantPage: 2},
		{name: "大页", start: 50, length: 50, wantPage: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &Request{Start: tt.start, Length: tt.length}
			got, err := r.ToPageRequest()
			if err != nil {
				t.Fatalf("ToPageRequest() 返回错误: %v", err)
			}
			if got.Page != tt.wantPage {
				t.Errorf("Page = %d, 期望 %d", got.Page, tt.wantPage)
			}
			if got.PageSize != tt.length {
				t.Errorf("PageSize = %d, 期望 %d", got.PageSize, tt.length)
			}
		})
	}
}

func TestToPageRequestInvalidLength(t *testing.T) {
	for _, length := range []int{0, -1} {
		r := &Request{Start: 0, Length: length}
		_, err := r.ToPageRequest()
		if !errors.Is(err, constant.ErrInvalidLength) {
			t.Errorf("Length=%d 时 err = %v, 期望 ErrInvalidLength", length, err)
		}
	}
}

// 排序条目第 i 项取 columns[i] 的列名，而不是 order[i].Column 指向的列。
func TestToPageRequestOrderUsesPositionalColumn(t *testing.T) {
	r := &Request{
		Start:   0,
		Length:  10,
		Columns: orderableColumns("id", "title", "createdAt"),
		Order: []Order{
			{Column: 2, Dir: "desc"}, // 下标字段被忽略，取 columns[0]
			{Column: 0, Dir: "asc"},  // 取 columns[1]
		},
	}

	got, err := r.ToPageRequest()
	if err != nil {
		t.Fatalf("ToPageRequest() 返回错误: %v", err)
	}

	want := []repository.SortTerm{
		{Property: "id", Direction: repository.Desc},
		{Property: "title", Direction: repository.Asc},
	}
	if len(got.Sort) != len(want) {
		t.Fatalf("Sort 条数 = %d, 期望 %d", len(got.Sort), len(want))
	}
	for i := range want {
		if got.Sort[i] != want[i] {
			t.Errorf("Sort[%d] = %+v, 期望 %+v", i, got.Sort[i], want[i])
		}
	}
}

func TestToPageRequestSkipsUnusableColumns(t *testing.T) {
	r := &Request{
		Start:  0,
		Length: 10,
		Columns: []Column{
			{Data: "id", Orderable: true},
			{Data: "actions", Orderable: false}, // 不可排序
			{Data: "", Orderable: true},         // 无列名
		},
		Order: []Order{
			{Dir: "asc"},
			{Dir: "asc"},
			{Dir: "asc"},
			{Dir: "asc"}, // 越过 columns 范围
		},
	}

	got, err := r.ToPageRequest()
	if err != nil {
		t.Fatalf("ToPageRequest() 返回错误: %v", err)
	}
	if len(got.Sort) != 1 {
		t.Fatalf("Sort 条数 = %d, 期望 1 (其余条目被静默跳过)", len(got.Sort))
	}
	if got.Sort[0].Property != "id" {
		t.Errorf("Sort[0].Property = %q, 期望 \"id\"", got.Sort[0].Property)
	}
}

func TestToPageRequestDirectionCaseInsensitive(t *testing.T) {
	tests := []struct {
		dir  string
		want repository.Direction
	}{
		{dir: "asc", want: repository.Asc},
		{dir: "ASC", want: repository.Asc},
		{dir: "Desc", want: repository.Desc},
		{dir: "DESC", want: repository.Desc},
	}

	for _, tt := range tests {
		r := &Request{
			Start:   0,
			Length:  10,
			Columns: orderableColumns("id"),
			Order:   []Order{{Dir: tt.dir}},
		}
		got, err := r.ToPageRequest()
		if err != nil {
			t.Fatalf("dir=%q 时返回错误: %v", tt.dir, err)
		}
		if got.Sort[0].Direction != tt.want {
			t.Errorf("dir=%q 时 Direction = %q, 期望 %q", tt.dir, got.Sort[0].Direction, tt.want)
		}
	}
}

func TestToPageRequestUnknownDirection(t *testing.T) {
	r := &Request{
		Start:   0,
		Length:  10,
		Columns: orderableColumns("id"),
		Order:   []Order{{Dir: "sideways"}},
	}
	_, err := r.ToPageRequest()
	if !errors.Is(err, constant.ErrInvalidSort) {
		t.Errorf("未知方向时 err = %v, 期望 ErrInvalidSort", err)
	}
}

// 协议接受搜索框内容但不参与查询翻译。
func TestToPageRequestIgnoresSearch(t *testing.T) {
	r := &Request{
		Start:  0,
		Length: 10,
		Search: Search{Value: "golang", Regex: true},
	}
	got, err := r.ToPageRequest()
	if err != nil {
		t.Fatalf("ToPageRequest() 返回错误: %v", err)
	}
	if len(got.Sort) != 0 {
		t.Errorf("搜索内容不应产生排序条目, Sort = %+v", got.Sort)
	}
}
