package repository

import "testing"

func TestPageResultTotalPages(t *testing.T) {
	tests := []struct {
		name     string
		total    int64
		pageSize int
		want     int
	}{
		{name: "空结果集视为一页", total: 0, pageSize: 10, want: 1},
		{name: "恰好整页", total: 30, pageSize: 10, want: 3},
		{name: "非整页向上取整", total: 25, pageSize: 10, want: 3},
		{name: "单条记录", total: 1, pageSize: 10, want: 1},
		{name: "页大小为零", total: 25, pageSize: 0, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &PageResult[int]{Total: tt.total, PageSize: tt.pageSize}
			if got := p.TotalPages(); got != tt.want {
				t.Errorf("TotalPages() = %d, 期望 %d", got, tt.want)
			}
		})
	}
}

func TestPageResultFirstLast(t *testing.T) {
	// 25 条记录、每页 10 条，共 3 页（0、1、2）。
	tests := []struct {
		name      string
		page      int
		wantFirst bool
		wantLast  bool
	}{
		{name: "第一页", page: 0, wantFirst: true, wantLast: false},
		{name: "中间页", page: 1, wantFirst: false, wantLast: false},
		{name: "最后一页", page: 2, wantFirst: false, wantLast: true},
		{name: "越界页同样视为最后一页", page: 3, wantFirst: false, wantLast: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &PageResult[int]{Total: 25, Page: tt.page, PageSize: 10}
			if got := p.IsFirst(); got != tt.wantFirst {
				t.Errorf("IsFirst() = %v, 期望 %v", got, tt.wantFirst)
			}
			if got := p.IsLast(); got != tt.wantLast {
				t.Errorf("IsLast() = %v, 期望 %v", got, tt.wantLast)
			}
		})
	}
}

func TestPageRequestOffset(t *testing.T) {
	tests := []struct {
		name string
		req  PageRequest
		want int
	}{
		{name: "首页无偏移", req: PageRequest{Page: 0, PageSize: 10}, want: 0},
		{name: "第三页", req: PageRequest{Page: 2, PageSize: 10}, want: 20},
		{name: "大页", req: PageRequest{Page: 1, PageSize: 50}, want: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.req.Offset(); got != tt.want {
				t.Errorf("Offset() = %d, 期望 %d", got, tt.want)
			}
		})
	}
}
