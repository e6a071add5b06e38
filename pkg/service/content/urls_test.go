package content

import "testing"

func TestOlderPageURL(t *testing.T) {
	tests := []struct {
		name       string
		prefix     string
		page       int
		totalPages int
		want       string
	}{
		{name: "首页指向第二页", prefix: "", page: 1, totalPages: 3, want: "/page/2"},
		{name: "中间页", prefix: "", page: 2, totalPages: 3, want: "/page/3"},
		{name: "最后一页没有更旧链接", prefix: "", page: 3, totalPages: 3, want: ""},
		{name: "越界页没有更旧链接", prefix: "", page: 4, totalPages: 3, want: ""},
		{name: "标签视图带前缀", prefix: "/tag/7", page: 1, totalPages: 2, want: "/tag/7/page/2"},
		{name: "归档视图带前缀", prefix: "/2024/06", page: 2, totalPages: 5, want: "/2024/06/page/3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OlderPageURL(tt.prefix, tt.page, tt.totalPages); got != tt.want {
				t.Errorf("OlderPageURL(%q, %d, %d) = %q, 期望 %q",
					tt.prefix, tt.page, tt.totalPages, got, tt.want)
			}
		})
	}
}

func TestNewerPageURL(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
		page   int
		want   string
	}{
		{name: "首页没有更新链接", prefix: "", page: 1, want: ""},
		{name: "第二页回到站点首页", prefix: "", page: 2, want: "/"},
		{name: "第二页回到视图首页", prefix: "/tag/7", page: 2, want: "/tag/7"},
		{name: "第三页指向第二页", prefix: "", page: 3, want: "/page/2"},
		{name: "归档视图第四页", prefix: "/2024", page: 4, want: "/2024/page/3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewerPageURL(tt.prefix, tt.page); got != tt.want {
				t.Errorf("NewerPageURL(%q, %d) = %q, 期望 %q", tt.prefix, tt.page, got, tt.want)
			}
		})
	}
}

func TestViewPrefixes(t *testing.T) {
	if got := tagPrefix(42); got != "/tag/42" {
		t.Errorf("tagPrefix(42) = %q, 期望 \"/tag/42\"", got)
	}
	if got := categoryPrefix(7); got != "/category/7" {
		t.Errorf("categoryPrefix(7) = %q, 期望 \"/category/7\"", got)
	}
}
