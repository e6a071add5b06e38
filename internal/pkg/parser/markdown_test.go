package parser

import (
	"strings"
	"testing"
)

func TestMarkdownToHTML(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantContain string
	}{
		{
			name:        "加粗",
			input:       "**加粗文本**",
			wantContain: "<strong>加粗文本</strong>",
		},
		{
			name:        "行内代码",
			input:       "使用 `fmt.Println` 输出",
			wantContain: "<code>fmt.Println</code>",
		},
		{
			name:        "链接",
			input:       "[主页](https://example.com)",
			wantContain: `href="https://example.com"`,
		},
		{
			name:        "自动识别裸链接",
			input:       "访问 https://example.com 查看",
			wantContain: `href="https://example.com"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MarkdownToHTML(tt.input)
			if err != nil {
				t.Fatalf("MarkdownToHTML() 返回错误: %v", err)
			}
			if !strings.Contains(got, tt.wantContain) {
				t.Errorf("输出 %q 不包含 %q", got, tt.wantContain)
			}
		})
	}
}

func TestMarkdownToHTMLStripsScripts(t *testing.T) {
	tests := []struct {
		name  string
		input string
		taboo string
	}{
		{
			name:  "script标签",
			input: "正常文字 <script>alert(1)</script>",
			taboo: "<script",
		},
		{
			name:  "内联事件",
			input: `<img src="x.png" onerror="alert(1)">`,
			taboo: "onerror",
		},
		{
			name:  "javascript协议链接",
			input: "[点我](javascript:alert(1))",
			taboo: "javascript:",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MarkdownToHTML(tt.input)
			if err != nil {
				t.Fatalf("MarkdownToHTML() 返回错误: %v", err)
			}
			if strings.Contains(got, tt.taboo) {
				t.Errorf("清理后的输出仍包含 %q: %q", tt.taboo, got)
			}
		})
	}
}
