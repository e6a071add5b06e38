// Package parser 负责把访客提交的 Markdown 文本渲染为可安全展示的 HTML。
package parser

import (
	"bytes"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var mdParser goldmark.Markdown
var policy *bluemonday.Policy

func init() {
	// 初始化 Goldmark 解析器，并启用常用扩展
	mdParser = goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,     // 支持 GitHub Flavored Markdown
			extension.Linkify, // 自动识别链接
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(), // 硬换行
			html.WithXHTML(),     // 渲染为 XHTML
		),
	)

	// 初始化 bluemonday 的安全策略
	// UGCPolicy 适用于用户生成的内容
	policy = bluemonday.UGCPolicy()
}

// MarkdownToHTML 将 Markdown 字符串转换为安全的 HTML 字符串
func MarkdownToHTML(mdContent string) (string, error) {
	var buf bytes.Buffer
	if err := mdParser.Convert([]byte(mdContent), &buf); err != nil {
		return "", err
	}
	// 使用 bluemonday 清理 HTML，防止 XSS
	safeHTML := policy.Sanitize(buf.String())
	return safeHTML, nil
}
