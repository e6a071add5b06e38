package content

import "fmt"

// tagPrefix 返回标签视图的 URL 前缀。
func tagPrefix(tagID int) string {
	return fmt.Sprintf("/tag/%d", tagID)
}

// categoryPrefix 返回分类视图的 URL 前缀。
func categoryPrefix(categoryID int) string {
	return fmt.Sprintf("/category/%d", categoryID)
}

// OlderPageURL 返回指向更旧一页的链接，已是最后一页时返回空字符串。
// page 为当前的 1 基页码。
func OlderPageURL(urlPrefix string, page, totalPages int) string {
	if page >= totalPages {
		return ""
	}
	return fmt.Sprintf("%s/page/%d", urlPrefix, page+1)
}

// NewerPageURL 返回指向更新一页的链接，已是第一页时返回空字符串。
// 第 2 页的"更新"链接直接回到视图首页而不是 /page/1。
func NewerPageURL(urlPrefix string, page int) string {
	switch {
	case page <= 1:
		return ""
	case page == 2:
		if urlPrefix == "" {
			return "/"
		}
		return urlPrefix
	default:
		return fmt.Sprintf("%s/page/%d", urlPrefix, page-1)
	}
}
