package constant

// ParameterKey 为所有在应用中使用的配置参数键定义了类型安全的常量。
type ParameterKey string

// String 方便地将 ParameterKey 转换为 string 类型。
func (k ParameterKey) String() string {
	return string(k)
}

const (
	// --- 站点基础配置 ---
	KeyTitle    ParameterKey = "TITLE"
	KeySubtitle ParameterKey = "SUBTITLE"
	KeySiteURL  ParameterKey = "SITE_URL"

	// --- 列表与分页 ---
	KeyPostsPerPage ParameterKey = "POSTS_PER_PAGE"
)
