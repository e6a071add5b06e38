package configdef

import (
	"github.com/xyhcode/gocms/pkg/constant"
)

// Definition 定义了单个配置参数的所有属性。
type Definition struct {
	Key     constant.ParameterKey
	Value   string
	Comment string
}

// AllParameters 是系统中所有配置参数的"单一事实来源"。
// 引导程序在启动时据此补齐数据库中缺失的参数。
var AllParameters = []Definition{
	// --- 站点基础配置 ---
	{Key: constant.KeyTitle, Value: "Blog title", Comment: "站点标题"},
	{Key: constant.KeySubtitle, Value: "Blog subtitle", Comment: "站点副标题"},
	{Key: constant.KeySiteURL, Value: "", Comment: "站点绝对地址，用于 Feed 中的永久链接"},

	// --- 列表与分页 ---
	{Key: constant.KeyPostsPerPage, Value: "10", Comment: "列表页每页文章数"},
}
