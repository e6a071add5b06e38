package constant

// 缓存键
const (
	// CacheKeyPostFeed 文章 Feed 的缓存键
	CacheKeyPostFeed = "gocms:feed:posts"

	// CacheKeyCommentFeed 评论 Feed 的缓存键
	CacheKeyCommentFeed = "gocms:feed:comments"
)
