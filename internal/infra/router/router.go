// gocms/internal/infra/router/router.go
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/xyhcode/gocms/internal/app/middleware"
	admin_handler "github.com/xyhcode/gocms/pkg/handler/admin"
	comment_handler "github.com/xyhcode/gocms/pkg/handler/comment"
	content_handler "github.com/xyhcode/gocms/pkg/handler/content"
	feed_handler "github.com/xyhcode/gocms/pkg/handler/feed"
)

// NoCacheMiddleware 全局反缓存中间件，确保动态接口响应不会被CDN缓存
func NoCacheMiddleware() gin.HandlerFunc {
	return gin.HandlerFunc(func(c *gin.Context) {
		c.Header("Cache-Control", "no-cache, no-store, must-revalidate, private, max-age=0")
		c.Header("Pragma", "no-cache")
		c.Header("Expires", "0")
		c.Header("X-Content-Type-Options", "nosniff")

		c.Next()
	})
}

// Router 封装了应用的所有路由和其依赖的处理器。
type Router struct {
	contentHandler *content_handler.Handler
	commentHandler *comment_handler.Handler
	feedHandler    *feed_handler.Handler
	adminHandler   *admin_handler.Handler
}

// NewRouter 是 Router 的构造函数，通过依赖注入接收所有处理器。
func NewRouter(
	contentHandler *content_handler.Handler,
	commentHandler *comment_handler.Handler,
	feedHandler *feed_handler.Handler,
	adminHandler *admin_handler.Handler,
) *Router {
	return &Router{
		contentHandler: contentHandler,
		commentHandler: commentHandler,
		feedHandler:    feedHandler,
		adminHandler:   adminHandler,
	}
}

// Setup 注册全部路由。
func (r *Router) Setup(engine *gin.Engine) {
	engine.Use(NoCacheMiddleware())

	// --- Feed ---
	engine.GET("/feed", r.feedHandler.Posts)
	engine.GET("/comments/feed", r.feedHandler.Comments)

	// --- 评论 ---
	engine.GET("/comments", r.commentHandler.Latest)
	engine.POST("/post/:key/comment", middleware.CommentRateLimit(), r.commentHandler.Create)

	// --- 内容（公开） ---
	engine.GET("/", r.contentHandler.Index)
	engine.GET("/page/:n", r.contentHandler.Index)

	engine.GET("/post/:key", r.contentHandler.Detail)

	engine.GET("/tag/:key", r.contentHandler.Tag)
	engine.GET("/tag/:key/page/:n", r.contentHandler.Tag)
	engine.GET("/category/:key", r.contentHandler.Category)
	engine.GET("/category/:key/page/:n", r.contentHandler.Category)

	// 归档路由：/2024、/2024/06、/2024/06/15，均支持 /page/:n 后缀
	engine.GET("/:year", r.contentHandler.Archive)
	engine.GET("/:year/page/:n", r.contentHandler.Archive)
	engine.GET("/:year/:month", r.contentHandler.Archive)
	engine.GET("/:year/:month/page/:n", r.contentHandler.Archive)
	engine.GET("/:year/:month/:day", r.contentHandler.Archive)
	engine.GET("/:year/:month/:day/page/:n", r.contentHandler.Archive)

	// --- 后台 ---
	adminGroup := engine.Group("/admin")
	{
		adminGroup.GET("/dashboard", r.adminHandler.Dashboard)
		adminGroup.POST("/posts", r.adminHandler.Posts)
		adminGroup.POST("/pages", r.adminHandler.Pages)
		adminGroup.POST("/tags", r.adminHandler.Tags)
		adminGroup.POST("/categories", r.adminHandler.Categories)
		adminGroup.POST("/comments", r.adminHandler.Comments)
	}
}
