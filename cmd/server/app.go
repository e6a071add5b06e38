// gocms/cmd/server/app.go
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/xyhcode/gocms/internal/app/bootstrap"
	"github.com/xyhcode/gocms/internal/app/middleware"
	"github.com/xyhcode/gocms/internal/app/task"
	"github.com/xyhcode/gocms/internal/infra/persistence/database"
	ent_impl "github.com/xyhcode/gocms/internal/infra/persistence/ent"
	"github.com/xyhcode/gocms/internal/infra/router"
	"github.com/xyhcode/gocms/pkg/config"
	admin_handler "github.com/xyhcode/gocms/pkg/handler/admin"
	comment_handler "github.com/xyhcode/gocms/pkg/handler/comment"
	content_handler "github.com/xyhcode/gocms/pkg/handler/content"
	feed_handler "github.com/xyhcode/gocms/pkg/handler/feed"
	admin_service "github.com/xyhcode/gocms/pkg/service/admin"
	archive_service "github.com/xyhcode/gocms/pkg/service/archive"
	comment_service "github.com/xyhcode/gocms/pkg/service/comment"
	content_service "github.com/xyhcode/gocms/pkg/service/content"
	feed_service "github.com/xyhcode/gocms/pkg/service/feed"
	parameter_service "github.com/xyhcode/gocms/pkg/service/parameter"
	"github.com/xyhcode/gocms/pkg/service/utility"
)

// App 结构体，用于封装应用的所有核心组件
type App struct {
	cfg        *config.Config
	engine     *gin.Engine
	scheduler  *task.Scheduler
	sqlDB      *sql.DB
	paramSvc   parameter_service.Service
	contentSvc content_service.Service
	commentSvc comment_service.Service
	feedSvc    feed_service.Service
	cacheSvc   utility.CacheService
}

// NewApp 是应用的构造函数，它执行所有的初始化和依赖注入工作
func NewApp() (*App, func(), error) {
	// --- Phase 1: 加载外部配置 ---
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("加载配置失败: %w", err)
	}

	// --- Phase 2: 初始化基础设施 ---
	sqlDB, err := database.NewSQLDB(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("创建数据库连接池失败: %w", err)
	}
	entClient, err := database.NewEntClient(sqlDB, cfg)
	if err != nil {
		sqlDB.Close()
		return nil, nil, err
	}

	// 尝试连接 Redis（如果失败，将自动降级到内存缓存）
	redisClient, err := database.NewRedisClient(context.Background(), cfg)
	if err != nil {
		sqlDB.Close()
		return nil, nil, fmt.Errorf("redis 初始化失败: %w", err)
	}

	cleanup := func() {
		log.Println("执行清理操作：关闭数据库连接...")
		sqlDB.Close()
		if redisClient != nil {
			log.Println("关闭 Redis 连接...")
			redisClient.Close()
		}
	}

	dbType := cfg.GetString(config.KeyDBType)
	if dbType == "" {
		dbType = "sqlite"
	}
	if dbType == "mariadb" {
		dbType = "mysql"
	}

	// --- Phase 3: 初始化数据仓库层 ---
	contentRepo := ent_impl.NewEntContentRepository(entClient, dbType)
	tagRepo := ent_impl.NewEntTagRepository(entClient)
	categoryRepo := ent_impl.NewEntCategoryRepository(entClient)
	commentRepo := ent_impl.NewEntCommentRepository(entClient)
	parameterRepo := ent_impl.NewEntParameterRepository(entClient)

	// --- Phase 4: 初始化应用引导程序 ---
	bootstrapper := bootstrap.NewBootstrapper(entClient, parameterRepo)
	if err := bootstrapper.InitializeDatabase(); err != nil {
		return nil, cleanup, fmt.Errorf("数据库初始化失败: %w", err)
	}

	// --- Phase 5: 初始化业务逻辑层 ---
	// 使用智能缓存工厂，自动选择 Redis 或内存缓存
	cacheSvc := utility.NewCacheServiceWithFallback(redisClient)

	paramSvc := parameter_service.NewService(parameterRepo)
	if err := paramSvc.LoadAll(context.Background()); err != nil {
		return nil, cleanup, fmt.Errorf("从数据库加载站点配置失败: %w", err)
	}
	log.Println("✅ 站点配置加载完成")

	archiveSvc := archive_service.NewService()
	contentSvc := content_service.NewService(contentRepo, categoryRepo, archiveSvc, paramSvc)
	commentSvc := comment_service.NewService(contentRepo, commentRepo, cacheSvc)
	feedSvc := feed_service.NewService(contentRepo, commentRepo, paramSvc, cacheSvc)
	adminSvc := admin_service.NewService(contentRepo, tagRepo, categoryRepo, commentRepo)

	// 初始化任务调度器
	scheduler := task.NewScheduler(paramSvc)

	// --- Phase 6: 初始化表现层 (Handlers) ---
	contentHandler := content_handler.NewHandler(contentSvc)
	commentHandler := comment_handler.NewHandler(commentSvc)
	feedHandler := feed_handler.NewHandler(feedSvc)
	adminHandler := admin_handler.NewHandler(adminSvc)

	// --- Phase 7: 初始化路由 ---
	appRouter := router.NewRouter(
		contentHandler,
		commentHandler,
		feedHandler,
		adminHandler,
	)

	// --- Phase 8: 配置 Gin 引擎 ---
	if cfg.GetBool(config.KeyServerDebug) {
		gin.SetMode(gin.DebugMode)
		log.Println("运行模式: Debug (Gin 将打印详细路由日志)")
	} else {
		gin.SetMode(gin.ReleaseMode)
		log.Println("运行模式: Release (Gin 启动日志已禁用)")
	}

	engine := gin.Default()
	err = engine.SetTrustedProxies([]string{"127.0.0.1", "::1", "10.0.0.0/8", "172.16.0.0/12", "192.168.0.0/16"})
	if err != nil {
		return nil, cleanup, fmt.Errorf("设置信任代理失败: %w", err)
	}
	engine.ForwardedByClientIP = true
	engine.Use(middleware.Cors())
	appRouter.Setup(engine)

	app := &App{
		cfg:        cfg,
		engine:     engine,
		scheduler:  scheduler,
		sqlDB:      sqlDB,
		paramSvc:   paramSvc,
		contentSvc: contentSvc,
		commentSvc: commentSvc,
		feedSvc:    feedSvc,
		cacheSvc:   cacheSvc,
	}

	return app, cleanup, nil
}

func (a *App) Config() *config.Config {
	return a.cfg
}

func (a *App) Engine() *gin.Engine {
	return a.engine
}

func (a *App) DB() *sql.DB {
	return a.sqlDB
}

func (a *App) ParameterService() parameter_service.Service {
	return a.paramSvc
}

func (a *App) ContentService() content_service.Service {
	return a.contentSvc
}

func (a *App) CommentService() comment_service.Service {
	return a.commentSvc
}

func (a *App) FeedService() feed_service.Service {
	return a.feedSvc
}

func (a *App) CacheService() utility.CacheService {
	return a.cacheSvc
}

func (a *App) Run() error {
	a.scheduler.RegisterJobs()
	a.scheduler.Start()
	port := a.cfg.GetString(config.KeyServerPort)
	if port == "" {
		port = "8091"
	}
	fmt.Printf("应用程序启动成功，正在监听端口: %s\n", port)

	return a.engine.Run(":" + port)
}

func (a *App) Stop() {
	if a.scheduler != nil {
		a.scheduler.Stop()
		log.Println("任务调度器已停止。")
	}
}
