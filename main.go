package main

import (
	"fmt"
	"log"

	"stride-nav/config"
	"stride-nav/db"
	"stride-nav/handler"
	"stride-nav/inference"
	"stride-nav/nav"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	fmt.Println("=== Stride 室内导航服务 ===")

	// 1. 加载 .env (不存在也没关系，直接用环境变量)
	if err := godotenv.Load(); err != nil {
		log.Println("未找到 .env 文件，使用环境变量")
	}
	cfg := config.Load()

	// 2. 初始化数据库
	// 连接 PostgreSQL，自动迁移表结构
	// 如果是第一次运行，会自动将 map_data.json 的数据导入数据库
	gdb, err := db.InitDB()
	if err != nil {
		log.Fatalf("数据库初始化失败: %v", err)
	}

	// 3. 组装依赖: 地图存储 -> 导航服务 -> handler
	store := db.NewMapStore(gdb)
	navService := nav.NewService(store)

	var detector inference.Client
	if cfg.InferenceURL != "" {
		detector = inference.NewHTTPClient(cfg.InferenceURL, cfg.InferenceTimeout)
	}

	h := handler.New(gdb, store, navService, detector, cfg.JWTSecret, cfg.NavigateTimeout)

	// 4. 初始化 Gin 引擎
	r := gin.Default()

	// 5. 配置路由
	setupRoutes(r, h)

	// 6. 启动服务器
	fmt.Println("\n服务器启动中...")
	fmt.Printf("访问地址: http://localhost:%s\n", cfg.Port)
	fmt.Println("API 文档:")
	fmt.Println("  - POST   /api/login             - 用户登录")
	fmt.Println("  - POST   /api/register          - 用户注册")
	fmt.Println("  - POST   /api/navigate          - 室内导航 (逐步指引)")
	fmt.Println("  - GET    /api/landmarks/search  - 搜索地标")
	fmt.Println("  - POST   /api/detect            - 目标检测代理")
	fmt.Println("\n按 Ctrl+C 退出")

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("服务器启动失败: %v", err)
	}
}

// setupRoutes 配置路由
func setupRoutes(r *gin.Engine, h *handler.Handler) {
	// CORS 跨域中间件
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	// 健康检查
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
			"status":  "ok",
		})
	})

	// API 路由组
	api := r.Group("/api")
	{
		// 公开接口 (无需认证)
		api.POST("/login", h.Login)
		api.POST("/register", h.Register)

		// 导航相关接口
		api.POST("/navigate", h.Navigate)
		api.GET("/landmarks/search", h.SearchLandmarks)

		// 目标检测代理
		api.POST("/detect", h.Detect)

		// 如果将来需要认证，可以解开下面的注释
		// authorized := api.Group("/")
		// authorized.Use(h.AuthMiddleware())
		// {
		//     authorized.POST("/navigate", h.Navigate)
		// }
	}
}
