package handler

import (
	"time"

	"stride-nav/db"
	"stride-nav/inference"
	"stride-nav/nav"

	"gorm.io/gorm"
)

// Handler 所有 HTTP 接口的依赖集合
// 依赖在 main 中组装后注入，不使用包级单例，方便测试时替换
type Handler struct {
	DB              *gorm.DB
	Store           db.MapStore
	Nav             *nav.Service
	Detector        inference.Client // 可以为 nil (推理服务未配置)
	JWTSecret       []byte
	NavigateTimeout time.Duration
}

// New 创建 Handler
func New(gdb *gorm.DB, store db.MapStore, navService *nav.Service, detector inference.Client, jwtSecret string, navigateTimeout time.Duration) *Handler {
	return &Handler{
		DB:              gdb,
		Store:           store,
		Nav:             navService,
		Detector:        detector,
		JWTSecret:       []byte(jwtSecret),
		NavigateTimeout: navigateTimeout,
	}
}
