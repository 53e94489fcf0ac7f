package config

import (
	"os"
	"strconv"
	"time"
)

// Config 服务端配置 (数据库配置在 db 包单独读取)
type Config struct {
	Port             string        // HTTP 监听端口
	JWTSecret        string        // JWT 签名密钥
	InferenceURL     string        // 外部目标检测推理服务地址 (留空则关闭 /api/detect)
	InferenceTimeout time.Duration // 推理请求超时
	NavigateTimeout  time.Duration // 单次导航请求的总超时
}

// Load 从环境变量读取配置，缺失时使用默认值
func Load() *Config {
	return &Config{
		Port:             getEnv("PORT", "8080"),
		JWTSecret:        getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		InferenceURL:     getEnv("INFERENCE_URL", ""),
		InferenceTimeout: getDurationEnv("INFERENCE_TIMEOUT_SECONDS", 10),
		NavigateTimeout:  getDurationEnv("NAVIGATE_TIMEOUT_SECONDS", 5),
	}
}

// getEnv 获取环境变量，如果不存在则返回默认值
func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// getDurationEnv 获取以秒为单位的环境变量
func getDurationEnv(key string, defaultSeconds int) time.Duration {
	if val := os.Getenv(key); val != "" {
		if seconds, err := strconv.Atoi(val); err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return time.Duration(defaultSeconds) * time.Second
}
