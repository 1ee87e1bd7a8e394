package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config societylink-data（HTTP API）配置
type Config struct {
	HTTP struct {
		Addr string
	}
	Gateway GatewayConfig
	Images  ImageConfig
	Log     struct {
		Level  string
		Format string
	}
	// DefaultUnitID 未显式传 unit_id 时使用的单元；由 handler 注入到每次调用，
	// 不做模块级常量
	DefaultUnitID string
}

// GatewayConfig 存储过程网关配置
// 所有实体的数据都走同一个调用端点，按 Object（过程名）分发
type GatewayConfig struct {
	URL     string        // 调用端点（固定一个 URL）
	AuthKey string        // 共享密钥
	HostKey string        // 租户/host 标识
	Timeout time.Duration // 列表请求超时
}

// ImageConfig 图片解析服务配置
type ImageConfig struct {
	URL             string        // 图片解析端点
	Timeout         time.Duration // 单次查找超时（超时按"无图"处理）
	Workers         int           // 照片批量解析并发数
	PrimaryFolder   string        // 首选文件夹
	FallbackFolders []string      // 备选文件夹，按顺序探测
}

func Load() *Config {
	cfg := &Config{}
	cfg.HTTP.Addr = getEnv("HTTP_ADDR", ":8080")

	cfg.Gateway.URL = getEnv("GATEWAY_URL", "http://localhost:9090/api/invoke")
	cfg.Gateway.AuthKey = getEnv("GATEWAY_AUTH_KEY", "")
	cfg.Gateway.HostKey = getEnv("GATEWAY_HOST_KEY", "")
	cfg.Gateway.Timeout = parseDuration(getEnv("GATEWAY_TIMEOUT", "30s"), 30*time.Second)

	cfg.Images.URL = getEnv("IMAGE_SERVICE_URL", "http://localhost:9091/api/image/resolve")
	cfg.Images.Timeout = parseDuration(getEnv("IMAGE_TIMEOUT", "5s"), 5*time.Second)
	cfg.Images.Workers = parseInt(getEnv("IMAGE_WORKERS", "4"), 4)
	cfg.Images.PrimaryFolder = getEnv("IMAGE_PRIMARY_FOLDER", "Profile_Image")
	cfg.Images.FallbackFolders = splitList(getEnv("IMAGE_FALLBACK_FOLDERS", "Profile_Image,Visitor_Photos,Images"))

	cfg.Log.Level = getEnv("LOG_LEVEL", "info")
	cfg.Log.Format = getEnv("LOG_FORMAT", "json")

	cfg.DefaultUnitID = getEnv("DEFAULT_UNIT_ID", "")

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseInt(s string, def int) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}

func parseDuration(s string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return def
	}
	return d
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if v := strings.TrimSpace(part); v != "" {
			out = append(out, v)
		}
	}
	return out
}
