package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort string

	// 允许跨域的前端来源，逗号分隔
	AllowedOrigins []string

	// 聚合目标国家：名称用于过滤与检索，slug 用于 gov.uk 路径
	CountryName string
	CountrySlug string

	// 非空时 cmd/collect 进入定时快照模式
	WatchCron string
}

func Load() *Config {
	// 本地开发时从 .env 读取，文件不存在则忽略
	_ = godotenv.Load()

	cfg := &Config{
		AppPort:        getEnv("APP_PORT", "8080"),
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:3000")),
		CountryName:    getEnv("COUNTRY_NAME", "South Africa"),
		CountrySlug:    getEnv("COUNTRY_SLUG", "south-africa"),
		WatchCron:      getEnv("WATCH_CRON", ""),
	}

	log.Printf("config loaded: port=%s country=%q origins=%d", cfg.AppPort, cfg.CountryName, len(cfg.AllowedOrigins))
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
