// Package config 从 .env 与环境变量读取服务配置。
package config

import (
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/ByLCY/curriculo/export"
)

// Config 汇总 CLI 与 HTTP 服务用到的配置。
type Config struct {
	Port        string
	DatabaseURL string
	ExportDir   string
	ProfilePath string
	LogLevel    slog.Level
	S3          export.S3Config
}

// Load 读取 files 指定的 .env 文件（默认 .env，缺失时忽略），再读取环境变量。
// 已存在的环境变量不会被 .env 覆盖。
func Load(files ...string) Config {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !os.IsNotExist(err) {
			slog.Warn("failed to load env file", "file", f, "error", err)
		}
	}

	return Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		ExportDir:   getEnv("EXPORT_DIR", "."),
		ProfilePath: os.Getenv("PROFILE_PATH"),
		LogLevel:    parseLevel(os.Getenv("LOG_LEVEL")),
		S3: export.S3Config{
			Bucket:    os.Getenv("S3_BUCKET"),
			AccountID: os.Getenv("S3_ACCOUNT_ID"),
			AccessKey: os.Getenv("S3_ACCESS_KEY"),
			SecretKey: os.Getenv("S3_SECRET_KEY"),
			Endpoint:  os.Getenv("S3_ENDPOINT"),
			Region:    getEnv("S3_REGION", "auto"),
			Prefix:    os.Getenv("S3_PREFIX"),
		},
	}
}

// UsesS3 报告是否配置了对象存储。
func (c Config) UsesS3() bool { return c.S3.Bucket != "" }

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return level
}
