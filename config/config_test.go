package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "DATABASE_URL", "EXPORT_DIR", "S3_BUCKET", "S3_REGION", "LOG_LEVEL", "PROFILE_PATH"} {
		t.Setenv(k, "")
	}
	cfg := Load(filepath.Join(t.TempDir(), "missing.env"))
	if cfg.Port != "8080" || cfg.ExportDir != "." || cfg.S3.Region != "auto" {
		t.Fatalf("默认值错误: %+v", cfg)
	}
	if cfg.LogLevel != slog.LevelInfo || cfg.UsesS3() {
		t.Fatalf("默认日志级别或存储错误: %+v", cfg)
	}
}

func TestLoadReadsEnvFile(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("S3_BUCKET", "")
	os.Unsetenv("PORT")
	os.Unsetenv("LOG_LEVEL")
	os.Unsetenv("S3_BUCKET")
	t.Setenv("EXPORT_DIR", "/from/env")

	path := filepath.Join(t.TempDir(), ".env")
	content := "PORT=9090\nLOG_LEVEL=debug\nS3_BUCKET=curriculos\nEXPORT_DIR=/from/file\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write env: %v", err)
	}
	cfg := Load(path)
	if cfg.Port != "9090" || cfg.LogLevel != slog.LevelDebug || !cfg.UsesS3() {
		t.Fatalf(".env 未生效: %+v", cfg)
	}
	if cfg.ExportDir != "/from/env" {
		t.Fatalf("环境变量应优先于 .env: %s", cfg.ExportDir)
	}
}
