package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FileSink 把文件写入本地目录，目录不存在时自动创建。
type FileSink struct {
	Dir string
}

func (s FileSink) Put(ctx context.Context, name string, data []byte, _ string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	dir := s.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("创建输出目录失败: %w", err)
	}
	path := filepath.Join(dir, filepath.Base(name))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("写入 PDF 失败: %w", err)
	}
	return path, nil
}
