// Package export 把排好的简历渲染成 PDF 并保存到文件系统或对象存储。
package export

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ByLCY/curriculo/composer"
	"github.com/ByLCY/curriculo/renderer"
)

const pdfContentType = "application/pdf"

// DownloadError 表示生成或保存 PDF 失败。
type DownloadError struct {
	FileName string
	Err      error
}

func (e *DownloadError) Error() string {
	return fmt.Sprintf("save %s: %v", e.FileName, e.Err)
}

func (e *DownloadError) Unwrap() error { return e.Err }

// Sink 是 PDF 的保存目标。Put 返回保存后的位置（路径或对象键）。
type Sink interface {
	Put(ctx context.Context, name string, data []byte, contentType string) (string, error)
}

// Exporter 渲染 Document 并交给 Sink。
type Exporter struct {
	Renderer renderer.Renderer
	Sink     Sink
	Logger   *slog.Logger
}

// Render 只渲染不保存，失败时返回 *DownloadError。
func (e *Exporter) Render(doc *composer.Document) ([]byte, error) {
	if doc == nil || doc.Result == nil {
		return nil, &DownloadError{Err: errors.New("document is empty")}
	}
	if e.Renderer == nil {
		return nil, &DownloadError{FileName: doc.FileName(), Err: errors.New("renderer is not configured")}
	}
	data, err := e.Renderer.Render(doc.Result)
	if err != nil {
		return nil, &DownloadError{FileName: doc.FileName(), Err: fmt.Errorf("render pdf: %w", err)}
	}
	return data, nil
}

// Save 渲染并保存文档。fileName 为空时使用 doc.FileName()。
func (e *Exporter) Save(ctx context.Context, doc *composer.Document, fileName string) (string, error) {
	data, err := e.Render(doc)
	if err != nil {
		return "", err
	}
	if fileName == "" {
		fileName = doc.FileName()
	}
	if e.Sink == nil {
		return "", &DownloadError{FileName: fileName, Err: errors.New("sink is not configured")}
	}
	location, err := e.Sink.Put(ctx, fileName, data, pdfContentType)
	if err != nil {
		return "", &DownloadError{FileName: fileName, Err: err}
	}
	e.logger().Info("resume exported", "file", fileName, "location", location, "bytes", len(data))
	return location, nil
}

func (e *Exporter) logger() *slog.Logger {
	if e.Logger != nil {
		return e.Logger
	}
	return slog.Default()
}
