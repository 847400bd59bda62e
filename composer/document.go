package composer

import (
	"time"

	"github.com/ByLCY/curriculo/layout"
	"github.com/ByLCY/curriculo/resume"
)

// Document 是一次排版的完整结果。
type Document struct {
	Result    *layout.Result
	Variant   resume.Variant
	Theme     resume.Theme
	Name      string
	CreatedAt time.Time
}

// Texts 按页面与绘制顺序返回全部文本。
func (d *Document) Texts() []string {
	if d == nil {
		return nil
	}
	return d.Result.Texts()
}

// FileName 返回默认下载文件名。
func (d *Document) FileName() string {
	return resume.FileName(d.Name, d.CreatedAt)
}
