package renderer

import "github.com/ByLCY/curriculo/layout"

// Renderer 将布局结果输出为最终文件，例如 PDF。
// Render 返回生成的二进制数据以及可能的错误。
type Renderer interface {
	Render(result *layout.Result) ([]byte, error)
}

// Func 让普通函数满足 Renderer。
type Func func(result *layout.Result) ([]byte, error)

func (f Func) Render(result *layout.Result) ([]byte, error) { return f(result) }
