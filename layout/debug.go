package layout

import (
	"encoding/json"
	"io"
)

// WriteDebugJSON 将排版结果以缩进 JSON 写出，便于调试或可视化。图片字节不会输出。
func WriteDebugJSON(res *Result, w io.Writer) error {
	if res == nil {
		return nil
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}
