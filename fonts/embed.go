// Package fonts 提供内置字体。
package fonts

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/go-fonts/latin-modern/lmsans10bold"
	"github.com/go-fonts/latin-modern/lmsans10oblique"
	"github.com/go-fonts/latin-modern/lmsans10regular"
)

const (
	SansRegular = "embed:sans-regular"
	SansBold    = "embed:sans-bold"
	SansOblique = "embed:sans-oblique"
)

var builtin = map[string][]byte{
	"sans-regular": lmsans10regular.TTF,
	"sans-bold":    lmsans10bold.TTF,
	"sans-oblique": lmsans10oblique.TTF,
}

// Load 返回字体字节。src 为 "embed:<name>" 时读取内置字体，否则按文件路径读取。
func Load(src string) ([]byte, error) {
	if name, ok := strings.CutPrefix(src, "embed:"); ok {
		data, found := builtin[name]
		if !found {
			return nil, fmt.Errorf("读取内置字体 %s 失败: 可用字体 %s", name, strings.Join(Names(), ", "))
		}
		return data, nil
	}
	data, err := os.ReadFile(src)
	if err != nil {
		return nil, fmt.Errorf("读取字体文件 %s 失败: %w", src, err)
	}
	return data, nil
}

// Names 返回内置字体名称（不含 embed: 前缀）。
func Names() []string {
	out := make([]string, 0, len(builtin))
	for name := range builtin {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
