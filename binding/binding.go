package binding

import (
	"regexp"
	"strings"
)

var exprPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// Fields 是模板占位符可以引用的字段。
type Fields map[string]string

// Interpolate 将文本中的 ${field} 替换为 fields 中的值。
// 未知字段替换为 fallback；字段存在但为空字符串时同样使用 fallback。
func Interpolate(text string, fields Fields, fallback string) string {
	return exprPattern.ReplaceAllStringFunc(text, func(match string) string {
		groups := exprPattern.FindStringSubmatch(match)
		if len(groups) < 2 {
			return match
		}
		key := strings.TrimSpace(groups[1])
		if key == "" {
			return match
		}
		if val := strings.TrimSpace(fields[key]); val != "" {
			return val
		}
		return fallback
	})
}
