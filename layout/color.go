package layout

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseColor 解析 #RGB、#RRGGBB 与 #RRGGBBAA（忽略透明度）形式的颜色。
func ParseColor(value string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(value), "#")
	switch len(hex) {
	case 3:
		hex = strings.Repeat(hex[0:1], 2) + strings.Repeat(hex[1:2], 2) + strings.Repeat(hex[2:3], 2)
	case 6:
	case 8:
		hex = hex[:6]
	default:
		return Color{}, fmt.Errorf("颜色值 %s 无法解析", value)
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("颜色值 %s 无法解析: %w", value, err)
	}
	return Color{R: int(n >> 16 & 0xff), G: int(n >> 8 & 0xff), B: int(n & 0xff)}, nil
}

// Ptr 返回颜色副本的指针，便于填充 Rect/Circle 的可选字段。
func (c Color) Ptr() *Color { return &c }
