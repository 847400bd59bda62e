package resume

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	periodPattern     = regexp.MustCompile(`^[0-9]{4}-(0[1-9]|1[0-2])$`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// FormatPhone 对输入中的数字逐步套用巴西电话掩码。
// 10 位为固话 (11) 1234-5678，11 位为手机 (11) 91234-5678，多余数字被截断。
// 以 0 开头的区号无效，首个 0 会被去掉。
func FormatPhone(raw string) string {
	d := phoneDigits(raw)
	d = strings.TrimPrefix(d, "0")
	if len(d) > 11 {
		d = d[:11]
	}
	switch n := len(d); {
	case n == 0:
		return ""
	case n <= 2:
		return "(" + d
	case n <= 6:
		return fmt.Sprintf("(%s) %s", d[:2], d[2:])
	case n <= 10:
		return fmt.Sprintf("(%s) %s-%s", d[:2], d[2:6], d[6:])
	default:
		return fmt.Sprintf("(%s) %s-%s", d[:2], d[2:7], d[7:])
	}
}

// CheckPhone 校验一个已完整输入的电话号码。少于 10 位视为仍在输入，不报错。
func CheckPhone(raw string) error {
	d := phoneDigits(raw)
	if len(d) < 10 {
		return nil
	}
	if d[0] == '0' {
		return &ValidationError{Field: "phone", Reason: "area code cannot start with 0"}
	}
	if len(d) > 11 {
		return &ValidationError{Field: "phone", Reason: "phone must have at most 11 digits"}
	}
	if len(d) == 10 && (d[2] < '2' || d[2] == '9') {
		return &ValidationError{Field: "phone", Reason: "invalid landline number"}
	}
	if len(d) == 11 && d[2] != '9' {
		return &ValidationError{Field: "phone", Reason: "mobile numbers must start with 9"}
	}
	return nil
}

func phoneDigits(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidPeriod 报告 s 是否为空或形如 YYYY-MM。
func ValidPeriod(s string) bool {
	s = strings.TrimSpace(s)
	return s == "" || periodPattern.MatchString(s)
}

// FileName 生成下载文件名：curriculo_<姓名，空白替换为下划线>_<毫秒时间戳>.pdf。
func FileName(name string, at time.Time) string {
	slug := whitespacePattern.ReplaceAllString(strings.TrimSpace(name), "_")
	return fmt.Sprintf("curriculo_%s_%d.pdf", slug, at.UnixMilli())
}
