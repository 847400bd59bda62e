package resume

import (
	"fmt"
	"strings"
)

// ValidationError 表示记录缺少必填字段或格式不合法，记录无法排版。
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "invalid resume: " + e.Reason
	}
	return fmt.Sprintf("invalid resume field %q: %s", e.Field, e.Reason)
}

// Validate 检查排版所需的最小条件：姓名不能为空。其余字段缺失只会让对应区块被省略。
func (r *Record) Validate() error {
	if r == nil {
		return &ValidationError{Field: "name", Reason: "record is nil"}
	}
	if strings.TrimSpace(r.Name) == "" {
		return &ValidationError{Field: "name", Reason: "name is required"}
	}
	return nil
}

// validatePeriods 检查所有非空的年月字段都形如 YYYY-MM。
func (r *Record) validatePeriods() error {
	periods := []struct {
		field string
		value string
	}{
		{"education.startPeriod", r.Education.StartPeriod},
		{"education.endPeriod", r.Education.EndPeriod},
		{"experience.startPeriod", r.Experience.StartPeriod},
		{"experience.endPeriod", r.Experience.EndPeriod},
	}
	for _, p := range periods {
		if !ValidPeriod(p.value) {
			return &ValidationError{Field: p.field, Reason: fmt.Sprintf("period %q must look like YYYY-MM", p.value)}
		}
	}
	return nil
}
