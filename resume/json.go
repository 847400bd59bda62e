package resume

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema.json
var schemaJSON []byte

var (
	schemaOnce sync.Once
	schema     *gojsonschema.Schema
	schemaErr  error
)

func loadSchema() (*gojsonschema.Schema, error) {
	schemaOnce.Do(func() {
		schema, schemaErr = gojsonschema.NewSchema(gojsonschema.NewBytesLoader(schemaJSON))
	})
	return schema, schemaErr
}

// DecodeJSON 先用 JSON Schema 校验结构，再解码为 Record 并检查年月格式。
// 结构或格式问题返回 *ValidationError。
func DecodeJSON(data []byte) (*Record, error) {
	s, err := loadSchema()
	if err != nil {
		return nil, fmt.Errorf("load resume schema: %w", err)
	}
	result, err := s.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return nil, &ValidationError{Reason: fmt.Sprintf("malformed json: %v", err)}
	}
	if !result.Valid() {
		errs := result.Errors()
		reasons := make([]string, 0, len(errs))
		for _, e := range errs {
			reasons = append(reasons, e.String())
		}
		return nil, &ValidationError{Field: errs[0].Field(), Reason: strings.Join(reasons, "; ")}
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, &ValidationError{Field: "photo", Reason: err.Error()}
	}
	if err := rec.validatePeriods(); err != nil {
		return nil, err
	}
	if err := rec.Validate(); err != nil {
		return nil, err
	}
	return &rec, nil
}
