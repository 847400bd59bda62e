package resume

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// Photo 保存原始图片字节。JSON 中既可以是 data URL（data:image/png;base64,...），
// 也可以是裸 base64 字符串；序列化时输出 data URL。
type Photo []byte

// DecodePhoto 解析 data URL 或裸 base64。空字符串返回 nil。
func DecodePhoto(s string) (Photo, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if strings.HasPrefix(s, "data:") {
		comma := strings.IndexByte(s, ',')
		if comma < 0 {
			return nil, fmt.Errorf("photo data url has no payload")
		}
		header := s[len("data:"):comma]
		if !strings.HasSuffix(header, ";base64") {
			return nil, fmt.Errorf("photo data url must be base64 encoded")
		}
		s = s[comma+1:]
	}
	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("decode photo: %w", err)
	}
	return Photo(data), nil
}

// DataURL 返回带 MIME 类型的 data URL。
func (p Photo) DataURL() string {
	if len(p) == 0 {
		return ""
	}
	return "data:" + p.MIMEType() + ";base64," + base64.StdEncoding.EncodeToString(p)
}

// MIMEType 根据文件头猜测图片类型，不是图片时返回 application/octet-stream。
func (p Photo) MIMEType() string {
	if ct := http.DetectContentType(p); strings.HasPrefix(ct, "image/") {
		return ct
	}
	return "application/octet-stream"
}

func (p Photo) MarshalJSON() ([]byte, error) {
	if len(p) == 0 {
		return []byte("null"), nil
	}
	return json.Marshal(p.DataURL())
}

func (p *Photo) UnmarshalJSON(b []byte) error {
	var s *string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("photo must be a string: %w", err)
	}
	if s == nil {
		*p = nil
		return nil
	}
	decoded, err := DecodePhoto(*s)
	if err != nil {
		return err
	}
	*p = decoded
	return nil
}
