package canvasrenderer

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"

	"github.com/tdewolff/canvas"

	"github.com/ByLCY/curriculo/fonts"
	"github.com/ByLCY/curriculo/layout"
)

type cachedFamily struct {
	family *canvas.FontFamily
	style  canvas.FontStyle
}

// fontCache 按 FontResource 缓存已加载的字体族。加载失败的字体回落到内置无衬线字体，
// 回落结果同样被缓存，每个字体只警告一次。
type fontCache struct {
	baseDir string
	blobs   map[string][]byte
	logger  *slog.Logger

	mu       sync.Mutex
	families map[layout.FontResource]cachedFamily
	fallback func() (*canvas.FontFamily, error)
}

func newFontCache(baseDir string, blobs map[string][]byte, logger *slog.Logger) *fontCache {
	fc := &fontCache{
		baseDir:  baseDir,
		blobs:    map[string][]byte{},
		logger:   logger,
		families: map[layout.FontResource]cachedFamily{},
	}
	for name, blob := range blobs {
		if name != "" && len(blob) > 0 {
			fc.blobs[name] = blob
		}
	}
	fc.fallback = sync.OnceValues(func() (*canvas.FontFamily, error) {
		data, err := fonts.Load(fonts.SansRegular)
		if err != nil {
			return nil, err
		}
		family := canvas.NewFontFamily("curriculo-fallback")
		if err := family.LoadFont(data, 0, canvas.FontRegular); err != nil {
			return nil, fmt.Errorf("加载回落字体失败: %w", err)
		}
		return family, nil
	})
	return fc
}

// face 返回指定字号（pt）与颜色的字体。
func (fc *fontCache) face(font layout.FontResource, sizePt float64, col layout.Color) (*canvas.FontFace, error) {
	cf, err := fc.family(font)
	if err != nil {
		return nil, err
	}
	return cf.family.Face(sizePt, colorFromLayout(col), cf.style, canvas.FontNormal), nil
}

func (fc *fontCache) family(font layout.FontResource) (cachedFamily, error) {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	if cf, ok := fc.families[font]; ok {
		return cf, nil
	}

	style := parseFontStyle(font.Style)
	name := font.Name
	if name == "" {
		name = "body"
	}
	family := canvas.NewFontFamily(name)
	data, err := fc.read(font.Src)
	if err == nil {
		err = family.LoadFont(data, 0, style)
	}
	if err != nil {
		fb, fbErr := fc.fallback()
		if fbErr != nil {
			return cachedFamily{}, fmt.Errorf("字体 %s 不可用: %w", font.Name, err)
		}
		fc.logger.Warn("font unavailable, using fallback", "font", font.Name, "src", font.Src, "error", err)
		cf := cachedFamily{family: fb, style: canvas.FontRegular}
		fc.families[font] = cf
		return cf, nil
	}
	cf := cachedFamily{family: family, style: style}
	fc.families[font] = cf
	return cf, nil
}

// read 解析字体来源：built-in:<name> 为注入字体，embed:<name> 为内置字体，其余为文件路径。
func (fc *fontCache) read(src string) ([]byte, error) {
	switch {
	case src == "":
		return nil, fmt.Errorf("字体缺少 src")
	case strings.HasPrefix(src, "built-in:"):
		name := strings.TrimPrefix(src, "built-in:")
		if blob, ok := fc.blobs[name]; ok {
			return blob, nil
		}
		return nil, fmt.Errorf("找不到注入字体 %s", name)
	case strings.HasPrefix(src, "embed:"):
		return fonts.Load(src)
	}
	if fc.baseDir != "" && !filepath.IsAbs(src) {
		src = filepath.Join(fc.baseDir, src)
	}
	return fonts.Load(src)
}

var weightKeywords = []struct {
	keyword string
	style   canvas.FontStyle
}{
	{"black", canvas.FontBlack},
	{"extrabold", canvas.FontExtraBold},
	{"semibold", canvas.FontSemiBold},
	{"demibold", canvas.FontSemiBold},
	{"bold", canvas.FontBold},
	{"medium", canvas.FontMedium},
	{"light", canvas.FontLight},
}

// parseFontStyle 把 "bold"、"Bold Italic"、"oblique" 等描述转成 canvas 字重与斜体标志。
func parseFontStyle(style string) canvas.FontStyle {
	s := strings.ToLower(style)
	out := canvas.FontRegular
	for _, w := range weightKeywords {
		if strings.Contains(s, w.keyword) {
			out = w.style
			break
		}
	}
	if strings.Contains(s, "italic") || strings.Contains(s, "oblique") {
		out |= canvas.FontItalic
	}
	return out
}
