package composer

import (
	"github.com/ByLCY/curriculo/fonts"
	"github.com/ByLCY/curriculo/layout"
	"github.com/ByLCY/curriculo/resume"
)

// 所有长度单位为毫米，字号单位为 pt。

// ClassicMetrics 是单栏版式的尺寸。
type ClassicMetrics struct {
	MarginLeft     float64
	MarginRight    float64
	MarginBottom   float64
	StartY         float64
	LineHeight     float64
	SectionSpacing float64
	TitleSpacing   float64
	SmallSpacing   float64
	// LabelIndent 是同一行中标签与内容之间的水平偏移。
	LabelIndent float64
	TitleSize   float64
	BodySize    float64
	// Dividers 为 true 时在各区块之间画一条横线。
	Dividers     bool
	DividerColor layout.Color
	DividerWidth float64
	// ShowPostalCode 为 true 且 CEP 非空时在地址行后追加 CEP。
	ShowPostalCode bool
}

// ModernMetrics 是双栏版式的尺寸。
type ModernMetrics struct {
	SidebarWidth      float64
	SidebarPadding    float64
	MainX             float64
	MainWidth         float64
	StartY            float64
	MarginBottom      float64
	LineHeight        float64
	SidebarLineHeight float64
	SmallSpacing      float64
	MediumSpacing     float64
	LargeSpacing      float64
	TitleSpacing      float64
	SectionSpacing    float64
	BlockSpacing      float64
	TitleSize         float64
	SectionSize       float64
	BodySize          float64
	SidebarHeadSize   float64
	SidebarBodySize   float64
	// BandHeight 是侧边栏顶部次要色装饰条的高度。
	BandHeight float64
	PhotoSize  float64
	// PhotoRing 是照片背后白色圆形超出照片半径的宽度，0 表示不绘制。
	PhotoRing float64
	// PhotoPixels 是圆形裁剪输出的边长（像素）。
	PhotoPixels int
}

// Palette 是侧边栏配色。
type Palette struct {
	Primary   layout.Color
	Secondary layout.Color
}

// Config 汇总排版所需的全部参数。
type Config struct {
	PageWidth  float64
	PageHeight float64
	Regular    layout.FontResource
	Bold       layout.FontResource
	Classic    ClassicMetrics
	Modern     ModernMetrics
	Themes     map[resume.Theme]Palette
	Labels     Labels
	Meta       layout.DocumentMeta
}

// DefaultConfig 返回 A4 纸张与内置字体下的默认参数。
func DefaultConfig() Config {
	return Config{
		PageWidth:  210,
		PageHeight: 297,
		Regular:    layout.FontResource{Name: "sans-regular", Src: fonts.SansRegular, Style: "regular"},
		Bold:       layout.FontResource{Name: "sans-bold", Src: fonts.SansBold, Style: "bold"},
		Classic: ClassicMetrics{
			MarginLeft:     15,
			MarginRight:    15,
			MarginBottom:   15,
			StartY:         15,
			LineHeight:     6,
			SectionSpacing: 7,
			TitleSpacing:   15,
			SmallSpacing:   5,
			LabelIndent:    25,
			TitleSize:      22,
			BodySize:       12,
			Dividers:       true,
			DividerColor:   layout.Color{R: 200, G: 200, B: 200},
			DividerWidth:   0.2,
		},
		Modern: ModernMetrics{
			SidebarWidth:      70,
			SidebarPadding:    5,
			MainX:             85,
			MainWidth:         110,
			StartY:            20,
			MarginBottom:      15,
			LineHeight:        6,
			SidebarLineHeight: 5,
			SmallSpacing:      3,
			MediumSpacing:     8,
			LargeSpacing:      15,
			TitleSpacing:      20,
			SectionSpacing:    7,
			BlockSpacing:      5,
			TitleSize:         24,
			SectionSize:       12,
			BodySize:          10,
			SidebarHeadSize:   13,
			SidebarBodySize:   11,
			BandHeight:        50,
			PhotoSize:         50,
			PhotoRing:         2,
			PhotoPixels:       300,
		},
		Themes: map[resume.Theme]Palette{
			resume.ThemeBlue:  {Primary: layout.Color{R: 33, G: 150, B: 243}, Secondary: layout.Color{R: 100, G: 181, B: 246}},
			resume.ThemeGreen: {Primary: layout.Color{R: 76, G: 175, B: 80}, Secondary: layout.Color{R: 129, G: 199, B: 132}},
			resume.ThemeRed:   {Primary: layout.Color{R: 244, G: 67, B: 54}, Secondary: layout.Color{R: 239, G: 154, B: 154}},
		},
		Labels: PortugueseLabels(),
		Meta: layout.DocumentMeta{
			Subject: "Currículo",
			Creator: "curriculo",
		},
	}
}

// clone 深拷贝可变字段，避免修改共享的主题表。
func (c Config) clone() Config {
	out := c
	out.Themes = make(map[resume.Theme]Palette, len(c.Themes))
	for k, v := range c.Themes {
		out.Themes[k] = v
	}
	out.Meta.Keywords = append([]string(nil), c.Meta.Keywords...)
	return out
}

// resolveTheme 返回配置中存在的主题名，未知主题回落到蓝色。
func (c Config) resolveTheme(theme resume.Theme) resume.Theme {
	if _, ok := c.Themes[theme]; ok {
		return theme
	}
	if t, ok := resume.ParseTheme(string(theme)); ok {
		if _, ok := c.Themes[t]; ok {
			return t
		}
	}
	return resume.ThemeBlue
}

func (c Config) palette(theme resume.Theme) Palette {
	return c.Themes[c.resolveTheme(theme)]
}
