package layout

// 该文件定义排版结果与资源描述，供排版计算、渲染与调试 JSON 共用。所有坐标与尺寸单位均为毫米。

// Result 保存排版后的页面与资源信息。
type Result struct {
	Pages     []Page       `json:"pages"`
	Resources ResourceSet  `json:"resources"`
	Meta      DocumentMeta `json:"meta"`
}

// ResourceSet 记录排版用到的字体与图片。
type ResourceSet struct {
	Fonts  map[string]FontResource  `json:"fonts"`
	Images map[string]ImageResource `json:"images"`
}

// FontResource 描述字体资源，src 可以是文件路径、内置 embed:* 或注入的 built-in:* 形式。
type FontResource struct {
	Name  string `json:"name"`
	Src   string `json:"src"`
	Style string `json:"style"`
}

// ImageResource 保存已解码前的图片字节（例如圆形裁剪后的 PNG）。
type ImageResource struct {
	Name string `json:"name"`
	// Data 不写入调试 JSON，避免输出巨大的 base64。
	Data     []byte `json:"-"`
	Circular bool   `json:"circular"`
}

// Color 采用 0-255 的 RGB 数值。
type Color struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

var (
	Black = Color{R: 0, G: 0, B: 0}
	White = Color{R: 255, G: 255, B: 255}
)

// Page 记录页面尺寸、边距与可以直接渲染的元素。
// Background 在每一页重复绘制（例如侧边栏底色），位于其他元素之下。
type Page struct {
	Width      float64    `json:"width"`
	Height     float64    `json:"height"`
	Margin     Margin     `json:"margin"`
	Background []Rect     `json:"background,omitempty"`
	Circles    []Circle   `json:"circles,omitempty"`
	Lines      []Line     `json:"lines,omitempty"`
	Images     []ImageBox `json:"images"`
	Texts      []TextBox  `json:"texts"`
}

// Margin 以毫米为单位。
type Margin struct {
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
}

// TextBox 表示一个已经排好坐标的文本块，Y 为首行顶部。
type TextBox struct {
	Content    string     `json:"content"`
	Role       string     `json:"role,omitempty"` // 语义标记：name/heading/label/body/sidebar
	X          float64    `json:"x"`
	Y          float64    `json:"y"`
	Width      float64    `json:"width"`
	LineHeight float64    `json:"lineHeight"`
	Font       string     `json:"font"`
	FontSize   float64    `json:"fontSize"`
	Color      Color      `json:"color"`
	Lines      []TextLine `json:"lines"`
	Height     float64    `json:"height"`
	Align      string     `json:"align,omitempty"` // left（默认）/center/right
}

// TextLine 表示排版后的一行文本内容及其宽高。
type TextLine struct {
	Content   string  `json:"content"`
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
	GapBefore float64 `json:"gapBefore,omitempty"`
}

// ImageBox 描述图片位置与尺寸，Ref 指向 ResourceSet.Images 中的条目。
type ImageBox struct {
	Ref    string  `json:"ref"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Line 表示一条线段。
type Line struct {
	X1    float64 `json:"x1"`
	Y1    float64 `json:"y1"`
	X2    float64 `json:"x2"`
	Y2    float64 `json:"y2"`
	Color Color   `json:"color"`
	Width float64 `json:"width"` // 线宽（mm），<=0 时由渲染器给默认值
}

// Rect 表示一个矩形（不包含圆角）。
type Rect struct {
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	StrokeColor *Color  `json:"strokeColor,omitempty"` // 为空表示不描边
	StrokeWidth float64 `json:"strokeWidth"`
	FillColor   *Color  `json:"fillColor,omitempty"` // 为空表示不填充
}

// Circle 表示一个圆，(CX, CY) 为圆心。
type Circle struct {
	CX          float64 `json:"cx"`
	CY          float64 `json:"cy"`
	R           float64 `json:"r"`
	StrokeColor *Color  `json:"strokeColor,omitempty"`
	StrokeWidth float64 `json:"strokeWidth"`
	FillColor   *Color  `json:"fillColor,omitempty"`
}

// DocumentMeta 保存 PDF 元信息。
type DocumentMeta struct {
	Title    string   `json:"title"`
	Author   string   `json:"author"`
	Subject  string   `json:"subject"`
	Creator  string   `json:"creator"`
	Keywords []string `json:"keywords"`
}

// Texts 按页面顺序返回所有文本块的内容。
func (r *Result) Texts() []string {
	if r == nil {
		return nil
	}
	var out []string
	for _, p := range r.Pages {
		for _, tb := range p.Texts {
			out = append(out, tb.Content)
		}
	}
	return out
}
