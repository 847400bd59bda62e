// Package canvasrenderer 使用 github.com/tdewolff/canvas 把排版结果输出为 PDF，
// 同时作为排版时的 Typesetter，保证测量与绘制使用同一套字体度量。
package canvasrenderer

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"strings"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"

	"github.com/ByLCY/curriculo/fonts"
	"github.com/ByLCY/curriculo/imaging"
	"github.com/ByLCY/curriculo/layout"
	"github.com/ByLCY/curriculo/renderer"
)

const defaultStrokeWidth = 0.2

// Renderer 实现 renderer.Renderer 与 layout.Typesetter。可以并发使用。
type Renderer struct {
	fonts  *fontCache
	logger *slog.Logger
}

var (
	_ renderer.Renderer = (*Renderer)(nil)
	_ layout.Typesetter = (*Renderer)(nil)
)

// Options configures the canvas renderer.
type Options struct {
	// BaseDir 用于解析相对字体路径。
	BaseDir string
	// Fonts 注入的字体，以 built-in:<name> 引用。
	Fonts  map[string][]byte
	Logger *slog.Logger
}

// NewRenderer 创建只使用内置字体的渲染器。
func NewRenderer() *Renderer { return NewRendererWithOptions(Options{}) }

func NewRendererWithOptions(opts Options) *Renderer {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Renderer{
		fonts:  newFontCache(opts.BaseDir, opts.Fonts, logger),
		logger: logger,
	}
}

// LayoutLines 折行并用字体度量回填行宽与行高。width 与 fontSize 为毫米。
func (r *Renderer) LayoutLines(content string, width float64, font layout.FontResource, fontSize float64) ([]layout.TextLine, error) {
	face, err := r.fonts.face(font, toPt(fontSize), layout.Black)
	if err != nil {
		return nil, err
	}
	lines := wrapText(content, width, face.TextWidth)
	height := face.Metrics().LineHeight
	for i := range lines {
		lines[i].Height = height
	}
	return lines, nil
}

// Render 输出 PDF。页面尺寸取自每一页，元信息取自 result.Meta。
func (r *Renderer) Render(result *layout.Result) ([]byte, error) {
	if result == nil || len(result.Pages) == 0 {
		return nil, errors.New("没有可渲染的页面")
	}

	var buf bytes.Buffer
	first := result.Pages[0]
	writer := pdf.New(&buf, first.Width, first.Height, nil)
	meta := result.Meta
	writer.SetInfo(meta.Title, meta.Subject, strings.Join(meta.Keywords, ", "), meta.Author, meta.Creator)

	images := r.decodeImages(result.Resources.Images)
	for i, page := range result.Pages {
		if i > 0 {
			writer.NewPage(page.Width, page.Height)
		}
		c := canvas.New(page.Width, page.Height)
		ctx := canvas.NewContext(c)
		ctx.SetCoordSystem(canvas.CartesianIV) // 原点在左上角，与布局一致
		if err := r.drawPage(ctx, page, result.Resources.Fonts, images); err != nil {
			return nil, fmt.Errorf("渲染第 %d 页失败: %w", i+1, err)
		}
		c.RenderTo(writer)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("写入 PDF 失败: %w", err)
	}
	return buf.Bytes(), nil
}

// drawPage 依次绘制背景、形状、图片与文字，后绘制的位于上层。
func (r *Renderer) drawPage(ctx *canvas.Context, page layout.Page, fontSet map[string]layout.FontResource, images map[string]image.Image) error {
	for _, rc := range page.Background {
		drawRect(ctx, rc)
	}
	for _, c := range page.Circles {
		setPaint(ctx, c.FillColor, c.StrokeColor, c.StrokeWidth)
		ctx.DrawPath(c.CX, c.CY, canvas.Circle(c.R))
	}
	for _, ln := range page.Lines {
		drawLine(ctx, ln)
	}
	for _, box := range page.Images {
		if img, ok := images[box.Ref]; ok {
			drawImage(ctx, box, img)
		}
	}
	for _, tb := range page.Texts {
		if err := r.drawText(ctx, tb, lookupFont(tb.Font, fontSet)); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) drawText(ctx *canvas.Context, tb layout.TextBox, font layout.FontResource) error {
	face, err := r.fonts.face(font, toPt(tb.FontSize), tb.Color)
	if err != nil {
		return err
	}
	lines := tb.Lines
	if len(lines) == 0 {
		lines = []layout.TextLine{{Content: tb.Content, Height: tb.LineHeight}}
	}

	align, x := canvas.Left, tb.X
	switch strings.ToLower(tb.Align) {
	case "center":
		align, x = canvas.Center, tb.X+tb.Width/2
	case "right", "end":
		align, x = canvas.Right, tb.X+tb.Width
	}

	ascent := face.Metrics().Ascent
	top := tb.Y
	for _, line := range lines {
		top += line.GapBefore
		if line.Content != "" {
			ctx.DrawText(x, top+ascent, canvas.NewTextLine(face, line.Content, align))
		}
		step := line.Height
		if step <= 0 {
			step = tb.LineHeight
		}
		top += step
	}
	return nil
}

// decodeImages 解码图片资源；无法解码或尺寸超限的图片记录警告后跳过。
func (r *Renderer) decodeImages(resources map[string]layout.ImageResource) map[string]image.Image {
	out := make(map[string]image.Image, len(resources))
	for ref, res := range resources {
		img, err := imaging.Decode(res.Data)
		if err != nil {
			r.logger.Warn("skipping undecodable image", "ref", ref, "error", err)
			continue
		}
		out[ref] = img
	}
	return out
}

// drawImage 保持宽高比把图片缩放到 box 内并居中，任何一边都不超出 box。
func drawImage(ctx *canvas.Context, box layout.ImageBox, img image.Image) {
	x, y, dpmm, ok := fitImage(box, img.Bounds().Dx(), img.Bounds().Dy())
	if !ok {
		return
	}
	ctx.DrawImage(x, y, img, canvas.DPMM(dpmm))
}

// fitImage 返回 px x py 像素的图片在 box 中居中放置时的左上角与每毫米像素数。
func fitImage(box layout.ImageBox, px, py int) (x, y, dpmm float64, ok bool) {
	if px <= 0 || py <= 0 || box.Width <= 0 || box.Height <= 0 {
		return 0, 0, 0, false
	}
	dpmm = max(float64(px)/box.Width, float64(py)/box.Height)
	x = box.X + (box.Width-float64(px)/dpmm)/2
	y = box.Y + (box.Height-float64(py)/dpmm)/2
	return x, y, dpmm, true
}

func drawRect(ctx *canvas.Context, rc layout.Rect) {
	setPaint(ctx, rc.FillColor, rc.StrokeColor, rc.StrokeWidth)
	ctx.DrawPath(rc.X, rc.Y, canvas.Rectangle(rc.Width, rc.Height))
}

func drawLine(ctx *canvas.Context, ln layout.Line) {
	width := ln.Width
	if width <= 0 {
		width = defaultStrokeWidth
	}
	stroke := ln.Color
	setPaint(ctx, nil, &stroke, width)
	seg := &canvas.Path{}
	seg.MoveTo(0, 0)
	seg.LineTo(ln.X2-ln.X1, ln.Y2-ln.Y1)
	ctx.DrawPath(ln.X1, ln.Y1, seg)
}

// setPaint 设置填充与描边；nil 表示不填充或不描边。
func setPaint(ctx *canvas.Context, fill, stroke *layout.Color, strokeWidth float64) {
	transparent := color.RGBA{}
	ctx.SetFillColor(transparent)
	if fill != nil {
		ctx.SetFillColor(colorFromLayout(*fill))
	}
	ctx.SetStrokeColor(transparent)
	ctx.SetStrokeWidth(0)
	if stroke != nil {
		if strokeWidth <= 0 {
			strokeWidth = defaultStrokeWidth
		}
		ctx.SetStrokeColor(colorFromLayout(*stroke))
		ctx.SetStrokeWidth(strokeWidth)
	}
}

// lookupFont 按名称查找字体；缺失时使用第一个 regular 字体，再退到内置字体。
func lookupFont(name string, set map[string]layout.FontResource) layout.FontResource {
	if font, ok := set[name]; ok {
		return font
	}
	for _, font := range set {
		if font.Style == "regular" {
			return font
		}
	}
	return layout.FontResource{Name: "sans-regular", Src: fonts.SansRegular, Style: "regular"}
}

func colorFromLayout(c layout.Color) color.Color {
	return color.RGBA{R: uint8(c.R), G: uint8(c.G), B: uint8(c.B), A: 0xff}
}

func toPt(mm float64) float64 { return mm * layout.MmToPt }
