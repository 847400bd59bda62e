package composer

import (
	"fmt"
	"strings"

	"github.com/ByLCY/curriculo/layout"
)

// style 描述一段文字的外观。
type style struct {
	role  string
	font  layout.FontResource
	size  float64 // pt
	color layout.Color
	align string
}

// block 是一段需要换行排版的文字。
type block struct {
	x, width   float64
	content    string
	style      style
	lineHeight float64
	// trail 是最后一行之后的推进量。
	trail float64
}

// writer 持有一次排版的全部可变状态。
type writer struct {
	cfg        Config
	typesetter layout.Typesetter
	cropper    PhotoCropper
	pages      *layout.Collector
	cursor     *layout.Cursor
	resources  layout.ResourceSet
}

func (w *writer) frame(col layout.Column, x, width, top float64) *layout.Frame {
	return layout.NewFrame(w.pages, w.cursor, col, x, width, top)
}

// place 按宽度换行并逐行放置；跨页时拆成多个文本块。返回行数。
func (w *writer) place(f *layout.Frame, b block) (int, error) {
	if strings.TrimSpace(b.content) == "" {
		return 0, nil
	}
	size := b.style.size * layout.PtToMm
	lines, err := w.typesetter.LayoutLines(b.content, b.width, b.style.font, size)
	if err != nil {
		return 0, fmt.Errorf("layout %q: %w", b.style.role, err)
	}
	if len(lines) == 0 {
		return 0, nil
	}

	var chunk []layout.TextLine
	chunkY := f.Y()
	flush := func() {
		if len(chunk) == 0 {
			return
		}
		contents := make([]string, len(chunk))
		for i, ln := range chunk {
			contents[i] = ln.Content
		}
		f.AddText(layout.TextBox{
			Content:    strings.Join(contents, " "),
			Role:       b.style.role,
			X:          b.x,
			Y:          chunkY,
			Width:      b.width,
			LineHeight: b.lineHeight,
			Font:       b.style.font.Name,
			FontSize:   size,
			Color:      b.style.color,
			Lines:      chunk,
			Height:     float64(len(chunk)) * b.lineHeight,
			Align:      b.style.align,
		})
		chunk = nil
	}

	for i, ln := range lines {
		// 先在原页输出已累积的行，再换页
		if f.NeedsBreak(b.lineHeight) {
			flush()
			f.EnsureSpace(b.lineHeight)
		}
		if len(chunk) == 0 {
			chunkY = f.Y()
		}
		ln.GapBefore = 0
		ln.Height = b.lineHeight
		chunk = append(chunk, ln)
		if i < len(lines)-1 {
			f.Advance(b.lineHeight)
		}
	}
	flush()
	f.Advance(b.trail)
	return len(lines), nil
}

// labeled 在同一行放置粗体标签与缩进后的内容，内容换行时只在内容列内折行。
func (w *writer) labeled(f *layout.Frame, label string, indent float64, value block) error {
	f.EnsureSpace(value.lineHeight)
	bold := value.style
	bold.font = w.cfg.Bold
	bold.role = "label"
	f.AddText(layout.TextBox{
		Content:    label,
		Role:       bold.role,
		X:          f.X,
		Y:          f.Y(),
		Width:      indent,
		LineHeight: value.lineHeight,
		Font:       bold.font.Name,
		FontSize:   bold.size * layout.PtToMm,
		Color:      bold.color,
		Lines:      []layout.TextLine{{Content: label, Height: value.lineHeight}},
		Height:     value.lineHeight,
	})
	value.x = f.X + indent
	value.width = f.Width - indent
	_, err := w.place(f, value)
	return err
}

// divider 在当前位置画一条贯穿内容宽度的横线。
func (w *writer) divider(f *layout.Frame, after float64) {
	m := w.cfg.Classic
	if !m.Dividers {
		return
	}
	f.EnsureSpace(after)
	y := f.Y()
	f.AddLine(layout.Line{X1: f.X, Y1: y, X2: f.X + f.Width, Y2: y, Color: m.DividerColor, Width: m.DividerWidth})
	f.Advance(after)
}

func joinSkills(skills []string) string {
	return strings.Join(skills, " • ")
}
