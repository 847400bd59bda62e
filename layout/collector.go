package layout

type pageAccumulator struct {
	texts   []TextBox
	images  []ImageBox
	lines   []Line
	circles []Circle
}

// Collector 按需创建页面并收集每页的绘制元素。
type Collector struct {
	width      float64
	height     float64
	margin     Margin
	accs       []*pageAccumulator
	background []Rect
}

// NewCollector 创建一个带有第一页的收集器。
func NewCollector(width, height float64, margin Margin) *Collector {
	pc := &Collector{
		width:  width,
		height: height,
		margin: margin,
	}
	pc.page(0)
	return pc
}

// SetBackground 设置每一页都重复绘制的背景矩形。
func (pc *Collector) SetBackground(rects ...Rect) {
	pc.background = append([]Rect(nil), rects...)
}

// ContentBottom 返回可写区域的底部：页面高度减去下边距。
func (pc *Collector) ContentBottom() float64 {
	return pc.height - pc.margin.Bottom
}

// page 返回下标为 i 的页面，不足时依次补齐。
func (pc *Collector) page(i int) *pageAccumulator {
	if i < 0 {
		i = 0
	}
	for len(pc.accs) <= i {
		pc.accs = append(pc.accs, &pageAccumulator{})
	}
	return pc.accs[i]
}

// Pages 输出全部页面。
func (pc *Collector) Pages() []Page {
	out := make([]Page, len(pc.accs))
	for i, acc := range pc.accs {
		out[i] = Page{
			Width:      pc.width,
			Height:     pc.height,
			Margin:     pc.margin,
			Background: pc.background,
			Circles:    acc.circles,
			Lines:      acc.lines,
			Images:     acc.images,
			Texts:      acc.texts,
		}
	}
	return out
}

// Frame 把游标中的一列绑定到页面上的一段水平区域 [X, X+Width]。
type Frame struct {
	X      float64
	Width  float64
	column Column
	top    float64
	cursor *Cursor
	pages  *Collector
}

// NewFrame 创建列区域，并把该列游标重置到 top。
func NewFrame(pages *Collector, cursor *Cursor, col Column, x, width, top float64) *Frame {
	cursor.Reset(col, top)
	return &Frame{
		X:      x,
		Width:  width,
		column: col,
		top:    top,
		cursor: cursor,
		pages:  pages,
	}
}

// Column 返回该区域绑定的列。
func (f *Frame) Column() Column { return f.column }

// Y 返回当前纵坐标。
func (f *Frame) Y() float64 { return f.cursor.Position(f.column) }

// PageIndex 返回当前所在页下标。
func (f *Frame) PageIndex() int { return f.cursor.Page(f.column) }

// Advance 将当前列下移 dy 毫米。
func (f *Frame) Advance(dy float64) { f.cursor.Advance(f.column, dy) }

// NeedsBreak 报告放置高度为 height 的内容是否需要换页。
// 已经位于页顶时总是返回 false，避免超高内容造成死循环。
func (f *Frame) NeedsBreak(height float64) bool {
	y := f.Y()
	return y+height > f.pages.ContentBottom() && y > f.top
}

// EnsureSpace 在放置高度为 height 的内容之前检查是否越过下边距，越过则换页。返回是否发生了换页。
func (f *Frame) EnsureSpace(height float64) bool {
	if !f.NeedsBreak(height) {
		return false
	}
	f.cursor.NextPage(f.column, f.top)
	f.pages.page(f.PageIndex())
	return true
}

func (f *Frame) acc() *pageAccumulator { return f.pages.page(f.PageIndex()) }

// AddText 在当前页追加文本块。
func (f *Frame) AddText(tb TextBox) { a := f.acc(); a.texts = append(a.texts, tb) }

// AddImage 在当前页追加图片。
func (f *Frame) AddImage(img ImageBox) { a := f.acc(); a.images = append(a.images, img) }

// AddLine 在当前页追加线段。
func (f *Frame) AddLine(ln Line) { a := f.acc(); a.lines = append(a.lines, ln) }

// AddCircle 在当前页追加圆形。
func (f *Frame) AddCircle(c Circle) { a := f.acc(); a.circles = append(a.circles, c) }
