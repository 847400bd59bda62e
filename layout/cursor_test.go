package layout

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestCursorColumnsAdvanceIndependently(t *testing.T) {
	c := NewCursor()
	c.Reset(ColumnMain, 20)
	c.Reset(ColumnSidebar, 15)

	c.Advance(ColumnMain, 6)
	c.Advance(ColumnMain, 7)
	c.Advance(ColumnSidebar, 5)

	if got := c.Position(ColumnMain); !eq(got, 33) {
		t.Fatalf("main 列位置错误: got=%g want=33", got)
	}
	if got := c.Position(ColumnSidebar); !eq(got, 20) {
		t.Fatalf("sidebar 列位置错误: got=%g want=20", got)
	}

	c.NextPage(ColumnMain, 15)
	if c.Page(ColumnMain) != 1 || c.Page(ColumnSidebar) != 0 {
		t.Fatalf("换页不应影响其他列: main=%d sidebar=%d", c.Page(ColumnMain), c.Page(ColumnSidebar))
	}
	if got := c.Position(ColumnMain); !eq(got, 15) {
		t.Fatalf("换页后位置错误: got=%g", got)
	}
}

func TestCursorIgnoresUnknownColumn(t *testing.T) {
	c := NewCursor()
	c.Advance(Column(42), 10)
	c.Reset(Column(-1), 10)
	if c.Position(Column(42)) != 0 || c.Page(Column(42)) != 0 {
		t.Fatalf("未知列应返回零值")
	}
}

func TestFrameEnsureSpaceBreaksPage(t *testing.T) {
	pc := NewCollector(210, 297, Margin{Top: 15, Bottom: 15, Left: 15, Right: 15})
	cur := NewCursor()
	f := NewFrame(pc, cur, ColumnMain, 15, 180, 15)

	if f.NeedsBreak(6) {
		t.Fatalf("页顶不需要换页")
	}
	f.Advance(270) // y = 285，距离底边 282 已越界
	if !f.NeedsBreak(6) || f.PageIndex() != 0 {
		t.Fatalf("NeedsBreak 应报告越界且不移动游标")
	}
	if !f.EnsureSpace(6) {
		t.Fatalf("越过下边距时应换页")
	}
	if f.PageIndex() != 1 || !eq(f.Y(), 15) {
		t.Fatalf("换页后应位于第二页顶部: page=%d y=%g", f.PageIndex(), f.Y())
	}
	if n := len(pc.Pages()); n != 2 {
		t.Fatalf("应创建第二页, got %d", n)
	}

	// 位于页顶时即使内容超高也不再换页
	if f.EnsureSpace(1000) {
		t.Fatalf("页顶处不应再次换页")
	}
}

func TestCollectorRepeatsBackground(t *testing.T) {
	pc := NewCollector(210, 297, Margin{Bottom: 15})
	pc.SetBackground(Rect{X: 0, Y: 0, Width: 70, Height: 297, FillColor: White.Ptr()})
	cur := NewCursor()
	f := NewFrame(pc, cur, ColumnMain, 85, 110, 20)
	f.AddText(TextBox{Content: "a"})
	f.Advance(300)
	f.EnsureSpace(6)
	f.AddText(TextBox{Content: "b"})

	pages := pc.Pages()
	if len(pages) != 2 {
		t.Fatalf("期望 2 页, got %d", len(pages))
	}
	for i, p := range pages {
		if len(p.Background) != 1 {
			t.Fatalf("第 %d 页缺少背景", i)
		}
		if len(p.Texts) != 1 {
			t.Fatalf("第 %d 页文本数量错误: %d", i, len(p.Texts))
		}
	}
	res := &Result{Pages: pages}
	if got := res.Texts(); len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("Texts 顺序错误: %v", got)
	}
}

func TestWriteDebugJSONOmitsImageData(t *testing.T) {
	res := &Result{
		Resources: ResourceSet{Images: map[string]ImageResource{"photo": {Name: "photo", Data: []byte("secret")}}},
	}
	var buf bytes.Buffer
	if err := WriteDebugJSON(res, &buf); err != nil {
		t.Fatalf("写出失败: %v", err)
	}
	if bytes.Contains(buf.Bytes(), []byte("c2VjcmV0")) {
		t.Fatalf("调试 JSON 不应包含图片字节")
	}
	var back map[string]any
	if err := json.Unmarshal(buf.Bytes(), &back); err != nil {
		t.Fatalf("输出不是合法 JSON: %v", err)
	}
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#2196F3")
	if err != nil || c != (Color{R: 33, G: 150, B: 243}) {
		t.Fatalf("解析 #2196F3 错误: %+v %v", c, err)
	}
	c, err = ParseColor("#fff")
	if err != nil || c != White {
		t.Fatalf("解析 #fff 错误: %+v %v", c, err)
	}
	if _, err := ParseColor("#12"); err == nil {
		t.Fatalf("非法颜色应返回错误")
	}
}

func eq(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 1e-6
}
