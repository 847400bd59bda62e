package layout

// Typesetter 负责根据字体与宽度约束将文本拆成可绘制的行。
// width 与 fontSize 均为毫米；返回的每一行宽度不超过 width（单个不可拆分字符除外）。
type Typesetter interface {
	LayoutLines(content string, width float64, font FontResource, fontSize float64) ([]TextLine, error)
}
