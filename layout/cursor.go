package layout

// Column 标识一个独立推进的纵向写入位置。
type Column int

const (
	ColumnMain Column = iota
	ColumnSidebar
	columnCount
)

func (c Column) String() string {
	switch c {
	case ColumnMain:
		return "main"
	case ColumnSidebar:
		return "sidebar"
	default:
		return "unknown"
	}
}

type columnState struct {
	y    float64
	page int
}

// Cursor 为每一列记录当前纵坐标与所在页。各列互不影响。
// 未知列上的操作会被忽略，Position 返回 0。
type Cursor struct {
	cols [columnCount]columnState
}

// NewCursor 返回所有列都位于第一页顶部（y=0）的游标。
func NewCursor() *Cursor { return &Cursor{} }

// Reset 将列的纵坐标设为 y0，所在页保持不变。
func (c *Cursor) Reset(col Column, y0 float64) {
	if s := c.state(col); s != nil {
		s.y = y0
	}
}

// Advance 将列下移 amount 毫米。
func (c *Cursor) Advance(col Column, amount float64) {
	if s := c.state(col); s != nil {
		s.y += amount
	}
}

// Position 返回列的当前纵坐标。
func (c *Cursor) Position(col Column) float64 {
	if s := c.state(col); s != nil {
		return s.y
	}
	return 0
}

// Page 返回列所在页的下标（从 0 开始）。
func (c *Cursor) Page(col Column) int {
	if s := c.state(col); s != nil {
		return s.page
	}
	return 0
}

// NextPage 将列移到下一页，并从 y0 重新开始。
func (c *Cursor) NextPage(col Column, y0 float64) {
	if s := c.state(col); s != nil {
		s.page++
		s.y = y0
	}
}

func (c *Cursor) state(col Column) *columnState {
	if col < 0 || col >= columnCount {
		return nil
	}
	return &c.cols[col]
}
