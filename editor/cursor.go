package editor

// LineSource is the read side of the line store needed for clamping.
type LineSource interface {
	LineCount() int
	LineLen(index int) int
}

// Cursor is the cursor position relative to the viewport.
//
// Row is 1-based into the visible window. Col is a byte offset into the line
// shown at Row.
type Cursor struct {
	Col int
	Row int
}

// Intent is a navigation request.
type Intent int

const (
	IntentUp Intent = iota
	IntentDown
	IntentLeft
	IntentRight
	IntentHome
	IntentEnd
	IntentPageUp
	IntentPageDown
)

func (in Intent) String() string {
	switch in {
	case IntentUp:
		return "up"
	case IntentDown:
		return "down"
	case IntentLeft:
		return "left"
	case IntentRight:
		return "right"
	case IntentHome:
		return "home"
	case IntentEnd:
		return "end"
	case IntentPageUp:
		return "page up"
	case IntentPageDown:
		return "page down"
	default:
		return "unknown"
	}
}

// Controller maps navigation intents onto a cursor and scroll offset that
// always select an existing line.
//
// The invariants after every call:
//   - 0 <= scroll < LineCount
//   - 1 <= row <= min(height, LineCount-scroll)
//   - 0 <= col <= LineLen(row+scroll-1)
type Controller struct {
	lines LineSource

	col    int
	row    int
	scroll int

	width  int
	height int
}

// NewController returns a controller at the top of lines for a viewport of
// width x height cells.
func NewController(lines LineSource, width, height int) *Controller {
	c := &Controller{lines: lines, row: 1}
	c.SetSize(width, height)
	return c
}

// Attach switches the controller to a new line source, keeping the cursor
// where it is as far as the new lines allow.
func (c *Controller) Attach(lines LineSource) {
	c.lines = lines
	c.Normalize()
}

// SetSize sets the viewport geometry. A height below 1 is treated as 1.
// Shrinking below the cursor row scrolls so the cursor stays on its line.
func (c *Controller) SetSize(width, height int) {
	c.width = max(width, 0)
	c.height = max(height, 1)
	if over := c.row - c.height; over > 0 {
		c.scroll += over
		c.row = c.height
	}
	c.Normalize()
}

func (c *Controller) Width() int  { return c.width }
func (c *Controller) Height() int { return c.height }

func (c *Controller) Cursor() Cursor { return Cursor{Col: c.col, Row: c.row} }

// Scroll returns the index of the first visible line.
func (c *Controller) Scroll() int { return c.scroll }

// LineIndex returns the buffer index of the line under the cursor.
func (c *Controller) LineIndex() int { return c.row + c.scroll - 1 }

// Window returns the first visible line index and the number of visible
// lines.
func (c *Controller) Window() (first, count int) {
	return c.scroll, c.maxVisibleRow()
}

// Move applies one navigation intent.
func (c *Controller) Move(in Intent) {
	switch in {
	case IntentUp:
		c.up(1)
	case IntentDown:
		c.down(1)
	case IntentPageUp:
		c.up(c.pageStep())
	case IntentPageDown:
		c.down(c.pageStep())
	case IntentLeft:
		c.SetColumn(c.col - 1)
	case IntentRight:
		c.SetColumn(c.col + 1)
	case IntentHome:
		c.col = 0
	case IntentEnd:
		c.col = c.lineLen()
	}
}

// SetColumn moves the cursor within the current line, clamped to its length.
func (c *Controller) SetColumn(col int) {
	c.col = clampInt(col, 0, c.lineLen())
}

// Normalize clamps scroll, row and column back into range after the line
// source changed underneath the controller.
func (c *Controller) Normalize() {
	c.scroll = clampInt(c.scroll, 0, c.lineCount()-1)
	c.row = clampInt(c.row, 1, c.maxVisibleRow())
	c.SetColumn(c.col)
}

// up moves the cursor towards the top of the viewport; once the cursor is
// pinned at row 1 the view scrolls instead.
func (c *Controller) up(step int) {
	prev := c.row
	c.row = max(c.row-step, 1)
	if c.row == prev && c.scroll > 0 {
		c.scroll = max(c.scroll-step, 0)
	}
	c.SetColumn(c.col)
}

// down is the mirror of up. Scrolling stops once the last line sits on the
// bottom row.
func (c *Controller) down(step int) {
	prev := c.row
	c.row = min(c.row+step, c.maxVisibleRow())
	if c.row == prev {
		if below := c.lineCount() - c.scroll - c.height; below > 0 {
			c.scroll += min(step, below)
		}
	}
	c.SetColumn(c.col)
}

func (c *Controller) pageStep() int { return max(c.height/2, 1) }

func (c *Controller) maxVisibleRow() int {
	return max(min(c.height, c.lineCount()-c.scroll), 1)
}

func (c *Controller) lineCount() int {
	if c.lines == nil {
		return 1
	}
	return max(c.lines.LineCount(), 1)
}

func (c *Controller) lineLen() int {
	if c.lines == nil {
		return 0
	}
	return max(c.lines.LineLen(c.LineIndex()), 0)
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
