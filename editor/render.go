package editor

import (
	"fmt"
	"strings"

	"github.com/iw2rmb/tide/internal/cells"
)

const controlGlyph = "?"

func (m Model) renderHeader() string {
	left := m.cfg.Title
	if m.cfg.Version != "" {
		left += " (" + m.cfg.Version + ")"
	}
	left += " '" + m.sess.Filename() + "'"
	if m.sess.Modified() {
		left += " [+]"
	}

	col, line := m.sess.Position()
	right := fmt.Sprintf("%d lines - %d,%d", m.sess.Buffer().LineCount(), col+1, line+1)
	return m.cfg.Style.Header.Render(cells.Justify(left, right, m.width))
}

func (m Model) renderFooter() string {
	help := m.keys.FooterHelp()
	parts := make([]string, 0, len(help))
	for _, b := range help {
		h := b.Help()
		parts = append(parts, "("+h.Key+") "+h.Desc)
	}
	text := strings.Join(parts, " | ")
	if st := m.sess.Status(); st != "" {
		text += " <> " + st
	}
	return m.cfg.Style.Footer.Render(cells.Fit(text, m.width))
}

// renderBody renders the visible window of the buffer, one row per line.
func (m Model) renderBody() string {
	ctl := m.sess.Controller()
	buf := m.sess.Buffer()
	first, count := ctl.Window()
	cur := ctl.Cursor()
	left := horizontalOffset(cur.Col, m.width)

	rows := make([]string, 0, count)
	for i := 0; i < count; i++ {
		line, err := buf.Line(first + i)
		if err != nil {
			break
		}
		cursorCol := -1
		if i+1 == cur.Row {
			cursorCol = cur.Col
		}
		rows = append(rows, renderLine(m.cfg.Style, line, left, m.width, cursorCol))
	}
	return strings.Join(rows, "\n")
}

// horizontalOffset returns the first byte column shown so that col stays on
// screen.
func horizontalOffset(col, width int) int {
	if width <= 0 || col < width {
		return 0
	}
	return col - width + 1
}

// renderLine draws bytes [left, left+width) of line, one cell per byte.
// cursorCol < 0 means the cursor is on another row.
func renderLine(st Style, line string, left, width, cursorCol int) string {
	if width <= 0 {
		return ""
	}
	end := min(left+width, len(line))

	var sb strings.Builder
	run := left
	flush := func(to int) {
		if to > run {
			writeBytes(&sb, st, line[run:to])
		}
		run = to
	}

	if cursorCol >= left && cursorCol < left+width {
		flush(min(cursorCol, end))
		cell := " "
		if cursorCol < len(line) {
			cell = displayByte(line[cursorCol])
			run = cursorCol + 1
		}
		sb.WriteString(st.Cursor.Render(cell))
	}
	flush(max(end, run))
	return sb.String()
}

func writeBytes(sb *strings.Builder, st Style, s string) {
	start := 0
	for i := 0; i < len(s); i++ {
		if IsPrintable(s[i]) {
			continue
		}
		if i > start {
			sb.WriteString(st.Text.Render(s[start:i]))
		}
		sb.WriteString(st.Control.Render(controlGlyph))
		start = i + 1
	}
	if start < len(s) {
		sb.WriteString(st.Text.Render(s[start:]))
	}
}

func displayByte(c byte) string {
	if IsPrintable(c) {
		return string(c)
	}
	return controlGlyph
}
