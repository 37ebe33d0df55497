package editor

// ViewportState is a host-facing snapshot of the visible window.
type ViewportState struct {
	// TopLine is the buffer index shown on the first body row.
	TopLine int
	// VisibleRows is the number of body rows available for lines.
	VisibleRows int
	// VisibleLines is the number of buffer lines currently shown.
	VisibleLines int
	// LeftColumn is the first byte column shown on every row.
	LeftColumn int
	// Cursor is the viewport-relative cursor.
	Cursor Cursor
}

// ViewportState returns the current viewport state.
func (m Model) ViewportState() ViewportState {
	ctl := m.sess.Controller()
	first, count := ctl.Window()
	cur := ctl.Cursor()
	return ViewportState{
		TopLine:      first,
		VisibleRows:  ctl.Height(),
		VisibleLines: count,
		LeftColumn:   horizontalOffset(cur.Col, m.width),
		Cursor:       cur,
	}
}
