package editor

import "github.com/iw2rmb/scribe/document"

// ViewportState is a stable host-facing snapshot of editor camera state.
type ViewportState struct {
	// TopVisualRow is the visual row index rendered at viewport screen row 0.
	TopVisualRow int
	// VisibleRows is the number of content rows available for rendering.
	VisibleRows int
	// TotalRows is the number of visual rows in the rendered document.
	TotalRows int
	// CursorRow is the visual row holding the caret.
	CursorRow int
	// WrapMode is the active wrapping mode used to interpret coordinates.
	WrapMode WrapMode
}

// ViewportState returns the current host-facing viewport state.
func (m Model) ViewportState() ViewportState {
	return ViewportState{
		TopVisualRow: max(m.viewport.YOffset, 0),
		VisibleRows:  m.visibleRowCount(),
		TotalRows:    len(m.rows),
		CursorRow:    m.cursorRow,
		WrapMode:     m.cfg.WrapMode,
	}
}

// ScreenToDoc maps viewport-local screen coordinates to a document point.
//
// Coordinates use terminal cells relative to the editor viewport.
func (m Model) ScreenToDoc(x, y int) (document.Point, bool) {
	return (&m).screenToPoint(x, y)
}

func (m Model) visibleRowCount() int {
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h < 0 {
		return 0
	}
	return h
}
