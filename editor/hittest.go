package editor

import "github.com/iw2rmb/scribe/document"

// rowRef maps one visual row of the last render back to its block.
type rowRef struct {
	key         string
	seg         segment
	prefixWidth int
	last        bool
}

// screenToPoint maps viewport-local mouse coordinates to a document point.
//
// Coordinates are in terminal cells relative to the viewport: (0,0) is the
// top-left of the visible content region. Clicks on a prefix map to the
// row start; clicks past the text map to the row end.
func (m *Model) screenToPoint(x, y int) (document.Point, bool) {
	if len(m.rows) == 0 {
		return document.Point{}, false
	}
	ref := m.rows[clampInt(m.viewport.YOffset+y, 0, len(m.rows)-1)]
	b, ok := m.state.Content().Block(ref.key)
	if !ok {
		return document.Point{}, false
	}

	cells := cellsForText(b.Text, m.cfg.TabWidth, ref.prefixWidth)
	end := min(ref.seg.end, len(cells))
	col := ref.prefixWidth
	for i := ref.seg.start; i < end; i++ {
		w := cells[i].width
		if x < col+max(w, 1) {
			if x < ref.prefixWidth {
				return document.Point{Key: b.Key, Offset: ref.seg.start}, true
			}
			return document.Point{Key: b.Key, Offset: i}, true
		}
		col += w
	}

	// Past the text: a wrapped row ends before its last cluster so the caret
	// stays on this row.
	if !ref.last && end > ref.seg.start {
		return document.Point{Key: b.Key, Offset: end - 1}, true
	}
	return document.Point{Key: b.Key, Offset: end}, true
}
