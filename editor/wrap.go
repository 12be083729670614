package editor

// WrapMode controls how blocks longer than the view are displayed.
//
// WrapNone renders one block per visual row and lets the viewport clip it.
// WrapWord and WrapGrapheme use soft wrapping.
type WrapMode int

const (
	WrapNone WrapMode = iota
	WrapWord
	WrapGrapheme
)

// segment is a half-open cluster range [start, end) rendered on one row.
type segment struct {
	start, end int
}

// wrapCells splits cells into rows of at most width cells. The result always
// holds at least one segment, so an empty block still occupies a row.
func wrapCells(cells []cell, mode WrapMode, width int) []segment {
	if width <= 0 || mode == WrapNone || len(cells) == 0 {
		return []segment{{0, len(cells)}}
	}

	var segs []segment
	for start := 0; start < len(cells); {
		used := 0
		overflow := start
		for overflow < len(cells) {
			w := max(cells[overflow].width, 1)
			if used > 0 && used+w > width {
				break
			}
			used += w
			overflow++
		}

		end := overflow
		if mode == WrapWord && overflow < len(cells) {
			if br, ok := findWordWrapBreak(cells, start, overflow); ok {
				end = br
			}
		}
		if end <= start {
			end = min(start+1, len(cells))
		}
		segs = append(segs, segment{start, end})
		start = end
	}
	return segs
}

// findWordWrapBreak returns the index just past the last whitespace run in
// [start, overflow), so trailing spaces stay on the row they end.
func findWordWrapBreak(cells []cell, start, overflow int) (int, bool) {
	start = max(start, 0)
	overflow = min(overflow, len(cells))
	if start >= overflow {
		return 0, false
	}

	lastBreak := -1
	i := start
	for i < overflow {
		if !cells[i].whitespace {
			i++
			continue
		}
		j := i + 1
		for j < overflow && cells[j].whitespace {
			j++
		}
		lastBreak = j
		i = j
	}

	if lastBreak <= start {
		return 0, false
	}
	return lastBreak, true
}

// segmentFor returns the row index holding cluster offset col. An offset at
// a wrap boundary belongs to the following row, except at the block end.
func segmentFor(segs []segment, col int) int {
	for i, s := range segs {
		if col < s.end {
			return i
		}
	}
	return len(segs) - 1
}
