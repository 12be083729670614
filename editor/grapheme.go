package editor

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	graphemeutil "github.com/iw2rmb/scribe/internal/grapheme"
)

// cell is one grapheme cluster of a block with its terminal width.
type cell struct {
	text       string
	width      int
	whitespace bool
}

// cellsForText measures the clusters of text starting at visual column
// startCell. Tabs expand to the next tab stop.
func cellsForText(text string, tabWidth, startCell int) []cell {
	clusters := graphemeutil.Split(text)
	if len(clusters) == 0 {
		return nil
	}
	out := make([]cell, 0, len(clusters))
	col := max(startCell, 0)
	for _, c := range clusters {
		w := graphemeCellWidth(c, col, tabWidth)
		out = append(out, cell{text: c, width: w, whitespace: graphemeutil.IsSpace(c)})
		col += w
	}
	return out
}

func graphemeCellWidth(text string, visualCol, tabWidth int) int {
	if text == "\t" {
		return tabAdvance(visualCol, tabWidth)
	}

	w := runewidth.StringWidth(text)
	if w < 0 {
		w = 0
	}
	if w == 0 {
		fallback := uniseg.StringWidth(text)
		if fallback > w {
			w = fallback
		}
	}
	return w
}

func tabAdvance(visualCol, tabWidth int) int {
	if tabWidth <= 0 {
		tabWidth = 4
	}
	adv := tabWidth - visualCol%tabWidth
	if adv < 1 {
		return 1
	}
	return adv
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
