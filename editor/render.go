package editor

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/scribe/document"
	graphemeutil "github.com/iw2rmb/scribe/internal/grapheme"
)

var blockLabels = map[document.BlockType]string{
	document.Unstyled:          "p",
	document.HeaderOne:         "h1",
	document.HeaderTwo:         "h2",
	document.HeaderThree:       "h3",
	document.HeaderFour:        "h4",
	document.HeaderFive:        "h5",
	document.HeaderSix:         "h6",
	document.Blockquote:        "quote",
	document.UnorderedListItem: "ul",
	document.OrderedListItem:   "ol",
	document.CodeBlock:         "code",
}

const blockLabelWidth = 6

func (m *Model) renderContent() string {
	content := m.state.Content()
	sel := m.state.Selection()
	m.cursorRow = 0
	m.rows = make([]rowRef, 0, len(m.rows))

	if m.showPlaceholder() {
		b, _ := content.First()
		m.rows = append(m.rows, rowRef{key: b.Key, last: true})
		return m.renderPlaceholder()
	}

	blocks := content.Blocks()
	numbers := listNumbers(blocks)
	si, ei := content.IndexOf(sel.StartKey()), content.IndexOf(sel.EndKey())

	out := make([]string, 0, len(blocks))
	for i, b := range blocks {
		prefix, prefixWidth := m.blockPrefix(b, numbers[i])
		cells := cellsForText(b.Text, m.cfg.TabWidth, prefixWidth)
		segs := wrapCells(cells, m.cfg.WrapMode, m.viewport.Width-prefixWidth)

		selFrom, selTo := -1, -1
		if !sel.Collapsed() && si >= 0 && ei >= 0 && i >= si && i <= ei {
			selFrom, selTo = 0, len(cells)
			if i == si {
				selFrom = sel.StartOffset()
			}
			if i == ei {
				selTo = sel.EndOffset()
			}
		}

		cursorCol := -1
		cursorSeg := -1
		if m.focused && sel.Focus.Key == b.Key {
			cursorCol = clampInt(sel.Focus.Offset, 0, len(cells))
			cursorSeg = segmentFor(segs, cursorCol)
		}

		pad := strings.Repeat(" ", prefixWidth)
		for s, seg := range segs {
			var sb strings.Builder
			if s == 0 {
				sb.WriteString(prefix)
			} else {
				sb.WriteString(pad)
			}
			sb.WriteString(m.renderSegment(b, cells, seg, selFrom, selTo, cursorCol, s == len(segs)-1))
			if s == cursorSeg {
				m.cursorRow = len(out)
			}
			m.rows = append(m.rows, rowRef{key: b.Key, seg: seg, prefixWidth: prefixWidth, last: s == len(segs)-1})
			out = append(out, sb.String())
		}
	}
	return strings.Join(out, "\n")
}

func (m *Model) showPlaceholder() bool {
	if m.cfg.Placeholder == "" {
		return false
	}
	c := m.state.Content()
	if c.Len() != 1 {
		return false
	}
	b, _ := c.First()
	return b.Text == "" && b.Type == document.Unstyled
}

func (m *Model) renderPlaceholder() string {
	st := m.cfg.Style
	var sb strings.Builder
	if m.cfg.ShowBlockTypes {
		sb.WriteString(st.BlockLabel.Render(padLabel(blockLabels[document.Unstyled])))
	}
	if !m.focused {
		sb.WriteString(st.Placeholder.Render(m.cfg.Placeholder))
		return sb.String()
	}
	clusters := graphemeutil.Split(m.cfg.Placeholder)
	sb.WriteString(st.Cursor.Inherit(st.Placeholder).Render(clusters[0]))
	if len(clusters) > 1 {
		sb.WriteString(st.Placeholder.Render(graphemeutil.Join(clusters[1:])))
	}
	return sb.String()
}

// blockPrefix returns the rendered prefix of a block's first row and its
// width in cells.
func (m *Model) blockPrefix(b document.Block, number int) (string, int) {
	st := m.cfg.Style
	var label, marker string
	if m.cfg.ShowBlockTypes {
		label = padLabel(blockLabels[b.Type])
	}

	indent := strings.Repeat("  ", max(b.Depth, 0))
	switch b.Type {
	case document.UnorderedListItem:
		marker = indent + "• "
	case document.OrderedListItem:
		marker = indent + strconv.Itoa(number) + ". "
	case document.Blockquote:
		marker = "│ "
	}

	var sb strings.Builder
	if label != "" {
		sb.WriteString(st.BlockLabel.Render(label))
	}
	if marker != "" {
		sb.WriteString(st.Prefix.Render(marker))
	}
	return sb.String(), lipgloss.Width(label + marker)
}

func padLabel(label string) string {
	if len(label) >= blockLabelWidth {
		return label[:blockLabelWidth-1] + " "
	}
	return label + strings.Repeat(" ", blockLabelWidth-len(label))
}

// renderSegment renders the clusters of seg, grouping runs that share a
// style. The caret at the block end is drawn as a styled space on the last
// row.
func (m *Model) renderSegment(b document.Block, cells []cell, seg segment, selFrom, selTo, cursorCol int, last bool) string {
	st := m.cfg.Style
	var sb strings.Builder

	var run strings.Builder
	var runStyle lipgloss.Style
	runKey := ""
	flush := func() {
		if run.Len() > 0 {
			sb.WriteString(runStyle.Render(run.String()))
			run.Reset()
		}
		runKey = ""
	}

	for i := seg.start; i < seg.end; i++ {
		styles := b.StylesAt(i)
		selected := i >= selFrom && i < selTo
		style := st.styleFor(b.Type, styles, selected)

		if i == cursorCol {
			flush()
			sb.WriteString(st.Cursor.Inherit(style).Render(cells[i].text))
			continue
		}

		key := styleKey(styles, selected)
		if key != runKey {
			flush()
			runKey = key
			runStyle = style
		}
		run.WriteString(cells[i].text)
	}
	flush()

	if last && cursorCol == len(cells) {
		sb.WriteString(st.Cursor.Inherit(st.styleFor(b.Type, m.state.CurrentInlineStyle(), false)).Render(" "))
	}
	return sb.String()
}

func styleKey(styles []document.InlineStyle, selected bool) string {
	var sb strings.Builder
	sb.WriteByte('|')
	for _, s := range styles {
		sb.WriteString(string(s))
		sb.WriteByte('|')
	}
	if selected {
		sb.WriteString("sel")
	}
	return sb.String()
}

// styleFor layers the block style, the inline styles and the selection over
// Text.
func (st Style) styleFor(t document.BlockType, styles []document.InlineStyle, selected bool) lipgloss.Style {
	s := st.Text
	if bs, ok := st.Block[t]; ok {
		s = bs.Inherit(s)
	}
	for _, is := range styles {
		if x, ok := st.Inline[is]; ok {
			s = x.Inherit(s)
		}
	}
	if selected {
		s = st.Selection.Inherit(s)
	}
	return s
}

// listNumbers returns the ordinal of every ordered list item; other blocks
// get 0. Numbering restarts after any non-list block and below any item of
// a shallower depth.
func listNumbers(blocks []document.Block) []int {
	out := make([]int, len(blocks))
	counters := map[int]int{}
	for i, b := range blocks {
		switch b.Type {
		case document.OrderedListItem:
			counters[b.Depth]++
			out[i] = counters[b.Depth]
		case document.UnorderedListItem:
			counters[b.Depth] = 0
		default:
			clear(counters)
			continue
		}
		for d := range counters {
			if d > b.Depth {
				delete(counters, d)
			}
		}
	}
	return out
}
