package document

import (
	"sort"

	"github.com/iw2rmb/scribe/internal/grapheme"
)

// BlockType is the structural kind of a block.
type BlockType string

const (
	Unstyled          BlockType = "unstyled"
	HeaderOne         BlockType = "header-one"
	HeaderTwo         BlockType = "header-two"
	HeaderThree       BlockType = "header-three"
	HeaderFour        BlockType = "header-four"
	HeaderFive        BlockType = "header-five"
	HeaderSix         BlockType = "header-six"
	Blockquote        BlockType = "blockquote"
	UnorderedListItem BlockType = "unordered-list-item"
	OrderedListItem   BlockType = "ordered-list-item"
	CodeBlock         BlockType = "code-block"
)

var headings = []BlockType{HeaderOne, HeaderTwo, HeaderThree, HeaderFour, HeaderFive, HeaderSix}

// HeadingLevel returns 1..6 for heading types and 0 otherwise.
func (t BlockType) HeadingLevel() int {
	for i, h := range headings {
		if t == h {
			return i + 1
		}
	}
	return 0
}

// HeadingType returns the heading block type for level 1..6.
// Out-of-range levels are clamped.
func HeadingType(level int) BlockType {
	if level < 1 {
		level = 1
	}
	if level > len(headings) {
		level = len(headings)
	}
	return headings[level-1]
}

// InlineStyle tags a character range.
type InlineStyle string

const (
	Bold          InlineStyle = "BOLD"
	Italic        InlineStyle = "ITALIC"
	Underline     InlineStyle = "UNDERLINE"
	Strikethrough InlineStyle = "STRIKETHROUGH"
	Code          InlineStyle = "CODE"
	ColorRed      InlineStyle = "COLOR_RED"
)

// StyleRange applies Style to [Offset, Offset+Length).
type StyleRange struct {
	Offset int
	Length int
	Style  InlineStyle
}

func (r StyleRange) End() int { return r.Offset + r.Length }

// Block is one paragraph-equivalent unit of a document.
//
// Styles is kept normalized: sorted by (Style, Offset), merged per style,
// non-empty, and clipped to the block length.
type Block struct {
	Key    string
	Type   BlockType
	Text   string
	Depth  int
	Styles []StyleRange
}

// NewBlock returns an unstyled block.
func NewBlock(key, text string) Block {
	return Block{Key: key, Type: Unstyled, Text: text}
}

// Len returns the grapheme length of the block text.
func (b Block) Len() int { return grapheme.Count(b.Text) }

// StylesAt returns the sorted set of styles applied to the character at offset.
func (b Block) StylesAt(offset int) []InlineStyle {
	var out []InlineStyle
	for _, r := range b.Styles {
		if offset >= r.Offset && offset < r.End() {
			out = append(out, r.Style)
		}
	}
	sortStyles(out)
	return out
}

// HasStyle reports whether every character in [start, end) carries style.
// An empty range reports false.
func (b Block) HasStyle(style InlineStyle, start, end int) bool {
	if start >= end {
		return false
	}
	covered := start
	for _, r := range b.Styles {
		if r.Style != style || r.End() <= covered || r.Offset > covered {
			continue
		}
		covered = r.End()
		if covered >= end {
			return true
		}
	}
	return false
}

// withText returns a copy of b with text and per-character styles replaced.
func (b Block) withText(text string, chars [][]InlineStyle) Block {
	b.Text = text
	b.Styles = rangesFromChars(chars)
	return b
}

// charStyles expands Styles into one style set per grapheme.
func (b Block) charStyles() [][]InlineStyle {
	return expandRanges(b.Styles, b.Len())
}

func expandRanges(ranges []StyleRange, n int) [][]InlineStyle {
	chars := make([][]InlineStyle, n)
	for _, r := range ranges {
		for i := max(r.Offset, 0); i < r.End() && i < n; i++ {
			chars[i] = addStyle(chars[i], r.Style)
		}
	}
	return chars
}

func rangesFromChars(chars [][]InlineStyle) []StyleRange {
	open := map[InlineStyle]int{}
	var out []StyleRange
	for i := 0; i <= len(chars); i++ {
		var cur []InlineStyle
		if i < len(chars) {
			cur = chars[i]
		}
		for style, start := range open {
			if !containsStyle(cur, style) {
				out = append(out, StyleRange{Offset: start, Length: i - start, Style: style})
				delete(open, style)
			}
		}
		for _, style := range cur {
			if _, ok := open[style]; !ok {
				open[style] = i
			}
		}
	}
	sortRanges(out)
	return out
}

func normalizeRanges(ranges []StyleRange, n int) []StyleRange {
	if len(ranges) == 0 {
		return nil
	}
	return rangesFromChars(expandRanges(ranges, n))
}

func sortRanges(rs []StyleRange) {
	sort.Slice(rs, func(i, j int) bool {
		if rs[i].Style != rs[j].Style {
			return rs[i].Style < rs[j].Style
		}
		return rs[i].Offset < rs[j].Offset
	})
}

func sortStyles(ss []InlineStyle) {
	sort.Slice(ss, func(i, j int) bool { return ss[i] < ss[j] })
}

func containsStyle(set []InlineStyle, s InlineStyle) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}

func addStyle(set []InlineStyle, s InlineStyle) []InlineStyle {
	if containsStyle(set, s) {
		return set
	}
	out := make([]InlineStyle, 0, len(set)+1)
	out = append(out, set...)
	out = append(out, s)
	sortStyles(out)
	return out
}

func removeStyle(set []InlineStyle, s InlineStyle) []InlineStyle {
	if !containsStyle(set, s) {
		return set
	}
	out := make([]InlineStyle, 0, len(set))
	for _, v := range set {
		if v != s {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// ToggleStyle adds s to set when absent and removes it otherwise.
func ToggleStyle(set []InlineStyle, s InlineStyle) []InlineStyle {
	if containsStyle(set, s) {
		return removeStyle(set, s)
	}
	return addStyle(set, s)
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
