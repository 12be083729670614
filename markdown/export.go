package markdown

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/iw2rmb/scribe/document"
	"github.com/iw2rmb/scribe/internal/grapheme"
)

// Exported inline styles in nesting order, with their delimiters.
var markers = []struct {
	style document.InlineStyle
	mark  string
}{
	{document.Bold, "**"},
	{document.Italic, "*"},
	{document.Strikethrough, "~~"},
	{document.Code, "`"},
}

// Export renders c as Markdown.
func Export(c *document.Content) []byte {
	var buf bytes.Buffer
	blocks := c.Blocks()
	ordinals := map[int]int{}
	columns := map[int]int{}

	for i := 0; i < len(blocks); i++ {
		b := blocks[i]
		if i > 0 {
			buf.WriteByte('\n')
			if !isListItem(blocks[i-1].Type) || !isListItem(b.Type) {
				buf.WriteByte('\n')
			}
		}
		if !isListItem(b.Type) {
			clear(ordinals)
			clear(columns)
		}

		switch b.Type {
		case document.CodeBlock:
			j := i
			for j+1 < len(blocks) && blocks[j+1].Type == document.CodeBlock {
				j++
			}
			writeFence(&buf, blocks[i:j+1])
			i = j
			continue
		case document.UnorderedListItem:
			ordinals[b.Depth] = 0
			dropDeeper(ordinals, b.Depth)
			writeItem(&buf, columns, b.Depth, "- ")
		case document.OrderedListItem:
			ordinals[b.Depth]++
			dropDeeper(ordinals, b.Depth)
			writeItem(&buf, columns, b.Depth, strconv.Itoa(ordinals[b.Depth])+". ")
		case document.Blockquote:
			buf.WriteString("> ")
		default:
			if level := b.Type.HeadingLevel(); level > 0 {
				buf.WriteString(strings.Repeat("#", level))
				buf.WriteByte(' ')
			}
		}
		buf.WriteString(inline(b))
	}
	if buf.Len() > 0 {
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

func isListItem(t document.BlockType) bool {
	return t == document.UnorderedListItem || t == document.OrderedListItem
}

func dropDeeper(ordinals map[int]int, depth int) {
	for d := range ordinals {
		if d > depth {
			delete(ordinals, d)
		}
	}
}

// writeItem writes a list marker indented to the content column of the
// enclosing item, so nested items attach to their parent.
func writeItem(buf *bytes.Buffer, columns map[int]int, depth int, marker string) {
	indent := 0
	if depth > 0 {
		col, ok := columns[depth-1]
		if !ok {
			col = 2 * depth
		}
		indent = col
	}
	buf.WriteString(strings.Repeat(" ", indent))
	buf.WriteString(marker)
	columns[depth] = indent + len(marker)
}

func writeFence(buf *bytes.Buffer, blocks []document.Block) {
	fence := "```"
	for _, b := range blocks {
		for strings.Contains(b.Text, fence) {
			fence += "`"
		}
	}
	buf.WriteString(fence)
	buf.WriteByte('\n')
	for _, b := range blocks {
		buf.WriteString(b.Text)
		buf.WriteByte('\n')
	}
	buf.WriteString(fence)
}

// leadingMarkup returns the index of the cluster that would make the start
// of a line read as block markup, or -1.
func leadingMarkup(clusters []string) int {
	if len(clusters) == 0 {
		return -1
	}
	switch clusters[0] {
	case "#", ">", "-", "+", "=":
		return 0
	}
	i := 0
	for i < len(clusters) && len(clusters[i]) == 1 && clusters[i][0] >= '0' && clusters[i][0] <= '9' {
		i++
	}
	if i > 0 && i < len(clusters) && (clusters[i] == "." || clusters[i] == ")") {
		return i
	}
	return -1
}

// inline renders the block text with emphasis delimiters. Open delimiters
// form a stack so that nested styles close in reverse order.
func inline(b document.Block) string {
	clusters := grapheme.Split(b.Text)
	lead := leadingMarkup(clusters)
	var sb strings.Builder
	var open []document.InlineStyle

	for i := 0; i <= len(clusters); i++ {
		var want []document.InlineStyle
		if i < len(clusters) {
			want = exported(b.StylesAt(i))
		}

		keep := 0
		for keep < len(open) && contains(want, open[keep]) {
			keep++
		}
		for j := len(open) - 1; j >= keep; j-- {
			sb.WriteString(markFor(open[j]))
		}
		open = open[:keep]
		for _, m := range markers {
			if contains(want, m.style) && !contains(open, m.style) {
				sb.WriteString(m.mark)
				open = append(open, m.style)
			}
		}

		if i < len(clusters) {
			switch {
			case contains(open, document.Code):
				sb.WriteString(clusters[i])
			case i == lead:
				sb.WriteString(`\` + clusters[i])
			default:
				sb.WriteString(escape(clusters[i]))
			}
		}
	}
	return sb.String()
}

func exported(styles []document.InlineStyle) []document.InlineStyle {
	var out []document.InlineStyle
	for _, m := range markers {
		if contains(styles, m.style) {
			out = append(out, m.style)
		}
	}
	return out
}

func markFor(s document.InlineStyle) string {
	for _, m := range markers {
		if m.style == s {
			return m.mark
		}
	}
	return ""
}

func contains(styles []document.InlineStyle, s document.InlineStyle) bool {
	for _, x := range styles {
		if x == s {
			return true
		}
	}
	return false
}

func escape(cluster string) string {
	switch cluster {
	case `\`, "*", "_", "`", "~", "[", "]", "<":
		return `\` + cluster
	}
	return cluster
}
