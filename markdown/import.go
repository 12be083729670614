// Package markdown converts documents to and from Markdown.
//
// Only what a block document can hold survives the trip: headings,
// paragraphs, quotes, list items, code blocks, and the bold, italic, code
// and strikethrough inline styles. Underline and the red color style have no
// Markdown form and are written as plain text.
package markdown

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"

	"github.com/iw2rmb/scribe/document"
	"github.com/iw2rmb/scribe/internal/grapheme"
)

var md = goldmark.New(goldmark.WithExtensions(extension.Strikethrough))

// Import parses src into content. keyFn generates block keys; nil means
// document.NewKey. An empty source yields a single empty block.
func Import(src []byte, keyFn func() string) (*document.Content, error) {
	if keyFn == nil {
		keyFn = document.NewKey
	}
	root := md.Parser().Parse(text.NewReader(src))

	imp := &importer{source: src, keyFn: keyFn}
	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		imp.block(n, "", 0)
	}
	if len(imp.blocks) == 0 {
		return document.EmptyContent(keyFn()), nil
	}
	c, err := document.NewContent(imp.blocks)
	return c, errors.Wrap(err, "failed to build content from markdown")
}

type importer struct {
	source []byte
	keyFn  func() string
	blocks []document.Block
}

// block converts n. A non-empty override forces the type of paragraph-like
// children, which is how quotes and list items pass their type down.
func (imp *importer) block(n ast.Node, override document.BlockType, depth int) {
	switch n := n.(type) {
	case *ast.Heading:
		t := document.HeadingType(n.Level)
		if override != "" {
			t = override
		}
		imp.inline(n, t, depth)
	case *ast.Paragraph, *ast.TextBlock:
		t := override
		if t == "" {
			t = document.Unstyled
		}
		imp.inline(n, t, depth)
	case *ast.Blockquote:
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			imp.block(c, document.Blockquote, depth)
		}
	case *ast.List:
		t := document.UnorderedListItem
		if n.IsOrdered() {
			t = document.OrderedListItem
		}
		for item := n.FirstChild(); item != nil; item = item.NextSibling() {
			for c := item.FirstChild(); c != nil; c = c.NextSibling() {
				if _, nested := c.(*ast.List); nested {
					imp.block(c, "", depth+1)
					continue
				}
				imp.block(c, t, depth)
			}
		}
	case *ast.FencedCodeBlock, *ast.CodeBlock:
		imp.lines(n, document.CodeBlock, depth)
	case *ast.HTMLBlock:
		imp.lines(n, document.Unstyled, depth)
	}
}

// lines emits one block per source line of a literal block.
func (imp *importer) lines(n ast.Node, t document.BlockType, depth int) {
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		line := strings.TrimRight(string(seg.Value(imp.source)), "\r\n")
		imp.blocks = append(imp.blocks, document.Block{Key: imp.keyFn(), Type: t, Text: line, Depth: depth})
	}
}

func (imp *importer) inline(n ast.Node, t document.BlockType, depth int) {
	w := &inlineWriter{source: imp.source}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		w.node(c, nil)
	}
	imp.blocks = append(imp.blocks, document.Block{
		Key:    imp.keyFn(),
		Type:   t,
		Text:   w.sb.String(),
		Depth:  depth,
		Styles: w.ranges,
	})
}

type inlineWriter struct {
	source []byte
	sb     strings.Builder
	n      int
	ranges []document.StyleRange
}

func (w *inlineWriter) write(s string, styles []document.InlineStyle) {
	if s == "" {
		return
	}
	count := grapheme.Count(s)
	for _, st := range styles {
		w.ranges = append(w.ranges, document.StyleRange{Offset: w.n, Length: count, Style: st})
	}
	w.sb.WriteString(s)
	w.n += count
}

func (w *inlineWriter) node(n ast.Node, styles []document.InlineStyle) {
	switch n := n.(type) {
	case *ast.Text:
		w.write(string(util.UnescapePunctuations(n.Segment.Value(w.source))), styles)
		if n.SoftLineBreak() || n.HardLineBreak() {
			w.write(" ", styles)
		}
		return
	case *ast.String:
		w.write(string(n.Value), styles)
		return
	case *ast.CodeSpan:
		var sb strings.Builder
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			if t, ok := c.(*ast.Text); ok {
				sb.Write(t.Segment.Value(w.source))
			}
		}
		w.write(sb.String(), with(styles, document.Code))
		return
	case *ast.AutoLink:
		w.write(string(n.Label(w.source)), styles)
		return
	case *ast.RawHTML:
		for i := 0; i < n.Segments.Len(); i++ {
			seg := n.Segments.At(i)
			w.write(string(seg.Value(w.source)), styles)
		}
		return
	case *ast.Emphasis:
		if n.Level >= 2 {
			styles = with(styles, document.Bold)
		} else {
			styles = with(styles, document.Italic)
		}
	case *east.Strikethrough:
		styles = with(styles, document.Strikethrough)
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		w.node(c, styles)
	}
}

func with(styles []document.InlineStyle, s document.InlineStyle) []document.InlineStyle {
	out := make([]document.InlineStyle, 0, len(styles)+1)
	out = append(out, styles...)
	return append(out, s)
}
