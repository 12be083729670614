package command

import (
	"github.com/iw2rmb/scribe/document"
	"github.com/iw2rmb/scribe/internal/grapheme"
)

type MoveUnit int

const (
	MoveGrapheme MoveUnit = iota
	MoveWord
	MoveBlock
	MoveDoc
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
	DirHome // block start (or doc start for MoveDoc)
	DirEnd  // block end (or doc end for MoveDoc)
)

type Move struct {
	Unit   MoveUnit
	Dir    MoveDir
	Extend bool // if true, keeps the anchor and moves the focus; otherwise collapses
}

// MoveCaret moves the selection focus by m. Moves never create undo steps.
func MoveCaret(s document.State, m Move) document.State {
	content := s.Content()
	sel := s.Selection()
	if _, ok := content.Block(sel.Focus.Key); !ok {
		return s
	}

	from := sel.Focus
	if !m.Extend && !sel.Collapsed() && m.Unit == MoveGrapheme {
		// Collapsing a range moves to its edge rather than one step past it.
		switch m.Dir {
		case DirLeft:
			return s.WithSelection(caretAt(sel.Start()))
		case DirRight:
			return s.WithSelection(caretAt(sel.End()))
		}
	}

	to := movePoint(content, from, m)
	if m.Extend {
		return s.WithSelection(content.Select(sel.Anchor, to))
	}
	return s.WithSelection(caretAt(to))
}

func caretAt(p document.Point) document.Selection {
	return document.Caret(p.Key, p.Offset)
}

func movePoint(c *document.Content, p document.Point, m Move) document.Point {
	switch m.Unit {
	case MoveGrapheme:
		return moveGrapheme(c, p, m.Dir)
	case MoveWord:
		return moveWord(c, p, m.Dir)
	case MoveBlock:
		return moveBlock(c, p, m.Dir)
	case MoveDoc:
		return moveDoc(c, p, m.Dir)
	default:
		return p
	}
}

func moveGrapheme(c *document.Content, p document.Point, dir MoveDir) document.Point {
	b, _ := c.Block(p.Key)
	switch dir {
	case DirLeft:
		if p.Offset > 0 {
			return document.Point{Key: p.Key, Offset: p.Offset - 1}
		}
		if prev, ok := c.BlockBefore(p.Key); ok {
			return document.Point{Key: prev.Key, Offset: prev.Len()}
		}
		return p
	case DirRight:
		if p.Offset < b.Len() {
			return document.Point{Key: p.Key, Offset: p.Offset + 1}
		}
		if next, ok := c.BlockAfter(p.Key); ok {
			return document.Point{Key: next.Key, Offset: 0}
		}
		return p
	default:
		return moveBlock(c, p, dir)
	}
}

func moveWord(c *document.Content, p document.Point, dir MoveDir) document.Point {
	b, _ := c.Block(p.Key)
	line := grapheme.Split(b.Text)

	switch dir {
	case DirLeft:
		if p.Offset == 0 {
			return moveGrapheme(c, p, DirLeft)
		}
		return document.Point{Key: p.Key, Offset: prevWordBoundary(line, p.Offset)}
	case DirRight:
		if p.Offset >= len(line) {
			return moveGrapheme(c, p, DirRight)
		}
		return document.Point{Key: p.Key, Offset: nextWordBoundary(line, p.Offset)}
	default:
		return moveBlock(c, p, dir)
	}
}

func moveBlock(c *document.Content, p document.Point, dir MoveDir) document.Point {
	b, _ := c.Block(p.Key)
	switch dir {
	case DirHome:
		return document.Point{Key: p.Key, Offset: 0}
	case DirEnd:
		return document.Point{Key: p.Key, Offset: b.Len()}
	case DirUp:
		prev, ok := c.BlockBefore(p.Key)
		if !ok {
			return document.Point{Key: p.Key, Offset: 0}
		}
		return document.Point{Key: prev.Key, Offset: min(p.Offset, prev.Len())}
	case DirDown:
		next, ok := c.BlockAfter(p.Key)
		if !ok {
			return document.Point{Key: p.Key, Offset: b.Len()}
		}
		return document.Point{Key: next.Key, Offset: min(p.Offset, next.Len())}
	default:
		return p
	}
}

func moveDoc(c *document.Content, p document.Point, dir MoveDir) document.Point {
	switch dir {
	case DirHome, DirUp:
		first, _ := c.First()
		return document.Point{Key: first.Key, Offset: 0}
	case DirEnd, DirDown:
		last, _ := c.Last()
		return document.Point{Key: last.Key, Offset: last.Len()}
	default:
		return p
	}
}

// Word boundary rules:
// - skip whitespace, then skip non-whitespace
// - block edges are hard boundaries
func prevWordBoundary(line []string, col int) int {
	col = min(max(col, 0), len(line))
	i := col
	for i > 0 && grapheme.IsSpace(line[i-1]) {
		i--
	}
	for i > 0 && !grapheme.IsSpace(line[i-1]) {
		i--
	}
	return i
}

func nextWordBoundary(line []string, col int) int {
	col = min(max(col, 0), len(line))
	i := col
	for i < len(line) && grapheme.IsSpace(line[i]) {
		i++
	}
	for i < len(line) && !grapheme.IsSpace(line[i]) {
		i++
	}
	return i
}
