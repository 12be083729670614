package document

// Point addresses a caret position: a block key and a grapheme offset.
type Point struct {
	Key    string
	Offset int
}

// Selection is an anchor/focus pair. When Anchor == Focus it is a caret.
//
// Backward is set when Focus precedes Anchor in document order; Content.Select
// computes it.
type Selection struct {
	Anchor   Point
	Focus    Point
	Backward bool
}

// Caret returns a collapsed selection at (key, offset).
func Caret(key string, offset int) Selection {
	p := Point{Key: key, Offset: offset}
	return Selection{Anchor: p, Focus: p}
}

func (s Selection) Collapsed() bool { return s.Anchor == s.Focus }

// Start returns the earlier of anchor and focus in document order.
func (s Selection) Start() Point {
	if s.Backward {
		return s.Focus
	}
	return s.Anchor
}

// End returns the later of anchor and focus in document order.
func (s Selection) End() Point {
	if s.Backward {
		return s.Anchor
	}
	return s.Focus
}

func (s Selection) StartKey() string { return s.Start().Key }
func (s Selection) StartOffset() int { return s.Start().Offset }
func (s Selection) EndKey() string   { return s.End().Key }
func (s Selection) EndOffset() int   { return s.End().Offset }

// Select builds a selection from anchor to focus, computing direction from
// block order. Points naming unknown blocks are kept as-is and treated as
// forward.
func (c *Content) Select(anchor, focus Point) Selection {
	sel := Selection{Anchor: anchor, Focus: focus}
	ai, aok := c.index[anchor.Key]
	fi, fok := c.index[focus.Key]
	if !aok || !fok {
		return sel
	}
	sel.Backward = fi < ai || (fi == ai && focus.Offset < anchor.Offset)
	return sel
}

// ClampSelection clamps both points into their blocks' bounds. Points naming
// unknown blocks are left unchanged.
func (c *Content) ClampSelection(sel Selection) Selection {
	return c.Select(c.clampPoint(sel.Anchor), c.clampPoint(sel.Focus))
}

func (c *Content) clampPoint(p Point) Point {
	b, ok := c.Block(p.Key)
	if !ok {
		return p
	}
	p.Offset = clampInt(p.Offset, 0, b.Len())
	return p
}
