package document

import (
	"strings"

	"github.com/pkg/errors"
)

// Content is an immutable ordered sequence of blocks.
//
// SelectionBefore and SelectionAfter record where the caret was before and
// should be after the edit that produced this content. State.Push adopts
// SelectionAfter.
type Content struct {
	blocks []Block
	index  map[string]int

	selectionBefore Selection
	selectionAfter  Selection
}

// NewContent builds content from blocks. Blocks are copied; an empty input
// yields no blocks (use EmptyContent for a single empty block).
func NewContent(blocks []Block) (*Content, error) {
	c := &Content{
		blocks: make([]Block, 0, len(blocks)),
		index:  make(map[string]int, len(blocks)),
	}
	for _, b := range blocks {
		if b.Key == "" {
			return nil, errors.Wrap(ErrInvalidRaw, "block key is empty")
		}
		if _, dup := c.index[b.Key]; dup {
			return nil, errors.Wrapf(ErrDuplicateKey, "key %q", b.Key)
		}
		if b.Type == "" {
			b.Type = Unstyled
		}
		b.Styles = normalizeRanges(b.Styles, b.Len())
		c.index[b.Key] = len(c.blocks)
		c.blocks = append(c.blocks, b)
	}
	if len(c.blocks) > 0 {
		first := c.blocks[0].Key
		c.selectionBefore = Caret(first, 0)
		c.selectionAfter = Caret(first, 0)
	}
	return c, nil
}

// EmptyContent returns content holding one empty unstyled block.
func EmptyContent(key string) *Content {
	c, _ := NewContent([]Block{NewBlock(key, "")})
	return c
}

// Blocks returns a copy of the block sequence.
func (c *Content) Blocks() []Block {
	out := make([]Block, len(c.blocks))
	copy(out, c.blocks)
	return out
}

func (c *Content) Len() int { return len(c.blocks) }

// Block returns the block with key.
func (c *Content) Block(key string) (Block, bool) {
	i, ok := c.index[key]
	if !ok {
		return Block{}, false
	}
	return c.blocks[i], true
}

// BlockAt returns the block at position i.
func (c *Content) BlockAt(i int) (Block, bool) {
	if i < 0 || i >= len(c.blocks) {
		return Block{}, false
	}
	return c.blocks[i], true
}

// IndexOf returns the position of key, or -1.
func (c *Content) IndexOf(key string) int {
	i, ok := c.index[key]
	if !ok {
		return -1
	}
	return i
}

func (c *Content) BlockBefore(key string) (Block, bool) {
	return c.BlockAt(c.IndexOf(key) - 1)
}

func (c *Content) BlockAfter(key string) (Block, bool) {
	i := c.IndexOf(key)
	if i < 0 {
		return Block{}, false
	}
	return c.BlockAt(i + 1)
}

func (c *Content) First() (Block, bool) { return c.BlockAt(0) }

func (c *Content) Last() (Block, bool) { return c.BlockAt(len(c.blocks) - 1) }

// HasText reports whether any block has non-empty text.
func (c *Content) HasText() bool {
	for _, b := range c.blocks {
		if b.Text != "" {
			return true
		}
	}
	return false
}

// PlainText joins block texts with '\n'.
func (c *Content) PlainText() string {
	var sb strings.Builder
	for i, b := range c.blocks {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(b.Text)
	}
	return sb.String()
}

func (c *Content) SelectionBefore() Selection { return c.selectionBefore }

func (c *Content) SelectionAfter() Selection { return c.selectionAfter }

// WithSelections returns a copy of c carrying the given before/after selections.
func (c *Content) WithSelections(before, after Selection) *Content {
	next := *c
	next.selectionBefore = before
	next.selectionAfter = after
	return &next
}

// Equal reports whether c and o hold the same blocks in the same order.
// Selections are ignored.
func (c *Content) Equal(o *Content) bool {
	if c == o {
		return true
	}
	if c == nil || o == nil || len(c.blocks) != len(o.blocks) {
		return false
	}
	for i := range c.blocks {
		if !blocksEqual(c.blocks[i], o.blocks[i]) {
			return false
		}
	}
	return true
}

func blocksEqual(a, b Block) bool {
	if a.Key != b.Key || a.Type != b.Type || a.Text != b.Text || a.Depth != b.Depth {
		return false
	}
	if len(a.Styles) != len(b.Styles) {
		return false
	}
	for i := range a.Styles {
		if a.Styles[i] != b.Styles[i] {
			return false
		}
	}
	return true
}

// withBlocks returns content sharing c's selections with a new block list.
// The list is owned by the result.
func (c *Content) withBlocks(blocks []Block) *Content {
	next := &Content{
		blocks:          blocks,
		index:           make(map[string]int, len(blocks)),
		selectionBefore: c.selectionBefore,
		selectionAfter:  c.selectionAfter,
	}
	for i, b := range blocks {
		next.index[b.Key] = i
	}
	return next
}
