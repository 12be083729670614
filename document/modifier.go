package document

import (
	"github.com/pkg/errors"

	"github.com/iw2rmb/scribe/internal/grapheme"
)

// ReplaceText replaces the selected range with text. Inserted characters
// carry styles. A range spanning several blocks joins them into the start
// block. text must not contain line breaks; callers split on them.
//
// The result's SelectionAfter is a caret after the inserted text.
func (c *Content) ReplaceText(sel Selection, text string, styles []InlineStyle) (*Content, error) {
	sel = c.ClampSelection(sel)
	start, end := sel.Start(), sel.End()
	si, err := c.mustIndex(start.Key)
	if err != nil {
		return nil, err
	}
	ei, err := c.mustIndex(end.Key)
	if err != nil {
		return nil, err
	}

	startBlock, endBlock := c.blocks[si], c.blocks[ei]
	startChars, startStyles := grapheme.Split(startBlock.Text), startBlock.charStyles()
	endChars, endStyles := startChars, startStyles
	if ei != si {
		endChars, endStyles = grapheme.Split(endBlock.Text), endBlock.charStyles()
	}
	ins := grapheme.Split(text)

	clusters := make([]string, 0, start.Offset+len(ins)+len(endChars)-end.Offset)
	clusters = append(clusters, startChars[:start.Offset]...)
	clusters = append(clusters, ins...)
	clusters = append(clusters, endChars[end.Offset:]...)

	sets := make([][]InlineStyle, 0, cap(clusters))
	sets = append(sets, startStyles[:start.Offset]...)
	for range ins {
		sets = append(sets, styles)
	}
	sets = append(sets, endStyles[end.Offset:]...)

	blocks := make([]Block, 0, len(c.blocks)-(ei-si))
	blocks = append(blocks, c.blocks[:si]...)
	blocks = append(blocks, startBlock.withText(grapheme.Join(clusters), sets))
	blocks = append(blocks, c.blocks[ei+1:]...)

	next := c.withBlocks(blocks)
	next.selectionBefore = sel
	next.selectionAfter = Caret(start.Key, start.Offset+len(ins))
	return next, nil
}

// RemoveRange deletes the selected range.
func (c *Content) RemoveRange(sel Selection) (*Content, error) {
	return c.ReplaceText(sel, "", nil)
}

// InsertText inserts text at the selection, replacing any selected range.
func (c *Content) InsertText(sel Selection, text string, styles []InlineStyle) (*Content, error) {
	return c.ReplaceText(sel, text, styles)
}

// ApplyInlineStyle adds style to every character in the selection.
func (c *Content) ApplyInlineStyle(sel Selection, style InlineStyle) (*Content, error) {
	return c.modifyInlineStyle(sel, func(set []InlineStyle) []InlineStyle {
		return addStyle(set, style)
	})
}

// RemoveInlineStyle removes style from every character in the selection.
func (c *Content) RemoveInlineStyle(sel Selection, style InlineStyle) (*Content, error) {
	return c.modifyInlineStyle(sel, func(set []InlineStyle) []InlineStyle {
		return removeStyle(set, style)
	})
}

// ToggleInlineStyle removes style when every selected character already has
// it and applies it otherwise. A collapsed selection is returned unchanged.
func (c *Content) ToggleInlineStyle(sel Selection, style InlineStyle) (*Content, error) {
	has, err := c.SelectionHasStyle(sel, style)
	if err != nil {
		return nil, err
	}
	if has {
		return c.RemoveInlineStyle(sel, style)
	}
	return c.ApplyInlineStyle(sel, style)
}

// SelectionHasStyle reports whether every character in the selection carries
// style. Collapsed selections report false.
func (c *Content) SelectionHasStyle(sel Selection, style InlineStyle) (bool, error) {
	sel = c.ClampSelection(sel)
	si, ei, err := c.selectionIndexes(sel)
	if err != nil {
		return false, err
	}
	start, end := sel.Start(), sel.End()
	seen := false
	for i := si; i <= ei; i++ {
		b := c.blocks[i]
		from, to := 0, b.Len()
		if i == si {
			from = start.Offset
		}
		if i == ei {
			to = end.Offset
		}
		if from >= to {
			continue
		}
		seen = true
		if !b.HasStyle(style, from, to) {
			return false, nil
		}
	}
	return seen, nil
}

func (c *Content) modifyInlineStyle(sel Selection, fn func([]InlineStyle) []InlineStyle) (*Content, error) {
	sel = c.ClampSelection(sel)
	si, ei, err := c.selectionIndexes(sel)
	if err != nil {
		return nil, err
	}
	start, end := sel.Start(), sel.End()

	blocks := c.Blocks()
	for i := si; i <= ei; i++ {
		b := blocks[i]
		chars := b.charStyles()
		from, to := 0, len(chars)
		if i == si {
			from = start.Offset
		}
		if i == ei {
			to = end.Offset
		}
		for j := from; j < to; j++ {
			chars[j] = fn(chars[j])
		}
		blocks[i] = b.withText(b.Text, chars)
	}

	next := c.withBlocks(blocks)
	next.selectionBefore = sel
	next.selectionAfter = sel
	return next, nil
}

// SetBlockType sets the type of every block the selection touches.
func (c *Content) SetBlockType(sel Selection, t BlockType) (*Content, error) {
	si, ei, err := c.selectionIndexes(sel)
	if err != nil {
		return nil, err
	}
	blocks := c.Blocks()
	for i := si; i <= ei; i++ {
		blocks[i].Type = t
	}
	next := c.withBlocks(blocks)
	next.selectionBefore = sel
	next.selectionAfter = sel
	return next, nil
}

// InsertBlockAfter inserts b immediately after the block with key after.
func (c *Content) InsertBlockAfter(after string, b Block) (*Content, error) {
	i, err := c.mustIndex(after)
	if err != nil {
		return nil, err
	}
	if _, dup := c.index[b.Key]; dup || b.Key == "" {
		return nil, errors.Wrapf(ErrDuplicateKey, "key %q", b.Key)
	}
	if b.Type == "" {
		b.Type = Unstyled
	}
	b.Styles = normalizeRanges(b.Styles, b.Len())

	blocks := make([]Block, 0, len(c.blocks)+1)
	blocks = append(blocks, c.blocks[:i+1]...)
	blocks = append(blocks, b)
	blocks = append(blocks, c.blocks[i+1:]...)
	return c.withBlocks(blocks), nil
}

func (c *Content) mustIndex(key string) (int, error) {
	i, ok := c.index[key]
	if !ok {
		return 0, errors.Wrapf(ErrBlockNotFound, "key %q", key)
	}
	return i, nil
}

func (c *Content) selectionIndexes(sel Selection) (int, int, error) {
	si, err := c.mustIndex(sel.StartKey())
	if err != nil {
		return 0, 0, err
	}
	ei, err := c.mustIndex(sel.EndKey())
	if err != nil {
		return 0, 0, err
	}
	return si, ei, nil
}
