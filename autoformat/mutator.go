package autoformat

import (
	"github.com/pkg/errors"

	"github.com/iw2rmb/scribe/document"
)

// SetBlockType returns a transform that converts the caret's block to t.
func SetBlockType(t document.BlockType) Transform {
	return func(e Edit) (Edit, error) {
		c, err := e.Content.SetBlockType(document.Caret(e.Caret.Key, e.Caret.Offset), t)
		if err != nil {
			return e, err
		}
		e.Content = c
		return e, nil
	}
}

// ToggleStyleToEnd returns a transform that toggles style over the text from
// the caret to the end of the block. When nothing remains after the caret the
// toggle becomes the pending override for the next typed characters.
func ToggleStyleToEnd(style document.InlineStyle) Transform {
	return func(e Edit) (Edit, error) {
		b, ok := e.Content.Block(e.Caret.Key)
		if !ok {
			return e, errors.Wrapf(document.ErrBlockNotFound, "key %q", e.Caret.Key)
		}
		n := b.Len()
		if e.Caret.Offset >= n {
			var current []document.InlineStyle
			if e.Caret.Offset > 0 {
				current = b.StylesAt(e.Caret.Offset - 1)
			}
			e.Override = document.ToggleStyle(current, style)
			if e.Override == nil {
				e.Override = []document.InlineStyle{}
			}
			return e, nil
		}
		sel := e.Content.Select(e.Caret, document.Point{Key: e.Caret.Key, Offset: n})
		c, err := e.Content.ToggleInlineStyle(sel, style)
		if err != nil {
			return e, err
		}
		e.Content = c
		return e, nil
	}
}

// mutate removes the rule's marker window, runs its transform, and pushes
// the result as a single remove-range edit.
func mutate(s document.State, key string, w Window, rule Rule) (document.State, error) {
	content := s.Content()
	marker := content.Select(
		document.Point{Key: key, Offset: w.Start},
		document.Point{Key: key, Offset: w.End},
	)
	removed, err := content.RemoveRange(marker)
	if err != nil {
		return s, errors.Wrapf(err, "rule %s: remove marker", rule.Name)
	}

	e, err := rule.Transform(Edit{
		Content: removed,
		Caret:   document.Point{Key: key, Offset: w.Start},
	})
	if err != nil {
		return s, errors.Wrapf(err, "rule %s: transform", rule.Name)
	}

	caret := document.Caret(e.Caret.Key, e.Caret.Offset)
	next := s.Push(e.Content.WithSelections(s.Selection(), caret), document.RemoveRangeChange)
	if e.Override != nil {
		next = next.WithInlineStyleOverride(e.Override)
	}
	return next, nil
}
