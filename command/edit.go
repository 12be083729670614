package command

import (
	"go.uber.org/zap"

	"github.com/iw2rmb/scribe/document"
)

// InsertText inserts text at the selection using the current inline style.
// Selections naming a missing block are left unchanged.
func (h *Handler) InsertText(s document.State, text string) document.State {
	if text == "" {
		return s
	}
	c, err := s.Content().InsertText(s.Selection(), text, s.CurrentInlineStyle())
	if err != nil {
		h.logger.Debug("command: insert failed", zap.Error(err))
		return s
	}
	return s.Push(c, document.InsertCharacters)
}

// InsertText inserts text with a handler that does not log.
func InsertText(s document.State, text string) document.State {
	return defaultHandler.InsertText(s, text)
}

func (h *Handler) deleteBackward(s document.State) (document.State, document.Result) {
	sel := s.Selection()
	content := s.Content()
	b, ok := content.Block(sel.StartKey())
	if !ok {
		return s, document.Handled
	}
	if !sel.Collapsed() {
		return h.removeRange(s, sel, document.RemoveRangeChange)
	}

	caret := sel.Start()
	var target document.Selection
	switch {
	case caret.Offset > 0:
		target = content.Select(document.Point{Key: b.Key, Offset: caret.Offset - 1}, caret)
	default:
		prev, ok := content.BlockBefore(b.Key)
		if !ok {
			if b.Type != document.Unstyled && b.Len() == 0 {
				return h.resetBlockType(s, b.Key)
			}
			return s, document.Handled
		}
		target = content.Select(document.Point{Key: prev.Key, Offset: prev.Len()}, caret)
	}
	return h.removeRange(s, target, document.BackspaceCharacter)
}

func (h *Handler) deleteForward(s document.State) (document.State, document.Result) {
	sel := s.Selection()
	content := s.Content()
	b, ok := content.Block(sel.StartKey())
	if !ok {
		return s, document.Handled
	}
	if !sel.Collapsed() {
		return h.removeRange(s, sel, document.RemoveRangeChange)
	}

	caret := sel.Start()
	var target document.Selection
	switch {
	case caret.Offset < b.Len():
		target = content.Select(caret, document.Point{Key: b.Key, Offset: caret.Offset + 1})
	default:
		next, ok := content.BlockAfter(b.Key)
		if !ok {
			return s, document.Handled
		}
		target = content.Select(caret, document.Point{Key: next.Key, Offset: 0})
	}
	return h.removeRange(s, target, document.DeleteCharacter)
}

func (h *Handler) removeRange(s document.State, sel document.Selection, t document.ChangeType) (document.State, document.Result) {
	c, err := s.Content().RemoveRange(sel)
	if err != nil {
		h.logger.Debug("command: remove range failed", zap.Error(err))
		return s, document.Handled
	}
	return s.Push(c.WithSelections(s.Selection(), c.SelectionAfter()), t), document.Handled
}

// resetBlockType turns an empty styled first block back into plain text,
// the usual behavior for backspace at the very start of a heading.
func (h *Handler) resetBlockType(s document.State, key string) (document.State, document.Result) {
	c, err := s.Content().SetBlockType(document.Caret(key, 0), document.Unstyled)
	if err != nil {
		return s, document.Handled
	}
	return s.Push(c, document.ChangeBlockType), document.Handled
}
