package command

import (
	"go.uber.org/zap"

	"github.com/iw2rmb/scribe/document"
)

// maxKeyAttempts bounds key generation when a key function keeps colliding.
const maxKeyAttempts = 16

// splitBlock inserts a fresh empty unstyled block right after the block that
// holds the selection end and moves the caret to its start. The text of the
// current block is left untouched.
func (h *Handler) splitBlock(s document.State) (document.State, document.Result) {
	content := s.Content()
	sel := s.Selection()
	cur, ok := content.Block(sel.EndKey())
	if !ok {
		return s, document.Handled
	}

	key, ok := freshKey(content, s.NewKey)
	if !ok {
		h.logger.Warn("command: could not generate a unique block key")
		return s, document.Handled
	}

	c, err := content.InsertBlockAfter(cur.Key, document.Block{Key: key, Type: document.Unstyled})
	if err != nil {
		h.logger.Warn("command: split block failed", zap.Error(err))
		return s, document.Handled
	}
	h.logger.Debug("command: split block", zap.String("after", cur.Key), zap.String("key", key))
	return s.Push(c.WithSelections(sel, document.Caret(key, 0)), document.SplitBlockChange), document.Handled
}

func freshKey(c *document.Content, gen func() string) (string, bool) {
	for range maxKeyAttempts {
		key := gen()
		if _, taken := c.Block(key); key != "" && !taken {
			return key, true
		}
	}
	return "", false
}
