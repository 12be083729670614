package command

import (
	"go.uber.org/zap"

	"github.com/iw2rmb/scribe/document"
)

// Command names a key command.
type Command string

const (
	Bold          Command = "bold"
	Italic        Command = "italic"
	Underline     Command = "underline"
	Code          Command = "code"
	Strikethrough Command = "strikethrough"
	Backspace     Command = "backspace"
	Delete        Command = "delete"
	SplitBlock    Command = "split-block"
	Undo          Command = "undo"
	Redo          Command = "redo"
)

var inlineCommands = map[Command]document.InlineStyle{
	Bold:          document.Bold,
	Italic:        document.Italic,
	Underline:     document.Underline,
	Code:          document.Code,
	Strikethrough: document.Strikethrough,
}

// Handler dispatches key commands against a state.
type Handler struct {
	logger *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{logger: logger}
}

// HandleKeyCommand applies cmd to s. Unknown commands are NotHandled so the
// surface can fall back to its own behavior.
func (h *Handler) HandleKeyCommand(s document.State, cmd Command) (document.State, document.Result) {
	if style, ok := inlineCommands[cmd]; ok {
		return h.toggleInlineStyle(s, style)
	}
	switch cmd {
	case Backspace:
		return h.deleteBackward(s)
	case Delete:
		return h.deleteForward(s)
	case SplitBlock:
		return h.splitBlock(s)
	case Undo:
		next, _ := s.Undo()
		return next, document.Handled
	case Redo:
		next, _ := s.Redo()
		return next, document.Handled
	default:
		return s, document.NotHandled
	}
}

var defaultHandler = NewHandler(nil)

// HandleKeyCommand applies cmd with a handler that does not log.
func HandleKeyCommand(s document.State, cmd Command) (document.State, document.Result) {
	return defaultHandler.HandleKeyCommand(s, cmd)
}

// toggleInlineStyle toggles style over a range selection, or flips it in the
// pending override for a caret.
func (h *Handler) toggleInlineStyle(s document.State, style document.InlineStyle) (document.State, document.Result) {
	sel := s.Selection()
	if _, ok := s.Content().Block(sel.StartKey()); !ok {
		return s, document.Handled
	}
	if sel.Collapsed() {
		return s.WithInlineStyleOverride(document.ToggleStyle(s.CurrentInlineStyle(), style)), document.Handled
	}
	c, err := s.Content().ToggleInlineStyle(sel, style)
	if err != nil {
		h.logger.Warn("command: toggle inline style failed", zap.String("style", string(style)), zap.Error(err))
		return s, document.Handled
	}
	return s.Push(c.WithSelections(sel, sel), document.ChangeInlineStyle), document.Handled
}
