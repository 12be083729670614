package editor

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/iw2rmb/scribe/autoformat"
	"github.com/iw2rmb/scribe/document"
)

// Config configures the editor Model.
type Config struct {
	// Initial document. Nil starts with a single empty block.
	Content *document.Content

	// Forwarded to document.Options.
	HistoryLimit int
	KeyFunc      func() string

	// Placeholder is shown while the document holds a single empty
	// unstyled block.
	Placeholder string
	// ShowBlockTypes prefixes every row with a short block type label.
	ShowBlockTypes bool
	WrapMode       WrapMode
	TabWidth       int
	ScrollPolicy   ScrollPolicy

	Style  Style
	KeyMap KeyMap

	ReadOnly  bool
	Clipboard Clipboard

	// Rules replaces the default autoformat rules when non-nil.
	Rules []autoformat.Rule

	// OnChange is called after any update that changes the document state
	// version (edits, undo/redo, selection moves).
	OnChange func(ChangeEvent)

	// OnSave handles the save binding. When nil, Update returns a command
	// that emits SaveRequestedMsg instead.
	OnSave func(document.State) tea.Cmd

	Logger *zap.Logger
}
