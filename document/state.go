package document

// Options configures a State.
type Options struct {
	HistoryLimit int // default: 1000
	// KeyFunc generates block keys for new blocks. Defaults to NewKey.
	KeyFunc func() string
}

// State is an immutable snapshot of the editor: content, selection, pending
// inline-style override, and undo/redo history.
//
// Every transition returns a new State; the receiver is never modified, so
// a host may keep old values as history or for change detection.
type State struct {
	content   *Content
	selection Selection

	override    []InlineStyle
	hasOverride bool

	version uint64
	hist    history
	opt     Options

	lastChange    Change
	hasLastChange bool
}

// NewState returns a state over content with the caret at the start of the
// first block.
func NewState(content *Content, opt Options) State {
	if opt.HistoryLimit == 0 {
		opt.HistoryLimit = 1000
	}
	if opt.KeyFunc == nil {
		opt.KeyFunc = NewKey
	}
	if content == nil || content.Len() == 0 {
		content = EmptyContent(opt.KeyFunc())
	}
	sel := Selection{}
	if first, ok := content.First(); ok {
		sel = Caret(first.Key, 0)
	}
	return State{
		content:   content.WithSelections(sel, sel),
		selection: sel,
		opt:       opt,
	}
}

// EmptyState returns a state holding a single empty unstyled block.
func EmptyState(opt Options) State {
	return NewState(nil, opt)
}

func (s State) Content() *Content { return s.content }

func (s State) Selection() Selection { return s.selection }

func (s State) Version() uint64 { return s.version }

func (s State) Options() Options { return s.opt }

// NewKey generates a block key using the state's key function.
func (s State) NewKey() string {
	if s.opt.KeyFunc == nil {
		return NewKey()
	}
	return s.opt.KeyFunc()
}

// InlineStyleOverride returns the pending style set applied to the next
// inserted characters, if one is set.
func (s State) InlineStyleOverride() ([]InlineStyle, bool) {
	if !s.hasOverride {
		return nil, false
	}
	return append([]InlineStyle(nil), s.override...), true
}

// CurrentInlineStyle returns the styles the next typed character receives:
// the override if set, otherwise the styles of the character before the
// caret (or at the caret when it sits at offset 0).
func (s State) CurrentInlineStyle() []InlineStyle {
	if s.hasOverride {
		return append([]InlineStyle(nil), s.override...)
	}
	start := s.selection.Start()
	b, ok := s.content.Block(start.Key)
	if !ok || b.Len() == 0 {
		return nil
	}
	if !s.selection.Collapsed() {
		return b.StylesAt(start.Offset)
	}
	if start.Offset > 0 {
		return b.StylesAt(start.Offset - 1)
	}
	return b.StylesAt(0)
}

// Push commits content as one discrete edit tagged with changeType.
//
// The previous content and selection become one undo step, redo history is
// cleared, and the selection moves to content.SelectionAfter(). Consecutive
// typing or deletion at an unmoved caret coalesces into a single undo step.
func (s State) Push(content *Content, changeType ChangeType) State {
	if content == nil || content == s.content {
		return s
	}

	next := s
	if !s.coalesces(content, changeType) {
		next.hist = s.hist.record(snapshot{content: s.content, selection: s.selection}, s.opt.HistoryLimit)
	} else {
		next.hist = history{undo: s.hist.undo}
	}
	next.hist.redo = nil
	next.content = content
	next.selection = content.ClampSelection(content.SelectionAfter())
	next.override = nil
	next.hasOverride = false
	return next.commit(s, changeType)
}

func (s State) coalesces(content *Content, changeType ChangeType) bool {
	if !s.hasLastChange || s.lastChange.Type != changeType {
		return false
	}
	switch changeType {
	case InsertCharacters, BackspaceCharacter, DeleteCharacter:
	default:
		return false
	}
	return len(s.hist.undo) > 0 && s.selection == content.SelectionBefore() && s.selection == s.lastChange.SelectionAfter
}

// WithSelection moves the selection without creating an undo step. Any
// pending inline-style override is dropped when the selection actually moves.
func (s State) WithSelection(sel Selection) State {
	sel = s.content.ClampSelection(sel)
	if sel == s.selection {
		return s
	}
	next := s
	next.selection = sel
	next.override = nil
	next.hasOverride = false
	next.version++
	return next
}

// WithInlineStyleOverride sets the style set applied to the next inserted
// characters. It neither creates an undo step nor bumps the version.
func (s State) WithInlineStyleOverride(styles []InlineStyle) State {
	next := s
	next.override = append([]InlineStyle(nil), styles...)
	sortStyles(next.override)
	next.hasOverride = true
	return next
}

func (s State) CanUndo() bool { return len(s.hist.undo) > 0 }

func (s State) CanRedo() bool { return len(s.hist.redo) > 0 }

// Undo restores the previous snapshot. It reports false when there is none.
func (s State) Undo() (State, bool) {
	if len(s.hist.undo) == 0 {
		return s, false
	}
	i := len(s.hist.undo) - 1
	prev := s.hist.undo[i]

	next := s
	next.hist = history{
		undo: s.hist.undo[:i:i],
		redo: appendSnapshot(s.hist.redo, snapshot{content: s.content, selection: s.selection}, 0),
	}
	next.content = prev.content
	next.selection = prev.selection
	next.override = nil
	next.hasOverride = false
	return next.commit(s, ChangeUndo), true
}

// Redo re-applies the most recently undone snapshot.
func (s State) Redo() (State, bool) {
	if len(s.hist.redo) == 0 {
		return s, false
	}
	i := len(s.hist.redo) - 1
	redo := s.hist.redo[i]

	next := s
	next.hist = history{
		undo: appendSnapshot(s.hist.undo, snapshot{content: s.content, selection: s.selection}, s.opt.HistoryLimit),
		redo: s.hist.redo[:i:i],
	}
	next.content = redo.content
	next.selection = redo.selection
	next.override = nil
	next.hasOverride = false
	return next.commit(s, ChangeRedo), true
}
