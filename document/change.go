package document

// ChangeType labels a committed edit.
type ChangeType string

const (
	InsertCharacters   ChangeType = "insert-characters"
	BackspaceCharacter ChangeType = "backspace-character"
	DeleteCharacter    ChangeType = "delete-character"
	RemoveRangeChange  ChangeType = "remove-range"
	SplitBlockChange   ChangeType = "split-block"
	ChangeBlockType    ChangeType = "change-block-type"
	ChangeInlineStyle  ChangeType = "change-inline-style"
	ChangeUndo         ChangeType = "undo"
	ChangeRedo         ChangeType = "redo"
)

// Change describes the most recent committed transition of a State.
type Change struct {
	Type            ChangeType
	VersionBefore   uint64
	VersionAfter    uint64
	SelectionBefore Selection
	SelectionAfter  Selection
}

// LastChange returns the change that produced s, if any.
func (s State) LastChange() (Change, bool) {
	if !s.hasLastChange {
		return Change{}, false
	}
	return s.lastChange, true
}

// LastChangeType returns the type of the last change or "".
func (s State) LastChangeType() ChangeType {
	if !s.hasLastChange {
		return ""
	}
	return s.lastChange.Type
}

func (s State) commit(prev State, t ChangeType) State {
	s.version = prev.version + 1
	s.lastChange = Change{
		Type:            t,
		VersionBefore:   prev.version,
		VersionAfter:    s.version,
		SelectionBefore: prev.selection,
		SelectionAfter:  s.selection,
	}
	s.hasLastChange = true
	return s
}
