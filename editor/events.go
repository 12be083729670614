package editor

import "github.com/iw2rmb/scribe/document"

// ChangeEvent describes the state after an update that changed it.
type ChangeEvent struct {
	Version   uint64
	Selection document.Selection
	// Change is the last committed edit; ok is false before the first one.
	Change   document.Change
	ChangeOK bool

	Content *document.Content
	// Text is the plain text of all blocks joined by newlines.
	Text string
}

func buildChangeEvent(s document.State) ChangeEvent {
	ev := ChangeEvent{
		Version:   s.Version(),
		Selection: s.Selection(),
		Content:   s.Content(),
		Text:      s.Content().PlainText(),
	}
	ev.Change, ev.ChangeOK = s.LastChange()
	return ev
}

// SaveRequestedMsg is emitted on the save binding when Config.OnSave is nil.
type SaveRequestedMsg struct {
	State document.State
}
