package document

type snapshot struct {
	content   *Content
	selection Selection
}

// history stacks are shared between States and therefore never appended to
// in place; appendSnapshot always copies.
type history struct {
	undo []snapshot
	redo []snapshot
}

func (h history) record(prev snapshot, limit int) history {
	return history{undo: appendSnapshot(h.undo, prev, limit)}
}

// appendSnapshot returns a new stack with s on top, keeping at most limit
// entries. limit == 0 means unbounded; limit < 0 disables recording.
func appendSnapshot(stack []snapshot, s snapshot, limit int) []snapshot {
	if limit < 0 {
		return stack
	}
	out := make([]snapshot, 0, len(stack)+1)
	out = append(out, stack...)
	out = append(out, s)
	if limit > 0 && len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out
}
