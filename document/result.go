package document

// Result tells the editing surface whether an input or command was consumed.
type Result uint8

const (
	// NotHandled means the surface should apply its default behavior.
	NotHandled Result = iota
	// Handled means the input was consumed; the returned State is current.
	Handled
)

func (r Result) String() string {
	if r == Handled {
		return "handled"
	}
	return "not-handled"
}
