package autoformat

import (
	"github.com/iw2rmb/scribe/document"
	"github.com/iw2rmb/scribe/internal/grapheme"
)

// Window is the half-open grapheme range [Start, End) removed from the block
// when a rule fires.
type Window struct {
	Start int
	End   int
}

// MatchFunc inspects a block's text and the caret offset and returns the
// window to remove. Implementations must check their integer offset guards
// before looking at characters.
type MatchFunc func(text string, caret int) (Window, bool)

// Edit is the in-progress result handed to a Transform: content with the
// marker removed and a caret at the marker start.
type Edit struct {
	Content *document.Content
	Caret   document.Point

	// Override, when non-nil, becomes the pending inline-style override of the
	// resulting state.
	Override []document.InlineStyle
}

// Transform applies a rule's formatting to e.
type Transform func(e Edit) (Edit, error)

// Rule is one (predicate, transform) pair.
type Rule struct {
	Name      string
	Match     MatchFunc
	Transform Transform
}

// DefaultRules returns the built-in rules in priority order.
func DefaultRules() []Rule {
	return []Rule{
		{Name: "heading", Match: matchHeading, Transform: SetBlockType(document.HeaderOne)},
		{Name: "bold", Match: matchBold, Transform: ToggleStyleToEnd(document.Bold)},
		{Name: "red", Match: matchRed, Transform: ToggleStyleToEnd(document.ColorRed)},
		{Name: "underline-clear", Match: matchUnderlineClear, Transform: ToggleStyleToEnd(document.Underline)},
		{Name: "underline", Match: matchUnderline, Transform: ToggleStyleToEnd(document.Underline)},
	}
}

// "# " at offset 0.
func matchHeading(text string, caret int) (Window, bool) {
	start := caret - 1
	if start != 0 || grapheme.At(text, start) != "#" {
		return Window{}, false
	}
	return Window{Start: start, End: caret}, true
}

// "* " at offset 0.
func matchBold(text string, caret int) (Window, bool) {
	start := caret - 1
	if start != 0 || grapheme.At(text, start) != "*" {
		return Window{}, false
	}
	return Window{Start: start, End: caret}, true
}

// "** " at offsets 0-1.
func matchRed(text string, caret int) (Window, bool) {
	start := caret - 1
	if start != 1 || grapheme.At(text, start) != "*" || grapheme.At(text, start-1) != "*" {
		return Window{}, false
	}
	return Window{Start: start - 1, End: caret}, true
}

// "*** " at offsets 0-2: the whole block text is cleared.
func matchUnderlineClear(text string, caret int) (Window, bool) {
	start := caret - 3
	if start != 0 {
		return Window{}, false
	}
	if w, ok := grapheme.Window(text, start, caret); !ok || w != "***" {
		return Window{}, false
	}
	return Window{Start: 0, End: grapheme.Count(text)}, true
}

// "*** " preceded by at least one character: only the marker is removed.
func matchUnderline(text string, caret int) (Window, bool) {
	if caret-4 < 0 {
		return Window{}, false
	}
	start := caret - 3
	if w, ok := grapheme.Window(text, start, caret); !ok || w != "***" {
		return Window{}, false
	}
	return Window{Start: start, End: caret}, true
}
