// Package autoformat turns markdown-style markers typed at the start of a
// block into formatting when the user presses space.
//
// Detection is an ordered list of rules. Each rule pairs a predicate over the
// text before the caret with a transform; the first rule that matches wins,
// its marker is removed, and the result is pushed as one undoable edit.
package autoformat
