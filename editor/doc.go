// Package editor provides a Bubble Tea rich-text editor component backed by
// the document package.
//
// The package handles input, viewport behavior, grapheme-aware rendering of
// block types and inline styles, and host integration hooks (change events,
// save requests, clipboard). Spaces run through the autoformat detector
// before they are inserted; enter splits the current block.
package editor
