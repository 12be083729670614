// Package document implements the pure, immutable rich-text model for scribe.
//
// A document is an ordered sequence of blocks. Offsets inside a block are
// 0-based grapheme offsets; ranges are half-open: [Start, End).
// Every modifier returns a new value and never mutates its receiver.
package document
