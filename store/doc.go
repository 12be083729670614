// Package store persists documents to a key-value store.
//
// A document is saved as the JSON encoding of its raw form (see
// document.ToRaw) under a single key. Backends only move bytes; SaveState
// and RestoreState own the encoding.
package store
