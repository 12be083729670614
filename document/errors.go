package document

import "github.com/pkg/errors"

var (
	// ErrBlockNotFound is returned when a selection or key names a block that
	// is not part of the content.
	ErrBlockNotFound = errors.New("block not found")
	// ErrDuplicateKey is returned when two blocks share a key.
	ErrDuplicateKey = errors.New("duplicate block key")
	// ErrInvalidRaw is returned by FromRaw for structurally invalid input.
	ErrInvalidRaw = errors.New("invalid raw content")
)

// invalidRawError matches ErrInvalidRaw as well as its cause, so a duplicate
// key in raw input is both ErrInvalidRaw and ErrDuplicateKey.
type invalidRawError struct {
	cause error
}

func (e *invalidRawError) Error() string {
	return ErrInvalidRaw.Error() + ": " + e.cause.Error()
}

func (e *invalidRawError) Unwrap() []error { return []error{ErrInvalidRaw, e.cause} }
