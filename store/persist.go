package store

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"github.com/iw2rmb/scribe/document"
)

// RestoreWarning reports a stored document that could not be decoded. It is
// recoverable: RestoreState returns an empty document alongside it.
type RestoreWarning struct {
	Key string
	Err error
}

func (w *RestoreWarning) Error() string {
	return fmt.Sprintf("store: discarded unreadable document %q: %v", w.Key, w.Err)
}

func (w *RestoreWarning) Unwrap() error { return w.Err }

// SaveState writes the content of state under key.
func SaveState(ctx context.Context, s Store, key string, state document.State) error {
	data, err := document.MarshalRaw(state.Content())
	if err != nil {
		return err
	}
	return errors.Wrapf(s.Save(ctx, key, data), "failed to save document %q", key)
}

// RestoreState loads the document stored under key.
//
// A missing key yields an empty document and a nil error. A stored value
// that does not decode yields an empty document and a *RestoreWarning. Any
// other load failure is returned as is, with an empty document.
func RestoreState(ctx context.Context, s Store, key string, opt document.Options) (document.State, error) {
	data, err := s.Load(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return document.EmptyState(opt), nil
	}
	if err != nil {
		return document.EmptyState(opt), err
	}

	content, err := document.UnmarshalRaw(data)
	if err != nil {
		return document.EmptyState(opt), &RestoreWarning{Key: key, Err: err}
	}
	return document.NewState(content, opt), nil
}
