package store

import (
	"context"

	"github.com/pkg/errors"
)

// DefaultKey is the key documents are saved under unless configured otherwise.
const DefaultKey = "editor-content"

// ErrNotFound is returned by Load when nothing is stored under the key.
var ErrNotFound = errors.New("store: key not found")

// Store is a key-value byte store. Implementations are safe for concurrent use.
type Store interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
}

func checkKey(key string) error {
	if key == "" {
		return errors.New("store: empty key")
	}
	return nil
}
