package document

import (
	"strings"

	"github.com/google/uuid"
)

// NewKey returns a fresh random block key.
func NewKey() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}
