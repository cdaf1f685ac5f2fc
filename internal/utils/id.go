package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewID returns an entity-prefixed opaque id ("t_", "ts_", ...). The prefix
// is a debugging convention only; nothing may rely on it.
func NewID(prefix string) string {
	return prefix + strings.ReplaceAll(uuid.NewString(), "-", "")
}
