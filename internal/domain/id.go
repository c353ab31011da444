package domain

import (
	"strings"

	"github.com/google/uuid"
)

// NewID builds a public identifier like "bkg_3f2a9c114b0d". Prefix carries
// the entity kind, the rest is 12 hex chars of a fresh UUID.
func NewID(prefix string) string {
	return prefix + strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}
