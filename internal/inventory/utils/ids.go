package utils

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// NewID generates a random ID with a prefix (used for projects and connections).
// Format: "prefix_hexstring" (e.g., "prj_a1b2c3d4e5f6...")
func NewID(prefix string) string {
	return fmt.Sprintf("%s_%s", prefix, strings.ReplaceAll(uuid.NewString(), "-", ""))
}

// HasPrefix reports whether id was produced by NewID with the given prefix.
func HasPrefix(id, prefix string) bool {
	return strings.HasPrefix(id, prefix+"_") && len(id) == len(prefix)+1+32
}
