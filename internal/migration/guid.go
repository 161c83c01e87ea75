package migration

import (
	"regexp"

	"github.com/google/uuid"
)

// guidPattern matches the canonical-id shape used across the stored data:
// 36 characters of hex digits and hyphens. Stricter UUID version/variant
// checks would reject identifiers earlier passes already persisted.
var guidPattern = regexp.MustCompile(`^[0-9a-fA-F-]{36}$`)

// IsGUID reports whether s is a canonical identifier.
func IsGUID(s string) bool {
	return guidPattern.MatchString(s)
}

// NewGUID mints a canonical identifier.
func NewGUID() string {
	return uuid.NewString()
}

// guidValue returns v as a canonical identifier, or "" when v is not a
// GUID-shaped string.
func guidValue(v interface{}) (string, bool) {
	s, ok := v.(string)
	if !ok || !IsGUID(s) {
		return "", false
	}
	return s, true
}
