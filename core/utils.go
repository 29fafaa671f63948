package core

import "strings"

// Record lifecycle labels. A record's Status only ever becomes StatusDeleted
// through a soft delete.
const (
	StatusActive  = "Active"
	StatusDeleted = "Deleted"
)

// CleanString trims all leading and trailing whitespace in `s` and optionally lowers it.
func CleanString(s string, lower ...bool) string {
	s = strings.TrimSpace(s)
	if len(lower) > 0 && lower[0] {
		return strings.ToLower(s)
	}
	return s
}
