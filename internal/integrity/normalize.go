package integrity

import "strings"

// NormalizeCode returns the canonical stored form of a human-assigned
// short code: whitespace-trimmed and upper-cased. No character-set
// validation happens here; any printable string is accepted.
// Normalizing twice equals normalizing once.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
