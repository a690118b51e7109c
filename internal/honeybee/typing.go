package honeybee

import (
	"strings"

	"github.com/google/uuid"
)

// CleanString replaces every character that is not allowed in a Honeybee
// identifier with an underscore. Allowed characters are letters, digits,
// underscore and hyphen; anything else (spaces, unicode, punctuation) is
// rewritten so the identifier survives every simulation engine downstream.
func CleanString(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

// CleanAndIDString cleans the string and appends an 8-character uuid suffix,
// which is how unnamed Rhino objects get stable unique identifiers.
func CleanAndIDString(s string) string {
	return CleanString(s) + "_" + uuid.NewString()[:8]
}
