package service

import "regexp"

// emailPattern requires a local part, an @, and a dotted domain, with no
// whitespace anywhere. Contact strings that merely contain an @ do not pass.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsEmailAddress reports whether s has the shape of a deliverable email
// address.
func IsEmailAddress(s string) bool {
	return emailPattern.MatchString(s)
}
