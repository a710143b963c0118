package receipt

import "regexp"

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// IsValidEmail reports whether addr is a deliverable-looking address.
// Empty or non-matching input is simply invalid, never an error.
func IsValidEmail(addr string) bool {
	if addr == "" {
		return false
	}
	return emailPattern.MatchString(addr)
}
