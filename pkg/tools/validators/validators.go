package validators

import "regexp"

var (
	passwordRegex = regexp.MustCompile("^.{6,24}$")
	emailRegex    = regexp.MustCompile("^[^\\s@]+@[^\\s@]+\\.[^\\s@]+$")
)

// Password reports whether the password satisfies the length policy
func Password(password string) bool {
	return passwordRegex.MatchString(password)
}

// Email reports whether the string looks like an email address
func Email(email string) bool {
	return emailRegex.MatchString(email)
}
