package domain

import (
	"customers/pkg/result"
	"regexp"
	"strings"
	"unicode/utf8"
)

// EmailMaxLength is the maximum number of characters in an email address.
const EmailMaxLength = 256

var emailPattern = regexp.MustCompile(`^(.+)@(.+)$`)

// Email is a validated, trimmed email address. Only the local@domain shape is
// checked.
type Email struct {
	value string
}

// CreateEmail validates raw and returns the trimmed Email. Emptiness is checked
// before length, and length before the address pattern.
func CreateEmail(raw result.Maybe[string]) result.Of[Email] {
	if raw.HasNoValue() {
		return result.FailOf[Email]("Email should not be empty")
	}

	email := strings.TrimSpace(raw.Value())
	if email == "" {
		return result.FailOf[Email]("Email should not be empty")
	}
	if utf8.RuneCountInString(email) > EmailMaxLength {
		return result.FailOf[Email]("Email is too long")
	}
	if !emailPattern.MatchString(email) {
		return result.FailOf[Email]("Email is invalid")
	}

	return result.OkOf(Email{value: email})
}

// MustEmail is like CreateEmail but panics when raw is not a valid address.
func MustEmail(raw string) Email {
	return CreateEmail(result.Some(raw)).Value()
}

// String returns the address text.
func (e Email) String() string { return e.value }
