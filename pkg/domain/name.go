package domain

import (
	"customers/pkg/result"
	"strings"
	"unicode/utf8"
)

// NameMaxLength is the maximum number of characters in a customer name.
const NameMaxLength = 200

// Name is a validated, trimmed customer name.
type Name struct {
	value string
}

// CreateName validates raw and returns the trimmed Name.
func CreateName(raw result.Maybe[string]) result.Of[Name] {
	if raw.HasNoValue() {
		return result.FailOf[Name]("Customer name should not be empty")
	}

	name := strings.TrimSpace(raw.Value())
	if name == "" {
		return result.FailOf[Name]("Customer name should not be empty")
	}
	if utf8.RuneCountInString(name) > NameMaxLength {
		return result.FailOf[Name]("Customer name is too long")
	}

	return result.OkOf(Name{value: name})
}

// MustName is like CreateName but panics when raw is not a valid name.
func MustName(raw string) Name {
	return CreateName(result.Some(raw)).Value()
}

// String returns the name text.
func (n Name) String() string { return n.value }
