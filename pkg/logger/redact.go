package logger

import (
	"strings"

	"go.uber.org/zap"
)

// RedactEmail masks the local part of an address for logging.
// "jane.doe@x.com" becomes "ja***@x.com"; local parts of two characters or
// fewer are fully masked. Characters are counted in runes.
func RedactEmail(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return "***@***"
	}

	local, host := []rune(email[:at]), email[at+1:]
	if len(local) > 2 {
		return string(local[:2]) + "***@" + host
	}

	return "***@" + host
}

// Email returns a zap field holding the redacted address.
func Email(key, email string) zap.Field {
	return zap.String(key, RedactEmail(email))
}
