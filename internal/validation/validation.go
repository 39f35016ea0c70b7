package validation

import (
	"fmt"
	"regexp"
	"strings"
)

// LanguagePattern defines a valid ISO 639-1 language code: exactly two
// lowercase latin letters
var LanguagePattern = regexp.MustCompile(`^[a-z]{2}$`)

// MaxUsernameLen is the maximum accepted username length
const MaxUsernameLen = 64

// ValidateUsername checks that a username is usable as a login and as a
// path segment of the verification request
func ValidateUsername(username string) error {
	if username == "" {
		return fmt.Errorf("username cannot be empty")
	}
	if len(username) > MaxUsernameLen {
		return fmt.Errorf("username must not exceed %d characters", MaxUsernameLen)
	}
	if strings.ContainsAny(username, " \t\r\n") {
		return fmt.Errorf("username must not contain whitespace")
	}
	return nil
}

// ValidateLanguage checks that a language code is a two-letter ISO 639-1
// code, e.g. "en" or "fi"
func ValidateLanguage(code string) error {
	if !LanguagePattern.MatchString(code) {
		return fmt.Errorf("language must be a two-letter ISO 639-1 code, got %q", code)
	}
	return nil
}
