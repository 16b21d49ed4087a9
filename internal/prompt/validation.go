package prompt

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// MaxActionLength bounds a typed action. The server forwards it into a model
// prompt, so essays are refused up front.
const MaxActionLength = 300

// ValidateNotEmpty returns an error if the string is empty or whitespace-only.
func ValidateNotEmpty(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("value cannot be empty")
	}
	return nil
}

// ValidateAction accepts non-empty actions up to MaxActionLength characters.
func ValidateAction(s string) error {
	if err := ValidateNotEmpty(s); err != nil {
		return errors.New("type an action, or 'quit' to leave")
	}
	if utf8.RuneCountInString(strings.TrimSpace(s)) > MaxActionLength {
		return errors.New("action is too long")
	}
	return nil
}
