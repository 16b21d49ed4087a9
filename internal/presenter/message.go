package presenter

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vardovia/vardovia/internal/game"
)

// DefaultMessage is shown when nothing usable can be extracted.
const DefaultMessage = "An unknown error occurred"

// errorMarker prefixes a model-side failure reason inside server errors.
const errorMarker = "ERROR_JSON:"

// MaxMessageLength is the longest failure message shown before truncation.
const MaxMessageLength = 100

// FailureMessage picks the message to show for a non-OK response. Textual
// messages are unwrapped, stripped and truncated; anything else is shown as
// compact JSON.
func FailureMessage(data game.ResponseData) string {
	selected := selectMessage(data.Error, data.Detail, data.Message)
	msg, ok := selected.(string)
	if !ok {
		return encode(selected)
	}
	msg = afterMarker(msg)
	msg = StripWrapping(msg)
	return Truncate(msg)
}

// ExceptionMessage picks the message to show for a failed call. The error
// text may itself be a JSON error object; otherwise everything after the
// first colon is kept, with each colon-separated segment trimmed and rejoined
// by ": ". No truncation is applied.
func ExceptionMessage(err error) string {
	msg := ""
	if err != nil {
		msg = err.Error()
	}
	if msg == "" {
		msg = DefaultMessage
	}

	var parsed any
	if jsonErr := json.Unmarshal([]byte(msg), &parsed); jsonErr == nil {
		if obj, ok := parsed.(map[string]any); ok {
			msg = textOf(selectMessageOr(msg, obj["error"], obj["detail"], obj["message"]))
		}
	} else if parts := strings.Split(msg, ":"); len(parts) > 1 {
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		msg = strings.Join(parts[1:], ": ")
	}

	return StripWrapping(msg)
}

// StripWrapping removes one leading and one trailing double quote, then one
// leading '[' and one trailing ']', then surrounding whitespace.
func StripWrapping(s string) string {
	s = strings.TrimPrefix(s, `"`)
	s = strings.TrimSuffix(s, `"`)
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")
	return strings.TrimSpace(s)
}

// Truncate shortens messages longer than MaxMessageLength characters. It cuts
// after the first sentence terminator when there is one, otherwise it keeps
// MaxMessageLength characters and appends "...".
func Truncate(s string) string {
	if utf8.RuneCountInString(s) <= MaxMessageLength {
		return s
	}
	if i := strings.IndexAny(s, ".!?"); i >= 0 {
		return s[:i+1]
	}
	runes := []rune(s)
	return string(runes[:MaxMessageLength]) + "..."
}

// afterMarker returns the text between the first error marker and the next
// one, trimmed. Messages without a marker, or with nothing after it, are
// returned unchanged.
func afterMarker(s string) string {
	i := strings.Index(s, errorMarker)
	if i < 0 {
		return s
	}
	rest := s[i+len(errorMarker):]
	if j := strings.Index(rest, errorMarker); j >= 0 {
		rest = rest[:j]
	}
	if rest = strings.TrimSpace(rest); rest == "" {
		return s
	}
	return rest
}

func selectMessage(candidates ...any) any {
	return selectMessageOr(DefaultMessage, candidates...)
}

// selectMessageOr returns the first truthy candidate: null, "", false and 0
// are all treated as absent.
func selectMessageOr(fallback any, candidates ...any) any {
	for _, c := range candidates {
		if !falsy(c) {
			return c
		}
	}
	return fallback
}

func falsy(v any) bool {
	switch v := v.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case bool:
		return !v
	case float64:
		return v == 0
	case int:
		return v == 0
	}
	return false
}

func textOf(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return encode(v)
}

func encode(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}

// errNoResponse stands in for a call that returned neither a response nor an
// error. Its empty text falls back to DefaultMessage.
var errNoResponse = errors.New("")
