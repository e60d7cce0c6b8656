package utils

import (
	"strings"
	"unicode/utf8"
)

// DecodeBody converts a raw request body to text for logging.
// Invalid UTF-8 sequences are replaced with U+FFFD instead of failing.
func DecodeBody(body []byte) string {
	if utf8.Valid(body) {
		return string(body)
	}
	return strings.ToValidUTF8(string(body), "�")
}

// Truncate shortens s to at most max bytes, never splitting a rune, and
// marks the cut with an ellipsis. A max of zero or less disables truncation.
func Truncate(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "…"
}

// CloneParams copies a parameter map whose strings may alias request buffers,
// so it can outlive the request.
func CloneParams(params map[string]string) map[string]string {
	out := make(map[string]string, len(params))
	for k, v := range params {
		out[strings.Clone(k)] = strings.Clone(v)
	}
	return out
}
