package strutil

import "strings"

// DefaultTruncateLimit is the limit TruncateWithEllipsis uses when none is given.
const DefaultTruncateLimit = 10

const ellipsis = "..."

// TruncateWithEllipsis returns text unchanged when it has at most limit
// characters, otherwise its first limit characters followed by "...".
// Only the first limit value is used; without one DefaultTruncateLimit applies.
// Characters are counted as runes.
func TruncateWithEllipsis(text string, limit ...int) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", newError(KindInvalidInput, msgInvalidText)
	}

	n := DefaultTruncateLimit
	if len(limit) > 0 {
		n = limit[0]
	}
	if n < 0 {
		return "", newError(KindInvalidInput, msgNegativeLimit)
	}

	runes := []rune(text)
	if len(runes) <= n {
		return text, nil
	}
	return string(runes[:n]) + ellipsis, nil
}
