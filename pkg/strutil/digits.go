package strutil

import "strings"

// ExtractDigits trims text and returns the ASCII digits it contains, in order.
// Text without any digit yields an empty string and no error.
func ExtractDigits(text string) (string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", newError(KindEmptyInput, msgStringNotProvided)
	}

	var b strings.Builder
	b.Grow(len(trimmed))
	for i := 0; i < len(trimmed); i++ {
		if isDigit(trimmed[i]) {
			b.WriteByte(trimmed[i])
		}
	}
	return b.String(), nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
