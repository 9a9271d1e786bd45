package strutil

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// CapitalizeFirst trims text and uppercases its first character.
// The rest of the trimmed text is returned unchanged.
func CapitalizeFirst(text string) (string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", newError(KindEmptyInput, msgStringNotProvided)
	}

	first, size := utf8.DecodeRuneInString(trimmed)
	return string(unicode.ToUpper(first)) + trimmed[size:], nil
}
