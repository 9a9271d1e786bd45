package strutil

import "strings"

// Format selects the digit grouping convention.
type Format int

const (
	// FormatIndian groups the last three digits, then pairs: 12,34,56,789.
	FormatIndian Format = iota

	// FormatInternational groups by thousands: 123,456,789.
	FormatInternational
)

const groupSeparator = ","

// String returns the lowercase name accepted by ParseFormat.
func (f Format) String() string {
	switch f {
	case FormatIndian:
		return "indian"
	case FormatInternational:
		return "international"
	default:
		return "unknown"
	}
}

// ParseFormat maps a format name to a Format. An empty name selects FormatIndian.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "indian":
		return FormatIndian, nil
	case "international":
		return FormatInternational, nil
	default:
		return 0, newError(KindInvalidFormat, msgUnknownFormat)
	}
}

// GroupDigits inserts "," separators into a digit-only string.
// Only the first format value is used; without one FormatIndian applies.
// Grouping is positional, so leading zeros are grouped like any other digit.
func GroupDigits(digits string, format ...Format) (string, error) {
	if digits == "" {
		return "", newError(KindEmptyInput, msgNoDigits)
	}
	for i := 0; i < len(digits); i++ {
		if !isDigit(digits[i]) {
			return "", newError(KindNonDigitCharacter, msgNotAllDigits)
		}
	}

	f := FormatIndian
	if len(format) > 0 {
		f = format[0]
	}

	switch f {
	case FormatIndian:
		return groupIndian(digits), nil
	case FormatInternational:
		return groupInternational(digits), nil
	default:
		return "", newError(KindInvalidFormat, msgUnknownFormat)
	}
}

func groupInternational(digits string) string {
	return joinGroups(digits, 3, 3)
}

func groupIndian(digits string) string {
	return joinGroups(digits, 3, 2)
}

// joinGroups splits digits from the right into one group of lastSize
// followed by groups of size, then joins them left to right.
func joinGroups(digits string, lastSize, size int) string {
	if len(digits) <= lastSize {
		return digits
	}

	head := digits[:len(digits)-lastSize]
	groups := []string{digits[len(digits)-lastSize:]}
	for len(head) > size {
		groups = append(groups, head[len(head)-size:])
		head = head[:len(head)-size]
	}
	groups = append(groups, head)

	var b strings.Builder
	b.Grow(len(digits) + len(groups) - 1)
	for i := len(groups) - 1; i >= 0; i-- {
		b.WriteString(groups[i])
		if i > 0 {
			b.WriteString(groupSeparator)
		}
	}
	return b.String()
}
