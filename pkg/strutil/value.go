package strutil

// The *Value variants accept untyped input, such as values decoded from JSON
// into an any, and check the type before delegating to the typed helper.

// CapitalizeFirstValue is CapitalizeFirst for untyped input.
func CapitalizeFirstValue(v any) (string, error) {
	text, ok := v.(string)
	if !ok {
		return "", newError(KindTypeMismatch, msgNotAString)
	}
	return CapitalizeFirst(text)
}

// ExtractDigitsValue is ExtractDigits for untyped input.
// The type is checked before emptiness, so nil is a type mismatch.
func ExtractDigitsValue(v any) (string, error) {
	text, ok := v.(string)
	if !ok {
		return "", newError(KindTypeMismatch, msgNotAString)
	}
	return ExtractDigits(text)
}

// TruncateWithEllipsisValue is TruncateWithEllipsis for untyped input.
// Any non-string, nil included, is invalid input.
func TruncateWithEllipsisValue(v any, limit ...int) (string, error) {
	text, ok := v.(string)
	if !ok {
		return "", newError(KindInvalidInput, msgInvalidText)
	}
	return TruncateWithEllipsis(text, limit...)
}

// GroupDigitsValue is GroupDigits for untyped input.
// nil means no digits were provided; any other non-string is a type mismatch.
func GroupDigitsValue(v any, format ...Format) (string, error) {
	if v == nil {
		return "", newError(KindEmptyInput, msgNoDigits)
	}
	digits, ok := v.(string)
	if !ok {
		return "", newError(KindTypeMismatch, msgNotAString)
	}
	return GroupDigits(digits, format...)
}

// ValidateValue is Validate for untyped input.
func (v *ExpiryValidator) ValidateValue(value any) ExpiryResult {
	if value == nil {
		return invalidExpiry(KindEmptyInput, reasonNotProvided)
	}
	expiry, ok := value.(string)
	if !ok {
		return invalidExpiry(KindTypeMismatch, reasonNotString)
	}
	return v.Validate(expiry)
}

// ValidateCardExpiryValue is ValidateCardExpiry for untyped input.
func ValidateCardExpiryValue(value any) ExpiryResult {
	return NewExpiryValidator(RealClock{}).ValidateValue(value)
}
