// Package strutil provides small, pure string helpers: capitalizing text,
// extracting digits, validating card expiry strings, truncating with an
// ellipsis and grouping digit strings with Indian or International separators.
//
// All functions are safe for concurrent use. Failures are reported as *Error
// values carrying a Kind, so callers can match them with errors.Is against the
// sentinel errors in this package:
//
//	if _, err := strutil.GroupDigits("12a4"); errors.Is(err, strutil.ErrNonDigitCharacter) {
//		// ...
//	}
//
// ValidateCardExpiry is the exception: a malformed or expired expiry is a
// normal negative result, returned as an ExpiryResult rather than an error.
package strutil
