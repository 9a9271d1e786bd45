package strutil

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	expiryLength  = 5
	expiryCentury = 2000

	reasonNotProvided = "Input not provided"
	reasonNotString   = "Expiry should be strings"
	reasonLength      = "Expiry should be exactly 5 characters length"
	reasonFormat      = `Invalid format. Should be like "01/26" or "11/30" in "MM/YY"`
	reasonExpired     = "Already Expired"
)

var expiryPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/[0-9]{2}$`)

// daysInMonth ignores leap years: February always has 28 days.
var daysInMonth = [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// ExpiryResult reports whether an MM/YY expiry is well formed and not yet past.
// A failed result carries one fixed Reason and the Kind of the failure.
type ExpiryResult struct {
	Status bool
	Reason string
	Kind   Kind
}

// Err returns nil for a valid result, otherwise an *Error with the result's kind and reason.
func (r ExpiryResult) Err() error {
	if r.Status {
		return nil
	}
	return newError(r.Kind, r.Reason)
}

func validExpiry() ExpiryResult {
	return ExpiryResult{Status: true}
}

func invalidExpiry(kind Kind, reason string) ExpiryResult {
	return ExpiryResult{Kind: kind, Reason: reason}
}

// ExpiryValidator checks card expiry strings against an injected clock.
type ExpiryValidator struct {
	clock Clock
}

// NewExpiryValidator creates an ExpiryValidator. A nil clock means RealClock.
func NewExpiryValidator(clock Clock) *ExpiryValidator {
	if clock == nil {
		clock = RealClock{}
	}
	return &ExpiryValidator{clock: clock}
}

// ValidateCardExpiry validates expiry against the system clock.
func ValidateCardExpiry(expiry string) ExpiryResult {
	return NewExpiryValidator(RealClock{}).Validate(expiry)
}

// Validate checks that expiry looks like "MM/YY" (surrounding whitespace
// allowed) and that the card is still usable. A card stays valid through the
// last day of its expiry month, up to local midnight of the following day in
// the clock's location.
func (v *ExpiryValidator) Validate(expiry string) ExpiryResult {
	if expiry == "" {
		return invalidExpiry(KindEmptyInput, reasonNotProvided)
	}

	trimmed := strings.TrimSpace(expiry)
	if utf8.RuneCountInString(trimmed) != expiryLength {
		return invalidExpiry(KindInvalidLength, reasonLength)
	}
	if !expiryPattern.MatchString(trimmed) {
		return invalidExpiry(KindInvalidFormat, reasonFormat)
	}

	// The pattern guarantees both parts are two ASCII digits.
	month, _ := strconv.Atoi(trimmed[:2])
	year, _ := strconv.Atoi(trimmed[3:])

	now := v.clock.Now()
	if !expiresAt(month, year, now.Location()).After(now) {
		return invalidExpiry(KindExpired, reasonExpired)
	}
	return validExpiry()
}

// expiresAt returns the first instant at which a card with the given
// month (1-12) and two-digit year is no longer valid: midnight in loc
// of the day after the month's last day.
func expiresAt(month, year int, loc *time.Location) time.Time {
	lastDay := daysInMonth[month]
	return time.Date(expiryCentury+year, time.Month(month), lastDay+1, 0, 0, 0, 0, loc)
}
