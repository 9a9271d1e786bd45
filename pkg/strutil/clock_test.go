package strutil_test

import (
	"testing"
	"time"

	"strhelpers/pkg/strutil"

	"github.com/stretchr/testify/assert"
)

func TestRealClock_ReturnsCurrentTime(t *testing.T) {
	clock := strutil.RealClock{}

	before := time.Now()
	now := clock.Now()
	after := time.Now()

	assert.False(t, now.Before(before), "clock.Now() should not be before time.Now()")
	assert.False(t, now.After(after), "clock.Now() should not be after time.Now()")
}

func TestClockFunc(t *testing.T) {
	fixed := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	clock := strutil.ClockFunc(func() time.Time { return fixed })

	assert.Equal(t, fixed, clock.Now())
	assert.True(t, strutil.NewExpiryValidator(clock).Validate("01/26").Status)
}
