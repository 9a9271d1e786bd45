package domain_test

import (
	"testing"
	"time"

	"strhelpers/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsageRecord_Apply(t *testing.T) {
	first := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	second := first.Add(time.Minute)

	record := &domain.UsageRecord{Operation: domain.OpGroup}
	record.Apply(true, first)
	record.Apply(false, second)

	assert.Equal(t, int64(2), record.Calls)
	assert.Equal(t, int64(1), record.Failures)
	assert.Equal(t, first, record.FirstCalledAt)
	assert.Equal(t, second, record.LastCalledAt)
}

func TestUsageRecord_Clone(t *testing.T) {
	original := &domain.UsageRecord{
		Operation:     domain.OpTruncate,
		Calls:         42,
		Failures:      3,
		FirstCalledAt: time.Now(),
		LastCalledAt:  time.Now(),
	}

	clone := original.Clone()
	assert.Equal(t, original, clone)

	// Should be independent (modifying clone doesn't affect original)
	clone.Calls = 100
	assert.Equal(t, int64(42), original.Calls)
}

func TestParseOperation(t *testing.T) {
	for _, op := range domain.Operations {
		got, err := domain.ParseOperation(string(op))
		require.NoError(t, err)
		assert.Equal(t, op, got)
	}

	_, err := domain.ParseOperation("shorten")
	assert.ErrorIs(t, err, domain.ErrUnknownOperation)
}
