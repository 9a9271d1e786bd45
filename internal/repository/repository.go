package repository

import (
	"context"
	"slices"
	"strings"
	"time"

	"strhelpers/internal/domain"
)

// Repository defines the contract for the usage ledger.
// All implementations must be thread-safe for concurrent access.
type Repository interface {
	// Record counts one call of op made at the given time, creating the
	// record on first use.
	Record(ctx context.Context, op domain.Operation, success bool, at time.Time) error

	// Find retrieves the record for op.
	// Returns domain.ErrNotFound if op has never been called.
	Find(ctx context.Context, op domain.Operation) (*domain.UsageRecord, error)

	// List returns every record, ordered by operation name.
	List(ctx context.Context) ([]*domain.UsageRecord, error)

	// Close releases any underlying resources.
	Close() error
}

func sortRecords(records []*domain.UsageRecord) {
	slices.SortFunc(records, func(a, b *domain.UsageRecord) int {
		return strings.Compare(string(a.Operation), string(b.Operation))
	})
}
