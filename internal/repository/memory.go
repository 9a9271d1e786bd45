package repository

import (
	"context"
	"sync"
	"time"

	"strhelpers/internal/domain"
)

// MemoryRepository provides thread-safe in-memory storage.
type MemoryRepository struct {
	mu   sync.RWMutex
	data map[domain.Operation]*domain.UsageRecord
}

// NewMemoryRepository creates a new in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		data: make(map[domain.Operation]*domain.UsageRecord),
	}
}

// Record counts one call of op.
func (r *MemoryRepository) Record(ctx context.Context, op domain.Operation, success bool, at time.Time) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	record, exists := r.data[op]
	if !exists {
		record = &domain.UsageRecord{Operation: op}
		r.data[op] = record
	}

	record.Apply(success, at)
	return nil
}

// Find retrieves the record for op.
func (r *MemoryRepository) Find(ctx context.Context, op domain.Operation) (*domain.UsageRecord, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	record, exists := r.data[op]
	if !exists {
		return nil, domain.ErrNotFound
	}

	return record.Clone(), nil
}

// List returns copies of all records.
func (r *MemoryRepository) List(ctx context.Context) ([]*domain.UsageRecord, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	r.mu.RLock()
	records := make([]*domain.UsageRecord, 0, len(r.data))
	for _, record := range r.data {
		records = append(records, record.Clone())
	}
	r.mu.RUnlock()

	sortRecords(records)
	return records, nil
}

// Close is a no-op for the in-memory store.
func (r *MemoryRepository) Close() error {
	return nil
}
