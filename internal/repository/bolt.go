package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"strhelpers/internal/domain"
)

var bucketUsage = []byte("usage")

// BoltRepository persists the usage ledger in a BoltDB file.
type BoltRepository struct {
	db *bbolt.DB
}

// usageDocument is the JSON shape stored per operation key.
type usageDocument struct {
	Calls         int64     `json:"calls"`
	Failures      int64     `json:"failures"`
	FirstCalledAt time.Time `json:"first_called_at"`
	LastCalledAt  time.Time `json:"last_called_at"`
}

// NewBoltRepository opens (or creates) the BoltDB file at path.
func NewBoltRepository(path string) (*BoltRepository, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketUsage)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create usage bucket: %w", err)
	}

	return &BoltRepository{db: db}, nil
}

// Record counts one call of op inside a single write transaction.
func (r *BoltRepository) Record(ctx context.Context, op domain.Operation, success bool, at time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return r.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketUsage)

		record := &domain.UsageRecord{Operation: op}
		if raw := b.Get([]byte(op)); raw != nil {
			decoded, err := decodeUsage(op, raw)
			if err != nil {
				return err
			}
			record = decoded
		}

		record.Apply(success, at)

		raw, err := encodeUsage(record)
		if err != nil {
			return err
		}
		return b.Put([]byte(op), raw)
	})
}

// Find retrieves the record for op.
func (r *BoltRepository) Find(ctx context.Context, op domain.Operation) (*domain.UsageRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var record *domain.UsageRecord
	err := r.db.View(func(tx *bbolt.Tx) error {
		raw := tx.Bucket(bucketUsage).Get([]byte(op))
		if raw == nil {
			return domain.ErrNotFound
		}
		decoded, err := decodeUsage(op, raw)
		if err != nil {
			return err
		}
		record = decoded
		return nil
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}

// List returns all stored records.
func (r *BoltRepository) List(ctx context.Context) ([]*domain.UsageRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var records []*domain.UsageRecord
	err := r.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketUsage).ForEach(func(k, v []byte) error {
			record, err := decodeUsage(domain.Operation(k), v)
			if err != nil {
				return err
			}
			records = append(records, record)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	sortRecords(records)
	return records, nil
}

// Close closes the database file.
func (r *BoltRepository) Close() error {
	if r.db == nil {
		return nil
	}
	return r.db.Close()
}

func encodeUsage(record *domain.UsageRecord) ([]byte, error) {
	raw, err := json.Marshal(usageDocument{
		Calls:         record.Calls,
		Failures:      record.Failures,
		FirstCalledAt: record.FirstCalledAt,
		LastCalledAt:  record.LastCalledAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode usage for %s: %w", record.Operation, err)
	}
	return raw, nil
}

func decodeUsage(op domain.Operation, raw []byte) (*domain.UsageRecord, error) {
	var doc usageDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode usage for %s: %w", op, err)
	}
	return &domain.UsageRecord{
		Operation:     op,
		Calls:         doc.Calls,
		Failures:      doc.Failures,
		FirstCalledAt: doc.FirstCalledAt,
		LastCalledAt:  doc.LastCalledAt,
	}, nil
}
