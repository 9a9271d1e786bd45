package domain

import "time"

// Operation names a helper exposed by the service.
type Operation string

const (
	OpCapitalize Operation = "capitalize"
	OpDigits     Operation = "digits"
	OpTruncate   Operation = "truncate"
	OpGroup      Operation = "group"
	OpCardExpiry Operation = "card-expiry"
)

// Operations lists every known operation in display order.
var Operations = []Operation{OpCapitalize, OpDigits, OpTruncate, OpGroup, OpCardExpiry}

// ParseOperation returns the Operation with the given name.
// Returns ErrUnknownOperation if no helper has that name.
func ParseOperation(name string) (Operation, error) {
	for _, op := range Operations {
		if string(op) == name {
			return op, nil
		}
	}
	return "", ErrUnknownOperation
}

// UsageRecord tracks how often an operation has been called.
type UsageRecord struct {
	Operation     Operation
	Calls         int64
	Failures      int64
	FirstCalledAt time.Time
	LastCalledAt  time.Time
}

// Apply counts one call made at the given time.
func (r *UsageRecord) Apply(success bool, at time.Time) {
	if r.FirstCalledAt.IsZero() {
		r.FirstCalledAt = at
	}
	r.Calls++
	if !success {
		r.Failures++
	}
	r.LastCalledAt = at
}

// Clone creates a copy of the record.
func (r *UsageRecord) Clone() *UsageRecord {
	return &UsageRecord{
		Operation:     r.Operation,
		Calls:         r.Calls,
		Failures:      r.Failures,
		FirstCalledAt: r.FirstCalledAt,
		LastCalledAt:  r.LastCalledAt,
	}
}
