package service

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"strhelpers/internal/domain"
	"strhelpers/internal/repository"
	"strhelpers/pkg/strutil"
)

const tracerName = "strhelpers/service"

// HelperService runs the string helpers and keeps the usage ledger.
type HelperService struct {
	repo          repository.Repository
	clock         strutil.Clock
	expiry        *strutil.ExpiryValidator
	truncateLimit int
	logger        *slog.Logger
	tracer        trace.Tracer
}

// Option configures the HelperService.
type Option func(*HelperService)

// WithTruncateLimit sets the limit used when a truncate call omits one.
func WithTruncateLimit(limit int) Option {
	return func(s *HelperService) {
		s.truncateLimit = limit
	}
}

// WithLogger sets the logger used for ledger failures.
func WithLogger(logger *slog.Logger) Option {
	return func(s *HelperService) {
		s.logger = logger
	}
}

// WithTracer allows injecting a custom OpenTelemetry tracer.
func WithTracer(t trace.Tracer) Option {
	return func(s *HelperService) {
		s.tracer = t
	}
}

// NewHelperService creates a HelperService. Expiry checks and usage
// timestamps both read the given clock.
func NewHelperService(repo repository.Repository, clock strutil.Clock, opts ...Option) *HelperService {
	s := &HelperService{
		repo:          repo,
		clock:         clock,
		expiry:        strutil.NewExpiryValidator(clock),
		truncateLimit: strutil.DefaultTruncateLimit,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.tracer == nil {
		s.tracer = otel.Tracer(tracerName)
	}
	return s
}

// Capitalize trims the text and uppercases its first character.
func (s *HelperService) Capitalize(ctx context.Context, text any) (string, error) {
	return s.run(ctx, domain.OpCapitalize, func() (string, error) {
		return strutil.CapitalizeFirstValue(text)
	})
}

// ExtractDigits returns the ASCII digits of the text.
func (s *HelperService) ExtractDigits(ctx context.Context, text any) (string, error) {
	return s.run(ctx, domain.OpDigits, func() (string, error) {
		return strutil.ExtractDigitsValue(text)
	})
}

// Truncate shortens the text to limit characters plus an ellipsis.
// A nil limit means the service's configured default.
func (s *HelperService) Truncate(ctx context.Context, text any, limit *int) (string, error) {
	n := s.truncateLimit
	if limit != nil {
		n = *limit
	}
	return s.run(ctx, domain.OpTruncate, func() (string, error) {
		return strutil.TruncateWithEllipsisValue(text, n)
	}, attribute.Int("helper.limit", n))
}

// GroupDigits inserts separators into a digit string using the named format.
// An empty name selects Indian grouping. Invalid digits are reported before
// an unknown format name.
func (s *HelperService) GroupDigits(ctx context.Context, digits any, format string) (string, error) {
	return s.run(ctx, domain.OpGroup, func() (string, error) {
		f, formatErr := strutil.ParseFormat(format)
		grouped, err := strutil.GroupDigitsValue(digits, f)
		if err != nil {
			return "", err
		}
		if formatErr != nil {
			return "", formatErr
		}
		return grouped, nil
	}, attribute.String("helper.format", format))
}

// ValidateExpiry checks an MM/YY card expiry against the service clock.
// A negative result is counted as a failed call.
func (s *HelperService) ValidateExpiry(ctx context.Context, expiry any) strutil.ExpiryResult {
	var result strutil.ExpiryResult
	_, _ = s.run(ctx, domain.OpCardExpiry, func() (string, error) {
		result = s.expiry.ValidateValue(expiry)
		return "", result.Err()
	})
	return result
}

// Usage returns the usage record of one operation.
// Returns domain.ErrNotFound if the operation has not been called yet.
func (s *HelperService) Usage(ctx context.Context, op domain.Operation) (*domain.UsageRecord, error) {
	record, err := s.repo.Find(ctx, op)
	if err != nil {
		return nil, fmt.Errorf("finding usage for %s: %w", op, err)
	}
	return record, nil
}

// ListUsage returns the usage records of every operation called so far.
func (s *HelperService) ListUsage(ctx context.Context) ([]*domain.UsageRecord, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing usage: %w", err)
	}
	return records, nil
}

// run executes fn inside a span and records the call in the ledger.
// Ledger failures are logged and never change the helper's outcome.
func (s *HelperService) run(ctx context.Context, op domain.Operation, fn func() (string, error), attrs ...attribute.KeyValue) (string, error) {
	attrs = append(attrs, attribute.String("helper.operation", string(op)))
	ctx, span := s.tracer.Start(ctx, "helper."+string(op), trace.WithAttributes(attrs...))
	defer span.End()

	result, err := fn()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		span.SetAttributes(attribute.String("helper.error_kind", string(strutil.KindOf(err))))
	}

	if recErr := s.repo.Record(ctx, op, err == nil, s.clock.Now()); recErr != nil {
		s.logger.WarnContext(ctx, "failed to record usage",
			"operation", op,
			"error", recErr,
		)
	}

	return result, err
}
