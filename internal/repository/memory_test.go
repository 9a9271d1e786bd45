package repository_test

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"strhelpers/internal/domain"
	"strhelpers/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// implementations returns a fresh instance of every Repository for contract tests.
func implementations(t *testing.T) map[string]repository.Repository {
	t.Helper()

	bolt, err := repository.NewBoltRepository(filepath.Join(t.TempDir(), "usage.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = bolt.Close() })

	return map[string]repository.Repository{
		"memory": repository.NewMemoryRepository(),
		"bolt":   bolt,
	}
}

func TestRepository_Record_CreatesOnFirstUse(t *testing.T) {
	for name, repo := range implementations(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			at := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

			err := repo.Record(ctx, domain.OpCapitalize, true, at)
			require.NoError(t, err)

			found, err := repo.Find(ctx, domain.OpCapitalize)
			require.NoError(t, err)
			assert.Equal(t, domain.OpCapitalize, found.Operation)
			assert.Equal(t, int64(1), found.Calls)
			assert.Equal(t, int64(0), found.Failures)
			assert.True(t, at.Equal(found.FirstCalledAt))
			assert.True(t, at.Equal(found.LastCalledAt))
		})
	}
}

func TestRepository_Record_Accumulates(t *testing.T) {
	for name, repo := range implementations(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			first := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
			last := first.Add(time.Hour)

			require.NoError(t, repo.Record(ctx, domain.OpGroup, true, first))
			require.NoError(t, repo.Record(ctx, domain.OpGroup, false, first.Add(time.Minute)))
			require.NoError(t, repo.Record(ctx, domain.OpGroup, false, last))

			found, err := repo.Find(ctx, domain.OpGroup)
			require.NoError(t, err)
			assert.Equal(t, int64(3), found.Calls)
			assert.Equal(t, int64(2), found.Failures)
			assert.True(t, first.Equal(found.FirstCalledAt))
			assert.True(t, last.Equal(found.LastCalledAt))
		})
	}
}

func TestRepository_Find_NotFound(t *testing.T) {
	for name, repo := range implementations(t) {
		t.Run(name, func(t *testing.T) {
			_, err := repo.Find(context.Background(), domain.OpTruncate)
			assert.ErrorIs(t, err, domain.ErrNotFound)
		})
	}
}

func TestRepository_Find_ReturnsCopy(t *testing.T) {
	for name, repo := range implementations(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, repo.Record(ctx, domain.OpDigits, true, time.Now()))

			found, err := repo.Find(ctx, domain.OpDigits)
			require.NoError(t, err)
			found.Calls = 999

			again, err := repo.Find(ctx, domain.OpDigits)
			require.NoError(t, err)
			assert.Equal(t, int64(1), again.Calls)
		})
	}
}

func TestRepository_List_SortedByOperation(t *testing.T) {
	for name, repo := range implementations(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			empty, err := repo.List(ctx)
			require.NoError(t, err)
			assert.Empty(t, empty)

			for _, op := range []domain.Operation{domain.OpTruncate, domain.OpCapitalize, domain.OpGroup} {
				require.NoError(t, repo.Record(ctx, op, true, time.Now()))
			}

			records, err := repo.List(ctx)
			require.NoError(t, err)
			require.Len(t, records, 3)
			assert.Equal(t, domain.OpCapitalize, records[0].Operation)
			assert.Equal(t, domain.OpGroup, records[1].Operation)
			assert.Equal(t, domain.OpTruncate, records[2].Operation)
		})
	}
}

func TestRepository_Record_Concurrent(t *testing.T) {
	for name, repo := range implementations(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			const numGoroutines = 10
			const callsPerGoroutine = 10
			expectedTotal := int64(numGoroutines * callsPerGoroutine)

			var wg sync.WaitGroup
			wg.Add(numGoroutines)

			for i := 0; i < numGoroutines; i++ {
				go func() {
					defer wg.Done()
					for j := 0; j < callsPerGoroutine; j++ {
						err := repo.Record(ctx, domain.OpCardExpiry, j%5 != 0, time.Now())
						assert.NoError(t, err)
					}
				}()
			}

			wg.Wait()

			found, err := repo.Find(ctx, domain.OpCardExpiry)
			require.NoError(t, err)
			assert.Equal(t, expectedTotal, found.Calls,
				"call count should be exactly %d after concurrent records", expectedTotal)
			assert.Equal(t, int64(numGoroutines*2), found.Failures)
		})
	}
}

func TestRepository_RespectsContextCancellation(t *testing.T) {
	for name, repo := range implementations(t) {
		t.Run(name, func(t *testing.T) {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			err := repo.Record(ctx, domain.OpGroup, true, time.Now())
			assert.ErrorIs(t, err, context.Canceled)

			_, err = repo.Find(ctx, domain.OpGroup)
			assert.ErrorIs(t, err, context.Canceled)

			_, err = repo.List(ctx)
			assert.ErrorIs(t, err, context.Canceled)
		})
	}
}
