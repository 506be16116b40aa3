package usecase

import (
	"context"
	"time"
)

// JobsCache is the slice of the Redis wrapper the usecases depend on. A nil
// cache is always a valid (no-op) collaborator.
type JobsCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	SetIfNotExists(ctx context.Context, key string, value string, ttl time.Duration) (bool, error)
	InvalidateJobLists(ctx context.Context) error
}
