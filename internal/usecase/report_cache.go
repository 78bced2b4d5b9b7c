package usecase

import (
	"context"
	"time"
)

// ReportCache is the cache surface the usecases depend on. A nil cache is
// valid and means every computation runs fresh.
type ReportCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
}
