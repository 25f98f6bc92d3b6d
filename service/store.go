// file: service/store.go

package service

import (
	"context"
	"time"
)

// Store defines the contract for the key-value backing service.
// This abstraction decouples the scoring service from the concrete Redis
// implementation, enabling easier testing and future flexibility.
//
// The two read paths carry different failure contracts: Get propagates a
// backend failure to the caller, CacheGet degrades it to a miss, and
// CacheSet drops the write.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	CacheGet(ctx context.Context, key string) (string, bool)
	CacheSet(ctx context.Context, key string, value string, ttl time.Duration)
}
