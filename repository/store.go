// file: repository/store.go

package repository

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"scoring-api/config"
	"scoring-api/logger"
)

// Store wraps the Redis backing service with a bounded retry-and-reconnect
// policy. Get propagates the final failure to the caller; CacheGet and
// CacheSet degrade it to a miss and a dropped write respectively, so the
// scoring path stays available when the backend is down.
type Store struct {
	addr     string
	password string
	db       int
	timeout  time.Duration
	retries  int

	mu     sync.Mutex
	client *redis.Client
}

func NewStore(cfg config.RedisConfig) *Store {
	s := &Store{
		addr:     net.JoinHostPort(cfg.Host, cfg.Port),
		password: cfg.Password,
		db:       cfg.DB,
		timeout:  cfg.Timeout,
		retries:  cfg.Retries,
	}
	s.client = s.connect()
	return s
}

// Ping probes the backend once. Callers decide whether failure is fatal.
func (s *Store) Ping(ctx context.Context) error {
	return s.current().Ping(ctx).Err()
}

func (s *Store) Close() error {
	return s.current().Close()
}

func (s *Store) connect() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         s.addr,
		Password:     s.password,
		DB:           s.db,
		DialTimeout:  s.timeout,
		ReadTimeout:  s.timeout,
		WriteTimeout: s.timeout,
		// The retry loop below is the single authority on attempt count.
		MaxRetries: -1,
	})
}

func (s *Store) current() *redis.Client {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.client
}

// reconnect atomically replaces the client handle so the next attempt
// starts from a fresh connection pool.
func (s *Store) reconnect() {
	fresh := s.connect()
	s.mu.Lock()
	old := s.client
	s.client = fresh
	s.mu.Unlock()
	if old != nil {
		_ = old.Close()
	}
}

// execWithRetry runs op up to the configured attempt count, rebuilding the
// client between attempts on connection failure. Any non-connection error
// (including redis.Nil) is returned immediately.
func (s *Store) execWithRetry(op func(c *redis.Client) error) error {
	var err error
	for attempt := 0; attempt < s.retries; attempt++ {
		if attempt > 0 {
			s.reconnect()
		}
		err = op(s.current())
		if err == nil || !isConnError(err) {
			return err
		}
	}
	return err
}

func isConnError(err error) bool {
	if err == nil || errors.Is(err, redis.Nil) {
		return false
	}
	var netErr net.Error
	return errors.As(err, &netErr) ||
		errors.Is(err, io.EOF) ||
		errors.Is(err, context.DeadlineExceeded)
}

// Get is the persistent read: a missing key is reported as absent, a
// backend failure that survives all retries is returned as an error.
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	var val string
	err := s.execWithRetry(func(c *redis.Client) error {
		v, err := c.Get(ctx, key).Result()
		if err != nil {
			return err
		}
		val = v
		return nil
	})
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("store get %q: %w", key, err)
	}
	return val, true, nil
}

// CacheGet is the best-effort read: a backend failure is indistinguishable
// from a real miss.
func (s *Store) CacheGet(ctx context.Context, key string) (string, bool) {
	val, found, err := s.Get(ctx, key)
	if err != nil {
		logger.Log.WithError(err).WithField("key", key).Warn("cache read failed, treating as miss")
		return "", false
	}
	return val, found
}

// CacheSet is the best-effort write: on final failure the value is dropped.
func (s *Store) CacheSet(ctx context.Context, key string, value string, ttl time.Duration) {
	err := s.execWithRetry(func(c *redis.Client) error {
		return c.Set(ctx, key, value, ttl).Err()
	})
	if err != nil {
		logger.Log.WithError(err).WithField("key", key).Warn("cache write failed, dropping value")
	}
}
