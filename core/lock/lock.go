package lock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrLocked is returned when a key stays held for longer than the wait budget.
var ErrLocked = errors.New("resource is locked")

// Locker serialises writers on a key. The returned unlock func must be called once.
type Locker interface {
	Lock(ctx context.Context, key string) (unlock func(), err error)
}

// Noop never blocks. It is the default: without redis, the database
// transaction is the only mutual exclusion.
type Noop struct{}

// Lock implements Locker.
func (Noop) Lock(ctx context.Context, key string) (func(), error) {
	return func() {}, nil
}

// New returns a redis-backed locker when cfg.RedisAddr is set, otherwise Noop.
func New(cfg Config) Locker {
	if cfg.RedisAddr == "" {
		return Noop{}
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:        cfg.RedisAddr,
		Password:    cfg.RedisPassword,
		DB:          cfg.RedisDB,
		DialTimeout: 2 * time.Second,
	})
	return NewRedis(rdb, cfg)
}

// Redis is a SET NX PX lock with token-checked release.
type Redis struct {
	rdb   *redis.Client
	ttl   time.Duration
	wait  time.Duration
	retry time.Duration
}

// releaseScript deletes the key only if it still carries our token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0`)

// NewRedis wraps an existing client.
func NewRedis(rdb *redis.Client, cfg Config) *Redis {
	ttl := time.Duration(cfg.TTLSeconds) * time.Second
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	wait := time.Duration(cfg.WaitMillis) * time.Millisecond
	if wait < 0 {
		wait = 0
	}
	return &Redis{rdb: rdb, ttl: ttl, wait: wait, retry: 50 * time.Millisecond}
}

// Lock implements Locker.
func (r *Redis) Lock(ctx context.Context, key string) (func(), error) {
	token := uuid.NewString()
	deadline := time.Now().Add(r.wait)

	for {
		ok, err := r.rdb.SetNX(ctx, key, token, r.ttl).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to acquire lock %s: %w", key, err)
		}
		if ok {
			return func() {
				// Fresh context: the caller's may already be cancelled.
				releaseCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
				defer cancel()
				_ = releaseScript.Run(releaseCtx, r.rdb, []string{key}, token).Err()
			}, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("%w: %s", ErrLocked, key)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(r.retry):
		}
	}
}

// DocumentKey builds the lock key for a document's item collection.
func DocumentKey(kind string, documentID uint64) string {
	return fmt.Sprintf("order-items:lock:%s:%d", kind, documentID)
}
