package lock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

const defaultPollInterval = 100 * time.Millisecond

// releaseScript deletes the key only while it still holds our token.
var releaseScript = goredis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0`)

// Redis is a Locker backed by SET NX PX on a shared Redis.
type Redis struct {
	rdb    goredis.UniversalClient
	prefix string
	poll   time.Duration
}

// RedisOptions configures NewRedis.
type RedisOptions struct {
	Addr     string
	Password string
	DB       int
}

// NewRedis connects to Redis and verifies the connection.
func NewRedis(ctx context.Context, opts RedisOptions) (*Redis, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        opts.Addr,
		Password:    opts.Password,
		DB:          opts.DB,
		DialTimeout: 5 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return NewRedisFromClient(rdb), nil
}

// NewRedisFromClient wraps an existing client.
func NewRedisFromClient(rdb goredis.UniversalClient) *Redis {
	return &Redis{rdb: rdb, prefix: "skilleval:lock:", poll: defaultPollInterval}
}

// Close closes the underlying client.
func (r *Redis) Close() error {
	return r.rdb.Close()
}

// Acquire implements Locker by polling SET NX until it wins.
func (r *Redis) Acquire(ctx context.Context, key string, ttl time.Duration) (Release, error) {
	if ttl <= 0 {
		return nil, errors.New("lock: redis lock requires a positive ttl")
	}
	name := r.prefix + key
	token := uuid.NewString()

	for {
		ok, err := r.rdb.SetNX(ctx, name, token, ttl).Result()
		if err != nil && ctx.Err() == nil {
			return nil, fmt.Errorf("lock %s: %w", key, err)
		}
		if ok {
			return r.release(name, token), nil
		}

		select {
		case <-time.After(r.poll):
		case <-ctx.Done():
			return nil, errors.Join(ErrNotAcquired, ctx.Err())
		}
	}
}

func (r *Redis) release(name, token string) Release {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = releaseScript.Run(ctx, r.rdb, []string{name}, token).Err()
	}
}
