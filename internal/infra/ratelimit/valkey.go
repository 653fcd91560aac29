package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/valkey-io/valkey-go"
)

const window = time.Minute

// ValkeyLimiter shares a fixed one-minute window per key across replicas.
// The window admits requestsPerMinute plus burst calls.
type ValkeyLimiter struct {
	client valkey.Client
	prefix string
	limit  int64
	now    func() time.Time
}

// NewValkeyLimiter constructs a limiter backed by a Valkey-compatible server.
func NewValkeyLimiter(client valkey.Client, prefix string, requestsPerMinute, burst int) *ValkeyLimiter {
	if prefix == "" {
		prefix = "medifind:ratelimit"
	}
	return &ValkeyLimiter{
		client: client,
		prefix: prefix,
		limit:  int64(requestsPerMinute + burst),
		now:    time.Now,
	}
}

func (l *ValkeyLimiter) Allow(ctx context.Context, key string) (bool, error) {
	bucket := l.windowKey(key)
	count, err := l.client.Do(ctx, l.client.B().Incr().Key(bucket).Build()).AsInt64()
	if err != nil {
		return false, fmt.Errorf("rate limit incr: %w", err)
	}
	if count == 1 {
		if err := l.client.Do(ctx, l.client.B().Expire().Key(bucket).Seconds(int64(2*window/time.Second)).Build()).Error(); err != nil {
			return false, fmt.Errorf("rate limit expire: %w", err)
		}
	}
	return count <= l.limit, nil
}

func (l *ValkeyLimiter) windowKey(key string) string {
	return fmt.Sprintf("%s:%s:%d", l.prefix, key, l.now().Unix()/int64(window/time.Second))
}
