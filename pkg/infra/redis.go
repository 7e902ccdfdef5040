package infra

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/failsafe-go/failsafe-go"
	"github.com/failsafe-go/failsafe-go/retrypolicy"
	"github.com/redis/go-redis/v9"
)

// RedisConfig addresses the catalog report cache.
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	// PingRetries is how many extra startup pings are sent while redis is still
	// coming up.
	PingRetries int
}

// NewRedisConnection returns a client once redis answers a ping. The client is
// closed when every ping fails.
func NewRedisConnection(cfg RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
	})

	policy := retrypolicy.NewBuilder[any]().
		WithBackoff(100*time.Millisecond, 2*time.Second).
		WithMaxRetries(max(cfg.PingRetries, 0)).
		Build()
	err := failsafe.With[any](policy).Run(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		return client.Ping(ctx).Err()
	})
	if err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("NewRedisConnection: %s: %w", client.Options().Addr, err)
	}
	return client, nil
}
