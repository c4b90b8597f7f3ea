package redis

import (
	"context"
	"gymhub/config"
	"net"
	"time"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const defaultDialTimeout = 5 * time.Second

// New connects to the primary Redis used for the catalog cache, API key
// lookups and the rate limiter. The process does not start without it.
func New(cfg *config.Config) *goRedis.Client {
	redisCfg := cfg.Cache.Redis
	client := goRedis.NewClient(Options(cfg))

	ctx, cancel := context.WithTimeout(context.Background(), client.Options().DialTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal().Err(err).Str("addr", client.Options().Addr).Msg("Failed to connect to Redis")
	}

	log.Info().
		Int("db", redisCfg.Primary.DB).
		Str("addr", client.Options().Addr).
		Int("pool_size", redisCfg.PoolSize).
		Msg("Connected to Redis")

	return client
}

// Options maps the CACHE_REDIS_* settings onto the client options.
func Options(cfg *config.Config) *goRedis.Options {
	redisCfg := cfg.Cache.Redis

	dialTimeout := defaultDialTimeout
	if redisCfg.DialTimeoutSeconds > 0 {
		dialTimeout = time.Duration(redisCfg.DialTimeoutSeconds) * time.Second
	}

	return &goRedis.Options{
		Addr:        net.JoinHostPort(redisCfg.Primary.Host, redisCfg.Primary.Port),
		Password:    redisCfg.Primary.Password,
		DB:          redisCfg.Primary.DB,
		DialTimeout: dialTimeout,
		PoolSize:    redisCfg.PoolSize,
	}
}
