package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mpcost/hoopzone/go/clients/ballapi_client"
	"github.com/mpcost/hoopzone/go/internal/cache"
	"github.com/mpcost/hoopzone/go/internal/livefeed"
	"github.com/mpcost/hoopzone/go/internal/snapshot"
	"github.com/mpcost/hoopzone/go/internal/source"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("could not load .env file")
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	natsURL := getEnv("NATS_URL", nats.DefaultURL)
	redisAddr := getEnv("REDIS_ADDR", "")
	apiKey := getEnv("BALL_API_KEY", "")
	assetsDir := getEnv("FEED_ASSETS_DIR", "")
	discoveryInterval := getEnvAsDuration("FEED_DISCOVERY_INTERVAL", livefeed.DefaultDiscoveryInterval)
	pollInterval := getEnvAsDuration("FEED_POLL_INTERVAL", livefeed.DefaultPollInterval)

	if apiKey == "" {
		log.Fatal().Msg("BALL_API_KEY is required")
	}

	normalizer := snapshot.NewNormalizer()
	rest := source.NewRestSource(ballapi_client.NewBallApiClient(apiKey), normalizer)

	snapshots := []source.SnapshotSource{rest}
	if assetsDir != "" {
		snapshots = append(snapshots, source.NewFileSource(assetsDir, normalizer))
	}
	chain := source.NewChain(snapshots...)

	jsCfg := livefeed.DefaultJetStreamConfig()
	jsCfg.URL = natsURL
	publisher, err := livefeed.NewPublisher(jsCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect publisher")
	}
	defer publisher.Close()

	feed := livefeed.NewFeed(chain, rest, publisher).
		WithIntervals(discoveryInterval, pollInterval)

	if redisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: redisAddr})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Fatal().Err(err).Msg("failed to ping redis")
		}
		feed = feed.WithCache(cache.NewRedisWriter(rdb))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go feed.Run(ctx)

	log.Info().
		Str("nats_url", natsURL).
		Str("redis_addr", redisAddr).
		Msg("live feed daemon running")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Info().Msg("shutting down live feed daemon")
	cancel()
	time.Sleep(time.Second)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
