package main

import (
	"context"
	"database/sql"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/mpcost/hoopzone/go/clients/ballapi_client"
	"github.com/mpcost/hoopzone/go/internal/boxscore"
	"github.com/mpcost/hoopzone/go/internal/cache"
	"github.com/mpcost/hoopzone/go/internal/players"
	"github.com/mpcost/hoopzone/go/internal/prefs"
	"github.com/mpcost/hoopzone/go/internal/snapshot"
	"github.com/mpcost/hoopzone/go/internal/source"
	"github.com/mpcost/hoopzone/go/internal/standings"
)

type Services struct {
	Games     *source.Chain
	Cache     *cache.RedisWriter
	Standings *standings.App
	Players   *players.App
	Prefs     *prefs.App
	BoxScores *boxscore.Repository
	Refresher *boxscore.Refresher
}

func setupServices(config *Config, database *sql.DB) *Services {
	// Wire up dependency injection chain
	// Clients → sources → repositories → apps

	client := ballapi_client.NewBallApiClient(config.Ball.APIKey)
	normalizer := snapshot.NewNormalizer()

	rest := source.NewRestSource(client, normalizer)
	sources := []source.SnapshotSource{rest}
	if config.Ball.AssetsDir != "" {
		sources = append(sources, source.NewFileSource(config.Ball.AssetsDir, normalizer))
	}
	chain := source.NewChain(sources...)

	var cacheWriter *cache.RedisWriter
	if config.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: config.Redis.Addr})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Warn().Err(err).Msg("redis unavailable, serving without cache")
		} else {
			cacheWriter = cache.NewRedisWriter(rdb)
		}
	}

	boxRepo := boxscore.NewRepository(database)
	refresher := boxscore.NewRefresher(boxRepo, chain, chain).
		WithInterval(config.Boxscore.RefreshInterval)

	return &Services{
		Games:     chain,
		Cache:     cacheWriter,
		Standings: standings.NewApp(client),
		Players:   players.NewApp(client, players.NewRepository(database)),
		Prefs:     prefs.NewApp(prefs.NewRepository(database)),
		BoxScores: boxRepo,
		Refresher: refresher,
	}
}
