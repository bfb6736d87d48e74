// cmd/matchd/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"matchmaking-engine/internal/api"
	"matchmaking-engine/internal/common/config"
	"matchmaking-engine/internal/common/database"
	"matchmaking-engine/internal/common/logger"
	"matchmaking-engine/internal/common/observability"
	"matchmaking-engine/internal/match/bookmarks"
	"matchmaking-engine/internal/match/browse"
	"matchmaking-engine/internal/match/queue"
	"matchmaking-engine/internal/match/ranking"
	"matchmaking-engine/pkg/pool"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	zapLog := logger.New("info", "console")
	defer zapLog.Sync()

	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting matchmaking engine...")

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Init Redis (optional) with retry ---
	var redisClient *database.RedisClient
	if cfg.Database.Redis.Enabled {
		err = retryWithBackoff(func() error {
			var err error
			redisClient, err = database.NewRedis(cfg.Database.Redis)
			if err != nil {
				return err
			}
			return redisClient.Ping(ctx)
		}, 10, 2*time.Second, zapLog, "Redis connection")

		if err != nil {
			zapLog.Fatal("redis failed after retries", zap.Error(err))
		}
		defer redisClient.Close()
		zapLog.Info("Redis connected successfully")
	}

	// --- Init PostgreSQL (optional) with retry ---
	var pg *database.PostgresClient
	if cfg.Database.Postgres.Enabled {
		err = retryWithBackoff(func() error {
			var err error
			pg, err = database.NewPostgres(cfg.Database.Postgres)
			if err != nil {
				return err
			}
			return pg.Ping(ctx)
		}, 15, 2*time.Second, zapLog, "PostgreSQL connection")

		if err != nil {
			zapLog.Fatal("postgres failed after retries", zap.Error(err))
		}
		defer pg.Close()
		zapLog.Info("PostgreSQL connected successfully")
	}

	// --- Init Elasticsearch (optional) with retry ---
	var esClient *database.ElasticsearchClient
	if cfg.Database.Elasticsearch.Enabled {
		err = retryWithBackoff(func() error {
			var err error
			esClient, err = database.NewElasticsearch(cfg.Database.Elasticsearch)
			if err != nil {
				return err
			}
			return esClient.Ping()
		}, 15, 2*time.Second, zapLog, "Elasticsearch connection")

		if err != nil {
			zapLog.Fatal("elasticsearch failed after retries", zap.Error(err))
		}
		zapLog.Info("Elasticsearch connected successfully")
	}

	// --- Candidate pool source ---
	var source ranking.Source
	switch {
	case pg != nil:
		source = ranking.NewPostgresSource(pg)
		zapLog.Info("Candidate pool source: postgres")
	case cfg.Match.CatalogPath != "":
		cat, err := pool.Load(cfg.Match.CatalogPath)
		if err != nil {
			zapLog.Fatal("catalog load failed", zap.Error(err))
		}
		source = ranking.NewStaticSource(cat.Suggestions())
		zapLog.Info("Candidate pool source: catalog", zap.String("path", cfg.Match.CatalogPath))
	default:
		source = ranking.NewStaticSource(ranking.DefaultPool())
		zapLog.Info("Candidate pool source: built-in")
	}

	// --- Ranking engine ---
	var cache *ranking.ResultCache
	if redisClient != nil {
		cache = ranking.NewResultCache(redisClient, cfg.Match.CacheTTL, log)
	}
	engine := ranking.NewEngine(source, cache, ranking.Config{
		TopK:        cfg.Match.TopK,
		RankByScore: cfg.Match.RankByScore,
	}, log)

	// --- Bookmark store ---
	var marks bookmarks.Store = bookmarks.NewMemoryStore()
	if redisClient != nil {
		marks = bookmarks.NewRedisStore(redisClient)
	}

	// --- Session controller ---
	session := queue.NewController(cfg.Queue, engine, marks, queue.NewRealClock(), obs, log)
	defer session.Close()

	// --- Browse surfaces ---
	var searchSource browse.SearchSource
	if esClient != nil {
		searchSource = browse.NewElasticSearchSource(esClient, cfg.Database.Elasticsearch.Index)
	}
	browseSvc := browse.NewService(browse.DefaultProjects(), searchSource, log)
	weekly := browse.NewWeeklyList(browse.DefaultWeeklyMatches(), cfg.Browse.DefaultMinConfidence, log)

	// --- Metrics + pprof server ---
	go func() {
		http.Handle("/metrics", promhttp.Handler())
		zapLog.Info("Metrics server listening", zap.String("address", cfg.Server.MetricsAddress))
		if err := http.ListenAndServe(cfg.Server.MetricsAddress, nil); err != nil {
			zapLog.Error("metrics server failed", zap.Error(err))
		}
	}()

	// --- API server ---
	apiServer := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: api.New(session, browseSvc, weekly, log).Router(),
	}
	go func() {
		zapLog.Info("API server listening", zap.String("address", cfg.Server.Address))
		if err := apiServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLog.Fatal("api server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, stopping...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := apiServer.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("api server shutdown failed", zap.Error(err))
	}

	zapLog.Info("Matchmaking engine stopped")
}
