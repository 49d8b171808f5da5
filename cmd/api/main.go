package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"itemdeck/internal/config"
	"itemdeck/internal/domain/item"
	httpx "itemdeck/internal/http"
	"itemdeck/internal/services/items"
	"itemdeck/internal/store/memory"
	"itemdeck/internal/store/postgres"
	"itemdeck/internal/store/redis"
	"itemdeck/internal/store/repositories"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()
	setupLogging(cfg)
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repo := openRepository(ctx, cfg)
	defer repo.Close()

	svc := items.NewService(repo)
	if cfg.App.SeedFixture {
		n, err := svc.Seed(ctx, item.Fruits())
		if err != nil {
			log.Fatal().Err(err).Msg("seeding items failed")
		}
		log.Info().Int("count", n).Msg("seeded items")
	}

	r := httpx.NewRouter(httpx.RouterDependencies{Config: cfg, ItemService: svc})

	srv := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info().Str("store", cfg.Store.Driver).Msgf("items API listening on :%s", cfg.App.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	cancel()
	ctx2, cancel2 := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel2()
	_ = srv.Shutdown(ctx2)
	log.Info().Msg("server stopped")
}

func setupLogging(cfg config.Cfg) {
	zerolog.SetGlobalLevel(cfg.Level())
	if cfg.App.Env == "dev" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
}

func openRepository(ctx context.Context, cfg config.Cfg) repositories.ItemRepository {
	switch cfg.Store.Driver {
	case config.DriverPostgres:
		pool := postgres.MustOpen(ctx, cfg.DB.DSN, cfg.Store.ConnectTimeout)
		return postgres.NewItemRepository(pool)
	case config.DriverRedis:
		repo, err := redis.Open(ctx, redis.Config{
			Addr:           cfg.Redis.Addr,
			Prefix:         cfg.Redis.Prefix,
			ConnectTimeout: cfg.Store.ConnectTimeout,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("redis connect failed")
		}
		return repo
	default:
		return memory.NewItemRepository()
	}
}
