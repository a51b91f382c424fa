package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"

	redisv9 "github.com/redis/go-redis/v9"

	"energy_backend/internal/app/config"
	"energy_backend/internal/app/router"
	"energy_backend/internal/feature/auth/adapters/sessionmem"
	"energy_backend/internal/feature/auth/adapters/usercsv"
	authhandler "energy_backend/internal/feature/auth/transport/handler"
	authusecase "energy_backend/internal/feature/auth/usecase"
	forecastusecase "energy_backend/internal/feature/forecast/usecase"
	glossaryhandler "energy_backend/internal/feature/glossary/transport/handler"
	glossaryusecase "energy_backend/internal/feature/glossary/usecase"
	"energy_backend/internal/feature/prices/adapters/csvsource"
	"energy_backend/internal/feature/prices/adapters/memstore"
	pricehandler "energy_backend/internal/feature/prices/transport/handler"
	pricesusecase "energy_backend/internal/feature/prices/usecase"
	"energy_backend/internal/platform/cache"
	infraredis "energy_backend/internal/platform/redis"
	"energy_backend/internal/platform/scheduler"
)

func main() {
	configPath := flag.String("config", "", "path to the YAML config file")
	flag.Parse()

	path := *configPath
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	if path == "" {
		path = "config.yaml"
	}

	cfg, err := config.Load(path)
	if err != nil {
		log.Fatal(err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	// Redis
	var rdb *redisv9.Client
	if addr := cfg.RedisAddr(); addr != "" {
		if tmp, err := infraredis.NewRedisClient(addr, cfg.Redis.Password); err != nil {
			slog.Warn("Redis unavailable, running without forecast cache")
		} else {
			rdb = tmp
			defer func() {
				if err := rdb.Close(); err != nil {
					slog.Error("failed to close Redis client", "error", err)
				}
			}()
		}
	}

	// Stores
	userStore := usercsv.NewStore(cfg.UsersFile)
	if err := userStore.LoadAll(); err != nil {
		log.Fatalf("load users: %v", err)
	}
	sessionStore := sessionmem.NewStore()
	seriesStore := memstore.NewSeriesStore()

	// Forecasting, with the cache decorator in front of the fitted models
	forecastUC := forecastusecase.NewForecastUsecase(seriesStore)
	cachedForecaster := cache.NewCachingForecaster(rdb, forecastUC, "forecast")

	// Usecases
	authUC := authusecase.NewAuthUsecase(userStore, sessionStore)
	pricesUC := pricesusecase.NewPricesUsecase(seriesStore)
	glossaryUC := glossaryusecase.NewGlossaryUsecase()
	loadUC := pricesusecase.NewLoadUsecase(csvsource.NewSource(), seriesStore, cachedForecaster)

	// Initial load: read, prepare and fit every configured series before
	// serving, so the first request never observes an empty store.
	files := make([]pricesusecase.SeriesFile, 0, len(cfg.Series))
	seriesByQuery := make(map[string]string, len(cfg.Series))
	for _, s := range cfg.Series {
		files = append(files, pricesusecase.SeriesFile{Name: s.Name, Path: s.File})
		seriesByQuery[s.QueryName] = s.Name
	}
	if err := loadUC.LoadAll(ctx, files); err != nil {
		log.Fatalf("initial data load: %v", err)
	}

	// Scheduled reload keeps fitting off the request path.
	sched, err := scheduler.NewScheduler(ctx, loadUC, files, cfg.ReloadCron)
	if err != nil {
		log.Fatal(err)
	}
	sched.Start()
	defer sched.Stop()

	// Handlers
	authH := authhandler.NewAuthHandler(authUC)
	pricesH := pricehandler.NewPriceHandler(pricesUC, cachedForecaster, seriesByQuery, cfg.Forecast.MaxDays)
	glossaryH := glossaryhandler.NewGlossaryHandler(glossaryUC)

	r := router.NewRouter(authH, pricesH, glossaryH, authUC)

	slog.Info("server starting", "addr", cfg.ListenAddr)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatal(err)
	}
}
