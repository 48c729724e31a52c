// Package app assembles configuration, adapters and use cases into a
// runnable application.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"

	"HistoryScanner/internal/config"
	"HistoryScanner/internal/infrastructure/cache"
	"HistoryScanner/internal/infrastructure/llm"
	"HistoryScanner/internal/infrastructure/scheduler"
	"HistoryScanner/internal/infrastructure/storage"
	"HistoryScanner/internal/infrastructure/telegram"
	"HistoryScanner/internal/infrastructure/webapi"
	"HistoryScanner/internal/logging"
	"HistoryScanner/internal/ports"
	"HistoryScanner/internal/source"
	"HistoryScanner/internal/usecase"
)

// Application wires configs to use cases and lifecycle orchestration.
type Application struct {
	cfg        config.Config
	logger     *slog.Logger
	aggregator *usecase.Aggregator
	search     *usecase.Search
	quiz       *llm.QuizGenerator
	favorites  ports.FavoritesRepository
	digest     *usecase.DigestScheduler
	db         *sql.DB
}

// New builds a runnable application instance.
func New(cfg config.Config, baseLogger *slog.Logger) (*Application, error) {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level)
	}

	registry := source.NewRegistry()
	registry.Register(webapi.NewDayHistorySource(
		webapi.NewClient("dayhistory", nil, baseLogger.With("component", "source.dayhistory")),
		cfg.Sources.DayHistoryURL,
		baseLogger.With("component", "source.dayhistory"),
	))
	registry.Register(webapi.NewWikipediaSource(
		webapi.NewClient("wikipedia", nil, baseLogger.With("component", "source.wikipedia")),
		cfg.Sources.WikipediaURL,
		baseLogger.With("component", "source.wikipedia"),
	))
	registry.Register(webapi.NewOnThisDaySource(
		webapi.NewClient("onthisday", nil, baseLogger.With("component", "source.onthisday")),
		cfg.Sources.OnThisDayURL,
		baseLogger.With("component", "source.onthisday"),
	))

	general, err := registry.Enabled(cfg.Sources.Enabled)
	if err != nil {
		return nil, fmt.Errorf("resolve sources: %w", err)
	}

	// Without an API key the provider stays nil and the LLM-backed
	// sources serve their seed datasets.
	var provider ports.TextGenerator
	if cfg.Provider.APIKey != "" {
		provider = llm.NewClient(llm.Config{
			Endpoint:     cfg.Provider.Endpoint,
			Model:        cfg.Provider.Model,
			APIKey:       cfg.Provider.APIKey,
			SystemPrompt: cfg.Provider.SystemPrompt,
		})
	}
	indian := llm.NewIndianSource(provider, baseLogger.With("component", "source.indian"))
	arts := llm.NewArtsSource(provider, baseLogger.With("component", "source.arts"))
	quiz := llm.NewQuizGenerator(provider, baseLogger.With("component", "quiz"))

	resultCache, err := buildCache(cfg.Cache, baseLogger)
	if err != nil {
		return nil, err
	}

	aggregator := usecase.NewAggregator(general, indian, arts, resultCache, baseLogger.With("component", "aggregator"))

	searchClient := webapi.NewSearchClient(
		webapi.NewClient("wikisearch", nil, baseLogger.With("component", "search")),
		cfg.Sources.WikipediaURL,
		cfg.Sources.WikiSiteURL,
	)
	search := usecase.NewSearch(searchClient, provider, baseLogger.With("component", "search"))

	app := &Application{
		cfg:        cfg,
		logger:     baseLogger,
		aggregator: aggregator,
		search:     search,
		quiz:       quiz,
	}

	if cfg.Storage.SQLitePath != "" {
		db, err := sql.Open("sqlite", cfg.Storage.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		repo := storage.NewSQLiteRepository(db)
		if err := repo.Init(context.Background()); err != nil {
			db.Close()
			return nil, fmt.Errorf("init storage: %w", err)
		}
		app.db = db
		app.favorites = repo
	}

	if cfg.Digest.Enabled {
		notifier := telegram.NewNotifier(cfg.Notifications.Telegram.BotToken, cfg.Notifications.Telegram.ChatID)
		digest := usecase.NewDigest(aggregator, notifier, cfg.Digest.Size, baseLogger.With("component", "digest"))
		driver := scheduler.NewDailyScheduler(cfg.Digest.Hour, cfg.Digest.Minute)
		app.digest = usecase.NewDigestScheduler(driver, digest)
	}

	return app, nil
}

func buildCache(cfg config.CacheConfig, logger *slog.Logger) (ports.Cache, error) {
	switch cfg.Backend {
	case "", "memory":
		return cache.NewMemory(cfg.TTL), nil
	case "redis":
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		return cache.NewRedis(rdb, cfg.TTL, logger.With("component", "cache")), nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Backend)
	}
}

// Aggregator exposes the event pipeline for presentation layers.
func (a *Application) Aggregator() *usecase.Aggregator { return a.aggregator }

// Search exposes the search flow.
func (a *Application) Search() *usecase.Search { return a.search }

// Quiz exposes the quiz generator.
func (a *Application) Quiz() *llm.QuizGenerator { return a.quiz }

// Favorites exposes the favorites repository; nil when storage is off.
func (a *Application) Favorites() ports.FavoritesRepository { return a.favorites }

// Run performs one aggregation for today and, when the digest is
// enabled, keeps serving the daily schedule until the context ends.
func (a *Application) Run(ctx context.Context) error {
	now := time.Now()
	result := a.aggregator.Events(ctx, usecase.Query{
		Month: int(now.Month()),
		Day:   now.Day(),
	})
	a.logger.Info("aggregated events", "date", result.Date, "count", len(result.Events))

	if a.digest == nil {
		return nil
	}

	if err := a.digest.Start(ctx); err != nil {
		return fmt.Errorf("start digest scheduler: %w", err)
	}
	<-ctx.Done()
	return a.digest.Stop(context.Background())
}

// Close releases held resources.
func (a *Application) Close() error {
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}
