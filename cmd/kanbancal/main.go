package main

import (
	"context"
	"crypto/rand"
	"log"
	"net/http"
	"time"

	"github.com/xlab/closer"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"kanbancal/internal/api"
	"kanbancal/internal/business/drag"
	"kanbancal/internal/business/paging"
	"kanbancal/internal/business/schedule"
	"kanbancal/internal/business/view"
	"kanbancal/internal/config"
	"kanbancal/internal/database"
	db_events "kanbancal/internal/database/events"
	"kanbancal/internal/memory"
	"kanbancal/internal/model"
	"kanbancal/internal/pkg/clock"
	"kanbancal/internal/redis"
)

type eventsRepository interface {
	EventDates(ctx context.Context) ([]string, error)
	EventsByDate(ctx context.Context, dateKey string) ([]*model.Event, error)
}

func main() {
	ctx := context.Background()

	logger, err := initLogger()
	if err != nil {
		log.Fatalf("unable to initialize logger: %v", err)
	}

	redisPool := redis.NewRedisPool(logger)
	selections := redis.NewSelectionRepository(redisPool, logger)

	var eventsRepo eventsRepository
	if config.PostgresURL() != "" {
		db, err := database.NewPGX(ctx)
		if err != nil {
			logger.Fatalw("unable to initialize db", "err", err)
		}
		eventsRepo = db_events.NewRepository(db)
	} else {
		logger.Infow("no POSTGRES_URL configured, using seeded in-memory events")
		eventsRepo = memory.NewEventRepository(time.Now())
	}

	store, err := schedule.NewStore(ctx, eventsRepo)
	if err != nil {
		logger.Fatalw("unable to load events", "err", err)
	}

	clk := clock.NewSystem()
	pager := paging.NewController(time.Now(), store)
	coordinator := drag.NewCoordinator(clk, config.DragCooldown(), config.DragMinDistance())
	calendar := view.NewOrchestrator(logger, clk, store, pager, coordinator)

	api, err := api.NewApi(logger, rand.Reader, calendar, selections)
	if err != nil {
		logger.Fatalw("error initiating api", "err", err)
	}

	errLogger, err := zap.NewStdLogAt(logger.Desugar(), zap.ErrorLevel)
	if err != nil {
		logger.Fatalw("error initiating server logger", "err", err)
	}

	server := &http.Server{
		Addr:     ":" + config.Port(),
		Handler:  api,
		ErrorLog: errLogger,
	}

	logger.Infow("Started server", "port", config.Port())
	logger.Fatalw("server error", "err", server.ListenAndServe())
}

func initLogger() (*zap.SugaredLogger, error) {
	var logger *zap.Logger
	var err error

	if config.Production() {
		logger, err = zap.NewProduction()
	} else {
		conf := zap.NewDevelopmentConfig()
		conf.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		logger, err = conf.Build()
	}

	if err != nil {
		return nil, err
	}

	closer.Bind(func() {
		_ = logger.Sync()
	})

	return logger.Sugar(), nil
}
