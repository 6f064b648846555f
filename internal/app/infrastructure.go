package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/tripcraft/tripcraft-api/internal/config"
	"github.com/tripcraft/tripcraft-api/internal/repository"
	"github.com/tripcraft/tripcraft-api/pkg/database"
	"github.com/tripcraft/tripcraft-api/pkg/observability"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.uber.org/zap"
)

type Infrastructure interface {
	Mongo() *database.Mongo
	Logger() *zap.Logger
	MetricsHandler() http.Handler
	MeterProvider() *metric.MeterProvider

	Shutdown(ctx context.Context) error
}

type infrastructure struct {
	mongo          *database.Mongo
	logger         *zap.Logger
	metricsHandler http.Handler
	meterProvider  *metric.MeterProvider
}

var _ Infrastructure = &infrastructure{}

func NewInfrastructure(ctx context.Context, cfg config.Config) (*infrastructure, error) {
	i := &infrastructure{}

	logger, err := observability.InitLogger(cfg.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	i.logger = logger

	mongo, err := database.NewMongo(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	i.mongo = mongo

	if err := repository.EnsureIndexes(ctx, mongo); err != nil {
		_ = i.mongo.Close(ctx)
		return nil, fmt.Errorf("failed to ensure indexes: %w", err)
	}

	meterProvider, metricsHandler, err := observability.InitTelemetry("tripcraft-api")
	if err != nil {
		_ = i.mongo.Close(ctx)
		return nil, fmt.Errorf("failed to initialize telemetry: %w", err)
	}
	i.meterProvider = meterProvider
	i.metricsHandler = metricsHandler

	return i, nil
}

func (i *infrastructure) Mongo() *database.Mongo {
	return i.mongo
}

func (i *infrastructure) Logger() *zap.Logger {
	return i.logger
}

func (i *infrastructure) MetricsHandler() http.Handler {
	return i.metricsHandler
}

func (i *infrastructure) MeterProvider() *metric.MeterProvider {
	return i.meterProvider
}

func (i *infrastructure) Shutdown(ctx context.Context) error {
	errs := make(chan error, 3)

	go func() { errs <- i.mongo.Close(ctx) }()
	go func() { errs <- i.logger.Sync() }()
	go func() { errs <- observability.Shutdown(ctx, i.meterProvider, i.logger) }()

	return errors.Join(<-errs, <-errs, <-errs)
}
