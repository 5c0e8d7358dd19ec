//go:build wireinject
// +build wireinject

package di

import (
	"context"
	"hostel/config"
	"hostel/infras/kafka"
	"hostel/infras/metrics"
	"hostel/infras/otel"
	"hostel/infras/postgres"
	"hostel/infras/redis"
	"hostel/infras/s3"
	"hostel/shared/cache"
	"hostel/transport/http"
	"hostel/transport/http/middleware"
	"hostel/transport/http/router"

	guestEvent "hostel/internal/domains/guest/event"
	guestRepository "hostel/internal/domains/guest/repository"
	guestService "hostel/internal/domains/guest/service"
	inventoryRepository "hostel/internal/domains/inventory/repository"
	inventoryService "hostel/internal/domains/inventory/service"
	reportService "hostel/internal/domains/report/service"

	guestHandler "hostel/internal/handlers/guest"
	reportHandler "hostel/internal/handlers/report"
	roomHandler "hostel/internal/handlers/room"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	kafka.New,
	s3.New,
	metrics.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var inventoryDomain = wire.NewSet(
	inventoryRepository.NewRepository,
	inventoryService.New,
)

var guestDomain = wire.NewSet(
	guestRepository.New,
	guestEvent.NewPublisher,
	guestService.New,
)

var reportDomain = wire.NewSet(
	reportService.New,
)

var domains = wire.NewSet(
	inventoryDomain,
	guestDomain,
	reportDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	guestHandler.New,
	roomHandler.New,
	reportHandler.New,
	router.New,
)

func InitializeService(ctx context.Context) (*App, error) {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
		wire.Struct(new(App), "*"),
	)

	return &App{}, nil
}
