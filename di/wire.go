//go:build wireinject
// +build wireinject

package di

import (
	"hotelpos/config"
	"hotelpos/infras/jwt"
	"hotelpos/infras/kafka"
	"hotelpos/infras/otel"
	"hotelpos/infras/postgres"
	"hotelpos/infras/redis"
	"hotelpos/infras/s3"
	"hotelpos/internal/documents"
	"hotelpos/shared/cache"
	"hotelpos/transport/http"
	"hotelpos/transport/http/middleware"
	"hotelpos/transport/http/router"

	"github.com/google/wire"

	authService "hotelpos/internal/domains/auth/service"
	catalogRepository "hotelpos/internal/domains/catalog/repository"
	catalogService "hotelpos/internal/domains/catalog/service"
	hallRepository "hotelpos/internal/domains/hall/repository"
	hallService "hotelpos/internal/domains/hall/service"
	orderRepository "hotelpos/internal/domains/order/repository"
	orderService "hotelpos/internal/domains/order/service"
	roomRepository "hotelpos/internal/domains/room/repository"
	roomService "hotelpos/internal/domains/room/service"
	settingsRepository "hotelpos/internal/domains/settings/repository"
	settingsService "hotelpos/internal/domains/settings/service"
	tableRepository "hotelpos/internal/domains/table/repository"
	tableService "hotelpos/internal/domains/table/service"
	userRepository "hotelpos/internal/domains/user/repository"
	userService "hotelpos/internal/domains/user/service"

	authHandler "hotelpos/internal/handlers/auth"
	catalogHandler "hotelpos/internal/handlers/catalog"
	hallHandler "hotelpos/internal/handlers/hall"
	healthHandler "hotelpos/internal/handlers/health"
	orderHandler "hotelpos/internal/handlers/order"
	roomHandler "hotelpos/internal/handlers/room"
	settingsHandler "hotelpos/internal/handlers/settings"
	tableHandler "hotelpos/internal/handlers/table"
	userHandler "hotelpos/internal/handlers/user"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	documents.New,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
)

var userDomain = wire.NewSet(
	userService.New,
)

var catalogDomain = wire.NewSet(
	catalogRepository.NewCategory,
	catalogRepository.NewItem,
	catalogService.New,
)

var tableDomain = wire.NewSet(
	tableRepository.New,
	tableService.New,
)

var settingsDomain = wire.NewSet(
	settingsRepository.New,
	settingsService.New,
)

var orderDomain = wire.NewSet(
	orderRepository.New,
	orderService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var hallDomain = wire.NewSet(
	hallRepository.New,
	hallService.New,
)

var domains = wire.NewSet(
	authDomain,
	userDomain,
	catalogDomain,
	tableDomain,
	settingsDomain,
	orderDomain,
	roomDomain,
	hallDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	catalogHandler.New,
	hallHandler.New,
	healthHandler.New,
	orderHandler.New,
	roomHandler.New,
	settingsHandler.New,
	tableHandler.New,
	userHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
