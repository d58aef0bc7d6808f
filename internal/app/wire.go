//go:build wireinject
// +build wireinject

package app

import (
	"net/http"

	"github.com/google/wire"

	"github.com/hanulsoft/sajunet/internal/adapter/httpapi"
	"github.com/hanulsoft/sajunet/internal/infrastructure/config"
	"github.com/hanulsoft/sajunet/internal/infrastructure/database"
	"github.com/hanulsoft/sajunet/internal/infrastructure/server"
	"github.com/hanulsoft/sajunet/internal/usecase"
)

var configSet = wire.NewSet(
	config.Load,
)

var databaseSet = wire.NewSet(
	database.NewConnections,
	provideCalendarDB,
	provideSeasonDB,
)

var repositorySet = wire.NewSet(
	provideCalendarRepository,
	provideSolarTermRepository,
)

var usecaseSet = wire.NewSet(
	provideEngineDefaults,
	usecase.NewChartUsecase,
)

var handlerSet = wire.NewSet(
	httpapi.NewHandler,
	wire.Bind(new(http.Handler), new(*httpapi.Handler)),
)

var serverSet = wire.NewSet(
	server.NewLogger,
	server.NewServer,
)

// Initialize builds the application container using Wire.
func Initialize() (*Container, func(), error) {
	wire.Build(
		configSet,
		databaseSet,
		repositorySet,
		usecaseSet,
		handlerSet,
		serverSet,
		wire.Struct(new(Container), "Logger", "Server"),
	)
	return nil, nil, nil
}
