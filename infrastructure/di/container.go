package di

import (
	"go.uber.org/zap"

	"todolists/application/commands/bus"
	"todolists/application/ports"
	querybus "todolists/application/queries/bus"
	"todolists/domain/core/valueobjects"
	"todolists/infrastructure/apiclient"
	"todolists/infrastructure/config"
	"todolists/pkg/observability"
)

// Container holds all API server dependencies
type Container struct {
	Config        *config.Config
	ConfigWatcher *config.Watcher
	LogLevel      zap.AtomicLevel
	Logger        *zap.Logger
	TodoListRepo  ports.TodoListRepository
	IDGenerator   valueobjects.IDGenerator
	CommandBus    *bus.CommandBus
	QueryBus      *querybus.QueryBus
	Metrics       *observability.Collector
}

// ClientContainer holds the terminal client's dependencies
type ClientContainer struct {
	Config   *config.Config
	LogLevel zap.AtomicLevel
	Logger   *zap.Logger
	API      *apiclient.Client
}
