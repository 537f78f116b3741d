//go:build wireinject
// +build wireinject

package di

import (
	"context"

	"github.com/google/wire"

	"todolists/infrastructure/config"
)

// SuperSet is the API server provider set
var SuperSet = wire.NewSet(
	ProvideLogLevel,
	ProvideLogger,
	ProvideConfigWatcher,
	ProvideTodoListRepository,
	ProvideIDGenerator,
	ProvideMetrics,
	ProvideCommandBus,
	ProvideQueryBus,
	wire.Struct(new(Container), "*"),
)

// ClientSet is the terminal client provider set
var ClientSet = wire.NewSet(
	ProvideLogLevel,
	ProvideTUILogger,
	ProvideAPIClient,
	wire.Struct(new(ClientContainer), "*"),
)

// InitializeContainer creates a fully wired container
func InitializeContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	wire.Build(SuperSet)
	return nil, nil // Wire will replace this
}

// InitializeClientContainer creates the terminal client's container
func InitializeClientContainer(cfg *config.Config) (*ClientContainer, error) {
	wire.Build(ClientSet)
	return nil, nil
}
