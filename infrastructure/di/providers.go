package di

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"todolists/application/commands"
	"todolists/application/commands/bus"
	commandhandlers "todolists/application/commands/handlers"
	"todolists/application/ports"
	"todolists/application/queries"
	querybus "todolists/application/queries/bus"
	queryhandlers "todolists/application/queries/handlers"
	"todolists/domain/core/valueobjects"
	"todolists/infrastructure/apiclient"
	"todolists/infrastructure/config"
	"todolists/infrastructure/persistence/memory"
	"todolists/pkg/observability"
)

// ProvideLogLevel parses LOG_LEVEL into a level that can change at runtime
func ProvideLogLevel(cfg *config.Config) (zap.AtomicLevel, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return zap.AtomicLevel{}, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	return zap.NewAtomicLevelAt(level), nil
}

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config, level zap.AtomicLevel) (*zap.Logger, error) {
	var zapCfg zap.Config
	if cfg.IsProduction() {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}
	zapCfg.Level = level

	return zapCfg.Build()
}

// ProvideTUILogger creates a logger writing to a file so output never lands
// on the terminal the UI is drawing.
func ProvideTUILogger(cfg *config.Config, level zap.AtomicLevel) (*zap.Logger, error) {
	zapCfg := zap.NewDevelopmentConfig()
	zapCfg.OutputPaths = []string{cfg.TUILogFile}
	zapCfg.ErrorOutputPaths = []string{cfg.TUILogFile}
	zapCfg.Level = level

	return zapCfg.Build()
}

// ProvideConfigWatcher reloads the config file in development and applies
// log level changes to the running logger.
func ProvideConfigWatcher(cfg *config.Config, level zap.AtomicLevel, logger *zap.Logger) (*config.Watcher, error) {
	watcher, err := config.NewWatcher(cfg, logger)
	if err != nil {
		return nil, err
	}

	watcher.OnChange(func(next *config.Config) {
		parsed, err := zapcore.ParseLevel(next.LogLevel)
		if err != nil {
			logger.Warn("Ignoring invalid log level", zap.String("log_level", next.LogLevel))
			return
		}
		if parsed != level.Level() {
			level.SetLevel(parsed)
			logger.Info("Log level changed", zap.Stringer("level", parsed))
		}
	})

	return watcher, nil
}

// ProvideTodoListRepository creates the in-memory store, seeded when enabled
func ProvideTodoListRepository(ctx context.Context, cfg *config.Config, logger *zap.Logger) (ports.TodoListRepository, error) {
	repo := memory.NewTodoListRepository()

	if cfg.SeedData {
		if err := memory.Seed(ctx, repo); err != nil {
			return nil, err
		}
		logger.Info("Seeded todo lists", zap.Int("count", len(memory.SeedTodoLists())))
	}

	return repo, nil
}

// ProvideIDGenerator creates the list ID generator. Sequences start after the
// lists already stored so seeded IDs are never reissued.
func ProvideIDGenerator(ctx context.Context, cfg *config.Config, repo ports.TodoListRepository) (valueobjects.IDGenerator, error) {
	count, err := repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	return valueobjects.NewIDGenerator(cfg.IDStrategy, int64(count)+1)
}

// ProvideMetrics creates the Prometheus collector
func ProvideMetrics(ctx context.Context, repo ports.TodoListRepository) *observability.Collector {
	collector := observability.NewCollector("todolists")
	if count, err := repo.Count(ctx); err == nil {
		collector.ListsStored.Set(float64(count))
	}
	return collector
}

// ProvideCommandBus creates a command bus with registered handlers
func ProvideCommandBus(
	repo ports.TodoListRepository,
	metrics *observability.Collector,
	logger *zap.Logger,
) (*bus.CommandBus, error) {
	commandBus := bus.NewCommandBus(bus.LoggingMiddleware(logger))

	if err := commandBus.Register(commands.CreateTodoListCommand{},
		commandhandlers.NewCreateTodoListHandler(repo, metrics, logger)); err != nil {
		return nil, err
	}
	if err := commandBus.Register(commands.UpdateTodoListCommand{},
		commandhandlers.NewUpdateTodoListHandler(repo, metrics, logger)); err != nil {
		return nil, err
	}

	return commandBus, nil
}

// ProvideQueryBus creates a query bus with registered handlers
func ProvideQueryBus(repo ports.TodoListRepository, logger *zap.Logger) (*querybus.QueryBus, error) {
	queryBus := querybus.NewQueryBus()

	if err := queryBus.Register(queries.ListTodoListsQuery{},
		queryhandlers.NewListTodoListsHandler(repo, logger)); err != nil {
		return nil, err
	}
	if err := queryBus.Register(queries.GetTodoListQuery{},
		queryhandlers.NewGetTodoListHandler(repo)); err != nil {
		return nil, err
	}

	return queryBus, nil
}

// ProvideAPIClient creates the HTTP client used by the terminal UI
func ProvideAPIClient(cfg *config.Config, logger *zap.Logger) *apiclient.Client {
	return apiclient.New(cfg.APIBaseURL, cfg.ClientTimeout, logger)
}
