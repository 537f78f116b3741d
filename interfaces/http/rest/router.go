package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"todolists/application/commands/bus"
	querybus "todolists/application/queries/bus"
	"todolists/domain/core/valueobjects"
	"todolists/infrastructure/config"
	"todolists/interfaces/http/rest/handlers"
	"todolists/interfaces/http/rest/middleware"
	pkgerrors "todolists/pkg/errors"
	"todolists/pkg/observability"
)

// Router creates and configures the HTTP router
type Router struct {
	cfg        *config.Config
	commandBus *bus.CommandBus
	queryBus   *querybus.QueryBus
	ids        valueobjects.IDGenerator
	metrics    *observability.Collector
	logger     *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(
	cfg *config.Config,
	commandBus *bus.CommandBus,
	queryBus *querybus.QueryBus,
	ids valueobjects.IDGenerator,
	metrics *observability.Collector,
	logger *zap.Logger,
) *Router {
	return &Router{
		cfg:        cfg,
		commandBus: commandBus,
		queryBus:   queryBus,
		ids:        ids,
		metrics:    metrics,
		logger:     logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()
	errorHandler := pkgerrors.NewErrorHandler(rt.logger, rt.cfg.IsDevelopment())

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(middleware.Logger(rt.logger))
	if rt.cfg.EnableMetrics && rt.metrics != nil {
		router.Use(middleware.Metrics(rt.metrics))
	}
	router.Use(errorHandler.Middleware)

	if rt.cfg.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
			ExposedHeaders: []string{"X-Request-ID"},
			MaxAge:         300,
		}))
	}

	router.Get("/", handlers.Welcome)
	router.Get("/health", handlers.Health)
	if rt.cfg.EnableMetrics && rt.metrics != nil {
		router.Method(http.MethodGet, "/metrics", rt.metrics.Handler())
	}

	router.Route("/api/todolists", func(r chi.Router) {
		todoListHandler := handlers.NewTodoListHandler(rt.commandBus, rt.queryBus, rt.ids, errorHandler, rt.logger)
		r.Get("/", todoListHandler.ListTodoLists)
		r.Post("/", todoListHandler.CreateTodoList)
		r.Get("/{listID}", todoListHandler.GetTodoList)
		r.Put("/{listID}", todoListHandler.UpdateTodoList)
	})

	return router
}
