package handlers

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"todolists/application/commands"
	"todolists/application/commands/bus"
	"todolists/application/ports"
	"todolists/domain/core/entities"
	"todolists/pkg/observability"
)

// CreateTodoListHandler handles list creation commands
type CreateTodoListHandler struct {
	repo    ports.TodoListRepository
	metrics *observability.Collector
	logger  *zap.Logger
}

// NewCreateTodoListHandler creates a new create list handler
func NewCreateTodoListHandler(
	repo ports.TodoListRepository,
	metrics *observability.Collector,
	logger *zap.Logger,
) *CreateTodoListHandler {
	return &CreateTodoListHandler{
		repo:    repo,
		metrics: metrics,
		logger:  logger,
	}
}

// Handle executes the create list command
func (h *CreateTodoListHandler) Handle(ctx context.Context, cmd bus.Command) error {
	c, ok := cmd.(commands.CreateTodoListCommand)
	if !ok {
		return fmt.Errorf("unexpected command type %T", cmd)
	}

	list, err := entities.NewTodoList(c.ListID, c.Title)
	if err != nil {
		return err
	}

	if err := h.repo.Create(ctx, list); err != nil {
		return fmt.Errorf("failed to create todo list: %w", err)
	}
	c.Stored(list.Clone())

	if h.metrics != nil {
		h.metrics.ListsCreated.Inc()
		if count, err := h.repo.Count(ctx); err == nil {
			h.metrics.ListsStored.Set(float64(count))
		}
	}

	h.logger.Info("Todo list created",
		zap.String("listID", list.ID),
		zap.String("title", list.Title),
	)

	return nil
}
