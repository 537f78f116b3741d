package handlers

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"todolists/application/commands"
	"todolists/application/commands/bus"
	"todolists/application/ports"
	"todolists/pkg/observability"
)

// UpdateTodoListHandler handles list update commands
type UpdateTodoListHandler struct {
	repo    ports.TodoListRepository
	metrics *observability.Collector
	logger  *zap.Logger
}

// NewUpdateTodoListHandler creates a new update list handler
func NewUpdateTodoListHandler(
	repo ports.TodoListRepository,
	metrics *observability.Collector,
	logger *zap.Logger,
) *UpdateTodoListHandler {
	return &UpdateTodoListHandler{
		repo:    repo,
		metrics: metrics,
		logger:  logger,
	}
}

// Handle executes the update list command
func (h *UpdateTodoListHandler) Handle(ctx context.Context, cmd bus.Command) error {
	c, ok := cmd.(commands.UpdateTodoListCommand)
	if !ok {
		return fmt.Errorf("unexpected command type %T", cmd)
	}

	updated, err := h.repo.Update(ctx, c.ListID, c.Apply)
	if err != nil {
		return fmt.Errorf("failed to update todo list: %w", err)
	}

	c.Stored(updated)

	if h.metrics != nil {
		h.metrics.ListsUpdated.Inc()
	}

	h.logger.Info("Todo list updated",
		zap.String("listID", updated.ID),
		zap.Bool("titleChanged", c.Title != nil),
		zap.Bool("todosReplaced", c.Todos != nil),
		zap.Int("todoCount", len(updated.Todos)),
	)

	return nil
}
