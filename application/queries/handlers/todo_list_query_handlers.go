package handlers

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"todolists/application/ports"
	"todolists/application/queries"
	"todolists/application/queries/bus"
)

// ListTodoListsHandler answers ListTodoListsQuery
type ListTodoListsHandler struct {
	repo   ports.TodoListRepository
	logger *zap.Logger
}

// NewListTodoListsHandler creates a new handler instance
func NewListTodoListsHandler(repo ports.TodoListRepository, logger *zap.Logger) *ListTodoListsHandler {
	return &ListTodoListsHandler{repo: repo, logger: logger}
}

// Handle returns every stored list
func (h *ListTodoListsHandler) Handle(ctx context.Context, query bus.Query) (interface{}, error) {
	if _, ok := query.(queries.ListTodoListsQuery); !ok {
		return nil, fmt.Errorf("unexpected query type %T", query)
	}

	lists, err := h.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list todo lists: %w", err)
	}

	h.logger.Debug("Listed todo lists", zap.Int("count", len(lists)))
	return queries.ListTodoListsResult(lists), nil
}

// GetTodoListHandler answers GetTodoListQuery
type GetTodoListHandler struct {
	repo ports.TodoListRepository
}

// NewGetTodoListHandler creates a new handler instance
func NewGetTodoListHandler(repo ports.TodoListRepository) *GetTodoListHandler {
	return &GetTodoListHandler{repo: repo}
}

// Handle returns a single list or a NotFound error
func (h *GetTodoListHandler) Handle(ctx context.Context, query bus.Query) (interface{}, error) {
	q, ok := query.(queries.GetTodoListQuery)
	if !ok {
		return nil, fmt.Errorf("unexpected query type %T", query)
	}

	return h.repo.FindByID(ctx, q.ListID)
}
