package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"todolists/application/commands"
	"todolists/application/commands/bus"
	"todolists/application/queries"
	querybus "todolists/application/queries/bus"
	"todolists/domain/core/entities"
	"todolists/domain/core/valueobjects"
	pkgerrors "todolists/pkg/errors"
)

const invalidBodyMessage = "Invalid request body"

// TodoListHandler handles todo list HTTP requests
type TodoListHandler struct {
	commandBus   *bus.CommandBus
	queryBus     *querybus.QueryBus
	ids          valueobjects.IDGenerator
	errorHandler *pkgerrors.ErrorHandler
	logger       *zap.Logger
}

// NewTodoListHandler creates a new todo list handler
func NewTodoListHandler(
	commandBus *bus.CommandBus,
	queryBus *querybus.QueryBus,
	ids valueobjects.IDGenerator,
	errorHandler *pkgerrors.ErrorHandler,
	logger *zap.Logger,
) *TodoListHandler {
	return &TodoListHandler{
		commandBus:   commandBus,
		queryBus:     queryBus,
		ids:          ids,
		errorHandler: errorHandler,
		logger:       logger,
	}
}

// CreateTodoListRequest represents the request body for creating a list
type CreateTodoListRequest struct {
	Title string `json:"title"`
}

// UpdateTodoListRequest represents the request body for updating a list.
// Absent and null fields are both decoded as nil.
type UpdateTodoListRequest struct {
	Title *string          `json:"title,omitempty"`
	Todos *[]entities.Todo `json:"todos,omitempty"`
}

// ListTodoLists handles GET /api/todolists
func (h *TodoListHandler) ListTodoLists(w http.ResponseWriter, r *http.Request) {
	result, err := h.queryBus.Ask(r.Context(), queries.ListTodoListsQuery{})
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, result)
}

// GetTodoList handles GET /api/todolists/{listID}
func (h *TodoListHandler) GetTodoList(w http.ResponseWriter, r *http.Request) {
	result, err := h.queryBus.Ask(r.Context(), queries.GetTodoListQuery{ListID: chi.URLParam(r, "listID")})
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, result)
}

// CreateTodoList handles POST /api/todolists
func (h *TodoListHandler) CreateTodoList(w http.ResponseWriter, r *http.Request) {
	var req CreateTodoListRequest
	if err := decodeBody(r, &req); err != nil {
		h.errorHandler.HandleStatus(w, r, http.StatusBadRequest, invalidBodyMessage)
		return
	}

	cmd := commands.CreateTodoListCommand{
		ListID: h.ids.NewID(),
		Title:  req.Title,
		Result: &commands.TodoListResult{},
	}

	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, cmd.Result.List)
}

// UpdateTodoList handles PUT /api/todolists/{listID}
func (h *TodoListHandler) UpdateTodoList(w http.ResponseWriter, r *http.Request) {
	var req UpdateTodoListRequest
	if err := decodeBody(r, &req); err != nil {
		h.errorHandler.HandleStatus(w, r, http.StatusBadRequest, invalidBodyMessage)
		return
	}

	cmd := commands.UpdateTodoListCommand{
		ListID: chi.URLParam(r, "listID"),
		Title:  req.Title,
		Todos:  req.Todos,
		Result: &commands.TodoListResult{},
	}

	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	// Respond with this request's merge, not whatever is stored by now
	h.respondJSON(w, http.StatusOK, cmd.Result.List)
}

// decodeBody decodes a JSON body. An empty body decodes as {}.
func decodeBody(r *http.Request, out interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func (h *TodoListHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("Failed to encode response", zap.Error(err))
	}
}
