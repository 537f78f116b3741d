package commands

import (
	"todolists/domain/core/entities"
	pkgerrors "todolists/pkg/errors"
	"todolists/pkg/utils"
)

// CreateTodoListCommand creates a new, empty list. ListID is assigned by the
// caller before the command is sent.
type CreateTodoListCommand struct {
	ListID string `json:"id" validate:"required"`
	Title  string `json:"title" validate:"required"`

	// Result, when set, receives the stored list
	Result *TodoListResult `json:"-"`
}

// TodoListResult carries the list a command stored, as it was at that moment
type TodoListResult struct {
	List *entities.TodoList
}

// set records list when the caller asked for the result
func (r *TodoListResult) set(list *entities.TodoList) {
	if r != nil {
		r.List = list
	}
}

// Validate validates the command
func (c CreateTodoListCommand) Validate() error {
	if c.Title == "" {
		return pkgerrors.NewValidationError("Title is required")
	}
	if err := utils.ValidateStruct(c); err != nil {
		return pkgerrors.NewValidationError(err.Error())
	}
	return nil
}

// UpdateTodoListCommand merges a partial update into an existing list.
// A nil field leaves the stored value as it is. An empty title is treated
// the same as an omitted one; an empty Todos slice clears the list.
type UpdateTodoListCommand struct {
	ListID string           `json:"id" validate:"required"`
	Title  *string          `json:"title,omitempty"`
	Todos  *[]entities.Todo `json:"todos,omitempty"`

	// Result, when set, receives the merged list
	Result *TodoListResult `json:"-"`
}

// Validate validates the command
func (c UpdateTodoListCommand) Validate() error {
	if err := utils.ValidateStruct(c); err != nil {
		return pkgerrors.NewValidationError(err.Error())
	}
	return nil
}

// Apply merges the update into list
func (c UpdateTodoListCommand) Apply(list *entities.TodoList) error {
	if c.Title != nil {
		list.Rename(*c.Title)
	}
	if c.Todos != nil {
		list.ReplaceTodos(*c.Todos)
	}
	return nil
}

// Stored reports the list a create command persisted
func (c CreateTodoListCommand) Stored(list *entities.TodoList) {
	c.Result.set(list)
}

// Stored reports the list an update command persisted
func (c UpdateTodoListCommand) Stored(list *entities.TodoList) {
	c.Result.set(list)
}
