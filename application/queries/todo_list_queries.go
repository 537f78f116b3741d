package queries

import (
	"todolists/domain/core/entities"
	pkgerrors "todolists/pkg/errors"
)

// ListTodoListsQuery asks for every stored list
type ListTodoListsQuery struct{}

// Validate validates the ListTodoListsQuery
func (q ListTodoListsQuery) Validate() error {
	return nil
}

// ListTodoListsResult maps list IDs to lists, which is also its wire shape
type ListTodoListsResult map[string]*entities.TodoList

// GetTodoListQuery asks for a single list
type GetTodoListQuery struct {
	ListID string
}

// Validate validates the GetTodoListQuery
func (q GetTodoListQuery) Validate() error {
	if q.ListID == "" {
		return pkgerrors.NewValidationError("List ID is required")
	}
	return nil
}
