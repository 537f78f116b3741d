package ports

import (
	"context"

	"todolists/domain/core/entities"
)

// TodoListRepository defines the interface for todo list persistence.
// Implementations hand out copies; callers never share state with the store.
type TodoListRepository interface {
	// FindAll returns every stored list keyed by its ID
	FindAll(ctx context.Context) (map[string]*entities.TodoList, error)

	// FindByID returns a NotFound error when the list does not exist
	FindByID(ctx context.Context, id string) (*entities.TodoList, error)

	// Create stores a new list. A list with the same ID is a Conflict.
	Create(ctx context.Context, list *entities.TodoList) error

	// Update applies mutate to the stored list atomically and returns the
	// result. If mutate fails the stored list is left untouched.
	Update(ctx context.Context, id string, mutate func(*entities.TodoList) error) (*entities.TodoList, error)

	// Count returns the number of stored lists
	Count(ctx context.Context) (int, error)
}
