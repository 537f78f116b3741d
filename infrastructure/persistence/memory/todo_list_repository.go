package memory

import (
	"context"
	"sync"

	"todolists/domain/core/entities"
	pkgerrors "todolists/pkg/errors"
)

// TodoListRepository is an in-memory implementation of
// ports.TodoListRepository. Contents live for the lifetime of the process.
type TodoListRepository struct {
	mu    sync.RWMutex
	lists map[string]*entities.TodoList
}

// NewTodoListRepository creates an empty repository
func NewTodoListRepository() *TodoListRepository {
	return &TodoListRepository{
		lists: make(map[string]*entities.TodoList),
	}
}

// FindAll returns copies of every stored list keyed by ID
func (r *TodoListRepository) FindAll(ctx context.Context) (map[string]*entities.TodoList, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string]*entities.TodoList, len(r.lists))
	for id, list := range r.lists {
		result[id] = list.Clone()
	}
	return result, nil
}

// FindByID returns a copy of a single list
func (r *TodoListRepository) FindByID(ctx context.Context, id string) (*entities.TodoList, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list, exists := r.lists[id]
	if !exists {
		return nil, pkgerrors.NewNotFoundError("Todo list")
	}
	return list.Clone(), nil
}

// Create stores a copy of list
func (r *TodoListRepository) Create(ctx context.Context, list *entities.TodoList) error {
	if list == nil || list.ID == "" {
		return pkgerrors.NewValidationError("List ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.lists[list.ID]; exists {
		return pkgerrors.NewConflictError("Todo list already exists").
			WithDetails(map[string]interface{}{"id": list.ID})
	}

	r.lists[list.ID] = list.Clone()
	return nil
}

// Update applies mutate to a working copy under the write lock and stores the
// copy only when mutate succeeds.
func (r *TodoListRepository) Update(ctx context.Context, id string, mutate func(*entities.TodoList) error) (*entities.TodoList, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, exists := r.lists[id]
	if !exists {
		return nil, pkgerrors.NewNotFoundError("Todo list")
	}

	working := current.Clone()
	if err := mutate(working); err != nil {
		return nil, err
	}
	// The identifier is immutable whatever mutate did.
	working.ID = id

	r.lists[id] = working
	return working.Clone(), nil
}

// Count returns the number of stored lists
func (r *TodoListRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.lists), nil
}
