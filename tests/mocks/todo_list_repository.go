package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"todolists/domain/core/entities"
)

// MockTodoListRepository is a testify mock of ports.TodoListRepository
type MockTodoListRepository struct {
	mock.Mock
}

func (m *MockTodoListRepository) FindAll(ctx context.Context) (map[string]*entities.TodoList, error) {
	args := m.Called(ctx)
	if args.Get(0) != nil {
		return args.Get(0).(map[string]*entities.TodoList), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTodoListRepository) FindByID(ctx context.Context, id string) (*entities.TodoList, error) {
	args := m.Called(ctx, id)
	if args.Get(0) != nil {
		return args.Get(0).(*entities.TodoList), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTodoListRepository) Create(ctx context.Context, list *entities.TodoList) error {
	args := m.Called(ctx, list)
	return args.Error(0)
}

// Update runs mutate against the list given to Return so tests observe the
// merge exactly as a real store would apply it.
func (m *MockTodoListRepository) Update(ctx context.Context, id string, mutate func(*entities.TodoList) error) (*entities.TodoList, error) {
	args := m.Called(ctx, id, mutate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	list := args.Get(0).(*entities.TodoList).Clone()
	if err := mutate(list); err != nil {
		return nil, err
	}
	return list, args.Error(1)
}

func (m *MockTodoListRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}
