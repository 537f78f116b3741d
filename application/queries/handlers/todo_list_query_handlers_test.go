package handlers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"todolists/application/queries"
	"todolists/domain/core/entities"
	pkgerrors "todolists/pkg/errors"
	"todolists/tests/mocks"
)

func TestListTodoListsHandler_Handle(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.MockTodoListRepository)
	stored := map[string]*entities.TodoList{
		"1": {ID: "1", Title: "First", Todos: []entities.Todo{}},
		"2": {ID: "2", Title: "Second", Todos: []entities.Todo{}},
	}
	repo.On("FindAll", ctx).Return(stored, nil)

	handler := NewListTodoListsHandler(repo, zap.NewNop())
	result, err := handler.Handle(ctx, queries.ListTodoListsQuery{})

	require.NoError(t, err)
	lists, ok := result.(queries.ListTodoListsResult)
	require.True(t, ok)
	assert.Len(t, lists, 2)
	assert.Equal(t, "Second", lists["2"].Title)
	repo.AssertExpectations(t)
}

func TestGetTodoListHandler_Handle(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.MockTodoListRepository)
	repo.On("FindByID", ctx, "1").Return(&entities.TodoList{ID: "1", Title: "First"}, nil)
	repo.On("FindByID", ctx, "404").Return(nil, pkgerrors.NewNotFoundError("Todo list"))

	handler := NewGetTodoListHandler(repo)

	result, err := handler.Handle(ctx, queries.GetTodoListQuery{ListID: "1"})
	require.NoError(t, err)
	assert.Equal(t, "First", result.(*entities.TodoList).Title)

	_, err = handler.Handle(ctx, queries.GetTodoListQuery{ListID: "404"})
	assert.True(t, pkgerrors.IsNotFound(err))

	_, err = handler.Handle(ctx, queries.ListTodoListsQuery{})
	assert.Error(t, err)
}
