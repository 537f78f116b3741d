package entities

import (
	"encoding/json"
	"testing"

	pkgerrors "todolists/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string {
	return &s
}

func sampleTodos() []Todo {
	return []Todo{
		{ID: "1", Text: "first"},
		{ID: "2", Text: "second", Completed: true},
		{ID: "3", Text: "third", DueDate: strPtr("2024-01-10T00:00:00.000Z")},
	}
}

func TestNewTodoList(t *testing.T) {
	t.Run("creates empty list", func(t *testing.T) {
		list, err := NewTodoList("42", "Groceries")
		require.NoError(t, err)
		assert.Equal(t, "42", list.ID)
		assert.Equal(t, "Groceries", list.Title)
		assert.NotNil(t, list.Todos)
		assert.Empty(t, list.Todos)
	})

	t.Run("rejects empty title", func(t *testing.T) {
		_, err := NewTodoList("42", "")
		require.Error(t, err)
		assert.True(t, pkgerrors.IsValidation(err))
	})

	t.Run("rejects empty id", func(t *testing.T) {
		_, err := NewTodoList("", "Groceries")
		assert.True(t, pkgerrors.IsValidation(err))
	})
}

func TestIsCompleted(t *testing.T) {
	tests := []struct {
		name  string
		todos []Todo
		want  bool
	}{
		{"nil todos", nil, false},
		{"empty todos", []Todo{}, false},
		{"one open", []Todo{{ID: "1"}}, false},
		{"mixed", []Todo{{ID: "1", Completed: true}, {ID: "2"}}, false},
		{"all done", []Todo{{ID: "1", Completed: true}, {ID: "2", Completed: true}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsCompleted(tt.todos))
			list := TodoList{ID: "x", Title: "x", Todos: tt.todos}
			assert.Equal(t, tt.want, list.IsCompleted())
		})
	}
}

func TestTodoList_Rename(t *testing.T) {
	list := &TodoList{ID: "1", Title: "Old"}

	list.Rename("")
	assert.Equal(t, "Old", list.Title)

	list.Rename("New")
	assert.Equal(t, "New", list.Title)
}

func TestTodoList_CloneIsDeep(t *testing.T) {
	list := &TodoList{ID: "1", Title: "List", Todos: sampleTodos()}
	clone := list.Clone()

	clone.Todos[0].Text = "changed"
	*clone.Todos[2].DueDate = "2030-01-01T00:00:00.000Z"

	assert.Equal(t, "first", list.Todos[0].Text)
	assert.Equal(t, "2024-01-10T00:00:00.000Z", *list.Todos[2].DueDate)
}

func TestTodoList_MarshalJSON(t *testing.T) {
	list := TodoList{ID: "1", Title: "List"}

	data, err := json.Marshal(list)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"1","title":"List","todos":[]}`, string(data))

	list.Todos = []Todo{{ID: "a", Text: "do it"}}
	data, err = json.Marshal(&list)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"id":"1","title":"List","todos":[{"id":"a","text":"do it","completed":false,"dueDate":null}]}`,
		string(data),
	)
}
