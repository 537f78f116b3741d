package entities

import (
	"encoding/json"

	pkgerrors "todolists/pkg/errors"
)

// Todo is a single task inside a list. DueDate holds an ISO-8601 date-time
// string; nil means no due date.
type Todo struct {
	ID        string  `json:"id"`
	Text      string  `json:"text"`
	Completed bool    `json:"completed"`
	DueDate   *string `json:"dueDate"`
}

// TodoList is a named, ordered collection of todos
type TodoList struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Todos []Todo `json:"todos"`
}

// NewTodoList creates an empty list with the given identifier and title
func NewTodoList(id, title string) (*TodoList, error) {
	if id == "" {
		return nil, pkgerrors.NewValidationError("List ID is required")
	}
	if title == "" {
		return nil, pkgerrors.NewValidationError("Title is required")
	}

	return &TodoList{
		ID:    id,
		Title: title,
		Todos: []Todo{},
	}, nil
}

// Rename changes the list title. Empty titles are ignored.
func (l *TodoList) Rename(title string) {
	if title == "" {
		return
	}
	l.Title = title
}

// ReplaceTodos swaps the whole todo sequence for a copy of todos
func (l *TodoList) ReplaceTodos(todos []Todo) {
	l.Todos = CloneTodos(todos)
}

// IsCompleted reports whether the list is non-empty and fully done
func (l *TodoList) IsCompleted() bool {
	return IsCompleted(l.Todos)
}

// Clone returns a deep copy of the list
func (l *TodoList) Clone() *TodoList {
	if l == nil {
		return nil
	}
	return &TodoList{
		ID:    l.ID,
		Title: l.Title,
		Todos: CloneTodos(l.Todos),
	}
}

// MarshalJSON always encodes todos as an array
func (l TodoList) MarshalJSON() ([]byte, error) {
	type alias TodoList
	out := alias(l)
	if out.Todos == nil {
		out.Todos = []Todo{}
	}
	return json.Marshal(out)
}

// IsCompleted reports whether todos is non-empty and every todo is completed
func IsCompleted(todos []Todo) bool {
	if len(todos) == 0 {
		return false
	}
	for _, todo := range todos {
		if !todo.Completed {
			return false
		}
	}
	return true
}
