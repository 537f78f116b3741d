package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"todolists/domain/core/entities"
	"todolists/infrastructure/apiclient"
)

// TodoListAPI is the part of the API client the UI depends on
type TodoListAPI interface {
	FetchTodoLists(ctx context.Context) (map[string]*entities.TodoList, error)
	CreateTodoList(ctx context.Context, title string) (*entities.TodoList, error)
	UpdateTodoList(ctx context.Context, id string, update apiclient.Update) (*entities.TodoList, error)
}

const (
	loadFailedMessage   = "Failed to load todo lists. Please try again."
	createFailedMessage = "Failed to create new list. Please try again."
	saveFailedMessage   = "Failed to save list. Please try again."
)

type listsLoadedMsg struct {
	lists map[string]*entities.TodoList
}

type listsLoadFailedMsg struct {
	err error
}

type listCreatedMsg struct {
	list *entities.TodoList
}

type listCreateFailedMsg struct {
	err error
}

type listSavedMsg struct {
	list *entities.TodoList
}

type listSaveFailedMsg struct {
	listID string
	err    error
}

func fetchLists(api TodoListAPI) tea.Cmd {
	return func() tea.Msg {
		lists, err := api.FetchTodoLists(context.Background())
		if err != nil {
			return listsLoadFailedMsg{err: err}
		}
		return listsLoadedMsg{lists: lists}
	}
}

func createList(api TodoListAPI, title string) tea.Cmd {
	return func() tea.Msg {
		list, err := api.CreateTodoList(context.Background(), title)
		if err != nil {
			return listCreateFailedMsg{err: err}
		}
		return listCreatedMsg{list: list}
	}
}

// saveTodos persists todos, which the caller must not modify afterwards
func saveTodos(api TodoListAPI, listID string, todos []entities.Todo) tea.Cmd {
	update := apiclient.TodosUpdate(todos)
	return func() tea.Msg {
		list, err := api.UpdateTodoList(context.Background(), listID, update)
		if err != nil {
			return listSaveFailedMsg{listID: listID, err: err}
		}
		return listSavedMsg{list: list}
	}
}
