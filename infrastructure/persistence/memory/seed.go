package memory

import (
	"context"
	"fmt"

	"todolists/application/ports"
	"todolists/domain/core/entities"
)

// SeedTodoLists returns the example lists a fresh server starts with
func SeedTodoLists() []*entities.TodoList {
	return []*entities.TodoList{
		{
			ID:    "0000000001",
			Title: "First List",
			Todos: []entities.Todo{
				{ID: "1001", Text: "First todo of first list!"},
			},
		},
		{
			ID:    "0000000002",
			Title: "Second List",
			Todos: []entities.Todo{
				{ID: "2001", Text: "First todo of second list!"},
			},
		},
	}
}

// Seed stores the example lists in repo
func Seed(ctx context.Context, repo ports.TodoListRepository) error {
	for _, list := range SeedTodoLists() {
		if err := repo.Create(ctx, list); err != nil {
			return fmt.Errorf("failed to seed list %s: %w", list.ID, err)
		}
	}
	return nil
}
