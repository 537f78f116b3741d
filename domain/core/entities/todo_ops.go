package entities

// The helpers below never modify their input; each returns a fresh slice so
// callers can hold on to earlier snapshots.

// CloneTodos deep-copies todos. A nil input yields an empty slice.
func CloneTodos(todos []Todo) []Todo {
	out := make([]Todo, len(todos))
	for i, todo := range todos {
		out[i] = todo
		if todo.DueDate != nil {
			due := *todo.DueDate
			out[i].DueDate = &due
		}
	}
	return out
}

// AddTodo appends an empty, incomplete todo without a due date
func AddTodo(todos []Todo, id string) []Todo {
	out := CloneTodos(todos)
	return append(out, Todo{ID: id})
}

// SetTodoText updates the text of the todo at index
func SetTodoText(todos []Todo, index int, text string) []Todo {
	out := CloneTodos(todos)
	if !inRange(out, index) {
		return out
	}
	out[index].Text = text
	return out
}

// ToggleTodo flips the completed flag of the todo at index
func ToggleTodo(todos []Todo, index int) []Todo {
	out := CloneTodos(todos)
	if !inRange(out, index) {
		return out
	}
	out[index].Completed = !out[index].Completed
	return out
}

// SetTodoDueDate sets or clears (nil) the due date of the todo at index
func SetTodoDueDate(todos []Todo, index int, dueDate *string) []Todo {
	out := CloneTodos(todos)
	if !inRange(out, index) {
		return out
	}
	if dueDate == nil {
		out[index].DueDate = nil
		return out
	}
	due := *dueDate
	out[index].DueDate = &due
	return out
}

// RemoveTodo drops the todo at index, keeping the others in order
func RemoveTodo(todos []Todo, index int) []Todo {
	out := CloneTodos(todos)
	if !inRange(out, index) {
		return out
	}
	return append(out[:index], out[index+1:]...)
}

func inRange(todos []Todo, index int) bool {
	return index >= 0 && index < len(todos)
}
