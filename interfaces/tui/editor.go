package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"todolists/domain/core/entities"
	"todolists/domain/core/valueobjects"
	"todolists/pkg/utils"
)

type editorMode int

const (
	modeNavigate editorMode = iota
	modeEditText
	modeEditDue
)

const (
	emptyTodosMessage = "No todos yet. Add a new todo to get started!"
	dueDateLayout     = "2006-01-02"
)

// EditorModel edits the todos of one list. Edits are kept locally; toggle,
// delete and explicit save send the whole sequence to the API.
type EditorModel struct {
	api    TodoListAPI
	ids    valueobjects.IDGenerator
	logger *zap.Logger
	now    func() time.Time

	listID string
	title  string
	todos  []entities.Todo
	cursor int

	mode  editorMode
	input textinput.Model
	// restore undoes the current text edit on cancel
	restore func([]entities.Todo) []entities.Todo

	status      string
	statusError bool
}

// NewEditorModel creates an editor working on a copy of list
func NewEditorModel(list *entities.TodoList, api TodoListAPI, ids valueobjects.IDGenerator, logger *zap.Logger, now func() time.Time) EditorModel {
	input := textinput.New()
	input.Prompt = "> "
	input.CharLimit = 500

	return EditorModel{
		api:    api,
		ids:    ids,
		logger: logger,
		now:    now,
		listID: list.ID,
		title:  list.Title,
		todos:  entities.CloneTodos(list.Todos),
		input:  input,
	}
}

// ListID returns the identifier of the list being edited
func (m EditorModel) ListID() string {
	return m.listID
}

// Todos returns a copy of the local working todos
func (m EditorModel) Todos() []entities.Todo {
	return entities.CloneTodos(m.todos)
}

// Editing reports whether a text input currently owns the keyboard
func (m EditorModel) Editing() bool {
	return m.mode != modeNavigate
}

// Update handles key presses and save results for this list
func (m EditorModel) Update(msg tea.Msg) (EditorModel, tea.Cmd) {
	switch msg := msg.(type) {
	case listSavedMsg:
		if msg.list == nil || msg.list.ID != m.listID {
			return m, nil
		}
		m.title = msg.list.Title
		m.setStatus("Saved", false)
		return m, nil

	case listSaveFailedMsg:
		if msg.listID != m.listID {
			return m, nil
		}
		m.logger.Error("Failed to save list", zap.String("listID", msg.listID), zap.Error(msg.err))
		m.setStatus(saveFailedMessage, true)
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeEditText:
			return m.updateEditText(msg)
		case modeEditDue:
			return m.updateEditDue(msg)
		default:
			return m.updateNavigate(msg)
		}
	}

	return m, nil
}

func (m EditorModel) updateNavigate(msg tea.KeyMsg) (EditorModel, tea.Cmd) {
	switch {
	case key.Matches(msg, editorKeys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, editorKeys.Down):
		if m.cursor < len(m.todos)-1 {
			m.cursor++
		}
	case key.Matches(msg, editorKeys.Add):
		m.todos = entities.AddTodo(m.todos, m.ids.NewID())
		m.cursor = len(m.todos) - 1
		index := m.cursor
		m.restore = func(todos []entities.Todo) []entities.Todo {
			return entities.RemoveTodo(todos, index)
		}
		return m.startInput(modeEditText, "", "What needs doing?")
	case key.Matches(msg, editorKeys.Edit):
		if m.hasSelection() {
			index, text := m.cursor, m.todos[m.cursor].Text
			m.restore = func(todos []entities.Todo) []entities.Todo {
				return entities.SetTodoText(todos, index, text)
			}
			return m.startInput(modeEditText, text, "What needs doing?")
		}
	case key.Matches(msg, editorKeys.DueDate):
		if m.hasSelection() {
			return m.startInput(modeEditDue, m.currentDueDate(), "YYYY-MM-DD, empty to clear")
		}
	case key.Matches(msg, editorKeys.Toggle):
		if m.hasSelection() {
			m.todos = entities.ToggleTodo(m.todos, m.cursor)
			return m, m.save()
		}
	case key.Matches(msg, editorKeys.Delete):
		if m.hasSelection() {
			m.todos = entities.RemoveTodo(m.todos, m.cursor)
			if m.cursor >= len(m.todos) && m.cursor > 0 {
				m.cursor--
			}
			return m, m.save()
		}
	case key.Matches(msg, editorKeys.Save):
		return m, m.save()
	}
	return m, nil
}

// updateEditText applies every keystroke to the todo as it is typed. Cancel
// restores the text, or drops a todo that was just added.
func (m EditorModel) updateEditText(msg tea.KeyMsg) (EditorModel, tea.Cmd) {
	switch {
	case key.Matches(msg, editorKeys.Confirm):
		m.stopInput()
		return m, nil
	case key.Matches(msg, editorKeys.Cancel):
		if m.restore != nil {
			m.todos = m.restore(m.todos)
		}
		if m.cursor >= len(m.todos) && m.cursor > 0 {
			m.cursor--
		}
		m.stopInput()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.todos = entities.SetTodoText(m.todos, m.cursor, m.input.Value())
	return m, cmd
}

func (m EditorModel) updateEditDue(msg tea.KeyMsg) (EditorModel, tea.Cmd) {
	switch {
	case key.Matches(msg, editorKeys.Cancel):
		m.stopInput()
		return m, nil
	case key.Matches(msg, editorKeys.Confirm):
		value := strings.TrimSpace(m.input.Value())
		if value == "" {
			m.todos = entities.SetTodoDueDate(m.todos, m.cursor, nil)
			m.stopInput()
			return m, nil
		}

		day, err := utils.ParseCalendarDate(value, m.now().Location())
		if err != nil {
			m.setStatus("Enter the due date as YYYY-MM-DD", true)
			return m, nil
		}
		due := utils.ToISOString(day)
		m.todos = entities.SetTodoDueDate(m.todos, m.cursor, &due)
		m.stopInput()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m EditorModel) startInput(mode editorMode, value, placeholder string) (EditorModel, tea.Cmd) {
	m.mode = mode
	m.input.SetValue(value)
	m.input.CursorEnd()
	m.input.Placeholder = placeholder
	m.setStatus("", false)
	cmd := m.input.Focus()
	return m, cmd
}

func (m *EditorModel) stopInput() {
	m.mode = modeNavigate
	m.restore = nil
	m.input.SetValue("")
	m.input.Blur()
}

func (m *EditorModel) setStatus(status string, isError bool) {
	m.status = status
	m.statusError = isError
}

func (m EditorModel) hasSelection() bool {
	return m.cursor >= 0 && m.cursor < len(m.todos)
}

func (m EditorModel) currentDueDate() string {
	due := m.todos[m.cursor].DueDate
	if due == nil {
		return ""
	}
	loc := m.now().Location()
	parsed, ok := valueobjects.ParseDueDate(*due, loc)
	if !ok {
		return ""
	}
	return parsed.In(loc).Format(dueDateLayout)
}

// save snapshots the local todos. Failures only set the status line; local
// edits are kept.
func (m EditorModel) save() tea.Cmd {
	return saveTodos(m.api, m.listID, entities.CloneTodos(m.todos))
}

// View renders the editor
func (m EditorModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n\n")

	if len(m.todos) == 0 {
		b.WriteString(mutedStyle.Render(emptyTodosMessage))
		b.WriteString("\n")
	}

	now := m.now()
	for i, todo := range m.todos {
		b.WriteString(m.renderTodo(i, todo, now))
		b.WriteString("\n")
	}

	if m.Editing() {
		label := "Edit todo"
		if m.mode == modeEditDue {
			label = "Due date"
		}
		b.WriteString("\n" + accentStyle.Render(label) + "\n" + m.input.View() + "\n")
	}

	if m.status != "" {
		style := successStyle
		if m.statusError {
			style = errorStyle
		}
		b.WriteString("\n" + style.Render(m.status) + "\n")
	}

	b.WriteString("\n")
	if m.Editing() {
		b.WriteString(helpLine(editorKeys.Confirm, editorKeys.Cancel))
	} else {
		b.WriteString(helpLine(editorKeys.Add, editorKeys.Edit, editorKeys.DueDate,
			editorKeys.Toggle, editorKeys.Delete, editorKeys.Save))
	}

	return b.String()
}

func (m EditorModel) renderTodo(i int, todo entities.Todo, now time.Time) string {
	box := mutedStyle.Render(boxUnchecked)
	text := todo.Text
	if text == "" {
		text = mutedStyle.Render("(empty)")
	}
	if todo.Completed {
		box = successStyle.Render(boxChecked)
		text = doneStyle.Render(todo.Text)
	}

	line := fmt.Sprintf("%s %s", box, text)
	if status := valueobjects.ClassifyDue(todo.DueDate, now); status != nil {
		line += "  " + dueStyle(status.Color()).Render(status.Label)
	}

	prefix := "  "
	if i == m.cursor {
		prefix = selectedStyle.Render(">") + " "
	}
	return prefix + line
}
