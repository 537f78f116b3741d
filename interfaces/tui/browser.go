// Package tui is the terminal front end: a list browser with an editor for
// the selected list.
package tui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"todolists/domain/core/entities"
	"todolists/domain/core/valueobjects"
)

type browserState int

const (
	stateLoading browserState = iota
	stateReady
	stateFailed
)

type browserFocus int

const (
	focusLists browserFocus = iota
	focusCreate
	focusEditor
)

const emptyListsMessage = "No todo lists yet. Create your first one!"

// BrowserModel is the root model. It owns the lists and at most one editor,
// which always belongs to the active list.
type BrowserModel struct {
	api     TodoListAPI
	logger  *zap.Logger
	todoIDs valueobjects.IDGenerator
	now     func() time.Time

	state   browserState
	spinner spinner.Model
	lists   map[string]*entities.TodoList
	order   []string
	cursor  int

	focus     browserFocus
	create    textinput.Model
	createErr string

	activeID string
	editor   *EditorModel
}

// BrowserOption configures a BrowserModel
type BrowserOption func(*BrowserModel)

// WithClock sets the clock used for due-date labels and date entry
func WithClock(now func() time.Time) BrowserOption {
	return func(m *BrowserModel) {
		m.now = now
	}
}

// WithTodoIDs sets the generator for new todo identifiers
func WithTodoIDs(ids valueobjects.IDGenerator) BrowserOption {
	return func(m *BrowserModel) {
		m.todoIDs = ids
	}
}

// NewBrowserModel creates the root model
func NewBrowserModel(api TodoListAPI, logger *zap.Logger, opts ...BrowserOption) BrowserModel {
	sp := spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(accentStyle))

	create := textinput.New()
	create.Prompt = "+ "
	create.Placeholder = "New list title..."
	create.CharLimit = 200

	m := BrowserModel{
		api:     api,
		logger:  logger,
		todoIDs: valueobjects.NewTimeIDGenerator(),
		now:     time.Now,
		state:   stateLoading,
		spinner: sp,
		lists:   map[string]*entities.TodoList{},
		create:  create,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init starts loading the lists
func (m BrowserModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, fetchLists(m.api))
}

// ActiveID returns the selected list's identifier, or "" when none is selected
func (m BrowserModel) ActiveID() string {
	return m.activeID
}

// Editor returns the active list's editor, or nil when none is selected
func (m BrowserModel) Editor() *EditorModel {
	return m.editor
}

// Update implements tea.Model
func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if m.state != stateLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case listsLoadedMsg:
		m.state = stateReady
		m.lists = msg.lists
		if m.lists == nil {
			m.lists = map[string]*entities.TodoList{}
		}
		m.reindex()
		if _, ok := m.lists[m.activeID]; !ok {
			m.clearSelection()
		}
		return m, nil

	case listsLoadFailedMsg:
		m.logger.Error("Failed to load todo lists", zap.Error(msg.err))
		m.state = stateFailed
		m.lists = map[string]*entities.TodoList{}
		m.order = nil
		m.clearSelection()
		return m, nil

	case listCreatedMsg:
		m.lists[msg.list.ID] = msg.list
		m.reindex()
		m.create.SetValue("")
		m.createErr = ""
		return m, nil

	case listCreateFailedMsg:
		m.logger.Error("Failed to create todo list", zap.Error(msg.err))
		m.createErr = createFailedMessage
		return m, nil

	case listSavedMsg:
		if msg.list != nil {
			m.lists[msg.list.ID] = msg.list
			m.reindex()
		}
		return m.forwardToEditor(msg)

	case listSaveFailedMsg:
		return m.forwardToEditor(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m BrowserModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.state {
	case stateLoading:
		if key.Matches(msg, browserKeys.Quit) {
			return m, tea.Quit
		}
		return m, nil
	case stateFailed:
		switch {
		case key.Matches(msg, browserKeys.Reload):
			return m.reload()
		case key.Matches(msg, browserKeys.Quit):
			return m, tea.Quit
		}
		return m, nil
	}

	switch m.focus {
	case focusCreate:
		return m.handleCreateKey(msg)
	case focusEditor:
		if m.editor != nil && !m.editor.Editing() {
			switch {
			case key.Matches(msg, browserKeys.Focus):
				return m.cycleFocus()
			case key.Matches(msg, browserKeys.Back):
				m.focus = focusLists
				return m, nil
			case key.Matches(msg, browserKeys.Quit):
				return m, tea.Quit
			}
		}
		return m.forwardToEditor(msg)
	}

	switch {
	case key.Matches(msg, browserKeys.Quit):
		return m, tea.Quit
	case key.Matches(msg, browserKeys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, browserKeys.Down):
		if m.cursor < len(m.order)-1 {
			m.cursor++
		}
	case key.Matches(msg, browserKeys.Select):
		if m.cursor < len(m.order) {
			m.selectList(m.order[m.cursor])
			m.focus = focusEditor
		}
	case key.Matches(msg, browserKeys.New):
		m.focus = focusCreate
		cmd := m.create.Focus()
		return m, cmd
	case key.Matches(msg, browserKeys.Reload):
		return m.reload()
	case key.Matches(msg, browserKeys.Focus):
		return m.cycleFocus()
	}
	return m, nil
}

func (m BrowserModel) handleCreateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		title := strings.TrimSpace(m.create.Value())
		if title == "" {
			return m, nil
		}
		m.createErr = ""
		return m, createList(m.api, title)
	case "esc":
		m.create.Blur()
		m.focus = focusLists
		return m, nil
	case "tab":
		return m.cycleFocus()
	}

	var cmd tea.Cmd
	m.create, cmd = m.create.Update(msg)
	return m, cmd
}

func (m BrowserModel) cycleFocus() (tea.Model, tea.Cmd) {
	m.create.Blur()
	switch m.focus {
	case focusLists:
		m.focus = focusCreate
		cmd := m.create.Focus()
		return m, cmd
	case focusCreate:
		if m.editor != nil {
			m.focus = focusEditor
		} else {
			m.focus = focusLists
		}
	default:
		m.focus = focusLists
	}
	return m, nil
}

func (m BrowserModel) reload() (tea.Model, tea.Cmd) {
	m.state = stateLoading
	return m, tea.Batch(m.spinner.Tick, fetchLists(m.api))
}

// selectList makes id the active list. Choosing a different list replaces
// the editor, discarding unsaved edits; choosing the active one keeps it.
func (m *BrowserModel) selectList(id string) {
	if id == m.activeID && m.editor != nil {
		return
	}
	list, ok := m.lists[id]
	if !ok {
		return
	}
	editor := NewEditorModel(list, m.api, m.todoIDs, m.logger, m.now)
	m.activeID = id
	m.editor = &editor
}

func (m *BrowserModel) clearSelection() {
	m.activeID = ""
	m.editor = nil
	if m.focus == focusEditor {
		m.focus = focusLists
	}
}

func (m BrowserModel) forwardToEditor(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.editor == nil {
		return m, nil
	}
	editor, cmd := m.editor.Update(msg)
	m.editor = &editor
	return m, cmd
}

// reindex sorts list IDs, which for time and sequence IDs is creation order
func (m *BrowserModel) reindex() {
	m.order = make([]string, 0, len(m.lists))
	for id := range m.lists {
		m.order = append(m.order, id)
	}
	sort.Strings(m.order)

	if m.cursor >= len(m.order) {
		m.cursor = len(m.order) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// View implements tea.Model
func (m BrowserModel) View() string {
	switch m.state {
	case stateLoading:
		return panel(fmt.Sprintf("%s Loading todo lists...", m.spinner.View()), false)
	case stateFailed:
		return panel(errorStyle.Render(loadFailedMessage)+"\n\n"+
			helpLine(browserKeys.Reload, browserKeys.Quit), false)
	}

	left := panel(m.listsView(), m.focus != focusEditor)
	if m.editor == nil {
		return left
	}
	right := panel(m.editor.View(), m.focus == focusEditor)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
}

func (m BrowserModel) listsView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Todo Lists"))
	b.WriteString("\n\n")

	if len(m.order) == 0 {
		b.WriteString(mutedStyle.Render(emptyListsMessage))
		b.WriteString("\n")
	}

	for i, id := range m.order {
		list := m.lists[id]

		title := list.Title
		if list.IsCompleted() {
			title = successStyle.Render("✓ ") + doneStyle.Render(list.Title)
		}
		if id == m.activeID {
			title = accentStyle.Render("● ") + title
		}

		prefix := "  "
		if i == m.cursor && m.focus == focusLists {
			prefix = selectedStyle.Render(">") + " "
		}
		b.WriteString(prefix + title + "\n")
	}

	b.WriteString("\n" + m.create.View() + "\n")
	if m.createErr != "" {
		b.WriteString(errorStyle.Render(m.createErr) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(helpLine(browserKeys.Select, browserKeys.New, browserKeys.Focus,
		browserKeys.Reload, browserKeys.Quit))

	return b.String()
}
