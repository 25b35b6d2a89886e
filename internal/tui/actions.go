package tui

import tea "github.com/charmbracelet/bubbletea"

// actionKind tags what a folders-panel line does when activated.
type actionKind int

const (
	actionNone actionKind = iota
	actionToggleFolder
	actionAddTodo
	actionDeleteFolder
	actionToggleTodo
	actionDeleteTodo
)

// folderAction is the annotation the folders renderer emits for each line.
// The controller routes key events on the selected line through the dispatch
// table below, keyed by kind; it never inspects the rendered text.
type folderAction struct {
	kind     actionKind
	folderID string
	todoID   string
}

// folderDispatch maps an action kind to its handler. Handlers mutate the
// model through the service and refresh the snapshot afterwards.
var folderDispatch = map[actionKind]func(m *dashboardModel, action folderAction) tea.Cmd{
	actionToggleFolder: func(m *dashboardModel, action folderAction) tea.Cmd {
		if err := m.service.ToggleFolderExpanded(m.ctx, action.folderID); err != nil {
			return nil
		}
		m.refresh()
		return nil
	},
	actionAddTodo: func(m *dashboardModel, action folderAction) tea.Cmd {
		m.showTodoModal(action.folderID)
		return nil
	},
	actionDeleteFolder: func(m *dashboardModel, action folderAction) tea.Cmd {
		m.askConfirm(confirmDeleteFolder, action.folderID, m.folderName(action.folderID))
		return nil
	},
	actionToggleTodo: func(m *dashboardModel, action folderAction) tea.Cmd {
		if err := m.service.ToggleTodo(m.ctx, action.folderID, action.todoID); err != nil {
			return nil
		}
		m.refresh()
		return nil
	},
	actionDeleteTodo: func(m *dashboardModel, action folderAction) tea.Cmd {
		if err := m.service.DeleteTodo(m.ctx, action.folderID, action.todoID); err != nil {
			return nil
		}
		m.refresh()
		return nil
	},
}

// dispatch runs the handler registered for the action's kind.
func (m *dashboardModel) dispatch(action folderAction) tea.Cmd {
	handler, ok := folderDispatch[action.kind]
	if !ok {
		return nil
	}
	return handler(m, action)
}
