package tui

import (
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// modalKind selects which input overlay is open.
type modalKind int

const (
	modalNone modalKind = iota
	modalFolder
	modalTodo
	modalNote
)

// showFolderModal opens the new-folder prompt with a cleared, focused input.
func (m *dashboardModel) showFolderModal() {
	input := textinput.New()
	input.Placeholder = "Folder name"
	input.Width = 32
	input.Focus()

	m.folderInput = input
	m.modal = modalFolder
}

// showTodoModal opens the new-todo prompt, capturing the target folder for
// the whole lifetime of the modal.
func (m *dashboardModel) showTodoModal(folderID string) {
	input := textinput.New()
	input.Placeholder = "Todo text"
	input.Width = 32
	input.Focus()

	m.todoInput = input
	m.currentFolderID = folderID
	m.modal = modalTodo
}

// showNoteModal opens the new-note prompt with the title focused first.
func (m *dashboardModel) showNoteModal() {
	title := textinput.New()
	title.Placeholder = noteTitlePlaceholder
	title.Width = 32
	title.Focus()

	content := textarea.New()
	content.Placeholder = "Write something..."
	content.SetWidth(36)
	content.SetHeight(5)

	m.noteTitleInput = title
	m.noteContentArea = content
	m.noteFocusTitle = true
	m.modal = modalNote
}

// hideModal closes whichever modal is open. Closing the todo modal also
// drops the captured folder context so it cannot leak into a later gesture.
func (m *dashboardModel) hideModal() {
	if m.modal == modalTodo {
		m.currentFolderID = ""
	}
	m.modal = modalNone
}

func (m dashboardModel) updateModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.modal {
	case modalFolder:
		return m.updateFolderModal(msg)
	case modalTodo:
		return m.updateTodoModal(msg)
	case modalNote:
		return m.updateNoteModal(msg)
	default:
		return m, nil
	}
}

func (m dashboardModel) updateFolderModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.hideModal()
			return m, nil
		case "enter":
			if _, err := m.service.AddFolder(m.ctx, m.folderInput.Value()); err != nil {
				// Invalid input aborts quietly; the modal stays open.
				return m, nil
			}
			m.hideModal()
			m.refresh()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.folderInput, cmd = m.folderInput.Update(msg)
	return m, cmd
}

func (m dashboardModel) updateTodoModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.hideModal()
			return m, nil
		case "enter":
			if _, err := m.service.AddTodo(m.ctx, m.currentFolderID, m.todoInput.Value()); err != nil {
				return m, nil
			}
			m.hideModal()
			m.refresh()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.todoInput, cmd = m.todoInput.Update(msg)
	return m, cmd
}

func (m dashboardModel) updateNoteModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.hideModal()
			return m, nil
		case "tab", "shift+tab":
			if m.noteFocusTitle {
				m.noteTitleInput.Blur()
				m.noteContentArea.Focus()
			} else {
				m.noteContentArea.Blur()
				m.noteTitleInput.Focus()
			}
			m.noteFocusTitle = !m.noteFocusTitle
			return m, nil
		case "shift+enter", "ctrl+j":
			// Newline inside the content, never a submit.
			if !m.noteFocusTitle {
				m.noteContentArea.InsertString("\n")
			}
			return m, nil
		case "enter":
			_, err := m.service.AddNote(m.ctx, m.noteTitleInput.Value(), m.noteContentArea.Value())
			if err != nil {
				return m, nil
			}
			m.hideModal()
			m.refresh()
			return m, nil
		}
	}

	var cmd tea.Cmd
	if m.noteFocusTitle {
		m.noteTitleInput, cmd = m.noteTitleInput.Update(msg)
	} else {
		m.noteContentArea, cmd = m.noteContentArea.Update(msg)
	}
	return m, cmd
}

func (m dashboardModel) viewModal() string {
	switch m.modal {
	case modalFolder:
		return overlayBoxStyle.Render("New folder\n\n" + m.folderInput.View() + "\n\n" + helpStyle.Render("enter: add    esc: cancel"))
	case modalTodo:
		return overlayBoxStyle.Render("New todo in \"" + fitText(m.folderName(m.currentFolderID), 24) + "\"\n\n" +
			m.todoInput.View() + "\n\n" + helpStyle.Render("enter: add    esc: cancel"))
	case modalNote:
		return overlayBoxStyle.Render("New note\n\n" + m.noteTitleInput.View() + "\n\n" + m.noteContentArea.View() +
			"\n\n" + helpStyle.Render("enter: add    shift+enter: newline    tab: switch    esc: cancel"))
	default:
		return ""
	}
}
