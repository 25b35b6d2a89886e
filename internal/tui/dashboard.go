package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MaulanaR/zendash/internal/feeds"
	"github.com/MaulanaR/zendash/internal/service"
	"github.com/MaulanaR/zendash/models"
)

const (
	foldersPanelWidth = 32

	// Screen offsets of the notes canvas: app padding, then the folders
	// panel and a gap horizontally; app padding plus the three header rows
	// vertically. Mouse coordinates are translated by these before hit
	// testing.
	notesOriginX = 2 + foldersPanelWidth + 4 + 1
	notesOriginY = 1 + 3
)

// dashboardModel is the whole dashboard. Every piece of controller state
// lives in a named field here; nothing hides in package globals.
type dashboardModel struct {
	ctx        context.Context
	service    service.DashboardService
	wallpapers *feeds.WallpaperFeed
	quotes     *feeds.QuoteFeed

	width  int
	height int

	now       time.Time
	wallpaper feeds.Wallpaper
	quote     models.Quote

	snapshot      models.Snapshot
	cursor        int
	folderActions []folderAction

	showNotes     bool
	notePositions map[string]notePos

	modal           modalKind
	folderInput     textinput.Model
	todoInput       textinput.Model
	noteTitleInput  textinput.Model
	noteContentArea textarea.Model
	noteFocusTitle  bool
	currentFolderID string

	confirming bool
	confirm    confirmState

	drag dragState

	status string
}

func newDashboardModel(ctx context.Context, svc service.DashboardService, wallpapers *feeds.WallpaperFeed, quotes *feeds.QuoteFeed) dashboardModel {
	m := dashboardModel{
		ctx:           ctx,
		service:       svc,
		wallpapers:    wallpapers,
		quotes:        quotes,
		now:           time.Now(),
		showNotes:     true,
		notePositions: make(map[string]notePos),
		quote:         feeds.FallbackQuote(),
		wallpaper:     feeds.FallbackWallpaper(),
	}
	m.refresh()
	return m
}

func (m dashboardModel) Init() tea.Cmd {
	return tea.Batch(
		cmdTickClock(),
		cmdTickGreeting(),
		cmdTickWallpaper(),
		m.cmdFetchWallpaper(),
		m.cmdFetchQuote(),
	)
}

// refresh pulls a fresh snapshot and rebuilds the line/action mapping.
// Called after every mutation, once the service has persisted it.
func (m *dashboardModel) refresh() {
	m.snapshot = m.service.Snapshot()
	_, m.folderActions = renderFolderLines(m.snapshot.Folders, foldersPanelWidth)
	if m.cursor >= len(m.folderActions) {
		m.cursor = len(m.folderActions) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *dashboardModel) folderName(folderID string) string {
	for _, folder := range m.snapshot.Folders {
		if folder.ID == folderID {
			return folder.Name
		}
	}
	return ""
}

func (m *dashboardModel) noteName(noteID string) string {
	for _, note := range m.snapshot.Notes {
		if note.ID == noteID {
			if strings.TrimSpace(note.Title) != "" {
				return note.Title
			}
			return noteTitlePlaceholder
		}
	}
	return ""
}

func (m *dashboardModel) askConfirm(kind confirmKind, id, name string) {
	m.confirming = true
	m.confirm = confirmState{kind: kind, id: id, name: name}
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case clockTickMsg:
		m.now = time.Time(msg)
		return m, cmdTickClock()

	case greetingTickMsg:
		m.now = time.Time(msg)
		return m, cmdTickGreeting()

	case wallpaperTickMsg:
		return m, tea.Batch(cmdTickWallpaper(), m.cmdFetchWallpaper())

	case wallpaperLoadedMsg:
		m.wallpaper = msg.wallpaper
		return m, nil

	case quoteLoadedMsg:
		m.quote = msg.quote
		return m, nil

	case copiedMsg:
		m.status = "Quote copied"
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.BlurMsg:
		// Terminal lost focus mid-gesture: the release will never arrive.
		m.drag.reset()
		return m, nil

	case tea.MouseMsg:
		return m.updateMouse(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.modal != modalNone {
			return m.updateModal(msg)
		}
		return m, nil
	}

	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.confirming {
		return m.updateConfirm(keyMsg)
	}

	if m.modal != modalNone {
		return m.updateModal(msg)
	}

	return m.updateStatic(keyMsg)
}

func (m dashboardModel) updateConfirm(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.yes):
		confirm := m.confirm
		m.confirming = false
		switch confirm.kind {
		case confirmDeleteFolder:
			if err := m.service.DeleteFolder(m.ctx, confirm.id); err != nil {
				return m, nil
			}
		case confirmDeleteNote:
			if err := m.service.DeleteNote(m.ctx, confirm.id); err != nil {
				return m, nil
			}
			delete(m.notePositions, confirm.id)
		}
		m.refresh()
		return m, nil
	case key.Matches(keyMsg, keys.no), key.Matches(keyMsg, keys.esc):
		m.confirming = false
		return m, nil
	}
	return m, nil
}

func (m dashboardModel) updateStatic(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit

	case key.Matches(keyMsg, keys.up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(keyMsg, keys.down):
		if m.cursor < len(m.folderActions)-1 {
			m.cursor++
		}

	case key.Matches(keyMsg, keys.enter), key.Matches(keyMsg, keys.space):
		if action, ok := m.selectedAction(); ok {
			// dispatch mutates m, so it must finish before m is copied
			// into the return value.
			cmd := m.dispatch(action)
			return m, cmd
		}

	case key.Matches(keyMsg, keys.addTodo):
		if action, ok := m.selectedAction(); ok {
			cmd := m.dispatch(folderAction{kind: actionAddTodo, folderID: action.folderID})
			return m, cmd
		}

	case key.Matches(keyMsg, keys.delete):
		action, ok := m.selectedAction()
		if !ok {
			return m, nil
		}
		switch action.kind {
		case actionToggleFolder:
			cmd := m.dispatch(folderAction{kind: actionDeleteFolder, folderID: action.folderID})
			return m, cmd
		case actionToggleTodo:
			cmd := m.dispatch(folderAction{kind: actionDeleteTodo, folderID: action.folderID, todoID: action.todoID})
			return m, cmd
		}

	case key.Matches(keyMsg, keys.addFolder):
		m.showFolderModal()

	case key.Matches(keyMsg, keys.addNote):
		m.showNoteModal()

	case key.Matches(keyMsg, keys.toggleNotes):
		m.showNotes = !m.showNotes
		if !m.showNotes {
			m.drag.reset()
		}

	case key.Matches(keyMsg, keys.refreshQuote):
		return m, m.cmdFetchQuote()

	case key.Matches(keyMsg, keys.copyQuote):
		return m, cmdCopyQuote(m.quote)
	}

	return m, nil
}

func (m dashboardModel) selectedAction() (folderAction, bool) {
	if m.cursor < 0 || m.cursor >= len(m.folderActions) {
		return folderAction{}, false
	}
	return m.folderActions[m.cursor], true
}

func (m dashboardModel) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	// Cards cannot be dragged while the notes panel is hidden or an
	// overlay is capturing input.
	if !m.showNotes || m.modal != modalNone || m.confirming {
		return m, nil
	}

	cx := msg.X - notesOriginX
	cy := msg.Y - notesOriginY

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		boxes := noteLayout(m.snapshot.Notes, m.notePositions, m.notesRegionWidth())
		// Later cards draw on top, so hit test back to front.
		for i := len(boxes) - 1; i >= 0; i-- {
			box := boxes[i]
			if !box.contains(cx, cy) {
				continue
			}
			if box.inDeleteZone(cx, cy) {
				m.askConfirm(confirmDeleteNote, box.id, m.noteName(box.id))
				return m, nil
			}
			m.drag.start(box, cx, cy)
			return m, nil
		}

	case tea.MouseActionMotion:
		m.drag.move(cx, cy)

	case tea.MouseActionRelease:
		if noteID, pos, ok := m.drag.release(); ok {
			if pos.x < 0 {
				pos.x = 0
			}
			if pos.y < 0 {
				pos.y = 0
			}
			m.notePositions[noteID] = pos
		}
	}

	return m, nil
}

func (m dashboardModel) notesRegionWidth() int {
	w := m.width - notesOriginX - 2
	if w < noteCardWidth+5 {
		w = noteCardWidth + 5
	}
	return w
}

func (m dashboardModel) notesRegionHeight() int {
	h := m.height - notesOriginY - 2
	if h < 8 {
		h = 8
	}
	return h
}

func (m dashboardModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(clockLine(m.now)))
	b.WriteString("   ")
	b.WriteString(greetingStyle.Render(greetingLine(m.now, m.snapshot.Settings.UserName)))
	b.WriteString("\n")
	b.WriteString(quoteStyle.Render(fitText(quoteLine(m.quote.Text, m.quote.Author), m.width-6)))
	b.WriteString("\n\n")

	folderLines, _ := renderFolderLines(m.snapshot.Folders, foldersPanelWidth)
	for i, line := range folderLines {
		if i == m.cursor && m.modal == modalNone && !m.confirming {
			folderLines[i] = cursorLineStyle.Render(line)
		} else {
			folderLines[i] = line
		}
	}
	foldersPanel := tintedPanel(m.wallpaper.Gradient.Stops).
		Width(foldersPanelWidth + 2).
		Render(strings.Join(folderLines, "\n"))

	body := foldersPanel
	if m.showNotes {
		notes := renderNotesCanvas(
			m.snapshot.Notes, m.notePositions, m.drag,
			m.notesRegionWidth(), m.notesRegionHeight())
		body = lipgloss.JoinHorizontal(lipgloss.Top, foldersPanel, " ", notes)
	}
	b.WriteString(body)
	b.WriteString("\n")

	switch {
	case m.confirming:
		b.WriteString(m.confirm.View())
		b.WriteString("\n")
	case m.modal != modalNone:
		b.WriteString(m.viewModal())
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render(
		"enter/space: toggle   a: add todo   d: delete   f: new folder   N: new note   n: notes   r: quote   c: copy   q: quit"))

	return appStyle.Render(b.String())
}
