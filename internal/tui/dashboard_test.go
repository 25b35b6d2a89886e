package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MaulanaR/zendash/internal/config"
	"github.com/MaulanaR/zendash/internal/feeds"
	"github.com/MaulanaR/zendash/internal/logger"
	"github.com/MaulanaR/zendash/internal/service"
	"github.com/MaulanaR/zendash/internal/store"
	"github.com/MaulanaR/zendash/internal/utils"
)

func newTestModel(t *testing.T) (dashboardModel, service.DashboardService) {
	t.Helper()

	svc := service.NewDashboardService(store.NewMemoryStorage(), utils.NewUUIDGenerator(), logger.Nop())
	svc.Load(context.Background())

	wallpapers := feeds.NewWallpaperFeed(utils.NewHTTPClient(0), testFeedConfig(), logger.Nop())
	quotes := feeds.NewQuoteFeed(utils.NewHTTPClient(0), testFeedConfig(), logger.Nop())

	m := newDashboardModel(context.Background(), svc, wallpapers, quotes)
	m.width, m.height = 120, 40
	return m, svc
}

func update(t *testing.T, m dashboardModel, msg tea.Msg) dashboardModel {
	t.Helper()
	next, _ := m.Update(msg)
	updated, ok := next.(dashboardModel)
	require.True(t, ok)
	return updated
}

func pressKey(t *testing.T, m dashboardModel, k string) dashboardModel {
	t.Helper()
	switch k {
	case "enter":
		return update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	case "esc":
		return update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	case "space":
		return update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")})
	case "up":
		return update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	case "down":
		return update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	default:
		return update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)})
	}
}

func typeString(t *testing.T, m dashboardModel, s string) dashboardModel {
	t.Helper()
	for _, r := range s {
		m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

// The full first-session walkthrough: create a folder, add a todo through
// its modal, watch the counter move as the todo is toggled.
func TestDashboard_ErrandsScenario(t *testing.T) {
	m, _ := newTestModel(t)

	// Open the folder modal and create "Errands".
	m = pressKey(t, m, "f")
	require.Equal(t, modalFolder, m.modal)
	m = typeString(t, m, "Errands")
	m = pressKey(t, m, "enter")
	require.Equal(t, modalNone, m.modal)
	require.Len(t, m.snapshot.Folders, 4)
	assert.Equal(t, "Errands", m.snapshot.Folders[3].Name)

	// Move the cursor to the new folder and open the todo modal.
	for i := 0; i < 3; i++ {
		m = pressKey(t, m, "down")
	}
	m = pressKey(t, m, "a")
	require.Equal(t, modalTodo, m.modal)
	assert.Equal(t, m.snapshot.Folders[3].ID, m.currentFolderID)

	m = typeString(t, m, "Buy milk")
	m = pressKey(t, m, "enter")
	require.Equal(t, modalNone, m.modal)
	assert.Empty(t, m.currentFolderID, "closing the todo modal must clear the folder context")

	// The folder expanded on add and shows (0/1).
	errands := m.snapshot.Folders[3]
	require.Len(t, errands.Todos, 1)
	assert.True(t, errands.Expanded)
	lines, _ := renderFolderLines(m.snapshot.Folders, foldersPanelWidth)
	assert.Contains(t, lines[3], "(0/1)")
	assert.Contains(t, lines[4], "[ ] Buy milk")

	// Toggle the todo: counter goes to (1/1).
	m = pressKey(t, m, "down")
	m = pressKey(t, m, "space")
	lines, _ = renderFolderLines(m.snapshot.Folders, foldersPanelWidth)
	assert.Contains(t, lines[3], "(1/1)")
	assert.Contains(t, lines[4], "[x]")

	// Toggle back: (0/1) again.
	m = pressKey(t, m, "space")
	lines, _ = renderFolderLines(m.snapshot.Folders, foldersPanelWidth)
	assert.Contains(t, lines[3], "(0/1)")
}

func TestDashboard_EmptyModalInputAbortsSilently(t *testing.T) {
	m, _ := newTestModel(t)

	m = pressKey(t, m, "f")
	m = typeString(t, m, "   ")
	m = pressKey(t, m, "enter")

	// Invalid input keeps the modal open and adds nothing.
	assert.Equal(t, modalFolder, m.modal)
	assert.Len(t, m.snapshot.Folders, 3)
}

func TestDashboard_FolderDeletionRequiresConfirmation(t *testing.T) {
	m, _ := newTestModel(t)

	m = pressKey(t, m, "d")
	require.True(t, m.confirming)
	assert.Equal(t, confirmDeleteFolder, m.confirm.kind)
	assert.Equal(t, "Pekerjaan", m.confirm.name)

	// Declining leaves everything in place.
	m = pressKey(t, m, "n")
	assert.False(t, m.confirming)
	assert.Len(t, m.snapshot.Folders, 3)

	// Accepting removes the folder.
	m = pressKey(t, m, "d")
	m = pressKey(t, m, "y")
	assert.False(t, m.confirming)
	assert.Len(t, m.snapshot.Folders, 2)
}

func TestDashboard_ToggleFolderExpansion(t *testing.T) {
	m, _ := newTestModel(t)

	m = pressKey(t, m, "enter")
	assert.True(t, m.snapshot.Folders[0].Expanded)

	m = pressKey(t, m, "enter")
	assert.False(t, m.snapshot.Folders[0].Expanded)
}

func TestDashboard_NoteModalFlow(t *testing.T) {
	m, _ := newTestModel(t)

	m = pressKey(t, m, "N")
	require.Equal(t, modalNote, m.modal)
	require.True(t, m.noteFocusTitle)

	m = typeString(t, m, "Plan")
	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.False(t, m.noteFocusTitle)

	m = typeString(t, m, "first line")
	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlJ})
	m = typeString(t, m, "second line")
	m = pressKey(t, m, "enter")

	require.Equal(t, modalNone, m.modal)
	require.Len(t, m.snapshot.Notes, 1)
	assert.Equal(t, "Plan", m.snapshot.Notes[0].Title)
	assert.Equal(t, "first line\nsecond line", m.snapshot.Notes[0].Content)
}

func TestDashboard_NotesPanelToggle(t *testing.T) {
	m, _ := newTestModel(t)

	require.True(t, m.showNotes)
	m = pressKey(t, m, "n")
	assert.False(t, m.showNotes)
	m = pressKey(t, m, "n")
	assert.True(t, m.showNotes)
}

func TestDashboard_MouseDragMovesNote(t *testing.T) {
	m, svc := newTestModel(t)
	_, err := svc.AddNote(context.Background(), "Plan", "ship it")
	require.NoError(t, err)
	m.refresh()

	noteID := m.snapshot.Notes[0].ID
	boxes := noteLayout(m.snapshot.Notes, m.notePositions, m.notesRegionWidth())
	require.Len(t, boxes, 1)

	pressX := notesOriginX + boxes[0].x + 2
	pressY := notesOriginY + boxes[0].y + 2

	m = update(t, m, tea.MouseMsg{
		X: pressX, Y: pressY,
		Action: tea.MouseActionPress, Button: tea.MouseButtonLeft,
	})
	require.Equal(t, dragDragging, m.drag.phase)
	require.Equal(t, noteID, m.drag.noteID)

	m = update(t, m, tea.MouseMsg{
		X: pressX + 20, Y: pressY + 5,
		Action: tea.MouseActionMotion,
	})
	assert.Equal(t, boxes[0].x+20, m.drag.x)

	m = update(t, m, tea.MouseMsg{
		X: pressX + 20, Y: pressY + 5,
		Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft,
	})
	assert.Equal(t, dragIdle, m.drag.phase)
	assert.Equal(t, notePos{x: boxes[0].x + 20, y: boxes[0].y + 5}, m.notePositions[noteID])
}

func TestDashboard_BlurResetsDrag(t *testing.T) {
	m, svc := newTestModel(t)
	_, err := svc.AddNote(context.Background(), "Plan", "ship it")
	require.NoError(t, err)
	m.refresh()

	boxes := noteLayout(m.snapshot.Notes, m.notePositions, m.notesRegionWidth())
	m = update(t, m, tea.MouseMsg{
		X: notesOriginX + boxes[0].x + 2, Y: notesOriginY + boxes[0].y + 2,
		Action: tea.MouseActionPress, Button: tea.MouseButtonLeft,
	})
	require.Equal(t, dragDragging, m.drag.phase)

	m = update(t, m, tea.BlurMsg{})
	assert.Equal(t, dragIdle, m.drag.phase)
	assert.Empty(t, m.notePositions, "an abandoned gesture must not move the note")
}

func TestDashboard_MouseDeleteZoneAsksConfirmation(t *testing.T) {
	m, svc := newTestModel(t)
	_, err := svc.AddNote(context.Background(), "", "ship it")
	require.NoError(t, err)
	m.refresh()

	boxes := noteLayout(m.snapshot.Notes, m.notePositions, m.notesRegionWidth())
	m = update(t, m, tea.MouseMsg{
		X:      notesOriginX + boxes[0].x + boxes[0].w - 3,
		Y:      notesOriginY + boxes[0].y + 1,
		Action: tea.MouseActionPress, Button: tea.MouseButtonLeft,
	})

	require.True(t, m.confirming)
	assert.Equal(t, confirmDeleteNote, m.confirm.kind)
	assert.Equal(t, noteTitlePlaceholder, m.confirm.name)
	assert.Equal(t, dragIdle, m.drag.phase)

	m = pressKey(t, m, "y")
	assert.Empty(t, m.snapshot.Notes)
}

func TestDashboard_CursorClampedAfterDeletion(t *testing.T) {
	m, _ := newTestModel(t)

	// Move to the last folder, delete it, cursor must stay in range.
	m = pressKey(t, m, "down")
	m = pressKey(t, m, "down")
	m = pressKey(t, m, "d")
	m = pressKey(t, m, "y")

	require.Len(t, m.snapshot.Folders, 2)
	assert.Less(t, m.cursor, len(m.folderActions))
}

func TestDashboard_ViewRendersHeaderAndPanels(t *testing.T) {
	m, _ := newTestModel(t)
	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	view := m.View()
	assert.Contains(t, view, "Selamat")
	assert.Contains(t, view, "Pekerjaan")
	assert.Contains(t, view, "Pribadi")
	assert.Contains(t, view, "Belajar")
}

func TestDashboard_ViewEmptyUntilSized(t *testing.T) {
	m, _ := newTestModel(t)
	m.width, m.height = 0, 0

	assert.Empty(t, m.View())
}

// testFeedConfig points at nothing; feed commands are never executed in
// these tests.
func testFeedConfig() config.Feeds {
	return config.Feeds{
		WallpaperBaseURL: "http://127.0.0.1:0",
		QuoteBaseURL:     "http://127.0.0.1:0",
	}
}
