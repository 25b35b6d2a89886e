package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MaulanaR/zendash/models"
)

func TestRenderFolderLines_CollapsedFolderHidesTodos(t *testing.T) {
	folders := []models.Folder{
		{ID: "f1", Name: "Pekerjaan", Expanded: false, Todos: []models.Todo{
			{ID: "t1", Text: "hidden", Completed: false},
		}},
	}

	lines, actions := renderFolderLines(folders, foldersPanelWidth)

	require.Len(t, lines, 1)
	require.Len(t, actions, 1)
	assert.Contains(t, lines[0], chevronCollapsed)
	assert.Contains(t, lines[0], "Pekerjaan")
	assert.NotContains(t, lines[0], "hidden")
	assert.Equal(t, folderAction{kind: actionToggleFolder, folderID: "f1"}, actions[0])
}

func TestRenderFolderLines_ExpandedFolderShowsTodos(t *testing.T) {
	folders := []models.Folder{
		{ID: "f1", Name: "Errands", Expanded: true, Todos: []models.Todo{
			{ID: "t1", Text: "Buy milk", Completed: false},
			{ID: "t2", Text: "Walk dog", Completed: true},
		}},
	}

	lines, actions := renderFolderLines(folders, foldersPanelWidth)

	require.Len(t, lines, 3)
	require.Len(t, actions, 3)
	assert.Contains(t, lines[0], chevronExpanded)
	assert.Contains(t, lines[0], "(1/2)")
	assert.Contains(t, lines[1], "[ ] Buy milk")
	assert.Contains(t, lines[2], "[x]")
	assert.Contains(t, lines[2], "Walk dog")

	assert.Equal(t, folderAction{kind: actionToggleTodo, folderID: "f1", todoID: "t1"}, actions[1])
	assert.Equal(t, folderAction{kind: actionToggleTodo, folderID: "f1", todoID: "t2"}, actions[2])
}

// Counter shows completed over total, not remaining.
func TestRenderFolderLines_CounterIsCompletedOverTotal(t *testing.T) {
	folder := models.Folder{ID: "f1", Name: "Errands", Todos: []models.Todo{
		{ID: "t1", Text: "one", Completed: true},
		{ID: "t2", Text: "two", Completed: true},
		{ID: "t3", Text: "three", Completed: false},
	}}

	lines, _ := renderFolderLines([]models.Folder{folder}, foldersPanelWidth)
	assert.Contains(t, lines[0], "(2/3)")
}

func TestRenderFolderLines_EmptyFolderCounter(t *testing.T) {
	lines, _ := renderFolderLines([]models.Folder{{ID: "f1", Name: "Empty"}}, foldersPanelWidth)
	assert.Contains(t, lines[0], "(0/0)")
}

// Every rendered line must have exactly one action, index aligned.
func TestRenderFolderLines_ActionsAlignWithLines(t *testing.T) {
	folders := []models.Folder{
		{ID: "f1", Name: "A", Expanded: true, Todos: []models.Todo{{ID: "t1", Text: "x"}}},
		{ID: "f2", Name: "B", Expanded: false, Todos: []models.Todo{{ID: "t2", Text: "y"}}},
		{ID: "f3", Name: "C", Expanded: true},
	}

	lines, actions := renderFolderLines(folders, foldersPanelWidth)
	require.Equal(t, len(lines), len(actions))
	// f1 header, f1 todo, f2 header (collapsed), f3 header.
	require.Len(t, lines, 4)
	assert.Equal(t, actionToggleFolder, actions[0].kind)
	assert.Equal(t, actionToggleTodo, actions[1].kind)
	assert.Equal(t, actionToggleFolder, actions[2].kind)
	assert.Equal(t, "f3", actions[3].folderID)
}
