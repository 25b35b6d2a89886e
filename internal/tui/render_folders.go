package tui

import (
	"fmt"

	"github.com/MaulanaR/zendash/models"
)

const (
	chevronCollapsed = "▸"
	chevronExpanded  = "▾"
)

// renderFolderLines rebuilds the folders panel from scratch and returns one
// action annotation per line, index-aligned with the rendered lines. The
// annotation for a line names its primary target; the controller derives
// delete and add-todo variants from it.
func renderFolderLines(folders []models.Folder, width int) ([]string, []folderAction) {
	lines := make([]string, 0, len(folders))
	actions := make([]folderAction, 0, len(folders))

	for _, folder := range folders {
		chevron := chevronCollapsed
		if folder.Expanded {
			chevron = chevronExpanded
		}

		counter := counterStyle.Render(
			fmt.Sprintf("(%d/%d)", folder.CompletedCount(), len(folder.Todos)))
		lines = append(lines,
			fmt.Sprintf("%s %s %s", chevron, fitText(folder.Name, width-10), counter))
		actions = append(actions, folderAction{kind: actionToggleFolder, folderID: folder.ID})

		if !folder.Expanded {
			continue
		}

		for _, todo := range folder.Todos {
			checkbox := "[ ]"
			text := fitText(todo.Text, width-8)
			if todo.Completed {
				checkbox = "[x]"
				text = completedStyle.Render(text)
			}
			lines = append(lines, fmt.Sprintf("  %s %s", checkbox, text))
			actions = append(actions, folderAction{
				kind:     actionToggleTodo,
				folderID: folder.ID,
				todoID:   todo.ID,
			})
		}
	}

	return lines, actions
}
