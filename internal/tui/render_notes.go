package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/MaulanaR/zendash/models"
)

const (
	// noteCardWidth is the interior text width of a card; the border and
	// padding add four more cells.
	noteCardWidth = 24
	noteCardGap   = 1

	// noteMaxContentLines bounds how much of a long note a card shows.
	noteMaxContentLines = 5

	noteDeleteGlyph      = "✕"
	noteTitlePlaceholder = "Note"
)

// Cards composited onto the notes canvas must stay free of ANSI sequences,
// so these styles carry no colors.
var (
	plainCardBorder     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	plainFollowerBorder = lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).Padding(0, 1)
)

// notePos is a session-only card position set by dragging. It is never
// persisted.
type notePos struct {
	x, y int
}

// noteBox is a card's bounding box on the notes canvas, used for mouse hit
// testing.
type noteBox struct {
	id         string
	x, y, w, h int
}

func (b noteBox) contains(px, py int) bool {
	return px >= b.x && px < b.x+b.w && py >= b.y && py < b.y+b.h
}

// inDeleteZone reports whether the point hits the delete glyph in the card's
// title row. Presses here delete instead of starting a drag.
func (b noteBox) inDeleteZone(px, py int) bool {
	return py == b.y+1 && px >= b.x+b.w-4 && px < b.x+b.w-1
}

// noteCardLines renders one card as plain lines. ghost empties the interior,
// used for the original card while its follower is being dragged.
func noteCardLines(note models.Note, ghost bool, follower bool) []string {
	title := note.Title
	if strings.TrimSpace(title) == "" {
		title = noteTitlePlaceholder
	}
	title = fitText(title, noteCardWidth-2)
	titleLine := title + strings.Repeat(" ", noteCardWidth-len([]rune(title))-1) + noteDeleteGlyph

	body := []string{titleLine}
	if ghost {
		for i := 0; i < noteMaxContentLines; i++ {
			body = append(body, "")
		}
	} else {
		// Content keeps its own whitespace; only overly long lines are cut.
		contentLines := strings.Split(note.Content, "\n")
		if len(contentLines) > noteMaxContentLines {
			contentLines = contentLines[:noteMaxContentLines]
		}
		for _, line := range contentLines {
			body = append(body, fitText(line, noteCardWidth))
		}
	}

	style := plainCardBorder
	if follower {
		style = plainFollowerBorder
	}
	// Width includes the padding cells but not the border, so the interior
	// text area stays exactly noteCardWidth wide.
	return strings.Split(style.Width(noteCardWidth+2).Render(strings.Join(body, "\n")), "\n")
}

// noteLayout computes card boxes inside a region of the given width. Cards
// flow left to right, wrapping into rows; a dragged position overrides the
// flow slot for that card.
func noteLayout(notes []models.Note, positions map[string]notePos, regionWidth int) []noteBox {
	boxes := make([]noteBox, 0, len(notes))

	cardOuterWidth := noteCardWidth + 4
	columns := regionWidth / (cardOuterWidth + noteCardGap)
	if columns < 1 {
		columns = 1
	}

	x, y, rowHeight, col := 0, 0, 0, 0
	for _, note := range notes {
		lines := noteCardLines(note, false, false)
		h := len(lines)

		if col == columns {
			col, x = 0, 0
			y += rowHeight + noteCardGap
			rowHeight = 0
		}

		box := noteBox{id: note.ID, x: x, y: y, w: cardOuterWidth, h: h}
		if pos, ok := positions[note.ID]; ok {
			box.x, box.y = pos.x, pos.y
		} else {
			// Only flow-positioned cards advance the grid.
			if h > rowHeight {
				rowHeight = h
			}
			x += cardOuterWidth + noteCardGap
			col++
		}

		boxes = append(boxes, box)
	}

	return boxes
}

// renderNotesCanvas composites all note cards, plus the drag follower on
// top, into a fixed-size block of text.
func renderNotesCanvas(notes []models.Note, positions map[string]notePos, drag dragState, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = []rune(strings.Repeat(" ", width))
	}

	blit := func(lines []string, x, y int) {
		for dy, line := range lines {
			row := y + dy
			if row < 0 || row >= height {
				continue
			}
			for dx, r := range []rune(line) {
				colIdx := x + dx
				if colIdx < 0 || colIdx >= width {
					continue
				}
				canvas[row][colIdx] = r
			}
		}
	}

	byID := make(map[string]models.Note, len(notes))
	for _, note := range notes {
		byID[note.ID] = note
	}

	for _, box := range noteLayout(notes, positions, width) {
		ghost := drag.phase == dragDragging && drag.noteID == box.id
		blit(noteCardLines(byID[box.id], ghost, false), box.x, box.y)
	}

	if drag.phase == dragDragging {
		if note, ok := byID[drag.noteID]; ok {
			blit(noteCardLines(note, false, true), drag.x, drag.y)
		}
	}

	rows := make([]string, height)
	for i, row := range canvas {
		rows[i] = strings.TrimRight(string(row), " ")
	}
	return strings.Join(rows, "\n")
}
