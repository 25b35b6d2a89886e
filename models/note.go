package models

import "time"

// Note is a freeform sticky note rendered as a draggable card.
// Its on-screen position is transient view state and is never persisted —
// only title, content and the creation timestamp survive a restart.
type Note struct {
	// ID is the stable identifier of the note.
	ID string `json:"id"`

	// Title is the optional card title. Empty titles are rendered with a
	// placeholder.
	Title string `json:"title"`

	// Content is the non-empty note body. Whitespace is preserved.
	Content string `json:"content"`

	// CreatedAt is set once at creation and never mutated.
	CreatedAt time.Time `json:"createdAt"`
}
