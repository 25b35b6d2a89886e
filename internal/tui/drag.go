package tui

// dragPhase is the state of the note drag gesture.
type dragPhase int

const (
	dragIdle dragPhase = iota
	dragDragging
)

// dragState holds the whole gesture: which note is being carried, where its
// follower currently sits, and the press-point offset into the card so the
// card does not jump under the pointer.
type dragState struct {
	phase   dragPhase
	noteID  string
	offsetX int
	offsetY int
	x       int
	y       int
}

// start begins a gesture from a press at (px, py) on the card at box.
func (d *dragState) start(box noteBox, px, py int) {
	d.phase = dragDragging
	d.noteID = box.id
	d.offsetX = px - box.x
	d.offsetY = py - box.y
	d.x = box.x
	d.y = box.y
}

// move repositions the follower under the pointer. A no-op when idle.
func (d *dragState) move(px, py int) {
	if d.phase != dragDragging {
		return
	}
	d.x = px - d.offsetX
	d.y = py - d.offsetY
}

// release ends the gesture and returns the note id and the follower's final
// position. ok is false when no gesture was in flight.
func (d *dragState) release() (noteID string, pos notePos, ok bool) {
	if d.phase != dragDragging {
		return "", notePos{}, false
	}
	noteID, pos = d.noteID, notePos{x: d.x, y: d.y}
	d.reset()
	return noteID, pos, true
}

// reset unconditionally abandons any gesture. Called on terminal focus loss
// so a stale follower can never stick.
func (d *dragState) reset() {
	*d = dragState{}
}
