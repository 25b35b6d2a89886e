package tui

type confirmKind int

const (
	confirmDeleteFolder confirmKind = iota
	confirmDeleteNote
)

// confirmState is a pending delete awaiting y/n. Declining is a normal
// abort, not an error.
type confirmState struct {
	kind confirmKind
	id   string
	name string
}

func (c confirmState) View() string {
	content := "Delete \"" + fitText(c.name, 40) + "\"?\n\n"
	content += "y yes    n no"
	return overlayBoxStyle.Render(content)
}
