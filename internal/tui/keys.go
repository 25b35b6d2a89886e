package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up           key.Binding
	down         key.Binding
	enter        key.Binding
	space        key.Binding
	esc          key.Binding
	tab          key.Binding
	quit         key.Binding
	addFolder    key.Binding
	addTodo      key.Binding
	addNote      key.Binding
	toggleNotes  key.Binding
	delete       key.Binding
	refreshQuote key.Binding
	copyQuote    key.Binding
	yes          key.Binding
	no           key.Binding
}

var keys = keyMap{
	up:           key.NewBinding(key.WithKeys("up", "k")),
	down:         key.NewBinding(key.WithKeys("down", "j")),
	enter:        key.NewBinding(key.WithKeys("enter")),
	space:        key.NewBinding(key.WithKeys(" ")),
	esc:          key.NewBinding(key.WithKeys("esc")),
	tab:          key.NewBinding(key.WithKeys("tab")),
	quit:         key.NewBinding(key.WithKeys("q", "ctrl+c")),
	addFolder:    key.NewBinding(key.WithKeys("f")),
	addTodo:      key.NewBinding(key.WithKeys("a")),
	addNote:      key.NewBinding(key.WithKeys("N")),
	toggleNotes:  key.NewBinding(key.WithKeys("n")),
	delete:       key.NewBinding(key.WithKeys("d")),
	refreshQuote: key.NewBinding(key.WithKeys("r")),
	copyQuote:    key.NewBinding(key.WithKeys("c")),
	yes:          key.NewBinding(key.WithKeys("y")),
	no:           key.NewBinding(key.WithKeys("n")),
}
