package models

// Storage keys under which the snapshot parts are persisted.
// An absent key means "apply defaults".
const (
	StorageKeyFolders  = "folders"
	StorageKeyNotes    = "notes"
	StorageKeySettings = "settings"
)

// Snapshot is the full persisted dashboard state.
type Snapshot struct {
	Folders  []Folder `json:"folders"`
	Notes    []Note   `json:"notes"`
	Settings Settings `json:"settings"`
}

// DefaultFolders returns the three folders seeded on first run.
// Both the install-time bootstrap and the first in-app load seed from here,
// so the two paths always converge to the same shape.
func DefaultFolders() []Folder {
	return []Folder{
		{ID: "f1", Name: "Pekerjaan", Todos: []Todo{}, Expanded: false},
		{ID: "f2", Name: "Pribadi", Todos: []Todo{}, Expanded: false},
		{ID: "f3", Name: "Belajar", Todos: []Todo{}, Expanded: false},
	}
}

// DefaultSettings returns the settings applied when none are persisted.
func DefaultSettings() Settings {
	return Settings{UserName: "User", Theme: "auto"}
}
