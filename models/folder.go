package models

// Folder is a named, user-defined grouping of todos.
// Todos are owned by containment: every Todo lives in exactly one folder's
// Todos slice, there is no separate todo table.
type Folder struct {
	// ID is the stable identifier of the folder. Once assigned it never
	// changes and is never reused.
	ID string `json:"id"`

	// Name is the non-empty display name of the folder.
	Name string `json:"name"`

	// Todos is the ordered list of todos inside the folder.
	Todos []Todo `json:"todos"`

	// Expanded controls whether the folder's todos are shown.
	// It is view state but is persisted alongside the folder so the
	// dashboard reopens the way the user left it.
	Expanded bool `json:"expanded"`
}

// Todo is a single actionable item inside a folder.
type Todo struct {
	// ID is unique within the owning folder; in practice ids are globally
	// unique because they are minted by the id generator.
	ID string `json:"id"`

	// Text is the non-empty todo text.
	Text string `json:"text"`

	// Completed marks the todo as done.
	Completed bool `json:"completed"`
}

// CompletedCount returns how many of the folder's todos are completed.
func (f Folder) CompletedCount() int {
	count := 0
	for _, todo := range f.Todos {
		if todo.Completed {
			count++
		}
	}
	return count
}
