package service

import (
	"context"

	"github.com/MaulanaR/zendash/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/dashboard_mock.go -package=mock

// DashboardService is the single owner of the dashboard state. All reads and
// mutations go through it; the UI never touches storage directly.
//
// Every mutating operation follows the same sequence: validate the input,
// apply the change in memory, persist the affected state before returning.
// Callers re-render only after the call returns, so what is on screen is
// always what has been written.
type DashboardService interface {
	// Load reads the persisted state. Any key that is absent, unreadable or
	// malformed is replaced by its defaults; Load itself never fails.
	Load(ctx context.Context)

	// Snapshot returns a deep copy of the current state, safe to read while
	// mutations continue.
	Snapshot() models.Snapshot

	// AddFolder appends a new collapsed, empty folder with the given name.
	// Returns ErrEmptyFolderName when the trimmed name is empty.
	AddFolder(ctx context.Context, name string) (models.Folder, error)

	// DeleteFolder removes the folder and every todo it contains.
	// Returns ErrFolderNotFound for an unknown id.
	DeleteFolder(ctx context.Context, folderID string) error

	// ToggleFolderExpanded flips the folder's expanded flag.
	// Returns ErrFolderNotFound for an unknown id.
	ToggleFolderExpanded(ctx context.Context, folderID string) error

	// AddTodo appends an uncompleted todo to the folder and expands the
	// folder so the new item is visible. Returns ErrEmptyTodoText when the
	// trimmed text is empty, ErrFolderNotFound for an unknown folder.
	AddTodo(ctx context.Context, folderID string, text string) (models.Todo, error)

	// ToggleTodo flips the todo's completed flag.
	ToggleTodo(ctx context.Context, folderID string, todoID string) error

	// DeleteTodo removes the todo from its folder.
	DeleteTodo(ctx context.Context, folderID string, todoID string) error

	// AddNote appends a sticky note. An empty title is kept empty and the
	// renderer shows a placeholder instead. Returns ErrEmptyNoteContent when
	// the trimmed content is empty.
	AddNote(ctx context.Context, title string, content string) (models.Note, error)

	// DeleteNote removes the note. Returns ErrNoteNotFound for an unknown id.
	DeleteNote(ctx context.Context, noteID string) error

	// UpdateSettings replaces the stored settings. An empty user name falls
	// back to the default.
	UpdateSettings(ctx context.Context, settings models.Settings) error
}
