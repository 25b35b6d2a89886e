package service

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/MaulanaR/zendash/internal/logger"
	"github.com/MaulanaR/zendash/internal/store"
	"github.com/MaulanaR/zendash/internal/utils"
	"github.com/MaulanaR/zendash/models"
)

// IDGenerator mints ids for new folders, todos and notes.
type IDGenerator interface {
	Generate(prefix string) string
}

type dashboardService struct {
	storage store.Storage
	ids     IDGenerator
	logger  *logger.Logger

	// mu guards snapshot. The UI loop is the single writer, but the
	// background workers read concurrently.
	mu       sync.Mutex
	snapshot models.Snapshot
}

// NewDashboardService constructs a [DashboardService] on top of the given
// storage. Call Load before using it.
func NewDashboardService(storage store.Storage, ids IDGenerator, log *logger.Logger) DashboardService {
	return &dashboardService{
		storage: storage,
		ids:     ids,
		logger:  log,
	}
}

func (d *dashboardService) Load(ctx context.Context) {
	log := logger.FromContext(ctx)

	d.mu.Lock()
	defer d.mu.Unlock()

	d.snapshot = models.Snapshot{
		Folders:  models.DefaultFolders(),
		Notes:    []models.Note{},
		Settings: models.DefaultSettings(),
	}

	values, err := d.storage.Load(ctx,
		models.StorageKeyFolders, models.StorageKeyNotes, models.StorageKeySettings)
	if err != nil {
		log.Warn().Err(err).
			Str("func", "dashboardService.Load").
			Msg("failed to load dashboard state, using defaults")
		return
	}

	if raw, ok := values[models.StorageKeyFolders]; ok {
		var folders []models.Folder
		if err = json.Unmarshal(raw, &folders); err != nil {
			log.Warn().Err(err).
				Str("func", "dashboardService.Load").
				Msg("stored folders are malformed, using defaults")
		} else {
			d.snapshot.Folders = folders
		}
	}

	if raw, ok := values[models.StorageKeyNotes]; ok {
		var notes []models.Note
		if err = json.Unmarshal(raw, &notes); err != nil {
			log.Warn().Err(err).
				Str("func", "dashboardService.Load").
				Msg("stored notes are malformed, using defaults")
		} else {
			d.snapshot.Notes = notes
		}
	}

	if raw, ok := values[models.StorageKeySettings]; ok {
		var settings models.Settings
		if err = json.Unmarshal(raw, &settings); err != nil {
			log.Warn().Err(err).
				Str("func", "dashboardService.Load").
				Msg("stored settings are malformed, using defaults")
		} else {
			d.snapshot.Settings = settings
		}
	}
}

func (d *dashboardService) Snapshot() models.Snapshot {
	d.mu.Lock()
	defer d.mu.Unlock()

	return copySnapshot(d.snapshot)
}

func (d *dashboardService) AddFolder(ctx context.Context, name string) (models.Folder, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Folder{}, ErrEmptyFolderName
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	folder := models.Folder{
		ID:       d.ids.Generate(utils.FolderIDPrefix),
		Name:     name,
		Todos:    []models.Todo{},
		Expanded: false,
	}
	d.snapshot.Folders = append(d.snapshot.Folders, folder)

	d.persist(ctx)
	return folder, nil
}

func (d *dashboardService) DeleteFolder(ctx context.Context, folderID string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	idx := d.folderIndex(folderID)
	if idx < 0 {
		return ErrFolderNotFound
	}

	// The folder's todos go with it: they live nowhere else.
	d.snapshot.Folders = append(d.snapshot.Folders[:idx], d.snapshot.Folders[idx+1:]...)

	d.persist(ctx)
	return nil
}

func (d *dashboardService) ToggleFolderExpanded(ctx context.Context, folderID string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	idx := d.folderIndex(folderID)
	if idx < 0 {
		return ErrFolderNotFound
	}
	d.snapshot.Folders[idx].Expanded = !d.snapshot.Folders[idx].Expanded

	d.persist(ctx)
	return nil
}

func (d *dashboardService) AddTodo(ctx context.Context, folderID string, text string) (models.Todo, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.Todo{}, ErrEmptyTodoText
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	idx := d.folderIndex(folderID)
	if idx < 0 {
		return models.Todo{}, ErrFolderNotFound
	}

	todo := models.Todo{
		ID:        d.ids.Generate(utils.TodoIDPrefix),
		Text:      text,
		Completed: false,
	}
	d.snapshot.Folders[idx].Todos = append(d.snapshot.Folders[idx].Todos, todo)
	// Expand so the new item is immediately visible.
	d.snapshot.Folders[idx].Expanded = true

	d.persist(ctx)
	return todo, nil
}

func (d *dashboardService) ToggleTodo(ctx context.Context, folderID string, todoID string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	folderIdx := d.folderIndex(folderID)
	if folderIdx < 0 {
		return ErrFolderNotFound
	}

	todos := d.snapshot.Folders[folderIdx].Todos
	todoIdx := todoIndex(todos, todoID)
	if todoIdx < 0 {
		return ErrTodoNotFound
	}
	todos[todoIdx].Completed = !todos[todoIdx].Completed

	d.persist(ctx)
	return nil
}

func (d *dashboardService) DeleteTodo(ctx context.Context, folderID string, todoID string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	folderIdx := d.folderIndex(folderID)
	if folderIdx < 0 {
		return ErrFolderNotFound
	}

	todos := d.snapshot.Folders[folderIdx].Todos
	todoIdx := todoIndex(todos, todoID)
	if todoIdx < 0 {
		return ErrTodoNotFound
	}
	d.snapshot.Folders[folderIdx].Todos = append(todos[:todoIdx], todos[todoIdx+1:]...)

	d.persist(ctx)
	return nil
}

func (d *dashboardService) AddNote(ctx context.Context, title string, content string) (models.Note, error) {
	if strings.TrimSpace(content) == "" {
		return models.Note{}, ErrEmptyNoteContent
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	note := models.Note{
		ID:        d.ids.Generate(utils.NoteIDPrefix),
		Title:     strings.TrimSpace(title),
		Content:   content,
		CreatedAt: time.Now(),
	}
	d.snapshot.Notes = append(d.snapshot.Notes, note)

	d.persist(ctx)
	return note, nil
}

func (d *dashboardService) DeleteNote(ctx context.Context, noteID string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i, note := range d.snapshot.Notes {
		if note.ID == noteID {
			d.snapshot.Notes = append(d.snapshot.Notes[:i], d.snapshot.Notes[i+1:]...)
			d.persist(ctx)
			return nil
		}
	}

	return ErrNoteNotFound
}

func (d *dashboardService) UpdateSettings(ctx context.Context, settings models.Settings) error {
	settings.UserName = strings.TrimSpace(settings.UserName)
	if settings.UserName == "" {
		settings.UserName = models.DefaultSettings().UserName
	}
	if settings.Theme == "" {
		settings.Theme = models.DefaultSettings().Theme
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.snapshot.Settings = settings

	d.persist(ctx)
	return nil
}

// persist writes the full snapshot before the mutating call returns.
// A write failure is logged and otherwise swallowed: the in-memory state
// stays authoritative for the rest of the session. Callers must hold mu.
func (d *dashboardService) persist(ctx context.Context) {
	log := logger.FromContext(ctx)

	entries := make(map[string]json.RawMessage, 3)
	for key, value := range map[string]any{
		models.StorageKeyFolders:  d.snapshot.Folders,
		models.StorageKeyNotes:    d.snapshot.Notes,
		models.StorageKeySettings: d.snapshot.Settings,
	} {
		raw, err := json.Marshal(value)
		if err != nil {
			log.Warn().Err(err).
				Str("func", "dashboardService.persist").
				Str("key", key).
				Msg("failed to marshal dashboard state")
			return
		}
		entries[key] = raw
	}

	if err := d.storage.Save(ctx, entries); err != nil {
		log.Warn().Err(err).
			Str("func", "dashboardService.persist").
			Msg("failed to persist dashboard state")
	}
}

func (d *dashboardService) folderIndex(folderID string) int {
	for i, folder := range d.snapshot.Folders {
		if folder.ID == folderID {
			return i
		}
	}
	return -1
}

func todoIndex(todos []models.Todo, todoID string) int {
	for i, todo := range todos {
		if todo.ID == todoID {
			return i
		}
	}
	return -1
}

func copySnapshot(s models.Snapshot) models.Snapshot {
	out := models.Snapshot{
		Folders:  make([]models.Folder, len(s.Folders)),
		Notes:    append([]models.Note(nil), s.Notes...),
		Settings: s.Settings,
	}
	for i, folder := range s.Folders {
		folder.Todos = append([]models.Todo(nil), folder.Todos...)
		out.Folders[i] = folder
	}
	if out.Notes == nil {
		out.Notes = []models.Note{}
	}
	return out
}
