package service

import "errors"

var (
	ErrEmptyFolderName  = errors.New("folder name is empty")
	ErrEmptyTodoText    = errors.New("todo text is empty")
	ErrEmptyNoteContent = errors.New("note content is empty")

	ErrFolderNotFound = errors.New("folder not found")
	ErrTodoNotFound   = errors.New("todo not found")
	ErrNoteNotFound   = errors.New("note not found")
)
