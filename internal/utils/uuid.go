package utils

import "github.com/google/uuid"

// Kind prefixes for generated entity ids. The prefix makes an id readable in
// logs and stored JSON without having to know which list it came from.
const (
	FolderIDPrefix = "f-"
	TodoIDPrefix   = "t-"
	NoteIDPrefix   = "n-"
)

type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a time-ordered unique id with the given kind prefix.
func (g *UUIDGenerator) Generate(prefix string) string {
	v7, err := uuid.NewV7()
	if err != nil {
		return prefix + uuid.NewString()
	}

	return prefix + v7.String()
}
