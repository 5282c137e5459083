package domain

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

const (
	NoteTitleMaxLength = 100
	DefaultNotesLimit  = 10
	MaxNotesLimit      = 100
)

// Note is a user-owned text note.
type Note struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Title     string
	Content   string
	CreatedAt time.Time
}

// Validate checks the note fields before it is stored.
func (n Note) Validate() error {
	if strings.TrimSpace(n.Title) == "" {
		return NewValidationErr("title is required")
	}
	if utf8.RuneCountInString(n.Title) > NoteTitleMaxLength {
		return NewValidationErr("title must be at most 100 characters")
	}
	if strings.TrimSpace(n.Content) == "" {
		return NewValidationErr("content is required")
	}
	return nil
}

// DeriveNoteTitle builds a title from the note content when none was given.
func DeriveNoteTitle(content string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(content), "\n")
	line = strings.TrimSpace(line)
	if utf8.RuneCountInString(line) <= NoteTitleMaxLength {
		return line
	}
	runes := []rune(line)
	return strings.TrimSpace(string(runes[:NoteTitleMaxLength-3])) + "..."
}

// ListNotesParams holds the optional filters of a note listing.
type ListNotesParams struct {
	Query string
	Since *time.Time
}

// ListNotesOption configures a note listing.
type ListNotesOption func(*ListNotesParams)

// WithNoteQuery restricts the listing to notes whose title or content contain query.
func WithNoteQuery(query string) ListNotesOption {
	return func(p *ListNotesParams) {
		p.Query = strings.TrimSpace(query)
	}
}

// WithNotesSince restricts the listing to notes created at or after since.
func WithNotesSince(since time.Time) ListNotesOption {
	return func(p *ListNotesParams) {
		p.Since = &since
	}
}

// NoteRepository is the note store. Every operation is scoped to an owner.
type NoteRepository interface {
	// CreateNote persists a new note.
	CreateNote(ctx context.Context, note Note) error
	// ListNotes returns the owner's notes, newest first.
	ListNotes(ctx context.Context, ownerID uuid.UUID, limit int, opts ...ListNotesOption) ([]Note, error)
	// GetNote returns the owner's note with the given id.
	GetNote(ctx context.Context, ownerID, id uuid.UUID) (Note, bool, error)
	// GetNoteOwner returns the owner of a note regardless of caller.
	GetNoteOwner(ctx context.Context, id uuid.UUID) (uuid.UUID, bool, error)
	// DeleteNote removes the owner's note. It reports whether a row was deleted.
	DeleteNote(ctx context.Context, ownerID, id uuid.UUID) (bool, error)
}
