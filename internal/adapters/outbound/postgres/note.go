package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/cleitonmarx/symbiont-ai-chatgateway/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-chatgateway/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var (
	noteFields = []string{
		"id",
		"owner_id",
		"title",
		"content",
		"created_at",
	}

	likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
)

// NoteRepository implements the domain.NoteRepository interface using PostgreSQL as the storage backend.
type NoteRepository struct {
	sb squirrel.StatementBuilderType
}

// NewNoteRepository creates a new instance of NoteRepository.
func NewNoteRepository(br squirrel.BaseRunner) NoteRepository {
	return NoteRepository{
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(br),
	}
}

// CreateNote inserts a new note.
func (nr NoteRepository) CreateNote(ctx context.Context, note domain.Note) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	_, err := nr.sb.
		Insert("notes").
		Columns(noteFields...).
		Values(
			note.ID,
			note.OwnerID,
			note.Title,
			note.Content,
			note.CreatedAt,
		).
		ExecContext(spanCtx)

	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// ListNotes lists the owner's notes, newest first.
func (nr NoteRepository) ListNotes(ctx context.Context, ownerID uuid.UUID, limit int, opts ...domain.ListNotesOption) ([]domain.Note, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int("limit", limit),
	))
	defer span.End()

	if limit <= 0 {
		return nil, domain.NewValidationErr("limit must be greater than 0")
	}

	params := &domain.ListNotesParams{}
	for _, opt := range opts {
		opt(params)
	}

	qry := nr.sb.
		Select(noteFields...).
		From("notes").
		Where(squirrel.Eq{"owner_id": ownerID})

	if params.Query != "" {
		pattern := "%" + likeEscaper.Replace(params.Query) + "%"
		qry = qry.Where(squirrel.Or{
			squirrel.ILike{"title": pattern},
			squirrel.ILike{"content": pattern},
		})
	}
	if params.Since != nil {
		qry = qry.Where(squirrel.GtOrEq{"created_at": *params.Since})
	}

	rows, err := qry.
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		QueryContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	var notes []domain.Note
	for rows.Next() {
		var note domain.Note
		err := rows.Scan(
			&note.ID,
			&note.OwnerID,
			&note.Title,
			&note.Content,
			&note.CreatedAt,
		)
		if telemetry.RecordErrorAndStatus(span, err) {
			return nil, err
		}
		notes = append(notes, note)
	}

	if err := rows.Err(); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	return notes, nil
}

// GetNote retrieves one of the owner's notes by its ID.
func (nr NoteRepository) GetNote(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) (domain.Note, bool, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	var note domain.Note
	err := nr.sb.
		Select(noteFields...).
		From("notes").
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"owner_id": ownerID}).
		QueryRowContext(spanCtx).
		Scan(
			&note.ID,
			&note.OwnerID,
			&note.Title,
			&note.Content,
			&note.CreatedAt,
		)

	if errors.Is(err, sql.ErrNoRows) {
		telemetry.RecordErrorAndStatus(span, nil)
		return domain.Note{}, false, nil
	}
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Note{}, false, err
	}
	return note, true, nil
}

// GetNoteOwner returns the owner of a note regardless of the caller.
func (nr NoteRepository) GetNoteOwner(ctx context.Context, id uuid.UUID) (uuid.UUID, bool, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	var ownerID uuid.UUID
	err := nr.sb.
		Select("owner_id").
		From("notes").
		Where(squirrel.Eq{"id": id}).
		QueryRowContext(spanCtx).
		Scan(&ownerID)

	if errors.Is(err, sql.ErrNoRows) {
		telemetry.RecordErrorAndStatus(span, nil)
		return uuid.Nil, false, nil
	}
	if telemetry.RecordErrorAndStatus(span, err) {
		return uuid.Nil, false, err
	}
	return ownerID, true, nil
}

// DeleteNote deletes one of the owner's notes. It reports whether a row was removed.
func (nr NoteRepository) DeleteNote(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) (bool, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	res, err := nr.sb.
		Delete("notes").
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"owner_id": ownerID}).
		ExecContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return false, err
	}

	affected, err := res.RowsAffected()
	if telemetry.RecordErrorAndStatus(span, err) {
		return false, err
	}
	return affected > 0, nil
}

// InitNoteRepository is a Symbiont initializer for NoteRepository.
type InitNoteRepository struct {
	DB *sql.DB `resolve:""`
}

// Initialize registers the NoteRepository in the dependency container.
func (nr InitNoteRepository) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.NoteRepository](NewNoteRepository(nr.DB))
	return ctx, nil
}
