package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/cleitonmarx/symbiont-ai-chatgateway/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

var (
	fixedNoteID  = uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")
	fixedOwnerID = uuid.MustParse("223e4567-e89b-12d3-a456-426614174000")
	fixedTime    = time.Date(2026, 1, 24, 15, 0, 0, 0, time.UTC)
)

func TestNoteRepository_CreateNote(t *testing.T) {
	note := domain.Note{
		ID:        fixedNoteID,
		OwnerID:   fixedOwnerID,
		Title:     "Milch kaufen",
		Content:   "Milch kaufen",
		CreatedAt: fixedTime,
	}

	tests := map[string]struct {
		setExpectations func(mock sqlmock.Sqlmock)
		expectedErr     error
	}{
		"success": {
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("INSERT INTO notes (id,owner_id,title,content,created_at) VALUES ($1,$2,$3,$4,$5)").
					WithArgs(note.ID, note.OwnerID, note.Title, note.Content, note.CreatedAt).
					WillReturnResult(sqlmock.NewResult(1, 1))
			},
		},
		"database-error": {
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("INSERT INTO notes (id,owner_id,title,content,created_at) VALUES ($1,$2,$3,$4,$5)").
					WithArgs(note.ID, note.OwnerID, note.Title, note.Content, note.CreatedAt).
					WillReturnError(errors.New("database error"))
			},
			expectedErr: errors.New("database error"),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			assert.NoError(t, err)
			defer db.Close() // nolint:errcheck

			tt.setExpectations(mock)

			repo := NewNoteRepository(db)
			gotErr := repo.CreateNote(context.Background(), note)
			assert.Equal(t, tt.expectedErr, gotErr)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestNoteRepository_ListNotes(t *testing.T) {
	since := time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC)
	note := domain.Note{
		ID:        fixedNoteID,
		OwnerID:   fixedOwnerID,
		Title:     "Einkauf",
		Content:   "Milch kaufen",
		CreatedAt: fixedTime,
	}

	tests := map[string]struct {
		limit           int
		opts            []domain.ListNotesOption
		setExpectations func(mock sqlmock.Sqlmock)
		expectedNotes   []domain.Note
		expectedErr     bool
	}{
		"owner-only": {
			limit: 10,
			setExpectations: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(noteFields).
					AddRow(note.ID, note.OwnerID, note.Title, note.Content, note.CreatedAt)
				mock.ExpectQuery("SELECT id, owner_id, title, content, created_at FROM notes WHERE owner_id = $1 ORDER BY created_at DESC LIMIT 10").
					WithArgs(fixedOwnerID).
					WillReturnRows(rows)
			},
			expectedNotes: []domain.Note{note},
		},
		"query-and-since": {
			limit: 5,
			opts: []domain.ListNotesOption{
				domain.WithNoteQuery("50%_milch"),
				domain.WithNotesSince(since),
			},
			setExpectations: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(noteFields).
					AddRow(note.ID, note.OwnerID, note.Title, note.Content, note.CreatedAt)
				mock.ExpectQuery("SELECT id, owner_id, title, content, created_at FROM notes WHERE owner_id = $1 AND (title ILIKE $2 OR content ILIKE $3) AND created_at >= $4 ORDER BY created_at DESC LIMIT 5").
					WithArgs(fixedOwnerID, `%50\%\_milch%`, `%50\%\_milch%`, since).
					WillReturnRows(rows)
			},
			expectedNotes: []domain.Note{note},
		},
		"empty": {
			limit: 10,
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT id, owner_id, title, content, created_at FROM notes WHERE owner_id = $1 ORDER BY created_at DESC LIMIT 10").
					WithArgs(fixedOwnerID).
					WillReturnRows(sqlmock.NewRows(noteFields))
			},
			expectedNotes: nil,
		},
		"invalid-limit": {
			limit:           0,
			setExpectations: func(mock sqlmock.Sqlmock) {},
			expectedErr:     true,
		},
		"database-error": {
			limit: 10,
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT id, owner_id, title, content, created_at FROM notes WHERE owner_id = $1 ORDER BY created_at DESC LIMIT 10").
					WithArgs(fixedOwnerID).
					WillReturnError(errors.New("database error"))
			},
			expectedErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			assert.NoError(t, err)
			defer db.Close() // nolint:errcheck

			tt.setExpectations(mock)

			repo := NewNoteRepository(db)
			got, gotErr := repo.ListNotes(context.Background(), fixedOwnerID, tt.limit, tt.opts...)
			if tt.expectedErr {
				assert.Error(t, gotErr)
			} else {
				assert.NoError(t, gotErr)
				assert.Equal(t, tt.expectedNotes, got)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestNoteRepository_GetNote(t *testing.T) {
	note := domain.Note{
		ID:        fixedNoteID,
		OwnerID:   fixedOwnerID,
		Title:     "Einkauf",
		Content:   "Milch kaufen",
		CreatedAt: fixedTime,
	}
	query := "SELECT id, owner_id, title, content, created_at FROM notes WHERE id = $1 AND owner_id = $2"

	tests := map[string]struct {
		setExpectations func(mock sqlmock.Sqlmock)
		expectedNote    domain.Note
		expectedFound   bool
		expectedErr     bool
	}{
		"success": {
			setExpectations: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(noteFields).
					AddRow(note.ID, note.OwnerID, note.Title, note.Content, note.CreatedAt)
				mock.ExpectQuery(query).WithArgs(fixedNoteID, fixedOwnerID).WillReturnRows(rows)
			},
			expectedNote:  note,
			expectedFound: true,
		},
		"not-found": {
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(query).WithArgs(fixedNoteID, fixedOwnerID).WillReturnError(sql.ErrNoRows)
			},
		},
		"database-error": {
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(query).WithArgs(fixedNoteID, fixedOwnerID).WillReturnError(errors.New("database error"))
			},
			expectedErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			assert.NoError(t, err)
			defer db.Close() // nolint:errcheck

			tt.setExpectations(mock)

			repo := NewNoteRepository(db)
			got, found, gotErr := repo.GetNote(context.Background(), fixedOwnerID, fixedNoteID)
			if tt.expectedErr {
				assert.Error(t, gotErr)
			} else {
				assert.NoError(t, gotErr)
				assert.Equal(t, tt.expectedFound, found)
				assert.Equal(t, tt.expectedNote, got)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestNoteRepository_GetNoteOwner(t *testing.T) {
	query := "SELECT owner_id FROM notes WHERE id = $1"

	tests := map[string]struct {
		setExpectations func(mock sqlmock.Sqlmock)
		expectedOwner   uuid.UUID
		expectedFound   bool
		expectedErr     bool
	}{
		"success": {
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(query).WithArgs(fixedNoteID).
					WillReturnRows(sqlmock.NewRows([]string{"owner_id"}).AddRow(fixedOwnerID))
			},
			expectedOwner: fixedOwnerID,
			expectedFound: true,
		},
		"not-found": {
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(query).WithArgs(fixedNoteID).WillReturnError(sql.ErrNoRows)
			},
			expectedOwner: uuid.Nil,
		},
		"database-error": {
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(query).WithArgs(fixedNoteID).WillReturnError(errors.New("database error"))
			},
			expectedErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			assert.NoError(t, err)
			defer db.Close() // nolint:errcheck

			tt.setExpectations(mock)

			repo := NewNoteRepository(db)
			owner, found, gotErr := repo.GetNoteOwner(context.Background(), fixedNoteID)
			if tt.expectedErr {
				assert.Error(t, gotErr)
			} else {
				assert.NoError(t, gotErr)
				assert.Equal(t, tt.expectedFound, found)
				assert.Equal(t, tt.expectedOwner, owner)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestNoteRepository_DeleteNote(t *testing.T) {
	query := "DELETE FROM notes WHERE id = $1 AND owner_id = $2"

	tests := map[string]struct {
		setExpectations func(mock sqlmock.Sqlmock)
		expectedDeleted bool
		expectedErr     bool
	}{
		"deleted": {
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(query).WithArgs(fixedNoteID, fixedOwnerID).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			expectedDeleted: true,
		},
		"nothing-deleted": {
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(query).WithArgs(fixedNoteID, fixedOwnerID).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			expectedDeleted: false,
		},
		"database-error": {
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(query).WithArgs(fixedNoteID, fixedOwnerID).
					WillReturnError(errors.New("database error"))
			},
			expectedErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			assert.NoError(t, err)
			defer db.Close() // nolint:errcheck

			tt.setExpectations(mock)

			repo := NewNoteRepository(db)
			deleted, gotErr := repo.DeleteNote(context.Background(), fixedOwnerID, fixedNoteID)
			if tt.expectedErr {
				assert.Error(t, gotErr)
			} else {
				assert.NoError(t, gotErr)
				assert.Equal(t, tt.expectedDeleted, deleted)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestInitNoteRepository_Initialize(t *testing.T) {
	i := InitNoteRepository{DB: &sql.DB{}}

	_, err := i.Initialize(context.Background())
	assert.NoError(t, err)

	_, err = depend.Resolve[domain.NoteRepository]()
	assert.NoError(t, err)
}
