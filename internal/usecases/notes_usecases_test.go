package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-ai-chatgateway/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	testOwnerID = uuid.MustParse("22222222-0000-4000-8000-000000000002")
	testNoteID  = uuid.MustParse("11111111-0000-4000-8000-000000000001")
)

func TestCreateNoteImpl_Execute(t *testing.T) {
	note := domain.Note{ID: testNoteID, OwnerID: testOwnerID, Title: "t", Content: "c"}

	tests := map[string]struct {
		creatorErr error
		expected   domain.Note
		expectErr  bool
	}{
		"success": {
			expected: note,
		},
		"creator-error-rolls-back": {
			creatorErr: domain.NewValidationErr("content is required"),
			expectErr:  true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			uow := domain.NewMockUnitOfWork(t)
			creator := NewMockNoteCreator(t)

			uow.EXPECT().Execute(mock.Anything, mock.Anything).
				RunAndReturn(func(ctx context.Context, fn func(uow domain.UnitOfWork) error) error {
					return fn(uow)
				})
			creator.EXPECT().Create(mock.Anything, uow, testOwnerID, "t", "c").Return(note, tt.creatorErr)

			got, err := NewCreateNoteImpl(uow, creator).Execute(context.Background(), testOwnerID, "t", "c")
			if tt.expectErr {
				assert.ErrorIs(t, err, tt.creatorErr)
				assert.Equal(t, domain.Note{}, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestDeleteNoteImpl_Execute(t *testing.T) {
	forbidden := domain.NewForbiddenErr("note belongs to another user")

	tests := map[string]struct {
		deleterErr error
	}{
		"success":   {},
		"forbidden": {deleterErr: forbidden},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			uow := domain.NewMockUnitOfWork(t)
			deleter := NewMockNoteDeleter(t)

			uow.EXPECT().Execute(mock.Anything, mock.Anything).
				RunAndReturn(func(ctx context.Context, fn func(uow domain.UnitOfWork) error) error {
					return fn(uow)
				})
			deleter.EXPECT().Delete(mock.Anything, uow, testOwnerID, testNoteID).Return(tt.deleterErr)

			err := NewDeleteNoteImpl(uow, deleter).Execute(context.Background(), testOwnerID, testNoteID)
			assert.Equal(t, tt.deleterErr, err)
		})
	}
}

func TestListNotesImpl_Query(t *testing.T) {
	now := time.Date(2026, 1, 27, 10, 0, 0, 0, time.UTC)
	notes := []domain.Note{{ID: testNoteID, OwnerID: testOwnerID, Title: "t", Content: "c", CreatedAt: now}}

	tests := map[string]struct {
		limit           int
		opts            []ListNotesOptions
		setExpectations func(repo *domain.MockNoteRepository)
		expected        []domain.Note
		expectErr       string
	}{
		"default-limit": {
			limit: 0,
			setExpectations: func(repo *domain.MockNoteRepository) {
				repo.EXPECT().ListNotes(mock.Anything, testOwnerID, domain.DefaultNotesLimit).Return(notes, nil)
			},
			expected: notes,
		},
		"limit-capped": {
			limit: 1000,
			setExpectations: func(repo *domain.MockNoteRepository) {
				repo.EXPECT().ListNotes(mock.Anything, testOwnerID, domain.MaxNotesLimit).Return(notes, nil)
			},
			expected: notes,
		},
		"query-and-since": {
			limit: 5,
			opts:  []ListNotesOptions{WithSearchQuery("milch"), WithSince("gestern")},
			setExpectations: func(repo *domain.MockNoteRepository) {
				repo.EXPECT().ListNotes(mock.Anything, testOwnerID, 5, mock.Anything, mock.Anything).
					RunAndReturn(func(_ context.Context, _ uuid.UUID, _ int, opts ...domain.ListNotesOption) ([]domain.Note, error) {
						params := domain.ListNotesParams{}
						for _, opt := range opts {
							opt(&params)
						}
						assert.Equal(t, "milch", params.Query)
						require.NotNil(t, params.Since)
						assert.Equal(t, time.Date(2026, 1, 26, 0, 0, 0, 0, time.UTC), *params.Since)
						return notes, nil
					})
			},
			expected: notes,
		},
		"blank-query-ignored": {
			limit: 3,
			opts:  []ListNotesOptions{WithSearchQuery("   ")},
			setExpectations: func(repo *domain.MockNoteRepository) {
				repo.EXPECT().ListNotes(mock.Anything, testOwnerID, 3).Return(nil, nil)
			},
		},
		"invalid-since": {
			limit:           3,
			opts:            []ListNotesOptions{WithSince("whenever")},
			setExpectations: func(*domain.MockNoteRepository) {},
			expectErr:       `could not understand the date "whenever"`,
		},
		"repository-error": {
			limit: 3,
			setExpectations: func(repo *domain.MockNoteRepository) {
				repo.EXPECT().ListNotes(mock.Anything, testOwnerID, 3).Return(nil, errors.New("db down"))
			},
			expectErr: "db down",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			repo := domain.NewMockNoteRepository(t)
			tt.setExpectations(repo)
			timeProvider := domain.NewMockCurrentTimeProvider(t)
			timeProvider.EXPECT().Now().Return(now).Maybe()

			got, err := NewListNotesImpl(repo, timeProvider).Query(context.Background(), testOwnerID, tt.limit, tt.opts...)
			if tt.expectErr != "" {
				assert.EqualError(t, err, tt.expectErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestGetNoteImpl_Query(t *testing.T) {
	note := domain.Note{ID: testNoteID, OwnerID: testOwnerID, Title: "t", Content: "c"}

	tests := map[string]struct {
		found     bool
		repoErr   error
		expectErr bool
	}{
		"found":     {found: true},
		"not-found": {found: false, expectErr: true},
		"error":     {repoErr: errors.New("db down"), expectErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			repo := domain.NewMockNoteRepository(t)
			repo.EXPECT().GetNote(mock.Anything, testOwnerID, testNoteID).Return(note, tt.found, tt.repoErr)

			got, err := NewGetNoteImpl(repo).Query(context.Background(), testOwnerID, testNoteID)
			if tt.expectErr {
				assert.Error(t, err)
				if tt.repoErr == nil {
					var notFound *domain.NotFoundErr
					assert.ErrorAs(t, err, &notFound)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, note, got)
		})
	}
}
