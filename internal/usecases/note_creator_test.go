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
)

func TestNoteCreatorImpl_Create(t *testing.T) {
	now := time.Date(2026, 1, 27, 10, 0, 0, 0, time.UTC)
	noteID := uuid.MustParse("11111111-0000-4000-8000-000000000001")
	ownerID := uuid.MustParse("22222222-0000-4000-8000-000000000002")

	expectedNote := domain.Note{
		ID:        noteID,
		OwnerID:   ownerID,
		Title:     "Einkauf",
		Content:   "Milch kaufen",
		CreatedAt: now,
	}

	tests := map[string]struct {
		title           string
		content         string
		setExpectations func(uow *domain.MockUnitOfWork, notes *domain.MockNoteRepository, outbox *domain.MockOutboxRepository)
		expectedNote    domain.Note
		expectErr       bool
	}{
		"success": {
			title:   " Einkauf ",
			content: "Milch kaufen\n",
			setExpectations: func(uow *domain.MockUnitOfWork, notes *domain.MockNoteRepository, outbox *domain.MockOutboxRepository) {
				uow.EXPECT().Note().Return(notes)
				uow.EXPECT().Outbox().Return(outbox)
				notes.EXPECT().CreateNote(mock.Anything, expectedNote).Return(nil)
				outbox.EXPECT().CreateNoteEvent(mock.Anything, domain.NoteEvent{
					Type:      domain.EventType_NOTE_CREATED,
					NoteID:    noteID,
					OwnerID:   ownerID,
					CreatedAt: now,
				}).Return(nil)
			},
			expectedNote: expectedNote,
		},
		"validation-error": {
			title:           "",
			content:         "Milch kaufen",
			setExpectations: func(*domain.MockUnitOfWork, *domain.MockNoteRepository, *domain.MockOutboxRepository) {},
			expectErr:       true,
		},
		"repository-error": {
			title:   "Einkauf",
			content: "Milch kaufen",
			setExpectations: func(uow *domain.MockUnitOfWork, notes *domain.MockNoteRepository, _ *domain.MockOutboxRepository) {
				uow.EXPECT().Note().Return(notes)
				notes.EXPECT().CreateNote(mock.Anything, mock.Anything).Return(errors.New("db down"))
			},
			expectErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			uow := domain.NewMockUnitOfWork(t)
			notes := domain.NewMockNoteRepository(t)
			outbox := domain.NewMockOutboxRepository(t)
			tt.setExpectations(uow, notes, outbox)

			timeProvider := domain.NewMockCurrentTimeProvider(t)
			timeProvider.EXPECT().Now().Return(now)

			creator := NewNoteCreatorImpl(timeProvider)
			creator.createUUID = func() uuid.UUID { return noteID }

			got, err := creator.Create(context.Background(), uow, ownerID, tt.title, tt.content)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedNote, got)
		})
	}
}
